// Code generated by ent, DO NOT EDIT.

package session

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/ratchet-works/ratchet/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldProjectID, v))
}

// SessionNumber applies equality check predicate on the "session_number" field. It's identical to SessionNumberEQ.
func SessionNumber(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldSessionNumber, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldModel, v))
}

// PromptVersion applies equality check predicate on the "prompt_version" field. It's identical to PromptVersionEQ.
func PromptVersion(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldPromptVersion, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStartedAt, v))
}

// EndedAt applies equality check predicate on the "ended_at" field. It's identical to EndedAtEQ.
func EndedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldEndedAt, v))
}

// ToolUseCount applies equality check predicate on the "tool_use_count" field. It's identical to ToolUseCountEQ.
func ToolUseCount(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldToolUseCount, v))
}

// ErrorCount applies equality check predicate on the "error_count" field. It's identical to ErrorCountEQ.
func ErrorCount(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldErrorCount, v))
}

// TokensInput applies equality check predicate on the "tokens_input" field. It's identical to TokensInputEQ.
func TokensInput(v int64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTokensInput, v))
}

// TokensOutput applies equality check predicate on the "tokens_output" field. It's identical to TokensOutputEQ.
func TokensOutput(v int64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTokensOutput, v))
}

// TokensCacheCreation applies equality check predicate on the "tokens_cache_creation" field. It's identical to TokensCacheCreationEQ.
func TokensCacheCreation(v int64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTokensCacheCreation, v))
}

// TokensCacheRead applies equality check predicate on the "tokens_cache_read" field. It's identical to TokensCacheReadEQ.
func TokensCacheRead(v int64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTokensCacheRead, v))
}

// FailureReason applies equality check predicate on the "failure_reason" field. It's identical to FailureReasonEQ.
func FailureReason(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldFailureReason, v))
}

// LastActiveAt applies equality check predicate on the "last_active_at" field. It's identical to LastActiveAtEQ.
func LastActiveAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldLastActiveAt, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldProjectID, v))
}

// SessionNumberEQ applies the EQ predicate on the "session_number" field.
func SessionNumberEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldSessionNumber, v))
}

// SessionNumberNEQ applies the NEQ predicate on the "session_number" field.
func SessionNumberNEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldSessionNumber, v))
}

// SessionNumberIn applies the In predicate on the "session_number" field.
func SessionNumberIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldSessionNumber, vs...))
}

// SessionNumberNotIn applies the NotIn predicate on the "session_number" field.
func SessionNumberNotIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldSessionNumber, vs...))
}

// SessionNumberGT applies the GT predicate on the "session_number" field.
func SessionNumberGT(v int) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldSessionNumber, v))
}

// SessionNumberGTE applies the GTE predicate on the "session_number" field.
func SessionNumberGTE(v int) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldSessionNumber, v))
}

// SessionNumberLT applies the LT predicate on the "session_number" field.
func SessionNumberLT(v int) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldSessionNumber, v))
}

// SessionNumberLTE applies the LTE predicate on the "session_number" field.
func SessionNumberLTE(v int) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldSessionNumber, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldKind, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldStatus, vs...))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldModel, v))
}

// PromptVersionEQ applies the EQ predicate on the "prompt_version" field.
func PromptVersionEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldPromptVersion, v))
}

// PromptVersionNEQ applies the NEQ predicate on the "prompt_version" field.
func PromptVersionNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldPromptVersion, v))
}

// PromptVersionIn applies the In predicate on the "prompt_version" field.
func PromptVersionIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldPromptVersion, vs...))
}

// PromptVersionNotIn applies the NotIn predicate on the "prompt_version" field.
func PromptVersionNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldPromptVersion, vs...))
}

// PromptVersionGT applies the GT predicate on the "prompt_version" field.
func PromptVersionGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldPromptVersion, v))
}

// PromptVersionGTE applies the GTE predicate on the "prompt_version" field.
func PromptVersionGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldPromptVersion, v))
}

// PromptVersionLT applies the LT predicate on the "prompt_version" field.
func PromptVersionLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldPromptVersion, v))
}

// PromptVersionLTE applies the LTE predicate on the "prompt_version" field.
func PromptVersionLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldPromptVersion, v))
}

// PromptVersionContains applies the Contains predicate on the "prompt_version" field.
func PromptVersionContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldPromptVersion, v))
}

// PromptVersionHasPrefix applies the HasPrefix predicate on the "prompt_version" field.
func PromptVersionHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldPromptVersion, v))
}

// PromptVersionHasSuffix applies the HasSuffix predicate on the "prompt_version" field.
func PromptVersionHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldPromptVersion, v))
}

// PromptVersionIsNil applies the IsNil predicate on the "prompt_version" field.
func PromptVersionIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldPromptVersion))
}

// PromptVersionNotNil applies the NotNil predicate on the "prompt_version" field.
func PromptVersionNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldPromptVersion))
}

// PromptVersionEqualFold applies the EqualFold predicate on the "prompt_version" field.
func PromptVersionEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldPromptVersion, v))
}

// PromptVersionContainsFold applies the ContainsFold predicate on the "prompt_version" field.
func PromptVersionContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldPromptVersion, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldStartedAt, v))
}

// EndedAtEQ applies the EQ predicate on the "ended_at" field.
func EndedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldEndedAt, v))
}

// EndedAtNEQ applies the NEQ predicate on the "ended_at" field.
func EndedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldEndedAt, v))
}

// EndedAtIn applies the In predicate on the "ended_at" field.
func EndedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldEndedAt, vs...))
}

// EndedAtNotIn applies the NotIn predicate on the "ended_at" field.
func EndedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldEndedAt, vs...))
}

// EndedAtGT applies the GT predicate on the "ended_at" field.
func EndedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldEndedAt, v))
}

// EndedAtGTE applies the GTE predicate on the "ended_at" field.
func EndedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldEndedAt, v))
}

// EndedAtLT applies the LT predicate on the "ended_at" field.
func EndedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldEndedAt, v))
}

// EndedAtLTE applies the LTE predicate on the "ended_at" field.
func EndedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldEndedAt, v))
}

// EndedAtIsNil applies the IsNil predicate on the "ended_at" field.
func EndedAtIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldEndedAt))
}

// EndedAtNotNil applies the NotNil predicate on the "ended_at" field.
func EndedAtNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldEndedAt))
}

// ToolUseCountEQ applies the EQ predicate on the "tool_use_count" field.
func ToolUseCountEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldToolUseCount, v))
}

// ToolUseCountNEQ applies the NEQ predicate on the "tool_use_count" field.
func ToolUseCountNEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldToolUseCount, v))
}

// ToolUseCountIn applies the In predicate on the "tool_use_count" field.
func ToolUseCountIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldToolUseCount, vs...))
}

// ToolUseCountNotIn applies the NotIn predicate on the "tool_use_count" field.
func ToolUseCountNotIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldToolUseCount, vs...))
}

// ToolUseCountGT applies the GT predicate on the "tool_use_count" field.
func ToolUseCountGT(v int) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldToolUseCount, v))
}

// ToolUseCountGTE applies the GTE predicate on the "tool_use_count" field.
func ToolUseCountGTE(v int) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldToolUseCount, v))
}

// ToolUseCountLT applies the LT predicate on the "tool_use_count" field.
func ToolUseCountLT(v int) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldToolUseCount, v))
}

// ToolUseCountLTE applies the LTE predicate on the "tool_use_count" field.
func ToolUseCountLTE(v int) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldToolUseCount, v))
}

// ErrorCountEQ applies the EQ predicate on the "error_count" field.
func ErrorCountEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldErrorCount, v))
}

// ErrorCountNEQ applies the NEQ predicate on the "error_count" field.
func ErrorCountNEQ(v int) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldErrorCount, v))
}

// ErrorCountIn applies the In predicate on the "error_count" field.
func ErrorCountIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldErrorCount, vs...))
}

// ErrorCountNotIn applies the NotIn predicate on the "error_count" field.
func ErrorCountNotIn(vs ...int) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldErrorCount, vs...))
}

// ErrorCountGT applies the GT predicate on the "error_count" field.
func ErrorCountGT(v int) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldErrorCount, v))
}

// ErrorCountGTE applies the GTE predicate on the "error_count" field.
func ErrorCountGTE(v int) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldErrorCount, v))
}

// ErrorCountLT applies the LT predicate on the "error_count" field.
func ErrorCountLT(v int) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldErrorCount, v))
}

// ErrorCountLTE applies the LTE predicate on the "error_count" field.
func ErrorCountLTE(v int) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldErrorCount, v))
}

// TokensInputEQ applies the EQ predicate on the "tokens_input" field.
func TokensInputEQ(v int64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTokensInput, v))
}

// TokensInputNEQ applies the NEQ predicate on the "tokens_input" field.
func TokensInputNEQ(v int64) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldTokensInput, v))
}

// TokensInputIn applies the In predicate on the "tokens_input" field.
func TokensInputIn(vs ...int64) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldTokensInput, vs...))
}

// TokensInputNotIn applies the NotIn predicate on the "tokens_input" field.
func TokensInputNotIn(vs ...int64) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldTokensInput, vs...))
}

// TokensInputGT applies the GT predicate on the "tokens_input" field.
func TokensInputGT(v int64) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldTokensInput, v))
}

// TokensInputGTE applies the GTE predicate on the "tokens_input" field.
func TokensInputGTE(v int64) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldTokensInput, v))
}

// TokensInputLT applies the LT predicate on the "tokens_input" field.
func TokensInputLT(v int64) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldTokensInput, v))
}

// TokensInputLTE applies the LTE predicate on the "tokens_input" field.
func TokensInputLTE(v int64) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldTokensInput, v))
}

// TokensOutputEQ applies the EQ predicate on the "tokens_output" field.
func TokensOutputEQ(v int64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTokensOutput, v))
}

// TokensOutputNEQ applies the NEQ predicate on the "tokens_output" field.
func TokensOutputNEQ(v int64) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldTokensOutput, v))
}

// TokensOutputIn applies the In predicate on the "tokens_output" field.
func TokensOutputIn(vs ...int64) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldTokensOutput, vs...))
}

// TokensOutputNotIn applies the NotIn predicate on the "tokens_output" field.
func TokensOutputNotIn(vs ...int64) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldTokensOutput, vs...))
}

// TokensOutputGT applies the GT predicate on the "tokens_output" field.
func TokensOutputGT(v int64) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldTokensOutput, v))
}

// TokensOutputGTE applies the GTE predicate on the "tokens_output" field.
func TokensOutputGTE(v int64) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldTokensOutput, v))
}

// TokensOutputLT applies the LT predicate on the "tokens_output" field.
func TokensOutputLT(v int64) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldTokensOutput, v))
}

// TokensOutputLTE applies the LTE predicate on the "tokens_output" field.
func TokensOutputLTE(v int64) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldTokensOutput, v))
}

// TokensCacheCreationEQ applies the EQ predicate on the "tokens_cache_creation" field.
func TokensCacheCreationEQ(v int64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTokensCacheCreation, v))
}

// TokensCacheCreationNEQ applies the NEQ predicate on the "tokens_cache_creation" field.
func TokensCacheCreationNEQ(v int64) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldTokensCacheCreation, v))
}

// TokensCacheCreationIn applies the In predicate on the "tokens_cache_creation" field.
func TokensCacheCreationIn(vs ...int64) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldTokensCacheCreation, vs...))
}

// TokensCacheCreationNotIn applies the NotIn predicate on the "tokens_cache_creation" field.
func TokensCacheCreationNotIn(vs ...int64) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldTokensCacheCreation, vs...))
}

// TokensCacheCreationGT applies the GT predicate on the "tokens_cache_creation" field.
func TokensCacheCreationGT(v int64) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldTokensCacheCreation, v))
}

// TokensCacheCreationGTE applies the GTE predicate on the "tokens_cache_creation" field.
func TokensCacheCreationGTE(v int64) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldTokensCacheCreation, v))
}

// TokensCacheCreationLT applies the LT predicate on the "tokens_cache_creation" field.
func TokensCacheCreationLT(v int64) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldTokensCacheCreation, v))
}

// TokensCacheCreationLTE applies the LTE predicate on the "tokens_cache_creation" field.
func TokensCacheCreationLTE(v int64) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldTokensCacheCreation, v))
}

// TokensCacheReadEQ applies the EQ predicate on the "tokens_cache_read" field.
func TokensCacheReadEQ(v int64) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldTokensCacheRead, v))
}

// TokensCacheReadNEQ applies the NEQ predicate on the "tokens_cache_read" field.
func TokensCacheReadNEQ(v int64) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldTokensCacheRead, v))
}

// TokensCacheReadIn applies the In predicate on the "tokens_cache_read" field.
func TokensCacheReadIn(vs ...int64) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldTokensCacheRead, vs...))
}

// TokensCacheReadNotIn applies the NotIn predicate on the "tokens_cache_read" field.
func TokensCacheReadNotIn(vs ...int64) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldTokensCacheRead, vs...))
}

// TokensCacheReadGT applies the GT predicate on the "tokens_cache_read" field.
func TokensCacheReadGT(v int64) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldTokensCacheRead, v))
}

// TokensCacheReadGTE applies the GTE predicate on the "tokens_cache_read" field.
func TokensCacheReadGTE(v int64) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldTokensCacheRead, v))
}

// TokensCacheReadLT applies the LT predicate on the "tokens_cache_read" field.
func TokensCacheReadLT(v int64) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldTokensCacheRead, v))
}

// TokensCacheReadLTE applies the LTE predicate on the "tokens_cache_read" field.
func TokensCacheReadLTE(v int64) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldTokensCacheRead, v))
}

// MetricsIsNil applies the IsNil predicate on the "metrics" field.
func MetricsIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldMetrics))
}

// MetricsNotNil applies the NotNil predicate on the "metrics" field.
func MetricsNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldMetrics))
}

// FailureReasonEQ applies the EQ predicate on the "failure_reason" field.
func FailureReasonEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldFailureReason, v))
}

// FailureReasonNEQ applies the NEQ predicate on the "failure_reason" field.
func FailureReasonNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldFailureReason, v))
}

// FailureReasonIn applies the In predicate on the "failure_reason" field.
func FailureReasonIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldFailureReason, vs...))
}

// FailureReasonNotIn applies the NotIn predicate on the "failure_reason" field.
func FailureReasonNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldFailureReason, vs...))
}

// FailureReasonGT applies the GT predicate on the "failure_reason" field.
func FailureReasonGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldFailureReason, v))
}

// FailureReasonGTE applies the GTE predicate on the "failure_reason" field.
func FailureReasonGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldFailureReason, v))
}

// FailureReasonLT applies the LT predicate on the "failure_reason" field.
func FailureReasonLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldFailureReason, v))
}

// FailureReasonLTE applies the LTE predicate on the "failure_reason" field.
func FailureReasonLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldFailureReason, v))
}

// FailureReasonContains applies the Contains predicate on the "failure_reason" field.
func FailureReasonContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldFailureReason, v))
}

// FailureReasonHasPrefix applies the HasPrefix predicate on the "failure_reason" field.
func FailureReasonHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldFailureReason, v))
}

// FailureReasonHasSuffix applies the HasSuffix predicate on the "failure_reason" field.
func FailureReasonHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldFailureReason, v))
}

// FailureReasonIsNil applies the IsNil predicate on the "failure_reason" field.
func FailureReasonIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldFailureReason))
}

// FailureReasonNotNil applies the NotNil predicate on the "failure_reason" field.
func FailureReasonNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldFailureReason))
}

// FailureReasonEqualFold applies the EqualFold predicate on the "failure_reason" field.
func FailureReasonEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldFailureReason, v))
}

// FailureReasonContainsFold applies the ContainsFold predicate on the "failure_reason" field.
func FailureReasonContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldFailureReason, v))
}

// LastActiveAtEQ applies the EQ predicate on the "last_active_at" field.
func LastActiveAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldLastActiveAt, v))
}

// LastActiveAtNEQ applies the NEQ predicate on the "last_active_at" field.
func LastActiveAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldLastActiveAt, v))
}

// LastActiveAtIn applies the In predicate on the "last_active_at" field.
func LastActiveAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldLastActiveAt, vs...))
}

// LastActiveAtNotIn applies the NotIn predicate on the "last_active_at" field.
func LastActiveAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldLastActiveAt, vs...))
}

// LastActiveAtGT applies the GT predicate on the "last_active_at" field.
func LastActiveAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldLastActiveAt, v))
}

// LastActiveAtGTE applies the GTE predicate on the "last_active_at" field.
func LastActiveAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldLastActiveAt, v))
}

// LastActiveAtLT applies the LT predicate on the "last_active_at" field.
func LastActiveAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldLastActiveAt, v))
}

// LastActiveAtLTE applies the LTE predicate on the "last_active_at" field.
func LastActiveAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldLastActiveAt, v))
}

// LastActiveAtIsNil applies the IsNil predicate on the "last_active_at" field.
func LastActiveAtIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldLastActiveAt))
}

// LastActiveAtNotNil applies the NotNil predicate on the "last_active_at" field.
func LastActiveAtNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldLastActiveAt))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasQualityChecks applies the HasEdge predicate on the "quality_checks" edge.
func HasQualityChecks() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, QualityChecksTable, QualityChecksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQualityChecksWith applies the HasEdge predicate on the "quality_checks" edge with a given conditions (other predicates).
func HasQualityChecksWith(preds ...predicate.QualityCheck) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newQualityChecksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Session) predicate.Session {
	return predicate.Session(sql.NotPredicates(p))
}
