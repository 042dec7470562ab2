// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ratchet-works/ratchet/ent/predicate"
	"github.com/ratchet-works/ratchet/ent/qualitycheck"
	"github.com/ratchet-works/ratchet/ent/session"
)

// SessionUpdate is the builder for updating Session entities.
type SessionUpdate struct {
	config
	hooks    []Hook
	mutation *SessionMutation
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdate) Where(ps ...predicate.Session) *SessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SessionUpdate) SetStatus(v session.Status) *SessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableStatus(v *session.Status) *SessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *SessionUpdate) SetModel(v string) *SessionUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableModel(v *string) *SessionUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetPromptVersion sets the "prompt_version" field.
func (_u *SessionUpdate) SetPromptVersion(v string) *SessionUpdate {
	_u.mutation.SetPromptVersion(v)
	return _u
}

// SetNillablePromptVersion sets the "prompt_version" field if the given value is not nil.
func (_u *SessionUpdate) SetNillablePromptVersion(v *string) *SessionUpdate {
	if v != nil {
		_u.SetPromptVersion(*v)
	}
	return _u
}

// ClearPromptVersion clears the value of the "prompt_version" field.
func (_u *SessionUpdate) ClearPromptVersion() *SessionUpdate {
	_u.mutation.ClearPromptVersion()
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *SessionUpdate) SetEndedAt(v time.Time) *SessionUpdate {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableEndedAt(v *time.Time) *SessionUpdate {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *SessionUpdate) ClearEndedAt() *SessionUpdate {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetToolUseCount sets the "tool_use_count" field.
func (_u *SessionUpdate) SetToolUseCount(v int) *SessionUpdate {
	_u.mutation.ResetToolUseCount()
	_u.mutation.SetToolUseCount(v)
	return _u
}

// SetNillableToolUseCount sets the "tool_use_count" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableToolUseCount(v *int) *SessionUpdate {
	if v != nil {
		_u.SetToolUseCount(*v)
	}
	return _u
}

// AddToolUseCount adds value to the "tool_use_count" field.
func (_u *SessionUpdate) AddToolUseCount(v int) *SessionUpdate {
	_u.mutation.AddToolUseCount(v)
	return _u
}

// SetErrorCount sets the "error_count" field.
func (_u *SessionUpdate) SetErrorCount(v int) *SessionUpdate {
	_u.mutation.ResetErrorCount()
	_u.mutation.SetErrorCount(v)
	return _u
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableErrorCount(v *int) *SessionUpdate {
	if v != nil {
		_u.SetErrorCount(*v)
	}
	return _u
}

// AddErrorCount adds value to the "error_count" field.
func (_u *SessionUpdate) AddErrorCount(v int) *SessionUpdate {
	_u.mutation.AddErrorCount(v)
	return _u
}

// SetTokensInput sets the "tokens_input" field.
func (_u *SessionUpdate) SetTokensInput(v int64) *SessionUpdate {
	_u.mutation.ResetTokensInput()
	_u.mutation.SetTokensInput(v)
	return _u
}

// SetNillableTokensInput sets the "tokens_input" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableTokensInput(v *int64) *SessionUpdate {
	if v != nil {
		_u.SetTokensInput(*v)
	}
	return _u
}

// AddTokensInput adds value to the "tokens_input" field.
func (_u *SessionUpdate) AddTokensInput(v int64) *SessionUpdate {
	_u.mutation.AddTokensInput(v)
	return _u
}

// SetTokensOutput sets the "tokens_output" field.
func (_u *SessionUpdate) SetTokensOutput(v int64) *SessionUpdate {
	_u.mutation.ResetTokensOutput()
	_u.mutation.SetTokensOutput(v)
	return _u
}

// SetNillableTokensOutput sets the "tokens_output" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableTokensOutput(v *int64) *SessionUpdate {
	if v != nil {
		_u.SetTokensOutput(*v)
	}
	return _u
}

// AddTokensOutput adds value to the "tokens_output" field.
func (_u *SessionUpdate) AddTokensOutput(v int64) *SessionUpdate {
	_u.mutation.AddTokensOutput(v)
	return _u
}

// SetTokensCacheCreation sets the "tokens_cache_creation" field.
func (_u *SessionUpdate) SetTokensCacheCreation(v int64) *SessionUpdate {
	_u.mutation.ResetTokensCacheCreation()
	_u.mutation.SetTokensCacheCreation(v)
	return _u
}

// SetNillableTokensCacheCreation sets the "tokens_cache_creation" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableTokensCacheCreation(v *int64) *SessionUpdate {
	if v != nil {
		_u.SetTokensCacheCreation(*v)
	}
	return _u
}

// AddTokensCacheCreation adds value to the "tokens_cache_creation" field.
func (_u *SessionUpdate) AddTokensCacheCreation(v int64) *SessionUpdate {
	_u.mutation.AddTokensCacheCreation(v)
	return _u
}

// SetTokensCacheRead sets the "tokens_cache_read" field.
func (_u *SessionUpdate) SetTokensCacheRead(v int64) *SessionUpdate {
	_u.mutation.ResetTokensCacheRead()
	_u.mutation.SetTokensCacheRead(v)
	return _u
}

// SetNillableTokensCacheRead sets the "tokens_cache_read" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableTokensCacheRead(v *int64) *SessionUpdate {
	if v != nil {
		_u.SetTokensCacheRead(*v)
	}
	return _u
}

// AddTokensCacheRead adds value to the "tokens_cache_read" field.
func (_u *SessionUpdate) AddTokensCacheRead(v int64) *SessionUpdate {
	_u.mutation.AddTokensCacheRead(v)
	return _u
}

// SetMetrics sets the "metrics" field.
func (_u *SessionUpdate) SetMetrics(v map[string]interface{}) *SessionUpdate {
	_u.mutation.SetMetrics(v)
	return _u
}

// ClearMetrics clears the value of the "metrics" field.
func (_u *SessionUpdate) ClearMetrics() *SessionUpdate {
	_u.mutation.ClearMetrics()
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *SessionUpdate) SetFailureReason(v string) *SessionUpdate {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableFailureReason(v *string) *SessionUpdate {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *SessionUpdate) ClearFailureReason() *SessionUpdate {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetLastActiveAt sets the "last_active_at" field.
func (_u *SessionUpdate) SetLastActiveAt(v time.Time) *SessionUpdate {
	_u.mutation.SetLastActiveAt(v)
	return _u
}

// SetNillableLastActiveAt sets the "last_active_at" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableLastActiveAt(v *time.Time) *SessionUpdate {
	if v != nil {
		_u.SetLastActiveAt(*v)
	}
	return _u
}

// ClearLastActiveAt clears the value of the "last_active_at" field.
func (_u *SessionUpdate) ClearLastActiveAt() *SessionUpdate {
	_u.mutation.ClearLastActiveAt()
	return _u
}

// AddQualityCheckIDs adds the "quality_checks" edge to the QualityCheck entity by IDs.
func (_u *SessionUpdate) AddQualityCheckIDs(ids ...string) *SessionUpdate {
	_u.mutation.AddQualityCheckIDs(ids...)
	return _u
}

// AddQualityChecks adds the "quality_checks" edges to the QualityCheck entity.
func (_u *SessionUpdate) AddQualityChecks(v ...*QualityCheck) *SessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQualityCheckIDs(ids...)
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdate) Mutation() *SessionMutation {
	return _u.mutation
}

// ClearQualityChecks clears all "quality_checks" edges to the QualityCheck entity.
func (_u *SessionUpdate) ClearQualityChecks() *SessionUpdate {
	_u.mutation.ClearQualityChecks()
	return _u
}

// RemoveQualityCheckIDs removes the "quality_checks" edge to QualityCheck entities by IDs.
func (_u *SessionUpdate) RemoveQualityCheckIDs(ids ...string) *SessionUpdate {
	_u.mutation.RemoveQualityCheckIDs(ids...)
	return _u
}

// RemoveQualityChecks removes "quality_checks" edges to QualityCheck entities.
func (_u *SessionUpdate) RemoveQualityChecks(v ...*QualityCheck) *SessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQualityCheckIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := session.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Session.status": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Session.project"`)
	}
	return nil
}

func (_u *SessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(session.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(session.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.PromptVersion(); ok {
		_spec.SetField(session.FieldPromptVersion, field.TypeString, value)
	}
	if _u.mutation.PromptVersionCleared() {
		_spec.ClearField(session.FieldPromptVersion, field.TypeString)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(session.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(session.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ToolUseCount(); ok {
		_spec.SetField(session.FieldToolUseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedToolUseCount(); ok {
		_spec.AddField(session.FieldToolUseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorCount(); ok {
		_spec.SetField(session.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorCount(); ok {
		_spec.AddField(session.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TokensInput(); ok {
		_spec.SetField(session.FieldTokensInput, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTokensInput(); ok {
		_spec.AddField(session.FieldTokensInput, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TokensOutput(); ok {
		_spec.SetField(session.FieldTokensOutput, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTokensOutput(); ok {
		_spec.AddField(session.FieldTokensOutput, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TokensCacheCreation(); ok {
		_spec.SetField(session.FieldTokensCacheCreation, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTokensCacheCreation(); ok {
		_spec.AddField(session.FieldTokensCacheCreation, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TokensCacheRead(); ok {
		_spec.SetField(session.FieldTokensCacheRead, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTokensCacheRead(); ok {
		_spec.AddField(session.FieldTokensCacheRead, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Metrics(); ok {
		_spec.SetField(session.FieldMetrics, field.TypeJSON, value)
	}
	if _u.mutation.MetricsCleared() {
		_spec.ClearField(session.FieldMetrics, field.TypeJSON)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(session.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(session.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.LastActiveAt(); ok {
		_spec.SetField(session.FieldLastActiveAt, field.TypeTime, value)
	}
	if _u.mutation.LastActiveAtCleared() {
		_spec.ClearField(session.FieldLastActiveAt, field.TypeTime)
	}
	if _u.mutation.QualityChecksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.QualityChecksTable,
			Columns: []string{session.QualityChecksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(qualitycheck.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQualityChecksIDs(); len(nodes) > 0 && !_u.mutation.QualityChecksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.QualityChecksTable,
			Columns: []string{session.QualityChecksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(qualitycheck.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QualityChecksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.QualityChecksTable,
			Columns: []string{session.QualityChecksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(qualitycheck.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionUpdateOne is the builder for updating a single Session entity.
type SessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionMutation
}

// SetStatus sets the "status" field.
func (_u *SessionUpdateOne) SetStatus(v session.Status) *SessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableStatus(v *session.Status) *SessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *SessionUpdateOne) SetModel(v string) *SessionUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableModel(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetPromptVersion sets the "prompt_version" field.
func (_u *SessionUpdateOne) SetPromptVersion(v string) *SessionUpdateOne {
	_u.mutation.SetPromptVersion(v)
	return _u
}

// SetNillablePromptVersion sets the "prompt_version" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillablePromptVersion(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetPromptVersion(*v)
	}
	return _u
}

// ClearPromptVersion clears the value of the "prompt_version" field.
func (_u *SessionUpdateOne) ClearPromptVersion() *SessionUpdateOne {
	_u.mutation.ClearPromptVersion()
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *SessionUpdateOne) SetEndedAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableEndedAt(v *time.Time) *SessionUpdateOne {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *SessionUpdateOne) ClearEndedAt() *SessionUpdateOne {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetToolUseCount sets the "tool_use_count" field.
func (_u *SessionUpdateOne) SetToolUseCount(v int) *SessionUpdateOne {
	_u.mutation.ResetToolUseCount()
	_u.mutation.SetToolUseCount(v)
	return _u
}

// SetNillableToolUseCount sets the "tool_use_count" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableToolUseCount(v *int) *SessionUpdateOne {
	if v != nil {
		_u.SetToolUseCount(*v)
	}
	return _u
}

// AddToolUseCount adds value to the "tool_use_count" field.
func (_u *SessionUpdateOne) AddToolUseCount(v int) *SessionUpdateOne {
	_u.mutation.AddToolUseCount(v)
	return _u
}

// SetErrorCount sets the "error_count" field.
func (_u *SessionUpdateOne) SetErrorCount(v int) *SessionUpdateOne {
	_u.mutation.ResetErrorCount()
	_u.mutation.SetErrorCount(v)
	return _u
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableErrorCount(v *int) *SessionUpdateOne {
	if v != nil {
		_u.SetErrorCount(*v)
	}
	return _u
}

// AddErrorCount adds value to the "error_count" field.
func (_u *SessionUpdateOne) AddErrorCount(v int) *SessionUpdateOne {
	_u.mutation.AddErrorCount(v)
	return _u
}

// SetTokensInput sets the "tokens_input" field.
func (_u *SessionUpdateOne) SetTokensInput(v int64) *SessionUpdateOne {
	_u.mutation.ResetTokensInput()
	_u.mutation.SetTokensInput(v)
	return _u
}

// SetNillableTokensInput sets the "tokens_input" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableTokensInput(v *int64) *SessionUpdateOne {
	if v != nil {
		_u.SetTokensInput(*v)
	}
	return _u
}

// AddTokensInput adds value to the "tokens_input" field.
func (_u *SessionUpdateOne) AddTokensInput(v int64) *SessionUpdateOne {
	_u.mutation.AddTokensInput(v)
	return _u
}

// SetTokensOutput sets the "tokens_output" field.
func (_u *SessionUpdateOne) SetTokensOutput(v int64) *SessionUpdateOne {
	_u.mutation.ResetTokensOutput()
	_u.mutation.SetTokensOutput(v)
	return _u
}

// SetNillableTokensOutput sets the "tokens_output" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableTokensOutput(v *int64) *SessionUpdateOne {
	if v != nil {
		_u.SetTokensOutput(*v)
	}
	return _u
}

// AddTokensOutput adds value to the "tokens_output" field.
func (_u *SessionUpdateOne) AddTokensOutput(v int64) *SessionUpdateOne {
	_u.mutation.AddTokensOutput(v)
	return _u
}

// SetTokensCacheCreation sets the "tokens_cache_creation" field.
func (_u *SessionUpdateOne) SetTokensCacheCreation(v int64) *SessionUpdateOne {
	_u.mutation.ResetTokensCacheCreation()
	_u.mutation.SetTokensCacheCreation(v)
	return _u
}

// SetNillableTokensCacheCreation sets the "tokens_cache_creation" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableTokensCacheCreation(v *int64) *SessionUpdateOne {
	if v != nil {
		_u.SetTokensCacheCreation(*v)
	}
	return _u
}

// AddTokensCacheCreation adds value to the "tokens_cache_creation" field.
func (_u *SessionUpdateOne) AddTokensCacheCreation(v int64) *SessionUpdateOne {
	_u.mutation.AddTokensCacheCreation(v)
	return _u
}

// SetTokensCacheRead sets the "tokens_cache_read" field.
func (_u *SessionUpdateOne) SetTokensCacheRead(v int64) *SessionUpdateOne {
	_u.mutation.ResetTokensCacheRead()
	_u.mutation.SetTokensCacheRead(v)
	return _u
}

// SetNillableTokensCacheRead sets the "tokens_cache_read" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableTokensCacheRead(v *int64) *SessionUpdateOne {
	if v != nil {
		_u.SetTokensCacheRead(*v)
	}
	return _u
}

// AddTokensCacheRead adds value to the "tokens_cache_read" field.
func (_u *SessionUpdateOne) AddTokensCacheRead(v int64) *SessionUpdateOne {
	_u.mutation.AddTokensCacheRead(v)
	return _u
}

// SetMetrics sets the "metrics" field.
func (_u *SessionUpdateOne) SetMetrics(v map[string]interface{}) *SessionUpdateOne {
	_u.mutation.SetMetrics(v)
	return _u
}

// ClearMetrics clears the value of the "metrics" field.
func (_u *SessionUpdateOne) ClearMetrics() *SessionUpdateOne {
	_u.mutation.ClearMetrics()
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *SessionUpdateOne) SetFailureReason(v string) *SessionUpdateOne {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableFailureReason(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *SessionUpdateOne) ClearFailureReason() *SessionUpdateOne {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetLastActiveAt sets the "last_active_at" field.
func (_u *SessionUpdateOne) SetLastActiveAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetLastActiveAt(v)
	return _u
}

// SetNillableLastActiveAt sets the "last_active_at" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableLastActiveAt(v *time.Time) *SessionUpdateOne {
	if v != nil {
		_u.SetLastActiveAt(*v)
	}
	return _u
}

// ClearLastActiveAt clears the value of the "last_active_at" field.
func (_u *SessionUpdateOne) ClearLastActiveAt() *SessionUpdateOne {
	_u.mutation.ClearLastActiveAt()
	return _u
}

// AddQualityCheckIDs adds the "quality_checks" edge to the QualityCheck entity by IDs.
func (_u *SessionUpdateOne) AddQualityCheckIDs(ids ...string) *SessionUpdateOne {
	_u.mutation.AddQualityCheckIDs(ids...)
	return _u
}

// AddQualityChecks adds the "quality_checks" edges to the QualityCheck entity.
func (_u *SessionUpdateOne) AddQualityChecks(v ...*QualityCheck) *SessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQualityCheckIDs(ids...)
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdateOne) Mutation() *SessionMutation {
	return _u.mutation
}

// ClearQualityChecks clears all "quality_checks" edges to the QualityCheck entity.
func (_u *SessionUpdateOne) ClearQualityChecks() *SessionUpdateOne {
	_u.mutation.ClearQualityChecks()
	return _u
}

// RemoveQualityCheckIDs removes the "quality_checks" edge to QualityCheck entities by IDs.
func (_u *SessionUpdateOne) RemoveQualityCheckIDs(ids ...string) *SessionUpdateOne {
	_u.mutation.RemoveQualityCheckIDs(ids...)
	return _u
}

// RemoveQualityChecks removes "quality_checks" edges to QualityCheck entities.
func (_u *SessionUpdateOne) RemoveQualityChecks(v ...*QualityCheck) *SessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQualityCheckIDs(ids...)
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdateOne) Where(ps ...predicate.Session) *SessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionUpdateOne) Select(field string, fields ...string) *SessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Session entity.
func (_u *SessionUpdateOne) Save(ctx context.Context) (*Session, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdateOne) SaveX(ctx context.Context) *Session {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := session.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Session.status": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Session.project"`)
	}
	return nil
}

func (_u *SessionUpdateOne) sqlSave(ctx context.Context) (_node *Session, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Session.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, session.FieldID)
		for _, f := range fields {
			if !session.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != session.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(session.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(session.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.PromptVersion(); ok {
		_spec.SetField(session.FieldPromptVersion, field.TypeString, value)
	}
	if _u.mutation.PromptVersionCleared() {
		_spec.ClearField(session.FieldPromptVersion, field.TypeString)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(session.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(session.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ToolUseCount(); ok {
		_spec.SetField(session.FieldToolUseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedToolUseCount(); ok {
		_spec.AddField(session.FieldToolUseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorCount(); ok {
		_spec.SetField(session.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorCount(); ok {
		_spec.AddField(session.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TokensInput(); ok {
		_spec.SetField(session.FieldTokensInput, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTokensInput(); ok {
		_spec.AddField(session.FieldTokensInput, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TokensOutput(); ok {
		_spec.SetField(session.FieldTokensOutput, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTokensOutput(); ok {
		_spec.AddField(session.FieldTokensOutput, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TokensCacheCreation(); ok {
		_spec.SetField(session.FieldTokensCacheCreation, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTokensCacheCreation(); ok {
		_spec.AddField(session.FieldTokensCacheCreation, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TokensCacheRead(); ok {
		_spec.SetField(session.FieldTokensCacheRead, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTokensCacheRead(); ok {
		_spec.AddField(session.FieldTokensCacheRead, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Metrics(); ok {
		_spec.SetField(session.FieldMetrics, field.TypeJSON, value)
	}
	if _u.mutation.MetricsCleared() {
		_spec.ClearField(session.FieldMetrics, field.TypeJSON)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(session.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(session.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.LastActiveAt(); ok {
		_spec.SetField(session.FieldLastActiveAt, field.TypeTime, value)
	}
	if _u.mutation.LastActiveAtCleared() {
		_spec.ClearField(session.FieldLastActiveAt, field.TypeTime)
	}
	if _u.mutation.QualityChecksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.QualityChecksTable,
			Columns: []string{session.QualityChecksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(qualitycheck.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQualityChecksIDs(); len(nodes) > 0 && !_u.mutation.QualityChecksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.QualityChecksTable,
			Columns: []string{session.QualityChecksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(qualitycheck.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QualityChecksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.QualityChecksTable,
			Columns: []string{session.QualityChecksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(qualitycheck.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Session{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
