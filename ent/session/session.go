// Code generated by ent, DO NOT EDIT.

package session

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the session type in the database.
	Label = "session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "session_id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldSessionNumber holds the string denoting the session_number field in the database.
	FieldSessionNumber = "session_number"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldModel holds the string denoting the model field in the database.
	FieldModel = "model"
	// FieldPromptVersion holds the string denoting the prompt_version field in the database.
	FieldPromptVersion = "prompt_version"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldEndedAt holds the string denoting the ended_at field in the database.
	FieldEndedAt = "ended_at"
	// FieldToolUseCount holds the string denoting the tool_use_count field in the database.
	FieldToolUseCount = "tool_use_count"
	// FieldErrorCount holds the string denoting the error_count field in the database.
	FieldErrorCount = "error_count"
	// FieldTokensInput holds the string denoting the tokens_input field in the database.
	FieldTokensInput = "tokens_input"
	// FieldTokensOutput holds the string denoting the tokens_output field in the database.
	FieldTokensOutput = "tokens_output"
	// FieldTokensCacheCreation holds the string denoting the tokens_cache_creation field in the database.
	FieldTokensCacheCreation = "tokens_cache_creation"
	// FieldTokensCacheRead holds the string denoting the tokens_cache_read field in the database.
	FieldTokensCacheRead = "tokens_cache_read"
	// FieldMetrics holds the string denoting the metrics field in the database.
	FieldMetrics = "metrics"
	// FieldFailureReason holds the string denoting the failure_reason field in the database.
	FieldFailureReason = "failure_reason"
	// FieldLastActiveAt holds the string denoting the last_active_at field in the database.
	FieldLastActiveAt = "last_active_at"
	// EdgeProject holds the string denoting the project edge name in mutations.
	EdgeProject = "project"
	// EdgeQualityChecks holds the string denoting the quality_checks edge name in mutations.
	EdgeQualityChecks = "quality_checks"
	// ProjectFieldID holds the string denoting the ID field of the Project.
	ProjectFieldID = "project_id"
	// QualityCheckFieldID holds the string denoting the ID field of the QualityCheck.
	QualityCheckFieldID = "check_id"
	// Table holds the table name of the session in the database.
	Table = "sessions"
	// ProjectTable is the table that holds the project relation/edge.
	ProjectTable = "sessions"
	// ProjectInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectInverseTable = "projects"
	// ProjectColumn is the table column denoting the project relation/edge.
	ProjectColumn = "project_id"
	// QualityChecksTable is the table that holds the quality_checks relation/edge.
	QualityChecksTable = "quality_checks"
	// QualityChecksInverseTable is the table name for the QualityCheck entity.
	// It exists in this package in order to avoid circular dependency with the "qualitycheck" package.
	QualityChecksInverseTable = "quality_checks"
	// QualityChecksColumn is the table column denoting the quality_checks relation/edge.
	QualityChecksColumn = "session_id"
)

// Columns holds all SQL columns for session fields.
var Columns = []string{
	FieldID,
	FieldProjectID,
	FieldSessionNumber,
	FieldKind,
	FieldStatus,
	FieldModel,
	FieldPromptVersion,
	FieldStartedAt,
	FieldEndedAt,
	FieldToolUseCount,
	FieldErrorCount,
	FieldTokensInput,
	FieldTokensOutput,
	FieldTokensCacheCreation,
	FieldTokensCacheRead,
	FieldMetrics,
	FieldFailureReason,
	FieldLastActiveAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// DefaultToolUseCount holds the default value on creation for the "tool_use_count" field.
	DefaultToolUseCount int
	// DefaultErrorCount holds the default value on creation for the "error_count" field.
	DefaultErrorCount int
	// DefaultTokensInput holds the default value on creation for the "tokens_input" field.
	DefaultTokensInput int64
	// DefaultTokensOutput holds the default value on creation for the "tokens_output" field.
	DefaultTokensOutput int64
	// DefaultTokensCacheCreation holds the default value on creation for the "tokens_cache_creation" field.
	DefaultTokensCacheCreation int64
	// DefaultTokensCacheRead holds the default value on creation for the "tokens_cache_read" field.
	DefaultTokensCacheRead int64
)

// Kind defines the type for the "kind" enum field.
type Kind string

// Kind values.
const (
	KindInitializer Kind = "initializer"
	KindCoding      Kind = "coding"
	KindReview      Kind = "review"
)

func (k Kind) String() string {
	return string(k)
}

// KindValidator is a validator for the "kind" field enum values. It is called by the builders before save.
func KindValidator(k Kind) error {
	switch k {
	case KindInitializer, KindCoding, KindReview:
		return nil
	default:
		return fmt.Errorf("session: invalid enum value for kind field: %q", k)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusRunning is the default value of the Status enum.
const DefaultStatus = StatusRunning

// Status values.
const (
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusRunning, StatusCompleted, StatusFailed, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("session: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Session queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// BySessionNumber orders the results by the session_number field.
func BySessionNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionNumber, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByModel orders the results by the model field.
func ByModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModel, opts...).ToFunc()
}

// ByPromptVersion orders the results by the prompt_version field.
func ByPromptVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptVersion, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByEndedAt orders the results by the ended_at field.
func ByEndedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndedAt, opts...).ToFunc()
}

// ByToolUseCount orders the results by the tool_use_count field.
func ByToolUseCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToolUseCount, opts...).ToFunc()
}

// ByErrorCount orders the results by the error_count field.
func ByErrorCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorCount, opts...).ToFunc()
}

// ByTokensInput orders the results by the tokens_input field.
func ByTokensInput(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokensInput, opts...).ToFunc()
}

// ByTokensOutput orders the results by the tokens_output field.
func ByTokensOutput(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokensOutput, opts...).ToFunc()
}

// ByTokensCacheCreation orders the results by the tokens_cache_creation field.
func ByTokensCacheCreation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokensCacheCreation, opts...).ToFunc()
}

// ByTokensCacheRead orders the results by the tokens_cache_read field.
func ByTokensCacheRead(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokensCacheRead, opts...).ToFunc()
}

// ByFailureReason orders the results by the failure_reason field.
func ByFailureReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailureReason, opts...).ToFunc()
}

// ByLastActiveAt orders the results by the last_active_at field.
func ByLastActiveAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastActiveAt, opts...).ToFunc()
}

// ByProjectField orders the results by project field.
func ByProjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProjectStep(), sql.OrderByField(field, opts...))
	}
}

// ByQualityChecksCount orders the results by quality_checks count.
func ByQualityChecksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newQualityChecksStep(), opts...)
	}
}

// ByQualityChecks orders the results by quality_checks terms.
func ByQualityChecks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newQualityChecksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newProjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProjectInverseTable, ProjectFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
	)
}
func newQualityChecksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(QualityChecksInverseTable, QualityCheckFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, QualityChecksTable, QualityChecksColumn),
	)
}
