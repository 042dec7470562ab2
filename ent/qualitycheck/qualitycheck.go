// Code generated by ent, DO NOT EDIT.

package qualitycheck

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the qualitycheck type in the database.
	Label = "quality_check"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "check_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldCheckType holds the string denoting the check_type field in the database.
	FieldCheckType = "check_type"
	// FieldRating holds the string denoting the rating field in the database.
	FieldRating = "rating"
	// FieldToolUses holds the string denoting the tool_uses field in the database.
	FieldToolUses = "tool_uses"
	// FieldErrors holds the string denoting the errors field in the database.
	FieldErrors = "errors"
	// FieldBrowserVerifications holds the string denoting the browser_verifications field in the database.
	FieldBrowserVerifications = "browser_verifications"
	// FieldCriticalIssues holds the string denoting the critical_issues field in the database.
	FieldCriticalIssues = "critical_issues"
	// FieldWarnings holds the string denoting the warnings field in the database.
	FieldWarnings = "warnings"
	// FieldReviewText holds the string denoting the review_text field in the database.
	FieldReviewText = "review_text"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// SessionFieldID holds the string denoting the ID field of the Session.
	SessionFieldID = "session_id"
	// Table holds the table name of the qualitycheck in the database.
	Table = "quality_checks"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "quality_checks"
	// SessionInverseTable is the table name for the Session entity.
	// It exists in this package in order to avoid circular dependency with the "session" package.
	SessionInverseTable = "sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
)

// Columns holds all SQL columns for qualitycheck fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldCheckType,
	FieldRating,
	FieldToolUses,
	FieldErrors,
	FieldBrowserVerifications,
	FieldCriticalIssues,
	FieldWarnings,
	FieldReviewText,
	FieldCreatedAt,
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
	// RatingValidator is a validator for the "rating" field. It is called by the builders before save.
	RatingValidator func(int) error
	// DefaultToolUses holds the default value on creation for the "tool_uses" field.
	DefaultToolUses int
	// DefaultErrors holds the default value on creation for the "errors" field.
	DefaultErrors int
	// DefaultBrowserVerifications holds the default value on creation for the "browser_verifications" field.
	DefaultBrowserVerifications int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// CheckType defines the type for the "check_type" enum field.
type CheckType string

// CheckType values.
const (
	CheckTypeQuick CheckType = "quick"
	CheckTypeDeep  CheckType = "deep"
)

func (ct CheckType) String() string {
	return string(ct)
}

// CheckTypeValidator is a validator for the "check_type" field enum values. It is called by the builders before save.
func CheckTypeValidator(ct CheckType) error {
	switch ct {
	case CheckTypeQuick, CheckTypeDeep:
		return nil
	default:
		return fmt.Errorf("qualitycheck: invalid enum value for check_type field: %q", ct)
	}
}

// OrderOption defines the ordering options for the QualityCheck queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByCheckType orders the results by the check_type field.
func ByCheckType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCheckType, opts...).ToFunc()
}

// ByRating orders the results by the rating field.
func ByRating(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRating, opts...).ToFunc()
}

// ByToolUses orders the results by the tool_uses field.
func ByToolUses(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToolUses, opts...).ToFunc()
}

// ByErrors orders the results by the errors field.
func ByErrors(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrors, opts...).ToFunc()
}

// ByBrowserVerifications orders the results by the browser_verifications field.
func ByBrowserVerifications(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBrowserVerifications, opts...).ToFunc()
}

// ByReviewText orders the results by the review_text field.
func ByReviewText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewText, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// BySessionField orders the results by session field.
func BySessionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionStep(), sql.OrderByField(field, opts...))
	}
}
func newSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInverseTable, SessionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
	)
}
