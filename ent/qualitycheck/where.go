// Code generated by ent, DO NOT EDIT.

package qualitycheck

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/ratchet-works/ratchet/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldEQ(FieldSessionID, v))
}

// Rating applies equality check predicate on the "rating" field. It's identical to RatingEQ.
func Rating(v int) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldEQ(FieldRating, v))
}

// ToolUses applies equality check predicate on the "tool_uses" field. It's identical to ToolUsesEQ.
func ToolUses(v int) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldEQ(FieldToolUses, v))
}

// Errors applies equality check predicate on the "errors" field. It's identical to ErrorsEQ.
func Errors(v int) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldEQ(FieldErrors, v))
}

// BrowserVerifications applies equality check predicate on the "browser_verifications" field. It's identical to BrowserVerificationsEQ.
func BrowserVerifications(v int) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldEQ(FieldBrowserVerifications, v))
}

// ReviewText applies equality check predicate on the "review_text" field. It's identical to ReviewTextEQ.
func ReviewText(v string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldEQ(FieldReviewText, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldContainsFold(FieldSessionID, v))
}

// CheckTypeEQ applies the EQ predicate on the "check_type" field.
func CheckTypeEQ(v CheckType) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldEQ(FieldCheckType, v))
}

// CheckTypeNEQ applies the NEQ predicate on the "check_type" field.
func CheckTypeNEQ(v CheckType) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldNEQ(FieldCheckType, v))
}

// CheckTypeIn applies the In predicate on the "check_type" field.
func CheckTypeIn(vs ...CheckType) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldIn(FieldCheckType, vs...))
}

// CheckTypeNotIn applies the NotIn predicate on the "check_type" field.
func CheckTypeNotIn(vs ...CheckType) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldNotIn(FieldCheckType, vs...))
}

// RatingEQ applies the EQ predicate on the "rating" field.
func RatingEQ(v int) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldEQ(FieldRating, v))
}

// RatingNEQ applies the NEQ predicate on the "rating" field.
func RatingNEQ(v int) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldNEQ(FieldRating, v))
}

// RatingIn applies the In predicate on the "rating" field.
func RatingIn(vs ...int) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldIn(FieldRating, vs...))
}

// RatingNotIn applies the NotIn predicate on the "rating" field.
func RatingNotIn(vs ...int) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldNotIn(FieldRating, vs...))
}

// RatingGT applies the GT predicate on the "rating" field.
func RatingGT(v int) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldGT(FieldRating, v))
}

// RatingGTE applies the GTE predicate on the "rating" field.
func RatingGTE(v int) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldGTE(FieldRating, v))
}

// RatingLT applies the LT predicate on the "rating" field.
func RatingLT(v int) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldLT(FieldRating, v))
}

// RatingLTE applies the LTE predicate on the "rating" field.
func RatingLTE(v int) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldLTE(FieldRating, v))
}

// ToolUsesEQ applies the EQ predicate on the "tool_uses" field.
func ToolUsesEQ(v int) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldEQ(FieldToolUses, v))
}

// ToolUsesNEQ applies the NEQ predicate on the "tool_uses" field.
func ToolUsesNEQ(v int) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldNEQ(FieldToolUses, v))
}

// ToolUsesIn applies the In predicate on the "tool_uses" field.
func ToolUsesIn(vs ...int) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldIn(FieldToolUses, vs...))
}

// ToolUsesNotIn applies the NotIn predicate on the "tool_uses" field.
func ToolUsesNotIn(vs ...int) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldNotIn(FieldToolUses, vs...))
}

// ToolUsesGT applies the GT predicate on the "tool_uses" field.
func ToolUsesGT(v int) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldGT(FieldToolUses, v))
}

// ToolUsesGTE applies the GTE predicate on the "tool_uses" field.
func ToolUsesGTE(v int) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldGTE(FieldToolUses, v))
}

// ToolUsesLT applies the LT predicate on the "tool_uses" field.
func ToolUsesLT(v int) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldLT(FieldToolUses, v))
}

// ToolUsesLTE applies the LTE predicate on the "tool_uses" field.
func ToolUsesLTE(v int) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldLTE(FieldToolUses, v))
}

// ErrorsEQ applies the EQ predicate on the "errors" field.
func ErrorsEQ(v int) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldEQ(FieldErrors, v))
}

// ErrorsNEQ applies the NEQ predicate on the "errors" field.
func ErrorsNEQ(v int) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldNEQ(FieldErrors, v))
}

// ErrorsIn applies the In predicate on the "errors" field.
func ErrorsIn(vs ...int) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldIn(FieldErrors, vs...))
}

// ErrorsNotIn applies the NotIn predicate on the "errors" field.
func ErrorsNotIn(vs ...int) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldNotIn(FieldErrors, vs...))
}

// ErrorsGT applies the GT predicate on the "errors" field.
func ErrorsGT(v int) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldGT(FieldErrors, v))
}

// ErrorsGTE applies the GTE predicate on the "errors" field.
func ErrorsGTE(v int) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldGTE(FieldErrors, v))
}

// ErrorsLT applies the LT predicate on the "errors" field.
func ErrorsLT(v int) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldLT(FieldErrors, v))
}

// ErrorsLTE applies the LTE predicate on the "errors" field.
func ErrorsLTE(v int) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldLTE(FieldErrors, v))
}

// BrowserVerificationsEQ applies the EQ predicate on the "browser_verifications" field.
func BrowserVerificationsEQ(v int) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldEQ(FieldBrowserVerifications, v))
}

// BrowserVerificationsNEQ applies the NEQ predicate on the "browser_verifications" field.
func BrowserVerificationsNEQ(v int) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldNEQ(FieldBrowserVerifications, v))
}

// BrowserVerificationsIn applies the In predicate on the "browser_verifications" field.
func BrowserVerificationsIn(vs ...int) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldIn(FieldBrowserVerifications, vs...))
}

// BrowserVerificationsNotIn applies the NotIn predicate on the "browser_verifications" field.
func BrowserVerificationsNotIn(vs ...int) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldNotIn(FieldBrowserVerifications, vs...))
}

// BrowserVerificationsGT applies the GT predicate on the "browser_verifications" field.
func BrowserVerificationsGT(v int) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldGT(FieldBrowserVerifications, v))
}

// BrowserVerificationsGTE applies the GTE predicate on the "browser_verifications" field.
func BrowserVerificationsGTE(v int) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldGTE(FieldBrowserVerifications, v))
}

// BrowserVerificationsLT applies the LT predicate on the "browser_verifications" field.
func BrowserVerificationsLT(v int) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldLT(FieldBrowserVerifications, v))
}

// BrowserVerificationsLTE applies the LTE predicate on the "browser_verifications" field.
func BrowserVerificationsLTE(v int) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldLTE(FieldBrowserVerifications, v))
}

// CriticalIssuesIsNil applies the IsNil predicate on the "critical_issues" field.
func CriticalIssuesIsNil() predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldIsNull(FieldCriticalIssues))
}

// CriticalIssuesNotNil applies the NotNil predicate on the "critical_issues" field.
func CriticalIssuesNotNil() predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldNotNull(FieldCriticalIssues))
}

// WarningsIsNil applies the IsNil predicate on the "warnings" field.
func WarningsIsNil() predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldIsNull(FieldWarnings))
}

// WarningsNotNil applies the NotNil predicate on the "warnings" field.
func WarningsNotNil() predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldNotNull(FieldWarnings))
}

// ReviewTextEQ applies the EQ predicate on the "review_text" field.
func ReviewTextEQ(v string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldEQ(FieldReviewText, v))
}

// ReviewTextNEQ applies the NEQ predicate on the "review_text" field.
func ReviewTextNEQ(v string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldNEQ(FieldReviewText, v))
}

// ReviewTextIn applies the In predicate on the "review_text" field.
func ReviewTextIn(vs ...string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldIn(FieldReviewText, vs...))
}

// ReviewTextNotIn applies the NotIn predicate on the "review_text" field.
func ReviewTextNotIn(vs ...string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldNotIn(FieldReviewText, vs...))
}

// ReviewTextGT applies the GT predicate on the "review_text" field.
func ReviewTextGT(v string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldGT(FieldReviewText, v))
}

// ReviewTextGTE applies the GTE predicate on the "review_text" field.
func ReviewTextGTE(v string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldGTE(FieldReviewText, v))
}

// ReviewTextLT applies the LT predicate on the "review_text" field.
func ReviewTextLT(v string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldLT(FieldReviewText, v))
}

// ReviewTextLTE applies the LTE predicate on the "review_text" field.
func ReviewTextLTE(v string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldLTE(FieldReviewText, v))
}

// ReviewTextContains applies the Contains predicate on the "review_text" field.
func ReviewTextContains(v string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldContains(FieldReviewText, v))
}

// ReviewTextHasPrefix applies the HasPrefix predicate on the "review_text" field.
func ReviewTextHasPrefix(v string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldHasPrefix(FieldReviewText, v))
}

// ReviewTextHasSuffix applies the HasSuffix predicate on the "review_text" field.
func ReviewTextHasSuffix(v string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldHasSuffix(FieldReviewText, v))
}

// ReviewTextIsNil applies the IsNil predicate on the "review_text" field.
func ReviewTextIsNil() predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldIsNull(FieldReviewText))
}

// ReviewTextNotNil applies the NotNil predicate on the "review_text" field.
func ReviewTextNotNil() predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldNotNull(FieldReviewText))
}

// ReviewTextEqualFold applies the EqualFold predicate on the "review_text" field.
func ReviewTextEqualFold(v string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldEqualFold(FieldReviewText, v))
}

// ReviewTextContainsFold applies the ContainsFold predicate on the "review_text" field.
func ReviewTextContainsFold(v string) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldContainsFold(FieldReviewText, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.QualityCheck {
	return predicate.QualityCheck(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.QualityCheck {
	return predicate.QualityCheck(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.Session) predicate.QualityCheck {
	return predicate.QualityCheck(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QualityCheck) predicate.QualityCheck {
	return predicate.QualityCheck(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QualityCheck) predicate.QualityCheck {
	return predicate.QualityCheck(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QualityCheck) predicate.QualityCheck {
	return predicate.QualityCheck(sql.NotPredicates(p))
}
