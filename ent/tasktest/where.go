// Code generated by ent, DO NOT EDIT.

package tasktest

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/ratchet-works/ratchet/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldContainsFold(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldEQ(FieldTaskID, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldEQ(FieldDescription, v))
}

// VerificationNote applies equality check predicate on the "verification_note" field. It's identical to VerificationNoteEQ.
func VerificationNote(v string) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldEQ(FieldVerificationNote, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldEQ(FieldCreatedAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldContainsFold(FieldTaskID, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldContainsFold(FieldDescription, v))
}

// OutcomeEQ applies the EQ predicate on the "outcome" field.
func OutcomeEQ(v Outcome) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldEQ(FieldOutcome, v))
}

// OutcomeNEQ applies the NEQ predicate on the "outcome" field.
func OutcomeNEQ(v Outcome) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldNEQ(FieldOutcome, v))
}

// OutcomeIn applies the In predicate on the "outcome" field.
func OutcomeIn(vs ...Outcome) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldIn(FieldOutcome, vs...))
}

// OutcomeNotIn applies the NotIn predicate on the "outcome" field.
func OutcomeNotIn(vs ...Outcome) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldNotIn(FieldOutcome, vs...))
}

// VerificationNoteEQ applies the EQ predicate on the "verification_note" field.
func VerificationNoteEQ(v string) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldEQ(FieldVerificationNote, v))
}

// VerificationNoteNEQ applies the NEQ predicate on the "verification_note" field.
func VerificationNoteNEQ(v string) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldNEQ(FieldVerificationNote, v))
}

// VerificationNoteIn applies the In predicate on the "verification_note" field.
func VerificationNoteIn(vs ...string) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldIn(FieldVerificationNote, vs...))
}

// VerificationNoteNotIn applies the NotIn predicate on the "verification_note" field.
func VerificationNoteNotIn(vs ...string) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldNotIn(FieldVerificationNote, vs...))
}

// VerificationNoteGT applies the GT predicate on the "verification_note" field.
func VerificationNoteGT(v string) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldGT(FieldVerificationNote, v))
}

// VerificationNoteGTE applies the GTE predicate on the "verification_note" field.
func VerificationNoteGTE(v string) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldGTE(FieldVerificationNote, v))
}

// VerificationNoteLT applies the LT predicate on the "verification_note" field.
func VerificationNoteLT(v string) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldLT(FieldVerificationNote, v))
}

// VerificationNoteLTE applies the LTE predicate on the "verification_note" field.
func VerificationNoteLTE(v string) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldLTE(FieldVerificationNote, v))
}

// VerificationNoteContains applies the Contains predicate on the "verification_note" field.
func VerificationNoteContains(v string) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldContains(FieldVerificationNote, v))
}

// VerificationNoteHasPrefix applies the HasPrefix predicate on the "verification_note" field.
func VerificationNoteHasPrefix(v string) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldHasPrefix(FieldVerificationNote, v))
}

// VerificationNoteHasSuffix applies the HasSuffix predicate on the "verification_note" field.
func VerificationNoteHasSuffix(v string) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldHasSuffix(FieldVerificationNote, v))
}

// VerificationNoteIsNil applies the IsNil predicate on the "verification_note" field.
func VerificationNoteIsNil() predicate.TaskTest {
	return predicate.TaskTest(sql.FieldIsNull(FieldVerificationNote))
}

// VerificationNoteNotNil applies the NotNil predicate on the "verification_note" field.
func VerificationNoteNotNil() predicate.TaskTest {
	return predicate.TaskTest(sql.FieldNotNull(FieldVerificationNote))
}

// VerificationNoteEqualFold applies the EqualFold predicate on the "verification_note" field.
func VerificationNoteEqualFold(v string) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldEqualFold(FieldVerificationNote, v))
}

// VerificationNoteContainsFold applies the ContainsFold predicate on the "verification_note" field.
func VerificationNoteContainsFold(v string) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldContainsFold(FieldVerificationNote, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TaskTest {
	return predicate.TaskTest(sql.FieldLTE(FieldCreatedAt, v))
}

// HasTask applies the HasEdge predicate on the "task" edge.
func HasTask() predicate.TaskTest {
	return predicate.TaskTest(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskWith applies the HasEdge predicate on the "task" edge with a given conditions (other predicates).
func HasTaskWith(preds ...predicate.Task) predicate.TaskTest {
	return predicate.TaskTest(func(s *sql.Selector) {
		step := newTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TaskTest) predicate.TaskTest {
	return predicate.TaskTest(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TaskTest) predicate.TaskTest {
	return predicate.TaskTest(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TaskTest) predicate.TaskTest {
	return predicate.TaskTest(sql.NotPredicates(p))
}
