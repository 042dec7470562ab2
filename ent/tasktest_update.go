// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ratchet-works/ratchet/ent/predicate"
	"github.com/ratchet-works/ratchet/ent/tasktest"
)

// TaskTestUpdate is the builder for updating TaskTest entities.
type TaskTestUpdate struct {
	config
	hooks    []Hook
	mutation *TaskTestMutation
}

// Where appends a list predicates to the TaskTestUpdate builder.
func (_u *TaskTestUpdate) Where(ps ...predicate.TaskTest) *TaskTestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDescription sets the "description" field.
func (_u *TaskTestUpdate) SetDescription(v string) *TaskTestUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaskTestUpdate) SetNillableDescription(v *string) *TaskTestUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *TaskTestUpdate) SetOutcome(v tasktest.Outcome) *TaskTestUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *TaskTestUpdate) SetNillableOutcome(v *tasktest.Outcome) *TaskTestUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetVerificationNote sets the "verification_note" field.
func (_u *TaskTestUpdate) SetVerificationNote(v string) *TaskTestUpdate {
	_u.mutation.SetVerificationNote(v)
	return _u
}

// SetNillableVerificationNote sets the "verification_note" field if the given value is not nil.
func (_u *TaskTestUpdate) SetNillableVerificationNote(v *string) *TaskTestUpdate {
	if v != nil {
		_u.SetVerificationNote(*v)
	}
	return _u
}

// ClearVerificationNote clears the value of the "verification_note" field.
func (_u *TaskTestUpdate) ClearVerificationNote() *TaskTestUpdate {
	_u.mutation.ClearVerificationNote()
	return _u
}

// Mutation returns the TaskTestMutation object of the builder.
func (_u *TaskTestUpdate) Mutation() *TaskTestMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskTestUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskTestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskTestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskTestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskTestUpdate) check() error {
	if v, ok := _u.mutation.Outcome(); ok {
		if err := tasktest.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "TaskTest.outcome": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TaskTest.task"`)
	}
	return nil
}

func (_u *TaskTestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tasktest.Table, tasktest.Columns, sqlgraph.NewFieldSpec(tasktest.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(tasktest.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(tasktest.FieldOutcome, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.VerificationNote(); ok {
		_spec.SetField(tasktest.FieldVerificationNote, field.TypeString, value)
	}
	if _u.mutation.VerificationNoteCleared() {
		_spec.ClearField(tasktest.FieldVerificationNote, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tasktest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskTestUpdateOne is the builder for updating a single TaskTest entity.
type TaskTestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskTestMutation
}

// SetDescription sets the "description" field.
func (_u *TaskTestUpdateOne) SetDescription(v string) *TaskTestUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaskTestUpdateOne) SetNillableDescription(v *string) *TaskTestUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *TaskTestUpdateOne) SetOutcome(v tasktest.Outcome) *TaskTestUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *TaskTestUpdateOne) SetNillableOutcome(v *tasktest.Outcome) *TaskTestUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetVerificationNote sets the "verification_note" field.
func (_u *TaskTestUpdateOne) SetVerificationNote(v string) *TaskTestUpdateOne {
	_u.mutation.SetVerificationNote(v)
	return _u
}

// SetNillableVerificationNote sets the "verification_note" field if the given value is not nil.
func (_u *TaskTestUpdateOne) SetNillableVerificationNote(v *string) *TaskTestUpdateOne {
	if v != nil {
		_u.SetVerificationNote(*v)
	}
	return _u
}

// ClearVerificationNote clears the value of the "verification_note" field.
func (_u *TaskTestUpdateOne) ClearVerificationNote() *TaskTestUpdateOne {
	_u.mutation.ClearVerificationNote()
	return _u
}

// Mutation returns the TaskTestMutation object of the builder.
func (_u *TaskTestUpdateOne) Mutation() *TaskTestMutation {
	return _u.mutation
}

// Where appends a list predicates to the TaskTestUpdate builder.
func (_u *TaskTestUpdateOne) Where(ps ...predicate.TaskTest) *TaskTestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskTestUpdateOne) Select(field string, fields ...string) *TaskTestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TaskTest entity.
func (_u *TaskTestUpdateOne) Save(ctx context.Context) (*TaskTest, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskTestUpdateOne) SaveX(ctx context.Context) *TaskTest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskTestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskTestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskTestUpdateOne) check() error {
	if v, ok := _u.mutation.Outcome(); ok {
		if err := tasktest.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "TaskTest.outcome": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TaskTest.task"`)
	}
	return nil
}

func (_u *TaskTestUpdateOne) sqlSave(ctx context.Context) (_node *TaskTest, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tasktest.Table, tasktest.Columns, sqlgraph.NewFieldSpec(tasktest.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TaskTest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tasktest.FieldID)
		for _, f := range fields {
			if !tasktest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tasktest.FieldID {
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
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(tasktest.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(tasktest.FieldOutcome, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.VerificationNote(); ok {
		_spec.SetField(tasktest.FieldVerificationNote, field.TypeString, value)
	}
	if _u.mutation.VerificationNoteCleared() {
		_spec.ClearField(tasktest.FieldVerificationNote, field.TypeString)
	}
	_node = &TaskTest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tasktest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
