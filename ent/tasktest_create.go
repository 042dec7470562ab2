// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ratchet-works/ratchet/ent/task"
	"github.com/ratchet-works/ratchet/ent/tasktest"
)

// TaskTestCreate is the builder for creating a TaskTest entity.
type TaskTestCreate struct {
	config
	mutation *TaskTestMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTaskID sets the "task_id" field.
func (_c *TaskTestCreate) SetTaskID(v string) *TaskTestCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *TaskTestCreate) SetDescription(v string) *TaskTestCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *TaskTestCreate) SetOutcome(v tasktest.Outcome) *TaskTestCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_c *TaskTestCreate) SetNillableOutcome(v *tasktest.Outcome) *TaskTestCreate {
	if v != nil {
		_c.SetOutcome(*v)
	}
	return _c
}

// SetVerificationNote sets the "verification_note" field.
func (_c *TaskTestCreate) SetVerificationNote(v string) *TaskTestCreate {
	_c.mutation.SetVerificationNote(v)
	return _c
}

// SetNillableVerificationNote sets the "verification_note" field if the given value is not nil.
func (_c *TaskTestCreate) SetNillableVerificationNote(v *string) *TaskTestCreate {
	if v != nil {
		_c.SetVerificationNote(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TaskTestCreate) SetCreatedAt(v time.Time) *TaskTestCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TaskTestCreate) SetNillableCreatedAt(v *time.Time) *TaskTestCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TaskTestCreate) SetID(v string) *TaskTestCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTask sets the "task" edge to the Task entity.
func (_c *TaskTestCreate) SetTask(v *Task) *TaskTestCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the TaskTestMutation object of the builder.
func (_c *TaskTestCreate) Mutation() *TaskTestMutation {
	return _c.mutation
}

// Save creates the TaskTest in the database.
func (_c *TaskTestCreate) Save(ctx context.Context) (*TaskTest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskTestCreate) SaveX(ctx context.Context) *TaskTest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskTestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskTestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskTestCreate) defaults() {
	if _, ok := _c.mutation.Outcome(); !ok {
		v := tasktest.DefaultOutcome
		_c.mutation.SetOutcome(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := tasktest.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskTestCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "TaskTest.task_id"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "TaskTest.description"`)}
	}
	if _, ok := _c.mutation.Outcome(); !ok {
		return &ValidationError{Name: "outcome", err: errors.New(`ent: missing required field "TaskTest.outcome"`)}
	}
	if v, ok := _c.mutation.Outcome(); ok {
		if err := tasktest.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "TaskTest.outcome": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TaskTest.created_at"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "TaskTest.task"`)}
	}
	return nil
}

func (_c *TaskTestCreate) sqlSave(ctx context.Context) (*TaskTest, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected TaskTest.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TaskTestCreate) createSpec() (*TaskTest, *sqlgraph.CreateSpec) {
	var (
		_node = &TaskTest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tasktest.Table, sqlgraph.NewFieldSpec(tasktest.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(tasktest.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(tasktest.FieldOutcome, field.TypeEnum, value)
		_node.Outcome = value
	}
	if value, ok := _c.mutation.VerificationNote(); ok {
		_spec.SetField(tasktest.FieldVerificationNote, field.TypeString, value)
		_node.VerificationNote = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(tasktest.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   tasktest.TaskTable,
			Columns: []string{tasktest.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TaskID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TaskTest.Create().
//		SetTaskID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskTestUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *TaskTestCreate) OnConflict(opts ...sql.ConflictOption) *TaskTestUpsertOne {
	_c.conflict = opts
	return &TaskTestUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TaskTest.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaskTestCreate) OnConflictColumns(columns ...string) *TaskTestUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaskTestUpsertOne{
		create: _c,
	}
}

type (
	// TaskTestUpsertOne is the builder for "upsert"-ing
	//  one TaskTest node.
	TaskTestUpsertOne struct {
		create *TaskTestCreate
	}

	// TaskTestUpsert is the "OnConflict" setter.
	TaskTestUpsert struct {
		*sql.UpdateSet
	}
)

// SetDescription sets the "description" field.
func (u *TaskTestUpsert) SetDescription(v string) *TaskTestUpsert {
	u.Set(tasktest.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *TaskTestUpsert) UpdateDescription() *TaskTestUpsert {
	u.SetExcluded(tasktest.FieldDescription)
	return u
}

// SetOutcome sets the "outcome" field.
func (u *TaskTestUpsert) SetOutcome(v tasktest.Outcome) *TaskTestUpsert {
	u.Set(tasktest.FieldOutcome, v)
	return u
}

// UpdateOutcome sets the "outcome" field to the value that was provided on create.
func (u *TaskTestUpsert) UpdateOutcome() *TaskTestUpsert {
	u.SetExcluded(tasktest.FieldOutcome)
	return u
}

// SetVerificationNote sets the "verification_note" field.
func (u *TaskTestUpsert) SetVerificationNote(v string) *TaskTestUpsert {
	u.Set(tasktest.FieldVerificationNote, v)
	return u
}

// UpdateVerificationNote sets the "verification_note" field to the value that was provided on create.
func (u *TaskTestUpsert) UpdateVerificationNote() *TaskTestUpsert {
	u.SetExcluded(tasktest.FieldVerificationNote)
	return u
}

// ClearVerificationNote clears the value of the "verification_note" field.
func (u *TaskTestUpsert) ClearVerificationNote() *TaskTestUpsert {
	u.SetNull(tasktest.FieldVerificationNote)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.TaskTest.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(tasktest.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TaskTestUpsertOne) UpdateNewValues() *TaskTestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(tasktest.FieldID)
		}
		if _, exists := u.create.mutation.TaskID(); exists {
			s.SetIgnore(tasktest.FieldTaskID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(tasktest.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TaskTest.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TaskTestUpsertOne) Ignore() *TaskTestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskTestUpsertOne) DoNothing() *TaskTestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskTestCreate.OnConflict
// documentation for more info.
func (u *TaskTestUpsertOne) Update(set func(*TaskTestUpsert)) *TaskTestUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskTestUpsert{UpdateSet: update})
	}))
	return u
}

// SetDescription sets the "description" field.
func (u *TaskTestUpsertOne) SetDescription(v string) *TaskTestUpsertOne {
	return u.Update(func(s *TaskTestUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *TaskTestUpsertOne) UpdateDescription() *TaskTestUpsertOne {
	return u.Update(func(s *TaskTestUpsert) {
		s.UpdateDescription()
	})
}

// SetOutcome sets the "outcome" field.
func (u *TaskTestUpsertOne) SetOutcome(v tasktest.Outcome) *TaskTestUpsertOne {
	return u.Update(func(s *TaskTestUpsert) {
		s.SetOutcome(v)
	})
}

// UpdateOutcome sets the "outcome" field to the value that was provided on create.
func (u *TaskTestUpsertOne) UpdateOutcome() *TaskTestUpsertOne {
	return u.Update(func(s *TaskTestUpsert) {
		s.UpdateOutcome()
	})
}

// SetVerificationNote sets the "verification_note" field.
func (u *TaskTestUpsertOne) SetVerificationNote(v string) *TaskTestUpsertOne {
	return u.Update(func(s *TaskTestUpsert) {
		s.SetVerificationNote(v)
	})
}

// UpdateVerificationNote sets the "verification_note" field to the value that was provided on create.
func (u *TaskTestUpsertOne) UpdateVerificationNote() *TaskTestUpsertOne {
	return u.Update(func(s *TaskTestUpsert) {
		s.UpdateVerificationNote()
	})
}

// ClearVerificationNote clears the value of the "verification_note" field.
func (u *TaskTestUpsertOne) ClearVerificationNote() *TaskTestUpsertOne {
	return u.Update(func(s *TaskTestUpsert) {
		s.ClearVerificationNote()
	})
}

// Exec executes the query.
func (u *TaskTestUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskTestCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskTestUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TaskTestUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TaskTestUpsertOne.ID is not supported by MySQL driver. Use TaskTestUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TaskTestUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TaskTestCreateBulk is the builder for creating many TaskTest entities in bulk.
type TaskTestCreateBulk struct {
	config
	err      error
	builders []*TaskTestCreate
	conflict []sql.ConflictOption
}

// Save creates the TaskTest entities in the database.
func (_c *TaskTestCreateBulk) Save(ctx context.Context) ([]*TaskTest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TaskTest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskTestMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TaskTestCreateBulk) SaveX(ctx context.Context) []*TaskTest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskTestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskTestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TaskTest.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskTestUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *TaskTestCreateBulk) OnConflict(opts ...sql.ConflictOption) *TaskTestUpsertBulk {
	_c.conflict = opts
	return &TaskTestUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TaskTest.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaskTestCreateBulk) OnConflictColumns(columns ...string) *TaskTestUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaskTestUpsertBulk{
		create: _c,
	}
}

// TaskTestUpsertBulk is the builder for "upsert"-ing
// a bulk of TaskTest nodes.
type TaskTestUpsertBulk struct {
	create *TaskTestCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TaskTest.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(tasktest.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TaskTestUpsertBulk) UpdateNewValues() *TaskTestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(tasktest.FieldID)
			}
			if _, exists := b.mutation.TaskID(); exists {
				s.SetIgnore(tasktest.FieldTaskID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(tasktest.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TaskTest.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TaskTestUpsertBulk) Ignore() *TaskTestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskTestUpsertBulk) DoNothing() *TaskTestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskTestCreateBulk.OnConflict
// documentation for more info.
func (u *TaskTestUpsertBulk) Update(set func(*TaskTestUpsert)) *TaskTestUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskTestUpsert{UpdateSet: update})
	}))
	return u
}

// SetDescription sets the "description" field.
func (u *TaskTestUpsertBulk) SetDescription(v string) *TaskTestUpsertBulk {
	return u.Update(func(s *TaskTestUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *TaskTestUpsertBulk) UpdateDescription() *TaskTestUpsertBulk {
	return u.Update(func(s *TaskTestUpsert) {
		s.UpdateDescription()
	})
}

// SetOutcome sets the "outcome" field.
func (u *TaskTestUpsertBulk) SetOutcome(v tasktest.Outcome) *TaskTestUpsertBulk {
	return u.Update(func(s *TaskTestUpsert) {
		s.SetOutcome(v)
	})
}

// UpdateOutcome sets the "outcome" field to the value that was provided on create.
func (u *TaskTestUpsertBulk) UpdateOutcome() *TaskTestUpsertBulk {
	return u.Update(func(s *TaskTestUpsert) {
		s.UpdateOutcome()
	})
}

// SetVerificationNote sets the "verification_note" field.
func (u *TaskTestUpsertBulk) SetVerificationNote(v string) *TaskTestUpsertBulk {
	return u.Update(func(s *TaskTestUpsert) {
		s.SetVerificationNote(v)
	})
}

// UpdateVerificationNote sets the "verification_note" field to the value that was provided on create.
func (u *TaskTestUpsertBulk) UpdateVerificationNote() *TaskTestUpsertBulk {
	return u.Update(func(s *TaskTestUpsert) {
		s.UpdateVerificationNote()
	})
}

// ClearVerificationNote clears the value of the "verification_note" field.
func (u *TaskTestUpsertBulk) ClearVerificationNote() *TaskTestUpsertBulk {
	return u.Update(func(s *TaskTestUpsert) {
		s.ClearVerificationNote()
	})
}

// Exec executes the query.
func (u *TaskTestUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TaskTestCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskTestCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskTestUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
