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
	"github.com/ratchet-works/ratchet/ent/epic"
	"github.com/ratchet-works/ratchet/ent/project"
	"github.com/ratchet-works/ratchet/ent/task"
)

// EpicCreate is the builder for creating a Epic entity.
type EpicCreate struct {
	config
	mutation *EpicMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetProjectID sets the "project_id" field.
func (_c *EpicCreate) SetProjectID(v string) *EpicCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetOrdinal sets the "ordinal" field.
func (_c *EpicCreate) SetOrdinal(v int) *EpicCreate {
	_c.mutation.SetOrdinal(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *EpicCreate) SetTitle(v string) *EpicCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *EpicCreate) SetDescription(v string) *EpicCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *EpicCreate) SetNillableDescription(v *string) *EpicCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *EpicCreate) SetStatus(v epic.Status) *EpicCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *EpicCreate) SetNillableStatus(v *epic.Status) *EpicCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EpicCreate) SetCreatedAt(v time.Time) *EpicCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EpicCreate) SetNillableCreatedAt(v *time.Time) *EpicCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EpicCreate) SetID(v string) *EpicCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *EpicCreate) SetProject(v *Project) *EpicCreate {
	return _c.SetProjectID(v.ID)
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_c *EpicCreate) AddTaskIDs(ids ...string) *EpicCreate {
	_c.mutation.AddTaskIDs(ids...)
	return _c
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_c *EpicCreate) AddTasks(v ...*Task) *EpicCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTaskIDs(ids...)
}

// Mutation returns the EpicMutation object of the builder.
func (_c *EpicCreate) Mutation() *EpicMutation {
	return _c.mutation
}

// Save creates the Epic in the database.
func (_c *EpicCreate) Save(ctx context.Context) (*Epic, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EpicCreate) SaveX(ctx context.Context) *Epic {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EpicCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EpicCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EpicCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := epic.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := epic.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EpicCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "Epic.project_id"`)}
	}
	if _, ok := _c.mutation.Ordinal(); !ok {
		return &ValidationError{Name: "ordinal", err: errors.New(`ent: missing required field "Epic.ordinal"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Epic.title"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Epic.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := epic.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Epic.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Epic.created_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "Epic.project"`)}
	}
	return nil
}

func (_c *EpicCreate) sqlSave(ctx context.Context) (*Epic, error) {
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
			return nil, fmt.Errorf("unexpected Epic.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EpicCreate) createSpec() (*Epic, *sqlgraph.CreateSpec) {
	var (
		_node = &Epic{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(epic.Table, sqlgraph.NewFieldSpec(epic.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Ordinal(); ok {
		_spec.SetField(epic.FieldOrdinal, field.TypeInt, value)
		_node.Ordinal = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(epic.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(epic.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(epic.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(epic.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   epic.ProjectTable,
			Columns: []string{epic.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProjectID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   epic.TasksTable,
			Columns: []string{epic.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Epic.Create().
//		SetProjectID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EpicUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *EpicCreate) OnConflict(opts ...sql.ConflictOption) *EpicUpsertOne {
	_c.conflict = opts
	return &EpicUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Epic.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EpicCreate) OnConflictColumns(columns ...string) *EpicUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EpicUpsertOne{
		create: _c,
	}
}

type (
	// EpicUpsertOne is the builder for "upsert"-ing
	//  one Epic node.
	EpicUpsertOne struct {
		create *EpicCreate
	}

	// EpicUpsert is the "OnConflict" setter.
	EpicUpsert struct {
		*sql.UpdateSet
	}
)

// SetOrdinal sets the "ordinal" field.
func (u *EpicUpsert) SetOrdinal(v int) *EpicUpsert {
	u.Set(epic.FieldOrdinal, v)
	return u
}

// UpdateOrdinal sets the "ordinal" field to the value that was provided on create.
func (u *EpicUpsert) UpdateOrdinal() *EpicUpsert {
	u.SetExcluded(epic.FieldOrdinal)
	return u
}

// AddOrdinal adds v to the "ordinal" field.
func (u *EpicUpsert) AddOrdinal(v int) *EpicUpsert {
	u.Add(epic.FieldOrdinal, v)
	return u
}

// SetTitle sets the "title" field.
func (u *EpicUpsert) SetTitle(v string) *EpicUpsert {
	u.Set(epic.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *EpicUpsert) UpdateTitle() *EpicUpsert {
	u.SetExcluded(epic.FieldTitle)
	return u
}

// SetDescription sets the "description" field.
func (u *EpicUpsert) SetDescription(v string) *EpicUpsert {
	u.Set(epic.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *EpicUpsert) UpdateDescription() *EpicUpsert {
	u.SetExcluded(epic.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *EpicUpsert) ClearDescription() *EpicUpsert {
	u.SetNull(epic.FieldDescription)
	return u
}

// SetStatus sets the "status" field.
func (u *EpicUpsert) SetStatus(v epic.Status) *EpicUpsert {
	u.Set(epic.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *EpicUpsert) UpdateStatus() *EpicUpsert {
	u.SetExcluded(epic.FieldStatus)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Epic.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(epic.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EpicUpsertOne) UpdateNewValues() *EpicUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(epic.FieldID)
		}
		if _, exists := u.create.mutation.ProjectID(); exists {
			s.SetIgnore(epic.FieldProjectID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(epic.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Epic.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EpicUpsertOne) Ignore() *EpicUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EpicUpsertOne) DoNothing() *EpicUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EpicCreate.OnConflict
// documentation for more info.
func (u *EpicUpsertOne) Update(set func(*EpicUpsert)) *EpicUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EpicUpsert{UpdateSet: update})
	}))
	return u
}

// SetOrdinal sets the "ordinal" field.
func (u *EpicUpsertOne) SetOrdinal(v int) *EpicUpsertOne {
	return u.Update(func(s *EpicUpsert) {
		s.SetOrdinal(v)
	})
}

// AddOrdinal adds v to the "ordinal" field.
func (u *EpicUpsertOne) AddOrdinal(v int) *EpicUpsertOne {
	return u.Update(func(s *EpicUpsert) {
		s.AddOrdinal(v)
	})
}

// UpdateOrdinal sets the "ordinal" field to the value that was provided on create.
func (u *EpicUpsertOne) UpdateOrdinal() *EpicUpsertOne {
	return u.Update(func(s *EpicUpsert) {
		s.UpdateOrdinal()
	})
}

// SetTitle sets the "title" field.
func (u *EpicUpsertOne) SetTitle(v string) *EpicUpsertOne {
	return u.Update(func(s *EpicUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *EpicUpsertOne) UpdateTitle() *EpicUpsertOne {
	return u.Update(func(s *EpicUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *EpicUpsertOne) SetDescription(v string) *EpicUpsertOne {
	return u.Update(func(s *EpicUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *EpicUpsertOne) UpdateDescription() *EpicUpsertOne {
	return u.Update(func(s *EpicUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *EpicUpsertOne) ClearDescription() *EpicUpsertOne {
	return u.Update(func(s *EpicUpsert) {
		s.ClearDescription()
	})
}

// SetStatus sets the "status" field.
func (u *EpicUpsertOne) SetStatus(v epic.Status) *EpicUpsertOne {
	return u.Update(func(s *EpicUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *EpicUpsertOne) UpdateStatus() *EpicUpsertOne {
	return u.Update(func(s *EpicUpsert) {
		s.UpdateStatus()
	})
}

// Exec executes the query.
func (u *EpicUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EpicCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EpicUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EpicUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: EpicUpsertOne.ID is not supported by MySQL driver. Use EpicUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EpicUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EpicCreateBulk is the builder for creating many Epic entities in bulk.
type EpicCreateBulk struct {
	config
	err      error
	builders []*EpicCreate
	conflict []sql.ConflictOption
}

// Save creates the Epic entities in the database.
func (_c *EpicCreateBulk) Save(ctx context.Context) ([]*Epic, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Epic, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EpicMutation)
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
func (_c *EpicCreateBulk) SaveX(ctx context.Context) []*Epic {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EpicCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EpicCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Epic.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EpicUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *EpicCreateBulk) OnConflict(opts ...sql.ConflictOption) *EpicUpsertBulk {
	_c.conflict = opts
	return &EpicUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Epic.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EpicCreateBulk) OnConflictColumns(columns ...string) *EpicUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EpicUpsertBulk{
		create: _c,
	}
}

// EpicUpsertBulk is the builder for "upsert"-ing
// a bulk of Epic nodes.
type EpicUpsertBulk struct {
	create *EpicCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Epic.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(epic.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EpicUpsertBulk) UpdateNewValues() *EpicUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(epic.FieldID)
			}
			if _, exists := b.mutation.ProjectID(); exists {
				s.SetIgnore(epic.FieldProjectID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(epic.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Epic.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EpicUpsertBulk) Ignore() *EpicUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EpicUpsertBulk) DoNothing() *EpicUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EpicCreateBulk.OnConflict
// documentation for more info.
func (u *EpicUpsertBulk) Update(set func(*EpicUpsert)) *EpicUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EpicUpsert{UpdateSet: update})
	}))
	return u
}

// SetOrdinal sets the "ordinal" field.
func (u *EpicUpsertBulk) SetOrdinal(v int) *EpicUpsertBulk {
	return u.Update(func(s *EpicUpsert) {
		s.SetOrdinal(v)
	})
}

// AddOrdinal adds v to the "ordinal" field.
func (u *EpicUpsertBulk) AddOrdinal(v int) *EpicUpsertBulk {
	return u.Update(func(s *EpicUpsert) {
		s.AddOrdinal(v)
	})
}

// UpdateOrdinal sets the "ordinal" field to the value that was provided on create.
func (u *EpicUpsertBulk) UpdateOrdinal() *EpicUpsertBulk {
	return u.Update(func(s *EpicUpsert) {
		s.UpdateOrdinal()
	})
}

// SetTitle sets the "title" field.
func (u *EpicUpsertBulk) SetTitle(v string) *EpicUpsertBulk {
	return u.Update(func(s *EpicUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *EpicUpsertBulk) UpdateTitle() *EpicUpsertBulk {
	return u.Update(func(s *EpicUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *EpicUpsertBulk) SetDescription(v string) *EpicUpsertBulk {
	return u.Update(func(s *EpicUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *EpicUpsertBulk) UpdateDescription() *EpicUpsertBulk {
	return u.Update(func(s *EpicUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *EpicUpsertBulk) ClearDescription() *EpicUpsertBulk {
	return u.Update(func(s *EpicUpsert) {
		s.ClearDescription()
	})
}

// SetStatus sets the "status" field.
func (u *EpicUpsertBulk) SetStatus(v epic.Status) *EpicUpsertBulk {
	return u.Update(func(s *EpicUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *EpicUpsertBulk) UpdateStatus() *EpicUpsertBulk {
	return u.Update(func(s *EpicUpsert) {
		s.UpdateStatus()
	})
}

// Exec executes the query.
func (u *EpicUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EpicCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EpicCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EpicUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
