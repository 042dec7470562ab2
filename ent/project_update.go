// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ratchet-works/ratchet/ent/epic"
	"github.com/ratchet-works/ratchet/ent/predicate"
	"github.com/ratchet-works/ratchet/ent/project"
	"github.com/ratchet-works/ratchet/ent/session"
	"github.com/ratchet-works/ratchet/pkg/models"
)

// ProjectUpdate is the builder for updating Project entities.
type ProjectUpdate struct {
	config
	hooks    []Hook
	mutation *ProjectMutation
}

// Where appends a list predicates to the ProjectUpdate builder.
func (_u *ProjectUpdate) Where(ps ...predicate.Project) *ProjectUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ProjectUpdate) SetName(v string) *ProjectUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableName(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetWorkspace sets the "workspace" field.
func (_u *ProjectUpdate) SetWorkspace(v string) *ProjectUpdate {
	_u.mutation.SetWorkspace(v)
	return _u
}

// SetNillableWorkspace sets the "workspace" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableWorkspace(v *string) *ProjectUpdate {
	if v != nil {
		_u.SetWorkspace(*v)
	}
	return _u
}

// SetSandboxPolicy sets the "sandbox_policy" field.
func (_u *ProjectUpdate) SetSandboxPolicy(v models.SandboxPolicy) *ProjectUpdate {
	_u.mutation.SetSandboxPolicy(v)
	return _u
}

// SetNillableSandboxPolicy sets the "sandbox_policy" field if the given value is not nil.
func (_u *ProjectUpdate) SetNillableSandboxPolicy(v *models.SandboxPolicy) *ProjectUpdate {
	if v != nil {
		_u.SetSandboxPolicy(*v)
	}
	return _u
}

// SetPromptVersions sets the "prompt_versions" field.
func (_u *ProjectUpdate) SetPromptVersions(v map[string]string) *ProjectUpdate {
	_u.mutation.SetPromptVersions(v)
	return _u
}

// ClearPromptVersions clears the value of the "prompt_versions" field.
func (_u *ProjectUpdate) ClearPromptVersions() *ProjectUpdate {
	_u.mutation.ClearPromptVersions()
	return _u
}

// AddEpicIDs adds the "epics" edge to the Epic entity by IDs.
func (_u *ProjectUpdate) AddEpicIDs(ids ...string) *ProjectUpdate {
	_u.mutation.AddEpicIDs(ids...)
	return _u
}

// AddEpics adds the "epics" edges to the Epic entity.
func (_u *ProjectUpdate) AddEpics(v ...*Epic) *ProjectUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEpicIDs(ids...)
}

// AddSessionIDs adds the "sessions" edge to the Session entity by IDs.
func (_u *ProjectUpdate) AddSessionIDs(ids ...string) *ProjectUpdate {
	_u.mutation.AddSessionIDs(ids...)
	return _u
}

// AddSessions adds the "sessions" edges to the Session entity.
func (_u *ProjectUpdate) AddSessions(v ...*Session) *ProjectUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSessionIDs(ids...)
}

// Mutation returns the ProjectMutation object of the builder.
func (_u *ProjectUpdate) Mutation() *ProjectMutation {
	return _u.mutation
}

// ClearEpics clears all "epics" edges to the Epic entity.
func (_u *ProjectUpdate) ClearEpics() *ProjectUpdate {
	_u.mutation.ClearEpics()
	return _u
}

// RemoveEpicIDs removes the "epics" edge to Epic entities by IDs.
func (_u *ProjectUpdate) RemoveEpicIDs(ids ...string) *ProjectUpdate {
	_u.mutation.RemoveEpicIDs(ids...)
	return _u
}

// RemoveEpics removes "epics" edges to Epic entities.
func (_u *ProjectUpdate) RemoveEpics(v ...*Epic) *ProjectUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEpicIDs(ids...)
}

// ClearSessions clears all "sessions" edges to the Session entity.
func (_u *ProjectUpdate) ClearSessions() *ProjectUpdate {
	_u.mutation.ClearSessions()
	return _u
}

// RemoveSessionIDs removes the "sessions" edge to Session entities by IDs.
func (_u *ProjectUpdate) RemoveSessionIDs(ids ...string) *ProjectUpdate {
	_u.mutation.RemoveSessionIDs(ids...)
	return _u
}

// RemoveSessions removes "sessions" edges to Session entities.
func (_u *ProjectUpdate) RemoveSessions(v ...*Session) *ProjectUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSessionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProjectUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProjectUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ProjectUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(project.Table, project.Columns, sqlgraph.NewFieldSpec(project.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(project.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Workspace(); ok {
		_spec.SetField(project.FieldWorkspace, field.TypeString, value)
	}
	if value, ok := _u.mutation.SandboxPolicy(); ok {
		_spec.SetField(project.FieldSandboxPolicy, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.PromptVersions(); ok {
		_spec.SetField(project.FieldPromptVersions, field.TypeJSON, value)
	}
	if _u.mutation.PromptVersionsCleared() {
		_spec.ClearField(project.FieldPromptVersions, field.TypeJSON)
	}
	if _u.mutation.EpicsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.EpicsTable,
			Columns: []string{project.EpicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(epic.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEpicsIDs(); len(nodes) > 0 && !_u.mutation.EpicsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.EpicsTable,
			Columns: []string{project.EpicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(epic.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EpicsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.EpicsTable,
			Columns: []string{project.EpicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(epic.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.SessionsTable,
			Columns: []string{project.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSessionsIDs(); len(nodes) > 0 && !_u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.SessionsTable,
			Columns: []string{project.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.SessionsTable,
			Columns: []string{project.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{project.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProjectUpdateOne is the builder for updating a single Project entity.
type ProjectUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProjectMutation
}

// SetName sets the "name" field.
func (_u *ProjectUpdateOne) SetName(v string) *ProjectUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableName(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetWorkspace sets the "workspace" field.
func (_u *ProjectUpdateOne) SetWorkspace(v string) *ProjectUpdateOne {
	_u.mutation.SetWorkspace(v)
	return _u
}

// SetNillableWorkspace sets the "workspace" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableWorkspace(v *string) *ProjectUpdateOne {
	if v != nil {
		_u.SetWorkspace(*v)
	}
	return _u
}

// SetSandboxPolicy sets the "sandbox_policy" field.
func (_u *ProjectUpdateOne) SetSandboxPolicy(v models.SandboxPolicy) *ProjectUpdateOne {
	_u.mutation.SetSandboxPolicy(v)
	return _u
}

// SetNillableSandboxPolicy sets the "sandbox_policy" field if the given value is not nil.
func (_u *ProjectUpdateOne) SetNillableSandboxPolicy(v *models.SandboxPolicy) *ProjectUpdateOne {
	if v != nil {
		_u.SetSandboxPolicy(*v)
	}
	return _u
}

// SetPromptVersions sets the "prompt_versions" field.
func (_u *ProjectUpdateOne) SetPromptVersions(v map[string]string) *ProjectUpdateOne {
	_u.mutation.SetPromptVersions(v)
	return _u
}

// ClearPromptVersions clears the value of the "prompt_versions" field.
func (_u *ProjectUpdateOne) ClearPromptVersions() *ProjectUpdateOne {
	_u.mutation.ClearPromptVersions()
	return _u
}

// AddEpicIDs adds the "epics" edge to the Epic entity by IDs.
func (_u *ProjectUpdateOne) AddEpicIDs(ids ...string) *ProjectUpdateOne {
	_u.mutation.AddEpicIDs(ids...)
	return _u
}

// AddEpics adds the "epics" edges to the Epic entity.
func (_u *ProjectUpdateOne) AddEpics(v ...*Epic) *ProjectUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEpicIDs(ids...)
}

// AddSessionIDs adds the "sessions" edge to the Session entity by IDs.
func (_u *ProjectUpdateOne) AddSessionIDs(ids ...string) *ProjectUpdateOne {
	_u.mutation.AddSessionIDs(ids...)
	return _u
}

// AddSessions adds the "sessions" edges to the Session entity.
func (_u *ProjectUpdateOne) AddSessions(v ...*Session) *ProjectUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSessionIDs(ids...)
}

// Mutation returns the ProjectMutation object of the builder.
func (_u *ProjectUpdateOne) Mutation() *ProjectMutation {
	return _u.mutation
}

// ClearEpics clears all "epics" edges to the Epic entity.
func (_u *ProjectUpdateOne) ClearEpics() *ProjectUpdateOne {
	_u.mutation.ClearEpics()
	return _u
}

// RemoveEpicIDs removes the "epics" edge to Epic entities by IDs.
func (_u *ProjectUpdateOne) RemoveEpicIDs(ids ...string) *ProjectUpdateOne {
	_u.mutation.RemoveEpicIDs(ids...)
	return _u
}

// RemoveEpics removes "epics" edges to Epic entities.
func (_u *ProjectUpdateOne) RemoveEpics(v ...*Epic) *ProjectUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEpicIDs(ids...)
}

// ClearSessions clears all "sessions" edges to the Session entity.
func (_u *ProjectUpdateOne) ClearSessions() *ProjectUpdateOne {
	_u.mutation.ClearSessions()
	return _u
}

// RemoveSessionIDs removes the "sessions" edge to Session entities by IDs.
func (_u *ProjectUpdateOne) RemoveSessionIDs(ids ...string) *ProjectUpdateOne {
	_u.mutation.RemoveSessionIDs(ids...)
	return _u
}

// RemoveSessions removes "sessions" edges to Session entities.
func (_u *ProjectUpdateOne) RemoveSessions(v ...*Session) *ProjectUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSessionIDs(ids...)
}

// Where appends a list predicates to the ProjectUpdate builder.
func (_u *ProjectUpdateOne) Where(ps ...predicate.Project) *ProjectUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProjectUpdateOne) Select(field string, fields ...string) *ProjectUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Project entity.
func (_u *ProjectUpdateOne) Save(ctx context.Context) (*Project, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProjectUpdateOne) SaveX(ctx context.Context) *Project {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProjectUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProjectUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ProjectUpdateOne) sqlSave(ctx context.Context) (_node *Project, err error) {
	_spec := sqlgraph.NewUpdateSpec(project.Table, project.Columns, sqlgraph.NewFieldSpec(project.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Project.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, project.FieldID)
		for _, f := range fields {
			if !project.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != project.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(project.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Workspace(); ok {
		_spec.SetField(project.FieldWorkspace, field.TypeString, value)
	}
	if value, ok := _u.mutation.SandboxPolicy(); ok {
		_spec.SetField(project.FieldSandboxPolicy, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.PromptVersions(); ok {
		_spec.SetField(project.FieldPromptVersions, field.TypeJSON, value)
	}
	if _u.mutation.PromptVersionsCleared() {
		_spec.ClearField(project.FieldPromptVersions, field.TypeJSON)
	}
	if _u.mutation.EpicsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.EpicsTable,
			Columns: []string{project.EpicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(epic.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEpicsIDs(); len(nodes) > 0 && !_u.mutation.EpicsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.EpicsTable,
			Columns: []string{project.EpicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(epic.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EpicsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.EpicsTable,
			Columns: []string{project.EpicsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(epic.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.SessionsTable,
			Columns: []string{project.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSessionsIDs(); len(nodes) > 0 && !_u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.SessionsTable,
			Columns: []string{project.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.SessionsTable,
			Columns: []string{project.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Project{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{project.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
