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
	"github.com/ratchet-works/ratchet/ent/project"
	"github.com/ratchet-works/ratchet/ent/qualitycheck"
	"github.com/ratchet-works/ratchet/ent/session"
)

// SessionCreate is the builder for creating a Session entity.
type SessionCreate struct {
	config
	mutation *SessionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetProjectID sets the "project_id" field.
func (_c *SessionCreate) SetProjectID(v string) *SessionCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetSessionNumber sets the "session_number" field.
func (_c *SessionCreate) SetSessionNumber(v int) *SessionCreate {
	_c.mutation.SetSessionNumber(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *SessionCreate) SetKind(v session.Kind) *SessionCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *SessionCreate) SetStatus(v session.Status) *SessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SessionCreate) SetNillableStatus(v *session.Status) *SessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetModel sets the "model" field.
func (_c *SessionCreate) SetModel(v string) *SessionCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetPromptVersion sets the "prompt_version" field.
func (_c *SessionCreate) SetPromptVersion(v string) *SessionCreate {
	_c.mutation.SetPromptVersion(v)
	return _c
}

// SetNillablePromptVersion sets the "prompt_version" field if the given value is not nil.
func (_c *SessionCreate) SetNillablePromptVersion(v *string) *SessionCreate {
	if v != nil {
		_c.SetPromptVersion(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *SessionCreate) SetStartedAt(v time.Time) *SessionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableStartedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetEndedAt sets the "ended_at" field.
func (_c *SessionCreate) SetEndedAt(v time.Time) *SessionCreate {
	_c.mutation.SetEndedAt(v)
	return _c
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableEndedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetEndedAt(*v)
	}
	return _c
}

// SetToolUseCount sets the "tool_use_count" field.
func (_c *SessionCreate) SetToolUseCount(v int) *SessionCreate {
	_c.mutation.SetToolUseCount(v)
	return _c
}

// SetNillableToolUseCount sets the "tool_use_count" field if the given value is not nil.
func (_c *SessionCreate) SetNillableToolUseCount(v *int) *SessionCreate {
	if v != nil {
		_c.SetToolUseCount(*v)
	}
	return _c
}

// SetErrorCount sets the "error_count" field.
func (_c *SessionCreate) SetErrorCount(v int) *SessionCreate {
	_c.mutation.SetErrorCount(v)
	return _c
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_c *SessionCreate) SetNillableErrorCount(v *int) *SessionCreate {
	if v != nil {
		_c.SetErrorCount(*v)
	}
	return _c
}

// SetTokensInput sets the "tokens_input" field.
func (_c *SessionCreate) SetTokensInput(v int64) *SessionCreate {
	_c.mutation.SetTokensInput(v)
	return _c
}

// SetNillableTokensInput sets the "tokens_input" field if the given value is not nil.
func (_c *SessionCreate) SetNillableTokensInput(v *int64) *SessionCreate {
	if v != nil {
		_c.SetTokensInput(*v)
	}
	return _c
}

// SetTokensOutput sets the "tokens_output" field.
func (_c *SessionCreate) SetTokensOutput(v int64) *SessionCreate {
	_c.mutation.SetTokensOutput(v)
	return _c
}

// SetNillableTokensOutput sets the "tokens_output" field if the given value is not nil.
func (_c *SessionCreate) SetNillableTokensOutput(v *int64) *SessionCreate {
	if v != nil {
		_c.SetTokensOutput(*v)
	}
	return _c
}

// SetTokensCacheCreation sets the "tokens_cache_creation" field.
func (_c *SessionCreate) SetTokensCacheCreation(v int64) *SessionCreate {
	_c.mutation.SetTokensCacheCreation(v)
	return _c
}

// SetNillableTokensCacheCreation sets the "tokens_cache_creation" field if the given value is not nil.
func (_c *SessionCreate) SetNillableTokensCacheCreation(v *int64) *SessionCreate {
	if v != nil {
		_c.SetTokensCacheCreation(*v)
	}
	return _c
}

// SetTokensCacheRead sets the "tokens_cache_read" field.
func (_c *SessionCreate) SetTokensCacheRead(v int64) *SessionCreate {
	_c.mutation.SetTokensCacheRead(v)
	return _c
}

// SetNillableTokensCacheRead sets the "tokens_cache_read" field if the given value is not nil.
func (_c *SessionCreate) SetNillableTokensCacheRead(v *int64) *SessionCreate {
	if v != nil {
		_c.SetTokensCacheRead(*v)
	}
	return _c
}

// SetMetrics sets the "metrics" field.
func (_c *SessionCreate) SetMetrics(v map[string]interface{}) *SessionCreate {
	_c.mutation.SetMetrics(v)
	return _c
}

// SetFailureReason sets the "failure_reason" field.
func (_c *SessionCreate) SetFailureReason(v string) *SessionCreate {
	_c.mutation.SetFailureReason(v)
	return _c
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_c *SessionCreate) SetNillableFailureReason(v *string) *SessionCreate {
	if v != nil {
		_c.SetFailureReason(*v)
	}
	return _c
}

// SetLastActiveAt sets the "last_active_at" field.
func (_c *SessionCreate) SetLastActiveAt(v time.Time) *SessionCreate {
	_c.mutation.SetLastActiveAt(v)
	return _c
}

// SetNillableLastActiveAt sets the "last_active_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableLastActiveAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetLastActiveAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SessionCreate) SetID(v string) *SessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *SessionCreate) SetProject(v *Project) *SessionCreate {
	return _c.SetProjectID(v.ID)
}

// AddQualityCheckIDs adds the "quality_checks" edge to the QualityCheck entity by IDs.
func (_c *SessionCreate) AddQualityCheckIDs(ids ...string) *SessionCreate {
	_c.mutation.AddQualityCheckIDs(ids...)
	return _c
}

// AddQualityChecks adds the "quality_checks" edges to the QualityCheck entity.
func (_c *SessionCreate) AddQualityChecks(v ...*QualityCheck) *SessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddQualityCheckIDs(ids...)
}

// Mutation returns the SessionMutation object of the builder.
func (_c *SessionCreate) Mutation() *SessionMutation {
	return _c.mutation
}

// Save creates the Session in the database.
func (_c *SessionCreate) Save(ctx context.Context) (*Session, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionCreate) SaveX(ctx context.Context) *Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := session.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := session.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.ToolUseCount(); !ok {
		v := session.DefaultToolUseCount
		_c.mutation.SetToolUseCount(v)
	}
	if _, ok := _c.mutation.ErrorCount(); !ok {
		v := session.DefaultErrorCount
		_c.mutation.SetErrorCount(v)
	}
	if _, ok := _c.mutation.TokensInput(); !ok {
		v := session.DefaultTokensInput
		_c.mutation.SetTokensInput(v)
	}
	if _, ok := _c.mutation.TokensOutput(); !ok {
		v := session.DefaultTokensOutput
		_c.mutation.SetTokensOutput(v)
	}
	if _, ok := _c.mutation.TokensCacheCreation(); !ok {
		v := session.DefaultTokensCacheCreation
		_c.mutation.SetTokensCacheCreation(v)
	}
	if _, ok := _c.mutation.TokensCacheRead(); !ok {
		v := session.DefaultTokensCacheRead
		_c.mutation.SetTokensCacheRead(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "Session.project_id"`)}
	}
	if _, ok := _c.mutation.SessionNumber(); !ok {
		return &ValidationError{Name: "session_number", err: errors.New(`ent: missing required field "Session.session_number"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "Session.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := session.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Session.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Session.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := session.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Session.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "Session.model"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "Session.started_at"`)}
	}
	if _, ok := _c.mutation.ToolUseCount(); !ok {
		return &ValidationError{Name: "tool_use_count", err: errors.New(`ent: missing required field "Session.tool_use_count"`)}
	}
	if _, ok := _c.mutation.ErrorCount(); !ok {
		return &ValidationError{Name: "error_count", err: errors.New(`ent: missing required field "Session.error_count"`)}
	}
	if _, ok := _c.mutation.TokensInput(); !ok {
		return &ValidationError{Name: "tokens_input", err: errors.New(`ent: missing required field "Session.tokens_input"`)}
	}
	if _, ok := _c.mutation.TokensOutput(); !ok {
		return &ValidationError{Name: "tokens_output", err: errors.New(`ent: missing required field "Session.tokens_output"`)}
	}
	if _, ok := _c.mutation.TokensCacheCreation(); !ok {
		return &ValidationError{Name: "tokens_cache_creation", err: errors.New(`ent: missing required field "Session.tokens_cache_creation"`)}
	}
	if _, ok := _c.mutation.TokensCacheRead(); !ok {
		return &ValidationError{Name: "tokens_cache_read", err: errors.New(`ent: missing required field "Session.tokens_cache_read"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "Session.project"`)}
	}
	return nil
}

func (_c *SessionCreate) sqlSave(ctx context.Context) (*Session, error) {
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
			return nil, fmt.Errorf("unexpected Session.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SessionCreate) createSpec() (*Session, *sqlgraph.CreateSpec) {
	var (
		_node = &Session{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(session.Table, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SessionNumber(); ok {
		_spec.SetField(session.FieldSessionNumber, field.TypeInt, value)
		_node.SessionNumber = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(session.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(session.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(session.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.PromptVersion(); ok {
		_spec.SetField(session.FieldPromptVersion, field.TypeString, value)
		_node.PromptVersion = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(session.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.EndedAt(); ok {
		_spec.SetField(session.FieldEndedAt, field.TypeTime, value)
		_node.EndedAt = &value
	}
	if value, ok := _c.mutation.ToolUseCount(); ok {
		_spec.SetField(session.FieldToolUseCount, field.TypeInt, value)
		_node.ToolUseCount = value
	}
	if value, ok := _c.mutation.ErrorCount(); ok {
		_spec.SetField(session.FieldErrorCount, field.TypeInt, value)
		_node.ErrorCount = value
	}
	if value, ok := _c.mutation.TokensInput(); ok {
		_spec.SetField(session.FieldTokensInput, field.TypeInt64, value)
		_node.TokensInput = value
	}
	if value, ok := _c.mutation.TokensOutput(); ok {
		_spec.SetField(session.FieldTokensOutput, field.TypeInt64, value)
		_node.TokensOutput = value
	}
	if value, ok := _c.mutation.TokensCacheCreation(); ok {
		_spec.SetField(session.FieldTokensCacheCreation, field.TypeInt64, value)
		_node.TokensCacheCreation = value
	}
	if value, ok := _c.mutation.TokensCacheRead(); ok {
		_spec.SetField(session.FieldTokensCacheRead, field.TypeInt64, value)
		_node.TokensCacheRead = value
	}
	if value, ok := _c.mutation.Metrics(); ok {
		_spec.SetField(session.FieldMetrics, field.TypeJSON, value)
		_node.Metrics = value
	}
	if value, ok := _c.mutation.FailureReason(); ok {
		_spec.SetField(session.FieldFailureReason, field.TypeString, value)
		_node.FailureReason = &value
	}
	if value, ok := _c.mutation.LastActiveAt(); ok {
		_spec.SetField(session.FieldLastActiveAt, field.TypeTime, value)
		_node.LastActiveAt = &value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   session.ProjectTable,
			Columns: []string{session.ProjectColumn},
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
	if nodes := _c.mutation.QualityChecksIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Session.Create().
//		SetProjectID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SessionUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *SessionCreate) OnConflict(opts ...sql.ConflictOption) *SessionUpsertOne {
	_c.conflict = opts
	return &SessionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Session.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SessionCreate) OnConflictColumns(columns ...string) *SessionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SessionUpsertOne{
		create: _c,
	}
}

type (
	// SessionUpsertOne is the builder for "upsert"-ing
	//  one Session node.
	SessionUpsertOne struct {
		create *SessionCreate
	}

	// SessionUpsert is the "OnConflict" setter.
	SessionUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *SessionUpsert) SetStatus(v session.Status) *SessionUpsert {
	u.Set(session.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SessionUpsert) UpdateStatus() *SessionUpsert {
	u.SetExcluded(session.FieldStatus)
	return u
}

// SetModel sets the "model" field.
func (u *SessionUpsert) SetModel(v string) *SessionUpsert {
	u.Set(session.FieldModel, v)
	return u
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *SessionUpsert) UpdateModel() *SessionUpsert {
	u.SetExcluded(session.FieldModel)
	return u
}

// SetPromptVersion sets the "prompt_version" field.
func (u *SessionUpsert) SetPromptVersion(v string) *SessionUpsert {
	u.Set(session.FieldPromptVersion, v)
	return u
}

// UpdatePromptVersion sets the "prompt_version" field to the value that was provided on create.
func (u *SessionUpsert) UpdatePromptVersion() *SessionUpsert {
	u.SetExcluded(session.FieldPromptVersion)
	return u
}

// ClearPromptVersion clears the value of the "prompt_version" field.
func (u *SessionUpsert) ClearPromptVersion() *SessionUpsert {
	u.SetNull(session.FieldPromptVersion)
	return u
}

// SetEndedAt sets the "ended_at" field.
func (u *SessionUpsert) SetEndedAt(v time.Time) *SessionUpsert {
	u.Set(session.FieldEndedAt, v)
	return u
}

// UpdateEndedAt sets the "ended_at" field to the value that was provided on create.
func (u *SessionUpsert) UpdateEndedAt() *SessionUpsert {
	u.SetExcluded(session.FieldEndedAt)
	return u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (u *SessionUpsert) ClearEndedAt() *SessionUpsert {
	u.SetNull(session.FieldEndedAt)
	return u
}

// SetToolUseCount sets the "tool_use_count" field.
func (u *SessionUpsert) SetToolUseCount(v int) *SessionUpsert {
	u.Set(session.FieldToolUseCount, v)
	return u
}

// UpdateToolUseCount sets the "tool_use_count" field to the value that was provided on create.
func (u *SessionUpsert) UpdateToolUseCount() *SessionUpsert {
	u.SetExcluded(session.FieldToolUseCount)
	return u
}

// AddToolUseCount adds v to the "tool_use_count" field.
func (u *SessionUpsert) AddToolUseCount(v int) *SessionUpsert {
	u.Add(session.FieldToolUseCount, v)
	return u
}

// SetErrorCount sets the "error_count" field.
func (u *SessionUpsert) SetErrorCount(v int) *SessionUpsert {
	u.Set(session.FieldErrorCount, v)
	return u
}

// UpdateErrorCount sets the "error_count" field to the value that was provided on create.
func (u *SessionUpsert) UpdateErrorCount() *SessionUpsert {
	u.SetExcluded(session.FieldErrorCount)
	return u
}

// AddErrorCount adds v to the "error_count" field.
func (u *SessionUpsert) AddErrorCount(v int) *SessionUpsert {
	u.Add(session.FieldErrorCount, v)
	return u
}

// SetTokensInput sets the "tokens_input" field.
func (u *SessionUpsert) SetTokensInput(v int64) *SessionUpsert {
	u.Set(session.FieldTokensInput, v)
	return u
}

// UpdateTokensInput sets the "tokens_input" field to the value that was provided on create.
func (u *SessionUpsert) UpdateTokensInput() *SessionUpsert {
	u.SetExcluded(session.FieldTokensInput)
	return u
}

// AddTokensInput adds v to the "tokens_input" field.
func (u *SessionUpsert) AddTokensInput(v int64) *SessionUpsert {
	u.Add(session.FieldTokensInput, v)
	return u
}

// SetTokensOutput sets the "tokens_output" field.
func (u *SessionUpsert) SetTokensOutput(v int64) *SessionUpsert {
	u.Set(session.FieldTokensOutput, v)
	return u
}

// UpdateTokensOutput sets the "tokens_output" field to the value that was provided on create.
func (u *SessionUpsert) UpdateTokensOutput() *SessionUpsert {
	u.SetExcluded(session.FieldTokensOutput)
	return u
}

// AddTokensOutput adds v to the "tokens_output" field.
func (u *SessionUpsert) AddTokensOutput(v int64) *SessionUpsert {
	u.Add(session.FieldTokensOutput, v)
	return u
}

// SetTokensCacheCreation sets the "tokens_cache_creation" field.
func (u *SessionUpsert) SetTokensCacheCreation(v int64) *SessionUpsert {
	u.Set(session.FieldTokensCacheCreation, v)
	return u
}

// UpdateTokensCacheCreation sets the "tokens_cache_creation" field to the value that was provided on create.
func (u *SessionUpsert) UpdateTokensCacheCreation() *SessionUpsert {
	u.SetExcluded(session.FieldTokensCacheCreation)
	return u
}

// AddTokensCacheCreation adds v to the "tokens_cache_creation" field.
func (u *SessionUpsert) AddTokensCacheCreation(v int64) *SessionUpsert {
	u.Add(session.FieldTokensCacheCreation, v)
	return u
}

// SetTokensCacheRead sets the "tokens_cache_read" field.
func (u *SessionUpsert) SetTokensCacheRead(v int64) *SessionUpsert {
	u.Set(session.FieldTokensCacheRead, v)
	return u
}

// UpdateTokensCacheRead sets the "tokens_cache_read" field to the value that was provided on create.
func (u *SessionUpsert) UpdateTokensCacheRead() *SessionUpsert {
	u.SetExcluded(session.FieldTokensCacheRead)
	return u
}

// AddTokensCacheRead adds v to the "tokens_cache_read" field.
func (u *SessionUpsert) AddTokensCacheRead(v int64) *SessionUpsert {
	u.Add(session.FieldTokensCacheRead, v)
	return u
}

// SetMetrics sets the "metrics" field.
func (u *SessionUpsert) SetMetrics(v map[string]interface{}) *SessionUpsert {
	u.Set(session.FieldMetrics, v)
	return u
}

// UpdateMetrics sets the "metrics" field to the value that was provided on create.
func (u *SessionUpsert) UpdateMetrics() *SessionUpsert {
	u.SetExcluded(session.FieldMetrics)
	return u
}

// ClearMetrics clears the value of the "metrics" field.
func (u *SessionUpsert) ClearMetrics() *SessionUpsert {
	u.SetNull(session.FieldMetrics)
	return u
}

// SetFailureReason sets the "failure_reason" field.
func (u *SessionUpsert) SetFailureReason(v string) *SessionUpsert {
	u.Set(session.FieldFailureReason, v)
	return u
}

// UpdateFailureReason sets the "failure_reason" field to the value that was provided on create.
func (u *SessionUpsert) UpdateFailureReason() *SessionUpsert {
	u.SetExcluded(session.FieldFailureReason)
	return u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (u *SessionUpsert) ClearFailureReason() *SessionUpsert {
	u.SetNull(session.FieldFailureReason)
	return u
}

// SetLastActiveAt sets the "last_active_at" field.
func (u *SessionUpsert) SetLastActiveAt(v time.Time) *SessionUpsert {
	u.Set(session.FieldLastActiveAt, v)
	return u
}

// UpdateLastActiveAt sets the "last_active_at" field to the value that was provided on create.
func (u *SessionUpsert) UpdateLastActiveAt() *SessionUpsert {
	u.SetExcluded(session.FieldLastActiveAt)
	return u
}

// ClearLastActiveAt clears the value of the "last_active_at" field.
func (u *SessionUpsert) ClearLastActiveAt() *SessionUpsert {
	u.SetNull(session.FieldLastActiveAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Session.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(session.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SessionUpsertOne) UpdateNewValues() *SessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(session.FieldID)
		}
		if _, exists := u.create.mutation.ProjectID(); exists {
			s.SetIgnore(session.FieldProjectID)
		}
		if _, exists := u.create.mutation.SessionNumber(); exists {
			s.SetIgnore(session.FieldSessionNumber)
		}
		if _, exists := u.create.mutation.Kind(); exists {
			s.SetIgnore(session.FieldKind)
		}
		if _, exists := u.create.mutation.StartedAt(); exists {
			s.SetIgnore(session.FieldStartedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Session.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SessionUpsertOne) Ignore() *SessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SessionUpsertOne) DoNothing() *SessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SessionCreate.OnConflict
// documentation for more info.
func (u *SessionUpsertOne) Update(set func(*SessionUpsert)) *SessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *SessionUpsertOne) SetStatus(v session.Status) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateStatus() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateStatus()
	})
}

// SetModel sets the "model" field.
func (u *SessionUpsertOne) SetModel(v string) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateModel() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateModel()
	})
}

// SetPromptVersion sets the "prompt_version" field.
func (u *SessionUpsertOne) SetPromptVersion(v string) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetPromptVersion(v)
	})
}

// UpdatePromptVersion sets the "prompt_version" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdatePromptVersion() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdatePromptVersion()
	})
}

// ClearPromptVersion clears the value of the "prompt_version" field.
func (u *SessionUpsertOne) ClearPromptVersion() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearPromptVersion()
	})
}

// SetEndedAt sets the "ended_at" field.
func (u *SessionUpsertOne) SetEndedAt(v time.Time) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetEndedAt(v)
	})
}

// UpdateEndedAt sets the "ended_at" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateEndedAt() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateEndedAt()
	})
}

// ClearEndedAt clears the value of the "ended_at" field.
func (u *SessionUpsertOne) ClearEndedAt() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearEndedAt()
	})
}

// SetToolUseCount sets the "tool_use_count" field.
func (u *SessionUpsertOne) SetToolUseCount(v int) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetToolUseCount(v)
	})
}

// AddToolUseCount adds v to the "tool_use_count" field.
func (u *SessionUpsertOne) AddToolUseCount(v int) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.AddToolUseCount(v)
	})
}

// UpdateToolUseCount sets the "tool_use_count" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateToolUseCount() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateToolUseCount()
	})
}

// SetErrorCount sets the "error_count" field.
func (u *SessionUpsertOne) SetErrorCount(v int) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetErrorCount(v)
	})
}

// AddErrorCount adds v to the "error_count" field.
func (u *SessionUpsertOne) AddErrorCount(v int) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.AddErrorCount(v)
	})
}

// UpdateErrorCount sets the "error_count" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateErrorCount() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateErrorCount()
	})
}

// SetTokensInput sets the "tokens_input" field.
func (u *SessionUpsertOne) SetTokensInput(v int64) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetTokensInput(v)
	})
}

// AddTokensInput adds v to the "tokens_input" field.
func (u *SessionUpsertOne) AddTokensInput(v int64) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.AddTokensInput(v)
	})
}

// UpdateTokensInput sets the "tokens_input" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateTokensInput() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateTokensInput()
	})
}

// SetTokensOutput sets the "tokens_output" field.
func (u *SessionUpsertOne) SetTokensOutput(v int64) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetTokensOutput(v)
	})
}

// AddTokensOutput adds v to the "tokens_output" field.
func (u *SessionUpsertOne) AddTokensOutput(v int64) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.AddTokensOutput(v)
	})
}

// UpdateTokensOutput sets the "tokens_output" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateTokensOutput() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateTokensOutput()
	})
}

// SetTokensCacheCreation sets the "tokens_cache_creation" field.
func (u *SessionUpsertOne) SetTokensCacheCreation(v int64) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetTokensCacheCreation(v)
	})
}

// AddTokensCacheCreation adds v to the "tokens_cache_creation" field.
func (u *SessionUpsertOne) AddTokensCacheCreation(v int64) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.AddTokensCacheCreation(v)
	})
}

// UpdateTokensCacheCreation sets the "tokens_cache_creation" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateTokensCacheCreation() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateTokensCacheCreation()
	})
}

// SetTokensCacheRead sets the "tokens_cache_read" field.
func (u *SessionUpsertOne) SetTokensCacheRead(v int64) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetTokensCacheRead(v)
	})
}

// AddTokensCacheRead adds v to the "tokens_cache_read" field.
func (u *SessionUpsertOne) AddTokensCacheRead(v int64) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.AddTokensCacheRead(v)
	})
}

// UpdateTokensCacheRead sets the "tokens_cache_read" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateTokensCacheRead() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateTokensCacheRead()
	})
}

// SetMetrics sets the "metrics" field.
func (u *SessionUpsertOne) SetMetrics(v map[string]interface{}) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetMetrics(v)
	})
}

// UpdateMetrics sets the "metrics" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateMetrics() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateMetrics()
	})
}

// ClearMetrics clears the value of the "metrics" field.
func (u *SessionUpsertOne) ClearMetrics() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearMetrics()
	})
}

// SetFailureReason sets the "failure_reason" field.
func (u *SessionUpsertOne) SetFailureReason(v string) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetFailureReason(v)
	})
}

// UpdateFailureReason sets the "failure_reason" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateFailureReason() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateFailureReason()
	})
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (u *SessionUpsertOne) ClearFailureReason() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearFailureReason()
	})
}

// SetLastActiveAt sets the "last_active_at" field.
func (u *SessionUpsertOne) SetLastActiveAt(v time.Time) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetLastActiveAt(v)
	})
}

// UpdateLastActiveAt sets the "last_active_at" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateLastActiveAt() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateLastActiveAt()
	})
}

// ClearLastActiveAt clears the value of the "last_active_at" field.
func (u *SessionUpsertOne) ClearLastActiveAt() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearLastActiveAt()
	})
}

// Exec executes the query.
func (u *SessionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SessionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SessionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SessionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SessionUpsertOne.ID is not supported by MySQL driver. Use SessionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SessionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SessionCreateBulk is the builder for creating many Session entities in bulk.
type SessionCreateBulk struct {
	config
	err      error
	builders []*SessionCreate
	conflict []sql.ConflictOption
}

// Save creates the Session entities in the database.
func (_c *SessionCreateBulk) Save(ctx context.Context) ([]*Session, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Session, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionMutation)
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
func (_c *SessionCreateBulk) SaveX(ctx context.Context) []*Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Session.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SessionUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *SessionCreateBulk) OnConflict(opts ...sql.ConflictOption) *SessionUpsertBulk {
	_c.conflict = opts
	return &SessionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Session.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SessionCreateBulk) OnConflictColumns(columns ...string) *SessionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SessionUpsertBulk{
		create: _c,
	}
}

// SessionUpsertBulk is the builder for "upsert"-ing
// a bulk of Session nodes.
type SessionUpsertBulk struct {
	create *SessionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Session.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(session.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SessionUpsertBulk) UpdateNewValues() *SessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(session.FieldID)
			}
			if _, exists := b.mutation.ProjectID(); exists {
				s.SetIgnore(session.FieldProjectID)
			}
			if _, exists := b.mutation.SessionNumber(); exists {
				s.SetIgnore(session.FieldSessionNumber)
			}
			if _, exists := b.mutation.Kind(); exists {
				s.SetIgnore(session.FieldKind)
			}
			if _, exists := b.mutation.StartedAt(); exists {
				s.SetIgnore(session.FieldStartedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Session.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SessionUpsertBulk) Ignore() *SessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SessionUpsertBulk) DoNothing() *SessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SessionCreateBulk.OnConflict
// documentation for more info.
func (u *SessionUpsertBulk) Update(set func(*SessionUpsert)) *SessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *SessionUpsertBulk) SetStatus(v session.Status) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateStatus() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateStatus()
	})
}

// SetModel sets the "model" field.
func (u *SessionUpsertBulk) SetModel(v string) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateModel() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateModel()
	})
}

// SetPromptVersion sets the "prompt_version" field.
func (u *SessionUpsertBulk) SetPromptVersion(v string) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetPromptVersion(v)
	})
}

// UpdatePromptVersion sets the "prompt_version" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdatePromptVersion() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdatePromptVersion()
	})
}

// ClearPromptVersion clears the value of the "prompt_version" field.
func (u *SessionUpsertBulk) ClearPromptVersion() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearPromptVersion()
	})
}

// SetEndedAt sets the "ended_at" field.
func (u *SessionUpsertBulk) SetEndedAt(v time.Time) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetEndedAt(v)
	})
}

// UpdateEndedAt sets the "ended_at" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateEndedAt() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateEndedAt()
	})
}

// ClearEndedAt clears the value of the "ended_at" field.
func (u *SessionUpsertBulk) ClearEndedAt() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearEndedAt()
	})
}

// SetToolUseCount sets the "tool_use_count" field.
func (u *SessionUpsertBulk) SetToolUseCount(v int) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetToolUseCount(v)
	})
}

// AddToolUseCount adds v to the "tool_use_count" field.
func (u *SessionUpsertBulk) AddToolUseCount(v int) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.AddToolUseCount(v)
	})
}

// UpdateToolUseCount sets the "tool_use_count" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateToolUseCount() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateToolUseCount()
	})
}

// SetErrorCount sets the "error_count" field.
func (u *SessionUpsertBulk) SetErrorCount(v int) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetErrorCount(v)
	})
}

// AddErrorCount adds v to the "error_count" field.
func (u *SessionUpsertBulk) AddErrorCount(v int) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.AddErrorCount(v)
	})
}

// UpdateErrorCount sets the "error_count" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateErrorCount() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateErrorCount()
	})
}

// SetTokensInput sets the "tokens_input" field.
func (u *SessionUpsertBulk) SetTokensInput(v int64) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetTokensInput(v)
	})
}

// AddTokensInput adds v to the "tokens_input" field.
func (u *SessionUpsertBulk) AddTokensInput(v int64) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.AddTokensInput(v)
	})
}

// UpdateTokensInput sets the "tokens_input" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateTokensInput() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateTokensInput()
	})
}

// SetTokensOutput sets the "tokens_output" field.
func (u *SessionUpsertBulk) SetTokensOutput(v int64) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetTokensOutput(v)
	})
}

// AddTokensOutput adds v to the "tokens_output" field.
func (u *SessionUpsertBulk) AddTokensOutput(v int64) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.AddTokensOutput(v)
	})
}

// UpdateTokensOutput sets the "tokens_output" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateTokensOutput() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateTokensOutput()
	})
}

// SetTokensCacheCreation sets the "tokens_cache_creation" field.
func (u *SessionUpsertBulk) SetTokensCacheCreation(v int64) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetTokensCacheCreation(v)
	})
}

// AddTokensCacheCreation adds v to the "tokens_cache_creation" field.
func (u *SessionUpsertBulk) AddTokensCacheCreation(v int64) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.AddTokensCacheCreation(v)
	})
}

// UpdateTokensCacheCreation sets the "tokens_cache_creation" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateTokensCacheCreation() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateTokensCacheCreation()
	})
}

// SetTokensCacheRead sets the "tokens_cache_read" field.
func (u *SessionUpsertBulk) SetTokensCacheRead(v int64) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetTokensCacheRead(v)
	})
}

// AddTokensCacheRead adds v to the "tokens_cache_read" field.
func (u *SessionUpsertBulk) AddTokensCacheRead(v int64) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.AddTokensCacheRead(v)
	})
}

// UpdateTokensCacheRead sets the "tokens_cache_read" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateTokensCacheRead() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateTokensCacheRead()
	})
}

// SetMetrics sets the "metrics" field.
func (u *SessionUpsertBulk) SetMetrics(v map[string]interface{}) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetMetrics(v)
	})
}

// UpdateMetrics sets the "metrics" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateMetrics() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateMetrics()
	})
}

// ClearMetrics clears the value of the "metrics" field.
func (u *SessionUpsertBulk) ClearMetrics() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearMetrics()
	})
}

// SetFailureReason sets the "failure_reason" field.
func (u *SessionUpsertBulk) SetFailureReason(v string) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetFailureReason(v)
	})
}

// UpdateFailureReason sets the "failure_reason" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateFailureReason() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateFailureReason()
	})
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (u *SessionUpsertBulk) ClearFailureReason() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearFailureReason()
	})
}

// SetLastActiveAt sets the "last_active_at" field.
func (u *SessionUpsertBulk) SetLastActiveAt(v time.Time) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetLastActiveAt(v)
	})
}

// UpdateLastActiveAt sets the "last_active_at" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateLastActiveAt() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateLastActiveAt()
	})
}

// ClearLastActiveAt clears the value of the "last_active_at" field.
func (u *SessionUpsertBulk) ClearLastActiveAt() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearLastActiveAt()
	})
}

// Exec executes the query.
func (u *SessionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SessionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SessionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SessionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
