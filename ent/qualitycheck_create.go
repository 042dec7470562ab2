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
	"github.com/ratchet-works/ratchet/ent/qualitycheck"
	"github.com/ratchet-works/ratchet/ent/session"
	"github.com/ratchet-works/ratchet/pkg/models"
)

// QualityCheckCreate is the builder for creating a QualityCheck entity.
type QualityCheckCreate struct {
	config
	mutation *QualityCheckMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSessionID sets the "session_id" field.
func (_c *QualityCheckCreate) SetSessionID(v string) *QualityCheckCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetCheckType sets the "check_type" field.
func (_c *QualityCheckCreate) SetCheckType(v qualitycheck.CheckType) *QualityCheckCreate {
	_c.mutation.SetCheckType(v)
	return _c
}

// SetRating sets the "rating" field.
func (_c *QualityCheckCreate) SetRating(v int) *QualityCheckCreate {
	_c.mutation.SetRating(v)
	return _c
}

// SetToolUses sets the "tool_uses" field.
func (_c *QualityCheckCreate) SetToolUses(v int) *QualityCheckCreate {
	_c.mutation.SetToolUses(v)
	return _c
}

// SetNillableToolUses sets the "tool_uses" field if the given value is not nil.
func (_c *QualityCheckCreate) SetNillableToolUses(v *int) *QualityCheckCreate {
	if v != nil {
		_c.SetToolUses(*v)
	}
	return _c
}

// SetErrors sets the "errors" field.
func (_c *QualityCheckCreate) SetErrors(v int) *QualityCheckCreate {
	_c.mutation.SetErrors(v)
	return _c
}

// SetNillableErrors sets the "errors" field if the given value is not nil.
func (_c *QualityCheckCreate) SetNillableErrors(v *int) *QualityCheckCreate {
	if v != nil {
		_c.SetErrors(*v)
	}
	return _c
}

// SetBrowserVerifications sets the "browser_verifications" field.
func (_c *QualityCheckCreate) SetBrowserVerifications(v int) *QualityCheckCreate {
	_c.mutation.SetBrowserVerifications(v)
	return _c
}

// SetNillableBrowserVerifications sets the "browser_verifications" field if the given value is not nil.
func (_c *QualityCheckCreate) SetNillableBrowserVerifications(v *int) *QualityCheckCreate {
	if v != nil {
		_c.SetBrowserVerifications(*v)
	}
	return _c
}

// SetCriticalIssues sets the "critical_issues" field.
func (_c *QualityCheckCreate) SetCriticalIssues(v []models.Issue) *QualityCheckCreate {
	_c.mutation.SetCriticalIssues(v)
	return _c
}

// SetWarnings sets the "warnings" field.
func (_c *QualityCheckCreate) SetWarnings(v []models.Issue) *QualityCheckCreate {
	_c.mutation.SetWarnings(v)
	return _c
}

// SetReviewText sets the "review_text" field.
func (_c *QualityCheckCreate) SetReviewText(v string) *QualityCheckCreate {
	_c.mutation.SetReviewText(v)
	return _c
}

// SetNillableReviewText sets the "review_text" field if the given value is not nil.
func (_c *QualityCheckCreate) SetNillableReviewText(v *string) *QualityCheckCreate {
	if v != nil {
		_c.SetReviewText(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QualityCheckCreate) SetCreatedAt(v time.Time) *QualityCheckCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QualityCheckCreate) SetNillableCreatedAt(v *time.Time) *QualityCheckCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QualityCheckCreate) SetID(v string) *QualityCheckCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the Session entity.
func (_c *QualityCheckCreate) SetSession(v *Session) *QualityCheckCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the QualityCheckMutation object of the builder.
func (_c *QualityCheckCreate) Mutation() *QualityCheckMutation {
	return _c.mutation
}

// Save creates the QualityCheck in the database.
func (_c *QualityCheckCreate) Save(ctx context.Context) (*QualityCheck, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QualityCheckCreate) SaveX(ctx context.Context) *QualityCheck {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QualityCheckCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QualityCheckCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QualityCheckCreate) defaults() {
	if _, ok := _c.mutation.ToolUses(); !ok {
		v := qualitycheck.DefaultToolUses
		_c.mutation.SetToolUses(v)
	}
	if _, ok := _c.mutation.Errors(); !ok {
		v := qualitycheck.DefaultErrors
		_c.mutation.SetErrors(v)
	}
	if _, ok := _c.mutation.BrowserVerifications(); !ok {
		v := qualitycheck.DefaultBrowserVerifications
		_c.mutation.SetBrowserVerifications(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := qualitycheck.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QualityCheckCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "QualityCheck.session_id"`)}
	}
	if _, ok := _c.mutation.CheckType(); !ok {
		return &ValidationError{Name: "check_type", err: errors.New(`ent: missing required field "QualityCheck.check_type"`)}
	}
	if v, ok := _c.mutation.CheckType(); ok {
		if err := qualitycheck.CheckTypeValidator(v); err != nil {
			return &ValidationError{Name: "check_type", err: fmt.Errorf(`ent: validator failed for field "QualityCheck.check_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Rating(); !ok {
		return &ValidationError{Name: "rating", err: errors.New(`ent: missing required field "QualityCheck.rating"`)}
	}
	if v, ok := _c.mutation.Rating(); ok {
		if err := qualitycheck.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`ent: validator failed for field "QualityCheck.rating": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ToolUses(); !ok {
		return &ValidationError{Name: "tool_uses", err: errors.New(`ent: missing required field "QualityCheck.tool_uses"`)}
	}
	if _, ok := _c.mutation.Errors(); !ok {
		return &ValidationError{Name: "errors", err: errors.New(`ent: missing required field "QualityCheck.errors"`)}
	}
	if _, ok := _c.mutation.BrowserVerifications(); !ok {
		return &ValidationError{Name: "browser_verifications", err: errors.New(`ent: missing required field "QualityCheck.browser_verifications"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "QualityCheck.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "QualityCheck.session"`)}
	}
	return nil
}

func (_c *QualityCheckCreate) sqlSave(ctx context.Context) (*QualityCheck, error) {
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
			return nil, fmt.Errorf("unexpected QualityCheck.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QualityCheckCreate) createSpec() (*QualityCheck, *sqlgraph.CreateSpec) {
	var (
		_node = &QualityCheck{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(qualitycheck.Table, sqlgraph.NewFieldSpec(qualitycheck.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CheckType(); ok {
		_spec.SetField(qualitycheck.FieldCheckType, field.TypeEnum, value)
		_node.CheckType = value
	}
	if value, ok := _c.mutation.Rating(); ok {
		_spec.SetField(qualitycheck.FieldRating, field.TypeInt, value)
		_node.Rating = value
	}
	if value, ok := _c.mutation.ToolUses(); ok {
		_spec.SetField(qualitycheck.FieldToolUses, field.TypeInt, value)
		_node.ToolUses = value
	}
	if value, ok := _c.mutation.Errors(); ok {
		_spec.SetField(qualitycheck.FieldErrors, field.TypeInt, value)
		_node.Errors = value
	}
	if value, ok := _c.mutation.BrowserVerifications(); ok {
		_spec.SetField(qualitycheck.FieldBrowserVerifications, field.TypeInt, value)
		_node.BrowserVerifications = value
	}
	if value, ok := _c.mutation.CriticalIssues(); ok {
		_spec.SetField(qualitycheck.FieldCriticalIssues, field.TypeJSON, value)
		_node.CriticalIssues = value
	}
	if value, ok := _c.mutation.Warnings(); ok {
		_spec.SetField(qualitycheck.FieldWarnings, field.TypeJSON, value)
		_node.Warnings = value
	}
	if value, ok := _c.mutation.ReviewText(); ok {
		_spec.SetField(qualitycheck.FieldReviewText, field.TypeString, value)
		_node.ReviewText = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(qualitycheck.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   qualitycheck.SessionTable,
			Columns: []string{qualitycheck.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QualityCheck.Create().
//		SetSessionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QualityCheckUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *QualityCheckCreate) OnConflict(opts ...sql.ConflictOption) *QualityCheckUpsertOne {
	_c.conflict = opts
	return &QualityCheckUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QualityCheck.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QualityCheckCreate) OnConflictColumns(columns ...string) *QualityCheckUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QualityCheckUpsertOne{
		create: _c,
	}
}

type (
	// QualityCheckUpsertOne is the builder for "upsert"-ing
	//  one QualityCheck node.
	QualityCheckUpsertOne struct {
		create *QualityCheckCreate
	}

	// QualityCheckUpsert is the "OnConflict" setter.
	QualityCheckUpsert struct {
		*sql.UpdateSet
	}
)

// SetRating sets the "rating" field.
func (u *QualityCheckUpsert) SetRating(v int) *QualityCheckUpsert {
	u.Set(qualitycheck.FieldRating, v)
	return u
}

// UpdateRating sets the "rating" field to the value that was provided on create.
func (u *QualityCheckUpsert) UpdateRating() *QualityCheckUpsert {
	u.SetExcluded(qualitycheck.FieldRating)
	return u
}

// AddRating adds v to the "rating" field.
func (u *QualityCheckUpsert) AddRating(v int) *QualityCheckUpsert {
	u.Add(qualitycheck.FieldRating, v)
	return u
}

// SetToolUses sets the "tool_uses" field.
func (u *QualityCheckUpsert) SetToolUses(v int) *QualityCheckUpsert {
	u.Set(qualitycheck.FieldToolUses, v)
	return u
}

// UpdateToolUses sets the "tool_uses" field to the value that was provided on create.
func (u *QualityCheckUpsert) UpdateToolUses() *QualityCheckUpsert {
	u.SetExcluded(qualitycheck.FieldToolUses)
	return u
}

// AddToolUses adds v to the "tool_uses" field.
func (u *QualityCheckUpsert) AddToolUses(v int) *QualityCheckUpsert {
	u.Add(qualitycheck.FieldToolUses, v)
	return u
}

// SetErrors sets the "errors" field.
func (u *QualityCheckUpsert) SetErrors(v int) *QualityCheckUpsert {
	u.Set(qualitycheck.FieldErrors, v)
	return u
}

// UpdateErrors sets the "errors" field to the value that was provided on create.
func (u *QualityCheckUpsert) UpdateErrors() *QualityCheckUpsert {
	u.SetExcluded(qualitycheck.FieldErrors)
	return u
}

// AddErrors adds v to the "errors" field.
func (u *QualityCheckUpsert) AddErrors(v int) *QualityCheckUpsert {
	u.Add(qualitycheck.FieldErrors, v)
	return u
}

// SetBrowserVerifications sets the "browser_verifications" field.
func (u *QualityCheckUpsert) SetBrowserVerifications(v int) *QualityCheckUpsert {
	u.Set(qualitycheck.FieldBrowserVerifications, v)
	return u
}

// UpdateBrowserVerifications sets the "browser_verifications" field to the value that was provided on create.
func (u *QualityCheckUpsert) UpdateBrowserVerifications() *QualityCheckUpsert {
	u.SetExcluded(qualitycheck.FieldBrowserVerifications)
	return u
}

// AddBrowserVerifications adds v to the "browser_verifications" field.
func (u *QualityCheckUpsert) AddBrowserVerifications(v int) *QualityCheckUpsert {
	u.Add(qualitycheck.FieldBrowserVerifications, v)
	return u
}

// SetCriticalIssues sets the "critical_issues" field.
func (u *QualityCheckUpsert) SetCriticalIssues(v []models.Issue) *QualityCheckUpsert {
	u.Set(qualitycheck.FieldCriticalIssues, v)
	return u
}

// UpdateCriticalIssues sets the "critical_issues" field to the value that was provided on create.
func (u *QualityCheckUpsert) UpdateCriticalIssues() *QualityCheckUpsert {
	u.SetExcluded(qualitycheck.FieldCriticalIssues)
	return u
}

// ClearCriticalIssues clears the value of the "critical_issues" field.
func (u *QualityCheckUpsert) ClearCriticalIssues() *QualityCheckUpsert {
	u.SetNull(qualitycheck.FieldCriticalIssues)
	return u
}

// SetWarnings sets the "warnings" field.
func (u *QualityCheckUpsert) SetWarnings(v []models.Issue) *QualityCheckUpsert {
	u.Set(qualitycheck.FieldWarnings, v)
	return u
}

// UpdateWarnings sets the "warnings" field to the value that was provided on create.
func (u *QualityCheckUpsert) UpdateWarnings() *QualityCheckUpsert {
	u.SetExcluded(qualitycheck.FieldWarnings)
	return u
}

// ClearWarnings clears the value of the "warnings" field.
func (u *QualityCheckUpsert) ClearWarnings() *QualityCheckUpsert {
	u.SetNull(qualitycheck.FieldWarnings)
	return u
}

// SetReviewText sets the "review_text" field.
func (u *QualityCheckUpsert) SetReviewText(v string) *QualityCheckUpsert {
	u.Set(qualitycheck.FieldReviewText, v)
	return u
}

// UpdateReviewText sets the "review_text" field to the value that was provided on create.
func (u *QualityCheckUpsert) UpdateReviewText() *QualityCheckUpsert {
	u.SetExcluded(qualitycheck.FieldReviewText)
	return u
}

// ClearReviewText clears the value of the "review_text" field.
func (u *QualityCheckUpsert) ClearReviewText() *QualityCheckUpsert {
	u.SetNull(qualitycheck.FieldReviewText)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.QualityCheck.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(qualitycheck.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QualityCheckUpsertOne) UpdateNewValues() *QualityCheckUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(qualitycheck.FieldID)
		}
		if _, exists := u.create.mutation.SessionID(); exists {
			s.SetIgnore(qualitycheck.FieldSessionID)
		}
		if _, exists := u.create.mutation.CheckType(); exists {
			s.SetIgnore(qualitycheck.FieldCheckType)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(qualitycheck.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QualityCheck.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *QualityCheckUpsertOne) Ignore() *QualityCheckUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QualityCheckUpsertOne) DoNothing() *QualityCheckUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QualityCheckCreate.OnConflict
// documentation for more info.
func (u *QualityCheckUpsertOne) Update(set func(*QualityCheckUpsert)) *QualityCheckUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QualityCheckUpsert{UpdateSet: update})
	}))
	return u
}

// SetRating sets the "rating" field.
func (u *QualityCheckUpsertOne) SetRating(v int) *QualityCheckUpsertOne {
	return u.Update(func(s *QualityCheckUpsert) {
		s.SetRating(v)
	})
}

// AddRating adds v to the "rating" field.
func (u *QualityCheckUpsertOne) AddRating(v int) *QualityCheckUpsertOne {
	return u.Update(func(s *QualityCheckUpsert) {
		s.AddRating(v)
	})
}

// UpdateRating sets the "rating" field to the value that was provided on create.
func (u *QualityCheckUpsertOne) UpdateRating() *QualityCheckUpsertOne {
	return u.Update(func(s *QualityCheckUpsert) {
		s.UpdateRating()
	})
}

// SetToolUses sets the "tool_uses" field.
func (u *QualityCheckUpsertOne) SetToolUses(v int) *QualityCheckUpsertOne {
	return u.Update(func(s *QualityCheckUpsert) {
		s.SetToolUses(v)
	})
}

// AddToolUses adds v to the "tool_uses" field.
func (u *QualityCheckUpsertOne) AddToolUses(v int) *QualityCheckUpsertOne {
	return u.Update(func(s *QualityCheckUpsert) {
		s.AddToolUses(v)
	})
}

// UpdateToolUses sets the "tool_uses" field to the value that was provided on create.
func (u *QualityCheckUpsertOne) UpdateToolUses() *QualityCheckUpsertOne {
	return u.Update(func(s *QualityCheckUpsert) {
		s.UpdateToolUses()
	})
}

// SetErrors sets the "errors" field.
func (u *QualityCheckUpsertOne) SetErrors(v int) *QualityCheckUpsertOne {
	return u.Update(func(s *QualityCheckUpsert) {
		s.SetErrors(v)
	})
}

// AddErrors adds v to the "errors" field.
func (u *QualityCheckUpsertOne) AddErrors(v int) *QualityCheckUpsertOne {
	return u.Update(func(s *QualityCheckUpsert) {
		s.AddErrors(v)
	})
}

// UpdateErrors sets the "errors" field to the value that was provided on create.
func (u *QualityCheckUpsertOne) UpdateErrors() *QualityCheckUpsertOne {
	return u.Update(func(s *QualityCheckUpsert) {
		s.UpdateErrors()
	})
}

// SetBrowserVerifications sets the "browser_verifications" field.
func (u *QualityCheckUpsertOne) SetBrowserVerifications(v int) *QualityCheckUpsertOne {
	return u.Update(func(s *QualityCheckUpsert) {
		s.SetBrowserVerifications(v)
	})
}

// AddBrowserVerifications adds v to the "browser_verifications" field.
func (u *QualityCheckUpsertOne) AddBrowserVerifications(v int) *QualityCheckUpsertOne {
	return u.Update(func(s *QualityCheckUpsert) {
		s.AddBrowserVerifications(v)
	})
}

// UpdateBrowserVerifications sets the "browser_verifications" field to the value that was provided on create.
func (u *QualityCheckUpsertOne) UpdateBrowserVerifications() *QualityCheckUpsertOne {
	return u.Update(func(s *QualityCheckUpsert) {
		s.UpdateBrowserVerifications()
	})
}

// SetCriticalIssues sets the "critical_issues" field.
func (u *QualityCheckUpsertOne) SetCriticalIssues(v []models.Issue) *QualityCheckUpsertOne {
	return u.Update(func(s *QualityCheckUpsert) {
		s.SetCriticalIssues(v)
	})
}

// UpdateCriticalIssues sets the "critical_issues" field to the value that was provided on create.
func (u *QualityCheckUpsertOne) UpdateCriticalIssues() *QualityCheckUpsertOne {
	return u.Update(func(s *QualityCheckUpsert) {
		s.UpdateCriticalIssues()
	})
}

// ClearCriticalIssues clears the value of the "critical_issues" field.
func (u *QualityCheckUpsertOne) ClearCriticalIssues() *QualityCheckUpsertOne {
	return u.Update(func(s *QualityCheckUpsert) {
		s.ClearCriticalIssues()
	})
}

// SetWarnings sets the "warnings" field.
func (u *QualityCheckUpsertOne) SetWarnings(v []models.Issue) *QualityCheckUpsertOne {
	return u.Update(func(s *QualityCheckUpsert) {
		s.SetWarnings(v)
	})
}

// UpdateWarnings sets the "warnings" field to the value that was provided on create.
func (u *QualityCheckUpsertOne) UpdateWarnings() *QualityCheckUpsertOne {
	return u.Update(func(s *QualityCheckUpsert) {
		s.UpdateWarnings()
	})
}

// ClearWarnings clears the value of the "warnings" field.
func (u *QualityCheckUpsertOne) ClearWarnings() *QualityCheckUpsertOne {
	return u.Update(func(s *QualityCheckUpsert) {
		s.ClearWarnings()
	})
}

// SetReviewText sets the "review_text" field.
func (u *QualityCheckUpsertOne) SetReviewText(v string) *QualityCheckUpsertOne {
	return u.Update(func(s *QualityCheckUpsert) {
		s.SetReviewText(v)
	})
}

// UpdateReviewText sets the "review_text" field to the value that was provided on create.
func (u *QualityCheckUpsertOne) UpdateReviewText() *QualityCheckUpsertOne {
	return u.Update(func(s *QualityCheckUpsert) {
		s.UpdateReviewText()
	})
}

// ClearReviewText clears the value of the "review_text" field.
func (u *QualityCheckUpsertOne) ClearReviewText() *QualityCheckUpsertOne {
	return u.Update(func(s *QualityCheckUpsert) {
		s.ClearReviewText()
	})
}

// Exec executes the query.
func (u *QualityCheckUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QualityCheckCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QualityCheckUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *QualityCheckUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: QualityCheckUpsertOne.ID is not supported by MySQL driver. Use QualityCheckUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *QualityCheckUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// QualityCheckCreateBulk is the builder for creating many QualityCheck entities in bulk.
type QualityCheckCreateBulk struct {
	config
	err      error
	builders []*QualityCheckCreate
	conflict []sql.ConflictOption
}

// Save creates the QualityCheck entities in the database.
func (_c *QualityCheckCreateBulk) Save(ctx context.Context) ([]*QualityCheck, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QualityCheck, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QualityCheckMutation)
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
func (_c *QualityCheckCreateBulk) SaveX(ctx context.Context) []*QualityCheck {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QualityCheckCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QualityCheckCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QualityCheck.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QualityCheckUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *QualityCheckCreateBulk) OnConflict(opts ...sql.ConflictOption) *QualityCheckUpsertBulk {
	_c.conflict = opts
	return &QualityCheckUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QualityCheck.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QualityCheckCreateBulk) OnConflictColumns(columns ...string) *QualityCheckUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QualityCheckUpsertBulk{
		create: _c,
	}
}

// QualityCheckUpsertBulk is the builder for "upsert"-ing
// a bulk of QualityCheck nodes.
type QualityCheckUpsertBulk struct {
	create *QualityCheckCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.QualityCheck.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(qualitycheck.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QualityCheckUpsertBulk) UpdateNewValues() *QualityCheckUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(qualitycheck.FieldID)
			}
			if _, exists := b.mutation.SessionID(); exists {
				s.SetIgnore(qualitycheck.FieldSessionID)
			}
			if _, exists := b.mutation.CheckType(); exists {
				s.SetIgnore(qualitycheck.FieldCheckType)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(qualitycheck.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QualityCheck.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *QualityCheckUpsertBulk) Ignore() *QualityCheckUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QualityCheckUpsertBulk) DoNothing() *QualityCheckUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QualityCheckCreateBulk.OnConflict
// documentation for more info.
func (u *QualityCheckUpsertBulk) Update(set func(*QualityCheckUpsert)) *QualityCheckUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QualityCheckUpsert{UpdateSet: update})
	}))
	return u
}

// SetRating sets the "rating" field.
func (u *QualityCheckUpsertBulk) SetRating(v int) *QualityCheckUpsertBulk {
	return u.Update(func(s *QualityCheckUpsert) {
		s.SetRating(v)
	})
}

// AddRating adds v to the "rating" field.
func (u *QualityCheckUpsertBulk) AddRating(v int) *QualityCheckUpsertBulk {
	return u.Update(func(s *QualityCheckUpsert) {
		s.AddRating(v)
	})
}

// UpdateRating sets the "rating" field to the value that was provided on create.
func (u *QualityCheckUpsertBulk) UpdateRating() *QualityCheckUpsertBulk {
	return u.Update(func(s *QualityCheckUpsert) {
		s.UpdateRating()
	})
}

// SetToolUses sets the "tool_uses" field.
func (u *QualityCheckUpsertBulk) SetToolUses(v int) *QualityCheckUpsertBulk {
	return u.Update(func(s *QualityCheckUpsert) {
		s.SetToolUses(v)
	})
}

// AddToolUses adds v to the "tool_uses" field.
func (u *QualityCheckUpsertBulk) AddToolUses(v int) *QualityCheckUpsertBulk {
	return u.Update(func(s *QualityCheckUpsert) {
		s.AddToolUses(v)
	})
}

// UpdateToolUses sets the "tool_uses" field to the value that was provided on create.
func (u *QualityCheckUpsertBulk) UpdateToolUses() *QualityCheckUpsertBulk {
	return u.Update(func(s *QualityCheckUpsert) {
		s.UpdateToolUses()
	})
}

// SetErrors sets the "errors" field.
func (u *QualityCheckUpsertBulk) SetErrors(v int) *QualityCheckUpsertBulk {
	return u.Update(func(s *QualityCheckUpsert) {
		s.SetErrors(v)
	})
}

// AddErrors adds v to the "errors" field.
func (u *QualityCheckUpsertBulk) AddErrors(v int) *QualityCheckUpsertBulk {
	return u.Update(func(s *QualityCheckUpsert) {
		s.AddErrors(v)
	})
}

// UpdateErrors sets the "errors" field to the value that was provided on create.
func (u *QualityCheckUpsertBulk) UpdateErrors() *QualityCheckUpsertBulk {
	return u.Update(func(s *QualityCheckUpsert) {
		s.UpdateErrors()
	})
}

// SetBrowserVerifications sets the "browser_verifications" field.
func (u *QualityCheckUpsertBulk) SetBrowserVerifications(v int) *QualityCheckUpsertBulk {
	return u.Update(func(s *QualityCheckUpsert) {
		s.SetBrowserVerifications(v)
	})
}

// AddBrowserVerifications adds v to the "browser_verifications" field.
func (u *QualityCheckUpsertBulk) AddBrowserVerifications(v int) *QualityCheckUpsertBulk {
	return u.Update(func(s *QualityCheckUpsert) {
		s.AddBrowserVerifications(v)
	})
}

// UpdateBrowserVerifications sets the "browser_verifications" field to the value that was provided on create.
func (u *QualityCheckUpsertBulk) UpdateBrowserVerifications() *QualityCheckUpsertBulk {
	return u.Update(func(s *QualityCheckUpsert) {
		s.UpdateBrowserVerifications()
	})
}

// SetCriticalIssues sets the "critical_issues" field.
func (u *QualityCheckUpsertBulk) SetCriticalIssues(v []models.Issue) *QualityCheckUpsertBulk {
	return u.Update(func(s *QualityCheckUpsert) {
		s.SetCriticalIssues(v)
	})
}

// UpdateCriticalIssues sets the "critical_issues" field to the value that was provided on create.
func (u *QualityCheckUpsertBulk) UpdateCriticalIssues() *QualityCheckUpsertBulk {
	return u.Update(func(s *QualityCheckUpsert) {
		s.UpdateCriticalIssues()
	})
}

// ClearCriticalIssues clears the value of the "critical_issues" field.
func (u *QualityCheckUpsertBulk) ClearCriticalIssues() *QualityCheckUpsertBulk {
	return u.Update(func(s *QualityCheckUpsert) {
		s.ClearCriticalIssues()
	})
}

// SetWarnings sets the "warnings" field.
func (u *QualityCheckUpsertBulk) SetWarnings(v []models.Issue) *QualityCheckUpsertBulk {
	return u.Update(func(s *QualityCheckUpsert) {
		s.SetWarnings(v)
	})
}

// UpdateWarnings sets the "warnings" field to the value that was provided on create.
func (u *QualityCheckUpsertBulk) UpdateWarnings() *QualityCheckUpsertBulk {
	return u.Update(func(s *QualityCheckUpsert) {
		s.UpdateWarnings()
	})
}

// ClearWarnings clears the value of the "warnings" field.
func (u *QualityCheckUpsertBulk) ClearWarnings() *QualityCheckUpsertBulk {
	return u.Update(func(s *QualityCheckUpsert) {
		s.ClearWarnings()
	})
}

// SetReviewText sets the "review_text" field.
func (u *QualityCheckUpsertBulk) SetReviewText(v string) *QualityCheckUpsertBulk {
	return u.Update(func(s *QualityCheckUpsert) {
		s.SetReviewText(v)
	})
}

// UpdateReviewText sets the "review_text" field to the value that was provided on create.
func (u *QualityCheckUpsertBulk) UpdateReviewText() *QualityCheckUpsertBulk {
	return u.Update(func(s *QualityCheckUpsert) {
		s.UpdateReviewText()
	})
}

// ClearReviewText clears the value of the "review_text" field.
func (u *QualityCheckUpsertBulk) ClearReviewText() *QualityCheckUpsertBulk {
	return u.Update(func(s *QualityCheckUpsert) {
		s.ClearReviewText()
	})
}

// Exec executes the query.
func (u *QualityCheckUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the QualityCheckCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QualityCheckCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QualityCheckUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
