// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/ratchet-works/ratchet/ent/predicate"
	"github.com/ratchet-works/ratchet/ent/qualitycheck"
	"github.com/ratchet-works/ratchet/pkg/models"
)

// QualityCheckUpdate is the builder for updating QualityCheck entities.
type QualityCheckUpdate struct {
	config
	hooks    []Hook
	mutation *QualityCheckMutation
}

// Where appends a list predicates to the QualityCheckUpdate builder.
func (_u *QualityCheckUpdate) Where(ps ...predicate.QualityCheck) *QualityCheckUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRating sets the "rating" field.
func (_u *QualityCheckUpdate) SetRating(v int) *QualityCheckUpdate {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *QualityCheckUpdate) SetNillableRating(v *int) *QualityCheckUpdate {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *QualityCheckUpdate) AddRating(v int) *QualityCheckUpdate {
	_u.mutation.AddRating(v)
	return _u
}

// SetToolUses sets the "tool_uses" field.
func (_u *QualityCheckUpdate) SetToolUses(v int) *QualityCheckUpdate {
	_u.mutation.ResetToolUses()
	_u.mutation.SetToolUses(v)
	return _u
}

// SetNillableToolUses sets the "tool_uses" field if the given value is not nil.
func (_u *QualityCheckUpdate) SetNillableToolUses(v *int) *QualityCheckUpdate {
	if v != nil {
		_u.SetToolUses(*v)
	}
	return _u
}

// AddToolUses adds value to the "tool_uses" field.
func (_u *QualityCheckUpdate) AddToolUses(v int) *QualityCheckUpdate {
	_u.mutation.AddToolUses(v)
	return _u
}

// SetErrors sets the "errors" field.
func (_u *QualityCheckUpdate) SetErrors(v int) *QualityCheckUpdate {
	_u.mutation.ResetErrors()
	_u.mutation.SetErrors(v)
	return _u
}

// SetNillableErrors sets the "errors" field if the given value is not nil.
func (_u *QualityCheckUpdate) SetNillableErrors(v *int) *QualityCheckUpdate {
	if v != nil {
		_u.SetErrors(*v)
	}
	return _u
}

// AddErrors adds value to the "errors" field.
func (_u *QualityCheckUpdate) AddErrors(v int) *QualityCheckUpdate {
	_u.mutation.AddErrors(v)
	return _u
}

// SetBrowserVerifications sets the "browser_verifications" field.
func (_u *QualityCheckUpdate) SetBrowserVerifications(v int) *QualityCheckUpdate {
	_u.mutation.ResetBrowserVerifications()
	_u.mutation.SetBrowserVerifications(v)
	return _u
}

// SetNillableBrowserVerifications sets the "browser_verifications" field if the given value is not nil.
func (_u *QualityCheckUpdate) SetNillableBrowserVerifications(v *int) *QualityCheckUpdate {
	if v != nil {
		_u.SetBrowserVerifications(*v)
	}
	return _u
}

// AddBrowserVerifications adds value to the "browser_verifications" field.
func (_u *QualityCheckUpdate) AddBrowserVerifications(v int) *QualityCheckUpdate {
	_u.mutation.AddBrowserVerifications(v)
	return _u
}

// SetCriticalIssues sets the "critical_issues" field.
func (_u *QualityCheckUpdate) SetCriticalIssues(v []models.Issue) *QualityCheckUpdate {
	_u.mutation.SetCriticalIssues(v)
	return _u
}

// AppendCriticalIssues appends value to the "critical_issues" field.
func (_u *QualityCheckUpdate) AppendCriticalIssues(v []models.Issue) *QualityCheckUpdate {
	_u.mutation.AppendCriticalIssues(v)
	return _u
}

// ClearCriticalIssues clears the value of the "critical_issues" field.
func (_u *QualityCheckUpdate) ClearCriticalIssues() *QualityCheckUpdate {
	_u.mutation.ClearCriticalIssues()
	return _u
}

// SetWarnings sets the "warnings" field.
func (_u *QualityCheckUpdate) SetWarnings(v []models.Issue) *QualityCheckUpdate {
	_u.mutation.SetWarnings(v)
	return _u
}

// AppendWarnings appends value to the "warnings" field.
func (_u *QualityCheckUpdate) AppendWarnings(v []models.Issue) *QualityCheckUpdate {
	_u.mutation.AppendWarnings(v)
	return _u
}

// ClearWarnings clears the value of the "warnings" field.
func (_u *QualityCheckUpdate) ClearWarnings() *QualityCheckUpdate {
	_u.mutation.ClearWarnings()
	return _u
}

// SetReviewText sets the "review_text" field.
func (_u *QualityCheckUpdate) SetReviewText(v string) *QualityCheckUpdate {
	_u.mutation.SetReviewText(v)
	return _u
}

// SetNillableReviewText sets the "review_text" field if the given value is not nil.
func (_u *QualityCheckUpdate) SetNillableReviewText(v *string) *QualityCheckUpdate {
	if v != nil {
		_u.SetReviewText(*v)
	}
	return _u
}

// ClearReviewText clears the value of the "review_text" field.
func (_u *QualityCheckUpdate) ClearReviewText() *QualityCheckUpdate {
	_u.mutation.ClearReviewText()
	return _u
}

// Mutation returns the QualityCheckMutation object of the builder.
func (_u *QualityCheckUpdate) Mutation() *QualityCheckMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QualityCheckUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QualityCheckUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QualityCheckUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QualityCheckUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QualityCheckUpdate) check() error {
	if v, ok := _u.mutation.Rating(); ok {
		if err := qualitycheck.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`ent: validator failed for field "QualityCheck.rating": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "QualityCheck.session"`)
	}
	return nil
}

func (_u *QualityCheckUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(qualitycheck.Table, qualitycheck.Columns, sqlgraph.NewFieldSpec(qualitycheck.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(qualitycheck.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(qualitycheck.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ToolUses(); ok {
		_spec.SetField(qualitycheck.FieldToolUses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedToolUses(); ok {
		_spec.AddField(qualitycheck.FieldToolUses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Errors(); ok {
		_spec.SetField(qualitycheck.FieldErrors, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrors(); ok {
		_spec.AddField(qualitycheck.FieldErrors, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BrowserVerifications(); ok {
		_spec.SetField(qualitycheck.FieldBrowserVerifications, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBrowserVerifications(); ok {
		_spec.AddField(qualitycheck.FieldBrowserVerifications, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CriticalIssues(); ok {
		_spec.SetField(qualitycheck.FieldCriticalIssues, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCriticalIssues(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, qualitycheck.FieldCriticalIssues, value)
		})
	}
	if _u.mutation.CriticalIssuesCleared() {
		_spec.ClearField(qualitycheck.FieldCriticalIssues, field.TypeJSON)
	}
	if value, ok := _u.mutation.Warnings(); ok {
		_spec.SetField(qualitycheck.FieldWarnings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWarnings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, qualitycheck.FieldWarnings, value)
		})
	}
	if _u.mutation.WarningsCleared() {
		_spec.ClearField(qualitycheck.FieldWarnings, field.TypeJSON)
	}
	if value, ok := _u.mutation.ReviewText(); ok {
		_spec.SetField(qualitycheck.FieldReviewText, field.TypeString, value)
	}
	if _u.mutation.ReviewTextCleared() {
		_spec.ClearField(qualitycheck.FieldReviewText, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{qualitycheck.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QualityCheckUpdateOne is the builder for updating a single QualityCheck entity.
type QualityCheckUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QualityCheckMutation
}

// SetRating sets the "rating" field.
func (_u *QualityCheckUpdateOne) SetRating(v int) *QualityCheckUpdateOne {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *QualityCheckUpdateOne) SetNillableRating(v *int) *QualityCheckUpdateOne {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *QualityCheckUpdateOne) AddRating(v int) *QualityCheckUpdateOne {
	_u.mutation.AddRating(v)
	return _u
}

// SetToolUses sets the "tool_uses" field.
func (_u *QualityCheckUpdateOne) SetToolUses(v int) *QualityCheckUpdateOne {
	_u.mutation.ResetToolUses()
	_u.mutation.SetToolUses(v)
	return _u
}

// SetNillableToolUses sets the "tool_uses" field if the given value is not nil.
func (_u *QualityCheckUpdateOne) SetNillableToolUses(v *int) *QualityCheckUpdateOne {
	if v != nil {
		_u.SetToolUses(*v)
	}
	return _u
}

// AddToolUses adds value to the "tool_uses" field.
func (_u *QualityCheckUpdateOne) AddToolUses(v int) *QualityCheckUpdateOne {
	_u.mutation.AddToolUses(v)
	return _u
}

// SetErrors sets the "errors" field.
func (_u *QualityCheckUpdateOne) SetErrors(v int) *QualityCheckUpdateOne {
	_u.mutation.ResetErrors()
	_u.mutation.SetErrors(v)
	return _u
}

// SetNillableErrors sets the "errors" field if the given value is not nil.
func (_u *QualityCheckUpdateOne) SetNillableErrors(v *int) *QualityCheckUpdateOne {
	if v != nil {
		_u.SetErrors(*v)
	}
	return _u
}

// AddErrors adds value to the "errors" field.
func (_u *QualityCheckUpdateOne) AddErrors(v int) *QualityCheckUpdateOne {
	_u.mutation.AddErrors(v)
	return _u
}

// SetBrowserVerifications sets the "browser_verifications" field.
func (_u *QualityCheckUpdateOne) SetBrowserVerifications(v int) *QualityCheckUpdateOne {
	_u.mutation.ResetBrowserVerifications()
	_u.mutation.SetBrowserVerifications(v)
	return _u
}

// SetNillableBrowserVerifications sets the "browser_verifications" field if the given value is not nil.
func (_u *QualityCheckUpdateOne) SetNillableBrowserVerifications(v *int) *QualityCheckUpdateOne {
	if v != nil {
		_u.SetBrowserVerifications(*v)
	}
	return _u
}

// AddBrowserVerifications adds value to the "browser_verifications" field.
func (_u *QualityCheckUpdateOne) AddBrowserVerifications(v int) *QualityCheckUpdateOne {
	_u.mutation.AddBrowserVerifications(v)
	return _u
}

// SetCriticalIssues sets the "critical_issues" field.
func (_u *QualityCheckUpdateOne) SetCriticalIssues(v []models.Issue) *QualityCheckUpdateOne {
	_u.mutation.SetCriticalIssues(v)
	return _u
}

// AppendCriticalIssues appends value to the "critical_issues" field.
func (_u *QualityCheckUpdateOne) AppendCriticalIssues(v []models.Issue) *QualityCheckUpdateOne {
	_u.mutation.AppendCriticalIssues(v)
	return _u
}

// ClearCriticalIssues clears the value of the "critical_issues" field.
func (_u *QualityCheckUpdateOne) ClearCriticalIssues() *QualityCheckUpdateOne {
	_u.mutation.ClearCriticalIssues()
	return _u
}

// SetWarnings sets the "warnings" field.
func (_u *QualityCheckUpdateOne) SetWarnings(v []models.Issue) *QualityCheckUpdateOne {
	_u.mutation.SetWarnings(v)
	return _u
}

// AppendWarnings appends value to the "warnings" field.
func (_u *QualityCheckUpdateOne) AppendWarnings(v []models.Issue) *QualityCheckUpdateOne {
	_u.mutation.AppendWarnings(v)
	return _u
}

// ClearWarnings clears the value of the "warnings" field.
func (_u *QualityCheckUpdateOne) ClearWarnings() *QualityCheckUpdateOne {
	_u.mutation.ClearWarnings()
	return _u
}

// SetReviewText sets the "review_text" field.
func (_u *QualityCheckUpdateOne) SetReviewText(v string) *QualityCheckUpdateOne {
	_u.mutation.SetReviewText(v)
	return _u
}

// SetNillableReviewText sets the "review_text" field if the given value is not nil.
func (_u *QualityCheckUpdateOne) SetNillableReviewText(v *string) *QualityCheckUpdateOne {
	if v != nil {
		_u.SetReviewText(*v)
	}
	return _u
}

// ClearReviewText clears the value of the "review_text" field.
func (_u *QualityCheckUpdateOne) ClearReviewText() *QualityCheckUpdateOne {
	_u.mutation.ClearReviewText()
	return _u
}

// Mutation returns the QualityCheckMutation object of the builder.
func (_u *QualityCheckUpdateOne) Mutation() *QualityCheckMutation {
	return _u.mutation
}

// Where appends a list predicates to the QualityCheckUpdate builder.
func (_u *QualityCheckUpdateOne) Where(ps ...predicate.QualityCheck) *QualityCheckUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QualityCheckUpdateOne) Select(field string, fields ...string) *QualityCheckUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QualityCheck entity.
func (_u *QualityCheckUpdateOne) Save(ctx context.Context) (*QualityCheck, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QualityCheckUpdateOne) SaveX(ctx context.Context) *QualityCheck {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QualityCheckUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QualityCheckUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QualityCheckUpdateOne) check() error {
	if v, ok := _u.mutation.Rating(); ok {
		if err := qualitycheck.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`ent: validator failed for field "QualityCheck.rating": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "QualityCheck.session"`)
	}
	return nil
}

func (_u *QualityCheckUpdateOne) sqlSave(ctx context.Context) (_node *QualityCheck, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(qualitycheck.Table, qualitycheck.Columns, sqlgraph.NewFieldSpec(qualitycheck.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QualityCheck.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, qualitycheck.FieldID)
		for _, f := range fields {
			if !qualitycheck.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != qualitycheck.FieldID {
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
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(qualitycheck.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(qualitycheck.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ToolUses(); ok {
		_spec.SetField(qualitycheck.FieldToolUses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedToolUses(); ok {
		_spec.AddField(qualitycheck.FieldToolUses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Errors(); ok {
		_spec.SetField(qualitycheck.FieldErrors, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrors(); ok {
		_spec.AddField(qualitycheck.FieldErrors, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BrowserVerifications(); ok {
		_spec.SetField(qualitycheck.FieldBrowserVerifications, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBrowserVerifications(); ok {
		_spec.AddField(qualitycheck.FieldBrowserVerifications, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CriticalIssues(); ok {
		_spec.SetField(qualitycheck.FieldCriticalIssues, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCriticalIssues(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, qualitycheck.FieldCriticalIssues, value)
		})
	}
	if _u.mutation.CriticalIssuesCleared() {
		_spec.ClearField(qualitycheck.FieldCriticalIssues, field.TypeJSON)
	}
	if value, ok := _u.mutation.Warnings(); ok {
		_spec.SetField(qualitycheck.FieldWarnings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWarnings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, qualitycheck.FieldWarnings, value)
		})
	}
	if _u.mutation.WarningsCleared() {
		_spec.ClearField(qualitycheck.FieldWarnings, field.TypeJSON)
	}
	if value, ok := _u.mutation.ReviewText(); ok {
		_spec.SetField(qualitycheck.FieldReviewText, field.TypeString, value)
	}
	if _u.mutation.ReviewTextCleared() {
		_spec.ClearField(qualitycheck.FieldReviewText, field.TypeString)
	}
	_node = &QualityCheck{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{qualitycheck.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
