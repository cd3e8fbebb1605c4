// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/HM-aes/smbshield/ent/predicate"
	"github.com/HM-aes/smbshield/ent/progressrecord"
)

// ProgressRecordUpdate is the builder for updating ProgressRecord entities.
type ProgressRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ProgressRecordMutation
}

// Where appends a list predicates to the ProgressRecordUpdate builder.
func (_u *ProgressRecordUpdate) Where(ps ...predicate.ProgressRecord) *ProgressRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *ProgressRecordUpdate) SetCompleted(v bool) *ProgressRecordUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableCompleted(v *bool) *ProgressRecordUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetTimeSpentSeconds sets the "time_spent_seconds" field.
func (_u *ProgressRecordUpdate) SetTimeSpentSeconds(v int) *ProgressRecordUpdate {
	_u.mutation.ResetTimeSpentSeconds()
	_u.mutation.SetTimeSpentSeconds(v)
	return _u
}

// SetNillableTimeSpentSeconds sets the "time_spent_seconds" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableTimeSpentSeconds(v *int) *ProgressRecordUpdate {
	if v != nil {
		_u.SetTimeSpentSeconds(*v)
	}
	return _u
}

// AddTimeSpentSeconds adds value to the "time_spent_seconds" field.
func (_u *ProgressRecordUpdate) AddTimeSpentSeconds(v int) *ProgressRecordUpdate {
	_u.mutation.AddTimeSpentSeconds(v)
	return _u
}

// SetQuickCheckCorrect sets the "quick_check_correct" field.
func (_u *ProgressRecordUpdate) SetQuickCheckCorrect(v bool) *ProgressRecordUpdate {
	_u.mutation.SetQuickCheckCorrect(v)
	return _u
}

// SetNillableQuickCheckCorrect sets the "quick_check_correct" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableQuickCheckCorrect(v *bool) *ProgressRecordUpdate {
	if v != nil {
		_u.SetQuickCheckCorrect(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ProgressRecordUpdate) SetCompletedAt(v time.Time) *ProgressRecordUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableCompletedAt(v *time.Time) *ProgressRecordUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ProgressRecordUpdate) ClearCompletedAt() *ProgressRecordUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the ProgressRecordMutation object of the builder.
func (_u *ProgressRecordUpdate) Mutation() *ProgressRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProgressRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProgressRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ProgressRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(progressrecord.Table, progressrecord.Columns, sqlgraph.NewFieldSpec(progressrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(progressrecord.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeSpentSeconds(); ok {
		_spec.SetField(progressrecord.FieldTimeSpentSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentSeconds(); ok {
		_spec.AddField(progressrecord.FieldTimeSpentSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuickCheckCorrect(); ok {
		_spec.SetField(progressrecord.FieldQuickCheckCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(progressrecord.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(progressrecord.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progressrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProgressRecordUpdateOne is the builder for updating a single ProgressRecord entity.
type ProgressRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProgressRecordMutation
}

// SetCompleted sets the "completed" field.
func (_u *ProgressRecordUpdateOne) SetCompleted(v bool) *ProgressRecordUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableCompleted(v *bool) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetTimeSpentSeconds sets the "time_spent_seconds" field.
func (_u *ProgressRecordUpdateOne) SetTimeSpentSeconds(v int) *ProgressRecordUpdateOne {
	_u.mutation.ResetTimeSpentSeconds()
	_u.mutation.SetTimeSpentSeconds(v)
	return _u
}

// SetNillableTimeSpentSeconds sets the "time_spent_seconds" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableTimeSpentSeconds(v *int) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetTimeSpentSeconds(*v)
	}
	return _u
}

// AddTimeSpentSeconds adds value to the "time_spent_seconds" field.
func (_u *ProgressRecordUpdateOne) AddTimeSpentSeconds(v int) *ProgressRecordUpdateOne {
	_u.mutation.AddTimeSpentSeconds(v)
	return _u
}

// SetQuickCheckCorrect sets the "quick_check_correct" field.
func (_u *ProgressRecordUpdateOne) SetQuickCheckCorrect(v bool) *ProgressRecordUpdateOne {
	_u.mutation.SetQuickCheckCorrect(v)
	return _u
}

// SetNillableQuickCheckCorrect sets the "quick_check_correct" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableQuickCheckCorrect(v *bool) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetQuickCheckCorrect(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ProgressRecordUpdateOne) SetCompletedAt(v time.Time) *ProgressRecordUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableCompletedAt(v *time.Time) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ProgressRecordUpdateOne) ClearCompletedAt() *ProgressRecordUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the ProgressRecordMutation object of the builder.
func (_u *ProgressRecordUpdateOne) Mutation() *ProgressRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProgressRecordUpdate builder.
func (_u *ProgressRecordUpdateOne) Where(ps ...predicate.ProgressRecord) *ProgressRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProgressRecordUpdateOne) Select(field string, fields ...string) *ProgressRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProgressRecord entity.
func (_u *ProgressRecordUpdateOne) Save(ctx context.Context) (*ProgressRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressRecordUpdateOne) SaveX(ctx context.Context) *ProgressRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProgressRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ProgressRecordUpdateOne) sqlSave(ctx context.Context) (_node *ProgressRecord, err error) {
	_spec := sqlgraph.NewUpdateSpec(progressrecord.Table, progressrecord.Columns, sqlgraph.NewFieldSpec(progressrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProgressRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, progressrecord.FieldID)
		for _, f := range fields {
			if !progressrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != progressrecord.FieldID {
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
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(progressrecord.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeSpentSeconds(); ok {
		_spec.SetField(progressrecord.FieldTimeSpentSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentSeconds(); ok {
		_spec.AddField(progressrecord.FieldTimeSpentSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuickCheckCorrect(); ok {
		_spec.SetField(progressrecord.FieldQuickCheckCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(progressrecord.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(progressrecord.FieldCompletedAt, field.TypeTime)
	}
	_node = &ProgressRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progressrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
