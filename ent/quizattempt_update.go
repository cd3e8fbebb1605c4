// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/HM-aes/smbshield/ent/predicate"
	"github.com/HM-aes/smbshield/ent/quizattempt"
)

// QuizAttemptUpdate is the builder for updating QuizAttempt entities.
type QuizAttemptUpdate struct {
	config
	hooks    []Hook
	mutation *QuizAttemptMutation
}

// Where appends a list predicates to the QuizAttemptUpdate builder.
func (_u *QuizAttemptUpdate) Where(ps ...predicate.QuizAttempt) *QuizAttemptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *QuizAttemptUpdate) SetStatus(v quizattempt.Status) *QuizAttemptUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *QuizAttemptUpdate) SetNillableStatus(v *quizattempt.Status) *QuizAttemptUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetQuestionIds sets the "question_ids" field.
func (_u *QuizAttemptUpdate) SetQuestionIds(v []string) *QuizAttemptUpdate {
	_u.mutation.SetQuestionIds(v)
	return _u
}

// AppendQuestionIds appends value to the "question_ids" field.
func (_u *QuizAttemptUpdate) AppendQuestionIds(v []string) *QuizAttemptUpdate {
	_u.mutation.AppendQuestionIds(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *QuizAttemptUpdate) SetScore(v int) *QuizAttemptUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *QuizAttemptUpdate) SetNillableScore(v *int) *QuizAttemptUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *QuizAttemptUpdate) AddScore(v int) *QuizAttemptUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *QuizAttemptUpdate) SetCorrectCount(v int) *QuizAttemptUpdate {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *QuizAttemptUpdate) SetNillableCorrectCount(v *int) *QuizAttemptUpdate {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *QuizAttemptUpdate) AddCorrectCount(v int) *QuizAttemptUpdate {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *QuizAttemptUpdate) SetPassed(v bool) *QuizAttemptUpdate {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *QuizAttemptUpdate) SetNillablePassed(v *bool) *QuizAttemptUpdate {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetScoredAt sets the "scored_at" field.
func (_u *QuizAttemptUpdate) SetScoredAt(v time.Time) *QuizAttemptUpdate {
	_u.mutation.SetScoredAt(v)
	return _u
}

// SetNillableScoredAt sets the "scored_at" field if the given value is not nil.
func (_u *QuizAttemptUpdate) SetNillableScoredAt(v *time.Time) *QuizAttemptUpdate {
	if v != nil {
		_u.SetScoredAt(*v)
	}
	return _u
}

// ClearScoredAt clears the value of the "scored_at" field.
func (_u *QuizAttemptUpdate) ClearScoredAt() *QuizAttemptUpdate {
	_u.mutation.ClearScoredAt()
	return _u
}

// Mutation returns the QuizAttemptMutation object of the builder.
func (_u *QuizAttemptUpdate) Mutation() *QuizAttemptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizAttemptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizAttemptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizAttemptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizAttemptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizAttemptUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := quizattempt.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.status": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizAttemptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizattempt.Table, quizattempt.Columns, sqlgraph.NewFieldSpec(quizattempt.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(quizattempt.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.QuestionIds(); ok {
		_spec.SetField(quizattempt.FieldQuestionIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestionIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quizattempt.FieldQuestionIds, value)
		})
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(quizattempt.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(quizattempt.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(quizattempt.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(quizattempt.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(quizattempt.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ScoredAt(); ok {
		_spec.SetField(quizattempt.FieldScoredAt, field.TypeTime, value)
	}
	if _u.mutation.ScoredAtCleared() {
		_spec.ClearField(quizattempt.FieldScoredAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizAttemptUpdateOne is the builder for updating a single QuizAttempt entity.
type QuizAttemptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizAttemptMutation
}

// SetStatus sets the "status" field.
func (_u *QuizAttemptUpdateOne) SetStatus(v quizattempt.Status) *QuizAttemptUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *QuizAttemptUpdateOne) SetNillableStatus(v *quizattempt.Status) *QuizAttemptUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetQuestionIds sets the "question_ids" field.
func (_u *QuizAttemptUpdateOne) SetQuestionIds(v []string) *QuizAttemptUpdateOne {
	_u.mutation.SetQuestionIds(v)
	return _u
}

// AppendQuestionIds appends value to the "question_ids" field.
func (_u *QuizAttemptUpdateOne) AppendQuestionIds(v []string) *QuizAttemptUpdateOne {
	_u.mutation.AppendQuestionIds(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *QuizAttemptUpdateOne) SetScore(v int) *QuizAttemptUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *QuizAttemptUpdateOne) SetNillableScore(v *int) *QuizAttemptUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *QuizAttemptUpdateOne) AddScore(v int) *QuizAttemptUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *QuizAttemptUpdateOne) SetCorrectCount(v int) *QuizAttemptUpdateOne {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *QuizAttemptUpdateOne) SetNillableCorrectCount(v *int) *QuizAttemptUpdateOne {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *QuizAttemptUpdateOne) AddCorrectCount(v int) *QuizAttemptUpdateOne {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *QuizAttemptUpdateOne) SetPassed(v bool) *QuizAttemptUpdateOne {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *QuizAttemptUpdateOne) SetNillablePassed(v *bool) *QuizAttemptUpdateOne {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetScoredAt sets the "scored_at" field.
func (_u *QuizAttemptUpdateOne) SetScoredAt(v time.Time) *QuizAttemptUpdateOne {
	_u.mutation.SetScoredAt(v)
	return _u
}

// SetNillableScoredAt sets the "scored_at" field if the given value is not nil.
func (_u *QuizAttemptUpdateOne) SetNillableScoredAt(v *time.Time) *QuizAttemptUpdateOne {
	if v != nil {
		_u.SetScoredAt(*v)
	}
	return _u
}

// ClearScoredAt clears the value of the "scored_at" field.
func (_u *QuizAttemptUpdateOne) ClearScoredAt() *QuizAttemptUpdateOne {
	_u.mutation.ClearScoredAt()
	return _u
}

// Mutation returns the QuizAttemptMutation object of the builder.
func (_u *QuizAttemptUpdateOne) Mutation() *QuizAttemptMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuizAttemptUpdate builder.
func (_u *QuizAttemptUpdateOne) Where(ps ...predicate.QuizAttempt) *QuizAttemptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizAttemptUpdateOne) Select(field string, fields ...string) *QuizAttemptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuizAttempt entity.
func (_u *QuizAttemptUpdateOne) Save(ctx context.Context) (*QuizAttempt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizAttemptUpdateOne) SaveX(ctx context.Context) *QuizAttempt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizAttemptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizAttemptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizAttemptUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := quizattempt.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.status": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizAttemptUpdateOne) sqlSave(ctx context.Context) (_node *QuizAttempt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizattempt.Table, quizattempt.Columns, sqlgraph.NewFieldSpec(quizattempt.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizAttempt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizattempt.FieldID)
		for _, f := range fields {
			if !quizattempt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizattempt.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(quizattempt.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.QuestionIds(); ok {
		_spec.SetField(quizattempt.FieldQuestionIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestionIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quizattempt.FieldQuestionIds, value)
		})
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(quizattempt.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(quizattempt.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(quizattempt.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(quizattempt.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(quizattempt.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ScoredAt(); ok {
		_spec.SetField(quizattempt.FieldScoredAt, field.TypeTime, value)
	}
	if _u.mutation.ScoredAtCleared() {
		_spec.ClearField(quizattempt.FieldScoredAt, field.TypeTime)
	}
	_node = &QuizAttempt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
