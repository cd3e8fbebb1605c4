// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/HM-aes/smbshield/ent/predicate"
	"github.com/HM-aes/smbshield/ent/quizanswer"
)

// QuizAnswerUpdate is the builder for updating QuizAnswer entities.
type QuizAnswerUpdate struct {
	config
	hooks    []Hook
	mutation *QuizAnswerMutation
}

// Where appends a list predicates to the QuizAnswerUpdate builder.
func (_u *QuizAnswerUpdate) Where(ps ...predicate.QuizAnswer) *QuizAnswerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSubmitted sets the "submitted" field.
func (_u *QuizAnswerUpdate) SetSubmitted(v string) *QuizAnswerUpdate {
	_u.mutation.SetSubmitted(v)
	return _u
}

// SetNillableSubmitted sets the "submitted" field if the given value is not nil.
func (_u *QuizAnswerUpdate) SetNillableSubmitted(v *string) *QuizAnswerUpdate {
	if v != nil {
		_u.SetSubmitted(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *QuizAnswerUpdate) SetCorrect(v bool) *QuizAnswerUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *QuizAnswerUpdate) SetNillableCorrect(v *bool) *QuizAnswerUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// Mutation returns the QuizAnswerMutation object of the builder.
func (_u *QuizAnswerUpdate) Mutation() *QuizAnswerMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizAnswerUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizAnswerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizAnswerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizAnswerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *QuizAnswerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(quizanswer.Table, quizanswer.Columns, sqlgraph.NewFieldSpec(quizanswer.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Submitted(); ok {
		_spec.SetField(quizanswer.FieldSubmitted, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(quizanswer.FieldCorrect, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizanswer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizAnswerUpdateOne is the builder for updating a single QuizAnswer entity.
type QuizAnswerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizAnswerMutation
}

// SetSubmitted sets the "submitted" field.
func (_u *QuizAnswerUpdateOne) SetSubmitted(v string) *QuizAnswerUpdateOne {
	_u.mutation.SetSubmitted(v)
	return _u
}

// SetNillableSubmitted sets the "submitted" field if the given value is not nil.
func (_u *QuizAnswerUpdateOne) SetNillableSubmitted(v *string) *QuizAnswerUpdateOne {
	if v != nil {
		_u.SetSubmitted(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *QuizAnswerUpdateOne) SetCorrect(v bool) *QuizAnswerUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *QuizAnswerUpdateOne) SetNillableCorrect(v *bool) *QuizAnswerUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// Mutation returns the QuizAnswerMutation object of the builder.
func (_u *QuizAnswerUpdateOne) Mutation() *QuizAnswerMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuizAnswerUpdate builder.
func (_u *QuizAnswerUpdateOne) Where(ps ...predicate.QuizAnswer) *QuizAnswerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizAnswerUpdateOne) Select(field string, fields ...string) *QuizAnswerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuizAnswer entity.
func (_u *QuizAnswerUpdateOne) Save(ctx context.Context) (*QuizAnswer, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizAnswerUpdateOne) SaveX(ctx context.Context) *QuizAnswer {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizAnswerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizAnswerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *QuizAnswerUpdateOne) sqlSave(ctx context.Context) (_node *QuizAnswer, err error) {
	_spec := sqlgraph.NewUpdateSpec(quizanswer.Table, quizanswer.Columns, sqlgraph.NewFieldSpec(quizanswer.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizAnswer.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizanswer.FieldID)
		for _, f := range fields {
			if !quizanswer.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizanswer.FieldID {
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
	if value, ok := _u.mutation.Submitted(); ok {
		_spec.SetField(quizanswer.FieldSubmitted, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(quizanswer.FieldCorrect, field.TypeBool, value)
	}
	_node = &QuizAnswer{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizanswer.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
