// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/HM-aes/smbshield/ent/quizanswer"
)

// QuizAnswerCreate is the builder for creating a QuizAnswer entity.
type QuizAnswerCreate struct {
	config
	mutation *QuizAnswerMutation
	hooks    []Hook
}

// SetAttemptID sets the "attempt_id" field.
func (_c *QuizAnswerCreate) SetAttemptID(v string) *QuizAnswerCreate {
	_c.mutation.SetAttemptID(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *QuizAnswerCreate) SetQuestionID(v string) *QuizAnswerCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *QuizAnswerCreate) SetTopic(v string) *QuizAnswerCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetSubmitted sets the "submitted" field.
func (_c *QuizAnswerCreate) SetSubmitted(v string) *QuizAnswerCreate {
	_c.mutation.SetSubmitted(v)
	return _c
}

// SetNillableSubmitted sets the "submitted" field if the given value is not nil.
func (_c *QuizAnswerCreate) SetNillableSubmitted(v *string) *QuizAnswerCreate {
	if v != nil {
		_c.SetSubmitted(*v)
	}
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *QuizAnswerCreate) SetCorrect(v bool) *QuizAnswerCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_c *QuizAnswerCreate) SetNillableCorrect(v *bool) *QuizAnswerCreate {
	if v != nil {
		_c.SetCorrect(*v)
	}
	return _c
}

// Mutation returns the QuizAnswerMutation object of the builder.
func (_c *QuizAnswerCreate) Mutation() *QuizAnswerMutation {
	return _c.mutation
}

// Save creates the QuizAnswer in the database.
func (_c *QuizAnswerCreate) Save(ctx context.Context) (*QuizAnswer, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuizAnswerCreate) SaveX(ctx context.Context) *QuizAnswer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizAnswerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizAnswerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuizAnswerCreate) defaults() {
	if _, ok := _c.mutation.Submitted(); !ok {
		v := quizanswer.DefaultSubmitted
		_c.mutation.SetSubmitted(v)
	}
	if _, ok := _c.mutation.Correct(); !ok {
		v := quizanswer.DefaultCorrect
		_c.mutation.SetCorrect(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuizAnswerCreate) check() error {
	if _, ok := _c.mutation.AttemptID(); !ok {
		return &ValidationError{Name: "attempt_id", err: errors.New(`ent: missing required field "QuizAnswer.attempt_id"`)}
	}
	if v, ok := _c.mutation.AttemptID(); ok {
		if err := quizanswer.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "QuizAnswer.attempt_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "QuizAnswer.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := quizanswer.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "QuizAnswer.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "QuizAnswer.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := quizanswer.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "QuizAnswer.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Submitted(); !ok {
		return &ValidationError{Name: "submitted", err: errors.New(`ent: missing required field "QuizAnswer.submitted"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "QuizAnswer.correct"`)}
	}
	return nil
}

func (_c *QuizAnswerCreate) sqlSave(ctx context.Context) (*QuizAnswer, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QuizAnswerCreate) createSpec() (*QuizAnswer, *sqlgraph.CreateSpec) {
	var (
		_node = &QuizAnswer{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quizanswer.Table, sqlgraph.NewFieldSpec(quizanswer.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.AttemptID(); ok {
		_spec.SetField(quizanswer.FieldAttemptID, field.TypeString, value)
		_node.AttemptID = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(quizanswer.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(quizanswer.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Submitted(); ok {
		_spec.SetField(quizanswer.FieldSubmitted, field.TypeString, value)
		_node.Submitted = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(quizanswer.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	return _node, _spec
}

// QuizAnswerCreateBulk is the builder for creating many QuizAnswer entities in bulk.
type QuizAnswerCreateBulk struct {
	config
	err      error
	builders []*QuizAnswerCreate
}

// Save creates the QuizAnswer entities in the database.
func (_c *QuizAnswerCreateBulk) Save(ctx context.Context) ([]*QuizAnswer, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuizAnswer, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuizAnswerMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *QuizAnswerCreateBulk) SaveX(ctx context.Context) []*QuizAnswer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizAnswerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizAnswerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
