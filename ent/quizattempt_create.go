// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/HM-aes/smbshield/ent/quizattempt"
)

// QuizAttemptCreate is the builder for creating a QuizAttempt entity.
type QuizAttemptCreate struct {
	config
	mutation *QuizAttemptMutation
	hooks    []Hook
}

// SetAttemptID sets the "attempt_id" field.
func (_c *QuizAttemptCreate) SetAttemptID(v string) *QuizAttemptCreate {
	_c.mutation.SetAttemptID(v)
	return _c
}

// SetAccountID sets the "account_id" field.
func (_c *QuizAttemptCreate) SetAccountID(v string) *QuizAttemptCreate {
	_c.mutation.SetAccountID(v)
	return _c
}

// SetModuleCode sets the "module_code" field.
func (_c *QuizAttemptCreate) SetModuleCode(v string) *QuizAttemptCreate {
	_c.mutation.SetModuleCode(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *QuizAttemptCreate) SetStatus(v quizattempt.Status) *QuizAttemptCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *QuizAttemptCreate) SetNillableStatus(v *quizattempt.Status) *QuizAttemptCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetQuestionIds sets the "question_ids" field.
func (_c *QuizAttemptCreate) SetQuestionIds(v []string) *QuizAttemptCreate {
	_c.mutation.SetQuestionIds(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *QuizAttemptCreate) SetScore(v int) *QuizAttemptCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *QuizAttemptCreate) SetNillableScore(v *int) *QuizAttemptCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetCorrectCount sets the "correct_count" field.
func (_c *QuizAttemptCreate) SetCorrectCount(v int) *QuizAttemptCreate {
	_c.mutation.SetCorrectCount(v)
	return _c
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_c *QuizAttemptCreate) SetNillableCorrectCount(v *int) *QuizAttemptCreate {
	if v != nil {
		_c.SetCorrectCount(*v)
	}
	return _c
}

// SetPassed sets the "passed" field.
func (_c *QuizAttemptCreate) SetPassed(v bool) *QuizAttemptCreate {
	_c.mutation.SetPassed(v)
	return _c
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_c *QuizAttemptCreate) SetNillablePassed(v *bool) *QuizAttemptCreate {
	if v != nil {
		_c.SetPassed(*v)
	}
	return _c
}

// SetIssuedAt sets the "issued_at" field.
func (_c *QuizAttemptCreate) SetIssuedAt(v time.Time) *QuizAttemptCreate {
	_c.mutation.SetIssuedAt(v)
	return _c
}

// SetNillableIssuedAt sets the "issued_at" field if the given value is not nil.
func (_c *QuizAttemptCreate) SetNillableIssuedAt(v *time.Time) *QuizAttemptCreate {
	if v != nil {
		_c.SetIssuedAt(*v)
	}
	return _c
}

// SetScoredAt sets the "scored_at" field.
func (_c *QuizAttemptCreate) SetScoredAt(v time.Time) *QuizAttemptCreate {
	_c.mutation.SetScoredAt(v)
	return _c
}

// SetNillableScoredAt sets the "scored_at" field if the given value is not nil.
func (_c *QuizAttemptCreate) SetNillableScoredAt(v *time.Time) *QuizAttemptCreate {
	if v != nil {
		_c.SetScoredAt(*v)
	}
	return _c
}

// Mutation returns the QuizAttemptMutation object of the builder.
func (_c *QuizAttemptCreate) Mutation() *QuizAttemptMutation {
	return _c.mutation
}

// Save creates the QuizAttempt in the database.
func (_c *QuizAttemptCreate) Save(ctx context.Context) (*QuizAttempt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuizAttemptCreate) SaveX(ctx context.Context) *QuizAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizAttemptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizAttemptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuizAttemptCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := quizattempt.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Score(); !ok {
		v := quizattempt.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		v := quizattempt.DefaultCorrectCount
		_c.mutation.SetCorrectCount(v)
	}
	if _, ok := _c.mutation.Passed(); !ok {
		v := quizattempt.DefaultPassed
		_c.mutation.SetPassed(v)
	}
	if _, ok := _c.mutation.IssuedAt(); !ok {
		v := quizattempt.DefaultIssuedAt()
		_c.mutation.SetIssuedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuizAttemptCreate) check() error {
	if _, ok := _c.mutation.AttemptID(); !ok {
		return &ValidationError{Name: "attempt_id", err: errors.New(`ent: missing required field "QuizAttempt.attempt_id"`)}
	}
	if v, ok := _c.mutation.AttemptID(); ok {
		if err := quizattempt.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.attempt_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AccountID(); !ok {
		return &ValidationError{Name: "account_id", err: errors.New(`ent: missing required field "QuizAttempt.account_id"`)}
	}
	if v, ok := _c.mutation.AccountID(); ok {
		if err := quizattempt.AccountIDValidator(v); err != nil {
			return &ValidationError{Name: "account_id", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.account_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ModuleCode(); !ok {
		return &ValidationError{Name: "module_code", err: errors.New(`ent: missing required field "QuizAttempt.module_code"`)}
	}
	if v, ok := _c.mutation.ModuleCode(); ok {
		if err := quizattempt.ModuleCodeValidator(v); err != nil {
			return &ValidationError{Name: "module_code", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.module_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "QuizAttempt.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := quizattempt.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionIds(); !ok {
		return &ValidationError{Name: "question_ids", err: errors.New(`ent: missing required field "QuizAttempt.question_ids"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "QuizAttempt.score"`)}
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		return &ValidationError{Name: "correct_count", err: errors.New(`ent: missing required field "QuizAttempt.correct_count"`)}
	}
	if _, ok := _c.mutation.Passed(); !ok {
		return &ValidationError{Name: "passed", err: errors.New(`ent: missing required field "QuizAttempt.passed"`)}
	}
	if _, ok := _c.mutation.IssuedAt(); !ok {
		return &ValidationError{Name: "issued_at", err: errors.New(`ent: missing required field "QuizAttempt.issued_at"`)}
	}
	return nil
}

func (_c *QuizAttemptCreate) sqlSave(ctx context.Context) (*QuizAttempt, error) {
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

func (_c *QuizAttemptCreate) createSpec() (*QuizAttempt, *sqlgraph.CreateSpec) {
	var (
		_node = &QuizAttempt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quizattempt.Table, sqlgraph.NewFieldSpec(quizattempt.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.AttemptID(); ok {
		_spec.SetField(quizattempt.FieldAttemptID, field.TypeString, value)
		_node.AttemptID = value
	}
	if value, ok := _c.mutation.AccountID(); ok {
		_spec.SetField(quizattempt.FieldAccountID, field.TypeString, value)
		_node.AccountID = value
	}
	if value, ok := _c.mutation.ModuleCode(); ok {
		_spec.SetField(quizattempt.FieldModuleCode, field.TypeString, value)
		_node.ModuleCode = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(quizattempt.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.QuestionIds(); ok {
		_spec.SetField(quizattempt.FieldQuestionIds, field.TypeJSON, value)
		_node.QuestionIds = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(quizattempt.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.CorrectCount(); ok {
		_spec.SetField(quizattempt.FieldCorrectCount, field.TypeInt, value)
		_node.CorrectCount = value
	}
	if value, ok := _c.mutation.Passed(); ok {
		_spec.SetField(quizattempt.FieldPassed, field.TypeBool, value)
		_node.Passed = value
	}
	if value, ok := _c.mutation.IssuedAt(); ok {
		_spec.SetField(quizattempt.FieldIssuedAt, field.TypeTime, value)
		_node.IssuedAt = value
	}
	if value, ok := _c.mutation.ScoredAt(); ok {
		_spec.SetField(quizattempt.FieldScoredAt, field.TypeTime, value)
		_node.ScoredAt = &value
	}
	return _node, _spec
}

// QuizAttemptCreateBulk is the builder for creating many QuizAttempt entities in bulk.
type QuizAttemptCreateBulk struct {
	config
	err      error
	builders []*QuizAttemptCreate
}

// Save creates the QuizAttempt entities in the database.
func (_c *QuizAttemptCreateBulk) Save(ctx context.Context) ([]*QuizAttempt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuizAttempt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuizAttemptMutation)
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
func (_c *QuizAttemptCreateBulk) SaveX(ctx context.Context) []*QuizAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizAttemptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizAttemptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
