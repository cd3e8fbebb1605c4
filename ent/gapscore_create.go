// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/HM-aes/smbshield/ent/gapscore"
)

// GapScoreCreate is the builder for creating a GapScore entity.
type GapScoreCreate struct {
	config
	mutation *GapScoreMutation
	hooks    []Hook
}

// SetAccountID sets the "account_id" field.
func (_c *GapScoreCreate) SetAccountID(v string) *GapScoreCreate {
	_c.mutation.SetAccountID(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *GapScoreCreate) SetTopic(v string) *GapScoreCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *GapScoreCreate) SetScore(v int) *GapScoreCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *GapScoreCreate) SetNillableScore(v *int) *GapScoreCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetLastTested sets the "last_tested" field.
func (_c *GapScoreCreate) SetLastTested(v time.Time) *GapScoreCreate {
	_c.mutation.SetLastTested(v)
	return _c
}

// Mutation returns the GapScoreMutation object of the builder.
func (_c *GapScoreCreate) Mutation() *GapScoreMutation {
	return _c.mutation
}

// Save creates the GapScore in the database.
func (_c *GapScoreCreate) Save(ctx context.Context) (*GapScore, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GapScoreCreate) SaveX(ctx context.Context) *GapScore {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GapScoreCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GapScoreCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GapScoreCreate) defaults() {
	if _, ok := _c.mutation.Score(); !ok {
		v := gapscore.DefaultScore
		_c.mutation.SetScore(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GapScoreCreate) check() error {
	if _, ok := _c.mutation.AccountID(); !ok {
		return &ValidationError{Name: "account_id", err: errors.New(`ent: missing required field "GapScore.account_id"`)}
	}
	if v, ok := _c.mutation.AccountID(); ok {
		if err := gapscore.AccountIDValidator(v); err != nil {
			return &ValidationError{Name: "account_id", err: fmt.Errorf(`ent: validator failed for field "GapScore.account_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "GapScore.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := gapscore.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "GapScore.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "GapScore.score"`)}
	}
	if _, ok := _c.mutation.LastTested(); !ok {
		return &ValidationError{Name: "last_tested", err: errors.New(`ent: missing required field "GapScore.last_tested"`)}
	}
	return nil
}

func (_c *GapScoreCreate) sqlSave(ctx context.Context) (*GapScore, error) {
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

func (_c *GapScoreCreate) createSpec() (*GapScore, *sqlgraph.CreateSpec) {
	var (
		_node = &GapScore{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(gapscore.Table, sqlgraph.NewFieldSpec(gapscore.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.AccountID(); ok {
		_spec.SetField(gapscore.FieldAccountID, field.TypeString, value)
		_node.AccountID = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(gapscore.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(gapscore.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.LastTested(); ok {
		_spec.SetField(gapscore.FieldLastTested, field.TypeTime, value)
		_node.LastTested = value
	}
	return _node, _spec
}

// GapScoreCreateBulk is the builder for creating many GapScore entities in bulk.
type GapScoreCreateBulk struct {
	config
	err      error
	builders []*GapScoreCreate
}

// Save creates the GapScore entities in the database.
func (_c *GapScoreCreateBulk) Save(ctx context.Context) ([]*GapScore, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GapScore, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GapScoreMutation)
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
func (_c *GapScoreCreateBulk) SaveX(ctx context.Context) []*GapScore {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GapScoreCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GapScoreCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
