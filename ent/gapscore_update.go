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
	"github.com/HM-aes/smbshield/ent/gapscore"
	"github.com/HM-aes/smbshield/ent/predicate"
)

// GapScoreUpdate is the builder for updating GapScore entities.
type GapScoreUpdate struct {
	config
	hooks    []Hook
	mutation *GapScoreMutation
}

// Where appends a list predicates to the GapScoreUpdate builder.
func (_u *GapScoreUpdate) Where(ps ...predicate.GapScore) *GapScoreUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetScore sets the "score" field.
func (_u *GapScoreUpdate) SetScore(v int) *GapScoreUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *GapScoreUpdate) SetNillableScore(v *int) *GapScoreUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *GapScoreUpdate) AddScore(v int) *GapScoreUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetLastTested sets the "last_tested" field.
func (_u *GapScoreUpdate) SetLastTested(v time.Time) *GapScoreUpdate {
	_u.mutation.SetLastTested(v)
	return _u
}

// SetNillableLastTested sets the "last_tested" field if the given value is not nil.
func (_u *GapScoreUpdate) SetNillableLastTested(v *time.Time) *GapScoreUpdate {
	if v != nil {
		_u.SetLastTested(*v)
	}
	return _u
}

// Mutation returns the GapScoreMutation object of the builder.
func (_u *GapScoreUpdate) Mutation() *GapScoreMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GapScoreUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GapScoreUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GapScoreUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GapScoreUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *GapScoreUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(gapscore.Table, gapscore.Columns, sqlgraph.NewFieldSpec(gapscore.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(gapscore.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(gapscore.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastTested(); ok {
		_spec.SetField(gapscore.FieldLastTested, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gapscore.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GapScoreUpdateOne is the builder for updating a single GapScore entity.
type GapScoreUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GapScoreMutation
}

// SetScore sets the "score" field.
func (_u *GapScoreUpdateOne) SetScore(v int) *GapScoreUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *GapScoreUpdateOne) SetNillableScore(v *int) *GapScoreUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *GapScoreUpdateOne) AddScore(v int) *GapScoreUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetLastTested sets the "last_tested" field.
func (_u *GapScoreUpdateOne) SetLastTested(v time.Time) *GapScoreUpdateOne {
	_u.mutation.SetLastTested(v)
	return _u
}

// SetNillableLastTested sets the "last_tested" field if the given value is not nil.
func (_u *GapScoreUpdateOne) SetNillableLastTested(v *time.Time) *GapScoreUpdateOne {
	if v != nil {
		_u.SetLastTested(*v)
	}
	return _u
}

// Mutation returns the GapScoreMutation object of the builder.
func (_u *GapScoreUpdateOne) Mutation() *GapScoreMutation {
	return _u.mutation
}

// Where appends a list predicates to the GapScoreUpdate builder.
func (_u *GapScoreUpdateOne) Where(ps ...predicate.GapScore) *GapScoreUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GapScoreUpdateOne) Select(field string, fields ...string) *GapScoreUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GapScore entity.
func (_u *GapScoreUpdateOne) Save(ctx context.Context) (*GapScore, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GapScoreUpdateOne) SaveX(ctx context.Context) *GapScore {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GapScoreUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GapScoreUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *GapScoreUpdateOne) sqlSave(ctx context.Context) (_node *GapScore, err error) {
	_spec := sqlgraph.NewUpdateSpec(gapscore.Table, gapscore.Columns, sqlgraph.NewFieldSpec(gapscore.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GapScore.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, gapscore.FieldID)
		for _, f := range fields {
			if !gapscore.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != gapscore.FieldID {
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
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(gapscore.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(gapscore.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastTested(); ok {
		_spec.SetField(gapscore.FieldLastTested, field.TypeTime, value)
	}
	_node = &GapScore{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gapscore.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
