// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/HM-aes/smbshield/ent/billingevent"
	"github.com/HM-aes/smbshield/ent/predicate"
)

// BillingEventUpdate is the builder for updating BillingEvent entities.
type BillingEventUpdate struct {
	config
	hooks    []Hook
	mutation *BillingEventMutation
}

// Where appends a list predicates to the BillingEventUpdate builder.
func (_u *BillingEventUpdate) Where(ps ...predicate.BillingEvent) *BillingEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetReference sets the "reference" field.
func (_u *BillingEventUpdate) SetReference(v string) *BillingEventUpdate {
	_u.mutation.SetReference(v)
	return _u
}

// SetNillableReference sets the "reference" field if the given value is not nil.
func (_u *BillingEventUpdate) SetNillableReference(v *string) *BillingEventUpdate {
	if v != nil {
		_u.SetReference(*v)
	}
	return _u
}

// Mutation returns the BillingEventMutation object of the builder.
func (_u *BillingEventUpdate) Mutation() *BillingEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BillingEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BillingEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BillingEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BillingEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *BillingEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(billingevent.Table, billingevent.Columns, sqlgraph.NewFieldSpec(billingevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Reference(); ok {
		_spec.SetField(billingevent.FieldReference, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{billingevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BillingEventUpdateOne is the builder for updating a single BillingEvent entity.
type BillingEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BillingEventMutation
}

// SetReference sets the "reference" field.
func (_u *BillingEventUpdateOne) SetReference(v string) *BillingEventUpdateOne {
	_u.mutation.SetReference(v)
	return _u
}

// SetNillableReference sets the "reference" field if the given value is not nil.
func (_u *BillingEventUpdateOne) SetNillableReference(v *string) *BillingEventUpdateOne {
	if v != nil {
		_u.SetReference(*v)
	}
	return _u
}

// Mutation returns the BillingEventMutation object of the builder.
func (_u *BillingEventUpdateOne) Mutation() *BillingEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the BillingEventUpdate builder.
func (_u *BillingEventUpdateOne) Where(ps ...predicate.BillingEvent) *BillingEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BillingEventUpdateOne) Select(field string, fields ...string) *BillingEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BillingEvent entity.
func (_u *BillingEventUpdateOne) Save(ctx context.Context) (*BillingEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BillingEventUpdateOne) SaveX(ctx context.Context) *BillingEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BillingEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BillingEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *BillingEventUpdateOne) sqlSave(ctx context.Context) (_node *BillingEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(billingevent.Table, billingevent.Columns, sqlgraph.NewFieldSpec(billingevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BillingEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, billingevent.FieldID)
		for _, f := range fields {
			if !billingevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != billingevent.FieldID {
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
	if value, ok := _u.mutation.Reference(); ok {
		_spec.SetField(billingevent.FieldReference, field.TypeString, value)
	}
	_node = &BillingEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{billingevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
