// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/HM-aes/smbshield/ent/billingevent"
)

// BillingEventCreate is the builder for creating a BillingEvent entity.
type BillingEventCreate struct {
	config
	mutation *BillingEventMutation
	hooks    []Hook
}

// SetAccountID sets the "account_id" field.
func (_c *BillingEventCreate) SetAccountID(v string) *BillingEventCreate {
	_c.mutation.SetAccountID(v)
	return _c
}

// SetFromTier sets the "from_tier" field.
func (_c *BillingEventCreate) SetFromTier(v billingevent.FromTier) *BillingEventCreate {
	_c.mutation.SetFromTier(v)
	return _c
}

// SetToTier sets the "to_tier" field.
func (_c *BillingEventCreate) SetToTier(v billingevent.ToTier) *BillingEventCreate {
	_c.mutation.SetToTier(v)
	return _c
}

// SetReference sets the "reference" field.
func (_c *BillingEventCreate) SetReference(v string) *BillingEventCreate {
	_c.mutation.SetReference(v)
	return _c
}

// SetNillableReference sets the "reference" field if the given value is not nil.
func (_c *BillingEventCreate) SetNillableReference(v *string) *BillingEventCreate {
	if v != nil {
		_c.SetReference(*v)
	}
	return _c
}

// SetOccurredAt sets the "occurred_at" field.
func (_c *BillingEventCreate) SetOccurredAt(v time.Time) *BillingEventCreate {
	_c.mutation.SetOccurredAt(v)
	return _c
}

// SetNillableOccurredAt sets the "occurred_at" field if the given value is not nil.
func (_c *BillingEventCreate) SetNillableOccurredAt(v *time.Time) *BillingEventCreate {
	if v != nil {
		_c.SetOccurredAt(*v)
	}
	return _c
}

// Mutation returns the BillingEventMutation object of the builder.
func (_c *BillingEventCreate) Mutation() *BillingEventMutation {
	return _c.mutation
}

// Save creates the BillingEvent in the database.
func (_c *BillingEventCreate) Save(ctx context.Context) (*BillingEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BillingEventCreate) SaveX(ctx context.Context) *BillingEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BillingEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BillingEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BillingEventCreate) defaults() {
	if _, ok := _c.mutation.Reference(); !ok {
		v := billingevent.DefaultReference
		_c.mutation.SetReference(v)
	}
	if _, ok := _c.mutation.OccurredAt(); !ok {
		v := billingevent.DefaultOccurredAt()
		_c.mutation.SetOccurredAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BillingEventCreate) check() error {
	if _, ok := _c.mutation.AccountID(); !ok {
		return &ValidationError{Name: "account_id", err: errors.New(`ent: missing required field "BillingEvent.account_id"`)}
	}
	if v, ok := _c.mutation.AccountID(); ok {
		if err := billingevent.AccountIDValidator(v); err != nil {
			return &ValidationError{Name: "account_id", err: fmt.Errorf(`ent: validator failed for field "BillingEvent.account_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FromTier(); !ok {
		return &ValidationError{Name: "from_tier", err: errors.New(`ent: missing required field "BillingEvent.from_tier"`)}
	}
	if v, ok := _c.mutation.FromTier(); ok {
		if err := billingevent.FromTierValidator(v); err != nil {
			return &ValidationError{Name: "from_tier", err: fmt.Errorf(`ent: validator failed for field "BillingEvent.from_tier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ToTier(); !ok {
		return &ValidationError{Name: "to_tier", err: errors.New(`ent: missing required field "BillingEvent.to_tier"`)}
	}
	if v, ok := _c.mutation.ToTier(); ok {
		if err := billingevent.ToTierValidator(v); err != nil {
			return &ValidationError{Name: "to_tier", err: fmt.Errorf(`ent: validator failed for field "BillingEvent.to_tier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Reference(); !ok {
		return &ValidationError{Name: "reference", err: errors.New(`ent: missing required field "BillingEvent.reference"`)}
	}
	if _, ok := _c.mutation.OccurredAt(); !ok {
		return &ValidationError{Name: "occurred_at", err: errors.New(`ent: missing required field "BillingEvent.occurred_at"`)}
	}
	return nil
}

func (_c *BillingEventCreate) sqlSave(ctx context.Context) (*BillingEvent, error) {
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

func (_c *BillingEventCreate) createSpec() (*BillingEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &BillingEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(billingevent.Table, sqlgraph.NewFieldSpec(billingevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.AccountID(); ok {
		_spec.SetField(billingevent.FieldAccountID, field.TypeString, value)
		_node.AccountID = value
	}
	if value, ok := _c.mutation.FromTier(); ok {
		_spec.SetField(billingevent.FieldFromTier, field.TypeEnum, value)
		_node.FromTier = value
	}
	if value, ok := _c.mutation.ToTier(); ok {
		_spec.SetField(billingevent.FieldToTier, field.TypeEnum, value)
		_node.ToTier = value
	}
	if value, ok := _c.mutation.Reference(); ok {
		_spec.SetField(billingevent.FieldReference, field.TypeString, value)
		_node.Reference = value
	}
	if value, ok := _c.mutation.OccurredAt(); ok {
		_spec.SetField(billingevent.FieldOccurredAt, field.TypeTime, value)
		_node.OccurredAt = value
	}
	return _node, _spec
}

// BillingEventCreateBulk is the builder for creating many BillingEvent entities in bulk.
type BillingEventCreateBulk struct {
	config
	err      error
	builders []*BillingEventCreate
}

// Save creates the BillingEvent entities in the database.
func (_c *BillingEventCreateBulk) Save(ctx context.Context) ([]*BillingEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BillingEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BillingEventMutation)
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
func (_c *BillingEventCreateBulk) SaveX(ctx context.Context) []*BillingEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BillingEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BillingEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
