// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/HM-aes/smbshield/ent/progressrecord"
)

// ProgressRecordCreate is the builder for creating a ProgressRecord entity.
type ProgressRecordCreate struct {
	config
	mutation *ProgressRecordMutation
	hooks    []Hook
}

// SetAccountID sets the "account_id" field.
func (_c *ProgressRecordCreate) SetAccountID(v string) *ProgressRecordCreate {
	_c.mutation.SetAccountID(v)
	return _c
}

// SetLessonID sets the "lesson_id" field.
func (_c *ProgressRecordCreate) SetLessonID(v string) *ProgressRecordCreate {
	_c.mutation.SetLessonID(v)
	return _c
}

// SetModuleCode sets the "module_code" field.
func (_c *ProgressRecordCreate) SetModuleCode(v string) *ProgressRecordCreate {
	_c.mutation.SetModuleCode(v)
	return _c
}

// SetCompleted sets the "completed" field.
func (_c *ProgressRecordCreate) SetCompleted(v bool) *ProgressRecordCreate {
	_c.mutation.SetCompleted(v)
	return _c
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableCompleted(v *bool) *ProgressRecordCreate {
	if v != nil {
		_c.SetCompleted(*v)
	}
	return _c
}

// SetTimeSpentSeconds sets the "time_spent_seconds" field.
func (_c *ProgressRecordCreate) SetTimeSpentSeconds(v int) *ProgressRecordCreate {
	_c.mutation.SetTimeSpentSeconds(v)
	return _c
}

// SetNillableTimeSpentSeconds sets the "time_spent_seconds" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableTimeSpentSeconds(v *int) *ProgressRecordCreate {
	if v != nil {
		_c.SetTimeSpentSeconds(*v)
	}
	return _c
}

// SetQuickCheckCorrect sets the "quick_check_correct" field.
func (_c *ProgressRecordCreate) SetQuickCheckCorrect(v bool) *ProgressRecordCreate {
	_c.mutation.SetQuickCheckCorrect(v)
	return _c
}

// SetNillableQuickCheckCorrect sets the "quick_check_correct" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableQuickCheckCorrect(v *bool) *ProgressRecordCreate {
	if v != nil {
		_c.SetQuickCheckCorrect(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ProgressRecordCreate) SetStartedAt(v time.Time) *ProgressRecordCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableStartedAt(v *time.Time) *ProgressRecordCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ProgressRecordCreate) SetCompletedAt(v time.Time) *ProgressRecordCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableCompletedAt(v *time.Time) *ProgressRecordCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// Mutation returns the ProgressRecordMutation object of the builder.
func (_c *ProgressRecordCreate) Mutation() *ProgressRecordMutation {
	return _c.mutation
}

// Save creates the ProgressRecord in the database.
func (_c *ProgressRecordCreate) Save(ctx context.Context) (*ProgressRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProgressRecordCreate) SaveX(ctx context.Context) *ProgressRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProgressRecordCreate) defaults() {
	if _, ok := _c.mutation.Completed(); !ok {
		v := progressrecord.DefaultCompleted
		_c.mutation.SetCompleted(v)
	}
	if _, ok := _c.mutation.TimeSpentSeconds(); !ok {
		v := progressrecord.DefaultTimeSpentSeconds
		_c.mutation.SetTimeSpentSeconds(v)
	}
	if _, ok := _c.mutation.QuickCheckCorrect(); !ok {
		v := progressrecord.DefaultQuickCheckCorrect
		_c.mutation.SetQuickCheckCorrect(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := progressrecord.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProgressRecordCreate) check() error {
	if _, ok := _c.mutation.AccountID(); !ok {
		return &ValidationError{Name: "account_id", err: errors.New(`ent: missing required field "ProgressRecord.account_id"`)}
	}
	if v, ok := _c.mutation.AccountID(); ok {
		if err := progressrecord.AccountIDValidator(v); err != nil {
			return &ValidationError{Name: "account_id", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.account_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LessonID(); !ok {
		return &ValidationError{Name: "lesson_id", err: errors.New(`ent: missing required field "ProgressRecord.lesson_id"`)}
	}
	if v, ok := _c.mutation.LessonID(); ok {
		if err := progressrecord.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.lesson_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ModuleCode(); !ok {
		return &ValidationError{Name: "module_code", err: errors.New(`ent: missing required field "ProgressRecord.module_code"`)}
	}
	if v, ok := _c.mutation.ModuleCode(); ok {
		if err := progressrecord.ModuleCodeValidator(v); err != nil {
			return &ValidationError{Name: "module_code", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.module_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Completed(); !ok {
		return &ValidationError{Name: "completed", err: errors.New(`ent: missing required field "ProgressRecord.completed"`)}
	}
	if _, ok := _c.mutation.TimeSpentSeconds(); !ok {
		return &ValidationError{Name: "time_spent_seconds", err: errors.New(`ent: missing required field "ProgressRecord.time_spent_seconds"`)}
	}
	if _, ok := _c.mutation.QuickCheckCorrect(); !ok {
		return &ValidationError{Name: "quick_check_correct", err: errors.New(`ent: missing required field "ProgressRecord.quick_check_correct"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "ProgressRecord.started_at"`)}
	}
	return nil
}

func (_c *ProgressRecordCreate) sqlSave(ctx context.Context) (*ProgressRecord, error) {
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

func (_c *ProgressRecordCreate) createSpec() (*ProgressRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &ProgressRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(progressrecord.Table, sqlgraph.NewFieldSpec(progressrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.AccountID(); ok {
		_spec.SetField(progressrecord.FieldAccountID, field.TypeString, value)
		_node.AccountID = value
	}
	if value, ok := _c.mutation.LessonID(); ok {
		_spec.SetField(progressrecord.FieldLessonID, field.TypeString, value)
		_node.LessonID = value
	}
	if value, ok := _c.mutation.ModuleCode(); ok {
		_spec.SetField(progressrecord.FieldModuleCode, field.TypeString, value)
		_node.ModuleCode = value
	}
	if value, ok := _c.mutation.Completed(); ok {
		_spec.SetField(progressrecord.FieldCompleted, field.TypeBool, value)
		_node.Completed = value
	}
	if value, ok := _c.mutation.TimeSpentSeconds(); ok {
		_spec.SetField(progressrecord.FieldTimeSpentSeconds, field.TypeInt, value)
		_node.TimeSpentSeconds = value
	}
	if value, ok := _c.mutation.QuickCheckCorrect(); ok {
		_spec.SetField(progressrecord.FieldQuickCheckCorrect, field.TypeBool, value)
		_node.QuickCheckCorrect = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(progressrecord.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(progressrecord.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// ProgressRecordCreateBulk is the builder for creating many ProgressRecord entities in bulk.
type ProgressRecordCreateBulk struct {
	config
	err      error
	builders []*ProgressRecordCreate
}

// Save creates the ProgressRecord entities in the database.
func (_c *ProgressRecordCreateBulk) Save(ctx context.Context) ([]*ProgressRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProgressRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProgressRecordMutation)
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
func (_c *ProgressRecordCreateBulk) SaveX(ctx context.Context) []*ProgressRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
