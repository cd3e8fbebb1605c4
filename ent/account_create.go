// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/HM-aes/smbshield/ent/account"
)

// AccountCreate is the builder for creating a Account entity.
type AccountCreate struct {
	config
	mutation *AccountMutation
	hooks    []Hook
}

// SetAccountID sets the "account_id" field.
func (_c *AccountCreate) SetAccountID(v string) *AccountCreate {
	_c.mutation.SetAccountID(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *AccountCreate) SetEmail(v string) *AccountCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetCompanyName sets the "company_name" field.
func (_c *AccountCreate) SetCompanyName(v string) *AccountCreate {
	_c.mutation.SetCompanyName(v)
	return _c
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_c *AccountCreate) SetNillableCompanyName(v *string) *AccountCreate {
	if v != nil {
		_c.SetCompanyName(*v)
	}
	return _c
}

// SetTier sets the "tier" field.
func (_c *AccountCreate) SetTier(v account.Tier) *AccountCreate {
	_c.mutation.SetTier(v)
	return _c
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_c *AccountCreate) SetNillableTier(v *account.Tier) *AccountCreate {
	if v != nil {
		_c.SetTier(*v)
	}
	return _c
}

// SetTrialStart sets the "trial_start" field.
func (_c *AccountCreate) SetTrialStart(v time.Time) *AccountCreate {
	_c.mutation.SetTrialStart(v)
	return _c
}

// SetTrialLengthDays sets the "trial_length_days" field.
func (_c *AccountCreate) SetTrialLengthDays(v int) *AccountCreate {
	_c.mutation.SetTrialLengthDays(v)
	return _c
}

// SetNillableTrialLengthDays sets the "trial_length_days" field if the given value is not nil.
func (_c *AccountCreate) SetNillableTrialLengthDays(v *int) *AccountCreate {
	if v != nil {
		_c.SetTrialLengthDays(*v)
	}
	return _c
}

// SetOwaspLevel sets the "owasp_level" field.
func (_c *AccountCreate) SetOwaspLevel(v int) *AccountCreate {
	_c.mutation.SetOwaspLevel(v)
	return _c
}

// SetNillableOwaspLevel sets the "owasp_level" field if the given value is not nil.
func (_c *AccountCreate) SetNillableOwaspLevel(v *int) *AccountCreate {
	if v != nil {
		_c.SetOwaspLevel(*v)
	}
	return _c
}

// SetScoreTotal sets the "score_total" field.
func (_c *AccountCreate) SetScoreTotal(v int) *AccountCreate {
	_c.mutation.SetScoreTotal(v)
	return _c
}

// SetNillableScoreTotal sets the "score_total" field if the given value is not nil.
func (_c *AccountCreate) SetNillableScoreTotal(v *int) *AccountCreate {
	if v != nil {
		_c.SetScoreTotal(*v)
	}
	return _c
}

// SetLessonsCompleted sets the "lessons_completed" field.
func (_c *AccountCreate) SetLessonsCompleted(v int) *AccountCreate {
	_c.mutation.SetLessonsCompleted(v)
	return _c
}

// SetNillableLessonsCompleted sets the "lessons_completed" field if the given value is not nil.
func (_c *AccountCreate) SetNillableLessonsCompleted(v *int) *AccountCreate {
	if v != nil {
		_c.SetLessonsCompleted(*v)
	}
	return _c
}

// SetQuizzesPassed sets the "quizzes_passed" field.
func (_c *AccountCreate) SetQuizzesPassed(v int) *AccountCreate {
	_c.mutation.SetQuizzesPassed(v)
	return _c
}

// SetNillableQuizzesPassed sets the "quizzes_passed" field if the given value is not nil.
func (_c *AccountCreate) SetNillableQuizzesPassed(v *int) *AccountCreate {
	if v != nil {
		_c.SetQuizzesPassed(*v)
	}
	return _c
}

// SetCurrentStreakDays sets the "current_streak_days" field.
func (_c *AccountCreate) SetCurrentStreakDays(v int) *AccountCreate {
	_c.mutation.SetCurrentStreakDays(v)
	return _c
}

// SetNillableCurrentStreakDays sets the "current_streak_days" field if the given value is not nil.
func (_c *AccountCreate) SetNillableCurrentStreakDays(v *int) *AccountCreate {
	if v != nil {
		_c.SetCurrentStreakDays(*v)
	}
	return _c
}

// SetLongestStreakDays sets the "longest_streak_days" field.
func (_c *AccountCreate) SetLongestStreakDays(v int) *AccountCreate {
	_c.mutation.SetLongestStreakDays(v)
	return _c
}

// SetNillableLongestStreakDays sets the "longest_streak_days" field if the given value is not nil.
func (_c *AccountCreate) SetNillableLongestStreakDays(v *int) *AccountCreate {
	if v != nil {
		_c.SetLongestStreakDays(*v)
	}
	return _c
}

// SetLastActivityDate sets the "last_activity_date" field.
func (_c *AccountCreate) SetLastActivityDate(v time.Time) *AccountCreate {
	_c.mutation.SetLastActivityDate(v)
	return _c
}

// SetNillableLastActivityDate sets the "last_activity_date" field if the given value is not nil.
func (_c *AccountCreate) SetNillableLastActivityDate(v *time.Time) *AccountCreate {
	if v != nil {
		_c.SetLastActivityDate(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AccountCreate) SetCreatedAt(v time.Time) *AccountCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AccountCreate) SetNillableCreatedAt(v *time.Time) *AccountCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AccountCreate) SetUpdatedAt(v time.Time) *AccountCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AccountCreate) SetNillableUpdatedAt(v *time.Time) *AccountCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the AccountMutation object of the builder.
func (_c *AccountCreate) Mutation() *AccountMutation {
	return _c.mutation
}

// Save creates the Account in the database.
func (_c *AccountCreate) Save(ctx context.Context) (*Account, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AccountCreate) SaveX(ctx context.Context) *Account {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AccountCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AccountCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AccountCreate) defaults() {
	if _, ok := _c.mutation.CompanyName(); !ok {
		v := account.DefaultCompanyName
		_c.mutation.SetCompanyName(v)
	}
	if _, ok := _c.mutation.Tier(); !ok {
		v := account.DefaultTier
		_c.mutation.SetTier(v)
	}
	if _, ok := _c.mutation.TrialLengthDays(); !ok {
		v := account.DefaultTrialLengthDays
		_c.mutation.SetTrialLengthDays(v)
	}
	if _, ok := _c.mutation.OwaspLevel(); !ok {
		v := account.DefaultOwaspLevel
		_c.mutation.SetOwaspLevel(v)
	}
	if _, ok := _c.mutation.ScoreTotal(); !ok {
		v := account.DefaultScoreTotal
		_c.mutation.SetScoreTotal(v)
	}
	if _, ok := _c.mutation.LessonsCompleted(); !ok {
		v := account.DefaultLessonsCompleted
		_c.mutation.SetLessonsCompleted(v)
	}
	if _, ok := _c.mutation.QuizzesPassed(); !ok {
		v := account.DefaultQuizzesPassed
		_c.mutation.SetQuizzesPassed(v)
	}
	if _, ok := _c.mutation.CurrentStreakDays(); !ok {
		v := account.DefaultCurrentStreakDays
		_c.mutation.SetCurrentStreakDays(v)
	}
	if _, ok := _c.mutation.LongestStreakDays(); !ok {
		v := account.DefaultLongestStreakDays
		_c.mutation.SetLongestStreakDays(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := account.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := account.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AccountCreate) check() error {
	if _, ok := _c.mutation.AccountID(); !ok {
		return &ValidationError{Name: "account_id", err: errors.New(`ent: missing required field "Account.account_id"`)}
	}
	if v, ok := _c.mutation.AccountID(); ok {
		if err := account.AccountIDValidator(v); err != nil {
			return &ValidationError{Name: "account_id", err: fmt.Errorf(`ent: validator failed for field "Account.account_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required field "Account.email"`)}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := account.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Account.email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CompanyName(); !ok {
		return &ValidationError{Name: "company_name", err: errors.New(`ent: missing required field "Account.company_name"`)}
	}
	if _, ok := _c.mutation.Tier(); !ok {
		return &ValidationError{Name: "tier", err: errors.New(`ent: missing required field "Account.tier"`)}
	}
	if v, ok := _c.mutation.Tier(); ok {
		if err := account.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "Account.tier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TrialStart(); !ok {
		return &ValidationError{Name: "trial_start", err: errors.New(`ent: missing required field "Account.trial_start"`)}
	}
	if _, ok := _c.mutation.TrialLengthDays(); !ok {
		return &ValidationError{Name: "trial_length_days", err: errors.New(`ent: missing required field "Account.trial_length_days"`)}
	}
	if _, ok := _c.mutation.OwaspLevel(); !ok {
		return &ValidationError{Name: "owasp_level", err: errors.New(`ent: missing required field "Account.owasp_level"`)}
	}
	if _, ok := _c.mutation.ScoreTotal(); !ok {
		return &ValidationError{Name: "score_total", err: errors.New(`ent: missing required field "Account.score_total"`)}
	}
	if _, ok := _c.mutation.LessonsCompleted(); !ok {
		return &ValidationError{Name: "lessons_completed", err: errors.New(`ent: missing required field "Account.lessons_completed"`)}
	}
	if _, ok := _c.mutation.QuizzesPassed(); !ok {
		return &ValidationError{Name: "quizzes_passed", err: errors.New(`ent: missing required field "Account.quizzes_passed"`)}
	}
	if _, ok := _c.mutation.CurrentStreakDays(); !ok {
		return &ValidationError{Name: "current_streak_days", err: errors.New(`ent: missing required field "Account.current_streak_days"`)}
	}
	if _, ok := _c.mutation.LongestStreakDays(); !ok {
		return &ValidationError{Name: "longest_streak_days", err: errors.New(`ent: missing required field "Account.longest_streak_days"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Account.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Account.updated_at"`)}
	}
	return nil
}

func (_c *AccountCreate) sqlSave(ctx context.Context) (*Account, error) {
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

func (_c *AccountCreate) createSpec() (*Account, *sqlgraph.CreateSpec) {
	var (
		_node = &Account{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(account.Table, sqlgraph.NewFieldSpec(account.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.AccountID(); ok {
		_spec.SetField(account.FieldAccountID, field.TypeString, value)
		_node.AccountID = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(account.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.CompanyName(); ok {
		_spec.SetField(account.FieldCompanyName, field.TypeString, value)
		_node.CompanyName = value
	}
	if value, ok := _c.mutation.Tier(); ok {
		_spec.SetField(account.FieldTier, field.TypeEnum, value)
		_node.Tier = value
	}
	if value, ok := _c.mutation.TrialStart(); ok {
		_spec.SetField(account.FieldTrialStart, field.TypeTime, value)
		_node.TrialStart = value
	}
	if value, ok := _c.mutation.TrialLengthDays(); ok {
		_spec.SetField(account.FieldTrialLengthDays, field.TypeInt, value)
		_node.TrialLengthDays = value
	}
	if value, ok := _c.mutation.OwaspLevel(); ok {
		_spec.SetField(account.FieldOwaspLevel, field.TypeInt, value)
		_node.OwaspLevel = value
	}
	if value, ok := _c.mutation.ScoreTotal(); ok {
		_spec.SetField(account.FieldScoreTotal, field.TypeInt, value)
		_node.ScoreTotal = value
	}
	if value, ok := _c.mutation.LessonsCompleted(); ok {
		_spec.SetField(account.FieldLessonsCompleted, field.TypeInt, value)
		_node.LessonsCompleted = value
	}
	if value, ok := _c.mutation.QuizzesPassed(); ok {
		_spec.SetField(account.FieldQuizzesPassed, field.TypeInt, value)
		_node.QuizzesPassed = value
	}
	if value, ok := _c.mutation.CurrentStreakDays(); ok {
		_spec.SetField(account.FieldCurrentStreakDays, field.TypeInt, value)
		_node.CurrentStreakDays = value
	}
	if value, ok := _c.mutation.LongestStreakDays(); ok {
		_spec.SetField(account.FieldLongestStreakDays, field.TypeInt, value)
		_node.LongestStreakDays = value
	}
	if value, ok := _c.mutation.LastActivityDate(); ok {
		_spec.SetField(account.FieldLastActivityDate, field.TypeTime, value)
		_node.LastActivityDate = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(account.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(account.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// AccountCreateBulk is the builder for creating many Account entities in bulk.
type AccountCreateBulk struct {
	config
	err      error
	builders []*AccountCreate
}

// Save creates the Account entities in the database.
func (_c *AccountCreateBulk) Save(ctx context.Context) ([]*Account, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Account, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AccountMutation)
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
func (_c *AccountCreateBulk) SaveX(ctx context.Context) []*Account {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AccountCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AccountCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
