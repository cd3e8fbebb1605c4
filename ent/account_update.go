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
	"github.com/HM-aes/smbshield/ent/account"
	"github.com/HM-aes/smbshield/ent/predicate"
)

// AccountUpdate is the builder for updating Account entities.
type AccountUpdate struct {
	config
	hooks    []Hook
	mutation *AccountMutation
}

// Where appends a list predicates to the AccountUpdate builder.
func (_u *AccountUpdate) Where(ps ...predicate.Account) *AccountUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEmail sets the "email" field.
func (_u *AccountUpdate) SetEmail(v string) *AccountUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableEmail(v *string) *AccountUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetCompanyName sets the "company_name" field.
func (_u *AccountUpdate) SetCompanyName(v string) *AccountUpdate {
	_u.mutation.SetCompanyName(v)
	return _u
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableCompanyName(v *string) *AccountUpdate {
	if v != nil {
		_u.SetCompanyName(*v)
	}
	return _u
}

// SetTier sets the "tier" field.
func (_u *AccountUpdate) SetTier(v account.Tier) *AccountUpdate {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableTier(v *account.Tier) *AccountUpdate {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetTrialLengthDays sets the "trial_length_days" field.
func (_u *AccountUpdate) SetTrialLengthDays(v int) *AccountUpdate {
	_u.mutation.ResetTrialLengthDays()
	_u.mutation.SetTrialLengthDays(v)
	return _u
}

// SetNillableTrialLengthDays sets the "trial_length_days" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableTrialLengthDays(v *int) *AccountUpdate {
	if v != nil {
		_u.SetTrialLengthDays(*v)
	}
	return _u
}

// AddTrialLengthDays adds value to the "trial_length_days" field.
func (_u *AccountUpdate) AddTrialLengthDays(v int) *AccountUpdate {
	_u.mutation.AddTrialLengthDays(v)
	return _u
}

// SetOwaspLevel sets the "owasp_level" field.
func (_u *AccountUpdate) SetOwaspLevel(v int) *AccountUpdate {
	_u.mutation.ResetOwaspLevel()
	_u.mutation.SetOwaspLevel(v)
	return _u
}

// SetNillableOwaspLevel sets the "owasp_level" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableOwaspLevel(v *int) *AccountUpdate {
	if v != nil {
		_u.SetOwaspLevel(*v)
	}
	return _u
}

// AddOwaspLevel adds value to the "owasp_level" field.
func (_u *AccountUpdate) AddOwaspLevel(v int) *AccountUpdate {
	_u.mutation.AddOwaspLevel(v)
	return _u
}

// SetScoreTotal sets the "score_total" field.
func (_u *AccountUpdate) SetScoreTotal(v int) *AccountUpdate {
	_u.mutation.ResetScoreTotal()
	_u.mutation.SetScoreTotal(v)
	return _u
}

// SetNillableScoreTotal sets the "score_total" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableScoreTotal(v *int) *AccountUpdate {
	if v != nil {
		_u.SetScoreTotal(*v)
	}
	return _u
}

// AddScoreTotal adds value to the "score_total" field.
func (_u *AccountUpdate) AddScoreTotal(v int) *AccountUpdate {
	_u.mutation.AddScoreTotal(v)
	return _u
}

// SetLessonsCompleted sets the "lessons_completed" field.
func (_u *AccountUpdate) SetLessonsCompleted(v int) *AccountUpdate {
	_u.mutation.ResetLessonsCompleted()
	_u.mutation.SetLessonsCompleted(v)
	return _u
}

// SetNillableLessonsCompleted sets the "lessons_completed" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableLessonsCompleted(v *int) *AccountUpdate {
	if v != nil {
		_u.SetLessonsCompleted(*v)
	}
	return _u
}

// AddLessonsCompleted adds value to the "lessons_completed" field.
func (_u *AccountUpdate) AddLessonsCompleted(v int) *AccountUpdate {
	_u.mutation.AddLessonsCompleted(v)
	return _u
}

// SetQuizzesPassed sets the "quizzes_passed" field.
func (_u *AccountUpdate) SetQuizzesPassed(v int) *AccountUpdate {
	_u.mutation.ResetQuizzesPassed()
	_u.mutation.SetQuizzesPassed(v)
	return _u
}

// SetNillableQuizzesPassed sets the "quizzes_passed" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableQuizzesPassed(v *int) *AccountUpdate {
	if v != nil {
		_u.SetQuizzesPassed(*v)
	}
	return _u
}

// AddQuizzesPassed adds value to the "quizzes_passed" field.
func (_u *AccountUpdate) AddQuizzesPassed(v int) *AccountUpdate {
	_u.mutation.AddQuizzesPassed(v)
	return _u
}

// SetCurrentStreakDays sets the "current_streak_days" field.
func (_u *AccountUpdate) SetCurrentStreakDays(v int) *AccountUpdate {
	_u.mutation.ResetCurrentStreakDays()
	_u.mutation.SetCurrentStreakDays(v)
	return _u
}

// SetNillableCurrentStreakDays sets the "current_streak_days" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableCurrentStreakDays(v *int) *AccountUpdate {
	if v != nil {
		_u.SetCurrentStreakDays(*v)
	}
	return _u
}

// AddCurrentStreakDays adds value to the "current_streak_days" field.
func (_u *AccountUpdate) AddCurrentStreakDays(v int) *AccountUpdate {
	_u.mutation.AddCurrentStreakDays(v)
	return _u
}

// SetLongestStreakDays sets the "longest_streak_days" field.
func (_u *AccountUpdate) SetLongestStreakDays(v int) *AccountUpdate {
	_u.mutation.ResetLongestStreakDays()
	_u.mutation.SetLongestStreakDays(v)
	return _u
}

// SetNillableLongestStreakDays sets the "longest_streak_days" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableLongestStreakDays(v *int) *AccountUpdate {
	if v != nil {
		_u.SetLongestStreakDays(*v)
	}
	return _u
}

// AddLongestStreakDays adds value to the "longest_streak_days" field.
func (_u *AccountUpdate) AddLongestStreakDays(v int) *AccountUpdate {
	_u.mutation.AddLongestStreakDays(v)
	return _u
}

// SetLastActivityDate sets the "last_activity_date" field.
func (_u *AccountUpdate) SetLastActivityDate(v time.Time) *AccountUpdate {
	_u.mutation.SetLastActivityDate(v)
	return _u
}

// SetNillableLastActivityDate sets the "last_activity_date" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableLastActivityDate(v *time.Time) *AccountUpdate {
	if v != nil {
		_u.SetLastActivityDate(*v)
	}
	return _u
}

// ClearLastActivityDate clears the value of the "last_activity_date" field.
func (_u *AccountUpdate) ClearLastActivityDate() *AccountUpdate {
	_u.mutation.ClearLastActivityDate()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AccountUpdate) SetUpdatedAt(v time.Time) *AccountUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AccountMutation object of the builder.
func (_u *AccountUpdate) Mutation() *AccountMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AccountUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AccountUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AccountUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AccountUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AccountUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := account.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AccountUpdate) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := account.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Account.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Tier(); ok {
		if err := account.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "Account.tier": %w`, err)}
		}
	}
	return nil
}

func (_u *AccountUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(account.Table, account.Columns, sqlgraph.NewFieldSpec(account.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(account.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompanyName(); ok {
		_spec.SetField(account.FieldCompanyName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(account.FieldTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TrialLengthDays(); ok {
		_spec.SetField(account.FieldTrialLengthDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTrialLengthDays(); ok {
		_spec.AddField(account.FieldTrialLengthDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OwaspLevel(); ok {
		_spec.SetField(account.FieldOwaspLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOwaspLevel(); ok {
		_spec.AddField(account.FieldOwaspLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScoreTotal(); ok {
		_spec.SetField(account.FieldScoreTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScoreTotal(); ok {
		_spec.AddField(account.FieldScoreTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LessonsCompleted(); ok {
		_spec.SetField(account.FieldLessonsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLessonsCompleted(); ok {
		_spec.AddField(account.FieldLessonsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuizzesPassed(); ok {
		_spec.SetField(account.FieldQuizzesPassed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuizzesPassed(); ok {
		_spec.AddField(account.FieldQuizzesPassed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentStreakDays(); ok {
		_spec.SetField(account.FieldCurrentStreakDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStreakDays(); ok {
		_spec.AddField(account.FieldCurrentStreakDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LongestStreakDays(); ok {
		_spec.SetField(account.FieldLongestStreakDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLongestStreakDays(); ok {
		_spec.AddField(account.FieldLongestStreakDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastActivityDate(); ok {
		_spec.SetField(account.FieldLastActivityDate, field.TypeTime, value)
	}
	if _u.mutation.LastActivityDateCleared() {
		_spec.ClearField(account.FieldLastActivityDate, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(account.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{account.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AccountUpdateOne is the builder for updating a single Account entity.
type AccountUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AccountMutation
}

// SetEmail sets the "email" field.
func (_u *AccountUpdateOne) SetEmail(v string) *AccountUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableEmail(v *string) *AccountUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetCompanyName sets the "company_name" field.
func (_u *AccountUpdateOne) SetCompanyName(v string) *AccountUpdateOne {
	_u.mutation.SetCompanyName(v)
	return _u
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableCompanyName(v *string) *AccountUpdateOne {
	if v != nil {
		_u.SetCompanyName(*v)
	}
	return _u
}

// SetTier sets the "tier" field.
func (_u *AccountUpdateOne) SetTier(v account.Tier) *AccountUpdateOne {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableTier(v *account.Tier) *AccountUpdateOne {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetTrialLengthDays sets the "trial_length_days" field.
func (_u *AccountUpdateOne) SetTrialLengthDays(v int) *AccountUpdateOne {
	_u.mutation.ResetTrialLengthDays()
	_u.mutation.SetTrialLengthDays(v)
	return _u
}

// SetNillableTrialLengthDays sets the "trial_length_days" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableTrialLengthDays(v *int) *AccountUpdateOne {
	if v != nil {
		_u.SetTrialLengthDays(*v)
	}
	return _u
}

// AddTrialLengthDays adds value to the "trial_length_days" field.
func (_u *AccountUpdateOne) AddTrialLengthDays(v int) *AccountUpdateOne {
	_u.mutation.AddTrialLengthDays(v)
	return _u
}

// SetOwaspLevel sets the "owasp_level" field.
func (_u *AccountUpdateOne) SetOwaspLevel(v int) *AccountUpdateOne {
	_u.mutation.ResetOwaspLevel()
	_u.mutation.SetOwaspLevel(v)
	return _u
}

// SetNillableOwaspLevel sets the "owasp_level" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableOwaspLevel(v *int) *AccountUpdateOne {
	if v != nil {
		_u.SetOwaspLevel(*v)
	}
	return _u
}

// AddOwaspLevel adds value to the "owasp_level" field.
func (_u *AccountUpdateOne) AddOwaspLevel(v int) *AccountUpdateOne {
	_u.mutation.AddOwaspLevel(v)
	return _u
}

// SetScoreTotal sets the "score_total" field.
func (_u *AccountUpdateOne) SetScoreTotal(v int) *AccountUpdateOne {
	_u.mutation.ResetScoreTotal()
	_u.mutation.SetScoreTotal(v)
	return _u
}

// SetNillableScoreTotal sets the "score_total" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableScoreTotal(v *int) *AccountUpdateOne {
	if v != nil {
		_u.SetScoreTotal(*v)
	}
	return _u
}

// AddScoreTotal adds value to the "score_total" field.
func (_u *AccountUpdateOne) AddScoreTotal(v int) *AccountUpdateOne {
	_u.mutation.AddScoreTotal(v)
	return _u
}

// SetLessonsCompleted sets the "lessons_completed" field.
func (_u *AccountUpdateOne) SetLessonsCompleted(v int) *AccountUpdateOne {
	_u.mutation.ResetLessonsCompleted()
	_u.mutation.SetLessonsCompleted(v)
	return _u
}

// SetNillableLessonsCompleted sets the "lessons_completed" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableLessonsCompleted(v *int) *AccountUpdateOne {
	if v != nil {
		_u.SetLessonsCompleted(*v)
	}
	return _u
}

// AddLessonsCompleted adds value to the "lessons_completed" field.
func (_u *AccountUpdateOne) AddLessonsCompleted(v int) *AccountUpdateOne {
	_u.mutation.AddLessonsCompleted(v)
	return _u
}

// SetQuizzesPassed sets the "quizzes_passed" field.
func (_u *AccountUpdateOne) SetQuizzesPassed(v int) *AccountUpdateOne {
	_u.mutation.ResetQuizzesPassed()
	_u.mutation.SetQuizzesPassed(v)
	return _u
}

// SetNillableQuizzesPassed sets the "quizzes_passed" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableQuizzesPassed(v *int) *AccountUpdateOne {
	if v != nil {
		_u.SetQuizzesPassed(*v)
	}
	return _u
}

// AddQuizzesPassed adds value to the "quizzes_passed" field.
func (_u *AccountUpdateOne) AddQuizzesPassed(v int) *AccountUpdateOne {
	_u.mutation.AddQuizzesPassed(v)
	return _u
}

// SetCurrentStreakDays sets the "current_streak_days" field.
func (_u *AccountUpdateOne) SetCurrentStreakDays(v int) *AccountUpdateOne {
	_u.mutation.ResetCurrentStreakDays()
	_u.mutation.SetCurrentStreakDays(v)
	return _u
}

// SetNillableCurrentStreakDays sets the "current_streak_days" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableCurrentStreakDays(v *int) *AccountUpdateOne {
	if v != nil {
		_u.SetCurrentStreakDays(*v)
	}
	return _u
}

// AddCurrentStreakDays adds value to the "current_streak_days" field.
func (_u *AccountUpdateOne) AddCurrentStreakDays(v int) *AccountUpdateOne {
	_u.mutation.AddCurrentStreakDays(v)
	return _u
}

// SetLongestStreakDays sets the "longest_streak_days" field.
func (_u *AccountUpdateOne) SetLongestStreakDays(v int) *AccountUpdateOne {
	_u.mutation.ResetLongestStreakDays()
	_u.mutation.SetLongestStreakDays(v)
	return _u
}

// SetNillableLongestStreakDays sets the "longest_streak_days" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableLongestStreakDays(v *int) *AccountUpdateOne {
	if v != nil {
		_u.SetLongestStreakDays(*v)
	}
	return _u
}

// AddLongestStreakDays adds value to the "longest_streak_days" field.
func (_u *AccountUpdateOne) AddLongestStreakDays(v int) *AccountUpdateOne {
	_u.mutation.AddLongestStreakDays(v)
	return _u
}

// SetLastActivityDate sets the "last_activity_date" field.
func (_u *AccountUpdateOne) SetLastActivityDate(v time.Time) *AccountUpdateOne {
	_u.mutation.SetLastActivityDate(v)
	return _u
}

// SetNillableLastActivityDate sets the "last_activity_date" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableLastActivityDate(v *time.Time) *AccountUpdateOne {
	if v != nil {
		_u.SetLastActivityDate(*v)
	}
	return _u
}

// ClearLastActivityDate clears the value of the "last_activity_date" field.
func (_u *AccountUpdateOne) ClearLastActivityDate() *AccountUpdateOne {
	_u.mutation.ClearLastActivityDate()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AccountUpdateOne) SetUpdatedAt(v time.Time) *AccountUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AccountMutation object of the builder.
func (_u *AccountUpdateOne) Mutation() *AccountMutation {
	return _u.mutation
}

// Where appends a list predicates to the AccountUpdate builder.
func (_u *AccountUpdateOne) Where(ps ...predicate.Account) *AccountUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AccountUpdateOne) Select(field string, fields ...string) *AccountUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Account entity.
func (_u *AccountUpdateOne) Save(ctx context.Context) (*Account, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AccountUpdateOne) SaveX(ctx context.Context) *Account {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AccountUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AccountUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AccountUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := account.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AccountUpdateOne) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := account.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Account.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Tier(); ok {
		if err := account.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "Account.tier": %w`, err)}
		}
	}
	return nil
}

func (_u *AccountUpdateOne) sqlSave(ctx context.Context) (_node *Account, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(account.Table, account.Columns, sqlgraph.NewFieldSpec(account.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Account.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, account.FieldID)
		for _, f := range fields {
			if !account.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != account.FieldID {
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
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(account.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompanyName(); ok {
		_spec.SetField(account.FieldCompanyName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(account.FieldTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TrialLengthDays(); ok {
		_spec.SetField(account.FieldTrialLengthDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTrialLengthDays(); ok {
		_spec.AddField(account.FieldTrialLengthDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OwaspLevel(); ok {
		_spec.SetField(account.FieldOwaspLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOwaspLevel(); ok {
		_spec.AddField(account.FieldOwaspLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScoreTotal(); ok {
		_spec.SetField(account.FieldScoreTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScoreTotal(); ok {
		_spec.AddField(account.FieldScoreTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LessonsCompleted(); ok {
		_spec.SetField(account.FieldLessonsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLessonsCompleted(); ok {
		_spec.AddField(account.FieldLessonsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuizzesPassed(); ok {
		_spec.SetField(account.FieldQuizzesPassed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuizzesPassed(); ok {
		_spec.AddField(account.FieldQuizzesPassed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CurrentStreakDays(); ok {
		_spec.SetField(account.FieldCurrentStreakDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStreakDays(); ok {
		_spec.AddField(account.FieldCurrentStreakDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LongestStreakDays(); ok {
		_spec.SetField(account.FieldLongestStreakDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLongestStreakDays(); ok {
		_spec.AddField(account.FieldLongestStreakDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastActivityDate(); ok {
		_spec.SetField(account.FieldLastActivityDate, field.TypeTime, value)
	}
	if _u.mutation.LastActivityDateCleared() {
		_spec.ClearField(account.FieldLastActivityDate, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(account.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Account{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{account.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
