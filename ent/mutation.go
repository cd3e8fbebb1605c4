// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/HM-aes/smbshield/ent/account"
	"github.com/HM-aes/smbshield/ent/billingevent"
	"github.com/HM-aes/smbshield/ent/gapscore"
	"github.com/HM-aes/smbshield/ent/predicate"
	"github.com/HM-aes/smbshield/ent/progressrecord"
	"github.com/HM-aes/smbshield/ent/quizanswer"
	"github.com/HM-aes/smbshield/ent/quizattempt"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAccount        = "Account"
	TypeBillingEvent   = "BillingEvent"
	TypeGapScore       = "GapScore"
	TypeProgressRecord = "ProgressRecord"
	TypeQuizAnswer     = "QuizAnswer"
	TypeQuizAttempt    = "QuizAttempt"
)

// AccountMutation represents an operation that mutates the Account nodes in the graph.
type AccountMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	account_id             *string
	email                  *string
	company_name           *string
	tier                   *account.Tier
	trial_start            *time.Time
	trial_length_days      *int
	addtrial_length_days   *int
	owasp_level            *int
	addowasp_level         *int
	score_total            *int
	addscore_total         *int
	lessons_completed      *int
	addlessons_completed   *int
	quizzes_passed         *int
	addquizzes_passed      *int
	current_streak_days    *int
	addcurrent_streak_days *int
	longest_streak_days    *int
	addlongest_streak_days *int
	last_activity_date     *time.Time
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*Account, error)
	predicates             []predicate.Account
}

var _ ent.Mutation = (*AccountMutation)(nil)

// accountOption allows management of the mutation configuration using functional options.
type accountOption func(*AccountMutation)

// newAccountMutation creates new mutation for the Account entity.
func newAccountMutation(c config, op Op, opts ...accountOption) *AccountMutation {
	m := &AccountMutation{
		config:        c,
		op:            op,
		typ:           TypeAccount,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAccountID sets the ID field of the mutation.
func withAccountID(id int) accountOption {
	return func(m *AccountMutation) {
		var (
			err   error
			once  sync.Once
			value *Account
		)
		m.oldValue = func(ctx context.Context) (*Account, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Account.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAccount sets the old Account of the mutation.
func withAccount(node *Account) accountOption {
	return func(m *AccountMutation) {
		m.oldValue = func(context.Context) (*Account, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AccountMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AccountMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AccountMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AccountMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Account.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAccountID sets the "account_id" field.
func (m *AccountMutation) SetAccountID(s string) {
	m.account_id = &s
}

// AccountID returns the value of the "account_id" field in the mutation.
func (m *AccountMutation) AccountID() (r string, exists bool) {
	v := m.account_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountID returns the old "account_id" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldAccountID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountID: %w", err)
	}
	return oldValue.AccountID, nil
}

// ResetAccountID resets all changes to the "account_id" field.
func (m *AccountMutation) ResetAccountID() {
	m.account_id = nil
}

// SetEmail sets the "email" field.
func (m *AccountMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *AccountMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *AccountMutation) ResetEmail() {
	m.email = nil
}

// SetCompanyName sets the "company_name" field.
func (m *AccountMutation) SetCompanyName(s string) {
	m.company_name = &s
}

// CompanyName returns the value of the "company_name" field in the mutation.
func (m *AccountMutation) CompanyName() (r string, exists bool) {
	v := m.company_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyName returns the old "company_name" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldCompanyName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyName: %w", err)
	}
	return oldValue.CompanyName, nil
}

// ResetCompanyName resets all changes to the "company_name" field.
func (m *AccountMutation) ResetCompanyName() {
	m.company_name = nil
}

// SetTier sets the "tier" field.
func (m *AccountMutation) SetTier(a account.Tier) {
	m.tier = &a
}

// Tier returns the value of the "tier" field in the mutation.
func (m *AccountMutation) Tier() (r account.Tier, exists bool) {
	v := m.tier
	if v == nil {
		return
	}
	return *v, true
}

// OldTier returns the old "tier" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldTier(ctx context.Context) (v account.Tier, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTier: %w", err)
	}
	return oldValue.Tier, nil
}

// ResetTier resets all changes to the "tier" field.
func (m *AccountMutation) ResetTier() {
	m.tier = nil
}

// SetTrialStart sets the "trial_start" field.
func (m *AccountMutation) SetTrialStart(t time.Time) {
	m.trial_start = &t
}

// TrialStart returns the value of the "trial_start" field in the mutation.
func (m *AccountMutation) TrialStart() (r time.Time, exists bool) {
	v := m.trial_start
	if v == nil {
		return
	}
	return *v, true
}

// OldTrialStart returns the old "trial_start" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldTrialStart(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrialStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrialStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrialStart: %w", err)
	}
	return oldValue.TrialStart, nil
}

// ResetTrialStart resets all changes to the "trial_start" field.
func (m *AccountMutation) ResetTrialStart() {
	m.trial_start = nil
}

// SetTrialLengthDays sets the "trial_length_days" field.
func (m *AccountMutation) SetTrialLengthDays(i int) {
	m.trial_length_days = &i
	m.addtrial_length_days = nil
}

// TrialLengthDays returns the value of the "trial_length_days" field in the mutation.
func (m *AccountMutation) TrialLengthDays() (r int, exists bool) {
	v := m.trial_length_days
	if v == nil {
		return
	}
	return *v, true
}

// OldTrialLengthDays returns the old "trial_length_days" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldTrialLengthDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrialLengthDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrialLengthDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrialLengthDays: %w", err)
	}
	return oldValue.TrialLengthDays, nil
}

// AddTrialLengthDays adds i to the "trial_length_days" field.
func (m *AccountMutation) AddTrialLengthDays(i int) {
	if m.addtrial_length_days != nil {
		*m.addtrial_length_days += i
	} else {
		m.addtrial_length_days = &i
	}
}

// AddedTrialLengthDays returns the value that was added to the "trial_length_days" field in this mutation.
func (m *AccountMutation) AddedTrialLengthDays() (r int, exists bool) {
	v := m.addtrial_length_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetTrialLengthDays resets all changes to the "trial_length_days" field.
func (m *AccountMutation) ResetTrialLengthDays() {
	m.trial_length_days = nil
	m.addtrial_length_days = nil
}

// SetOwaspLevel sets the "owasp_level" field.
func (m *AccountMutation) SetOwaspLevel(i int) {
	m.owasp_level = &i
	m.addowasp_level = nil
}

// OwaspLevel returns the value of the "owasp_level" field in the mutation.
func (m *AccountMutation) OwaspLevel() (r int, exists bool) {
	v := m.owasp_level
	if v == nil {
		return
	}
	return *v, true
}

// OldOwaspLevel returns the old "owasp_level" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldOwaspLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwaspLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwaspLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwaspLevel: %w", err)
	}
	return oldValue.OwaspLevel, nil
}

// AddOwaspLevel adds i to the "owasp_level" field.
func (m *AccountMutation) AddOwaspLevel(i int) {
	if m.addowasp_level != nil {
		*m.addowasp_level += i
	} else {
		m.addowasp_level = &i
	}
}

// AddedOwaspLevel returns the value that was added to the "owasp_level" field in this mutation.
func (m *AccountMutation) AddedOwaspLevel() (r int, exists bool) {
	v := m.addowasp_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetOwaspLevel resets all changes to the "owasp_level" field.
func (m *AccountMutation) ResetOwaspLevel() {
	m.owasp_level = nil
	m.addowasp_level = nil
}

// SetScoreTotal sets the "score_total" field.
func (m *AccountMutation) SetScoreTotal(i int) {
	m.score_total = &i
	m.addscore_total = nil
}

// ScoreTotal returns the value of the "score_total" field in the mutation.
func (m *AccountMutation) ScoreTotal() (r int, exists bool) {
	v := m.score_total
	if v == nil {
		return
	}
	return *v, true
}

// OldScoreTotal returns the old "score_total" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldScoreTotal(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScoreTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScoreTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScoreTotal: %w", err)
	}
	return oldValue.ScoreTotal, nil
}

// AddScoreTotal adds i to the "score_total" field.
func (m *AccountMutation) AddScoreTotal(i int) {
	if m.addscore_total != nil {
		*m.addscore_total += i
	} else {
		m.addscore_total = &i
	}
}

// AddedScoreTotal returns the value that was added to the "score_total" field in this mutation.
func (m *AccountMutation) AddedScoreTotal() (r int, exists bool) {
	v := m.addscore_total
	if v == nil {
		return
	}
	return *v, true
}

// ResetScoreTotal resets all changes to the "score_total" field.
func (m *AccountMutation) ResetScoreTotal() {
	m.score_total = nil
	m.addscore_total = nil
}

// SetLessonsCompleted sets the "lessons_completed" field.
func (m *AccountMutation) SetLessonsCompleted(i int) {
	m.lessons_completed = &i
	m.addlessons_completed = nil
}

// LessonsCompleted returns the value of the "lessons_completed" field in the mutation.
func (m *AccountMutation) LessonsCompleted() (r int, exists bool) {
	v := m.lessons_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldLessonsCompleted returns the old "lessons_completed" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldLessonsCompleted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLessonsCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLessonsCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLessonsCompleted: %w", err)
	}
	return oldValue.LessonsCompleted, nil
}

// AddLessonsCompleted adds i to the "lessons_completed" field.
func (m *AccountMutation) AddLessonsCompleted(i int) {
	if m.addlessons_completed != nil {
		*m.addlessons_completed += i
	} else {
		m.addlessons_completed = &i
	}
}

// AddedLessonsCompleted returns the value that was added to the "lessons_completed" field in this mutation.
func (m *AccountMutation) AddedLessonsCompleted() (r int, exists bool) {
	v := m.addlessons_completed
	if v == nil {
		return
	}
	return *v, true
}

// ResetLessonsCompleted resets all changes to the "lessons_completed" field.
func (m *AccountMutation) ResetLessonsCompleted() {
	m.lessons_completed = nil
	m.addlessons_completed = nil
}

// SetQuizzesPassed sets the "quizzes_passed" field.
func (m *AccountMutation) SetQuizzesPassed(i int) {
	m.quizzes_passed = &i
	m.addquizzes_passed = nil
}

// QuizzesPassed returns the value of the "quizzes_passed" field in the mutation.
func (m *AccountMutation) QuizzesPassed() (r int, exists bool) {
	v := m.quizzes_passed
	if v == nil {
		return
	}
	return *v, true
}

// OldQuizzesPassed returns the old "quizzes_passed" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldQuizzesPassed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuizzesPassed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuizzesPassed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuizzesPassed: %w", err)
	}
	return oldValue.QuizzesPassed, nil
}

// AddQuizzesPassed adds i to the "quizzes_passed" field.
func (m *AccountMutation) AddQuizzesPassed(i int) {
	if m.addquizzes_passed != nil {
		*m.addquizzes_passed += i
	} else {
		m.addquizzes_passed = &i
	}
}

// AddedQuizzesPassed returns the value that was added to the "quizzes_passed" field in this mutation.
func (m *AccountMutation) AddedQuizzesPassed() (r int, exists bool) {
	v := m.addquizzes_passed
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuizzesPassed resets all changes to the "quizzes_passed" field.
func (m *AccountMutation) ResetQuizzesPassed() {
	m.quizzes_passed = nil
	m.addquizzes_passed = nil
}

// SetCurrentStreakDays sets the "current_streak_days" field.
func (m *AccountMutation) SetCurrentStreakDays(i int) {
	m.current_streak_days = &i
	m.addcurrent_streak_days = nil
}

// CurrentStreakDays returns the value of the "current_streak_days" field in the mutation.
func (m *AccountMutation) CurrentStreakDays() (r int, exists bool) {
	v := m.current_streak_days
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentStreakDays returns the old "current_streak_days" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldCurrentStreakDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentStreakDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentStreakDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentStreakDays: %w", err)
	}
	return oldValue.CurrentStreakDays, nil
}

// AddCurrentStreakDays adds i to the "current_streak_days" field.
func (m *AccountMutation) AddCurrentStreakDays(i int) {
	if m.addcurrent_streak_days != nil {
		*m.addcurrent_streak_days += i
	} else {
		m.addcurrent_streak_days = &i
	}
}

// AddedCurrentStreakDays returns the value that was added to the "current_streak_days" field in this mutation.
func (m *AccountMutation) AddedCurrentStreakDays() (r int, exists bool) {
	v := m.addcurrent_streak_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentStreakDays resets all changes to the "current_streak_days" field.
func (m *AccountMutation) ResetCurrentStreakDays() {
	m.current_streak_days = nil
	m.addcurrent_streak_days = nil
}

// SetLongestStreakDays sets the "longest_streak_days" field.
func (m *AccountMutation) SetLongestStreakDays(i int) {
	m.longest_streak_days = &i
	m.addlongest_streak_days = nil
}

// LongestStreakDays returns the value of the "longest_streak_days" field in the mutation.
func (m *AccountMutation) LongestStreakDays() (r int, exists bool) {
	v := m.longest_streak_days
	if v == nil {
		return
	}
	return *v, true
}

// OldLongestStreakDays returns the old "longest_streak_days" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldLongestStreakDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLongestStreakDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLongestStreakDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLongestStreakDays: %w", err)
	}
	return oldValue.LongestStreakDays, nil
}

// AddLongestStreakDays adds i to the "longest_streak_days" field.
func (m *AccountMutation) AddLongestStreakDays(i int) {
	if m.addlongest_streak_days != nil {
		*m.addlongest_streak_days += i
	} else {
		m.addlongest_streak_days = &i
	}
}

// AddedLongestStreakDays returns the value that was added to the "longest_streak_days" field in this mutation.
func (m *AccountMutation) AddedLongestStreakDays() (r int, exists bool) {
	v := m.addlongest_streak_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetLongestStreakDays resets all changes to the "longest_streak_days" field.
func (m *AccountMutation) ResetLongestStreakDays() {
	m.longest_streak_days = nil
	m.addlongest_streak_days = nil
}

// SetLastActivityDate sets the "last_activity_date" field.
func (m *AccountMutation) SetLastActivityDate(t time.Time) {
	m.last_activity_date = &t
}

// LastActivityDate returns the value of the "last_activity_date" field in the mutation.
func (m *AccountMutation) LastActivityDate() (r time.Time, exists bool) {
	v := m.last_activity_date
	if v == nil {
		return
	}
	return *v, true
}

// OldLastActivityDate returns the old "last_activity_date" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldLastActivityDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastActivityDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastActivityDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastActivityDate: %w", err)
	}
	return oldValue.LastActivityDate, nil
}

// ClearLastActivityDate clears the value of the "last_activity_date" field.
func (m *AccountMutation) ClearLastActivityDate() {
	m.last_activity_date = nil
	m.clearedFields[account.FieldLastActivityDate] = struct{}{}
}

// LastActivityDateCleared returns if the "last_activity_date" field was cleared in this mutation.
func (m *AccountMutation) LastActivityDateCleared() bool {
	_, ok := m.clearedFields[account.FieldLastActivityDate]
	return ok
}

// ResetLastActivityDate resets all changes to the "last_activity_date" field.
func (m *AccountMutation) ResetLastActivityDate() {
	m.last_activity_date = nil
	delete(m.clearedFields, account.FieldLastActivityDate)
}

// SetCreatedAt sets the "created_at" field.
func (m *AccountMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AccountMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AccountMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AccountMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AccountMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AccountMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the AccountMutation builder.
func (m *AccountMutation) Where(ps ...predicate.Account) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AccountMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AccountMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Account, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AccountMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AccountMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Account).
func (m *AccountMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AccountMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.account_id != nil {
		fields = append(fields, account.FieldAccountID)
	}
	if m.email != nil {
		fields = append(fields, account.FieldEmail)
	}
	if m.company_name != nil {
		fields = append(fields, account.FieldCompanyName)
	}
	if m.tier != nil {
		fields = append(fields, account.FieldTier)
	}
	if m.trial_start != nil {
		fields = append(fields, account.FieldTrialStart)
	}
	if m.trial_length_days != nil {
		fields = append(fields, account.FieldTrialLengthDays)
	}
	if m.owasp_level != nil {
		fields = append(fields, account.FieldOwaspLevel)
	}
	if m.score_total != nil {
		fields = append(fields, account.FieldScoreTotal)
	}
	if m.lessons_completed != nil {
		fields = append(fields, account.FieldLessonsCompleted)
	}
	if m.quizzes_passed != nil {
		fields = append(fields, account.FieldQuizzesPassed)
	}
	if m.current_streak_days != nil {
		fields = append(fields, account.FieldCurrentStreakDays)
	}
	if m.longest_streak_days != nil {
		fields = append(fields, account.FieldLongestStreakDays)
	}
	if m.last_activity_date != nil {
		fields = append(fields, account.FieldLastActivityDate)
	}
	if m.created_at != nil {
		fields = append(fields, account.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, account.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AccountMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case account.FieldAccountID:
		return m.AccountID()
	case account.FieldEmail:
		return m.Email()
	case account.FieldCompanyName:
		return m.CompanyName()
	case account.FieldTier:
		return m.Tier()
	case account.FieldTrialStart:
		return m.TrialStart()
	case account.FieldTrialLengthDays:
		return m.TrialLengthDays()
	case account.FieldOwaspLevel:
		return m.OwaspLevel()
	case account.FieldScoreTotal:
		return m.ScoreTotal()
	case account.FieldLessonsCompleted:
		return m.LessonsCompleted()
	case account.FieldQuizzesPassed:
		return m.QuizzesPassed()
	case account.FieldCurrentStreakDays:
		return m.CurrentStreakDays()
	case account.FieldLongestStreakDays:
		return m.LongestStreakDays()
	case account.FieldLastActivityDate:
		return m.LastActivityDate()
	case account.FieldCreatedAt:
		return m.CreatedAt()
	case account.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AccountMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case account.FieldAccountID:
		return m.OldAccountID(ctx)
	case account.FieldEmail:
		return m.OldEmail(ctx)
	case account.FieldCompanyName:
		return m.OldCompanyName(ctx)
	case account.FieldTier:
		return m.OldTier(ctx)
	case account.FieldTrialStart:
		return m.OldTrialStart(ctx)
	case account.FieldTrialLengthDays:
		return m.OldTrialLengthDays(ctx)
	case account.FieldOwaspLevel:
		return m.OldOwaspLevel(ctx)
	case account.FieldScoreTotal:
		return m.OldScoreTotal(ctx)
	case account.FieldLessonsCompleted:
		return m.OldLessonsCompleted(ctx)
	case account.FieldQuizzesPassed:
		return m.OldQuizzesPassed(ctx)
	case account.FieldCurrentStreakDays:
		return m.OldCurrentStreakDays(ctx)
	case account.FieldLongestStreakDays:
		return m.OldLongestStreakDays(ctx)
	case account.FieldLastActivityDate:
		return m.OldLastActivityDate(ctx)
	case account.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case account.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Account field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AccountMutation) SetField(name string, value ent.Value) error {
	switch name {
	case account.FieldAccountID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountID(v)
		return nil
	case account.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case account.FieldCompanyName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyName(v)
		return nil
	case account.FieldTier:
		v, ok := value.(account.Tier)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTier(v)
		return nil
	case account.FieldTrialStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrialStart(v)
		return nil
	case account.FieldTrialLengthDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrialLengthDays(v)
		return nil
	case account.FieldOwaspLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwaspLevel(v)
		return nil
	case account.FieldScoreTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScoreTotal(v)
		return nil
	case account.FieldLessonsCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLessonsCompleted(v)
		return nil
	case account.FieldQuizzesPassed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuizzesPassed(v)
		return nil
	case account.FieldCurrentStreakDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentStreakDays(v)
		return nil
	case account.FieldLongestStreakDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLongestStreakDays(v)
		return nil
	case account.FieldLastActivityDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastActivityDate(v)
		return nil
	case account.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case account.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Account field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AccountMutation) AddedFields() []string {
	var fields []string
	if m.addtrial_length_days != nil {
		fields = append(fields, account.FieldTrialLengthDays)
	}
	if m.addowasp_level != nil {
		fields = append(fields, account.FieldOwaspLevel)
	}
	if m.addscore_total != nil {
		fields = append(fields, account.FieldScoreTotal)
	}
	if m.addlessons_completed != nil {
		fields = append(fields, account.FieldLessonsCompleted)
	}
	if m.addquizzes_passed != nil {
		fields = append(fields, account.FieldQuizzesPassed)
	}
	if m.addcurrent_streak_days != nil {
		fields = append(fields, account.FieldCurrentStreakDays)
	}
	if m.addlongest_streak_days != nil {
		fields = append(fields, account.FieldLongestStreakDays)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AccountMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case account.FieldTrialLengthDays:
		return m.AddedTrialLengthDays()
	case account.FieldOwaspLevel:
		return m.AddedOwaspLevel()
	case account.FieldScoreTotal:
		return m.AddedScoreTotal()
	case account.FieldLessonsCompleted:
		return m.AddedLessonsCompleted()
	case account.FieldQuizzesPassed:
		return m.AddedQuizzesPassed()
	case account.FieldCurrentStreakDays:
		return m.AddedCurrentStreakDays()
	case account.FieldLongestStreakDays:
		return m.AddedLongestStreakDays()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AccountMutation) AddField(name string, value ent.Value) error {
	switch name {
	case account.FieldTrialLengthDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTrialLengthDays(v)
		return nil
	case account.FieldOwaspLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOwaspLevel(v)
		return nil
	case account.FieldScoreTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScoreTotal(v)
		return nil
	case account.FieldLessonsCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLessonsCompleted(v)
		return nil
	case account.FieldQuizzesPassed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuizzesPassed(v)
		return nil
	case account.FieldCurrentStreakDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentStreakDays(v)
		return nil
	case account.FieldLongestStreakDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLongestStreakDays(v)
		return nil
	}
	return fmt.Errorf("unknown Account numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AccountMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(account.FieldLastActivityDate) {
		fields = append(fields, account.FieldLastActivityDate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AccountMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AccountMutation) ClearField(name string) error {
	switch name {
	case account.FieldLastActivityDate:
		m.ClearLastActivityDate()
		return nil
	}
	return fmt.Errorf("unknown Account nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AccountMutation) ResetField(name string) error {
	switch name {
	case account.FieldAccountID:
		m.ResetAccountID()
		return nil
	case account.FieldEmail:
		m.ResetEmail()
		return nil
	case account.FieldCompanyName:
		m.ResetCompanyName()
		return nil
	case account.FieldTier:
		m.ResetTier()
		return nil
	case account.FieldTrialStart:
		m.ResetTrialStart()
		return nil
	case account.FieldTrialLengthDays:
		m.ResetTrialLengthDays()
		return nil
	case account.FieldOwaspLevel:
		m.ResetOwaspLevel()
		return nil
	case account.FieldScoreTotal:
		m.ResetScoreTotal()
		return nil
	case account.FieldLessonsCompleted:
		m.ResetLessonsCompleted()
		return nil
	case account.FieldQuizzesPassed:
		m.ResetQuizzesPassed()
		return nil
	case account.FieldCurrentStreakDays:
		m.ResetCurrentStreakDays()
		return nil
	case account.FieldLongestStreakDays:
		m.ResetLongestStreakDays()
		return nil
	case account.FieldLastActivityDate:
		m.ResetLastActivityDate()
		return nil
	case account.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case account.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Account field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AccountMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AccountMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AccountMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AccountMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AccountMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AccountMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AccountMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Account unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AccountMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Account edge %s", name)
}

// BillingEventMutation represents an operation that mutates the BillingEvent nodes in the graph.
type BillingEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	account_id    *string
	from_tier     *billingevent.FromTier
	to_tier       *billingevent.ToTier
	reference     *string
	occurred_at   *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*BillingEvent, error)
	predicates    []predicate.BillingEvent
}

var _ ent.Mutation = (*BillingEventMutation)(nil)

// billingeventOption allows management of the mutation configuration using functional options.
type billingeventOption func(*BillingEventMutation)

// newBillingEventMutation creates new mutation for the BillingEvent entity.
func newBillingEventMutation(c config, op Op, opts ...billingeventOption) *BillingEventMutation {
	m := &BillingEventMutation{
		config:        c,
		op:            op,
		typ:           TypeBillingEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBillingEventID sets the ID field of the mutation.
func withBillingEventID(id int) billingeventOption {
	return func(m *BillingEventMutation) {
		var (
			err   error
			once  sync.Once
			value *BillingEvent
		)
		m.oldValue = func(ctx context.Context) (*BillingEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BillingEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBillingEvent sets the old BillingEvent of the mutation.
func withBillingEvent(node *BillingEvent) billingeventOption {
	return func(m *BillingEventMutation) {
		m.oldValue = func(context.Context) (*BillingEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BillingEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BillingEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BillingEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BillingEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BillingEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAccountID sets the "account_id" field.
func (m *BillingEventMutation) SetAccountID(s string) {
	m.account_id = &s
}

// AccountID returns the value of the "account_id" field in the mutation.
func (m *BillingEventMutation) AccountID() (r string, exists bool) {
	v := m.account_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountID returns the old "account_id" field's value of the BillingEvent entity.
// If the BillingEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillingEventMutation) OldAccountID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountID: %w", err)
	}
	return oldValue.AccountID, nil
}

// ResetAccountID resets all changes to the "account_id" field.
func (m *BillingEventMutation) ResetAccountID() {
	m.account_id = nil
}

// SetFromTier sets the "from_tier" field.
func (m *BillingEventMutation) SetFromTier(bt billingevent.FromTier) {
	m.from_tier = &bt
}

// FromTier returns the value of the "from_tier" field in the mutation.
func (m *BillingEventMutation) FromTier() (r billingevent.FromTier, exists bool) {
	v := m.from_tier
	if v == nil {
		return
	}
	return *v, true
}

// OldFromTier returns the old "from_tier" field's value of the BillingEvent entity.
// If the BillingEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillingEventMutation) OldFromTier(ctx context.Context) (v billingevent.FromTier, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromTier: %w", err)
	}
	return oldValue.FromTier, nil
}

// ResetFromTier resets all changes to the "from_tier" field.
func (m *BillingEventMutation) ResetFromTier() {
	m.from_tier = nil
}

// SetToTier sets the "to_tier" field.
func (m *BillingEventMutation) SetToTier(bt billingevent.ToTier) {
	m.to_tier = &bt
}

// ToTier returns the value of the "to_tier" field in the mutation.
func (m *BillingEventMutation) ToTier() (r billingevent.ToTier, exists bool) {
	v := m.to_tier
	if v == nil {
		return
	}
	return *v, true
}

// OldToTier returns the old "to_tier" field's value of the BillingEvent entity.
// If the BillingEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillingEventMutation) OldToTier(ctx context.Context) (v billingevent.ToTier, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToTier: %w", err)
	}
	return oldValue.ToTier, nil
}

// ResetToTier resets all changes to the "to_tier" field.
func (m *BillingEventMutation) ResetToTier() {
	m.to_tier = nil
}

// SetReference sets the "reference" field.
func (m *BillingEventMutation) SetReference(s string) {
	m.reference = &s
}

// Reference returns the value of the "reference" field in the mutation.
func (m *BillingEventMutation) Reference() (r string, exists bool) {
	v := m.reference
	if v == nil {
		return
	}
	return *v, true
}

// OldReference returns the old "reference" field's value of the BillingEvent entity.
// If the BillingEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillingEventMutation) OldReference(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReference is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReference requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReference: %w", err)
	}
	return oldValue.Reference, nil
}

// ResetReference resets all changes to the "reference" field.
func (m *BillingEventMutation) ResetReference() {
	m.reference = nil
}

// SetOccurredAt sets the "occurred_at" field.
func (m *BillingEventMutation) SetOccurredAt(t time.Time) {
	m.occurred_at = &t
}

// OccurredAt returns the value of the "occurred_at" field in the mutation.
func (m *BillingEventMutation) OccurredAt() (r time.Time, exists bool) {
	v := m.occurred_at
	if v == nil {
		return
	}
	return *v, true
}

// OldOccurredAt returns the old "occurred_at" field's value of the BillingEvent entity.
// If the BillingEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BillingEventMutation) OldOccurredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOccurredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOccurredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOccurredAt: %w", err)
	}
	return oldValue.OccurredAt, nil
}

// ResetOccurredAt resets all changes to the "occurred_at" field.
func (m *BillingEventMutation) ResetOccurredAt() {
	m.occurred_at = nil
}

// Where appends a list predicates to the BillingEventMutation builder.
func (m *BillingEventMutation) Where(ps ...predicate.BillingEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BillingEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BillingEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BillingEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BillingEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BillingEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BillingEvent).
func (m *BillingEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BillingEventMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.account_id != nil {
		fields = append(fields, billingevent.FieldAccountID)
	}
	if m.from_tier != nil {
		fields = append(fields, billingevent.FieldFromTier)
	}
	if m.to_tier != nil {
		fields = append(fields, billingevent.FieldToTier)
	}
	if m.reference != nil {
		fields = append(fields, billingevent.FieldReference)
	}
	if m.occurred_at != nil {
		fields = append(fields, billingevent.FieldOccurredAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BillingEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case billingevent.FieldAccountID:
		return m.AccountID()
	case billingevent.FieldFromTier:
		return m.FromTier()
	case billingevent.FieldToTier:
		return m.ToTier()
	case billingevent.FieldReference:
		return m.Reference()
	case billingevent.FieldOccurredAt:
		return m.OccurredAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BillingEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case billingevent.FieldAccountID:
		return m.OldAccountID(ctx)
	case billingevent.FieldFromTier:
		return m.OldFromTier(ctx)
	case billingevent.FieldToTier:
		return m.OldToTier(ctx)
	case billingevent.FieldReference:
		return m.OldReference(ctx)
	case billingevent.FieldOccurredAt:
		return m.OldOccurredAt(ctx)
	}
	return nil, fmt.Errorf("unknown BillingEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BillingEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case billingevent.FieldAccountID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountID(v)
		return nil
	case billingevent.FieldFromTier:
		v, ok := value.(billingevent.FromTier)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromTier(v)
		return nil
	case billingevent.FieldToTier:
		v, ok := value.(billingevent.ToTier)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToTier(v)
		return nil
	case billingevent.FieldReference:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReference(v)
		return nil
	case billingevent.FieldOccurredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOccurredAt(v)
		return nil
	}
	return fmt.Errorf("unknown BillingEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BillingEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BillingEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BillingEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown BillingEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BillingEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BillingEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BillingEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown BillingEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BillingEventMutation) ResetField(name string) error {
	switch name {
	case billingevent.FieldAccountID:
		m.ResetAccountID()
		return nil
	case billingevent.FieldFromTier:
		m.ResetFromTier()
		return nil
	case billingevent.FieldToTier:
		m.ResetToTier()
		return nil
	case billingevent.FieldReference:
		m.ResetReference()
		return nil
	case billingevent.FieldOccurredAt:
		m.ResetOccurredAt()
		return nil
	}
	return fmt.Errorf("unknown BillingEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BillingEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BillingEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BillingEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BillingEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BillingEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BillingEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BillingEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown BillingEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BillingEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown BillingEvent edge %s", name)
}

// GapScoreMutation represents an operation that mutates the GapScore nodes in the graph.
type GapScoreMutation struct {
	config
	op            Op
	typ           string
	id            *int
	account_id    *string
	topic         *string
	score         *int
	addscore      *int
	last_tested   *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*GapScore, error)
	predicates    []predicate.GapScore
}

var _ ent.Mutation = (*GapScoreMutation)(nil)

// gapscoreOption allows management of the mutation configuration using functional options.
type gapscoreOption func(*GapScoreMutation)

// newGapScoreMutation creates new mutation for the GapScore entity.
func newGapScoreMutation(c config, op Op, opts ...gapscoreOption) *GapScoreMutation {
	m := &GapScoreMutation{
		config:        c,
		op:            op,
		typ:           TypeGapScore,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGapScoreID sets the ID field of the mutation.
func withGapScoreID(id int) gapscoreOption {
	return func(m *GapScoreMutation) {
		var (
			err   error
			once  sync.Once
			value *GapScore
		)
		m.oldValue = func(ctx context.Context) (*GapScore, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GapScore.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGapScore sets the old GapScore of the mutation.
func withGapScore(node *GapScore) gapscoreOption {
	return func(m *GapScoreMutation) {
		m.oldValue = func(context.Context) (*GapScore, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GapScoreMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GapScoreMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GapScoreMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GapScoreMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GapScore.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAccountID sets the "account_id" field.
func (m *GapScoreMutation) SetAccountID(s string) {
	m.account_id = &s
}

// AccountID returns the value of the "account_id" field in the mutation.
func (m *GapScoreMutation) AccountID() (r string, exists bool) {
	v := m.account_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountID returns the old "account_id" field's value of the GapScore entity.
// If the GapScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GapScoreMutation) OldAccountID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountID: %w", err)
	}
	return oldValue.AccountID, nil
}

// ResetAccountID resets all changes to the "account_id" field.
func (m *GapScoreMutation) ResetAccountID() {
	m.account_id = nil
}

// SetTopic sets the "topic" field.
func (m *GapScoreMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *GapScoreMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the GapScore entity.
// If the GapScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GapScoreMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ResetTopic resets all changes to the "topic" field.
func (m *GapScoreMutation) ResetTopic() {
	m.topic = nil
}

// SetScore sets the "score" field.
func (m *GapScoreMutation) SetScore(i int) {
	m.score = &i
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *GapScoreMutation) Score() (r int, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the GapScore entity.
// If the GapScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GapScoreMutation) OldScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds i to the "score" field.
func (m *GapScoreMutation) AddScore(i int) {
	if m.addscore != nil {
		*m.addscore += i
	} else {
		m.addscore = &i
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *GapScoreMutation) AddedScore() (r int, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *GapScoreMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetLastTested sets the "last_tested" field.
func (m *GapScoreMutation) SetLastTested(t time.Time) {
	m.last_tested = &t
}

// LastTested returns the value of the "last_tested" field in the mutation.
func (m *GapScoreMutation) LastTested() (r time.Time, exists bool) {
	v := m.last_tested
	if v == nil {
		return
	}
	return *v, true
}

// OldLastTested returns the old "last_tested" field's value of the GapScore entity.
// If the GapScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GapScoreMutation) OldLastTested(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastTested is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastTested requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastTested: %w", err)
	}
	return oldValue.LastTested, nil
}

// ResetLastTested resets all changes to the "last_tested" field.
func (m *GapScoreMutation) ResetLastTested() {
	m.last_tested = nil
}

// Where appends a list predicates to the GapScoreMutation builder.
func (m *GapScoreMutation) Where(ps ...predicate.GapScore) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GapScoreMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GapScoreMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GapScore, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GapScoreMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GapScoreMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GapScore).
func (m *GapScoreMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GapScoreMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.account_id != nil {
		fields = append(fields, gapscore.FieldAccountID)
	}
	if m.topic != nil {
		fields = append(fields, gapscore.FieldTopic)
	}
	if m.score != nil {
		fields = append(fields, gapscore.FieldScore)
	}
	if m.last_tested != nil {
		fields = append(fields, gapscore.FieldLastTested)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GapScoreMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case gapscore.FieldAccountID:
		return m.AccountID()
	case gapscore.FieldTopic:
		return m.Topic()
	case gapscore.FieldScore:
		return m.Score()
	case gapscore.FieldLastTested:
		return m.LastTested()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GapScoreMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case gapscore.FieldAccountID:
		return m.OldAccountID(ctx)
	case gapscore.FieldTopic:
		return m.OldTopic(ctx)
	case gapscore.FieldScore:
		return m.OldScore(ctx)
	case gapscore.FieldLastTested:
		return m.OldLastTested(ctx)
	}
	return nil, fmt.Errorf("unknown GapScore field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GapScoreMutation) SetField(name string, value ent.Value) error {
	switch name {
	case gapscore.FieldAccountID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountID(v)
		return nil
	case gapscore.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case gapscore.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case gapscore.FieldLastTested:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastTested(v)
		return nil
	}
	return fmt.Errorf("unknown GapScore field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GapScoreMutation) AddedFields() []string {
	var fields []string
	if m.addscore != nil {
		fields = append(fields, gapscore.FieldScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GapScoreMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case gapscore.FieldScore:
		return m.AddedScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GapScoreMutation) AddField(name string, value ent.Value) error {
	switch name {
	case gapscore.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	}
	return fmt.Errorf("unknown GapScore numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GapScoreMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GapScoreMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GapScoreMutation) ClearField(name string) error {
	return fmt.Errorf("unknown GapScore nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GapScoreMutation) ResetField(name string) error {
	switch name {
	case gapscore.FieldAccountID:
		m.ResetAccountID()
		return nil
	case gapscore.FieldTopic:
		m.ResetTopic()
		return nil
	case gapscore.FieldScore:
		m.ResetScore()
		return nil
	case gapscore.FieldLastTested:
		m.ResetLastTested()
		return nil
	}
	return fmt.Errorf("unknown GapScore field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GapScoreMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GapScoreMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GapScoreMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GapScoreMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GapScoreMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GapScoreMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GapScoreMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown GapScore unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GapScoreMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown GapScore edge %s", name)
}

// ProgressRecordMutation represents an operation that mutates the ProgressRecord nodes in the graph.
type ProgressRecordMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	account_id            *string
	lesson_id             *string
	module_code           *string
	completed             *bool
	time_spent_seconds    *int
	addtime_spent_seconds *int
	quick_check_correct   *bool
	started_at            *time.Time
	completed_at          *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*ProgressRecord, error)
	predicates            []predicate.ProgressRecord
}

var _ ent.Mutation = (*ProgressRecordMutation)(nil)

// progressrecordOption allows management of the mutation configuration using functional options.
type progressrecordOption func(*ProgressRecordMutation)

// newProgressRecordMutation creates new mutation for the ProgressRecord entity.
func newProgressRecordMutation(c config, op Op, opts ...progressrecordOption) *ProgressRecordMutation {
	m := &ProgressRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeProgressRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProgressRecordID sets the ID field of the mutation.
func withProgressRecordID(id int) progressrecordOption {
	return func(m *ProgressRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *ProgressRecord
		)
		m.oldValue = func(ctx context.Context) (*ProgressRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProgressRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProgressRecord sets the old ProgressRecord of the mutation.
func withProgressRecord(node *ProgressRecord) progressrecordOption {
	return func(m *ProgressRecordMutation) {
		m.oldValue = func(context.Context) (*ProgressRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProgressRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProgressRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProgressRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProgressRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProgressRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAccountID sets the "account_id" field.
func (m *ProgressRecordMutation) SetAccountID(s string) {
	m.account_id = &s
}

// AccountID returns the value of the "account_id" field in the mutation.
func (m *ProgressRecordMutation) AccountID() (r string, exists bool) {
	v := m.account_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountID returns the old "account_id" field's value of the ProgressRecord entity.
// If the ProgressRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressRecordMutation) OldAccountID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountID: %w", err)
	}
	return oldValue.AccountID, nil
}

// ResetAccountID resets all changes to the "account_id" field.
func (m *ProgressRecordMutation) ResetAccountID() {
	m.account_id = nil
}

// SetLessonID sets the "lesson_id" field.
func (m *ProgressRecordMutation) SetLessonID(s string) {
	m.lesson_id = &s
}

// LessonID returns the value of the "lesson_id" field in the mutation.
func (m *ProgressRecordMutation) LessonID() (r string, exists bool) {
	v := m.lesson_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLessonID returns the old "lesson_id" field's value of the ProgressRecord entity.
// If the ProgressRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressRecordMutation) OldLessonID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLessonID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLessonID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLessonID: %w", err)
	}
	return oldValue.LessonID, nil
}

// ResetLessonID resets all changes to the "lesson_id" field.
func (m *ProgressRecordMutation) ResetLessonID() {
	m.lesson_id = nil
}

// SetModuleCode sets the "module_code" field.
func (m *ProgressRecordMutation) SetModuleCode(s string) {
	m.module_code = &s
}

// ModuleCode returns the value of the "module_code" field in the mutation.
func (m *ProgressRecordMutation) ModuleCode() (r string, exists bool) {
	v := m.module_code
	if v == nil {
		return
	}
	return *v, true
}

// OldModuleCode returns the old "module_code" field's value of the ProgressRecord entity.
// If the ProgressRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressRecordMutation) OldModuleCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModuleCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModuleCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModuleCode: %w", err)
	}
	return oldValue.ModuleCode, nil
}

// ResetModuleCode resets all changes to the "module_code" field.
func (m *ProgressRecordMutation) ResetModuleCode() {
	m.module_code = nil
}

// SetCompleted sets the "completed" field.
func (m *ProgressRecordMutation) SetCompleted(b bool) {
	m.completed = &b
}

// Completed returns the value of the "completed" field in the mutation.
func (m *ProgressRecordMutation) Completed() (r bool, exists bool) {
	v := m.completed
	if v == nil {
		return
	}
	return *v, true
}

// OldCompleted returns the old "completed" field's value of the ProgressRecord entity.
// If the ProgressRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressRecordMutation) OldCompleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompleted: %w", err)
	}
	return oldValue.Completed, nil
}

// ResetCompleted resets all changes to the "completed" field.
func (m *ProgressRecordMutation) ResetCompleted() {
	m.completed = nil
}

// SetTimeSpentSeconds sets the "time_spent_seconds" field.
func (m *ProgressRecordMutation) SetTimeSpentSeconds(i int) {
	m.time_spent_seconds = &i
	m.addtime_spent_seconds = nil
}

// TimeSpentSeconds returns the value of the "time_spent_seconds" field in the mutation.
func (m *ProgressRecordMutation) TimeSpentSeconds() (r int, exists bool) {
	v := m.time_spent_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeSpentSeconds returns the old "time_spent_seconds" field's value of the ProgressRecord entity.
// If the ProgressRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressRecordMutation) OldTimeSpentSeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeSpentSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeSpentSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeSpentSeconds: %w", err)
	}
	return oldValue.TimeSpentSeconds, nil
}

// AddTimeSpentSeconds adds i to the "time_spent_seconds" field.
func (m *ProgressRecordMutation) AddTimeSpentSeconds(i int) {
	if m.addtime_spent_seconds != nil {
		*m.addtime_spent_seconds += i
	} else {
		m.addtime_spent_seconds = &i
	}
}

// AddedTimeSpentSeconds returns the value that was added to the "time_spent_seconds" field in this mutation.
func (m *ProgressRecordMutation) AddedTimeSpentSeconds() (r int, exists bool) {
	v := m.addtime_spent_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeSpentSeconds resets all changes to the "time_spent_seconds" field.
func (m *ProgressRecordMutation) ResetTimeSpentSeconds() {
	m.time_spent_seconds = nil
	m.addtime_spent_seconds = nil
}

// SetQuickCheckCorrect sets the "quick_check_correct" field.
func (m *ProgressRecordMutation) SetQuickCheckCorrect(b bool) {
	m.quick_check_correct = &b
}

// QuickCheckCorrect returns the value of the "quick_check_correct" field in the mutation.
func (m *ProgressRecordMutation) QuickCheckCorrect() (r bool, exists bool) {
	v := m.quick_check_correct
	if v == nil {
		return
	}
	return *v, true
}

// OldQuickCheckCorrect returns the old "quick_check_correct" field's value of the ProgressRecord entity.
// If the ProgressRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressRecordMutation) OldQuickCheckCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuickCheckCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuickCheckCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuickCheckCorrect: %w", err)
	}
	return oldValue.QuickCheckCorrect, nil
}

// ResetQuickCheckCorrect resets all changes to the "quick_check_correct" field.
func (m *ProgressRecordMutation) ResetQuickCheckCorrect() {
	m.quick_check_correct = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ProgressRecordMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ProgressRecordMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ProgressRecord entity.
// If the ProgressRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressRecordMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ProgressRecordMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *ProgressRecordMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ProgressRecordMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the ProgressRecord entity.
// If the ProgressRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProgressRecordMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ProgressRecordMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[progressrecord.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ProgressRecordMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[progressrecord.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ProgressRecordMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, progressrecord.FieldCompletedAt)
}

// Where appends a list predicates to the ProgressRecordMutation builder.
func (m *ProgressRecordMutation) Where(ps ...predicate.ProgressRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProgressRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProgressRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProgressRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProgressRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProgressRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProgressRecord).
func (m *ProgressRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProgressRecordMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.account_id != nil {
		fields = append(fields, progressrecord.FieldAccountID)
	}
	if m.lesson_id != nil {
		fields = append(fields, progressrecord.FieldLessonID)
	}
	if m.module_code != nil {
		fields = append(fields, progressrecord.FieldModuleCode)
	}
	if m.completed != nil {
		fields = append(fields, progressrecord.FieldCompleted)
	}
	if m.time_spent_seconds != nil {
		fields = append(fields, progressrecord.FieldTimeSpentSeconds)
	}
	if m.quick_check_correct != nil {
		fields = append(fields, progressrecord.FieldQuickCheckCorrect)
	}
	if m.started_at != nil {
		fields = append(fields, progressrecord.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, progressrecord.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProgressRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case progressrecord.FieldAccountID:
		return m.AccountID()
	case progressrecord.FieldLessonID:
		return m.LessonID()
	case progressrecord.FieldModuleCode:
		return m.ModuleCode()
	case progressrecord.FieldCompleted:
		return m.Completed()
	case progressrecord.FieldTimeSpentSeconds:
		return m.TimeSpentSeconds()
	case progressrecord.FieldQuickCheckCorrect:
		return m.QuickCheckCorrect()
	case progressrecord.FieldStartedAt:
		return m.StartedAt()
	case progressrecord.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProgressRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case progressrecord.FieldAccountID:
		return m.OldAccountID(ctx)
	case progressrecord.FieldLessonID:
		return m.OldLessonID(ctx)
	case progressrecord.FieldModuleCode:
		return m.OldModuleCode(ctx)
	case progressrecord.FieldCompleted:
		return m.OldCompleted(ctx)
	case progressrecord.FieldTimeSpentSeconds:
		return m.OldTimeSpentSeconds(ctx)
	case progressrecord.FieldQuickCheckCorrect:
		return m.OldQuickCheckCorrect(ctx)
	case progressrecord.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case progressrecord.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProgressRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProgressRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case progressrecord.FieldAccountID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountID(v)
		return nil
	case progressrecord.FieldLessonID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLessonID(v)
		return nil
	case progressrecord.FieldModuleCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModuleCode(v)
		return nil
	case progressrecord.FieldCompleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompleted(v)
		return nil
	case progressrecord.FieldTimeSpentSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeSpentSeconds(v)
		return nil
	case progressrecord.FieldQuickCheckCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuickCheckCorrect(v)
		return nil
	case progressrecord.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case progressrecord.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProgressRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProgressRecordMutation) AddedFields() []string {
	var fields []string
	if m.addtime_spent_seconds != nil {
		fields = append(fields, progressrecord.FieldTimeSpentSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProgressRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case progressrecord.FieldTimeSpentSeconds:
		return m.AddedTimeSpentSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProgressRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case progressrecord.FieldTimeSpentSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeSpentSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown ProgressRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProgressRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(progressrecord.FieldCompletedAt) {
		fields = append(fields, progressrecord.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProgressRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProgressRecordMutation) ClearField(name string) error {
	switch name {
	case progressrecord.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown ProgressRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProgressRecordMutation) ResetField(name string) error {
	switch name {
	case progressrecord.FieldAccountID:
		m.ResetAccountID()
		return nil
	case progressrecord.FieldLessonID:
		m.ResetLessonID()
		return nil
	case progressrecord.FieldModuleCode:
		m.ResetModuleCode()
		return nil
	case progressrecord.FieldCompleted:
		m.ResetCompleted()
		return nil
	case progressrecord.FieldTimeSpentSeconds:
		m.ResetTimeSpentSeconds()
		return nil
	case progressrecord.FieldQuickCheckCorrect:
		m.ResetQuickCheckCorrect()
		return nil
	case progressrecord.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case progressrecord.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown ProgressRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProgressRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProgressRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProgressRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProgressRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProgressRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProgressRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProgressRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ProgressRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProgressRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ProgressRecord edge %s", name)
}

// QuizAnswerMutation represents an operation that mutates the QuizAnswer nodes in the graph.
type QuizAnswerMutation struct {
	config
	op            Op
	typ           string
	id            *int
	attempt_id    *string
	question_id   *string
	topic         *string
	submitted     *string
	correct       *bool
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*QuizAnswer, error)
	predicates    []predicate.QuizAnswer
}

var _ ent.Mutation = (*QuizAnswerMutation)(nil)

// quizanswerOption allows management of the mutation configuration using functional options.
type quizanswerOption func(*QuizAnswerMutation)

// newQuizAnswerMutation creates new mutation for the QuizAnswer entity.
func newQuizAnswerMutation(c config, op Op, opts ...quizanswerOption) *QuizAnswerMutation {
	m := &QuizAnswerMutation{
		config:        c,
		op:            op,
		typ:           TypeQuizAnswer,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuizAnswerID sets the ID field of the mutation.
func withQuizAnswerID(id int) quizanswerOption {
	return func(m *QuizAnswerMutation) {
		var (
			err   error
			once  sync.Once
			value *QuizAnswer
		)
		m.oldValue = func(ctx context.Context) (*QuizAnswer, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QuizAnswer.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuizAnswer sets the old QuizAnswer of the mutation.
func withQuizAnswer(node *QuizAnswer) quizanswerOption {
	return func(m *QuizAnswerMutation) {
		m.oldValue = func(context.Context) (*QuizAnswer, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuizAnswerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuizAnswerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuizAnswerMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuizAnswerMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QuizAnswer.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAttemptID sets the "attempt_id" field.
func (m *QuizAnswerMutation) SetAttemptID(s string) {
	m.attempt_id = &s
}

// AttemptID returns the value of the "attempt_id" field in the mutation.
func (m *QuizAnswerMutation) AttemptID() (r string, exists bool) {
	v := m.attempt_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptID returns the old "attempt_id" field's value of the QuizAnswer entity.
// If the QuizAnswer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAnswerMutation) OldAttemptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptID: %w", err)
	}
	return oldValue.AttemptID, nil
}

// ResetAttemptID resets all changes to the "attempt_id" field.
func (m *QuizAnswerMutation) ResetAttemptID() {
	m.attempt_id = nil
}

// SetQuestionID sets the "question_id" field.
func (m *QuizAnswerMutation) SetQuestionID(s string) {
	m.question_id = &s
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *QuizAnswerMutation) QuestionID() (r string, exists bool) {
	v := m.question_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the QuizAnswer entity.
// If the QuizAnswer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAnswerMutation) OldQuestionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *QuizAnswerMutation) ResetQuestionID() {
	m.question_id = nil
}

// SetTopic sets the "topic" field.
func (m *QuizAnswerMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *QuizAnswerMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the QuizAnswer entity.
// If the QuizAnswer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAnswerMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ResetTopic resets all changes to the "topic" field.
func (m *QuizAnswerMutation) ResetTopic() {
	m.topic = nil
}

// SetSubmitted sets the "submitted" field.
func (m *QuizAnswerMutation) SetSubmitted(s string) {
	m.submitted = &s
}

// Submitted returns the value of the "submitted" field in the mutation.
func (m *QuizAnswerMutation) Submitted() (r string, exists bool) {
	v := m.submitted
	if v == nil {
		return
	}
	return *v, true
}

// OldSubmitted returns the old "submitted" field's value of the QuizAnswer entity.
// If the QuizAnswer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAnswerMutation) OldSubmitted(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubmitted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubmitted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubmitted: %w", err)
	}
	return oldValue.Submitted, nil
}

// ResetSubmitted resets all changes to the "submitted" field.
func (m *QuizAnswerMutation) ResetSubmitted() {
	m.submitted = nil
}

// SetCorrect sets the "correct" field.
func (m *QuizAnswerMutation) SetCorrect(b bool) {
	m.correct = &b
}

// Correct returns the value of the "correct" field in the mutation.
func (m *QuizAnswerMutation) Correct() (r bool, exists bool) {
	v := m.correct
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrect returns the old "correct" field's value of the QuizAnswer entity.
// If the QuizAnswer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAnswerMutation) OldCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrect: %w", err)
	}
	return oldValue.Correct, nil
}

// ResetCorrect resets all changes to the "correct" field.
func (m *QuizAnswerMutation) ResetCorrect() {
	m.correct = nil
}

// Where appends a list predicates to the QuizAnswerMutation builder.
func (m *QuizAnswerMutation) Where(ps ...predicate.QuizAnswer) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuizAnswerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuizAnswerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QuizAnswer, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuizAnswerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuizAnswerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QuizAnswer).
func (m *QuizAnswerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuizAnswerMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.attempt_id != nil {
		fields = append(fields, quizanswer.FieldAttemptID)
	}
	if m.question_id != nil {
		fields = append(fields, quizanswer.FieldQuestionID)
	}
	if m.topic != nil {
		fields = append(fields, quizanswer.FieldTopic)
	}
	if m.submitted != nil {
		fields = append(fields, quizanswer.FieldSubmitted)
	}
	if m.correct != nil {
		fields = append(fields, quizanswer.FieldCorrect)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuizAnswerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case quizanswer.FieldAttemptID:
		return m.AttemptID()
	case quizanswer.FieldQuestionID:
		return m.QuestionID()
	case quizanswer.FieldTopic:
		return m.Topic()
	case quizanswer.FieldSubmitted:
		return m.Submitted()
	case quizanswer.FieldCorrect:
		return m.Correct()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuizAnswerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case quizanswer.FieldAttemptID:
		return m.OldAttemptID(ctx)
	case quizanswer.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case quizanswer.FieldTopic:
		return m.OldTopic(ctx)
	case quizanswer.FieldSubmitted:
		return m.OldSubmitted(ctx)
	case quizanswer.FieldCorrect:
		return m.OldCorrect(ctx)
	}
	return nil, fmt.Errorf("unknown QuizAnswer field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuizAnswerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case quizanswer.FieldAttemptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptID(v)
		return nil
	case quizanswer.FieldQuestionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case quizanswer.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case quizanswer.FieldSubmitted:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubmitted(v)
		return nil
	case quizanswer.FieldCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrect(v)
		return nil
	}
	return fmt.Errorf("unknown QuizAnswer field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuizAnswerMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuizAnswerMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuizAnswerMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown QuizAnswer numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuizAnswerMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuizAnswerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuizAnswerMutation) ClearField(name string) error {
	return fmt.Errorf("unknown QuizAnswer nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuizAnswerMutation) ResetField(name string) error {
	switch name {
	case quizanswer.FieldAttemptID:
		m.ResetAttemptID()
		return nil
	case quizanswer.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case quizanswer.FieldTopic:
		m.ResetTopic()
		return nil
	case quizanswer.FieldSubmitted:
		m.ResetSubmitted()
		return nil
	case quizanswer.FieldCorrect:
		m.ResetCorrect()
		return nil
	}
	return fmt.Errorf("unknown QuizAnswer field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuizAnswerMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuizAnswerMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuizAnswerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuizAnswerMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuizAnswerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuizAnswerMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuizAnswerMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown QuizAnswer unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuizAnswerMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown QuizAnswer edge %s", name)
}

// QuizAttemptMutation represents an operation that mutates the QuizAttempt nodes in the graph.
type QuizAttemptMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	attempt_id         *string
	account_id         *string
	module_code        *string
	status             *quizattempt.Status
	question_ids       *[]string
	appendquestion_ids []string
	score              *int
	addscore           *int
	correct_count      *int
	addcorrect_count   *int
	passed             *bool
	issued_at          *time.Time
	scored_at          *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*QuizAttempt, error)
	predicates         []predicate.QuizAttempt
}

var _ ent.Mutation = (*QuizAttemptMutation)(nil)

// quizattemptOption allows management of the mutation configuration using functional options.
type quizattemptOption func(*QuizAttemptMutation)

// newQuizAttemptMutation creates new mutation for the QuizAttempt entity.
func newQuizAttemptMutation(c config, op Op, opts ...quizattemptOption) *QuizAttemptMutation {
	m := &QuizAttemptMutation{
		config:        c,
		op:            op,
		typ:           TypeQuizAttempt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuizAttemptID sets the ID field of the mutation.
func withQuizAttemptID(id int) quizattemptOption {
	return func(m *QuizAttemptMutation) {
		var (
			err   error
			once  sync.Once
			value *QuizAttempt
		)
		m.oldValue = func(ctx context.Context) (*QuizAttempt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QuizAttempt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuizAttempt sets the old QuizAttempt of the mutation.
func withQuizAttempt(node *QuizAttempt) quizattemptOption {
	return func(m *QuizAttemptMutation) {
		m.oldValue = func(context.Context) (*QuizAttempt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuizAttemptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuizAttemptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuizAttemptMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuizAttemptMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QuizAttempt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAttemptID sets the "attempt_id" field.
func (m *QuizAttemptMutation) SetAttemptID(s string) {
	m.attempt_id = &s
}

// AttemptID returns the value of the "attempt_id" field in the mutation.
func (m *QuizAttemptMutation) AttemptID() (r string, exists bool) {
	v := m.attempt_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptID returns the old "attempt_id" field's value of the QuizAttempt entity.
// If the QuizAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAttemptMutation) OldAttemptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptID: %w", err)
	}
	return oldValue.AttemptID, nil
}

// ResetAttemptID resets all changes to the "attempt_id" field.
func (m *QuizAttemptMutation) ResetAttemptID() {
	m.attempt_id = nil
}

// SetAccountID sets the "account_id" field.
func (m *QuizAttemptMutation) SetAccountID(s string) {
	m.account_id = &s
}

// AccountID returns the value of the "account_id" field in the mutation.
func (m *QuizAttemptMutation) AccountID() (r string, exists bool) {
	v := m.account_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountID returns the old "account_id" field's value of the QuizAttempt entity.
// If the QuizAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAttemptMutation) OldAccountID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountID: %w", err)
	}
	return oldValue.AccountID, nil
}

// ResetAccountID resets all changes to the "account_id" field.
func (m *QuizAttemptMutation) ResetAccountID() {
	m.account_id = nil
}

// SetModuleCode sets the "module_code" field.
func (m *QuizAttemptMutation) SetModuleCode(s string) {
	m.module_code = &s
}

// ModuleCode returns the value of the "module_code" field in the mutation.
func (m *QuizAttemptMutation) ModuleCode() (r string, exists bool) {
	v := m.module_code
	if v == nil {
		return
	}
	return *v, true
}

// OldModuleCode returns the old "module_code" field's value of the QuizAttempt entity.
// If the QuizAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAttemptMutation) OldModuleCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModuleCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModuleCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModuleCode: %w", err)
	}
	return oldValue.ModuleCode, nil
}

// ResetModuleCode resets all changes to the "module_code" field.
func (m *QuizAttemptMutation) ResetModuleCode() {
	m.module_code = nil
}

// SetStatus sets the "status" field.
func (m *QuizAttemptMutation) SetStatus(q quizattempt.Status) {
	m.status = &q
}

// Status returns the value of the "status" field in the mutation.
func (m *QuizAttemptMutation) Status() (r quizattempt.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the QuizAttempt entity.
// If the QuizAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAttemptMutation) OldStatus(ctx context.Context) (v quizattempt.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *QuizAttemptMutation) ResetStatus() {
	m.status = nil
}

// SetQuestionIds sets the "question_ids" field.
func (m *QuizAttemptMutation) SetQuestionIds(s []string) {
	m.question_ids = &s
	m.appendquestion_ids = nil
}

// QuestionIds returns the value of the "question_ids" field in the mutation.
func (m *QuizAttemptMutation) QuestionIds() (r []string, exists bool) {
	v := m.question_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionIds returns the old "question_ids" field's value of the QuizAttempt entity.
// If the QuizAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAttemptMutation) OldQuestionIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionIds: %w", err)
	}
	return oldValue.QuestionIds, nil
}

// AppendQuestionIds adds s to the "question_ids" field.
func (m *QuizAttemptMutation) AppendQuestionIds(s []string) {
	m.appendquestion_ids = append(m.appendquestion_ids, s...)
}

// AppendedQuestionIds returns the list of values that were appended to the "question_ids" field in this mutation.
func (m *QuizAttemptMutation) AppendedQuestionIds() ([]string, bool) {
	if len(m.appendquestion_ids) == 0 {
		return nil, false
	}
	return m.appendquestion_ids, true
}

// ResetQuestionIds resets all changes to the "question_ids" field.
func (m *QuizAttemptMutation) ResetQuestionIds() {
	m.question_ids = nil
	m.appendquestion_ids = nil
}

// SetScore sets the "score" field.
func (m *QuizAttemptMutation) SetScore(i int) {
	m.score = &i
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *QuizAttemptMutation) Score() (r int, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the QuizAttempt entity.
// If the QuizAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAttemptMutation) OldScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds i to the "score" field.
func (m *QuizAttemptMutation) AddScore(i int) {
	if m.addscore != nil {
		*m.addscore += i
	} else {
		m.addscore = &i
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *QuizAttemptMutation) AddedScore() (r int, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *QuizAttemptMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetCorrectCount sets the "correct_count" field.
func (m *QuizAttemptMutation) SetCorrectCount(i int) {
	m.correct_count = &i
	m.addcorrect_count = nil
}

// CorrectCount returns the value of the "correct_count" field in the mutation.
func (m *QuizAttemptMutation) CorrectCount() (r int, exists bool) {
	v := m.correct_count
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectCount returns the old "correct_count" field's value of the QuizAttempt entity.
// If the QuizAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAttemptMutation) OldCorrectCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectCount: %w", err)
	}
	return oldValue.CorrectCount, nil
}

// AddCorrectCount adds i to the "correct_count" field.
func (m *QuizAttemptMutation) AddCorrectCount(i int) {
	if m.addcorrect_count != nil {
		*m.addcorrect_count += i
	} else {
		m.addcorrect_count = &i
	}
}

// AddedCorrectCount returns the value that was added to the "correct_count" field in this mutation.
func (m *QuizAttemptMutation) AddedCorrectCount() (r int, exists bool) {
	v := m.addcorrect_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrectCount resets all changes to the "correct_count" field.
func (m *QuizAttemptMutation) ResetCorrectCount() {
	m.correct_count = nil
	m.addcorrect_count = nil
}

// SetPassed sets the "passed" field.
func (m *QuizAttemptMutation) SetPassed(b bool) {
	m.passed = &b
}

// Passed returns the value of the "passed" field in the mutation.
func (m *QuizAttemptMutation) Passed() (r bool, exists bool) {
	v := m.passed
	if v == nil {
		return
	}
	return *v, true
}

// OldPassed returns the old "passed" field's value of the QuizAttempt entity.
// If the QuizAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAttemptMutation) OldPassed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassed: %w", err)
	}
	return oldValue.Passed, nil
}

// ResetPassed resets all changes to the "passed" field.
func (m *QuizAttemptMutation) ResetPassed() {
	m.passed = nil
}

// SetIssuedAt sets the "issued_at" field.
func (m *QuizAttemptMutation) SetIssuedAt(t time.Time) {
	m.issued_at = &t
}

// IssuedAt returns the value of the "issued_at" field in the mutation.
func (m *QuizAttemptMutation) IssuedAt() (r time.Time, exists bool) {
	v := m.issued_at
	if v == nil {
		return
	}
	return *v, true
}

// OldIssuedAt returns the old "issued_at" field's value of the QuizAttempt entity.
// If the QuizAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAttemptMutation) OldIssuedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssuedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssuedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssuedAt: %w", err)
	}
	return oldValue.IssuedAt, nil
}

// ResetIssuedAt resets all changes to the "issued_at" field.
func (m *QuizAttemptMutation) ResetIssuedAt() {
	m.issued_at = nil
}

// SetScoredAt sets the "scored_at" field.
func (m *QuizAttemptMutation) SetScoredAt(t time.Time) {
	m.scored_at = &t
}

// ScoredAt returns the value of the "scored_at" field in the mutation.
func (m *QuizAttemptMutation) ScoredAt() (r time.Time, exists bool) {
	v := m.scored_at
	if v == nil {
		return
	}
	return *v, true
}

// OldScoredAt returns the old "scored_at" field's value of the QuizAttempt entity.
// If the QuizAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAttemptMutation) OldScoredAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScoredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScoredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScoredAt: %w", err)
	}
	return oldValue.ScoredAt, nil
}

// ClearScoredAt clears the value of the "scored_at" field.
func (m *QuizAttemptMutation) ClearScoredAt() {
	m.scored_at = nil
	m.clearedFields[quizattempt.FieldScoredAt] = struct{}{}
}

// ScoredAtCleared returns if the "scored_at" field was cleared in this mutation.
func (m *QuizAttemptMutation) ScoredAtCleared() bool {
	_, ok := m.clearedFields[quizattempt.FieldScoredAt]
	return ok
}

// ResetScoredAt resets all changes to the "scored_at" field.
func (m *QuizAttemptMutation) ResetScoredAt() {
	m.scored_at = nil
	delete(m.clearedFields, quizattempt.FieldScoredAt)
}

// Where appends a list predicates to the QuizAttemptMutation builder.
func (m *QuizAttemptMutation) Where(ps ...predicate.QuizAttempt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuizAttemptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuizAttemptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QuizAttempt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuizAttemptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuizAttemptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QuizAttempt).
func (m *QuizAttemptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuizAttemptMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.attempt_id != nil {
		fields = append(fields, quizattempt.FieldAttemptID)
	}
	if m.account_id != nil {
		fields = append(fields, quizattempt.FieldAccountID)
	}
	if m.module_code != nil {
		fields = append(fields, quizattempt.FieldModuleCode)
	}
	if m.status != nil {
		fields = append(fields, quizattempt.FieldStatus)
	}
	if m.question_ids != nil {
		fields = append(fields, quizattempt.FieldQuestionIds)
	}
	if m.score != nil {
		fields = append(fields, quizattempt.FieldScore)
	}
	if m.correct_count != nil {
		fields = append(fields, quizattempt.FieldCorrectCount)
	}
	if m.passed != nil {
		fields = append(fields, quizattempt.FieldPassed)
	}
	if m.issued_at != nil {
		fields = append(fields, quizattempt.FieldIssuedAt)
	}
	if m.scored_at != nil {
		fields = append(fields, quizattempt.FieldScoredAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuizAttemptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case quizattempt.FieldAttemptID:
		return m.AttemptID()
	case quizattempt.FieldAccountID:
		return m.AccountID()
	case quizattempt.FieldModuleCode:
		return m.ModuleCode()
	case quizattempt.FieldStatus:
		return m.Status()
	case quizattempt.FieldQuestionIds:
		return m.QuestionIds()
	case quizattempt.FieldScore:
		return m.Score()
	case quizattempt.FieldCorrectCount:
		return m.CorrectCount()
	case quizattempt.FieldPassed:
		return m.Passed()
	case quizattempt.FieldIssuedAt:
		return m.IssuedAt()
	case quizattempt.FieldScoredAt:
		return m.ScoredAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuizAttemptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case quizattempt.FieldAttemptID:
		return m.OldAttemptID(ctx)
	case quizattempt.FieldAccountID:
		return m.OldAccountID(ctx)
	case quizattempt.FieldModuleCode:
		return m.OldModuleCode(ctx)
	case quizattempt.FieldStatus:
		return m.OldStatus(ctx)
	case quizattempt.FieldQuestionIds:
		return m.OldQuestionIds(ctx)
	case quizattempt.FieldScore:
		return m.OldScore(ctx)
	case quizattempt.FieldCorrectCount:
		return m.OldCorrectCount(ctx)
	case quizattempt.FieldPassed:
		return m.OldPassed(ctx)
	case quizattempt.FieldIssuedAt:
		return m.OldIssuedAt(ctx)
	case quizattempt.FieldScoredAt:
		return m.OldScoredAt(ctx)
	}
	return nil, fmt.Errorf("unknown QuizAttempt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuizAttemptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case quizattempt.FieldAttemptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptID(v)
		return nil
	case quizattempt.FieldAccountID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountID(v)
		return nil
	case quizattempt.FieldModuleCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModuleCode(v)
		return nil
	case quizattempt.FieldStatus:
		v, ok := value.(quizattempt.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case quizattempt.FieldQuestionIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionIds(v)
		return nil
	case quizattempt.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case quizattempt.FieldCorrectCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectCount(v)
		return nil
	case quizattempt.FieldPassed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassed(v)
		return nil
	case quizattempt.FieldIssuedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssuedAt(v)
		return nil
	case quizattempt.FieldScoredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScoredAt(v)
		return nil
	}
	return fmt.Errorf("unknown QuizAttempt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuizAttemptMutation) AddedFields() []string {
	var fields []string
	if m.addscore != nil {
		fields = append(fields, quizattempt.FieldScore)
	}
	if m.addcorrect_count != nil {
		fields = append(fields, quizattempt.FieldCorrectCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuizAttemptMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case quizattempt.FieldScore:
		return m.AddedScore()
	case quizattempt.FieldCorrectCount:
		return m.AddedCorrectCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuizAttemptMutation) AddField(name string, value ent.Value) error {
	switch name {
	case quizattempt.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case quizattempt.FieldCorrectCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectCount(v)
		return nil
	}
	return fmt.Errorf("unknown QuizAttempt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuizAttemptMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(quizattempt.FieldScoredAt) {
		fields = append(fields, quizattempt.FieldScoredAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuizAttemptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuizAttemptMutation) ClearField(name string) error {
	switch name {
	case quizattempt.FieldScoredAt:
		m.ClearScoredAt()
		return nil
	}
	return fmt.Errorf("unknown QuizAttempt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuizAttemptMutation) ResetField(name string) error {
	switch name {
	case quizattempt.FieldAttemptID:
		m.ResetAttemptID()
		return nil
	case quizattempt.FieldAccountID:
		m.ResetAccountID()
		return nil
	case quizattempt.FieldModuleCode:
		m.ResetModuleCode()
		return nil
	case quizattempt.FieldStatus:
		m.ResetStatus()
		return nil
	case quizattempt.FieldQuestionIds:
		m.ResetQuestionIds()
		return nil
	case quizattempt.FieldScore:
		m.ResetScore()
		return nil
	case quizattempt.FieldCorrectCount:
		m.ResetCorrectCount()
		return nil
	case quizattempt.FieldPassed:
		m.ResetPassed()
		return nil
	case quizattempt.FieldIssuedAt:
		m.ResetIssuedAt()
		return nil
	case quizattempt.FieldScoredAt:
		m.ResetScoredAt()
		return nil
	}
	return fmt.Errorf("unknown QuizAttempt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuizAttemptMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuizAttemptMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuizAttemptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuizAttemptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuizAttemptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuizAttemptMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuizAttemptMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown QuizAttempt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuizAttemptMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown QuizAttempt edge %s", name)
}
