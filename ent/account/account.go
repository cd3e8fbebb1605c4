// Code generated by ent, DO NOT EDIT.

package account

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the account type in the database.
	Label = "account"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldAccountID holds the string denoting the account_id field in the database.
	FieldAccountID = "account_id"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldCompanyName holds the string denoting the company_name field in the database.
	FieldCompanyName = "company_name"
	// FieldTier holds the string denoting the tier field in the database.
	FieldTier = "tier"
	// FieldTrialStart holds the string denoting the trial_start field in the database.
	FieldTrialStart = "trial_start"
	// FieldTrialLengthDays holds the string denoting the trial_length_days field in the database.
	FieldTrialLengthDays = "trial_length_days"
	// FieldOwaspLevel holds the string denoting the owasp_level field in the database.
	FieldOwaspLevel = "owasp_level"
	// FieldScoreTotal holds the string denoting the score_total field in the database.
	FieldScoreTotal = "score_total"
	// FieldLessonsCompleted holds the string denoting the lessons_completed field in the database.
	FieldLessonsCompleted = "lessons_completed"
	// FieldQuizzesPassed holds the string denoting the quizzes_passed field in the database.
	FieldQuizzesPassed = "quizzes_passed"
	// FieldCurrentStreakDays holds the string denoting the current_streak_days field in the database.
	FieldCurrentStreakDays = "current_streak_days"
	// FieldLongestStreakDays holds the string denoting the longest_streak_days field in the database.
	FieldLongestStreakDays = "longest_streak_days"
	// FieldLastActivityDate holds the string denoting the last_activity_date field in the database.
	FieldLastActivityDate = "last_activity_date"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the account in the database.
	Table = "accounts"
)

// Columns holds all SQL columns for account fields.
var Columns = []string{
	FieldID,
	FieldAccountID,
	FieldEmail,
	FieldCompanyName,
	FieldTier,
	FieldTrialStart,
	FieldTrialLengthDays,
	FieldOwaspLevel,
	FieldScoreTotal,
	FieldLessonsCompleted,
	FieldQuizzesPassed,
	FieldCurrentStreakDays,
	FieldLongestStreakDays,
	FieldLastActivityDate,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// AccountIDValidator is a validator for the "account_id" field. It is called by the builders before save.
	AccountIDValidator func(string) error
	// EmailValidator is a validator for the "email" field. It is called by the builders before save.
	EmailValidator func(string) error
	// DefaultCompanyName holds the default value on creation for the "company_name" field.
	DefaultCompanyName string
	// DefaultTrialLengthDays holds the default value on creation for the "trial_length_days" field.
	DefaultTrialLengthDays int
	// DefaultOwaspLevel holds the default value on creation for the "owasp_level" field.
	DefaultOwaspLevel int
	// DefaultScoreTotal holds the default value on creation for the "score_total" field.
	DefaultScoreTotal int
	// DefaultLessonsCompleted holds the default value on creation for the "lessons_completed" field.
	DefaultLessonsCompleted int
	// DefaultQuizzesPassed holds the default value on creation for the "quizzes_passed" field.
	DefaultQuizzesPassed int
	// DefaultCurrentStreakDays holds the default value on creation for the "current_streak_days" field.
	DefaultCurrentStreakDays int
	// DefaultLongestStreakDays holds the default value on creation for the "longest_streak_days" field.
	DefaultLongestStreakDays int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Tier defines the type for the "tier" enum field.
type Tier string

// TierFree is the default value of the Tier enum.
const DefaultTier = TierFree

// Tier values.
const (
	TierFree       Tier = "free"
	TierPro        Tier = "pro"
	TierEnterprise Tier = "enterprise"
)

func (t Tier) String() string {
	return string(t)
}

// TierValidator is a validator for the "tier" field enum values. It is called by the builders before save.
func TierValidator(t Tier) error {
	switch t {
	case TierFree, TierPro, TierEnterprise:
		return nil
	default:
		return fmt.Errorf("account: invalid enum value for tier field: %q", t)
	}
}

// OrderOption defines the ordering options for the Account queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAccountID orders the results by the account_id field.
func ByAccountID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccountID, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByCompanyName orders the results by the company_name field.
func ByCompanyName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompanyName, opts...).ToFunc()
}

// ByTier orders the results by the tier field.
func ByTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTier, opts...).ToFunc()
}

// ByTrialStart orders the results by the trial_start field.
func ByTrialStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrialStart, opts...).ToFunc()
}

// ByTrialLengthDays orders the results by the trial_length_days field.
func ByTrialLengthDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrialLengthDays, opts...).ToFunc()
}

// ByOwaspLevel orders the results by the owasp_level field.
func ByOwaspLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwaspLevel, opts...).ToFunc()
}

// ByScoreTotal orders the results by the score_total field.
func ByScoreTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScoreTotal, opts...).ToFunc()
}

// ByLessonsCompleted orders the results by the lessons_completed field.
func ByLessonsCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLessonsCompleted, opts...).ToFunc()
}

// ByQuizzesPassed orders the results by the quizzes_passed field.
func ByQuizzesPassed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuizzesPassed, opts...).ToFunc()
}

// ByCurrentStreakDays orders the results by the current_streak_days field.
func ByCurrentStreakDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentStreakDays, opts...).ToFunc()
}

// ByLongestStreakDays orders the results by the longest_streak_days field.
func ByLongestStreakDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLongestStreakDays, opts...).ToFunc()
}

// ByLastActivityDate orders the results by the last_activity_date field.
func ByLastActivityDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastActivityDate, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
