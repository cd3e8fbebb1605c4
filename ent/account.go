// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/HM-aes/smbshield/ent/account"
)

// Account is the model entity for the Account schema.
type Account struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// External account identifier
	AccountID string `json:"account_id,omitempty"`
	// Email holds the value of the "email" field.
	Email string `json:"email,omitempty"`
	// CompanyName holds the value of the "company_name" field.
	CompanyName string `json:"company_name,omitempty"`
	// Tier holds the value of the "tier" field.
	Tier account.Tier `json:"tier,omitempty"`
	// Set once at account creation, never mutated
	TrialStart time.Time `json:"trial_start,omitempty"`
	// TrialLengthDays holds the value of the "trial_length_days" field.
	TrialLengthDays int `json:"trial_length_days,omitempty"`
	// Monotonically non-decreasing, 1-10
	OwaspLevel int `json:"owasp_level,omitempty"`
	// ScoreTotal holds the value of the "score_total" field.
	ScoreTotal int `json:"score_total,omitempty"`
	// LessonsCompleted holds the value of the "lessons_completed" field.
	LessonsCompleted int `json:"lessons_completed,omitempty"`
	// QuizzesPassed holds the value of the "quizzes_passed" field.
	QuizzesPassed int `json:"quizzes_passed,omitempty"`
	// CurrentStreakDays holds the value of the "current_streak_days" field.
	CurrentStreakDays int `json:"current_streak_days,omitempty"`
	// LongestStreakDays holds the value of the "longest_streak_days" field.
	LongestStreakDays int `json:"longest_streak_days,omitempty"`
	// LastActivityDate holds the value of the "last_activity_date" field.
	LastActivityDate *time.Time `json:"last_activity_date,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Account) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case account.FieldID, account.FieldTrialLengthDays, account.FieldOwaspLevel, account.FieldScoreTotal, account.FieldLessonsCompleted, account.FieldQuizzesPassed, account.FieldCurrentStreakDays, account.FieldLongestStreakDays:
			values[i] = new(sql.NullInt64)
		case account.FieldAccountID, account.FieldEmail, account.FieldCompanyName, account.FieldTier:
			values[i] = new(sql.NullString)
		case account.FieldTrialStart, account.FieldLastActivityDate, account.FieldCreatedAt, account.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Account fields.
func (_m *Account) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case account.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case account.FieldAccountID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field account_id", values[i])
			} else if value.Valid {
				_m.AccountID = value.String
			}
		case account.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case account.FieldCompanyName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field company_name", values[i])
			} else if value.Valid {
				_m.CompanyName = value.String
			}
		case account.FieldTier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tier", values[i])
			} else if value.Valid {
				_m.Tier = account.Tier(value.String)
			}
		case account.FieldTrialStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field trial_start", values[i])
			} else if value.Valid {
				_m.TrialStart = value.Time
			}
		case account.FieldTrialLengthDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field trial_length_days", values[i])
			} else if value.Valid {
				_m.TrialLengthDays = int(value.Int64)
			}
		case account.FieldOwaspLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field owasp_level", values[i])
			} else if value.Valid {
				_m.OwaspLevel = int(value.Int64)
			}
		case account.FieldScoreTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score_total", values[i])
			} else if value.Valid {
				_m.ScoreTotal = int(value.Int64)
			}
		case account.FieldLessonsCompleted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field lessons_completed", values[i])
			} else if value.Valid {
				_m.LessonsCompleted = int(value.Int64)
			}
		case account.FieldQuizzesPassed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quizzes_passed", values[i])
			} else if value.Valid {
				_m.QuizzesPassed = int(value.Int64)
			}
		case account.FieldCurrentStreakDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_streak_days", values[i])
			} else if value.Valid {
				_m.CurrentStreakDays = int(value.Int64)
			}
		case account.FieldLongestStreakDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field longest_streak_days", values[i])
			} else if value.Valid {
				_m.LongestStreakDays = int(value.Int64)
			}
		case account.FieldLastActivityDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_activity_date", values[i])
			} else if value.Valid {
				_m.LastActivityDate = new(time.Time)
				*_m.LastActivityDate = value.Time
			}
		case account.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case account.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Account.
// This includes values selected through modifiers, order, etc.
func (_m *Account) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Account.
// Note that you need to call Account.Unwrap() before calling this method if this Account
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Account) Update() *AccountUpdateOne {
	return NewAccountClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Account entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Account) Unwrap() *Account {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Account is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Account) String() string {
	var builder strings.Builder
	builder.WriteString("Account(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("account_id=")
	builder.WriteString(_m.AccountID)
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("company_name=")
	builder.WriteString(_m.CompanyName)
	builder.WriteString(", ")
	builder.WriteString("tier=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tier))
	builder.WriteString(", ")
	builder.WriteString("trial_start=")
	builder.WriteString(_m.TrialStart.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("trial_length_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.TrialLengthDays))
	builder.WriteString(", ")
	builder.WriteString("owasp_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.OwaspLevel))
	builder.WriteString(", ")
	builder.WriteString("score_total=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScoreTotal))
	builder.WriteString(", ")
	builder.WriteString("lessons_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.LessonsCompleted))
	builder.WriteString(", ")
	builder.WriteString("quizzes_passed=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuizzesPassed))
	builder.WriteString(", ")
	builder.WriteString("current_streak_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentStreakDays))
	builder.WriteString(", ")
	builder.WriteString("longest_streak_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.LongestStreakDays))
	builder.WriteString(", ")
	if v := _m.LastActivityDate; v != nil {
		builder.WriteString("last_activity_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Accounts is a parsable slice of Account.
type Accounts []*Account
