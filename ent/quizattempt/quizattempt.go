// Code generated by ent, DO NOT EDIT.

package quizattempt

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the quizattempt type in the database.
	Label = "quiz_attempt"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldAttemptID holds the string denoting the attempt_id field in the database.
	FieldAttemptID = "attempt_id"
	// FieldAccountID holds the string denoting the account_id field in the database.
	FieldAccountID = "account_id"
	// FieldModuleCode holds the string denoting the module_code field in the database.
	FieldModuleCode = "module_code"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldQuestionIds holds the string denoting the question_ids field in the database.
	FieldQuestionIds = "question_ids"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldCorrectCount holds the string denoting the correct_count field in the database.
	FieldCorrectCount = "correct_count"
	// FieldPassed holds the string denoting the passed field in the database.
	FieldPassed = "passed"
	// FieldIssuedAt holds the string denoting the issued_at field in the database.
	FieldIssuedAt = "issued_at"
	// FieldScoredAt holds the string denoting the scored_at field in the database.
	FieldScoredAt = "scored_at"
	// Table holds the table name of the quizattempt in the database.
	Table = "quiz_attempts"
)

// Columns holds all SQL columns for quizattempt fields.
var Columns = []string{
	FieldID,
	FieldAttemptID,
	FieldAccountID,
	FieldModuleCode,
	FieldStatus,
	FieldQuestionIds,
	FieldScore,
	FieldCorrectCount,
	FieldPassed,
	FieldIssuedAt,
	FieldScoredAt,
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
	// AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	AttemptIDValidator func(string) error
	// AccountIDValidator is a validator for the "account_id" field. It is called by the builders before save.
	AccountIDValidator func(string) error
	// ModuleCodeValidator is a validator for the "module_code" field. It is called by the builders before save.
	ModuleCodeValidator func(string) error
	// DefaultScore holds the default value on creation for the "score" field.
	DefaultScore int
	// DefaultCorrectCount holds the default value on creation for the "correct_count" field.
	DefaultCorrectCount int
	// DefaultPassed holds the default value on creation for the "passed" field.
	DefaultPassed bool
	// DefaultIssuedAt holds the default value on creation for the "issued_at" field.
	DefaultIssuedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusIssued is the default value of the Status enum.
const DefaultStatus = StatusIssued

// Status values.
const (
	StatusBuilding  Status = "building"
	StatusIssued    Status = "issued"
	StatusSubmitted Status = "submitted"
	StatusScored    Status = "scored"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusBuilding, StatusIssued, StatusSubmitted, StatusScored:
		return nil
	default:
		return fmt.Errorf("quizattempt: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the QuizAttempt queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAttemptID orders the results by the attempt_id field.
func ByAttemptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptID, opts...).ToFunc()
}

// ByAccountID orders the results by the account_id field.
func ByAccountID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccountID, opts...).ToFunc()
}

// ByModuleCode orders the results by the module_code field.
func ByModuleCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModuleCode, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByCorrectCount orders the results by the correct_count field.
func ByCorrectCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectCount, opts...).ToFunc()
}

// ByPassed orders the results by the passed field.
func ByPassed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassed, opts...).ToFunc()
}

// ByIssuedAt orders the results by the issued_at field.
func ByIssuedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIssuedAt, opts...).ToFunc()
}

// ByScoredAt orders the results by the scored_at field.
func ByScoredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScoredAt, opts...).ToFunc()
}
