// Code generated by ent, DO NOT EDIT.

package gapscore

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the gapscore type in the database.
	Label = "gap_score"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldAccountID holds the string denoting the account_id field in the database.
	FieldAccountID = "account_id"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldLastTested holds the string denoting the last_tested field in the database.
	FieldLastTested = "last_tested"
	// Table holds the table name of the gapscore in the database.
	Table = "gap_scores"
)

// Columns holds all SQL columns for gapscore fields.
var Columns = []string{
	FieldID,
	FieldAccountID,
	FieldTopic,
	FieldScore,
	FieldLastTested,
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
	// TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	TopicValidator func(string) error
	// DefaultScore holds the default value on creation for the "score" field.
	DefaultScore int
)

// OrderOption defines the ordering options for the GapScore queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAccountID orders the results by the account_id field.
func ByAccountID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccountID, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByLastTested orders the results by the last_tested field.
func ByLastTested(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastTested, opts...).ToFunc()
}
