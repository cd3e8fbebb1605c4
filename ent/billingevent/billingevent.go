// Code generated by ent, DO NOT EDIT.

package billingevent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the billingevent type in the database.
	Label = "billing_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldAccountID holds the string denoting the account_id field in the database.
	FieldAccountID = "account_id"
	// FieldFromTier holds the string denoting the from_tier field in the database.
	FieldFromTier = "from_tier"
	// FieldToTier holds the string denoting the to_tier field in the database.
	FieldToTier = "to_tier"
	// FieldReference holds the string denoting the reference field in the database.
	FieldReference = "reference"
	// FieldOccurredAt holds the string denoting the occurred_at field in the database.
	FieldOccurredAt = "occurred_at"
	// Table holds the table name of the billingevent in the database.
	Table = "billing_events"
)

// Columns holds all SQL columns for billingevent fields.
var Columns = []string{
	FieldID,
	FieldAccountID,
	FieldFromTier,
	FieldToTier,
	FieldReference,
	FieldOccurredAt,
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
	// DefaultReference holds the default value on creation for the "reference" field.
	DefaultReference string
	// DefaultOccurredAt holds the default value on creation for the "occurred_at" field.
	DefaultOccurredAt func() time.Time
)

// FromTier defines the type for the "from_tier" enum field.
type FromTier string

// FromTier values.
const (
	FromTierFree       FromTier = "free"
	FromTierPro        FromTier = "pro"
	FromTierEnterprise FromTier = "enterprise"
)

func (ft FromTier) String() string {
	return string(ft)
}

// FromTierValidator is a validator for the "from_tier" field enum values. It is called by the builders before save.
func FromTierValidator(ft FromTier) error {
	switch ft {
	case FromTierFree, FromTierPro, FromTierEnterprise:
		return nil
	default:
		return fmt.Errorf("billingevent: invalid enum value for from_tier field: %q", ft)
	}
}

// ToTier defines the type for the "to_tier" enum field.
type ToTier string

// ToTier values.
const (
	ToTierFree       ToTier = "free"
	ToTierPro        ToTier = "pro"
	ToTierEnterprise ToTier = "enterprise"
)

func (tt ToTier) String() string {
	return string(tt)
}

// ToTierValidator is a validator for the "to_tier" field enum values. It is called by the builders before save.
func ToTierValidator(tt ToTier) error {
	switch tt {
	case ToTierFree, ToTierPro, ToTierEnterprise:
		return nil
	default:
		return fmt.Errorf("billingevent: invalid enum value for to_tier field: %q", tt)
	}
}

// OrderOption defines the ordering options for the BillingEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAccountID orders the results by the account_id field.
func ByAccountID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccountID, opts...).ToFunc()
}

// ByFromTier orders the results by the from_tier field.
func ByFromTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromTier, opts...).ToFunc()
}

// ByToTier orders the results by the to_tier field.
func ByToTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToTier, opts...).ToFunc()
}

// ByReference orders the results by the reference field.
func ByReference(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReference, opts...).ToFunc()
}

// ByOccurredAt orders the results by the occurred_at field.
func ByOccurredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOccurredAt, opts...).ToFunc()
}
