// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/HM-aes/smbshield/ent/billingevent"
)

// BillingEvent is the model entity for the BillingEvent schema.
type BillingEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// AccountID holds the value of the "account_id" field.
	AccountID string `json:"account_id,omitempty"`
	// FromTier holds the value of the "from_tier" field.
	FromTier billingevent.FromTier `json:"from_tier,omitempty"`
	// ToTier holds the value of the "to_tier" field.
	ToTier billingevent.ToTier `json:"to_tier,omitempty"`
	// Opaque billing-provider reference
	Reference string `json:"reference,omitempty"`
	// OccurredAt holds the value of the "occurred_at" field.
	OccurredAt   time.Time `json:"occurred_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BillingEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case billingevent.FieldID:
			values[i] = new(sql.NullInt64)
		case billingevent.FieldAccountID, billingevent.FieldFromTier, billingevent.FieldToTier, billingevent.FieldReference:
			values[i] = new(sql.NullString)
		case billingevent.FieldOccurredAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BillingEvent fields.
func (_m *BillingEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case billingevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case billingevent.FieldAccountID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field account_id", values[i])
			} else if value.Valid {
				_m.AccountID = value.String
			}
		case billingevent.FieldFromTier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field from_tier", values[i])
			} else if value.Valid {
				_m.FromTier = billingevent.FromTier(value.String)
			}
		case billingevent.FieldToTier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field to_tier", values[i])
			} else if value.Valid {
				_m.ToTier = billingevent.ToTier(value.String)
			}
		case billingevent.FieldReference:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reference", values[i])
			} else if value.Valid {
				_m.Reference = value.String
			}
		case billingevent.FieldOccurredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field occurred_at", values[i])
			} else if value.Valid {
				_m.OccurredAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BillingEvent.
// This includes values selected through modifiers, order, etc.
func (_m *BillingEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this BillingEvent.
// Note that you need to call BillingEvent.Unwrap() before calling this method if this BillingEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BillingEvent) Update() *BillingEventUpdateOne {
	return NewBillingEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BillingEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BillingEvent) Unwrap() *BillingEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BillingEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BillingEvent) String() string {
	var builder strings.Builder
	builder.WriteString("BillingEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("account_id=")
	builder.WriteString(_m.AccountID)
	builder.WriteString(", ")
	builder.WriteString("from_tier=")
	builder.WriteString(fmt.Sprintf("%v", _m.FromTier))
	builder.WriteString(", ")
	builder.WriteString("to_tier=")
	builder.WriteString(fmt.Sprintf("%v", _m.ToTier))
	builder.WriteString(", ")
	builder.WriteString("reference=")
	builder.WriteString(_m.Reference)
	builder.WriteString(", ")
	builder.WriteString("occurred_at=")
	builder.WriteString(_m.OccurredAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BillingEvents is a parsable slice of BillingEvent.
type BillingEvents []*BillingEvent
