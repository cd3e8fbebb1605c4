// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/HM-aes/smbshield/ent/gapscore"
)

// GapScore is the model entity for the GapScore schema.
type GapScore struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// AccountID holds the value of the "account_id" field.
	AccountID string `json:"account_id,omitempty"`
	// Module code used as topic key, e.g. A03
	Topic string `json:"topic,omitempty"`
	// Bounded 0-100, higher = more gap
	Score int `json:"score,omitempty"`
	// Stale topics resurface via least-recently-tested ordering
	LastTested   time.Time `json:"last_tested,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GapScore) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case gapscore.FieldID, gapscore.FieldScore:
			values[i] = new(sql.NullInt64)
		case gapscore.FieldAccountID, gapscore.FieldTopic:
			values[i] = new(sql.NullString)
		case gapscore.FieldLastTested:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GapScore fields.
func (_m *GapScore) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case gapscore.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case gapscore.FieldAccountID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field account_id", values[i])
			} else if value.Valid {
				_m.AccountID = value.String
			}
		case gapscore.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case gapscore.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = int(value.Int64)
			}
		case gapscore.FieldLastTested:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_tested", values[i])
			} else if value.Valid {
				_m.LastTested = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GapScore.
// This includes values selected through modifiers, order, etc.
func (_m *GapScore) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this GapScore.
// Note that you need to call GapScore.Unwrap() before calling this method if this GapScore
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GapScore) Update() *GapScoreUpdateOne {
	return NewGapScoreClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GapScore entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GapScore) Unwrap() *GapScore {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GapScore is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GapScore) String() string {
	var builder strings.Builder
	builder.WriteString("GapScore(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("account_id=")
	builder.WriteString(_m.AccountID)
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("last_tested=")
	builder.WriteString(_m.LastTested.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// GapScores is a parsable slice of GapScore.
type GapScores []*GapScore
