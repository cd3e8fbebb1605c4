package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BillingEvent is the audit trail of tier transitions consumed from the
// billing source. The engine never originates billing truth.
type BillingEvent struct {
	ent.Schema
}

func (BillingEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("account_id").
			NotEmpty().
			Immutable(),
		field.Enum("from_tier").
			Values("free", "pro", "enterprise").
			Immutable(),
		field.Enum("to_tier").
			Values("free", "pro", "enterprise").
			Immutable(),
		field.String("reference").
			Default("").
			Comment("Opaque billing-provider reference"),
		field.Time("occurred_at").
			Default(time.Now).
			Immutable(),
	}
}

func (BillingEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("account_id", "occurred_at"),
	}
}
