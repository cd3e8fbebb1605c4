package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProgressRecord tracks one (account, lesson) pair. Created on first access,
// updated on completion. The completed flag never reverts to false.
type ProgressRecord struct {
	ent.Schema
}

func (ProgressRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("account_id").
			NotEmpty().
			Immutable(),
		field.String("lesson_id").
			NotEmpty().
			Immutable().
			Comment("Catalog lesson identifier, e.g. A03-2"),
		field.String("module_code").
			NotEmpty().
			Immutable(),
		field.Bool("completed").
			Default(false),
		field.Int("time_spent_seconds").
			Default(0),
		field.Bool("quick_check_correct").
			Default(false),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

func (ProgressRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("account_id", "lesson_id").Unique(),
		index.Fields("account_id", "module_code"),
	}
}
