package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizAttempt is one generated quiz instance for one account.
// Immutable once scored; a retake is always a new attempt.
type QuizAttempt struct {
	ent.Schema
}

func (QuizAttempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			Unique().
			NotEmpty().
			Immutable(),
		field.String("account_id").
			NotEmpty().
			Immutable(),
		field.String("module_code").
			NotEmpty().
			Immutable().
			Comment("Primary topic pool the attempt was built from"),
		field.Enum("status").
			Values("building", "issued", "submitted", "scored").
			Default("issued"),
		field.Strings("question_ids").
			Comment("Questions presented, in order"),
		field.Int("score").
			Default(0).
			Comment("0-100, integer-rounded down"),
		field.Int("correct_count").
			Default(0),
		field.Bool("passed").
			Default(false),
		field.Time("issued_at").
			Default(time.Now).
			Immutable(),
		field.Time("scored_at").
			Optional().
			Nillable(),
	}
}

func (QuizAttempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("attempt_id").Unique(),
		index.Fields("account_id", "issued_at"),
	}
}
