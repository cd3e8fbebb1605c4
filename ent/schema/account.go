package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Account holds the subscription, trial, and learning-progress state for
// one learner. Billing truth arrives as events; the account only reflects it.
type Account struct {
	ent.Schema
}

func (Account) Fields() []ent.Field {
	return []ent.Field{
		field.String("account_id").
			Unique().
			NotEmpty().
			Immutable().
			Comment("External account identifier"),
		field.String("email").
			NotEmpty(),
		field.String("company_name").
			Default(""),
		field.Enum("tier").
			Values("free", "pro", "enterprise").
			Default("free"),
		field.Time("trial_start").
			Immutable().
			Comment("Set once at account creation, never mutated"),
		field.Int("trial_length_days").
			Default(30),
		field.Int("owasp_level").
			Default(1).
			Comment("Monotonically non-decreasing, 1-10"),
		field.Int("score_total").
			Default(0),
		field.Int("lessons_completed").
			Default(0),
		field.Int("quizzes_passed").
			Default(0),
		field.Int("current_streak_days").
			Default(0),
		field.Int("longest_streak_days").
			Default(0),
		field.Time("last_activity_date").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Account) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("account_id").Unique(),
		index.Fields("tier"),
	}
}
