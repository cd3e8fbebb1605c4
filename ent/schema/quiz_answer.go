package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizAnswer records one submitted answer within a scored attempt.
type QuizAnswer struct {
	ent.Schema
}

func (QuizAnswer) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Immutable(),
		field.String("question_id").
			NotEmpty().
			Immutable(),
		field.String("topic").
			NotEmpty().
			Immutable(),
		field.String("submitted").
			Default(""),
		field.Bool("correct").
			Default(false),
	}
}

func (QuizAnswer) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("attempt_id", "question_id").Unique(),
	}
}
