package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GapScore is the per (account, topic) demonstrated-weakness score.
// Updated only by quiz scoring; never deleted, only decays toward zero.
type GapScore struct {
	ent.Schema
}

func (GapScore) Fields() []ent.Field {
	return []ent.Field{
		field.String("account_id").
			NotEmpty().
			Immutable(),
		field.String("topic").
			NotEmpty().
			Immutable().
			Comment("Module code used as topic key, e.g. A03"),
		field.Int("score").
			Default(0).
			Comment("Bounded 0-100, higher = more gap"),
		field.Time("last_tested").
			Comment("Stale topics resurface via least-recently-tested ordering"),
	}
}

func (GapScore) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("account_id", "topic").Unique(),
		index.Fields("account_id", "score"),
	}
}
