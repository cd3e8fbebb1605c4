// Code generated by ent, DO NOT EDIT.

package gapscore

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/HM-aes/smbshield/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.GapScore {
	return predicate.GapScore(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.GapScore {
	return predicate.GapScore(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.GapScore {
	return predicate.GapScore(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.GapScore {
	return predicate.GapScore(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.GapScore {
	return predicate.GapScore(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.GapScore {
	return predicate.GapScore(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.GapScore {
	return predicate.GapScore(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.GapScore {
	return predicate.GapScore(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.GapScore {
	return predicate.GapScore(sql.FieldLTE(FieldID, id))
}

// AccountID applies equality check predicate on the "account_id" field. It's identical to AccountIDEQ.
func AccountID(v string) predicate.GapScore {
	return predicate.GapScore(sql.FieldEQ(FieldAccountID, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.GapScore {
	return predicate.GapScore(sql.FieldEQ(FieldTopic, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.GapScore {
	return predicate.GapScore(sql.FieldEQ(FieldScore, v))
}

// LastTested applies equality check predicate on the "last_tested" field. It's identical to LastTestedEQ.
func LastTested(v time.Time) predicate.GapScore {
	return predicate.GapScore(sql.FieldEQ(FieldLastTested, v))
}

// AccountIDEQ applies the EQ predicate on the "account_id" field.
func AccountIDEQ(v string) predicate.GapScore {
	return predicate.GapScore(sql.FieldEQ(FieldAccountID, v))
}

// AccountIDNEQ applies the NEQ predicate on the "account_id" field.
func AccountIDNEQ(v string) predicate.GapScore {
	return predicate.GapScore(sql.FieldNEQ(FieldAccountID, v))
}

// AccountIDIn applies the In predicate on the "account_id" field.
func AccountIDIn(vs ...string) predicate.GapScore {
	return predicate.GapScore(sql.FieldIn(FieldAccountID, vs...))
}

// AccountIDNotIn applies the NotIn predicate on the "account_id" field.
func AccountIDNotIn(vs ...string) predicate.GapScore {
	return predicate.GapScore(sql.FieldNotIn(FieldAccountID, vs...))
}

// AccountIDGT applies the GT predicate on the "account_id" field.
func AccountIDGT(v string) predicate.GapScore {
	return predicate.GapScore(sql.FieldGT(FieldAccountID, v))
}

// AccountIDGTE applies the GTE predicate on the "account_id" field.
func AccountIDGTE(v string) predicate.GapScore {
	return predicate.GapScore(sql.FieldGTE(FieldAccountID, v))
}

// AccountIDLT applies the LT predicate on the "account_id" field.
func AccountIDLT(v string) predicate.GapScore {
	return predicate.GapScore(sql.FieldLT(FieldAccountID, v))
}

// AccountIDLTE applies the LTE predicate on the "account_id" field.
func AccountIDLTE(v string) predicate.GapScore {
	return predicate.GapScore(sql.FieldLTE(FieldAccountID, v))
}

// AccountIDContains applies the Contains predicate on the "account_id" field.
func AccountIDContains(v string) predicate.GapScore {
	return predicate.GapScore(sql.FieldContains(FieldAccountID, v))
}

// AccountIDHasPrefix applies the HasPrefix predicate on the "account_id" field.
func AccountIDHasPrefix(v string) predicate.GapScore {
	return predicate.GapScore(sql.FieldHasPrefix(FieldAccountID, v))
}

// AccountIDHasSuffix applies the HasSuffix predicate on the "account_id" field.
func AccountIDHasSuffix(v string) predicate.GapScore {
	return predicate.GapScore(sql.FieldHasSuffix(FieldAccountID, v))
}

// AccountIDEqualFold applies the EqualFold predicate on the "account_id" field.
func AccountIDEqualFold(v string) predicate.GapScore {
	return predicate.GapScore(sql.FieldEqualFold(FieldAccountID, v))
}

// AccountIDContainsFold applies the ContainsFold predicate on the "account_id" field.
func AccountIDContainsFold(v string) predicate.GapScore {
	return predicate.GapScore(sql.FieldContainsFold(FieldAccountID, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.GapScore {
	return predicate.GapScore(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.GapScore {
	return predicate.GapScore(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.GapScore {
	return predicate.GapScore(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.GapScore {
	return predicate.GapScore(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.GapScore {
	return predicate.GapScore(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.GapScore {
	return predicate.GapScore(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.GapScore {
	return predicate.GapScore(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.GapScore {
	return predicate.GapScore(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.GapScore {
	return predicate.GapScore(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.GapScore {
	return predicate.GapScore(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.GapScore {
	return predicate.GapScore(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.GapScore {
	return predicate.GapScore(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.GapScore {
	return predicate.GapScore(sql.FieldContainsFold(FieldTopic, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.GapScore {
	return predicate.GapScore(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.GapScore {
	return predicate.GapScore(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.GapScore {
	return predicate.GapScore(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.GapScore {
	return predicate.GapScore(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.GapScore {
	return predicate.GapScore(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.GapScore {
	return predicate.GapScore(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.GapScore {
	return predicate.GapScore(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.GapScore {
	return predicate.GapScore(sql.FieldLTE(FieldScore, v))
}

// LastTestedEQ applies the EQ predicate on the "last_tested" field.
func LastTestedEQ(v time.Time) predicate.GapScore {
	return predicate.GapScore(sql.FieldEQ(FieldLastTested, v))
}

// LastTestedNEQ applies the NEQ predicate on the "last_tested" field.
func LastTestedNEQ(v time.Time) predicate.GapScore {
	return predicate.GapScore(sql.FieldNEQ(FieldLastTested, v))
}

// LastTestedIn applies the In predicate on the "last_tested" field.
func LastTestedIn(vs ...time.Time) predicate.GapScore {
	return predicate.GapScore(sql.FieldIn(FieldLastTested, vs...))
}

// LastTestedNotIn applies the NotIn predicate on the "last_tested" field.
func LastTestedNotIn(vs ...time.Time) predicate.GapScore {
	return predicate.GapScore(sql.FieldNotIn(FieldLastTested, vs...))
}

// LastTestedGT applies the GT predicate on the "last_tested" field.
func LastTestedGT(v time.Time) predicate.GapScore {
	return predicate.GapScore(sql.FieldGT(FieldLastTested, v))
}

// LastTestedGTE applies the GTE predicate on the "last_tested" field.
func LastTestedGTE(v time.Time) predicate.GapScore {
	return predicate.GapScore(sql.FieldGTE(FieldLastTested, v))
}

// LastTestedLT applies the LT predicate on the "last_tested" field.
func LastTestedLT(v time.Time) predicate.GapScore {
	return predicate.GapScore(sql.FieldLT(FieldLastTested, v))
}

// LastTestedLTE applies the LTE predicate on the "last_tested" field.
func LastTestedLTE(v time.Time) predicate.GapScore {
	return predicate.GapScore(sql.FieldLTE(FieldLastTested, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GapScore) predicate.GapScore {
	return predicate.GapScore(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GapScore) predicate.GapScore {
	return predicate.GapScore(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GapScore) predicate.GapScore {
	return predicate.GapScore(sql.NotPredicates(p))
}
