// Code generated by ent, DO NOT EDIT.

package quizanswer

import (
	"entgo.io/ent/dialect/sql"
	"github.com/HM-aes/smbshield/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldLTE(FieldID, id))
}

// AttemptID applies equality check predicate on the "attempt_id" field. It's identical to AttemptIDEQ.
func AttemptID(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldEQ(FieldAttemptID, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldEQ(FieldQuestionID, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldEQ(FieldTopic, v))
}

// Submitted applies equality check predicate on the "submitted" field. It's identical to SubmittedEQ.
func Submitted(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldEQ(FieldSubmitted, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldEQ(FieldCorrect, v))
}

// AttemptIDEQ applies the EQ predicate on the "attempt_id" field.
func AttemptIDEQ(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldEQ(FieldAttemptID, v))
}

// AttemptIDNEQ applies the NEQ predicate on the "attempt_id" field.
func AttemptIDNEQ(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldNEQ(FieldAttemptID, v))
}

// AttemptIDIn applies the In predicate on the "attempt_id" field.
func AttemptIDIn(vs ...string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldIn(FieldAttemptID, vs...))
}

// AttemptIDNotIn applies the NotIn predicate on the "attempt_id" field.
func AttemptIDNotIn(vs ...string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldNotIn(FieldAttemptID, vs...))
}

// AttemptIDGT applies the GT predicate on the "attempt_id" field.
func AttemptIDGT(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldGT(FieldAttemptID, v))
}

// AttemptIDGTE applies the GTE predicate on the "attempt_id" field.
func AttemptIDGTE(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldGTE(FieldAttemptID, v))
}

// AttemptIDLT applies the LT predicate on the "attempt_id" field.
func AttemptIDLT(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldLT(FieldAttemptID, v))
}

// AttemptIDLTE applies the LTE predicate on the "attempt_id" field.
func AttemptIDLTE(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldLTE(FieldAttemptID, v))
}

// AttemptIDContains applies the Contains predicate on the "attempt_id" field.
func AttemptIDContains(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldContains(FieldAttemptID, v))
}

// AttemptIDHasPrefix applies the HasPrefix predicate on the "attempt_id" field.
func AttemptIDHasPrefix(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldHasPrefix(FieldAttemptID, v))
}

// AttemptIDHasSuffix applies the HasSuffix predicate on the "attempt_id" field.
func AttemptIDHasSuffix(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldHasSuffix(FieldAttemptID, v))
}

// AttemptIDEqualFold applies the EqualFold predicate on the "attempt_id" field.
func AttemptIDEqualFold(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldEqualFold(FieldAttemptID, v))
}

// AttemptIDContainsFold applies the ContainsFold predicate on the "attempt_id" field.
func AttemptIDContainsFold(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldContainsFold(FieldAttemptID, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldContainsFold(FieldQuestionID, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldContainsFold(FieldTopic, v))
}

// SubmittedEQ applies the EQ predicate on the "submitted" field.
func SubmittedEQ(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldEQ(FieldSubmitted, v))
}

// SubmittedNEQ applies the NEQ predicate on the "submitted" field.
func SubmittedNEQ(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldNEQ(FieldSubmitted, v))
}

// SubmittedIn applies the In predicate on the "submitted" field.
func SubmittedIn(vs ...string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldIn(FieldSubmitted, vs...))
}

// SubmittedNotIn applies the NotIn predicate on the "submitted" field.
func SubmittedNotIn(vs ...string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldNotIn(FieldSubmitted, vs...))
}

// SubmittedGT applies the GT predicate on the "submitted" field.
func SubmittedGT(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldGT(FieldSubmitted, v))
}

// SubmittedGTE applies the GTE predicate on the "submitted" field.
func SubmittedGTE(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldGTE(FieldSubmitted, v))
}

// SubmittedLT applies the LT predicate on the "submitted" field.
func SubmittedLT(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldLT(FieldSubmitted, v))
}

// SubmittedLTE applies the LTE predicate on the "submitted" field.
func SubmittedLTE(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldLTE(FieldSubmitted, v))
}

// SubmittedContains applies the Contains predicate on the "submitted" field.
func SubmittedContains(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldContains(FieldSubmitted, v))
}

// SubmittedHasPrefix applies the HasPrefix predicate on the "submitted" field.
func SubmittedHasPrefix(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldHasPrefix(FieldSubmitted, v))
}

// SubmittedHasSuffix applies the HasSuffix predicate on the "submitted" field.
func SubmittedHasSuffix(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldHasSuffix(FieldSubmitted, v))
}

// SubmittedEqualFold applies the EqualFold predicate on the "submitted" field.
func SubmittedEqualFold(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldEqualFold(FieldSubmitted, v))
}

// SubmittedContainsFold applies the ContainsFold predicate on the "submitted" field.
func SubmittedContainsFold(v string) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldContainsFold(FieldSubmitted, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.FieldNEQ(FieldCorrect, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuizAnswer) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuizAnswer) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuizAnswer) predicate.QuizAnswer {
	return predicate.QuizAnswer(sql.NotPredicates(p))
}
