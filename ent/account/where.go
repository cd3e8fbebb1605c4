// Code generated by ent, DO NOT EDIT.

package account

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/HM-aes/smbshield/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldID, id))
}

// AccountID applies equality check predicate on the "account_id" field. It's identical to AccountIDEQ.
func AccountID(v string) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldAccountID, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldEmail, v))
}

// CompanyName applies equality check predicate on the "company_name" field. It's identical to CompanyNameEQ.
func CompanyName(v string) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldCompanyName, v))
}

// TrialStart applies equality check predicate on the "trial_start" field. It's identical to TrialStartEQ.
func TrialStart(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldTrialStart, v))
}

// TrialLengthDays applies equality check predicate on the "trial_length_days" field. It's identical to TrialLengthDaysEQ.
func TrialLengthDays(v int) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldTrialLengthDays, v))
}

// OwaspLevel applies equality check predicate on the "owasp_level" field. It's identical to OwaspLevelEQ.
func OwaspLevel(v int) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldOwaspLevel, v))
}

// ScoreTotal applies equality check predicate on the "score_total" field. It's identical to ScoreTotalEQ.
func ScoreTotal(v int) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldScoreTotal, v))
}

// LessonsCompleted applies equality check predicate on the "lessons_completed" field. It's identical to LessonsCompletedEQ.
func LessonsCompleted(v int) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldLessonsCompleted, v))
}

// QuizzesPassed applies equality check predicate on the "quizzes_passed" field. It's identical to QuizzesPassedEQ.
func QuizzesPassed(v int) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldQuizzesPassed, v))
}

// CurrentStreakDays applies equality check predicate on the "current_streak_days" field. It's identical to CurrentStreakDaysEQ.
func CurrentStreakDays(v int) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldCurrentStreakDays, v))
}

// LongestStreakDays applies equality check predicate on the "longest_streak_days" field. It's identical to LongestStreakDaysEQ.
func LongestStreakDays(v int) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldLongestStreakDays, v))
}

// LastActivityDate applies equality check predicate on the "last_activity_date" field. It's identical to LastActivityDateEQ.
func LastActivityDate(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldLastActivityDate, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldUpdatedAt, v))
}

// AccountIDEQ applies the EQ predicate on the "account_id" field.
func AccountIDEQ(v string) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldAccountID, v))
}

// AccountIDNEQ applies the NEQ predicate on the "account_id" field.
func AccountIDNEQ(v string) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldAccountID, v))
}

// AccountIDIn applies the In predicate on the "account_id" field.
func AccountIDIn(vs ...string) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldAccountID, vs...))
}

// AccountIDNotIn applies the NotIn predicate on the "account_id" field.
func AccountIDNotIn(vs ...string) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldAccountID, vs...))
}

// AccountIDGT applies the GT predicate on the "account_id" field.
func AccountIDGT(v string) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldAccountID, v))
}

// AccountIDGTE applies the GTE predicate on the "account_id" field.
func AccountIDGTE(v string) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldAccountID, v))
}

// AccountIDLT applies the LT predicate on the "account_id" field.
func AccountIDLT(v string) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldAccountID, v))
}

// AccountIDLTE applies the LTE predicate on the "account_id" field.
func AccountIDLTE(v string) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldAccountID, v))
}

// AccountIDContains applies the Contains predicate on the "account_id" field.
func AccountIDContains(v string) predicate.Account {
	return predicate.Account(sql.FieldContains(FieldAccountID, v))
}

// AccountIDHasPrefix applies the HasPrefix predicate on the "account_id" field.
func AccountIDHasPrefix(v string) predicate.Account {
	return predicate.Account(sql.FieldHasPrefix(FieldAccountID, v))
}

// AccountIDHasSuffix applies the HasSuffix predicate on the "account_id" field.
func AccountIDHasSuffix(v string) predicate.Account {
	return predicate.Account(sql.FieldHasSuffix(FieldAccountID, v))
}

// AccountIDEqualFold applies the EqualFold predicate on the "account_id" field.
func AccountIDEqualFold(v string) predicate.Account {
	return predicate.Account(sql.FieldEqualFold(FieldAccountID, v))
}

// AccountIDContainsFold applies the ContainsFold predicate on the "account_id" field.
func AccountIDContainsFold(v string) predicate.Account {
	return predicate.Account(sql.FieldContainsFold(FieldAccountID, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Account {
	return predicate.Account(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Account {
	return predicate.Account(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Account {
	return predicate.Account(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Account {
	return predicate.Account(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Account {
	return predicate.Account(sql.FieldContainsFold(FieldEmail, v))
}

// CompanyNameEQ applies the EQ predicate on the "company_name" field.
func CompanyNameEQ(v string) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldCompanyName, v))
}

// CompanyNameNEQ applies the NEQ predicate on the "company_name" field.
func CompanyNameNEQ(v string) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldCompanyName, v))
}

// CompanyNameIn applies the In predicate on the "company_name" field.
func CompanyNameIn(vs ...string) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldCompanyName, vs...))
}

// CompanyNameNotIn applies the NotIn predicate on the "company_name" field.
func CompanyNameNotIn(vs ...string) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldCompanyName, vs...))
}

// CompanyNameGT applies the GT predicate on the "company_name" field.
func CompanyNameGT(v string) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldCompanyName, v))
}

// CompanyNameGTE applies the GTE predicate on the "company_name" field.
func CompanyNameGTE(v string) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldCompanyName, v))
}

// CompanyNameLT applies the LT predicate on the "company_name" field.
func CompanyNameLT(v string) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldCompanyName, v))
}

// CompanyNameLTE applies the LTE predicate on the "company_name" field.
func CompanyNameLTE(v string) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldCompanyName, v))
}

// CompanyNameContains applies the Contains predicate on the "company_name" field.
func CompanyNameContains(v string) predicate.Account {
	return predicate.Account(sql.FieldContains(FieldCompanyName, v))
}

// CompanyNameHasPrefix applies the HasPrefix predicate on the "company_name" field.
func CompanyNameHasPrefix(v string) predicate.Account {
	return predicate.Account(sql.FieldHasPrefix(FieldCompanyName, v))
}

// CompanyNameHasSuffix applies the HasSuffix predicate on the "company_name" field.
func CompanyNameHasSuffix(v string) predicate.Account {
	return predicate.Account(sql.FieldHasSuffix(FieldCompanyName, v))
}

// CompanyNameEqualFold applies the EqualFold predicate on the "company_name" field.
func CompanyNameEqualFold(v string) predicate.Account {
	return predicate.Account(sql.FieldEqualFold(FieldCompanyName, v))
}

// CompanyNameContainsFold applies the ContainsFold predicate on the "company_name" field.
func CompanyNameContainsFold(v string) predicate.Account {
	return predicate.Account(sql.FieldContainsFold(FieldCompanyName, v))
}

// TierEQ applies the EQ predicate on the "tier" field.
func TierEQ(v Tier) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldTier, v))
}

// TierNEQ applies the NEQ predicate on the "tier" field.
func TierNEQ(v Tier) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldTier, v))
}

// TierIn applies the In predicate on the "tier" field.
func TierIn(vs ...Tier) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldTier, vs...))
}

// TierNotIn applies the NotIn predicate on the "tier" field.
func TierNotIn(vs ...Tier) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldTier, vs...))
}

// TrialStartEQ applies the EQ predicate on the "trial_start" field.
func TrialStartEQ(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldTrialStart, v))
}

// TrialStartNEQ applies the NEQ predicate on the "trial_start" field.
func TrialStartNEQ(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldTrialStart, v))
}

// TrialStartIn applies the In predicate on the "trial_start" field.
func TrialStartIn(vs ...time.Time) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldTrialStart, vs...))
}

// TrialStartNotIn applies the NotIn predicate on the "trial_start" field.
func TrialStartNotIn(vs ...time.Time) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldTrialStart, vs...))
}

// TrialStartGT applies the GT predicate on the "trial_start" field.
func TrialStartGT(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldTrialStart, v))
}

// TrialStartGTE applies the GTE predicate on the "trial_start" field.
func TrialStartGTE(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldTrialStart, v))
}

// TrialStartLT applies the LT predicate on the "trial_start" field.
func TrialStartLT(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldTrialStart, v))
}

// TrialStartLTE applies the LTE predicate on the "trial_start" field.
func TrialStartLTE(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldTrialStart, v))
}

// TrialLengthDaysEQ applies the EQ predicate on the "trial_length_days" field.
func TrialLengthDaysEQ(v int) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldTrialLengthDays, v))
}

// TrialLengthDaysNEQ applies the NEQ predicate on the "trial_length_days" field.
func TrialLengthDaysNEQ(v int) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldTrialLengthDays, v))
}

// TrialLengthDaysIn applies the In predicate on the "trial_length_days" field.
func TrialLengthDaysIn(vs ...int) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldTrialLengthDays, vs...))
}

// TrialLengthDaysNotIn applies the NotIn predicate on the "trial_length_days" field.
func TrialLengthDaysNotIn(vs ...int) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldTrialLengthDays, vs...))
}

// TrialLengthDaysGT applies the GT predicate on the "trial_length_days" field.
func TrialLengthDaysGT(v int) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldTrialLengthDays, v))
}

// TrialLengthDaysGTE applies the GTE predicate on the "trial_length_days" field.
func TrialLengthDaysGTE(v int) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldTrialLengthDays, v))
}

// TrialLengthDaysLT applies the LT predicate on the "trial_length_days" field.
func TrialLengthDaysLT(v int) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldTrialLengthDays, v))
}

// TrialLengthDaysLTE applies the LTE predicate on the "trial_length_days" field.
func TrialLengthDaysLTE(v int) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldTrialLengthDays, v))
}

// OwaspLevelEQ applies the EQ predicate on the "owasp_level" field.
func OwaspLevelEQ(v int) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldOwaspLevel, v))
}

// OwaspLevelNEQ applies the NEQ predicate on the "owasp_level" field.
func OwaspLevelNEQ(v int) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldOwaspLevel, v))
}

// OwaspLevelIn applies the In predicate on the "owasp_level" field.
func OwaspLevelIn(vs ...int) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldOwaspLevel, vs...))
}

// OwaspLevelNotIn applies the NotIn predicate on the "owasp_level" field.
func OwaspLevelNotIn(vs ...int) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldOwaspLevel, vs...))
}

// OwaspLevelGT applies the GT predicate on the "owasp_level" field.
func OwaspLevelGT(v int) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldOwaspLevel, v))
}

// OwaspLevelGTE applies the GTE predicate on the "owasp_level" field.
func OwaspLevelGTE(v int) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldOwaspLevel, v))
}

// OwaspLevelLT applies the LT predicate on the "owasp_level" field.
func OwaspLevelLT(v int) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldOwaspLevel, v))
}

// OwaspLevelLTE applies the LTE predicate on the "owasp_level" field.
func OwaspLevelLTE(v int) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldOwaspLevel, v))
}

// ScoreTotalEQ applies the EQ predicate on the "score_total" field.
func ScoreTotalEQ(v int) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldScoreTotal, v))
}

// ScoreTotalNEQ applies the NEQ predicate on the "score_total" field.
func ScoreTotalNEQ(v int) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldScoreTotal, v))
}

// ScoreTotalIn applies the In predicate on the "score_total" field.
func ScoreTotalIn(vs ...int) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldScoreTotal, vs...))
}

// ScoreTotalNotIn applies the NotIn predicate on the "score_total" field.
func ScoreTotalNotIn(vs ...int) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldScoreTotal, vs...))
}

// ScoreTotalGT applies the GT predicate on the "score_total" field.
func ScoreTotalGT(v int) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldScoreTotal, v))
}

// ScoreTotalGTE applies the GTE predicate on the "score_total" field.
func ScoreTotalGTE(v int) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldScoreTotal, v))
}

// ScoreTotalLT applies the LT predicate on the "score_total" field.
func ScoreTotalLT(v int) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldScoreTotal, v))
}

// ScoreTotalLTE applies the LTE predicate on the "score_total" field.
func ScoreTotalLTE(v int) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldScoreTotal, v))
}

// LessonsCompletedEQ applies the EQ predicate on the "lessons_completed" field.
func LessonsCompletedEQ(v int) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldLessonsCompleted, v))
}

// LessonsCompletedNEQ applies the NEQ predicate on the "lessons_completed" field.
func LessonsCompletedNEQ(v int) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldLessonsCompleted, v))
}

// LessonsCompletedIn applies the In predicate on the "lessons_completed" field.
func LessonsCompletedIn(vs ...int) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldLessonsCompleted, vs...))
}

// LessonsCompletedNotIn applies the NotIn predicate on the "lessons_completed" field.
func LessonsCompletedNotIn(vs ...int) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldLessonsCompleted, vs...))
}

// LessonsCompletedGT applies the GT predicate on the "lessons_completed" field.
func LessonsCompletedGT(v int) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldLessonsCompleted, v))
}

// LessonsCompletedGTE applies the GTE predicate on the "lessons_completed" field.
func LessonsCompletedGTE(v int) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldLessonsCompleted, v))
}

// LessonsCompletedLT applies the LT predicate on the "lessons_completed" field.
func LessonsCompletedLT(v int) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldLessonsCompleted, v))
}

// LessonsCompletedLTE applies the LTE predicate on the "lessons_completed" field.
func LessonsCompletedLTE(v int) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldLessonsCompleted, v))
}

// QuizzesPassedEQ applies the EQ predicate on the "quizzes_passed" field.
func QuizzesPassedEQ(v int) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldQuizzesPassed, v))
}

// QuizzesPassedNEQ applies the NEQ predicate on the "quizzes_passed" field.
func QuizzesPassedNEQ(v int) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldQuizzesPassed, v))
}

// QuizzesPassedIn applies the In predicate on the "quizzes_passed" field.
func QuizzesPassedIn(vs ...int) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldQuizzesPassed, vs...))
}

// QuizzesPassedNotIn applies the NotIn predicate on the "quizzes_passed" field.
func QuizzesPassedNotIn(vs ...int) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldQuizzesPassed, vs...))
}

// QuizzesPassedGT applies the GT predicate on the "quizzes_passed" field.
func QuizzesPassedGT(v int) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldQuizzesPassed, v))
}

// QuizzesPassedGTE applies the GTE predicate on the "quizzes_passed" field.
func QuizzesPassedGTE(v int) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldQuizzesPassed, v))
}

// QuizzesPassedLT applies the LT predicate on the "quizzes_passed" field.
func QuizzesPassedLT(v int) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldQuizzesPassed, v))
}

// QuizzesPassedLTE applies the LTE predicate on the "quizzes_passed" field.
func QuizzesPassedLTE(v int) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldQuizzesPassed, v))
}

// CurrentStreakDaysEQ applies the EQ predicate on the "current_streak_days" field.
func CurrentStreakDaysEQ(v int) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldCurrentStreakDays, v))
}

// CurrentStreakDaysNEQ applies the NEQ predicate on the "current_streak_days" field.
func CurrentStreakDaysNEQ(v int) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldCurrentStreakDays, v))
}

// CurrentStreakDaysIn applies the In predicate on the "current_streak_days" field.
func CurrentStreakDaysIn(vs ...int) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldCurrentStreakDays, vs...))
}

// CurrentStreakDaysNotIn applies the NotIn predicate on the "current_streak_days" field.
func CurrentStreakDaysNotIn(vs ...int) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldCurrentStreakDays, vs...))
}

// CurrentStreakDaysGT applies the GT predicate on the "current_streak_days" field.
func CurrentStreakDaysGT(v int) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldCurrentStreakDays, v))
}

// CurrentStreakDaysGTE applies the GTE predicate on the "current_streak_days" field.
func CurrentStreakDaysGTE(v int) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldCurrentStreakDays, v))
}

// CurrentStreakDaysLT applies the LT predicate on the "current_streak_days" field.
func CurrentStreakDaysLT(v int) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldCurrentStreakDays, v))
}

// CurrentStreakDaysLTE applies the LTE predicate on the "current_streak_days" field.
func CurrentStreakDaysLTE(v int) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldCurrentStreakDays, v))
}

// LongestStreakDaysEQ applies the EQ predicate on the "longest_streak_days" field.
func LongestStreakDaysEQ(v int) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldLongestStreakDays, v))
}

// LongestStreakDaysNEQ applies the NEQ predicate on the "longest_streak_days" field.
func LongestStreakDaysNEQ(v int) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldLongestStreakDays, v))
}

// LongestStreakDaysIn applies the In predicate on the "longest_streak_days" field.
func LongestStreakDaysIn(vs ...int) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldLongestStreakDays, vs...))
}

// LongestStreakDaysNotIn applies the NotIn predicate on the "longest_streak_days" field.
func LongestStreakDaysNotIn(vs ...int) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldLongestStreakDays, vs...))
}

// LongestStreakDaysGT applies the GT predicate on the "longest_streak_days" field.
func LongestStreakDaysGT(v int) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldLongestStreakDays, v))
}

// LongestStreakDaysGTE applies the GTE predicate on the "longest_streak_days" field.
func LongestStreakDaysGTE(v int) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldLongestStreakDays, v))
}

// LongestStreakDaysLT applies the LT predicate on the "longest_streak_days" field.
func LongestStreakDaysLT(v int) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldLongestStreakDays, v))
}

// LongestStreakDaysLTE applies the LTE predicate on the "longest_streak_days" field.
func LongestStreakDaysLTE(v int) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldLongestStreakDays, v))
}

// LastActivityDateEQ applies the EQ predicate on the "last_activity_date" field.
func LastActivityDateEQ(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldLastActivityDate, v))
}

// LastActivityDateNEQ applies the NEQ predicate on the "last_activity_date" field.
func LastActivityDateNEQ(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldLastActivityDate, v))
}

// LastActivityDateIn applies the In predicate on the "last_activity_date" field.
func LastActivityDateIn(vs ...time.Time) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldLastActivityDate, vs...))
}

// LastActivityDateNotIn applies the NotIn predicate on the "last_activity_date" field.
func LastActivityDateNotIn(vs ...time.Time) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldLastActivityDate, vs...))
}

// LastActivityDateGT applies the GT predicate on the "last_activity_date" field.
func LastActivityDateGT(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldLastActivityDate, v))
}

// LastActivityDateGTE applies the GTE predicate on the "last_activity_date" field.
func LastActivityDateGTE(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldLastActivityDate, v))
}

// LastActivityDateLT applies the LT predicate on the "last_activity_date" field.
func LastActivityDateLT(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldLastActivityDate, v))
}

// LastActivityDateLTE applies the LTE predicate on the "last_activity_date" field.
func LastActivityDateLTE(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldLastActivityDate, v))
}

// LastActivityDateIsNil applies the IsNil predicate on the "last_activity_date" field.
func LastActivityDateIsNil() predicate.Account {
	return predicate.Account(sql.FieldIsNull(FieldLastActivityDate))
}

// LastActivityDateNotNil applies the NotNil predicate on the "last_activity_date" field.
func LastActivityDateNotNil() predicate.Account {
	return predicate.Account(sql.FieldNotNull(FieldLastActivityDate))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Account) predicate.Account {
	return predicate.Account(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Account) predicate.Account {
	return predicate.Account(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Account) predicate.Account {
	return predicate.Account(sql.NotPredicates(p))
}
