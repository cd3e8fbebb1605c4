// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/HM-aes/smbshield/ent/account"
	"github.com/HM-aes/smbshield/ent/billingevent"
	"github.com/HM-aes/smbshield/ent/gapscore"
	"github.com/HM-aes/smbshield/ent/progressrecord"
	"github.com/HM-aes/smbshield/ent/quizanswer"
	"github.com/HM-aes/smbshield/ent/quizattempt"
	"github.com/HM-aes/smbshield/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	accountFields := schema.Account{}.Fields()
	_ = accountFields
	// accountDescAccountID is the schema descriptor for account_id field.
	accountDescAccountID := accountFields[0].Descriptor()
	// account.AccountIDValidator is a validator for the "account_id" field. It is called by the builders before save.
	account.AccountIDValidator = accountDescAccountID.Validators[0].(func(string) error)
	// accountDescEmail is the schema descriptor for email field.
	accountDescEmail := accountFields[1].Descriptor()
	// account.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	account.EmailValidator = accountDescEmail.Validators[0].(func(string) error)
	// accountDescCompanyName is the schema descriptor for company_name field.
	accountDescCompanyName := accountFields[2].Descriptor()
	// account.DefaultCompanyName holds the default value on creation for the company_name field.
	account.DefaultCompanyName = accountDescCompanyName.Default.(string)
	// accountDescTrialLengthDays is the schema descriptor for trial_length_days field.
	accountDescTrialLengthDays := accountFields[5].Descriptor()
	// account.DefaultTrialLengthDays holds the default value on creation for the trial_length_days field.
	account.DefaultTrialLengthDays = accountDescTrialLengthDays.Default.(int)
	// accountDescOwaspLevel is the schema descriptor for owasp_level field.
	accountDescOwaspLevel := accountFields[6].Descriptor()
	// account.DefaultOwaspLevel holds the default value on creation for the owasp_level field.
	account.DefaultOwaspLevel = accountDescOwaspLevel.Default.(int)
	// accountDescScoreTotal is the schema descriptor for score_total field.
	accountDescScoreTotal := accountFields[7].Descriptor()
	// account.DefaultScoreTotal holds the default value on creation for the score_total field.
	account.DefaultScoreTotal = accountDescScoreTotal.Default.(int)
	// accountDescLessonsCompleted is the schema descriptor for lessons_completed field.
	accountDescLessonsCompleted := accountFields[8].Descriptor()
	// account.DefaultLessonsCompleted holds the default value on creation for the lessons_completed field.
	account.DefaultLessonsCompleted = accountDescLessonsCompleted.Default.(int)
	// accountDescQuizzesPassed is the schema descriptor for quizzes_passed field.
	accountDescQuizzesPassed := accountFields[9].Descriptor()
	// account.DefaultQuizzesPassed holds the default value on creation for the quizzes_passed field.
	account.DefaultQuizzesPassed = accountDescQuizzesPassed.Default.(int)
	// accountDescCurrentStreakDays is the schema descriptor for current_streak_days field.
	accountDescCurrentStreakDays := accountFields[10].Descriptor()
	// account.DefaultCurrentStreakDays holds the default value on creation for the current_streak_days field.
	account.DefaultCurrentStreakDays = accountDescCurrentStreakDays.Default.(int)
	// accountDescLongestStreakDays is the schema descriptor for longest_streak_days field.
	accountDescLongestStreakDays := accountFields[11].Descriptor()
	// account.DefaultLongestStreakDays holds the default value on creation for the longest_streak_days field.
	account.DefaultLongestStreakDays = accountDescLongestStreakDays.Default.(int)
	// accountDescCreatedAt is the schema descriptor for created_at field.
	accountDescCreatedAt := accountFields[13].Descriptor()
	// account.DefaultCreatedAt holds the default value on creation for the created_at field.
	account.DefaultCreatedAt = accountDescCreatedAt.Default.(func() time.Time)
	// accountDescUpdatedAt is the schema descriptor for updated_at field.
	accountDescUpdatedAt := accountFields[14].Descriptor()
	// account.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	account.DefaultUpdatedAt = accountDescUpdatedAt.Default.(func() time.Time)
	// account.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	account.UpdateDefaultUpdatedAt = accountDescUpdatedAt.UpdateDefault.(func() time.Time)
	billingeventFields := schema.BillingEvent{}.Fields()
	_ = billingeventFields
	// billingeventDescAccountID is the schema descriptor for account_id field.
	billingeventDescAccountID := billingeventFields[0].Descriptor()
	// billingevent.AccountIDValidator is a validator for the "account_id" field. It is called by the builders before save.
	billingevent.AccountIDValidator = billingeventDescAccountID.Validators[0].(func(string) error)
	// billingeventDescReference is the schema descriptor for reference field.
	billingeventDescReference := billingeventFields[3].Descriptor()
	// billingevent.DefaultReference holds the default value on creation for the reference field.
	billingevent.DefaultReference = billingeventDescReference.Default.(string)
	// billingeventDescOccurredAt is the schema descriptor for occurred_at field.
	billingeventDescOccurredAt := billingeventFields[4].Descriptor()
	// billingevent.DefaultOccurredAt holds the default value on creation for the occurred_at field.
	billingevent.DefaultOccurredAt = billingeventDescOccurredAt.Default.(func() time.Time)
	gapscoreFields := schema.GapScore{}.Fields()
	_ = gapscoreFields
	// gapscoreDescAccountID is the schema descriptor for account_id field.
	gapscoreDescAccountID := gapscoreFields[0].Descriptor()
	// gapscore.AccountIDValidator is a validator for the "account_id" field. It is called by the builders before save.
	gapscore.AccountIDValidator = gapscoreDescAccountID.Validators[0].(func(string) error)
	// gapscoreDescTopic is the schema descriptor for topic field.
	gapscoreDescTopic := gapscoreFields[1].Descriptor()
	// gapscore.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	gapscore.TopicValidator = gapscoreDescTopic.Validators[0].(func(string) error)
	// gapscoreDescScore is the schema descriptor for score field.
	gapscoreDescScore := gapscoreFields[2].Descriptor()
	// gapscore.DefaultScore holds the default value on creation for the score field.
	gapscore.DefaultScore = gapscoreDescScore.Default.(int)
	progressrecordFields := schema.ProgressRecord{}.Fields()
	_ = progressrecordFields
	// progressrecordDescAccountID is the schema descriptor for account_id field.
	progressrecordDescAccountID := progressrecordFields[0].Descriptor()
	// progressrecord.AccountIDValidator is a validator for the "account_id" field. It is called by the builders before save.
	progressrecord.AccountIDValidator = progressrecordDescAccountID.Validators[0].(func(string) error)
	// progressrecordDescLessonID is the schema descriptor for lesson_id field.
	progressrecordDescLessonID := progressrecordFields[1].Descriptor()
	// progressrecord.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	progressrecord.LessonIDValidator = progressrecordDescLessonID.Validators[0].(func(string) error)
	// progressrecordDescModuleCode is the schema descriptor for module_code field.
	progressrecordDescModuleCode := progressrecordFields[2].Descriptor()
	// progressrecord.ModuleCodeValidator is a validator for the "module_code" field. It is called by the builders before save.
	progressrecord.ModuleCodeValidator = progressrecordDescModuleCode.Validators[0].(func(string) error)
	// progressrecordDescCompleted is the schema descriptor for completed field.
	progressrecordDescCompleted := progressrecordFields[3].Descriptor()
	// progressrecord.DefaultCompleted holds the default value on creation for the completed field.
	progressrecord.DefaultCompleted = progressrecordDescCompleted.Default.(bool)
	// progressrecordDescTimeSpentSeconds is the schema descriptor for time_spent_seconds field.
	progressrecordDescTimeSpentSeconds := progressrecordFields[4].Descriptor()
	// progressrecord.DefaultTimeSpentSeconds holds the default value on creation for the time_spent_seconds field.
	progressrecord.DefaultTimeSpentSeconds = progressrecordDescTimeSpentSeconds.Default.(int)
	// progressrecordDescQuickCheckCorrect is the schema descriptor for quick_check_correct field.
	progressrecordDescQuickCheckCorrect := progressrecordFields[5].Descriptor()
	// progressrecord.DefaultQuickCheckCorrect holds the default value on creation for the quick_check_correct field.
	progressrecord.DefaultQuickCheckCorrect = progressrecordDescQuickCheckCorrect.Default.(bool)
	// progressrecordDescStartedAt is the schema descriptor for started_at field.
	progressrecordDescStartedAt := progressrecordFields[6].Descriptor()
	// progressrecord.DefaultStartedAt holds the default value on creation for the started_at field.
	progressrecord.DefaultStartedAt = progressrecordDescStartedAt.Default.(func() time.Time)
	quizanswerFields := schema.QuizAnswer{}.Fields()
	_ = quizanswerFields
	// quizanswerDescAttemptID is the schema descriptor for attempt_id field.
	quizanswerDescAttemptID := quizanswerFields[0].Descriptor()
	// quizanswer.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	quizanswer.AttemptIDValidator = quizanswerDescAttemptID.Validators[0].(func(string) error)
	// quizanswerDescQuestionID is the schema descriptor for question_id field.
	quizanswerDescQuestionID := quizanswerFields[1].Descriptor()
	// quizanswer.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	quizanswer.QuestionIDValidator = quizanswerDescQuestionID.Validators[0].(func(string) error)
	// quizanswerDescTopic is the schema descriptor for topic field.
	quizanswerDescTopic := quizanswerFields[2].Descriptor()
	// quizanswer.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	quizanswer.TopicValidator = quizanswerDescTopic.Validators[0].(func(string) error)
	// quizanswerDescSubmitted is the schema descriptor for submitted field.
	quizanswerDescSubmitted := quizanswerFields[3].Descriptor()
	// quizanswer.DefaultSubmitted holds the default value on creation for the submitted field.
	quizanswer.DefaultSubmitted = quizanswerDescSubmitted.Default.(string)
	// quizanswerDescCorrect is the schema descriptor for correct field.
	quizanswerDescCorrect := quizanswerFields[4].Descriptor()
	// quizanswer.DefaultCorrect holds the default value on creation for the correct field.
	quizanswer.DefaultCorrect = quizanswerDescCorrect.Default.(bool)
	quizattemptFields := schema.QuizAttempt{}.Fields()
	_ = quizattemptFields
	// quizattemptDescAttemptID is the schema descriptor for attempt_id field.
	quizattemptDescAttemptID := quizattemptFields[0].Descriptor()
	// quizattempt.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	quizattempt.AttemptIDValidator = quizattemptDescAttemptID.Validators[0].(func(string) error)
	// quizattemptDescAccountID is the schema descriptor for account_id field.
	quizattemptDescAccountID := quizattemptFields[1].Descriptor()
	// quizattempt.AccountIDValidator is a validator for the "account_id" field. It is called by the builders before save.
	quizattempt.AccountIDValidator = quizattemptDescAccountID.Validators[0].(func(string) error)
	// quizattemptDescModuleCode is the schema descriptor for module_code field.
	quizattemptDescModuleCode := quizattemptFields[2].Descriptor()
	// quizattempt.ModuleCodeValidator is a validator for the "module_code" field. It is called by the builders before save.
	quizattempt.ModuleCodeValidator = quizattemptDescModuleCode.Validators[0].(func(string) error)
	// quizattemptDescScore is the schema descriptor for score field.
	quizattemptDescScore := quizattemptFields[5].Descriptor()
	// quizattempt.DefaultScore holds the default value on creation for the score field.
	quizattempt.DefaultScore = quizattemptDescScore.Default.(int)
	// quizattemptDescCorrectCount is the schema descriptor for correct_count field.
	quizattemptDescCorrectCount := quizattemptFields[6].Descriptor()
	// quizattempt.DefaultCorrectCount holds the default value on creation for the correct_count field.
	quizattempt.DefaultCorrectCount = quizattemptDescCorrectCount.Default.(int)
	// quizattemptDescPassed is the schema descriptor for passed field.
	quizattemptDescPassed := quizattemptFields[7].Descriptor()
	// quizattempt.DefaultPassed holds the default value on creation for the passed field.
	quizattempt.DefaultPassed = quizattemptDescPassed.Default.(bool)
	// quizattemptDescIssuedAt is the schema descriptor for issued_at field.
	quizattemptDescIssuedAt := quizattemptFields[8].Descriptor()
	// quizattempt.DefaultIssuedAt holds the default value on creation for the issued_at field.
	quizattempt.DefaultIssuedAt = quizattemptDescIssuedAt.Default.(func() time.Time)
}
