// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AccountsColumns holds the columns for the "accounts" table.
	AccountsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "account_id", Type: field.TypeString, Unique: true},
		{Name: "email", Type: field.TypeString},
		{Name: "company_name", Type: field.TypeString, Default: ""},
		{Name: "tier", Type: field.TypeEnum, Enums: []string{"free", "pro", "enterprise"}, Default: "free"},
		{Name: "trial_start", Type: field.TypeTime},
		{Name: "trial_length_days", Type: field.TypeInt, Default: 30},
		{Name: "owasp_level", Type: field.TypeInt, Default: 1},
		{Name: "score_total", Type: field.TypeInt, Default: 0},
		{Name: "lessons_completed", Type: field.TypeInt, Default: 0},
		{Name: "quizzes_passed", Type: field.TypeInt, Default: 0},
		{Name: "current_streak_days", Type: field.TypeInt, Default: 0},
		{Name: "longest_streak_days", Type: field.TypeInt, Default: 0},
		{Name: "last_activity_date", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AccountsTable holds the schema information for the "accounts" table.
	AccountsTable = &schema.Table{
		Name:       "accounts",
		Columns:    AccountsColumns,
		PrimaryKey: []*schema.Column{AccountsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "account_account_id",
				Unique:  true,
				Columns: []*schema.Column{AccountsColumns[1]},
			},
			{
				Name:    "account_tier",
				Unique:  false,
				Columns: []*schema.Column{AccountsColumns[4]},
			},
		},
	}
	// BillingEventsColumns holds the columns for the "billing_events" table.
	BillingEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "account_id", Type: field.TypeString},
		{Name: "from_tier", Type: field.TypeEnum, Enums: []string{"free", "pro", "enterprise"}},
		{Name: "to_tier", Type: field.TypeEnum, Enums: []string{"free", "pro", "enterprise"}},
		{Name: "reference", Type: field.TypeString, Default: ""},
		{Name: "occurred_at", Type: field.TypeTime},
	}
	// BillingEventsTable holds the schema information for the "billing_events" table.
	BillingEventsTable = &schema.Table{
		Name:       "billing_events",
		Columns:    BillingEventsColumns,
		PrimaryKey: []*schema.Column{BillingEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "billingevent_account_id_occurred_at",
				Unique:  false,
				Columns: []*schema.Column{BillingEventsColumns[1], BillingEventsColumns[5]},
			},
		},
	}
	// GapScoresColumns holds the columns for the "gap_scores" table.
	GapScoresColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "account_id", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "score", Type: field.TypeInt, Default: 0},
		{Name: "last_tested", Type: field.TypeTime},
	}
	// GapScoresTable holds the schema information for the "gap_scores" table.
	GapScoresTable = &schema.Table{
		Name:       "gap_scores",
		Columns:    GapScoresColumns,
		PrimaryKey: []*schema.Column{GapScoresColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "gapscore_account_id_topic",
				Unique:  true,
				Columns: []*schema.Column{GapScoresColumns[1], GapScoresColumns[2]},
			},
			{
				Name:    "gapscore_account_id_score",
				Unique:  false,
				Columns: []*schema.Column{GapScoresColumns[1], GapScoresColumns[3]},
			},
		},
	}
	// ProgressRecordsColumns holds the columns for the "progress_records" table.
	ProgressRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "account_id", Type: field.TypeString},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "module_code", Type: field.TypeString},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "time_spent_seconds", Type: field.TypeInt, Default: 0},
		{Name: "quick_check_correct", Type: field.TypeBool, Default: false},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// ProgressRecordsTable holds the schema information for the "progress_records" table.
	ProgressRecordsTable = &schema.Table{
		Name:       "progress_records",
		Columns:    ProgressRecordsColumns,
		PrimaryKey: []*schema.Column{ProgressRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "progressrecord_account_id_lesson_id",
				Unique:  true,
				Columns: []*schema.Column{ProgressRecordsColumns[1], ProgressRecordsColumns[2]},
			},
			{
				Name:    "progressrecord_account_id_module_code",
				Unique:  false,
				Columns: []*schema.Column{ProgressRecordsColumns[1], ProgressRecordsColumns[3]},
			},
		},
	}
	// QuizAnswersColumns holds the columns for the "quiz_answers" table.
	QuizAnswersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "attempt_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "submitted", Type: field.TypeString, Default: ""},
		{Name: "correct", Type: field.TypeBool, Default: false},
	}
	// QuizAnswersTable holds the schema information for the "quiz_answers" table.
	QuizAnswersTable = &schema.Table{
		Name:       "quiz_answers",
		Columns:    QuizAnswersColumns,
		PrimaryKey: []*schema.Column{QuizAnswersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizanswer_attempt_id_question_id",
				Unique:  true,
				Columns: []*schema.Column{QuizAnswersColumns[1], QuizAnswersColumns[2]},
			},
		},
	}
	// QuizAttemptsColumns holds the columns for the "quiz_attempts" table.
	QuizAttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "attempt_id", Type: field.TypeString, Unique: true},
		{Name: "account_id", Type: field.TypeString},
		{Name: "module_code", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"building", "issued", "submitted", "scored"}, Default: "issued"},
		{Name: "question_ids", Type: field.TypeJSON},
		{Name: "score", Type: field.TypeInt, Default: 0},
		{Name: "correct_count", Type: field.TypeInt, Default: 0},
		{Name: "passed", Type: field.TypeBool, Default: false},
		{Name: "issued_at", Type: field.TypeTime},
		{Name: "scored_at", Type: field.TypeTime, Nullable: true},
	}
	// QuizAttemptsTable holds the schema information for the "quiz_attempts" table.
	QuizAttemptsTable = &schema.Table{
		Name:       "quiz_attempts",
		Columns:    QuizAttemptsColumns,
		PrimaryKey: []*schema.Column{QuizAttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizattempt_attempt_id",
				Unique:  true,
				Columns: []*schema.Column{QuizAttemptsColumns[1]},
			},
			{
				Name:    "quizattempt_account_id_issued_at",
				Unique:  false,
				Columns: []*schema.Column{QuizAttemptsColumns[2], QuizAttemptsColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AccountsTable,
		BillingEventsTable,
		GapScoresTable,
		ProgressRecordsTable,
		QuizAnswersTable,
		QuizAttemptsTable,
	}
)

func init() {
}
