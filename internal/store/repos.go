package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// AccountRecord mirrors one persisted account row.
type AccountRecord struct {
	AccountID         string
	Email             string
	CompanyName       string
	Tier              string
	TrialStart        time.Time
	TrialLengthDays   int
	OWASPLevel        int
	ScoreTotal        int
	LessonsCompleted  int
	QuizzesPassed     int
	CurrentStreakDays int
	LongestStreakDays int
	LastActivityDate  *time.Time
}

// BillingEventRecord is one consumed tier transition.
type BillingEventRecord struct {
	AccountID  string
	FromTier   string
	ToTier     string
	Reference  string
	OccurredAt time.Time
}

// AccountRepo persists accounts and their billing audit trail.
type AccountRepo interface {
	// Get returns the account, or ErrNotFound.
	Get(ctx context.Context, accountID string) (*AccountRecord, error)

	// Create inserts a new account.
	Create(ctx context.Context, rec *AccountRecord) error

	// Save writes mutable account fields back.
	Save(ctx context.Context, rec *AccountRecord) error

	// AppendBillingEvent records a consumed tier transition.
	AppendBillingEvent(ctx context.Context, ev BillingEventRecord) error
}

// ProgressRecordRow mirrors one persisted (account, lesson) progress row.
type ProgressRecordRow struct {
	AccountID         string
	LessonID          string
	ModuleCode        string
	Completed         bool
	TimeSpentSeconds  int
	QuickCheckCorrect bool
	StartedAt         time.Time
	CompletedAt       *time.Time
}

// ProgressRepo persists per-lesson progress.
type ProgressRepo interface {
	// Get returns the row for (account, lesson), or ErrNotFound.
	Get(ctx context.Context, accountID, lessonID string) (*ProgressRecordRow, error)

	// Create inserts a new row. It must not duplicate an existing
	// (account, lesson) pair.
	Create(ctx context.Context, rec *ProgressRecordRow) error

	// Save writes mutable fields back.
	Save(ctx context.Context, rec *ProgressRecordRow) error

	// ListByModule returns all rows for an account within one module.
	ListByModule(ctx context.Context, accountID, moduleCode string) ([]ProgressRecordRow, error)

	// ListByAccount returns all rows for an account.
	ListByAccount(ctx context.Context, accountID string) ([]ProgressRecordRow, error)
}

// GapRecord mirrors one persisted (account, topic) gap score.
type GapRecord struct {
	AccountID  string
	Topic      string
	Score      int
	LastTested time.Time
}

// GapRepo reads gap scores. Writes happen only through QuizRepo.SaveScored,
// keeping quiz scoring atomic.
type GapRepo interface {
	// List returns all gap rows for an account.
	List(ctx context.Context, accountID string) ([]GapRecord, error)
}

// AttemptRecord mirrors one persisted quiz attempt.
type AttemptRecord struct {
	AttemptID    string
	AccountID    string
	ModuleCode   string
	Status       string
	QuestionIDs  []string
	Score        int
	CorrectCount int
	Passed       bool
	IssuedAt     time.Time
	ScoredAt     *time.Time
}

// AnswerRecord mirrors one persisted per-question answer.
type AnswerRecord struct {
	AttemptID  string
	QuestionID string
	Topic      string
	Submitted  string
	Correct    bool
}

// ScoredSubmission bundles everything quiz scoring persists in one
// transaction: the finalized attempt, its answers, the gap upserts the
// answers caused, and the account counters they moved.
type ScoredSubmission struct {
	Attempt *AttemptRecord
	Answers []AnswerRecord
	Gaps    []GapRecord
	Account *AccountRecord
}

// QuizRepo persists quiz attempts.
type QuizRepo interface {
	// Get returns the attempt, or ErrNotFound.
	Get(ctx context.Context, attemptID string) (*AttemptRecord, error)

	// Create inserts a freshly issued attempt.
	Create(ctx context.Context, rec *AttemptRecord) error

	// LatestOpen returns the account's most recent unscored attempt,
	// or ErrNotFound.
	LatestOpen(ctx context.Context, accountID string) (*AttemptRecord, error)

	// ListAnswers returns the persisted answers of a scored attempt.
	ListAnswers(ctx context.Context, attemptID string) ([]AnswerRecord, error)

	// SaveScored persists a scored submission atomically. Either the
	// attempt, its answers, gap updates, and account counters all commit,
	// or none do.
	SaveScored(ctx context.Context, sub ScoredSubmission) error
}
