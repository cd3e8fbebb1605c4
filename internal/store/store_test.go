package store

import (
	"context"
	"errors"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testAccount(id string) *AccountRecord {
	return &AccountRecord{
		AccountID:       id,
		Email:           id + "@example.com",
		Tier:            "free",
		TrialStart:      time.Now().UTC().Truncate(time.Second),
		TrialLengthDays: 30,
		OWASPLevel:      1,
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not checked here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAccountRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Accounts().Create(ctx, testAccount("acct-rt")); err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := s.Accounts().Get(ctx, "acct-rt")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Email != "acct-rt@example.com" || got.OWASPLevel != 1 {
		t.Errorf("got %+v", got)
	}

	_, err = s.Accounts().Get(ctx, "acct-missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("missing account: err = %v, want ErrNotFound", err)
	}
}

// A scored submission must land every account field the scoring path
// advances, streak state included, not just the score counters.
func TestSaveScoredPersistsFullAccountState(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Accounts().Create(ctx, testAccount("acct-scored")); err != nil {
		t.Fatalf("create account: %v", err)
	}

	issued := time.Now().UTC().Truncate(time.Second)
	att := &AttemptRecord{
		AttemptID:   "att-1",
		AccountID:   "acct-scored",
		ModuleCode:  "A01",
		Status:      "issued",
		QuestionIDs: []string{"A01-Q1", "A01-Q2"},
		IssuedAt:    issued,
	}
	if err := s.Quizzes().Create(ctx, att); err != nil {
		t.Fatalf("create attempt: %v", err)
	}

	scoredAt := issued.Add(time.Minute)
	activity := scoredAt.Truncate(24 * time.Hour)
	acc := testAccount("acct-scored")
	acc.ScoreTotal = 100
	acc.QuizzesPassed = 1
	acc.CurrentStreakDays = 1
	acc.LongestStreakDays = 1
	acc.LastActivityDate = &activity

	att.Status = "scored"
	att.Score = 100
	att.CorrectCount = 2
	att.Passed = true
	att.ScoredAt = &scoredAt

	err := s.Quizzes().SaveScored(ctx, ScoredSubmission{
		Attempt: att,
		Answers: []AnswerRecord{
			{AttemptID: "att-1", QuestionID: "A01-Q1", Topic: "A01", Submitted: "1", Correct: true},
			{AttemptID: "att-1", QuestionID: "A01-Q2", Topic: "A01", Submitted: "0", Correct: true},
		},
		Gaps:    []GapRecord{{AccountID: "acct-scored", Topic: "A01", Score: 0, LastTested: scoredAt}},
		Account: acc,
	})
	if err != nil {
		t.Fatalf("save scored: %v", err)
	}

	reloaded, err := s.Accounts().Get(ctx, "acct-scored")
	if err != nil {
		t.Fatalf("reload account: %v", err)
	}
	if reloaded.ScoreTotal != 100 || reloaded.QuizzesPassed != 1 {
		t.Errorf("counters = %d/%d, want 100/1", reloaded.ScoreTotal, reloaded.QuizzesPassed)
	}
	if reloaded.CurrentStreakDays != 1 || reloaded.LongestStreakDays != 1 {
		t.Errorf("streak = %d (longest %d), want 1 (longest 1)",
			reloaded.CurrentStreakDays, reloaded.LongestStreakDays)
	}
	if reloaded.LastActivityDate == nil {
		t.Fatal("last activity date was not persisted")
	}
	if !reloaded.LastActivityDate.Equal(activity) {
		t.Errorf("last activity = %v, want %v", reloaded.LastActivityDate, activity)
	}

	gotAtt, err := s.Quizzes().Get(ctx, "att-1")
	if err != nil {
		t.Fatalf("reload attempt: %v", err)
	}
	if gotAtt.Status != "scored" || gotAtt.Score != 100 || !gotAtt.Passed {
		t.Errorf("attempt = %+v", gotAtt)
	}

	answers, err := s.Quizzes().ListAnswers(ctx, "att-1")
	if err != nil {
		t.Fatalf("list answers: %v", err)
	}
	if len(answers) != 2 {
		t.Errorf("answers = %d, want 2", len(answers))
	}

	gaps, err := s.Gaps().List(ctx, "acct-scored")
	if err != nil {
		t.Fatalf("list gaps: %v", err)
	}
	if len(gaps) != 1 || gaps[0].Topic != "A01" {
		t.Errorf("gaps = %+v", gaps)
	}
}

func TestSaveScoredUnknownAttempt(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	scoredAt := time.Now().UTC()
	err := s.Quizzes().SaveScored(ctx, ScoredSubmission{
		Attempt: &AttemptRecord{
			AttemptID: "att-ghost",
			Status:    "scored",
			ScoredAt:  &scoredAt,
		},
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestGapUpsert(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Accounts().Create(ctx, testAccount("acct-gaps")); err != nil {
		t.Fatalf("create account: %v", err)
	}
	att := &AttemptRecord{
		AttemptID:   "att-gaps",
		AccountID:   "acct-gaps",
		ModuleCode:  "A02",
		Status:      "issued",
		QuestionIDs: []string{"A02-Q1"},
		IssuedAt:    time.Now().UTC(),
	}
	if err := s.Quizzes().Create(ctx, att); err != nil {
		t.Fatalf("create attempt: %v", err)
	}

	scoredAt := time.Now().UTC().Truncate(time.Second)
	att.Status = "scored"
	att.ScoredAt = &scoredAt
	save := func(score int) error {
		return s.Quizzes().SaveScored(ctx, ScoredSubmission{
			Attempt: att,
			Gaps:    []GapRecord{{AccountID: "acct-gaps", Topic: "A02", Score: score, LastTested: scoredAt}},
		})
	}

	if err := save(15); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := save(30); err != nil {
		t.Fatalf("second save: %v", err)
	}

	gaps, err := s.Gaps().List(ctx, "acct-gaps")
	if err != nil {
		t.Fatalf("list gaps: %v", err)
	}
	if len(gaps) != 1 {
		t.Fatalf("gaps = %d rows, want 1 (upsert, not insert)", len(gaps))
	}
	if gaps[0].Score != 30 {
		t.Errorf("score = %d, want 30", gaps[0].Score)
	}
}
