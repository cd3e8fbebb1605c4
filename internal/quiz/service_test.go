package quiz

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/HM-aes/smbshield/internal/account"
	"github.com/HM-aes/smbshield/internal/gaps"
	"github.com/HM-aes/smbshield/internal/store"
)

type fakeQuizRepo struct {
	attempts map[string]*store.AttemptRecord
	answers  map[string][]store.AnswerRecord
	scored   *store.ScoredSubmission
	gapRows  map[string]store.GapRecord // topic -> row, written by SaveScored
}

func newFakeQuizRepo() *fakeQuizRepo {
	return &fakeQuizRepo{
		attempts: make(map[string]*store.AttemptRecord),
		answers:  make(map[string][]store.AnswerRecord),
		gapRows:  make(map[string]store.GapRecord),
	}
}

func (f *fakeQuizRepo) Get(_ context.Context, attemptID string) (*store.AttemptRecord, error) {
	rec, ok := f.attempts[attemptID]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeQuizRepo) Create(_ context.Context, rec *store.AttemptRecord) error {
	if _, ok := f.attempts[rec.AttemptID]; ok {
		return fmt.Errorf("duplicate attempt %s", rec.AttemptID)
	}
	cp := *rec
	f.attempts[rec.AttemptID] = &cp
	return nil
}

func (f *fakeQuizRepo) LatestOpen(_ context.Context, accountID string) (*store.AttemptRecord, error) {
	for _, rec := range f.attempts {
		if rec.AccountID == accountID && rec.Status != StatusScored {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeQuizRepo) ListAnswers(_ context.Context, attemptID string) ([]store.AnswerRecord, error) {
	return f.answers[attemptID], nil
}

func (f *fakeQuizRepo) SaveScored(_ context.Context, sub store.ScoredSubmission) error {
	cp := *sub.Attempt
	f.attempts[cp.AttemptID] = &cp
	f.answers[cp.AttemptID] = sub.Answers
	for _, g := range sub.Gaps {
		f.gapRows[g.Topic] = g
	}
	f.scored = &sub
	return nil
}

// List implements store.GapRepo over the rows SaveScored wrote.
func (f *fakeQuizRepo) List(_ context.Context, _ string) ([]store.GapRecord, error) {
	var out []store.GapRecord
	for _, g := range f.gapRows {
		out = append(out, g)
	}
	return out, nil
}

var issuedAt = time.Date(2026, 6, 12, 10, 0, 0, 0, time.UTC)

func newTestService(repo *fakeQuizRepo) *Service {
	sel := NewSelector(DefaultSelectorConfig(), 1)
	return NewService(repo, repo, sel, gaps.DefaultConfig(), DefaultPassThreshold, nil)
}

// answersScoring builds a submission with the given number of correct
// answers; the rest get a deliberately wrong choice.
func answersScoring(t *testing.T, att *Attempt, correct int) map[string]int {
	t.Helper()
	out := make(map[string]int, len(att.QuestionIDs))
	for i, id := range att.QuestionIDs {
		q, err := QuestionByID(id)
		if err != nil {
			t.Fatalf("question %s: %v", id, err)
		}
		if i < correct {
			out[id] = q.Answer
		} else {
			out[id] = (q.Answer + 1) % len(q.Choices)
		}
	}
	return out
}

func TestGetOrBuildIssuesAttempt(t *testing.T) {
	repo := newFakeQuizRepo()
	svc := newTestService(repo)
	acc := account.New("acc-1", "owner@example.com", issuedAt)
	ctx := context.Background()

	att, qs, err := svc.GetOrBuild(ctx, acc, issuedAt)
	if err != nil {
		t.Fatalf("get or build: %v", err)
	}
	if att.Status != StatusIssued {
		t.Errorf("status = %s, want issued", att.Status)
	}
	if len(qs) != 10 || len(att.QuestionIDs) != 10 {
		t.Errorf("questions = %d/%d, want 10", len(qs), len(att.QuestionIDs))
	}
	if _, ok := repo.attempts[att.ID]; !ok {
		t.Error("attempt was not persisted")
	}
}

func TestGetOrBuildResumesOpenAttempt(t *testing.T) {
	repo := newFakeQuizRepo()
	svc := newTestService(repo)
	acc := account.New("acc-1", "owner@example.com", issuedAt)
	ctx := context.Background()

	first, _, err := svc.GetOrBuild(ctx, acc, issuedAt)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	second, _, err := svc.GetOrBuild(ctx, acc, issuedAt.Add(time.Hour))
	if err != nil {
		t.Fatalf("resume: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("open attempt replaced: %s -> %s", first.ID, second.ID)
	}
	if len(repo.attempts) != 1 {
		t.Errorf("attempt count = %d, want 1", len(repo.attempts))
	}
}

func TestSubmitScoresAtomically(t *testing.T) {
	repo := newFakeQuizRepo()
	svc := newTestService(repo)
	acc := account.New("acc-1", "owner@example.com", issuedAt)
	ctx := context.Background()

	att, _, err := svc.GetOrBuild(ctx, acc, issuedAt)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	res, err := svc.Submit(ctx, acc, att.ID, answersScoring(t, att, 7), issuedAt.Add(time.Hour))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if res.Score != 70 || !res.Passed {
		t.Errorf("score = %d passed = %v, want 70/true", res.Score, res.Passed)
	}
	if res.CorrectCount != 7 || res.Total != 10 {
		t.Errorf("correct = %d/%d, want 7/10", res.CorrectCount, res.Total)
	}
	if len(res.Feedback) != 10 {
		t.Errorf("feedback entries = %d, want one per question", len(res.Feedback))
	}

	if acc.ScoreTotal != 70 || acc.QuizzesPassed != 1 {
		t.Errorf("account counters = total %d passed %d, want 70/1", acc.ScoreTotal, acc.QuizzesPassed)
	}
	if repo.scored == nil {
		t.Fatal("SaveScored was not called")
	}
	if repo.scored.Account == nil || repo.scored.Account.ScoreTotal != 70 {
		t.Error("account counters missing from scored submission")
	}
	// Submitting is activity: the streak the service advanced must ride
	// along in the same transaction.
	if repo.scored.Account.CurrentStreakDays != 1 || repo.scored.Account.LastActivityDate == nil {
		t.Errorf("streak state missing from scored submission: streak %d, last activity %v",
			repo.scored.Account.CurrentStreakDays, repo.scored.Account.LastActivityDate)
	}
	if len(repo.scored.Answers) != 10 {
		t.Errorf("persisted answers = %d, want 10", len(repo.scored.Answers))
	}
	if repo.attempts[att.ID].Status != StatusScored {
		t.Errorf("attempt status = %s, want scored", repo.attempts[att.ID].Status)
	}
	if len(repo.gapRows) == 0 {
		t.Error("no gap rows written by scoring")
	}
}

func TestSubmitFailingScore(t *testing.T) {
	repo := newFakeQuizRepo()
	svc := newTestService(repo)
	acc := account.New("acc-1", "owner@example.com", issuedAt)
	ctx := context.Background()

	att, _, err := svc.GetOrBuild(ctx, acc, issuedAt)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	res, err := svc.Submit(ctx, acc, att.ID, answersScoring(t, att, 6), issuedAt.Add(time.Hour))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.Score != 60 || res.Passed {
		t.Errorf("score = %d passed = %v, want 60/false", res.Score, res.Passed)
	}
	if acc.QuizzesPassed != 0 {
		t.Errorf("QuizzesPassed = %d, want 0", acc.QuizzesPassed)
	}
	if len(res.Feedback) != 10 {
		t.Errorf("failing result returned %d feedback entries, want 10", len(res.Feedback))
	}
}

func TestSubmitUnansweredCountsWrong(t *testing.T) {
	repo := newFakeQuizRepo()
	svc := newTestService(repo)
	acc := account.New("acc-1", "owner@example.com", issuedAt)
	ctx := context.Background()

	att, _, err := svc.GetOrBuild(ctx, acc, issuedAt)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// Answer everything correctly except the last question, which is
	// left out entirely.
	answers := answersScoring(t, att, 10)
	last := att.QuestionIDs[len(att.QuestionIDs)-1]
	delete(answers, last)

	res, err := svc.Submit(ctx, acc, att.ID, answers, issuedAt.Add(time.Hour))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.CorrectCount != 9 {
		t.Errorf("correct = %d, want 9 (unanswered is wrong)", res.CorrectCount)
	}
	fb := res.Feedback[len(res.Feedback)-1]
	if fb.Submitted != NoAnswer || fb.Correct {
		t.Errorf("unanswered feedback = %+v, want NoAnswer/incorrect", fb)
	}
}

func TestResubmissionReturnsOriginalResult(t *testing.T) {
	repo := newFakeQuizRepo()
	svc := newTestService(repo)
	acc := account.New("acc-1", "owner@example.com", issuedAt)
	ctx := context.Background()

	att, _, err := svc.GetOrBuild(ctx, acc, issuedAt)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	first, err := svc.Submit(ctx, acc, att.ID, answersScoring(t, att, 8), issuedAt.Add(time.Hour))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	// A perfect resubmission must not change anything.
	_, err = svc.Submit(ctx, acc, att.ID, answersScoring(t, att, 10), issuedAt.Add(2*time.Hour))
	var already *AlreadyScoredError
	if !errors.As(err, &already) {
		t.Fatalf("err = %v, want AlreadyScoredError", err)
	}
	if already.Result.Score != first.Score {
		t.Errorf("replayed score = %d, want original %d", already.Result.Score, first.Score)
	}
	if acc.ScoreTotal != first.Score {
		t.Errorf("ScoreTotal = %d, want unchanged %d", acc.ScoreTotal, first.Score)
	}
}

func TestSubmitForeignAttemptNotFound(t *testing.T) {
	repo := newFakeQuizRepo()
	svc := newTestService(repo)
	owner := account.New("acc-1", "owner@example.com", issuedAt)
	other := account.New("acc-2", "other@example.com", issuedAt)
	ctx := context.Background()

	att, _, err := svc.GetOrBuild(ctx, owner, issuedAt)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := svc.Submit(ctx, other, att.ID, nil, issuedAt); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("foreign submit err = %v, want ErrNotFound", err)
	}
}

func TestSubmitUpdatesGaps(t *testing.T) {
	repo := newFakeQuizRepo()
	svc := newTestService(repo)
	acc := account.New("acc-1", "owner@example.com", issuedAt)
	ctx := context.Background()

	att, _, err := svc.GetOrBuild(ctx, acc, issuedAt)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	// All wrong: every touched topic gains the wrong increment.
	if _, err := svc.Submit(ctx, acc, att.ID, answersScoring(t, att, 0), issuedAt.Add(time.Hour)); err != nil {
		t.Fatalf("submit: %v", err)
	}

	for topic, row := range repo.gapRows {
		if row.Score <= 0 {
			t.Errorf("topic %s gap = %d after all-wrong quiz, want > 0", topic, row.Score)
		}
	}
}
