package platform

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/HM-aes/smbshield/internal/account"
	"github.com/HM-aes/smbshield/internal/config"
	"github.com/HM-aes/smbshield/internal/gaps"
	"github.com/HM-aes/smbshield/internal/generator"
	"github.com/HM-aes/smbshield/internal/llm"
	"github.com/HM-aes/smbshield/internal/progress"
	"github.com/HM-aes/smbshield/internal/quiz"
	"github.com/HM-aes/smbshield/internal/store"
)

// In-memory repositories backing the engine under test.

type memAccounts struct {
	rows    map[string]*store.AccountRecord
	billing []store.BillingEventRecord
}

func newMemAccounts() *memAccounts {
	return &memAccounts{rows: make(map[string]*store.AccountRecord)}
}

func (m *memAccounts) Get(_ context.Context, id string) (*store.AccountRecord, error) {
	rec, ok := m.rows[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *rec
	return &cp, nil
}

func (m *memAccounts) Create(_ context.Context, rec *store.AccountRecord) error {
	if _, ok := m.rows[rec.AccountID]; ok {
		return fmt.Errorf("duplicate account %s", rec.AccountID)
	}
	cp := *rec
	m.rows[rec.AccountID] = &cp
	return nil
}

func (m *memAccounts) Save(_ context.Context, rec *store.AccountRecord) error {
	if _, ok := m.rows[rec.AccountID]; !ok {
		return store.ErrNotFound
	}
	cp := *rec
	m.rows[rec.AccountID] = &cp
	return nil
}

func (m *memAccounts) AppendBillingEvent(_ context.Context, ev store.BillingEventRecord) error {
	m.billing = append(m.billing, ev)
	return nil
}

type memProgress struct {
	rows map[string]*store.ProgressRecordRow
}

func newMemProgress() *memProgress {
	return &memProgress{rows: make(map[string]*store.ProgressRecordRow)}
}

func (m *memProgress) Get(_ context.Context, accountID, lessonID string) (*store.ProgressRecordRow, error) {
	row, ok := m.rows[accountID+"/"+lessonID]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *row
	return &cp, nil
}

func (m *memProgress) Create(_ context.Context, rec *store.ProgressRecordRow) error {
	cp := *rec
	m.rows[rec.AccountID+"/"+rec.LessonID] = &cp
	return nil
}

func (m *memProgress) Save(_ context.Context, rec *store.ProgressRecordRow) error {
	cp := *rec
	m.rows[rec.AccountID+"/"+rec.LessonID] = &cp
	return nil
}

func (m *memProgress) ListByModule(_ context.Context, accountID, moduleCode string) ([]store.ProgressRecordRow, error) {
	var out []store.ProgressRecordRow
	for _, row := range m.rows {
		if row.AccountID == accountID && row.ModuleCode == moduleCode {
			out = append(out, *row)
		}
	}
	return out, nil
}

func (m *memProgress) ListByAccount(_ context.Context, accountID string) ([]store.ProgressRecordRow, error) {
	var out []store.ProgressRecordRow
	for _, row := range m.rows {
		if row.AccountID == accountID {
			out = append(out, *row)
		}
	}
	return out, nil
}

type memQuiz struct {
	attempts map[string]*store.AttemptRecord
	answers  map[string][]store.AnswerRecord
	gapRows  map[string]store.GapRecord
}

func newMemQuiz() *memQuiz {
	return &memQuiz{
		attempts: make(map[string]*store.AttemptRecord),
		answers:  make(map[string][]store.AnswerRecord),
		gapRows:  make(map[string]store.GapRecord),
	}
}

func (m *memQuiz) Get(_ context.Context, id string) (*store.AttemptRecord, error) {
	rec, ok := m.attempts[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *rec
	return &cp, nil
}

func (m *memQuiz) Create(_ context.Context, rec *store.AttemptRecord) error {
	cp := *rec
	m.attempts[rec.AttemptID] = &cp
	return nil
}

func (m *memQuiz) LatestOpen(_ context.Context, accountID string) (*store.AttemptRecord, error) {
	for _, rec := range m.attempts {
		if rec.AccountID == accountID && rec.Status != quiz.StatusScored {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memQuiz) ListAnswers(_ context.Context, attemptID string) ([]store.AnswerRecord, error) {
	return m.answers[attemptID], nil
}

func (m *memQuiz) SaveScored(_ context.Context, sub store.ScoredSubmission) error {
	cp := *sub.Attempt
	m.attempts[cp.AttemptID] = &cp
	m.answers[cp.AttemptID] = sub.Answers
	for _, g := range sub.Gaps {
		m.gapRows[g.Topic] = g
	}
	return nil
}

func (m *memQuiz) List(_ context.Context, _ string) ([]store.GapRecord, error) {
	var out []store.GapRecord
	for _, g := range m.gapRows {
		out = append(out, g)
	}
	return out, nil
}

type fixture struct {
	engine   *Engine
	accounts *memAccounts
	clock    *time.Time
}

var epoch = time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)

func newFixture(t *testing.T, gen generator.Generator) *fixture {
	t.Helper()

	cfg := &config.Config{
		Access:   config.Access{TrialLengthDays: 30},
		Gaps:     config.Gaps{WrongIncrement: 15, CorrectDecrement: 5, MaxScore: 100},
		Quiz:     config.Quiz{Size: 10, GapShare: 0.6, GapTopics: 2, PassThreshold: 70},
		LLMModel: config.LLMModel{TimeoutSeconds: 5},
	}

	accounts := newMemAccounts()
	progRepo := newMemProgress()
	quizRepo := newMemQuiz()

	progSvc := progress.NewService(progRepo, accounts, nil)
	sel := quiz.NewSelector(quiz.SelectorConfig{
		Size:      cfg.Quiz.Size,
		GapShare:  cfg.Quiz.GapShare,
		GapTopics: cfg.Quiz.GapTopics,
	}, 1)
	quizSvc := quiz.NewService(quizRepo, quizRepo, sel, gaps.Config{
		WrongIncrement:   cfg.Gaps.WrongIncrement,
		CorrectDecrement: cfg.Gaps.CorrectDecrement,
		MaxScore:         cfg.Gaps.MaxScore,
	}, cfg.Quiz.PassThreshold, nil)

	eng := NewEngine(accounts, progSvc, quizSvc, gen, cfg, nil)

	clock := epoch
	eng.now = func() time.Time { return clock }

	return &fixture{engine: eng, accounts: accounts, clock: &clock}
}

func (f *fixture) advance(d time.Duration) {
	*f.clock = f.clock.Add(d)
}

func TestTrialGrantsFullAccess(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	if _, err := f.engine.CreateAccount(ctx, "acc-1", "owner@example.com", "Corner Bakery"); err != nil {
		t.Fatalf("create: %v", err)
	}

	lesson, err := f.engine.OpenLesson(ctx, "acc-1", "A03-1")
	if err != nil {
		t.Fatalf("open during trial: %v", err)
	}
	if lesson.Content.QuickCheckAnswer == "" {
		t.Error("lesson content missing")
	}
}

func TestExpiredTrialKeepsFreeSamples(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	if _, err := f.engine.CreateAccount(ctx, "acc-1", "owner@example.com", ""); err != nil {
		t.Fatalf("create: %v", err)
	}
	f.advance(31 * 24 * time.Hour)

	if _, err := f.engine.OpenLesson(ctx, "acc-1", "A01-1"); err != nil {
		t.Errorf("free sample denied after trial: %v", err)
	}

	_, err := f.engine.OpenLesson(ctx, "acc-1", "A03-1")
	var denied *PolicyDeniedError
	if !errors.As(err, &denied) {
		t.Fatalf("err = %v, want PolicyDeniedError", err)
	}
	if denied.ModuleCode != "A03" {
		t.Errorf("denied module = %s", denied.ModuleCode)
	}
}

func TestUpgradeReopensAccess(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	if _, err := f.engine.CreateAccount(ctx, "acc-1", "owner@example.com", ""); err != nil {
		t.Fatalf("create: %v", err)
	}
	f.advance(40 * 24 * time.Hour)

	if _, err := f.engine.OpenLesson(ctx, "acc-1", "A05-1"); err == nil {
		t.Fatal("expected denial before upgrade")
	}

	err := f.engine.ApplyBillingEvent(ctx, account.BillingEvent{
		AccountID:  "acc-1",
		ToTier:     account.TierPro,
		Reference:  "inv-100",
		OccurredAt: *f.clock,
	})
	if err != nil {
		t.Fatalf("billing: %v", err)
	}
	if len(f.accounts.billing) != 1 {
		t.Errorf("billing audit rows = %d, want 1", len(f.accounts.billing))
	}

	if _, err := f.engine.OpenLesson(ctx, "acc-1", "A05-1"); err != nil {
		t.Errorf("open after upgrade: %v", err)
	}
}

func TestBillingNoOpLeavesNoAudit(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	if _, err := f.engine.CreateAccount(ctx, "acc-1", "owner@example.com", ""); err != nil {
		t.Fatalf("create: %v", err)
	}
	err := f.engine.ApplyBillingEvent(ctx, account.BillingEvent{
		AccountID: "acc-1",
		ToTier:    account.TierFree,
	})
	if err != nil {
		t.Fatalf("billing: %v", err)
	}
	if len(f.accounts.billing) != 0 {
		t.Errorf("no-op event appended %d audit rows", len(f.accounts.billing))
	}
}

func TestCompleteLessonGradesQuickCheck(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	if _, err := f.engine.CreateAccount(ctx, "acc-1", "owner@example.com", ""); err != nil {
		t.Fatalf("create: %v", err)
	}

	// A01-1 expects "server"; whitespace and case are forgiven.
	res, err := f.engine.CompleteLesson(ctx, "acc-1", "A01-1", 540, "  Server ")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !res.Row.QuickCheckCorrect {
		t.Error("quick check graded wrong for a correct answer")
	}

	res, err = f.engine.CompleteLesson(ctx, "acc-1", "A01-1", 300, "client")
	if err != nil {
		t.Fatalf("repeat complete: %v", err)
	}
	if res.Row.QuickCheckCorrect {
		t.Error("quick check graded right for a wrong answer")
	}
	if !res.Row.Completed {
		t.Error("completion reverted")
	}
}

func TestQuizRoundTrip(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	if _, err := f.engine.CreateAccount(ctx, "acc-1", "owner@example.com", ""); err != nil {
		t.Fatalf("create: %v", err)
	}

	att, qs, err := f.engine.StartQuiz(ctx, "acc-1")
	if err != nil {
		t.Fatalf("start quiz: %v", err)
	}
	if att.ModuleCode != "A01" {
		t.Errorf("quiz module = %s, want level-1 module A01", att.ModuleCode)
	}

	answers := make(map[string]int, len(qs))
	for _, q := range qs {
		answers[q.ID] = q.Answer
	}
	res, err := f.engine.SubmitQuiz(ctx, "acc-1", att.ID, answers)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.Score != 100 || !res.Passed {
		t.Errorf("perfect quiz scored %d passed=%v", res.Score, res.Passed)
	}

	// Resubmission is idempotent at the facade: same result, no error.
	again, err := f.engine.SubmitQuiz(ctx, "acc-1", att.ID, nil)
	if err != nil {
		t.Fatalf("resubmit: %v", err)
	}
	if again.Score != res.Score || again.AttemptID != res.AttemptID {
		t.Errorf("resubmit result = %+v, want original", again)
	}
}

func TestProgressSummaryCarriesTrialState(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	if _, err := f.engine.CreateAccount(ctx, "acc-1", "owner@example.com", ""); err != nil {
		t.Fatalf("create: %v", err)
	}
	f.advance(10 * 24 * time.Hour)

	sum, err := f.engine.ProgressSummary(ctx, "acc-1")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if !sum.InTrial {
		t.Error("account should still be in trial")
	}
	if sum.TrialDaysRemaining != 20 {
		t.Errorf("TrialDaysRemaining = %d, want 20", sum.TrialDaysRemaining)
	}
	if len(sum.Modules) == 0 {
		t.Error("summary has no modules")
	}
}

func TestUnknownAccountIsNotFound(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.engine.OpenLesson(context.Background(), "ghost", "A01-1")
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
	if notFound.Kind != "account" {
		t.Errorf("kind = %s, want account", notFound.Kind)
	}
}

func TestDraftLessonUsesCollaborator(t *testing.T) {
	lessonJSON := json.RawMessage(`{
		"why_it_matters": "w", "what_it_is": "x", "real_world_example": "y",
		"how_to_protect": ["a"], "quick_check_question": "q",
		"quick_check_answer": "yes", "key_takeaway": "k"
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: lessonJSON})
	gen := generator.New(mock, generator.DefaultGeneratorConfig())

	f := newFixture(t, gen)
	ctx := context.Background()

	if _, err := f.engine.CreateAccount(ctx, "acc-1", "owner@example.com", ""); err != nil {
		t.Fatalf("create: %v", err)
	}
	content, err := f.engine.DraftLesson(ctx, "acc-1", "A02-1")
	if err != nil {
		t.Fatalf("draft: %v", err)
	}
	if content.KeyTakeaway != "k" {
		t.Errorf("draft content = %+v", content)
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider calls = %d, want 1", mock.CallCount())
	}
}

func TestDraftLessonWithoutCollaborator(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	if _, err := f.engine.CreateAccount(ctx, "acc-1", "owner@example.com", ""); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := f.engine.DraftLesson(ctx, "acc-1", "A01-1"); err == nil {
		t.Error("expected error with no collaborator configured")
	}
}

func TestDraftQuestionsUsesCollaborator(t *testing.T) {
	batch := json.RawMessage(`{"questions":[
		{"prompt":"P1","choices":["a","b","c","d"],"answer_index":1,"explanation":"E1"},
		{"prompt":"P2","choices":["a","b","c","d"],"answer_index":3,"explanation":"E2"}
	]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: batch})
	gen := generator.New(mock, generator.DefaultGeneratorConfig())

	f := newFixture(t, gen)
	ctx := context.Background()

	if _, err := f.engine.CreateAccount(ctx, "acc-1", "owner@example.com", ""); err != nil {
		t.Fatalf("create: %v", err)
	}
	questions, err := f.engine.DraftQuestions(ctx, "acc-1", "A03", 2)
	if err != nil {
		t.Fatalf("draft: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("questions = %d, want 2", len(questions))
	}
	for _, q := range questions {
		if q.Topic != "A03" {
			t.Errorf("topic = %s, want A03", q.Topic)
		}
	}

	// The request must name prompts already in the bank so the draft does
	// not repeat them.
	req, ok := mock.LastRequest()
	if !ok {
		t.Fatal("provider was never called")
	}
	bank := quiz.QuestionsForTopic("A03")
	if len(bank) == 0 {
		t.Fatal("bank has no A03 questions")
	}
	if !strings.Contains(req.Messages[0].Content, bank[0].Prompt) {
		t.Error("draft request does not carry existing bank prompts")
	}
}

func TestDraftQuestionsUnknownModule(t *testing.T) {
	mock := llm.NewMockProvider()
	f := newFixture(t, generator.New(mock, generator.DefaultGeneratorConfig()))
	ctx := context.Background()

	if _, err := f.engine.CreateAccount(ctx, "acc-1", "owner@example.com", ""); err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err := f.engine.DraftQuestions(ctx, "acc-1", "A99", 2)
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
	if mock.CallCount() != 0 {
		t.Error("provider called for an unknown module")
	}
}
