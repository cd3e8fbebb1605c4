// Package platform is the engine facade: it loads accounts, enforces the
// access policy in front of every gated operation, and serializes the
// operations of a single account.
package platform

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/HM-aes/smbshield/internal/access"
	"github.com/HM-aes/smbshield/internal/account"
	"github.com/HM-aes/smbshield/internal/catalog"
	"github.com/HM-aes/smbshield/internal/config"
	"github.com/HM-aes/smbshield/internal/generator"
	"github.com/HM-aes/smbshield/internal/progress"
	"github.com/HM-aes/smbshield/internal/quiz"
	"github.com/HM-aes/smbshield/internal/store"
)

// Engine exposes the platform operations. All state changes for one
// account happen under that account's lock.
type Engine struct {
	accounts store.AccountRepo
	progress *progress.Service
	quizzes  *quiz.Service
	gen      generator.Generator // nil disables content drafting
	cfg      *config.Config
	log      *zap.Logger
	now      func() time.Time

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewEngine wires the engine from its collaborators. gen may be nil when
// no model provider is configured.
func NewEngine(accounts store.AccountRepo, prog *progress.Service, quizzes *quiz.Service, gen generator.Generator, cfg *config.Config, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		accounts: accounts,
		progress: prog,
		quizzes:  quizzes,
		gen:      gen,
		cfg:      cfg,
		log:      log,
		now:      time.Now,
		locks:    make(map[string]*sync.Mutex),
	}
}

func (e *Engine) lockFor(accountID string) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	l, ok := e.locks[accountID]
	if !ok {
		l = &sync.Mutex{}
		e.locks[accountID] = l
	}
	return l
}

func (e *Engine) loadAccount(ctx context.Context, accountID string) (*account.Account, error) {
	rec, err := e.accounts.Get(ctx, accountID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, &NotFoundError{Kind: "account", ID: accountID}
	}
	if err != nil {
		return nil, err
	}
	return account.FromRecord(rec), nil
}

// CreateAccount opens a new account with its trial window starting now.
func (e *Engine) CreateAccount(ctx context.Context, accountID, email, companyName string) (*account.Account, error) {
	acc := account.New(accountID, email, e.now())
	acc.CompanyName = companyName
	acc.TrialLengthDays = e.cfg.Access.TrialLengthDays

	if err := e.accounts.Create(ctx, acc.Record()); err != nil {
		return nil, fmt.Errorf("create account %s: %w", accountID, err)
	}
	e.log.Info("account created",
		zap.String("account_id", accountID),
		zap.String("tier", string(acc.Tier)))
	return acc, nil
}

// GetAccount returns the account state.
func (e *Engine) GetAccount(ctx context.Context, accountID string) (*account.Account, error) {
	return e.loadAccount(ctx, accountID)
}

// CanAccess reports whether the account may view the module right now.
func (e *Engine) CanAccess(ctx context.Context, accountID, moduleCode string) (bool, error) {
	acc, err := e.loadAccount(ctx, accountID)
	if err != nil {
		return false, err
	}
	return access.CanAccess(acc, moduleCode, e.now()), nil
}

// OpenLesson checks the access policy and records the lesson view. The
// lesson's full content comes back only when access is granted.
func (e *Engine) OpenLesson(ctx context.Context, accountID, lessonID string) (catalog.Lesson, error) {
	lesson, err := catalog.LessonByID(lessonID)
	if err != nil {
		return catalog.Lesson{}, &NotFoundError{Kind: "lesson", ID: lessonID}
	}

	lock := e.lockFor(accountID)
	lock.Lock()
	defer lock.Unlock()

	acc, err := e.loadAccount(ctx, accountID)
	if err != nil {
		return catalog.Lesson{}, err
	}
	now := e.now()
	if !access.CanAccess(acc, lesson.ModuleCode, now) {
		return catalog.Lesson{}, &PolicyDeniedError{
			AccountID:  accountID,
			ModuleCode: lesson.ModuleCode,
			Reason:     denialReason(acc, now),
		}
	}

	if _, err := e.progress.RecordAccess(ctx, acc, lessonID, now); err != nil {
		return catalog.Lesson{}, err
	}
	return lesson, nil
}

// CompleteLesson marks a lesson finished. The quick-check answer is graded
// against the lesson's expected answer, case-insensitively.
func (e *Engine) CompleteLesson(ctx context.Context, accountID, lessonID string, timeSpentSeconds int, quickCheckAnswer string) (*progress.CompletionResult, error) {
	lesson, err := catalog.LessonByID(lessonID)
	if err != nil {
		return nil, &NotFoundError{Kind: "lesson", ID: lessonID}
	}

	lock := e.lockFor(accountID)
	lock.Lock()
	defer lock.Unlock()

	acc, err := e.loadAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	now := e.now()
	if !access.CanAccess(acc, lesson.ModuleCode, now) {
		return nil, &PolicyDeniedError{
			AccountID:  accountID,
			ModuleCode: lesson.ModuleCode,
			Reason:     denialReason(acc, now),
		}
	}

	correct := gradeQuickCheck(lesson.Content.QuickCheckAnswer, quickCheckAnswer)
	return e.progress.RecordCompletion(ctx, acc, lessonID, timeSpentSeconds, correct, now)
}

// StartQuiz returns the account's open quiz, or issues a new one for the
// module at the account's current level.
func (e *Engine) StartQuiz(ctx context.Context, accountID string) (*quiz.Attempt, []quiz.Question, error) {
	lock := e.lockFor(accountID)
	lock.Lock()
	defer lock.Unlock()

	acc, err := e.loadAccount(ctx, accountID)
	if err != nil {
		return nil, nil, err
	}

	mod, err := catalog.ModuleByOrder(acc.OWASPLevel)
	if err != nil {
		return nil, nil, &NotFoundError{Kind: "module at level", ID: fmt.Sprint(acc.OWASPLevel)}
	}
	now := e.now()
	if !access.CanAccess(acc, mod.Code, now) {
		return nil, nil, &PolicyDeniedError{
			AccountID:  accountID,
			ModuleCode: mod.Code,
			Reason:     denialReason(acc, now),
		}
	}

	return e.quizzes.GetOrBuild(ctx, acc, now)
}

// SubmitQuiz scores an attempt. Resubmitting a scored attempt returns the
// original result unchanged.
func (e *Engine) SubmitQuiz(ctx context.Context, accountID, attemptID string, answers map[string]int) (*quiz.Result, error) {
	lock := e.lockFor(accountID)
	lock.Lock()
	defer lock.Unlock()

	acc, err := e.loadAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	res, err := e.quizzes.Submit(ctx, acc, attemptID, answers, e.now())
	var already *quiz.AlreadyScoredError
	if errors.As(err, &already) {
		return already.Result, nil
	}
	if errors.Is(err, store.ErrNotFound) {
		return nil, &NotFoundError{Kind: "quiz attempt", ID: attemptID}
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Summary bundles the progress report with the account's access state.
type Summary struct {
	progress.Summary
	Tier               account.Tier
	InTrial            bool
	TrialDaysRemaining int
}

// ProgressSummary builds the account-wide report.
func (e *Engine) ProgressSummary(ctx context.Context, accountID string) (*Summary, error) {
	acc, err := e.loadAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	ps, err := e.progress.Summarize(ctx, acc)
	if err != nil {
		return nil, err
	}
	now := e.now()
	return &Summary{
		Summary:            *ps,
		Tier:               acc.Tier,
		InTrial:            access.InTrial(acc, now),
		TrialDaysRemaining: access.TrialDaysRemaining(acc, now),
	}, nil
}

// ApplyBillingEvent consumes a tier transition from the billing source and
// appends it to the account's audit trail.
func (e *Engine) ApplyBillingEvent(ctx context.Context, ev account.BillingEvent) error {
	lock := e.lockFor(ev.AccountID)
	lock.Lock()
	defer lock.Unlock()

	acc, err := e.loadAccount(ctx, ev.AccountID)
	if err != nil {
		return err
	}

	from, changed := acc.ApplyBilling(ev)
	if !changed {
		e.log.Debug("billing event is a no-op",
			zap.String("account_id", ev.AccountID),
			zap.String("tier", string(ev.ToTier)))
		return nil
	}

	if err := e.accounts.Save(ctx, acc.Record()); err != nil {
		return fmt.Errorf("save account %s after billing: %w", ev.AccountID, err)
	}
	if err := e.accounts.AppendBillingEvent(ctx, store.BillingEventRecord{
		AccountID:  ev.AccountID,
		FromTier:   string(from),
		ToTier:     string(ev.ToTier),
		Reference:  ev.Reference,
		OccurredAt: ev.OccurredAt,
	}); err != nil {
		return fmt.Errorf("append billing event %s: %w", ev.AccountID, err)
	}

	e.log.Info("tier changed",
		zap.String("account_id", ev.AccountID),
		zap.String("from", string(from)),
		zap.String("to", string(ev.ToTier)))
	return nil
}

// DraftLesson asks the content collaborator for a fresh lesson draft. The
// call is bounded by the configured timeout and writes no state; a failed
// draft leaves everything untouched.
func (e *Engine) DraftLesson(ctx context.Context, accountID, lessonID string) (*catalog.LessonContent, error) {
	if e.gen == nil {
		return nil, fmt.Errorf("no content collaborator configured")
	}
	lesson, err := catalog.LessonByID(lessonID)
	if err != nil {
		return nil, &NotFoundError{Kind: "lesson", ID: lessonID}
	}
	mod, err := catalog.ModuleByCode(lesson.ModuleCode)
	if err != nil {
		return nil, &NotFoundError{Kind: "module", ID: lesson.ModuleCode}
	}
	acc, err := e.loadAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, e.collaboratorTimeout())
	defer cancel()

	return e.gen.GenerateLesson(ctx, generator.LessonInput{
		Module:     mod,
		Title:      lesson.Title,
		Minutes:    lesson.EstimatedMinutes,
		Weaknesses: e.weaknesses(ctx, acc),
	})
}

// DraftQuestions asks the content collaborator for fresh quiz questions on
// a module. Prompts already in the bank are passed along so the draft does
// not repeat them. Like DraftLesson, this writes no state.
func (e *Engine) DraftQuestions(ctx context.Context, accountID, moduleCode string, count int) ([]quiz.Question, error) {
	if e.gen == nil {
		return nil, fmt.Errorf("no content collaborator configured")
	}
	mod, err := catalog.ModuleByCode(moduleCode)
	if err != nil {
		return nil, &NotFoundError{Kind: "module", ID: moduleCode}
	}
	acc, err := e.loadAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if count <= 0 {
		count = 5
	}

	existing := quiz.QuestionsForTopic(mod.Code)
	prior := make([]string, 0, len(existing))
	for _, q := range existing {
		prior = append(prior, q.Prompt)
	}

	ctx, cancel := context.WithTimeout(ctx, e.collaboratorTimeout())
	defer cancel()

	return e.gen.GenerateQuestions(ctx, generator.QuestionsInput{
		Module:       mod,
		Count:        count,
		Weaknesses:   e.weaknesses(ctx, acc),
		PriorPrompts: prior,
	})
}

func (e *Engine) collaboratorTimeout() time.Duration {
	secs := e.cfg.LLMModel.TimeoutSeconds
	if secs <= 0 {
		secs = 30
	}
	return time.Duration(secs) * time.Second
}

// weaknesses names the modules the account has significant gaps in, for
// prompt context. Failures degrade to an empty list.
func (e *Engine) weaknesses(ctx context.Context, acc *account.Account) []string {
	summary, err := e.progress.Summarize(ctx, acc)
	if err != nil {
		return nil
	}
	var out []string
	for _, m := range summary.Modules {
		if m.CompletedCount < m.LessonCount && m.Order < acc.OWASPLevel {
			out = append(out, m.Name)
		}
	}
	return out
}

func gradeQuickCheck(expected, given string) bool {
	return strings.EqualFold(strings.TrimSpace(expected), strings.TrimSpace(given))
}

func denialReason(acc *account.Account, now time.Time) string {
	if acc.IsPaid() {
		return "module not in catalog"
	}
	if access.InTrial(acc, now) {
		return "module not in catalog"
	}
	return "trial expired and tier is free"
}
