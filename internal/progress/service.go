// Package progress maintains the append-leaning lesson ledger: per-lesson
// completion rows, the activity streak, and level advancement derived from
// module completion.
package progress

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/HM-aes/smbshield/internal/account"
	"github.com/HM-aes/smbshield/internal/catalog"
	"github.com/HM-aes/smbshield/internal/store"
)

// Service owns reads and writes of the progress ledger for all accounts.
type Service struct {
	progress store.ProgressRepo
	accounts store.AccountRepo
	log      *zap.Logger
}

// NewService creates a progress service over the given repositories.
func NewService(progress store.ProgressRepo, accounts store.AccountRepo, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		progress: progress,
		accounts: accounts,
		log:      log,
	}
}

// RecordAccess marks a lesson as opened. The first open creates the ledger
// row with StartedAt=now; repeat opens return the existing row untouched.
// Opening a lesson counts as activity for the streak.
func (s *Service) RecordAccess(ctx context.Context, acc *account.Account, lessonID string, now time.Time) (*store.ProgressRecordRow, error) {
	lesson, err := catalog.LessonByID(lessonID)
	if err != nil {
		return nil, err
	}

	row, err := s.progress.Get(ctx, acc.ID, lessonID)
	switch {
	case err == nil:
		// Row exists; access is idempotent.
	case errors.Is(err, store.ErrNotFound):
		row = &store.ProgressRecordRow{
			AccountID:  acc.ID,
			LessonID:   lesson.ID,
			ModuleCode: lesson.ModuleCode,
			StartedAt:  now,
		}
		if err := s.progress.Create(ctx, row); err != nil {
			return nil, err
		}
		s.log.Debug("lesson opened",
			zap.String("account_id", acc.ID),
			zap.String("lesson_id", lesson.ID))
	default:
		return nil, err
	}

	AdvanceStreak(acc, now)
	if err := s.accounts.Save(ctx, acc.Record()); err != nil {
		return nil, fmt.Errorf("save account after access: %w", err)
	}
	return row, nil
}

// CompletionResult reports what a lesson completion changed.
type CompletionResult struct {
	Row       *store.ProgressRecordRow
	FirstTime bool
	LeveledUp bool
	NewLevel  int
}

// RecordCompletion marks a lesson complete. Completion never reverts: a
// repeat completion overwrites the time spent and quick-check result but
// keeps Completed true and the original CompletedAt. After a first-time
// completion the account's level advances if every lesson of the
// current-level module is now complete.
func (s *Service) RecordCompletion(ctx context.Context, acc *account.Account, lessonID string, timeSpentSeconds int, quickCheckCorrect bool, now time.Time) (*CompletionResult, error) {
	lesson, err := catalog.LessonByID(lessonID)
	if err != nil {
		return nil, err
	}

	row, err := s.progress.Get(ctx, acc.ID, lessonID)
	created := false
	switch {
	case err == nil:
	case errors.Is(err, store.ErrNotFound):
		row = &store.ProgressRecordRow{
			AccountID:  acc.ID,
			LessonID:   lesson.ID,
			ModuleCode: lesson.ModuleCode,
			StartedAt:  now,
		}
		created = true
	default:
		return nil, err
	}

	firstTime := !row.Completed
	row.Completed = true
	row.TimeSpentSeconds = timeSpentSeconds
	row.QuickCheckCorrect = quickCheckCorrect
	if row.CompletedAt == nil {
		at := now
		row.CompletedAt = &at
	}

	if created {
		err = s.progress.Create(ctx, row)
	} else {
		err = s.progress.Save(ctx, row)
	}
	if err != nil {
		return nil, err
	}

	res := &CompletionResult{Row: row, FirstTime: firstTime, NewLevel: acc.OWASPLevel}
	if firstTime {
		acc.LessonsCompleted++
	}
	AdvanceStreak(acc, now)

	if firstTime {
		leveled, err := s.maybeAdvanceLevel(ctx, acc)
		if err != nil {
			return nil, err
		}
		res.LeveledUp = leveled
		res.NewLevel = acc.OWASPLevel
	}

	if err := s.accounts.Save(ctx, acc.Record()); err != nil {
		return nil, fmt.Errorf("save account after completion: %w", err)
	}

	s.log.Info("lesson completed",
		zap.String("account_id", acc.ID),
		zap.String("lesson_id", lesson.ID),
		zap.Bool("first_time", firstTime),
		zap.Bool("leveled_up", res.LeveledUp))
	return res, nil
}

// maybeAdvanceLevel raises the account's level by one when every lesson of
// the module at the current level is complete. The level never passes the
// last module.
func (s *Service) maybeAdvanceLevel(ctx context.Context, acc *account.Account) (bool, error) {
	mod, err := catalog.ModuleByOrder(acc.OWASPLevel)
	if err != nil {
		// Level already past the catalog; nothing to advance.
		return false, nil
	}
	if _, err := catalog.ModuleByOrder(acc.OWASPLevel + 1); err != nil {
		return false, nil
	}

	done, err := s.moduleComplete(ctx, acc.ID, mod.Code)
	if err != nil || !done {
		return false, err
	}
	if err := acc.RaiseLevel(acc.OWASPLevel + 1); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) moduleComplete(ctx context.Context, accountID, moduleCode string) (bool, error) {
	rows, err := s.progress.ListByModule(ctx, accountID, moduleCode)
	if err != nil {
		return false, err
	}
	completed := make(map[string]bool, len(rows))
	for _, row := range rows {
		if row.Completed {
			completed[row.LessonID] = true
		}
	}
	for _, l := range catalog.Lessons(moduleCode) {
		if !completed[l.ID] {
			return false, nil
		}
	}
	return true, nil
}

// AdvanceStreak updates the account's activity streak for activity at now.
// Dates are compared as UTC civil dates: same-day activity is a no-op, the
// next consecutive day extends the streak, any longer gap resets it to one.
// LastActivityDate always moves to today.
func AdvanceStreak(acc *account.Account, now time.Time) {
	today := civilDate(now)

	switch {
	case acc.LastActivityDate == nil:
		acc.CurrentStreakDays = 1
	case civilDate(*acc.LastActivityDate).Equal(today):
		// Already counted today.
	case civilDate(*acc.LastActivityDate).AddDate(0, 0, 1).Equal(today):
		acc.CurrentStreakDays++
	default:
		acc.CurrentStreakDays = 1
	}

	if acc.CurrentStreakDays > acc.LongestStreakDays {
		acc.LongestStreakDays = acc.CurrentStreakDays
	}
	acc.LastActivityDate = &today
}

// civilDate truncates a timestamp to its UTC calendar date.
func civilDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ModuleProgress summarizes an account's position within one module.
type ModuleProgress struct {
	Code           string
	Name           string
	Order          int
	LessonCount    int
	CompletedCount int
}

// Summary is the account-wide progress report.
type Summary struct {
	OWASPLevel        int
	ScoreTotal        int
	LessonsCompleted  int
	QuizzesPassed     int
	CurrentStreakDays int
	LongestStreakDays int
	Modules           []ModuleProgress
}

// Summarize builds the progress report for an account: the account counters
// plus per-module completed-lesson counts in catalog order.
func (s *Service) Summarize(ctx context.Context, acc *account.Account) (*Summary, error) {
	rows, err := s.progress.ListByAccount(ctx, acc.ID)
	if err != nil {
		return nil, err
	}

	completedByModule := make(map[string]int)
	for _, row := range rows {
		if row.Completed {
			completedByModule[row.ModuleCode]++
		}
	}

	sum := &Summary{
		OWASPLevel:        acc.OWASPLevel,
		ScoreTotal:        acc.ScoreTotal,
		LessonsCompleted:  acc.LessonsCompleted,
		QuizzesPassed:     acc.QuizzesPassed,
		CurrentStreakDays: acc.CurrentStreakDays,
		LongestStreakDays: acc.LongestStreakDays,
	}
	for _, m := range catalog.Modules() {
		sum.Modules = append(sum.Modules, ModuleProgress{
			Code:           m.Code,
			Name:           m.Name,
			Order:          m.Order,
			LessonCount:    len(catalog.Lessons(m.Code)),
			CompletedCount: completedByModule[m.Code],
		})
	}
	return sum, nil
}
