package progress

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/HM-aes/smbshield/internal/account"
	"github.com/HM-aes/smbshield/internal/catalog"
	"github.com/HM-aes/smbshield/internal/store"
)

// fakeProgressRepo keeps rows in memory keyed by account/lesson.
type fakeProgressRepo struct {
	rows map[string]*store.ProgressRecordRow
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{rows: make(map[string]*store.ProgressRecordRow)}
}

func key(accountID, lessonID string) string {
	return accountID + "/" + lessonID
}

func (f *fakeProgressRepo) Get(_ context.Context, accountID, lessonID string) (*store.ProgressRecordRow, error) {
	row, ok := f.rows[key(accountID, lessonID)]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *row
	return &cp, nil
}

func (f *fakeProgressRepo) Create(_ context.Context, rec *store.ProgressRecordRow) error {
	k := key(rec.AccountID, rec.LessonID)
	if _, ok := f.rows[k]; ok {
		return fmt.Errorf("duplicate progress row %s", k)
	}
	cp := *rec
	f.rows[k] = &cp
	return nil
}

func (f *fakeProgressRepo) Save(_ context.Context, rec *store.ProgressRecordRow) error {
	k := key(rec.AccountID, rec.LessonID)
	if _, ok := f.rows[k]; !ok {
		return store.ErrNotFound
	}
	cp := *rec
	f.rows[k] = &cp
	return nil
}

func (f *fakeProgressRepo) ListByModule(_ context.Context, accountID, moduleCode string) ([]store.ProgressRecordRow, error) {
	var out []store.ProgressRecordRow
	for _, row := range f.rows {
		if row.AccountID == accountID && row.ModuleCode == moduleCode {
			out = append(out, *row)
		}
	}
	return out, nil
}

func (f *fakeProgressRepo) ListByAccount(_ context.Context, accountID string) ([]store.ProgressRecordRow, error) {
	var out []store.ProgressRecordRow
	for _, row := range f.rows {
		if row.AccountID == accountID {
			out = append(out, *row)
		}
	}
	return out, nil
}

// fakeAccountRepo records the last saved account state.
type fakeAccountRepo struct {
	saved *store.AccountRecord
}

func (f *fakeAccountRepo) Get(context.Context, string) (*store.AccountRecord, error) {
	return nil, store.ErrNotFound
}

func (f *fakeAccountRepo) Create(context.Context, *store.AccountRecord) error { return nil }

func (f *fakeAccountRepo) Save(_ context.Context, rec *store.AccountRecord) error {
	cp := *rec
	f.saved = &cp
	return nil
}

func (f *fakeAccountRepo) AppendBillingEvent(context.Context, store.BillingEventRecord) error {
	return nil
}

func newTestService() (*Service, *fakeProgressRepo, *fakeAccountRepo) {
	pr := newFakeProgressRepo()
	ar := &fakeAccountRepo{}
	return NewService(pr, ar, nil), pr, ar
}

var now = time.Date(2026, 6, 10, 9, 30, 0, 0, time.UTC)

func TestRecordAccessIsIdempotent(t *testing.T) {
	svc, pr, _ := newTestService()
	acc := account.New("acc-1", "owner@example.com", now)
	ctx := context.Background()

	first, err := svc.RecordAccess(ctx, acc, "A01-1", now)
	if err != nil {
		t.Fatalf("first access: %v", err)
	}
	second, err := svc.RecordAccess(ctx, acc, "A01-1", now.Add(2*time.Hour))
	if err != nil {
		t.Fatalf("second access: %v", err)
	}

	if !second.StartedAt.Equal(first.StartedAt) {
		t.Errorf("repeat access moved StartedAt: %v -> %v", first.StartedAt, second.StartedAt)
	}
	if len(pr.rows) != 1 {
		t.Errorf("row count = %d, want 1", len(pr.rows))
	}
}

func TestRecordAccessUnknownLesson(t *testing.T) {
	svc, _, _ := newTestService()
	acc := account.New("acc-1", "owner@example.com", now)

	if _, err := svc.RecordAccess(context.Background(), acc, "A01-99", now); err == nil {
		t.Fatal("expected error for unknown lesson")
	}
}

func TestRecordCompletionNeverReverts(t *testing.T) {
	svc, _, _ := newTestService()
	acc := account.New("acc-1", "owner@example.com", now)
	ctx := context.Background()

	res, err := svc.RecordCompletion(ctx, acc, "A03-1", 600, true, now)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !res.FirstTime || !res.Row.Completed {
		t.Fatalf("first completion: FirstTime=%v Completed=%v", res.FirstTime, res.Row.Completed)
	}
	firstCompletedAt := *res.Row.CompletedAt

	// Repeat completion overwrites timing and quick-check but keeps the
	// completed flag and the original completion time.
	res2, err := svc.RecordCompletion(ctx, acc, "A03-1", 120, false, now.Add(48*time.Hour))
	if err != nil {
		t.Fatalf("repeat complete: %v", err)
	}
	if res2.FirstTime {
		t.Error("repeat completion reported as first time")
	}
	if !res2.Row.Completed {
		t.Error("repeat completion reverted Completed")
	}
	if res2.Row.TimeSpentSeconds != 120 || res2.Row.QuickCheckCorrect {
		t.Errorf("repeat did not overwrite timing/quick-check: %+v", res2.Row)
	}
	if !res2.Row.CompletedAt.Equal(firstCompletedAt) {
		t.Errorf("CompletedAt moved on repeat: %v -> %v", firstCompletedAt, res2.Row.CompletedAt)
	}
	if acc.LessonsCompleted != 1 {
		t.Errorf("LessonsCompleted = %d, want 1", acc.LessonsCompleted)
	}
}

func TestCompletionAdvancesLevelWhenModuleDone(t *testing.T) {
	svc, _, ar := newTestService()
	acc := account.New("acc-1", "owner@example.com", now)
	ctx := context.Background()

	lessons := catalog.Lessons("A01")
	if len(lessons) < 2 {
		t.Fatalf("seed changed: A01 has %d lessons", len(lessons))
	}

	for i, l := range lessons {
		res, err := svc.RecordCompletion(ctx, acc, l.ID, 300, true, now.Add(time.Duration(i)*time.Minute))
		if err != nil {
			t.Fatalf("complete %s: %v", l.ID, err)
		}
		if i < len(lessons)-1 && res.LeveledUp {
			t.Errorf("leveled up after %s with module incomplete", l.ID)
		}
		if i == len(lessons)-1 {
			if !res.LeveledUp || res.NewLevel != 2 {
				t.Errorf("last lesson: LeveledUp=%v NewLevel=%d, want true/2", res.LeveledUp, res.NewLevel)
			}
		}
	}

	if acc.OWASPLevel != 2 {
		t.Errorf("OWASPLevel = %d, want 2", acc.OWASPLevel)
	}
	if ar.saved == nil || ar.saved.OWASPLevel != 2 {
		t.Errorf("saved account = %+v, want persisted level 2", ar.saved)
	}
}

func TestLevelNeverPassesLastModule(t *testing.T) {
	svc, _, _ := newTestService()
	acc := account.New("acc-1", "owner@example.com", now)
	acc.OWASPLevel = len(catalog.Modules())
	ctx := context.Background()

	for _, l := range catalog.Lessons("A10") {
		if _, err := svc.RecordCompletion(ctx, acc, l.ID, 300, true, now); err != nil {
			t.Fatalf("complete %s: %v", l.ID, err)
		}
	}
	if acc.OWASPLevel != len(catalog.Modules()) {
		t.Errorf("OWASPLevel = %d, want capped at %d", acc.OWASPLevel, len(catalog.Modules()))
	}
}

func TestAdvanceStreak(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 6, d, 23, 50, 0, 0, time.UTC)
	}

	tests := []struct {
		name        string
		last        *time.Time
		current     int
		longest     int
		at          time.Time
		wantCurrent int
		wantLongest int
	}{
		{"first activity", nil, 0, 0, day(1), 1, 1},
		{"same day is a no-op", ptr(day(3)), 4, 6, day(3).Add(-5 * time.Hour), 4, 6},
		{"consecutive day extends", ptr(day(3)), 4, 4, day(4), 5, 5},
		{"gap resets to one", ptr(day(3)), 9, 9, day(6), 1, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := account.New("acc-1", "owner@example.com", day(1))
			acc.LastActivityDate = tt.last
			acc.CurrentStreakDays = tt.current
			acc.LongestStreakDays = tt.longest

			AdvanceStreak(acc, tt.at)

			if acc.CurrentStreakDays != tt.wantCurrent {
				t.Errorf("CurrentStreakDays = %d, want %d", acc.CurrentStreakDays, tt.wantCurrent)
			}
			if acc.LongestStreakDays != tt.wantLongest {
				t.Errorf("LongestStreakDays = %d, want %d", acc.LongestStreakDays, tt.wantLongest)
			}
			if acc.LastActivityDate == nil || !acc.LastActivityDate.Equal(civilDate(tt.at)) {
				t.Errorf("LastActivityDate = %v, want %v", acc.LastActivityDate, civilDate(tt.at))
			}
		})
	}
}

func TestAdvanceStreakCrossesMidnightUTC(t *testing.T) {
	acc := account.New("acc-1", "owner@example.com", now)
	late := time.Date(2026, 6, 10, 23, 59, 0, 0, time.UTC)
	early := time.Date(2026, 6, 11, 0, 1, 0, 0, time.UTC)

	AdvanceStreak(acc, late)
	AdvanceStreak(acc, early)

	if acc.CurrentStreakDays != 2 {
		t.Errorf("CurrentStreakDays = %d, want 2 (activity on two civil dates)", acc.CurrentStreakDays)
	}
}

func TestSummarize(t *testing.T) {
	svc, _, _ := newTestService()
	acc := account.New("acc-1", "owner@example.com", now)
	ctx := context.Background()

	if _, err := svc.RecordCompletion(ctx, acc, "A01-1", 300, true, now); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if _, err := svc.RecordAccess(ctx, acc, "A02-1", now); err != nil {
		t.Fatalf("access: %v", err)
	}

	sum, err := svc.Summarize(ctx, acc)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if len(sum.Modules) != len(catalog.Modules()) {
		t.Fatalf("modules in summary = %d, want %d", len(sum.Modules), len(catalog.Modules()))
	}
	if sum.Modules[0].Code != "A01" || sum.Modules[0].CompletedCount != 1 {
		t.Errorf("A01 summary = %+v, want 1 completed", sum.Modules[0])
	}
	if sum.Modules[1].CompletedCount != 0 {
		t.Errorf("A02 summary = %+v, want 0 completed (opened only)", sum.Modules[1])
	}
	if sum.LessonsCompleted != 1 {
		t.Errorf("LessonsCompleted = %d, want 1", sum.LessonsCompleted)
	}
}

func ptr(t time.Time) *time.Time { return &t }
