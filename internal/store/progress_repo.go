package store

import (
	"context"
	"fmt"

	"github.com/HM-aes/smbshield/ent"
	entprogress "github.com/HM-aes/smbshield/ent/progressrecord"
)

type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) Get(ctx context.Context, accountID, lessonID string) (*ProgressRecordRow, error) {
	row, err := r.client.ProgressRecord.Query().
		Where(
			entprogress.AccountIDEQ(accountID),
			entprogress.LessonIDEQ(lessonID),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query progress %s/%s: %w", accountID, lessonID, err)
	}
	return progressFromRow(row), nil
}

func (r *progressRepo) Create(ctx context.Context, rec *ProgressRecordRow) error {
	create := r.client.ProgressRecord.Create().
		SetAccountID(rec.AccountID).
		SetLessonID(rec.LessonID).
		SetModuleCode(rec.ModuleCode).
		SetCompleted(rec.Completed).
		SetTimeSpentSeconds(rec.TimeSpentSeconds).
		SetQuickCheckCorrect(rec.QuickCheckCorrect).
		SetStartedAt(rec.StartedAt)
	if rec.CompletedAt != nil {
		create.SetCompletedAt(*rec.CompletedAt)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("create progress %s/%s: %w", rec.AccountID, rec.LessonID, err)
	}
	return nil
}

func (r *progressRepo) Save(ctx context.Context, rec *ProgressRecordRow) error {
	update := r.client.ProgressRecord.Update().
		Where(
			entprogress.AccountIDEQ(rec.AccountID),
			entprogress.LessonIDEQ(rec.LessonID),
		).
		SetCompleted(rec.Completed).
		SetTimeSpentSeconds(rec.TimeSpentSeconds).
		SetQuickCheckCorrect(rec.QuickCheckCorrect)
	if rec.CompletedAt != nil {
		update.SetCompletedAt(*rec.CompletedAt)
	}
	n, err := update.Save(ctx)
	if err != nil {
		return fmt.Errorf("save progress %s/%s: %w", rec.AccountID, rec.LessonID, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *progressRepo) ListByModule(ctx context.Context, accountID, moduleCode string) ([]ProgressRecordRow, error) {
	rows, err := r.client.ProgressRecord.Query().
		Where(
			entprogress.AccountIDEQ(accountID),
			entprogress.ModuleCodeEQ(moduleCode),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list progress %s/%s: %w", accountID, moduleCode, err)
	}
	return progressFromRows(rows), nil
}

func (r *progressRepo) ListByAccount(ctx context.Context, accountID string) ([]ProgressRecordRow, error) {
	rows, err := r.client.ProgressRecord.Query().
		Where(entprogress.AccountIDEQ(accountID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list progress %s: %w", accountID, err)
	}
	return progressFromRows(rows), nil
}

func progressFromRow(row *ent.ProgressRecord) *ProgressRecordRow {
	return &ProgressRecordRow{
		AccountID:         row.AccountID,
		LessonID:          row.LessonID,
		ModuleCode:        row.ModuleCode,
		Completed:         row.Completed,
		TimeSpentSeconds:  row.TimeSpentSeconds,
		QuickCheckCorrect: row.QuickCheckCorrect,
		StartedAt:         row.StartedAt,
		CompletedAt:       row.CompletedAt,
	}
}

func progressFromRows(rows []*ent.ProgressRecord) []ProgressRecordRow {
	out := make([]ProgressRecordRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, *progressFromRow(row))
	}
	return out
}
