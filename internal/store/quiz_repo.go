package store

import (
	"context"
	"fmt"

	"github.com/HM-aes/smbshield/ent"
	entaccount "github.com/HM-aes/smbshield/ent/account"
	entgap "github.com/HM-aes/smbshield/ent/gapscore"
	entattempt "github.com/HM-aes/smbshield/ent/quizattempt"
	entanswer "github.com/HM-aes/smbshield/ent/quizanswer"
)

type gapRepo struct {
	client *ent.Client
}

func (r *gapRepo) List(ctx context.Context, accountID string) ([]GapRecord, error) {
	rows, err := r.client.GapScore.Query().
		Where(entgap.AccountIDEQ(accountID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list gap scores %s: %w", accountID, err)
	}
	out := make([]GapRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, GapRecord{
			AccountID:  row.AccountID,
			Topic:      row.Topic,
			Score:      row.Score,
			LastTested: row.LastTested,
		})
	}
	return out, nil
}

type quizRepo struct {
	client *ent.Client
}

func (r *quizRepo) Get(ctx context.Context, attemptID string) (*AttemptRecord, error) {
	row, err := r.client.QuizAttempt.Query().
		Where(entattempt.AttemptIDEQ(attemptID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query attempt %s: %w", attemptID, err)
	}
	return attemptFromRow(row), nil
}

func (r *quizRepo) Create(ctx context.Context, rec *AttemptRecord) error {
	_, err := r.client.QuizAttempt.Create().
		SetAttemptID(rec.AttemptID).
		SetAccountID(rec.AccountID).
		SetModuleCode(rec.ModuleCode).
		SetStatus(entattempt.Status(rec.Status)).
		SetQuestionIds(rec.QuestionIDs).
		SetIssuedAt(rec.IssuedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create attempt %s: %w", rec.AttemptID, err)
	}
	return nil
}

func (r *quizRepo) LatestOpen(ctx context.Context, accountID string) (*AttemptRecord, error) {
	row, err := r.client.QuizAttempt.Query().
		Where(
			entattempt.AccountIDEQ(accountID),
			entattempt.StatusNEQ(entattempt.StatusScored),
		).
		Order(ent.Desc(entattempt.FieldIssuedAt)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query open attempt for %s: %w", accountID, err)
	}
	return attemptFromRow(row), nil
}

func (r *quizRepo) ListAnswers(ctx context.Context, attemptID string) ([]AnswerRecord, error) {
	rows, err := r.client.QuizAnswer.Query().
		Where(entanswer.AttemptIDEQ(attemptID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list answers %s: %w", attemptID, err)
	}
	out := make([]AnswerRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, AnswerRecord{
			AttemptID:  row.AttemptID,
			QuestionID: row.QuestionID,
			Topic:      row.Topic,
			Submitted:  row.Submitted,
			Correct:    row.Correct,
		})
	}
	return out, nil
}

// SaveScored commits the attempt, its answers, the gap upserts, and the
// account counter changes in a single transaction. Partial scoring is
// never observable.
func (r *quizRepo) SaveScored(ctx context.Context, sub ScoredSubmission) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin scoring tx: %w", err)
	}

	if err := saveScoredTx(ctx, tx, sub); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rerr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit scoring tx: %w", err)
	}
	return nil
}

func saveScoredTx(ctx context.Context, tx *ent.Tx, sub ScoredSubmission) error {
	att := sub.Attempt
	update := tx.QuizAttempt.Update().
		Where(entattempt.AttemptIDEQ(att.AttemptID)).
		SetStatus(entattempt.Status(att.Status)).
		SetScore(att.Score).
		SetCorrectCount(att.CorrectCount).
		SetPassed(att.Passed)
	if att.ScoredAt != nil {
		update.SetScoredAt(*att.ScoredAt)
	}
	n, err := update.Save(ctx)
	if err != nil {
		return fmt.Errorf("finalize attempt %s: %w", att.AttemptID, err)
	}
	if n == 0 {
		return ErrNotFound
	}

	for _, ans := range sub.Answers {
		_, err := tx.QuizAnswer.Create().
			SetAttemptID(ans.AttemptID).
			SetQuestionID(ans.QuestionID).
			SetTopic(ans.Topic).
			SetSubmitted(ans.Submitted).
			SetCorrect(ans.Correct).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("save answer %s/%s: %w", ans.AttemptID, ans.QuestionID, err)
		}
	}

	for _, gap := range sub.Gaps {
		if err := upsertGapTx(ctx, tx, gap); err != nil {
			return err
		}
	}

	if sub.Account != nil {
		acc := sub.Account
		update := tx.Account.Update().
			Where(entaccount.AccountIDEQ(acc.AccountID)).
			SetScoreTotal(acc.ScoreTotal).
			SetQuizzesPassed(acc.QuizzesPassed).
			SetCurrentStreakDays(acc.CurrentStreakDays).
			SetLongestStreakDays(acc.LongestStreakDays)
		if acc.LastActivityDate != nil {
			update.SetLastActivityDate(*acc.LastActivityDate)
		}
		n, err := update.Save(ctx)
		if err != nil {
			return fmt.Errorf("save account counters %s: %w", acc.AccountID, err)
		}
		if n == 0 {
			return ErrNotFound
		}
	}

	return nil
}

func upsertGapTx(ctx context.Context, tx *ent.Tx, gap GapRecord) error {
	n, err := tx.GapScore.Update().
		Where(
			entgap.AccountIDEQ(gap.AccountID),
			entgap.TopicEQ(gap.Topic),
		).
		SetScore(gap.Score).
		SetLastTested(gap.LastTested).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update gap %s/%s: %w", gap.AccountID, gap.Topic, err)
	}
	if n > 0 {
		return nil
	}

	_, err = tx.GapScore.Create().
		SetAccountID(gap.AccountID).
		SetTopic(gap.Topic).
		SetScore(gap.Score).
		SetLastTested(gap.LastTested).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create gap %s/%s: %w", gap.AccountID, gap.Topic, err)
	}
	return nil
}

func attemptFromRow(row *ent.QuizAttempt) *AttemptRecord {
	return &AttemptRecord{
		AttemptID:    row.AttemptID,
		AccountID:    row.AccountID,
		ModuleCode:   row.ModuleCode,
		Status:       string(row.Status),
		QuestionIDs:  row.QuestionIds,
		Score:        row.Score,
		CorrectCount: row.CorrectCount,
		Passed:       row.Passed,
		IssuedAt:     row.IssuedAt,
		ScoredAt:     row.ScoredAt,
	}
}
