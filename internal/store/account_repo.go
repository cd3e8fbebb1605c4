package store

import (
	"context"
	"fmt"

	"github.com/HM-aes/smbshield/ent"
	entaccount "github.com/HM-aes/smbshield/ent/account"
	entbilling "github.com/HM-aes/smbshield/ent/billingevent"
)

type accountRepo struct {
	client *ent.Client
}

func (r *accountRepo) Get(ctx context.Context, accountID string) (*AccountRecord, error) {
	row, err := r.client.Account.Query().
		Where(entaccount.AccountIDEQ(accountID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query account %s: %w", accountID, err)
	}
	return accountFromRow(row), nil
}

func (r *accountRepo) Create(ctx context.Context, rec *AccountRecord) error {
	create := r.client.Account.Create().
		SetAccountID(rec.AccountID).
		SetEmail(rec.Email).
		SetCompanyName(rec.CompanyName).
		SetTier(entaccount.Tier(rec.Tier)).
		SetTrialStart(rec.TrialStart).
		SetTrialLengthDays(rec.TrialLengthDays).
		SetOwaspLevel(rec.OWASPLevel).
		SetScoreTotal(rec.ScoreTotal).
		SetLessonsCompleted(rec.LessonsCompleted).
		SetQuizzesPassed(rec.QuizzesPassed).
		SetCurrentStreakDays(rec.CurrentStreakDays).
		SetLongestStreakDays(rec.LongestStreakDays)
	if rec.LastActivityDate != nil {
		create.SetLastActivityDate(*rec.LastActivityDate)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("create account %s: %w", rec.AccountID, err)
	}
	return nil
}

func (r *accountRepo) Save(ctx context.Context, rec *AccountRecord) error {
	update := r.client.Account.Update().
		Where(entaccount.AccountIDEQ(rec.AccountID)).
		SetEmail(rec.Email).
		SetCompanyName(rec.CompanyName).
		SetTier(entaccount.Tier(rec.Tier)).
		SetTrialLengthDays(rec.TrialLengthDays).
		SetOwaspLevel(rec.OWASPLevel).
		SetScoreTotal(rec.ScoreTotal).
		SetLessonsCompleted(rec.LessonsCompleted).
		SetQuizzesPassed(rec.QuizzesPassed).
		SetCurrentStreakDays(rec.CurrentStreakDays).
		SetLongestStreakDays(rec.LongestStreakDays)
	if rec.LastActivityDate != nil {
		update.SetLastActivityDate(*rec.LastActivityDate)
	}
	n, err := update.Save(ctx)
	if err != nil {
		return fmt.Errorf("save account %s: %w", rec.AccountID, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *accountRepo) AppendBillingEvent(ctx context.Context, ev BillingEventRecord) error {
	_, err := r.client.BillingEvent.Create().
		SetAccountID(ev.AccountID).
		SetFromTier(entbilling.FromTier(ev.FromTier)).
		SetToTier(entbilling.ToTier(ev.ToTier)).
		SetReference(ev.Reference).
		SetOccurredAt(ev.OccurredAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append billing event for %s: %w", ev.AccountID, err)
	}
	return nil
}

func accountFromRow(row *ent.Account) *AccountRecord {
	return &AccountRecord{
		AccountID:         row.AccountID,
		Email:             row.Email,
		CompanyName:       row.CompanyName,
		Tier:              string(row.Tier),
		TrialStart:        row.TrialStart,
		TrialLengthDays:   row.TrialLengthDays,
		OWASPLevel:        row.OwaspLevel,
		ScoreTotal:        row.ScoreTotal,
		LessonsCompleted:  row.LessonsCompleted,
		QuizzesPassed:     row.QuizzesPassed,
		CurrentStreakDays: row.CurrentStreakDays,
		LongestStreakDays: row.LongestStreakDays,
		LastActivityDate:  row.LastActivityDate,
	}
}
