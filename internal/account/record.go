package account

import "github.com/HM-aes/smbshield/internal/store"

// FromRecord rebuilds an Account from its persisted row.
func FromRecord(rec *store.AccountRecord) *Account {
	return &Account{
		ID:                rec.AccountID,
		Email:             rec.Email,
		CompanyName:       rec.CompanyName,
		Tier:              Tier(rec.Tier),
		TrialStart:        rec.TrialStart,
		TrialLengthDays:   rec.TrialLengthDays,
		OWASPLevel:        rec.OWASPLevel,
		ScoreTotal:        rec.ScoreTotal,
		LessonsCompleted:  rec.LessonsCompleted,
		QuizzesPassed:     rec.QuizzesPassed,
		CurrentStreakDays: rec.CurrentStreakDays,
		LongestStreakDays: rec.LongestStreakDays,
		LastActivityDate:  rec.LastActivityDate,
	}
}

// Record exports the account as a persistable row.
func (a *Account) Record() *store.AccountRecord {
	return &store.AccountRecord{
		AccountID:         a.ID,
		Email:             a.Email,
		CompanyName:       a.CompanyName,
		Tier:              string(a.Tier),
		TrialStart:        a.TrialStart,
		TrialLengthDays:   a.TrialLengthDays,
		OWASPLevel:        a.OWASPLevel,
		ScoreTotal:        a.ScoreTotal,
		LessonsCompleted:  a.LessonsCompleted,
		QuizzesPassed:     a.QuizzesPassed,
		CurrentStreakDays: a.CurrentStreakDays,
		LongestStreakDays: a.LongestStreakDays,
		LastActivityDate:  a.LastActivityDate,
	}
}
