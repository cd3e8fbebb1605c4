package account

import (
	"fmt"
	"time"
)

// Tier is an account's subscription tier. Transitions arrive as billing
// events; the engine reflects billing truth, it never originates it.
type Tier string

const (
	TierFree       Tier = "free"
	TierPro        Tier = "pro"
	TierEnterprise Tier = "enterprise"
)

// DefaultTrialLengthDays is the trial window granted at account creation.
const DefaultTrialLengthDays = 30

// Account holds one learner's subscription, trial, and progress state.
type Account struct {
	ID          string
	Email       string
	CompanyName string
	Tier        Tier

	// TrialStart is set exactly once, at creation, and never mutated.
	TrialStart      time.Time
	TrialLengthDays int

	// OWASPLevel is the 1-based index of the current module. Only increases.
	OWASPLevel int

	ScoreTotal       int
	LessonsCompleted int
	QuizzesPassed    int

	CurrentStreakDays int
	LongestStreakDays int
	LastActivityDate  *time.Time

	CreatedAt time.Time
}

// New creates an account in the free tier with its trial window opened at now.
func New(id, email string, now time.Time) *Account {
	return &Account{
		ID:              id,
		Email:           email,
		Tier:            TierFree,
		TrialStart:      now,
		TrialLengthDays: DefaultTrialLengthDays,
		OWASPLevel:      1,
		CreatedAt:       now,
	}
}

// IsPaid reports whether the account holds a paid tier.
func (a *Account) IsPaid() bool {
	return a.Tier == TierPro || a.Tier == TierEnterprise
}

// RaiseLevel advances OWASPLevel to the given value. Attempting to lower it
// is an invariant violation and leaves the account unchanged.
func (a *Account) RaiseLevel(to int) error {
	if to < a.OWASPLevel {
		return &InvariantError{
			Invariant: "owasp_level is non-decreasing",
			Detail:    fmt.Sprintf("account %s: level %d -> %d", a.ID, a.OWASPLevel, to),
		}
	}
	a.OWASPLevel = to
	return nil
}

// BillingEvent is a tier transition consumed from the billing source.
type BillingEvent struct {
	AccountID  string
	ToTier     Tier
	Reference  string
	OccurredAt time.Time
}

// ApplyBilling applies a consumed billing event to the account's tier.
// Returns the previous tier and whether the tier actually changed.
func (a *Account) ApplyBilling(ev BillingEvent) (from Tier, changed bool) {
	from = a.Tier
	if ev.ToTier == a.Tier {
		return from, false
	}
	a.Tier = ev.ToTier
	return from, true
}

// InvariantError signals a programming error that would corrupt account
// state. It is never silently corrected.
type InvariantError struct {
	Invariant string
	Detail    string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violated (%s): %s", e.Invariant, e.Detail)
}
