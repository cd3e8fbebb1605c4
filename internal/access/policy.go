// Package access holds the pure decision function that gates content by
// subscription tier and trial state. It never mutates anything and never
// fails: unknown module codes are denied.
package access

import (
	"time"

	"github.com/HM-aes/smbshield/internal/account"
	"github.com/HM-aes/smbshield/internal/catalog"
)

// CanAccess reports whether the account may view the given module right now.
// Rules, first match wins:
//  1. paid tier (pro/enterprise) -> allow
//  2. permanent free sample (first two modules by order) -> allow
//  3. inside the trial window -> allow
//  4. deny
func CanAccess(acc *account.Account, moduleCode string, now time.Time) bool {
	if !catalog.Exists(moduleCode) {
		return false
	}
	if acc.IsPaid() {
		return true
	}
	if catalog.IsFreeSample(moduleCode) {
		return true
	}
	return InTrial(acc, now)
}

// InTrial reports whether now falls inside the account's trial window.
func InTrial(acc *account.Account, now time.Time) bool {
	end := acc.TrialStart.AddDate(0, 0, acc.TrialLengthDays)
	return now.Before(end)
}

// TrialDaysRemaining returns whole days left in the trial, never negative.
// Paid accounts have no trial to count down.
func TrialDaysRemaining(acc *account.Account, now time.Time) int {
	if acc.IsPaid() {
		return 0
	}
	end := acc.TrialStart.AddDate(0, 0, acc.TrialLengthDays)
	if !now.Before(end) {
		return 0
	}
	return int(end.Sub(now).Hours() / 24)
}
