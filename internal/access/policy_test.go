package access

import (
	"testing"
	"time"

	"github.com/HM-aes/smbshield/internal/account"
)

var epoch = time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

func freshAccount() *account.Account {
	return account.New("acc-1", "owner@smb.example", epoch)
}

func TestFreeSamplesAlwaysAccessible(t *testing.T) {
	acc := freshAccount()
	wayPastTrial := epoch.AddDate(0, 6, 0)

	for _, code := range []string{"A01", "A02"} {
		if !CanAccess(acc, code, wayPastTrial) {
			t.Errorf("CanAccess(%s) = false for expired free account, want true", code)
		}
	}
}

func TestPaidTiersAccessEverything(t *testing.T) {
	for _, tier := range []account.Tier{account.TierPro, account.TierEnterprise} {
		acc := freshAccount()
		acc.Tier = tier
		past := epoch.AddDate(1, 0, 0)
		for _, code := range []string{"A01", "A05", "A10"} {
			if !CanAccess(acc, code, past) {
				t.Errorf("tier %s: CanAccess(%s) = false, want true", tier, code)
			}
		}
	}
}

func TestTrialWindowGatesLaterModules(t *testing.T) {
	acc := freshAccount()

	inside := epoch.AddDate(0, 0, 29)
	if !CanAccess(acc, "A05", inside) {
		t.Error("CanAccess(A05) = false inside trial, want true")
	}

	expired := epoch.AddDate(0, 0, 31)
	if CanAccess(acc, "A05", expired) {
		t.Error("CanAccess(A05) = true past trial for free tier, want false")
	}
	if CanAccess(acc, "A03", expired) {
		t.Error("CanAccess(A03) = true past trial for free tier, want false")
	}
}

func TestUnknownModuleFailsClosed(t *testing.T) {
	acc := freshAccount()
	acc.Tier = account.TierEnterprise
	if CanAccess(acc, "A42", epoch) {
		t.Error("CanAccess(A42) = true for unknown module, want false")
	}
}

func TestTrialDaysRemaining(t *testing.T) {
	acc := freshAccount()

	if got := TrialDaysRemaining(acc, epoch); got != 30 {
		t.Errorf("day 0: TrialDaysRemaining = %d, want 30", got)
	}
	if got := TrialDaysRemaining(acc, epoch.AddDate(0, 0, 31)); got != 0 {
		t.Errorf("day 31: TrialDaysRemaining = %d, want 0", got)
	}
	if got := TrialDaysRemaining(acc, epoch.AddDate(0, 0, 12)); got != 18 {
		t.Errorf("day 12: TrialDaysRemaining = %d, want 18", got)
	}

	acc.Tier = account.TierPro
	if got := TrialDaysRemaining(acc, epoch); got != 0 {
		t.Errorf("pro tier: TrialDaysRemaining = %d, want 0", got)
	}
}
