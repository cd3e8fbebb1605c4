package account

import (
	"errors"
	"testing"
	"time"
)

func TestNewOpensTrialOnce(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	a := New("acc-1", "owner@smb.example", now)

	if a.Tier != TierFree {
		t.Errorf("Tier = %s, want free", a.Tier)
	}
	if !a.TrialStart.Equal(now) {
		t.Errorf("TrialStart = %v, want %v", a.TrialStart, now)
	}
	if a.TrialLengthDays != DefaultTrialLengthDays {
		t.Errorf("TrialLengthDays = %d, want %d", a.TrialLengthDays, DefaultTrialLengthDays)
	}
	if a.OWASPLevel != 1 {
		t.Errorf("OWASPLevel = %d, want 1", a.OWASPLevel)
	}
}

func TestRaiseLevelMonotonic(t *testing.T) {
	a := New("acc-1", "owner@smb.example", time.Now())

	if err := a.RaiseLevel(2); err != nil {
		t.Fatalf("RaiseLevel(2) = %v, want nil", err)
	}
	if err := a.RaiseLevel(2); err != nil {
		t.Fatalf("RaiseLevel(2) again = %v, want nil (no-op)", err)
	}

	err := a.RaiseLevel(1)
	var inv *InvariantError
	if !errors.As(err, &inv) {
		t.Fatalf("RaiseLevel(1) = %v, want InvariantError", err)
	}
	if a.OWASPLevel != 2 {
		t.Errorf("OWASPLevel = %d after failed decrease, want 2", a.OWASPLevel)
	}
}

func TestApplyBilling(t *testing.T) {
	a := New("acc-1", "owner@smb.example", time.Now())

	from, changed := a.ApplyBilling(BillingEvent{AccountID: "acc-1", ToTier: TierPro})
	if !changed || from != TierFree || a.Tier != TierPro {
		t.Errorf("ApplyBilling(pro): from=%s changed=%v tier=%s", from, changed, a.Tier)
	}

	// Same-tier event is a no-op.
	if _, changed := a.ApplyBilling(BillingEvent{ToTier: TierPro}); changed {
		t.Error("ApplyBilling(pro) twice reported a change")
	}

	// Expiry transitions back to free; trial window is not reopened.
	trialStart := a.TrialStart
	a.ApplyBilling(BillingEvent{ToTier: TierFree})
	if a.Tier != TierFree {
		t.Errorf("Tier = %s after expiry, want free", a.Tier)
	}
	if !a.TrialStart.Equal(trialStart) {
		t.Error("TrialStart changed on billing event")
	}
}

func TestIsPaid(t *testing.T) {
	a := New("acc-1", "x@y.z", time.Now())
	if a.IsPaid() {
		t.Error("free account reports paid")
	}
	a.Tier = TierEnterprise
	if !a.IsPaid() {
		t.Error("enterprise account reports unpaid")
	}
}
