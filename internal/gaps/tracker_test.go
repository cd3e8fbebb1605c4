package gaps

import (
	"testing"
	"time"

	"github.com/HM-aes/smbshield/internal/store"
)

var t0 = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func TestAsymmetricUpdate(t *testing.T) {
	tr := NewTracker(DefaultConfig(), nil)

	tr.RecordAnswer("A03", false, t0)
	if got := tr.Score("A03"); got != 15 {
		t.Errorf("after one wrong: Score = %d, want 15", got)
	}

	tr.RecordAnswer("A03", true, t0.Add(time.Minute))
	if got := tr.Score("A03"); got != 10 {
		t.Errorf("after wrong then right: Score = %d, want 10", got)
	}
}

func TestScoreFlooredAtZero(t *testing.T) {
	tr := NewTracker(DefaultConfig(), nil)
	tr.RecordAnswer("A05", true, t0)
	tr.RecordAnswer("A05", true, t0)
	if got := tr.Score("A05"); got != 0 {
		t.Errorf("Score = %d, want floor 0", got)
	}
}

func TestScoreCappedAtMax(t *testing.T) {
	tr := NewTracker(Config{WrongIncrement: 40, CorrectDecrement: 5, MaxScore: 100}, nil)
	for range 5 {
		tr.RecordAnswer("A07", false, t0)
	}
	if got := tr.Score("A07"); got != 100 {
		t.Errorf("Score = %d, want cap 100", got)
	}
}

func TestTopicsByGapDescWithStaleTieBreak(t *testing.T) {
	tr := NewTracker(DefaultConfig(), []store.GapRecord{
		{Topic: "A01", Score: 30, LastTested: t0.AddDate(0, 0, -1)},
		{Topic: "A04", Score: 45, LastTested: t0},
		{Topic: "A08", Score: 30, LastTested: t0.AddDate(0, 0, -7)},
	})

	got := tr.TopicsByGapDesc()
	wantOrder := []string{"A04", "A08", "A01"} // tie on 30 -> least recently tested first
	if len(got) != len(wantOrder) {
		t.Fatalf("len = %d, want %d", len(got), len(wantOrder))
	}
	for i, want := range wantOrder {
		if got[i].Topic != want {
			t.Errorf("position %d: topic = %s, want %s", i, got[i].Topic, want)
		}
	}
}

func TestResetOnMasteryKeepsTopic(t *testing.T) {
	tr := NewTracker(DefaultConfig(), nil)
	tr.RecordAnswer("A02", false, t0)
	tr.ResetOnMastery("A02", t0.Add(time.Hour))

	if got := tr.Score("A02"); got != 0 {
		t.Errorf("Score = %d after mastery reset, want 0", got)
	}
	recs := tr.Records("acc-1")
	if len(recs) != 1 || recs[0].Topic != "A02" {
		t.Errorf("Records = %+v, want the reset topic retained", recs)
	}
}

func TestSeverityBands(t *testing.T) {
	tr := NewTracker(Config{WrongIncrement: 25, CorrectDecrement: 5, MaxScore: 100}, nil)

	if got := tr.Severity("A09"); got != SeverityNone {
		t.Errorf("untested topic severity = %s, want none", got)
	}
	tr.RecordAnswer("A09", false, t0) // 25
	if got := tr.Severity("A09"); got != SeverityMinor {
		t.Errorf("score 25 severity = %s, want minor", got)
	}
	tr.RecordAnswer("A09", false, t0) // 50
	if got := tr.Severity("A09"); got != SeverityModerate {
		t.Errorf("score 50 severity = %s, want moderate", got)
	}
	tr.RecordAnswer("A09", false, t0) // 75
	if got := tr.Severity("A09"); got != SeveritySignificant {
		t.Errorf("score 75 severity = %s, want significant", got)
	}
}
