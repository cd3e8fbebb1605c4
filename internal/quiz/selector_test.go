package quiz

import (
	"testing"
	"time"

	"github.com/HM-aes/smbshield/internal/gaps"
)

func countByTopic(qs []Question) map[string]int {
	out := make(map[string]int)
	for _, q := range qs {
		out[q.Topic]++
	}
	return out
}

func assertUnique(t *testing.T, qs []Question) {
	t.Helper()
	seen := make(map[string]bool, len(qs))
	for _, q := range qs {
		if seen[q.ID] {
			t.Errorf("question %s selected twice", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestSelectGapModuleMix(t *testing.T) {
	sel := NewSelector(DefaultSelectorConfig(), 1)
	tested := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	qs, err := sel.Select("A01", []gaps.TopicGap{
		{Topic: "A05", Score: 60, LastTested: tested},
		{Topic: "A07", Score: 30, LastTested: tested},
		{Topic: "A02", Score: 10, LastTested: tested},
	})
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(qs) != 10 {
		t.Fatalf("selected %d questions, want 10", len(qs))
	}
	assertUnique(t, qs)

	byTopic := countByTopic(qs)
	if byTopic["A05"] != 3 || byTopic["A07"] != 3 {
		t.Errorf("gap slots = A05:%d A07:%d, want 3 each", byTopic["A05"], byTopic["A07"])
	}
	if byTopic["A02"] != 0 {
		t.Errorf("third-worst gap contributed %d questions, want 0", byTopic["A02"])
	}
	if byTopic["A01"] != 4 {
		t.Errorf("module slots = %d, want 4", byTopic["A01"])
	}
}

func TestSelectNoGapsFallsBackToModuleThenBank(t *testing.T) {
	sel := NewSelector(DefaultSelectorConfig(), 1)

	qs, err := sel.Select("A01", nil)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(qs) != 10 {
		t.Fatalf("selected %d questions, want 10", len(qs))
	}
	assertUnique(t, qs)

	// The module pool (four questions) is exhausted first; the remainder
	// comes from the rest of the bank.
	if got := countByTopic(qs)["A01"]; got != 4 {
		t.Errorf("module questions = %d, want all 4", got)
	}
}

func TestSelectGapTopicEqualsModule(t *testing.T) {
	sel := NewSelector(DefaultSelectorConfig(), 1)
	tested := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	qs, err := sel.Select("A01", []gaps.TopicGap{
		{Topic: "A01", Score: 75, LastTested: tested},
	})
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	assertUnique(t, qs)
	if len(qs) != 10 {
		t.Fatalf("selected %d questions, want 10", len(qs))
	}
}

func TestSelectIgnoresZeroScoreGaps(t *testing.T) {
	topics := worstTopics([]gaps.TopicGap{
		{Topic: "A03", Score: 0},
		{Topic: "A06", Score: 20},
		{Topic: "A09", Score: 15},
		{Topic: "A10", Score: 5},
	}, 2)

	if len(topics) != 2 || topics[0] != "A06" || topics[1] != "A09" {
		t.Errorf("worstTopics = %v, want [A06 A09]", topics)
	}
}
