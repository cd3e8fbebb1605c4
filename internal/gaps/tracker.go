// Package gaps aggregates quiz results into per-topic gap scores: bounded
// numeric measures of demonstrated weakness that bias future quiz selection.
package gaps

import (
	"sort"
	"time"

	"github.com/HM-aes/smbshield/internal/store"
)

// Severity bands for reporting. Scores map to bands, nothing else reads them.
const (
	SeverityNone        = "none"
	SeverityMinor       = "minor"
	SeverityModerate    = "moderate"
	SeveritySignificant = "significant"
)

// Config holds the tunable update-rule constants.
type Config struct {
	// WrongIncrement is added to a topic's score on a wrong answer.
	WrongIncrement int
	// CorrectDecrement is subtracted on a correct answer. Smaller than
	// WrongIncrement: one lapse is remembered longer than one success.
	CorrectDecrement int
	// MaxScore caps every topic score; the floor is always zero.
	MaxScore int
}

// DefaultConfig returns the default update-rule constants.
func DefaultConfig() Config {
	return Config{
		WrongIncrement:   15,
		CorrectDecrement: 5,
		MaxScore:         100,
	}
}

// TopicGap is the tracked state of one topic.
type TopicGap struct {
	Topic      string
	Score      int
	LastTested time.Time
}

// Tracker maintains the gap scores of a single account.
type Tracker struct {
	cfg    Config
	topics map[string]*TopicGap
}

// NewTracker builds a tracker from persisted gap rows.
func NewTracker(cfg Config, records []store.GapRecord) *Tracker {
	t := &Tracker{
		cfg:    cfg,
		topics: make(map[string]*TopicGap, len(records)),
	}
	for _, rec := range records {
		t.topics[rec.Topic] = &TopicGap{
			Topic:      rec.Topic,
			Score:      clamp(rec.Score, 0, cfg.MaxScore),
			LastTested: rec.LastTested,
		}
	}
	return t
}

// RecordAnswer applies the asymmetric update rule for one answered question
// and stamps the topic as tested at now.
func (t *Tracker) RecordAnswer(topic string, correct bool, now time.Time) {
	tg := t.get(topic)
	if correct {
		tg.Score = clamp(tg.Score-t.cfg.CorrectDecrement, 0, t.cfg.MaxScore)
	} else {
		tg.Score = clamp(tg.Score+t.cfg.WrongIncrement, 0, t.cfg.MaxScore)
	}
	tg.LastTested = now
}

// ResetOnMastery clears a topic's score after explicit mastery. The row is
// kept; gap history is never deleted.
func (t *Tracker) ResetOnMastery(topic string, now time.Time) {
	tg := t.get(topic)
	tg.Score = 0
	tg.LastTested = now
}

// Score returns the current score for a topic (zero when never tested).
func (t *Tracker) Score(topic string) int {
	if tg, ok := t.topics[topic]; ok {
		return tg.Score
	}
	return 0
}

// TopicsByGapDesc returns all tracked topics ordered by descending score.
// Ties break least-recently-tested first so stale topics resurface even
// when their score is not currently the worst.
func (t *Tracker) TopicsByGapDesc() []TopicGap {
	out := make([]TopicGap, 0, len(t.topics))
	for _, tg := range t.topics {
		out = append(out, *tg)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		if !out[i].LastTested.Equal(out[j].LastTested) {
			return out[i].LastTested.Before(out[j].LastTested)
		}
		return out[i].Topic < out[j].Topic
	})
	return out
}

// Severity maps a score to a reporting band.
func (t *Tracker) Severity(topic string) string {
	score := t.Score(topic)
	switch {
	case score == 0:
		return SeverityNone
	case score <= 30:
		return SeverityMinor
	case score <= 60:
		return SeverityModerate
	default:
		return SeveritySignificant
	}
}

// Records exports the tracker state as persistable rows.
func (t *Tracker) Records(accountID string) []store.GapRecord {
	out := make([]store.GapRecord, 0, len(t.topics))
	for _, tg := range t.TopicsByGapDesc() {
		out = append(out, store.GapRecord{
			AccountID:  accountID,
			Topic:      tg.Topic,
			Score:      tg.Score,
			LastTested: tg.LastTested,
		})
	}
	return out
}

func (t *Tracker) get(topic string) *TopicGap {
	if tg, ok := t.topics[topic]; ok {
		return tg
	}
	tg := &TopicGap{Topic: topic}
	t.topics[topic] = tg
	return tg
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
