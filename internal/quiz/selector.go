package quiz

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/HM-aes/smbshield/internal/gaps"
)

// SelectorConfig holds the question-mix constants.
type SelectorConfig struct {
	// Size is the number of questions per quiz.
	Size int
	// GapShare is the fraction of the quiz drawn from gap topics.
	GapShare float64
	// GapTopics is how many of the worst gap topics contribute questions.
	GapTopics int
}

// DefaultSelectorConfig returns the 60/40 gap-vs-module mix over ten
// questions, drawing from the two worst gaps.
func DefaultSelectorConfig() SelectorConfig {
	return SelectorConfig{
		Size:      10,
		GapShare:  0.6,
		GapTopics: 2,
	}
}

// Selector assembles the question list for one quiz.
type Selector struct {
	cfg SelectorConfig
	rng *rand.Rand
}

// NewSelector creates a selector. The seed fixes the shuffle order, which
// tests rely on.
func NewSelector(cfg SelectorConfig, seed int64) *Selector {
	if cfg.Size <= 0 {
		cfg = DefaultSelectorConfig()
	}
	return &Selector{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Select builds the question mix for a quiz on the given module. The gap
// share is split across the worst gap topics (score above zero); the rest
// comes from the module itself. Shortfalls redistribute: first to the
// module, then to the whole bank. No question appears twice.
func (s *Selector) Select(moduleCode string, gapTopics []gaps.TopicGap) ([]Question, error) {
	size := s.cfg.Size
	picked := make([]Question, 0, size)
	seen := make(map[string]bool, size)

	take := func(pool []Question, n int) {
		pool = s.shuffled(pool)
		for _, q := range pool {
			if n == 0 || len(picked) >= size {
				return
			}
			if seen[q.ID] {
				continue
			}
			seen[q.ID] = true
			picked = append(picked, q)
			n--
		}
	}

	// Gap slots, split near-evenly across the worst topics.
	gapQuota := int(math.Round(float64(size) * s.cfg.GapShare))
	topics := worstTopics(gapTopics, s.cfg.GapTopics)
	if len(topics) > 0 {
		base := gapQuota / len(topics)
		extra := gapQuota % len(topics)
		for i, topic := range topics {
			n := base
			if i < extra {
				n++
			}
			take(QuestionsForTopic(topic), n)
		}
	}

	// Module slots absorb whatever the gap pass left unfilled.
	take(QuestionsForTopic(moduleCode), size-len(picked))

	// Last resort: anything in the bank.
	if len(picked) < size {
		take(allQuestions(), size-len(picked))
	}

	if len(picked) == 0 {
		return nil, fmt.Errorf("question bank has no questions for module %s", moduleCode)
	}
	return picked, nil
}

// worstTopics returns up to n topic codes with a gap score above zero,
// keeping the caller's (descending) order.
func worstTopics(gapTopics []gaps.TopicGap, n int) []string {
	var out []string
	for _, tg := range gapTopics {
		if tg.Score <= 0 {
			continue
		}
		out = append(out, tg.Topic)
		if len(out) == n {
			break
		}
	}
	return out
}

func (s *Selector) shuffled(qs []Question) []Question {
	out := make([]Question, len(qs))
	copy(out, qs)
	s.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
