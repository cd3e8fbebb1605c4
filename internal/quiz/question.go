// Package quiz selects, issues, and scores adaptive module quizzes. Question
// selection is biased toward the account's worst knowledge gaps; scoring
// feeds back into the gap tracker in the same transaction.
package quiz

import "fmt"

// Question is one multiple-choice item in the bank. Topic is the module
// code the question belongs to.
type Question struct {
	ID          string
	Topic       string
	Prompt      string
	Choices     []string
	Answer      int // index into Choices
	Explanation string
}

// bank holds the seeded questions with per-topic and per-ID indices.
type bank struct {
	questions []Question
	byTopic   map[string][]Question
	byID      map[string]*Question
}

var qb *bank

func buildBank(questions []Question) *bank {
	b := &bank{
		questions: questions,
		byTopic:   make(map[string][]Question),
		byID:      make(map[string]*Question, len(questions)),
	}
	for i := range b.questions {
		q := &b.questions[i]
		b.byTopic[q.Topic] = append(b.byTopic[q.Topic], *q)
		b.byID[q.ID] = q
	}
	return b
}

// QuestionByID returns a bank question, or an error if absent.
func QuestionByID(id string) (Question, error) {
	q, ok := qb.byID[id]
	if !ok {
		return Question{}, fmt.Errorf("question not found: %q", id)
	}
	return *q, nil
}

// QuestionsForTopic returns all bank questions for a topic.
func QuestionsForTopic(topic string) []Question {
	out := make([]Question, len(qb.byTopic[topic]))
	copy(out, qb.byTopic[topic])
	return out
}

// BankSize returns the total number of seeded questions.
func BankSize() int {
	return len(qb.questions)
}

func allQuestions() []Question {
	out := make([]Question, len(qb.questions))
	copy(out, qb.questions)
	return out
}
