// Package generator produces security lesson content and quiz questions
// through the model provider. Output is schema-validated before it is
// trusted; failures surface as CollaboratorError so callers can keep
// state untouched.
package generator

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/HM-aes/smbshield/internal/catalog"
	"github.com/HM-aes/smbshield/internal/llm"
	"github.com/HM-aes/smbshield/internal/quiz"
)

// Generator produces lesson content and quiz questions.
type Generator interface {
	// GenerateLesson drafts the structured content for one lesson.
	GenerateLesson(ctx context.Context, input LessonInput) (*catalog.LessonContent, error)

	// GenerateQuestions drafts a batch of multiple-choice questions.
	GenerateQuestions(ctx context.Context, input QuestionsInput) ([]quiz.Question, error)
}

// LessonInput describes the lesson to draft.
type LessonInput struct {
	Module  catalog.Module
	Title   string
	Minutes int

	// Weaknesses names topics the learner has struggled with; the content
	// leans into them where relevant.
	Weaknesses []string
}

// QuestionsInput describes the question batch to draft.
type QuestionsInput struct {
	Module catalog.Module
	Count  int

	Weaknesses []string

	// PriorPrompts are question prompts already shown; the model must not
	// repeat them.
	PriorPrompts []string
}

// Config tunes generation.
type Config struct {
	MaxTokens       int
	Temperature     float64
	MaxPriorPrompts int
}

// DefaultGeneratorConfig returns the generation defaults.
func DefaultGeneratorConfig() Config {
	return Config{
		MaxTokens:       2048,
		Temperature:     0.3,
		MaxPriorPrompts: 30,
	}
}

// LLMGenerator implements Generator over an llm.Provider.
type LLMGenerator struct {
	provider llm.Provider
	cfg      Config
}

// New creates an LLMGenerator.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	if cfg.MaxTokens == 0 {
		cfg = DefaultGeneratorConfig()
	}
	return &LLMGenerator{provider: provider, cfg: cfg}
}

// lessonOutput is the raw model response before conversion.
type lessonOutput struct {
	WhyItMatters       string   `json:"why_it_matters"`
	WhatItIs           string   `json:"what_it_is"`
	RealWorldExample   string   `json:"real_world_example"`
	HowToProtect       []string `json:"how_to_protect"`
	QuickCheckQuestion string   `json:"quick_check_question"`
	QuickCheckAnswer   string   `json:"quick_check_answer"`
	KeyTakeaway        string   `json:"key_takeaway"`
}

func (g *LLMGenerator) GenerateLesson(ctx context.Context, input LessonInput) (*catalog.LessonContent, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeLesson)

	req := llm.Request{
		System: lessonSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildLessonMessage(input)},
		},
		Schema:      LessonSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, &CollaboratorError{Op: "generate lesson", Err: err}
	}

	var raw lessonOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, &CollaboratorError{Op: "parse lesson", Err: err}
	}

	return &catalog.LessonContent{
		WhyItMatters:       raw.WhyItMatters,
		WhatItIs:           raw.WhatItIs,
		RealWorldExample:   raw.RealWorldExample,
		HowToProtect:       raw.HowToProtect,
		QuickCheckQuestion: raw.QuickCheckQuestion,
		QuickCheckAnswer:   raw.QuickCheckAnswer,
		KeyTakeaway:        raw.KeyTakeaway,
	}, nil
}

// questionsOutput is the raw model response before conversion.
type questionsOutput struct {
	Questions []struct {
		Prompt      string   `json:"prompt"`
		Choices     []string `json:"choices"`
		AnswerIndex int      `json:"answer_index"`
		Explanation string   `json:"explanation"`
	} `json:"questions"`
}

func (g *LLMGenerator) GenerateQuestions(ctx context.Context, input QuestionsInput) ([]quiz.Question, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeQuestions)

	req := llm.Request{
		System: questionsSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildQuestionsMessage(input, g.cfg.MaxPriorPrompts)},
		},
		Schema:      QuestionBatchSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, &CollaboratorError{Op: "generate questions", Err: err}
	}

	var raw questionsOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, &CollaboratorError{Op: "parse questions", Err: err}
	}

	out := make([]quiz.Question, 0, len(raw.Questions))
	for _, q := range raw.Questions {
		if q.AnswerIndex < 0 || q.AnswerIndex >= len(q.Choices) {
			return nil, &CollaboratorError{
				Op:  "convert questions",
				Err: fmt.Errorf("answer index %d out of range for %d choices", q.AnswerIndex, len(q.Choices)),
			}
		}
		out = append(out, quiz.Question{
			ID:          "gen-" + uuid.NewString(),
			Topic:       input.Module.Code,
			Prompt:      q.Prompt,
			Choices:     q.Choices,
			Answer:      q.AnswerIndex,
			Explanation: q.Explanation,
		})
	}
	return out, nil
}
