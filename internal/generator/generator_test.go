package generator

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HM-aes/smbshield/internal/catalog"
	"github.com/HM-aes/smbshield/internal/llm"
)

func testModule(t *testing.T) catalog.Module {
	t.Helper()
	mod, err := catalog.ModuleByCode("A03")
	require.NoError(t, err)
	return mod
}

var validLessonJSON = json.RawMessage(`{
	"why_it_matters": "One form field can expose the whole database.",
	"what_it_is": "User input concatenated into queries.",
	"real_world_example": "A search box listed every customer record.",
	"how_to_protect": ["Parameterize queries", "Validate input", "Least privilege"],
	"quick_check_question": "What separates data from code in a query?",
	"quick_check_answer": "parameters",
	"key_takeaway": "Data and code must never share a string."
}`)

func TestGenerateLesson(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validLessonJSON})
	gen := New(mock, DefaultGeneratorConfig())

	content, err := gen.GenerateLesson(context.Background(), LessonInput{
		Module:     testModule(t),
		Title:      "SQL Injection in Plain Language",
		Minutes:    12,
		Weaknesses: []string{"Injection"},
	})
	require.NoError(t, err)

	assert.Equal(t, "parameters", content.QuickCheckAnswer)
	assert.Len(t, content.HowToProtect, 3)

	require.Equal(t, 1, mock.CallCount())
	req := mock.Calls[0]
	assert.Equal(t, LessonSchema, req.Schema, "request did not carry the lesson schema")
	assert.Contains(t, req.Messages[0].Content, "Injection")
}

func TestGenerateLessonProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	gen := New(mock, DefaultGeneratorConfig())

	_, err := gen.GenerateLesson(context.Background(), LessonInput{Module: testModule(t)})

	var collab *CollaboratorError
	require.ErrorAs(t, err, &collab)
	var unavail *llm.ErrProviderUnavailable
	assert.ErrorAs(t, err, &unavail, "CollaboratorError does not wrap the provider error")
}

func TestGenerateQuestions(t *testing.T) {
	batch := json.RawMessage(`{"questions":[
		{"prompt":"P1","choices":["a","b","c","d"],"answer_index":2,"explanation":"E1"},
		{"prompt":"P2","choices":["a","b","c","d"],"answer_index":0,"explanation":"E2"}
	]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: batch})
	gen := New(mock, DefaultGeneratorConfig())

	qs, err := gen.GenerateQuestions(context.Background(), QuestionsInput{
		Module: testModule(t),
		Count:  2,
	})
	require.NoError(t, err)
	require.Len(t, qs, 2)

	for _, q := range qs {
		assert.Equal(t, "A03", q.Topic)
		assert.True(t, strings.HasPrefix(q.ID, "gen-"), "ID = %s, want gen- prefix", q.ID)
	}
	assert.Equal(t, 2, qs[0].Answer)
	assert.Equal(t, 0, qs[1].Answer)
}

func TestGenerateQuestionsRejectsBadAnswerIndex(t *testing.T) {
	batch := json.RawMessage(`{"questions":[
		{"prompt":"P1","choices":["a","b"],"answer_index":5,"explanation":"E"}
	]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: batch})
	gen := New(mock, DefaultGeneratorConfig())

	_, err := gen.GenerateQuestions(context.Background(), QuestionsInput{Module: testModule(t)})
	var collab *CollaboratorError
	require.ErrorAs(t, err, &collab)
}

func TestPriorPromptsTruncated(t *testing.T) {
	prompts := make([]string, 40)
	for i := range prompts {
		prompts[i] = strings.Repeat("x", 3)
	}
	prompts[39] = "keep-me"
	msg := buildQuestionsMessage(QuestionsInput{
		Module:       catalog.Module{Code: "A01", Name: "Broken Access Control"},
		Count:        5,
		PriorPrompts: prompts,
	}, 30)

	assert.Contains(t, msg, "keep-me", "newest prior prompt was dropped")
	assert.NotZero(t, strings.Count(msg, "\n1. "), "prior prompts not rendered as a list")
}
