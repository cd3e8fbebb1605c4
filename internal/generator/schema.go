package generator

import "github.com/HM-aes/smbshield/internal/llm"

// LessonSchema is the JSON schema for generated lesson content.
var LessonSchema = &llm.Schema{
	Name:        "security-lesson",
	Description: "A structured security awareness lesson for a small-business audience",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"why_it_matters": map[string]any{
				"type":        "string",
				"description": "Why this risk matters to a small business, in plain language",
			},
			"what_it_is": map[string]any{
				"type":        "string",
				"description": "What the vulnerability class is, without jargon",
			},
			"real_world_example": map[string]any{
				"type":        "string",
				"description": "A short, concrete incident a small business could experience",
			},
			"how_to_protect": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Three to five actionable protective steps",
			},
			"quick_check_question": map[string]any{
				"type":        "string",
				"description": "One comprehension question answerable in a word or two",
			},
			"quick_check_answer": map[string]any{
				"type":        "string",
				"description": "The expected answer, lowercase, one or two words",
			},
			"key_takeaway": map[string]any{
				"type":        "string",
				"description": "The single sentence the learner should remember",
			},
		},
		"required": []any{
			"why_it_matters", "what_it_is", "real_world_example",
			"how_to_protect", "quick_check_question", "quick_check_answer",
			"key_takeaway",
		},
		"additionalProperties": false,
	},
}

// QuestionBatchSchema is the JSON schema for generated quiz questions.
var QuestionBatchSchema = &llm.Schema{
	Name:        "quiz-question-batch",
	Description: "A batch of multiple-choice security quiz questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"prompt": map[string]any{
							"type":        "string",
							"description": "The question shown to the learner",
						},
						"choices": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Exactly four options, exactly one correct",
						},
						"answer_index": map[string]any{
							"type":        "integer",
							"minimum":     0,
							"maximum":     3,
							"description": "Zero-based index of the correct choice",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Why the correct choice is right, one or two sentences",
						},
					},
					"required":             []any{"prompt", "choices", "answer_index", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
