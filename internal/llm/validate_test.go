package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var lessonSchema = &Schema{
	Name:        "test-lesson",
	Description: "a minimal lesson shape",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title":   map[string]any{"type": "string"},
			"minutes": map[string]any{"type": "integer"},
		},
		"required":             []any{"title", "minutes"},
		"additionalProperties": false,
	},
}

func TestValidateNilSchemaPasses(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Errorf("nil schema: %v", err)
	}
}

func TestValidateConformingContent(t *testing.T) {
	raw := json.RawMessage(`{"title":"TLS Everywhere","minutes":10}`)
	if err := validateResponse(lessonSchema, raw); err != nil {
		t.Errorf("conforming content rejected: %v", err)
	}
}

func TestValidateMissingRequiredField(t *testing.T) {
	raw := json.RawMessage(`{"title":"TLS Everywhere"}`)
	err := validateResponse(lessonSchema, raw)

	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
	if string(invalid.Content) != string(raw) {
		t.Error("offending content not carried in the error")
	}
}

func TestValidateMalformedJSON(t *testing.T) {
	err := validateResponse(lessonSchema, json.RawMessage(`{"title":`))
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestValidateUsesCompiledCache(t *testing.T) {
	raw := json.RawMessage(`{"title":"x","minutes":1}`)
	for range 3 {
		if err := validateResponse(lessonSchema, raw); err != nil {
			t.Fatalf("validate: %v", err)
		}
	}
	if _, ok := schemaCache.Load(lessonSchema.Name); !ok {
		t.Error("schema was not cached after validation")
	}
}
