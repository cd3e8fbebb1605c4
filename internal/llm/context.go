package llm

import "context"

// Purpose labels what a generation is for. The logging decorator reads it
// off the context, so every provider call is attributable without
// threading a label through the middleware chain.
type Purpose string

const (
	PurposeLesson    Purpose = "lesson"
	PurposeQuestions Purpose = "quiz-questions"
	PurposeUnknown   Purpose = "unknown"
)

type purposeKey struct{}

// WithPurpose labels the context with the generation's purpose.
func WithPurpose(ctx context.Context, p Purpose) context.Context {
	return context.WithValue(ctx, purposeKey{}, p)
}

// PurposeFrom returns the purpose label, or PurposeUnknown.
func PurposeFrom(ctx context.Context) Purpose {
	if p, ok := ctx.Value(purposeKey{}).(Purpose); ok {
		return p
	}
	return PurposeUnknown
}
