package llm

import (
	"encoding/json"
	"fmt"
	"time"
)

// Error types carry their own retry classification: Temporary reports
// whether waiting and trying again can plausibly succeed. The retry
// decorator consults it instead of keeping a type list of its own.

// ErrRateLimit signals a 429 from the provider.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

func (e *ErrRateLimit) Temporary() bool { return true }

// ErrInvalidResponse signals content that failed schema validation or was
// not parseable JSON. Content carries the offending output. Retry handling
// is special-cased: one clean retry, then give up, since a model that
// misses the schema twice will keep missing it.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid model response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable signals the provider is unreachable or failing.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("model provider unavailable: %v", e.Err)
	}
	return "model provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

func (e *ErrProviderUnavailable) Temporary() bool { return true }

// ErrMaxTokensExceeded signals a response truncated at the MaxTokens limit.
// The request itself is misconfigured, so retrying reproduces it.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "model response truncated: max tokens exceeded"
}

func (e *ErrMaxTokensExceeded) Temporary() bool { return false }
