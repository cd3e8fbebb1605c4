package platform

import "fmt"

// PolicyDeniedError reports a gated operation the account's tier and trial
// state do not allow.
type PolicyDeniedError struct {
	AccountID  string
	ModuleCode string
	Reason     string
}

func (e *PolicyDeniedError) Error() string {
	return fmt.Sprintf("access denied for account %s to module %s: %s", e.AccountID, e.ModuleCode, e.Reason)
}

// NotFoundError reports a missing entity by kind and identifier.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}
