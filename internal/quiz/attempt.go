package quiz

import (
	"fmt"
	"time"
)

// Attempt statuses. An attempt moves strictly forward: building while
// questions are selected, issued once persisted, submitted when answers
// arrive, scored after the scoring transaction commits.
const (
	StatusBuilding  = "building"
	StatusIssued    = "issued"
	StatusSubmitted = "submitted"
	StatusScored    = "scored"
)

var nextStatus = map[string]string{
	StatusBuilding:  StatusIssued,
	StatusIssued:    StatusSubmitted,
	StatusSubmitted: StatusScored,
}

// Attempt is one issued quiz for one account.
type Attempt struct {
	ID          string
	AccountID   string
	ModuleCode  string
	Status      string
	QuestionIDs []string
	IssuedAt    time.Time
}

// advance moves the attempt to the given status, enforcing forward-only
// transitions.
func (a *Attempt) advance(to string) error {
	if nextStatus[a.Status] != to {
		return fmt.Errorf("attempt %s: invalid transition %s -> %s", a.ID, a.Status, to)
	}
	a.Status = to
	return nil
}
