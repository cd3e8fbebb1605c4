// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Account is the predicate function for account builders.
type Account func(*sql.Selector)

// BillingEvent is the predicate function for billingevent builders.
type BillingEvent func(*sql.Selector)

// GapScore is the predicate function for gapscore builders.
type GapScore func(*sql.Selector)

// ProgressRecord is the predicate function for progressrecord builders.
type ProgressRecord func(*sql.Selector)

// QuizAnswer is the predicate function for quizanswer builders.
type QuizAnswer func(*sql.Selector)

// QuizAttempt is the predicate function for quizattempt builders.
type QuizAttempt func(*sql.Selector)
