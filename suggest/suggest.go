// Package suggest defines the pluggable collaborator that proposes a
// category, priority and due date for a new task title.
package suggest

import (
	"context"
	"errors"

	"taskmaster-api/domain"
)

// MinTitleLen is the minimum title length eligible for a suggestion lookup.
const MinTitleLen = 3

// ErrTitleTooShort is returned when the title is too short to suggest from.
// Callers surface it as a transient notice, not a fatal error.
var ErrTitleTooShort = errors.New("suggest: title too short")

// Suggester produces a best-effort partial suggestion for a task title. It
// is never required to be accurate; a failure leaves the caller's state
// unchanged and may be retried.
type Suggester interface {
	Suggest(ctx context.Context, title string) (domain.Suggestion, error)
}
