package domain

import "time"

// Suggestion is a best-effort partial recommendation for a new task. Every
// field is optional; nil means the collaborator had no opinion.
type Suggestion struct {
	Category *Category  `json:"category,omitempty"`
	Priority *Priority  `json:"priority,omitempty"`
	DueDate  *time.Time `json:"dueDate,omitempty"`
}
