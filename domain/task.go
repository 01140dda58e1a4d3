package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Category classifies a task. The set is closed; values outside it are
// rejected at every store mutation entry point.
type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryDev      Category = "dev"
	CategoryHealth   Category = "health"
	CategoryFinance  Category = "finance"
)

// Categories lists all valid categories in display order.
var Categories = []Category{CategoryWork, CategoryPersonal, CategoryDev, CategoryHealth, CategoryFinance}

func (c Category) Valid() bool {
	switch c {
	case CategoryWork, CategoryPersonal, CategoryDev, CategoryHealth, CategoryFinance:
		return true
	}
	return false
}

// ParseCategory converts a raw string to a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

// Priority ranks how soon a task needs attention.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Priorities lists all valid priorities from least to most pressing.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// ParsePriority converts a raw string to a Priority.
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("unknown priority %q", s)
	}
	return p, nil
}

// MinTitleLen is the minimum length of a task title after trimming.
const MinTitleLen = 2

// Task is the single persisted unit of work.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    Category  `json:"category"`
	Priority    Priority  `json:"priority"`
	DueDate     time.Time `json:"dueDate"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate reports whether the task is a well-formed collection member.
func (t Task) Validate() error {
	if t.ID == "" {
		return errors.New("task id is required")
	}
	if len(strings.TrimSpace(t.Title)) < MinTitleLen {
		return fmt.Errorf("title must be at least %d characters", MinTitleLen)
	}
	if !t.Category.Valid() {
		return fmt.Errorf("unknown category %q", t.Category)
	}
	if !t.Priority.Valid() {
		return fmt.Errorf("unknown priority %q", t.Priority)
	}
	if t.DueDate.IsZero() {
		return errors.New("due date is required")
	}
	return nil
}
