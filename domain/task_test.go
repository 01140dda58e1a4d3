package domain

import (
	"testing"
	"time"
)

func validTask() Task {
	return Task{
		ID:        "t1",
		Title:     "Write report",
		Category:  CategoryWork,
		Priority:  PriorityHigh,
		DueDate:   time.Now().AddDate(0, 0, 1),
		CreatedAt: time.Now(),
	}
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("  Work ")
	if err != nil {
		t.Fatalf("parse category: %v", err)
	}
	if c != CategoryWork {
		t.Fatalf("unexpected category: %s", c)
	}

	if _, err := ParseCategory("chores"); err == nil {
		t.Fatal("expected error for unknown category")
	}
}

func TestParsePriority(t *testing.T) {
	p, err := ParsePriority("URGENT")
	if err != nil {
		t.Fatalf("parse priority: %v", err)
	}
	if p != PriorityUrgent {
		t.Fatalf("unexpected priority: %s", p)
	}

	if _, err := ParsePriority("whenever"); err == nil {
		t.Fatal("expected error for unknown priority")
	}
}

func TestTaskValidate(t *testing.T) {
	if err := validTask().Validate(); err != nil {
		t.Fatalf("valid task rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Task)
	}{
		{"missing id", func(task *Task) { task.ID = "" }},
		{"short title", func(task *Task) { task.Title = "a" }},
		{"whitespace title", func(task *Task) { task.Title = "  a  " }},
		{"bad category", func(task *Task) { task.Category = "chores" }},
		{"bad priority", func(task *Task) { task.Priority = "extreme" }},
		{"zero due date", func(task *Task) { task.DueDate = time.Time{} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := validTask()
			tt.mutate(&task)
			if err := task.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}
