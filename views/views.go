// Package views holds the pure derivations every page is built from:
// date-window filters, grouping and aggregate statistics over a task
// snapshot. Nothing here mutates its input or touches storage.
package views

import (
	"time"

	"taskmaster-api/domain"
)

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// InWindow returns tasks whose due date falls within [start, end] inclusive.
// Tasks without a due date are excluded.
func InWindow(tasks []domain.Task, start, end time.Time) []domain.Task {
	out := []domain.Task{}
	for _, t := range tasks {
		if t.DueDate.IsZero() {
			continue
		}
		if !t.DueDate.Before(start) && !t.DueDate.After(end) {
			out = append(out, t)
		}
	}
	return out
}

// OnDay returns tasks due on the given calendar day.
func OnDay(tasks []domain.Task, day time.Time) []domain.Task {
	out := []domain.Task{}
	for _, t := range tasks {
		if !t.DueDate.IsZero() && sameDay(t.DueDate, day) {
			out = append(out, t)
		}
	}
	return out
}

// DueToday returns tasks due on the current calendar day. The comparison is
// by calendar date in local time, not timestamp distance: a task due at
// 23:59 yesterday is out, one due at 00:01 today is in.
func DueToday(tasks []domain.Task, now time.Time) []domain.Task {
	return OnDay(tasks, now)
}

// Overdue returns incomplete tasks whose due date is strictly before today
// by calendar date.
func Overdue(tasks []domain.Task, now time.Time) []domain.Task {
	today := startOfDay(now)
	out := []domain.Task{}
	for _, t := range tasks {
		if t.DueDate.IsZero() || t.Completed {
			continue
		}
		if startOfDay(t.DueDate).Before(today) {
			out = append(out, t)
		}
	}
	return out
}

// Upcoming returns incomplete tasks due after now and within the next seven
// days.
func Upcoming(tasks []domain.Task, now time.Time) []domain.Task {
	horizon := now.AddDate(0, 0, 7)
	out := []domain.Task{}
	for _, t := range tasks {
		if t.DueDate.IsZero() || t.Completed {
			continue
		}
		if t.DueDate.After(now) && !t.DueDate.After(horizon) {
			out = append(out, t)
		}
	}
	return out
}

// Pending returns the incomplete tasks of the set.
func Pending(tasks []domain.Task) []domain.Task {
	out := []domain.Task{}
	for _, t := range tasks {
		if !t.Completed {
			out = append(out, t)
		}
	}
	return out
}

// Completed returns the completed tasks of the set.
func Completed(tasks []domain.Task) []domain.Task {
	out := []domain.Task{}
	for _, t := range tasks {
		if t.Completed {
			out = append(out, t)
		}
	}
	return out
}
