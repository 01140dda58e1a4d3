package views

import (
	"fmt"
	"time"

	"taskmaster-api/domain"
)

// Timeframe selects the analytics window.
type Timeframe string

const (
	TimeframeWeek  Timeframe = "week"
	TimeframeMonth Timeframe = "month"
	TimeframeAll   Timeframe = "all"
)

// ParseTimeframe converts a raw string to a Timeframe. Empty input defaults
// to the weekly view.
func ParseTimeframe(s string) (Timeframe, error) {
	switch Timeframe(s) {
	case "":
		return TimeframeWeek, nil
	case TimeframeWeek, TimeframeMonth, TimeframeAll:
		return Timeframe(s), nil
	}
	return "", fmt.Errorf("unknown timeframe %q", s)
}

// InTimeframe filters the set to the selected window relative to now:
// the current calendar week (Sunday through Saturday), the current calendar
// month, or everything.
func InTimeframe(tasks []domain.Task, now time.Time, tf Timeframe) []domain.Task {
	switch tf {
	case TimeframeWeek:
		start := WeekStart(now)
		end := start.AddDate(0, 0, 7).Add(-time.Nanosecond)
		return InWindow(tasks, start, end)
	case TimeframeMonth:
		out := []domain.Task{}
		for _, t := range tasks {
			if t.DueDate.IsZero() {
				continue
			}
			if t.DueDate.Year() == now.Year() && t.DueDate.Month() == now.Month() {
				out = append(out, t)
			}
		}
		return out
	default:
		out := make([]domain.Task, len(tasks))
		copy(out, tasks)
		return out
	}
}
