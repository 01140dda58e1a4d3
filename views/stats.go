package views

import (
	"math"
	"time"

	"taskmaster-api/domain"
)

// GroupCount is one slice of a category or priority breakdown. Percent is
// relative to the grouped set's total, rounded to the nearest integer.
type GroupCount struct {
	Key     string `json:"key"`
	Count   int    `json:"count"`
	Percent int    `json:"percent"`
}

func percent(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(count) / float64(total)))
}

// ByCategory partitions the set by category, in the fixed category order.
// Categories with no tasks are omitted.
func ByCategory(tasks []domain.Task) []GroupCount {
	counts := map[domain.Category]int{}
	for _, t := range tasks {
		counts[t.Category]++
	}
	out := []GroupCount{}
	for _, c := range domain.Categories {
		if n := counts[c]; n > 0 {
			out = append(out, GroupCount{Key: string(c), Count: n, Percent: percent(n, len(tasks))})
		}
	}
	return out
}

// ByPriority partitions the set by priority, least pressing first.
// Priorities with no tasks are omitted.
func ByPriority(tasks []domain.Task) []GroupCount {
	counts := map[domain.Priority]int{}
	for _, t := range tasks {
		counts[t.Priority]++
	}
	out := []GroupCount{}
	for _, p := range domain.Priorities {
		if n := counts[p]; n > 0 {
			out = append(out, GroupCount{Key: string(p), Count: n, Percent: percent(n, len(tasks))})
		}
	}
	return out
}

// CompletionStats summarizes how much of a task set is done.
type CompletionStats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
	Rate      int `json:"rate"`
}

// Completion computes the completion aggregate. Rate is round(100*c/t) and 0
// for an empty set.
func Completion(tasks []domain.Task) CompletionStats {
	stats := CompletionStats{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			stats.Completed++
		}
	}
	stats.Pending = stats.Total - stats.Completed
	stats.Rate = percent(stats.Completed, stats.Total)
	return stats
}

// OnTimeStats reports, among completed tasks, how many had a due date on or
// after their creation. No completion timestamp is recorded, so this is a
// proxy for finishing work that had not already slipped when it was filed,
// not a measure against the actual completion moment.
type OnTimeStats struct {
	Completed int `json:"completed"`
	OnTime    int `json:"onTime"`
	Rate      int `json:"rate"`
}

// OnTime computes the on-time proxy over the completed subset.
func OnTime(tasks []domain.Task) OnTimeStats {
	stats := OnTimeStats{}
	for _, t := range tasks {
		if !t.Completed {
			continue
		}
		stats.Completed++
		if !t.DueDate.Before(t.CreatedAt) {
			stats.OnTime++
		}
	}
	stats.Rate = percent(stats.OnTime, stats.Completed)
	return stats
}

// DayActivity is one day of the weekly series: the tasks due that day and
// the fraction of them completed (0 when none are due).
type DayActivity struct {
	Day               time.Time `json:"day"`
	Total             int       `json:"total"`
	Completed         int       `json:"completed"`
	CompletedFraction float64   `json:"completedFraction"`
}

// WeekStart returns the Sunday beginning the calendar week containing now.
func WeekStart(now time.Time) time.Time {
	return startOfDay(now).AddDate(0, 0, -int(now.Weekday()))
}

// WeeklyActivity produces the seven-day series for the current calendar
// week, Sunday first.
func WeeklyActivity(tasks []domain.Task, now time.Time) []DayActivity {
	start := WeekStart(now)
	series := make([]DayActivity, 0, 7)
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		due := OnDay(tasks, day)
		done := 0
		for _, t := range due {
			if t.Completed {
				done++
			}
		}
		activity := DayActivity{Day: day, Total: len(due), Completed: done}
		if len(due) > 0 {
			activity.CompletedFraction = float64(done) / float64(len(due))
		}
		series = append(series, activity)
	}
	return series
}
