package views

import (
	"testing"
	"time"

	"taskmaster-api/domain"
)

func task(id string, due time.Time, completed bool) domain.Task {
	return domain.Task{
		ID:        id,
		Title:     "Task " + id,
		Category:  domain.CategoryWork,
		Priority:  domain.PriorityMedium,
		DueDate:   due,
		Completed: completed,
		CreatedAt: due.AddDate(0, 0, -1),
	}
}

func ids(tasks []domain.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func TestInWindowInclusiveBounds(t *testing.T) {
	start := time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local)
	end := time.Date(2026, 3, 15, 23, 59, 59, 0, time.Local)
	tasks := []domain.Task{
		task("before", start.Add(-time.Second), false),
		task("onStart", start, false),
		task("middle", start.AddDate(0, 0, 3), false),
		task("onEnd", end, false),
		task("after", end.Add(time.Second), false),
	}

	got := ids(InWindow(tasks, start, end))
	want := []string{"onStart", "middle", "onEnd"}
	if len(got) != len(want) {
		t.Fatalf("unexpected tasks in window: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected tasks in window: %v", got)
		}
	}
}

func TestInWindowSkipsTasksWithoutDueDate(t *testing.T) {
	start := time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local)
	undated := task("undated", time.Time{}, false)

	if got := InWindow([]domain.Task{undated}, start.AddDate(-10, 0, 0), start.AddDate(10, 0, 0)); len(got) != 0 {
		t.Fatalf("expected undated task to be excluded, got %v", ids(got))
	}
}

func TestDueTodayUsesCalendarDateNotDistance(t *testing.T) {
	now := time.Date(2026, 3, 10, 0, 30, 0, 0, time.Local)
	lateYesterday := task("yesterday", time.Date(2026, 3, 9, 23, 59, 0, 0, time.Local), false)
	earlyToday := task("today", time.Date(2026, 3, 10, 0, 1, 0, 0, time.Local), false)

	got := ids(DueToday([]domain.Task{lateYesterday, earlyToday}, now))
	if len(got) != 1 || got[0] != "today" {
		t.Fatalf("unexpected today tasks: %v", got)
	}
}

func TestOverdueExcludesTodayAndCompleted(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	tasks := []domain.Task{
		task("dueToday", now.Add(-2*time.Hour), false),
		task("yesterday", now.AddDate(0, 0, -1), false),
		task("doneYesterday", now.AddDate(0, 0, -1), true),
		task("future", now.AddDate(0, 0, 1), false),
	}

	got := ids(Overdue(tasks, now))
	if len(got) != 1 || got[0] != "yesterday" {
		t.Fatalf("unexpected overdue tasks: %v", got)
	}
}

func TestUpcomingWithinSevenDays(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	tasks := []domain.Task{
		task("past", now.AddDate(0, 0, -1), false),
		task("inRange", now.AddDate(0, 0, 3), false),
		task("doneInRange", now.AddDate(0, 0, 3), true),
		task("tooFar", now.AddDate(0, 0, 8), false),
	}

	got := ids(Upcoming(tasks, now))
	if len(got) != 1 || got[0] != "inRange" {
		t.Fatalf("unexpected upcoming tasks: %v", got)
	}
}

func TestEmptyInputsYieldEmptyResults(t *testing.T) {
	now := time.Now()
	if got := DueToday(nil, now); len(got) != 0 {
		t.Fatalf("expected empty today view, got %v", ids(got))
	}
	if got := Overdue(nil, now); len(got) != 0 {
		t.Fatalf("expected empty overdue view, got %v", ids(got))
	}
	if got := ByCategory(nil); len(got) != 0 {
		t.Fatalf("expected empty category grouping, got %v", got)
	}
	if stats := Completion(nil); stats.Rate != 0 {
		t.Fatalf("expected zero completion rate, got %d", stats.Rate)
	}
}
