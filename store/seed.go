package store

import (
	"time"

	"github.com/google/uuid"

	"taskmaster-api/domain"
)

// SeedTasks returns the sample collection used when no stored collection
// exists yet: three tasks spanning different categories, priorities and
// completion states.
func SeedTasks(now time.Time) []domain.Task {
	return []domain.Task{
		{
			ID:          uuid.NewString(),
			Title:       "Complete project proposal",
			Description: "Finish the proposal for the new client project",
			Category:    domain.CategoryWork,
			Priority:    domain.PriorityHigh,
			DueDate:     now.AddDate(0, 0, 2),
			Completed:   false,
			CreatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Title:       "Fix login bug",
			Description: "Debug and fix the authentication issue on the login page",
			Category:    domain.CategoryDev,
			Priority:    domain.PriorityUrgent,
			DueDate:     now,
			Completed:   false,
			CreatedAt:   now.AddDate(0, 0, -1),
		},
		{
			ID:          uuid.NewString(),
			Title:       "Schedule doctor appointment",
			Description: "Call the clinic to schedule annual checkup",
			Category:    domain.CategoryPersonal,
			Priority:    domain.PriorityMedium,
			DueDate:     now.AddDate(0, 0, 5),
			Completed:   true,
			CreatedAt:   now.AddDate(0, 0, -2),
		},
	}
}
