package api

import (
	"time"

	"taskmaster-api/domain"
	"taskmaster-api/views"
)

const maxBodySize = 64 * 1024 // 64 KiB

type credentialsRequest struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

type loginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

type createTaskRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	Priority    string    `json:"priority"`
	DueDate     time.Time `json:"dueDate"`
}

type suggestRequest struct {
	Title string `json:"title"`
}

type tasksResponse struct {
	Tasks []domain.Task `json:"tasks"`
}

type dashboardResponse struct {
	Total        int `json:"total"`
	TodayPending int `json:"todayPending"`
	Overdue      int `json:"overdue"`
	Upcoming     int `json:"upcoming"`
	Completed    int `json:"completed"`
	Pending      int `json:"pending"`
}

type todayResponse struct {
	Date       string                `json:"date"`
	Tasks      []domain.Task         `json:"tasks"`
	Completion views.CompletionStats `json:"completion"`
}

type bucketGroup struct {
	Bucket views.OverdueBucket `json:"bucket"`
	Tasks  []domain.Task       `json:"tasks"`
}

type overdueResponse struct {
	Total   int           `json:"total"`
	Buckets []bucketGroup `json:"buckets"`
}

type calendarDay struct {
	Day   string        `json:"day"`
	Tasks []domain.Task `json:"tasks"`
}

type calendarResponse struct {
	Month string        `json:"month"`
	Days  []calendarDay `json:"days"`
}

type analyticsResponse struct {
	Timeframe  views.Timeframe       `json:"timeframe"`
	Completion views.CompletionStats `json:"completion"`
	OnTime     views.OnTimeStats     `json:"onTime"`
	Overdue    int                   `json:"overdue"`
	ByCategory []views.GroupCount    `json:"byCategory"`
	ByPriority []views.GroupCount    `json:"byPriority"`
	Weekly     []views.DayActivity   `json:"weeklyActivity"`
}

type categoryResponse struct {
	Category   domain.Category       `json:"category"`
	Tasks      []domain.Task         `json:"tasks"`
	Completion views.CompletionStats `json:"completion"`
}
