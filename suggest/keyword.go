package suggest

import (
	"context"
	"strings"
	"time"

	"taskmaster-api/domain"
)

// DefaultDelay is the artificial latency of the offline engine, standing in
// for a network round-trip.
const DefaultDelay = 600 * time.Millisecond

var categoryRules = []struct {
	category domain.Category
	keywords []string
}{
	{domain.CategoryDev, []string{"bug", "code", "fix", "develop"}},
	{domain.CategoryWork, []string{"meeting", "client", "project", "report", "deadline"}},
	{domain.CategoryHealth, []string{"doctor", "gym", "workout", "exercise"}},
	{domain.CategoryFinance, []string{"bill", "pay", "budget", "money"}},
}

var priorityRules = []struct {
	priority domain.Priority
	keywords []string
}{
	{domain.PriorityUrgent, []string{"urgent", "asap", "immediately", "critical"}},
	{domain.PriorityHigh, []string{"important", "high", "priority"}},
	{domain.PriorityLow, []string{"low", "whenever", "eventually"}},
}

var dueDateRules = []struct {
	days     int
	keywords []string
}{
	{0, []string{"today"}},
	{1, []string{"tomorrow"}},
	{7, []string{"week"}},
	{30, []string{"month"}},
}

// Keyword is the offline Suggester: a fixed delay followed by keyword
// matching on the title. It is the default implementation and the one used
// in tests of the suspension contract.
type Keyword struct {
	delay time.Duration
	now   func() time.Time
}

// NewKeyword returns a keyword engine with the given artificial delay.
func NewKeyword(delay time.Duration) *Keyword {
	return &Keyword{delay: delay, now: time.Now}
}

// Suggest matches keywords in the title after the configured delay. The
// delay respects ctx: a dismissed caller cancels and the result is
// discarded instead of delivered.
func (k *Keyword) Suggest(ctx context.Context, title string) (domain.Suggestion, error) {
	if len(strings.TrimSpace(title)) < MinTitleLen {
		return domain.Suggestion{}, ErrTitleTooShort
	}

	if k.delay > 0 {
		timer := time.NewTimer(k.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return domain.Suggestion{}, ctx.Err()
		case <-timer.C:
		}
	}

	lower := strings.ToLower(title)

	category := domain.CategoryPersonal
	for _, rule := range categoryRules {
		if containsAny(lower, rule.keywords) {
			category = rule.category
			break
		}
	}

	priority := domain.PriorityMedium
	for _, rule := range priorityRules {
		if containsAny(lower, rule.keywords) {
			priority = rule.priority
			break
		}
	}

	days := 3
	for _, rule := range dueDateRules {
		if containsAny(lower, rule.keywords) {
			days = rule.days
			break
		}
	}
	due := k.now().AddDate(0, 0, days)

	return domain.Suggestion{Category: &category, Priority: &priority, DueDate: &due}, nil
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
