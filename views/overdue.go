package views

import (
	"time"

	"taskmaster-api/domain"
)

// OverdueBucket groups overdue tasks by how stale they are.
type OverdueBucket string

const (
	BucketOneDay    OverdueBucket = "1 day"
	BucketTwoThree  OverdueBucket = "2-3 days"
	BucketFourSeven OverdueBucket = "4-7 days"
	BucketOverWeek  OverdueBucket = "Over a week"
)

// OverdueBuckets lists the buckets in display order, freshest first.
var OverdueBuckets = []OverdueBucket{BucketOneDay, BucketTwoThree, BucketFourSeven, BucketOverWeek}

// BucketFor places an elapsed whole-day count into its staleness bucket.
func BucketFor(daysOverdue int) OverdueBucket {
	switch {
	case daysOverdue <= 1:
		return BucketOneDay
	case daysOverdue <= 3:
		return BucketTwoThree
	case daysOverdue <= 7:
		return BucketFourSeven
	default:
		return BucketOverWeek
	}
}

// OverdueByBucket partitions the overdue tasks of the set by staleness. The
// day count is floor((now - dueDate) / 1 day) over raw timestamps.
func OverdueByBucket(tasks []domain.Task, now time.Time) map[OverdueBucket][]domain.Task {
	grouped := map[OverdueBucket][]domain.Task{}
	for _, t := range Overdue(tasks, now) {
		days := int(now.Sub(t.DueDate).Hours() / 24)
		if days < 0 {
			days = 0
		}
		b := BucketFor(days)
		grouped[b] = append(grouped[b], t)
	}
	return grouped
}
