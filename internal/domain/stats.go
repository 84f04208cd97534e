package domain

import "math"

// Stats summarises a task collection.
type Stats struct {
	Total          int
	Completed      int
	Pending        int
	CompletionRate int // percent, rounded to the nearest integer
}

// ComputeStats counts tasks by state. The completion rate of an empty
// collection is 0.
func ComputeStats(tasks []Task) Stats {
	stats := Stats{Total: len(tasks)}
	for _, task := range tasks {
		if task.Completed {
			stats.Completed++
		}
	}
	stats.Pending = stats.Total - stats.Completed
	if stats.Total > 0 {
		stats.CompletionRate = int(math.Round(float64(stats.Completed) / float64(stats.Total) * 100))
	}
	return stats
}

// Count returns how many tasks the filter matches.
func (s Stats) Count(f Filter) int {
	switch f {
	case FilterPending:
		return s.Pending
	case FilterCompleted:
		return s.Completed
	default:
		return s.Total
	}
}
