package tasks

import (
	"fmt"
	"math"
)

// Stats holds completion counters for a task list
type Stats struct {
	Done    int
	Total   int
	Percent int
}

// ComputeStats counts done tasks over the whole list
func ComputeStats(items []Task) Stats {
	s := Stats{Total: len(items)}
	for _, t := range items {
		if t.Done {
			s.Done++
		}
	}
	if s.Total > 0 {
		s.Percent = int(math.Round(float64(s.Done) / float64(s.Total) * 100))
	}
	return s
}

// Label renders the counters as "done / total"
func (s Stats) Label() string {
	return fmt.Sprintf("%d / %d", s.Done, s.Total)
}
