package assignment

import (
	"cmp"
	"slices"
	"time"
)

// ReasonCount is one row of the failure tally.
type ReasonCount struct {
	Reason Reason
	Count  int
}

// Metrics summarizes an assignment log.
type Metrics struct {
	// Total is the number of outcomes, successes and failures.
	Total int
	// TotalAssigned is the number of successful outcomes.
	TotalAssigned int
	// SuccessRate is TotalAssigned/Total as a percentage, 0 for an empty log.
	SuccessRate float64
	// AverageLatency is the mean time from order creation to successful assignment.
	AverageLatency time.Duration
	// FailureReasons is sorted by count, most frequent first.
	FailureReasons []ReasonCount
}

// MetricsAccumulator folds outcomes into Metrics one at a time.
// The zero value is ready to use.
type MetricsAccumulator struct {
	total        int
	successes    int
	latencySum   time.Duration
	failureCount map[Reason]int
}

// Add folds one outcome in. Nil records are ignored.
func (m *MetricsAccumulator) Add(a *Assignment) {
	if a == nil {
		return
	}
	m.AddOutcome(a.status, a.reason, a.latency)
}

// AddOutcome folds in an outcome known only by its columns, as read models
// stream them from storage without rebuilding the record.
func (m *MetricsAccumulator) AddOutcome(status Status, reason Reason, latency time.Duration) {
	m.total++
	if status == Success {
		m.successes++
		m.latencySum += latency
		return
	}
	if m.failureCount == nil {
		m.failureCount = make(map[Reason]int)
	}
	m.failureCount[reason]++
}

// Metrics returns the summary of everything added so far.
func (m *MetricsAccumulator) Metrics() Metrics {
	out := Metrics{
		Total:          m.total,
		TotalAssigned:  m.successes,
		FailureReasons: make([]ReasonCount, 0, len(m.failureCount)),
	}
	if m.total > 0 {
		out.SuccessRate = float64(m.successes) / float64(m.total) * 100
	}
	if m.successes > 0 {
		out.AverageLatency = m.latencySum / time.Duration(m.successes)
	}
	for r, n := range m.failureCount {
		out.FailureReasons = append(out.FailureReasons, ReasonCount{Reason: r, Count: n})
	}
	slices.SortFunc(out.FailureReasons, func(a, b ReasonCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Reason, b.Reason)
	})
	return out
}

// Summarize computes Metrics for a whole log.
func Summarize(log []*Assignment) Metrics {
	var acc MetricsAccumulator
	for _, a := range log {
		acc.Add(a)
	}
	return acc.Metrics()
}
