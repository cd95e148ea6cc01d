package iohclustering

import (
	"sync/atomic"
	"time"
)

// StatsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type StatsCollector interface {
	// RecordEvaluation is called after each evaluation.
	// duration is the total time taken, err is nil if successful.
	RecordEvaluation(duration time.Duration, err error)

	// RecordDegenerateClusters is called when an evaluation produces
	// clusters with no assigned points. count is the number of such
	// clusters in that evaluation.
	RecordDegenerateClusters(count int)
}

// NoopStatsCollector is a no-op implementation of StatsCollector.
// Use this when metrics collection is not needed.
type NoopStatsCollector struct{}

func (NoopStatsCollector) RecordEvaluation(time.Duration, error) {}
func (NoopStatsCollector) RecordDegenerateClusters(int)          {}

// BasicStatsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicStatsCollector struct {
	EvaluationCount      atomic.Int64
	EvaluationErrors     atomic.Int64
	EvaluationTotalNanos atomic.Int64
	DegenerateClusters   atomic.Int64
}

// RecordEvaluation implements StatsCollector.
func (b *BasicStatsCollector) RecordEvaluation(duration time.Duration, err error) {
	b.EvaluationCount.Add(1)
	b.EvaluationTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.EvaluationErrors.Add(1)
	}
}

// RecordDegenerateClusters implements StatsCollector.
func (b *BasicStatsCollector) RecordDegenerateClusters(count int) {
	b.DegenerateClusters.Add(int64(count))
}

// Stats is a point-in-time snapshot of a BasicStatsCollector.
type Stats struct {
	EvaluationCount    int64
	EvaluationErrors   int64
	EvaluationAvgNanos int64
	DegenerateClusters int64
}

// GetStats returns a snapshot of the collected metrics.
func (b *BasicStatsCollector) GetStats() Stats {
	s := Stats{
		EvaluationCount:    b.EvaluationCount.Load(),
		EvaluationErrors:   b.EvaluationErrors.Load(),
		DegenerateClusters: b.DegenerateClusters.Load(),
	}
	if s.EvaluationCount > 0 {
		s.EvaluationAvgNanos = b.EvaluationTotalNanos.Load() / s.EvaluationCount
	}
	return s
}
