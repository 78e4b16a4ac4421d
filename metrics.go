package vecshard

import (
	"sync/atomic"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordSplit is called after each split; length is the size of the
	// shard that was split.
	RecordSplit(length int)

	// RecordMerge is called after each completed merge; tier tells which
	// strategy succeeded, length is the size of the merged shard.
	RecordMerge(tier MergeTier, length int)

	// RecordClone is called after each deep copy.
	RecordClone(length int)

	// RecordConvert is called after each shard-to-slice conversion;
	// reused reports whether the backing allocation could be handed over
	// without copying out.
	RecordConvert(length int, reused bool)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSplit(int)            {}
func (NoopMetricsCollector) RecordMerge(MergeTier, int) {}
func (NoopMetricsCollector) RecordClone(int)            {}
func (NoopMetricsCollector) RecordConvert(int, bool)    {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SplitCount        atomic.Int64
	MergeInplaceCount atomic.Int64
	MergeNoAllocCount atomic.Int64
	MergeAllocCount   atomic.Int64
	MergedElements    atomic.Int64
	CloneCount        atomic.Int64
	ConvertCount      atomic.Int64
	ConvertReused     atomic.Int64
}

// RecordSplit implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSplit(length int) {
	b.SplitCount.Add(1)
}

// RecordMerge implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMerge(tier MergeTier, length int) {
	switch tier {
	case TierInplace:
		b.MergeInplaceCount.Add(1)
	case TierNoAlloc:
		b.MergeNoAllocCount.Add(1)
	case TierAlloc:
		b.MergeAllocCount.Add(1)
	}
	b.MergedElements.Add(int64(length))
}

// RecordClone implements MetricsCollector.
func (b *BasicMetricsCollector) RecordClone(length int) {
	b.CloneCount.Add(1)
}

// RecordConvert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordConvert(length int, reused bool) {
	b.ConvertCount.Add(1)
	if reused {
		b.ConvertReused.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SplitCount:        b.SplitCount.Load(),
		MergeInplaceCount: b.MergeInplaceCount.Load(),
		MergeNoAllocCount: b.MergeNoAllocCount.Load(),
		MergeAllocCount:   b.MergeAllocCount.Load(),
		MergedElements:    b.MergedElements.Load(),
		CloneCount:        b.CloneCount.Load(),
		ConvertCount:      b.ConvertCount.Load(),
		ConvertReused:     b.ConvertReused.Load(),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SplitCount        int64
	MergeInplaceCount int64
	MergeNoAllocCount int64
	MergeAllocCount   int64
	MergedElements    int64
	CloneCount        int64
	ConvertCount      int64
	ConvertReused     int64
}
