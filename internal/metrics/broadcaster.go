package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	broadcasterBlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "broadcaster",
		Name:      "blocks_total",
		Help:      "Count of finalized block broadcasts.",
	}, []string{"status"})

	broadcasterBlockDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "broadcaster",
		Name:      "block_duration_seconds",
		Help:      "Duration of block finalization.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	broadcasterFlushTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "broadcaster",
		Name:      "flush_total",
		Help:      "Count of gossip batch flushes.",
	}, []string{"status"})

	broadcasterFlushSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "broadcaster",
		Name:      "flush_size",
		Help:      "Transaction messages per gossip flush.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	})
)

// Broadcaster tracks metrics for block finalization and gossip fan-out.
type Broadcaster struct{}

// NewBroadcaster creates a Broadcaster metrics collector.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{}
}

// ObserveBlock records a block finalization.
func (m Broadcaster) ObserveBlock(err error, started time.Time) {
	status := statusOf(err)
	broadcasterBlocksTotal.WithLabelValues(status).Inc()
	broadcasterBlockDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}

// ObserveFlush records a gossip batch flush.
func (m Broadcaster) ObserveFlush(err error, size int) {
	broadcasterFlushTotal.WithLabelValues(statusOf(err)).Inc()
	if err == nil {
		broadcasterFlushSize.Observe(float64(size))
	}
}
