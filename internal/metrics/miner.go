package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	minerPulsesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "miner",
		Name:      "pulses_total",
		Help:      "Count of mining pulses that dispatched workers.",
	}, []string{"status"})

	minerPulseWorkers = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "miner",
		Name:      "pulse_workers",
		Help:      "Workers started per pulse.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	})

	minerPowTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "miner",
		Name:      "pow_total",
		Help:      "Count of proof-of-work attempts by outcome.",
	}, []string{"outcome"})

	minerPowDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "miner",
		Name:      "pow_duration_seconds",
		Help:      "Duration of proof-of-work attempts.",
		Buckets:   []float64{.001, .01, .1, .5, 1, 2.5, 5, 10, 30, 60},
	}, []string{"outcome"})

	minerActiveMiners = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "miner",
		Name:      "active_miners",
		Help:      "Addresses currently registered for mining.",
	})
)

// Miner tracks metrics for the mining scheduler.
type Miner struct{}

// NewMiner creates a Miner metrics collector.
func NewMiner() *Miner {
	return &Miner{}
}

// ObservePulse records a pulse and the number of workers it started.
func (m Miner) ObservePulse(err error, workers int) {
	minerPulsesTotal.WithLabelValues(statusOf(err)).Inc()
	if err == nil {
		minerPulseWorkers.Observe(float64(workers))
	}
}

// ObservePow records the outcome of a single worker.
func (m Miner) ObservePow(outcome string, started time.Time) {
	minerPowTotal.WithLabelValues(outcome).Inc()
	minerPowDuration.WithLabelValues(outcome).Observe(time.Since(started).Seconds())
}

// SetActiveMiners records the size of the active miner set.
func (m Miner) SetActiveMiners(n int) {
	minerActiveMiners.Set(float64(n))
}
