package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	coordinatorProcessTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "coordinator",
		Name:      "process_total",
		Help:      "Count of gossip messages processed by incoming status.",
	}, []string{"incoming", "status"})

	coordinatorProcessDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "coordinator",
		Name:      "process_duration_seconds",
		Help:      "Duration of processing a gossip message.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"incoming", "status"})

	coordinatorVotesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "coordinator",
		Name:      "votes_total",
		Help:      "Count of confirm and reject votes counted.",
	}, []string{"vote"})

	coordinatorTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "coordinator",
		Name:      "transitions_total",
		Help:      "Count of local transaction status transitions.",
	}, []string{"to"})
)

// Coordinator tracks metrics for the gossip state machine.
type Coordinator struct{}

// NewCoordinator creates a Coordinator metrics collector.
func NewCoordinator() *Coordinator {
	return &Coordinator{}
}

// ObserveProcess records one processed message.
func (m Coordinator) ObserveProcess(incoming string, err error, started time.Time) {
	status := statusOf(err)
	coordinatorProcessTotal.WithLabelValues(incoming, status).Inc()
	coordinatorProcessDuration.WithLabelValues(incoming, status).Observe(time.Since(started).Seconds())
}

// ObserveVote records a counted vote.
func (m Coordinator) ObserveVote(vote string) {
	coordinatorVotesTotal.WithLabelValues(vote).Inc()
}

// ObserveTransition records a local status change.
func (m Coordinator) ObserveTransition(to string) {
	coordinatorTransitionsTotal.WithLabelValues(to).Inc()
}
