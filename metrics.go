package staticfsm

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Step outcome label values.
const (
	outcomeRemained     = "remained"
	outcomeTransitioned = "transitioned"
)

var (
	stepsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "staticfsm_steps_total",
		Help: "Total number of machine steps by machine, state after the step, and outcome",
	}, []string{"machine", "state", "outcome"})

	transitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "staticfsm_transitions_total",
		Help: "Total number of fired transitions by machine, from_state, and to_state",
	}, []string{"machine", "from_state", "to_state"})

	stateEntriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "staticfsm_state_entries_total",
		Help: "Total number of state entry hooks run by machine and state",
	}, []string{"machine", "state"})

	stepDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Name:    "staticfsm_step_duration_seconds",
		Help:    "Duration of a single machine step",
		Buckets: []float64{0.000001, 0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
	}, []string{"machine"})
)

// MetricsObserver records machine activity as Prometheus metrics on the
// default registry.
type MetricsObserver struct{}

// NewMetricsObserver creates a metrics observer. All instances share the
// same metric vectors; machines are distinguished by label.
func NewMetricsObserver() *MetricsObserver {
	return &MetricsObserver{}
}

func (*MetricsObserver) StepStarted(machine, state string) {}

func (*MetricsObserver) StateEntered(machine, state string) {
	stateEntriesTotal.WithLabelValues(machine, state).Inc()
}

func (*MetricsObserver) StateExited(machine, state string) {}

func (*MetricsObserver) TransitionFired(machine, from, to string) {
	transitionsTotal.WithLabelValues(machine, from, to).Inc()
}

func (*MetricsObserver) StepCompleted(machine, state string, transitioned bool, duration time.Duration) {
	outcome := outcomeRemained
	if transitioned {
		outcome = outcomeTransitioned
	}

	stepsTotal.WithLabelValues(machine, state, outcome).Inc()
	stepDuration.WithLabelValues(machine).Observe(duration.Seconds())
}
