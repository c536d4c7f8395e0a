package staticfsm

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

// Note: Cannot use t.Parallel() because these tests reset shared Prometheus
// metric vectors.
//
//nolint:paralleltest // Tests modify global Prometheus metric state
func TestMetricsObserverCountsSteps(t *testing.T) {
	stepsTotal.Reset()
	transitionsTotal.Reset()

	obs := NewMetricsObserver()

	obs.StepCompleted("Elevator", "Grounded", false, time.Microsecond)
	obs.StepCompleted("Elevator", "Grounded", false, time.Microsecond)
	obs.StepCompleted("Elevator", "MoveUp", true, time.Microsecond)
	obs.TransitionFired("Elevator", "Grounded", "MoveUp")

	remained := testutil.ToFloat64(stepsTotal.WithLabelValues("Elevator", "Grounded", outcomeRemained))
	assert.InDelta(t, 2.0, remained, 0)

	transitioned := testutil.ToFloat64(stepsTotal.WithLabelValues("Elevator", "MoveUp", outcomeTransitioned))
	assert.InDelta(t, 1.0, transitioned, 0)

	fired := testutil.ToFloat64(transitionsTotal.WithLabelValues("Elevator", "Grounded", "MoveUp"))
	assert.InDelta(t, 1.0, fired, 0)
}

//nolint:paralleltest // Test modifies global Prometheus metric state
func TestMetricsObserverCountsEntries(t *testing.T) {
	stateEntriesTotal.Reset()

	obs := NewMetricsObserver()

	obs.StateEntered("Elevator", "MoveUp")
	obs.StateEntered("Elevator", "MoveUp")

	entries := testutil.ToFloat64(stateEntriesTotal.WithLabelValues("Elevator", "MoveUp"))
	assert.InDelta(t, 2.0, entries, 0)
}
