package staticfsm

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
)

// recordingObserver captures event names in order.
type recordingObserver struct {
	events []string
}

func (r *recordingObserver) StepStarted(machine, state string) {
	r.events = append(r.events, "step:"+state)
}

func (r *recordingObserver) StateEntered(machine, state string) {
	r.events = append(r.events, "entered:"+state)
}

func (r *recordingObserver) StateExited(machine, state string) {
	r.events = append(r.events, "exited:"+state)
}

func (r *recordingObserver) TransitionFired(machine, from, to string) {
	r.events = append(r.events, "fired:"+from+">"+to)
}

func (r *recordingObserver) StepCompleted(machine, state string, transitioned bool, duration time.Duration) {
	r.events = append(r.events, "done:"+state)
}

func TestObserversFanOut(t *testing.T) {
	t.Parallel()

	first := &recordingObserver{}
	second := &recordingObserver{}
	fan := Observers{first, second}

	fan.StepStarted("M", "A")
	fan.StateExited("M", "A")
	fan.TransitionFired("M", "A", "B")
	fan.StateEntered("M", "B")
	fan.StepCompleted("M", "B", true, time.Microsecond)

	want := []string{"step:A", "exited:A", "fired:A>B", "entered:B", "done:B"}
	assert.Equal(t, want, first.events)
	assert.Equal(t, want, second.events)
}

func TestSlogObserverOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	obs := NewSlogObserver(logger)

	obs.StepStarted("Elevator", "Grounded")
	obs.TransitionFired("Elevator", "Grounded", "MoveUp")
	obs.StateEntered("Elevator", "MoveUp")
	obs.StepCompleted("Elevator", "MoveUp", true, 3*time.Microsecond)

	out := buf.String()
	assert.Contains(t, out, "machine=Elevator")
	assert.Contains(t, out, "Transition fired")
	assert.Contains(t, out, "from=Grounded")
	assert.Contains(t, out, "to=MoveUp")
	assert.Contains(t, out, "transitioned=true")
}

func TestSlogObserverDistinctInstances(t *testing.T) {
	t.Parallel()

	logger := slogt.New(t)

	first := NewSlogObserver(logger)
	second := NewSlogObserver(logger)

	assert.NotEqual(t, first.id, second.id)
}

func TestSlogObserverNilLoggerUsesDefault(t *testing.T) {
	t.Parallel()

	obs := NewSlogObserver(nil)

	assert.NotNil(t, obs.logger)
}
