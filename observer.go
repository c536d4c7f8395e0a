package staticfsm

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Observer receives step-level events from a generated machine. All methods
// are invoked synchronously from inside Step/Stop on the driving goroutine,
// so implementations must be cheap and must not block.
//
// Event order within one transitioning Step: StepStarted, StateExited,
// TransitionFired, StateEntered, StepCompleted. A non-transitioning Step
// emits only StepStarted and StepCompleted (plus StateEntered the first time
// a pending initial entry runs).
type Observer interface {
	StepStarted(machine, state string)
	StateEntered(machine, state string)
	StateExited(machine, state string)
	TransitionFired(machine, from, to string)
	StepCompleted(machine, state string, transitioned bool, duration time.Duration)
}

// Observers fans events out to every contained observer, in order.
type Observers []Observer

func (os Observers) StepStarted(machine, state string) {
	for _, o := range os {
		o.StepStarted(machine, state)
	}
}

func (os Observers) StateEntered(machine, state string) {
	for _, o := range os {
		o.StateEntered(machine, state)
	}
}

func (os Observers) StateExited(machine, state string) {
	for _, o := range os {
		o.StateExited(machine, state)
	}
}

func (os Observers) TransitionFired(machine, from, to string) {
	for _, o := range os {
		o.TransitionFired(machine, from, to)
	}
}

func (os Observers) StepCompleted(machine, state string, transitioned bool, duration time.Duration) {
	for _, o := range os {
		o.StepCompleted(machine, state, transitioned, duration)
	}
}

// SlogObserver logs machine events through slog. Each observer carries a
// unique instance id so interleaved logs from several machines of the same
// type stay distinguishable.
type SlogObserver struct {
	logger *slog.Logger
	id     string
}

// NewSlogObserver creates a logging observer. A nil logger uses
// slog.Default().
func NewSlogObserver(logger *slog.Logger) *SlogObserver {
	if logger == nil {
		logger = slog.Default()
	}

	return &SlogObserver{
		logger: logger,
		id:     uuid.NewString(),
	}
}

func (l *SlogObserver) StepStarted(machine, state string) {
	l.logger.Debug("Step started",
		"machine", machine,
		"instance", l.id,
		"state", state,
	)
}

func (l *SlogObserver) StateEntered(machine, state string) {
	l.logger.Info("State entered",
		"machine", machine,
		"instance", l.id,
		"state", state,
	)
}

func (l *SlogObserver) StateExited(machine, state string) {
	l.logger.Info("State exited",
		"machine", machine,
		"instance", l.id,
		"state", state,
	)
}

func (l *SlogObserver) TransitionFired(machine, from, to string) {
	l.logger.Info("Transition fired",
		"machine", machine,
		"instance", l.id,
		"from", from,
		"to", to,
	)
}

func (l *SlogObserver) StepCompleted(machine, state string, transitioned bool, duration time.Duration) {
	l.logger.Debug("Step completed",
		"machine", machine,
		"instance", l.id,
		"state", state,
		"transitioned", transitioned,
		"duration_us", duration.Microseconds(),
	)
}
