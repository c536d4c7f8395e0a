package staticfsm

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "staticfsm"

// TracingObserver records one OpenTelemetry span per machine step, with the
// fired transition and state entries/exits as span events. It uses the
// global tracer provider.
//
// A TracingObserver belongs to exactly one machine instance: it keeps the
// open step span between StepStarted and StepCompleted, which is safe under
// the machine's single-threaded contract but not across machines.
type TracingObserver struct {
	tracer trace.Tracer
	span   trace.Span
}

// NewTracingObserver creates a tracing observer for a single machine
// instance.
func NewTracingObserver() *TracingObserver {
	return &TracingObserver{
		tracer: otel.Tracer(tracerName),
	}
}

func (t *TracingObserver) StepStarted(machine, state string) {
	_, span := t.tracer.Start(context.Background(), "staticfsm.step",
		trace.WithAttributes(
			attribute.String("machine", machine),
			attribute.String("state", state),
		))

	t.span = span
}

func (t *TracingObserver) StateEntered(machine, state string) {
	if t.span == nil {
		return
	}

	t.span.AddEvent("state.entered", trace.WithAttributes(
		attribute.String("state", state),
	))
}

func (t *TracingObserver) StateExited(machine, state string) {
	if t.span == nil {
		return
	}

	t.span.AddEvent("state.exited", trace.WithAttributes(
		attribute.String("state", state),
	))
}

func (t *TracingObserver) TransitionFired(machine, from, to string) {
	if t.span == nil {
		return
	}

	t.span.AddEvent("transition", trace.WithAttributes(
		attribute.String("from", from),
		attribute.String("to", to),
	))
}

func (t *TracingObserver) StepCompleted(machine, state string, transitioned bool, duration time.Duration) {
	if t.span == nil {
		return
	}

	t.span.SetAttributes(
		attribute.String("final_state", state),
		attribute.Bool("transitioned", transitioned),
		attribute.Int64("duration_us", duration.Microseconds()),
	)
	t.span.End()
	t.span = nil
}
