package staticfsm

import (
	"errors"
	"fmt"
)

var (
	// ErrStateNotActive is returned by generated push and poll methods when
	// the route's state is not the machine's current state. This is expected
	// in normal operation — a driving loop may legitimately try routes for
	// states that are not active yet — and is indistinguishable from "not
	// yet ready" by design.
	ErrStateNotActive = errors.New("state is not active")

	// ErrMailboxFull is returned by Mailbox.Put when the single slot is
	// occupied and the mailbox uses OverflowReject.
	ErrMailboxFull = errors.New("mailbox slot is occupied")
)

// RouteError wraps a message-routing failure with the machine and state the
// route is bound to.
type RouteError struct {
	Machine string
	State   string
	Err     error
}

func (e *RouteError) Error() string {
	return fmt.Sprintf("%s: route for state %s: %v", e.Machine, e.State, e.Err)
}

func (e *RouteError) Unwrap() error {
	return e.Err
}
