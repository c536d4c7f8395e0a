// Package staticfsm is the runtime protocol layer for build-time-generated
// finite state machines.
//
// A machine is declared once (states, initial state, transition edges,
// message routes), validated by the validator package, and compiled by the
// gen package (or the fsmgen command) into a single Go source file. The
// generated machine holds its current state in a closed tagged union — one
// by-value field per declared state plus a tag — so stepping the machine
// involves no heap allocation, no interface dispatch, and no runtime lookup
// table. Only the occupied state changes at run time; the graph itself is
// fixed at build time.
//
// This package contains everything the generated code and the user's state
// types share: the State contract, the TransitGuard predicate result, the
// single-slot Mailbox used by message routes, construction options, runtime
// errors, and optional step observers (slog, Prometheus, OpenTelemetry).
//
// A state is any type with OnEntry, Execute and OnExit methods. Transitions
// are expressed as methods on the source state named after the destination:
//
//	func (g *Grounded) GuardMoveUp() staticfsm.TransitGuard { return staticfsm.TransitGuard(g.ready) }
//	func (g Grounded) IntoMoveUp() MoveUp                   { return MoveUp{target: g.target} }
//
// The generated Step calls these directly on the concrete types, so a
// declared edge whose methods are missing fails to compile — the graph is
// verified twice, once by the validator and once by the Go compiler.
//
// Machines are single-threaded by contract: Step, Stop and the generated
// push/poll methods must be driven from one goroutine, or serialized
// externally around the whole machine.
package staticfsm
