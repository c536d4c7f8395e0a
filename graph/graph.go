// Package graph holds the build-time declaration of a state machine: the
// state set, the initial state, the directed edge list, and the message
// routes. A Graph is fully consumed by validation and code generation and is
// never materialized at run time.
package graph

// Direction says which way a message route points relative to the machine.
type Direction int

const (
	// DirectionReceive routes messages into a state (push from the host).
	DirectionReceive Direction = iota
	// DirectionPoll routes messages out of a state (poll by the host).
	DirectionPoll
)

func (d Direction) String() string {
	switch d {
	case DirectionReceive:
		return "receive"
	case DirectionPoll:
		return "poll"
	default:
		return "unknown"
	}
}

// Edge is one directed transition in the graph. Edge order is significant:
// when several guards of one state fire in the same step, the first declared
// edge wins.
type Edge struct {
	From string
	To   string
}

// Route binds a payload type to a state in one direction. Payload and
// direction together name the generated router methods, so the pair must be
// unique within a machine.
type Route struct {
	State     string
	Direction Direction
	Payload   string
}

// Graph is the validated declaration the generator consumes. States, Edges
// and Routes keep declaration order.
type Graph struct {
	// Name is the generated machine type name, e.g. "Elevator".
	Name string
	// Package is the Go package the generated file belongs to.
	Package string
	// Initial names the state the machine starts in.
	Initial string
	// RunInitialEntry is the declared default for whether OnEntry of the
	// initial state runs on the first Step.
	RunInitialEntry bool

	States []string
	Edges  []Edge
	Routes []Route
}

// HasState reports whether name is in the declared state set.
func (g *Graph) HasState(name string) bool {
	for _, s := range g.States {
		if s == name {
			return true
		}
	}

	return false
}

// EdgesFrom returns the outgoing edges of state in declaration order.
func (g *Graph) EdgesFrom(state string) []Edge {
	var out []Edge

	for _, e := range g.Edges {
		if e.From == state {
			out = append(out, e)
		}
	}

	return out
}

// RoutesFor returns the routes bound to state in declaration order.
func (g *Graph) RoutesFor(state string) []Route {
	var out []Route

	for _, r := range g.Routes {
		if r.State == state {
			out = append(out, r)
		}
	}

	return out
}
