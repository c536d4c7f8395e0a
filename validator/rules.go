package validator

import (
	"fmt"

	"facette.io/natsort"

	"github.com/amp-labs/staticfsm/graph"
)

// RuleResult contains both errors and warnings from a single rule check.
type RuleResult struct {
	Errors   []ValidationError
	Warnings []ValidationWarning
}

// Rule is one validation check over a declaration.
type Rule interface {
	Name() string
	Check(g *graph.Graph) RuleResult
}

// DefaultRules returns the standard rule set, in the order the checks are
// reported.
func DefaultRules() []Rule {
	return []Rule{
		&duplicateStateRule{},
		&initialStateRule{},
		&edgeEndpointsRule{},
		&duplicateEdgeRule{},
		&routeStatesRule{},
		&ambiguousRouteRule{},
		&unreachableStateRule{},
	}
}

// duplicateStateRule rejects a state declared more than once.
type duplicateStateRule struct{}

func (r *duplicateStateRule) Name() string {
	return "DuplicateState"
}

func (r *duplicateStateRule) Check(g *graph.Graph) RuleResult {
	var result RuleResult

	seen := make(map[string]bool, len(g.States))

	for _, state := range g.States {
		if seen[state] {
			result.Errors = append(result.Errors, ValidationError{
				Code:    "DUPLICATE_STATE",
				Message: fmt.Sprintf("state %q is declared more than once", state),
				State:   state,
			})
		}

		seen[state] = true
	}

	return result
}

// initialStateRule rejects an initial state missing from the state set.
type initialStateRule struct{}

func (r *initialStateRule) Name() string {
	return "InitialState"
}

func (r *initialStateRule) Check(g *graph.Graph) RuleResult {
	var result RuleResult

	if !g.HasState(g.Initial) {
		result.Errors = append(result.Errors, ValidationError{
			Code:    "UNDECLARED_INITIAL",
			Message: fmt.Sprintf("initial state %q is not in the declared state set", g.Initial),
			State:   g.Initial,
		})
	}

	return result
}

// edgeEndpointsRule rejects edges whose From or To is undeclared.
type edgeEndpointsRule struct{}

func (r *edgeEndpointsRule) Name() string {
	return "EdgeEndpoints"
}

func (r *edgeEndpointsRule) Check(g *graph.Graph) RuleResult {
	var result RuleResult

	for _, edge := range g.Edges {
		if !g.HasState(edge.From) {
			result.Errors = append(result.Errors, ValidationError{
				Code:    "UNDECLARED_STATE",
				Message: fmt.Sprintf("edge %s => %s starts at undeclared state %q", edge.From, edge.To, edge.From),
				State:   edge.From,
			})
		}

		if !g.HasState(edge.To) {
			result.Errors = append(result.Errors, ValidationError{
				Code:    "UNDECLARED_STATE",
				Message: fmt.Sprintf("edge %s => %s targets undeclared state %q", edge.From, edge.To, edge.To),
				State:   edge.To,
			})
		}
	}

	return result
}

// duplicateEdgeRule rejects the same (From,To) pair declared twice.
type duplicateEdgeRule struct{}

func (r *duplicateEdgeRule) Name() string {
	return "DuplicateEdge"
}

func (r *duplicateEdgeRule) Check(g *graph.Graph) RuleResult {
	var result RuleResult

	seen := make(map[graph.Edge]bool, len(g.Edges))

	for _, edge := range g.Edges {
		if seen[edge] {
			result.Errors = append(result.Errors, ValidationError{
				Code:    "DUPLICATE_EDGE",
				Message: fmt.Sprintf("edge %s => %s is declared more than once", edge.From, edge.To),
				State:   edge.From,
			})
		}

		seen[edge] = true
	}

	return result
}

// routeStatesRule rejects message routes bound to undeclared states.
type routeStatesRule struct{}

func (r *routeStatesRule) Name() string {
	return "RouteStates"
}

func (r *routeStatesRule) Check(g *graph.Graph) RuleResult {
	var result RuleResult

	for _, route := range g.Routes {
		if !g.HasState(route.State) {
			result.Errors = append(result.Errors, ValidationError{
				Code: "UNDECLARED_ROUTE_STATE",
				Message: fmt.Sprintf("message route %s %s %s names undeclared state %q",
					route.Payload, route.Direction, route.State, route.State),
				State: route.State,
			})
		}
	}

	return result
}

// ambiguousRouteRule rejects two routes with the same payload and direction.
// Router method names are derived from the pair, so a collision would
// generate two methods with one name.
type ambiguousRouteRule struct{}

func (r *ambiguousRouteRule) Name() string {
	return "AmbiguousRoute"
}

func (r *ambiguousRouteRule) Check(g *graph.Graph) RuleResult {
	var result RuleResult

	type key struct {
		payload   string
		direction graph.Direction
	}

	seen := make(map[key]string, len(g.Routes))

	for _, route := range g.Routes {
		k := key{payload: route.Payload, direction: route.Direction}

		if firstState, ok := seen[k]; ok {
			result.Errors = append(result.Errors, ValidationError{
				Code: "AMBIGUOUS_ROUTE",
				Message: fmt.Sprintf("payload %s is routed (%s) to both %q and %q; payload and direction must be unique",
					route.Payload, route.Direction, firstState, route.State),
				State: route.State,
			})

			continue
		}

		seen[k] = route.State
	}

	return result
}

// unreachableStateRule warns about states with no path from the initial
// state. Warning-level only: a state may be a deliberate terminal sink
// entered through a mechanism outside this graph.
type unreachableStateRule struct{}

func (r *unreachableStateRule) Name() string {
	return "UnreachableState"
}

func (r *unreachableStateRule) Check(g *graph.Graph) RuleResult {
	var result RuleResult

	reachable := make(map[string]bool, len(g.States))
	reachable[g.Initial] = true

	queue := []string{g.Initial}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, edge := range g.Edges {
			if edge.From == current && !reachable[edge.To] {
				reachable[edge.To] = true
				queue = append(queue, edge.To)
			}
		}
	}

	var unreachable []string

	for _, state := range g.States {
		if !reachable[state] {
			unreachable = append(unreachable, state)
		}
	}

	// Stable, human-friendly ordering for diagnostics.
	natsort.Sort(unreachable)

	for _, state := range unreachable {
		result.Warnings = append(result.Warnings, ValidationWarning{
			Code:    "UNREACHABLE_STATE",
			Message: fmt.Sprintf("state %q cannot be reached from initial state %q", state, g.Initial),
			State:   state,
		})
	}

	return result
}
