package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amp-labs/staticfsm/graph"
	"github.com/amp-labs/staticfsm/validator"
)

func validGraph() *graph.Graph {
	return &graph.Graph{
		Name:    "Elevator",
		Package: "elevator",
		Initial: "Grounded",
		States:  []string{"Grounded", "MoveUp"},
		Edges: []graph.Edge{
			{From: "Grounded", To: "MoveUp"},
			{From: "MoveUp", To: "Grounded"},
		},
		Routes: []graph.Route{
			{State: "Grounded", Direction: graph.DirectionReceive, Payload: "StartLiftoff"},
			{State: "MoveUp", Direction: graph.DirectionPoll, Payload: "Status"},
		},
	}
}

func errorCodes(result validator.ValidationResult) []string {
	codes := make([]string, 0, len(result.Errors))
	for _, e := range result.Errors {
		codes = append(codes, e.Code)
	}

	return codes
}

func TestValidGraphPasses(t *testing.T) {
	t.Parallel()

	result := validator.Validate(validGraph())

	assert.True(t, result.Valid)
	assert.False(t, result.HasErrors())
	assert.False(t, result.HasWarnings())
	require.NoError(t, result.Err())
	assert.Contains(t, result.String(), "✓")
}

func TestEdgeToUndeclaredState(t *testing.T) {
	t.Parallel()

	g := validGraph()
	g.Edges = append(g.Edges, graph.Edge{From: "Grounded", To: "Z"})

	result := validator.Validate(g)

	assert.False(t, result.Valid)
	assert.Contains(t, errorCodes(result), "UNDECLARED_STATE")
	require.ErrorIs(t, result.Err(), validator.ErrInvalidGraph)
}

func TestEdgeFromUndeclaredState(t *testing.T) {
	t.Parallel()

	g := validGraph()
	g.Edges = append(g.Edges, graph.Edge{From: "Phantom", To: "Grounded"})

	result := validator.Validate(g)

	assert.False(t, result.Valid)
	assert.Contains(t, errorCodes(result), "UNDECLARED_STATE")
}

func TestUndeclaredInitialState(t *testing.T) {
	t.Parallel()

	g := validGraph()
	g.Initial = "Orbit"

	result := validator.Validate(g)

	assert.Contains(t, errorCodes(result), "UNDECLARED_INITIAL")
}

func TestDuplicateEdge(t *testing.T) {
	t.Parallel()

	g := validGraph()
	g.Edges = append(g.Edges, graph.Edge{From: "Grounded", To: "MoveUp"})

	result := validator.Validate(g)

	assert.Contains(t, errorCodes(result), "DUPLICATE_EDGE")
}

func TestDuplicateState(t *testing.T) {
	t.Parallel()

	g := validGraph()
	g.States = append(g.States, "Grounded")

	result := validator.Validate(g)

	assert.Contains(t, errorCodes(result), "DUPLICATE_STATE")
}

// Declaring a poll route for a state absent from the state list must be
// rejected at build time, never at run time.
func TestRouteForUndeclaredState(t *testing.T) {
	t.Parallel()

	g := validGraph()
	g.Routes = append(g.Routes, graph.Route{
		State:     "Liftoff",
		Direction: graph.DirectionPoll,
		Payload:   "Telemetry",
	})

	result := validator.Validate(g)

	assert.False(t, result.Valid)
	assert.Contains(t, errorCodes(result), "UNDECLARED_ROUTE_STATE")
}

func TestAmbiguousRoute(t *testing.T) {
	t.Parallel()

	g := validGraph()
	g.Routes = append(g.Routes, graph.Route{
		State:     "MoveUp",
		Direction: graph.DirectionReceive,
		Payload:   "StartLiftoff",
	})

	result := validator.Validate(g)

	assert.Contains(t, errorCodes(result), "AMBIGUOUS_ROUTE")
}

func TestSamePayloadOppositeDirectionsAllowed(t *testing.T) {
	t.Parallel()

	g := validGraph()
	g.Routes = append(g.Routes, graph.Route{
		State:     "MoveUp",
		Direction: graph.DirectionReceive,
		Payload:   "Status",
	})

	result := validator.Validate(g)

	assert.True(t, result.Valid)
}

func TestUnreachableStateIsWarning(t *testing.T) {
	t.Parallel()

	g := validGraph()
	g.States = append(g.States, "Maintenance")

	result := validator.Validate(g)

	assert.True(t, result.Valid, "unreachable states are a warning, not an error")
	require.True(t, result.HasWarnings())
	assert.Equal(t, "UNREACHABLE_STATE", result.Warnings[0].Code)
	assert.Equal(t, "Maintenance", result.Warnings[0].State)
	assert.Contains(t, result.String(), "⚠")
}

func TestUnreachableWarningsNaturallySorted(t *testing.T) {
	t.Parallel()

	g := validGraph()
	g.States = append(g.States, "Bay10", "Bay2", "Bay1")

	result := validator.Validate(g)

	require.Len(t, result.Warnings, 3)
	assert.Equal(t, "Bay1", result.Warnings[0].State)
	assert.Equal(t, "Bay2", result.Warnings[1].State)
	assert.Equal(t, "Bay10", result.Warnings[2].State)
}

func TestValidateStrictPromotesWarnings(t *testing.T) {
	t.Parallel()

	g := validGraph()
	g.States = append(g.States, "Maintenance")

	result := validator.ValidateStrict(g)

	assert.False(t, result.Valid)
	assert.False(t, result.HasWarnings())
	assert.Contains(t, errorCodes(result), "UNREACHABLE_STATE")
}

func TestSelfEdgeIsLegal(t *testing.T) {
	t.Parallel()

	g := validGraph()
	g.Edges = append(g.Edges, graph.Edge{From: "Grounded", To: "Grounded"})

	result := validator.Validate(g)

	assert.True(t, result.Valid)
}
