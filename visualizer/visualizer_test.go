package visualizer_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amp-labs/staticfsm/graph"
	"github.com/amp-labs/staticfsm/visualizer"
)

func elevatorGraph() *graph.Graph {
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

func TestGenerateMermaid(t *testing.T) {
	t.Parallel()

	diagram, err := visualizer.GenerateMermaid(elevatorGraph())
	require.NoError(t, err)

	assert.Contains(t, diagram, "```mermaid")
	assert.Contains(t, diagram, "stateDiagram-v2")
	assert.Contains(t, diagram, "[*] --> Grounded")
	assert.Contains(t, diagram, "Grounded --> MoveUp")
	assert.Contains(t, diagram, "MoveUp --> Grounded")
	assert.Contains(t, diagram, "StartLiftoff in")
	assert.Contains(t, diagram, "Status out")
}

func TestGenerateMermaidUnfenced(t *testing.T) {
	t.Parallel()

	opts := visualizer.DefaultOptions().WithFenced(false).WithShowRoutes(false)

	diagram, err := visualizer.GenerateMermaidWithOptions(elevatorGraph(), opts)
	require.NoError(t, err)

	assert.NotContains(t, diagram, "```")
	assert.NotContains(t, diagram, "note right of")
	assert.Contains(t, diagram, "direction TB")
}

func TestGenerateMermaidNilGraph(t *testing.T) {
	t.Parallel()

	_, err := visualizer.GenerateMermaid(nil)
	assert.ErrorIs(t, err, visualizer.ErrGraphNil)
}

func TestGenerateMermaidNoInitial(t *testing.T) {
	t.Parallel()

	g := elevatorGraph()
	g.Initial = ""

	_, err := visualizer.GenerateMermaid(g)
	assert.ErrorIs(t, err, visualizer.ErrNoInitialState)
}

func TestWriteMermaidFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "elevator.mmd")

	require.NoError(t, visualizer.WriteMermaidFile(elevatorGraph(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "stateDiagram-v2")
}
