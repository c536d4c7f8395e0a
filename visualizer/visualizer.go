// Package visualizer renders machine declarations as Mermaid state
// diagrams.
package visualizer

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/amp-labs/staticfsm/graph"
)

// Visualizer errors.
var (
	// ErrGraphNil is returned when the graph is nil.
	ErrGraphNil = errors.New("graph cannot be nil")
	// ErrNoInitialState is returned when the graph has no initial state.
	ErrNoInitialState = errors.New("graph must have an initial state")
)

// GenerateMermaid converts a Graph to a Mermaid state diagram with default
// options.
func GenerateMermaid(g *graph.Graph) (string, error) {
	return GenerateMermaidWithOptions(g, DefaultOptions())
}

// GenerateMermaidFromFile loads a declaration from a YAML file and renders
// it.
func GenerateMermaidFromFile(path string) (string, error) {
	config, err := graph.LoadConfig(path)
	if err != nil {
		return "", fmt.Errorf("failed to load config: %w", err)
	}

	g, err := config.Graph()
	if err != nil {
		return "", err
	}

	return GenerateMermaid(g)
}

// GenerateMermaidWithOptions renders a diagram with custom options.
func GenerateMermaidWithOptions(g *graph.Graph, opts Options) (string, error) {
	if g == nil {
		return "", ErrGraphNil
	}

	if g.Initial == "" {
		return "", ErrNoInitialState
	}

	var sb strings.Builder

	if opts.Fenced {
		sb.WriteString("```mermaid\n")
	}

	sb.WriteString("stateDiagram-v2\n")

	if opts.Direction != "" {
		fmt.Fprintf(&sb, "    direction %s\n", opts.Direction)
	}

	// Initial state marker
	fmt.Fprintf(&sb, "    [*] --> %s\n", g.Initial)

	for _, edge := range g.Edges {
		fmt.Fprintf(&sb, "    %s --> %s\n", edge.From, edge.To)
	}

	if opts.ShowRoutes {
		for _, state := range g.States {
			routes := g.RoutesFor(state)
			if len(routes) == 0 {
				continue
			}

			fmt.Fprintf(&sb, "    note right of %s\n", state)

			for _, route := range routes {
				switch route.Direction {
				case graph.DirectionReceive:
					fmt.Fprintf(&sb, "        %s in\n", route.Payload)
				case graph.DirectionPoll:
					fmt.Fprintf(&sb, "        %s out\n", route.Payload)
				}
			}

			sb.WriteString("    end note\n")
		}
	}

	if opts.Fenced {
		sb.WriteString("```\n")
	}

	return sb.String(), nil
}

// WriteMermaidFile renders the graph and writes the diagram to a file.
func WriteMermaidFile(g *graph.Graph, path string) error {
	diagram, err := GenerateMermaid(g)
	if err != nil {
		return err
	}

	err = os.WriteFile(path, []byte(diagram), 0o644) //nolint:gosec // Diagram output is not sensitive
	if err != nil {
		return fmt.Errorf("failed to write diagram to %q: %w", path, err)
	}

	return nil
}
