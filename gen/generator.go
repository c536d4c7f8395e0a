// Package gen renders a validated state graph into Go source: a tagged
// holder struct with one by-value field per state, a Step loop dispatched
// over the tag, and one Push/Poll method per declared message route. The
// output goes through go/format before it is returned, the way stringer
// formats its output.
package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"os"

	"github.com/amp-labs/staticfsm/graph"
	"github.com/amp-labs/staticfsm/validator"
)

// ErrNotGoIdentifier is returned when a declared machine, state, package,
// or payload name cannot be used as a Go identifier.
var ErrNotGoIdentifier = errors.New("name is not a valid Go identifier")

type machineData struct {
	Machine         string
	Package         string
	Fingerprint     string
	TagType         string
	InitialType     string
	InitialTag      string
	InitialField    string
	RunInitialEntry bool
	NeedsOptional   bool
	States          []stateData
	Pushes          []routeData
	Polls           []routeData
}

type stateData struct {
	Name  string
	Tag   string
	Field string
	Edges []edgeData
}

type edgeData struct {
	To      string
	ToTag   string
	ToField string
	Guard   string
	Into    string
}

type routeData struct {
	Payload string
	Method  string
	Receive string
	Return  string
	State   string
	Tag     string
	Field   string
}

// Generate renders g into formatted Go source. The graph is validated
// first; a graph with validation errors is rejected.
func Generate(g *graph.Graph) ([]byte, error) {
	result := validator.Validate(g)
	if err := result.Err(); err != nil {
		return nil, err
	}

	if err := checkIdentifiers(g); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := machineTemplate.Execute(&buf, buildMachineData(g)); err != nil {
		return nil, fmt.Errorf("failed to render machine template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generated code does not parse: %w", err)
	}

	return src, nil
}

// GenerateFile renders g and writes the source to path.
func GenerateFile(g *graph.Graph, path string) error {
	src, err := Generate(g)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, src, 0o644); err != nil { //nolint:gosec
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

func checkIdentifiers(g *graph.Graph) error {
	names := []string{g.Name, g.Package}
	names = append(names, g.States...)

	for _, route := range g.Routes {
		names = append(names, route.Payload)
	}

	for _, name := range names {
		if !isIdentifier(name) {
			return fmt.Errorf("%w: %q", ErrNotGoIdentifier, name)
		}
	}

	return nil
}

func buildMachineData(g *graph.Graph) machineData {
	data := machineData{
		Machine:         g.Name,
		Package:         g.Package,
		Fingerprint:     g.Fingerprint(),
		TagType:         TagType(g.Name),
		InitialType:     g.Initial,
		InitialTag:      TagConst(g.Name, g.Initial),
		InitialField:    FieldName(g.Initial),
		RunInitialEntry: g.RunInitialEntry,
	}

	for _, state := range g.States {
		sd := stateData{
			Name:  state,
			Tag:   TagConst(g.Name, state),
			Field: FieldName(state),
		}

		for _, edge := range g.EdgesFrom(state) {
			sd.Edges = append(sd.Edges, edgeData{
				To:      edge.To,
				ToTag:   TagConst(g.Name, edge.To),
				ToField: FieldName(edge.To),
				Guard:   GuardMethod(edge.To),
				Into:    IntoMethod(edge.To),
			})
		}

		data.States = append(data.States, sd)
	}

	for _, route := range g.Routes {
		rd := routeData{
			Payload: route.Payload,
			State:   route.State,
			Tag:     TagConst(g.Name, route.State),
			Field:   FieldName(route.State),
		}

		switch route.Direction {
		case graph.DirectionReceive:
			rd.Method = PushMethod(route.Payload)
			rd.Receive = ReceiveMethod(route.Payload)
			data.Pushes = append(data.Pushes, rd)
		case graph.DirectionPoll:
			rd.Method = PollMethod(route.Payload)
			rd.Return = ReturnMethod(route.Payload)
			data.Polls = append(data.Polls, rd)
			data.NeedsOptional = true
		}
	}

	return data
}
