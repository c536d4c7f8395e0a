package graph

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Declarative front-end errors.
var (
	// ErrMachineNameRequired indicates that a machine name is required.
	ErrMachineNameRequired = errors.New("machine name is required")
	// ErrInitialStateRequired indicates that an initial state is required.
	ErrInitialStateRequired = errors.New("initial state is required")
	// ErrStateRequired indicates that at least one state is required.
	ErrStateRequired = errors.New("at least one state is required")
	// ErrStateNameRequired indicates that a state name is required.
	ErrStateNameRequired = errors.New("state name is required")
	// ErrEdgeFromRequired indicates that a transition's from state is required.
	ErrEdgeFromRequired = errors.New("transition from state is required")
	// ErrEdgeToRequired indicates that a transition's to state is required.
	ErrEdgeToRequired = errors.New("transition to state is required")
	// ErrRouteStateRequired indicates that a message route's state is required.
	ErrRouteStateRequired = errors.New("message route state is required")
	// ErrRoutePayloadRequired indicates that a message route's payload type is required.
	ErrRoutePayloadRequired = errors.New("message route payload type is required")
	// ErrInvalidDirection indicates that a message route direction is not "receive" or "poll".
	ErrInvalidDirection = errors.New(`message route direction must be "receive" or "poll"`)
)

// Config is the YAML shape of a machine declaration:
//
//	name: Elevator
//	package: elevator
//	initialState: Grounded
//	runInitialEntry: true
//	states:
//	  - name: Grounded
//	  - name: MoveUp
//	transitions:
//	  - from: Grounded
//	    to: MoveUp
//	messages:
//	  - state: Grounded
//	    direction: receive
//	    payload: StartLiftoff
//
// State and payload names are Go type names in the target package.
type Config struct {
	Name            string             `json:"name"            yaml:"name"`
	Package         string             `json:"package"         yaml:"package"`
	InitialState    string             `json:"initialState"    yaml:"initialState"`
	RunInitialEntry bool               `json:"runInitialEntry" yaml:"runInitialEntry"`
	States          []StateConfig      `json:"states"          yaml:"states"`
	Transitions     []TransitionConfig `json:"transitions"     yaml:"transitions"`
	Messages        []MessageConfig    `json:"messages"        yaml:"messages"`
}

// StateConfig declares one state.
type StateConfig struct {
	Name string `json:"name" yaml:"name"`
}

// TransitionConfig declares one directed edge.
type TransitionConfig struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to"   yaml:"to"`
}

// MessageConfig declares one message route. Direction is "receive" or
// "poll".
type MessageConfig struct {
	State     string `json:"state"     yaml:"state"`
	Direction string `json:"direction" yaml:"direction"`
	Payload   string `json:"payload"   yaml:"payload"`
}

// LoadConfig loads a machine declaration from a YAML file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Intentional path-based loading
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	return LoadConfigFromBytes(data)
}

// LoadConfigFromBytes loads a machine declaration from YAML bytes.
func LoadConfigFromBytes(data []byte) (*Config, error) {
	var config Config

	err := yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	err = config.Validate()
	if err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadConfigFromFS loads a machine declaration from a filesystem, typically
// an embed.FS.
func LoadConfigFromFS(fsys fs.FS, path string) (*Config, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config from FS: %w", err)
	}

	return LoadConfigFromBytes(data)
}

// Validate checks the declaration's shape: required fields and well-formed
// directions. Graph-level checks (membership, duplicates, reachability) are
// the validator package's job.
func (c *Config) Validate() error {
	if c.Name == "" {
		return ErrMachineNameRequired
	}

	if c.InitialState == "" {
		return ErrInitialStateRequired
	}

	if len(c.States) == 0 {
		return ErrStateRequired
	}

	for i, state := range c.States {
		if state.Name == "" {
			return fmt.Errorf("state %d: %w", i, ErrStateNameRequired)
		}
	}

	for i, transition := range c.Transitions {
		if transition.From == "" {
			return fmt.Errorf("transition %d: %w", i, ErrEdgeFromRequired)
		}

		if transition.To == "" {
			return fmt.Errorf("transition %d: %w", i, ErrEdgeToRequired)
		}
	}

	for i, message := range c.Messages {
		if message.State == "" {
			return fmt.Errorf("message %d: %w", i, ErrRouteStateRequired)
		}

		if message.Payload == "" {
			return fmt.Errorf("message %d: %w", i, ErrRoutePayloadRequired)
		}

		if _, err := parseDirection(message.Direction); err != nil {
			return fmt.Errorf("message %d: %w", i, err)
		}
	}

	return nil
}

// Graph converts the declaration into the generator's model. The package
// name defaults to the lowercased machine name.
func (c *Config) Graph() (*Graph, error) {
	err := c.Validate()
	if err != nil {
		return nil, err
	}

	pkg := c.Package
	if pkg == "" {
		pkg = strings.ToLower(c.Name)
	}

	g := &Graph{
		Name:            c.Name,
		Package:         pkg,
		Initial:         c.InitialState,
		RunInitialEntry: c.RunInitialEntry,
		States:          make([]string, 0, len(c.States)),
		Edges:           make([]Edge, 0, len(c.Transitions)),
		Routes:          make([]Route, 0, len(c.Messages)),
	}

	for _, state := range c.States {
		g.States = append(g.States, state.Name)
	}

	for _, transition := range c.Transitions {
		g.Edges = append(g.Edges, Edge{From: transition.From, To: transition.To})
	}

	for _, message := range c.Messages {
		dir, err := parseDirection(message.Direction)
		if err != nil {
			return nil, err
		}

		g.Routes = append(g.Routes, Route{
			State:     message.State,
			Direction: dir,
			Payload:   message.Payload,
		})
	}

	return g, nil
}

func parseDirection(s string) (Direction, error) {
	switch s {
	case "receive", "into":
		return DirectionReceive, nil
	case "poll", "out-of":
		return DirectionPoll, nil
	default:
		return 0, fmt.Errorf("%w: got %q", ErrInvalidDirection, s)
	}
}
