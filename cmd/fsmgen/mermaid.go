package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/amp-labs/staticfsm/graph"
	"github.com/amp-labs/staticfsm/visualizer"
)

func runMermaid(args []string) error {
	flags := flag.NewFlagSet("mermaid", flag.ContinueOnError)
	out := flags.String("o", "", "output path (default stdout)")
	direction := flags.String("direction", "TB", "diagram direction (TB, LR, RL, BT)")

	if err := flags.Parse(args); err != nil {
		return err
	}

	configs := flags.Args()
	if len(configs) != 1 {
		return errors.New("mermaid takes exactly one config")
	}

	cfg, err := graph.LoadConfig(configs[0])
	if err != nil {
		return err
	}

	g, err := cfg.Graph()
	if err != nil {
		return err
	}

	opts := visualizer.DefaultOptions().WithDirection(*direction).WithFenced(*out != "")

	diagram, err := visualizer.GenerateMermaidWithOptions(g, opts)
	if err != nil {
		return err
	}

	if *out == "" {
		fmt.Println(diagram)

		return nil
	}

	if err := os.WriteFile(*out, []byte(diagram), 0o644); err != nil { //nolint:gosec
		return fmt.Errorf("failed to write %s: %w", *out, err)
	}

	return nil
}
