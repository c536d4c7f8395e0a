package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"gopkg.in/yaml.v3"

	"github.com/amp-labs/staticfsm/graph"
)

// runInit walks the user through a minimal machine declaration and writes
// it out as YAML, ready for fsmgen generate.
func runInit(args []string) error {
	flags := flag.NewFlagSet("init", flag.ContinueOnError)
	out := flags.String("o", "machine.yaml", "output path")

	if err := flags.Parse(args); err != nil {
		return err
	}

	name, err := promptString("Machine name (e.g. Elevator)")
	if err != nil {
		return err
	}

	states, err := promptString("State names, comma separated (e.g. Grounded,MoveUp)")
	if err != nil {
		return err
	}

	cfg := graph.Config{Name: name}
	for _, state := range strings.Split(states, ",") {
		cfg.States = append(cfg.States, graph.StateConfig{Name: strings.TrimSpace(state)})
	}

	initial, err := promptSelect("Initial state", configStateNames(&cfg))
	if err != nil {
		return err
	}

	cfg.InitialState = initial

	for {
		edge, err := promptOptional(`Transition "From => To" (empty to finish)`)
		if err != nil {
			return err
		}

		if edge == "" {
			break
		}

		from, to, ok := strings.Cut(edge, "=>")
		if !ok {
			fmt.Println(`expected "From => To"`)

			continue
		}

		cfg.Transitions = append(cfg.Transitions, graph.TransitionConfig{
			From: strings.TrimSpace(from),
			To:   strings.TrimSpace(to),
		})
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(*out, data, 0o644); err != nil { //nolint:gosec
		return fmt.Errorf("failed to write %s: %w", *out, err)
	}

	fmt.Printf("wrote %s\n", *out)

	return nil
}

func configStateNames(cfg *graph.Config) []string {
	names := make([]string, 0, len(cfg.States))
	for _, state := range cfg.States {
		names = append(names, state.Name)
	}

	return names
}

func promptString(label string) (string, error) {
	prompt := promptui.Prompt{
		Label: label,
		Validate: func(s string) error {
			if len(s) == 0 {
				return errors.New("you must enter something")
			}

			return nil
		},
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
	}

	return prompt.Run()
}

func promptOptional(label string) (string, error) {
	prompt := promptui.Prompt{
		Label:  label,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
	}

	return prompt.Run()
}

func promptSelect(label string, items []string) (string, error) {
	sel := promptui.Select{
		Label:  label,
		Items:  items,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
	}

	_, choice, err := sel.Run()

	return choice, err
}
