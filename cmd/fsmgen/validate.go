package main

import (
	"flag"
	"fmt"

	"github.com/amp-labs/staticfsm/graph"
	"github.com/amp-labs/staticfsm/validator"
)

func runValidate(args []string) error {
	flags := flag.NewFlagSet("validate", flag.ContinueOnError)
	strict := flags.Bool("strict", false, "treat warnings as errors")

	if err := flags.Parse(args); err != nil {
		return err
	}

	configs := flags.Args()
	if len(configs) == 0 {
		return errNoConfigs
	}

	var failed error

	for _, path := range configs {
		cfg, err := graph.LoadConfig(path)
		if err != nil {
			return err
		}

		g, err := cfg.Graph()
		if err != nil {
			return err
		}

		result := validator.Validate(g)
		if *strict {
			result = validator.ValidateStrict(g)
		}

		fmt.Printf("%s:\n%s\n", path, result.String())

		if err := result.Err(); err != nil {
			failed = err
		}
	}

	return failed
}
