package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/alitto/pond/v2"

	"github.com/amp-labs/staticfsm/gen"
	"github.com/amp-labs/staticfsm/graph"
)

var errNoConfigs = errors.New("no config files given")

func runGenerate(args []string) error {
	flags := flag.NewFlagSet("generate", flag.ContinueOnError)
	out := flags.String("o", "", "output path (single config only; default <config dir>/machine_gen.go)")

	if err := flags.Parse(args); err != nil {
		return err
	}

	configs := flags.Args()
	if len(configs) == 0 {
		return errNoConfigs
	}

	if *out != "" && len(configs) > 1 {
		return errors.New("-o requires exactly one config")
	}

	pool := pond.NewPool(runtime.NumCPU())
	errs := make([]error, len(configs))

	for i, path := range configs {
		pool.Submit(func() {
			errs[i] = generateOne(path, *out)
		})
	}

	pool.StopAndWait()

	return errors.Join(errs...)
}

func generateOne(configPath, out string) error {
	cfg, err := graph.LoadConfig(configPath)
	if err != nil {
		return err
	}

	g, err := cfg.Graph()
	if err != nil {
		return err
	}

	if out == "" {
		out = filepath.Join(filepath.Dir(configPath), outputName(g))
	}

	if err := gen.GenerateFile(g, out); err != nil {
		return fmt.Errorf("%s: %w", configPath, err)
	}

	slog.Info("generated machine",
		"machine", g.Name,
		"out", out,
		"fingerprint", g.Fingerprint())

	return nil
}

func outputName(g *graph.Graph) string {
	return strings.ToLower(g.Name) + "_gen.go"
}
