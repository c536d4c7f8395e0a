// fsmgen turns YAML state machine declarations into Go source.
//
// Usage:
//
//	fsmgen generate [-o out.go] <config.yaml> [more.yaml ...]
//	fsmgen validate [-strict] <config.yaml> [more.yaml ...]
//	fsmgen mermaid [-o out.md] <config.yaml>
//	fsmgen init [-o out.yaml]
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
)

const usage = `fsmgen generates static state machines from YAML declarations.

Commands:
  generate    render machine_gen.go source for each config
  validate    check configs against the graph rules
  mermaid     render a Mermaid state diagram for a config
  init        interactively scaffold a new config

Run "fsmgen <command> -h" for command flags.
`

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	var err error

	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "generate":
		err = runGenerate(args)
	case "validate":
		err = runValidate(args)
	case "mermaid":
		err = runMermaid(args)
	case "init":
		err = runInit(args)
	case "-h", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", cmd, usage)
		os.Exit(2)
	}

	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}

		slog.Error("fsmgen failed", "error", err)
		os.Exit(1)
	}
}
