package main

import (
	"fmt"
	"os"

	"github.com/mitchellh/cli"
)

func main() {
	args := os.Args[1:]

	commands := map[string]cli.CommandFactory{
		"repl": func() (cli.Command, error) {
			return &ReplCommand{}, nil
		},
	}

	// A bare `cellar file.db` invocation runs the repl.
	if len(args) == 0 || (args[0] != "repl" && args[0] != "-h" && args[0] != "--help") {
		args = append([]string{"repl"}, args...)
	}

	cellarCLI := &cli.CLI{
		Args:     args,
		Commands: commands,
		HelpFunc: cli.BasicHelpFunc("cellar"),
	}

	exitCode, err := cellarCLI.Run()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
		os.Exit(1)
	}

	os.Exit(exitCode)
}
