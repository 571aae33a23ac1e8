package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"github.com/cellardb/cellar/internal/engine"
	"github.com/cellardb/cellar/internal/pager"
	"github.com/cellardb/cellar/internal/storage"
)

type ReplConfig struct {
	LogLevel    logrus.Level `yaml:"log_level"`
	HistoryFile string       `yaml:"history_file"`
}

type ReplCommand struct{}

func (r *ReplCommand) Help() string {
	helpText := `
Usage: cellar repl [options] <db_file>

Options:

	-config=""	Database configuration file
`

	return strings.TrimSpace(helpText)
}

func (r *ReplCommand) Synopsis() string {
	return "Interactive session against a database file"
}

func (r *ReplCommand) Run(args []string) int {
	var configPath string

	cmdFlags := flag.NewFlagSet("repl", flag.ExitOnError)
	cmdFlags.StringVar(&configPath, "config", "", "config file")

	if err := cmdFlags.Parse(args); err != nil {
		return 1
	}

	config := ReplConfig{LogLevel: logrus.WarnLevel}
	if configPath != "" {
		configFile, err := os.Open(configPath)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Error opening config file: %s", err.Error())
			return 1
		}
		if err := yaml.NewDecoder(configFile).Decode(&config); err != nil {
			configFile.Close()
			_, _ = fmt.Fprintf(os.Stderr, "Error parsing config file: %s", err.Error())
			return 1
		}
		configFile.Close()
	}

	if cmdFlags.NArg() == 0 {
		_, _ = fmt.Fprintln(os.Stderr, "Must supply a database filename.")
		return 1
	}

	logger := logrus.New()
	logger.SetLevel(config.LogLevel)

	eng, err := engine.Start(cmdFlags.Arg(0), logger)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Unable to open file.")
		return 1
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "db > ",
		InterruptPrompt: "^C",
		HistoryFile:     config.HistoryFile,
	})
	if err != nil {
		_ = eng.Close()
		return 1
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			logger.WithError(err).Error("read input")
			break
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		if strings.HasPrefix(input, ".") {
			exit, err := eng.ExecuteMeta(input, os.Stdout)
			if err != nil {
				fmt.Printf("Unrecognized command: %s\n", input)
				continue
			}
			if exit {
				break
			}
			continue
		}

		stmt, err := engine.Prepare(input)
		if err != nil {
			fmt.Println(prepareMessage(err, input))
			continue
		}

		runStatement(eng, stmt)
	}

	if err := eng.Close(); err != nil {
		logger.WithError(err).Error("close database")
		return 1
	}

	return 0
}

func runStatement(eng *engine.Engine, stmt engine.Statement) {
	err := eng.Execute(stmt, func(row storage.Row) {
		fmt.Println(row)
	})

	switch {
	case err == nil:
		fmt.Println("Executed.")
	case errors.Is(err, pager.ErrDuplicateKey):
		fmt.Println("Error: Duplicate key.")
	case errors.Is(err, pager.ErrTableFull):
		fmt.Println("Error: Table full.")
	default:
		fmt.Println("Error: Unhandled statement.")
	}
}

func prepareMessage(err error, input string) string {
	switch {
	case errors.Is(err, engine.ErrNegativeID):
		return "ID must be positive."
	case errors.Is(err, engine.ErrStringTooLong):
		return "String is too long."
	case errors.Is(err, engine.ErrSyntax):
		return "Syntax error. Could not parse statement."
	default:
		return fmt.Sprintf("Unrecognized keyword at start of '%s'.", input)
	}
}
