package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/term"
	"github.com/sonnes/shotstrip/render/terminal"
	"github.com/sonnes/shotstrip/strip"
	"github.com/urfave/cli/v3"
)

const name = "shotstrip"

var errUsage = errors.New("expected <input_file> [output_file]")

// reportedError marks an error whose report has already been printed.
type reportedError struct {
	error
}

func (e reportedError) Unwrap() error {
	return e.error
}

// run executes the command line in args and returns the process exit code.
// Every failure prints exactly one report.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	log.SetOutput(stderr)

	if err := newCommand(stdout, stderr).Run(ctx, args); err != nil {
		var re reportedError
		if !errors.As(err, &re) {
			terminal.Failure(stdout, err)
		}
		log.Debug("exit", "error", err)
		return 1
	}
	return 0
}

func newCommand(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     "Null oversized screenshot fields in a JSON file",
		ArgsUsage: "<input_file> [output_file]",
		Description: `Replaces the value of every top-level "screenshot" key with null, either
on the root object or on each object of a root array. Nested values are left
alone. The result is written back to input_file unless output_file is given;
use "-" as output_file to print the result instead.`,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "field",
				Aliases: []string{"f"},
				Usage:   "Key whose value is replaced with null",
				Value:   strip.DefaultField,
				Sources: cli.EnvVars("SHOTSTRIP_FIELD"),
			},
			&cli.BoolFlag{
				Name:    "dry-run",
				Aliases: []string{"n"},
				Usage:   "Report what would be removed without writing anything",
			},
			&cli.BoolFlag{
				Name:  "jsonc",
				Usage: "Accept comments and trailing commas in the input",
			},
			&cli.StringFlag{
				Name:    "log",
				Usage:   "Log level: debug, info, warn, error",
				Value:   "error",
				Sources: cli.EnvVars("SHOTSTRIP_LOG"),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level, err := log.ParseLevel(cmd.String("log"))
			if err != nil {
				return ctx, fmt.Errorf("log level %q: %w", cmd.String("log"), err)
			}
			log.SetLevel(level)
			return ctx, nil
		},
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if n := cmd.Args().Len(); n < 1 || n > 2 {
				terminal.Usage(stdout, name)
				return reportedError{errUsage}
			}

			j := job{
				input:     cmd.Args().Get(0),
				output:    cmd.Args().Get(1),
				field:     cmd.String("field"),
				dryRun:    cmd.Bool("dry-run"),
				jsonc:     cmd.Bool("jsonc"),
				highlight: isTerminal(stdout),
			}
			if j.output == "" {
				j.output = j.input
			}

			// Keep stdout clean when it carries the document itself.
			report := stdout
			if j.toStdout() {
				report = stderr
			}

			res, err := j.run(stdout)
			if err != nil {
				terminal.Failure(report, err)
				return reportedError{err}
			}
			terminal.Success(report, res)
			return nil
		},
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(f.Fd())
}
