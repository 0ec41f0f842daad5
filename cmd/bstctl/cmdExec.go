package main

import (
	"context"
	"flag"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"github.com/e11jah/bst"
	"github.com/e11jah/bst/internal/script"
)

type cmdExec struct {
	file    string
	verbose bool
	out     io.Writer
}

func (cmd *cmdExec) Name() string     { return "exec" }
func (cmd *cmdExec) Synopsis() string { return "run a tree command script" }
func (cmd *cmdExec) Usage() string {
	return `exec [-f script] [-v]:
  Run commands (insert, delete, search, min, max, succ, keys, print,
  size, height, check, clear) against a fresh tree. Reads stdin when -f
  is not given.
`
}

func (cmd *cmdExec) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cmd.file, "f", "", "script file, stdin if empty")
	f.BoolVar(&cmd.verbose, "v", false, "log every operation")
}

func (cmd *cmdExec) Execute(ctx context.Context,
	f *flag.FlagSet,
	args ...interface{}) subcommands.ExitStatus {
	setVerbose(cmd.verbose)

	var src io.Reader = os.Stdin
	if cmd.file != "" {
		file, err := os.Open(cmd.file)
		if err != nil {
			log.WithError(err).Error("cannot open script")
			return subcommands.ExitFailure
		}
		defer file.Close()
		src = file
	}

	in := script.New(bst.New(), output(cmd.out), log)
	if err := in.Run(ctx, src); err != nil {
		log.WithFields(logrus.Fields{"file": cmd.file}).WithError(err).Error("exec failed")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
