package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/google/subcommands"

	"github.com/e11jah/bst"
	"github.com/e11jah/bst/internal/script"
)

type cmdSort struct {
	verbose bool
	out     io.Writer
}

func (cmd *cmdSort) Name() string     { return "sort" }
func (cmd *cmdSort) Synopsis() string { return "print keys in order by walking successors" }
func (cmd *cmdSort) Usage() string    { return "sort [-v] key...\n" }

func (cmd *cmdSort) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&cmd.verbose, "v", false, "log every operation")
}

func (cmd *cmdSort) Execute(_ context.Context,
	f *flag.FlagSet,
	args ...interface{}) subcommands.ExitStatus {
	setVerbose(cmd.verbose)
	if f.NArg() == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	keys, err := script.ParseKeys(f.Args())
	if err != nil {
		log.WithError(err).Error("bad input")
		return subcommands.ExitUsageError
	}

	tree := bst.New()
	for _, k := range keys {
		tree.Insert(k)
	}
	for n := tree.Minimum(); n != nil; n = n.Successor() {
		fmt.Fprintln(output(cmd.out), n.Key())
	}
	return subcommands.ExitSuccess
}
