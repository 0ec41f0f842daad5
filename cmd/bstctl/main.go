package main

import (
	"context"
	"flag"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"github.com/e11jah/bst"
)

var log = logrus.New()

// output defaults a command's writer to stdout.
func output(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}

func setVerbose(verbose bool) {
	if verbose {
		log.SetLevel(logrus.DebugLevel)
		bst.Log.SetLevel(logrus.DebugLevel)
	}
}

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&cmdExec{}, "")
	subcommands.Register(&cmdSort{}, "")
	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
