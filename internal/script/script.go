// Package script runs line oriented command scripts against a bst.Tree.
//
// Each line holds one command followed by its arguments, separated by
// blanks. Blank lines and lines starting with '#' are skipped.
//
//	insert 5 3 8
//	delete 3
//	succ 5
//	print
package script

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/e11jah/bst"
	"github.com/sirupsen/logrus"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadKey         = errors.New("malformed key")
	ErrArity          = errors.New("wrong number of arguments")
)

const missing = "<nil>"

type command struct {
	// -1 accepts one or more arguments
	arity int
	run   func(in *Interpreter, keys []bst.Key) error
}

var commands = map[string]command{
	"insert": {-1, func(in *Interpreter, keys []bst.Key) error {
		for _, k := range keys {
			in.tree.Insert(k)
		}
		return nil
	}},
	"delete": {-1, func(in *Interpreter, keys []bst.Key) error {
		for _, k := range keys {
			if !in.tree.Delete(k) {
				in.log.WithField("key", k).Debug("delete of missing key")
			}
		}
		return nil
	}},
	"search": {1, func(in *Interpreter, keys []bst.Key) error {
		return in.printNode(in.tree.Search(keys[0]))
	}},
	"min": {0, func(in *Interpreter, _ []bst.Key) error {
		return in.printNode(in.tree.Minimum())
	}},
	"max": {0, func(in *Interpreter, _ []bst.Key) error {
		return in.printNode(in.tree.Maximum())
	}},
	"succ": {1, func(in *Interpreter, keys []bst.Key) error {
		n := in.tree.Search(keys[0])
		if n == nil {
			return in.println(missing)
		}
		return in.printNode(n.Successor())
	}},
	"keys": {0, func(in *Interpreter, _ []bst.Key) error {
		ks := in.tree.Keys()
		parts := make([]string, len(ks))
		for i, k := range ks {
			parts[i] = strconv.Itoa(int(k))
		}
		return in.println(strings.Join(parts, " "))
	}},
	"print": {0, func(in *Interpreter, _ []bst.Key) error {
		return in.println(in.tree.String())
	}},
	"size": {0, func(in *Interpreter, _ []bst.Key) error {
		return in.println(strconv.Itoa(in.tree.Size()))
	}},
	"height": {0, func(in *Interpreter, _ []bst.Key) error {
		return in.println(strconv.Itoa(in.tree.Height()))
	}},
	"check": {0, func(in *Interpreter, _ []bst.Key) error {
		if err := in.tree.Check(); err != nil {
			return err
		}
		return in.println("ok")
	}},
	"clear": {0, func(in *Interpreter, _ []bst.Key) error {
		in.tree.Clear()
		return nil
	}},
}

// Interpreter executes commands against a single tree.
type Interpreter struct {
	tree *bst.Tree
	out  io.Writer
	log  logrus.FieldLogger
}

// New returns an Interpreter writing results to out. A nil log falls back to
// the standard logrus logger.
func New(tree *bst.Tree, out io.Writer, log logrus.FieldLogger) *Interpreter {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Interpreter{tree: tree, out: out, log: log}
}

// Tree returns the tree the interpreter works on.
func (in *Interpreter) Tree() *bst.Tree {
	return in.tree
}

// Run executes every line read from r. It stops at the first failing line
// or when ctx is done.
func (in *Interpreter) Run(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for lineno := 1; scanner.Scan(); lineno++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := in.Exec(scanner.Text()); err != nil {
			in.log.WithFields(logrus.Fields{
				"line": lineno,
				"text": scanner.Text(),
			}).WithError(err).Warn("script failed")
			return fmt.Errorf("line %d: %w", lineno, err)
		}
	}
	return scanner.Err()
}

// Exec runs a single command line.
func (in *Interpreter) Exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}

	name, args := strings.ToLower(fields[0]), fields[1:]
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownCommand, fields[0])
	}
	if (cmd.arity < 0 && len(args) == 0) || (cmd.arity >= 0 && len(args) != cmd.arity) {
		return fmt.Errorf("%w: %s takes %s, got %d", ErrArity, name, arityString(cmd.arity), len(args))
	}

	keys, err := ParseKeys(args)
	if err != nil {
		return err
	}
	in.log.WithFields(logrus.Fields{"cmd": name, "args": len(keys)}).Debug("exec")
	return cmd.run(in, keys)
}

// ParseKeys converts decimal strings to keys.
func ParseKeys(args []string) ([]bst.Key, error) {
	keys := make([]bst.Key, 0, len(args))
	for _, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("%w %q", ErrBadKey, a)
		}
		keys = append(keys, bst.Key(v))
	}
	return keys, nil
}

func arityString(arity int) string {
	switch arity {
	case -1:
		return "at least one key"
	case 1:
		return "one key"
	default:
		return strconv.Itoa(arity) + " keys"
	}
}

func (in *Interpreter) printNode(n *bst.Node) error {
	if n == nil {
		return in.println(missing)
	}
	return in.println(n.String())
}

func (in *Interpreter) println(s string) error {
	_, err := fmt.Fprintln(in.out, s)
	return err
}
