// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/datspike/graph-editor/generate"
	"github.com/datspike/graph-editor/series"
	"github.com/datspike/graph-editor/seriesfile"
	"github.com/kballard/go-shellquote"
	"golang.org/x/crypto/ssh/terminal"
)

var cmdShellFlags = flag.NewFlagSet(os.Args[0]+" shell", flag.ExitOnError)

func init() {
	f := cmdShellFlags
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s shell [file]\n", os.Args[0])
		f.PrintDefaults()
	}
	registerSubcommand("shell", "[file] - edit a series interactively", cmdShell, f)
}

func cmdShell() {
	if cmdShellFlags.NArg() > 1 {
		cmdShellFlags.Usage()
		os.Exit(2)
	}
	s := newSession(os.Stdout)
	if cmdShellFlags.NArg() == 1 {
		if err := s.exec("load " + shellquote.Join(cmdShellFlags.Arg(0))); err != nil {
			log.Fatal(err)
		}
	}
	prompt := os.Getenv("TERM") != "dumb" && terminal.IsTerminal(int(os.Stdin.Fd()))
	if err := s.run(os.Stdin, prompt); err != nil {
		log.Fatal(err)
	}
}

// A session is the state of an interactive shell: one series that
// commands build, edit, and save.
type session struct {
	a    *series.Aggregate
	gen  *generate.Generator
	opts seriesfile.Options
	out  io.Writer

	// level is the Student's t confidence level of a.Estimator, or 0
	// for the fixed critical value.
	level float64
}

func newSession(out io.Writer) *session {
	s := &session{
		a:     series.New(),
		gen:   new(generate.Generator),
		opts:  fileOptions(),
		out:   out,
		level: student,
	}
	s.a.Estimator = s.opts.Estimator
	return s
}

var errQuit = errors.New("quit")

type shellCommand struct {
	args, help string
	run        func(s *session, args []string) error
}

var shellCommands map[string]*shellCommand

func init() {
	families := []string{}
	for _, f := range generate.Families() {
		families = append(families, f.String())
	}

	shellCommands = map[string]*shellCommand{
		"gen": {"<family> [n [reps]]", "generate a series (" + strings.Join(families, ", ") + ")", (*session).cmdGen},
		"clear": {"", "remove the series and restore the default labels", func(s *session, args []string) error {
			s.a.Clear()
			return nil
		}},
		"title":  {"[text...]", "print or set the title", labelCommand(func(a *series.Aggregate) *string { return &a.Title })},
		"xlabel": {"[text...]", "print or set the x-axis label", labelCommand(func(a *series.Aggregate) *string { return &a.XLabel })},
		"ylabel": {"[text...]", "print or set the y-axis label", labelCommand(func(a *series.Aggregate) *string { return &a.YLabel })},
		"edit":   {"<index> <value>", "set the value of a point", (*session).cmdEdit},
		"save":   {"<file> [format]", "write the series (delimited or legacy)", (*session).cmdSave},
		"load":   {"<file>", "read a series", (*session).cmdLoad},
		"plot":   {"[-hist] <file>", "draw the series, or the current histogram, as SVG or PNG", (*session).cmdPlot},
		"hist":   {"[index]", "print the histogram of a point (default: the last)", (*session).cmdHist},
		"show": {"", "print the series", func(s *session, args []string) error {
			return writeSummary(s.out, s.a)
		}},
		"critical": {"[fixed | level]", "print or set the critical value of intervals (fixed, or Student's t at a confidence level)", (*session).cmdCritical},
		"help":     {"", "list commands", (*session).cmdHelp},
		"quit": {"", "leave the shell", func(s *session, args []string) error {
			return errQuit
		}},
	}
	shellCommands["exit"] = shellCommands["quit"]
}

// usageError reports a command invoked with the wrong arguments.
type usageError struct {
	name string
}

func (e *usageError) Error() string {
	return fmt.Sprintf("usage: %s %s", e.name, shellCommands[e.name].args)
}

// run executes commands read line by line from in until end of input
// or a quit command. Failed commands print an error and the shell
// carries on.
func (s *session) run(in io.Reader, prompt bool) error {
	sc := bufio.NewScanner(in)
	for {
		if prompt {
			fmt.Fprint(s.out, "> ")
		}
		if !sc.Scan() {
			break
		}
		err := s.exec(sc.Text())
		if err == errQuit {
			return nil
		} else if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
	}
	if prompt {
		fmt.Fprintln(s.out)
	}
	return sc.Err()
}

// exec runs one command line.
func (s *session) exec(line string) error {
	args, err := shellquote.Split(line)
	if err != nil {
		return err
	}
	if len(args) == 0 || strings.HasPrefix(args[0], "#") {
		return nil
	}
	c, ok := shellCommands[args[0]]
	if !ok {
		return fmt.Errorf("unknown command %q (try help)", args[0])
	}
	return c.run(s, args[1:])
}

func presentError(err error) error {
	if errors.Is(err, series.ErrSeriesPresent) {
		return fmt.Errorf("%w; clear it first", err)
	}
	return err
}

func (s *session) cmdGen(args []string) error {
	if len(args) < 1 || len(args) > 3 {
		return &usageError{"gen"}
	}
	f, err := generate.ParseFamily(args[0])
	if err != nil {
		return err
	}
	n, reps := 100, 10
	if len(args) > 1 {
		if n, err = strconv.Atoi(args[1]); err != nil {
			return &usageError{"gen"}
		}
	}
	if len(args) > 2 {
		if reps, err = strconv.Atoi(args[2]); err != nil {
			return &usageError{"gen"}
		}
	}
	if err := s.gen.Build(s.a, f, n, reps); err != nil {
		return presentError(err)
	}
	fmt.Fprintf(s.out, "generated %d points\n", s.a.Len())
	return nil
}

func labelCommand(field func(*series.Aggregate) *string) func(*session, []string) error {
	return func(s *session, args []string) error {
		p := field(s.a)
		if len(args) == 0 {
			fmt.Fprintln(s.out, *p)
			return nil
		}
		*p = strings.Join(args, " ")
		return nil
	}
}

func (s *session) cmdEdit(args []string) error {
	if len(args) != 2 {
		return &usageError{"edit"}
	}
	i, err := strconv.Atoi(args[0])
	if err != nil {
		return &usageError{"edit"}
	}
	v, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return &usageError{"edit"}
	}
	return s.a.EditSample(i, v)
}

func (s *session) cmdSave(args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return &usageError{"save"}
	}
	format := seriesfile.Delimited
	if len(args) == 2 {
		var err error
		if format, err = seriesfile.ParseFormat(args[1]); err != nil {
			return err
		}
	}
	return writeSeries(s.opts, args[0], s.a, format)
}

func (s *session) cmdLoad(args []string) error {
	if len(args) != 1 {
		return &usageError{"load"}
	}
	if s.a.Plotted() {
		return presentError(series.ErrSeriesPresent)
	}
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()
	if err := s.opts.Load(f, s.a); err != nil {
		return presentError(err)
	}
	fmt.Fprintf(s.out, "loaded %d points\n", s.a.Len())
	return nil
}

func (s *session) cmdCritical(args []string) error {
	switch len(args) {
	case 0:
		if s.level == 0 {
			fmt.Fprintf(s.out, "fixed %v\n", series.FixedCriticalValue)
		} else {
			fmt.Fprintf(s.out, "student %v\n", s.level)
		}
		return nil
	case 1:
	default:
		return &usageError{"critical"}
	}
	level := 0.0
	if args[0] != "fixed" {
		var err error
		if level, err = strconv.ParseFloat(args[0], 64); err != nil {
			return &usageError{"critical"}
		}
	}
	est, err := criticalEstimator(level)
	if err != nil {
		return err
	}
	old := s.a.Estimator
	s.a.Estimator = est
	if err := s.a.Recompute(); err != nil {
		s.a.Estimator = old
		return err
	}
	s.opts.Estimator = est
	s.level = level
	return nil
}

func (s *session) cmdPlot(args []string) error {
	hist := len(args) > 0 && args[0] == "-hist"
	if hist {
		args = args[1:]
	}
	if len(args) != 1 {
		return &usageError{"plot"}
	}
	return drawFile(args[0], s.a, hist, defaultWidth, defaultHeight)
}

func (s *session) cmdHist(args []string) error {
	i := -1
	switch len(args) {
	case 0:
	case 1:
		var err error
		if i, err = strconv.Atoi(args[0]); err != nil {
			return &usageError{"hist"}
		}
	default:
		return &usageError{"hist"}
	}
	h, err := pointHistogram(s.a, i)
	if err != nil {
		return err
	}
	return writeHistogram(s.out, h)
}

func (s *session) cmdHelp(args []string) error {
	names := make([]string, 0, len(shellCommands))
	for name := range shellCommands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		c := shellCommands[name]
		fmt.Fprintf(s.out, "  %s %s\n      %s\n", name, c.args, c.help)
	}
	return nil
}
