// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command graphedit generates, edits, and plots noisy measurement
// series.
//
// Usage:
//
//	graphedit [-dot] [-student level] <subcommand> [flags] [args...]
//
// A series is either single-sample (one value per point) or repeated
// (several samples per point). Each point of a repeated series is
// summarized by the expectation of its 10-bin histogram and by a
// confidence interval around it.
//
// Series are stored in a semicolon-delimited text format with decimal
// commas (or decimal points with -dot), or in a legacy JSON format
// holding single-sample series only. Reading detects the format.
//
// Intervals use the fixed critical value 1.984 unless -student gives a
// confidence level, in which case the critical value is taken from
// Student's t distribution with n-1 degrees of freedom.
//
// Subcommands:
//
//	gen      generate a random series
//	show     print a summary table of a series
//	hist     print the histogram of one point of a repeated series
//	edit     change a value or the labels of a series
//	convert  rewrite a series in another format
//	plot     draw a series or its histogram as SVG or PNG
//	shell    edit a series interactively
//
// Use "graphedit <subcommand> -h" for the flags of a subcommand. A
// file name of "-" means standard input or output.
package main

import (
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/datspike/graph-editor/render"
	"github.com/datspike/graph-editor/series"
	"github.com/datspike/graph-editor/seriesfile"
)

// Default image size of plots.
const (
	defaultWidth  = 800
	defaultHeight = 600
)

var (
	dotDecimal bool
	student    float64

	// estimator computes the intervals of every repeated series the
	// command builds or reads. It is set from -student.
	estimator series.Estimator
)

type subcommand struct {
	name, desc string
	cmd        func()
	flags      *flag.FlagSet
}

var subcommands []*subcommand

// registerSubcommand adds a subcommand. It is called from init
// functions; cmd runs after flags has parsed the subcommand's
// arguments.
func registerSubcommand(name, desc string, cmd func(), flags *flag.FlagSet) {
	subcommands = append(subcommands, &subcommand{name, desc, cmd, flags})
}

func main() {
	log.SetPrefix("graphedit: ")
	log.SetFlags(0)

	flag.Usage = func() {
		w := flag.CommandLine.Output()
		fmt.Fprintf(w, "Usage: %s [flags] <subcommand> [args...]\n", os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintf(w, "\nSubcommands:\n")
		for _, sub := range subcommands {
			fmt.Fprintf(w, "  %-8s %s\n", sub.name, sub.desc)
		}
	}
	flag.BoolVar(&dotDecimal, "dot", false, "use '.' instead of ',' as the decimal separator of delimited files")
	flag.Float64Var(&student, "student", 0, "compute intervals from Student's t distribution at confidence `level` (e.g. 0.95) instead of the fixed critical value")
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}
	var err error
	if estimator, err = criticalEstimator(student); err != nil {
		log.Fatal(err)
	}

	for _, sub := range subcommands {
		if sub.name == flag.Arg(0) {
			sub.flags.Parse(flag.Args()[1:])
			sub.cmd()
			return
		}
	}
	flag.Usage()
	os.Exit(2)
}

// criticalEstimator returns the Estimator for a -student confidence
// level. Level 0 selects the fixed critical value.
func criticalEstimator(level float64) (series.Estimator, error) {
	switch {
	case level == 0:
		return series.Estimator{}, nil
	case level > 0 && level < 1:
		return series.Estimator{Critical: series.StudentCritical(level)}, nil
	}
	return series.Estimator{}, fmt.Errorf("confidence level %v not in (0, 1)", level)
}

// fileOptions returns the series file options selected by the
// command-line flags.
func fileOptions() seriesfile.Options {
	opts := seriesfile.DefaultOptions
	if dotDecimal {
		opts.Decimal = '.'
	}
	opts.Estimator = estimator
	return opts
}

// readSeries reads the series in file path, or standard input if path
// is "-".
func readSeries(opts seriesfile.Options, path string) (*series.Aggregate, error) {
	a, _, err := readSeriesFormat(opts, path)
	return a, err
}

// readSeriesFormat is like readSeries but also returns the format of
// the file.
func readSeriesFormat(opts seriesfile.Options, path string) (*series.Aggregate, seriesfile.Format, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = ioutil.ReadAll(os.Stdin)
	} else {
		data, err = ioutil.ReadFile(path)
	}
	if err != nil {
		return nil, 0, err
	}
	a, err := opts.Unmarshal(data)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", path, err)
	}
	return a, seriesfile.Detect(data), nil
}

// writeSeries writes a to file path, or standard output if path is
// "-". Nothing is written if a cannot be encoded.
func writeSeries(opts seriesfile.Options, path string, a *series.Aggregate, format seriesfile.Format) error {
	data, err := opts.Marshal(a, format)
	if err != nil {
		return err
	}
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return ioutil.WriteFile(path, data, 0666)
}

// drawFile plots a, or its current histogram if hist is set, to file
// path. Paths ending in ".png" get a PNG image and all others an SVG
// image.
func drawFile(path string, a *series.Aggregate, hist bool, width, height int) error {
	var draw func(io.Writer, *series.Aggregate, int, int) error
	png := strings.EqualFold(filepath.Ext(path), ".png")
	switch {
	case png && hist:
		draw = render.HistogramPNG
	case png:
		draw = render.PNG
	case hist:
		draw = render.HistogramSVG
	default:
		draw = render.SVG
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := draw(f, a, width, height); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

// parseFormat parses a -format flag value, exiting on failure.
func parseFormat(name string) seriesfile.Format {
	f, err := seriesfile.ParseFormat(name)
	if err != nil {
		log.Fatal(err)
	}
	return f
}
