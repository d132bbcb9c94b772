// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/datspike/graph-editor/seriesfile"
)

var cmdEditFlags = flag.NewFlagSet(os.Args[0]+" edit", flag.ExitOnError)

var edit struct {
	out, format           string
	title, xlabel, ylabel string
}

var cmdConvertFlags = flag.NewFlagSet(os.Args[0]+" convert", flag.ExitOnError)

var convert struct {
	to      string
	decimal string
}

func init() {
	f := cmdEditFlags
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s edit [flags] <file> [<index> <value>]\n", os.Args[0])
		f.PrintDefaults()
	}
	f.StringVar(&edit.out, "o", "", "write the result to `file` (default: overwrite the input)")
	f.StringVar(&edit.format, "format", "", "output `format`: delimited or legacy (default: that of the input)")
	f.StringVar(&edit.title, "title", "", "set the plot `title`")
	f.StringVar(&edit.xlabel, "xlabel", "", "set the x-axis `label`")
	f.StringVar(&edit.ylabel, "ylabel", "", "set the y-axis `label`")
	registerSubcommand("edit", "[flags] <file> [<index> <value>] - change a value or the labels", cmdEdit, f)

	f = cmdConvertFlags
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s convert [flags] <in> <out>\n", os.Args[0])
		f.PrintDefaults()
	}
	f.StringVar(&convert.to, "to", "delimited", "output `format`: delimited or legacy")
	f.StringVar(&convert.decimal, "decimal", "", "decimal `separator` of the output (default: that of the input)")
	registerSubcommand("convert", "[flags] <in> <out> - rewrite a series in another format", cmdConvert, f)
}

func cmdEdit() {
	args := cmdEditFlags.Args()
	if !(len(args) == 1 || len(args) == 3) {
		cmdEditFlags.Usage()
		os.Exit(2)
	}
	var change *sampleChange
	if len(args) == 3 {
		i, err := strconv.Atoi(args[1])
		if err != nil {
			log.Fatalf("bad index %q", args[1])
		}
		v, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			log.Fatalf("bad value %q", args[2])
		}
		change = &sampleChange{i, v}
	}
	out := edit.out
	if out == "" {
		out = args[0]
	}
	if err := editFile(fileOptions(), args[0], out, edit.format, change); err != nil {
		log.Fatal(err)
	}
}

// A sampleChange sets the value of point Index.
type sampleChange struct {
	Index int
	Value float64
}

// editFile reads the series in file in, applies change (if not nil)
// and the -title, -xlabel, and -ylabel flags, and writes the result to
// file out. An empty format keeps the format of in.
func editFile(opts seriesfile.Options, in, out, format string, change *sampleChange) error {
	a, f, err := readSeriesFormat(opts, in)
	if err != nil {
		return err
	}
	if format != "" {
		if f, err = seriesfile.ParseFormat(format); err != nil {
			return err
		}
	}
	if change != nil {
		if err := a.EditSample(change.Index, change.Value); err != nil {
			return err
		}
	}
	if edit.title != "" {
		a.Title = edit.title
	}
	if edit.xlabel != "" {
		a.XLabel = edit.xlabel
	}
	if edit.ylabel != "" {
		a.YLabel = edit.ylabel
	}
	return writeSeries(opts, out, a, f)
}

func cmdConvert() {
	if cmdConvertFlags.NArg() != 2 {
		cmdConvertFlags.Usage()
		os.Exit(2)
	}
	format := parseFormat(convert.to)

	in := fileOptions()
	a, err := readSeries(in, cmdConvertFlags.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	out := in
	switch convert.decimal {
	case "":
	case ".", ",":
		out.Decimal = rune(convert.decimal[0])
	default:
		log.Fatalf("decimal separator must be '.' or ',', not %q", convert.decimal)
	}
	if err := writeSeries(out, cmdConvertFlags.Arg(1), a, format); err != nil {
		log.Fatal(err)
	}
}
