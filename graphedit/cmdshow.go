// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
)

var cmdShowFlags = flag.NewFlagSet(os.Args[0]+" show", flag.ExitOnError)

var cmdHistFlags = flag.NewFlagSet(os.Args[0]+" hist", flag.ExitOnError)

var hist struct {
	point int
}

func init() {
	f := cmdShowFlags
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s show <file>...\n", os.Args[0])
		f.PrintDefaults()
	}
	registerSubcommand("show", "<file>... - print a summary of each series", cmdShow, f)

	f = cmdHistFlags
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s hist [flags] <file>\n", os.Args[0])
		f.PrintDefaults()
	}
	f.IntVar(&hist.point, "point", -1, "print the histogram of point `i` (negative counts from the end)")
	registerSubcommand("hist", "[flags] <file> - print the histogram of a point", cmdHist, f)
}

func cmdShow() {
	if cmdShowFlags.NArg() < 1 {
		cmdShowFlags.Usage()
		os.Exit(2)
	}
	opts := fileOptions()
	for i, path := range cmdShowFlags.Args() {
		a, err := readSeries(opts, path)
		if err != nil {
			log.Fatal(err)
		}
		if i > 0 {
			fmt.Println()
		}
		if err := writeSummary(os.Stdout, a); err != nil {
			log.Fatal(err)
		}
	}
}

func cmdHist() {
	if cmdHistFlags.NArg() != 1 {
		cmdHistFlags.Usage()
		os.Exit(2)
	}
	a, err := readSeries(fileOptions(), cmdHistFlags.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	h, err := pointHistogram(a, hist.point)
	if err != nil {
		log.Fatal(err)
	}
	if err := writeHistogram(os.Stdout, h); err != nil {
		log.Fatal(err)
	}
}
