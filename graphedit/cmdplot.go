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

var cmdPlotFlags = flag.NewFlagSet(os.Args[0]+" plot", flag.ExitOnError)

var plot struct {
	hist          bool
	width, height int
}

func init() {
	f := cmdPlotFlags
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s plot [flags] <in> <out.svg|out.png>\n", os.Args[0])
		f.PrintDefaults()
	}
	f.BoolVar(&plot.hist, "hist", false, "plot the histogram of the last point instead of the series")
	f.IntVar(&plot.width, "width", defaultWidth, "image width in `pixels`")
	f.IntVar(&plot.height, "height", defaultHeight, "image height in `pixels`")
	registerSubcommand("plot", "[flags] <in> <out> - draw a series as SVG or PNG", cmdPlot, f)
}

func cmdPlot() {
	if cmdPlotFlags.NArg() != 2 {
		cmdPlotFlags.Usage()
		os.Exit(2)
	}
	a, err := readSeries(fileOptions(), cmdPlotFlags.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	if err := drawFile(cmdPlotFlags.Arg(1), a, plot.hist, plot.width, plot.height); err != nil {
		log.Fatal(err)
	}
}
