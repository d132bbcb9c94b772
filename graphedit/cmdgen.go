// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"

	"github.com/datspike/graph-editor/generate"
	"github.com/datspike/graph-editor/series"
)

var cmdGenFlags = flag.NewFlagSet(os.Args[0]+" gen", flag.ExitOnError)

var gen struct {
	family, format, out   string
	title, xlabel, ylabel string
	n, reps               int
	seed                  int64
}

func init() {
	f := cmdGenFlags
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s gen [flags]\n", os.Args[0])
		f.PrintDefaults()
	}
	names := []string{}
	for _, fam := range generate.Families() {
		names = append(names, fam.String())
	}
	f.StringVar(&gen.family, "family", generate.Sine.String(), "curve `family`: "+strings.Join(names, ", "))
	f.IntVar(&gen.n, "n", 100, "generate `n` points")
	f.IntVar(&gen.reps, "reps", 10, "draw `k` samples per point of a repeated series")
	f.Int64Var(&gen.seed, "seed", 0, "random `seed` (0 means seed from the clock)")
	f.StringVar(&gen.title, "title", series.DefaultTitle, "plot `title`")
	f.StringVar(&gen.xlabel, "xlabel", series.DefaultXLabel, "x-axis `label`")
	f.StringVar(&gen.ylabel, "ylabel", series.DefaultYLabel, "y-axis `label`")
	f.StringVar(&gen.format, "format", "delimited", "output `format`: delimited or legacy")
	f.StringVar(&gen.out, "o", "-", "write series to `file`")
	registerSubcommand("gen", "[flags] - generate a random series", cmdGen, f)
}

func cmdGen() {
	if cmdGenFlags.NArg() != 0 {
		cmdGenFlags.Usage()
		os.Exit(2)
	}
	family, err := generate.ParseFamily(gen.family)
	if err != nil {
		log.Fatal(err)
	}
	format := parseFormat(gen.format)

	g := new(generate.Generator)
	if gen.seed != 0 {
		g.Rand = rand.New(rand.NewSource(gen.seed))
	}
	a := series.New()
	a.Title, a.XLabel, a.YLabel = gen.title, gen.xlabel, gen.ylabel
	a.Estimator = estimator
	if err := g.Build(a, family, gen.n, gen.reps); err != nil {
		log.Fatal(err)
	}
	if err := writeSeries(fileOptions(), gen.out, a, format); err != nil {
		log.Fatal(err)
	}
}
