// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/datspike/graph-editor/series"
)

// writeSummary prints the labels of a and one row per point. Repeated
// series show each point's mean, trusted interval, and relative error.
func writeSummary(w io.Writer, a *series.Aggregate) error {
	fmt.Fprintf(w, "%s\n", a.Title)
	fmt.Fprintf(w, "x: %s, y: %s\n", a.XLabel, a.YLabel)
	switch {
	case a.Len() == 0:
		fmt.Fprintf(w, "no points\n")
		return nil
	case a.Repeated():
		fmt.Fprintf(w, "%d points, repeated samples\n\n", a.Len())
	default:
		fmt.Fprintf(w, "%d points\n\n", a.Len())
	}

	tw := tabwriter.NewWriter(w, 1, 4, 2, ' ', tabwriter.AlignRight)
	if !a.Repeated() {
		fmt.Fprintf(tw, "i\tx\ty\t\n")
		for i, x := range a.X {
			fmt.Fprintf(tw, "%d\t%.6g\t%.6g\t\n", i, x, a.Y[i])
		}
		return tw.Flush()
	}

	fmt.Fprintf(tw, "i\tx\tn\tmean\t±\terr%%\t\n")
	for i, x := range a.X {
		iv := series.Interval{Mean: a.Mean[i], Trusted: a.Interval[i]}
		fmt.Fprintf(tw, "%d\t%.6g\t%d\t%.6g\t%.4g\t%.2f\t\n", i, x, len(a.Samples[i]), a.Mean[i], a.Interval[i], iv.RelativeErrorPercent())
	}
	return tw.Flush()
}

// writeHistogram prints the bins of h and its expectation.
func writeHistogram(w io.Writer, h *series.Histogram) error {
	tw := tabwriter.NewWriter(w, 1, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "bin\tcenter\tcount\tp\t\n")
	for i := range h.Counts {
		fmt.Fprintf(tw, "%d\t%.6g\t%d\t%.3f\t\n", i, h.Center(i), h.Counts[i], h.P[i])
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "expectation %.6g of %d samples in [%.6g, %.6g]\n", h.Expectation(), h.N, h.Min, h.Max)
	return err
}

// pointHistogram returns the histogram of point i of a, where a
// negative i counts back from the last point.
func pointHistogram(a *series.Aggregate, i int) (*series.Histogram, error) {
	if i < 0 {
		i += a.Len()
	}
	return a.PointHistogram(i)
}
