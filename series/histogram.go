// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import "github.com/aclements/go-moremath/stats"

// NumBins is the number of equal-width bins in a Histogram.
const NumBins = 10

// Histogram is an equal-width histogram of a sample set spanning
// [Min, Max].
//
// Bin i covers (Min+i*Width, Min+(i+1)*Width]. Bin 0 additionally
// holds samples exactly equal to Min, so the smallest sample is never
// lost. The upper edge of the last bin is Max itself rather than
// Min+NumBins*Width so rounding cannot drop the largest sample.
//
// If all samples are equal, Width is 0 and every sample lands in bin 0
// through the Min rule.
//
// A sample equal to Min fails bin 0's open lower bound, so the Min rule
// counts it exactly once: bin 0 of 1, 2, ..., 10 holds one sample, not
// two, and P always sums to 1 up to rounding. No (N+extra)/N excess
// mass is produced. Ending the last bin at Max instead of at
// Min+NumBins*Width only differs from the literal edge when that sum
// rounds below Max.
type Histogram struct {
	Min, Max float64
	Width    float64

	// N is the number of samples summarized.
	N int

	// Counts and P give the number of samples in each bin and
	// that count divided by N.
	Counts [NumBins]int
	P      [NumBins]float64
}

// Summarize bins xs into a Histogram. xs must be non-empty and
// finite; NaN and infinite values are not handled.
func Summarize(xs []float64) (*Histogram, error) {
	if len(xs) == 0 {
		return nil, ErrNoSamples
	}

	min, max := stats.Bounds(xs)
	h := &Histogram{Min: min, Max: max, N: len(xs)}
	h.Width = (max - min) / NumBins

	for _, x := range xs {
		if i := h.bin(x); i >= 0 {
			h.Counts[i]++
		}
	}
	for i, c := range h.Counts {
		h.P[i] = float64(c) / float64(h.N)
	}
	return h, nil
}

// bin returns the index of the bin holding x, or -1 if x lies outside
// the histogram.
func (h *Histogram) bin(x float64) int {
	if x == h.Min {
		return 0
	}
	for i := 0; i < NumBins; i++ {
		lo, hi := h.edge(i), h.edge(i+1)
		if x > lo && x <= hi {
			return i
		}
	}
	return -1
}

// edge returns the lower edge of bin i (or the upper edge of bin i-1).
func (h *Histogram) edge(i int) float64 {
	if i == NumBins {
		return h.Max
	}
	return h.Min + float64(i)*h.Width
}

// Center returns the midpoint of bin i.
func (h *Histogram) Center(i int) float64 {
	return h.Min + float64(i)*h.Width + h.Width/2
}

// Expectation returns the histogram-weighted estimate of the sample
// set's central tendency, the sum over bins of Center(i)*P[i].
func (h *Histogram) Expectation() float64 {
	e := 0.0
	for i, p := range h.P {
		e += h.Center(i) * p
	}
	return e
}

// Sum returns the total probability mass of h. This is 1 up to
// rounding.
func (h *Histogram) Sum() float64 {
	s := 0.0
	for _, p := range h.P {
		s += p
	}
	return s
}

// Series returns h as parallel bin index and bin probability slices,
// the form an Aggregate retains as its current histogram.
func (h *Histogram) Series() (xs, ps []float64) {
	xs = make([]float64, NumBins)
	ps = make([]float64, NumBins)
	for i := range xs {
		xs[i] = float64(i)
		ps[i] = h.P[i]
	}
	return xs, ps
}
