// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeUniform(t *testing.T) {
	h, err := Summarize([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	require.NoError(t, err)

	assert.Equal(t, 1.0, h.Min)
	assert.Equal(t, 10.0, h.Max)
	assert.InDelta(t, 0.9, h.Width, 1e-12)
	assert.Equal(t, 10, h.N)

	// Bin 0 is (1,1.9] plus the minimum itself, so it holds only
	// the 1. Every other integer falls in its own bin.
	for i, c := range h.Counts {
		assert.Equal(t, 1, c, "bin %d", i)
	}
	assert.InDelta(t, 1.0, h.Sum(), 1e-12)
	assert.InDelta(t, 5.5, h.Expectation(), 1e-9)
	assert.InDelta(t, 1.45, h.Center(0), 1e-12)
}

func TestSummarizeConstant(t *testing.T) {
	for _, xs := range [][]float64{
		{10, 10, 10, 10, 10},
		{-3.25},
	} {
		h, err := Summarize(xs)
		require.NoError(t, err)
		assert.Equal(t, 0.0, h.Width)
		assert.Equal(t, len(xs), h.Counts[0])
		assert.Equal(t, 1.0, h.P[0])
		for i := 1; i < NumBins; i++ {
			assert.Zero(t, h.Counts[i])
		}
		assert.Equal(t, xs[0], h.Expectation())
	}
}

func TestSummarizeBoundaries(t *testing.T) {
	// Width is 1. Values equal to a bin's upper edge belong to
	// that bin.
	h, err := Summarize([]float64{0, 1, 2, 2.5, 10})
	require.NoError(t, err)
	assert.Equal(t, [NumBins]int{2, 1, 1, 0, 0, 0, 0, 0, 0, 1}, h.Counts)
}

func TestSummarizeEmpty(t *testing.T) {
	_, err := Summarize(nil)
	assert.ErrorIs(t, err, ErrNoSamples)
}

func TestSummarizeSumsToOne(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for iter := 0; iter < 200; iter++ {
		xs := make([]float64, 1+r.Intn(300))
		scale := r.Float64() * 1000
		for i := range xs {
			xs[i] = (r.Float64() - 0.5) * scale
		}
		h, err := Summarize(xs)
		require.NoError(t, err)

		total := 0
		for _, c := range h.Counts {
			total += c
		}
		require.Equal(t, len(xs), total, "samples %v", xs)
		assert.InDelta(t, 1.0, h.Sum(), 1e-9)
		assert.GreaterOrEqual(t, h.Expectation(), h.Min)
		assert.LessOrEqual(t, h.Expectation(), h.Max)
	}
}

func TestHistogramSeries(t *testing.T) {
	h, err := Summarize([]float64{0, 10})
	require.NoError(t, err)
	xs, ps := h.Series()
	assert.Equal(t, []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, xs)
	assert.Equal(t, []float64{0.5, 0, 0, 0, 0, 0, 0, 0, 0, 0.5}, ps)
}
