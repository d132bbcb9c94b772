// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateConstant(t *testing.T) {
	iv, err := Estimate([]float64{10, 10, 10, 10, 10})
	require.NoError(t, err)
	assert.Equal(t, 5, iv.N)
	assert.Equal(t, 10.0, iv.Mean)
	assert.Equal(t, 0.0, iv.StdErr)
	assert.Equal(t, 0.0, iv.Trusted)
	assert.Equal(t, 0.0, iv.RelativeErrorPercent())
	assert.Equal(t, FixedCriticalValue, iv.Critical)
}

func TestEstimateKnown(t *testing.T) {
	// Mean 2.5, Σ(mean-x)² = 5, N(N-1) = 12.
	iv, err := Estimate([]float64{1, 2, 3, 4})
	require.NoError(t, err)
	se := math.Sqrt(5.0 / 12)
	assert.InDelta(t, 2.5, iv.Mean, 1e-12)
	assert.InDelta(t, se, iv.StdErr, 1e-12)
	assert.InDelta(t, se*1.9840, iv.Trusted, 1e-12)
	assert.InDelta(t, se*1.9840/2.5*100, iv.RelativeErrorPercent(), 1e-9)
	assert.InDelta(t, 2.5-iv.Trusted, iv.Lower(), 1e-12)
	assert.InDelta(t, 2.5+iv.Trusted, iv.Upper(), 1e-12)
}

func TestEstimateInsufficient(t *testing.T) {
	for _, xs := range [][]float64{nil, {1}} {
		_, err := Estimate(xs)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInsufficientSamples)

		var se *SampleSizeError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, len(xs), se.N)
		assert.Equal(t, 2, se.Need)
	}
}

func TestEstimateNonNegative(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for iter := 0; iter < 100; iter++ {
		xs := make([]float64, 2+r.Intn(200))
		for i := range xs {
			xs[i] = r.NormFloat64()*r.Float64()*10 + 3
		}
		iv, err := Estimate(xs)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, iv.Trusted, 0.0)
	}
}

func TestStudentCritical(t *testing.T) {
	crit := StudentCritical(0.95)
	for _, test := range []struct {
		n    int
		want float64
	}{
		{2, 12.706},
		{10, 2.262},
		{100, 1.984},
	} {
		assert.InDelta(t, test.want, crit(test.n), 1e-3, "n=%d", test.n)
	}

	e := Estimator{Critical: crit}
	iv, err := e.Estimate([]float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.InDelta(t, 3.182, iv.Critical, 1e-3)
	assert.InDelta(t, iv.StdErr*iv.Critical, iv.Trusted, 1e-12)
}

func TestRelativeErrorZeroMean(t *testing.T) {
	iv := Interval{Mean: 0, Trusted: 1}
	assert.True(t, math.IsInf(iv.RelativeErrorPercent(), 1))
}
