// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"math"

	"github.com/aclements/go-moremath/stats"
)

// FixedCriticalValue is the two-sided 95% Student's t critical value
// for 100 samples. The default estimator applies it regardless of the
// actual sample count, which overstates confidence for small samples.
// Use StudentCritical for a value that depends on the sample count.
const FixedCriticalValue = 1.9840

// A CriticalFunc returns the critical value used to widen the standard
// error of an n-sample mean into a confidence half-width.
type CriticalFunc func(n int) float64

// FixedCritical always returns FixedCriticalValue.
func FixedCritical(n int) float64 {
	return FixedCriticalValue
}

// StudentCritical returns a CriticalFunc that computes the two-sided
// critical value of Student's t distribution with n-1 degrees of
// freedom at the given confidence level (e.g., 0.95).
func StudentCritical(confidence float64) CriticalFunc {
	return func(n int) float64 {
		dist := stats.TDist{V: float64(n - 1)}
		return stats.InvCDF(dist)(1 - (1-confidence)/2)
	}
}

// Interval is a confidence interval around the mean of a sample set.
type Interval struct {
	N    int
	Mean float64

	// StdErr is the standard error of the mean,
	// sqrt(Σ(Mean-x)² / (N*(N-1))).
	StdErr float64

	// Critical is the critical value applied to StdErr.
	Critical float64

	// Trusted is the confidence half-width, StdErr*Critical.
	Trusted float64
}

// Lower and Upper return the bounds of the interval.
func (iv Interval) Lower() float64 { return iv.Mean - iv.Trusted }
func (iv Interval) Upper() float64 { return iv.Mean + iv.Trusted }

// RelativeErrorPercent returns |Trusted/Mean|*100. It is 0 if Trusted
// is 0 (even for a zero mean) and +Inf if only Mean is 0.
func (iv Interval) RelativeErrorPercent() float64 {
	if iv.Trusted == 0 {
		return 0
	}
	return math.Abs(iv.Trusted/iv.Mean) * 100
}

// An Estimator computes confidence intervals of sample means.
//
// The zero Estimator uses FixedCritical.
type Estimator struct {
	Critical CriticalFunc
}

// Estimate computes the confidence interval of the mean of xs. It
// returns a *SampleSizeError if xs has fewer than two samples.
func (e Estimator) Estimate(xs []float64) (Interval, error) {
	n := len(xs)
	if n < 2 {
		return Interval{}, &SampleSizeError{N: n, Need: 2}
	}

	mean := stats.Mean(xs)
	ss := 0.0
	for _, x := range xs {
		ss += (mean - x) * (mean - x)
	}
	stderr := math.Sqrt(ss / float64(n*(n-1)))

	crit := e.Critical
	if crit == nil {
		crit = FixedCritical
	}
	t := crit(n)

	return Interval{
		N:        n,
		Mean:     mean,
		StdErr:   stderr,
		Critical: t,
		Trusted:  stderr * t,
	}, nil
}

// Estimate computes the confidence interval of the mean of xs using
// FixedCriticalValue.
func Estimate(xs []float64) (Interval, error) {
	return Estimator{}.Estimate(xs)
}
