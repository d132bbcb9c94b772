// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSamples is returned when summarizing an empty sample set.
	ErrNoSamples = errors.New("no samples")

	// ErrInsufficientSamples is returned (wrapped in a
	// *SampleSizeError) when a sample set is too small to estimate
	// an interval.
	ErrInsufficientSamples = errors.New("insufficient samples for interval estimation")

	// ErrSeriesPresent is returned when building or loading into an
	// aggregate that already holds a plotted series. Clear it first.
	ErrSeriesPresent = errors.New("series already present")

	// ErrSingleSample is returned by operations that need repeated
	// samples when applied to a single-sample series.
	ErrSingleSample = errors.New("series has one sample per point")

	// ErrRepeated is returned by operations that need a
	// single-sample series when applied to a repeated series.
	ErrRepeated = errors.New("series has repeated samples per point")
)

// SampleSizeError reports a sample set with fewer than Need samples.
type SampleSizeError struct {
	N, Need int
}

func (e *SampleSizeError) Error() string {
	return fmt.Sprintf("%s: have %d, need at least %d", ErrInsufficientSamples, e.N, e.Need)
}

func (e *SampleSizeError) Unwrap() error {
	return ErrInsufficientSamples
}

// IndexError reports an out-of-range point index.
type IndexError struct {
	Index, Len int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("point index %d out of range [0,%d)", e.Index, e.Len)
}
