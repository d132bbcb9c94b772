// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package series summarizes repeated noisy measurements.
//
// An Aggregate holds one series: a sequence of independent-variable
// points, each carrying either a single value or a set of repeated
// samples. Repeated samples are reduced to a point estimate by
// binning them into a 10-bin Histogram and to a confidence interval by
// an Estimator.
package series

// Default display labels of a new or cleared Aggregate.
const (
	DefaultTitle  = "Случайный график"
	DefaultXLabel = "Ось X"
	DefaultYLabel = "Ось Y"
)

// An Aggregate is one series of points and the statistics derived from
// them.
//
// A series is either single-sample (Y is set, one value per point) or
// repeated (Samples is set, several values per point). The two never
// mix in one Aggregate.
type Aggregate struct {
	Title, XLabel, YLabel string

	// X is the independent-variable value of each point.
	X []float64

	// Y is the value of each point of a single-sample series.
	Y []float64

	// Samples holds the raw samples of each point of a repeated
	// series. Mean, Min, Max, and Interval are derived from it:
	// Mean[i] is the histogram expectation of Samples[i],
	// Interval[i] is its trusted interval, and Min[i] and Max[i]
	// are Mean[i]∓Interval[i].
	Samples                  [][]float64
	Mean, Min, Max, Interval []float64

	// HistX and HistY are the bin indexes and bin probabilities of
	// the sample set summarized most recently. There is only one
	// such histogram per Aggregate; see PointHistogram for the
	// histogram of an arbitrary point.
	HistX, HistY []float64

	// Estimator computes intervals for repeated points.
	Estimator Estimator

	plotted bool
}

// New returns an empty Aggregate with the default labels.
func New() *Aggregate {
	return &Aggregate{
		Title:  DefaultTitle,
		XLabel: DefaultXLabel,
		YLabel: DefaultYLabel,
	}
}

// Len returns the number of points in a.
func (a *Aggregate) Len() int {
	return len(a.X)
}

// Repeated reports whether a holds repeated samples per point.
func (a *Aggregate) Repeated() bool {
	return len(a.Samples) > 0
}

// Values returns the displayed value of each point: Mean for a
// repeated series and Y otherwise.
func (a *Aggregate) Values() []float64 {
	if a.Repeated() {
		return a.Mean
	}
	return a.Y
}

// summary is the derived state of one repeated point.
type summary struct {
	hist *Histogram
	iv   Interval
}

func (a *Aggregate) summarize(xs []float64) (summary, error) {
	iv, err := a.Estimator.Estimate(xs)
	if err != nil {
		return summary{}, err
	}
	h, err := Summarize(xs)
	if err != nil {
		return summary{}, err
	}
	return summary{h, iv}, nil
}

// AppendPoint adds a point at x with the given repeated samples.
//
// It computes the new point's Mean, Min, Max, and Interval and
// replaces HistX and HistY with the histogram of samples. Other
// points are left as they are. a is unchanged if it returns an error.
func (a *Aggregate) AppendPoint(x float64, samples []float64) error {
	if len(a.Y) > 0 {
		return ErrSingleSample
	}
	s, err := a.summarize(samples)
	if err != nil {
		return err
	}

	a.X = append(a.X, x)
	a.Samples = append(a.Samples, append([]float64(nil), samples...))
	mean := s.hist.Expectation()
	a.Mean = append(a.Mean, mean)
	a.Min = append(a.Min, mean-s.iv.Trusted)
	a.Max = append(a.Max, mean+s.iv.Trusted)
	a.Interval = append(a.Interval, s.iv.Trusted)
	a.HistX, a.HistY = s.hist.Series()
	return nil
}

// AppendValue adds a point at x with the single value y. No derived
// fields are refreshed.
func (a *Aggregate) AppendValue(x, y float64) error {
	if a.Repeated() {
		return ErrRepeated
	}
	a.X = append(a.X, x)
	a.Y = append(a.Y, y)
	return nil
}

// EditSample overwrites the value of point i of a single-sample
// series. Repeated series have no single value to edit and return
// ErrRepeated. Nothing is recomputed.
func (a *Aggregate) EditSample(i int, v float64) error {
	if a.Repeated() {
		return ErrRepeated
	}
	if i < 0 || i >= len(a.Y) {
		return &IndexError{Index: i, Len: len(a.Y)}
	}
	a.Y[i] = v
	return nil
}

// Recompute refreshes Mean, Min, Max, and Interval of every point from
// Samples. Afterwards HistX and HistY describe the last point. It does
// nothing for a single-sample series. a is unchanged if it returns an
// error.
func (a *Aggregate) Recompute() error {
	if !a.Repeated() {
		return nil
	}
	n := len(a.Samples)
	mean := make([]float64, n)
	min := make([]float64, n)
	max := make([]float64, n)
	interval := make([]float64, n)
	var last *Histogram
	for i, xs := range a.Samples {
		s, err := a.summarize(xs)
		if err != nil {
			return err
		}
		mean[i] = s.hist.Expectation()
		min[i] = mean[i] - s.iv.Trusted
		max[i] = mean[i] + s.iv.Trusted
		interval[i] = s.iv.Trusted
		last = s.hist
	}
	a.Mean, a.Min, a.Max, a.Interval = mean, min, max, interval
	a.HistX, a.HistY = last.Series()
	return nil
}

// PointHistogram returns the histogram of the samples of point i. It
// does not change HistX and HistY.
func (a *Aggregate) PointHistogram(i int) (*Histogram, error) {
	if !a.Repeated() {
		return nil, ErrSingleSample
	}
	if i < 0 || i >= len(a.Samples) {
		return nil, &IndexError{Index: i, Len: len(a.Samples)}
	}
	return Summarize(a.Samples[i])
}

// Clear removes all points and derived data, restores the default
// labels, and clears the plotted flag.
func (a *Aggregate) Clear() {
	*a = Aggregate{
		Title:     DefaultTitle,
		XLabel:    DefaultXLabel,
		YLabel:    DefaultYLabel,
		Estimator: a.Estimator,
	}
}

// MarkPlotted records that a holds a completed series. Building or
// loading into a is refused until it is cleared.
func (a *Aggregate) MarkPlotted() {
	a.plotted = true
}

// Plotted reports whether a holds a completed series.
func (a *Aggregate) Plotted() bool {
	return a.plotted
}

// Load replaces the contents of a with a copy of src and marks a
// plotted. It returns ErrSeriesPresent if a is already plotted.
//
// The Estimator of a is kept and a repeated series is recomputed with
// it, so the loaded intervals are those a's Estimator gives. As for
// Recompute, HistX and HistY then describe the last point. a is
// unchanged if Load returns an error.
func (a *Aggregate) Load(src *Aggregate) error {
	if a.plotted {
		return ErrSeriesPresent
	}
	b := src.Clone()
	b.Estimator = a.Estimator
	if err := b.Recompute(); err != nil {
		return err
	}
	b.plotted = true
	*a = *b
	return nil
}

// Clone returns a deep copy of a, including its plotted flag.
func (a *Aggregate) Clone() *Aggregate {
	b := *a
	b.X = cloneFloats(a.X)
	b.Y = cloneFloats(a.Y)
	if a.Samples != nil {
		b.Samples = make([][]float64, len(a.Samples))
		for i, xs := range a.Samples {
			b.Samples[i] = cloneFloats(xs)
		}
	}
	b.Mean = cloneFloats(a.Mean)
	b.Min = cloneFloats(a.Min)
	b.Max = cloneFloats(a.Max)
	b.Interval = cloneFloats(a.Interval)
	b.HistX = cloneFloats(a.HistX)
	b.HistY = cloneFloats(a.HistY)
	return &b
}

func cloneFloats(xs []float64) []float64 {
	if xs == nil {
		return nil
	}
	return append([]float64(nil), xs...)
}
