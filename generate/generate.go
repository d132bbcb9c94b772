// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package generate synthesizes noisy demo series.
//
// Each Family draws its shape coefficients at random, so two calls
// produce differently scaled and offset curves of the same shape.
package generate

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/aclements/go-moremath/stats"
	"github.com/datspike/graph-editor/series"
)

// NoiseStdDev is the standard deviation of the normal noise drawn by
// the Line and Repeated families.
const NoiseStdDev = 0.5

// ErrPointCount is returned when asked for fewer than one point.
var ErrPointCount = errors.New("point count must be positive")

// A Family selects the shape of a generated series.
type Family int

const (
	// Sine is a composite of nested sines and cosines with four
	// random coefficients.
	Sine Family = iota

	// Sqrt is sqrt(x), scaled and offset. Its x values are
	// non-negative and increasing.
	Sqrt

	// Power is x², scaled and offset.
	Power

	// Line is pure noise around a random level at x = 0, 1, 2, ...
	// It has no underlying function and calibrates the noise.
	Line

	// Repeated is like Line, but draws several samples at each
	// point, producing a repeated series with intervals.
	Repeated
)

var familyNames = [...]string{"sine", "sqrt", "power", "line", "repeated"}

func (f Family) String() string {
	if f < 0 || int(f) >= len(familyNames) {
		return fmt.Sprintf("Family(%d)", int(f))
	}
	return familyNames[f]
}

// Families returns every Family in declaration order.
func Families() []Family {
	fs := make([]Family, len(familyNames))
	for i := range fs {
		fs[i] = Family(i)
	}
	return fs
}

// ParseFamily returns the Family whose String is name.
func ParseFamily(name string) (Family, error) {
	for i, n := range familyNames {
		if n == name {
			return Family(i), nil
		}
	}
	return 0, fmt.Errorf("unknown family %q", name)
}

// A Generator synthesizes series.
type Generator struct {
	// Rand is the source of randomness. If nil, the Generator
	// seeds one from the current time on first use.
	Rand *rand.Rand
}

func (g *Generator) rand() *rand.Rand {
	if g.Rand == nil {
		g.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return g.Rand
}

// unit returns a uniform value in [lo, hi).
func (g *Generator) unit(lo, hi float64) float64 {
	return lo + g.rand().Float64()*(hi-lo)
}

// Generate returns a fresh, unplotted series of n points of family f.
// reps is the number of samples per point and is used only by
// Repeated, which needs at least two.
func (g *Generator) Generate(f Family, n, reps int) (*series.Aggregate, error) {
	if n < 1 {
		return nil, ErrPointCount
	}
	if f == Repeated && reps < 2 {
		return nil, &series.SampleSizeError{N: reps, Need: 2}
	}
	a := series.New()

	switch f {
	case Sine:
		r1, r2 := g.unit(-1, 1), g.unit(-1, 1)
		r3, r4 := g.unit(-1, 1), g.unit(-1, 1)
		err := g.curve(a, n, 0.5, g.unit(-2, 2), func(x float64) float64 {
			return math.Sin(x*r1*5)*math.Sin(math.Cos(x*r2)*r4*3) + r3*math.Cos(math.Sin(x)*r4*2)
		})
		if err != nil {
			return nil, err
		}

	case Sqrt:
		if err := g.curve(a, n, 0, g.unit(0, 2), math.Sqrt); err != nil {
			return nil, err
		}

	case Power:
		err := g.curve(a, n, 0.5, g.unit(-2, 2), func(x float64) float64 { return x * x })
		if err != nil {
			return nil, err
		}

	case Line:
		noise := stats.NormalDist{Mu: g.unit(-5, 5), Sigma: NoiseStdDev}
		for i := 0; i < n; i++ {
			if err := a.AppendValue(float64(i), noise.Rand(g.rand())); err != nil {
				return nil, err
			}
		}

	case Repeated:
		xScale, xOffset := g.unit(1, 3), g.unit(-2, 2)
		noise := stats.NormalDist{Mu: g.unit(-5, 5), Sigma: NoiseStdDev}
		samples := make([]float64, reps)
		for i := 0; i < n; i++ {
			for j := range samples {
				samples[j] = noise.Rand(g.rand())
			}
			if err := a.AppendPoint(float64(i)*xScale+xOffset, samples); err != nil {
				return nil, err
			}
		}

	default:
		return nil, fmt.Errorf("unknown family %v", f)
	}
	return a, nil
}

// curve fills a with n single-sample points of fn. The x values span
// an interval of width 10*xScale placed so that the fraction center of
// it lies at xOffset; y is fn(x)*yScale+yOffset.
func (g *Generator) curve(a *series.Aggregate, n int, center, xOffset float64, fn func(float64) float64) error {
	xScale, yScale := g.unit(1, 3), g.unit(1, 3)
	yOffset := g.unit(-5, 5)
	for i := 0; i < n; i++ {
		x := (float64(i)/float64(n)-center)*10*xScale + xOffset
		if err := a.AppendValue(x, fn(x)*yScale+yOffset); err != nil {
			return err
		}
	}
	return nil
}

// Build generates a series into a and marks it plotted. It returns
// series.ErrSeriesPresent, without drawing anything, if a is already
// plotted.
func (g *Generator) Build(a *series.Aggregate, f Family, n, reps int) error {
	if a.Plotted() {
		return series.ErrSeriesPresent
	}
	b, err := g.Generate(f, n, reps)
	if err != nil {
		return err
	}
	b.Title, b.XLabel, b.YLabel = a.Title, a.XLabel, a.YLabel
	return a.Load(b)
}
