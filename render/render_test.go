// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"bytes"
	"image/png"
	"io"
	"math/rand"
	"testing"

	"github.com/datspike/graph-editor/generate"
	"github.com/datspike/graph-editor/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generated(t *testing.T, f generate.Family) *series.Aggregate {
	g := &generate.Generator{Rand: rand.New(rand.NewSource(3))}
	a, err := g.Generate(f, 30, 20)
	require.NoError(t, err)
	return a
}

type drawFunc func(io.Writer, *series.Aggregate, int, int) error

func TestSVG(t *testing.T) {
	for _, f := range []generate.Family{generate.Sine, generate.Repeated} {
		a := generated(t, f)
		a.Title = "svg title"
		draws := map[string]drawFunc{"SVG": SVG}
		if a.Repeated() {
			draws["HistogramSVG"] = HistogramSVG
		}
		for name, draw := range draws {
			var buf bytes.Buffer
			require.NoError(t, draw(&buf, a, 400, 300), "%s of %v", name, f)
			assert.Contains(t, buf.String(), "<svg", "%s of %v", name, f)
			assert.Contains(t, buf.String(), "svg title", "%s of %v", name, f)
		}
	}
}

func TestPNG(t *testing.T) {
	for _, f := range []generate.Family{generate.Line, generate.Repeated} {
		a := generated(t, f)
		draws := map[string]drawFunc{"PNG": PNG}
		if a.Repeated() {
			draws["HistogramPNG"] = HistogramPNG
		}
		for name, draw := range draws {
			var buf bytes.Buffer
			require.NoError(t, draw(&buf, a, 320, 240), "%s of %v", name, f)
			img, err := png.Decode(&buf)
			require.NoError(t, err, "%s of %v", name, f)
			assert.Equal(t, 320, img.Bounds().Dx())
			assert.Equal(t, 240, img.Bounds().Dy())
		}
	}
}

func TestPNGFlat(t *testing.T) {
	// Constant values still get a drawable range.
	a := series.New()
	require.NoError(t, a.AppendValue(1, 5))
	require.NoError(t, a.AppendValue(2, 5))
	require.NoError(t, PNG(io.Discard, a, 200, 150))
}

func TestEmpty(t *testing.T) {
	a := series.New()
	for name, draw := range map[string]drawFunc{
		"SVG":          SVG,
		"HistogramSVG": HistogramSVG,
		"PNG":          PNG,
		"HistogramPNG": HistogramPNG,
	} {
		assert.ErrorIs(t, draw(io.Discard, a, 100, 100), ErrEmpty, name)
	}

	// Single-sample series have no histogram.
	require.NoError(t, a.AppendValue(1, 1))
	assert.ErrorIs(t, HistogramSVG(io.Discard, a, 100, 100), ErrEmpty)
	assert.ErrorIs(t, HistogramPNG(io.Discard, a, 100, 100), ErrEmpty)
}
