// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render draws series and their histograms.
//
// SVG output is produced with go-gg and PNG output with go-chart.
// Repeated series are drawn as their means with the Min/Max band
// around them; single-sample series as their values.
package render

import (
	"errors"
	"image/color"
	"io"
	"strconv"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
	"github.com/datspike/graph-editor/series"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrEmpty is returned when there is nothing to draw.
var ErrEmpty = errors.New("nothing to draw")

// Axis labels of histogram plots.
const (
	binLabel         = "bin"
	probabilityLabel = "probability"
)

// SVG draws a as an SVG image of the given size.
func SVG(w io.Writer, a *series.Aggregate, width, height int) error {
	if a.Len() == 0 {
		return ErrEmpty
	}

	tb := new(table.Builder).Add("x", a.X).Add("y", a.Values())
	if a.Repeated() {
		tb = tb.Add("min", a.Min).Add("max", a.Max)
	}
	p := gg.NewPlot(tb.Done())

	if a.Repeated() {
		p.Add(gg.LayerArea{
			X:     "x",
			Upper: "max",
			Lower: "min",
			Fill:  p.Const(color.Gray{192}),
		})
	}
	p.Add(gg.LayerLines{X: "x", Y: "y"})
	p.Add(gg.LayerPoints{X: "x", Y: "y"})

	p.Add(gg.Title(a.Title), gg.AxisLabel("x", a.XLabel), gg.AxisLabel("y", a.YLabel))
	return p.WriteSVG(w, width, height)
}

// HistogramSVG draws the current histogram of a (HistX and HistY) as
// an SVG image of the given size.
func HistogramSVG(w io.Writer, a *series.Aggregate, width, height int) error {
	if len(a.HistY) == 0 {
		return ErrEmpty
	}

	tab := new(table.Builder).Add(binLabel, a.HistX).Add(probabilityLabel, a.HistY).Done()
	p := gg.NewPlot(tab)
	p.SetScale("y", gg.NewLinearScaler().Include(0))
	p.Add(gg.LayerSteps{
		LayerPaths: gg.LayerPaths{X: binLabel, Y: probabilityLabel},
		Step:       gg.StepHMid,
	})
	p.Add(gg.LayerPoints{X: binLabel, Y: probabilityLabel})
	p.Add(gg.Title(a.Title))
	return p.WriteSVG(w, width, height)
}

// PNG draws a as a PNG image of the given size.
func PNG(w io.Writer, a *series.Aggregate, width, height int) error {
	if a.Len() == 0 {
		return ErrEmpty
	}

	values := chart.ContinuousSeries{
		Name:    a.YLabel,
		XValues: a.X,
		YValues: a.Values(),
		Style: chart.Style{
			StrokeWidth: 1,
			StrokeColor: chart.ColorGreen,
			DotWidth:    3,
			DotColor:    chart.ColorBlue,
		},
	}
	ys := a.Values()
	list := []chart.Series{values}
	if a.Repeated() {
		list = append(list,
			boundSeries("min", a.X, a.Min),
			boundSeries("max", a.X, a.Max),
		)
		ys = append(append(append([]float64(nil), ys...), a.Min...), a.Max...)
	}

	ch := chart.Chart{
		Title:      a.Title,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      chart.XAxis{Name: a.XLabel, Range: paddedRange(a.X)},
		YAxis:      chart.YAxis{Name: a.YLabel, Range: paddedRange(ys)},
		Series:     list,
	}
	if a.Repeated() {
		ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	}
	return ch.Render(chart.PNG, w)
}

func boundSeries(name string, xs, ys []float64) chart.ContinuousSeries {
	return chart.ContinuousSeries{
		Name:    name,
		XValues: xs,
		YValues: ys,
		Style: chart.Style{
			StrokeWidth:     1,
			StrokeColor:     chart.ColorAlternateGray,
			StrokeDashArray: []float64{5, 5},
		},
	}
}

// paddedRange returns the range of xs, widened if it is empty so
// go-chart can scale it.
func paddedRange(xs []float64) *chart.ContinuousRange {
	lo, hi := stats.Bounds(xs)
	if lo == hi {
		lo, hi = lo-1, hi+1
	}
	return &chart.ContinuousRange{Min: lo, Max: hi}
}

// HistogramPNG draws the current histogram of a as a PNG bar chart of
// the given size.
func HistogramPNG(w io.Writer, a *series.Aggregate, width, height int) error {
	if len(a.HistY) == 0 {
		return ErrEmpty
	}

	bars := make([]chart.Value, len(a.HistY))
	for i, p := range a.HistY {
		bars[i] = chart.Value{
			Label: strconv.Itoa(int(a.HistX[i])),
			Value: p,
			Style: chart.Style{
				FillColor:   drawing.ColorFromHex("4a90d9"),
				StrokeColor: chart.ColorBlue,
				StrokeWidth: 1,
			},
		}
	}
	ch := chart.BarChart{
		Title:      a.Title,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		YAxis:      chart.YAxis{Name: probabilityLabel, Range: &chart.ContinuousRange{Min: 0, Max: 1}},
		Bars:       bars,
	}
	return ch.Render(chart.PNG, w)
}
