// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/datspike/graph-editor/generate"
	"github.com/datspike/graph-editor/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSession(seed int64) (*session, *bytes.Buffer) {
	var out bytes.Buffer
	s := newSession(&out)
	s.gen = &generate.Generator{Rand: rand.New(rand.NewSource(seed))}
	return s, &out
}

func script(lines ...string) *strings.Reader {
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

func TestShellSingle(t *testing.T) {
	dir := t.TempDir()
	saved := filepath.Join(dir, "sine.csv")

	s, out := testSession(1)
	require.NoError(t, s.run(script(
		"gen sine 20",
		"gen sine 20",
		`title "My graph"`,
		"xlabel time, s",
		"edit 3 42",
		"save "+saved,
		"clear",
		"title",
		"load "+saved,
		"show",
	), false))

	text := out.String()
	assert.Contains(t, text, "generated 20 points")
	assert.Contains(t, text, "error: "+series.ErrSeriesPresent.Error()+"; clear it first")
	assert.Contains(t, text, series.DefaultTitle+"\n")
	assert.Contains(t, text, "loaded 20 points")
	assert.Contains(t, text, "My graph\nx: time, s, y: "+series.DefaultYLabel+"\n20 points\n")

	assert.True(t, s.a.Plotted())
	assert.Equal(t, "My graph", s.a.Title)
	assert.Equal(t, "time, s", s.a.XLabel)
	require.Equal(t, 20, s.a.Len())
	assert.Equal(t, 42.0, s.a.Y[3])
}

func TestShellRepeated(t *testing.T) {
	dir := t.TempDir()

	s, out := testSession(2)
	require.NoError(t, s.run(script(
		"gen repeated 12 6",
		"hist",
		"hist 0",
		"edit 0 1",
		"plot "+filepath.Join(dir, "series.svg"),
		"plot -hist "+filepath.Join(dir, "hist.png"),
		"save "+filepath.Join(dir, "legacy.json")+" legacy",
		"quit",
		"show",
	), false))

	text := out.String()
	assert.Contains(t, text, "generated 12 points")
	assert.Equal(t, 2, strings.Count(text, "expectation "), text)
	assert.Contains(t, text, "error: "+series.ErrRepeated.Error())
	assert.NotContains(t, text, "repeated samples\n", "show ran after quit")

	for _, name := range []string{"series.svg", "hist.png"} {
		fi, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.NotZero(t, fi.Size(), name)
	}
	_, err := os.Stat(filepath.Join(dir, "legacy.json"))
	assert.True(t, os.IsNotExist(err), "failed save left a file")
}

func TestShellErrors(t *testing.T) {
	s, out := testSession(3)
	for _, test := range []struct {
		line, want string
	}{
		{"frob", `unknown command "frob"`},
		{`title "unterminated`, "error: "},
		{"edit 0 1", (&series.IndexError{Index: 0, Len: 0}).Error()},
		{"edit x 1", "usage: edit <index> <value>"},
		{"gen", "usage: gen <family> [n [reps]]"},
		{"gen spiral", `unknown family "spiral"`},
		{"gen repeated 5 1", series.ErrInsufficientSamples.Error()},
		{"gen repeated 5 -1", series.ErrInsufficientSamples.Error()},
		{"critical 2", "not in (0, 1)"},
		{"critical high", "usage: critical [fixed | level]"},
		{"hist", series.ErrSingleSample.Error()},
		{"load /nonexistent/series.csv", "error: "},
		{"save a b c", "usage: save <file> [format]"},
	} {
		out.Reset()
		require.NoError(t, s.run(script(test.line), false))
		assert.Contains(t, out.String(), test.want, test.line)
	}
	assert.False(t, s.a.Plotted())
}

func TestShellCritical(t *testing.T) {
	s, out := testSession(5)
	require.NoError(t, s.run(script("critical"), false))
	assert.Equal(t, "fixed 1.984\n", out.String())

	checkIntervals := func(est series.Estimator) {
		t.Helper()
		for i, xs := range s.a.Samples {
			iv, err := est.Estimate(xs)
			require.NoError(t, err)
			assert.InDelta(t, iv.Trusted, s.a.Interval[i], 1e-12, "point %d", i)
			assert.InDelta(t, s.a.Mean[i]-iv.Trusted, s.a.Min[i], 1e-12, "point %d", i)
		}
	}
	tdist := series.Estimator{Critical: series.StudentCritical(0.95)}

	out.Reset()
	require.NoError(t, s.run(script("gen repeated 6 5", "critical 0.95", "critical"), false))
	assert.NotContains(t, out.String(), "error:")
	assert.Contains(t, out.String(), "student 0.95\n")
	checkIntervals(tdist)

	// Loading recomputes with the session's critical value.
	path := filepath.Join(t.TempDir(), "rep.csv")
	out.Reset()
	require.NoError(t, s.run(script("save "+path, "clear", "load "+path), false))
	assert.NotContains(t, out.String(), "error:")
	checkIntervals(tdist)

	// A rejected level keeps the current one.
	out.Reset()
	require.NoError(t, s.run(script("critical 1", "critical"), false))
	assert.Contains(t, out.String(), "student 0.95\n")
	checkIntervals(tdist)

	out.Reset()
	require.NoError(t, s.run(script("critical fixed", "critical"), false))
	assert.Equal(t, "fixed 1.984\n", out.String())
	checkIntervals(series.Estimator{})
}

func TestCriticalEstimator(t *testing.T) {
	est, err := criticalEstimator(0)
	require.NoError(t, err)
	assert.Nil(t, est.Critical)

	est, err = criticalEstimator(0.99)
	require.NoError(t, err)
	require.NotNil(t, est.Critical)
	assert.InDelta(t, series.StudentCritical(0.99)(10), est.Critical(10), 1e-12)

	for _, level := range []float64{-0.5, 1, 95} {
		_, err := criticalEstimator(level)
		assert.Error(t, err, "level %v", level)
	}
}

func TestShellHelpAndBlank(t *testing.T) {
	s, out := testSession(4)
	require.NoError(t, s.run(script("", "# comment", "help"), true))
	text := out.String()
	for name := range shellCommands {
		assert.Contains(t, text, "  "+name+" ")
	}
	assert.True(t, strings.HasPrefix(text, "> > > "), text)
	assert.True(t, strings.HasSuffix(text, "> \n"), text)
	assert.NotContains(t, text, "error:")
}

func TestWriteSummary(t *testing.T) {
	a := series.New()
	a.Title = "T"
	require.NoError(t, a.AppendPoint(1, []float64{10, 10, 10}))
	require.NoError(t, a.AppendPoint(2, []float64{1, 2, 3, 4}))

	var buf bytes.Buffer
	require.NoError(t, writeSummary(&buf, a))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "T", lines[0])
	assert.Equal(t, "2 points, repeated samples", lines[2])
	assert.Equal(t, []string{"i", "x", "n", "mean", "±", "err%"}, strings.Fields(lines[4]))
	assert.Equal(t, []string{"0", "1", "3", "10", "0", "0.00"}, strings.Fields(lines[5]))
	assert.Equal(t, "1", strings.Fields(lines[6])[0])

	buf.Reset()
	require.NoError(t, writeSummary(&buf, series.New()))
	assert.True(t, strings.HasSuffix(buf.String(), "no points\n"))
}

func TestWriteHistogram(t *testing.T) {
	h, err := series.Summarize([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, writeHistogram(&buf, h))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, series.NumBins+2)
	assert.Equal(t, []string{"0", "1.45", "1", "0.100"}, strings.Fields(lines[1]))
	assert.Equal(t, "expectation 5.5 of 10 samples in [1, 10]", lines[series.NumBins+1])
}
