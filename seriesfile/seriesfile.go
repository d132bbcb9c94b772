// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package seriesfile reads and writes series files.
//
// Two formats are supported. The delimited format is semicolon
// separated UTF-8 text with a byte-order mark and decimal commas:
//
//	title;x-axis name;y-axis name;
//	x;0;1;2;mean;student
//	1,5;0,98;1,02;1,01;1,003;0,04
//	...
//
// Each data line holds the x value of one point, the raw samples of
// that point, and the point's mean and trusted interval. The trailing
// mean and interval are informational; they are recomputed from the
// samples on reading. A file whose last header column is a number has
// no such trailing columns. Single-sample series are written this way,
// with one sample column.
//
// The legacy format is a JSON object with string fields "title",
// "xaxisname" and "yaxisname" and number arrays "data_x" and "data_y".
// It holds single-sample series only.
package seriesfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/ioutil"

	"github.com/datspike/graph-editor/series"
)

// Format is a series file format.
type Format int

const (
	Delimited Format = iota
	Legacy
)

var formatNames = [...]string{"delimited", "legacy"}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// ParseFormat returns the Format whose String is name.
func ParseFormat(name string) (Format, error) {
	for i, n := range formatNames {
		if n == name {
			return Format(i), nil
		}
	}
	return 0, fmt.Errorf("unknown format %q", name)
}

// ErrMalformed is matched by every error reporting a file that cannot
// be decoded.
var ErrMalformed = errors.New("malformed series file")

// ParseError reports a decoding failure. Line is 1-based, or 0 if the
// position is unknown. errors.Is(err, ErrMalformed) holds for every
// ParseError; Err may additionally wrap a series error such as
// series.ErrInsufficientSamples.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: %v", ErrMalformed, e.Err)
	}
	return fmt.Sprintf("%s: line %d: %v", ErrMalformed, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == ErrMalformed
}

// Options control the delimited format.
type Options struct {
	// Decimal is the fractional separator of numbers. It must not
	// be ';'. If zero, it is ','.
	Decimal rune

	// BOM makes the writer emit a UTF-8 byte-order mark. Readers
	// accept files with or without one.
	BOM bool

	// Estimator computes the intervals of repeated series read with
	// these Options and becomes the Estimator of the returned
	// Aggregate.
	Estimator series.Estimator
}

// DefaultOptions are the Options used by the package-level functions.
var DefaultOptions = Options{Decimal: ',', BOM: true}

const bom = "\ufeff"

func (o Options) decimal() rune {
	if o.Decimal == 0 {
		return ','
	}
	return o.Decimal
}

// Write writes a to w in format f.
func (o Options) Write(w io.Writer, a *series.Aggregate, f Format) error {
	switch f {
	case Delimited:
		return o.writeDelimited(w, a)
	case Legacy:
		return writeLegacy(w, a)
	}
	return fmt.Errorf("unknown format %v", f)
}

// Marshal returns the encoding of a in format f.
func (o Options) Marshal(a *series.Aggregate, f Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := o.Write(&buf, a, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Detect returns the format of data. A document whose first non-space
// character (after an optional byte-order mark) is '{' is Legacy; all
// others are Delimited.
func Detect(data []byte) Format {
	data = bytes.TrimPrefix(data, []byte(bom))
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
		return Legacy
	}
	return Delimited
}

// Unmarshal decodes a series in the format Detect reports. The
// returned Aggregate is not plotted.
func (o Options) Unmarshal(data []byte) (*series.Aggregate, error) {
	data = bytes.TrimPrefix(data, []byte(bom))
	if Detect(data) == Legacy {
		return readLegacy(bytes.TrimSpace(data), o.Estimator)
	}
	return o.readDelimited(data)
}

// Read reads and decodes a whole series from r.
func (o Options) Read(r io.Reader) (*series.Aggregate, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return o.Unmarshal(data)
}

// Load reads a series from r into a and marks a plotted. If a is
// already plotted it returns series.ErrSeriesPresent without reading.
// Intervals are computed with a's Estimator, not o.Estimator. a is
// unchanged if Load fails.
func (o Options) Load(r io.Reader, a *series.Aggregate) error {
	if a.Plotted() {
		return series.ErrSeriesPresent
	}
	b, err := o.Read(r)
	if err != nil {
		return err
	}
	return a.Load(b)
}

// Write writes a to w in format f using DefaultOptions.
func Write(w io.Writer, a *series.Aggregate, f Format) error {
	return DefaultOptions.Write(w, a, f)
}

// Marshal encodes a in format f using DefaultOptions.
func Marshal(a *series.Aggregate, f Format) ([]byte, error) {
	return DefaultOptions.Marshal(a, f)
}

// Unmarshal decodes data using DefaultOptions.
func Unmarshal(data []byte) (*series.Aggregate, error) {
	return DefaultOptions.Unmarshal(data)
}

// Read decodes a series from r using DefaultOptions.
func Read(r io.Reader) (*series.Aggregate, error) {
	return DefaultOptions.Read(r)
}

// Load reads a series from r into a using DefaultOptions.
func Load(r io.Reader, a *series.Aggregate) error {
	return DefaultOptions.Load(r, a)
}
