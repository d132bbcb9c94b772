// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seriesfile

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/datspike/graph-editor/series"
)

// Names of the trailing analytics columns.
const (
	meanColumn    = "mean"
	studentColumn = "student"
)

func (o Options) writeDelimited(w io.Writer, a *series.Aggregate) error {
	if o.BOM {
		if _, err := io.WriteString(w, bom); err != nil {
			return err
		}
	}
	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write([]string{a.Title, a.XLabel, a.YLabel, ""}); err != nil {
		return err
	}

	// Construct the column header. Repeated series get one column
	// per sample of the widest point plus the analytics columns.
	header := []string{"x"}
	if a.Repeated() {
		width := 0
		for _, xs := range a.Samples {
			if len(xs) > width {
				width = len(xs)
			}
		}
		for i := 0; i < width; i++ {
			header = append(header, strconv.Itoa(i))
		}
		header = append(header, meanColumn, studentColumn)
	} else if a.Len() > 0 {
		header = append(header, "0")
	} else {
		header = append(header, meanColumn, studentColumn)
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i, x := range a.X {
		line := []string{o.formatFloat(x)}
		if a.Repeated() {
			for _, v := range a.Samples[i] {
				line = append(line, o.formatFloat(v))
			}
			line = append(line, o.formatFloat(a.Mean[i]), o.formatFloat(a.Interval[i]))
		} else {
			line = append(line, o.formatFloat(a.Y[i]))
		}
		if err := cw.Write(line); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func (o Options) formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if d := o.decimal(); d != '.' {
		s = strings.Replace(s, ".", string(d), 1)
	}
	return s
}

func (o Options) parseFloat(s string) (float64, error) {
	if d := o.decimal(); d != '.' {
		s = strings.Replace(s, string(d), ".", 1)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("bad number %q", s)
	}
	return v, nil
}

// row is one decoded data line.
type row struct {
	line    int
	x       float64
	samples []float64
}

func (o Options) readDelimited(data []byte) (*series.Aggregate, error) {
	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = ';'
	cr.FieldsPerRecord = -1

	// next returns the next record without a trailing empty field,
	// and its line number.
	next := func() ([]string, int, error) {
		rec, err := cr.Read()
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return nil, 0, &ParseError{Line: perr.Line, Err: perr.Err}
			}
			return nil, 0, err
		}
		line, _ := cr.FieldPos(0)
		if len(rec) > 1 && rec[len(rec)-1] == "" {
			rec = rec[:len(rec)-1]
		}
		return rec, line, nil
	}

	a := series.New()
	a.Estimator = o.Estimator

	// Metadata line.
	meta, metaLine, err := next()
	if err == io.EOF {
		return nil, &ParseError{Err: errors.New("empty file")}
	} else if err != nil {
		return nil, err
	}
	if len(meta) < 3 {
		return nil, &ParseError{Line: metaLine, Err: fmt.Errorf("want title and two axis names, got %d fields", len(meta))}
	}
	a.Title, a.XLabel, a.YLabel = meta[0], meta[1], meta[2]

	// Column header. If its last column is not a number, every
	// data line ends in analytics columns.
	header, _, err := next()
	if err == io.EOF {
		return nil, &ParseError{Line: metaLine + 1, Err: errors.New("missing column header")}
	} else if err != nil {
		return nil, err
	}
	analytics := 0
	if _, err := o.parseFloat(header[len(header)-1]); err != nil {
		analytics = 2
	}

	var rows []row
	single := analytics == 0
	for {
		rec, line, err := next()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		if len(rec) < 2+analytics {
			return nil, &ParseError{Line: line, Err: fmt.Errorf("want x, samples and %d analytics columns, got %d fields", analytics, len(rec))}
		}

		r := row{line: line}
		if r.x, err = o.parseFloat(rec[0]); err != nil {
			return nil, &ParseError{Line: line, Err: err}
		}
		for _, f := range rec[1:] {
			v, err := o.parseFloat(f)
			if err != nil {
				return nil, &ParseError{Line: line, Err: err}
			}
			r.samples = append(r.samples, v)
		}
		// Analytics are validated above but recomputed below.
		r.samples = r.samples[:len(r.samples)-analytics]
		if len(r.samples) != 1 {
			single = false
		}
		rows = append(rows, r)
	}

	for _, r := range rows {
		if single {
			err = a.AppendValue(r.x, r.samples[0])
		} else {
			err = a.AppendPoint(r.x, r.samples)
		}
		if err != nil {
			return nil, &ParseError{Line: r.line, Err: err}
		}
	}
	return a, nil
}
