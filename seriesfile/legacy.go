// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seriesfile

import (
	"fmt"
	"io"

	"github.com/datspike/graph-editor/series"
	"github.com/ohler55/ojg"
	"github.com/ohler55/ojg/oj"
)

var legacyOptions = ojg.Options{Indent: 4, Sort: true}

func writeLegacy(w io.Writer, a *series.Aggregate) error {
	if a.Repeated() {
		return series.ErrRepeated
	}
	doc := map[string]interface{}{
		"title":     a.Title,
		"xaxisname": a.XLabel,
		"yaxisname": a.YLabel,
		"data_x":    numbers(a.X),
		"data_y":    numbers(a.Y),
	}
	_, err := io.WriteString(w, oj.JSON(doc, &legacyOptions)+"\n")
	return err
}

func numbers(xs []float64) []interface{} {
	out := make([]interface{}, len(xs))
	for i, x := range xs {
		out[i] = x
	}
	return out
}

func readLegacy(data []byte, est series.Estimator) (*series.Aggregate, error) {
	v, err := oj.Parse(data)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	obj, ok := v.(map[string]interface{})
	if !ok {
		return nil, &ParseError{Err: fmt.Errorf("want a JSON object, got %T", v)}
	}

	a := series.New()
	a.Estimator = est
	for key, dst := range map[string]*string{
		"title":     &a.Title,
		"xaxisname": &a.XLabel,
		"yaxisname": &a.YLabel,
	} {
		val, ok := obj[key]
		if !ok {
			continue
		}
		s, ok := val.(string)
		if !ok {
			return nil, &ParseError{Err: fmt.Errorf("%s: want a string, got %T", key, val)}
		}
		*dst = s
	}

	xs, err := floats(obj, "data_x")
	if err != nil {
		return nil, err
	}
	ys, err := floats(obj, "data_y")
	if err != nil {
		return nil, err
	}
	if len(xs) != len(ys) {
		return nil, &ParseError{Err: fmt.Errorf("data_x has %d values but data_y has %d", len(xs), len(ys))}
	}
	for i := range xs {
		if err := a.AppendValue(xs[i], ys[i]); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// floats returns the number array obj[key].
func floats(obj map[string]interface{}, key string) ([]float64, error) {
	val, ok := obj[key]
	if !ok {
		return nil, &ParseError{Err: fmt.Errorf("missing %s", key)}
	}
	list, ok := val.([]interface{})
	if !ok {
		return nil, &ParseError{Err: fmt.Errorf("%s: want an array, got %T", key, val)}
	}
	out := make([]float64, len(list))
	for i, elt := range list {
		switch n := elt.(type) {
		case int64:
			out[i] = float64(n)
		case float64:
			out[i] = n
		default:
			return nil, &ParseError{Err: fmt.Errorf("%s[%d]: want a number, got %T", key, i, elt)}
		}
	}
	return out, nil
}
