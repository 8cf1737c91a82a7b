// Package render writes numeric sequences as text.
// The output is meant for people and shell pipelines; its exact layout is not stable.
package render

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

type Format string

const (
	FormatArray  Format = "array"
	FormatNDJSON Format = "ndjson"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatArray, FormatNDJSON:
		return f, nil
	case "":
		return FormatArray, nil
	}
	return "", fmt.Errorf("unknown format %q (want %s or %s)", s, FormatArray, FormatNDJSON)
}

type Options struct {
	// Precision is the number of decimals per value. Negative uses the shortest exact representation.
	Precision int

	// Threshold is the largest sequence printed in full. Zero or negative never summarizes.
	Threshold int

	// EdgeItems is how many values to keep on each side of a summarized sequence.
	EdgeItems int
}

func DefaultOptions() Options {
	return Options{
		Precision: -1,
		Threshold: 1000,
		EdgeItems: 3,
	}
}

// Full returns a copy of o that never summarizes.
func (o Options) Full() Options {
	o.Threshold = 0
	return o
}

// Value formats a single number.
func Value(v float64, precision int) string {
	if precision < 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return decimal.NewFromFloat(v).StringFixed(int32(precision))
}

// Array writes ys as a bracketed, space-separated line.
// Sequences longer than opt.Threshold are elided in the middle.
func Array(w io.Writer, ys []float64, opt Options) error {
	bw := bufio.NewWriter(w)
	bw.WriteByte('[')

	summarize := opt.Threshold > 0 && len(ys) > opt.Threshold && opt.EdgeItems*2 < len(ys)
	for i := 0; i < len(ys); i++ {
		if summarize && i == opt.EdgeItems {
			bw.WriteString(" ...")
			i = len(ys) - opt.EdgeItems - 1
			continue
		}
		if i > 0 {
			bw.WriteByte(' ')
		}
		bw.WriteString(Value(ys[i], opt.Precision))
	}

	bw.WriteString("]\n")
	return bw.Flush()
}

type sample struct {
	T json.RawMessage `json:"t"`
	Y json.RawMessage `json:"y"`
}

// jsonValue is Value as a JSON literal. JSON has no Inf or NaN; those become null.
func jsonValue(v float64, precision int) json.RawMessage {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return json.RawMessage("null")
	}
	return json.RawMessage(Value(v, precision))
}

// NDJSON writes one {"t":..,"y":..} object per line, pairing ts and ys by index.
// Non-finite values are written as null.
func NDJSON(w io.Writer, ts, ys []float64, opt Options) error {
	if len(ts) != len(ys) {
		return fmt.Errorf("ndjson: %d times for %d values", len(ts), len(ys))
	}
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	for i := range ts {
		s := sample{
			T: jsonValue(ts[i], opt.Precision),
			Y: jsonValue(ys[i], opt.Precision),
		}
		if err := enc.Encode(s); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Write renders according to f.
func Write(w io.Writer, f Format, ts, ys []float64, opt Options) error {
	switch f {
	case FormatNDJSON:
		return NDJSON(w, ts, ys, opt)
	default:
		return Array(w, ys, opt)
	}
}
