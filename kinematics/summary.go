package kinematics

import (
	"github.com/montanaflynn/stats"
)

type Summary struct {
	N    int
	Min  float64
	Max  float64
	Mean float64

	// MaxT is the sample time of the first sample at Max.
	MaxT float64
}

// Summarize describes a sampled height series.
// ts and ys are paired by index; extra elements of the longer slice are ignored.
func Summarize(ts, ys []float64) Summary {
	n := min(len(ts), len(ys))
	if n == 0 {
		return Summary{}
	}
	data := stats.Float64Data(ys[:n])

	statsMustFloat := func(fn func() (float64, error)) float64 {
		out, err := fn()
		if err != nil {
			return 0
		}
		return out
	}

	s := Summary{
		N:    n,
		Min:  statsMustFloat(data.Min),
		Max:  statsMustFloat(data.Max),
		Mean: statsMustFloat(data.Mean),
	}
	for i, y := range ys[:n] {
		if y == s.Max {
			s.MaxT = ts[i]
			break
		}
	}
	return s
}
