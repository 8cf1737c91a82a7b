package common

import "math"

// DecimalToFixed rounds num to precision decimals, half away from zero.
// Rounding stays in float64, so magnitudes beyond the int range are fine.
// Non-finite values, and values too large to scale, are returned unchanged.
func DecimalToFixed(num float64, precision int) float64 {
	output := math.Pow(10, float64(precision))
	scaled := num * output
	if math.IsInf(scaled, 0) || math.IsNaN(scaled) {
		return num
	}
	return math.Round(scaled) / output
}

// Arange returns evenly spaced values start, start+step, ... up to but not including stop.
// The length is ceil((stop-start)/step), and each value is computed as start+i*step
// rather than accumulated, so rounding error does not drift along the sequence.
// A zero step, non-finite argument, or a step pointing away from stop yields an empty slice.
func Arange(start, stop, step float64) []float64 {
	for _, v := range []float64{start, stop, step} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return []float64{}
		}
	}
	if step == 0 {
		return []float64{}
	}
	n := math.Ceil((stop - start) / step)
	if n <= 0 {
		return []float64{}
	}
	out := make([]float64, int(n))
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}
