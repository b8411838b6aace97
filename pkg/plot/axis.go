package plot

import (
	"math"
	"strconv"
)

type Limits struct {
	Min, Max float64
}

func (l Limits) Span() float64 {
	return l.Max - l.Min
}

// autoLimits pads the data range by 5% on each side.
func autoLimits(values []float64) Limits {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if math.IsInf(lo, 1) {
		return Limits{Min: 0, Max: 1}
	}
	if lo == hi {
		pad := math.Abs(lo) * 0.5
		if pad == 0 {
			pad = 1
		}
		return Limits{Min: lo - pad, Max: hi + pad}
	}
	pad := (hi - lo) * 0.05
	return Limits{Min: lo - pad, Max: hi + pad}
}

// niceStep picks a 1/2/5·10^n tick step giving at most maxTicks intervals.
func niceStep(span float64, maxTicks int) float64 {
	if span <= 0 || maxTicks <= 0 {
		return 1
	}
	raw := span / float64(maxTicks)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	for _, m := range []float64{1, 2, 5, 10} {
		if step := m * mag; step >= raw {
			return step
		}
	}
	return 10 * mag
}

func ticks(l Limits, maxTicks int) []float64 {
	step := niceStep(l.Span(), maxTicks)
	first := math.Ceil(l.Min/step) * step
	var out []float64
	for v := first; v <= l.Max+step*1e-9; v += step {
		// snap accumulated error so labels print cleanly
		out = append(out, math.Round(v/step)*step)
	}
	return out
}

func tickLabel(v float64) string {
	if v == 0 {
		return "0"
	}
	abs := math.Abs(v)
	if abs >= 1e4 || abs < 1e-2 {
		return strconv.FormatFloat(v, 'e', 1, 64)
	}
	return strconv.FormatFloat(v, 'g', 4, 64)
}
