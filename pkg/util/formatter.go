package util

import (
	"fmt"
	"math"
	"strconv"
)

// FormatValueFactor renders value with an SI prefix, e.g. 2.5e-11 m -> "25.000 pm".
func FormatValueFactor(value float64, unit string) string {
	absValue := math.Abs(value)
	switch {
	case math.IsNaN(value) || math.IsInf(value, 0):
		return fmt.Sprintf("%v %s", value, unit)
	case absValue == 0:
		return fmt.Sprintf("%.3f %s", value, unit)
	case absValue >= 1e9:
		return fmt.Sprintf("%.3f G%s", value/1e9, unit)
	case absValue >= 1e6:
		return fmt.Sprintf("%.3f M%s", value/1e6, unit)
	case absValue >= 1e3:
		return fmt.Sprintf("%.3f k%s", value/1e3, unit)
	case absValue >= 1:
		return fmt.Sprintf("%.3f %s", value, unit)
	case absValue >= 1e-3:
		return fmt.Sprintf("%.3f m%s", value*1e3, unit)
	case absValue >= 1e-6:
		return fmt.Sprintf("%.3f u%s", value*1e6, unit)
	case absValue >= 1e-9:
		return fmt.Sprintf("%.3f n%s", value*1e9, unit)
	case absValue >= 1e-12:
		return fmt.Sprintf("%.3f p%s", value*1e12, unit)
	default:
		return fmt.Sprintf("%.3e %s", value, unit)
	}
}

func FormatScientific(value float64, precision int) string {
	if precision < 0 {
		precision = 3
	}
	return strconv.FormatFloat(value, 'e', precision, 64)
}

// FormatCell renders a table cell: plain for moderate magnitudes, exponent
// notation otherwise (1/r² sits around 1e21).
func FormatCell(value float64) string {
	absValue := math.Abs(value)
	if absValue != 0 && (absValue >= 1e5 || absValue < 1e-3) {
		return fmt.Sprintf("%.4e", value)
	}
	return strconv.FormatFloat(value, 'g', 6, 64)
}
