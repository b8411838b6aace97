package units

import (
	"math"

	"github.com/edp1096/toy-coulomb/internal/consts"
)

// E returns base * 10^exponent.
func E(base, exponent float64) float64 {
	return base * math.Pow(10, exponent)
}

// PicometersToMeters converts a distance in pm to meters.
func PicometersToMeters(pm float64) float64 {
	return E(pm, consts.PICO)
}

// InverseSquare returns 1/d². A zero distance yields +Inf.
func InverseSquare(distance float64) float64 {
	return 1 / (distance * distance)
}
