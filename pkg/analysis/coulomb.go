package analysis

import (
	"fmt"
	"math"

	"github.com/edp1096/toy-coulomb/internal/consts"
)

// ExperimentalConstant derives k from the fitted slope m and the two charges
// given as multiples of the elementary charge.
func ExperimentalConstant(m, q1, q2 float64) float64 {
	return m / math.Abs((q1*consts.CHARGE)*(q2*consts.CHARGE))
}

// AcceptedConstant is 1/(4π·ε₀).
func AcceptedConstant() float64 {
	return 1 / (4 * math.Pi * consts.PERMITTIVITY)
}

// PercentError is (accepted - experimental)/accepted * 100. A zero accepted
// value propagates as ±Inf or NaN.
func PercentError(accepted, experimental float64) float64 {
	return ((accepted - experimental) / accepted) * 100
}

func FormatPercent(value float64, precision int) string {
	if precision < 0 {
		precision = 2
	}
	return fmt.Sprintf("%.*f%%", precision, value)
}

// CalculateResult fits a line to data and returns the experimental constant.
func CalculateResult(data *ExperimentData) (float64, error) {
	fit := NewLinearFit()
	if err := fit.Setup(data); err != nil {
		return 0, err
	}
	if err := fit.Execute(); err != nil {
		return 0, err
	}
	return ExperimentalConstant(fit.Slope(), data.Q1, data.Q2), nil
}
