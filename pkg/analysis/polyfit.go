package analysis

import (
	"fmt"
	"math"

	"github.com/edp1096/toy-coulomb/pkg/matrix"
)

// Polyfit returns least-squares polynomial coefficients of the given degree,
// lowest power first. The normal equations are built on x/max|x| so that
// inverse-square distances (~1e21) do not overflow the power sums.
func Polyfit(x, y []float64, degree int) ([]float64, error) {
	if degree < 0 {
		return nil, fmt.Errorf("invalid degree %d", degree)
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("polyfit %d/%d samples: %w", len(x), len(y), ErrLengthMismatch)
	}
	if len(x) < degree+1 {
		return nil, fmt.Errorf("polyfit degree %d with %d samples: %w", degree, len(x), ErrTooFewPoints)
	}

	scale := 0.0
	for _, v := range x {
		scale = math.Max(scale, math.Abs(v))
	}
	if scale == 0 || math.IsInf(scale, 0) || math.IsNaN(scale) {
		scale = 1
	}

	size := degree + 1
	sys, err := matrix.NewSystem(size)
	if err != nil {
		return nil, err
	}
	defer sys.Destroy()

	stampNormalEquations(sys, x, y, degree, scale)

	if err := sys.Solve(); err != nil {
		return nil, fmt.Errorf("polyfit degree %d: %w", degree, err)
	}

	solution := sys.Solution()
	coeffs := make([]float64, size)
	for k := 0; k < size; k++ {
		coeffs[k] = solution[k+1] / math.Pow(scale, float64(k))
	}
	return coeffs, nil
}

// Row i, column j of AᵀA is Σ t^(i+j); row i of Aᵀy is Σ y·t^i.
func stampNormalEquations(s matrix.Stamper, x, y []float64, degree int, scale float64) {
	powers := make([]float64, 2*degree+1)
	for n, xv := range x {
		t := xv / scale
		p := 1.0
		for k := range powers {
			powers[k] = p
			p *= t
		}
		for i := 0; i <= degree; i++ {
			for j := 0; j <= degree; j++ {
				s.AddElement(i+1, j+1, powers[i+j])
			}
			s.AddRHS(i+1, y[n]*powers[i])
		}
	}
}

// Evaluate returns the polynomial value at x, coefficients lowest power first.
func Evaluate(coeffs []float64, x float64) float64 {
	v := 0.0
	for k := len(coeffs) - 1; k >= 0; k-- {
		v = v*x + coeffs[k]
	}
	return v
}
