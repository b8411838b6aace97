package analysis

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// Fit is a least-squares polynomial fit of force against inverse-square distance.
type Fit struct {
	BaseAnalysis
	degree int
	coeffs []float64
}

func NewFit(degree int) *Fit {
	return &Fit{
		BaseAnalysis: *NewBaseAnalysis(),
		degree:       degree,
	}
}

// NewLinearFit fits F = m·(1/r²) + b.
func NewLinearFit() *Fit {
	return NewFit(1)
}

func (f *Fit) Setup(data *ExperimentData) error {
	if data == nil {
		return ErrNotSetup
	}
	if err := data.Validate(f.degree); err != nil {
		return fmt.Errorf("fit setup: %w", err)
	}
	f.Data = data
	f.coeffs = nil
	f.results = make(map[string][]float64)
	return nil
}

func (f *Fit) Execute() error {
	if f.Data == nil {
		return ErrNotSetup
	}

	coeffs, err := Polyfit(f.Data.InverseR, f.Data.Force, f.degree)
	if err != nil {
		return err
	}
	f.coeffs = coeffs
	f.storeResults()

	f.logger.WithFields(logrus.Fields{
		"degree": f.degree,
		"points": len(f.Data.Force),
		"slope":  f.Slope(),
		"r2":     f.RSquared(),
	}).Debug("fit done")

	return nil
}

func (f *Fit) storeResults() {
	f.results["COEF"] = append([]float64(nil), f.coeffs...)

	residuals := make([]float64, len(f.Data.Force))
	for i, x := range f.Data.InverseR {
		residuals[i] = f.Data.Force[i] - Evaluate(f.coeffs, x)
	}
	f.results["RESIDUAL"] = residuals
}

func (f *Fit) Coefficients() []float64 {
	return append([]float64(nil), f.coeffs...)
}

func (f *Fit) Slope() float64 {
	if len(f.coeffs) < 2 {
		return 0
	}
	return f.coeffs[1]
}

func (f *Fit) Intercept() float64 {
	if len(f.coeffs) == 0 {
		return 0
	}
	return f.coeffs[0]
}

// RMS of the residuals.
func (f *Fit) RMS() float64 {
	residuals := f.results["RESIDUAL"]
	if len(residuals) == 0 {
		return 0
	}
	sum := 0.0
	for _, r := range residuals {
		sum += r * r
	}
	return math.Sqrt(sum / float64(len(residuals)))
}

// RSquared is the coefficient of determination. A constant force series
// gives 1 when it is fitted exactly.
func (f *Fit) RSquared() float64 {
	residuals := f.results["RESIDUAL"]
	if len(residuals) == 0 {
		return 0
	}

	mean := 0.0
	for _, y := range f.Data.Force {
		mean += y
	}
	mean /= float64(len(f.Data.Force))

	ssRes, ssTot := 0.0, 0.0
	for i, y := range f.Data.Force {
		ssRes += residuals[i] * residuals[i]
		ssTot += (y - mean) * (y - mean)
	}
	if ssTot == 0 {
		if ssRes == 0 {
			return 1
		}
		return 0
	}
	return 1 - ssRes/ssTot
}
