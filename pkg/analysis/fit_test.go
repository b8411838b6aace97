package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edp1096/toy-coulomb/pkg/table"
)

func TestFitSlope(t *testing.T) {
	data := NewExperimentData([]float64{2, 4, 6, 8}, []float64{1, 2, 3, 4}, 1, 1)

	fit := NewLinearFit()
	require.NoError(t, fit.Setup(data))
	require.NoError(t, fit.Execute())

	assert.InDelta(t, 2.0, fit.Slope(), 1e-9)
	assert.InDelta(t, 0.0, fit.Intercept(), 1e-9)
	assert.InDelta(t, 0.0, fit.RMS(), 1e-9)
	assert.InDelta(t, 1.0, fit.RSquared(), 1e-9)

	results := fit.GetResults()
	assert.Len(t, results["COEF"], 2)
	assert.Len(t, results["RESIDUAL"], 4)
}

func TestFitNoisy(t *testing.T) {
	data := NewExperimentData(
		[]float64{2.1, 3.9, 6.2, 7.8},
		[]float64{1, 2, 3, 4},
		1, 1,
	)
	fit := NewLinearFit()
	require.NoError(t, fit.Setup(data))
	require.NoError(t, fit.Execute())

	assert.InDelta(t, 1.94, fit.Slope(), 1e-9)
	assert.Greater(t, fit.RMS(), 0.0)
	assert.Less(t, fit.RSquared(), 1.0)
	assert.Greater(t, fit.RSquared(), 0.9)
}

func TestFitConstantSeries(t *testing.T) {
	data := NewExperimentData([]float64{5, 5, 5}, []float64{1, 2, 3}, 1, 1)
	fit := NewLinearFit()
	require.NoError(t, fit.Setup(data))
	require.NoError(t, fit.Execute())

	assert.InDelta(t, 0.0, fit.Slope(), 1e-9)
	assert.InDelta(t, 5.0, fit.Intercept(), 1e-9)
	assert.InDelta(t, 0.0, fit.RMS(), 1e-9)
}

func TestFitSetupErrors(t *testing.T) {
	fit := NewLinearFit()
	assert.ErrorIs(t, fit.Setup(nil), ErrNotSetup)
	assert.ErrorIs(t, fit.Setup(NewExperimentData([]float64{1, 2}, []float64{1}, 1, 1)), ErrLengthMismatch)
	assert.ErrorIs(t, fit.Setup(NewExperimentData([]float64{1}, []float64{1}, 1, 1)), ErrTooFewPoints)
	assert.ErrorIs(t, NewLinearFit().Execute(), ErrNotSetup)
}

func TestFitBeforeExecute(t *testing.T) {
	fit := NewLinearFit()
	assert.Equal(t, 0.0, fit.Slope())
	assert.Equal(t, 0.0, fit.Intercept())
	assert.Equal(t, 0.0, fit.RMS())
	assert.Empty(t, fit.Coefficients())
}

func TestFromTable(t *testing.T) {
	tbl := table.New(0)
	require.NoError(t, table.Record(tbl, 10, 10, 3e-7, 7.5e-8))

	data, err := FromTable(tbl, 2, -3)
	require.NoError(t, err)
	assert.Equal(t, []float64{3e-7, 7.5e-8}, data.Force)
	assert.Len(t, data.InverseR, 2)
	assert.InEpsilon(t, 1e22, data.InverseR[0], 1e-9)
	assert.Equal(t, 2.0, data.Q1)
	assert.Equal(t, -3.0, data.Q2)
}

var _ Analysis = (*Fit)(nil)
