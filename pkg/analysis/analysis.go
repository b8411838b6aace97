package analysis

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/edp1096/toy-coulomb/pkg/table"
)

var (
	ErrLengthMismatch = errors.New("force and inverse distance lengths differ")
	ErrTooFewPoints   = errors.New("not enough points for fit degree")
	ErrNotSetup       = errors.New("analysis not set up")
)

type Analysis interface {
	Setup(data *ExperimentData) error
	Execute() error
	GetResults() map[string][]float64
}

// ExperimentData holds one experiment: parallel force / inverse-square
// distance samples and the two charges as multiples of e.
type ExperimentData struct {
	Force    []float64
	InverseR []float64
	Q1       float64
	Q2       float64
}

func NewExperimentData(force, inverseR []float64, q1, q2 float64) *ExperimentData {
	return &ExperimentData{
		Force:    force,
		InverseR: inverseR,
		Q1:       q1,
		Q2:       q2,
	}
}

func (d *ExperimentData) Validate(degree int) error {
	if len(d.Force) != len(d.InverseR) {
		return ErrLengthMismatch
	}
	if len(d.Force) < degree+1 {
		return ErrTooFewPoints
	}
	return nil
}

type BaseAnalysis struct {
	Data    *ExperimentData
	results map[string][]float64 // key: result name
	logger  *logrus.Entry
}

func NewBaseAnalysis() *BaseAnalysis {
	return &BaseAnalysis{
		results: make(map[string][]float64),
		logger:  logrus.WithField("component", "analysis"),
	}
}

func (a *BaseAnalysis) SetLogger(logger *logrus.Entry) {
	a.logger = logger
}

func (a *BaseAnalysis) GetResults() map[string][]float64 {
	return a.results
}

// FromTable builds experiment data from the force and 1/r² columns of t.
func FromTable(t *table.Table, q1, q2 float64) (*ExperimentData, error) {
	force, err := t.Column(table.ColForce)
	if err != nil {
		return nil, err
	}
	inverseR, err := t.Column(table.ColInverseSq)
	if err != nil {
		return nil, err
	}
	return NewExperimentData(force, inverseR, q1, q2), nil
}
