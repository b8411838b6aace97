package matrix

import (
	"fmt"
	"strings"

	"github.com/edp1096/sparse"
	"github.com/sirupsen/logrus"
)

// Stamper is the write side of a System. Indices are 1-based.
type Stamper interface {
	AddElement(i, j int, value float64)
	AddRHS(i int, value float64)
}

// System is a real linear system A·x = b backed by a sparse LU.
type System struct {
	Size     int
	matrix   *sparse.Matrix
	rhs      []float64
	solution []float64
	config   *sparse.Configuration
	logger   *logrus.Entry
}

func NewSystem(size int) (*System, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid system size %d", size)
	}

	config := &sparse.Configuration{
		Real:                    true,
		Complex:                 false,
		SeparatedComplexVectors: false,
		Expandable:              true,
		Translate:               false,
		ModifiedNodal:           false,
		TiesMultiplier:          5,
		PrinterWidth:            140,
		Annotate:                0,
	}

	mat, err := sparse.Create(int64(size), config)
	if err != nil {
		return nil, fmt.Errorf("creating sparse matrix: %w", err)
	}

	s := &System{
		Size:     size,
		matrix:   mat,
		rhs:      make([]float64, size+1), // 1-based indexing
		solution: make([]float64, size+1),
		config:   config,
		logger:   logrus.WithField("component", "matrix"),
	}
	s.setupElements()

	return s, nil
}

// Normal equations are dense, so every element is allocated up front.
func (s *System) setupElements() {
	for i := 1; i <= s.Size; i++ {
		for j := 1; j <= s.Size; j++ {
			s.matrix.GetElement(int64(i), int64(j))
		}
	}
}

func (s *System) AddElement(i, j int, value float64) {
	if i <= 0 || j <= 0 || i > s.Size || j > s.Size {
		s.logger.Warnf("matrix index out of bounds (i=%d, j=%d, size=%d)", i, j, s.Size)
		return
	}
	s.matrix.GetElement(int64(i), int64(j)).Real += value
}

func (s *System) AddRHS(i int, value float64) {
	if i <= 0 || i > s.Size {
		s.logger.Warnf("rhs index out of bounds (i=%d, size=%d)", i, s.Size)
		return
	}
	s.rhs[i] += value
}

func (s *System) Element(i, j int) float64 {
	if i <= 0 || j <= 0 || i > s.Size || j > s.Size {
		return 0
	}
	return s.matrix.GetElement(int64(i), int64(j)).Real
}

func (s *System) Clear() {
	s.matrix.Clear()
	for i := range s.rhs {
		s.rhs[i] = 0
	}
}

func (s *System) Solve() error {
	if err := s.matrix.Factor(); err != nil {
		return fmt.Errorf("matrix factorization failed: %w", err)
	}

	solution, err := s.matrix.Solve(s.rhs)
	if err != nil {
		return fmt.Errorf("matrix solve failed: %w", err)
	}
	s.solution = solution

	return nil
}

func (s *System) RHS() []float64 {
	return s.rhs
}

// Solution is 1-based: Solution()[0] is unused.
func (s *System) Solution() []float64 {
	return s.solution
}

func (s *System) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "System (%dx%d):\n", s.Size, s.Size)
	for i := 1; i <= s.Size; i++ {
		for j := 1; j <= s.Size; j++ {
			fmt.Fprintf(&sb, "  %+12.5e*x%d", s.Element(i, j), j)
		}
		fmt.Fprintf(&sb, " = %+12.5e\n", s.rhs[i])
	}
	return sb.String()
}

func (s *System) Destroy() {
	if s.matrix != nil {
		s.matrix.Destroy()
		s.matrix = nil
	}
}
