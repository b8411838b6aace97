package table

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/sirupsen/logrus"

	"github.com/edp1096/toy-coulomb/pkg/units"
	"github.com/edp1096/toy-coulomb/pkg/util"
)

const DefaultMaxLimit = 20

// Column names of the fixed lab schema.
const (
	IndexAxis    = "N°"
	ColForce     = "F (N)"
	ColDistance  = "r (pm)"
	ColDistanceM = "r (mts)"
	ColInverseSq = "1/r²"
)

var (
	ErrTableFull     = errors.New("table is full")
	ErrUnknownColumn = errors.New("unknown column")
	ErrIndexRange    = errors.New("row index out of range")
)

var columns = []string{ColForce, ColDistance, ColDistanceM, ColInverseSq}

// Row is one measurement. Distance is kept as recorded (pm).
type Row struct {
	Force          float64
	Distance       float64
	DistanceMeters float64
	InverseSquare  float64
}

// NewRow converts distance from pm to meters and derives 1/r².
func NewRow(force, distance float64) Row {
	meters := units.PicometersToMeters(distance)
	return Row{
		Force:          force,
		Distance:       distance,
		DistanceMeters: meters,
		InverseSquare:  units.InverseSquare(meters),
	}
}

func (r Row) value(column string) (float64, bool) {
	switch column {
	case ColForce:
		return r.Force, true
	case ColDistance:
		return r.Distance, true
	case ColDistanceM:
		return r.DistanceMeters, true
	case ColInverseSq:
		return r.InverseSquare, true
	}
	return 0, false
}

type Table struct {
	maxLimit int
	rows     []Row
	logger   *logrus.Entry
}

// New creates an empty table holding up to maxLimit rows (DefaultMaxLimit when <= 0).
func New(maxLimit int) *Table {
	if maxLimit <= 0 {
		maxLimit = DefaultMaxLimit
	}
	return &Table{
		maxLimit: maxLimit,
		rows:     make([]Row, 0, maxLimit),
		logger:   logrus.WithField("component", "table"),
	}
}

func (t *Table) SetLogger(logger *logrus.Entry) {
	t.logger = logger
}

// Append stores row at the next index and returns it (1-based).
func (t *Table) Append(row Row) (int, error) {
	if len(t.rows) >= t.maxLimit {
		return 0, fmt.Errorf("append row %d: %w (capacity %d)", len(t.rows)+1, ErrTableFull, t.maxLimit)
	}
	t.rows = append(t.rows, row)
	idx := len(t.rows)
	t.logger.WithFields(logrus.Fields{
		"index":    idx,
		"force":    row.Force,
		"distance": row.Distance,
	}).Debug("row recorded")
	return idx, nil
}

func (t *Table) Len() int      { return len(t.rows) }
func (t *Table) Capacity() int { return t.maxLimit }

// Row returns the row stored at the 1-based index.
func (t *Table) Row(index int) (Row, error) {
	if index < 1 || index > len(t.rows) {
		return Row{}, fmt.Errorf("row %d: %w", index, ErrIndexRange)
	}
	return t.rows[index-1], nil
}

func (t *Table) Rows() []Row {
	out := make([]Row, len(t.rows))
	copy(out, t.rows)
	return out
}

func (t *Table) Indices() []int {
	idx := make([]int, len(t.rows))
	for i := range idx {
		idx[i] = i + 1
	}
	return idx
}

func Columns() []string {
	return append([]string(nil), columns...)
}

// Column returns the values of the named column in index order.
func (t *Table) Column(name string) ([]float64, error) {
	if _, ok := (Row{}).value(name); !ok {
		return nil, fmt.Errorf("column %q: %w", name, ErrUnknownColumn)
	}
	values := make([]float64, len(t.rows))
	for i, row := range t.rows {
		values[i], _ = row.value(name)
	}
	return values, nil
}

func (t *Table) Reset() {
	t.rows = t.rows[:0]
}

func (t *Table) String() string {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t\n", IndexAxis, ColForce, ColDistance, ColDistanceM, ColInverseSq)
	for i, row := range t.rows {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t\n", i+1,
			util.FormatCell(row.Force),
			util.FormatCell(row.Distance),
			util.FormatCell(row.DistanceMeters),
			util.FormatCell(row.InverseSquare))
	}
	w.Flush()
	return sb.String()
}
