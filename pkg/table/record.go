package table

import (
	"fmt"

	"github.com/edp1096/toy-coulomb/pkg/units"
)

// ChargeRecord is a raw (force, distance) measurement; distance in pm.
type ChargeRecord struct {
	Force    float64
	Distance float64
}

// RecordCharges appends one row per record.
func RecordCharges(t *Table, records ...ChargeRecord) error {
	for i, rec := range records {
		if _, err := t.Append(NewRow(rec.Force, rec.Distance)); err != nil {
			return fmt.Errorf("record %d: %w", i+1, err)
		}
	}
	return nil
}

// Record appends one row per force. The distance starts at start and grows
// by step after each value.
func Record(t *Table, start, step float64, forces ...float64) error {
	distance := start
	for i, force := range forces {
		if _, err := t.Append(NewRow(force, distance)); err != nil {
			return fmt.Errorf("record %d: %w", i+1, err)
		}
		distance += step
	}
	return nil
}

// RecordScientific appends a row whose force is mantissa * 10^exponent.
func RecordScientific(t *Table, mantissa, exponent, distance float64) (int, error) {
	return t.Append(NewRow(units.E(mantissa, exponent), distance))
}
