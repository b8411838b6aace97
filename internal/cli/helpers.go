package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/edp1096/toy-coulomb/pkg/plot"
	"github.com/edp1096/toy-coulomb/pkg/table"
)

type plotFlags struct {
	show  bool
	title string
	x     string
	color string
}

func addPlotFlags(cmd *cobra.Command, pf *plotFlags) {
	cmd.Flags().BoolVar(&pf.show, "plot", false, "open a force vs. distance chart")
	cmd.Flags().StringVar(&pf.title, "title", "", "chart title")
	cmd.Flags().StringVar(&pf.x, "x", "", "x column: \"r (pm)\", \"r (mts)\" or \"1/r²\"")
	cmd.Flags().StringVar(&pf.color, "color", "", "series color (#RRGGBB)")
}

func (pf *plotFlags) options() plot.Options {
	opts := plot.Options{
		Title:   pf.title,
		XColumn: cfg.Plot.XColumn,
		Color:   cfg.Plot.Color,
		Width:   cfg.Plot.Width,
		Height:  cfg.Plot.Height,
	}
	if pf.x != "" {
		opts.XColumn = pf.x
	}
	if pf.color != "" {
		opts.Color = pf.color
	}
	return opts
}

func (pf *plotFlags) maybeShow(t *table.Table) error {
	if !pf.show {
		return nil
	}
	return plotter(t, pf.options())
}

// parsePair parses "F:r", force in newtons and distance in pm.
func parsePair(s string) (table.ChargeRecord, error) {
	force, distance, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return table.ChargeRecord{}, fmt.Errorf("pair %q: expected F:r", s)
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(force), 64)
	if err != nil {
		return table.ChargeRecord{}, fmt.Errorf("pair %q: force: %w", s, err)
	}
	r, err := strconv.ParseFloat(strings.TrimSpace(distance), 64)
	if err != nil {
		return table.ChargeRecord{}, fmt.Errorf("pair %q: distance: %w", s, err)
	}
	return table.ChargeRecord{Force: f, Distance: r}, nil
}

func parsePairs(items []string) ([]table.ChargeRecord, error) {
	records := make([]table.ChargeRecord, 0, len(items))
	for _, item := range items {
		rec, err := parsePair(item)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// parseSet parses one experiment: "q1,q2;F:r,F:r,...".
func parseSet(s string) (q1, q2 float64, records []table.ChargeRecord, err error) {
	charges, pairs, ok := strings.Cut(s, ";")
	if !ok {
		return 0, 0, nil, fmt.Errorf("set %q: expected q1,q2;F:r,...", s)
	}
	c1, c2, ok := strings.Cut(charges, ",")
	if !ok {
		return 0, 0, nil, fmt.Errorf("set %q: expected two charges", s)
	}
	if q1, err = strconv.ParseFloat(strings.TrimSpace(c1), 64); err != nil {
		return 0, 0, nil, fmt.Errorf("set %q: q1: %w", s, err)
	}
	if q2, err = strconv.ParseFloat(strings.TrimSpace(c2), 64); err != nil {
		return 0, 0, nil, fmt.Errorf("set %q: q2: %w", s, err)
	}
	records, err = parsePairs(strings.Split(pairs, ","))
	if err != nil {
		return 0, 0, nil, fmt.Errorf("set %q: %w", s, err)
	}
	return q1, q2, records, nil
}
