package analysis

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/edp1096/toy-coulomb/pkg/util"
)

type Result struct {
	Name         string
	Experimental float64
	Theoretical  float64
	PercentError float64
}

type Summary struct {
	Results   []Result
	Precision int
}

// Results computes ke1..keN for each experiment against the accepted constant.
func Results(data ...*ExperimentData) (*Summary, error) {
	accepted := AcceptedConstant()
	summary := &Summary{Results: make([]Result, 0, len(data)), Precision: 2}

	for i, d := range data {
		k, err := CalculateResult(d)
		if err != nil {
			return nil, fmt.Errorf("ke%d: %w", i+1, err)
		}
		summary.Results = append(summary.Results, Result{
			Name:         fmt.Sprintf("ke%d", i+1),
			Experimental: k,
			Theoretical:  accepted,
			PercentError: PercentError(accepted, k),
		})
	}

	return summary, nil
}

func (s *Summary) String() string {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Value\tExperimental\tTheoretical\tPercent Error")
	for _, r := range s.Results {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.Name,
			util.FormatScientific(r.Experimental, 4),
			util.FormatScientific(r.Theoretical, 4),
			FormatPercent(r.PercentError, s.Precision))
	}
	w.Flush()
	return sb.String()
}
