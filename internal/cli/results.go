package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edp1096/toy-coulomb/pkg/analysis"
	"github.com/edp1096/toy-coulomb/pkg/table"
)

var resultSets []string

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Summarise ke1..keN for several experiments",
	Long: `Each --set is one experiment given as "q1,q2;F:r,F:r,...". The summary
lists the experimental constant of every set next to the accepted value
and the percent error.

  coulomb results --set "1,1;2.3e-6:10,5.75e-7:20,2.56e-7:30" \
                  --set "2,1;4.6e-6:10,1.15e-6:20,5.1e-7:30"`,
	RunE: runResults,
}

func runResults(cmd *cobra.Command, args []string) error {
	if len(resultSets) == 0 {
		return fmt.Errorf("no experiments given, use --set")
	}

	data := make([]*analysis.ExperimentData, 0, len(resultSets))
	for _, set := range resultSets {
		q1, q2, records, err := parseSet(set)
		if err != nil {
			return err
		}
		t := table.New(cfg.MaxRows)
		if err := table.RecordCharges(t, records...); err != nil {
			return err
		}
		d, err := analysis.FromTable(t, q1, q2)
		if err != nil {
			return err
		}
		data = append(data, d)
	}

	summary, err := analysis.Results(data...)
	if err != nil {
		return err
	}
	summary.Precision = cfg.Precision

	fmt.Fprint(cmd.OutOrStdout(), summary)
	return nil
}

func init() {
	resultsCmd.Flags().StringArrayVar(&resultSets, "set", nil, `experiment as "q1,q2;F:r,F:r,..."`)
}
