package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edp1096/toy-coulomb/pkg/analysis"
	"github.com/edp1096/toy-coulomb/pkg/table"
	"github.com/edp1096/toy-coulomb/pkg/util"
)

var (
	fitForces    []float64
	fitDistances []float64
	fitQ1        float64
	fitQ2        float64
	fitPlot      plotFlags
)

var fitCmd = &cobra.Command{
	Use:   "fit",
	Short: "Fit F against 1/r² and estimate Coulomb's constant",
	Long: `Builds the measurement table from parallel --force and --distance
lists, fits a line of force against inverse-square distance and derives
k = m / |q1*e * q2*e|.

  coulomb fit --q1 1 --q2 1 --force 2.3e-6,5.75e-7,2.56e-7 --distance 10,20,30`,
	RunE: runFit,
}

func runFit(cmd *cobra.Command, args []string) error {
	if len(fitForces) != len(fitDistances) {
		return fmt.Errorf("%d forces for %d distances: %w", len(fitForces), len(fitDistances), analysis.ErrLengthMismatch)
	}

	t := table.New(cfg.MaxRows)
	for i := range fitForces {
		if _, err := t.Append(table.NewRow(fitForces[i], fitDistances[i])); err != nil {
			return err
		}
	}

	data, err := analysis.FromTable(t, fitQ1, fitQ2)
	if err != nil {
		return err
	}

	fit := analysis.NewLinearFit()
	if err := fit.Setup(data); err != nil {
		return err
	}
	if err := fit.Execute(); err != nil {
		return err
	}

	accepted := analysis.AcceptedConstant()
	experimental := analysis.ExperimentalConstant(fit.Slope(), fitQ1, fitQ2)

	out := cmd.OutOrStdout()
	fmt.Fprint(out, t)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "slope        = %s N*m^2\n", util.FormatScientific(fit.Slope(), 4))
	fmt.Fprintf(out, "intercept    = %s\n", util.FormatValueFactor(fit.Intercept(), "N"))
	fmt.Fprintf(out, "R^2          = %.6f\n", fit.RSquared())
	fmt.Fprintf(out, "k experimental = %s N*m^2/C^2\n", util.FormatScientific(experimental, 4))
	fmt.Fprintf(out, "k accepted     = %s N*m^2/C^2\n", util.FormatScientific(accepted, 4))
	fmt.Fprintf(out, "percent error  = %s\n", analysis.FormatPercent(analysis.PercentError(accepted, experimental), cfg.Precision))

	return fitPlot.maybeShow(t)
}

func init() {
	fitCmd.Flags().Float64SliceVar(&fitForces, "force", nil, "force values (N)")
	fitCmd.Flags().Float64SliceVar(&fitDistances, "distance", nil, "distances (pm), parallel to --force")
	fitCmd.Flags().Float64Var(&fitQ1, "q1", 1, "first charge (multiples of e)")
	fitCmd.Flags().Float64Var(&fitQ2, "q2", 1, "second charge (multiples of e)")
	addPlotFlags(fitCmd, &fitPlot)
}
