package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edp1096/toy-coulomb/pkg/table"
	"github.com/edp1096/toy-coulomb/pkg/units"
)

var (
	recordStart    float64
	recordStep     float64
	recordExponent float64
	recordForces   []float64
	recordPlot     plotFlags

	chargePairs []string
	chargePlot  plotFlags
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record forces at evenly spaced distances",
	Long: `Records one row per force value. The distance starts at --start and
grows by --step for each subsequent value. With --exp every force is
read as a mantissa and scaled by 10^exp.

  coulomb record --start 10 --step 5 --exp -7 --force 8.1,3.6,2.0,1.3`,
	RunE: runRecord,
}

var chargesCmd = &cobra.Command{
	Use:   "charges",
	Short: "Record explicit force:distance pairs",
	Long: `Records one row per --pair F:r, force in newtons and distance in pm.

  coulomb charges --pair 2.3e-6:10 --pair 5.75e-7:20`,
	RunE: runCharges,
}

func runRecord(cmd *cobra.Command, args []string) error {
	if len(recordForces) == 0 {
		return fmt.Errorf("no forces given, use --force")
	}

	scaled := make([]float64, len(recordForces))
	for i, f := range recordForces {
		scaled[i] = units.E(f, recordExponent)
	}

	t := table.New(cfg.MaxRows)
	if err := table.Record(t, recordStart, recordStep, scaled...); err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), t)
	return recordPlot.maybeShow(t)
}

func runCharges(cmd *cobra.Command, args []string) error {
	records, err := parsePairs(chargePairs)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("no pairs given, use --pair")
	}

	t := table.New(cfg.MaxRows)
	if err := table.RecordCharges(t, records...); err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), t)
	return chargePlot.maybeShow(t)
}

func init() {
	recordCmd.Flags().Float64Var(&recordStart, "start", 0, "first distance (pm)")
	recordCmd.Flags().Float64Var(&recordStep, "step", 0, "distance increment (pm)")
	recordCmd.Flags().Float64Var(&recordExponent, "exp", 0, "power of ten applied to each force")
	recordCmd.Flags().Float64SliceVar(&recordForces, "force", nil, "force values (N)")
	addPlotFlags(recordCmd, &recordPlot)

	chargesCmd.Flags().StringArrayVar(&chargePairs, "pair", nil, "measurement as F:r (N:pm)")
	addPlotFlags(chargesCmd, &chargePlot)
}
