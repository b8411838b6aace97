package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/edp1096/toy-coulomb/internal/config"
	"github.com/edp1096/toy-coulomb/pkg/plot"
	"github.com/edp1096/toy-coulomb/pkg/table"
)

// PlotFunc displays a rendered table. The window backend is wired in by main.
type PlotFunc func(t *table.Table, opts plot.Options) error

var (
	cfg     *config.Lab
	plotter PlotFunc = func(*table.Table, plot.Options) error {
		return fmt.Errorf("no plot display available")
	}

	verbose bool
	maxRows int
)

var rootCmd = &cobra.Command{
	Use:   "coulomb",
	Short: "Coulomb's law lab toolkit",
	Long: `coulomb records force vs. distance measurements, fits force against
the inverse-square distance and derives an experimental value of
Coulomb's constant, compared with 1/(4*pi*e0).

Distances are given in picometers, forces in newtons and charges as
multiples of the elementary charge.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cmd.Flags().Changed("max-rows") {
		cfg.MaxRows = maxRows
	}

	logrus.SetOutput(cmd.ErrOrStderr())
	logrus.SetLevel(logrus.InfoLevel)
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	return nil
}

// SetPlotter installs the function used by --plot.
func SetPlotter(fn PlotFunc) {
	plotter = fn
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run executes the root command with args, used by tests.
func run(out io.Writer, args ...string) error {
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().IntVar(&maxRows, "max-rows", table.DefaultMaxLimit, "table capacity (overrides COULOMB_MAX_ROWS)")

	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(chargesCmd)
	rootCmd.AddCommand(fitCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(constantCmd)
}
