package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edp1096/toy-coulomb/internal/consts"
	"github.com/edp1096/toy-coulomb/pkg/analysis"
	"github.com/edp1096/toy-coulomb/pkg/util"
)

var constantCmd = &cobra.Command{
	Use:   "constant",
	Short: "Print the accepted Coulomb constant",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "e0 = %s F/m\n", util.FormatScientific(consts.PERMITTIVITY, 4))
		fmt.Fprintf(out, "e  = %s C\n", util.FormatScientific(consts.CHARGE, 4))
		fmt.Fprintf(out, "k  = %s N*m^2/C^2\n", util.FormatScientific(analysis.AcceptedConstant(), 4))
		return nil
	},
}
