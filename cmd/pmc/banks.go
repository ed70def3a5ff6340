package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fetaleksej/pmc/hw"
	"github.com/fetaleksej/pmc/zynqmp"
)

var banksCmd = &cobra.Command{
	Use:   "banks",
	Short: "Print the platform's memory bank roster.",
	Run: func(_ *cobra.Command, _ []string) {
		registry := zynqmp.MakeBuilder().
			WithRegisterFile(hw.NewModelRegisterFile()).
			WithPowerSequencer(hw.NewModelSequencer()).
			Build()

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NODE\tNAME\tFLAVOR\tSTATE\tSHAREABLE\tMASTERS")

		for _, s := range registry.All() {
			fmt.Fprintf(w, "%d\t%s\t%s\t%v\t%v\t%d\n",
				int(s.ID()), s.Name(), s.FSM().Name,
				s.CurrentState(), s.Shareable(),
				s.Requirements().Len())
		}

		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(banksCmd)
}
