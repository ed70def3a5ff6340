package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fetaleksej/pmc/ctrl"
	"github.com/fetaleksej/pmc/hw"
	"github.com/fetaleksej/pmc/pm"
	"github.com/fetaleksej/pmc/zynqmp"
)

var demoFailL2 bool

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a scripted suspend/resume transition sequence.",
	Long: `demo suspends the OCM banks into retention, powers the L2 ` +
		`bank off, and brings everything back up, printing each ` +
		`transition outcome. With --fail-l2 the L2 power-down primitive ` +
		`is made to fail, demonstrating that the recorded state stays ` +
		`authoritative.`,
	Run: func(_ *cobra.Command, _ []string) {
		regs := hw.NewModelRegisterFile()
		seq := hw.NewModelSequencer()

		registry := zynqmp.MakeBuilder().
			WithRegisterFile(regs).
			WithPowerSequencer(seq).
			Build()

		c := ctrl.MakeBuilder().
			WithRegistry(registry).
			WithRegisterFile(regs).
			WithPowerSequencer(seq).
			WithoutMonitoring().
			WithOutputFileName(envString("PMC_OUTPUT", "")).
			Build()
		defer c.Terminate()

		if demoFailL2 {
			seq.FailPowerDown(zynqmp.NodeL2, hw.ErrSequenceFailed)
		}

		script := []struct {
			node   pm.NodeID
			target pm.StateID
		}{
			{zynqmp.NodeOCMBank0, pm.StateRetention},
			{zynqmp.NodeOCMBank1, pm.StateRetention},
			{zynqmp.NodeL2, pm.StateOff},
			{zynqmp.NodeOCMBank0, pm.StateOn},
			{zynqmp.NodeOCMBank1, pm.StateOn},
			{zynqmp.NodeL2, pm.StateOn},
		}

		engine := c.Engine()
		for _, step := range script {
			slave := registry.MustGet(step.node)
			from := slave.CurrentState()

			err := engine.RequestTransition(step.node, step.target)
			if err != nil {
				fmt.Printf("%-10s %v -> %v: %v\n",
					slave.Name(), from, step.target, err)
				continue
			}

			fmt.Printf("%-10s %v -> %v: ok\n",
				slave.Name(), from, step.target)
		}

		fmt.Printf("retention control register: %#010x\n",
			regs.Read32(zynqmp.RAMRetCtrl))
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().BoolVar(&demoFailL2, "fail-l2", false,
		"Inject a power-down failure on the L2 bank")
}
