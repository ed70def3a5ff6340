package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/fetaleksej/pmc/ctrl"
	"github.com/fetaleksej/pmc/hw"
	"github.com/fetaleksej/pmc/zynqmp"
)

var serveOpenBrowser bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the controller state over HTTP.",
	Long: `serve builds the platform roster, starts the monitoring ` +
		`server, and keeps the controller running until interrupted. ` +
		`The port is taken from PMC_MONITOR_PORT (0 picks a free one).`,
	Run: func(_ *cobra.Command, _ []string) {
		regs := hw.NewModelRegisterFile()
		seq := hw.NewModelSequencer()

		registry := zynqmp.MakeBuilder().
			WithRegisterFile(regs).
			WithPowerSequencer(seq).
			Build()

		b := ctrl.MakeBuilder().
			WithRegistry(registry).
			WithRegisterFile(regs).
			WithPowerSequencer(seq).
			WithMonitorPort(envInt("PMC_MONITOR_PORT", 0)).
			WithOutputFileName(envString("PMC_OUTPUT", ""))
		if serveOpenBrowser {
			b = b.WithBrowser()
		}

		c := b.Build()

		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
		<-sigs

		fmt.Fprintln(os.Stderr, "Shutting down")
		c.Terminate()
		atexit.Exit(0)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().BoolVar(&serveOpenBrowser, "open", false,
		"Open the monitor URL in a browser")
}
