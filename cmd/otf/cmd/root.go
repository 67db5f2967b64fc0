package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "otf",
	Short: "OpenTraceFPGA - FPGA pin constraint and simulation flow tools",
	Long: `OpenTraceFPGA (otf) turns board-level I/O assignment tables into Vivado
pin constraints and drives the Synopsys simulation tools:
  - Vivado XDC generation from CSV assignments and board pin maps
  - Board pin map inspection (builtin boards and .pinmap files)
  - VCS compilation and simulation
  - Verdi debug sessions

Examples:
  otf constraints io_assignments.csv --board PRODIGY_KU115
  otf boards PRODIGY_KU115 --pins
  otf vcs --sverilog --run rtl/top.sv tb/tb_top.sv
  otf verdi --mode rtl --ssf waves.fsdb`,
	Version: "0.2.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
