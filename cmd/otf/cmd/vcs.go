package cmd

import (
	"fmt"
	"strings"

	"github.com/OpenTraceLab/OpenTraceFPGA/pkg/project"
	"github.com/OpenTraceLab/OpenTraceFPGA/pkg/sim"
	"github.com/spf13/cobra"
)

// commandRunner executes the external simulation tools. Tests swap in a
// sim.FakeCommandRunner.
var commandRunner sim.CommandRunner = &sim.ExecCommandRunner{}

var (
	vcsTimescale string
	vcsDebug     bool
	vcsCoverage  bool
	vcsFull64    bool
	vcsSverilog  bool
	vcsAssert    bool
	vcsFilelist  string
	vcsIncludes  []string
	vcsRun       bool
	vcsGUI       bool
	vcsPlusArgs  []string
)

var vcsCmd = &cobra.Command{
	Use:   "vcs [sources...]",
	Short: "Compile and optionally simulate with Synopsys VCS",
	Long: `Compile Verilog or SystemVerilog sources with vcs and optionally run the
resulting simv binary.

A project file can supply the whole vcs section; flags and source arguments
win over project values.

Examples:
  otf vcs --sverilog --full64 rtl/top.sv tb/tb_top.sv
  otf vcs --debug --coverage -f files.f
  otf vcs --run --gui --plusargs +seed=42 rtl/top.v`,
	RunE: runVcs,
}

func init() {
	rootCmd.AddCommand(vcsCmd)

	vcsCmd.Flags().StringVarP(&projectPath, "project", "p", "",
		"project file supplying defaults")
	vcsCmd.Flags().StringVar(&vcsTimescale, "timescale", "",
		"simulation timescale (default "+sim.DefaultTimescale+")")
	vcsCmd.Flags().BoolVar(&vcsDebug, "debug", false,
		"enable full debug access")
	vcsCmd.Flags().BoolVar(&vcsCoverage, "coverage", false,
		"enable coverage collection")
	vcsCmd.Flags().BoolVar(&vcsFull64, "full64", false,
		"use 64-bit compilation")
	vcsCmd.Flags().BoolVar(&vcsSverilog, "sverilog", false,
		"enable SystemVerilog features")
	vcsCmd.Flags().BoolVar(&vcsAssert, "assert", false,
		"enable SystemVerilog assertions")
	vcsCmd.Flags().StringVarP(&vcsFilelist, "filelist", "f", "",
		"file containing the source file list")
	vcsCmd.Flags().StringSliceVar(&vcsIncludes, "includes", nil,
		"include directory (repeatable)")
	vcsCmd.Flags().BoolVar(&vcsRun, "run", false,
		"run simulation after compilation")
	vcsCmd.Flags().BoolVar(&vcsGUI, "gui", false,
		"run simulation in GUI mode")
	vcsCmd.Flags().StringSliceVar(&vcsPlusArgs, "plusargs", nil,
		"runtime plusarg for simulation (repeatable)")
}

func runVcs(cmd *cobra.Command, args []string) error {
	opts, err := vcsOptions(args)
	if err != nil {
		return err
	}

	vcs := sim.NewVCS(commandRunner)

	fmt.Printf("Executing VCS compilation: %s\n", strings.Join(opts.CompileArgs(), " "))
	out, err := vcs.Compile(opts)
	if out != "" {
		fmt.Print(out)
	}
	if err != nil {
		return err
	}

	if opts.Run {
		fmt.Printf("Executing simulation: %s\n", strings.Join(opts.SimArgs(), " "))
		out, err := vcs.Simulate(opts)
		if out != "" {
			fmt.Print(out)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// vcsOptions merges the project file (if any), flags, and positional
// sources into one option set. Zero-valued flags leave project values
// alone.
func vcsOptions(args []string) (*sim.VCSOptions, error) {
	opts := sim.DefaultVCSOptions()

	if projectPath != "" {
		proj, err := project.Load(projectPath)
		if err != nil {
			return nil, err
		}
		if proj.VCS != nil {
			*opts = *proj.VCS
		}
	}

	if vcsTimescale != "" {
		opts.Timescale = vcsTimescale
	}
	if vcsDebug {
		opts.Debug = true
	}
	if vcsCoverage {
		opts.Coverage = true
	}
	if vcsFull64 {
		opts.Full64 = true
	}
	if vcsSverilog {
		opts.SystemVerilog = true
	}
	if vcsAssert {
		opts.Assertions = true
	}
	if vcsFilelist != "" {
		opts.Filelist = vcsFilelist
	}
	if len(vcsIncludes) > 0 {
		opts.Includes = vcsIncludes
	}
	if vcsRun {
		opts.Run = true
	}
	if vcsGUI {
		opts.GUI = true
	}
	if len(vcsPlusArgs) > 0 {
		opts.PlusArgs = vcsPlusArgs
	}
	if len(args) > 0 {
		opts.Sources = args
	}

	return opts, nil
}
