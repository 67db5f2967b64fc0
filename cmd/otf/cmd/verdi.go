package cmd

import (
	"fmt"
	"strings"

	"github.com/OpenTraceLab/OpenTraceFPGA/pkg/project"
	"github.com/OpenTraceLab/OpenTraceFPGA/pkg/sim"
	"github.com/spf13/cobra"
)

var (
	verdiMode     string
	verdiSSF      string
	verdiUPF      string
	verdiFilelist string
)

var verdiCmd = &cobra.Command{
	Use:   "verdi [sources...]",
	Short: "Launch a Verdi debug session",
	Long: `Launch Verdi with a debug mode, a signal dump, and optional power intent.

Examples:
  otf verdi --mode rtl --ssf waves.fsdb
  otf verdi --mode gate --upf power.upf -f files.f
  otf verdi rtl/top.sv`,
	RunE: runVerdi,
}

func init() {
	rootCmd.AddCommand(verdiCmd)

	verdiCmd.Flags().StringVarP(&projectPath, "project", "p", "",
		"project file supplying defaults")
	verdiCmd.Flags().StringVar(&verdiMode, "mode", "",
		"debug mode (syn, rtl, or gate)")
	verdiCmd.Flags().StringVar(&verdiSSF, "ssf", "",
		"signal dump file")
	verdiCmd.Flags().StringVar(&verdiUPF, "upf", "",
		"UPF file for power analysis")
	verdiCmd.Flags().StringVarP(&verdiFilelist, "filelist", "f", "",
		"file containing the source file list")
}

func runVerdi(cmd *cobra.Command, args []string) error {
	opts := &sim.VerdiOptions{}

	if projectPath != "" {
		proj, err := project.Load(projectPath)
		if err != nil {
			return err
		}
		if proj.Verdi != nil {
			*opts = *proj.Verdi
		}
	}

	if verdiMode != "" {
		opts.Mode = verdiMode
	}
	if verdiSSF != "" {
		opts.SSF = verdiSSF
	}
	if verdiUPF != "" {
		opts.UPF = verdiUPF
	}
	if verdiFilelist != "" {
		opts.Filelist = verdiFilelist
	}
	if len(args) > 0 {
		opts.Sources = args
	}

	if err := opts.Validate(); err != nil {
		return err
	}

	verdi := sim.NewVerdi(commandRunner)

	fmt.Printf("Launching Verdi: %s\n", strings.Join(opts.Args(), " "))
	out, err := verdi.Launch(opts)
	if out != "" {
		fmt.Print(out)
	}
	return err
}
