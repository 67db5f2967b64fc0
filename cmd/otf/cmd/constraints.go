package cmd

import (
	"fmt"
	"os"

	"github.com/OpenTraceLab/OpenTraceFPGA/pkg/pinmap"
	"github.com/OpenTraceLab/OpenTraceFPGA/pkg/project"
	"github.com/OpenTraceLab/OpenTraceFPGA/pkg/xdc"
	"github.com/spf13/cobra"
)

var (
	boardName   string
	pinmapPaths []string
	outputPath  string
	projectPath string
)

var constraintsCmd = &cobra.Command{
	Use:   "constraints [csv-file]",
	Short: "Generate Vivado pin constraints from an I/O assignment table",
	Long: `Generate a Vivado XDC document from a CSV table of logical signal
assignments and a board pin map.

Each CSV record is "signal,connector,position,voltage". Assignments that
cannot be resolved against the board become inline # ERROR comments in the
document instead of aborting the run.

With no --output the document goes to stdout. A project file can supply the
board, the CSV path, pin map directories, and the output path; explicit
flags and arguments win over project values.

Examples:
  otf constraints io_assignments.csv --board PRODIGY_KU115
  otf constraints io_assignments.csv -b DEMO -m boards/ -o top_io.xdc
  otf constraints --project fpga.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConstraints,
}

func init() {
	rootCmd.AddCommand(constraintsCmd)

	constraintsCmd.Flags().StringVarP(&boardName, "board", "b", "",
		"board pin map to resolve against")
	constraintsCmd.Flags().StringSliceVarP(&pinmapPaths, "pinmap", "m", nil,
		"pin map file or directory to load (repeatable)")
	constraintsCmd.Flags().StringVarP(&outputPath, "output", "o", "",
		"write the document to a file instead of stdout")
	constraintsCmd.Flags().StringVarP(&projectPath, "project", "p", "",
		"project file supplying defaults")
}

func runConstraints(cmd *cobra.Command, args []string) error {
	csvPath := ""
	if len(args) == 1 {
		csvPath = args[0]
	}

	board := boardName
	output := outputPath
	paths := pinmapPaths

	if projectPath != "" {
		proj, err := project.Load(projectPath)
		if err != nil {
			return err
		}
		if board == "" {
			board = proj.Board
		}
		if csvPath == "" {
			csvPath = proj.Assignments
		}
		if output == "" {
			output = proj.Constraints
		}
		paths = append(paths, proj.PinmapDirs...)
	}

	if board == "" {
		return fmt.Errorf("no board selected: use --board or a project file")
	}
	if csvPath == "" {
		return fmt.Errorf("no assignment table: pass a CSV file or set assignments in the project file")
	}

	repo, err := loadBoardRepository(paths)
	if err != nil {
		return err
	}

	b, err := repo.Lookup(board)
	if err != nil {
		return err
	}

	assignments, err := xdc.ParseAssignmentsFile(csvPath)
	if err != nil {
		return err
	}

	doc := xdc.Generate(assignments, b.Connectors)

	if output == "" {
		fmt.Print(doc)
		return nil
	}

	if err := os.WriteFile(output, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}

	unresolved := xdc.CountUnresolved(assignments, b.Connectors)
	fmt.Printf("Wrote %d constraint(s) for board %s to %s\n",
		len(assignments)-unresolved, b.Name, output)
	if unresolved > 0 {
		fmt.Printf("Warning: %d assignment(s) could not be resolved (see # ERROR comments)\n",
			unresolved)
	}
	return nil
}

// loadBoardRepository builds a repository of the builtin boards plus any
// pin maps found at the given file or directory paths.
func loadBoardRepository(paths []string) (*pinmap.MemoryRepository, error) {
	repo := pinmap.NewBuiltinRepository()
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read pin map path %s: %w", path, err)
		}
		if info.IsDir() {
			if err := repo.LoadDir(path); err != nil {
				return nil, err
			}
			continue
		}
		if err := repo.LoadFiles(path); err != nil {
			return nil, err
		}
	}
	return repo, nil
}
