package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showBoardPins bool

var boardsCmd = &cobra.Command{
	Use:   "boards [name]",
	Short: "List known boards or show one board's pin map",
	Long: `List the builtin boards plus any loaded from --pinmap paths, or show the
connectors and pin assignments of a single board.

Examples:
  otf boards
  otf boards PRODIGY_KU115
  otf boards DEMO -m boards/ --pins`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBoards,
}

func init() {
	rootCmd.AddCommand(boardsCmd)

	boardsCmd.Flags().StringSliceVarP(&pinmapPaths, "pinmap", "m", nil,
		"pin map file or directory to load (repeatable)")
	boardsCmd.Flags().BoolVar(&showBoardPins, "pins", false,
		"show every position to pin assignment")
}

func runBoards(cmd *cobra.Command, args []string) error {
	repo, err := loadBoardRepository(pinmapPaths)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		names := repo.Names()
		fmt.Printf("Known boards: %d\n", len(names))
		for _, name := range names {
			board, err := repo.Lookup(name)
			if err != nil {
				return err
			}
			fmt.Printf("  %-20s %-28s %d connector(s), %d pin(s)\n",
				name, board.Device, len(board.Connectors.Connectors()), board.Connectors.Len())
		}
		return nil
	}

	board, err := repo.Lookup(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("╔════════════════════════════════════════════════════════════════╗\n")
	fmt.Printf("║ Board Pin Map                                                  ║\n")
	fmt.Printf("╠════════════════════════════════════════════════════════════════╣\n")
	fmt.Printf("║ Board:  %-54s ║\n", board.Name)
	fmt.Printf("║ Device: %-54s ║\n", board.Device)
	fmt.Printf("╚════════════════════════════════════════════════════════════════╝\n\n")

	for _, conn := range board.Connectors.Connectors() {
		positions := board.Connectors.Positions(conn)
		fmt.Printf("Connector %s: %d position(s)\n", conn, len(positions))
		if showBoardPins || verbose {
			for _, pos := range positions {
				info, _ := board.Connectors.Lookup(conn, pos)
				fmt.Printf("  %-8s -> %-8s bank %-4s %s\n",
					pos, info.Pin, info.Bank, info.Description)
			}
		}
		fmt.Println()
	}

	return nil
}
