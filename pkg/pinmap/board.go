package pinmap

import (
	"fmt"
)

// ExtractBoard builds the connector map from a parsed pin map file.
// Duplicate connector ids or duplicate positions within a connector are
// errors: reference data must be unambiguous before any lookup happens.
func ExtractBoard(file *BoardFile) (*Board, error) {
	if file == nil || file.Board == nil {
		return nil, fmt.Errorf("pinmap: empty board file")
	}

	decl := file.Board
	board := &Board{
		Name:       decl.Name,
		Connectors: make(ConnectorMap, len(decl.Connectors)),
	}
	if decl.Device != nil {
		board.Device = decl.Device.Part.GetValue()
	}

	for _, conn := range decl.Connectors {
		if _, exists := board.Connectors[conn.ID]; exists {
			return nil, fmt.Errorf("pinmap: duplicate connector %s in board %s", conn.ID, decl.Name)
		}
		positions := make(map[string]PinInfo, len(conn.Positions))
		for _, pos := range conn.Positions {
			if _, exists := positions[pos.Position]; exists {
				return nil, fmt.Errorf("pinmap: duplicate position %s.%s in board %s", conn.ID, pos.Position, decl.Name)
			}
			positions[pos.Position] = PinInfo{
				Pin:         pos.Pin,
				Bank:        pos.Bank,
				Description: pos.Description.GetValue(),
			}
		}
		board.Connectors[conn.ID] = positions
	}

	return board, nil
}
