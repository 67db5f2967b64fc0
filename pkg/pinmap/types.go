package pinmap

import "sort"

// PinInfo describes the FPGA package pin behind one connector position.
type PinInfo struct {
	Pin         string // package pin identifier, e.g. "AB12"
	Bank        string // I/O bank sharing electrical configuration, e.g. "34"
	Description string // human-readable role, e.g. "Clock input"
}

// ConnectorMap maps connector id → connector position → package pin info.
// It is reference data: built once when a board is loaded and read-only
// afterwards.
type ConnectorMap map[string]map[string]PinInfo

// Lookup resolves a (connector, position) pair to its package pin info.
func (m ConnectorMap) Lookup(connector, position string) (PinInfo, bool) {
	positions, ok := m[connector]
	if !ok {
		return PinInfo{}, false
	}
	info, ok := positions[position]
	return info, ok
}

// Connectors returns all connector ids in sorted order.
func (m ConnectorMap) Connectors() []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Positions returns all positions on the given connector in sorted order.
func (m ConnectorMap) Positions(connector string) []string {
	positions := make([]string, 0, len(m[connector]))
	for pos := range m[connector] {
		positions = append(positions, pos)
	}
	sort.Strings(positions)
	return positions
}

// Len returns the total number of mapped positions across all connectors.
func (m ConnectorMap) Len() int {
	n := 0
	for _, positions := range m {
		n += len(positions)
	}
	return n
}

// Board bundles a named connector map with the FPGA device it targets.
type Board struct {
	Name       string       // board name, e.g. "PRODIGY_KU115"
	Device     string       // target part number, e.g. "xcku115-flvb2104-2-e"
	Connectors ConnectorMap // connector id → position → pin info
}
