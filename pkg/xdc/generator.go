// Package xdc generates Vivado XDC pin-constraint documents from board I/O
// assignment tables. The generation itself is a pure function: the same
// assignments and connector map always produce the same bytes.
package xdc

import (
	"fmt"
	"strings"

	"github.com/OpenTraceLab/OpenTraceFPGA/pkg/pinmap"
)

const (
	headerLine1 = "# Automatically generated Vivado constraints file"
	headerLine2 = "# Generated from I/O mapping CSV data"

	// ioStandardFamily is the single I/O family emitted. Boards mixing
	// families would replace the concatenation in ioStandard with a
	// voltage table.
	ioStandardFamily = "LVCMOS"
)

// Generate renders the constraints document for the given assignments against
// a connector map. Every assignment contributes exactly one block, in input
// order: a resolved block (comment, PACKAGE_PIN and IOSTANDARD directives)
// when the (connector, position) pair is known, or an inline error comment
// when it is not. Unresolved pairs never abort generation; the document is
// the report.
func Generate(assignments []Assignment, pins pinmap.ConnectorMap) string {
	lines := make([]string, 0, 3+4*len(assignments))
	lines = append(lines, headerLine1, headerLine2, "")

	for _, a := range assignments {
		info, ok := pins.Lookup(a.Connector, a.Position)
		if !ok {
			lines = append(lines,
				fmt.Sprintf("# ERROR: Could not find mapping for %s on %s.%s", a.Signal, a.Connector, a.Position),
				"")
			continue
		}
		lines = append(lines,
			fmt.Sprintf("# %s - %s.%s - %s (%s)", a.Signal, a.Connector, a.Position, info.Description, info.Bank),
			fmt.Sprintf("set_property PACKAGE_PIN %s [get_ports %s]", info.Pin, a.Signal),
			fmt.Sprintf("set_property IOSTANDARD %s [get_ports %s]", ioStandard(a.IOStandard), a.Signal),
			"")
	}

	return strings.Join(lines, "\n")
}

// GenerateCSV parses CSV assignment data and renders the constraints document
// in one call.
func GenerateCSV(csvData string, pins pinmap.ConnectorMap) (string, error) {
	assignments, err := ParseAssignmentsString(csvData)
	if err != nil {
		return "", err
	}
	return Generate(assignments, pins), nil
}

// CountUnresolved reports how many assignments have no entry in the connector
// map. Useful for summaries; the generated document already marks each one.
func CountUnresolved(assignments []Assignment, pins pinmap.ConnectorMap) int {
	n := 0
	for _, a := range assignments {
		if _, ok := pins.Lookup(a.Connector, a.Position); !ok {
			n++
		}
	}
	return n
}

// ioStandard converts a voltage level ("3.3V") into a Vivado IOSTANDARD name
// ("LVCMOS3.3") by stripping the trailing unit marker.
func ioStandard(voltage string) string {
	return ioStandardFamily + strings.TrimSuffix(voltage, "V")
}
