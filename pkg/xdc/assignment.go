package xdc

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// Assignment binds one logical I/O signal to a position on a board connector.
type Assignment struct {
	Signal     string // logical port name in the design, e.g. "CLK_IN"
	Connector  string // board connector id, e.g. "J1"
	Position   string // position on the connector, e.g. "A1"
	IOStandard string // signaling voltage, e.g. "3.3V"
}

// ParseAssignments reads comma-separated assignment records from a reader.
// Each record carries signal, connector, position and voltage in that order;
// there is no header row. Records with fewer than four fields are skipped,
// fields past the fourth are ignored. Standard CSV quoting applies, so signal
// names may embed commas when quoted. Only structurally invalid CSV (for
// example a stray quote) fails the whole call.
func ParseAssignments(r io.Reader) ([]Assignment, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("xdc: parse assignments: %w", err)
	}

	var assignments []Assignment
	for _, record := range records {
		if len(record) < 4 {
			continue
		}
		assignments = append(assignments, Assignment{
			Signal:     record[0],
			Connector:  record[1],
			Position:   record[2],
			IOStandard: record[3],
		})
	}
	return assignments, nil
}

// ParseAssignmentsString parses assignment records from a string.
func ParseAssignmentsString(input string) ([]Assignment, error) {
	return ParseAssignments(strings.NewReader(input))
}

// ParseAssignmentsFile parses assignment records from a file path.
func ParseAssignmentsFile(filename string) ([]Assignment, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("xdc: open %s: %w", filename, err)
	}
	defer f.Close()

	return ParseAssignments(f)
}
