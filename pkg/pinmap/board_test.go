package pinmap

import (
	"testing"
)

func mustParse(t *testing.T, input string) *BoardFile {
	t.Helper()
	parser, err := NewParser()
	if err != nil {
		t.Fatalf("parser init failed: %v", err)
	}
	file, err := parser.ParseString(input)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return file
}

func TestExtractBoard(t *testing.T) {
	file := mustParse(t, `
	board DEMO is
		device "xc7a35t-cpg236-1";
		connector J1 is
			A1 : pin AB12 bank 34 "Clock Input";
			A2 : pin AB13 bank 34;
		end connector;
		connector J2 is
			B4 : pin K22 bank 66 "Reset";
		end connector;
	end board;
	`)

	board, err := ExtractBoard(file)
	if err != nil {
		t.Fatalf("ExtractBoard failed: %v", err)
	}

	if board.Name != "DEMO" {
		t.Errorf("board name = %s, want DEMO", board.Name)
	}
	if board.Device != "xc7a35t-cpg236-1" {
		t.Errorf("device = %s, want xc7a35t-cpg236-1", board.Device)
	}
	if board.Connectors.Len() != 3 {
		t.Errorf("mapped positions = %d, want 3", board.Connectors.Len())
	}

	info, ok := board.Connectors.Lookup("J1", "A1")
	if !ok {
		t.Fatal("J1.A1 not found")
	}
	if info.Pin != "AB12" || info.Bank != "34" || info.Description != "Clock Input" {
		t.Errorf("J1.A1 = %+v, want {AB12 34 Clock Input}", info)
	}

	// Missing description defaults to empty
	info, ok = board.Connectors.Lookup("J1", "A2")
	if !ok {
		t.Fatal("J1.A2 not found")
	}
	if info.Description != "" {
		t.Errorf("J1.A2 description = %q, want empty", info.Description)
	}

	if _, ok := board.Connectors.Lookup("J1", "Z9"); ok {
		t.Error("J1.Z9 should not resolve")
	}
	if _, ok := board.Connectors.Lookup("J9", "A1"); ok {
		t.Error("J9.A1 should not resolve")
	}
}

func TestExtractBoardDuplicateConnector(t *testing.T) {
	file := mustParse(t, `
	board DUP is
		connector J1 is
			A1 : pin AB12 bank 34;
		end connector;
		connector J1 is
			A2 : pin AB13 bank 34;
		end connector;
	end board;
	`)

	if _, err := ExtractBoard(file); err == nil {
		t.Fatal("expected duplicate connector error")
	}
}

func TestExtractBoardDuplicatePosition(t *testing.T) {
	file := mustParse(t, `
	board DUP is
		connector J1 is
			A1 : pin AB12 bank 34;
			A1 : pin AB13 bank 34;
		end connector;
	end board;
	`)

	if _, err := ExtractBoard(file); err == nil {
		t.Fatal("expected duplicate position error")
	}
}

func TestConnectorMapOrdering(t *testing.T) {
	m := ConnectorMap{
		"J2": {"B1": {Pin: "K22", Bank: "66"}},
		"J1": {
			"A2": {Pin: "AB13", Bank: "44"},
			"A1": {Pin: "AB12", Bank: "44"},
		},
	}

	connectors := m.Connectors()
	if len(connectors) != 2 || connectors[0] != "J1" || connectors[1] != "J2" {
		t.Errorf("Connectors() = %v, want [J1 J2]", connectors)
	}

	positions := m.Positions("J1")
	if len(positions) != 2 || positions[0] != "A1" || positions[1] != "A2" {
		t.Errorf("Positions(J1) = %v, want [A1 A2]", positions)
	}

	if got := m.Positions("J9"); len(got) != 0 {
		t.Errorf("Positions(J9) = %v, want empty", got)
	}
}
