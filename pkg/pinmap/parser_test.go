package pinmap

import (
	"testing"
)

func TestParseSimpleBoard(t *testing.T) {
	input := `
	board TEST_BOARD is
	end board;
	`

	parser, err := NewParser()
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}

	file, err := parser.ParseString(input)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	if file.Board == nil {
		t.Fatal("Board is nil")
	}

	if file.Board.Name != "TEST_BOARD" {
		t.Errorf("Expected board name 'TEST_BOARD', got '%s'", file.Board.Name)
	}
}

func TestParseBoardWithDevice(t *testing.T) {
	input := `
	board TEST_BOARD is
		device "xcku115-flvb2104-2-e";
	end board;
	`

	parser, err := NewParser()
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}

	file, err := parser.ParseString(input)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	if file.Board.Device == nil {
		t.Fatal("Device clause is nil")
	}

	if got := file.Board.Device.Part.GetValue(); got != "xcku115-flvb2104-2-e" {
		t.Errorf("Expected device 'xcku115-flvb2104-2-e', got '%s'", got)
	}
}

func TestParseBoardWithConnectors(t *testing.T) {
	input := `
	-- Reference board for parser tests
	board TEST_BOARD is
		device "xc7a100t-csg324-1";

		connector J1 is
			A1 : pin AB12 bank 34 "Clock input";
			A2 : pin AB13 bank 34;
		end connector;

		connector J2 is
			B4 : pin K22 bank 66 "Reset";
		end connector;
	end board;
	`

	parser, err := NewParser()
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}

	file, err := parser.ParseString(input)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	if len(file.Board.Connectors) != 2 {
		t.Fatalf("Expected 2 connectors, got %d", len(file.Board.Connectors))
	}

	j1 := file.Board.Connectors[0]
	if j1.ID != "J1" {
		t.Errorf("Expected connector 'J1', got '%s'", j1.ID)
	}
	if len(j1.Positions) != 2 {
		t.Fatalf("Expected 2 positions on J1, got %d", len(j1.Positions))
	}

	a1 := j1.Positions[0]
	if a1.Position != "A1" {
		t.Errorf("Expected position 'A1', got '%s'", a1.Position)
	}
	if a1.Pin != "AB12" {
		t.Errorf("Expected pin 'AB12', got '%s'", a1.Pin)
	}
	if a1.Bank != "34" {
		t.Errorf("Expected bank '34', got '%s'", a1.Bank)
	}
	if got := a1.Description.GetValue(); got != "Clock input" {
		t.Errorf("Expected description 'Clock input', got '%s'", got)
	}

	// Description is optional
	a2 := j1.Positions[1]
	if a2.Description != nil {
		t.Errorf("Expected no description on A2, got '%s'", a2.Description.GetValue())
	}
}

func TestParseNumericPositions(t *testing.T) {
	input := `
	board NUMERIC is
		connector P1 is
			1 : pin A10 bank 14 "GPIO 1";
			2 : pin A11 bank 14 "GPIO 2";
			56 : pin B10 bank 15;
		end connector;
	end board;
	`

	parser, err := NewParser()
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}

	file, err := parser.ParseString(input)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	positions := file.Board.Connectors[0].Positions
	if len(positions) != 3 {
		t.Fatalf("Expected 3 positions, got %d", len(positions))
	}
	if positions[2].Position != "56" {
		t.Errorf("Expected position '56', got '%s'", positions[2].Position)
	}
}

func TestParseCaseInsensitiveKeywords(t *testing.T) {
	input := `
	BOARD UPPER IS
		CONNECTOR J1 IS
			A1 : PIN AB12 BANK 34 "Clock";
		END CONNECTOR;
	END BOARD;
	`

	parser, err := NewParser()
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}

	file, err := parser.ParseString(input)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	if file.Board.Name != "UPPER" {
		t.Errorf("Expected board name 'UPPER', got '%s'", file.Board.Name)
	}
}

func TestParseRejectsMalformedInput(t *testing.T) {
	parser, err := NewParser()
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}

	inputs := []string{
		``,
		`board MISSING_END is`,
		`board X is connector J1 is A1 pin AB12 bank 34; end connector; end board;`,
	}

	for _, input := range inputs {
		if _, err := parser.ParseString(input); err == nil {
			t.Errorf("Expected parse error for input %q", input)
		}
	}
}
