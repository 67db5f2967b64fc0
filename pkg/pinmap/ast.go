package pinmap

// BoardFile represents a complete parsed pin map file
// A pin map file contains exactly one board declaration
type BoardFile struct {
	Board *BoardDecl `parser:"@@"`
}

// BoardDecl represents the top-level board declaration
// Example: board PRODIGY_KU115 is ... end board;
type BoardDecl struct {
	Name       string           `parser:"KwBoard @Ident KwIs"`
	Device     *DeviceDecl      `parser:"@@?"`
	Connectors []*ConnectorDecl `parser:"@@* KwEnd KwBoard Semicolon"`
}

// DeviceDecl names the FPGA part the board carries
// Example: device "xcku115-flvb2104-2-e";
type DeviceDecl struct {
	Part *String `parser:"KwDevice @@ Semicolon"`
}

// ConnectorDecl represents one connector block with its position entries
// Example: connector J1 is ... end connector;
type ConnectorDecl struct {
	ID        string          `parser:"KwConnector @( Ident | Number ) KwIs"`
	Positions []*PositionDecl `parser:"@@* KwEnd KwConnector Semicolon"`
}

// PositionDecl maps one connector position to a package pin
// Example: A1 : pin AB12 bank 44 "User clock input";
type PositionDecl struct {
	Position    string  `parser:"@( Ident | Number ) Colon"`
	Pin         string  `parser:"KwPin @( Ident | Number )"`
	Bank        string  `parser:"KwBank @( Ident | Number )"`
	Description *String `parser:"@@? Semicolon"`
}

// String is a quoted string literal
type String struct {
	Value string `parser:"@String"`
}

// GetValue returns the string value without quotes
func (s *String) GetValue() string {
	if s == nil {
		return ""
	}
	if len(s.Value) >= 2 && s.Value[0] == '"' && s.Value[len(s.Value)-1] == '"' {
		return s.Value[1 : len(s.Value)-1]
	}
	return s.Value
}
