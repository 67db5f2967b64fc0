package pinmap

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// PinMapLexer defines the lexical structure for board pin map files.
// The format borrows VHDL conventions (BSDL heritage): "--" comments,
// case-insensitive keywords, semicolon-terminated entries.
var PinMapLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments - VHDL style (-- to end of line)
	{Name: "Comment", Pattern: `--[^\n]*`},

	// Whitespace
	{Name: "Whitespace", Pattern: `[\s\t\n\r]+`},

	// Keywords (case-insensitive)
	{Name: "KwBoard", Pattern: `(?i)\bBOARD\b`},
	{Name: "KwConnector", Pattern: `(?i)\bCONNECTOR\b`},
	{Name: "KwDevice", Pattern: `(?i)\bDEVICE\b`},
	{Name: "KwPin", Pattern: `(?i)\bPIN\b`},
	{Name: "KwBank", Pattern: `(?i)\bBANK\b`},
	{Name: "KwIs", Pattern: `(?i)\bIS\b`},
	{Name: "KwEnd", Pattern: `(?i)\bEND\b`},

	// String literals (device part numbers, pin descriptions)
	{Name: "String", Pattern: `"(?:[^"\\]|\\.)*"`},

	// Punctuation
	{Name: "Colon", Pattern: `:`},
	{Name: "Semicolon", Pattern: `;`},

	// Identifiers (connector ids, positions, package pins)
	{Name: "Ident", Pattern: `[a-zA-Z][a-zA-Z0-9_]*`},

	// Bare numbers (numeric positions and bank ids)
	{Name: "Number", Pattern: `[0-9]+`},
})
