package pinmap

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/participle/v2"
)

// Parser represents a pin map file parser
type Parser struct {
	parser *participle.Parser[BoardFile]
}

// NewParser creates a new pin map parser instance
func NewParser() (*Parser, error) {
	parser, err := participle.Build[BoardFile](
		participle.Lexer(PinMapLexer),
		participle.Elide("Comment", "Whitespace"),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}

	return &Parser{parser: parser}, nil
}

// Parse parses a pin map file from a reader
func (p *Parser) Parse(r io.Reader) (*BoardFile, error) {
	file, err := p.parser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return file, nil
}

// ParseString parses a pin map file from a string
func (p *Parser) ParseString(input string) (*BoardFile, error) {
	file, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return file, nil
}

// ParseFile parses a pin map file from a file path
func (p *Parser) ParseFile(filename string) (*BoardFile, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	return p.Parse(f)
}
