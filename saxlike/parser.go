package saxlike

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

// SAX-like XML Parser
type Parser struct {
	*xml.Decoder
	handler Handler
}

// Create a New Parser
func NewParser(reader io.Reader, handler Handler) *Parser {
	decoder := xml.NewDecoder(reader)
	return &Parser{decoder, handler}
}

// SetHTMLMode make Parser can parse invalid HTML
func (p *Parser) SetHTMLMode() {
	p.Strict = false
	p.AutoClose = xml.HTMLAutoClose
	p.Entity = xml.HTMLEntity
}

// Parse calls handler's methods
// when the parser encounters a start-element, an end-element, a comment and so on.
// EndDocument is only called when the whole input was consumed.
func (p *Parser) Parse() error {
	p.handler.StartDocument()
	for {
		token, err := p.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("Parser.Parse: %w", err)
		}
		switch t := token.(type) {
		case xml.StartElement:
			p.handler.StartElement(t)
		case xml.EndElement:
			p.handler.EndElement(t)
		case xml.CharData:
			p.handler.CharData(t)
		case xml.Comment:
			p.handler.Comment(t)
		case xml.ProcInst:
			p.handler.ProcInst(t)
		case xml.Directive:
			p.handler.Directive(t)
		default:
			return fmt.Errorf("Parser.Parse: unknown xml token %T", token)
		}
	}
	p.handler.EndDocument()
	return nil
}

// Create a parser and parse
func Parse(reader io.Reader, handler Handler, htmlMode bool) error {
	parser := NewParser(reader, handler)
	if htmlMode {
		parser.SetHTMLMode()
	}
	return parser.Parse()
}
