package parser

import (
	"errors"
	"fmt"

	"github.com/estree-tools/estree/token"
)

const (
	errUnexpectedToken        = "Unexpected token %v"
	errUnexpectedEndOfInput   = "Unexpected end of input"
	errUnexpectedIdentifier   = "Unexpected identifier"
	errUnexpectedReservedWord = "Unexpected reserved word"
	errUnexpectedNumber       = "Unexpected number"
	errUnexpectedString       = "Unexpected string"
	errUnexpectedCharacter    = "Unexpected character %q"
	errUnterminatedString     = "Unterminated string literal"
	errUnterminatedTemplate   = "Unterminated template literal"
	errUnterminatedRegex      = "Unterminated regular expression literal"
	errUnterminatedComment    = "Unterminated comment"
	errInvalidUnicodeEscape   = "Invalid Unicode escape sequence"
	errInvalidNumber          = "Invalid numeric literal"
	errIdentifierAfterNumber  = "Identifier directly after number"
)

// SyntaxError reports one malformed piece of input. Parsing continues
// past the error, so a single run can report several.
type SyntaxError struct {
	Line   int
	Column int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d:%d %s", e.Line, e.Column, e.Msg)
}

func (p *parser) errorf(msg string, msgValues ...any) {
	p.errors = errors.Join(p.errors, &SyntaxError{
		Line:   p.tok.Line,
		Column: p.tok.Column,
		Msg:    fmt.Sprintf(msg, msgValues...),
	})
}

func (p *parser) errorUnexpectedToken(tkn token.Token) {
	switch tkn {
	case token.Eof:
		p.errorf(errUnexpectedEndOfInput)
	case token.Identifier:
		p.errorf(errUnexpectedIdentifier)
	case token.Keyword:
		p.errorf(errUnexpectedReservedWord)
	case token.Number, token.Bigint:
		p.errorf(errUnexpectedNumber)
	case token.String:
		p.errorf(errUnexpectedString)
	default:
		p.errorf(errUnexpectedToken, tkn)
	}
}
