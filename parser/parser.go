// Package parser turns JavaScript source text into the parse tree
// consumed by the AST builder. Constructs outside the supported
// subset are still parsed, but only their source extent is kept.
package parser

import (
	"fmt"

	"github.com/estree-tools/estree/cst"
	"github.com/estree-tools/estree/token"
)

// parser ...
type parser struct {
	src   string
	lexer *lexer

	tok cst.Token
	// Byte extent of tok within src.
	tokStart int
	tokEnd   int
	// onNewLine reports a line terminator between the previous token
	// and tok.
	onNewLine bool

	prevTok cst.Token
	prevEnd int

	errors error
}

// newParser ...
func newParser(src string) *parser {
	p := &parser{src: src}
	p.lexer = newLexer(src, &p.errors)
	return p
}

// Parse parses the source code of a single JavaScript source file and
// returns the corresponding parse tree. The tree is complete up to
// the first syntax error; callers must treat it as garbage when the
// returned error is non-nil.
func Parse(src string) (*cst.Program, error) {
	p := newParser(src)
	p.next()
	program := p.parseProgram()
	return program, p.errors
}

// ParseSource parses a named source, prefixing any syntax errors with
// the name.
func ParseSource(name, src string) (*cst.Program, error) {
	program, err := Parse(src)
	if err != nil && name != "" {
		err = fmt.Errorf("%s: %w", name, err)
	}
	return program, err
}

// next ...
func (p *parser) next() {
	p.prevTok, p.prevEnd = p.tok, p.tokEnd
	p.tok = p.lexer.next()
	p.tokStart = p.lexer.tokenStart
	p.tokEnd = p.lexer.offset
	p.onNewLine = p.lexer.newlineBefore
}

// rescanRegex re-reads the current slash token as a regular
// expression literal.
func (p *parser) rescanRegex() {
	p.tok = p.lexer.rescanRegex(p.tok)
	p.tokStart = p.lexer.tokenStart
	p.tokEnd = p.lexer.offset
}

type parserState struct {
	c checkpoint

	tok       cst.Token
	tokStart  int
	tokEnd    int
	onNewLine bool
	prevTok   cst.Token
	prevEnd   int

	errors error
}

func (p *parser) mark() parserState {
	return parserState{
		c:         p.lexer.checkpoint(),
		tok:       p.tok,
		tokStart:  p.tokStart,
		tokEnd:    p.tokEnd,
		onNewLine: p.onNewLine,
		prevTok:   p.prevTok,
		prevEnd:   p.prevEnd,
		errors:    p.errors,
	}
}

func (p *parser) restore(state parserState) {
	p.lexer.rewind(state.c)
	p.tok = state.tok
	p.tokStart = state.tokStart
	p.tokEnd = state.tokEnd
	p.onNewLine = state.onNewLine
	p.prevTok = state.prevTok
	p.prevEnd = state.prevEnd
	// Truncate parser errors back to checkpoint state
	p.errors = state.errors
}

func (p *parser) peek() cst.Token {
	st := p.mark()
	p.next()
	tok := p.tok
	p.restore(st)
	return tok
}

// spanFrom closes the span of a production opened at the given token.
// The parser must have consumed the production's last token, and
// nothing past it.
func (p *parser) spanFrom(first cst.Token, start int) cst.Span {
	end := p.prevEnd
	if end < start {
		// Nothing was consumed; error paths only.
		end = start
	}
	return cst.NewSpan(first, p.prevTok, p.src[start:end])
}

func (p *parser) canInsertSemicolon() bool {
	kind := p.tok.Kind
	return kind == token.Semicolon || kind == token.RightBrace || kind == token.Eof || p.onNewLine
}

func (p *parser) semicolon() bool {
	if !p.canInsertSemicolon() {
		return false
	}

	if p.tok.Kind == token.Semicolon {
		p.next()
	}
	return true
}

func (p *parser) expect(value token.Token) {
	if p.tok.Kind != value {
		p.errorUnexpectedToken(p.tok.Kind)
	}
	p.next()
}

// isIdentifierToken reports whether the current token can serve as a
// plain identifier, contextual keywords included.
func isIdentifierToken(kind token.Token) bool {
	return kind == token.Identifier || token.Contextual(kind)
}
