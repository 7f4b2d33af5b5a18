// Package cst models the JavaScript parse tree handed to the AST
// builder. Each grammar production is a concrete node with named
// accessors for its alternatives and children. Accessors return nil
// when the alternative did not match, so callers probe them in order
// instead of type switching on parser internals.
package cst

import (
	"github.com/estree-tools/estree/token"
)

// Token is a single lexed token carrying the position of its first
// character. Lines are 1-based, columns are 0-based.
type Token struct {
	Kind   token.Token
	Text   string
	Line   int
	Column int
}

// Span records the boundary tokens of a production together with the
// raw source text it covers.
type Span struct {
	first Token
	last  Token
	text  string
}

// NewSpan builds the span of a production from its boundary tokens
// and the matched source text.
func NewSpan(first, last Token, text string) Span {
	return Span{first: first, last: last, text: text}
}

// Start returns the first token of the production.
func (s Span) Start() Token { return s.first }

// Stop returns the last token of the production.
func (s Span) Stop() Token { return s.last }

// Text returns the raw source text the production matched.
func (s Span) Text() string { return s.text }

// Node is implemented by every parse tree production.
type Node interface {
	Start() Token
	Stop() Token
	Text() string
}

// SingleExpression is the closed set of singleExpression
// alternatives.
type SingleExpression interface {
	Node
	_singleExpression()
}

// IterationStatement is the closed set of loop statement
// alternatives.
type IterationStatement interface {
	Node
	_iterationStatement()
}
