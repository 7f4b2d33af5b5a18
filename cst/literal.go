package cst

import (
	"strings"

	"github.com/estree-tools/estree/token"
)

// Literal wraps exactly one literal alternative. The null, boolean,
// string and regular expression forms are bare tokens told apart by
// kind, the numeric, bigint and template forms are sub rules.
type Literal struct {
	Span
	tok *Token
	sub Node
}

// NewTokenLiteral builds a literal backed by a null, boolean, string
// or regular expression token.
func NewTokenLiteral(sp Span, tok Token) *Literal {
	return &Literal{Span: sp, tok: &tok}
}

// NewRuleLiteral builds a literal backed by a numeric, bigint or
// template sub rule.
func NewRuleLiteral(sp Span, sub Node) *Literal {
	return &Literal{Span: sp, sub: sub}
}

func (l *Literal) kindToken(kind token.Token) *Token {
	if l.tok == nil || l.tok.Kind != kind {
		return nil
	}
	return l.tok
}

func (l *Literal) NullLiteral() *Token              { return l.kindToken(token.Null) }
func (l *Literal) BooleanLiteral() *Token           { return l.kindToken(token.Boolean) }
func (l *Literal) StringLiteral() *Token            { return l.kindToken(token.String) }
func (l *Literal) RegularExpressionLiteral() *Token { return l.kindToken(token.Regex) }

func (l *Literal) NumericLiteral() *NumericLiteral {
	n, _ := l.sub.(*NumericLiteral)
	return n
}

func (l *Literal) BigintLiteral() *BigintLiteral {
	n, _ := l.sub.(*BigintLiteral)
	return n
}

func (l *Literal) TemplateStringLiteral() *TemplateStringLiteral {
	n, _ := l.sub.(*TemplateStringLiteral)
	return n
}

// NumericLiteral is a numeric literal token in one of the decimal,
// hex, octal, legacy octal or binary spellings.
type NumericLiteral struct {
	Span
	tok Token
}

func NewNumericLiteral(sp Span, tok Token) *NumericLiteral {
	return &NumericLiteral{Span: sp, tok: tok}
}

func (n *NumericLiteral) DecimalLiteral() *Token       { return n.formToken(numDecimal) }
func (n *NumericLiteral) HexIntegerLiteral() *Token    { return n.formToken(numHex) }
func (n *NumericLiteral) OctalIntegerLiteral() *Token  { return n.formToken(numLegacyOctal) }
func (n *NumericLiteral) OctalIntegerLiteral2() *Token { return n.formToken(numOctal) }
func (n *NumericLiteral) BinaryIntegerLiteral() *Token { return n.formToken(numBinary) }

type numericForm int

const (
	numDecimal numericForm = iota
	numHex
	numOctal
	numLegacyOctal
	numBinary
)

func (n *NumericLiteral) formToken(form numericForm) *Token {
	if classifyNumeric(n.tok.Text) != form {
		return nil
	}
	tok := n.tok
	return &tok
}

// classifyNumeric tells the literal spellings apart by prefix. A
// leading zero followed only by octal digits is the legacy octal
// form, anything else starting with a digit is decimal.
func classifyNumeric(text string) numericForm {
	if len(text) > 1 && text[0] == '0' {
		switch text[1] {
		case 'x', 'X':
			return numHex
		case 'o', 'O':
			return numOctal
		case 'b', 'B':
			return numBinary
		}
		if strings.IndexFunc(text[1:], func(r rune) bool { return r < '0' || r > '7' }) < 0 {
			return numLegacyOctal
		}
	}
	return numDecimal
}

// BigintLiteral is a numeric literal with the n suffix.
type BigintLiteral struct{ Span }

// TemplateStringLiteral is a backquoted template literal.
type TemplateStringLiteral struct{ Span }

// ArrayLiteral is '[' elementList ']'.
type ArrayLiteral struct {
	Span
	list *ElementList
}

func NewArrayLiteral(sp Span, list *ElementList) *ArrayLiteral {
	return &ArrayLiteral{Span: sp, list: list}
}

// ElementList returns the element list, or nil for an empty array.
func (a *ArrayLiteral) ElementList() *ElementList { return a.list }

// ElementList is the comma separated array elements. A nil entry
// records an elision.
type ElementList struct {
	Span
	elements []*ArrayElement
}

func NewElementList(sp Span, elements []*ArrayElement) *ElementList {
	return &ElementList{Span: sp, elements: elements}
}

// ArrayElements returns the elements in source order, nil entries
// included.
func (e *ElementList) ArrayElements() []*ArrayElement { return e.elements }

// ArrayElement is an optional spread ellipsis and an expression.
type ArrayElement struct {
	Span
	ellipsis *Token
	expr     SingleExpression
}

func NewArrayElement(sp Span, ellipsis *Token, expr SingleExpression) *ArrayElement {
	return &ArrayElement{Span: sp, ellipsis: ellipsis, expr: expr}
}

// Ellipsis returns the ... token, or nil when the element is not a
// spread.
func (a *ArrayElement) Ellipsis() *Token { return a.ellipsis }

func (a *ArrayElement) SingleExpression() SingleExpression { return a.expr }

// ObjectLiteral is recognized and spanned but carries no further
// structure.
type ObjectLiteral struct{ Span }

// Identifier is an identifier or a keyword admissible as one. Its
// name is the matched text.
type Identifier struct{ Span }

// Assignable is the binding side of a variable declaration. Exactly
// one accessor returns non-nil.
type Assignable struct {
	Span
	alt Node
}

func NewAssignable(sp Span, alt Node) *Assignable {
	return &Assignable{Span: sp, alt: alt}
}

func (a *Assignable) Identifier() *Identifier {
	n, _ := a.alt.(*Identifier)
	return n
}

func (a *Assignable) ArrayLiteral() *ArrayLiteral {
	n, _ := a.alt.(*ArrayLiteral)
	return n
}

func (a *Assignable) ObjectLiteral() *ObjectLiteral {
	n, _ := a.alt.(*ObjectLiteral)
	return n
}
