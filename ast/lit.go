package ast

import "strconv"

// Every literal variant shares the "Literal" type tag, as ESTree requires.
// The null, boolean and string variants additionally implement ScalarValuer
// so that tree renderers can print them as bare scalars.
type (
	NullLiteral struct {
		Location *SourceLocation
	}

	BooleanLiteral struct {
		Location *SourceLocation
		Value    bool
	}

	// StringLiteral keeps the raw source text of the string, quotes
	// included, exactly as the lexer matched it.
	StringLiteral struct {
		Location *SourceLocation
		Value    string
	}

	NumericLiteral struct {
		Location *SourceLocation
		Value    float64
	}

	// BigIntLiteral carries the digits of a bigint literal without the
	// trailing "n". Value is nil when the magnitude cannot be represented
	// natively.
	BigIntLiteral struct {
		Location *SourceLocation
		Value    any
		BigInt   string
	}
)

func (l *NullLiteral) Fields() []Field {
	return baseFields(l, Field{Name: "value", Value: nil})
}

func (l *BooleanLiteral) Fields() []Field {
	return baseFields(l, Field{Name: "value", Value: l.Value})
}

func (l *StringLiteral) Fields() []Field {
	return baseFields(l, Field{Name: "value", Value: l.Value})
}

func (l *NumericLiteral) Fields() []Field {
	return baseFields(l, Field{Name: "value", Value: l.Value})
}

func (l *BigIntLiteral) Fields() []Field {
	return baseFields(l,
		Field{Name: "value", Value: l.Value},
		Field{Name: "bigint", Value: l.BigInt},
	)
}

func (l *NullLiteral) ScalarValue() string    { return "null" }
func (l *BooleanLiteral) ScalarValue() string { return strconv.FormatBool(l.Value) }
func (l *StringLiteral) ScalarValue() string  { return `"` + l.Value + `"` }

func (*NullLiteral) _expr()    {}
func (*BooleanLiteral) _expr() {}
func (*StringLiteral) _expr()  {}
func (*NumericLiteral) _expr() {}
func (*BigIntLiteral) _expr()  {}
