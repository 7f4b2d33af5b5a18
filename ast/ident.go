package ast

// Identifier is a name in expression, pattern or label position. It is the
// one variant besides MemberExpression that fills both expression and
// pattern roles.
type Identifier struct {
	Location *SourceLocation
	Name     string
}

func (i *Identifier) Fields() []Field {
	return baseFields(i, Field{Name: "name", Value: i.Name})
}

func (*Identifier) _expr()    {}
func (*Identifier) _pattern() {}
