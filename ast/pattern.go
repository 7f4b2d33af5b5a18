package ast

type (
	RestElement struct {
		Location *SourceLocation
		Argument Pattern
	}

	// ObjectPattern properties are assignment-flavored Property or
	// RestElement nodes.
	ObjectPattern struct {
		Location   *SourceLocation
		Properties []Node
	}

	// ArrayPattern elements may be nil for elided positions, such as the
	// second slot of `[a, , b]`.
	ArrayPattern struct {
		Location *SourceLocation
		Elements []Node
	}

	AssignmentPattern struct {
		Location *SourceLocation
		Left     Pattern
		Right    Expr
	}
)

func (p *RestElement) Fields() []Field {
	return baseFields(p, Field{Name: "argument", Value: p.Argument})
}

func (p *ObjectPattern) Fields() []Field {
	return baseFields(p, Field{Name: "properties", Value: list(p.Properties)})
}

func (p *ArrayPattern) Fields() []Field {
	return baseFields(p, Field{Name: "elements", Value: list(p.Elements)})
}

func (p *AssignmentPattern) Fields() []Field {
	return baseFields(p,
		Field{Name: "left", Value: p.Left},
		Field{Name: "right", Value: p.Right},
	)
}

func (*RestElement) _pattern()       {}
func (*ObjectPattern) _pattern()     {}
func (*ArrayPattern) _pattern()      {}
func (*AssignmentPattern) _pattern() {}
