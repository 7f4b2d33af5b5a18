package ast

type (
	ThisExpression struct {
		Location *SourceLocation
	}

	// Super is the `super` pseudo-expression. It carries the Expr marker
	// because the grammar allows it wherever a single expression may
	// appear, even though ESTree keeps it outside the Expression family.
	Super struct {
		Location *SourceLocation
	}

	// SpreadElement wraps the argument of a `...` spread in array
	// literals and call argument lists.
	SpreadElement struct {
		Location *SourceLocation
		Argument Expr
	}

	// ArrayExpression elements may be expressions, SpreadElements, or nil
	// for holes in sparse arrays such as `[1,,2]`.
	ArrayExpression struct {
		Location *SourceLocation
		Elements []Node
	}

	// ObjectExpression properties are Property or SpreadElement nodes.
	ObjectExpression struct {
		Location   *SourceLocation
		Properties []Node
	}

	// UnaryExpression is always prefix.
	UnaryExpression struct {
		Location *SourceLocation
		Operator UnaryOperator
		Prefix   bool
		Argument Expr
	}

	UpdateExpression struct {
		Location *SourceLocation
		Operator UpdateOperator
		Argument Expr
		Prefix   bool
	}

	BinaryExpression struct {
		Location *SourceLocation
		Operator BinaryOperator
		Left     Expr
		Right    Expr
	}

	// AssignmentExpression keeps Left as a plain expression for
	// compatibility with pre-ES6 targets, where any expression could
	// appear on the left of an assignment.
	AssignmentExpression struct {
		Location *SourceLocation
		Operator AssignmentOperator
		Left     Expr
		Right    Expr
	}

	LogicalExpression struct {
		Location *SourceLocation
		Operator LogicalOperator
		Left     Expr
		Right    Expr
	}

	// MemberExpression with Computed set corresponds to `a[b]`, where
	// Property is any expression; without it, to `a.b`, where Property is
	// an Identifier.
	MemberExpression struct {
		Location *SourceLocation
		Object   Expr
		Property Expr
		Computed bool
	}

	ConditionalExpression struct {
		Location   *SourceLocation
		Test       Expr
		Alternate  Expr
		Consequent Expr
	}

	// CallExpression arguments may be expressions or SpreadElements.
	CallExpression struct {
		Location  *SourceLocation
		Callee    Expr
		Arguments []Node
	}

	NewExpression struct {
		Location  *SourceLocation
		Callee    Expr
		Arguments []Node
	}

	// SequenceExpression is a comma-separated expression list. Builders
	// wrap every expression statement in one, even a single expression,
	// because the grammar routes all of them through the same sequence
	// production.
	SequenceExpression struct {
		Location    *SourceLocation
		Expressions []Expr
	}

	// MetaProperty represents `new.target`.
	MetaProperty struct {
		Location *SourceLocation
		Meta     *Identifier
		Property *Identifier
	}

	// ImportExpression is a dynamic `import(source)` call. Unlike the
	// source of an ImportDeclaration, Source may be any expression.
	ImportExpression struct {
		Location *SourceLocation
		Source   Expr
	}
)

func (e *ThisExpression) Fields() []Field {
	return baseFields(e)
}

func (e *Super) Fields() []Field {
	return baseFields(e)
}

func (e *SpreadElement) Fields() []Field {
	return baseFields(e, Field{Name: "argument", Value: e.Argument})
}

func (e *ArrayExpression) Fields() []Field {
	return baseFields(e, Field{Name: "elements", Value: list(e.Elements)})
}

func (e *ObjectExpression) Fields() []Field {
	return baseFields(e, Field{Name: "properties", Value: list(e.Properties)})
}

func (e *UnaryExpression) Fields() []Field {
	return baseFields(e,
		Field{Name: "operator", Value: string(e.Operator)},
		Field{Name: "prefix", Value: e.Prefix},
		Field{Name: "argument", Value: e.Argument},
	)
}

func (e *UpdateExpression) Fields() []Field {
	return baseFields(e,
		Field{Name: "operator", Value: string(e.Operator)},
		Field{Name: "argument", Value: e.Argument},
		Field{Name: "prefix", Value: e.Prefix},
	)
}

func (e *BinaryExpression) Fields() []Field {
	return baseFields(e,
		Field{Name: "operator", Value: string(e.Operator)},
		Field{Name: "left", Value: e.Left},
		Field{Name: "right", Value: e.Right},
	)
}

func (e *AssignmentExpression) Fields() []Field {
	return baseFields(e,
		Field{Name: "operator", Value: string(e.Operator)},
		Field{Name: "left", Value: e.Left},
		Field{Name: "right", Value: e.Right},
	)
}

func (e *LogicalExpression) Fields() []Field {
	return baseFields(e,
		Field{Name: "operator", Value: string(e.Operator)},
		Field{Name: "left", Value: e.Left},
		Field{Name: "right", Value: e.Right},
	)
}

func (e *MemberExpression) Fields() []Field {
	return baseFields(e,
		Field{Name: "object", Value: e.Object},
		Field{Name: "property", Value: e.Property},
		Field{Name: "computed", Value: e.Computed},
	)
}

func (e *ConditionalExpression) Fields() []Field {
	return baseFields(e,
		Field{Name: "test", Value: e.Test},
		Field{Name: "alternate", Value: e.Alternate},
		Field{Name: "consequent", Value: e.Consequent},
	)
}

func (e *CallExpression) Fields() []Field {
	return baseFields(e,
		Field{Name: "callee", Value: e.Callee},
		Field{Name: "arguments", Value: list(e.Arguments)},
	)
}

func (e *NewExpression) Fields() []Field {
	return baseFields(e,
		Field{Name: "callee", Value: e.Callee},
		Field{Name: "arguments", Value: list(e.Arguments)},
	)
}

func (e *SequenceExpression) Fields() []Field {
	return baseFields(e, Field{Name: "expressions", Value: list(e.Expressions)})
}

func (e *MetaProperty) Fields() []Field {
	return baseFields(e,
		Field{Name: "meta", Value: opt(e.Meta)},
		Field{Name: "property", Value: opt(e.Property)},
	)
}

func (e *ImportExpression) Fields() []Field {
	return baseFields(e, Field{Name: "source", Value: e.Source})
}

func (*ThisExpression) _expr()        {}
func (*Super) _expr()                 {}
func (*ArrayExpression) _expr()       {}
func (*ObjectExpression) _expr()      {}
func (*UnaryExpression) _expr()       {}
func (*UpdateExpression) _expr()      {}
func (*BinaryExpression) _expr()      {}
func (*AssignmentExpression) _expr()  {}
func (*LogicalExpression) _expr()     {}
func (*MemberExpression) _expr()      {}
func (*ConditionalExpression) _expr() {}
func (*CallExpression) _expr()        {}
func (*NewExpression) _expr()         {}
func (*SequenceExpression) _expr()    {}
func (*MetaProperty) _expr()          {}
func (*ImportExpression) _expr()      {}

func (*MemberExpression) _pattern() {}
