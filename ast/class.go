package ast

type (
	ClassBody struct {
		Location *SourceLocation
		Body     []*MethodDefinition
	}

	MethodDefinition struct {
		Location *SourceLocation
		Key      Expr
		Value    *FunctionExpression
		Kind     MethodKind
		Computed bool
		Static   bool
	}

	ClassDeclaration struct {
		Location   *SourceLocation
		ID         *Identifier
		SuperClass Expr
		Body       *ClassBody
	}

	ClassExpression struct {
		Location   *SourceLocation
		ID         *Identifier
		SuperClass Expr
		Body       *ClassBody
	}
)

func (c *ClassBody) Fields() []Field {
	return baseFields(c, Field{Name: "body", Value: list(c.Body)})
}

func (c *MethodDefinition) Fields() []Field {
	return baseFields(c,
		Field{Name: "key", Value: c.Key},
		Field{Name: "value", Value: opt(c.Value)},
		Field{Name: "kind", Value: string(c.Kind)},
		Field{Name: "computed", Value: c.Computed},
		Field{Name: "static", Value: c.Static},
	)
}

func (c *ClassDeclaration) Fields() []Field {
	return baseFields(c,
		Field{Name: "id", Value: opt(c.ID)},
		Field{Name: "superClass", Value: c.SuperClass},
		Field{Name: "body", Value: opt(c.Body)},
	)
}

func (c *ClassExpression) Fields() []Field {
	return baseFields(c,
		Field{Name: "id", Value: opt(c.ID)},
		Field{Name: "superClass", Value: c.SuperClass},
		Field{Name: "body", Value: opt(c.Body)},
	)
}

func (*ClassExpression) _expr()  {}
func (*ClassDeclaration) _stmt() {}
func (*ClassDeclaration) _decl() {}
