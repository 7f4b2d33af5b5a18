package ast

type (
	// FunctionBody is a block statement that may begin with directives.
	// It renders under the "BlockStatement" type tag.
	FunctionBody struct {
		Location *SourceLocation
		Body     []Stmt
	}

	FunctionDeclaration struct {
		Location *SourceLocation
		ID       *Identifier
		Params   []Pattern
		Body     *FunctionBody
	}

	FunctionExpression struct {
		Location *SourceLocation
		ID       *Identifier
		Params   []Pattern
		Body     *FunctionBody
	}

	// ArrowFunctionExpression has no id of its own. Expression is set
	// when the body is a bare expression instead of a block.
	ArrowFunctionExpression struct {
		Location   *SourceLocation
		Params     []Pattern
		Body       Node
		Expression bool
	}
)

func (f *FunctionBody) Fields() []Field {
	return baseFields(f, Field{Name: "body", Value: list(f.Body)})
}

func (f *FunctionDeclaration) Fields() []Field {
	return baseFields(f,
		Field{Name: "id", Value: opt(f.ID)},
		Field{Name: "params", Value: list(f.Params)},
		Field{Name: "body", Value: opt(f.Body)},
	)
}

func (f *FunctionExpression) Fields() []Field {
	return baseFields(f,
		Field{Name: "id", Value: opt(f.ID)},
		Field{Name: "params", Value: list(f.Params)},
		Field{Name: "body", Value: opt(f.Body)},
	)
}

func (f *ArrowFunctionExpression) Fields() []Field {
	return baseFields(f,
		Field{Name: "id", Value: nil},
		Field{Name: "params", Value: list(f.Params)},
		Field{Name: "body", Value: f.Body},
		Field{Name: "expression", Value: f.Expression},
	)
}

func (*FunctionBody) _stmt()            {}
func (*FunctionExpression) _expr()      {}
func (*ArrowFunctionExpression) _expr() {}
func (*FunctionDeclaration) _stmt()     {}
func (*FunctionDeclaration) _decl()     {}
