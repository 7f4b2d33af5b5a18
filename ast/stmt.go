package ast

type (
	// EmptyStatement is a solitary semicolon.
	EmptyStatement struct {
		Location *SourceLocation
	}

	BlockStatement struct {
		Location *SourceLocation
		Body     []Stmt
	}

	ExpressionStatement struct {
		Location   *SourceLocation
		Expression Expr
	}

	// Directive is a prologue entry such as "use strict". The Directive
	// field holds the raw string without quotes.
	Directive struct {
		Location   *SourceLocation
		Expression Expr
		Directive  string
	}

	ReturnStatement struct {
		Location *SourceLocation
		Argument Expr
	}

	BreakStatement struct {
		Location *SourceLocation
		Label    *Identifier
	}

	ContinueStatement struct {
		Location *SourceLocation
		Label    *Identifier
	}

	IfStatement struct {
		Location   *SourceLocation
		Test       Expr
		Consequent Stmt
		Alternate  Stmt
	}

	WhileStatement struct {
		Location *SourceLocation
		Test     Expr
		Body     Stmt
	}

	DoWhileStatement struct {
		Location *SourceLocation
		Body     Stmt
		Test     Expr
	}

	// ForStatement init is a VariableDeclaration, an expression, or nil.
	ForStatement struct {
		Location *SourceLocation
		Init     Node
		Test     Expr
		Update   Expr
		Body     Stmt
	}

	// ForInStatement left is a VariableDeclaration or a pattern.
	ForInStatement struct {
		Location *SourceLocation
		Left     Node
		Right    Expr
		Body     Stmt
	}
)

func (s *EmptyStatement) Fields() []Field {
	return baseFields(s)
}

func (s *BlockStatement) Fields() []Field {
	return baseFields(s, Field{Name: "body", Value: list(s.Body)})
}

func (s *ExpressionStatement) Fields() []Field {
	return baseFields(s, Field{Name: "expression", Value: s.Expression})
}

func (s *Directive) Fields() []Field {
	return baseFields(s,
		Field{Name: "expression", Value: s.Expression},
		Field{Name: "directive", Value: s.Directive},
	)
}

func (s *ReturnStatement) Fields() []Field {
	return baseFields(s, Field{Name: "argument", Value: s.Argument})
}

func (s *BreakStatement) Fields() []Field {
	return baseFields(s, Field{Name: "label", Value: opt(s.Label)})
}

func (s *ContinueStatement) Fields() []Field {
	return baseFields(s, Field{Name: "label", Value: opt(s.Label)})
}

func (s *IfStatement) Fields() []Field {
	return baseFields(s,
		Field{Name: "test", Value: s.Test},
		Field{Name: "consequent", Value: s.Consequent},
		Field{Name: "alternate", Value: s.Alternate},
	)
}

func (s *WhileStatement) Fields() []Field {
	return baseFields(s,
		Field{Name: "test", Value: s.Test},
		Field{Name: "body", Value: s.Body},
	)
}

func (s *DoWhileStatement) Fields() []Field {
	return baseFields(s,
		Field{Name: "body", Value: s.Body},
		Field{Name: "test", Value: s.Test},
	)
}

func (s *ForStatement) Fields() []Field {
	return baseFields(s,
		Field{Name: "init", Value: s.Init},
		Field{Name: "test", Value: s.Test},
		Field{Name: "update", Value: s.Update},
		Field{Name: "body", Value: s.Body},
	)
}

func (s *ForInStatement) Fields() []Field {
	return baseFields(s,
		Field{Name: "left", Value: s.Left},
		Field{Name: "right", Value: s.Right},
		Field{Name: "body", Value: s.Body},
	)
}

func (*EmptyStatement) _stmt()      {}
func (*BlockStatement) _stmt()      {}
func (*ExpressionStatement) _stmt() {}
func (*Directive) _stmt()           {}
func (*ReturnStatement) _stmt()     {}
func (*BreakStatement) _stmt()      {}
func (*ContinueStatement) _stmt()   {}
func (*IfStatement) _stmt()         {}
func (*WhileStatement) _stmt()      {}
func (*DoWhileStatement) _stmt()    {}
func (*ForStatement) _stmt()        {}
func (*ForInStatement) _stmt()      {}
