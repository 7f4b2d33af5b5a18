package ast

type (
	VariableDeclarator struct {
		Location *SourceLocation
		ID       Pattern
		Init     Expr
	}

	VariableDeclaration struct {
		Location     *SourceLocation
		Kind         VarDeclKind
		Declarations []*VariableDeclarator
	}
)

func (d *VariableDeclarator) Fields() []Field {
	return baseFields(d,
		Field{Name: "id", Value: d.ID},
		Field{Name: "init", Value: d.Init},
	)
}

func (d *VariableDeclaration) Fields() []Field {
	return baseFields(d,
		Field{Name: "kind", Value: string(d.Kind)},
		Field{Name: "declarations", Value: list(d.Declarations)},
	)
}

func (*VariableDeclaration) _stmt() {}
func (*VariableDeclaration) _decl() {}
