package ast

type (
	// ImportSpecifier is a named import binding. For `import {foo} from
	// "mod"` both Imported and Local name foo; for `import {foo as bar}`
	// Imported names foo and Local names bar.
	ImportSpecifier struct {
		Location *SourceLocation
		Local    *Identifier
		Imported *Identifier
	}

	ImportDefaultSpecifier struct {
		Location *SourceLocation
		Local    *Identifier
	}

	ImportNamespaceSpecifier struct {
		Location *SourceLocation
		Local    *Identifier
	}

	ImportDeclaration struct {
		Location   *SourceLocation
		Specifiers []ModuleSpecifier
		Source     Expr
	}

	// ExportSpecifier mirrors ImportSpecifier for `export {foo}` and
	// `export {bar as foo}` forms.
	ExportSpecifier struct {
		Location *SourceLocation
		Local    *Identifier
		Exported *Identifier
	}

	// ExportNamedDeclaration covers `export {a, b}`, `export {a} from
	// "mod"` and `export var a = 1`. A non-nil Declaration together with
	// specifiers or a source is an invalid state.
	ExportNamedDeclaration struct {
		Location    *SourceLocation
		Declaration Decl
		Specifiers  []*ExportSpecifier
		Source      Expr
	}

	ExportDefaultDeclaration struct {
		Location    *SourceLocation
		Declaration Node
	}

	ExportAllDeclaration struct {
		Location *SourceLocation
		Source   Expr
		Exported *Identifier
	}
)

func (m *ImportSpecifier) Fields() []Field {
	return baseFields(m,
		Field{Name: "local", Value: opt(m.Local)},
		Field{Name: "imported", Value: opt(m.Imported)},
	)
}

func (m *ImportDefaultSpecifier) Fields() []Field {
	return baseFields(m, Field{Name: "local", Value: opt(m.Local)})
}

func (m *ImportNamespaceSpecifier) Fields() []Field {
	return baseFields(m, Field{Name: "local", Value: opt(m.Local)})
}

func (m *ImportDeclaration) Fields() []Field {
	return baseFields(m,
		Field{Name: "specifiers", Value: list(m.Specifiers)},
		Field{Name: "source", Value: m.Source},
	)
}

func (m *ExportSpecifier) Fields() []Field {
	return baseFields(m,
		Field{Name: "local", Value: opt(m.Local)},
		Field{Name: "exported", Value: opt(m.Exported)},
	)
}

func (m *ExportNamedDeclaration) Fields() []Field {
	return baseFields(m,
		Field{Name: "declaration", Value: m.Declaration},
		Field{Name: "specifiers", Value: list(m.Specifiers)},
		Field{Name: "source", Value: m.Source},
	)
}

func (m *ExportDefaultDeclaration) Fields() []Field {
	return baseFields(m, Field{Name: "declaration", Value: m.Declaration})
}

func (m *ExportAllDeclaration) Fields() []Field {
	return baseFields(m,
		Field{Name: "source", Value: m.Source},
		Field{Name: "exported", Value: opt(m.Exported)},
	)
}

func (*ImportSpecifier) _moduleSpecifier()          {}
func (*ImportDefaultSpecifier) _moduleSpecifier()   {}
func (*ImportNamespaceSpecifier) _moduleSpecifier() {}
func (*ExportSpecifier) _moduleSpecifier()          {}

func (*ImportDeclaration) _stmt()        {}
func (*ExportNamedDeclaration) _stmt()   {}
func (*ExportDefaultDeclaration) _stmt() {}
func (*ExportAllDeclaration) _stmt()     {}
