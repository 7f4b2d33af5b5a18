package ast

import "fmt"

// Field is one named entry of a node's ordered field set.
//
// Values are drawn from a closed kind set so that generic consumers (the
// tree renderer, Walk, Equal) stay total without reflection: nil, string,
// bool, float64, Node, *SourceLocation, Position and []any for sequences.
type Field struct {
	Name  string
	Value any
}

type (
	// Node is implemented by every AST node. Fields returns the ordered
	// field set, which always starts with the type tag and the source
	// location, in that order, followed by the node's own fields in
	// declaration order.
	Node interface {
		Type() string
		Loc() *SourceLocation
		Fields() []Field
	}

	// Expr is implemented by nodes usable in expression position.
	Expr interface {
		Node
		_expr()
	}

	// Stmt is implemented by nodes usable in statement position.
	Stmt interface {
		Node
		_stmt()
	}

	// Pattern is implemented by nodes usable as a binding or assignment
	// target. Identifier and MemberExpression implement both Expr and
	// Pattern.
	Pattern interface {
		Node
		_pattern()
	}

	// Decl is implemented by declaration statements.
	Decl interface {
		Stmt
		_decl()
	}

	// ModuleSpecifier is implemented by import and export specifiers.
	ModuleSpecifier interface {
		Node
		_moduleSpecifier()
	}

	// ScalarValuer is implemented by the literal variants that render as
	// a bare scalar instead of a labeled subtree: NullLiteral,
	// BooleanLiteral and StringLiteral.
	ScalarValuer interface {
		Node
		ScalarValue() string
	}
)

// Program is the root of every tree. SourceType distinguishes a standalone
// script from an ES module.
type Program struct {
	Location   *SourceLocation
	SourceType SourceType
	Body       []Stmt
}

func (p *Program) Fields() []Field {
	return baseFields(p,
		Field{Name: "sourceType", Value: string(p.SourceType)},
		Field{Name: "body", Value: list(p.Body)},
	)
}

func (p *Program) Type() string                  { return "Program" }
func (i *Identifier) Type() string               { return "Identifier" }
func (l *NullLiteral) Type() string              { return "Literal" }
func (l *BooleanLiteral) Type() string           { return "Literal" }
func (l *StringLiteral) Type() string            { return "Literal" }
func (l *NumericLiteral) Type() string           { return "Literal" }
func (l *BigIntLiteral) Type() string            { return "Literal" }
func (e *ThisExpression) Type() string           { return "ThisExpression" }
func (e *Super) Type() string                    { return "Super" }
func (e *SpreadElement) Type() string            { return "SpreadElement" }
func (e *ArrayExpression) Type() string          { return "ArrayExpression" }
func (e *ObjectExpression) Type() string         { return "ObjectExpression" }
func (e *UnaryExpression) Type() string          { return "UnaryExpression" }
func (e *UpdateExpression) Type() string         { return "UpdateExpression" }
func (e *BinaryExpression) Type() string         { return "BinaryExpression" }
func (e *AssignmentExpression) Type() string     { return "AssignmentExpression" }
func (e *LogicalExpression) Type() string        { return "LogicalExpression" }
func (e *MemberExpression) Type() string         { return "MemberExpression" }
func (e *ConditionalExpression) Type() string    { return "ConditionalExpression" }
func (e *CallExpression) Type() string           { return "CallExpression" }
func (e *NewExpression) Type() string            { return "NewExpression" }
func (e *SequenceExpression) Type() string       { return "SequenceExpression" }
func (e *MetaProperty) Type() string             { return "MetaProperty" }
func (e *ImportExpression) Type() string         { return "ImportExpression" }
func (s *EmptyStatement) Type() string           { return "EmptyStatement" }
func (s *BlockStatement) Type() string           { return "BlockStatement" }
func (s *ExpressionStatement) Type() string      { return "ExpressionStatement" }
func (s *Directive) Type() string                { return "Directive" }
func (s *ReturnStatement) Type() string          { return "ReturnStatement" }
func (s *BreakStatement) Type() string           { return "BreakStatement" }
func (s *ContinueStatement) Type() string        { return "ContinueStatement" }
func (s *IfStatement) Type() string              { return "IfStatement" }
func (s *WhileStatement) Type() string           { return "WhileStatement" }
func (s *DoWhileStatement) Type() string         { return "DoWhileStatement" }
func (s *ForStatement) Type() string             { return "ForStatement" }
func (s *ForInStatement) Type() string           { return "ForInStatement" }
func (d *VariableDeclarator) Type() string       { return "VariableDeclarator" }
func (d *VariableDeclaration) Type() string      { return "VariableDeclaration" }
func (f *FunctionBody) Type() string             { return "BlockStatement" }
func (f *FunctionDeclaration) Type() string      { return "FunctionDeclaration" }
func (f *FunctionExpression) Type() string       { return "FunctionExpression" }
func (f *ArrowFunctionExpression) Type() string  { return "ArrowFunctionExpression" }
func (c *ClassBody) Type() string                { return "ClassBody" }
func (c *MethodDefinition) Type() string         { return "MethodDefinition" }
func (c *ClassDeclaration) Type() string         { return "ClassDeclaration" }
func (c *ClassExpression) Type() string          { return "ClassExpression" }
func (p *Property) Type() string                 { return "Property" }
func (p *RestElement) Type() string              { return "RestElement" }
func (p *ObjectPattern) Type() string            { return "ObjectPattern" }
func (p *ArrayPattern) Type() string             { return "ArrayPattern" }
func (p *AssignmentPattern) Type() string        { return "AssignmentPattern" }
func (m *ImportSpecifier) Type() string          { return "ImportSpecifier" }
func (m *ImportDefaultSpecifier) Type() string   { return "ImportDefaultSpecifier" }
func (m *ImportNamespaceSpecifier) Type() string { return "ImportNamespaceSpecifier" }
func (m *ImportDeclaration) Type() string        { return "ImportDeclaration" }
func (m *ExportSpecifier) Type() string          { return "ExportSpecifier" }
func (m *ExportNamedDeclaration) Type() string   { return "ExportNamedDeclaration" }
func (m *ExportDefaultDeclaration) Type() string { return "ExportDefaultDeclaration" }
func (m *ExportAllDeclaration) Type() string     { return "ExportAllDeclaration" }

func (p *Program) Loc() *SourceLocation                  { return p.Location }
func (i *Identifier) Loc() *SourceLocation               { return i.Location }
func (l *NullLiteral) Loc() *SourceLocation              { return l.Location }
func (l *BooleanLiteral) Loc() *SourceLocation           { return l.Location }
func (l *StringLiteral) Loc() *SourceLocation            { return l.Location }
func (l *NumericLiteral) Loc() *SourceLocation           { return l.Location }
func (l *BigIntLiteral) Loc() *SourceLocation            { return l.Location }
func (e *ThisExpression) Loc() *SourceLocation           { return e.Location }
func (e *Super) Loc() *SourceLocation                    { return e.Location }
func (e *SpreadElement) Loc() *SourceLocation            { return e.Location }
func (e *ArrayExpression) Loc() *SourceLocation          { return e.Location }
func (e *ObjectExpression) Loc() *SourceLocation         { return e.Location }
func (e *UnaryExpression) Loc() *SourceLocation          { return e.Location }
func (e *UpdateExpression) Loc() *SourceLocation         { return e.Location }
func (e *BinaryExpression) Loc() *SourceLocation         { return e.Location }
func (e *AssignmentExpression) Loc() *SourceLocation     { return e.Location }
func (e *LogicalExpression) Loc() *SourceLocation        { return e.Location }
func (e *MemberExpression) Loc() *SourceLocation         { return e.Location }
func (e *ConditionalExpression) Loc() *SourceLocation    { return e.Location }
func (e *CallExpression) Loc() *SourceLocation           { return e.Location }
func (e *NewExpression) Loc() *SourceLocation            { return e.Location }
func (e *SequenceExpression) Loc() *SourceLocation       { return e.Location }
func (e *MetaProperty) Loc() *SourceLocation             { return e.Location }
func (e *ImportExpression) Loc() *SourceLocation         { return e.Location }
func (s *EmptyStatement) Loc() *SourceLocation           { return s.Location }
func (s *BlockStatement) Loc() *SourceLocation           { return s.Location }
func (s *ExpressionStatement) Loc() *SourceLocation      { return s.Location }
func (s *Directive) Loc() *SourceLocation                { return s.Location }
func (s *ReturnStatement) Loc() *SourceLocation          { return s.Location }
func (s *BreakStatement) Loc() *SourceLocation           { return s.Location }
func (s *ContinueStatement) Loc() *SourceLocation        { return s.Location }
func (s *IfStatement) Loc() *SourceLocation              { return s.Location }
func (s *WhileStatement) Loc() *SourceLocation           { return s.Location }
func (s *DoWhileStatement) Loc() *SourceLocation         { return s.Location }
func (s *ForStatement) Loc() *SourceLocation             { return s.Location }
func (s *ForInStatement) Loc() *SourceLocation           { return s.Location }
func (d *VariableDeclarator) Loc() *SourceLocation       { return d.Location }
func (d *VariableDeclaration) Loc() *SourceLocation      { return d.Location }
func (f *FunctionBody) Loc() *SourceLocation             { return f.Location }
func (f *FunctionDeclaration) Loc() *SourceLocation      { return f.Location }
func (f *FunctionExpression) Loc() *SourceLocation       { return f.Location }
func (f *ArrowFunctionExpression) Loc() *SourceLocation  { return f.Location }
func (c *ClassBody) Loc() *SourceLocation                { return c.Location }
func (c *MethodDefinition) Loc() *SourceLocation         { return c.Location }
func (c *ClassDeclaration) Loc() *SourceLocation         { return c.Location }
func (c *ClassExpression) Loc() *SourceLocation          { return c.Location }
func (p *Property) Loc() *SourceLocation                 { return p.Location }
func (p *RestElement) Loc() *SourceLocation              { return p.Location }
func (p *ObjectPattern) Loc() *SourceLocation            { return p.Location }
func (p *ArrayPattern) Loc() *SourceLocation             { return p.Location }
func (p *AssignmentPattern) Loc() *SourceLocation        { return p.Location }
func (m *ImportSpecifier) Loc() *SourceLocation          { return m.Location }
func (m *ImportDefaultSpecifier) Loc() *SourceLocation   { return m.Location }
func (m *ImportNamespaceSpecifier) Loc() *SourceLocation { return m.Location }
func (m *ImportDeclaration) Loc() *SourceLocation        { return m.Location }
func (m *ExportSpecifier) Loc() *SourceLocation          { return m.Location }
func (m *ExportNamedDeclaration) Loc() *SourceLocation   { return m.Location }
func (m *ExportDefaultDeclaration) Loc() *SourceLocation { return m.Location }
func (m *ExportAllDeclaration) Loc() *SourceLocation     { return m.Location }

// Describe returns a short "Type at line:col" description of n, suitable
// for log output and error messages.
func Describe(n Node) string {
	if n.Loc() == nil {
		return n.Type()
	}
	return fmt.Sprintf("%s at %s", n.Type(), n.Loc())
}

// baseFields prepends the shared type and loc entries. The field order is
// load-bearing: renderers and golden files walk it exactly as declared.
func baseFields(n Node, rest ...Field) []Field {
	fs := make([]Field, 0, len(rest)+2)
	fs = append(fs,
		Field{Name: "type", Value: n.Type()},
		Field{Name: "loc", Value: locValue(n.Loc())},
	)
	return append(fs, rest...)
}

func locValue(loc *SourceLocation) any {
	if loc == nil {
		return nil
	}
	return loc
}

// list normalizes a typed node slice into the []any sequence kind. Nil
// elements (array holes, elided children) survive as untyped nils.
func list[T Node](xs []T) []any {
	vs := make([]any, len(xs))
	for i, x := range xs {
		if v := any(x); v != nil {
			vs[i] = v
		}
	}
	return vs
}

// opt wraps an optional pointer-typed child without smuggling a typed nil
// into the field value.
func opt[T any](p *T) any {
	if p == nil {
		return nil
	}
	return p
}
