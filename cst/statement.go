package cst

// Program is the root production: an optional hashbang line followed
// by the top level statements.
type Program struct {
	Span
	hashbang *Token
	body     []*Statement
}

func NewProgram(sp Span, hashbang *Token, body []*Statement) *Program {
	return &Program{Span: sp, hashbang: hashbang, body: body}
}

// Hashbang returns the leading #! token, or nil when absent.
func (p *Program) Hashbang() *Token { return p.hashbang }

// Statements returns the top level statements in source order.
func (p *Program) Statements() []*Statement { return p.body }

// Statement wraps exactly one statement alternative. The accessor
// for the matched alternative returns it, every other accessor
// returns nil.
type Statement struct {
	Span
	alt Node
}

func NewStatement(sp Span, alt Node) *Statement {
	return &Statement{Span: sp, alt: alt}
}

func (s *Statement) Block() *Block {
	n, _ := s.alt.(*Block)
	return n
}

func (s *Statement) VariableStatement() *VariableStatement {
	n, _ := s.alt.(*VariableStatement)
	return n
}

func (s *Statement) ImportStatement() *ImportStatement {
	n, _ := s.alt.(*ImportStatement)
	return n
}

func (s *Statement) ExportDeclaration() *ExportDeclaration {
	n, _ := s.alt.(*ExportDeclaration)
	return n
}

func (s *Statement) EmptyStatement() *EmptyStatement {
	n, _ := s.alt.(*EmptyStatement)
	return n
}

func (s *Statement) ClassDeclaration() *ClassDeclaration {
	n, _ := s.alt.(*ClassDeclaration)
	return n
}

func (s *Statement) FunctionDeclaration() *FunctionDeclaration {
	n, _ := s.alt.(*FunctionDeclaration)
	return n
}

func (s *Statement) ExpressionStatement() *ExpressionStatement {
	n, _ := s.alt.(*ExpressionStatement)
	return n
}

func (s *Statement) IfStatement() *IfStatement {
	n, _ := s.alt.(*IfStatement)
	return n
}

func (s *Statement) IterationStatement() IterationStatement {
	n, _ := s.alt.(IterationStatement)
	return n
}

func (s *Statement) ContinueStatement() *ContinueStatement {
	n, _ := s.alt.(*ContinueStatement)
	return n
}

func (s *Statement) BreakStatement() *BreakStatement {
	n, _ := s.alt.(*BreakStatement)
	return n
}

func (s *Statement) ReturnStatement() *ReturnStatement {
	n, _ := s.alt.(*ReturnStatement)
	return n
}

func (s *Statement) YieldStatement() *YieldStatement {
	n, _ := s.alt.(*YieldStatement)
	return n
}

func (s *Statement) WithStatement() *WithStatement {
	n, _ := s.alt.(*WithStatement)
	return n
}

func (s *Statement) LabelledStatement() *LabelledStatement {
	n, _ := s.alt.(*LabelledStatement)
	return n
}

func (s *Statement) SwitchStatement() *SwitchStatement {
	n, _ := s.alt.(*SwitchStatement)
	return n
}

func (s *Statement) ThrowStatement() *ThrowStatement {
	n, _ := s.alt.(*ThrowStatement)
	return n
}

func (s *Statement) TryStatement() *TryStatement {
	n, _ := s.alt.(*TryStatement)
	return n
}

func (s *Statement) DebuggerStatement() *DebuggerStatement {
	n, _ := s.alt.(*DebuggerStatement)
	return n
}

// Block is '{' statementList? '}'.
type Block struct {
	Span
	list []*Statement
}

func NewBlock(sp Span, list []*Statement) *Block {
	return &Block{Span: sp, list: list}
}

// StatementList returns the block's statements in source order.
func (b *Block) StatementList() []*Statement { return b.list }

// VariableStatement is a variableDeclarationList terminated by eos.
type VariableStatement struct {
	Span
	list *VariableDeclarationList
}

func NewVariableStatement(sp Span, list *VariableDeclarationList) *VariableStatement {
	return &VariableStatement{Span: sp, list: list}
}

func (v *VariableStatement) VariableDeclarationList() *VariableDeclarationList { return v.list }

// VariableDeclarationList is a varModifier followed by one or more
// comma separated variable declarations.
type VariableDeclarationList struct {
	Span
	modifier Token
	decls    []*VariableDeclaration
}

func NewVariableDeclarationList(sp Span, modifier Token, decls []*VariableDeclaration) *VariableDeclarationList {
	return &VariableDeclarationList{Span: sp, modifier: modifier, decls: decls}
}

// VarModifier returns the var, let or const keyword token.
func (v *VariableDeclarationList) VarModifier() Token { return v.modifier }

// VariableDeclarations returns the declarations in source order.
func (v *VariableDeclarationList) VariableDeclarations() []*VariableDeclaration { return v.decls }

// VariableDeclaration is an assignable with an optional initializer.
type VariableDeclaration struct {
	Span
	target *Assignable
	init   SingleExpression
}

func NewVariableDeclaration(sp Span, target *Assignable, init SingleExpression) *VariableDeclaration {
	return &VariableDeclaration{Span: sp, target: target, init: init}
}

// Assignable returns the binding side of the declaration.
func (v *VariableDeclaration) Assignable() *Assignable { return v.target }

// SingleExpression returns the initializer, or nil when the
// declaration has none.
func (v *VariableDeclaration) SingleExpression() SingleExpression { return v.init }

// EmptyStatement is a lone semicolon.
type EmptyStatement struct {
	Span
}

// ExpressionStatement is an expressionSequence terminated by eos.
type ExpressionStatement struct {
	Span
	seq *ExpressionSequence
}

func NewExpressionStatement(sp Span, seq *ExpressionSequence) *ExpressionStatement {
	return &ExpressionStatement{Span: sp, seq: seq}
}

func (e *ExpressionStatement) ExpressionSequence() *ExpressionSequence { return e.seq }

// The statements below are recognized and spanned by the parser but
// carry no further structure. The builder reports them by name when
// it meets one.
type (
	IfStatement       struct{ Span }
	ContinueStatement struct{ Span }
	BreakStatement    struct{ Span }
	ReturnStatement   struct{ Span }
	YieldStatement    struct{ Span }
	WithStatement     struct{ Span }
	LabelledStatement struct{ Span }
	SwitchStatement   struct{ Span }
	ThrowStatement    struct{ Span }
	TryStatement      struct{ Span }
	DebuggerStatement struct{ Span }

	FunctionDeclaration struct{ Span }
	ClassDeclaration    struct{ Span }
	ImportStatement     struct{ Span }
	ExportDeclaration   struct{ Span }
)

// Loop statement alternatives, kept distinct so the builder can name
// the exact form it rejected.
type (
	DoStatement    struct{ Span }
	WhileStatement struct{ Span }
	ForStatement   struct{ Span }
	ForInStatement struct{ Span }
	ForOfStatement struct{ Span }
)

func (*DoStatement) _iterationStatement()    {}
func (*WhileStatement) _iterationStatement() {}
func (*ForStatement) _iterationStatement()   {}
func (*ForInStatement) _iterationStatement() {}
func (*ForOfStatement) _iterationStatement() {}
