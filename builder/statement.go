package builder

import (
	"github.com/estree-tools/estree/ast"
	"github.com/estree-tools/estree/cst"
)

// statement probes the statement alternatives in grammar order and
// builds the first match. The supported subset is empty, block,
// expression and variable statements; every other alternative names
// itself in an UnsupportedFeatureError, the staged boundary of this
// front-end.
func (b *builder) statement(stmt *cst.Statement, fl flags) (ast.Stmt, error) {
	b.trace("Statement")
	switch {
	case stmt.Block() != nil:
		return b.block(stmt.Block(), fl)
	case stmt.VariableStatement() != nil:
		return b.variableStatement(stmt.VariableStatement())
	case stmt.ImportStatement() != nil:
		return nil, b.unsupported("ImportStatement")
	case stmt.ExportDeclaration() != nil:
		return nil, b.unsupported("ExportDeclaration")
	case stmt.EmptyStatement() != nil:
		return b.emptyStatement(stmt.EmptyStatement())
	case stmt.ClassDeclaration() != nil:
		return nil, b.unsupported("ClassDeclaration")
	case stmt.FunctionDeclaration() != nil:
		return nil, b.unsupported("FunctionDeclaration")
	case stmt.ExpressionStatement() != nil:
		return b.expressionStatement(stmt.ExpressionStatement())
	case stmt.IfStatement() != nil:
		return nil, b.unsupported("IfStatement")
	case stmt.IterationStatement() != nil:
		return nil, b.unsupported(iterationName(stmt.IterationStatement()))
	case stmt.ContinueStatement() != nil:
		return nil, b.unsupported("ContinueStatement")
	case stmt.BreakStatement() != nil:
		return nil, b.unsupported("BreakStatement")
	case stmt.ReturnStatement() != nil:
		return nil, b.unsupported("ReturnStatement")
	case stmt.YieldStatement() != nil:
		return nil, b.unsupported("YieldStatement")
	case stmt.WithStatement() != nil:
		return nil, b.unsupported("WithStatement")
	case stmt.LabelledStatement() != nil:
		return nil, b.unsupported("LabelledStatement")
	case stmt.SwitchStatement() != nil:
		return nil, b.unsupported("SwitchStatement")
	case stmt.ThrowStatement() != nil:
		return nil, b.unsupported("ThrowStatement")
	case stmt.TryStatement() != nil:
		return nil, b.unsupported("TryStatement")
	case stmt.DebuggerStatement() != nil:
		return nil, b.unsupported("DebuggerStatement")
	}
	return nil, &MissingResultError{Rule: "Statement"}
}

// iterationName names the loop alternative for the failure message.
func iterationName(it cst.IterationStatement) string {
	switch it.(type) {
	case *cst.DoStatement:
		return "DoWhileStatement"
	case *cst.WhileStatement:
		return "WhileStatement"
	case *cst.ForStatement:
		return "ForStatement"
	case *cst.ForInStatement:
		return "ForInStatement"
	default:
		return "ForOfStatement"
	}
}

// block builds a BlockStatement with its children in source order. The
// context flags pass through unchanged.
func (b *builder) block(blk *cst.Block, fl flags) (*ast.BlockStatement, error) {
	b.trace("Block")
	body := make([]ast.Stmt, 0, len(blk.StatementList()))
	for _, stmt := range blk.StatementList() {
		s, err := b.statement(stmt, fl)
		if err != nil {
			return nil, err
		}
		body = append(body, s)
	}
	loc, err := b.location(blk)
	if err != nil {
		return nil, err
	}
	return &ast.BlockStatement{Location: loc, Body: body}, nil
}

func (b *builder) emptyStatement(stmt *cst.EmptyStatement) (*ast.EmptyStatement, error) {
	b.trace("EmptyStatement")
	loc, err := b.location(stmt)
	if err != nil {
		return nil, err
	}
	return &ast.EmptyStatement{Location: loc}, nil
}

func (b *builder) expressionStatement(stmt *cst.ExpressionStatement) (*ast.ExpressionStatement, error) {
	b.trace("ExpressionStatement")
	seq, err := b.sequence(stmt.ExpressionSequence())
	if err != nil {
		return nil, err
	}
	loc, err := b.location(stmt)
	if err != nil {
		return nil, err
	}
	return &ast.ExpressionStatement{Location: loc, Expression: seq}, nil
}

// variableStatement unwraps to its declaration list. The list spans the
// declared names without the statement terminator, which is the extent
// the declaration node reports.
func (b *builder) variableStatement(stmt *cst.VariableStatement) (*ast.VariableDeclaration, error) {
	b.trace("VariableStatement")
	return b.variableDeclarationList(stmt.VariableDeclarationList())
}

func (b *builder) variableDeclarationList(list *cst.VariableDeclarationList) (*ast.VariableDeclaration, error) {
	b.trace("VariableDeclarationList")

	decls := make([]*ast.VariableDeclarator, 0, len(list.VariableDeclarations()))
	for _, decl := range list.VariableDeclarations() {
		d, err := b.variableDeclaration(decl)
		if err != nil {
			return nil, err
		}
		decls = append(decls, d)
	}

	loc, err := b.location(list)
	if err != nil {
		return nil, err
	}
	return &ast.VariableDeclaration{
		Location:     loc,
		Kind:         ast.VarDeclKind(list.VarModifier().Text),
		Declarations: decls,
	}, nil
}

// variableDeclaration builds one declarator: a binding target and an
// optional initializer. An absent initializer stays nil.
func (b *builder) variableDeclaration(decl *cst.VariableDeclaration) (*ast.VariableDeclarator, error) {
	b.trace("VariableDeclaration")

	id, err := b.assignable(decl.Assignable())
	if err != nil {
		return nil, err
	}

	var init ast.Expr
	if expr := decl.SingleExpression(); expr != nil {
		init, err = b.expression(expr)
		if err != nil {
			return nil, err
		}
	}

	loc, err := b.location(decl)
	if err != nil {
		return nil, err
	}
	return &ast.VariableDeclarator{Location: loc, ID: id, Init: init}, nil
}

// assignable maps a binding target onto its pattern: a bare name stays
// an Identifier and an array literal destructures into an ArrayPattern
// through the same element expansion array expressions use.
func (b *builder) assignable(a *cst.Assignable) (ast.Pattern, error) {
	b.trace("Assignable")
	switch {
	case a.Identifier() != nil:
		return b.identifier(a.Identifier())
	case a.ArrayLiteral() != nil:
		return b.arrayPattern(a.ArrayLiteral())
	case a.ObjectLiteral() != nil:
		return nil, b.unsupported("ObjectLiteral assignment")
	}
	return nil, &MissingResultError{Rule: "Assignable"}
}

func (b *builder) arrayPattern(arr *cst.ArrayLiteral) (*ast.ArrayPattern, error) {
	b.trace("ArrayLiteral")
	elements, err := b.elementList(arr.ElementList())
	if err != nil {
		return nil, err
	}
	loc, err := b.location(arr)
	if err != nil {
		return nil, err
	}
	return &ast.ArrayPattern{Location: loc, Elements: elements}, nil
}
