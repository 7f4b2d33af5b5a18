package builder_test

import (
	"errors"
	"testing"

	"github.com/estree-tools/estree/ast"
	"github.com/estree-tools/estree/builder"
	"github.com/estree-tools/estree/cst"
	"github.com/estree-tools/estree/parser"
	"github.com/estree-tools/estree/token"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// mustBuild parses code and builds its AST, failing the test on any error.
func mustBuild(t *testing.T, code string, opts ...builder.Option) *ast.Program {
	t.Helper()
	tree, err := parser.Parse(code)
	if err != nil {
		t.Fatalf("Failed to parse:\n%s\nError: %v", code, err)
	}
	prog, err := builder.BuildProgram(tree, ast.ScriptSource, opts...)
	if err != nil {
		t.Fatalf("Failed to build:\n%s\nError: %v", code, err)
	}
	return prog
}

// mustFail parses code, asserts the build fails with an
// UnsupportedFeatureError naming feature, and that no program survives.
func mustFail(t *testing.T, code, feature string) {
	t.Helper()
	tree, err := parser.Parse(code)
	if err != nil {
		t.Fatalf("Failed to parse:\n%s\nError: %v", code, err)
	}
	prog, err := builder.BuildProgram(tree, ast.ScriptSource)
	if prog != nil {
		t.Errorf("%s: got a partial program, want none", code)
	}
	var unsupported *builder.UnsupportedFeatureError
	if !errors.As(err, &unsupported) {
		t.Fatalf("%s: error = %v, want UnsupportedFeatureError", code, err)
	}
	if unsupported.Feature != feature {
		t.Errorf("%s: feature = %q, want %q", code, unsupported.Feature, feature)
	}
}

// firstExpr unwraps the first statement down to the single expression
// inside its sequence wrapper.
func firstExpr(t *testing.T, prog *ast.Program) ast.Expr {
	t.Helper()
	seq := sequenceOf(t, prog, 0)
	if len(seq.Expressions) != 1 {
		t.Fatalf("sequence has %d expressions, want 1", len(seq.Expressions))
	}
	return seq.Expressions[0]
}

// sequenceOf returns the sequence wrapped by the i-th statement.
func sequenceOf(t *testing.T, prog *ast.Program, i int) *ast.SequenceExpression {
	t.Helper()
	if i >= len(prog.Body) {
		t.Fatalf("program has %d statements, want at least %d", len(prog.Body), i+1)
	}
	es, ok := prog.Body[i].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("statement %d is %T, want *ast.ExpressionStatement", i, prog.Body[i])
	}
	seq, ok := es.Expression.(*ast.SequenceExpression)
	if !ok {
		t.Fatalf("statement %d wraps %T, want *ast.SequenceExpression", i, es.Expression)
	}
	return seq
}

func numberValue(t *testing.T, e ast.Expr) float64 {
	t.Helper()
	num, ok := e.(*ast.NumericLiteral)
	if !ok {
		t.Fatalf("expression is %T, want *ast.NumericLiteral", e)
	}
	return num.Value
}

func identName(t *testing.T, n ast.Node) string {
	t.Helper()
	id, ok := n.(*ast.Identifier)
	if !ok {
		t.Fatalf("node is %T, want *ast.Identifier", n)
	}
	return id.Name
}

// ---------------------------------------------------------------------------
// Programs and statements
// ---------------------------------------------------------------------------

func TestBuildEmptyStatement(t *testing.T) {
	prog := mustBuild(t, ";")
	if prog.SourceType != ast.ScriptSource {
		t.Errorf("sourceType = %q, want script", prog.SourceType)
	}
	if len(prog.Body) != 1 {
		t.Fatalf("body has %d statements, want 1", len(prog.Body))
	}
	if _, ok := prog.Body[0].(*ast.EmptyStatement); !ok {
		t.Errorf("body[0] is %T, want *ast.EmptyStatement", prog.Body[0])
	}
}

func TestBuildModuleSourceType(t *testing.T) {
	tree, err := parser.Parse(";")
	if err != nil {
		t.Fatal(err)
	}
	prog, err := builder.BuildProgram(tree, ast.ModuleSource)
	if err != nil {
		t.Fatal(err)
	}
	if prog.SourceType != ast.ModuleSource {
		t.Errorf("sourceType = %q, want module", prog.SourceType)
	}
}

func TestBuildBlockStatement(t *testing.T) {
	prog := mustBuild(t, "{ ; ; }")
	block, ok := prog.Body[0].(*ast.BlockStatement)
	if !ok {
		t.Fatalf("body[0] is %T, want *ast.BlockStatement", prog.Body[0])
	}
	if len(block.Body) != 2 {
		t.Fatalf("block has %d statements, want 2", len(block.Body))
	}
	for i, s := range block.Body {
		if _, ok := s.(*ast.EmptyStatement); !ok {
			t.Errorf("block.Body[%d] is %T, want *ast.EmptyStatement", i, s)
		}
	}
}

func TestBuildVariableDeclaration(t *testing.T) {
	prog := mustBuild(t, "var a;")
	decl, ok := prog.Body[0].(*ast.VariableDeclaration)
	if !ok {
		t.Fatalf("body[0] is %T, want *ast.VariableDeclaration", prog.Body[0])
	}
	if decl.Kind != ast.VarKind {
		t.Errorf("kind = %q, want var", decl.Kind)
	}
	if len(decl.Declarations) != 1 {
		t.Fatalf("got %d declarators, want 1", len(decl.Declarations))
	}
	d := decl.Declarations[0]
	if got := identName(t, d.ID); got != "a" {
		t.Errorf("id = %q, want a", got)
	}
	if d.Init != nil {
		t.Errorf("init = %v, want nil", d.Init)
	}
}

func TestBuildVariableDeclarationKinds(t *testing.T) {
	tests := []struct {
		code string
		kind ast.VarDeclKind
	}{
		{"var a = 1;", ast.VarKind},
		{"let b = 2;", ast.LetKind},
		{"const c = 3;", ast.ConstKind},
	}
	for _, tt := range tests {
		prog := mustBuild(t, tt.code)
		decl := prog.Body[0].(*ast.VariableDeclaration)
		if decl.Kind != tt.kind {
			t.Errorf("%s: kind = %q, want %q", tt.code, decl.Kind, tt.kind)
		}
		if decl.Declarations[0].Init == nil {
			t.Errorf("%s: init is nil, want a literal", tt.code)
		}
	}
}

func TestBuildMultipleDeclarators(t *testing.T) {
	prog := mustBuild(t, "var a = 1, b;")
	decl := prog.Body[0].(*ast.VariableDeclaration)
	if len(decl.Declarations) != 2 {
		t.Fatalf("got %d declarators, want 2", len(decl.Declarations))
	}
	if decl.Declarations[0].Init == nil {
		t.Error("declarator a lost its initializer")
	}
	if decl.Declarations[1].Init != nil {
		t.Error("declarator b grew an initializer")
	}
}

func TestBuildArrayPattern(t *testing.T) {
	prog := mustBuild(t, "var [a, b] = c;")
	decl := prog.Body[0].(*ast.VariableDeclaration)
	pat, ok := decl.Declarations[0].ID.(*ast.ArrayPattern)
	if !ok {
		t.Fatalf("id is %T, want *ast.ArrayPattern", decl.Declarations[0].ID)
	}
	if len(pat.Elements) != 2 {
		t.Fatalf("pattern has %d elements, want 2", len(pat.Elements))
	}
	if got := identName(t, pat.Elements[0]); got != "a" {
		t.Errorf("elements[0] = %q, want a", got)
	}
	if got := identName(t, pat.Elements[1]); got != "b" {
		t.Errorf("elements[1] = %q, want b", got)
	}
}

func TestObjectPatternUnsupported(t *testing.T) {
	mustFail(t, "var {a} = b;", "ObjectLiteral assignment")
}

func TestHashbangSkipped(t *testing.T) {
	prog := mustBuild(t, "#!/usr/bin/env node\n;")
	if len(prog.Body) != 1 {
		t.Fatalf("body has %d statements, want 1", len(prog.Body))
	}
	if _, ok := prog.Body[0].(*ast.EmptyStatement); !ok {
		t.Errorf("body[0] is %T, want *ast.EmptyStatement", prog.Body[0])
	}
}

// ---------------------------------------------------------------------------
// Expressions
// ---------------------------------------------------------------------------

func TestSequenceCollapsePolicy(t *testing.T) {
	// A single bare expression still gets the sequence wrapper.
	seq := sequenceOf(t, mustBuild(t, "1"), 0)
	if len(seq.Expressions) != 1 {
		t.Errorf("bare expression sequence has %d members, want 1", len(seq.Expressions))
	}

	seq = sequenceOf(t, mustBuild(t, "1, 2, 3"), 0)
	if len(seq.Expressions) != 3 {
		t.Errorf("comma sequence has %d members, want 3", len(seq.Expressions))
	}
}

func TestBuildAdditiveExpression(t *testing.T) {
	bin, ok := firstExpr(t, mustBuild(t, "1+2")).(*ast.BinaryExpression)
	if !ok {
		t.Fatal("1+2 did not build a *ast.BinaryExpression")
	}
	if bin.Operator != ast.BinaryAdd {
		t.Errorf("operator = %q, want +", bin.Operator)
	}
	if got := numberValue(t, bin.Left); got != 1 {
		t.Errorf("left = %v, want 1", got)
	}
	if got := numberValue(t, bin.Right); got != 2 {
		t.Errorf("right = %v, want 2", got)
	}
}

func TestBuildSimpleAssignment(t *testing.T) {
	assign, ok := firstExpr(t, mustBuild(t, "a=2")).(*ast.AssignmentExpression)
	if !ok {
		t.Fatal("a=2 did not build a *ast.AssignmentExpression")
	}
	if assign.Operator != ast.AssignSimple {
		t.Errorf("operator = %q, want =", assign.Operator)
	}
	if got := identName(t, assign.Left); got != "a" {
		t.Errorf("left = %q, want a", got)
	}
	if got := numberValue(t, assign.Right); got != 2 {
		t.Errorf("right = %v, want 2", got)
	}
}

func TestBinaryOperatorTable(t *testing.T) {
	tests := []struct {
		code string
		op   ast.BinaryOperator
	}{
		{"a == b", "=="},
		{"a != b", "!="},
		{"a === b", "==="},
		{"a !== b", "!=="},
		{"a < b", "<"},
		{"a <= b", "<="},
		{"a > b", ">"},
		{"a >= b", ">="},
		{"a << b", "<<"},
		{"a >> b", ">>"},
		{"a >>> b", ">>>"},
		{"a + b", "+"},
		{"a - b", "-"},
		{"a * b", "*"},
		{"a / b", "/"},
		{"a % b", "%"},
		{"a ** b", "**"},
		{"a | b", "|"},
		{"a ^ b", "^"},
		{"a & b", "&"},
		{"a in b", "in"},
		{"a instanceof b", "instanceof"},
	}
	for _, tt := range tests {
		bin, ok := firstExpr(t, mustBuild(t, tt.code)).(*ast.BinaryExpression)
		if !ok {
			t.Errorf("%s did not build a *ast.BinaryExpression", tt.code)
			continue
		}
		if bin.Operator != tt.op {
			t.Errorf("%s: operator = %q, want %q", tt.code, bin.Operator, tt.op)
		}
	}
}

func TestLogicalOperatorTable(t *testing.T) {
	tests := []struct {
		code string
		op   ast.LogicalOperator
	}{
		{"a || b", "||"},
		{"a && b", "&&"},
		{"a ?? b", "??"},
	}
	for _, tt := range tests {
		logical, ok := firstExpr(t, mustBuild(t, tt.code)).(*ast.LogicalExpression)
		if !ok {
			t.Errorf("%s did not build a *ast.LogicalExpression", tt.code)
			continue
		}
		if logical.Operator != tt.op {
			t.Errorf("%s: operator = %q, want %q", tt.code, logical.Operator, tt.op)
		}
	}
}

func TestCompoundAssignmentTable(t *testing.T) {
	tests := []struct {
		code string
		op   ast.AssignmentOperator
	}{
		{"a *= b", "*="},
		{"a /= b", "/="},
		{"a %= b", "%="},
		{"a += b", "+="},
		{"a -= b", "-="},
		{"a <<= b", "<<="},
		{"a >>= b", ">>="},
		{"a >>>= b", ">>>="},
		{"a &= b", "&="},
		{"a ^= b", "^="},
		{"a |= b", "|="},
		{"a **= b", "**="},
	}
	for _, tt := range tests {
		assign, ok := firstExpr(t, mustBuild(t, tt.code)).(*ast.AssignmentExpression)
		if !ok {
			t.Errorf("%s did not build a *ast.AssignmentExpression", tt.code)
			continue
		}
		if assign.Operator != tt.op {
			t.Errorf("%s: operator = %q, want %q", tt.code, assign.Operator, tt.op)
		}
	}
}

func TestUnaryOperatorTable(t *testing.T) {
	tests := []struct {
		code string
		op   ast.UnaryOperator
	}{
		{"-a", "-"},
		{"+a", "+"},
		{"!a", "!"},
		{"~a", "~"},
		{"typeof a", "typeof"},
		{"void a", "void"},
		{"delete a", "delete"},
	}
	for _, tt := range tests {
		unary, ok := firstExpr(t, mustBuild(t, tt.code)).(*ast.UnaryExpression)
		if !ok {
			t.Errorf("%s did not build a *ast.UnaryExpression", tt.code)
			continue
		}
		if unary.Operator != tt.op {
			t.Errorf("%s: operator = %q, want %q", tt.code, unary.Operator, tt.op)
		}
		if !unary.Prefix {
			t.Errorf("%s: prefix = false, want true", tt.code)
		}
	}
}

func TestUpdateExpressions(t *testing.T) {
	tests := []struct {
		code   string
		op     ast.UpdateOperator
		prefix bool
	}{
		{"++a", "++", true},
		{"--a", "--", true},
		{"a++", "++", false},
		{"a--", "--", false},
	}
	for _, tt := range tests {
		update, ok := firstExpr(t, mustBuild(t, tt.code)).(*ast.UpdateExpression)
		if !ok {
			t.Errorf("%s did not build a *ast.UpdateExpression", tt.code)
			continue
		}
		if update.Operator != tt.op || update.Prefix != tt.prefix {
			t.Errorf("%s: got (%q, prefix=%v), want (%q, prefix=%v)",
				tt.code, update.Operator, update.Prefix, tt.op, tt.prefix)
		}
	}
}

func TestParenthesizedExpressionBuildsSequence(t *testing.T) {
	// ESTree has no parenthesis node: `(a)` builds the inner sequence.
	seq, ok := firstExpr(t, mustBuild(t, "(a)")).(*ast.SequenceExpression)
	if !ok {
		t.Fatal("(a) did not build a *ast.SequenceExpression")
	}
	if len(seq.Expressions) != 1 {
		t.Fatalf("inner sequence has %d members, want 1", len(seq.Expressions))
	}
	if got := identName(t, seq.Expressions[0]); got != "a" {
		t.Errorf("inner expression = %q, want a", got)
	}
}

func TestThisAndSuper(t *testing.T) {
	if _, ok := firstExpr(t, mustBuild(t, "this")).(*ast.ThisExpression); !ok {
		t.Error("this did not build a *ast.ThisExpression")
	}
	if _, ok := firstExpr(t, mustBuild(t, "super")).(*ast.Super); !ok {
		t.Error("super did not build a *ast.Super")
	}
}

func TestArrayExpressionElements(t *testing.T) {
	arr, ok := firstExpr(t, mustBuild(t, "[1, , ...a]")).(*ast.ArrayExpression)
	if !ok {
		t.Fatal("[1, , ...a] did not build a *ast.ArrayExpression")
	}
	if len(arr.Elements) != 3 {
		t.Fatalf("got %d elements, want 3", len(arr.Elements))
	}
	if got := numberValue(t, arr.Elements[0].(ast.Expr)); got != 1 {
		t.Errorf("elements[0] = %v, want 1", got)
	}
	if arr.Elements[1] != nil {
		t.Errorf("elements[1] = %v, want a hole", arr.Elements[1])
	}
	spread, ok := arr.Elements[2].(*ast.SpreadElement)
	if !ok {
		t.Fatalf("elements[2] is %T, want *ast.SpreadElement", arr.Elements[2])
	}
	if got := identName(t, spread.Argument); got != "a" {
		t.Errorf("spread argument = %q, want a", got)
	}
}

// ---------------------------------------------------------------------------
// Literals
// ---------------------------------------------------------------------------

func TestBuildLiterals(t *testing.T) {
	if _, ok := firstExpr(t, mustBuild(t, "null")).(*ast.NullLiteral); !ok {
		t.Error("null did not build a *ast.NullLiteral")
	}
	b, ok := firstExpr(t, mustBuild(t, "true")).(*ast.BooleanLiteral)
	if !ok || !b.Value {
		t.Error("true did not build a true *ast.BooleanLiteral")
	}
	s, ok := firstExpr(t, mustBuild(t, `"hi"`)).(*ast.StringLiteral)
	if !ok {
		t.Fatal(`"hi" did not build a *ast.StringLiteral`)
	}
	if s.Value != `"hi"` {
		t.Errorf("string value = %q, want the raw quoted text", s.Value)
	}
}

func TestNumericLiteralForms(t *testing.T) {
	tests := []struct {
		code string
		want float64
	}{
		{"0", 0},
		{"42", 42},
		{"3.25", 3.25},
		{".5", 0.5},
		{"1e3", 1000},
		{"0x10", 16},
		{"0b101", 5},
		{"0o17", 15},
		{"017", 15},
	}
	for _, tt := range tests {
		if got := numberValue(t, firstExpr(t, mustBuild(t, tt.code))); got != tt.want {
			t.Errorf("%s: value = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestUnsupportedLiterals(t *testing.T) {
	mustFail(t, "1n", "BigIntLiteral")
	mustFail(t, "x = /re/", "RegularExpressionLiteral")
}

// ---------------------------------------------------------------------------
// Fail-fast boundary
// ---------------------------------------------------------------------------

func TestFailFastOnIfStatement(t *testing.T) {
	mustFail(t, "if (a) {}", "IfStatement")
}

func TestUnsupportedStatements(t *testing.T) {
	tests := []struct {
		code    string
		feature string
	}{
		{"while (a) ;", "WhileStatement"},
		{"do ; while (a);", "DoWhileStatement"},
		{"for (;;) ;", "ForStatement"},
		{"for (a in b) ;", "ForInStatement"},
		{"continue;", "ContinueStatement"},
		{"break;", "BreakStatement"},
		{"return;", "ReturnStatement"},
		{"switch (a) {}", "SwitchStatement"},
		{"throw a;", "ThrowStatement"},
		{"try {} finally {}", "TryStatement"},
		{"debugger;", "DebuggerStatement"},
		{"function f() {}", "FunctionDeclaration"},
		{"class C {}", "ClassDeclaration"},
		{"with (a) ;", "WithStatement"},
		{"lbl: ;", "LabelledStatement"},
	}
	for _, tt := range tests {
		mustFail(t, tt.code, tt.feature)
	}
}

func TestUnsupportedExpressions(t *testing.T) {
	tests := []struct {
		code    string
		feature string
	}{
		{"a.b", "MemberDotExpression"},
		{"a[b]", "MemberIndexExpression"},
		{"f(x)", "ArgumentsExpression"},
		{"new A", "NewExpression"},
		{"a ? b : c", "TernaryExpression"},
		{"x = function () {}", "FunctionExpression"},
		{"x = class {}", "ClassExpression"},
		{"x = {}", "ObjectLiteralExpression"},
		{"new.target", "MetaExpression"},
		{"import(a)", "ImportExpression"},
		{"a &&= b", "LogicalAssignmentOperator"},
	}
	for _, tt := range tests {
		mustFail(t, tt.code, tt.feature)
	}
}

// A failure anywhere in the tree aborts the whole build, even when every
// preceding statement is supported.
func TestFailFastAbortsWholeBuild(t *testing.T) {
	mustFail(t, "var a = 1; if (a) {}", "IfStatement")
}

// ---------------------------------------------------------------------------
// Source locations
// ---------------------------------------------------------------------------

func TestLocationPolicy(t *testing.T) {
	bin := firstExpr(t, mustBuild(t, "1+2")).(*ast.BinaryExpression)
	loc := bin.Loc()
	if loc == nil {
		t.Fatal("binary expression has no location")
	}
	if loc.Start.Line != 1 || loc.Start.Column != 0 {
		t.Errorf("start = %v, want 1:0", loc.Start)
	}
	// End is the stop token's column plus one, the exclusive bound.
	if loc.End.Line != 1 || loc.End.Column != 3 {
		t.Errorf("end = %v, want 1:3", loc.End)
	}
}

func TestLocationColumnZeroStaysZero(t *testing.T) {
	// A stop token at column 0 keeps its column as the end bound.
	prog := mustBuild(t, ";")
	loc := prog.Body[0].Loc()
	if loc == nil {
		t.Fatal("empty statement has no location")
	}
	if loc.End.Column != 0 {
		t.Errorf("end column = %d, want 0", loc.End.Column)
	}
}

func TestSourceAttribution(t *testing.T) {
	prog := mustBuild(t, "var a;", builder.WithSource("input.js"))
	if got := prog.Loc().Source; got != "input.js" {
		t.Errorf("program source = %q, want input.js", got)
	}
	decl := prog.Body[0].(*ast.VariableDeclaration)
	if got := decl.Loc().Source; got != "input.js" {
		t.Errorf("declaration source = %q, want input.js", got)
	}
}

// ---------------------------------------------------------------------------
// Properties
// ---------------------------------------------------------------------------

func TestBuildDeterminism(t *testing.T) {
	const code = "var a = [1, 2]; a = a, 1 + 2 * 3;"
	first := mustBuild(t, code)
	second := mustBuild(t, code)
	if !ast.Equal(first, second) {
		t.Error("two builds of the same source differ")
	}
}

func TestMissingResultOnEmptyAlternative(t *testing.T) {
	// A statement wrapper with no matched alternative is a malformed
	// tree; the builder reports it as a defect, not a feature gap.
	semi := cst.Token{Kind: token.Semicolon, Text: ";", Line: 1, Column: 0}
	span := cst.NewSpan(semi, semi, ";")
	tree := cst.NewProgram(span, nil, []*cst.Statement{cst.NewStatement(span, nil)})

	_, err := builder.BuildProgram(tree, ast.ScriptSource)
	var missing *builder.MissingResultError
	if !errors.As(err, &missing) {
		t.Fatalf("error = %v, want MissingResultError", err)
	}
	if missing.Rule != "Statement" {
		t.Errorf("rule = %q, want Statement", missing.Rule)
	}
}
