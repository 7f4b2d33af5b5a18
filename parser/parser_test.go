package parser_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/estree-tools/estree/cst"
	"github.com/estree-tools/estree/parser"
	"github.com/estree-tools/estree/token"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// mustParse parses code and fails the test if there's an error.
func mustParse(t *testing.T, code string) *cst.Program {
	t.Helper()
	prog, err := parser.Parse(code)
	if err != nil {
		t.Fatalf("Failed to parse:\n%s\nError: %v", code, err)
	}
	return prog
}

// stmtAt returns the i-th top-level statement.
func stmtAt(t *testing.T, prog *cst.Program, i int) *cst.Statement {
	t.Helper()
	list := prog.Statements()
	if i >= len(list) {
		t.Fatalf("program has %d statements, want at least %d", len(list), i+1)
	}
	return list[i]
}

// exprAt extracts the first expression of the i-th statement's sequence.
func exprAt(t *testing.T, prog *cst.Program, i int) cst.SingleExpression {
	t.Helper()
	es := stmtAt(t, prog, i).ExpressionStatement()
	if es == nil {
		t.Fatalf("statement %d is not an expression statement", i)
	}
	exprs := es.ExpressionSequence().SingleExpressions()
	if len(exprs) == 0 {
		t.Fatalf("statement %d has an empty expression sequence", i)
	}
	return exprs[0]
}

// parseExpr parses code and returns the first expression of the first
// statement.
func parseExpr(t *testing.T, code string) cst.SingleExpression {
	t.Helper()
	return exprAt(t, mustParse(t, code), 0)
}

// ---------------------------------------------------------------------------
// Programs and statements
// ---------------------------------------------------------------------------

func TestParseEmptyProgram(t *testing.T) {
	prog := mustParse(t, "")
	if got := len(prog.Statements()); got != 0 {
		t.Fatalf("got %d statements, want 0", got)
	}
	if got := prog.Start().Kind; got != token.Eof {
		t.Errorf("Start().Kind = %v, want Eof", got)
	}
}

func TestParseEmptyStatement(t *testing.T) {
	prog := mustParse(t, ";")
	s := stmtAt(t, prog, 0)
	if s.EmptyStatement() == nil {
		t.Fatalf("want an empty statement, got %q", s.Text())
	}
	if got := s.Text(); got != ";" {
		t.Errorf("Text() = %q, want %q", got, ";")
	}
}

func TestParseBlockStatement(t *testing.T) {
	prog := mustParse(t, "{ 1; ; }")
	b := stmtAt(t, prog, 0).Block()
	if b == nil {
		t.Fatal("want a block statement")
	}
	if got := len(b.StatementList()); got != 2 {
		t.Errorf("block has %d statements, want 2", got)
	}
	if got := b.Text(); got != "{ 1; ; }" {
		t.Errorf("Text() = %q, want %q", got, "{ 1; ; }")
	}
}

func TestParseExpressionStatementSpan(t *testing.T) {
	prog := mustParse(t, "1 + 2;")
	s := stmtAt(t, prog, 0)
	es := s.ExpressionStatement()
	if es == nil {
		t.Fatal("want an expression statement")
	}
	// The statement owns the semicolon, the sequence does not.
	if got := s.Text(); got != "1 + 2;" {
		t.Errorf("statement Text() = %q, want %q", got, "1 + 2;")
	}
	if got := es.ExpressionSequence().Text(); got != "1 + 2" {
		t.Errorf("sequence Text() = %q, want %q", got, "1 + 2")
	}
	start := es.ExpressionSequence().Start()
	if start.Line != 1 || start.Column != 0 {
		t.Errorf("sequence starts at %d:%d, want 1:0", start.Line, start.Column)
	}
}

func TestParseExpressionSequence(t *testing.T) {
	prog := mustParse(t, "a, b, c;")
	es := stmtAt(t, prog, 0).ExpressionStatement()
	if es == nil {
		t.Fatal("want an expression statement")
	}
	if got := len(es.ExpressionSequence().SingleExpressions()); got != 3 {
		t.Errorf("sequence has %d expressions, want 3", got)
	}
}

func TestStatementPositions(t *testing.T) {
	prog := mustParse(t, "var x;\nvar yy = 1;")
	s := stmtAt(t, prog, 1)
	start, stop := s.Start(), s.Stop()
	if start.Line != 2 || start.Column != 0 {
		t.Errorf("statement starts at %d:%d, want 2:0", start.Line, start.Column)
	}
	if stop.Line != 2 || stop.Column != 10 {
		t.Errorf("statement stops at %d:%d, want 2:10", stop.Line, stop.Column)
	}
	if got := s.Text(); got != "var yy = 1;" {
		t.Errorf("Text() = %q, want %q", got, "var yy = 1;")
	}
}

func TestParseHashbang(t *testing.T) {
	prog := mustParse(t, "#!/usr/bin/env node\nvar x;")
	hb := prog.Hashbang()
	if hb == nil {
		t.Fatal("want a hashbang token")
	}
	if hb.Text != "#!/usr/bin/env node" {
		t.Errorf("hashbang Text = %q", hb.Text)
	}
	if hb.Line != 1 || hb.Column != 0 {
		t.Errorf("hashbang at %d:%d, want 1:0", hb.Line, hb.Column)
	}
	if got := len(prog.Statements()); got != 1 {
		t.Errorf("got %d statements, want 1", got)
	}
}

// ---------------------------------------------------------------------------
// Variable statements
// ---------------------------------------------------------------------------

func TestParseVariableStatement(t *testing.T) {
	prog := mustParse(t, "var x = 1, y;")
	vs := stmtAt(t, prog, 0).VariableStatement()
	if vs == nil {
		t.Fatal("want a variable statement")
	}
	list := vs.VariableDeclarationList()
	if got := list.VarModifier().Text; got != "var" {
		t.Errorf("VarModifier().Text = %q, want %q", got, "var")
	}
	decls := list.VariableDeclarations()
	if len(decls) != 2 {
		t.Fatalf("got %d declarations, want 2", len(decls))
	}
	if decls[0].SingleExpression() == nil {
		t.Errorf("first declaration lost its initializer")
	}
	if decls[1].SingleExpression() != nil {
		t.Errorf("second declaration has an initializer")
	}
	if id := decls[1].Assignable().Identifier(); id == nil || id.Text() != "y" {
		t.Errorf("second declaration target = %v", decls[1].Assignable().Text())
	}
}

func TestParseDestructuringTargets(t *testing.T) {
	prog := mustParse(t, "let [a, b] = c;\nconst {d} = e;")

	first := stmtAt(t, prog, 0).VariableStatement()
	if first == nil {
		t.Fatal("want a variable statement")
	}
	target := first.VariableDeclarationList().VariableDeclarations()[0].Assignable()
	if target.ArrayLiteral() == nil {
		t.Errorf("array pattern target = %q", target.Text())
	}

	second := stmtAt(t, prog, 1).VariableStatement()
	if second == nil {
		t.Fatal("want a variable statement")
	}
	target = second.VariableDeclarationList().VariableDeclarations()[0].Assignable()
	if target.ObjectLiteral() == nil {
		t.Errorf("object pattern target = %q", target.Text())
	}
}

func TestLetOnlyDeclaresBeforeBinding(t *testing.T) {
	prog := mustParse(t, "let = 5;\nlet x;")
	if stmtAt(t, prog, 0).ExpressionStatement() == nil {
		t.Errorf("let without a binding should parse as an expression statement")
	}
	if stmtAt(t, prog, 1).VariableStatement() == nil {
		t.Errorf("let with a binding should parse as a declaration")
	}
}

// ---------------------------------------------------------------------------
// Operators
// ---------------------------------------------------------------------------

func TestBinaryPrecedence(t *testing.T) {
	add, ok := parseExpr(t, "1 + 2 * 3;").(*cst.AdditiveExpression)
	if !ok {
		t.Fatal("want an additive expression at the top")
	}
	if _, ok := add.Right().(*cst.MultiplicativeExpression); !ok {
		t.Errorf("right operand is %T, want *cst.MultiplicativeExpression", add.Right())
	}
}

func TestBinaryLeftAssociativity(t *testing.T) {
	sub, ok := parseExpr(t, "1 - 2 - 3;").(*cst.AdditiveExpression)
	if !ok {
		t.Fatal("want an additive expression at the top")
	}
	if _, ok := sub.Left().(*cst.AdditiveExpression); !ok {
		t.Errorf("left operand is %T, want *cst.AdditiveExpression", sub.Left())
	}
	if got := sub.Text(); got != "1 - 2 - 3" {
		t.Errorf("Text() = %q, want %q", got, "1 - 2 - 3")
	}
}

func TestExponentRightAssociativity(t *testing.T) {
	pow, ok := parseExpr(t, "2 ** 3 ** 2;").(*cst.PowerExpression)
	if !ok {
		t.Fatal("want a power expression at the top")
	}
	if _, ok := pow.Right().(*cst.PowerExpression); !ok {
		t.Errorf("right operand is %T, want *cst.PowerExpression", pow.Right())
	}
}

func TestDivisionIsNotARegex(t *testing.T) {
	mul, ok := parseExpr(t, "a / b;").(*cst.MultiplicativeExpression)
	if !ok {
		t.Fatal("want a multiplicative expression")
	}
	if mul.Divide() == nil {
		t.Errorf("Divide() = nil")
	}
	if mul.Multiply() != nil {
		t.Errorf("Multiply() = %v, want nil", mul.Multiply())
	}
}

func TestParseAssignment(t *testing.T) {
	outer, ok := parseExpr(t, "a = b = c;").(*cst.AssignmentExpression)
	if !ok {
		t.Fatal("want an assignment expression")
	}
	if _, ok := outer.Right().(*cst.AssignmentExpression); !ok {
		t.Errorf("assignment is not right associative, right = %T", outer.Right())
	}
}

func TestParseAssignmentOperator(t *testing.T) {
	ae, ok := parseExpr(t, "a *= 2;").(*cst.AssignmentOperatorExpression)
	if !ok {
		t.Fatal("want a compound assignment expression")
	}
	op := ae.AssignmentOperator()
	if op.MultiplyAssign() == nil {
		t.Errorf("MultiplyAssign() = nil")
	}
	if op.DivideAssign() != nil {
		t.Errorf("DivideAssign() = %v, want nil", op.DivideAssign())
	}
}

func TestParseUnaryChain(t *testing.T) {
	not, ok := parseExpr(t, "!!x;").(*cst.NotExpression)
	if !ok {
		t.Fatal("want a not expression")
	}
	if _, ok := not.SingleExpression().(*cst.NotExpression); !ok {
		t.Errorf("argument is %T, want *cst.NotExpression", not.SingleExpression())
	}
}

func TestParseUpdateExpressions(t *testing.T) {
	if _, ok := parseExpr(t, "++a;").(*cst.PreIncrementExpression); !ok {
		t.Errorf("++a did not parse as a prefix increment")
	}
	if _, ok := parseExpr(t, "a--;").(*cst.PostDecreaseExpression); !ok {
		t.Errorf("a-- did not parse as a postfix decrement")
	}
}

// ---------------------------------------------------------------------------
// Automatic semicolon insertion
// ---------------------------------------------------------------------------

func TestSemicolonInsertionAtNewline(t *testing.T) {
	prog := mustParse(t, "a\nb")
	if got := len(prog.Statements()); got != 2 {
		t.Fatalf("got %d statements, want 2", got)
	}
	if got := stmtAt(t, prog, 0).Text(); got != "a" {
		t.Errorf("first statement Text() = %q, want %q", got, "a")
	}
}

func TestNoSemicolonInsertionMidExpression(t *testing.T) {
	prog := mustParse(t, "a +\nb")
	if got := len(prog.Statements()); got != 1 {
		t.Fatalf("got %d statements, want 1", got)
	}
}

func TestPostfixDoesNotCrossNewlines(t *testing.T) {
	prog := mustParse(t, "a\n++b")
	if got := len(prog.Statements()); got != 2 {
		t.Fatalf("got %d statements, want 2", got)
	}
	if _, ok := exprAt(t, prog, 1).(*cst.PreIncrementExpression); !ok {
		t.Errorf("second statement is not a prefix increment")
	}
}

// ---------------------------------------------------------------------------
// Literals
// ---------------------------------------------------------------------------

func TestParseLiteralTokens(t *testing.T) {
	tests := []struct {
		src  string
		kind func(*cst.Literal) *cst.Token
		text string
	}{
		{"null;", (*cst.Literal).NullLiteral, "null"},
		{"true;", (*cst.Literal).BooleanLiteral, "true"},
		{"'a\\'b';", (*cst.Literal).StringLiteral, "'a\\'b'"},
		{"/ab+c/gi;", (*cst.Literal).RegularExpressionLiteral, "/ab+c/gi"},
	}
	for _, tt := range tests {
		le, ok := parseExpr(t, tt.src).(*cst.LiteralExpression)
		if !ok {
			t.Errorf("%q did not parse as a literal", tt.src)
			continue
		}
		tok := tt.kind(le.Literal())
		if tok == nil {
			t.Errorf("%q: literal kind accessor returned nil", tt.src)
			continue
		}
		if tok.Text != tt.text {
			t.Errorf("%q: raw text = %q, want %q", tt.src, tok.Text, tt.text)
		}
	}
}

func TestParseNumericLiteralForms(t *testing.T) {
	tests := []struct {
		src  string
		form func(*cst.NumericLiteral) *cst.Token
	}{
		{"42;", (*cst.NumericLiteral).DecimalLiteral},
		{"4.5e-3;", (*cst.NumericLiteral).DecimalLiteral},
		{"0x1F;", (*cst.NumericLiteral).HexIntegerLiteral},
		{"0o17;", (*cst.NumericLiteral).OctalIntegerLiteral2},
		{"0b101;", (*cst.NumericLiteral).BinaryIntegerLiteral},
		{"077;", (*cst.NumericLiteral).OctalIntegerLiteral},
	}
	for _, tt := range tests {
		le, ok := parseExpr(t, tt.src).(*cst.LiteralExpression)
		if !ok {
			t.Errorf("%q did not parse as a literal", tt.src)
			continue
		}
		num := le.Literal().NumericLiteral()
		if num == nil {
			t.Errorf("%q: NumericLiteral() = nil", tt.src)
			continue
		}
		if tt.form(num) == nil {
			t.Errorf("%q classified as the wrong numeric form", tt.src)
		}
	}
}

func TestParseBigintLiteral(t *testing.T) {
	le, ok := parseExpr(t, "10n;").(*cst.LiteralExpression)
	if !ok {
		t.Fatal("want a literal expression")
	}
	if le.Literal().BigintLiteral() == nil {
		t.Errorf("BigintLiteral() = nil")
	}
}

func TestParseTemplateLiteral(t *testing.T) {
	le, ok := parseExpr(t, "`a${1 + 2}b`;").(*cst.LiteralExpression)
	if !ok {
		t.Fatal("want a literal expression")
	}
	if le.Literal().TemplateStringLiteral() == nil {
		t.Fatalf("TemplateStringLiteral() = nil")
	}
	if got := le.Text(); got != "`a${1 + 2}b`" {
		t.Errorf("Text() = %q, want %q", got, "`a${1 + 2}b`")
	}
}

// ---------------------------------------------------------------------------
// Array literals
// ---------------------------------------------------------------------------

func TestParseArrayLiteral(t *testing.T) {
	ae, ok := parseExpr(t, "[1, , 2];").(*cst.ArrayLiteralExpression)
	if !ok {
		t.Fatal("want an array literal expression")
	}
	elements := ae.ArrayLiteral().ElementList().ArrayElements()
	if len(elements) != 3 {
		t.Fatalf("got %d elements, want 3", len(elements))
	}
	if elements[1] != nil {
		t.Errorf("elision did not produce a hole")
	}
	if elements[0] == nil || elements[0].SingleExpression() == nil {
		t.Errorf("first element lost its expression")
	}
}

func TestParseArrayEdgeShapes(t *testing.T) {
	empty := parseExpr(t, "[];").(*cst.ArrayLiteralExpression)
	if empty.ArrayLiteral().ElementList() != nil {
		t.Errorf("[] has a non-nil element list")
	}

	trailing := parseExpr(t, "[1,];").(*cst.ArrayLiteralExpression)
	if got := len(trailing.ArrayLiteral().ElementList().ArrayElements()); got != 1 {
		t.Errorf("[1,] has %d elements, want 1", got)
	}

	holes := parseExpr(t, "[,,];").(*cst.ArrayLiteralExpression)
	if got := len(holes.ArrayLiteral().ElementList().ArrayElements()); got != 2 {
		t.Errorf("[,,] has %d elements, want 2", got)
	}
}

func TestParseArraySpread(t *testing.T) {
	ae := parseExpr(t, "[...xs, 1];").(*cst.ArrayLiteralExpression)
	elements := ae.ArrayLiteral().ElementList().ArrayElements()
	if len(elements) != 2 {
		t.Fatalf("got %d elements, want 2", len(elements))
	}
	if elements[0].Ellipsis() == nil {
		t.Errorf("spread element lost its ellipsis")
	}
	if elements[1].Ellipsis() != nil {
		t.Errorf("plain element gained an ellipsis")
	}
}

// ---------------------------------------------------------------------------
// Parenthesized expressions
// ---------------------------------------------------------------------------

func TestParseParenthesizedExpression(t *testing.T) {
	pe, ok := parseExpr(t, "(1, 2);").(*cst.ParenthesizedExpression)
	if !ok {
		t.Fatal("want a parenthesized expression")
	}
	if got := len(pe.ExpressionSequence().SingleExpressions()); got != 2 {
		t.Errorf("inner sequence has %d expressions, want 2", got)
	}
	if got := pe.Text(); got != "(1, 2)" {
		t.Errorf("Text() = %q, want %q", got, "(1, 2)")
	}
}

// ---------------------------------------------------------------------------
// Constructs recognized by span only
// ---------------------------------------------------------------------------

func TestParseUnsupportedStatements(t *testing.T) {
	tests := []struct {
		src   string
		check func(*cst.Statement) bool
	}{
		{"if (a) b; else c;", func(s *cst.Statement) bool { return s.IfStatement() != nil }},
		{"continue;", func(s *cst.Statement) bool { return s.ContinueStatement() != nil }},
		{"break out;", func(s *cst.Statement) bool { return s.BreakStatement() != nil }},
		{"return a + b;", func(s *cst.Statement) bool { return s.ReturnStatement() != nil }},
		{"yield 1;", func(s *cst.Statement) bool { return s.YieldStatement() != nil }},
		{"with (a) b;", func(s *cst.Statement) bool { return s.WithStatement() != nil }},
		{"out: x;", func(s *cst.Statement) bool { return s.LabelledStatement() != nil }},
		{"switch (a) { case 1: break; default: x; }", func(s *cst.Statement) bool { return s.SwitchStatement() != nil }},
		{"throw new Error('x');", func(s *cst.Statement) bool { return s.ThrowStatement() != nil }},
		{"try { a; } catch (e) { b; } finally { c; }", func(s *cst.Statement) bool { return s.TryStatement() != nil }},
		{"debugger;", func(s *cst.Statement) bool { return s.DebuggerStatement() != nil }},
		{"function f(a, b) { return a; }", func(s *cst.Statement) bool { return s.FunctionDeclaration() != nil }},
		{"async function g() {}", func(s *cst.Statement) bool { return s.FunctionDeclaration() != nil }},
		{"class A extends B { m() {} }", func(s *cst.Statement) bool { return s.ClassDeclaration() != nil }},
		{"import {a, b} from 'm';", func(s *cst.Statement) bool { return s.ImportStatement() != nil }},
		{"export default function f() {}", func(s *cst.Statement) bool { return s.ExportDeclaration() != nil }},
		{"export { a };", func(s *cst.Statement) bool { return s.ExportDeclaration() != nil }},
	}
	for _, tt := range tests {
		prog := mustParse(t, tt.src)
		s := stmtAt(t, prog, 0)
		if !tt.check(s) {
			t.Errorf("%q parsed with the wrong statement alternative", tt.src)
			continue
		}
		if got := s.Text(); got != tt.src {
			t.Errorf("%q: statement Text() = %q", tt.src, got)
		}
	}
}

func TestParseIterationStatements(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"do x; while (a);", "*cst.DoStatement"},
		{"while (a) { b; }", "*cst.WhileStatement"},
		{"for (let i = 0; i < n; i++) f(i);", "*cst.ForStatement"},
		{"for (a in b) c;", "*cst.ForInStatement"},
		{"for (const x of xs) f(x);", "*cst.ForOfStatement"},
		{"for await (const x of xs) f(x);", "*cst.ForOfStatement"},
	}
	for _, tt := range tests {
		prog := mustParse(t, tt.src)
		it := stmtAt(t, prog, 0).IterationStatement()
		if it == nil {
			t.Errorf("%q did not parse as an iteration statement", tt.src)
			continue
		}
		if got := fmt.Sprintf("%T", it); got != tt.want {
			t.Errorf("%q parsed as %s, want %s", tt.src, got, tt.want)
		}
		if got := it.Text(); got != tt.src {
			t.Errorf("%q: Text() = %q", tt.src, got)
		}
	}
}

func TestParseUnsupportedExpressions(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"a.b.c;", "*cst.MemberDotExpression"},
		{"a[0];", "*cst.MemberIndexExpression"},
		{"f(1, ...rest);", "*cst.ArgumentsExpression"},
		{"new A(1);", "*cst.NewExpression"},
		{"new.target;", "*cst.MetaExpression"},
		{"import.meta;", "*cst.MetaExpression"},
		{"import('m');", "*cst.ImportExpression"},
		{"a ? b : c;", "*cst.TernaryExpression"},
		{"x => x + 1;", "*cst.ArrowFunctionExpression"},
		{"(a, b) => { return a; };", "*cst.ArrowFunctionExpression"},
		{"async (a) => a;", "*cst.ArrowFunctionExpression"},
		{"async x => x;", "*cst.ArrowFunctionExpression"},
		{"a?.b;", "*cst.OptionalChainExpression"},
		{"a?.[0];", "*cst.OptionalChainExpression"},
		{"await p;", "*cst.AwaitExpression"},
		{"tag`x${y}`;", "*cst.TemplateStringExpression"},
	}
	for _, tt := range tests {
		if got := fmt.Sprintf("%T", parseExpr(t, tt.src)); got != tt.want {
			t.Errorf("%q parsed as %s, want %s", tt.src, got, tt.want)
		}
	}
}

func TestParseUnsupportedPrimaries(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"x = {a: 1, b() { return 2; }};", "*cst.ObjectLiteralExpression"},
		{"x = function f(a) { return a; };", "*cst.FunctionExpression"},
		{"x = async function () {};", "*cst.FunctionExpression"},
		{"x = class extends B {};", "*cst.ClassExpression"},
		{"x = yield;", "*cst.YieldExpression"},
		{"x = yield* g();", "*cst.YieldExpression"},
	}
	for _, tt := range tests {
		ae, ok := parseExpr(t, tt.src).(*cst.AssignmentExpression)
		if !ok {
			t.Errorf("%q did not parse as an assignment", tt.src)
			continue
		}
		if got := fmt.Sprintf("%T", ae.Right()); got != tt.want {
			t.Errorf("%q right side parsed as %s, want %s", tt.src, got, tt.want)
		}
	}
}

func TestUnsupportedSpanSurvivesNesting(t *testing.T) {
	src := "if (a) { while (b) { c(); } } else d;"
	prog := mustParse(t, src)
	s := stmtAt(t, prog, 0)
	if s.IfStatement() == nil {
		t.Fatal("want an if statement")
	}
	if got := s.IfStatement().Text(); got != src {
		t.Errorf("Text() = %q, want the whole statement", got)
	}
}

// ---------------------------------------------------------------------------
// Errors
// ---------------------------------------------------------------------------

func TestSyntaxErrorPositions(t *testing.T) {
	_, err := parser.Parse("var x = ;\nvar y = 1;")
	if err == nil {
		t.Fatal("want a syntax error")
	}
	var se *parser.SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("error %v is not a SyntaxError", err)
	}
	if se.Line != 1 || se.Column != 8 {
		t.Errorf("error at %d:%d, want 1:8", se.Line, se.Column)
	}
	if !strings.Contains(se.Error(), "line 1:8") {
		t.Errorf("Error() = %q", se.Error())
	}
}

func TestUnterminatedString(t *testing.T) {
	_, err := parser.Parse("'abc")
	if err == nil {
		t.Fatal("want a syntax error")
	}
	if !strings.Contains(err.Error(), "Unterminated string literal") {
		t.Errorf("err = %v", err)
	}
}

func TestUnexpectedEndOfInput(t *testing.T) {
	_, err := parser.Parse("{ 1;")
	if err == nil {
		t.Fatal("want a syntax error")
	}
	if !strings.Contains(err.Error(), "Unexpected end of input") {
		t.Errorf("err = %v", err)
	}
}

func TestMultipleErrorsAreJoined(t *testing.T) {
	_, err := parser.Parse("var = 1;\nvar = 2;")
	if err == nil {
		t.Fatal("want syntax errors")
	}
	if got := strings.Count(err.Error(), "\n") + 1; got < 2 {
		t.Errorf("want at least 2 joined errors, got %q", err.Error())
	}
}
