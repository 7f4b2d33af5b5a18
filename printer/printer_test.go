package printer_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/estree-tools/estree/ast"
	"github.com/estree-tools/estree/printer"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func span(line, col, endLine, endCol int) *ast.SourceLocation {
	return &ast.SourceLocation{
		Start: ast.Position{Line: line, Column: col},
		End:   ast.Position{Line: endLine, Column: endCol},
	}
}

// render runs the printer and fails the test on error.
func render(t *testing.T, value any, opts ...printer.Option) string {
	t.Helper()
	out, err := printer.Render(value, opts...)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	return out
}

func assertRender(t *testing.T, value any, want string, opts ...printer.Option) {
	t.Helper()
	got := render(t, value, opts...)
	if got != want {
		t.Errorf("rendered tree mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

// onePlusTwo builds the expression `1+2` with literal positions.
func onePlusTwo() *ast.BinaryExpression {
	return ast.NewAddArithmeticExpression(
		span(1, 0, 1, 3),
		&ast.NumericLiteral{Location: span(1, 0, 1, 1), Value: 1},
		&ast.NumericLiteral{Location: span(1, 2, 1, 3), Value: 2},
	)
}

// ---------------------------------------------------------------------------
// Mode goldens
// ---------------------------------------------------------------------------

func TestRenderFull(t *testing.T) {
	want := `BinaryExpression
+-- type: BinaryExpression
+-- loc:
|   +-- start: 1:0
|   +-- end: 1:3
+-- operator: +
+-- left: Literal
|   +-- type: Literal
|   +-- loc:
|   |   +-- start: 1:0
|   |   +-- end: 1:1
|   +-- value: 1
+-- right: Literal
|   +-- type: Literal
|   +-- loc:
|   |   +-- start: 1:2
|   |   +-- end: 1:3
|   +-- value: 2
`
	assertRender(t, onePlusTwo(), want)
}

func TestRenderShort(t *testing.T) {
	want := `BinaryExpression
+-- operator: +
+-- left: Literal
|   +-- value: 1
+-- right: Literal
|   +-- value: 2
`
	assertRender(t, onePlusTwo(), want, printer.WithMode(printer.Short))
}

func TestRenderEmptyStatementProgram(t *testing.T) {
	program := &ast.Program{
		Location:   span(1, 0, 1, 1),
		SourceType: ast.ScriptSource,
		Body:       []ast.Stmt{&ast.EmptyStatement{Location: span(1, 0, 1, 1)}},
	}
	want := `Program
+-- sourceType: script
+-- body:
|   +-- 0: EmptyStatement
`
	assertRender(t, program, want, printer.WithMode(printer.Short))
}

// ---------------------------------------------------------------------------
// Scalar leaves
// ---------------------------------------------------------------------------

// A bare NullLiteral renders as the single line "null" with no children,
// even in full mode.
func TestRenderScalarLeafAlone(t *testing.T) {
	assertRender(t, &ast.NullLiteral{Location: span(1, 0, 1, 4)}, "null\n")
}

func TestRenderScalarLeavesInTree(t *testing.T) {
	cond := &ast.ConditionalExpression{
		Location:   span(1, 0, 1, 16),
		Test:       &ast.BooleanLiteral{Location: span(1, 0, 1, 4), Value: true},
		Alternate:  &ast.StringLiteral{Location: span(1, 13, 1, 16), Value: "'b'"},
		Consequent: &ast.NullLiteral{Location: span(1, 7, 1, 11)},
	}
	want := `ConditionalExpression
+-- test: true
+-- alternate: "'b'"
+-- consequent: null
`
	assertRender(t, cond, want, printer.WithMode(printer.Short))
}

// ---------------------------------------------------------------------------
// Labels, levels, plain values
// ---------------------------------------------------------------------------

func TestRenderWithPrefixAndLevel(t *testing.T) {
	stmt := &ast.EmptyStatement{}
	want := "|   +-- stmt: EmptyStatement\n"
	assertRender(t, stmt, want,
		printer.WithPrefix("stmt:"),
		printer.WithLevel(2),
		printer.WithMode(printer.Short),
	)
}

func TestRenderNil(t *testing.T) {
	assertRender(t, nil, "<nil>\n")
}

func TestRenderSequenceAtRoot(t *testing.T) {
	seq := []any{"a", true, nil}
	want := `
+-- 0: a
+-- 1: true
+-- 2: <nil>
`
	assertRender(t, seq, want)
}

func TestRenderAbsentChildren(t *testing.T) {
	ret := &ast.ReturnStatement{Location: span(1, 0, 1, 7)}
	want := `ReturnStatement
+-- argument: <nil>
`
	assertRender(t, ret, want, printer.WithMode(printer.Short))
}

func TestRenderNumericForms(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{1, "1"},
		{2.5, "2.5"},
		{1e21, "1e+21"},
	}
	for _, tt := range tests {
		lit := &ast.NumericLiteral{Location: span(1, 0, 1, 1), Value: tt.value}
		want := "Literal\n+-- value: " + tt.want + "\n"
		assertRender(t, lit, want, printer.WithMode(printer.Short))
	}
}

// ---------------------------------------------------------------------------
// Properties
// ---------------------------------------------------------------------------

// Short output must not leak type or loc labels for any input tree.
func TestShortModeSuppression(t *testing.T) {
	loc := span(1, 0, 3, 1)
	tree := &ast.Program{
		Location:   loc,
		SourceType: ast.ModuleSource,
		Body: []ast.Stmt{
			&ast.FunctionDeclaration{
				Location: loc,
				ID:       &ast.Identifier{Location: loc, Name: "f"},
				Params: []ast.Pattern{
					&ast.Identifier{Location: loc, Name: "a"},
					&ast.AssignmentPattern{
						Location: loc,
						Left:     &ast.Identifier{Location: loc, Name: "b"},
						Right:    &ast.NumericLiteral{Location: loc, Value: 2},
					},
				},
				Body: &ast.FunctionBody{Location: loc},
			},
			&ast.ExpressionStatement{
				Location: loc,
				Expression: &ast.SequenceExpression{
					Location: loc,
					Expressions: []ast.Expr{
						ast.NewSimpleAssignExpression(loc,
							&ast.Identifier{Location: loc, Name: "x"},
							&ast.ArrayExpression{
								Location: loc,
								Elements: []ast.Node{
									&ast.NumericLiteral{Location: loc, Value: 1},
									nil,
									&ast.SpreadElement{Location: loc, Argument: &ast.Identifier{Location: loc, Name: "xs"}},
								},
							},
						),
					},
				},
			},
		},
	}
	out := render(t, tree, printer.WithMode(printer.Short))
	if strings.Contains(out, "type:") {
		t.Errorf("short output leaks a type label:\n%s", out)
	}
	if strings.Contains(out, "loc:") {
		t.Errorf("short output leaks a loc label:\n%s", out)
	}
}

func TestRenderIdempotent(t *testing.T) {
	tree := onePlusTwo()
	for _, mode := range []printer.Mode{printer.Full, printer.Short} {
		first := render(t, tree, printer.WithMode(mode))
		second := render(t, tree, printer.WithMode(mode))
		if first != second {
			t.Errorf("mode %v: re-render differs", mode)
		}
	}
}

func TestRenderNegativeLevel(t *testing.T) {
	_, err := printer.Render(&ast.EmptyStatement{}, printer.WithLevel(-1))
	if err == nil {
		t.Fatal("expected an error for a negative nesting level")
	}
	var nerr *printer.InvalidNestingLevelError
	if !errors.As(err, &nerr) {
		t.Fatalf("error has type %T", err)
	}
	if nerr.Level != -1 {
		t.Errorf("error carries level %d, want -1", nerr.Level)
	}
}
