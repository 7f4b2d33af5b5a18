// Package builder converts parse trees into ESTree AST nodes.
//
// One builder per grammar category (literal, expression, assignable,
// variable declaration, statement, program), composed by mutual
// recursion. The walk is a pure bottom-up transform and fails fast: the
// first construct outside the supported subset aborts the build, and no
// partial tree is ever returned.
package builder

import (
	"strings"

	"golang.org/x/exp/slog"

	"github.com/estree-tools/estree/ast"
	"github.com/estree-tools/estree/cst"
)

// Option adjusts one build parameter.
type Option func(*builder)

// WithSource attributes every SourceLocation of the built tree to the
// named origin, typically a file name.
func WithSource(name string) Option {
	return func(b *builder) { b.source = name }
}

// WithLogger routes the walk's debug tracing through log instead of the
// default logger.
func WithLogger(log *slog.Logger) Option {
	return func(b *builder) { b.log = log }
}

// builder carries the walk-wide parameters. Every BuildProgram call
// allocates a fresh one, so concurrent builds share no state.
type builder struct {
	source string
	log    *slog.Logger
}

// flags carries the statement-context switches down the walk. They are
// threaded but not enforced yet: the statements that would consult them
// sit inside loop and function bodies, which are still unsupported.
type flags struct {
	inLoop bool
	inFunc bool
}

// BuildProgram walks tree depth first and returns the Program root.
func BuildProgram(tree *cst.Program, sourceType ast.SourceType, opts ...Option) (*ast.Program, error) {
	b := &builder{log: slog.Default()}
	for _, opt := range opts {
		opt(b)
	}
	return b.program(tree, sourceType)
}

// program assembles the root node from the top level statements. A
// leading hashbang line is tolerated and skipped without being modeled.
func (b *builder) program(tree *cst.Program, sourceType ast.SourceType) (*ast.Program, error) {
	b.log.Debug("entered section", "rule", "Program", "sourceType", string(sourceType))

	if hashbang := tree.Hashbang(); hashbang != nil {
		b.log.Debug("skipping hashbang", "interpreter", strings.TrimPrefix(hashbang.Text, "#!"))
	}

	body := make([]ast.Stmt, 0, len(tree.Statements()))
	for _, stmt := range tree.Statements() {
		s, err := b.statement(stmt, flags{})
		if err != nil {
			return nil, err
		}
		body = append(body, s)
	}

	loc, err := b.location(tree)
	if err != nil {
		return nil, err
	}
	return &ast.Program{Location: loc, SourceType: sourceType, Body: body}, nil
}

// location converts a production's span into its SourceLocation. End is
// the stop token's position with the column advanced by one unless it is
// zero, the exclusive-end convention computed without token widths.
func (b *builder) location(n cst.Node) (*ast.SourceLocation, error) {
	start, err := ast.NewPosition(n.Start().Line, n.Start().Column)
	if err != nil {
		return nil, err
	}
	stop := n.Stop()
	column := stop.Column
	if column != 0 {
		column++
	}
	end, err := ast.NewPosition(stop.Line, column)
	if err != nil {
		return nil, err
	}
	return &ast.SourceLocation{Source: b.source, Start: start, End: end}, nil
}

// trace records the production the walk entered.
func (b *builder) trace(rule string) {
	b.log.Debug("entered section", "rule", rule)
}

// unsupported logs the rejected production and names it in the failure.
func (b *builder) unsupported(feature string) error {
	b.trace(feature)
	return &UnsupportedFeatureError{Feature: feature}
}
