// Package estree turns JavaScript source text into ESTree-shaped
// abstract syntax trees and renders them as indented ASCII trees.
//
// The pipeline runs in two stages: the parser produces a parse tree
// with one node per grammar production, and the builder converts that
// tree into AST nodes. Build runs both stages; Render and RenderShort
// wrap the generic tree printer.
package estree

import (
	"fmt"
	"io"
	"os"

	"github.com/estree-tools/estree/ast"
	"github.com/estree-tools/estree/builder"
	"github.com/estree-tools/estree/parser"
	"github.com/estree-tools/estree/printer"
)

// Version is the release of this module.
const Version = "0.3.0"

// Source couples JavaScript code with the name it is known by. The
// name threads into the source attribution of every SourceLocation in
// the built tree; an empty name leaves the trees anonymous.
type Source struct {
	Name string
	Code string
}

// NewStringSource wraps an anonymous code string.
func NewStringSource(code string) *Source {
	return &Source{Code: code}
}

// NewFileSource reads the file at path.
func NewFileSource(path string) (*Source, error) {
	code, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading source: %w", err)
	}
	return &Source{Name: path, Code: string(code)}, nil
}

// NewReaderSource drains r, typically standard input.
func NewReaderSource(name string, r io.Reader) (*Source, error) {
	code, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading source %s: %w", name, err)
	}
	return &Source{Name: name, Code: string(code)}, nil
}

// Build parses src and converts the parse tree into its AST. The
// first syntax error or unsupported construct aborts the build; no
// partial tree is returned.
func Build(src *Source, sourceType ast.SourceType, opts ...builder.Option) (*ast.Program, error) {
	tree, err := parser.ParseSource(src.Name, src.Code)
	if err != nil {
		return nil, err
	}
	if src.Name != "" {
		opts = append([]builder.Option{builder.WithSource(src.Name)}, opts...)
	}
	return builder.BuildProgram(tree, sourceType, opts...)
}

// Render returns the full ASCII tree of an AST value.
func Render(value any) (string, error) {
	return printer.Render(value)
}

// RenderShort returns the ASCII tree with the type and loc entries of
// every node suppressed, which keeps the output stable under position
// changes.
func RenderShort(value any) (string, error) {
	return printer.Render(value, printer.WithMode(printer.Short))
}
