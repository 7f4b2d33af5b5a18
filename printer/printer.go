// Package printer renders AST values as indented ASCII trees.
//
// The renderer walks the generic field contract of the ast package, so it is
// total over the node set: new node variants render without printer changes.
package printer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/estree-tools/estree/ast"
)

// Mode selects how much of each node's field set is rendered.
type Mode int

const (
	// Full renders every field, including the type tag and the location.
	Full Mode = iota

	// Short drops the type and loc fields from every node. Short output
	// is stable under position changes, which keeps golden files
	// readable while upstream position tracking is still settling.
	Short
)

// InvalidNestingLevelError reports a render request at a negative level,
// which is always a caller bug.
type InvalidNestingLevelError struct {
	Level int
}

func (e *InvalidNestingLevelError) Error() string {
	return fmt.Sprintf("nesting level %d is below zero", e.Level)
}

// Option adjusts one rendering parameter.
type Option func(*state)

// WithPrefix labels the root entry the way field names label children.
func WithPrefix(prefix string) Option {
	return func(s *state) { s.prefix = prefix }
}

// WithLevel renders the root at the given nesting depth. The default is 0,
// the leftmost column.
func WithLevel(level int) Option {
	return func(s *state) { s.level = level }
}

// WithMode selects Full or Short rendering. The default is Full.
func WithMode(mode Mode) Option {
	return func(s *state) { s.mode = mode }
}

type state struct {
	out    *strings.Builder
	mode   Mode
	prefix string
	level  int
}

// Render walks value and returns its ASCII tree. Every entry takes one
// line: an indent, an optional label, and the entry's own text. Nodes
// render their type tag and recurse into their fields; scalar literal
// leaves render their scalar value and stop; sequences render an empty own
// text and index their children.
func Render(value any, opts ...Option) (string, error) {
	s := &state{out: &strings.Builder{}}
	for _, opt := range opts {
		opt(s)
	}
	if s.level < 0 {
		return "", &InvalidNestingLevelError{Level: s.level}
	}
	s.render(value, s.prefix, s.level)
	return s.out.String(), nil
}

// render dispatches on the closed field-value kind set. ScalarValuer must
// stay above Node: the scalar literal variants implement both, and render
// as bare leaves.
func (s *state) render(value any, label string, level int) {
	switch v := value.(type) {
	case nil:
		s.line(level, label, "<nil>")
	case ast.ScalarValuer:
		s.line(level, label, v.ScalarValue())
	case ast.Node:
		s.line(level, label, v.Type())
		for _, f := range v.Fields() {
			if s.mode == Short && (f.Name == "type" || f.Name == "loc") {
				continue
			}
			s.render(f.Value, f.Name+":", level+1)
		}
	case *ast.SourceLocation:
		s.line(level, label, "")
		for _, f := range v.Fields() {
			s.render(f.Value, f.Name+":", level+1)
		}
	case ast.Position:
		s.line(level, label, v.String())
	case []any:
		s.line(level, label, "")
		for i, el := range v {
			s.render(el, strconv.Itoa(i)+":", level+1)
		}
	case string:
		s.line(level, label, v)
	case bool:
		s.line(level, label, strconv.FormatBool(v))
	case float64:
		s.line(level, label, strconv.FormatFloat(v, 'g', -1, 64))
	default:
		s.line(level, label, fmt.Sprint(v))
	}
}

// line writes one entry: a "|   " run per ancestor level, one "+-- " marker
// for the entry itself, the label, and the text.
func (s *state) line(level int, label, text string) {
	if level > 0 {
		s.out.WriteString(strings.Repeat("|   ", level-1))
		s.out.WriteString("+-- ")
	}
	s.out.WriteString(label)
	if label != "" && text != "" {
		s.out.WriteString(" ")
	}
	s.out.WriteString(text)
	s.out.WriteString("\n")
}
