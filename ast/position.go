package ast

import "fmt"

// Position is a line/column pair locating one character of source text.
// Lines are 1-based, columns 0-based, following the ESTree convention.
type Position struct {
	Line   int
	Column int
}

// InvalidPositionError reports an attempt to construct a Position outside
// the valid range.
type InvalidPositionError struct {
	Line   int
	Column int
}

func (e *InvalidPositionError) Error() string {
	return fmt.Sprintf("L%d:C%d is not a valid ESTree position", e.Line, e.Column)
}

// NewPosition validates and constructs a Position. Line must be at least 1
// and column at least 0.
func NewPosition(line, column int) (Position, error) {
	if line < 1 || column < 0 {
		return Position{}, &InvalidPositionError{Line: line, Column: column}
	}
	return Position{Line: line, Column: column}, nil
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// SourceLocation is the source region of a node. Start is the position of
// the first character of the region, End the position one past the last
// character (exclusive). Source optionally names the originating file or
// stream.
type SourceLocation struct {
	Source string
	Start  Position
	End    Position
}

func (l *SourceLocation) String() string {
	if l.Source != "" {
		return fmt.Sprintf("%s:%s", l.Source, l.Start)
	}
	return l.Start.String()
}

// Fields exposes the start and end positions in render order.
func (l *SourceLocation) Fields() []Field {
	return []Field{{Name: "start", Value: l.Start}, {Name: "end", Value: l.End}}
}
