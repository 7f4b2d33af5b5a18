package ast

import "golang.org/x/exp/slices"

// Equal reports whether two nodes are field-for-field identical: same type
// tags, same field order, same scalar values, same locations. Built trees
// are deterministic, so two walks over equal parse trees satisfy Equal.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Type() != b.Type() {
		return false
	}
	return slices.EqualFunc(a.Fields(), b.Fields(), func(fa, fb Field) bool {
		return fa.Name == fb.Name && equalValue(fa.Value, fb.Value)
	})
}

func equalValue(a, b any) bool {
	switch a := a.(type) {
	case nil:
		return b == nil
	case string:
		bv, ok := b.(string)
		return ok && a == bv
	case bool:
		bv, ok := b.(bool)
		return ok && a == bv
	case float64:
		bv, ok := b.(float64)
		return ok && a == bv
	case Position:
		bv, ok := b.(Position)
		return ok && a == bv
	case *SourceLocation:
		bv, ok := b.(*SourceLocation)
		return ok && *a == *bv
	case []any:
		bv, ok := b.([]any)
		return ok && slices.EqualFunc(a, bv, equalValue)
	case Node:
		bv, ok := b.(Node)
		return ok && Equal(a, bv)
	default:
		return false
	}
}
