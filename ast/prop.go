package ast

// Property is one entry of an object expression or object pattern. Ordinary
// initializers have kind "init"; getters and setters have kind "get" and
// "set".
type Property struct {
	Location  *SourceLocation
	Key       Expr
	Value     Expr
	Kind      PropKind
	Method    bool
	Shorthand bool
	Computed  bool
}

// NewAssignmentProperty builds the object-pattern flavor of Property, which
// is always kind "init" and never a method.
func NewAssignmentProperty(loc *SourceLocation, key Expr, value Expr, shorthand, computed bool) *Property {
	return &Property{
		Location:  loc,
		Key:       key,
		Value:     value,
		Kind:      PropInit,
		Shorthand: shorthand,
		Computed:  computed,
	}
}

func (p *Property) Fields() []Field {
	return baseFields(p,
		Field{Name: "key", Value: p.Key},
		Field{Name: "value", Value: p.Value},
		Field{Name: "kind", Value: string(p.Kind)},
		Field{Name: "method", Value: p.Method},
		Field{Name: "shorthand", Value: p.Shorthand},
		Field{Name: "computed", Value: p.Computed},
	)
}
