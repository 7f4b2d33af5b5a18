package builder

import (
	"github.com/estree-tools/estree/ast"
	"github.com/estree-tools/estree/cst"
	"github.com/estree-tools/estree/token"
)

// operands is the accessor shape shared by the infix alternatives.
type operands interface {
	cst.Node
	Left() cst.SingleExpression
	Right() cst.SingleExpression
}

// candidate pairs one operator accessor with the constructor bound to
// that operator.
type candidate[T ast.Expr] struct {
	token func() *cst.Token
	build func(*ast.SourceLocation, ast.Expr, ast.Expr) T
}

// expression is the central dispatcher over the singleExpression
// alternatives. Each concrete parse tree type is the grammar's explicit
// alternative tag, so dispatch is one type switch; telling operators
// apart inside an alternative goes through ordered candidate tables.
func (b *builder) expression(expr cst.SingleExpression) (ast.Expr, error) {
	switch e := expr.(type) {
	case *cst.ThisExpression:
		b.trace("ThisExpression")
		loc, err := b.location(e)
		if err != nil {
			return nil, err
		}
		return &ast.ThisExpression{Location: loc}, nil

	case *cst.SuperExpression:
		b.trace("SuperExpression")
		loc, err := b.location(e)
		if err != nil {
			return nil, err
		}
		return &ast.Super{Location: loc}, nil

	case *cst.IdentifierExpression:
		b.trace("IdentifierExpression")
		return b.identifier(e.Identifier())

	case *cst.LiteralExpression:
		b.trace("LiteralExpression")
		return b.literal(e.Literal())

	case *cst.ArrayLiteralExpression:
		b.trace("ArrayLiteralExpression")
		return b.arrayExpression(e)

	case *cst.ParenthesizedExpression:
		b.trace("ParenthesizedExpression")
		return b.sequence(e.ExpressionSequence())

	case *cst.PostIncrementExpression:
		b.trace("PostIncrementExpression")
		return operand(b, e, e.SingleExpression(), ast.NewPostIncrementExpression)

	case *cst.PostDecreaseExpression:
		b.trace("PostDecreaseExpression")
		return operand(b, e, e.SingleExpression(), ast.NewPostDecrementExpression)

	case *cst.PreIncrementExpression:
		b.trace("PreIncrementExpression")
		return operand(b, e, e.SingleExpression(), ast.NewPreIncrementExpression)

	case *cst.PreDecreaseExpression:
		b.trace("PreDecreaseExpression")
		return operand(b, e, e.SingleExpression(), ast.NewPreDecrementExpression)

	case *cst.DeleteExpression:
		b.trace("DeleteExpression")
		return operand(b, e, e.SingleExpression(), ast.NewDeleteExpression)

	case *cst.VoidExpression:
		b.trace("VoidExpression")
		return operand(b, e, e.SingleExpression(), ast.NewVoidExpression)

	case *cst.TypeofExpression:
		b.trace("TypeofExpression")
		return operand(b, e, e.SingleExpression(), ast.NewTypeofExpression)

	case *cst.UnaryPlusExpression:
		b.trace("UnaryPlusExpression")
		return operand(b, e, e.SingleExpression(), ast.NewUnaryPlusExpression)

	case *cst.UnaryMinusExpression:
		b.trace("UnaryMinusExpression")
		return operand(b, e, e.SingleExpression(), ast.NewUnaryMinusExpression)

	case *cst.BitNotExpression:
		b.trace("BitNotExpression")
		return operand(b, e, e.SingleExpression(), ast.NewUnaryBitNotExpression)

	case *cst.NotExpression:
		b.trace("NotExpression")
		return operand(b, e, e.SingleExpression(), ast.NewUnaryLogicNotExpression)

	case *cst.PowerExpression:
		b.trace("PowerExpression")
		return infix(b, e, ast.NewPowBinaryExpression)

	case *cst.MultiplicativeExpression:
		b.trace("MultiplicativeExpression")
		return pick(b, "MultiplicativeExpression", e, []candidate[*ast.BinaryExpression]{
			{e.Multiply, ast.NewMulArithmeticExpression},
			{e.Divide, ast.NewDivArithmeticExpression},
			{e.Modulus, ast.NewModArithmeticExpression},
		})

	case *cst.AdditiveExpression:
		b.trace("AdditiveExpression")
		return pick(b, "AdditiveExpression", e, []candidate[*ast.BinaryExpression]{
			{e.Plus, ast.NewAddArithmeticExpression},
			{e.Minus, ast.NewSubArithmeticExpression},
		})

	case *cst.CoalesceExpression:
		b.trace("CoalesceExpression")
		return infix(b, e, ast.NewNullishCoalescingLogicExpression)

	case *cst.BitShiftExpression:
		b.trace("BitShiftExpression")
		return pick(b, "BitShiftExpression", e, []candidate[*ast.BinaryExpression]{
			{e.LeftShiftArithmetic, ast.NewLeftBitShiftExpression},
			{e.RightShiftArithmetic, ast.NewRightBitShiftExpression},
			{e.RightShiftLogical, ast.NewLogicRightBitShiftExpression},
		})

	case *cst.RelationalExpression:
		b.trace("RelationalExpression")
		return pick(b, "RelationalExpression", e, []candidate[*ast.BinaryExpression]{
			{e.LessThan, ast.NewLowerThanRelationExpression},
			{e.MoreThan, ast.NewGreaterThanRelationExpression},
			{e.LessThanEquals, ast.NewLowerThanEqualRelationExpression},
			{e.GreaterThanEquals, ast.NewGreaterThanEqualRelationExpression},
		})

	case *cst.InstanceofExpression:
		b.trace("InstanceofExpression")
		return infix(b, e, ast.NewInstanceofExpression)

	case *cst.InExpression:
		b.trace("InExpression")
		return infix(b, e, ast.NewInExpression)

	case *cst.EqualityExpression:
		b.trace("EqualityExpression")
		return pick(b, "EqualityExpression", e, []candidate[*ast.BinaryExpression]{
			{e.Equals, ast.NewEqualityExpression},
			{e.NotEquals, ast.NewNotEqualityExpression},
			{e.IdentityEquals, ast.NewIdentityEqualityExpression},
			{e.IdentityNotEquals, ast.NewNotIdentityEqualityExpression},
		})

	case *cst.BitAndExpression:
		b.trace("BitAndExpression")
		return infix(b, e, ast.NewAndBitExpression)

	case *cst.BitXOrExpression:
		b.trace("BitXOrExpression")
		return infix(b, e, ast.NewXorBitExpression)

	case *cst.BitOrExpression:
		b.trace("BitOrExpression")
		return infix(b, e, ast.NewOrBitExpression)

	case *cst.LogicalAndExpression:
		b.trace("LogicalAndExpression")
		return infix(b, e, ast.NewAndLogicExpression)

	case *cst.LogicalOrExpression:
		b.trace("LogicalOrExpression")
		return infix(b, e, ast.NewOrLogicExpression)

	case *cst.AssignmentExpression:
		b.trace("AssignmentExpression")
		return infix(b, e, ast.NewSimpleAssignExpression)

	case *cst.AssignmentOperatorExpression:
		b.trace("AssignmentOperatorExpression")
		return b.assignmentOperator(e)

	case *cst.FunctionExpression:
		return nil, b.unsupported("FunctionExpression")
	case *cst.ClassExpression:
		return nil, b.unsupported("ClassExpression")
	case *cst.ArrowFunctionExpression:
		return nil, b.unsupported("ArrowFunctionExpression")
	case *cst.MemberIndexExpression:
		return nil, b.unsupported("MemberIndexExpression")
	case *cst.MemberDotExpression:
		return nil, b.unsupported("MemberDotExpression")
	case *cst.ArgumentsExpression:
		return nil, b.unsupported("ArgumentsExpression")
	case *cst.NewExpression:
		return nil, b.unsupported("NewExpression")
	case *cst.MetaExpression:
		return nil, b.unsupported("MetaExpression")
	case *cst.ImportExpression:
		return nil, b.unsupported("ImportExpression")
	case *cst.TemplateStringExpression:
		return nil, b.unsupported("TemplateStringExpression")
	case *cst.TernaryExpression:
		return nil, b.unsupported("TernaryExpression")
	case *cst.YieldExpression:
		return nil, b.unsupported("YieldExpression")
	case *cst.AwaitExpression:
		return nil, b.unsupported("AwaitExpression")
	case *cst.OptionalChainExpression:
		return nil, b.unsupported("OptionalChainExpression")
	case *cst.ObjectLiteralExpression:
		return nil, b.unsupported("ObjectLiteralExpression")
	}
	return nil, &MissingResultError{Rule: "SingleExpression"}
}

// assignmentOperator resolves a compound assignment through the operator
// production's candidate table, probed in grammar order.
func (b *builder) assignmentOperator(e *cst.AssignmentOperatorExpression) (ast.Expr, error) {
	op := e.AssignmentOperator()
	if op == nil {
		return nil, &MissingResultError{Rule: "AssignmentOperator"}
	}
	switch op.Start().Kind {
	case token.LogicalAndAssign, token.LogicalOrAssign, token.CoalesceAssign:
		// The assignment operator enumeration stops short of the
		// logical-assignment forms.
		return nil, b.unsupported("LogicalAssignmentOperator")
	}
	return pick(b, "AssignmentOperator", e, []candidate[*ast.AssignmentExpression]{
		{op.MultiplyAssign, ast.NewMulAssignExpression},
		{op.DivideAssign, ast.NewDivAssignExpression},
		{op.ModulusAssign, ast.NewModAssignExpression},
		{op.PlusAssign, ast.NewAddAssignExpression},
		{op.MinusAssign, ast.NewSubAssignExpression},
		{op.LeftShiftArithmeticAssign, ast.NewShlAssignExpression},
		{op.RightShiftArithmeticAssign, ast.NewShrAssignExpression},
		{op.RightShiftLogicalAssign, ast.NewLogicShrAssignExpression},
		{op.BitAndAssign, ast.NewAndAssignExpression},
		{op.BitXorAssign, ast.NewXorAssignExpression},
		{op.BitOrAssign, ast.NewOrAssignExpression},
		{op.PowerAssign, ast.NewPowAssignExpression},
	})
}

// operand builds a one-operand production through its operator-bound
// constructor.
func operand[T ast.Expr](b *builder, e cst.Node, arg cst.SingleExpression, build func(*ast.SourceLocation, ast.Expr) T) (ast.Expr, error) {
	argument, err := b.expression(arg)
	if err != nil {
		return nil, err
	}
	loc, err := b.location(e)
	if err != nil {
		return nil, err
	}
	return build(loc, argument), nil
}

// infix builds a two-operand production through its operator-bound
// constructor.
func infix[T ast.Expr](b *builder, e operands, build func(*ast.SourceLocation, ast.Expr, ast.Expr) T) (ast.Expr, error) {
	left, err := b.expression(e.Left())
	if err != nil {
		return nil, err
	}
	right, err := b.expression(e.Right())
	if err != nil {
		return nil, err
	}
	loc, err := b.location(e)
	if err != nil {
		return nil, err
	}
	return build(loc, left, right), nil
}

// pick resolves a multi-operator production through its candidate table.
// Candidates are probed in order, the first non-nil token accessor wins,
// and exactly one must match a well-formed parse: zero matches reports
// the rule as a defect.
func pick[T ast.Expr](b *builder, rule string, e operands, candidates []candidate[T]) (ast.Expr, error) {
	left, err := b.expression(e.Left())
	if err != nil {
		return nil, err
	}
	right, err := b.expression(e.Right())
	if err != nil {
		return nil, err
	}
	loc, err := b.location(e)
	if err != nil {
		return nil, err
	}
	for _, c := range candidates {
		if c.token() != nil {
			return c.build(loc, left, right), nil
		}
	}
	return nil, &MissingResultError{Rule: rule}
}

// sequence wraps the comma separated members in a SequenceExpression.
// A single bare expression still gets the wrapper: the grammar routes
// every expression statement through the same sequence production, so
// consumers can rely on the extra level unconditionally.
func (b *builder) sequence(seq *cst.ExpressionSequence) (*ast.SequenceExpression, error) {
	b.trace("ExpressionSequence")

	exprs := make([]ast.Expr, 0, len(seq.SingleExpressions()))
	for _, expr := range seq.SingleExpressions() {
		e, err := b.expression(expr)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
	}

	loc, err := b.location(seq)
	if err != nil {
		return nil, err
	}
	return &ast.SequenceExpression{Location: loc, Expressions: exprs}, nil
}

// identifier builds the Identifier leaf from its matched text.
func (b *builder) identifier(id *cst.Identifier) (*ast.Identifier, error) {
	b.trace("Identifier")
	loc, err := b.location(id)
	if err != nil {
		return nil, err
	}
	return &ast.Identifier{Location: loc, Name: id.Text()}, nil
}

func (b *builder) arrayExpression(e *cst.ArrayLiteralExpression) (*ast.ArrayExpression, error) {
	elements, err := b.elementList(e.ArrayLiteral().ElementList())
	if err != nil {
		return nil, err
	}
	loc, err := b.location(e)
	if err != nil {
		return nil, err
	}
	return &ast.ArrayExpression{Location: loc, Elements: elements}, nil
}

// elementList expands the comma separated array elements. Elisions
// survive as nil entries and spreads wrap their operand in a
// SpreadElement. Array expressions and array patterns share this
// expansion.
func (b *builder) elementList(list *cst.ElementList) ([]ast.Node, error) {
	if list == nil {
		return nil, nil
	}
	b.trace("ElementList")

	elements := make([]ast.Node, 0, len(list.ArrayElements()))
	for _, el := range list.ArrayElements() {
		if el == nil {
			elements = append(elements, nil)
			continue
		}
		node, err := b.arrayElement(el)
		if err != nil {
			return nil, err
		}
		elements = append(elements, node)
	}
	return elements, nil
}

func (b *builder) arrayElement(el *cst.ArrayElement) (ast.Node, error) {
	b.trace("ArrayElement")
	expr, err := b.expression(el.SingleExpression())
	if err != nil {
		return nil, err
	}
	if el.Ellipsis() == nil {
		return expr, nil
	}
	loc, err := b.location(el)
	if err != nil {
		return nil, err
	}
	return &ast.SpreadElement{Location: loc, Argument: expr}, nil
}
