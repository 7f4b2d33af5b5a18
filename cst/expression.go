package cst

import (
	"github.com/estree-tools/estree/token"
)

// ExpressionSequence is one or more singleExpressions joined by
// commas.
type ExpressionSequence struct {
	Span
	exprs []SingleExpression
}

func NewExpressionSequence(sp Span, exprs []SingleExpression) *ExpressionSequence {
	return &ExpressionSequence{Span: sp, exprs: exprs}
}

// SingleExpressions returns the sequence members in source order.
func (e *ExpressionSequence) SingleExpressions() []SingleExpression { return e.exprs }

// unaryOperand is the shared shape of the prefix and postfix
// alternatives.
type unaryOperand struct {
	argument SingleExpression
}

// SingleExpression returns the operand.
func (u *unaryOperand) SingleExpression() SingleExpression { return u.argument }

// binaryOperands is the shared shape of the infix alternatives.
type binaryOperands struct {
	left  SingleExpression
	op    Token
	right SingleExpression
}

// Left returns the left operand.
func (b *binaryOperands) Left() SingleExpression { return b.left }

// Right returns the right operand.
func (b *binaryOperands) Right() SingleExpression { return b.right }

// operator returns the operator token when it is of the given kind,
// nil otherwise.
func (b *binaryOperands) operator(kind token.Token) *Token {
	if b.op.Kind != kind {
		return nil
	}
	op := b.op
	return &op
}

// ThisExpression is the this keyword.
type ThisExpression struct{ Span }

// SuperExpression is the super keyword.
type SuperExpression struct{ Span }

// IdentifierExpression is an identifier in expression position.
type IdentifierExpression struct {
	Span
	id *Identifier
}

func NewIdentifierExpression(sp Span, id *Identifier) *IdentifierExpression {
	return &IdentifierExpression{Span: sp, id: id}
}

func (e *IdentifierExpression) Identifier() *Identifier { return e.id }

// LiteralExpression is a literal in expression position.
type LiteralExpression struct {
	Span
	lit *Literal
}

func NewLiteralExpression(sp Span, lit *Literal) *LiteralExpression {
	return &LiteralExpression{Span: sp, lit: lit}
}

func (e *LiteralExpression) Literal() *Literal { return e.lit }

// ArrayLiteralExpression is an arrayLiteral in expression position.
type ArrayLiteralExpression struct {
	Span
	arr *ArrayLiteral
}

func NewArrayLiteralExpression(sp Span, arr *ArrayLiteral) *ArrayLiteralExpression {
	return &ArrayLiteralExpression{Span: sp, arr: arr}
}

func (e *ArrayLiteralExpression) ArrayLiteral() *ArrayLiteral { return e.arr }

// ParenthesizedExpression is '(' expressionSequence ')'.
type ParenthesizedExpression struct {
	Span
	seq *ExpressionSequence
}

func NewParenthesizedExpression(sp Span, seq *ExpressionSequence) *ParenthesizedExpression {
	return &ParenthesizedExpression{Span: sp, seq: seq}
}

func (e *ParenthesizedExpression) ExpressionSequence() *ExpressionSequence { return e.seq }

// Postfix and prefix update alternatives.
type (
	PostIncrementExpression struct {
		Span
		unaryOperand
	}
	PostDecreaseExpression struct {
		Span
		unaryOperand
	}
	PreIncrementExpression struct {
		Span
		unaryOperand
	}
	PreDecreaseExpression struct {
		Span
		unaryOperand
	}
)

func NewPostIncrementExpression(sp Span, argument SingleExpression) *PostIncrementExpression {
	return &PostIncrementExpression{Span: sp, unaryOperand: unaryOperand{argument}}
}

func NewPostDecreaseExpression(sp Span, argument SingleExpression) *PostDecreaseExpression {
	return &PostDecreaseExpression{Span: sp, unaryOperand: unaryOperand{argument}}
}

func NewPreIncrementExpression(sp Span, argument SingleExpression) *PreIncrementExpression {
	return &PreIncrementExpression{Span: sp, unaryOperand: unaryOperand{argument}}
}

func NewPreDecreaseExpression(sp Span, argument SingleExpression) *PreDecreaseExpression {
	return &PreDecreaseExpression{Span: sp, unaryOperand: unaryOperand{argument}}
}

// Prefix operator alternatives.
type (
	DeleteExpression struct {
		Span
		unaryOperand
	}
	VoidExpression struct {
		Span
		unaryOperand
	}
	TypeofExpression struct {
		Span
		unaryOperand
	}
	UnaryPlusExpression struct {
		Span
		unaryOperand
	}
	UnaryMinusExpression struct {
		Span
		unaryOperand
	}
	BitNotExpression struct {
		Span
		unaryOperand
	}
	NotExpression struct {
		Span
		unaryOperand
	}
)

func NewDeleteExpression(sp Span, argument SingleExpression) *DeleteExpression {
	return &DeleteExpression{Span: sp, unaryOperand: unaryOperand{argument}}
}

func NewVoidExpression(sp Span, argument SingleExpression) *VoidExpression {
	return &VoidExpression{Span: sp, unaryOperand: unaryOperand{argument}}
}

func NewTypeofExpression(sp Span, argument SingleExpression) *TypeofExpression {
	return &TypeofExpression{Span: sp, unaryOperand: unaryOperand{argument}}
}

func NewUnaryPlusExpression(sp Span, argument SingleExpression) *UnaryPlusExpression {
	return &UnaryPlusExpression{Span: sp, unaryOperand: unaryOperand{argument}}
}

func NewUnaryMinusExpression(sp Span, argument SingleExpression) *UnaryMinusExpression {
	return &UnaryMinusExpression{Span: sp, unaryOperand: unaryOperand{argument}}
}

func NewBitNotExpression(sp Span, argument SingleExpression) *BitNotExpression {
	return &BitNotExpression{Span: sp, unaryOperand: unaryOperand{argument}}
}

func NewNotExpression(sp Span, argument SingleExpression) *NotExpression {
	return &NotExpression{Span: sp, unaryOperand: unaryOperand{argument}}
}

// Infix alternatives. Families that admit several operators expose
// one nil-able accessor per concrete token.
type (
	PowerExpression struct {
		Span
		binaryOperands
	}
	MultiplicativeExpression struct {
		Span
		binaryOperands
	}
	AdditiveExpression struct {
		Span
		binaryOperands
	}
	CoalesceExpression struct {
		Span
		binaryOperands
	}
	BitShiftExpression struct {
		Span
		binaryOperands
	}
	RelationalExpression struct {
		Span
		binaryOperands
	}
	InstanceofExpression struct {
		Span
		binaryOperands
	}
	InExpression struct {
		Span
		binaryOperands
	}
	EqualityExpression struct {
		Span
		binaryOperands
	}
	BitAndExpression struct {
		Span
		binaryOperands
	}
	BitXOrExpression struct {
		Span
		binaryOperands
	}
	BitOrExpression struct {
		Span
		binaryOperands
	}
	LogicalAndExpression struct {
		Span
		binaryOperands
	}
	LogicalOrExpression struct {
		Span
		binaryOperands
	}
	AssignmentExpression struct {
		Span
		binaryOperands
	}
)

func NewPowerExpression(sp Span, left SingleExpression, op Token, right SingleExpression) *PowerExpression {
	return &PowerExpression{Span: sp, binaryOperands: binaryOperands{left, op, right}}
}

func NewMultiplicativeExpression(sp Span, left SingleExpression, op Token, right SingleExpression) *MultiplicativeExpression {
	return &MultiplicativeExpression{Span: sp, binaryOperands: binaryOperands{left, op, right}}
}

func NewAdditiveExpression(sp Span, left SingleExpression, op Token, right SingleExpression) *AdditiveExpression {
	return &AdditiveExpression{Span: sp, binaryOperands: binaryOperands{left, op, right}}
}

func NewCoalesceExpression(sp Span, left SingleExpression, op Token, right SingleExpression) *CoalesceExpression {
	return &CoalesceExpression{Span: sp, binaryOperands: binaryOperands{left, op, right}}
}

func NewBitShiftExpression(sp Span, left SingleExpression, op Token, right SingleExpression) *BitShiftExpression {
	return &BitShiftExpression{Span: sp, binaryOperands: binaryOperands{left, op, right}}
}

func NewRelationalExpression(sp Span, left SingleExpression, op Token, right SingleExpression) *RelationalExpression {
	return &RelationalExpression{Span: sp, binaryOperands: binaryOperands{left, op, right}}
}

func NewInstanceofExpression(sp Span, left SingleExpression, op Token, right SingleExpression) *InstanceofExpression {
	return &InstanceofExpression{Span: sp, binaryOperands: binaryOperands{left, op, right}}
}

func NewInExpression(sp Span, left SingleExpression, op Token, right SingleExpression) *InExpression {
	return &InExpression{Span: sp, binaryOperands: binaryOperands{left, op, right}}
}

func NewEqualityExpression(sp Span, left SingleExpression, op Token, right SingleExpression) *EqualityExpression {
	return &EqualityExpression{Span: sp, binaryOperands: binaryOperands{left, op, right}}
}

func NewBitAndExpression(sp Span, left SingleExpression, op Token, right SingleExpression) *BitAndExpression {
	return &BitAndExpression{Span: sp, binaryOperands: binaryOperands{left, op, right}}
}

func NewBitXOrExpression(sp Span, left SingleExpression, op Token, right SingleExpression) *BitXOrExpression {
	return &BitXOrExpression{Span: sp, binaryOperands: binaryOperands{left, op, right}}
}

func NewBitOrExpression(sp Span, left SingleExpression, op Token, right SingleExpression) *BitOrExpression {
	return &BitOrExpression{Span: sp, binaryOperands: binaryOperands{left, op, right}}
}

func NewLogicalAndExpression(sp Span, left SingleExpression, op Token, right SingleExpression) *LogicalAndExpression {
	return &LogicalAndExpression{Span: sp, binaryOperands: binaryOperands{left, op, right}}
}

func NewLogicalOrExpression(sp Span, left SingleExpression, op Token, right SingleExpression) *LogicalOrExpression {
	return &LogicalOrExpression{Span: sp, binaryOperands: binaryOperands{left, op, right}}
}

func NewAssignmentExpression(sp Span, left SingleExpression, op Token, right SingleExpression) *AssignmentExpression {
	return &AssignmentExpression{Span: sp, binaryOperands: binaryOperands{left, op, right}}
}

func (e *MultiplicativeExpression) Multiply() *Token { return e.operator(token.Multiply) }
func (e *MultiplicativeExpression) Divide() *Token   { return e.operator(token.Slash) }
func (e *MultiplicativeExpression) Modulus() *Token  { return e.operator(token.Remainder) }

func (e *AdditiveExpression) Plus() *Token  { return e.operator(token.Plus) }
func (e *AdditiveExpression) Minus() *Token { return e.operator(token.Minus) }

func (e *BitShiftExpression) LeftShiftArithmetic() *Token  { return e.operator(token.ShiftLeft) }
func (e *BitShiftExpression) RightShiftArithmetic() *Token { return e.operator(token.ShiftRight) }
func (e *BitShiftExpression) RightShiftLogical() *Token {
	return e.operator(token.UnsignedShiftRight)
}

func (e *RelationalExpression) LessThan() *Token          { return e.operator(token.Less) }
func (e *RelationalExpression) MoreThan() *Token          { return e.operator(token.Greater) }
func (e *RelationalExpression) LessThanEquals() *Token    { return e.operator(token.LessOrEqual) }
func (e *RelationalExpression) GreaterThanEquals() *Token { return e.operator(token.GreaterOrEqual) }

func (e *EqualityExpression) Equals() *Token            { return e.operator(token.Equal) }
func (e *EqualityExpression) NotEquals() *Token         { return e.operator(token.NotEqual) }
func (e *EqualityExpression) IdentityEquals() *Token    { return e.operator(token.StrictEqual) }
func (e *EqualityExpression) IdentityNotEquals() *Token { return e.operator(token.StrictNotEqual) }

// AssignmentOperatorExpression is a compound assignment.
type AssignmentOperatorExpression struct {
	Span
	left  SingleExpression
	op    *AssignmentOperator
	right SingleExpression
}

func NewAssignmentOperatorExpression(sp Span, left SingleExpression, op *AssignmentOperator, right SingleExpression) *AssignmentOperatorExpression {
	return &AssignmentOperatorExpression{Span: sp, left: left, op: op, right: right}
}

func (e *AssignmentOperatorExpression) Left() SingleExpression                { return e.left }
func (e *AssignmentOperatorExpression) AssignmentOperator() *AssignmentOperator { return e.op }
func (e *AssignmentOperatorExpression) Right() SingleExpression               { return e.right }

// AssignmentOperator is the operator production of a compound
// assignment, one accessor per concrete token.
type AssignmentOperator struct {
	Span
	op Token
}

func NewAssignmentOperator(sp Span, op Token) *AssignmentOperator {
	return &AssignmentOperator{Span: sp, op: op}
}

func (a *AssignmentOperator) kindToken(kind token.Token) *Token {
	if a.op.Kind != kind {
		return nil
	}
	op := a.op
	return &op
}

func (a *AssignmentOperator) MultiplyAssign() *Token { return a.kindToken(token.MultiplyAssign) }
func (a *AssignmentOperator) DivideAssign() *Token   { return a.kindToken(token.QuotientAssign) }
func (a *AssignmentOperator) ModulusAssign() *Token  { return a.kindToken(token.RemainderAssign) }
func (a *AssignmentOperator) PlusAssign() *Token     { return a.kindToken(token.AddAssign) }
func (a *AssignmentOperator) MinusAssign() *Token    { return a.kindToken(token.SubtractAssign) }
func (a *AssignmentOperator) LeftShiftArithmeticAssign() *Token {
	return a.kindToken(token.ShiftLeftAssign)
}
func (a *AssignmentOperator) RightShiftArithmeticAssign() *Token {
	return a.kindToken(token.ShiftRightAssign)
}
func (a *AssignmentOperator) RightShiftLogicalAssign() *Token {
	return a.kindToken(token.UnsignedShiftRightAssign)
}
func (a *AssignmentOperator) BitAndAssign() *Token { return a.kindToken(token.AndAssign) }
func (a *AssignmentOperator) BitXorAssign() *Token { return a.kindToken(token.ExclusiveOrAssign) }
func (a *AssignmentOperator) BitOrAssign() *Token  { return a.kindToken(token.OrAssign) }
func (a *AssignmentOperator) PowerAssign() *Token  { return a.kindToken(token.ExponentAssign) }

// The expression alternatives below are recognized and spanned by
// the parser but carry no further structure. The builder reports
// them by name when it meets one.
type (
	FunctionExpression       struct{ Span }
	ClassExpression          struct{ Span }
	ArrowFunctionExpression  struct{ Span }
	MemberIndexExpression    struct{ Span }
	MemberDotExpression      struct{ Span }
	ArgumentsExpression      struct{ Span }
	NewExpression            struct{ Span }
	MetaExpression           struct{ Span }
	ImportExpression         struct{ Span }
	TemplateStringExpression struct{ Span }
	TernaryExpression        struct{ Span }
	YieldExpression          struct{ Span }
	AwaitExpression          struct{ Span }
	OptionalChainExpression  struct{ Span }
	ObjectLiteralExpression  struct{ Span }
)

func (*ThisExpression) _singleExpression()           {}
func (*SuperExpression) _singleExpression()          {}
func (*IdentifierExpression) _singleExpression()     {}
func (*LiteralExpression) _singleExpression()        {}
func (*ArrayLiteralExpression) _singleExpression()   {}
func (*ParenthesizedExpression) _singleExpression()  {}
func (*PostIncrementExpression) _singleExpression()  {}
func (*PostDecreaseExpression) _singleExpression()   {}
func (*PreIncrementExpression) _singleExpression()   {}
func (*PreDecreaseExpression) _singleExpression()    {}
func (*DeleteExpression) _singleExpression()         {}
func (*VoidExpression) _singleExpression()           {}
func (*TypeofExpression) _singleExpression()         {}
func (*UnaryPlusExpression) _singleExpression()      {}
func (*UnaryMinusExpression) _singleExpression()     {}
func (*BitNotExpression) _singleExpression()         {}
func (*NotExpression) _singleExpression()            {}
func (*PowerExpression) _singleExpression()          {}
func (*MultiplicativeExpression) _singleExpression() {}
func (*AdditiveExpression) _singleExpression()       {}
func (*CoalesceExpression) _singleExpression()       {}
func (*BitShiftExpression) _singleExpression()       {}
func (*RelationalExpression) _singleExpression()     {}
func (*InstanceofExpression) _singleExpression()     {}
func (*InExpression) _singleExpression()             {}
func (*EqualityExpression) _singleExpression()       {}
func (*BitAndExpression) _singleExpression()         {}
func (*BitXOrExpression) _singleExpression()         {}
func (*BitOrExpression) _singleExpression()          {}
func (*LogicalAndExpression) _singleExpression()     {}
func (*LogicalOrExpression) _singleExpression()      {}
func (*AssignmentExpression) _singleExpression()     {}
func (*AssignmentOperatorExpression) _singleExpression() {}
func (*FunctionExpression) _singleExpression()       {}
func (*ClassExpression) _singleExpression()          {}
func (*ArrowFunctionExpression) _singleExpression()  {}
func (*MemberIndexExpression) _singleExpression()    {}
func (*MemberDotExpression) _singleExpression()      {}
func (*ArgumentsExpression) _singleExpression()      {}
func (*NewExpression) _singleExpression()            {}
func (*MetaExpression) _singleExpression()           {}
func (*ImportExpression) _singleExpression()         {}
func (*TemplateStringExpression) _singleExpression() {}
func (*TernaryExpression) _singleExpression()        {}
func (*YieldExpression) _singleExpression()          {}
func (*AwaitExpression) _singleExpression()          {}
func (*OptionalChainExpression) _singleExpression()  {}
func (*ObjectLiteralExpression) _singleExpression()  {}
