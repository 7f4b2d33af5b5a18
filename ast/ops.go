package ast

// Operator-specialized constructors. Each one binds exactly one operator
// value, so a builder that has already identified the matched token never
// passes operator tags around. No two constructors of a family share an
// operator.

func NewUnaryMinusExpression(loc *SourceLocation, argument Expr) *UnaryExpression {
	return newUnary(loc, UnaryMinus, argument)
}

func NewUnaryPlusExpression(loc *SourceLocation, argument Expr) *UnaryExpression {
	return newUnary(loc, UnaryPlus, argument)
}

func NewUnaryLogicNotExpression(loc *SourceLocation, argument Expr) *UnaryExpression {
	return newUnary(loc, UnaryLogicNot, argument)
}

func NewUnaryBitNotExpression(loc *SourceLocation, argument Expr) *UnaryExpression {
	return newUnary(loc, UnaryBitNot, argument)
}

func NewTypeofExpression(loc *SourceLocation, argument Expr) *UnaryExpression {
	return newUnary(loc, UnaryTypeof, argument)
}

func NewVoidExpression(loc *SourceLocation, argument Expr) *UnaryExpression {
	return newUnary(loc, UnaryVoid, argument)
}

func NewDeleteExpression(loc *SourceLocation, argument Expr) *UnaryExpression {
	return newUnary(loc, UnaryDelete, argument)
}

func NewPreIncrementExpression(loc *SourceLocation, argument Expr) *UpdateExpression {
	return newUpdate(loc, UpdateIncrement, argument, true)
}

func NewPostIncrementExpression(loc *SourceLocation, argument Expr) *UpdateExpression {
	return newUpdate(loc, UpdateIncrement, argument, false)
}

func NewPreDecrementExpression(loc *SourceLocation, argument Expr) *UpdateExpression {
	return newUpdate(loc, UpdateDecrement, argument, true)
}

func NewPostDecrementExpression(loc *SourceLocation, argument Expr) *UpdateExpression {
	return newUpdate(loc, UpdateDecrement, argument, false)
}

func NewEqualityExpression(loc *SourceLocation, left, right Expr) *BinaryExpression {
	return newBinary(loc, BinaryEqual, left, right)
}

func NewNotEqualityExpression(loc *SourceLocation, left, right Expr) *BinaryExpression {
	return newBinary(loc, BinaryNotEqual, left, right)
}

func NewIdentityEqualityExpression(loc *SourceLocation, left, right Expr) *BinaryExpression {
	return newBinary(loc, BinaryStrictEqual, left, right)
}

func NewNotIdentityEqualityExpression(loc *SourceLocation, left, right Expr) *BinaryExpression {
	return newBinary(loc, BinaryStrictNotEqual, left, right)
}

func NewLowerThanRelationExpression(loc *SourceLocation, left, right Expr) *BinaryExpression {
	return newBinary(loc, BinaryLess, left, right)
}

func NewLowerThanEqualRelationExpression(loc *SourceLocation, left, right Expr) *BinaryExpression {
	return newBinary(loc, BinaryLessOrEqual, left, right)
}

func NewGreaterThanRelationExpression(loc *SourceLocation, left, right Expr) *BinaryExpression {
	return newBinary(loc, BinaryGreater, left, right)
}

func NewGreaterThanEqualRelationExpression(loc *SourceLocation, left, right Expr) *BinaryExpression {
	return newBinary(loc, BinaryGreaterOrEqual, left, right)
}

func NewLeftBitShiftExpression(loc *SourceLocation, left, right Expr) *BinaryExpression {
	return newBinary(loc, BinaryShiftLeft, left, right)
}

func NewRightBitShiftExpression(loc *SourceLocation, left, right Expr) *BinaryExpression {
	return newBinary(loc, BinaryShiftRight, left, right)
}

func NewLogicRightBitShiftExpression(loc *SourceLocation, left, right Expr) *BinaryExpression {
	return newBinary(loc, BinaryUnsignedShift, left, right)
}

func NewAddArithmeticExpression(loc *SourceLocation, left, right Expr) *BinaryExpression {
	return newBinary(loc, BinaryAdd, left, right)
}

func NewSubArithmeticExpression(loc *SourceLocation, left, right Expr) *BinaryExpression {
	return newBinary(loc, BinarySubtract, left, right)
}

func NewMulArithmeticExpression(loc *SourceLocation, left, right Expr) *BinaryExpression {
	return newBinary(loc, BinaryMultiply, left, right)
}

func NewDivArithmeticExpression(loc *SourceLocation, left, right Expr) *BinaryExpression {
	return newBinary(loc, BinaryDivide, left, right)
}

func NewModArithmeticExpression(loc *SourceLocation, left, right Expr) *BinaryExpression {
	return newBinary(loc, BinaryRemainder, left, right)
}

func NewOrBitExpression(loc *SourceLocation, left, right Expr) *BinaryExpression {
	return newBinary(loc, BinaryBitOr, left, right)
}

func NewXorBitExpression(loc *SourceLocation, left, right Expr) *BinaryExpression {
	return newBinary(loc, BinaryBitXor, left, right)
}

func NewAndBitExpression(loc *SourceLocation, left, right Expr) *BinaryExpression {
	return newBinary(loc, BinaryBitAnd, left, right)
}

func NewInExpression(loc *SourceLocation, left, right Expr) *BinaryExpression {
	return newBinary(loc, BinaryIn, left, right)
}

func NewInstanceofExpression(loc *SourceLocation, left, right Expr) *BinaryExpression {
	return newBinary(loc, BinaryInstanceof, left, right)
}

func NewPowBinaryExpression(loc *SourceLocation, left, right Expr) *BinaryExpression {
	return newBinary(loc, BinaryExponent, left, right)
}

func NewSimpleAssignExpression(loc *SourceLocation, left, right Expr) *AssignmentExpression {
	return newAssignment(loc, AssignSimple, left, right)
}

func NewAddAssignExpression(loc *SourceLocation, left, right Expr) *AssignmentExpression {
	return newAssignment(loc, AssignAdd, left, right)
}

func NewSubAssignExpression(loc *SourceLocation, left, right Expr) *AssignmentExpression {
	return newAssignment(loc, AssignSubtract, left, right)
}

func NewMulAssignExpression(loc *SourceLocation, left, right Expr) *AssignmentExpression {
	return newAssignment(loc, AssignMultiply, left, right)
}

func NewDivAssignExpression(loc *SourceLocation, left, right Expr) *AssignmentExpression {
	return newAssignment(loc, AssignDivide, left, right)
}

func NewModAssignExpression(loc *SourceLocation, left, right Expr) *AssignmentExpression {
	return newAssignment(loc, AssignRemainder, left, right)
}

func NewShlAssignExpression(loc *SourceLocation, left, right Expr) *AssignmentExpression {
	return newAssignment(loc, AssignShiftLeft, left, right)
}

func NewShrAssignExpression(loc *SourceLocation, left, right Expr) *AssignmentExpression {
	return newAssignment(loc, AssignShiftRight, left, right)
}

func NewLogicShrAssignExpression(loc *SourceLocation, left, right Expr) *AssignmentExpression {
	return newAssignment(loc, AssignUnsignedShift, left, right)
}

func NewOrAssignExpression(loc *SourceLocation, left, right Expr) *AssignmentExpression {
	return newAssignment(loc, AssignBitOr, left, right)
}

func NewXorAssignExpression(loc *SourceLocation, left, right Expr) *AssignmentExpression {
	return newAssignment(loc, AssignBitXor, left, right)
}

func NewAndAssignExpression(loc *SourceLocation, left, right Expr) *AssignmentExpression {
	return newAssignment(loc, AssignBitAnd, left, right)
}

func NewPowAssignExpression(loc *SourceLocation, left, right Expr) *AssignmentExpression {
	return newAssignment(loc, AssignExponent, left, right)
}

func NewOrLogicExpression(loc *SourceLocation, left, right Expr) *LogicalExpression {
	return newLogical(loc, LogicalOr, left, right)
}

func NewAndLogicExpression(loc *SourceLocation, left, right Expr) *LogicalExpression {
	return newLogical(loc, LogicalAnd, left, right)
}

func NewNullishCoalescingLogicExpression(loc *SourceLocation, left, right Expr) *LogicalExpression {
	return newLogical(loc, LogicalCoalesce, left, right)
}

func newUnary(loc *SourceLocation, op UnaryOperator, argument Expr) *UnaryExpression {
	return &UnaryExpression{Location: loc, Operator: op, Prefix: true, Argument: argument}
}

func newUpdate(loc *SourceLocation, op UpdateOperator, argument Expr, prefix bool) *UpdateExpression {
	return &UpdateExpression{Location: loc, Operator: op, Argument: argument, Prefix: prefix}
}

func newBinary(loc *SourceLocation, op BinaryOperator, left, right Expr) *BinaryExpression {
	return &BinaryExpression{Location: loc, Operator: op, Left: left, Right: right}
}

func newAssignment(loc *SourceLocation, op AssignmentOperator, left, right Expr) *AssignmentExpression {
	return &AssignmentExpression{Location: loc, Operator: op, Left: left, Right: right}
}

func newLogical(loc *SourceLocation, op LogicalOperator, left, right Expr) *LogicalExpression {
	return &LogicalExpression{Location: loc, Operator: op, Left: left, Right: right}
}
