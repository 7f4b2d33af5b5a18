package token

import (
	"strconv"
)

// Token is the set of lexical tokens in JavaScript.
type Token int

// String returns the string corresponding to the token.
func (t Token) String() string {
	if t == 0 {
		return "UNKNOWN"
	}
	if t < Token(len(token2string)) && token2string[t] != "" {
		return token2string[t]
	}
	return "token(" + strconv.Itoa(int(t)) + ")"
}

// Precedence returns the binding power of a binary operator token, or 0 for
// tokens that are not binary operators. The in flag controls whether the
// `in` keyword counts as an operator; it does not inside a for statement
// header.
func (t Token) Precedence(in bool) int {
	switch t {
	case Coalesce:
		return 1
	case LogicalOr:
		return 2
	case LogicalAnd:
		return 3
	case Or:
		return 4
	case ExclusiveOr:
		return 5
	case And:
		return 6
	case Equal,
		NotEqual,
		StrictEqual,
		StrictNotEqual:
		return 7
	case Less, Greater, LessOrEqual, GreaterOrEqual, InstanceOf:
		return 8
	case In:
		if in {
			return 8
		}
		return 0
	case ShiftLeft, ShiftRight, UnsignedShiftRight:
		return 9
	case Plus, Minus:
		return 10
	case Multiply, Slash, Remainder:
		return 11
	case Exponent:
		return 12
	}
	return 0
}

// RightAssociative reports whether a binary operator token groups to the
// right. Only exponentiation does.
func (t Token) RightAssociative() bool {
	return t == Exponent
}

// keyword ...
type keyword struct {
	token      Token
	contextual bool
}

// LiteralKeyword returns the keyword token for literal and whether the word
// is only contextually reserved (let, of, yield, await, static may still be
// used as binding names). It returns 0 if the literal is not a keyword.
func LiteralKeyword(literal string) (Token, bool) {
	if k, exists := keywordTable[literal]; exists {
		return k.token, k.contextual
	}
	return 0, false
}

// ID reports whether the token may appear where an IdentifierName is
// expected, e.g. after `.` in a member expression. Every keyword qualifies.
func ID(t Token) bool {
	return t >= Identifier
}

// Contextual reports whether the token is a contextually reserved word that
// is still a valid binding identifier.
func Contextual(t Token) bool {
	return t > contextualLow
}

// AssignOperator reports whether the token is one of the compound
// assignment operators of the assignmentOperator production.
func AssignOperator(t Token) bool {
	switch t {
	case MultiplyAssign, QuotientAssign, RemainderAssign, AddAssign,
		SubtractAssign, ShiftLeftAssign, ShiftRightAssign,
		UnsignedShiftRightAssign, AndAssign, ExclusiveOrAssign, OrAssign,
		ExponentAssign:
		return true
	}
	return false
}

// UnaryOperator reports whether the token starts a unary expression.
func UnaryOperator(t Token) bool {
	switch t {
	case Plus, Minus, Not, BitwiseNot, Typeof, Void, Delete:
		return true
	}
	return false
}
