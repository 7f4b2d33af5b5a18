package ast

type (
	// UnaryOperator is the operator of a UnaryExpression.
	UnaryOperator string

	// UpdateOperator is the operator of an UpdateExpression.
	UpdateOperator string

	// BinaryOperator is the operator of a BinaryExpression.
	BinaryOperator string

	// AssignmentOperator is the operator of an AssignmentExpression.
	AssignmentOperator string

	// LogicalOperator is the operator of a LogicalExpression.
	LogicalOperator string

	// VarDeclKind is the keyword of a VariableDeclaration.
	VarDeclKind string

	// SourceType distinguishes scripts from ES modules.
	SourceType string

	// PropKind classifies an object literal property.
	PropKind string

	// MethodKind classifies a class method definition.
	MethodKind string
)

const (
	UnaryMinus    UnaryOperator = "-"
	UnaryPlus     UnaryOperator = "+"
	UnaryLogicNot UnaryOperator = "!"
	UnaryBitNot   UnaryOperator = "~"
	UnaryTypeof   UnaryOperator = "typeof"
	UnaryVoid     UnaryOperator = "void"
	UnaryDelete   UnaryOperator = "delete"
)

const (
	UpdateIncrement UpdateOperator = "++"
	UpdateDecrement UpdateOperator = "--"
)

const (
	BinaryEqual          BinaryOperator = "=="
	BinaryNotEqual       BinaryOperator = "!="
	BinaryStrictEqual    BinaryOperator = "==="
	BinaryStrictNotEqual BinaryOperator = "!=="
	BinaryLess           BinaryOperator = "<"
	BinaryLessOrEqual    BinaryOperator = "<="
	BinaryGreater        BinaryOperator = ">"
	BinaryGreaterOrEqual BinaryOperator = ">="
	BinaryShiftLeft      BinaryOperator = "<<"
	BinaryShiftRight     BinaryOperator = ">>"
	BinaryUnsignedShift  BinaryOperator = ">>>"
	BinaryAdd            BinaryOperator = "+"
	BinarySubtract       BinaryOperator = "-"
	BinaryMultiply       BinaryOperator = "*"
	BinaryDivide         BinaryOperator = "/"
	BinaryRemainder      BinaryOperator = "%"
	BinaryBitOr          BinaryOperator = "|"
	BinaryBitXor         BinaryOperator = "^"
	BinaryBitAnd         BinaryOperator = "&"
	BinaryIn             BinaryOperator = "in"
	BinaryInstanceof     BinaryOperator = "instanceof"
	BinaryExponent       BinaryOperator = "**"
)

const (
	AssignSimple        AssignmentOperator = "="
	AssignAdd           AssignmentOperator = "+="
	AssignSubtract      AssignmentOperator = "-="
	AssignMultiply      AssignmentOperator = "*="
	AssignDivide        AssignmentOperator = "/="
	AssignRemainder     AssignmentOperator = "%="
	AssignShiftLeft     AssignmentOperator = "<<="
	AssignShiftRight    AssignmentOperator = ">>="
	AssignUnsignedShift AssignmentOperator = ">>>="
	AssignBitOr         AssignmentOperator = "|="
	AssignBitXor        AssignmentOperator = "^="
	AssignBitAnd        AssignmentOperator = "&="
	AssignExponent      AssignmentOperator = "**="
)

const (
	LogicalOr       LogicalOperator = "||"
	LogicalAnd      LogicalOperator = "&&"
	LogicalCoalesce LogicalOperator = "??"
)

const (
	VarKind   VarDeclKind = "var"
	LetKind   VarDeclKind = "let"
	ConstKind VarDeclKind = "const"
)

const (
	ScriptSource SourceType = "script"
	ModuleSource SourceType = "module"
)

const (
	PropInit PropKind = "init"
	PropGet  PropKind = "get"
	PropSet  PropKind = "set"
)

const (
	MethodConstructor MethodKind = "constructor"
	MethodMethod      MethodKind = "method"
	MethodGet         MethodKind = "get"
	MethodSet         MethodKind = "set"
)
