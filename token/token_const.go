package token

const (
	Undetermined Token = iota

	Illegal
	Eof
	Comment
	Hashbang

	String
	Number
	Bigint
	Regex
	Template

	Plus      // +
	Minus     // -
	Multiply  // *
	Exponent  // **
	Slash     // /
	Remainder // %

	And                // &
	Or                 // |
	ExclusiveOr        // ^
	ShiftLeft          // <<
	ShiftRight         // >>
	UnsignedShiftRight // >>>

	AddAssign       // +=
	SubtractAssign  // -=
	MultiplyAssign  // *=
	ExponentAssign  // **=
	QuotientAssign  // /=
	RemainderAssign // %=

	AndAssign                // &=
	OrAssign                 // |=
	ExclusiveOrAssign        // ^=
	ShiftLeftAssign          // <<=
	ShiftRightAssign         // >>=
	UnsignedShiftRightAssign // >>>=

	LogicalAnd       // &&
	LogicalOr        // ||
	Coalesce         // ??
	LogicalAndAssign // &&=
	LogicalOrAssign  // ||=
	CoalesceAssign   // ??=
	Increment        // ++
	Decrement        // --

	Equal       // ==
	StrictEqual // ===
	Less        // <
	Greater     // >
	Assign      // =
	Not         // !

	BitwiseNot // ~

	NotEqual       // !=
	StrictNotEqual // !==
	LessOrEqual    // <=
	GreaterOrEqual // >=

	LeftParenthesis // (
	LeftBracket     // [
	LeftBrace       // {
	Comma           // ,
	Period          // .

	RightParenthesis // )
	RightBracket     // ]
	RightBrace       // }
	Semicolon        // ;
	Colon            // :
	QuestionMark     // ?
	QuestionDot      // ?.
	Arrow            // =>
	Ellipsis         // ...

	Identifier
	Keyword
	Boolean
	Null

	If
	In
	Do

	Var
	For
	New
	Try

	This
	Else
	Case
	Void
	With

	Const
	While
	Break
	Catch
	Throw
	Class
	Super

	Return
	Typeof
	Delete
	Switch
	Import
	Export

	Default
	Finally
	Extends

	Function
	Continue
	Debugger

	InstanceOf

	contextualLow

	Let
	Of
	Static
	Await
	Yield
)

var token2string = [...]string{
	Illegal:                  "Illegal",
	Eof:                      "Eof",
	Comment:                  "Comment",
	Hashbang:                 "Hashbang",
	Keyword:                  "Keyword",
	String:                   "String",
	Boolean:                  "Boolean",
	Null:                     "Null",
	Number:                   "Number",
	Bigint:                   "Bigint",
	Regex:                    "Regex",
	Template:                 "Template",
	Identifier:               "Identifier",
	Plus:                     "+",
	Minus:                    "-",
	Exponent:                 "**",
	Multiply:                 "*",
	Slash:                    "/",
	Remainder:                "%",
	And:                      "&",
	Or:                       "|",
	ExclusiveOr:              "^",
	ShiftLeft:                "<<",
	ShiftRight:               ">>",
	UnsignedShiftRight:       ">>>",
	AddAssign:                "+=",
	SubtractAssign:           "-=",
	MultiplyAssign:           "*=",
	ExponentAssign:           "**=",
	QuotientAssign:           "/=",
	RemainderAssign:          "%=",
	AndAssign:                "&=",
	OrAssign:                 "|=",
	ExclusiveOrAssign:        "^=",
	ShiftLeftAssign:          "<<=",
	ShiftRightAssign:         ">>=",
	UnsignedShiftRightAssign: ">>>=",
	LogicalAnd:               "&&",
	LogicalOr:                "||",
	Coalesce:                 "??",
	LogicalAndAssign:         "&&=",
	LogicalOrAssign:          "||=",
	CoalesceAssign:           "??=",
	Increment:                "++",
	Decrement:                "--",
	Equal:                    "==",
	StrictEqual:              "===",
	Less:                     "<",
	Greater:                  ">",
	Assign:                   "=",
	Not:                      "!",
	BitwiseNot:               "~",
	NotEqual:                 "!=",
	StrictNotEqual:           "!==",
	LessOrEqual:              "<=",
	GreaterOrEqual:           ">=",
	LeftParenthesis:          "(",
	LeftBracket:              "[",
	LeftBrace:                "{",
	Comma:                    ",",
	Period:                   ".",
	RightParenthesis:         ")",
	RightBracket:             "]",
	RightBrace:               "}",
	Semicolon:                ";",
	Colon:                    ":",
	QuestionMark:             "?",
	QuestionDot:              "?.",
	Arrow:                    "=>",
	Ellipsis:                 "...",
	If:                       "if",
	In:                       "in",
	Of:                       "of",
	Do:                       "do",
	Var:                      "var",
	Let:                      "let",
	For:                      "for",
	New:                      "new",
	Try:                      "try",
	This:                     "this",
	Else:                     "else",
	Case:                     "case",
	Void:                     "void",
	With:                     "with",
	Await:                    "await",
	Yield:                    "yield",
	Const:                    "const",
	While:                    "while",
	Break:                    "break",
	Catch:                    "catch",
	Throw:                    "throw",
	Class:                    "class",
	Super:                    "super",
	Return:                   "return",
	Typeof:                   "typeof",
	Delete:                   "delete",
	Switch:                   "switch",
	Import:                   "import",
	Export:                   "export",
	Static:                   "static",
	Default:                  "default",
	Finally:                  "finally",
	Extends:                  "extends",
	Function:                 "function",
	Continue:                 "continue",
	Debugger:                 "debugger",
	InstanceOf:               "instanceof",
}

var keywordTable = map[string]keyword{
	"if":         {token: If},
	"in":         {token: In},
	"do":         {token: Do},
	"var":        {token: Var},
	"for":        {token: For},
	"new":        {token: New},
	"try":        {token: Try},
	"this":       {token: This},
	"else":       {token: Else},
	"case":       {token: Case},
	"void":       {token: Void},
	"with":       {token: With},
	"while":      {token: While},
	"break":      {token: Break},
	"catch":      {token: Catch},
	"throw":      {token: Throw},
	"return":     {token: Return},
	"typeof":     {token: Typeof},
	"delete":     {token: Delete},
	"switch":     {token: Switch},
	"import":     {token: Import},
	"export":     {token: Export},
	"default":    {token: Default},
	"finally":    {token: Finally},
	"function":   {token: Function},
	"continue":   {token: Continue},
	"debugger":   {token: Debugger},
	"instanceof": {token: InstanceOf},
	"const":      {token: Const},
	"class":      {token: Class},
	"extends":    {token: Extends},
	"super":      {token: Super},
	"let":        {token: Let, contextual: true},
	"of":         {token: Of, contextual: true},
	"static":     {token: Static, contextual: true},
	"await":      {token: Await, contextual: true},
	"yield":      {token: Yield, contextual: true},
	"false":      {token: Boolean},
	"true":       {token: Boolean},
	"null":       {token: Null},
}
