package parser

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/nukilabs/unicodeid"

	"github.com/estree-tools/estree/cst"
	"github.com/estree-tools/estree/token"
)

const (
	lineSeparator      = '\u2028'
	paragraphSeparator = '\u2029'
	zeroWidthNonJoiner = '\u200c'
	zeroWidthJoiner    = '\u200d'
	byteOrderMark      = '\ufeff'
)

// lexer turns source text into cst tokens, tracking the 1-based line
// and 0-based column of every token's first character. Columns count
// code points.
type lexer struct {
	src  string
	errs *error

	offset int
	line   int
	column int

	// tokenStart is the byte offset of the last token's first byte.
	tokenStart int
	// newlineBefore reports a line terminator between the previous
	// token and the last one.
	newlineBefore bool
}

func newLexer(src string, errs *error) *lexer {
	return &lexer{src: src, errs: errs, line: 1}
}

// checkpoint captures the lexer position for backtracking.
type checkpoint struct {
	offset        int
	line          int
	column        int
	tokenStart    int
	newlineBefore bool
}

func (l *lexer) checkpoint() checkpoint {
	return checkpoint{
		offset:        l.offset,
		line:          l.line,
		column:        l.column,
		tokenStart:    l.tokenStart,
		newlineBefore: l.newlineBefore,
	}
}

func (l *lexer) rewind(c checkpoint) {
	l.offset = c.offset
	l.line = c.line
	l.column = c.column
	l.tokenStart = c.tokenStart
	l.newlineBefore = c.newlineBefore
}

func (l *lexer) errorfAt(line, column int, msg string, values ...any) {
	*l.errs = errors.Join(*l.errs, &SyntaxError{
		Line:   line,
		Column: column,
		Msg:    fmt.Sprintf(msg, values...),
	})
}

func (l *lexer) byteAt(i int) byte {
	if i >= len(l.src) {
		return 0
	}
	return l.src[i]
}

func (l *lexer) rune() (rune, int) {
	if l.offset >= len(l.src) {
		return -1, 0
	}
	return utf8.DecodeRuneInString(l.src[l.offset:])
}

// advance consumes one rune. A \r\n pair counts as a single line
// terminator.
func (l *lexer) advance() rune {
	r, size := l.rune()
	if r < 0 {
		return r
	}
	l.offset += size
	switch r {
	case '\r':
		if l.byteAt(l.offset) == '\n' {
			l.offset++
		}
		fallthrough
	case '\n', lineSeparator, paragraphSeparator:
		l.line++
		l.column = 0
	default:
		l.column++
	}
	return r
}

func isLineTerminator(r rune) bool {
	return r == '\n' || r == '\r' || r == lineSeparator || r == paragraphSeparator
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func isOctalDigit(c byte) bool {
	return '0' <= c && c <= '7'
}

func isBinaryDigit(c byte) bool {
	return c == '0' || c == '1'
}

func isASCIIIdentifierStart(c byte) bool {
	return c == '$' || c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isASCIIIdentifierPart(c byte) bool {
	return isASCIIIdentifierStart(c) || isDigit(c)
}

func isIdentifierStart(r rune) bool {
	if r < utf8.RuneSelf {
		return isASCIIIdentifierStart(byte(r))
	}
	return unicodeid.IsIDStartUnicode(r)
}

// next scans the next token. Whitespace and comments are skipped and
// recorded in newlineBefore when they contain a line terminator.
func (l *lexer) next() cst.Token {
	l.newlineBefore = false
	l.skipSpace()
	l.tokenStart = l.offset
	line, column := l.line, l.column

	if l.offset >= len(l.src) {
		return cst.Token{Kind: token.Eof, Line: line, Column: column}
	}

	switch c := l.src[l.offset]; {
	case isASCIIIdentifierStart(c) || c == '\\':
		return l.scanIdentifier(line, column)
	case isDigit(c):
		return l.scanNumber(line, column)
	case c == '"' || c == '\'':
		return l.scanString(line, column)
	case c == '`':
		return l.scanTemplate(line, column)
	case c == '#':
		if l.offset == 0 && l.byteAt(1) == '!' {
			return l.scanHashbang(line, column)
		}
		// Private names flow through as plain identifiers.
		l.advance()
		if r, _ := l.rune(); r >= 0 && isIdentifierStart(r) {
			return l.scanIdentifier(line, column)
		}
		l.errorfAt(line, column, errUnexpectedCharacter, '#')
		return l.make(token.Illegal, line, column)
	case c >= utf8.RuneSelf:
		r, _ := l.rune()
		if unicodeid.IsIDStartUnicode(r) {
			return l.scanIdentifier(line, column)
		}
		l.advance()
		l.errorfAt(line, column, errUnexpectedCharacter, r)
		return l.make(token.Illegal, line, column)
	default:
		return l.scanPunctuator(line, column)
	}
}

func (l *lexer) make(kind token.Token, line, column int) cst.Token {
	return cst.Token{
		Kind:   kind,
		Text:   l.src[l.tokenStart:l.offset],
		Line:   line,
		Column: column,
	}
}

func (l *lexer) skipSpace() {
	for l.offset < len(l.src) {
		switch c := l.src[l.offset]; {
		case c == ' ' || c == '\t' || c == '\v' || c == '\f':
			l.advance()
		case c == '\n' || c == '\r':
			l.newlineBefore = true
			l.advance()
		case c == '/':
			switch l.byteAt(l.offset + 1) {
			case '/':
				l.skipLineComment()
			case '*':
				l.skipBlockComment()
			default:
				return
			}
		case c >= utf8.RuneSelf:
			r, _ := l.rune()
			switch {
			case isLineTerminator(r):
				l.newlineBefore = true
				l.advance()
			case r == byteOrderMark || unicode.IsSpace(r):
				l.advance()
			default:
				return
			}
		default:
			return
		}
	}
}

func (l *lexer) skipLineComment() {
	for l.offset < len(l.src) {
		if r, _ := l.rune(); isLineTerminator(r) {
			return
		}
		l.advance()
	}
}

func (l *lexer) skipBlockComment() {
	line, column := l.line, l.column
	l.advance()
	l.advance()
	for l.offset < len(l.src) {
		if l.src[l.offset] == '*' && l.byteAt(l.offset+1) == '/' {
			l.advance()
			l.advance()
			return
		}
		if r, _ := l.rune(); isLineTerminator(r) {
			l.newlineBefore = true
		}
		l.advance()
	}
	l.errorfAt(line, column, errUnterminatedComment)
}

func (l *lexer) scanHashbang(line, column int) cst.Token {
	for l.offset < len(l.src) {
		if r, _ := l.rune(); isLineTerminator(r) {
			break
		}
		l.advance()
	}
	return l.make(token.Hashbang, line, column)
}

func (l *lexer) scanIdentifier(line, column int) cst.Token {
scan:
	for l.offset < len(l.src) {
		switch c := l.src[l.offset]; {
		case isASCIIIdentifierPart(c):
			l.advance()
		case c == '\\':
			if !l.scanIdentifierEscape() {
				return l.make(token.Illegal, line, column)
			}
		case c >= utf8.RuneSelf:
			r, _ := l.rune()
			if unicodeid.IsIDContinueUnicode(r) || r == zeroWidthNonJoiner || r == zeroWidthJoiner {
				l.advance()
			} else {
				break scan
			}
		default:
			break scan
		}
	}
	text := l.src[l.tokenStart:l.offset]
	// A keyword spelled with an escape is just an identifier.
	if strings.IndexByte(text, '\\') < 0 {
		if kind, _ := token.LiteralKeyword(text); kind != 0 {
			return l.make(kind, line, column)
		}
	}
	return l.make(token.Identifier, line, column)
}

func (l *lexer) scanIdentifierEscape() bool {
	line, column := l.line, l.column
	l.advance()
	if l.byteAt(l.offset) != 'u' {
		l.errorfAt(line, column, errInvalidUnicodeEscape)
		return false
	}
	l.advance()
	if l.byteAt(l.offset) == '{' {
		l.advance()
		digits := 0
		for l.offset < len(l.src) && l.src[l.offset] != '}' {
			if !isHexDigit(l.src[l.offset]) {
				l.errorfAt(line, column, errInvalidUnicodeEscape)
				return false
			}
			digits++
			l.advance()
		}
		if digits == 0 || l.byteAt(l.offset) != '}' {
			l.errorfAt(line, column, errInvalidUnicodeEscape)
			return false
		}
		l.advance()
		return true
	}
	for i := 0; i < 4; i++ {
		if !isHexDigit(l.byteAt(l.offset)) {
			l.errorfAt(line, column, errInvalidUnicodeEscape)
			return false
		}
		l.advance()
	}
	return true
}

func (l *lexer) scanNumber(line, column int) cst.Token {
	kind := token.Number
	first := l.src[l.offset]
	l.advance()
	if first == '0' {
		switch c := l.byteAt(l.offset); {
		case c == 'x' || c == 'X':
			l.advance()
			l.scanDigits(isHexDigit, line, column)
		case c == 'o' || c == 'O':
			l.advance()
			l.scanDigits(isOctalDigit, line, column)
		case c == 'b' || c == 'B':
			l.advance()
			l.scanDigits(isBinaryDigit, line, column)
		case isDigit(c):
			// Legacy octal, or a leading zero decimal like 089.
			for isDigit(l.byteAt(l.offset)) {
				l.advance()
			}
			l.scanDecimalTail()
		default:
			l.scanDecimalTail()
		}
	} else {
		for isDigit(l.byteAt(l.offset)) {
			l.advance()
		}
		l.scanDecimalTail()
	}
	if l.byteAt(l.offset) == 'n' {
		l.advance()
		kind = token.Bigint
	}
	if r, _ := l.rune(); r >= 0 && isIdentifierStart(r) {
		l.errorfAt(line, column, errIdentifierAfterNumber)
	}
	return l.make(kind, line, column)
}

// scanNumberFraction scans a numeric literal that begins with a
// decimal point.
func (l *lexer) scanNumberFraction(line, column int) cst.Token {
	l.advance()
	for isDigit(l.byteAt(l.offset)) {
		l.advance()
	}
	l.scanExponent()
	if r, _ := l.rune(); r >= 0 && isIdentifierStart(r) {
		l.errorfAt(line, column, errIdentifierAfterNumber)
	}
	return l.make(token.Number, line, column)
}

func (l *lexer) scanDecimalTail() {
	if l.byteAt(l.offset) == '.' {
		l.advance()
		for isDigit(l.byteAt(l.offset)) {
			l.advance()
		}
	}
	l.scanExponent()
}

func (l *lexer) scanExponent() {
	if c := l.byteAt(l.offset); c != 'e' && c != 'E' {
		return
	}
	d := l.byteAt(l.offset + 1)
	if !isDigit(d) && !((d == '+' || d == '-') && isDigit(l.byteAt(l.offset+2))) {
		return
	}
	l.advance()
	l.advance()
	for isDigit(l.byteAt(l.offset)) {
		l.advance()
	}
}

func (l *lexer) scanDigits(valid func(byte) bool, line, column int) {
	n := 0
	for valid(l.byteAt(l.offset)) {
		l.advance()
		n++
	}
	if n == 0 {
		l.errorfAt(line, column, errInvalidNumber)
	}
}

// scanString keeps the raw text, quotes included. Escape sequences
// are consumed but not decoded.
func (l *lexer) scanString(line, column int) cst.Token {
	quote := l.src[l.offset]
	l.advance()
	for {
		if l.offset >= len(l.src) {
			l.errorfAt(line, column, errUnterminatedString)
			return l.make(token.Illegal, line, column)
		}
		c := l.src[l.offset]
		if c == quote {
			l.advance()
			return l.make(token.String, line, column)
		}
		if c == '\\' {
			l.advance()
			if l.offset < len(l.src) {
				l.advance()
			}
			continue
		}
		if c == '\n' || c == '\r' {
			l.errorfAt(line, column, errUnterminatedString)
			return l.make(token.Illegal, line, column)
		}
		l.advance()
	}
}

// scanTemplate scans a whole template literal, substitutions
// included, into a single token.
func (l *lexer) scanTemplate(line, column int) cst.Token {
	start := l.tokenStart
	newline := l.newlineBefore
	l.advance()
	for {
		if l.offset >= len(l.src) {
			l.errorfAt(line, column, errUnterminatedTemplate)
			l.tokenStart = start
			l.newlineBefore = newline
			return l.make(token.Illegal, line, column)
		}
		switch l.src[l.offset] {
		case '`':
			l.advance()
			l.tokenStart = start
			l.newlineBefore = newline
			return l.make(token.Template, line, column)
		case '\\':
			l.advance()
			if l.offset < len(l.src) {
				l.advance()
			}
		case '$':
			l.advance()
			if l.byteAt(l.offset) == '{' {
				l.advance()
				if !l.skipSubstitution(line, column) {
					l.tokenStart = start
					l.newlineBefore = newline
					return l.make(token.Illegal, line, column)
				}
			}
		default:
			l.advance()
		}
	}
}

// skipSubstitution lexes tokens until the brace closing a template
// substitution. Nested templates re-enter scanTemplate.
func (l *lexer) skipSubstitution(line, column int) bool {
	depth := 1
	for depth > 0 {
		switch l.next().Kind {
		case token.LeftBrace:
			depth++
		case token.RightBrace:
			depth--
		case token.Eof:
			l.errorfAt(line, column, errUnterminatedTemplate)
			return false
		}
	}
	return true
}

// rescanRegex re-reads the current slash token as a regular
// expression literal. The lexer must sit immediately after the slash
// token; a /= token contributes its = to the pattern.
func (l *lexer) rescanRegex(slash cst.Token) cst.Token {
	start := l.offset - len(slash.Text)
	inClass := false
	for {
		if l.offset >= len(l.src) {
			l.errorfAt(slash.Line, slash.Column, errUnterminatedRegex)
			break
		}
		c := l.src[l.offset]
		if c == '\\' {
			l.advance()
			if l.offset < len(l.src) {
				l.advance()
			}
			continue
		}
		if r, _ := l.rune(); isLineTerminator(r) {
			l.errorfAt(slash.Line, slash.Column, errUnterminatedRegex)
			break
		}
		switch c {
		case '[':
			inClass = true
		case ']':
			inClass = false
		case '/':
			if !inClass {
				l.advance()
				for l.offset < len(l.src) {
					r, _ := l.rune()
					if r < utf8.RuneSelf && !isASCIIIdentifierPart(byte(r)) {
						break
					}
					if r >= utf8.RuneSelf && !unicodeid.IsIDContinueUnicode(r) {
						break
					}
					l.advance()
				}
				l.tokenStart = start
				return cst.Token{
					Kind:   token.Regex,
					Text:   l.src[start:l.offset],
					Line:   slash.Line,
					Column: slash.Column,
				}
			}
		}
		l.advance()
	}
	l.tokenStart = start
	return cst.Token{
		Kind:   token.Illegal,
		Text:   l.src[start:l.offset],
		Line:   slash.Line,
		Column: slash.Column,
	}
}

// eat consumes n bytes of an ASCII punctuator.
func (l *lexer) eat(n int) {
	for i := 0; i < n; i++ {
		l.advance()
	}
}

func (l *lexer) scanPunctuator(line, column int) cst.Token {
	kind := token.Illegal
	at := func(i int, c byte) bool { return l.byteAt(l.offset+i) == c }
	switch l.src[l.offset] {
	case '(':
		kind = token.LeftParenthesis
		l.eat(1)
	case ')':
		kind = token.RightParenthesis
		l.eat(1)
	case '[':
		kind = token.LeftBracket
		l.eat(1)
	case ']':
		kind = token.RightBracket
		l.eat(1)
	case '{':
		kind = token.LeftBrace
		l.eat(1)
	case '}':
		kind = token.RightBrace
		l.eat(1)
	case ';':
		kind = token.Semicolon
		l.eat(1)
	case ',':
		kind = token.Comma
		l.eat(1)
	case ':':
		kind = token.Colon
		l.eat(1)
	case '~':
		kind = token.BitwiseNot
		l.eat(1)
	case '.':
		switch {
		case isDigit(l.byteAt(l.offset + 1)):
			return l.scanNumberFraction(line, column)
		case at(1, '.') && at(2, '.'):
			kind = token.Ellipsis
			l.eat(3)
		default:
			kind = token.Period
			l.eat(1)
		}
	case '?':
		switch {
		case at(1, '.') && !isDigit(l.byteAt(l.offset+2)):
			kind = token.QuestionDot
			l.eat(2)
		case at(1, '?') && at(2, '='):
			kind = token.CoalesceAssign
			l.eat(3)
		case at(1, '?'):
			kind = token.Coalesce
			l.eat(2)
		default:
			kind = token.QuestionMark
			l.eat(1)
		}
	case '<':
		switch {
		case at(1, '<') && at(2, '='):
			kind = token.ShiftLeftAssign
			l.eat(3)
		case at(1, '<'):
			kind = token.ShiftLeft
			l.eat(2)
		case at(1, '='):
			kind = token.LessOrEqual
			l.eat(2)
		default:
			kind = token.Less
			l.eat(1)
		}
	case '>':
		switch {
		case at(1, '>') && at(2, '>') && at(3, '='):
			kind = token.UnsignedShiftRightAssign
			l.eat(4)
		case at(1, '>') && at(2, '>'):
			kind = token.UnsignedShiftRight
			l.eat(3)
		case at(1, '>') && at(2, '='):
			kind = token.ShiftRightAssign
			l.eat(3)
		case at(1, '>'):
			kind = token.ShiftRight
			l.eat(2)
		case at(1, '='):
			kind = token.GreaterOrEqual
			l.eat(2)
		default:
			kind = token.Greater
			l.eat(1)
		}
	case '=':
		switch {
		case at(1, '=') && at(2, '='):
			kind = token.StrictEqual
			l.eat(3)
		case at(1, '='):
			kind = token.Equal
			l.eat(2)
		case at(1, '>'):
			kind = token.Arrow
			l.eat(2)
		default:
			kind = token.Assign
			l.eat(1)
		}
	case '!':
		switch {
		case at(1, '=') && at(2, '='):
			kind = token.StrictNotEqual
			l.eat(3)
		case at(1, '='):
			kind = token.NotEqual
			l.eat(2)
		default:
			kind = token.Not
			l.eat(1)
		}
	case '+':
		switch {
		case at(1, '+'):
			kind = token.Increment
			l.eat(2)
		case at(1, '='):
			kind = token.AddAssign
			l.eat(2)
		default:
			kind = token.Plus
			l.eat(1)
		}
	case '-':
		switch {
		case at(1, '-'):
			kind = token.Decrement
			l.eat(2)
		case at(1, '='):
			kind = token.SubtractAssign
			l.eat(2)
		default:
			kind = token.Minus
			l.eat(1)
		}
	case '*':
		switch {
		case at(1, '*') && at(2, '='):
			kind = token.ExponentAssign
			l.eat(3)
		case at(1, '*'):
			kind = token.Exponent
			l.eat(2)
		case at(1, '='):
			kind = token.MultiplyAssign
			l.eat(2)
		default:
			kind = token.Multiply
			l.eat(1)
		}
	case '/':
		if at(1, '=') {
			kind = token.QuotientAssign
			l.eat(2)
		} else {
			kind = token.Slash
			l.eat(1)
		}
	case '%':
		if at(1, '=') {
			kind = token.RemainderAssign
			l.eat(2)
		} else {
			kind = token.Remainder
			l.eat(1)
		}
	case '&':
		switch {
		case at(1, '&') && at(2, '='):
			kind = token.LogicalAndAssign
			l.eat(3)
		case at(1, '&'):
			kind = token.LogicalAnd
			l.eat(2)
		case at(1, '='):
			kind = token.AndAssign
			l.eat(2)
		default:
			kind = token.And
			l.eat(1)
		}
	case '|':
		switch {
		case at(1, '|') && at(2, '='):
			kind = token.LogicalOrAssign
			l.eat(3)
		case at(1, '|'):
			kind = token.LogicalOr
			l.eat(2)
		case at(1, '='):
			kind = token.OrAssign
			l.eat(2)
		default:
			kind = token.Or
			l.eat(1)
		}
	case '^':
		if at(1, '=') {
			kind = token.ExclusiveOrAssign
			l.eat(2)
		} else {
			kind = token.ExclusiveOr
			l.eat(1)
		}
	default:
		c := l.src[l.offset]
		l.advance()
		l.errorfAt(line, column, errUnexpectedCharacter, rune(c))
	}
	return l.make(kind, line, column)
}
