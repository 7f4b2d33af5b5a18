package parser

import (
	"github.com/estree-tools/estree/cst"
	"github.com/estree-tools/estree/token"
)

func (p *parser) parseProgram() *cst.Program {
	first, start := p.tok, p.tokStart
	var hashbang *cst.Token
	if p.tok.Kind == token.Hashbang {
		hb := p.tok
		hashbang = &hb
		p.next()
	}
	body := p.parseSourceElements()
	last, end := p.prevTok, p.prevEnd
	if len(body) == 0 && hashbang == nil {
		// Empty input; the span collapses onto the end marker.
		last, end = p.tok, p.tokEnd
	}
	return cst.NewProgram(cst.NewSpan(first, last, p.src[start:end]), hashbang, body)
}

func (p *parser) parseSourceElements() (list []*cst.Statement) {
	for p.tok.Kind != token.Eof {
		list = append(list, p.parseStatement())
	}
	return list
}

func (p *parser) parseStatementList() (list []*cst.Statement) {
	for p.tok.Kind != token.RightBrace && p.tok.Kind != token.Eof {
		list = append(list, p.parseStatement())
	}
	return list
}

func (p *parser) parseStatement() *cst.Statement {
	first, start := p.tok, p.tokStart
	var alt cst.Node

	switch p.tok.Kind {
	case token.Semicolon:
		alt = p.parseEmptyStatement()
	case token.LeftBrace:
		alt = p.parseBlockStatement()
	case token.Var, token.Const:
		alt = p.parseVariableStatement()
	case token.Let:
		// let is a declaration only when a binding follows.
		if next := p.peek(); isIdentifierToken(next.Kind) || next.Kind == token.LeftBracket || next.Kind == token.LeftBrace {
			alt = p.parseVariableStatement()
		} else {
			alt = p.parseExpressionStatement()
		}
	case token.If:
		alt = p.parseIfStatement()
	case token.Do, token.While, token.For:
		alt = p.parseIterationStatement()
	case token.Continue:
		alt = p.parseContinueStatement()
	case token.Break:
		alt = p.parseBreakStatement()
	case token.Return:
		alt = p.parseReturnStatement()
	case token.Yield:
		alt = p.parseYieldStatement()
	case token.With:
		alt = p.parseWithStatement()
	case token.Switch:
		alt = p.parseSwitchStatement()
	case token.Throw:
		alt = p.parseThrowStatement()
	case token.Try:
		alt = p.parseTryStatement()
	case token.Debugger:
		alt = p.parseDebuggerStatement()
	case token.Function:
		p.skipFunction()
		alt = &cst.FunctionDeclaration{Span: p.spanFrom(first, start)}
	case token.Class:
		p.skipClass()
		alt = &cst.ClassDeclaration{Span: p.spanFrom(first, start)}
	case token.Import:
		// import() and import.meta open an expression statement.
		if next := p.peek(); next.Kind == token.LeftParenthesis || next.Kind == token.Period {
			alt = p.parseExpressionStatement()
		} else {
			p.next()
			p.skipToEos()
			alt = &cst.ImportStatement{Span: p.spanFrom(first, start)}
		}
	case token.Export:
		p.next()
		p.skipToEos()
		alt = &cst.ExportDeclaration{Span: p.spanFrom(first, start)}
	case token.Eof:
		p.errorUnexpectedToken(token.Eof)
		alt = &cst.EmptyStatement{Span: p.spanFrom(first, start)}
	default:
		switch {
		case p.tok.Kind == token.Identifier && p.tok.Text == "async" && p.peek().Kind == token.Function:
			p.next()
			p.skipFunction()
			alt = &cst.FunctionDeclaration{Span: p.spanFrom(first, start)}
		case isIdentifierToken(p.tok.Kind) && p.peek().Kind == token.Colon:
			p.next()
			p.next()
			p.parseStatement()
			alt = &cst.LabelledStatement{Span: p.spanFrom(first, start)}
		default:
			alt = p.parseExpressionStatement()
		}
	}

	return cst.NewStatement(p.spanFrom(first, start), alt)
}

func (p *parser) parseEmptyStatement() *cst.EmptyStatement {
	first, start := p.tok, p.tokStart
	p.expect(token.Semicolon)
	return &cst.EmptyStatement{Span: p.spanFrom(first, start)}
}

func (p *parser) parseBlockStatement() *cst.Block {
	first, start := p.tok, p.tokStart
	p.expect(token.LeftBrace)
	list := p.parseStatementList()
	p.expect(token.RightBrace)
	return cst.NewBlock(p.spanFrom(first, start), list)
}

func (p *parser) parseExpressionStatement() *cst.ExpressionStatement {
	first, start := p.tok, p.tokStart
	seq := p.parseExpressionSequence()
	if !p.semicolon() {
		p.errorUnexpectedToken(p.tok.Kind)
	}
	return cst.NewExpressionStatement(p.spanFrom(first, start), seq)
}

func (p *parser) parseVariableStatement() *cst.VariableStatement {
	first, start := p.tok, p.tokStart
	list := p.parseVariableDeclarationList()
	if !p.semicolon() {
		p.errorUnexpectedToken(p.tok.Kind)
	}
	return cst.NewVariableStatement(p.spanFrom(first, start), list)
}

func (p *parser) parseVariableDeclarationList() *cst.VariableDeclarationList {
	first, start := p.tok, p.tokStart
	modifier := p.tok
	p.next()
	var decls []*cst.VariableDeclaration
	for {
		decls = append(decls, p.parseVariableDeclaration())
		if p.tok.Kind != token.Comma {
			break
		}
		p.next()
	}
	return cst.NewVariableDeclarationList(p.spanFrom(first, start), modifier, decls)
}

func (p *parser) parseVariableDeclaration() *cst.VariableDeclaration {
	first, start := p.tok, p.tokStart
	target := p.parseAssignable()
	var init cst.SingleExpression
	if p.tok.Kind == token.Assign {
		p.next()
		init = p.parseAssignmentExpression()
	}
	return cst.NewVariableDeclaration(p.spanFrom(first, start), target, init)
}

func (p *parser) parseAssignable() *cst.Assignable {
	first, start := p.tok, p.tokStart
	var alt cst.Node
	switch {
	case p.tok.Kind == token.LeftBracket:
		alt = p.parseArrayLiteral()
	case p.tok.Kind == token.LeftBrace:
		p.skipBalanced()
		alt = &cst.ObjectLiteral{Span: p.spanFrom(first, start)}
	case isIdentifierToken(p.tok.Kind):
		p.next()
		alt = &cst.Identifier{Span: p.spanFrom(first, start)}
	default:
		p.errorUnexpectedToken(p.tok.Kind)
		p.next()
		alt = &cst.Identifier{Span: p.spanFrom(first, start)}
	}
	return cst.NewAssignable(p.spanFrom(first, start), alt)
}

func (p *parser) parseIfStatement() *cst.IfStatement {
	first, start := p.tok, p.tokStart
	p.next()
	p.expect(token.LeftParenthesis)
	p.parseExpressionSequence()
	p.expect(token.RightParenthesis)
	p.parseStatement()
	if p.tok.Kind == token.Else {
		p.next()
		p.parseStatement()
	}
	return &cst.IfStatement{Span: p.spanFrom(first, start)}
}

func (p *parser) parseIterationStatement() cst.IterationStatement {
	first, start := p.tok, p.tokStart
	switch p.tok.Kind {
	case token.Do:
		p.next()
		p.parseStatement()
		p.expect(token.While)
		p.expect(token.LeftParenthesis)
		p.parseExpressionSequence()
		p.expect(token.RightParenthesis)
		p.semicolon()
		return &cst.DoStatement{Span: p.spanFrom(first, start)}
	case token.While:
		p.next()
		p.expect(token.LeftParenthesis)
		p.parseExpressionSequence()
		p.expect(token.RightParenthesis)
		p.parseStatement()
		return &cst.WhileStatement{Span: p.spanFrom(first, start)}
	default:
		p.next()
		if p.tok.Kind == token.Await {
			p.next()
		}
		if p.tok.Kind != token.LeftParenthesis {
			p.errorUnexpectedToken(p.tok.Kind)
		}
		forIn, forOf := p.skipForHeader()
		p.parseStatement()
		sp := p.spanFrom(first, start)
		switch {
		case forIn:
			return &cst.ForInStatement{Span: sp}
		case forOf:
			return &cst.ForOfStatement{Span: sp}
		default:
			return &cst.ForStatement{Span: sp}
		}
	}
}

// skipForHeader consumes the parenthesized for header and reports
// whether it is the for-in or for-of form.
func (p *parser) skipForHeader() (forIn, forOf bool) {
	depth := 0
	for {
		switch p.tok.Kind {
		case token.LeftParenthesis, token.LeftBracket, token.LeftBrace:
			depth++
		case token.RightParenthesis, token.RightBracket, token.RightBrace:
			depth--
		case token.In:
			if depth == 1 {
				forIn = true
			}
		case token.Of:
			if depth == 1 {
				forOf = true
			}
		case token.Eof:
			p.errorUnexpectedToken(token.Eof)
			return forIn, forOf
		}
		p.next()
		if depth == 0 {
			return forIn, forOf
		}
	}
}

func (p *parser) parseContinueStatement() *cst.ContinueStatement {
	first, start := p.tok, p.tokStart
	p.next()
	if isIdentifierToken(p.tok.Kind) && !p.onNewLine {
		p.next()
	}
	p.semicolon()
	return &cst.ContinueStatement{Span: p.spanFrom(first, start)}
}

func (p *parser) parseBreakStatement() *cst.BreakStatement {
	first, start := p.tok, p.tokStart
	p.next()
	if isIdentifierToken(p.tok.Kind) && !p.onNewLine {
		p.next()
	}
	p.semicolon()
	return &cst.BreakStatement{Span: p.spanFrom(first, start)}
}

func (p *parser) parseReturnStatement() *cst.ReturnStatement {
	first, start := p.tok, p.tokStart
	p.next()
	if !p.canInsertSemicolon() {
		p.parseExpressionSequence()
	}
	p.semicolon()
	return &cst.ReturnStatement{Span: p.spanFrom(first, start)}
}

func (p *parser) parseYieldStatement() *cst.YieldStatement {
	first, start := p.tok, p.tokStart
	p.next()
	if p.tok.Kind == token.Multiply {
		p.next()
		p.parseExpressionSequence()
	} else if !p.canInsertSemicolon() {
		p.parseExpressionSequence()
	}
	p.semicolon()
	return &cst.YieldStatement{Span: p.spanFrom(first, start)}
}

func (p *parser) parseWithStatement() *cst.WithStatement {
	first, start := p.tok, p.tokStart
	p.next()
	p.expect(token.LeftParenthesis)
	p.parseExpressionSequence()
	p.expect(token.RightParenthesis)
	p.parseStatement()
	return &cst.WithStatement{Span: p.spanFrom(first, start)}
}

func (p *parser) parseSwitchStatement() *cst.SwitchStatement {
	first, start := p.tok, p.tokStart
	p.next()
	p.expect(token.LeftParenthesis)
	p.parseExpressionSequence()
	p.expect(token.RightParenthesis)
	if p.tok.Kind == token.LeftBrace {
		p.skipBalanced()
	} else {
		p.errorUnexpectedToken(p.tok.Kind)
	}
	return &cst.SwitchStatement{Span: p.spanFrom(first, start)}
}

func (p *parser) parseThrowStatement() *cst.ThrowStatement {
	first, start := p.tok, p.tokStart
	p.next()
	if p.onNewLine {
		p.errorf("Illegal newline after throw")
	} else {
		p.parseExpressionSequence()
	}
	p.semicolon()
	return &cst.ThrowStatement{Span: p.spanFrom(first, start)}
}

func (p *parser) parseTryStatement() *cst.TryStatement {
	first, start := p.tok, p.tokStart
	p.next()
	p.parseBlockStatement()
	hasHandler := false
	if p.tok.Kind == token.Catch {
		hasHandler = true
		p.next()
		if p.tok.Kind == token.LeftParenthesis {
			p.skipBalanced()
		}
		p.parseBlockStatement()
	}
	if p.tok.Kind == token.Finally {
		hasHandler = true
		p.next()
		p.parseBlockStatement()
	}
	if !hasHandler {
		p.errorf("Missing catch or finally after try")
	}
	return &cst.TryStatement{Span: p.spanFrom(first, start)}
}

func (p *parser) parseDebuggerStatement() *cst.DebuggerStatement {
	first, start := p.tok, p.tokStart
	p.next()
	p.semicolon()
	return &cst.DebuggerStatement{Span: p.spanFrom(first, start)}
}

// skipFunction consumes a function declaration or expression from the
// function keyword onward.
func (p *parser) skipFunction() {
	p.next()
	if p.tok.Kind == token.Multiply {
		p.next()
	}
	if isIdentifierToken(p.tok.Kind) {
		p.next()
	}
	if p.tok.Kind == token.LeftParenthesis {
		p.skipBalanced()
	} else {
		p.errorUnexpectedToken(p.tok.Kind)
	}
	if p.tok.Kind == token.LeftBrace {
		p.skipBalanced()
	} else {
		p.errorUnexpectedToken(p.tok.Kind)
	}
}

// skipClass consumes a class declaration or expression from the class
// keyword onward.
func (p *parser) skipClass() {
	p.next()
	if isIdentifierToken(p.tok.Kind) {
		p.next()
	}
	if p.tok.Kind == token.Extends {
		p.next()
		p.parseLeftHandSideExpressionAllowCall()
	}
	if p.tok.Kind == token.LeftBrace {
		p.skipBalanced()
	} else {
		p.errorUnexpectedToken(p.tok.Kind)
	}
}

// skipBalanced consumes a bracketed region, from the opener the
// parser currently sits on through its matching closer.
func (p *parser) skipBalanced() {
	depth := 0
	for {
		switch p.tok.Kind {
		case token.LeftParenthesis, token.LeftBracket, token.LeftBrace:
			depth++
		case token.RightParenthesis, token.RightBracket, token.RightBrace:
			depth--
		case token.Eof:
			p.errorUnexpectedToken(token.Eof)
			return
		}
		p.next()
		if depth == 0 {
			return
		}
	}
}

// skipToEos consumes tokens through the end of the current simple
// statement, honoring automatic semicolon insertion at depth zero.
func (p *parser) skipToEos() {
	depth := 0
	for {
		if depth == 0 && p.onNewLine {
			return
		}
		switch p.tok.Kind {
		case token.Eof:
			return
		case token.Semicolon:
			if depth == 0 {
				p.next()
				return
			}
		case token.LeftParenthesis, token.LeftBracket, token.LeftBrace:
			depth++
		case token.RightParenthesis, token.RightBracket, token.RightBrace:
			if depth == 0 {
				return
			}
			depth--
		}
		p.next()
	}
}
