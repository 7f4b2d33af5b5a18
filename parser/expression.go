package parser

import (
	"github.com/estree-tools/estree/cst"
	"github.com/estree-tools/estree/token"
)

func (p *parser) parseExpressionSequence() *cst.ExpressionSequence {
	first, start := p.tok, p.tokStart
	exprs := []cst.SingleExpression{p.parseAssignmentExpression()}
	for p.tok.Kind == token.Comma {
		p.next()
		exprs = append(exprs, p.parseAssignmentExpression())
	}
	return cst.NewExpressionSequence(p.spanFrom(first, start), exprs)
}

func (p *parser) parseAssignmentExpression() cst.SingleExpression {
	first, start := p.tok, p.tokStart
	if p.tok.Kind == token.Yield {
		return p.parseYieldExpression()
	}
	left := p.parseConditionalExpression()
	switch {
	case p.tok.Kind == token.Assign:
		op := p.tok
		p.next()
		right := p.parseAssignmentExpression()
		return cst.NewAssignmentExpression(p.spanFrom(first, start), left, op, right)
	case isAssignmentOperator(p.tok.Kind):
		op := p.tok
		p.next()
		operator := cst.NewAssignmentOperator(cst.NewSpan(op, op, op.Text), op)
		right := p.parseAssignmentExpression()
		return cst.NewAssignmentOperatorExpression(p.spanFrom(first, start), left, operator, right)
	}
	return left
}

func isAssignmentOperator(kind token.Token) bool {
	return token.AssignOperator(kind) ||
		kind == token.LogicalAndAssign || kind == token.LogicalOrAssign || kind == token.CoalesceAssign
}

func (p *parser) parseYieldExpression() cst.SingleExpression {
	first, start := p.tok, p.tokStart
	p.next()
	if p.tok.Kind == token.Multiply {
		p.next()
		p.parseAssignmentExpression()
		return &cst.YieldExpression{Span: p.spanFrom(first, start)}
	}
	switch p.tok.Kind {
	case token.Comma, token.RightParenthesis, token.RightBracket, token.RightBrace, token.Colon, token.Semicolon, token.Eof:
	default:
		if !p.onNewLine {
			p.parseAssignmentExpression()
		}
	}
	return &cst.YieldExpression{Span: p.spanFrom(first, start)}
}

func (p *parser) parseConditionalExpression() cst.SingleExpression {
	first, start := p.tok, p.tokStart
	test := p.parseBinaryExpressionOrHigher(0)
	if p.tok.Kind != token.QuestionMark {
		return test
	}
	p.next()
	p.parseAssignmentExpression()
	p.expect(token.Colon)
	p.parseAssignmentExpression()
	return &cst.TernaryExpression{Span: p.spanFrom(first, start)}
}

func (p *parser) parseBinaryExpressionOrHigher(minPrecedence int) cst.SingleExpression {
	first, start := p.tok, p.tokStart
	left := p.parseUnaryExpression()
	return p.parseBinaryExpressionRest(left, first, start, minPrecedence)
}

func (p *parser) parseBinaryExpressionRest(left cst.SingleExpression, first cst.Token, start, minPrecedence int) cst.SingleExpression {
	for {
		op := p.tok
		precedence := op.Kind.Precedence(true)
		if precedence <= minPrecedence {
			return left
		}
		p.next()
		next := precedence
		if op.Kind.RightAssociative() {
			next = precedence - 1
		}
		right := p.parseBinaryExpressionOrHigher(next)
		left = newBinaryExpression(p.spanFrom(first, start), left, op, right)
	}
}

func newBinaryExpression(sp cst.Span, left cst.SingleExpression, op cst.Token, right cst.SingleExpression) cst.SingleExpression {
	switch op.Kind {
	case token.Exponent:
		return cst.NewPowerExpression(sp, left, op, right)
	case token.Multiply, token.Slash, token.Remainder:
		return cst.NewMultiplicativeExpression(sp, left, op, right)
	case token.Plus, token.Minus:
		return cst.NewAdditiveExpression(sp, left, op, right)
	case token.ShiftLeft, token.ShiftRight, token.UnsignedShiftRight:
		return cst.NewBitShiftExpression(sp, left, op, right)
	case token.Less, token.Greater, token.LessOrEqual, token.GreaterOrEqual:
		return cst.NewRelationalExpression(sp, left, op, right)
	case token.InstanceOf:
		return cst.NewInstanceofExpression(sp, left, op, right)
	case token.In:
		return cst.NewInExpression(sp, left, op, right)
	case token.Equal, token.NotEqual, token.StrictEqual, token.StrictNotEqual:
		return cst.NewEqualityExpression(sp, left, op, right)
	case token.And:
		return cst.NewBitAndExpression(sp, left, op, right)
	case token.ExclusiveOr:
		return cst.NewBitXOrExpression(sp, left, op, right)
	case token.Or:
		return cst.NewBitOrExpression(sp, left, op, right)
	case token.LogicalAnd:
		return cst.NewLogicalAndExpression(sp, left, op, right)
	case token.LogicalOr:
		return cst.NewLogicalOrExpression(sp, left, op, right)
	case token.Coalesce:
		return cst.NewCoalesceExpression(sp, left, op, right)
	default:
		panic("parser: not a binary operator: " + op.Kind.String())
	}
}

func (p *parser) parseUnaryExpression() cst.SingleExpression {
	first, start := p.tok, p.tokStart
	switch p.tok.Kind {
	case token.Delete:
		p.next()
		arg := p.parseUnaryExpression()
		return cst.NewDeleteExpression(p.spanFrom(first, start), arg)
	case token.Void:
		p.next()
		arg := p.parseUnaryExpression()
		return cst.NewVoidExpression(p.spanFrom(first, start), arg)
	case token.Typeof:
		p.next()
		arg := p.parseUnaryExpression()
		return cst.NewTypeofExpression(p.spanFrom(first, start), arg)
	case token.Plus:
		p.next()
		arg := p.parseUnaryExpression()
		return cst.NewUnaryPlusExpression(p.spanFrom(first, start), arg)
	case token.Minus:
		p.next()
		arg := p.parseUnaryExpression()
		return cst.NewUnaryMinusExpression(p.spanFrom(first, start), arg)
	case token.BitwiseNot:
		p.next()
		arg := p.parseUnaryExpression()
		return cst.NewBitNotExpression(p.spanFrom(first, start), arg)
	case token.Not:
		p.next()
		arg := p.parseUnaryExpression()
		return cst.NewNotExpression(p.spanFrom(first, start), arg)
	case token.Increment:
		p.next()
		arg := p.parseUnaryExpression()
		return cst.NewPreIncrementExpression(p.spanFrom(first, start), arg)
	case token.Decrement:
		p.next()
		arg := p.parseUnaryExpression()
		return cst.NewPreDecreaseExpression(p.spanFrom(first, start), arg)
	case token.Await:
		p.next()
		p.parseUnaryExpression()
		return &cst.AwaitExpression{Span: p.spanFrom(first, start)}
	default:
		return p.parseUpdateExpression()
	}
}

// parseUpdateExpression parses a left hand side expression and its
// optional postfix increment or decrement. A line terminator before
// the operator ends the expression instead.
func (p *parser) parseUpdateExpression() cst.SingleExpression {
	first, start := p.tok, p.tokStart
	operand := p.parseLeftHandSideExpressionAllowCall()
	switch p.tok.Kind {
	case token.Increment:
		if p.onNewLine {
			return operand
		}
		p.next()
		return cst.NewPostIncrementExpression(p.spanFrom(first, start), operand)
	case token.Decrement:
		if p.onNewLine {
			return operand
		}
		p.next()
		return cst.NewPostDecreaseExpression(p.spanFrom(first, start), operand)
	}
	return operand
}

func (p *parser) parseLeftHandSideExpressionAllowCall() cst.SingleExpression {
	first, start := p.tok, p.tokStart
	var left cst.SingleExpression
	if p.tok.Kind == token.New {
		left = p.parseNewExpression()
	} else {
		left = p.parsePrimaryExpression()
	}
	for {
		switch p.tok.Kind {
		case token.Period:
			left = p.parseDotMember(first, start)
		case token.LeftBracket:
			left = p.parseBracketMember(first, start)
		case token.LeftParenthesis:
			p.parseArguments()
			left = &cst.ArgumentsExpression{Span: p.spanFrom(first, start)}
		case token.QuestionDot:
			left = p.parseOptionalChain(first, start)
		case token.Template:
			p.next()
			left = &cst.TemplateStringExpression{Span: p.spanFrom(first, start)}
		default:
			return left
		}
	}
}

func (p *parser) parseDotMember(first cst.Token, start int) cst.SingleExpression {
	p.next()
	if token.ID(p.tok.Kind) {
		p.next()
	} else {
		p.errorUnexpectedToken(p.tok.Kind)
		p.next()
	}
	return &cst.MemberDotExpression{Span: p.spanFrom(first, start)}
}

func (p *parser) parseBracketMember(first cst.Token, start int) cst.SingleExpression {
	p.next()
	p.parseExpressionSequence()
	p.expect(token.RightBracket)
	return &cst.MemberIndexExpression{Span: p.spanFrom(first, start)}
}

func (p *parser) parseOptionalChain(first cst.Token, start int) cst.SingleExpression {
	p.next()
	switch {
	case p.tok.Kind == token.LeftParenthesis:
		p.parseArguments()
	case p.tok.Kind == token.LeftBracket:
		p.next()
		p.parseExpressionSequence()
		p.expect(token.RightBracket)
	case token.ID(p.tok.Kind):
		p.next()
	default:
		p.errorUnexpectedToken(p.tok.Kind)
		p.next()
	}
	return &cst.OptionalChainExpression{Span: p.spanFrom(first, start)}
}

func (p *parser) parseNewExpression() cst.SingleExpression {
	first, start := p.tok, p.tokStart
	p.next()
	if p.tok.Kind == token.Period {
		// new.target
		p.next()
		if token.ID(p.tok.Kind) {
			p.next()
		} else {
			p.errorUnexpectedToken(p.tok.Kind)
			p.next()
		}
		return &cst.MetaExpression{Span: p.spanFrom(first, start)}
	}
	p.parseLeftHandSideExpressionAllowCall()
	return &cst.NewExpression{Span: p.spanFrom(first, start)}
}

// parseArguments consumes a parenthesized argument list.
func (p *parser) parseArguments() {
	p.expect(token.LeftParenthesis)
	for p.tok.Kind != token.RightParenthesis && p.tok.Kind != token.Eof {
		if p.tok.Kind == token.Ellipsis {
			p.next()
		}
		p.parseAssignmentExpression()
		if p.tok.Kind != token.Comma {
			break
		}
		p.next()
	}
	p.expect(token.RightParenthesis)
}

func (p *parser) parsePrimaryExpression() cst.SingleExpression {
	first, start := p.tok, p.tokStart
	switch p.tok.Kind {
	case token.This:
		p.next()
		return &cst.ThisExpression{Span: p.spanFrom(first, start)}
	case token.Super:
		p.next()
		return &cst.SuperExpression{Span: p.spanFrom(first, start)}
	case token.Null, token.Boolean, token.String, token.Number, token.Bigint, token.Template:
		lit := p.parseLiteral()
		return cst.NewLiteralExpression(p.spanFrom(first, start), lit)
	case token.Slash, token.QuotientAssign:
		p.rescanRegex()
		lit := p.parseLiteral()
		return cst.NewLiteralExpression(p.spanFrom(first, start), lit)
	case token.LeftBracket:
		arr := p.parseArrayLiteral()
		return cst.NewArrayLiteralExpression(p.spanFrom(first, start), arr)
	case token.LeftParenthesis:
		return p.parseParenthesisedExpression()
	case token.LeftBrace:
		p.skipBalanced()
		return &cst.ObjectLiteralExpression{Span: p.spanFrom(first, start)}
	case token.Function:
		p.skipFunction()
		return &cst.FunctionExpression{Span: p.spanFrom(first, start)}
	case token.Class:
		p.skipClass()
		return &cst.ClassExpression{Span: p.spanFrom(first, start)}
	case token.Import:
		p.next()
		switch p.tok.Kind {
		case token.Period:
			// import.meta
			p.next()
			if token.ID(p.tok.Kind) {
				p.next()
			} else {
				p.errorUnexpectedToken(p.tok.Kind)
				p.next()
			}
			return &cst.MetaExpression{Span: p.spanFrom(first, start)}
		case token.LeftParenthesis:
			p.skipBalanced()
			return &cst.ImportExpression{Span: p.spanFrom(first, start)}
		default:
			p.errorUnexpectedToken(p.tok.Kind)
			return p.errorExpression(first, start)
		}
	default:
		if isIdentifierToken(p.tok.Kind) {
			if p.tok.Text == "async" {
				if arrow, ok := p.tryAsyncArrow(first, start); ok {
					return arrow
				}
				if p.peek().Kind == token.Function {
					p.next()
					p.skipFunction()
					return &cst.FunctionExpression{Span: p.spanFrom(first, start)}
				}
			}
			p.next()
			if p.tok.Kind == token.Arrow && !p.onNewLine {
				p.next()
				p.parseArrowFunctionBody()
				return &cst.ArrowFunctionExpression{Span: p.spanFrom(first, start)}
			}
			sp := p.spanFrom(first, start)
			return cst.NewIdentifierExpression(sp, &cst.Identifier{Span: sp})
		}
		p.errorUnexpectedToken(p.tok.Kind)
		p.next()
		return p.errorExpression(first, start)
	}
}

// errorExpression is a placeholder so parsing can continue past a
// syntax error. Trees holding one never reach a caller without the
// error set.
func (p *parser) errorExpression(first cst.Token, start int) cst.SingleExpression {
	sp := p.spanFrom(first, start)
	return cst.NewIdentifierExpression(sp, &cst.Identifier{Span: sp})
}

// parseParenthesisedExpression parses a parenthesized expression
// sequence, or an arrow function when the parenthesis turns out to be
// a parameter list.
func (p *parser) parseParenthesisedExpression() cst.SingleExpression {
	first, start := p.tok, p.tokStart
	st := p.mark()
	p.skipBalanced()
	if p.tok.Kind == token.Arrow && !p.onNewLine {
		p.next()
		p.parseArrowFunctionBody()
		return &cst.ArrowFunctionExpression{Span: p.spanFrom(first, start)}
	}
	p.restore(st)
	p.expect(token.LeftParenthesis)
	seq := p.parseExpressionSequence()
	p.expect(token.RightParenthesis)
	return cst.NewParenthesizedExpression(p.spanFrom(first, start), seq)
}

// tryAsyncArrow recognizes async arrow functions. The current token
// is the async identifier.
func (p *parser) tryAsyncArrow(first cst.Token, start int) (cst.SingleExpression, bool) {
	st := p.mark()
	p.next()
	if p.onNewLine {
		p.restore(st)
		return nil, false
	}
	switch {
	case isIdentifierToken(p.tok.Kind):
		p.next()
	case p.tok.Kind == token.LeftParenthesis:
		p.skipBalanced()
	default:
		p.restore(st)
		return nil, false
	}
	if p.tok.Kind != token.Arrow || p.onNewLine {
		p.restore(st)
		return nil, false
	}
	p.next()
	p.parseArrowFunctionBody()
	return &cst.ArrowFunctionExpression{Span: p.spanFrom(first, start)}, true
}

func (p *parser) parseArrowFunctionBody() {
	if p.tok.Kind == token.LeftBrace {
		p.skipBalanced()
		return
	}
	p.parseAssignmentExpression()
}

func (p *parser) parseArrayLiteral() *cst.ArrayLiteral {
	first, start := p.tok, p.tokStart
	p.expect(token.LeftBracket)
	listFirst, listStart := p.tok, p.tokStart
	var elements []*cst.ArrayElement
	expectingElement := true
	for p.tok.Kind != token.RightBracket && p.tok.Kind != token.Eof {
		if p.tok.Kind == token.Comma {
			// An elision records a hole.
			if expectingElement {
				elements = append(elements, nil)
			}
			expectingElement = true
			p.next()
			continue
		}
		elFirst, elStart := p.tok, p.tokStart
		var ellipsis *cst.Token
		if p.tok.Kind == token.Ellipsis {
			e := p.tok
			ellipsis = &e
			p.next()
		}
		expr := p.parseAssignmentExpression()
		elements = append(elements, cst.NewArrayElement(p.spanFrom(elFirst, elStart), ellipsis, expr))
		expectingElement = false
	}
	var list *cst.ElementList
	if len(elements) > 0 {
		list = cst.NewElementList(p.spanFrom(listFirst, listStart), elements)
	}
	p.expect(token.RightBracket)
	return cst.NewArrayLiteral(p.spanFrom(first, start), list)
}

func (p *parser) parseLiteral() *cst.Literal {
	first, start := p.tok, p.tokStart
	tok := p.tok
	p.next()
	sp := p.spanFrom(first, start)
	switch tok.Kind {
	case token.Number:
		return cst.NewRuleLiteral(sp, cst.NewNumericLiteral(sp, tok))
	case token.Bigint:
		return cst.NewRuleLiteral(sp, &cst.BigintLiteral{Span: sp})
	case token.Template:
		return cst.NewRuleLiteral(sp, &cst.TemplateStringLiteral{Span: sp})
	default:
		// null, boolean, string and regex keep their token.
		return cst.NewTokenLiteral(sp, tok)
	}
}
