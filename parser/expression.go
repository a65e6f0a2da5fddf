package parser

import "github.com/dhamidi/syntree/syntax"

var binaryPrecedence = map[syntax.SyntaxKind]int{
	syntax.KindLogicalOrToken:   1,
	syntax.KindLogicalAndToken:  2,
	syntax.KindDoubleEqualToken: 3,
	syntax.KindNotEqualToken:    3,
	syntax.KindLtToken:          4,
	syntax.KindLtEqualToken:     4,
	syntax.KindGtToken:          4,
	syntax.KindGtEqualToken:     4,
	syntax.KindPlusToken:        5,
	syntax.KindMinusToken:       5,
	syntax.KindAsteriskToken:    6,
	syntax.KindSlashToken:       6,
	syntax.KindPercentToken:     6,
}

func (p *Parser) isExpressionStart() bool {
	switch p.peekKind() {
	case syntax.KindIdentifierToken,
		syntax.KindDecimalIntegerLiteralToken,
		syntax.KindDecimalFloatingPointLiteralToken,
		syntax.KindStringLiteralToken,
		syntax.KindTrueKeyword,
		syntax.KindFalseKeyword,
		syntax.KindOpenParenToken,
		syntax.KindMinusToken,
		syntax.KindPlusToken,
		syntax.KindExclamationMarkToken:
		return true
	}
	return false
}

func (p *Parser) parseExpression() syntax.InternalNode {
	return p.parseBinary(1)
}

// parseBinary is precedence climbing: operators bind left to right and an
// operator of precedence prec only joins operands at minPrec or above.
func (p *Parser) parseBinary(minPrec int) syntax.InternalNode {
	lhs := p.parseUnary()
	for {
		prec := binaryPrecedence[p.peekKind()]
		if prec == 0 || prec < minPrec || p.atCompoundOperator() {
			return lhs
		}
		op := p.consume()
		rhs := p.parseBinary(prec + 1)
		lhs = p.builder.BinaryExpression(lhs, op, rhs)
	}
}

func (p *Parser) parseUnary() syntax.InternalNode {
	if p.match(syntax.KindMinusToken, syntax.KindPlusToken, syntax.KindExclamationMarkToken) {
		op := p.consume()
		return p.builder.UnaryExpression(op, p.parseUnary())
	}
	return p.parsePostfix(p.parsePrimary())
}

func (p *Parser) parsePrimary() syntax.InternalNode {
	switch p.peekKind() {
	case syntax.KindDecimalIntegerLiteralToken,
		syntax.KindDecimalFloatingPointLiteralToken,
		syntax.KindStringLiteralToken,
		syntax.KindTrueKeyword,
		syntax.KindFalseKeyword:
		return p.builder.BasicLiteral(p.consume())
	case syntax.KindIdentifierToken:
		return p.parseNameReference()
	case syntax.KindOpenParenToken:
		open := p.consume()
		expr := p.parseExpression()
		closeParen := p.expect(syntax.KindCloseParenToken)
		return p.builder.BracedExpression(open, expr, closeParen)
	}
	return p.missingExpression()
}

func (p *Parser) missingExpression() syntax.InternalNode {
	got := "end of file"
	if tok := p.peek(); tok.Kind != syntax.KindEOFToken {
		got = "'" + tok.Text + "'"
	}
	name := p.builder.MissingToken(syntax.KindIdentifierToken,
		syntax.NewError(CodeMissingExpression, "missing expression before %s", got))
	return p.builder.SimpleNameReference(name)
}

func (p *Parser) parsePostfix(expr syntax.InternalNode) syntax.InternalNode {
	for {
		switch p.peekKind() {
		case syntax.KindOpenParenToken:
			open := p.consume()
			args := p.parseSeparatedList(
				p.isExpressionStart,
				func() syntax.InternalNode {
					return p.builder.PositionalArgument(p.parseExpression())
				},
				func() bool {
					return p.match(syntax.KindCloseParenToken, syntax.KindSemicolonToken, syntax.KindCloseBraceToken)
				},
			)
			closeParen := p.expect(syntax.KindCloseParenToken)
			expr = p.builder.FunctionCall(expr, open, args, closeParen)
		case syntax.KindDotToken:
			dot := p.consume()
			name := p.expect(syntax.KindIdentifierToken)
			expr = p.builder.FieldAccess(expr, dot, name)
		default:
			return expr
		}
	}
}
