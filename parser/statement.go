package parser

import "github.com/dhamidi/syntree/syntax"

// blockEnd reports whether a statement list should stop. Module-level
// keywords end a block whose closing brace is missing.
func (p *Parser) blockEnd() bool {
	return p.match(
		syntax.KindCloseBraceToken,
		syntax.KindEOFToken,
		syntax.KindFunctionKeyword,
		syntax.KindImportKeyword,
		syntax.KindPublicKeyword,
	)
}

func (p *Parser) parseStatements() syntax.InternalNode {
	var stmts []syntax.InternalNode
	for !p.blockEnd() {
		progressed := p.mustProgress()
		if p.isStatementStart() {
			stmts = append(stmts, p.parseStatement())
		} else {
			p.skip()
		}
		if !progressed() {
			break
		}
	}
	return p.builder.NodeList(stmts...)
}

func (p *Parser) isStatementStart() bool {
	switch p.peekKind() {
	case syntax.KindOpenBraceToken,
		syntax.KindIfKeyword,
		syntax.KindWhileKeyword,
		syntax.KindReturnKeyword,
		syntax.KindFinalKeyword:
		return true
	}
	return builtinTypes[p.peekKind()] || p.isExpressionStart()
}

func (p *Parser) parseStatement() syntax.InternalNode {
	switch p.peekKind() {
	case syntax.KindOpenBraceToken:
		return p.parseBlockStatement()
	case syntax.KindIfKeyword:
		return p.parseIfElseStatement()
	case syntax.KindWhileKeyword:
		return p.parseWhileStatement()
	case syntax.KindReturnKeyword:
		return p.parseReturnStatement()
	}
	if p.isVariableDeclarationStart() {
		return p.parseLocalVariableDeclaration()
	}
	return p.parseExpressionOrAssignment()
}

func (p *Parser) parseBlockStatement() syntax.InternalNode {
	open := p.expect(syntax.KindOpenBraceToken)
	stmts := p.parseStatements()
	closeBrace := p.expect(syntax.KindCloseBraceToken)
	return p.builder.BlockStatement(open, stmts, closeBrace)
}

func (p *Parser) parseIfElseStatement() syntax.InternalNode {
	ifKw := p.expect(syntax.KindIfKeyword)
	cond := p.parseExpression()
	body := p.parseBlockStatement()

	var elseBlock syntax.InternalNode
	if p.check(syntax.KindElseKeyword) {
		elseKw := p.consume()
		var elseBody syntax.InternalNode
		if p.check(syntax.KindIfKeyword) {
			elseBody = p.parseIfElseStatement()
		} else {
			elseBody = p.parseBlockStatement()
		}
		elseBlock = p.builder.ElseBlock(elseKw, elseBody)
	}
	return p.builder.IfElseStatement(ifKw, cond, body, elseBlock)
}

func (p *Parser) parseWhileStatement() syntax.InternalNode {
	whileKw := p.expect(syntax.KindWhileKeyword)
	cond := p.parseExpression()
	body := p.parseBlockStatement()
	return p.builder.WhileStatement(whileKw, cond, body)
}

func (p *Parser) parseReturnStatement() syntax.InternalNode {
	returnKw := p.expect(syntax.KindReturnKeyword)
	var expr syntax.InternalNode
	if p.isExpressionStart() {
		expr = p.parseExpression()
	}
	semi := p.expect(syntax.KindSemicolonToken)
	return p.builder.ReturnStatement(returnKw, expr, semi)
}

// isVariableDeclarationStart looks ahead for
//
//	final ...
//	int x / var x / T x / T? x / p:T x
func (p *Parser) isVariableDeclarationStart() bool {
	if p.check(syntax.KindFinalKeyword) || builtinTypes[p.peekKind()] {
		return true
	}
	if !p.check(syntax.KindIdentifierToken) {
		return false
	}
	switch p.peekN(1).Kind {
	case syntax.KindIdentifierToken, syntax.KindQuestionMarkToken:
		return true
	case syntax.KindColonToken:
		return p.peekN(2).Kind == syntax.KindIdentifierToken &&
			p.peekN(3).Kind == syntax.KindIdentifierToken
	}
	return false
}

func (p *Parser) parseLocalVariableDeclaration() syntax.InternalNode {
	var final syntax.InternalNode
	if p.check(syntax.KindFinalKeyword) {
		final = p.consume()
	}
	typ := p.parseTypeDescriptor()
	name := p.expect(syntax.KindIdentifierToken)
	equals, init := p.parseInitializer()
	semi := p.expect(syntax.KindSemicolonToken)
	return p.builder.LocalVariableDeclaration(final, typ, name, equals, init, semi)
}

var compoundOperators = map[syntax.SyntaxKind]bool{
	syntax.KindPlusToken:     true,
	syntax.KindMinusToken:    true,
	syntax.KindAsteriskToken: true,
	syntax.KindSlashToken:    true,
}

// atCompoundOperator reports whether the next two tokens spell one of
// += -= *= /= with nothing between them.
func (p *Parser) atCompoundOperator() bool {
	op, eq := p.peek(), p.peekN(1)
	return compoundOperators[op.Kind] && len(op.Trailing) == 0 &&
		eq.Kind == syntax.KindEqualToken && len(eq.Leading) == 0
}

func (p *Parser) parseExpressionOrAssignment() syntax.InternalNode {
	expr := p.parseExpression()
	switch {
	case p.check(syntax.KindEqualToken):
		equals := p.consume()
		rhs := p.parseExpression()
		semi := p.expect(syntax.KindSemicolonToken)
		return p.builder.AssignmentStatement(expr, equals, rhs, semi)
	case p.atCompoundOperator():
		op := p.consume()
		equals := p.consume()
		rhs := p.parseExpression()
		semi := p.expect(syntax.KindSemicolonToken)
		return p.builder.CompoundAssignmentStatement(expr, op, equals, rhs, semi)
	}
	semi := p.expect(syntax.KindSemicolonToken)
	return p.builder.ExpressionStatement(expr, semi)
}
