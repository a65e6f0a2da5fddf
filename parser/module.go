package parser

import "github.com/dhamidi/syntree/syntax"

func (p *Parser) parseModulePart() syntax.InternalNode {
	var imports []syntax.InternalNode
	for p.check(syntax.KindImportKeyword) {
		imports = append(imports, p.parseImportDecl())
	}

	var members []syntax.InternalNode
	for !p.check(syntax.KindEOFToken) {
		progressed := p.mustProgress()
		switch {
		case p.check(syntax.KindFunctionKeyword):
			members = append(members, p.parseFunctionDefinition())
		case p.check(syntax.KindPublicKeyword) && p.peekN(1).Kind == syntax.KindFunctionKeyword:
			members = append(members, p.parseFunctionDefinition())
		case p.check(syntax.KindImportKeyword):
			decl := p.parseImportDecl().WithDiagnostics(
				syntax.NewError(CodeMisplacedImport, "import declarations must precede module members"))
			members = append(members, decl)
		case p.match(syntax.KindPublicKeyword, syntax.KindFinalKeyword) || p.isTypeStart():
			members = append(members, p.parseModuleVariableDeclaration())
		default:
			p.skip()
		}
		if !progressed() {
			break
		}
	}
	eof := p.consume()
	return p.builder.ModulePart(p.builder.NodeList(imports...), p.builder.NodeList(members...), eof)
}

// parseImportDecl parses
//
//	import [org '/'] name ('.' name)* ['as' prefix] ';'
func (p *Parser) parseImportDecl() *syntax.InternalBranch {
	importKw := p.expect(syntax.KindImportKeyword)

	var orgName syntax.InternalNode
	if p.check(syntax.KindIdentifierToken) && p.peekN(1).Kind == syntax.KindSlashToken {
		orgName = p.builder.ImportOrgName(p.consume(), p.consume())
	}

	var parts []syntax.InternalNode
	parts = append(parts, p.expect(syntax.KindIdentifierToken))
	for p.check(syntax.KindDotToken) {
		parts = append(parts, p.consume(), p.expect(syntax.KindIdentifierToken))
	}
	moduleName := p.builder.SeparatedNodeList(parts...)

	var prefix syntax.InternalNode
	if p.check(syntax.KindAsKeyword) {
		prefix = p.builder.ImportPrefix(p.consume(), p.expect(syntax.KindIdentifierToken))
	}
	semi := p.expect(syntax.KindSemicolonToken)
	return p.builder.ImportDeclaration(importKw, orgName, moduleName, prefix, semi)
}

func (p *Parser) parseFunctionDefinition() syntax.InternalNode {
	var visibility syntax.InternalNode
	if p.check(syntax.KindPublicKeyword) {
		visibility = p.consume()
	}
	functionKw := p.expect(syntax.KindFunctionKeyword)
	name := p.expect(syntax.KindIdentifierToken)
	sig := p.parseFunctionSignature()
	body := p.parseFunctionBody()
	return p.builder.FunctionDefinition(visibility, functionKw, name, sig, body)
}

func (p *Parser) parseFunctionSignature() syntax.InternalNode {
	open := p.expect(syntax.KindOpenParenToken)
	params := p.parseSeparatedList(
		p.isTypeStart,
		p.parseRequiredParameter,
		func() bool {
			return p.match(syntax.KindCloseParenToken, syntax.KindOpenBraceToken, syntax.KindReturnsKeyword)
		},
	)
	closeParen := p.expect(syntax.KindCloseParenToken)

	var returnType syntax.InternalNode
	if p.check(syntax.KindReturnsKeyword) {
		returnType = p.builder.ReturnTypeDescriptor(p.consume(), p.parseTypeDescriptor())
	}
	return p.builder.FunctionSignature(open, params, closeParen, returnType)
}

func (p *Parser) parseRequiredParameter() syntax.InternalNode {
	typ := p.parseTypeDescriptor()
	name := p.expect(syntax.KindIdentifierToken)
	return p.builder.RequiredParameter(typ, name)
}

func (p *Parser) parseFunctionBody() syntax.InternalNode {
	open := p.expect(syntax.KindOpenBraceToken)
	stmts := p.parseStatements()
	closeBrace := p.expect(syntax.KindCloseBraceToken)
	return p.builder.FunctionBodyBlock(open, stmts, closeBrace)
}

// parseModuleVariableDeclaration parses
//
//	['public'] ['final'] type name ['=' expr] ';'
func (p *Parser) parseModuleVariableDeclaration() syntax.InternalNode {
	var visibility, final syntax.InternalNode
	if p.check(syntax.KindPublicKeyword) {
		visibility = p.consume()
	}
	if p.check(syntax.KindFinalKeyword) {
		final = p.consume()
	}
	typ := p.parseTypeDescriptor()
	name := p.expect(syntax.KindIdentifierToken)
	equals, init := p.parseInitializer()
	semi := p.expect(syntax.KindSemicolonToken)
	return p.builder.ModuleVariableDeclaration(visibility, final, typ, name, equals, init, semi)
}

func (p *Parser) parseInitializer() (equals, init syntax.InternalNode) {
	if !p.check(syntax.KindEqualToken) {
		return nil, nil
	}
	return p.consume(), p.parseExpression()
}

var builtinTypes = map[syntax.SyntaxKind]bool{
	syntax.KindIntKeyword:     true,
	syntax.KindFloatKeyword:   true,
	syntax.KindStringKeyword:  true,
	syntax.KindBooleanKeyword: true,
	syntax.KindVarKeyword:     true,
}

func (p *Parser) isTypeStart() bool {
	return builtinTypes[p.peekKind()] || p.check(syntax.KindIdentifierToken)
}

// parseTypeDescriptor parses a builtin or named type, optionally followed by
// '?'. A missing type becomes a name reference to a missing identifier.
func (p *Parser) parseTypeDescriptor() syntax.InternalNode {
	var typ syntax.InternalNode
	switch {
	case builtinTypes[p.peekKind()]:
		typ = p.builder.BuiltinSimpleNameReference(p.consume())
	case p.check(syntax.KindIdentifierToken):
		typ = p.parseNameReference()
	default:
		typ = p.builder.SimpleNameReference(p.missing(syntax.KindIdentifierToken))
	}
	for p.check(syntax.KindQuestionMarkToken) {
		typ = p.builder.OptionalTypeDescriptor(typ, p.consume())
	}
	return typ
}

// parseNameReference parses name or prefix ':' name.
func (p *Parser) parseNameReference() syntax.InternalNode {
	if p.check(syntax.KindIdentifierToken) &&
		p.peekN(1).Kind == syntax.KindColonToken &&
		p.peekN(2).Kind == syntax.KindIdentifierToken {
		return p.builder.QualifiedNameReference(p.consume(), p.consume(), p.consume())
	}
	return p.builder.SimpleNameReference(p.expect(syntax.KindIdentifierToken))
}
