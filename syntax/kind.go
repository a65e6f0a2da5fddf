package syntax

// SyntaxKind tags every token, trivia piece and node shape in the tree.
type SyntaxKind int

const (
	KindNone SyntaxKind = iota

	// Tokens
	KindEOFToken
	KindIdentifierToken
	KindDecimalIntegerLiteralToken
	KindDecimalFloatingPointLiteralToken
	KindStringLiteralToken

	// Keywords
	KindPublicKeyword
	KindFunctionKeyword
	KindReturnsKeyword
	KindReturnKeyword
	KindImportKeyword
	KindAsKeyword
	KindFinalKeyword
	KindIfKeyword
	KindElseKeyword
	KindWhileKeyword
	KindTrueKeyword
	KindFalseKeyword
	KindIntKeyword
	KindFloatKeyword
	KindStringKeyword
	KindBooleanKeyword
	KindVarKeyword

	// Punctuation and operators
	KindOpenParenToken
	KindCloseParenToken
	KindOpenBraceToken
	KindCloseBraceToken
	KindSemicolonToken
	KindCommaToken
	KindDotToken
	KindColonToken
	KindQuestionMarkToken
	KindEqualToken
	KindPlusToken
	KindMinusToken
	KindAsteriskToken
	KindSlashToken
	KindPercentToken
	KindDoubleEqualToken
	KindNotEqualToken
	KindLtToken
	KindLtEqualToken
	KindGtToken
	KindGtEqualToken
	KindLogicalAndToken
	KindLogicalOrToken
	KindExclamationMarkToken

	// Trivia
	KindWhitespaceTrivia
	KindEndOfLineTrivia
	KindCommentTrivia
	KindInvalidTokenTrivia

	// Lists
	KindNodeList
	KindSeparatedNodeList

	// Module level
	KindModulePart
	KindImportDeclaration
	KindImportOrgName
	KindImportPrefix
	KindFunctionDefinition
	KindFunctionSignature
	KindRequiredParameter
	KindReturnTypeDescriptor
	KindFunctionBodyBlock
	KindModuleVariableDeclaration

	// Statements
	KindLocalVariableDeclaration
	KindAssignmentStatement
	KindCompoundAssignmentStatement
	KindIfElseStatement
	KindElseBlock
	KindWhileStatement
	KindReturnStatement
	KindExpressionStatement
	KindBlockStatement

	// Expressions
	KindBinaryExpression
	KindUnaryExpression
	KindBracedExpression
	KindFunctionCall
	KindPositionalArgument
	KindFieldAccess
	KindSimpleNameReference
	KindQualifiedNameReference
	KindBasicLiteral

	// Type descriptors
	KindBuiltinSimpleNameReference
	KindOptionalTypeDescriptor

	kindCount
)

const (
	firstToken   = KindEOFToken
	lastToken    = KindExclamationMarkToken
	firstKeyword = KindPublicKeyword
	lastKeyword  = KindVarKeyword
	firstTrivia  = KindWhitespaceTrivia
	lastTrivia   = KindInvalidTokenTrivia
)

var syntaxKindNames = map[SyntaxKind]string{
	KindNone:                             "None",
	KindEOFToken:                         "EOFToken",
	KindIdentifierToken:                  "IdentifierToken",
	KindDecimalIntegerLiteralToken:       "DecimalIntegerLiteralToken",
	KindDecimalFloatingPointLiteralToken: "DecimalFloatingPointLiteralToken",
	KindStringLiteralToken:               "StringLiteralToken",
	KindPublicKeyword:                    "PublicKeyword",
	KindFunctionKeyword:                  "FunctionKeyword",
	KindReturnsKeyword:                   "ReturnsKeyword",
	KindReturnKeyword:                    "ReturnKeyword",
	KindImportKeyword:                    "ImportKeyword",
	KindAsKeyword:                        "AsKeyword",
	KindFinalKeyword:                     "FinalKeyword",
	KindIfKeyword:                        "IfKeyword",
	KindElseKeyword:                      "ElseKeyword",
	KindWhileKeyword:                     "WhileKeyword",
	KindTrueKeyword:                      "TrueKeyword",
	KindFalseKeyword:                     "FalseKeyword",
	KindIntKeyword:                       "IntKeyword",
	KindFloatKeyword:                     "FloatKeyword",
	KindStringKeyword:                    "StringKeyword",
	KindBooleanKeyword:                   "BooleanKeyword",
	KindVarKeyword:                       "VarKeyword",
	KindOpenParenToken:                   "OpenParenToken",
	KindCloseParenToken:                  "CloseParenToken",
	KindOpenBraceToken:                   "OpenBraceToken",
	KindCloseBraceToken:                  "CloseBraceToken",
	KindSemicolonToken:                   "SemicolonToken",
	KindCommaToken:                       "CommaToken",
	KindDotToken:                         "DotToken",
	KindColonToken:                       "ColonToken",
	KindQuestionMarkToken:                "QuestionMarkToken",
	KindEqualToken:                       "EqualToken",
	KindPlusToken:                        "PlusToken",
	KindMinusToken:                       "MinusToken",
	KindAsteriskToken:                    "AsteriskToken",
	KindSlashToken:                       "SlashToken",
	KindPercentToken:                     "PercentToken",
	KindDoubleEqualToken:                 "DoubleEqualToken",
	KindNotEqualToken:                    "NotEqualToken",
	KindLtToken:                          "LtToken",
	KindLtEqualToken:                     "LtEqualToken",
	KindGtToken:                          "GtToken",
	KindGtEqualToken:                     "GtEqualToken",
	KindLogicalAndToken:                  "LogicalAndToken",
	KindLogicalOrToken:                   "LogicalOrToken",
	KindExclamationMarkToken:             "ExclamationMarkToken",
	KindWhitespaceTrivia:                 "WhitespaceTrivia",
	KindEndOfLineTrivia:                  "EndOfLineTrivia",
	KindCommentTrivia:                    "CommentTrivia",
	KindInvalidTokenTrivia:               "InvalidTokenTrivia",
	KindNodeList:                         "NodeList",
	KindSeparatedNodeList:                "SeparatedNodeList",
	KindModulePart:                       "ModulePart",
	KindImportDeclaration:                "ImportDeclaration",
	KindImportOrgName:                    "ImportOrgName",
	KindImportPrefix:                     "ImportPrefix",
	KindFunctionDefinition:               "FunctionDefinition",
	KindFunctionSignature:                "FunctionSignature",
	KindRequiredParameter:                "RequiredParameter",
	KindReturnTypeDescriptor:             "ReturnTypeDescriptor",
	KindFunctionBodyBlock:                "FunctionBodyBlock",
	KindModuleVariableDeclaration:        "ModuleVariableDeclaration",
	KindLocalVariableDeclaration:         "LocalVariableDeclaration",
	KindAssignmentStatement:              "AssignmentStatement",
	KindCompoundAssignmentStatement:      "CompoundAssignmentStatement",
	KindIfElseStatement:                  "IfElseStatement",
	KindElseBlock:                        "ElseBlock",
	KindWhileStatement:                   "WhileStatement",
	KindReturnStatement:                  "ReturnStatement",
	KindExpressionStatement:              "ExpressionStatement",
	KindBlockStatement:                   "BlockStatement",
	KindBinaryExpression:                 "BinaryExpression",
	KindUnaryExpression:                  "UnaryExpression",
	KindBracedExpression:                 "BracedExpression",
	KindFunctionCall:                     "FunctionCall",
	KindPositionalArgument:               "PositionalArgument",
	KindFieldAccess:                      "FieldAccess",
	KindSimpleNameReference:              "SimpleNameReference",
	KindQualifiedNameReference:           "QualifiedNameReference",
	KindBasicLiteral:                     "BasicLiteral",
	KindBuiltinSimpleNameReference:       "BuiltinSimpleNameReference",
	KindOptionalTypeDescriptor:           "OptionalTypeDescriptor",
}

// fixedTokenText holds the lexeme of every token kind whose text never varies.
var fixedTokenText = map[SyntaxKind]string{
	KindPublicKeyword:        "public",
	KindFunctionKeyword:      "function",
	KindReturnsKeyword:       "returns",
	KindReturnKeyword:        "return",
	KindImportKeyword:        "import",
	KindAsKeyword:            "as",
	KindFinalKeyword:         "final",
	KindIfKeyword:            "if",
	KindElseKeyword:          "else",
	KindWhileKeyword:         "while",
	KindTrueKeyword:          "true",
	KindFalseKeyword:         "false",
	KindIntKeyword:           "int",
	KindFloatKeyword:         "float",
	KindStringKeyword:        "string",
	KindBooleanKeyword:       "boolean",
	KindVarKeyword:           "var",
	KindOpenParenToken:       "(",
	KindCloseParenToken:      ")",
	KindOpenBraceToken:       "{",
	KindCloseBraceToken:      "}",
	KindSemicolonToken:       ";",
	KindCommaToken:           ",",
	KindDotToken:             ".",
	KindColonToken:           ":",
	KindQuestionMarkToken:    "?",
	KindEqualToken:           "=",
	KindPlusToken:            "+",
	KindMinusToken:           "-",
	KindAsteriskToken:        "*",
	KindSlashToken:           "/",
	KindPercentToken:         "%",
	KindDoubleEqualToken:     "==",
	KindNotEqualToken:        "!=",
	KindLtToken:              "<",
	KindLtEqualToken:         "<=",
	KindGtToken:              ">",
	KindGtEqualToken:         ">=",
	KindLogicalAndToken:      "&&",
	KindLogicalOrToken:       "||",
	KindExclamationMarkToken: "!",
}

var keywords = func() map[string]SyntaxKind {
	m := make(map[string]SyntaxKind)
	for k := firstKeyword; k <= lastKeyword; k++ {
		m[fixedTokenText[k]] = k
	}
	return m
}()

func (k SyntaxKind) String() string {
	if name, ok := syntaxKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

func (k SyntaxKind) IsToken() bool {
	return k >= firstToken && k <= lastToken
}

func (k SyntaxKind) IsKeyword() bool {
	return k >= firstKeyword && k <= lastKeyword
}

func (k SyntaxKind) IsTrivia() bool {
	return k >= firstTrivia && k <= lastTrivia
}

func (k SyntaxKind) IsList() bool {
	return k == KindNodeList || k == KindSeparatedNodeList
}

// IsNode reports whether k names a non-terminal shape.
func (k SyntaxKind) IsNode() bool {
	return k.IsList() || (k > KindSeparatedNodeList && k < kindCount)
}

// Arity returns the number of buckets a node of this kind has, or -1 for
// list kinds and non-node kinds.
func (k SyntaxKind) Arity() int {
	if slots, ok := nodeSlots[k]; ok {
		return len(slots)
	}
	return -1
}

// SlotName returns the accessor name of bucket i, or "" when k has no fixed
// layout.
func (k SyntaxKind) SlotName(i int) string {
	slots, ok := nodeSlots[k]
	if !ok || i < 0 || i >= len(slots) {
		return ""
	}
	return slots[i].name
}

// SlotOptional reports whether bucket i of k may be absent.
func (k SyntaxKind) SlotOptional(i int) bool {
	slots, ok := nodeSlots[k]
	if !ok || i < 0 || i >= len(slots) {
		return false
	}
	return slots[i].optional
}

// FixedText returns the lexeme of keywords and punctuation.
func (k SyntaxKind) FixedText() (string, bool) {
	text, ok := fixedTokenText[k]
	return text, ok
}

// LookupKeyword maps an identifier lexeme to its keyword kind, or
// KindIdentifierToken.
func LookupKeyword(ident string) SyntaxKind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return KindIdentifierToken
}

// KindByName resolves the String form of a kind.
func KindByName(name string) (SyntaxKind, bool) {
	for k, n := range syntaxKindNames {
		if n == name {
			return k, true
		}
	}
	return KindNone, false
}

type slot struct {
	name     string
	optional bool
}
