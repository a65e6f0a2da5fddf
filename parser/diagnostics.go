package parser

// Diagnostic codes reported by the lexer and parser.
const (
	CodeMissingToken       = "SYN0001"
	CodeInvalidToken       = "SYN0002"
	CodeMissingExpression  = "SYN0003"
	CodeInvalidCharacter   = "SYN0004"
	CodeUnterminatedString = "SYN0005"
	CodeMisplacedImport    = "SYN0006"
)
