// Package parser turns Ballerina-style source into a lossless syntax tree.
//
// # Overview
//
// The lexer attaches trivia to tokens: leading trivia is everything before a
// token that the previous token did not claim, trailing trivia is same-line
// whitespace and comments up to and including the first newline. The
// parser is a recursive-descent parser over that token stream that builds
// internal nodes through a syntax.Builder.
//
//	┌─────────────┐     ┌─────────────┐     ┌──────────────────┐
//	│   Input     │────▶│   Lexer     │────▶│      Parser      │
//	│  (bytes)    │     │  (tokens +  │     │ (syntax.Builder) │
//	└─────────────┘     │   trivia)   │     └──────────────────┘
//	                    └─────────────┘              │
//	                                                 ▼
//	                                       ┌──────────────────┐
//	                                       │ syntax.SyntaxTree│
//	                                       └──────────────────┘
//
// # Entry points
//
//	tree, err := parser.ParseModule(r, parser.WithFile("main.bal")).Finish()
//	expr, err := parser.ParseExpression(strings.NewReader("a + b * c")).Finish()
//	tree := parser.Parse(src)
//
// # Error recovery
//
// Parsing never fails on malformed input. Where the grammar requires a token
// the source lacks, a zero-width missing token carrying a diagnostic is
// inserted. Tokens that fit nowhere are skipped: their text becomes an
// invalid-token trivia piece in the leading trivia of the next token, so the
// tree still reproduces the input byte for byte.
//
// # Grammar
//
//	module      = import* member* EOF
//	import      = "import" [org "/"] name ("." name)* ["as" name] ";"
//	member      = function | module-var
//	function    = ["public"] "function" name "(" params ")" ["returns" type] block
//	module-var  = ["public"] ["final"] type name ["=" expr] ";"
//	type        = (builtin | name [":" name]) "?"*
//	statement   = block | if | while | return | local-var | assignment
//	            | compound-assignment | expr ";"
//	expr        = precedence climbing over || && == != < <= > >= + - * / %
//	unary       = ("-" | "+" | "!") unary | postfix
//	postfix     = primary ("(" args ")" | "." name)*
package parser
