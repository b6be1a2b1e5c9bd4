package syntax

import (
	"lcc/logging"
	"lcc/typing"
)

// Token represents a single lexical token.  Tokens are never modified once the
// lexer has appended them to a sequence.
type Token struct {
	// The kind of the token.  This must be one of the enumerated token kinds.
	Kind int

	// Value is the lexeme.  String literals keep their quotes; boolean literals
	// are stored in their canonical `Fh`/`0h` form.
	Value string

	// Class is the lexical class of the token.
	Class TokenClass

	// Type is the type of a literal.  It is always None for reserved words and
	// identifiers: the types of names are resolved by semantic analysis.
	Type typing.PrimType

	// Line and Col are the 1-based position of the first character.
	Line, Col int

	// length is the number of source characters the token occupied.
	length int
}

// Position returns the text position covered by the token.
func (t *Token) Position() *logging.TextPosition {
	return logging.NewTextPosition(t.Line, t.Col, t.length)
}

// TokenClass is the lexical classification of a token.
type TokenClass int

// Enumeration of token classes.
const (
	ReservedWord TokenClass = iota
	Identifier
	Constant
)

func (tc TokenClass) String() string {
	switch tc {
	case ReservedWord:
		return "reserved word"
	case Identifier:
		return "identifier"
	default:
		return "constant"
	}
}

// Enumeration of token kinds.
const (
	TOK_FINAL = iota

	TOK_INT
	TOK_BYTE
	TOK_STRING
	TOK_BOOLEAN

	TOK_BEGIN
	TOK_END
	TOK_WHILE
	TOK_IF
	TOK_ELSE

	TOK_READLN
	TOK_WRITE
	TOK_WRITELN

	TOK_AND
	TOK_OR
	TOK_NOT

	TOK_PLUS
	TOK_MINUS
	TOK_STAR
	TOK_DIV

	TOK_EQ
	TOK_NEQ
	TOK_LT
	TOK_GT
	TOK_LTEQ
	TOK_GTEQ

	TOK_ASSIGN

	TOK_LPAREN
	TOK_RPAREN
	TOK_COMMA
	TOK_SEMI

	TOK_IDENT

	TOK_INTLIT
	TOK_BYTELIT
	TOK_STRINGLIT
	TOK_BOOLLIT

	TOK_EOF
)

// tokenKindNames is used to name the expected token in syntax errors.
var tokenKindNames = map[int]string{
	TOK_FINAL:   "final",
	TOK_INT:     "int",
	TOK_BYTE:    "byte",
	TOK_STRING:  "string",
	TOK_BOOLEAN: "boolean",
	TOK_BEGIN:   "begin",
	TOK_END:     "end",
	TOK_WHILE:   "while",
	TOK_IF:      "if",
	TOK_ELSE:    "else",
	TOK_READLN:  "readln",
	TOK_WRITE:   "write",
	TOK_WRITELN: "writeln",
	TOK_AND:     "and",
	TOK_OR:      "or",
	TOK_NOT:     "not",

	TOK_PLUS:  "+",
	TOK_MINUS: "-",
	TOK_STAR:  "*",
	TOK_DIV:   "/",
	TOK_EQ:    "==",
	TOK_NEQ:   "<>",
	TOK_LT:    "<",
	TOK_GT:    ">",
	TOK_LTEQ:  "<=",
	TOK_GTEQ:  ">=",

	TOK_ASSIGN: "=",
	TOK_LPAREN: "(",
	TOK_RPAREN: ")",
	TOK_COMMA:  ",",
	TOK_SEMI:   ";",

	TOK_IDENT:     "identifier",
	TOK_INTLIT:    "integer literal",
	TOK_BYTELIT:   "byte literal",
	TOK_STRINGLIT: "string literal",
	TOK_BOOLLIT:   "boolean literal",
	TOK_EOF:       "end of file",
}

// KindName returns the display name of a token kind.
func KindName(kind int) string {
	return tokenKindNames[kind]
}
