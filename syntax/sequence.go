package syntax

import (
	"strings"

	"lcc/typing"
)

// reservedWords is the fixed reserved word set of the language.  Lookups are
// case-insensitive.
var reservedWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"final", "int", "byte", "string", "boolean",
		"while", "if", "else", "and", "or", "not",
		"begin", "end", "readln", "write", "writeln", "true", "false",
		"==", "=", "(", ")", "<", ">", "<>", ">=", "<=", ",", "+", "-", "*", "/", ";",
	} {
		reservedWords[w] = struct{}{}
	}
}

// IsReservedWord reports whether lexeme belongs to the reserved word set.
func IsReservedWord(lexeme string) bool {
	_, ok := reservedWords[strings.ToLower(lexeme)]
	return ok
}

// Sequence is the ordered list of tokens of one compilation.  Tokens can only
// be appended: they are never reordered or removed.
type Sequence struct {
	tokens []*Token
}

// NewSequence creates a new, empty token sequence.
func NewSequence() *Sequence {
	return &Sequence{}
}

// Append adds a token to the end of the sequence.
func (s *Sequence) Append(tok *Token) {
	s.tokens = append(s.tokens, tok)
}

// At returns the token at index i or nil if i is out of range.
func (s *Sequence) At(i int) *Token {
	if i < 0 || i >= len(s.tokens) {
		return nil
	}

	return s.tokens[i]
}

// Len returns the number of tokens in the sequence.
func (s *Sequence) Len() int {
	return len(s.tokens)
}

// Tokens returns a copy of the token list.
func (s *Sequence) Tokens() []*Token {
	toks := make([]*Token, len(s.tokens))
	copy(toks, s.tokens)
	return toks
}

// Values returns the lexemes of all tokens in order.
func (s *Sequence) Values() []string {
	values := make([]string, len(s.tokens))
	for i, tok := range s.tokens {
		values[i] = tok.Value
	}

	return values
}

// LastKnownType returns the type of the latest token whose lexeme equals name
// (case-insensitively) and whose type is known.  It returns None if there is no
// such token.
func (s *Sequence) LastKnownType(name string) typing.PrimType {
	for i := len(s.tokens) - 1; i >= 0; i-- {
		tok := s.tokens[i]
		if tok.Type != typing.None && strings.EqualFold(tok.Value, name) {
			return tok.Type
		}
	}

	return typing.None
}
