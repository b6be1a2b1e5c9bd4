package syntax

import (
	"fmt"

	"lcc/ast"
	"lcc/logging"
)

// NOTE: All parsing functions (that are not utility/API functions) are
// commented with the EBNF notation of the grammar they parse as well as any
// semantic actions they perform during parsing.

// Parser is a recursive descent parser over a token sequence.  It builds the
// syntax tree of the program but performs no type checking.  All parsing
// functions assume that they begin with the parser centered on the first token
// of their production and must consume all tokens (including the last) of their
// production, leaving the parser on the next token.  Syntax errors are raised
// by panicking and are recovered by `Parse`.
type Parser struct {
	seq *Sequence

	// idx is the index of tok in the sequence.
	idx int

	// tok is the current token the parser is positioned on.
	tok *Token

	// lookbehind is the token the parser was positioned on before tok.
	lookbehind *Token
}

// NewParser creates a new parser over the given sequence.
func NewParser(seq *Sequence) *Parser {
	return &Parser{seq: seq}
}

// Parse parses the whole sequence as a program.  The first syntax error stops
// parsing and is returned.
func (p *Parser) Parse() (prog *ast.Program, err error) {
	defer logging.Catch(&err)

	p.idx = -1
	p.next()

	prog = p.parseProgram()

	if !p.got(TOK_EOF) {
		p.reject("end of file")
	}

	return prog, nil
}

// -----------------------------------------------------------------------------

// next moves the parser forward one token.  Past the end of the sequence, the
// parser sits on an EOF token positioned at the last token.
func (p *Parser) next() {
	p.lookbehind = p.tok
	p.idx++

	if tok := p.seq.At(p.idx); tok != nil {
		p.tok = tok
		return
	}

	eof := &Token{Kind: TOK_EOF, Line: 1, Col: 1, length: 1}
	if last := p.seq.At(p.seq.Len() - 1); last != nil {
		eof.Line, eof.Col, eof.length = last.Line, last.Col, last.length
	}

	p.tok = eof
}

// got returns true if the parser is on a token of a given kind.
func (p *Parser) got(kind int) bool {
	return p.tok.Kind == kind
}

// gotOneOf returns if the parser's current token kind is one of given kinds.
func (p *Parser) gotOneOf(kinds ...int) bool {
	for _, kind := range kinds {
		if p.tok.Kind == kind {
			return true
		}
	}

	return false
}

// want asserts that the parser is on a token of the given kind, moves the
// parser forward, and returns the matched token.
func (p *Parser) want(kind int) *Token {
	if !p.got(kind) {
		p.reject(KindName(kind))
	}

	p.next()
	return p.lookbehind
}

// wantOneOf is the multi-kind form of want.  expected names the whole set in the
// error message.
func (p *Parser) wantOneOf(expected string, kinds ...int) *Token {
	if !p.gotOneOf(kinds...) {
		p.reject(expected)
	}

	p.next()
	return p.lookbehind
}

// -----------------------------------------------------------------------------

// reject raises an expected-versus-found syntax error on the current token.
func (p *Parser) reject(expected string) {
	if p.got(TOK_EOF) {
		p.rejectWithMsg("unexpected end of file: expected %s", expected)
	}

	p.rejectWithMsg("expected %s, found %s", expected, describe(p.tok))
}

// rejectWithMsg raises a syntax error with a specific message on the current
// token.
func (p *Parser) rejectWithMsg(msg string, a ...interface{}) {
	panic(logging.Raise(logging.KindSyntax, p.tok.Position(), msg, a...))
}

// describe renders a token for an error message.
func describe(tok *Token) string {
	switch tok.Kind {
	case TOK_EOF:
		return "end of file"
	case TOK_IDENT:
		return fmt.Sprintf("identifier `%s`", tok.Value)
	case TOK_INTLIT, TOK_BYTELIT, TOK_STRINGLIT, TOK_BOOLLIT:
		return fmt.Sprintf("constant `%s`", tok.Value)
	default:
		return fmt.Sprintf("`%s`", tok.Value)
	}
}
