package syntax

import (
	"strconv"
	"strings"
	"unicode"

	"lcc/common"
	"lcc/logging"
	"lcc/typing"
)

// Lexer is responsible for tokenizing source lines into a token sequence.
type Lexer struct {
	seq     *Sequence
	tokBuff *strings.Builder

	// line is the line currently being tokenized with its leading whitespace
	// removed; pos indexes into it.
	line []rune
	pos  int

	lineNumber int
	startPos   int
}

// NewLexer creates a new lexer appending to the given sequence.
func NewLexer(seq *Sequence) *Lexer {
	return &Lexer{
		seq:     seq,
		tokBuff: &strings.Builder{},
	}
}

// Tokenize splits src into lines and tokenizes them in order into a new
// sequence.  Trailing whitespace is trimmed from each line.
func Tokenize(src string) (*Sequence, error) {
	seq := NewSequence()
	l := NewLexer(seq)

	for i, line := range strings.Split(src, "\n") {
		if err := l.Analyze(strings.TrimRightFunc(line, unicode.IsSpace), i+1); err != nil {
			return nil, err
		}
	}

	return seq, nil
}

// Analyze tokenizes a single line and appends its tokens to the sequence.  The
// first lexical error stops tokenization.
func (l *Lexer) Analyze(line string, lineNumber int) error {
	l.line = []rune(strings.TrimLeftFunc(line, unicode.IsSpace))
	l.pos = 0
	l.lineNumber = lineNumber
	l.tokBuff.Reset()

	for {
		c := l.peek()
		if c == -1 {
			return nil
		}

		var err error
		switch {
		case unicode.IsSpace(c):
			l.skip()
		case c == '/' && l.skipBlockComment():
		case c == '{' && l.skipBraceComment():
		case c == '"':
			err = l.lexStringLit()
		case l.atBoolLit():
			l.lexBoolLit()
		case c == '0' && l.peekAt(1) == 'h':
			err = l.lexHexLit()
		case isDecimalDigit(c):
			err = l.lexIntLit()
		case isFirstIdentChar(c):
			err = l.lexIdentOrKeyword()
		default:
			err = l.lexPunctOrOper()
		}

		if err != nil {
			return err
		}
	}
}

// -----------------------------------------------------------------------------

// symbolPatterns maps symbol strings (patterns) to their punctuation/operator
// token kind.
var symbolPatterns = map[string]int{
	"+": TOK_PLUS,
	"-": TOK_MINUS,
	"*": TOK_STAR,
	"/": TOK_DIV,

	"==": TOK_EQ,
	"<>": TOK_NEQ,
	"<":  TOK_LT,
	"<=": TOK_LTEQ,
	">":  TOK_GT,
	">=": TOK_GTEQ,

	"=": TOK_ASSIGN,

	"(": TOK_LPAREN,
	")": TOK_RPAREN,
	",": TOK_COMMA,
	";": TOK_SEMI,
}

// lexPunctOrOper lexes a punctuation or operator symbol.  Operators are matched
// greedily so `<=` is never split into `<` and `=`.
func (l *Lexer) lexPunctOrOper() error {
	l.mark()
	c := l.eat()

	kind, ok := symbolPatterns[string(c)]
	if !ok {
		return logging.Raise(logging.KindLexical, l.getPosition(), "invalid symbol '%c'", c)
	}

	if next := l.peek(); next != -1 {
		if _kind, ok := symbolPatterns[string(c)+string(next)]; ok {
			l.eat()
			kind = _kind
		}
	}

	l.makeToken(kind, ReservedWord, typing.None)
	return nil
}

// -----------------------------------------------------------------------------

// keywordPatterns maps keyword strings (patterns) to their keyword token kind.
// Keywords are matched case-insensitively.
var keywordPatterns = map[string]int{
	"final":   TOK_FINAL,
	"int":     TOK_INT,
	"byte":    TOK_BYTE,
	"string":  TOK_STRING,
	"boolean": TOK_BOOLEAN,

	"begin": TOK_BEGIN,
	"end":   TOK_END,
	"while": TOK_WHILE,
	"if":    TOK_IF,
	"else":  TOK_ELSE,

	"readln":  TOK_READLN,
	"write":   TOK_WRITE,
	"writeln": TOK_WRITELN,

	"and": TOK_AND,
	"or":  TOK_OR,
	"not": TOK_NOT,
}

// lexIdentOrKeyword lexes an identifier or a keyword.
func (l *Lexer) lexIdentOrKeyword() error {
	l.mark()
	l.eat()

	for c := l.peek(); isIdentChar(c); c = l.peek() {
		l.eat()
	}

	if n := l.pos - l.startPos; n > common.MaxLexemeLength {
		return logging.Raise(
			logging.KindLexical,
			l.getPosition(),
			"identifier too long: %d characters (limit is %d)",
			n,
			common.MaxLexemeLength,
		)
	}

	if kind, ok := keywordPatterns[strings.ToLower(l.tokBuff.String())]; ok {
		l.makeToken(kind, ReservedWord, typing.None)
	} else {
		l.makeToken(TOK_IDENT, Identifier, typing.None)
	}

	return nil
}

// -----------------------------------------------------------------------------

// atBoolLit returns whether the lexer is positioned at a boolean literal: the
// word `true` or `false` in any case not followed by more identifier characters.
func (l *Lexer) atBoolLit() bool {
	for _, word := range []string{"true", "false"} {
		n := len(word)
		if l.pos+n <= len(l.line) &&
			strings.EqualFold(string(l.line[l.pos:l.pos+n]), word) &&
			!isIdentChar(l.peekAt(n)) {
			return true
		}
	}

	return false
}

// lexBoolLit lexes a boolean literal into its canonical `Fh`/`0h` lexeme.
func (l *Lexer) lexBoolLit() {
	l.mark()
	for c := l.peek(); isIdentChar(c); c = l.peek() {
		l.skip()
	}

	word := strings.ToLower(string(l.line[l.startPos:l.pos]))
	if word == "true" {
		l.tokBuff.WriteString("Fh")
	} else {
		l.tokBuff.WriteString("0h")
	}

	l.makeToken(TOK_BOOLLIT, Constant, typing.Boolean)
}

// lexHexLit lexes a hex byte literal: `0h` followed by one or two hex digits.
func (l *Lexer) lexHexLit() error {
	l.mark()
	l.eat()
	l.eat()

	// the whole alphanumeric run belongs to the literal
	for c := l.peek(); isDecimalDigit(c) || isLetter(c); c = l.peek() {
		l.eat()
	}

	lexeme := l.tokBuff.String()
	digits := lexeme[2:]
	if len(digits) < 1 || len(digits) > 2 || strings.IndexFunc(digits, func(c rune) bool { return !isHexDigit(c) }) != -1 {
		return logging.Raise(logging.KindLexical, l.getPosition(), "invalid hex byte '%s'", lexeme)
	}

	l.makeToken(TOK_BYTELIT, Constant, typing.Byte)
	return nil
}

// lexIntLit lexes a decimal integer literal.  Values that do not fit in a
// signed 16-bit integer are rejected.
func (l *Lexer) lexIntLit() error {
	l.mark()

	for c := l.peek(); isDecimalDigit(c); c = l.peek() {
		l.eat()
	}

	lexeme := l.tokBuff.String()
	if value, err := strconv.ParseInt(lexeme, 10, 64); err != nil || value > 32767 {
		return logging.Raise(
			logging.KindLexical,
			l.getPosition(),
			"integer '%s' out of range [-32768, 32767]",
			lexeme,
		)
	}

	l.makeToken(TOK_INTLIT, Constant, typing.Int)
	return nil
}

// lexStringLit lexes a string literal.  The lexeme keeps its quotes and any
// escape sequences exactly as written.
func (l *Lexer) lexStringLit() error {
	l.mark()
	l.eat()

	for {
		switch l.peek() {
		case -1:
			return logging.Raise(logging.KindLexical, l.getPosition(), "string literal contains a line break")
		case '"':
			l.eat()

			if n := l.pos - l.startPos; n > common.MaxLexemeLength {
				return logging.Raise(
					logging.KindLexical,
					l.getPosition(),
					"string literal too long: %d characters (limit is %d)",
					n,
					common.MaxLexemeLength,
				)
			}

			l.makeToken(TOK_STRINGLIT, Constant, typing.String)
			return nil
		case '\\':
			l.eat()
			if l.peek() == -1 {
				return logging.Raise(logging.KindLexical, l.getPosition(), "string literal contains a line break")
			}

			l.eat()
		default:
			l.eat()
		}
	}
}

// -----------------------------------------------------------------------------

// skipBlockComment skips a `/* ... */` comment closed on the current line.  It
// returns false and consumes nothing if there is no such comment.
func (l *Lexer) skipBlockComment() bool {
	if l.peekAt(1) != '*' {
		return false
	}

	for i := l.pos + 2; i+1 < len(l.line); i++ {
		if l.line[i] == '*' && l.line[i+1] == '/' {
			l.pos = i + 2
			return true
		}
	}

	return false
}

// skipBraceComment skips a `{ ... }` comment closed on the current line.
func (l *Lexer) skipBraceComment() bool {
	for i := l.pos + 1; i < len(l.line); i++ {
		if l.line[i] == '}' {
			l.pos = i + 1
			return true
		}
	}

	return false
}

// -----------------------------------------------------------------------------

// mark sets the lexer's stored start position to its current position.
func (l *Lexer) mark() {
	l.startPos = l.pos
}

// makeToken produces a new token of the given kind from the lexer's state,
// appends it to the sequence and resets the lexer to begin building the next
// token.
func (l *Lexer) makeToken(kind int, class TokenClass, typ typing.PrimType) {
	value := l.tokBuff.String()
	l.tokBuff.Reset()

	l.seq.Append(&Token{
		Kind:   kind,
		Value:  value,
		Class:  class,
		Type:   typ,
		Line:   l.lineNumber,
		Col:    l.startPos + 1,
		length: l.pos - l.startPos,
	})
}

// getPosition calculates a text position based on the lexer's current state.
func (l *Lexer) getPosition() *logging.TextPosition {
	length := l.pos - l.startPos
	if length == 0 {
		length = 1
	}

	return logging.NewTextPosition(l.lineNumber, l.startPos+1, length)
}

// -----------------------------------------------------------------------------

// eat moves the lexer forward one rune and writes the rune to the token buffer.
// If the line has ended, -1 is returned.
func (l *Lexer) eat() rune {
	c := l.skip()
	if c != -1 {
		l.tokBuff.WriteRune(c)
	}

	return c
}

// skip moves the lexer forward one rune but does not write the rune to the
// token buffer.
func (l *Lexer) skip() rune {
	if l.pos >= len(l.line) {
		return -1
	}

	c := l.line[l.pos]
	l.pos++
	return c
}

// peek returns the next rune without moving the lexer forward.
func (l *Lexer) peek() rune {
	return l.peekAt(0)
}

// peekAt returns the rune n places ahead of the lexer.
func (l *Lexer) peekAt(n int) rune {
	if l.pos+n >= len(l.line) {
		return -1
	}

	return l.line[l.pos+n]
}

// -----------------------------------------------------------------------------

// isDecimalDigit returns whether c is a decimal digit.
func isDecimalDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

// isHexDigit returns whether c is a hexadecimal digit.
func isHexDigit(c rune) bool {
	return isDecimalDigit(c) || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// isLetter returns whether c is an ASCII letter.
func isLetter(c rune) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// isFirstIdentChar returns whether c could be the first rune of an identifier.
func isFirstIdentChar(c rune) bool {
	return isLetter(c) || c == '_'
}

// isIdentChar returns whether c could continue an identifier.
func isIdentChar(c rune) bool {
	return isFirstIdentChar(c) || isDecimalDigit(c)
}
