package syntax_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"lcc/logging"
	"lcc/syntax"
	"lcc/typing"
)

func lexLine(line string) (*syntax.Sequence, error) {
	seq := syntax.NewSequence()
	err := syntax.NewLexer(seq).Analyze(line, 1)
	return seq, err
}

func expectLexicalError(err error, substr string) {
	Expect(err).To(HaveOccurred())
	Expect(logging.IsKind(err, logging.KindLexical)).To(BeTrue(), err.Error())
	Expect(err.Error()).To(ContainSubstring(substr))
}

var _ = Describe("Lexer", func() {
	It("should tokenize a small program", func() {
		seq, err := syntax.Tokenize("int x = 5;\nbegin writeln, x; end")

		Expect(err).NotTo(HaveOccurred())
		Expect(seq.Values()).To(Equal([]string{
			"int", "x", "=", "5", ";", "begin", "writeln", ",", "x", ";", "end",
		}))
	})

	It("should classify and type tokens", func() {
		seq, err := lexLine(`int x = 5; s = "hi"; b = 0hFF; ok = TRUE;`)
		Expect(err).NotTo(HaveOccurred())

		toks := seq.Tokens()
		Expect(toks[0].Class).To(Equal(syntax.ReservedWord))
		Expect(toks[0].Type).To(Equal(typing.None))
		Expect(toks[1].Class).To(Equal(syntax.Identifier))
		Expect(toks[3].Class).To(Equal(syntax.Constant))
		Expect(toks[3].Type).To(Equal(typing.Int))
		Expect(toks[7].Value).To(Equal(`"hi"`))
		Expect(toks[7].Type).To(Equal(typing.String))
		Expect(toks[11].Type).To(Equal(typing.Byte))
		Expect(toks[15].Value).To(Equal("Fh"))
		Expect(toks[15].Type).To(Equal(typing.Boolean))
	})

	It("should track 1-based columns past skipped whitespace", func() {
		seq, err := lexLine("   x  =   10;")
		Expect(err).NotTo(HaveOccurred())

		cols := []int{}
		for _, tok := range seq.Tokens() {
			cols = append(cols, tok.Col)
		}
		Expect(cols).To(Equal([]int{1, 4, 8, 10}))
	})

	It("should match keywords case-insensitively", func() {
		seq, err := lexLine("BEGIN WriteLn End")
		Expect(err).NotTo(HaveOccurred())

		for _, tok := range seq.Tokens() {
			Expect(tok.Class).To(Equal(syntax.ReservedWord))
		}
		Expect(seq.At(1).Kind).To(Equal(syntax.TOK_WRITELN))
	})

	It("should map false to 0h", func() {
		seq, err := lexLine("false")
		Expect(err).NotTo(HaveOccurred())
		Expect(seq.At(0).Value).To(Equal("0h"))
	})

	It("should not read a boolean prefix out of an identifier", func() {
		seq, err := lexLine("trueValue")
		Expect(err).NotTo(HaveOccurred())
		Expect(seq.Len()).To(Equal(1))
		Expect(seq.At(0).Class).To(Equal(syntax.Identifier))
		Expect(seq.At(0).Value).To(Equal("trueValue"))
	})

	It("should match operators greedily", func() {
		seq, err := lexLine("a<=b<>c>=d==e<f>g")
		Expect(err).NotTo(HaveOccurred())
		Expect(seq.Values()).To(Equal([]string{"a", "<=", "b", "<>", "c", ">=", "d", "==", "e", "<", "f", ">", "g"}))
	})

	It("should skip comments closed on the line", func() {
		seq, err := lexLine("x /* note */ = { other } 1;")
		Expect(err).NotTo(HaveOccurred())
		Expect(seq.Values()).To(Equal([]string{"x", "=", "1", ";"}))
	})

	It("should reject unclosed brace comments as invalid symbols", func() {
		_, err := lexLine("x = { open")
		expectLexicalError(err, "invalid symbol '{'")
	})

	It("should keep escaped quotes inside strings", func() {
		seq, err := lexLine(`"say \"hi\""`)
		Expect(err).NotTo(HaveOccurred())
		Expect(seq.At(0).Value).To(Equal(`"say \"hi\""`))
	})

	It("should report errors with line and column", func() {
		seq := syntax.NewSequence()
		err := syntax.NewLexer(seq).Analyze("x = 1 # 2;", 4)

		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(Equal("lexical error at line 4, column 7: invalid symbol '#'"))
	})

	Context("at literal boundaries", func() {
		It("should accept 32767", func() {
			seq, err := lexLine("32767")
			Expect(err).NotTo(HaveOccurred())
			Expect(seq.At(0).Type).To(Equal(typing.Int))
		})

		It("should reject 32768", func() {
			_, err := lexLine("32768")
			expectLexicalError(err, "out of range")
		})

		It("should reject integers that overflow the machine word", func() {
			_, err := lexLine("99999999999999999999999")
			expectLexicalError(err, "out of range")
		})

		It("should accept a 255 character string", func() {
			lit := `"` + strings.Repeat("a", 253) + `"`
			seq, err := lexLine(lit)
			Expect(err).NotTo(HaveOccurred())
			Expect(seq.At(0).Value).To(HaveLen(255))
		})

		It("should reject a 256 character string", func() {
			_, err := lexLine(`"` + strings.Repeat("a", 254) + `"`)
			expectLexicalError(err, "string literal too long")
		})

		It("should reject an unterminated string", func() {
			_, err := lexLine(`s = "abc`)
			expectLexicalError(err, "line break")
		})

		It("should accept a 255 character identifier", func() {
			_, err := lexLine(strings.Repeat("x", 255))
			Expect(err).NotTo(HaveOccurred())
		})

		It("should reject a 256 character identifier", func() {
			_, err := lexLine(strings.Repeat("x", 256))
			expectLexicalError(err, "identifier too long")
		})

		It("should accept one and two digit hex bytes", func() {
			seq, err := lexLine("0hA 0h1f")
			Expect(err).NotTo(HaveOccurred())
			Expect(seq.Values()).To(Equal([]string{"0hA", "0h1f"}))
		})

		It("should reject long or malformed hex bytes", func() {
			_, err := lexLine("0h123")
			expectLexicalError(err, "invalid hex byte '0h123'")

			_, err = lexLine("0hZZ")
			expectLexicalError(err, "invalid hex byte")

			_, err = lexLine("0h")
			expectLexicalError(err, "invalid hex byte")
		})
	})
})

var _ = Describe("Sequence", func() {
	It("should recognise reserved words in any case", func() {
		Expect(syntax.IsReservedWord("WHILE")).To(BeTrue())
		Expect(syntax.IsReservedWord("<>")).To(BeTrue())
		Expect(syntax.IsReservedWord("counter")).To(BeFalse())
	})

	It("should find the last known literal type", func() {
		seq, err := syntax.Tokenize("x = 5;\nx = \"s\";")
		Expect(err).NotTo(HaveOccurred())

		Expect(seq.LastKnownType(`"s"`)).To(Equal(typing.String))
		Expect(seq.LastKnownType("5")).To(Equal(typing.Int))
		Expect(seq.LastKnownType("x")).To(Equal(typing.None))
	})

	It("should return nil out of range", func() {
		Expect(syntax.NewSequence().At(0)).To(BeNil())
	})
})
