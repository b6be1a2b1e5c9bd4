package syntax_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"lcc/ast"
	"lcc/logging"
	"lcc/syntax"
	"lcc/typing"
)

func parse(src string) (*ast.Program, error) {
	seq, err := syntax.Tokenize(src)
	Expect(err).NotTo(HaveOccurred())

	return syntax.NewParser(seq).Parse()
}

func expectSyntaxError(src, substr string) {
	_, err := parse(src)

	Expect(err).To(HaveOccurred())
	Expect(logging.IsKind(err, logging.KindSyntax)).To(BeTrue(), err.Error())
	Expect(err.Error()).To(ContainSubstring(substr))
}

var _ = Describe("Parser", func() {
	It("should parse declarations and the main block", func() {
		prog, err := parse(`
			int x = 5;
			string s;
			final LIMIT = 10;
			byte b = 0h0F;
			begin
				writeln, "x = ", x;
			end`)
		Expect(err).NotTo(HaveOccurred())

		Expect(prog.Decls).To(HaveLen(4))

		x := prog.Decls[0].(*ast.VarDecl)
		Expect(x.DeclType).To(Equal(typing.Int))
		Expect(x.Name.Name).To(Equal("x"))
		Expect(x.Init.(*ast.Literal).Value).To(Equal("5"))

		Expect(prog.Decls[1].(*ast.VarDecl).Init).To(BeNil())

		limit := prog.Decls[2].(*ast.ConstDecl)
		Expect(limit.Name.Name).To(Equal("LIMIT"))

		Expect(prog.Body.Commands).To(HaveLen(1))
		w := prog.Body.Commands[0].(*ast.Write)
		Expect(w.Newline).To(BeTrue())
		Expect(w.Args).To(HaveLen(2))
	})

	It("should parse every command form", func() {
		prog, err := parse(`
			int n;
			begin
				readln, n;
				while n > 0 begin
					n = n - 1;
				end
				if not n == 0 begin
					write, n;
				end
				begin
					n = (n + 2) * 3;
				end
			end`)
		Expect(err).NotTo(HaveOccurred())

		cmds := prog.Body.Commands
		Expect(cmds).To(HaveLen(4))
		Expect(cmds[0]).To(BeAssignableToTypeOf(&ast.Read{}))
		Expect(cmds[1]).To(BeAssignableToTypeOf(&ast.While{}))
		Expect(cmds[3]).To(BeAssignableToTypeOf(&ast.Block{}))

		ifCmd := cmds[2].(*ast.If)
		not, ok := ifCmd.Cond.(*ast.Not)
		Expect(ok).To(BeTrue())
		Expect(not.Operand.(*ast.BinaryOp).Op.Name).To(Equal("=="))
	})

	It("should respect arithmetic precedence and associativity", func() {
		prog, err := parse("int x; begin x = 1 - 2 - 3 * 4; end")
		Expect(err).NotTo(HaveOccurred())

		value := prog.Body.Commands[0].(*ast.Assign).Value.(*ast.BinaryOp)
		Expect(value.Op.Name).To(Equal("-"))
		Expect(value.Rhs.(*ast.BinaryOp).Op.Name).To(Equal("*"))
		Expect(value.Lhs.(*ast.BinaryOp).Op.Name).To(Equal("-"))
	})

	It("should attach an else to the preceding if", func() {
		prog, err := parse("boolean ok; begin if ok begin end else begin writeln, 1; end end")
		Expect(err).NotTo(HaveOccurred())

		Expect(prog.Body.Commands).To(HaveLen(1))
		Expect(prog.Body.Commands[0].(*ast.If).Else).NotTo(BeNil())
	})

	It("should keep a dangling else as its own command", func() {
		prog, err := parse("begin else begin end end")
		Expect(err).NotTo(HaveOccurred())
		Expect(prog.Body.Commands[0]).To(BeAssignableToTypeOf(&ast.Else{}))
	})

	It("should lower-case logical operator names", func() {
		prog, err := parse("boolean a; boolean b; begin if a AND b begin end end")
		Expect(err).NotTo(HaveOccurred())
		Expect(prog.Body.Commands[0].(*ast.If).Cond.(*ast.BinaryOp).Op.Name).To(Equal("and"))
	})

	It("should record positions", func() {
		prog, err := parse("int x;\nbegin\n  x = 1;\nend")
		Expect(err).NotTo(HaveOccurred())

		pos := prog.Body.Commands[0].Position()
		Expect(pos.StartLn).To(Equal(3))
		Expect(pos.StartCol).To(Equal(1))
	})

	Context("on malformed input", func() {
		It("should reject logical operators in assignments", func() {
			expectSyntaxError("int x; begin x = 5 == 3; end", "logical expression not allowed in assignment")
		})

		It("should reject logical operators inside parenthesized assignments", func() {
			expectSyntaxError("int x; begin x = (5 < 3); end", "logical expression not allowed in assignment")
		})

		It("should report what was expected and found", func() {
			expectSyntaxError("int x begin end", "expected ;, found `begin`")
		})

		It("should reject a missing block", func() {
			expectSyntaxError("int x;", "unexpected end of file")
		})

		It("should reject an unterminated block", func() {
			expectSyntaxError("begin writeln, 1;", "unexpected end of file: expected command")
		})

		It("should reject tokens after the final end", func() {
			expectSyntaxError("begin end x", "expected end of file, found identifier `x`")
		})

		It("should reject a write without arguments", func() {
			expectSyntaxError("begin write; end", "expected ,")
		})

		It("should reject expressions in declarations", func() {
			expectSyntaxError("int x = 1 + 2; begin end", "expected ;")
		})

		It("should reject multiple names in one declaration", func() {
			expectSyntaxError("int a, b; begin end", "expected ;, found `,`")
		})

		It("should reject a final without initializer", func() {
			expectSyntaxError("final X; begin end", "expected =")
		})

		It("should report the position of the offending token", func() {
			_, err := parse("begin\n  x = ;\nend")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(HavePrefix("syntax error at line 2, column 5"))
		})
	})
})
