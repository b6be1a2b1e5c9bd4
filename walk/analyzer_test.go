package walk_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"lcc/ast"
	"lcc/logging"
	"lcc/syntax"
	"lcc/typing"
	"lcc/walk"
)

func parse(src string) *ast.Program {
	seq, err := syntax.Tokenize(src)
	Expect(err).NotTo(HaveOccurred())

	prog, err := syntax.NewParser(seq).Parse()
	Expect(err).NotTo(HaveOccurred())

	return prog
}

func analyze(src string) (*ast.Program, *walk.SymbolTable, error) {
	prog := parse(src)
	symbols, err := walk.NewAnalyzer().Analyze(prog)
	return prog, symbols, err
}

func expectSemanticError(src, substr string) {
	_, _, err := analyze(src)

	Expect(err).To(HaveOccurred())
	Expect(logging.IsKind(err, logging.KindSemantic)).To(BeTrue(), err.Error())
	Expect(err.Error()).To(ContainSubstring(substr))
}

var _ = Describe("Analyzer", func() {
	It("should type a declared variable", func() {
		_, symbols, err := analyze("int x = 5; begin writeln, x; end")
		Expect(err).NotTo(HaveOccurred())

		sym, ok := symbols.Lookup("x")
		Expect(ok).To(BeTrue())
		Expect(sym.Type).To(Equal(typing.Int))
		Expect(sym.IsConstant).To(BeFalse())
		Expect(sym.Value.Value).To(Equal("5"))
	})

	It("should infer the type of constants from their initializer", func() {
		_, symbols, err := analyze(`final GREETING = "hi"; final ON = true; final B = 0h1; begin end`)
		Expect(err).NotTo(HaveOccurred())

		for name, typ := range map[string]typing.PrimType{
			"GREETING": typing.String,
			"ON":       typing.Boolean,
			"B":        typing.Byte,
		} {
			sym, ok := symbols.Lookup(name)
			Expect(ok).To(BeTrue())
			Expect(sym.IsConstant).To(BeTrue())
			Expect(sym.Type).To(Equal(typ))
		}
	})

	It("should resolve identifier initializers through earlier declarations", func() {
		_, symbols, err := analyze("final MAX = 10; int limit = MAX; begin end")
		Expect(err).NotTo(HaveOccurred())

		sym, _ := symbols.Lookup("limit")
		Expect(sym.Value.Value).To(Equal("10"))
	})

	It("should compare names case-insensitively", func() {
		_, _, err := analyze("int Count; begin count = COUNT + 1; end")
		Expect(err).NotTo(HaveOccurred())
	})

	It("should let the last declaration of a name govern", func() {
		a := walk.NewAnalyzer()
		symbols, err := a.Analyze(parse(`int x; string x; begin x = "s"; end`))
		Expect(err).NotTo(HaveOccurred())

		Expect(symbols.Len()).To(Equal(1))
		sym, _ := symbols.Lookup("x")
		Expect(sym.Type).To(Equal(typing.String))
		Expect(a.Warnings()).To(HaveLen(1))
		Expect(a.Warnings()[0].Message).To(ContainSubstring("redeclared"))
	})

	It("should annotate every expression with a type", func() {
		prog, _, err := analyze(`
			int a; int b; boolean done; byte flag = 0h1;
			begin
				a = (a + b) * 2;
				done = not done;
				while not a >= b begin
					if done and (a == b) begin writeln, a, flag; end
					else begin readln, b; end
				end
			end`)
		Expect(err).NotTo(HaveOccurred())

		ast.InspectProgram(prog, func(node ast.Node) bool {
			if expr, ok := node.(ast.Expr); ok {
				Expect(expr.Type()).NotTo(Equal(typing.None), "untyped expression at line %d", expr.Position().StartLn)
			}

			return true
		})
	})

	It("should yield boolean for comparisons and int for arithmetic", func() {
		prog, _, err := analyze("int a; begin if a + 1 < 3 begin end end")
		Expect(err).NotTo(HaveOccurred())

		cond := prog.Body.Commands[0].(*ast.If).Cond.(*ast.BinaryOp)
		Expect(cond.Type()).To(Equal(typing.Boolean))
		Expect(cond.Lhs.Type()).To(Equal(typing.Int))
	})

	Context("on invalid programs", func() {
		It("should reject mismatched assignments", func() {
			expectSemanticError("int x = 1; begin x = true; end", "assignment type mismatch: expected int, found boolean")
		})

		It("should report a parenthesized operand as an assignment mismatch", func() {
			expectSemanticError("int x = 1; begin x = (true); end", "assignment type mismatch: expected int, found boolean")
			expectSemanticError("int x; string s; begin x = ((s)); end", "assignment type mismatch: expected int, found string")
		})

		It("should reject mismatched initializers", func() {
			expectSemanticError(`int x = "five"; begin end`, "`x` is declared int, found string")
		})

		It("should reject undeclared names in commands", func() {
			expectSemanticError("begin writeln, y; end", "`y` not declared")
		})

		It("should reject initializers naming later declarations", func() {
			expectSemanticError("int a = b; int b; begin end", "`b` not declared")
		})

		It("should reject assignment to constants", func() {
			expectSemanticError("final K = 1; begin K = 2; end", "assignment to constant `K`")
		})

		It("should reject reading into constants", func() {
			expectSemanticError("final K = 1; begin readln, K; end", "assignment to constant")
		})

		It("should reject arithmetic on non-integers", func() {
			expectSemanticError("int x; boolean b; begin x = b + 1; end", "expected int, found boolean")
		})

		It("should reject expressions of the wrong type", func() {
			expectSemanticError("boolean b; begin b = 1 + 2; end", "invalid expression type")
		})

		It("should reject mixed comparisons", func() {
			expectSemanticError("int x; boolean b; begin if x == b begin end end", "bad comparison")
		})

		It("should reject comparisons of strings", func() {
			expectSemanticError(`string s; begin if s == s begin end end`, "bad comparison")
		})

		It("should reject non-boolean conditions", func() {
			expectSemanticError("int x; begin while x begin end end", "expected boolean, found int")
		})

		It("should reject not on integers", func() {
			expectSemanticError("int x; begin if not x begin end end", "expected boolean, found int")
		})

		It("should reject a dangling else", func() {
			expectSemanticError("begin else begin end end", "else without if")
		})

		It("should report the position of the offending token", func() {
			_, _, err := analyze("int x;\nbegin\n  x = y;\nend")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(Equal("semantic error at line 3, column 5: `y` not declared"))
		})
	})
})
