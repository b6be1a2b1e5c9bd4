package logging_test

import (
	"errors"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"lcc/logging"
)

var _ = Describe("CompileError", func() {
	It("should format the kind and position", func() {
		err := logging.Raise(logging.KindLexical, logging.NewTextPosition(3, 7, 2), "invalid symbol '%s'", "#")

		Expect(err.Error()).To(Equal("lexical error at line 3, column 7: invalid symbol '#'"))
	})

	It("should omit the position when there is none", func() {
		err := logging.RaiseICE("missing type for %s", "x")

		Expect(err.Error()).To(Equal("internal error: missing type for x"))
		Expect(err.Kind).To(Equal(logging.KindInternal))
	})

	It("should match kinds through wrapping", func() {
		var err error = logging.Raise(logging.KindSemantic, nil, "boom")
		wrapped := fmt.Errorf("checking: %w", err)

		Expect(logging.IsKind(wrapped, logging.KindSemantic)).To(BeTrue())
		Expect(logging.IsKind(wrapped, logging.KindSyntax)).To(BeFalse())
		Expect(logging.IsKind(errors.New("plain"), logging.KindSemantic)).To(BeFalse())
	})

	Context("when recovering panics", func() {
		run := func(f func()) (err error) {
			defer logging.Catch(&err)
			f()
			return nil
		}

		It("should convert a raised compile error", func() {
			err := run(func() {
				panic(logging.Raise(logging.KindSyntax, nil, "expected %s", "end"))
			})

			Expect(err).To(HaveOccurred())
			Expect(logging.IsKind(err, logging.KindSyntax)).To(BeTrue())
		})

		It("should pass through normal returns", func() {
			Expect(run(func() {})).NotTo(HaveOccurred())
		})

		It("should re-raise foreign panics", func() {
			Expect(func() { _ = run(func() { panic("other") }) }).To(PanicWith("other"))
		})
	})

	It("should span two positions", func() {
		pos := logging.TextPositionFromRange(logging.NewTextPosition(1, 2, 3), logging.NewTextPosition(4, 5, 6))

		Expect(*pos).To(Equal(logging.TextPosition{StartLn: 1, StartCol: 2, EndLn: 4, EndCol: 11}))
	})
})

var _ = Describe("Log levels", func() {
	It("should resolve the known names", func() {
		for name, want := range map[string]int{
			"silent":  logging.LogLevelSilent,
			"error":   logging.LogLevelError,
			"warn":    logging.LogLevelWarning,
			"verbose": logging.LogLevelVerbose,
		} {
			got, ok := logging.LogLevelFromName(name)
			Expect(ok).To(BeTrue())
			Expect(got).To(Equal(want))
		}
	})

	It("should reject unknown names", func() {
		_, ok := logging.LogLevelFromName("loud")
		Expect(ok).To(BeFalse())
	})

	It("should count errors and warnings while silent", func() {
		logging.Initialize("silent")
		ctx := &logging.LogContext{FilePath: "a.lc"}

		logging.LogCompileWarning(ctx, logging.Raise(logging.KindSemantic, nil, "w"))
		Expect(logging.ShouldProceed()).To(BeTrue())

		logging.LogCompileError(ctx, logging.Raise(logging.KindSemantic, nil, "e"))
		Expect(logging.ShouldProceed()).To(BeFalse())
		Expect(logging.ErrorCount()).To(Equal(1))
		Expect(logging.WarningCount()).To(Equal(1))
	})
})
