package build

import (
	"lcc/generate"
	"lcc/irgen"
	"lcc/logging"
	"lcc/optimize"
	"lcc/syntax"
	"lcc/walk"
)

// phase is a single step of the pipeline.  Each phase fully consumes the
// result of the phases before it.
type phase struct {
	name string
	run  func(res *Result, src string) error
}

// pipeline returns the phases to run in order.  The analysis phases always
// run; full adds code generation and optimization.
func (c *Compiler) pipeline(full bool) []phase {
	phases := []phase{
		{"Lexing", c.lex},
		{"Parsing", c.parse},
		{"Checking", c.check},
	}

	if !full {
		return phases
	}

	phases = append(phases, phase{"Generating", c.generate})
	if c.profile.Optimize {
		phases = append(phases, phase{"Optimizing", c.optimize})
	}

	return phases
}

// runPhases runs each phase under its own progress spinner, stopping at the
// first error.  The spinner of a failed phase is stopped when the error is
// logged.
func (c *Compiler) runPhases(phases []phase, res *Result, src string) error {
	for _, p := range phases {
		logging.LogBeginPhase(p.name)

		if err := p.run(res, src); err != nil {
			return err
		}

		logging.LogEndPhase()
	}

	return nil
}

// -----------------------------------------------------------------------------

func (c *Compiler) lex(res *Result, src string) (err error) {
	res.Tokens, err = syntax.Tokenize(src)
	return
}

func (c *Compiler) parse(res *Result, _ string) (err error) {
	res.Program, err = syntax.NewParser(res.Tokens).Parse()
	return
}

func (c *Compiler) check(res *Result, _ string) (err error) {
	a := walk.NewAnalyzer()
	res.Symbols, err = a.Analyze(res.Program)
	res.Warnings = a.Warnings()
	return
}

func (c *Compiler) generate(res *Result, _ string) (err error) {
	g := generate.NewGenerator(res.Program, res.Symbols, generate.Options{
		Includes: c.profile.Includes,
		Newline:  c.profile.Newline,
	})

	if res.Output, err = g.Generate(); err != nil {
		return
	}

	if c.profile.EmitLLVM {
		ig := irgen.NewGenerator(res.Program, res.Symbols, irgen.Options{Newline: c.profile.Newline})
		res.LLVM, err = ig.Generate()
	}

	return
}

func (c *Compiler) optimize(res *Result, _ string) error {
	res.Optimized, res.Stats = optimize.OptimizeWithStats(res.Output.Lines())
	return nil
}
