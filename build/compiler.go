package build

import (
	"errors"
	"fmt"
	"path/filepath"

	"lcc/ast"
	"lcc/config"
	"lcc/generate"
	"lcc/logging"
	"lcc/optimize"
	"lcc/syntax"
	"lcc/walk"

	"github.com/llir/llvm/ir"
)

// Compiler drives the compilation of a single source file.
type Compiler struct {
	// srcPath is the absolute path to the source file.
	srcPath string

	// profile is the build profile of the compilation.
	profile *config.Profile

	// lctx is the log context of the source file once it has been read.
	lctx *logging.LogContext
}

// Result holds everything a successful compilation produces.  The later
// fields are nil when their phase was not run.
type Result struct {
	Tokens   *syntax.Sequence
	Program  *ast.Program
	Symbols  *walk.SymbolTable
	Warnings []*logging.CompileError

	Output    *generate.Output
	Optimized []string
	Stats     optimize.Stats

	LLVM *ir.Module
}

// NewCompiler creates a new compiler.  A nil profile selects the defaults.
func NewCompiler(srcPath string, profile *config.Profile) *Compiler {
	absPath, err := filepath.Abs(srcPath)
	if err != nil {
		logging.ReportFatal(fmt.Sprintf("error calculating absolute path: %s", err.Error()))
		return nil
	}

	if profile == nil {
		profile = config.DefaultProfile()
	}

	return &Compiler{srcPath: absPath, profile: profile}
}

// Compile runs the full compilation of the source file and writes its
// outputs.  It handles all errors appropriately and returns whether the
// compilation succeeded.  Nothing is written when it fails.
func (c *Compiler) Compile() bool {
	return c.run(true)
}

// Analyze runs just the analysis phases on the source file.  Nothing is
// written.
func (c *Compiler) Analyze() bool {
	return c.run(false)
}

func (c *Compiler) run(full bool) bool {
	logging.LogCompileHeader(c.srcPath)

	if res, ok := c.compileFile(full); ok && full {
		c.writeOutputs(res)
	}

	logging.LogCompilationFinished()
	return logging.ShouldProceed()
}

// compileFile reads the source file and runs it through the pipeline, logging
// any errors and warnings.
func (c *Compiler) compileFile(full bool) (*Result, bool) {
	lines, err := readLines(c.srcPath)
	if err != nil {
		logging.LogConfigError("Source", fmt.Sprintf("unable to read %s: %s", c.srcPath, err.Error()))
		return nil, false
	}

	c.lctx = &logging.LogContext{FilePath: c.srcPath, Lines: lines}

	res := &Result{}
	err = c.runPhases(c.pipeline(full), res, joinLines(lines))

	// warnings are held by the logger until compilation finishes
	for _, w := range res.Warnings {
		logging.LogCompileWarning(c.lctx, w)
	}

	if err != nil {
		var cerr *logging.CompileError
		if errors.As(err, &cerr) {
			logging.LogCompileError(c.lctx, cerr)
		} else {
			logging.LogConfigError("Compile", err.Error())
		}

		return nil, false
	}

	return res, true
}

// CompileSource runs the full pipeline over source text held in memory.  It
// writes nothing and logs nothing but phase progress.
func (c *Compiler) CompileSource(src string) (*Result, error) {
	res := &Result{}
	if err := c.runPhases(c.pipeline(true), res, src); err != nil {
		return nil, err
	}

	return res, nil
}
