package irgen

import (
	"fmt"
	"strconv"
	"strings"

	"lcc/ast"
	"lcc/logging"
	"lcc/typing"
	"lcc/walk"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
)

// Options controls the target specific parts of the generated module.
type Options struct {
	// Newline is the byte sequence `writeln` appends.  It defaults to CR LF.
	Newline []int
}

// stringBufferSize is the size of the array backing every string variable.
const stringBufferSize = 256

// globalPrefix is prepended to the name of every declared global so that
// program names cannot collide with the C runtime.
const globalPrefix = "lc."

// Generator lowers a checked program into an LLVM module.  The whole program
// becomes the body of `main`.
type Generator struct {
	prog    *ast.Program
	symbols *walk.SymbolTable
	opts    Options

	// mod is the LLVM module being generated.
	mod *ir.Module

	// globals maps the lower-cased name of every symbol to its global.
	globals map[string]*ir.Global

	// strings interns the NUL terminated string constants by contents.
	strings map[string]*ir.Global

	printf, scanf, gets, strcpy *ir.Func

	// mainFunc is the function all commands are generated into.
	mainFunc *ir.Func

	// block is the basic block currently being generated.
	block *ir.Block
}

// NewGenerator creates a generator for a program that has passed semantic
// analysis.
func NewGenerator(prog *ast.Program, symbols *walk.SymbolTable, opts Options) *Generator {
	if opts.Newline == nil {
		opts.Newline = []int{13, 10}
	}

	return &Generator{
		prog:    prog,
		symbols: symbols,
		opts:    opts,
		mod:     ir.NewModule(),
		globals: make(map[string]*ir.Global),
		strings: make(map[string]*ir.Global),
	}
}

// Generate produces the module.  Any error is an internal compiler error.
func (g *Generator) Generate() (m *ir.Module, err error) {
	defer logging.Catch(&err)

	g.declareRuntime()

	for _, sym := range g.symbols.Symbols() {
		g.genGlobal(sym)
	}

	g.mainFunc = g.mod.NewFunc("main", types.I32)
	g.block = g.mainFunc.NewBlock("entry")

	g.genBlock(g.prog.Body)

	g.block.NewRet(constant.NewInt(types.I32, 0))

	return g.mod, nil
}

// declareRuntime declares the C functions the generated code calls.
func (g *Generator) declareRuntime() {
	g.printf = g.mod.NewFunc("printf", types.I32, ir.NewParam("format", types.I8Ptr))
	g.printf.Sig.Variadic = true

	g.scanf = g.mod.NewFunc("scanf", types.I32, ir.NewParam("format", types.I8Ptr))
	g.scanf.Sig.Variadic = true

	g.gets = g.mod.NewFunc("gets", types.I8Ptr, ir.NewParam("buf", types.I8Ptr))

	g.strcpy = g.mod.NewFunc("strcpy", types.I8Ptr, ir.NewParam("dst", types.I8Ptr), ir.NewParam("src", types.I8Ptr))
}

// genGlobal defines the global backing a symbol.  Constants are immutable.
func (g *Generator) genGlobal(sym *walk.Symbol) {
	var init constant.Constant

	switch sym.Type {
	case typing.Int:
		init = constant.NewInt(types.I32, literalInt(sym.Value, sym.Type))
	case typing.Boolean, typing.Byte:
		init = constant.NewInt(types.I8, literalInt(sym.Value, sym.Type))
	case typing.String:
		buff := make([]byte, stringBufferSize)
		if sym.Value != nil {
			copy(buff, cText(sym.Value.Text()))
		}

		init = constant.NewCharArray(buff)
	default:
		panic(logging.RaiseICE("unresolved type for `%s`", sym.Name))
	}

	glob := g.mod.NewGlobalDef(globalPrefix+sym.Name, init)
	glob.Immutable = sym.IsConstant
	g.globals[strings.ToLower(sym.Name)] = glob
}

// -----------------------------------------------------------------------------

// appendBlock adds a new basic block to main.  It does *not* set the current
// block to this new block.
func (g *Generator) appendBlock() *ir.Block {
	return g.mainFunc.NewBlock(fmt.Sprintf("bb%d", len(g.mainFunc.Blocks)))
}

// global returns the global an identifier refers to.
func (g *Generator) global(ident *ast.Identifier) *ir.Global {
	glob, ok := g.globals[strings.ToLower(ident.Name)]
	if !ok {
		panic(logging.RaiseICE("no global for `%s`", ident.Name))
	}

	return glob
}

// stringPtr returns an `i8*` to the first byte of an interned, NUL terminated
// copy of text.
func (g *Generator) stringPtr(text []byte) constant.Constant {
	glob, ok := g.strings[string(text)]
	if !ok {
		data := append(append([]byte{}, text...), 0)
		glob = g.mod.NewGlobalDef(fmt.Sprintf(".str.%d", len(g.strings)+1), constant.NewCharArray(data))
		glob.Immutable = true
		glob.Linkage = enum.LinkagePrivate
		g.strings[string(text)] = glob
	}

	zero := constant.NewInt(types.I32, 0)
	return constant.NewGetElementPtr(glob.ContentType, glob, zero, zero)
}

// -----------------------------------------------------------------------------

// literalInt returns the integer value of a scalar literal.  A nil literal is
// the zero value.
func literalInt(lit *ast.Literal, typ typing.PrimType) int64 {
	if lit == nil {
		return 0
	}

	switch typ {
	case typing.Boolean:
		if lit.BoolValue() {
			return 1
		}

		return 0
	case typing.Byte:
		digits := lit.Value
		if len(digits) > 2 && strings.EqualFold(digits[:2], "0h") {
			digits = digits[2:]
		}

		if n, err := strconv.ParseUint(digits, 16, 8); err == nil {
			return int64(n)
		}
	case typing.Int:
		if n, err := strconv.ParseInt(lit.Value, 10, 32); err == nil {
			return n
		}
	}

	panic(logging.RaiseICE("no integer form for %s literal `%s`", typ, lit.Value))
}

// cText converts the text of a string literal into the bytes it denotes.
func cText(text string) []byte {
	return []byte(strings.ReplaceAll(text, `\"`, `"`))
}
