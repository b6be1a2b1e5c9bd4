package generate

import (
	"fmt"
	"strings"

	"lcc/ast"
	"lcc/logging"
	"lcc/typing"
	"lcc/walk"
)

// Options controls the target specific parts of the generated listing.
type Options struct {
	// Includes are the include lines of the header.  The MASM32 defaults are
	// used when it is nil.
	Includes []string

	// Newline is the byte sequence `writeln` appends.  It defaults to CR LF.
	Newline []int
}

// DefaultIncludes are the MASM32 headers and libraries the generated code
// depends on.
var DefaultIncludes = []string{
	`include \masm32\include\windows.inc`,
	`include \masm32\include\kernel32.inc`,
	`include \masm32\include\masm32.inc`,
	`include \masm32\include\msvcrt.inc`,
	`includelib \masm32\lib\kernel32.lib`,
	`includelib \masm32\lib\masm32.lib`,
	`includelib \masm32\lib\msvcrt.lib`,
	`include \masm32\macros\macros.asm`,
}

// DefaultNewline is the CR LF sequence.
var DefaultNewline = []int{13, 10}

// Output is a generated listing split in its three sections.
type Output struct {
	Header, Data, Code string
}

// String returns the complete listing.
func (o *Output) String() string {
	return o.Header + o.Data + o.Code
}

// Lines returns the listing one line per element, without the empty string
// trailing the final newline.
func (o *Output) Lines() []string {
	return strings.Split(strings.TrimSuffix(o.String(), "\n"), "\n")
}

// Generator converts a checked program into a MASM listing.  Generators are
// created once per compilation: the label counters are never reset.
type Generator struct {
	prog    *ast.Program
	symbols *walk.SymbolTable
	opts    Options

	header, data, code *strings.Builder

	loopCounter, ifCounter, stringCounter int

	// formatDeclared indicates whether the shared `%d` scan format has been
	// added to the data section.
	formatDeclared bool
}

// NewGenerator creates a generator for a program that has passed semantic
// analysis.
func NewGenerator(prog *ast.Program, symbols *walk.SymbolTable, opts Options) *Generator {
	if opts.Includes == nil {
		opts.Includes = DefaultIncludes
	}

	if opts.Newline == nil {
		opts.Newline = DefaultNewline
	}

	return &Generator{
		prog:          prog,
		symbols:       symbols,
		opts:          opts,
		header:        &strings.Builder{},
		data:          &strings.Builder{},
		code:          &strings.Builder{},
		loopCounter:   1,
		ifCounter:     1,
		stringCounter: 1,
	}
}

// Generate produces the listing.  Any error is an internal compiler error: the
// program should already have been checked.
func (g *Generator) Generate() (out *Output, err error) {
	defer logging.Catch(&err)

	g.genHeader()
	g.genData()
	g.genCode()

	return &Output{
		Header: g.header.String(),
		Data:   g.data.String(),
		Code:   g.code.String(),
	}, nil
}

// -----------------------------------------------------------------------------

// emit writes an indented instruction to the code section.
func (g *Generator) emit(format string, args ...interface{}) {
	g.code.WriteString("    ")
	fmt.Fprintf(g.code, format, args...)
	g.code.WriteByte('\n')
}

// emitLabel writes a label definition to the code section.
func (g *Generator) emitLabel(label string) {
	g.code.WriteString(label)
	g.code.WriteString(":\n")
}

// nextStringLabel returns a fresh label for a data section string.
func (g *Generator) nextStringLabel(prefix string) string {
	label := fmt.Sprintf("%s%d", prefix, g.stringCounter)
	g.stringCounter++
	return label
}

// lookup returns the symbol an identifier refers to.  Generation only runs on
// checked programs so a missing or untyped symbol is an internal error.
func (g *Generator) lookup(ident *ast.Identifier) *walk.Symbol {
	sym, ok := g.symbols.Lookup(ident.Name)
	if !ok {
		panic(logging.RaiseICE("no symbol for `%s` at line %d", ident.Name, ident.Position().StartLn))
	}

	if ident.Type() == typing.None {
		panic(logging.RaiseICE("unresolved type for `%s` at line %d", ident.Name, ident.Position().StartLn))
	}

	return sym
}
