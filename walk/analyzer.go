package walk

import (
	"lcc/ast"
	"lcc/logging"
)

// Analyzer performs semantic analysis on a parsed program.  It runs two
// passes: the first records the declarations in source order and the second
// checks every command against them.  The first error aborts the analysis.
type Analyzer struct {
	symbols *SymbolTable

	// warnings holds the non-fatal problems found in the program.
	warnings []*logging.CompileError
}

// NewAnalyzer creates a new semantic analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{symbols: NewSymbolTable()}
}

// Analyze checks prog and annotates its expressions with their types.  It
// returns the program's symbol table.
func (a *Analyzer) Analyze(prog *ast.Program) (symbols *SymbolTable, err error) {
	defer logging.Catch(&err)

	for _, decl := range prog.Decls {
		a.walkDecl(decl)
	}

	a.updateSymbolTypes(prog)

	a.walkBlock(prog.Body)

	return a.symbols, nil
}

// Warnings returns the warnings produced by the last analysis.
func (a *Analyzer) Warnings() []*logging.CompileError {
	return a.warnings
}

// updateSymbolTypes annotates every occurrence of a declared name anywhere in
// the program with its declared type.
func (a *Analyzer) updateSymbolTypes(prog *ast.Program) {
	ast.InspectProgram(prog, func(node ast.Node) bool {
		if ident, ok := node.(*ast.Identifier); ok {
			if sym, ok := a.symbols.Lookup(ident.Name); ok {
				ident.SetType(sym.Type)
			}
		}

		return true
	})
}

// -----------------------------------------------------------------------------

// lookup looks up a symbol by name.  If no symbol by the given name has been
// declared, then an error is raised.
func (a *Analyzer) lookup(ident *ast.Identifier) *Symbol {
	sym, ok := a.symbols.Lookup(ident.Name)
	if !ok {
		a.error(ident.Position(), "`%s` not declared", ident.Name)
	}

	return sym
}

// error raises an error on the given position which aborts the analysis.
func (a *Analyzer) error(pos *logging.TextPosition, msg string, args ...interface{}) {
	panic(logging.Raise(logging.KindSemantic, pos, msg, args...))
}

// warn records a compile warning.
func (a *Analyzer) warn(pos *logging.TextPosition, msg string, args ...interface{}) {
	a.warnings = append(a.warnings, logging.Raise(logging.KindSemantic, pos, msg, args...))
}
