package walk

import (
	"strings"

	"lcc/ast"
	"lcc/typing"
)

// Symbol is a declared name.
type Symbol struct {
	// Name is the spelling used by the governing declaration.
	Name string

	Type       typing.PrimType
	IsConstant bool

	// Decl is the governing declaration.
	Decl ast.Decl

	// Value is the literal the symbol is initialized with at load time, with
	// identifier initializers resolved through the symbols they name.  It is
	// nil for variables that start zeroed.
	Value *ast.Literal
}

// SymbolTable is the flat namespace of a program.  Names compare
// case-insensitively and a later declaration of a name replaces the earlier
// one.
type SymbolTable struct {
	symbols map[string]*Symbol

	// order lists the keys of symbols in order of first declaration.
	order []string
}

// NewSymbolTable creates a new, empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{symbols: make(map[string]*Symbol)}
}

func symbolKey(name string) string {
	return strings.ToLower(name)
}

// Lookup returns the symbol governing name.
func (st *SymbolTable) Lookup(name string) (*Symbol, bool) {
	sym, ok := st.symbols[symbolKey(name)]
	return sym, ok
}

// Define declares sym, returning the symbol it replaced if any.
func (st *SymbolTable) Define(sym *Symbol) *Symbol {
	key := symbolKey(sym.Name)

	prev, ok := st.symbols[key]
	if !ok {
		st.order = append(st.order, key)
	}

	st.symbols[key] = sym
	return prev
}

// Symbols returns the governing symbols in order of first declaration.  Each
// name appears once.
func (st *SymbolTable) Symbols() []*Symbol {
	syms := make([]*Symbol, len(st.order))
	for i, key := range st.order {
		syms[i] = st.symbols[key]
	}

	return syms
}

// Len returns the number of distinct names declared.
func (st *SymbolTable) Len() int {
	return len(st.order)
}
