package walk

import (
	"lcc/ast"
	"lcc/typing"
)

// walkDecl walks a declaration and defines its symbol.
func (a *Analyzer) walkDecl(decl ast.Decl) {
	name := decl.Ident()

	var sym *Symbol
	switch v := decl.(type) {
	case *ast.VarDecl:
		sym = &Symbol{Name: name.Name, Type: v.DeclType, Decl: v}

		if v.Init != nil {
			initType, value := a.walkInitializer(v.Init)
			if initType != v.DeclType {
				a.error(
					v.Init.Position(),
					"assignment type mismatch: `%s` is declared %s, found %s",
					name.Name,
					v.DeclType,
					initType,
				)
			}

			sym.Value = value
		}
	case *ast.ConstDecl:
		// the type of a constant is deferred until its initializer is known
		initType, value := a.walkInitializer(v.Init)
		sym = &Symbol{Name: name.Name, Type: initType, IsConstant: true, Decl: v, Value: value}
	}

	name.SetType(sym.Type)

	if prev := a.symbols.Define(sym); prev != nil {
		a.warn(
			name.Position(),
			"`%s` redeclared: this declaration replaces the one at line %d",
			name.Name,
			prev.Decl.Position().StartLn,
		)
	}
}

// walkInitializer returns the type of a declaration initializer and the literal
// it evaluates to.  Identifier initializers must name an earlier declaration.
func (a *Analyzer) walkInitializer(init ast.Expr) (typing.PrimType, *ast.Literal) {
	switch v := init.(type) {
	case *ast.Literal:
		return v.Type(), v
	case *ast.Identifier:
		sym := a.lookup(v)
		v.SetType(sym.Type)
		return sym.Type, sym.Value
	}

	a.error(init.Position(), "invalid initializer")
	return typing.None, nil
}
