package walk

import (
	"lcc/ast"
	"lcc/typing"
)

// walkBlock walks every command of a block in order.
func (a *Analyzer) walkBlock(block *ast.Block) {
	for _, cmd := range block.Commands {
		a.walkCommand(cmd)
	}
}

// walkCommand walks a single command.
func (a *Analyzer) walkCommand(cmd ast.Command) {
	switch v := cmd.(type) {
	case *ast.Write:
		for _, arg := range v.Args {
			a.walkExpr(arg)
		}
	case *ast.Read:
		a.walkAssignTarget(v.Target)
	case *ast.Assign:
		a.walkAssign(v)
	case *ast.While:
		a.walkCondition(v.Cond)
		a.walkBlock(v.Body)
	case *ast.If:
		a.walkCondition(v.Cond)
		a.walkBlock(v.Body)

		if v.Else != nil {
			a.walkBlock(v.Else.Body)
		}
	case *ast.Else:
		a.error(v.Position(), "malformed control expression: else without if")
	case *ast.Block:
		a.walkBlock(v)
	}
}

// walkAssignTarget checks that ident names a variable and returns its symbol.
func (a *Analyzer) walkAssignTarget(ident *ast.Identifier) *Symbol {
	sym := a.lookup(ident)
	if sym.IsConstant {
		a.error(ident.Position(), "assignment to constant `%s`", ident.Name)
	}

	ident.SetType(sym.Type)
	return sym
}

// walkAssign walks an assignment command.
func (a *Analyzer) walkAssign(as *ast.Assign) {
	sym := a.walkAssignTarget(as.Target)
	valueType := a.walkExpr(as.Value)

	if valueType == sym.Type {
		return
	}

	switch ast.Unwrap(as.Value).(type) {
	case *ast.Literal, *ast.Identifier:
		a.error(
			as.Value.Position(),
			"assignment type mismatch: expected %s, found %s",
			sym.Type,
			valueType,
		)
	default:
		a.error(
			as.Value.Position(),
			"invalid expression type: `%s` is declared %s, found %s",
			sym.Name,
			sym.Type,
			valueType,
		)
	}
}

// walkCondition checks that the condition of an if or while is boolean.
func (a *Analyzer) walkCondition(cond ast.Expr) {
	if typ := a.walkExpr(cond); typ != typing.Boolean {
		a.error(cond.Position(), "invalid expression type - expected boolean, found %s", typ)
	}
}
