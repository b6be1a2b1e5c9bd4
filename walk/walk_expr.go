package walk

import (
	"lcc/ast"
	"lcc/typing"
)

// walkExpr checks an expression, annotates it with its type and returns the
// type.
func (a *Analyzer) walkExpr(expr ast.Expr) typing.PrimType {
	var typ typing.PrimType

	switch v := expr.(type) {
	case *ast.Literal:
		typ = v.Type()
	case *ast.Identifier:
		typ = a.lookup(v).Type
	case *ast.Paren:
		typ = a.walkExpr(v.Inner)
	case *ast.Not:
		if operandType := a.walkExpr(v.Operand); operandType != typing.Boolean {
			a.error(v.Operand.Position(), "invalid expression type - expected boolean, found %s", operandType)
		}

		typ = typing.Boolean
	case *ast.BinaryOp:
		typ = a.walkBinaryOp(v)
	}

	expr.SetType(typ)
	return typ
}

// walkBinaryOp checks a binary operator application.  Arithmetic operators
// take and yield integers; the relational and logical operators compare two
// integers or two booleans and yield a boolean.
func (a *Analyzer) walkBinaryOp(bop *ast.BinaryOp) typing.PrimType {
	lhsType := a.walkExpr(bop.Lhs)
	rhsType := a.walkExpr(bop.Rhs)

	if bop.Op.IsArithmetic() {
		if lhsType != typing.Int {
			a.error(bop.Lhs.Position(), "invalid expression type - expected int, found %s", lhsType)
		} else if rhsType != typing.Int {
			a.error(bop.Rhs.Position(), "invalid expression type - expected int, found %s", rhsType)
		}

		return typing.Int
	}

	if lhsType != rhsType || (lhsType != typing.Int && lhsType != typing.Boolean) {
		a.error(
			bop.Op.Pos,
			"bad comparison: cannot apply `%s` to %s and %s",
			bop.Op.Name,
			lhsType,
			rhsType,
		)
	}

	return typing.Boolean
}
