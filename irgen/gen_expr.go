package irgen

import (
	"lcc/ast"
	"lcc/logging"

	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// icmpPreds maps the relational operators to signed integer predicates.
var icmpPreds = map[string]enum.IPred{
	"==": enum.IPredEQ,
	"<>": enum.IPredNE,
	"<":  enum.IPredSLT,
	">":  enum.IPredSGT,
	"<=": enum.IPredSLE,
	">=": enum.IPredSGE,
}

// genExpr lowers a scalar expression.  Every scalar is widened to `i32`;
// booleans are 0 or 1.
func (g *Generator) genExpr(expr ast.Expr) value.Value {
	switch v := expr.(type) {
	case *ast.Paren:
		return g.genExpr(v.Inner)
	case *ast.Literal:
		return constant.NewInt(types.I32, literalInt(v, v.Type()))
	case *ast.Identifier:
		glob := g.global(v)
		if !v.Type().IsNarrow() {
			return g.block.NewLoad(types.I32, glob)
		}

		return g.block.NewZExt(g.block.NewLoad(types.I8, glob), types.I32)
	case *ast.Not:
		return g.block.NewXor(g.genExpr(v.Operand), constant.NewInt(types.I32, 1))
	case *ast.BinaryOp:
		return g.genBinaryOp(v)
	}

	panic(logging.RaiseICE("unexpected %T expression at line %d", expr, expr.Position().StartLn))
}

func (g *Generator) genBinaryOp(bop *ast.BinaryOp) value.Value {
	lhs := g.genExpr(bop.Lhs)
	rhs := g.genExpr(bop.Rhs)

	switch bop.Op.Name {
	case "+":
		return g.block.NewAdd(lhs, rhs)
	case "-":
		return g.block.NewSub(lhs, rhs)
	case "*":
		return g.block.NewMul(lhs, rhs)
	case "/":
		return g.block.NewSDiv(lhs, rhs)
	case "and":
		return g.block.NewAnd(lhs, rhs)
	case "or":
		return g.block.NewOr(lhs, rhs)
	}

	pred, ok := icmpPreds[bop.Op.Name]
	if !ok {
		panic(logging.RaiseICE("unknown operator `%s`", bop.Op.Name))
	}

	return g.block.NewZExt(g.block.NewICmp(pred, lhs, rhs), types.I32)
}

// genCondition lowers a boolean expression to an `i1`.
func (g *Generator) genCondition(expr ast.Expr) value.Value {
	return g.block.NewICmp(enum.IPredNE, g.genExpr(expr), constant.NewInt(types.I32, 0))
}
