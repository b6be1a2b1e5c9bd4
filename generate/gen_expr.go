package generate

import (
	"lcc/ast"
	"lcc/logging"
	"lcc/typing"
)

// Kinds of infix items fed to the operator-precedence evaluator.
const (
	itemOperand = iota
	itemOperator
	itemLParen
	itemRParen
)

// infixItem is one element of an expression in infix order.
type infixItem struct {
	kind int

	// operand is set for operands: a literal, an identifier, or a `not`
	// expression which is evaluated as a unit.
	operand ast.Expr

	// op is set for operators.
	op string
}

// precedences gives the binding strength of each binary operator.
var precedences = map[string]int{
	"*": 3, "/": 3,
	"+": 2, "-": 2,
	"==": 1, "<>": 1, "<": 1, ">": 1, "<=": 1, ">=": 1,
	"and": 1, "or": 1,
}

// setInstructions maps each relational operator to the set instruction
// materializing its result.
var setInstructions = map[string]string{
	"==": "sete",
	"<>": "setne",
	"<":  "setl",
	">":  "setg",
	"<=": "setle",
	">=": "setge",
}

// flatten converts an expression tree back into its infix item sequence.
// Parentheses are kept so the evaluator sees the expression as written.
func flatten(expr ast.Expr, items []infixItem) []infixItem {
	switch v := expr.(type) {
	case *ast.BinaryOp:
		items = flatten(v.Lhs, items)
		items = append(items, infixItem{kind: itemOperator, op: v.Op.Name})
		return flatten(v.Rhs, items)
	case *ast.Paren:
		items = append(items, infixItem{kind: itemLParen})
		items = flatten(v.Inner, items)
		return append(items, infixItem{kind: itemRParen})
	default:
		return append(items, infixItem{kind: itemOperand, operand: expr})
	}
}

// genExpr evaluates an expression leaving its value on top of the stack.  It
// uses the shunting-yard algorithm: operands are pushed as soon as they are
// seen and operators wait on an operator stack until an operator of lower or
// equal precedence arrives or the expression ends.
func (g *Generator) genExpr(expr ast.Expr) {
	var ops []infixItem

	for _, item := range flatten(expr, nil) {
		switch item.kind {
		case itemOperand:
			g.genOperand(item.operand)
		case itemLParen:
			ops = append(ops, item)
		case itemRParen:
			for len(ops) > 0 && ops[len(ops)-1].kind != itemLParen {
				g.genOp(ops[len(ops)-1].op)
				ops = ops[:len(ops)-1]
			}

			// discard the matching `(`
			if len(ops) > 0 {
				ops = ops[:len(ops)-1]
			}
		case itemOperator:
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.kind == itemLParen || precedences[top.op] < precedences[item.op] {
					break
				}

				g.genOp(top.op)
				ops = ops[:len(ops)-1]
			}

			ops = append(ops, item)
		}
	}

	for i := len(ops) - 1; i >= 0; i-- {
		g.genOp(ops[i].op)
	}
}

// genOperand pushes the value of a single operand.
func (g *Generator) genOperand(operand ast.Expr) {
	switch v := operand.(type) {
	case *ast.Literal:
		g.emit("push %s", g.formatValue(v, v.Type()))
	case *ast.Identifier:
		sym := g.lookup(v)

		// constants are immediates, and narrow variables must be widened
		// before they can be pushed
		if sym.IsConstant || v.Type() == typing.Int {
			g.emit("push %s", sym.Name)
		} else {
			g.emit("movzx eax, %s", sym.Name)
			g.emit("push eax")
		}
	case *ast.Not:
		g.genExpr(v.Operand)
		g.emit("pop eax")
		g.emit("xor eax, 1")
		g.emit("push eax")
	default:
		panic(logging.RaiseICE("unexpected %T operand at line %d", operand, operand.Position().StartLn))
	}
}

// genOp applies a binary operator to the two values on top of the stack and
// pushes the result.
func (g *Generator) genOp(op string) {
	g.emit("pop ebx")
	g.emit("pop eax")

	switch op {
	case "+":
		g.emit("add eax, ebx")
	case "-":
		g.emit("sub eax, ebx")
	case "*":
		g.emit("imul eax, ebx")
	case "/":
		g.emit("cdq")
		g.emit("idiv ebx")
	case "and":
		g.emit("and eax, ebx")
	case "or":
		g.emit("or eax, ebx")
	default:
		set, ok := setInstructions[op]
		if !ok {
			panic(logging.RaiseICE("unknown operator `%s`", op))
		}

		g.emit("cmp eax, ebx")
		g.emit("%s al", set)
		g.emit("movzx eax, al")
	}

	g.emit("push eax")
}
