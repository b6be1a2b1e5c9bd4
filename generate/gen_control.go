package generate

import (
	"fmt"

	"lcc/ast"
)

// jumpIfFalse maps each relational operator to the jump taken when the
// comparison does not hold.
var jumpIfFalse = map[string]string{
	"==": "jne",
	"<>": "je",
	"<":  "jge",
	">":  "jle",
	"<=": "jg",
	">=": "jl",
}

// jumpIfTrue maps each relational operator to the jump taken when the
// comparison holds.
var jumpIfTrue = map[string]string{
	"==": "je",
	"<>": "jne",
	"<":  "jl",
	">":  "jg",
	"<=": "jle",
	">=": "jge",
}

// JumpIfFalse returns the jump instruction skipping the true branch of a
// comparison with the given operator.
func JumpIfFalse(op string) (string, bool) {
	jmp, ok := jumpIfFalse[op]
	return jmp, ok
}

// genWhile generates a loop: the condition is checked at the top and the body
// jumps back to it.
func (g *Generator) genWhile(w *ast.While) {
	n := g.loopCounter
	g.loopCounter++

	loopLabel := fmt.Sprintf("_loop%d", n)
	endLabel := fmt.Sprintf("_fimLoop%d", n)

	g.code.WriteByte('\n')
	g.emitLabel(loopLabel)

	g.genCondition(w.Cond, endLabel)
	g.genBlock(w.Body)

	g.code.WriteByte('\n')
	g.emit("jmp %s", loopLabel)
	g.emitLabel(endLabel)
}

// genIf generates a conditional.  Without an else branch the else label marks
// the end of the if.
func (g *Generator) genIf(ifCmd *ast.If) {
	n := g.ifCounter
	g.ifCounter++

	elseLabel := fmt.Sprintf("_else%d", n)
	endLabel := fmt.Sprintf("_fimIf%d", n)

	g.genCondition(ifCmd.Cond, elseLabel)
	g.genBlock(ifCmd.Body)

	if ifCmd.Else == nil {
		g.emitLabel(elseLabel)
		return
	}

	g.emit("jmp %s", endLabel)
	g.emitLabel(elseLabel)
	g.genBlock(ifCmd.Else.Body)
	g.emitLabel(endLabel)
}

// genCondition generates a check that jumps to target when cond is false.
func (g *Generator) genCondition(cond ast.Expr, target string) {
	// each `not` flips the sense of the jump
	negated := false
	cond = ast.Unwrap(cond)
	for {
		not, ok := cond.(*ast.Not)
		if !ok {
			break
		}

		negated = !negated
		cond = ast.Unwrap(not.Operand)
	}

	if bop, ok := cond.(*ast.BinaryOp); ok && bop.Op.IsRelational() && isPlainOperand(bop.Lhs) && isPlainOperand(bop.Rhs) {
		reg := "eax"
		if bop.Lhs.Type().IsNarrow() {
			reg = "al"
		}

		g.emit("mov %s, %s", reg, g.operandValue(bop.Lhs))
		g.emit("cmp %s, %s", reg, g.operandValue(bop.Rhs))

		if negated {
			g.emit("%s %s", jumpIfTrue[bop.Op.Name], target)
		} else {
			g.emit("%s %s", jumpIfFalse[bop.Op.Name], target)
		}

		return
	}

	if isPlainOperand(cond) {
		g.emit("mov al, %s", g.operandValue(cond))
		g.emit("cmp al, 1")
	} else {
		g.genExpr(cond)
		g.emit("pop eax")
		g.emit("cmp eax, 1")
	}

	if negated {
		g.emit("je %s", target)
	} else {
		g.emit("jne %s", target)
	}
}

// isPlainOperand returns whether expr is a literal or a name.
func isPlainOperand(expr ast.Expr) bool {
	switch expr.(type) {
	case *ast.Literal, *ast.Identifier:
		return true
	}

	return false
}

// operandValue renders a plain operand as an instruction operand.
func (g *Generator) operandValue(expr ast.Expr) string {
	if ident, ok := expr.(*ast.Identifier); ok {
		return g.lookup(ident).Name
	}

	lit := expr.(*ast.Literal)
	return g.formatValue(lit, lit.Type())
}
