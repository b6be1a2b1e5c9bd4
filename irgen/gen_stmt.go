package irgen

import (
	"strings"

	"lcc/ast"
	"lcc/logging"
	"lcc/typing"

	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// genBlock generates every command of a block in order.
func (g *Generator) genBlock(block *ast.Block) {
	for _, cmd := range block.Commands {
		g.genCommand(cmd)
	}
}

func (g *Generator) genCommand(cmd ast.Command) {
	switch v := cmd.(type) {
	case *ast.Write:
		g.genWrite(v)
	case *ast.Read:
		g.genRead(v)
	case *ast.Assign:
		g.genAssign(v)
	case *ast.While:
		g.genWhile(v)
	case *ast.If:
		g.genIf(v)
	case *ast.Block:
		g.genBlock(v)
	default:
		panic(logging.RaiseICE("unexpected %T command at line %d", cmd, cmd.Position().StartLn))
	}
}

// genWrite generates a single printf call.  Literal arguments are spliced into
// the format string; identifiers become `%d` or `%s` conversions.
func (g *Generator) genWrite(w *ast.Write) {
	format := &strings.Builder{}
	var args []value.Value

	for _, arg := range w.Args {
		switch v := arg.(type) {
		case *ast.Identifier:
			if !v.Type().IsScalar() {
				format.WriteString("%s")
				args = append(args, g.bufferPtr(v))
			} else {
				format.WriteString("%d")
				args = append(args, g.genExpr(v))
			}
		case *ast.Literal:
			switch v.Type() {
			case typing.String:
				format.WriteString(strings.ReplaceAll(v.Text(), "%", "%%"))
			case typing.Boolean:
				if v.BoolValue() {
					format.WriteString("1")
				} else {
					format.WriteString("0")
				}
			default:
				format.WriteString(v.Value)
			}
		}
	}

	text := cText(format.String())
	if w.Newline {
		for _, b := range g.opts.Newline {
			text = append(text, byte(b))
		}
	}

	g.block.NewCall(g.printf, append([]value.Value{g.stringPtr(text)}, args...)...)
}

// genRead generates a scan into a scalar or a line read into a string buffer.
func (g *Generator) genRead(r *ast.Read) {
	switch r.Target.Type() {
	case typing.String:
		g.block.NewCall(g.gets, g.bufferPtr(r.Target))
	case typing.Int:
		g.block.NewCall(g.scanf, g.stringPtr([]byte("%d")), g.global(r.Target))
	default:
		if !r.Target.Type().IsNarrow() {
			panic(logging.RaiseICE("unresolved type for `%s`", r.Target.Name))
		}

		g.block.NewCall(g.scanf, g.stringPtr([]byte("%hhd")), g.global(r.Target))
	}
}

// genAssign generates an assignment.  Strings are copied into the target
// buffer; scalars are evaluated and stored.
func (g *Generator) genAssign(as *ast.Assign) {
	switch as.Target.Type() {
	case typing.String:
		g.block.NewCall(g.strcpy, g.bufferPtr(as.Target), g.stringSource(as.Value))
	case typing.Int:
		g.block.NewStore(g.genExpr(as.Value), g.global(as.Target))
	default:
		g.block.NewStore(g.block.NewTrunc(g.genExpr(as.Value), types.I8), g.global(as.Target))
	}
}

// stringSource returns a pointer to the value of a string assignment.
func (g *Generator) stringSource(expr ast.Expr) value.Value {
	switch v := ast.Unwrap(expr).(type) {
	case *ast.Literal:
		return g.stringPtr(cText(v.Text()))
	case *ast.Identifier:
		return g.bufferPtr(v)
	}

	panic(logging.RaiseICE("unexpected string value at line %d", expr.Position().StartLn))
}

// bufferPtr returns an `i8*` to the first byte of a string global.
func (g *Generator) bufferPtr(ident *ast.Identifier) value.Value {
	glob := g.global(ident)
	zero := constant.NewInt(types.I32, 0)
	return constant.NewGetElementPtr(glob.ContentType, glob, zero, zero)
}

// -----------------------------------------------------------------------------

// genWhile generates a loop: the condition is tested in its own block that the
// body branches back to.
func (g *Generator) genWhile(w *ast.While) {
	condBlock := g.appendBlock()
	g.block.NewBr(condBlock)

	bodyBlock := g.appendBlock()
	endBlock := g.appendBlock()

	g.block = condBlock
	g.block.NewCondBr(g.genCondition(w.Cond), bodyBlock, endBlock)

	g.block = bodyBlock
	g.genBlock(w.Body)
	g.block.NewBr(condBlock)

	g.block = endBlock
}

// genIf generates a conditional with an optional else branch.
func (g *Generator) genIf(ifStmt *ast.If) {
	thenBlock := g.appendBlock()
	endBlock := g.appendBlock()

	elseBlock := endBlock
	if ifStmt.Else != nil {
		elseBlock = g.appendBlock()
	}

	g.block.NewCondBr(g.genCondition(ifStmt.Cond), thenBlock, elseBlock)

	g.block = thenBlock
	g.genBlock(ifStmt.Body)
	g.block.NewBr(endBlock)

	if ifStmt.Else != nil {
		g.block = elseBlock
		g.genBlock(ifStmt.Else.Body)
		g.block.NewBr(endBlock)
	}

	g.block = endBlock
}
