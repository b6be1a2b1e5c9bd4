package generate

import (
	"fmt"
	"strings"

	"lcc/ast"
	"lcc/logging"
	"lcc/typing"
)

// genCode writes the code section: the main block followed by the exit call.
func (g *Generator) genCode() {
	g.code.WriteString(".code\n")
	g.code.WriteString("start:\n")

	g.genBlock(g.prog.Body)

	g.code.WriteString("\n    invoke ExitProcess, 0\n")
	g.code.WriteString("end start\n")
}

// genBlock generates every command of a block in order.
func (g *Generator) genBlock(block *ast.Block) {
	for _, cmd := range block.Commands {
		g.genCommand(cmd)
	}
}

// genCommand generates a single command.
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
	var args []string

	for _, arg := range w.Args {
		switch v := arg.(type) {
		case *ast.Identifier:
			sym := g.lookup(v)

			if !v.Type().IsScalar() {
				format.WriteString("%s")
				if sym.IsConstant {
					args = append(args, "addr "+constStringLabel(sym))
				} else {
					args = append(args, "addr "+sym.Name)
				}
			} else {
				format.WriteString("%d")
				args = append(args, sym.Name)
			}
		case *ast.Literal:
			format.WriteString(spliceLiteral(v))
		}
	}

	label := g.nextStringLabel("str")
	terminator := "0"
	if w.Newline {
		terminator = g.newlineBytes() + ", 0"
	}

	if format.Len() == 0 {
		fmt.Fprintf(g.data, "    %-15s db %s\n", label, terminator)
	} else {
		fmt.Fprintf(g.data, "    %-15s db \"%s\", %s\n", label, masmText(format.String()), terminator)
	}

	call := &strings.Builder{}
	call.WriteString("invoke crt_printf, addr ")
	call.WriteString(label)
	for _, arg := range args {
		call.WriteString(", ")
		call.WriteString(arg)
	}

	g.emit("%s", call.String())
}

// spliceLiteral returns the text a literal contributes to a format string.
func spliceLiteral(lit *ast.Literal) string {
	switch lit.Type() {
	case typing.String:
		return strings.ReplaceAll(lit.Text(), "%", "%%")
	case typing.Boolean:
		if lit.BoolValue() {
			return "1"
		}

		return "0"
	default:
		return lit.Value
	}
}

// newlineBytes renders the configured newline sequence as a byte list.
func (g *Generator) newlineBytes() string {
	parts := make([]string, len(g.opts.Newline))
	for i, b := range g.opts.Newline {
		parts[i] = fmt.Sprint(b)
	}

	return strings.Join(parts, ", ")
}

// genRead generates a scan into a scalar or a line read into a string buffer.
func (g *Generator) genRead(r *ast.Read) {
	sym := g.lookup(r.Target)

	if r.Target.Type() == typing.String {
		g.emit("invoke crt_gets, addr %s", sym.Name)
		return
	}

	if !g.formatDeclared {
		fmt.Fprintf(g.data, "    %-15s db \"%%d\", 0\n", "format_d")
		g.formatDeclared = true
	}

	g.emit("invoke crt_scanf, addr format_d, addr %s", sym.Name)
}

// genAssign generates an assignment.  Strings are copied into the destination
// buffer; scalars are evaluated on the stack and stored with a move sized to
// the destination.
func (g *Generator) genAssign(as *ast.Assign) {
	sym := g.lookup(as.Target)

	switch typ := as.Target.Type(); {
	case typ == typing.String:
		g.emit("invoke crt_strcpy, addr %s, addr %s", sym.Name, g.stringSource(as.Value))
	case typ == typing.Int:
		g.genExpr(as.Value)
		g.emit("pop eax")
		g.emit("mov %s, eax", sym.Name)
	case typ.IsNarrow():
		g.genExpr(as.Value)
		g.emit("pop eax")
		g.emit("mov %s, al", sym.Name)
	}
}

// stringSource returns the label holding the value of a string assignment,
// declaring a fresh literal buffer when the value is a constant.
func (g *Generator) stringSource(value ast.Expr) string {
	switch v := ast.Unwrap(value).(type) {
	case *ast.Literal:
		label := g.nextStringLabel("str_assign_")
		g.declareString(label, v.Text())
		return label
	case *ast.Identifier:
		sym := g.lookup(v)
		if sym.IsConstant {
			return constStringLabel(sym)
		}

		return sym.Name
	}

	panic(logging.RaiseICE("unexpected string value at line %d", value.Position().StartLn))
}
