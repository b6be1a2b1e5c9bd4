package generate

import (
	"fmt"
	"strconv"
	"strings"

	"lcc/ast"
	"lcc/logging"
	"lcc/typing"
	"lcc/walk"
)

// stringBufferSize is the size of the buffer backing every string variable.
const stringBufferSize = 256

// genHeader writes the processor, model and include directives.
func (g *Generator) genHeader() {
	g.header.WriteString(".686\n")
	g.header.WriteString(".model flat, stdcall\n")
	g.header.WriteString("option casemap :none\n\n")

	for _, line := range g.opts.Includes {
		g.header.WriteString(line)
		g.header.WriteByte('\n')
	}

	g.header.WriteByte('\n')
}

// genData writes one data declaration per declared name.  A name declared more
// than once is written once using its governing declaration.
func (g *Generator) genData() {
	g.data.WriteString(".data\n")

	for _, sym := range g.symbols.Symbols() {
		if sym.IsConstant {
			g.genConstData(sym)
		} else {
			g.genVarData(sym)
		}
	}
}

// genConstData declares a constant.  Scalars become symbolic constants; strings
// get a buffer plus an alias bound to its address.
func (g *Generator) genConstData(sym *walk.Symbol) {
	if sym.Type == typing.String {
		label := constStringLabel(sym)
		g.declareString(label, literalText(sym.Value))
		fmt.Fprintf(g.data, "    %-15s equ addr %s\n", sym.Name, label)
		return
	}

	fmt.Fprintf(g.data, "    %-15s equ %s\n", sym.Name, g.formatValue(sym.Value, sym.Type))
}

// genVarData allocates a variable.
func (g *Generator) genVarData(sym *walk.Symbol) {
	switch sym.Type {
	case typing.String:
		text := literalText(sym.Value)
		if text == "" {
			fmt.Fprintf(g.data, "    %-15s db %d dup(0)\n", sym.Name, stringBufferSize)
		} else {
			fmt.Fprintf(g.data, "    %-15s db \"%s\", %d dup(0)\n", sym.Name, masmText(text), stringBufferSize-len(text))
		}
	case typing.Int:
		fmt.Fprintf(g.data, "    %-15s %-5s %s\n", sym.Name, "dd", g.formatValue(sym.Value, sym.Type))
	case typing.Boolean, typing.Byte:
		fmt.Fprintf(g.data, "    %-15s %-5s %s\n", sym.Name, "db", g.formatValue(sym.Value, sym.Type))
	default:
		panic(logging.RaiseICE("unresolved type for `%s`", sym.Name))
	}
}

// declareString adds a NUL terminated string to the data section.
func (g *Generator) declareString(label, text string) {
	if text == "" {
		fmt.Fprintf(g.data, "    %-15s db 0\n", label)
	} else {
		fmt.Fprintf(g.data, "    %-15s db \"%s\", 0\n", label, masmText(text))
	}
}

// -----------------------------------------------------------------------------

// formatValue renders a literal as a MASM immediate of the given type.  A nil
// literal is the zero value.
func (g *Generator) formatValue(lit *ast.Literal, typ typing.PrimType) string {
	if lit == nil {
		return "0"
	}

	switch typ {
	case typing.Boolean:
		if lit.BoolValue() {
			return "1"
		}

		return "0"
	case typing.Byte:
		return hexByte(lit.Value)
	case typing.Int:
		return lit.Value
	}

	panic(logging.RaiseICE("no immediate form for %s literal `%s`", typ, lit.Value))
}

// hexByte converts a `0hXX` byte literal into the MASM hex form `0XXh`.  The
// leading zero keeps digits starting with a letter from reading as a name.
func hexByte(lexeme string) string {
	digits := lexeme
	if len(lexeme) > 2 && strings.EqualFold(lexeme[:2], "0h") {
		digits = lexeme[2:]
	}

	if _, err := strconv.ParseUint(digits, 16, 8); err != nil {
		panic(logging.RaiseICE("malformed byte literal `%s`", lexeme))
	}

	return "0" + strings.ToUpper(digits) + "h"
}

// constStringLabel is the label of the buffer backing a string constant.
func constStringLabel(sym *walk.Symbol) string {
	return "const_str_" + sym.Name
}

// literalText returns the unquoted text of a string literal or "" for nil.
func literalText(lit *ast.Literal) string {
	if lit == nil {
		return ""
	}

	return lit.Text()
}

// masmText converts the text of a string literal for use inside a MASM
// double-quoted string: an escaped quote becomes a doubled quote.
func masmText(text string) string {
	return strings.ReplaceAll(text, `\"`, `""`)
}
