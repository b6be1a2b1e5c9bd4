package ast

import "lcc/logging"

// Node is the abstract interface for all AST nodes.
type Node interface {
	// Position returns the text position of the node.
	Position() *logging.TextPosition
}

// ASTBase is a utility base struct for all AST nodes.
type ASTBase struct {
	pos *logging.TextPosition
}

// NewASTBaseOn creates a new AST base at the given position.
func NewASTBaseOn(pos *logging.TextPosition) ASTBase {
	return ASTBase{pos: pos}
}

// NewASTBaseOver creates a new AST base spanning over two positions.
func NewASTBaseOver(start, end *logging.TextPosition) ASTBase {
	return ASTBase{pos: logging.TextPositionFromRange(start, end)}
}

func (ab ASTBase) Position() *logging.TextPosition {
	return ab.pos
}

// Program is the root of the tree: the declaration prefix followed by the main
// block.
type Program struct {
	Decls []Decl
	Body  *Block
}

// Inspect traverses the tree rooted at node in depth-first source order,
// calling f for each node.  Children are skipped when f returns false.
func Inspect(node Node, f func(Node) bool) {
	if node == nil || !f(node) {
		return
	}

	switch v := node.(type) {
	case *VarDecl:
		Inspect(v.Name, f)
		if v.Init != nil {
			Inspect(v.Init, f)
		}
	case *ConstDecl:
		Inspect(v.Name, f)
		Inspect(v.Init, f)
	case *Block:
		for _, cmd := range v.Commands {
			Inspect(cmd, f)
		}
	case *Write:
		for _, arg := range v.Args {
			Inspect(arg, f)
		}
	case *Read:
		Inspect(v.Target, f)
	case *Assign:
		Inspect(v.Target, f)
		Inspect(v.Value, f)
	case *While:
		Inspect(v.Cond, f)
		Inspect(v.Body, f)
	case *If:
		Inspect(v.Cond, f)
		Inspect(v.Body, f)
		if v.Else != nil {
			Inspect(v.Else, f)
		}
	case *Else:
		Inspect(v.Body, f)
	case *BinaryOp:
		Inspect(v.Lhs, f)
		Inspect(v.Rhs, f)
	case *Not:
		Inspect(v.Operand, f)
	case *Paren:
		Inspect(v.Inner, f)
	}
}

// InspectProgram calls Inspect on every declaration and then on the body.
func InspectProgram(prog *Program, f func(Node) bool) {
	for _, decl := range prog.Decls {
		Inspect(decl, f)
	}

	if prog.Body != nil {
		Inspect(prog.Body, f)
	}
}
