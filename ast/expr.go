package ast

import (
	"strings"

	"lcc/logging"
	"lcc/typing"
)

// Expr represents an expression simple or complex. All expression nodes
// implement the `Expr` interface.
type Expr interface {
	Node

	// Type is the yielded type of the expression.  It is None until the
	// expression has been checked.
	Type() typing.PrimType

	// SetType sets the type of the expression.
	SetType(typing.PrimType)
}

// ExprBase is the base struct for all expressions.
type ExprBase struct {
	ASTBase

	typ typing.PrimType
}

func NewExprBase(pos *logging.TextPosition, typ typing.PrimType) ExprBase {
	return ExprBase{ASTBase: NewASTBaseOn(pos), typ: typ}
}

func (eb *ExprBase) Type() typing.PrimType {
	return eb.typ
}

func (eb *ExprBase) SetType(typ typing.PrimType) {
	eb.typ = typ
}

// -----------------------------------------------------------------------------

// Literal represents a constant.  Its type is known from the moment it is
// lexed.
type Literal struct {
	ExprBase

	// Value is the lexeme of the literal: string literals are quoted and
	// booleans are `Fh` or `0h`.
	Value string
}

// Text returns the unquoted contents of a string literal.
func (l *Literal) Text() string {
	if len(l.Value) >= 2 && l.Value[0] == '"' && l.Value[len(l.Value)-1] == '"' {
		return l.Value[1 : len(l.Value)-1]
	}

	return l.Value
}

// BoolValue returns whether a boolean literal is true.
func (l *Literal) BoolValue() bool {
	return strings.EqualFold(l.Value, "Fh")
}

// Identifier represents a named value.
type Identifier struct {
	ExprBase

	Name string
}

// -----------------------------------------------------------------------------

// Oper is an operator used in the AST.
type Oper struct {
	// Name is the lower-cased spelling of the operator: `+`, `==`, `and`...
	Name string
	Pos  *logging.TextPosition
}

// IsArithmetic returns whether the operator is `+`, `-`, `*` or `/`.
func (o Oper) IsArithmetic() bool {
	switch o.Name {
	case "+", "-", "*", "/":
		return true
	}

	return false
}

// IsRelational returns whether the operator is a comparison.
func (o Oper) IsRelational() bool {
	switch o.Name {
	case "==", "<>", "<", ">", "<=", ">=":
		return true
	}

	return false
}

// IsLogical returns whether the operator is `and` or `or`.
func (o Oper) IsLogical() bool {
	return o.Name == "and" || o.Name == "or"
}

// BinaryOp represents a binary operator application.
type BinaryOp struct {
	ExprBase

	Op Oper

	Lhs, Rhs Expr
}

// Not represents the `not` prefix.  It applies to the rest of its expression.
type Not struct {
	ExprBase

	Operand Expr
}

// Paren represents a parenthesized sub-expression.
type Paren struct {
	ExprBase

	Inner Expr
}

// Unwrap strips any enclosing parentheses from expr.
func Unwrap(expr Expr) Expr {
	for {
		p, ok := expr.(*Paren)
		if !ok {
			return expr
		}

		expr = p.Inner
	}
}
