package ast

import "lcc/typing"

// Decl is a declaration in the declaration prefix of a program.
type Decl interface {
	Node

	// Ident returns the declared name.
	Ident() *Identifier

	// Initializer returns the initializer or nil if there is none.
	Initializer() Expr
}

// VarDecl represents a variable declaration: `int x = 5;`.
type VarDecl struct {
	ASTBase

	// DeclType is the type named by the type keyword.
	DeclType typing.PrimType

	Name *Identifier

	// Init is either a *Literal, an *Identifier, or nil.
	Init Expr
}

func (vd *VarDecl) Ident() *Identifier { return vd.Name }
func (vd *VarDecl) Initializer() Expr  { return vd.Init }

// ConstDecl represents a constant declaration: `final x = 5;`.  Its type is
// that of its initializer.
type ConstDecl struct {
	ASTBase

	Name *Identifier

	// Init is either a *Literal or an *Identifier.
	Init Expr
}

func (cd *ConstDecl) Ident() *Identifier { return cd.Name }
func (cd *ConstDecl) Initializer() Expr  { return cd.Init }
