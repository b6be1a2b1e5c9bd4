package ast

// Command is a single command inside a block.
type Command interface {
	Node
}

// Block represents a `begin ... end` block.
type Block struct {
	ASTBase

	Commands []Command
}

// Write represents a `write` or `writeln` command.
type Write struct {
	ASTBase

	// Newline is true for `writeln`.
	Newline bool

	// Args are all *Literal or *Identifier.
	Args []Expr
}

// Read represents a `readln` command.
type Read struct {
	ASTBase

	Target *Identifier
}

// Assign represents an assignment command.
type Assign struct {
	ASTBase

	Target *Identifier
	Value  Expr
}

// While represents a `while` loop.
type While struct {
	ASTBase

	Cond Expr
	Body *Block
}

// If represents an `if` command with its optional else branch.
type If struct {
	ASTBase

	Cond Expr
	Body *Block
	Else *Else
}

// Else represents an else branch.  It only appears as a command on its own
// when it does not directly follow an if.
type Else struct {
	ASTBase

	Body *Block
}
