package syntax

import (
	"lcc/ast"
	"lcc/typing"
)

// program := {var_decl | const_decl} block ;
func (p *Parser) parseProgram() *ast.Program {
	var decls []ast.Decl

	for {
		switch {
		case p.gotOneOf(TOK_INT, TOK_STRING, TOK_BOOLEAN, TOK_BYTE):
			decls = append(decls, p.parseVarDecl())
		case p.got(TOK_FINAL):
			decls = append(decls, p.parseConstDecl())
		default:
			return &ast.Program{Decls: decls, Body: p.parseBlock()}
		}
	}
}

// var_decl := type 'identifier' ['=' (constant | 'identifier')] ';' ;
// type := 'int' | 'string' | 'boolean' | 'byte' ;
func (p *Parser) parseVarDecl() *ast.VarDecl {
	typeTok := p.wantOneOf("type", TOK_INT, TOK_STRING, TOK_BOOLEAN, TOK_BYTE)
	declType, _ := typing.FromKeyword(typeTok.Value)

	name := p.parseIdent()

	var init ast.Expr
	if p.got(TOK_ASSIGN) {
		p.next()
		init = p.parseInitializer()
	}

	p.want(TOK_SEMI)

	return &ast.VarDecl{
		ASTBase:  ast.NewASTBaseOver(typeTok.Position(), p.lookbehind.Position()),
		DeclType: declType,
		Name:     name,
		Init:     init,
	}
}

// const_decl := 'final' 'identifier' '=' (constant | 'identifier') ';' ;
func (p *Parser) parseConstDecl() *ast.ConstDecl {
	finalTok := p.want(TOK_FINAL)
	name := p.parseIdent()

	p.want(TOK_ASSIGN)
	init := p.parseInitializer()

	p.want(TOK_SEMI)

	return &ast.ConstDecl{
		ASTBase: ast.NewASTBaseOver(finalTok.Position(), p.lookbehind.Position()),
		Name:    name,
		Init:    init,
	}
}

// initializer := constant | 'identifier' ;
func (p *Parser) parseInitializer() ast.Expr {
	if p.got(TOK_IDENT) {
		return p.parseIdent()
	}

	return p.parseConstant()
}

// -----------------------------------------------------------------------------

// parseIdent parses a single identifier.
func (p *Parser) parseIdent() *ast.Identifier {
	tok := p.want(TOK_IDENT)

	return &ast.Identifier{
		ExprBase: ast.NewExprBase(tok.Position(), typing.None),
		Name:     tok.Value,
	}
}

// constant := 'int_lit' | 'byte_lit' | 'string_lit' | 'bool_lit' ;
func (p *Parser) parseConstant() *ast.Literal {
	tok := p.wantOneOf("constant", TOK_INTLIT, TOK_BYTELIT, TOK_STRINGLIT, TOK_BOOLLIT)

	return &ast.Literal{
		ExprBase: ast.NewExprBase(tok.Position(), tok.Type),
		Value:    tok.Value,
	}
}
