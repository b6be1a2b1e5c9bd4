package syntax

import (
	"lcc/ast"
)

// block := 'begin' {command} 'end' ;
func (p *Parser) parseBlock() *ast.Block {
	beginTok := p.want(TOK_BEGIN)

	var cmds []ast.Command
	for !p.got(TOK_END) {
		cmd := p.parseCommand()

		// an else directly after an if without one belongs to that if
		if elseCmd, ok := cmd.(*ast.Else); ok && len(cmds) > 0 {
			if ifCmd, ok := cmds[len(cmds)-1].(*ast.If); ok && ifCmd.Else == nil {
				ifCmd.Else = elseCmd
				continue
			}
		}

		cmds = append(cmds, cmd)
	}

	p.next()

	return &ast.Block{
		ASTBase:  ast.NewASTBaseOver(beginTok.Position(), p.lookbehind.Position()),
		Commands: cmds,
	}
}

// command := write | read | assignment | while | if | else | block ;
func (p *Parser) parseCommand() ast.Command {
	switch p.tok.Kind {
	case TOK_WRITE, TOK_WRITELN:
		return p.parseWrite()
	case TOK_READLN:
		return p.parseRead()
	case TOK_IDENT:
		return p.parseAssignment()
	case TOK_WHILE:
		return p.parseWhile()
	case TOK_IF:
		return p.parseIf()
	case TOK_ELSE:
		return p.parseElse()
	case TOK_BEGIN:
		return p.parseBlock()
	}

	p.reject("command")
	return nil
}

// write := ('write' | 'writeln') ',' write_arg {',' write_arg} ';' ;
// write_arg := constant | 'identifier' ;
func (p *Parser) parseWrite() *ast.Write {
	writeTok := p.wantOneOf("write or writeln", TOK_WRITE, TOK_WRITELN)

	var args []ast.Expr
	for {
		p.want(TOK_COMMA)
		args = append(args, p.parseInitializer())

		if !p.got(TOK_COMMA) {
			break
		}
	}

	p.want(TOK_SEMI)

	return &ast.Write{
		ASTBase: ast.NewASTBaseOver(writeTok.Position(), p.lookbehind.Position()),
		Newline: writeTok.Kind == TOK_WRITELN,
		Args:    args,
	}
}

// read := 'readln' ',' 'identifier' ';' ;
func (p *Parser) parseRead() *ast.Read {
	readTok := p.want(TOK_READLN)
	p.want(TOK_COMMA)
	target := p.parseIdent()
	p.want(TOK_SEMI)

	return &ast.Read{
		ASTBase: ast.NewASTBaseOver(readTok.Position(), p.lookbehind.Position()),
		Target:  target,
	}
}

// assignment := 'identifier' '=' expr ';' ;
// NB: the expression may not contain logical operators.
func (p *Parser) parseAssignment() *ast.Assign {
	target := p.parseIdent()
	p.want(TOK_ASSIGN)
	value := p.parseExpr(false)
	p.want(TOK_SEMI)

	return &ast.Assign{
		ASTBase: ast.NewASTBaseOver(target.Position(), p.lookbehind.Position()),
		Target:  target,
		Value:   value,
	}
}

// while := 'while' expr block ;
func (p *Parser) parseWhile() *ast.While {
	whileTok := p.want(TOK_WHILE)
	cond := p.parseExpr(true)
	body := p.parseBlock()

	return &ast.While{
		ASTBase: ast.NewASTBaseOver(whileTok.Position(), body.Position()),
		Cond:    cond,
		Body:    body,
	}
}

// if := 'if' expr block ;
func (p *Parser) parseIf() *ast.If {
	ifTok := p.want(TOK_IF)
	cond := p.parseExpr(true)
	body := p.parseBlock()

	return &ast.If{
		ASTBase: ast.NewASTBaseOver(ifTok.Position(), body.Position()),
		Cond:    cond,
		Body:    body,
	}
}

// else := 'else' block ;
func (p *Parser) parseElse() *ast.Else {
	elseTok := p.want(TOK_ELSE)
	body := p.parseBlock()

	return &ast.Else{
		ASTBase: ast.NewASTBaseOver(elseTok.Position(), body.Position()),
		Body:    body,
	}
}
