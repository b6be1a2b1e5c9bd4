package syntax

import (
	"strings"

	"lcc/ast"
	"lcc/logging"
	"lcc/typing"
)

// logicalOps are the operators that may only appear in conditions.
var logicalOps = []int{TOK_EQ, TOK_NEQ, TOK_LT, TOK_GT, TOK_LTEQ, TOK_GTEQ, TOK_AND, TOK_OR}

// expr := ['not'] arith [logical_op arith] ;
// logical_op := '==' | '<>' | '<' | '>' | '<=' | '>=' | 'and' | 'or' ;
// NB: `not` applies to the whole rest of the expression.  The logical operator
// is only accepted when allowLogical is set.
func (p *Parser) parseExpr(allowLogical bool) ast.Expr {
	var notTok *Token
	if p.got(TOK_NOT) {
		p.next()
		notTok = p.lookbehind
	}

	expr := p.parseArith(allowLogical)

	if p.gotOneOf(logicalOps...) {
		if !allowLogical {
			p.rejectWithMsg("logical expression not allowed in assignment: found `%s`", p.tok.Value)
		}

		op := p.parseOper()
		rhs := p.parseArith(allowLogical)
		expr = newBinaryOp(op, expr, rhs)
	}

	if notTok != nil {
		expr = &ast.Not{
			ExprBase: ast.NewExprBase(logging.TextPositionFromRange(notTok.Position(), expr.Position()), typing.None),
			Operand:  expr,
		}
	}

	return expr
}

// arith := term {('+' | '-') term} ;
func (p *Parser) parseArith(allowLogical bool) ast.Expr {
	lhs := p.parseTerm(allowLogical)

	for p.gotOneOf(TOK_PLUS, TOK_MINUS) {
		op := p.parseOper()
		lhs = newBinaryOp(op, lhs, p.parseTerm(allowLogical))
	}

	return lhs
}

// term := factor {('*' | '/') factor} ;
func (p *Parser) parseTerm(allowLogical bool) ast.Expr {
	lhs := p.parseFactor(allowLogical)

	for p.gotOneOf(TOK_STAR, TOK_DIV) {
		op := p.parseOper()
		lhs = newBinaryOp(op, lhs, p.parseFactor(allowLogical))
	}

	return lhs
}

// factor := constant | 'identifier' | '(' expr ')' ;
func (p *Parser) parseFactor(allowLogical bool) ast.Expr {
	switch p.tok.Kind {
	case TOK_IDENT:
		return p.parseIdent()
	case TOK_INTLIT, TOK_BYTELIT, TOK_STRINGLIT, TOK_BOOLLIT:
		return p.parseConstant()
	case TOK_LPAREN:
		lparen := p.want(TOK_LPAREN)
		inner := p.parseExpr(allowLogical)
		p.want(TOK_RPAREN)

		return &ast.Paren{
			ExprBase: ast.NewExprBase(logging.TextPositionFromRange(lparen.Position(), p.lookbehind.Position()), typing.None),
			Inner:    inner,
		}
	}

	p.reject("expression")
	return nil
}

// parseOper consumes the operator token the parser is positioned on.
func (p *Parser) parseOper() ast.Oper {
	p.next()

	return ast.Oper{
		Name: strings.ToLower(p.lookbehind.Value),
		Pos:  p.lookbehind.Position(),
	}
}

func newBinaryOp(op ast.Oper, lhs, rhs ast.Expr) *ast.BinaryOp {
	return &ast.BinaryOp{
		ExprBase: ast.NewExprBase(logging.TextPositionFromRange(lhs.Position(), rhs.Position()), typing.None),
		Op:       op,
		Lhs:      lhs,
		Rhs:      rhs,
	}
}
