package parser

import (
	"github.com/holoscript-lang/go-holoscript/internal/ast"
	"github.com/holoscript-lang/go-holoscript/internal/token"
)

// parseStatement handles the statement grammar used inside logic blocks,
// function bodies, event handlers, and control-flow bodies.
func (p *Parser) parseStatement() ast.Statement {
	switch p.cur().Type {
	case token.If:
		return p.parseIf()
	case token.While:
		return p.parseWhile()
	case token.For:
		return p.parseFor()
	case token.Return:
		return p.parseReturn()
	case token.Const, token.Let, token.Var:
		return p.parseVarStatement()
	case token.Comment, token.BlockComment:
		return p.parseComment()
	default:
		start := p.cur().Start
		expr := p.parseExpression(LOWEST)
		return &ast.ExpressionStatement{Expression: expr, Location: ast.Location{Start: start, End: p.cur().Start}}
	}
}

func (p *Parser) parseVarStatement() ast.Statement {
	start := p.cur().Start
	kind := p.cur().Literal
	p.advance()
	name := ""
	if p.cur().Type == token.Identifier {
		name = p.cur().Literal
		p.advance()
	} else {
		p.expectedError("an identifier")
	}
	p.expect(token.Equals, "'='")
	value := p.parseExpression(LOWEST)
	return &ast.VarStatement{Kind: kind, Name: name, Value: value, Location: ast.Location{Start: start, End: p.cur().Start}}
}

func (p *Parser) parseIf() ast.Statement {
	start := p.cur().Start
	p.advance() // 'if'
	p.expect(token.LParen, "'('")
	test := p.parseExpression(LOWEST)
	p.expect(token.RParen, "')'")
	consequent := p.parseBlock()
	stmt := &ast.IfStatement{Test: test, Consequent: consequent}
	if p.cur().Type == token.Else {
		p.advance()
		stmt.Alternate = p.parseBlock()
		stmt.HasAlternate = true
	}
	stmt.Location = ast.Location{Start: start, End: p.cur().Start}
	return stmt
}

func (p *Parser) parseWhile() ast.Statement {
	start := p.cur().Start
	p.advance() // 'while'
	p.expect(token.LParen, "'('")
	test := p.parseExpression(LOWEST)
	p.expect(token.RParen, "')'")
	body := p.parseBlock()
	return &ast.WhileStatement{Test: test, Body: body, Location: ast.Location{Start: start, End: p.cur().Start}}
}

// parseFor parses the deliberately `:`-separated `for (init : test : update) { body }`.
func (p *Parser) parseFor() ast.Statement {
	start := p.cur().Start
	p.advance() // 'for'
	p.expect(token.LParen, "'('")

	var initStmt ast.Statement
	if p.cur().Type != token.Colon {
		initStmt = p.parseForClauseStatement()
	}
	p.expect(token.Colon, "':'")

	var test ast.Expression
	if p.cur().Type != token.Colon {
		test = p.parseExpression(LOWEST)
	}
	p.expect(token.Colon, "':'")

	var updateStmt ast.Statement
	if p.cur().Type != token.RParen {
		updateStmt = p.parseForClauseStatement()
	}
	p.expect(token.RParen, "')'")

	body := p.parseBlock()
	return &ast.ForStatement{Init: initStmt, Test: test, Update: updateStmt, Body: body, Location: ast.Location{Start: start, End: p.cur().Start}}
}

func (p *Parser) parseForClauseStatement() ast.Statement {
	if p.cur().Type == token.Const || p.cur().Type == token.Let || p.cur().Type == token.Var {
		return p.parseVarStatement()
	}
	start := p.cur().Start
	expr := p.parseExpression(LOWEST)
	return &ast.ExpressionStatement{Expression: expr, Location: ast.Location{Start: start, End: p.cur().Start}}
}

func (p *Parser) parseReturn() ast.Statement {
	start := p.cur().Start
	p.advance()
	var arg ast.Expression
	if p.cur().Type != token.RBrace && p.cur().Type != token.Eof {
		arg = p.parseExpression(LOWEST)
	}
	return &ast.ReturnStatement{Argument: arg, Location: ast.Location{Start: start, End: p.cur().Start}}
}

func (p *Parser) parseFunction() ast.Node {
	start := p.cur().Start
	p.advance() // 'function'
	name := ""
	if p.cur().Type == token.Identifier {
		name = p.cur().Literal
		p.advance()
	} else {
		p.expectedError("a function name")
	}
	p.expect(token.LParen, "'('")
	var params []string
	for p.cur().Type != token.RParen && p.cur().Type != token.Eof {
		if p.cur().Type == token.Identifier {
			params = append(params, p.cur().Literal)
			p.advance()
		} else {
			p.expectedError("a parameter name")
			break
		}
		if p.cur().Type == token.Comma {
			p.advance()
		} else {
			break
		}
	}
	p.expect(token.RParen, "')'")
	body := p.parseBlock()
	return &ast.FunctionDeclaration{Name: name, Params: params, Body: body, Location: ast.Location{Start: start, End: p.cur().Start}}
}

func (p *Parser) parseImport() ast.Node {
	start := p.cur().Start
	p.advance() // 'import'
	p.expect(token.LBrace, "'{'")
	var specs []ast.ImportSpecifier
	for p.cur().Type != token.RBrace && p.cur().Type != token.Eof {
		if p.cur().Type != token.Identifier {
			p.expectedError("an import name")
			break
		}
		spec := ast.ImportSpecifier{Name: p.cur().Literal}
		p.advance()
		if p.cur().Type == token.As {
			p.advance()
			if p.cur().Type == token.Identifier {
				spec.Alias = p.cur().Literal
				p.advance()
			}
		}
		specs = append(specs, spec)
		if p.cur().Type == token.Comma {
			p.advance()
		} else {
			break
		}
	}
	p.expect(token.RBrace, "'}'")
	p.expect(token.From, "'from'")
	source := ""
	if p.cur().Type == token.String {
		source = p.cur().Literal
		p.advance()
	} else {
		p.expectedError("a module path string")
	}
	return &ast.ImportStatement{Specifiers: specs, Source: source, Location: ast.Location{Start: start, End: p.cur().Start}}
}

func (p *Parser) parseExport() ast.Node {
	start := p.cur().Start
	p.advance() // 'export'
	var decl ast.Statement
	switch p.cur().Type {
	case token.Function:
		decl = p.parseFunction().(ast.Statement)
	case token.Const, token.Let, token.Var:
		decl = p.parseVarStatement()
	default:
		p.expectedError("a declaration to export")
	}
	return &ast.ExportStatement{Declaration: decl, Location: ast.Location{Start: start, End: p.cur().Start}}
}
