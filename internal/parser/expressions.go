package parser

import (
	"strconv"

	"github.com/holoscript-lang/go-holoscript/internal/ast"
	"github.com/holoscript-lang/go-holoscript/internal/token"
)

// Precedence levels, lowest to highest.
const (
	LOWEST int = iota
	OR
	AND
	EQUALS
	COMPARE
	SUM
	PRODUCT
	PREFIX
	CALL
	MEMBER
)

var precedences = map[token.Type]int{
	token.Or:      OR,
	token.And:     AND,
	token.Eq:      EQUALS,
	token.Ne:      EQUALS,
	token.Lt:      COMPARE,
	token.Gt:      COMPARE,
	token.Le:      COMPARE,
	token.Ge:      COMPARE,
	token.Plus:    SUM,
	token.Minus:   SUM,
	token.Star:    PRODUCT,
	token.Slash:   PRODUCT,
	token.Percent: PRODUCT,
	token.LParen:  CALL,
	token.Dot:     MEMBER,
	token.LBracket: MEMBER,
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.cur().Type]; ok {
		return pr
	}
	return LOWEST
}

// parseExpression implements the precedence-climbing ladder described in
// the grammar: or, and, equality, comparison, additive, multiplicative,
// unary, call, member, primary. Call and member are interleaved so that
// `a.b(c)` parses as Call(Member(a,b), [c]).
func (p *Parser) parseExpression(minPrec int) ast.Expression {
	left := p.parseUnary()
	for {
		prec := p.peekPrecedence()
		if prec <= minPrec || prec == CALL || prec == MEMBER {
			break
		}
		op := p.cur().Literal
		start := left.Loc().Start
		p.advance()
		right := p.parseExpression(prec)
		left = &ast.BinaryExpression{Operator: op, Left: left, Right: right, Location: ast.Location{Start: start, End: p.cur().Start}}
	}
	return left
}

func (p *Parser) parseUnary() ast.Expression {
	if p.cur().Type == token.Bang || p.cur().Type == token.Minus {
		start := p.cur().Start
		op := p.cur().Literal
		p.advance()
		arg := p.parseUnary()
		return &ast.UnaryExpression{Operator: op, Argument: arg, Prefix: true, Location: ast.Location{Start: start, End: p.cur().Start}}
	}
	return p.parseCallOrMember()
}

// parseCallOrMember binds member access tighter than call, then wraps the
// whole chain in call parsing so `a.b(c)` yields Call(Member(a,b), [c]).
func (p *Parser) parseCallOrMember() ast.Expression {
	expr := p.parseMemberChain(p.parsePrimary())
	for p.cur().Type == token.LParen {
		expr = p.parseCall(expr)
		expr = p.parseMemberChain(expr)
	}
	return expr
}

func (p *Parser) parseMemberChain(base ast.Expression) ast.Expression {
	for {
		switch p.cur().Type {
		case token.Dot:
			start := base.Loc().Start
			p.advance()
			if p.cur().Type != token.Identifier {
				p.expectedError("a property name")
				return base
			}
			prop := &ast.Identifier{Name: p.cur().Literal, Location: ast.Location{Start: p.cur().Start, End: p.cur().End}}
			p.advance()
			base = &ast.MemberExpression{Object: base, Property: prop, Computed: false, Location: ast.Location{Start: start, End: p.cur().Start}}
		case token.LBracket:
			start := base.Loc().Start
			p.advance()
			index := p.parseExpression(LOWEST)
			p.expect(token.RBracket, "']'")
			base = &ast.MemberExpression{Object: base, Property: index, Computed: true, Location: ast.Location{Start: start, End: p.cur().Start}}
		default:
			return base
		}
	}
}

func (p *Parser) parseCall(callee ast.Expression) ast.Expression {
	start := callee.Loc().Start
	p.advance() // '('
	var args []ast.Expression
	for p.cur().Type != token.RParen && p.cur().Type != token.Eof {
		if p.cur().Type == token.Spread {
			args = append(args, p.parseSpread())
		} else {
			args = append(args, p.parseExpression(LOWEST))
		}
		if p.cur().Type == token.Comma {
			p.advance()
		} else {
			break
		}
	}
	p.expect(token.RParen, "')'")
	return &ast.CallExpression{Callee: callee, Arguments: args, Location: ast.Location{Start: start, End: p.cur().Start}}
}

func (p *Parser) parseSpread() ast.Expression {
	start := p.cur().Start
	p.advance() // '...'
	arg := p.parseExpression(LOWEST)
	return &ast.SpreadElement{Argument: arg, Location: ast.Location{Start: start, End: p.cur().Start}}
}

func (p *Parser) parsePrimary() ast.Expression {
	start := p.cur().Start
	switch p.cur().Type {
	case token.Number:
		raw := p.cur().Literal
		v, _ := strconv.ParseFloat(raw, 64)
		p.advance()
		return &ast.NumberLiteral{Value: v, Raw: raw, Location: ast.Location{Start: start, End: p.cur().Start}}
	case token.String:
		v := p.cur().Literal
		p.advance()
		return &ast.StringLiteral{Value: v, Location: ast.Location{Start: start, End: p.cur().Start}}
	case token.Boolean:
		v := p.cur().Literal == "true"
		p.advance()
		return &ast.BooleanLiteral{Value: v, Location: ast.Location{Start: start, End: p.cur().Start}}
	case token.Null:
		p.advance()
		return &ast.NullLiteral{Location: ast.Location{Start: start, End: p.cur().Start}}
	case token.Identifier:
		name := p.cur().Literal
		p.advance()
		return &ast.Identifier{Name: name, Location: ast.Location{Start: start, End: p.cur().Start}}
	case token.LBracket:
		return p.parseArrayLiteral()
	case token.LBrace:
		return p.parseObjectLiteral()
	case token.LParen:
		p.advance()
		expr := p.parseExpression(LOWEST)
		p.expect(token.RParen, "')'")
		return expr
	case token.Spread:
		return p.parseSpread()
	default:
		p.expectedError("an expression")
		p.advance()
		return &ast.NullLiteral{Location: ast.Location{Start: start, End: p.cur().Start}}
	}
}

func (p *Parser) parseArrayLiteral() ast.Expression {
	start := p.cur().Start
	p.advance() // '['
	var elems []ast.Expression
	for p.cur().Type != token.RBracket && p.cur().Type != token.Eof {
		if p.cur().Type == token.Spread {
			elems = append(elems, p.parseSpread())
		} else {
			elems = append(elems, p.parseExpression(LOWEST))
		}
		if p.cur().Type == token.Comma {
			p.advance()
		} else {
			break
		}
	}
	p.expect(token.RBracket, "']'")
	return &ast.ArrayLiteral{Elements: elems, Location: ast.Location{Start: start, End: p.cur().Start}}
}

func (p *Parser) parseObjectLiteral() *ast.ObjectLiteral {
	start := p.cur().Start
	p.advance() // '{'
	var props []*ast.Property
	for p.cur().Type != token.RBrace && p.cur().Type != token.Eof {
		pstart := p.cur().Start
		if p.cur().Type != token.Identifier && p.cur().Type != token.String {
			p.expectedError("a property key")
			p.advance()
			continue
		}
		key := p.cur().Literal
		p.advance()
		p.expect(token.Colon, "':'")
		value := p.parseExpression(LOWEST)
		props = append(props, &ast.Property{Key: key, Value: value, Location: ast.Location{Start: pstart, End: p.cur().Start}})
		if p.cur().Type == token.Comma {
			p.advance()
		}
	}
	p.expect(token.RBrace, "'}'")
	return &ast.ObjectLiteral{Properties: props, Location: ast.Location{Start: start, End: p.cur().Start}}
}
