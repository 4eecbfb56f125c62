package parser

import (
	"github.com/holoscript-lang/go-holoscript/internal/ast"
	"github.com/holoscript-lang/go-holoscript/internal/token"
)

func (p *Parser) parseStateMachine() ast.Node {
	start := p.cur().Start
	p.advance() // 'state_machine'
	name := p.parseName(true)
	sm := &ast.StateMachine{Name: name}
	if !p.expect(token.LBrace, "'{'") {
		sm.Location = ast.Location{Start: start, End: p.cur().Start}
		return sm
	}
	for p.cur().Type != token.RBrace && p.cur().Type != token.Eof {
		before := p.cur()
		if p.cur().Type == token.Identifier && p.cur().Literal == "states" {
			p.advance()
			p.expect(token.Colon, "':'")
			sm.States = p.parseStatesMap()
		} else if prop := p.parseProperty(); prop != nil {
			sm.Properties = append(sm.Properties, prop)
		}
		if p.cur() == before {
			p.advance()
		}
	}
	p.expect(token.RBrace, "'}'")
	sm.Location = ast.Location{Start: start, End: p.cur().Start}
	return sm
}

func (p *Parser) parseStatesMap() []*ast.State {
	if !p.expect(token.LBrace, "'{'") {
		return nil
	}
	var states []*ast.State
	for p.cur().Type != token.RBrace && p.cur().Type != token.Eof {
		start := p.cur().Start
		name := p.parseName(true)
		p.expect(token.Colon, "':'")
		obj := p.parseObjectLiteral()
		states = append(states, &ast.State{Name: name, Properties: obj.Properties, Location: ast.Location{Start: start, End: p.cur().Start}})
		if p.cur().Type == token.Comma {
			p.advance()
		}
	}
	p.expect(token.RBrace, "'}'")
	return states
}

func (p *Parser) parseTalentTree() ast.Node {
	start := p.cur().Start
	p.advance() // 'talent_tree'
	name := p.parseName(true)
	tt := &ast.TalentTree{Name: name}
	if !p.expect(token.LBrace, "'{'") {
		tt.Location = ast.Location{Start: start, End: p.cur().Start}
		return tt
	}
	for p.cur().Type != token.RBrace && p.cur().Type != token.Eof {
		before := p.cur()
		if p.cur().Type == token.Identifier && (p.cur().Literal == "rows" || p.cur().Literal == "tiers") {
			p.advance()
			p.expect(token.Colon, "':'")
			tt.Tiers = p.parseTiersArray()
		} else if prop := p.parseProperty(); prop != nil {
			tt.Properties = append(tt.Properties, prop)
		}
		if p.cur() == before {
			p.advance()
		}
	}
	p.expect(token.RBrace, "'}'")
	tt.Location = ast.Location{Start: start, End: p.cur().Start}
	return tt
}

func (p *Parser) parseTiersArray() []*ast.Tier {
	if !p.expect(token.LBracket, "'['") {
		return nil
	}
	var tiers []*ast.Tier
	for p.cur().Type != token.RBracket && p.cur().Type != token.Eof {
		tiers = append(tiers, p.parseTierObject())
		if p.cur().Type == token.Comma {
			p.advance()
		}
	}
	p.expect(token.RBracket, "']'")
	return tiers
}

func (p *Parser) parseTierObject() *ast.Tier {
	start := p.cur().Start
	if !p.expect(token.LBrace, "'{'") {
		return &ast.Tier{}
	}
	tier := &ast.Tier{}
	for p.cur().Type != token.RBrace && p.cur().Type != token.Eof {
		before := p.cur()
		if p.cur().Type == token.Identifier && (p.cur().Literal == "tier" || p.cur().Literal == "level") {
			p.advance()
			p.expect(token.Colon, "':'")
			if p.cur().Type == token.Number {
				v, _ := parseIntLiteral(p.cur().Literal)
				tier.Level = v
				p.advance()
			}
		} else if p.cur().Type == token.Identifier && p.cur().Literal == "nodes" {
			p.advance()
			p.expect(token.Colon, "':'")
			tier.Nodes = p.parseTalentNodesArray()
		} else {
			p.advance()
		}
		if p.cur() == before {
			p.advance()
		}
		if p.cur().Type == token.Comma {
			p.advance()
		}
	}
	p.expect(token.RBrace, "'}'")
	tier.Location = ast.Location{Start: start, End: p.cur().Start}
	return tier
}

func (p *Parser) parseTalentNodesArray() []*ast.TalentNode {
	if !p.expect(token.LBracket, "'['") {
		return nil
	}
	var nodes []*ast.TalentNode
	for p.cur().Type != token.RBracket && p.cur().Type != token.Eof {
		nodes = append(nodes, p.parseTalentNode())
		if p.cur().Type == token.Comma {
			p.advance()
		}
	}
	p.expect(token.RBracket, "']'")
	return nodes
}

// parseTalentNode reads a node object's full property set before deciding
// its Name: an explicit "name" property always wins over "id", regardless
// of which was written first in source.
func (p *Parser) parseTalentNode() *ast.TalentNode {
	start := p.cur().Start
	obj := p.parseObjectLiteral()
	var name, id string
	for _, prop := range obj.Properties {
		if s, ok := prop.Value.(*ast.StringLiteral); ok {
			switch prop.Key {
			case "name":
				name = s.Value
			case "id":
				id = s.Value
			}
		}
	}
	if name == "" {
		name = id
	}
	return &ast.TalentNode{Name: name, Properties: obj.Properties, Location: ast.Location{Start: start, End: p.cur().Start}}
}

func parseIntLiteral(raw string) (int, error) {
	n := 0
	neg := false
	i := 0
	if len(raw) > 0 && raw[0] == '-' {
		neg = true
		i = 1
	}
	for ; i < len(raw); i++ {
		c := raw[i]
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int(c-'0')
	}
	if neg {
		n = -n
	}
	return n, nil
}
