// Package parser implements a recursive-descent parser that turns a
// HoloScript token stream into an AST.
package parser

import (
	"fmt"

	"github.com/holoscript-lang/go-holoscript/internal/ast"
	"github.com/holoscript-lang/go-holoscript/internal/diagnostic"
	"github.com/holoscript-lang/go-holoscript/internal/lexer"
	"github.com/holoscript-lang/go-holoscript/internal/token"
)

// Parser descends a token stream, building an AST and collecting
// diagnostics as it goes. It never panics on malformed input; top-level
// errors trigger synchronize and parsing continues.
type Parser struct {
	lex    *lexer.Lexer
	cursor *TokenCursor
	errors []diagnostic.Diagnostic

	preserveComments bool
}

// Option configures optional Parser behavior.
type Option func(*Parser)

// WithPreserveComments makes the parser turn Comment/BlockComment tokens
// into CommentNode values instead of filtering them as trivia, mirroring
// the lexer's own WithPreserveComments option.
func WithPreserveComments(preserve bool) Option {
	return func(p *Parser) { p.preserveComments = preserve }
}

// New creates a Parser over source, running the lexer internally.
func New(source string, opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	var lexOpts []lexer.Option
	if p.preserveComments {
		lexOpts = append(lexOpts, lexer.WithPreserveComments(true))
	}
	l := lexer.New(source, lexOpts...)
	p.lex = l
	p.cursor = NewTokenCursor(l, p.preserveComments)
	return p
}

// Errors returns diagnostics collected so far.
func (p *Parser) Errors() []diagnostic.Diagnostic {
	return p.errors
}

// LexerErrors returns non-fatal lexical problems found while scanning, as
// diagnostics with the lexer channel code.
func (p *Parser) LexerErrors() []diagnostic.Diagnostic {
	var out []diagnostic.Diagnostic
	for _, e := range p.lex.Errors() {
		out = append(out, diagnostic.New(e.Message, e.Pos, diagnostic.CodeLexer))
	}
	return out
}

// Parse runs the lexer and parser over source and returns the resulting
// program along with every diagnostic found. The program is only non-nil
// when no diagnostics were produced.
func Parse(source string, opts ...Option) (*ast.Program, []diagnostic.Diagnostic) {
	p := New(source, opts...)
	prog := p.ParseProgram()
	diags := append(p.LexerErrors(), p.Errors()...)
	if len(diags) > 0 {
		return nil, diags
	}
	return prog, nil
}

func (p *Parser) addError(msg string, pos token.Position, code string) {
	p.errors = append(p.errors, diagnostic.New(msg, pos, code))
}

func (p *Parser) cur() token.Token  { return p.cursor.Current() }
func (p *Parser) advance()          { p.cursor = p.cursor.Advance() }
func (p *Parser) peek(n int) token.Token { return p.cursor.Peek(n) }

// expect consumes the current token if it has type t, else records an
// E002 diagnostic (E003 at end of input) and leaves the cursor in place.
func (p *Parser) expect(t token.Type, what string) bool {
	if p.cur().Type == t {
		p.advance()
		return true
	}
	p.expectedError(what)
	return false
}

func (p *Parser) expectedError(what string) {
	if p.cur().Type == token.Eof {
		p.addError(fmt.Sprintf("unexpected end of input, expected %s", what), p.cur().Start, diagnostic.CodeUnexpectedEOF)
		return
	}
	p.addError(fmt.Sprintf("expected %s, found %s", what, describeToken(p.cur())), p.cur().Start, diagnostic.CodeExpectedToken)
}

func describeToken(t token.Token) string {
	if t.Literal != "" {
		return fmt.Sprintf("%s %q", t.Type, t.Literal)
	}
	return t.Type.String()
}

// topLevelSync is the resync token set used by synchronize after a
// top-level parse error.
var topLevelSync = map[token.Type]bool{
	token.Composition: true,
	token.World:       true,
	token.Orb:         true,
	token.Entity:      true,
	token.Object:      true,
	token.Template:    true,
	token.Import:      true,
	token.Export:      true,
	token.Function:    true,
	token.Eof:         true,
}

func (p *Parser) synchronize() {
	p.advance()
	for !topLevelSync[p.cur().Type] {
		p.advance()
	}
}

// ParseProgram parses the full token stream and returns the Program. The
// returned program is only meaningful when Errors() is empty.
func (p *Parser) ParseProgram() *ast.Program {
	start := p.cur().Start
	prog := &ast.Program{}
	for p.cur().Type != token.Eof {
		before := p.cur()
		node := p.parseTopLevel()
		if node != nil {
			prog.Body = append(prog.Body, node)
		}
		if p.cur() == before {
			// parseTopLevel made no progress (unrecognized token); avoid
			// looping forever.
			p.expectedError("a top-level declaration")
			p.synchronize()
		}
	}
	end := p.cur().Start
	prog.Location = ast.Location{Start: start, End: end}
	return prog
}

var isObjectType = map[string]bool{
	"cube": true, "sphere": true, "plane": true, "cylinder": true,
	"mesh": true, "light": true, "camera": true,
}

func (p *Parser) parseTopLevel() ast.Node {
	switch p.cur().Type {
	case token.Composition:
		return p.parseEntity("Composition", true)
	case token.World:
		return p.parseEntity("World", true)
	case token.Orb:
		return p.parseEntity("Orb", false)
	case token.Entity:
		return p.parseEntity("Entity", false)
	case token.Group:
		return p.parseEntity("Group", false)
	case token.Template:
		return p.parseEntity("Template", true)
	case token.Environment:
		return p.parseEnvironment()
	case token.Logic:
		return p.parseLogic()
	case token.Object:
		return p.parseGenericObject("object")
	case token.Npc:
		return p.parseGameEntity("Npc", true)
	case token.Quest:
		return p.parseGameEntity("Quest", true)
	case token.Ability:
		return p.parseGameEntity("Ability", true)
	case token.Dialogue:
		return p.parseGameEntity("Dialogue", true)
	case token.Achievement:
		return p.parseGameEntity("Achievement", true)
	case token.StateMachine:
		return p.parseStateMachine()
	case token.TalentTree:
		return p.parseTalentTree()
	case token.Import:
		return p.parseImport()
	case token.Export:
		return p.parseExport()
	case token.Function:
		return p.parseFunction()
	case token.Trait:
		return p.parseTrait()
	case token.Comment, token.BlockComment:
		return p.parseComment()
	case token.Identifier:
		if isObjectType[p.cur().Literal] {
			return p.parseGenericObject(p.cur().Literal)
		}
		p.expectedError("a top-level declaration")
		p.synchronize()
		return nil
	default:
		p.expectedError("a top-level declaration")
		p.synchronize()
		return nil
	}
}

// parseName returns the entity name when the current token is a string
// or identifier, consuming it. acceptString controls whether a string
// literal is an acceptable name token for this construct.
func (p *Parser) parseName(acceptString bool) string {
	if p.cur().Type == token.String {
		if !acceptString {
			p.expectedError("an identifier")
		}
		name := p.cur().Literal
		p.advance()
		return name
	}
	if p.cur().Type == token.Identifier {
		name := p.cur().Literal
		p.advance()
		return name
	}
	p.expectedError("a name")
	return ""
}

func (p *Parser) parseEntity(kind string, acceptStringName bool) ast.Node {
	start := p.cur().Start
	p.advance() // consume keyword
	name := p.parseName(acceptStringName)
	entity := &ast.Entity{Kind: kind, Name: name}
	p.parseEntityBody(entity, kind)
	entity.Location = ast.Location{Start: start, End: p.cur().Start}
	return entity
}

func (p *Parser) parseGenericObject(objectType string) ast.Node {
	start := p.cur().Start
	p.advance()
	name := p.parseName(true)
	entity := &ast.Entity{Kind: "GenericObject", ObjectType: objectType, Name: name}
	if p.cur().Type == token.Using {
		// `object NAME using TEMPLATE { ... }`: the template reference becomes
		// the object's first child.
		ustart := p.cur().Start
		p.advance()
		tmpl := p.parseName(true)
		entity.Children = append(entity.Children, &ast.Using{Template: tmpl, Location: ast.Location{Start: ustart, End: p.cur().Start}})
	}
	p.parseEntityBody(entity, "GenericObject")
	entity.Location = ast.Location{Start: start, End: p.cur().Start}
	return entity
}

func (p *Parser) parseEnvironment() ast.Node {
	start := p.cur().Start
	p.advance()
	env := &ast.Environment{}
	entity := &ast.Entity{Kind: "Environment"}
	p.parseEntityBody(entity, "Environment")
	env.Properties = entity.Properties
	env.Children = entity.Children
	env.Location = ast.Location{Start: start, End: p.cur().Start}
	return env
}

func childAllowed(parentKind, childKind string) bool {
	switch parentKind {
	case "Composition", "World", "Group", "Template", "Entity", "GenericObject", "Environment":
		switch childKind {
		case "Orb", "Entity", "GenericObject", "Group", "Template", "Environment", "Logic", "Npc", "Quest", "Dialogue", "Using":
			return true
		}
	}
	return false
}

func entityKindOf(t token.Type) (string, bool) {
	switch t {
	case token.Orb:
		return "Orb", true
	case token.Entity:
		return "Entity", true
	case token.Object:
		return "GenericObject", true
	case token.Group:
		return "Group", true
	case token.Template:
		return "Template", true
	case token.Environment:
		return "Environment", true
	case token.Logic:
		return "Logic", true
	case token.Npc:
		return "Npc", true
	case token.Quest:
		return "Quest", true
	case token.Dialogue:
		return "Dialogue", true
	case token.Using:
		return "Using", true
	}
	return "", false
}

// parseEntityBody parses `{ (trait|child|eventHandler|property)* }` into
// entity's Traits/Properties/Children.
func (p *Parser) parseEntityBody(entity *ast.Entity, parentKind string) {
	if !p.expect(token.LBrace, "'{'") {
		return
	}
	for p.cur().Type != token.RBrace && p.cur().Type != token.Eof {
		before := p.cur()
		switch {
		case p.cur().Type == token.Trait:
			entity.Traits = append(entity.Traits, p.parseTraitNode())
		case p.cur().Type == token.Using:
			entity.Children = append(entity.Children, p.parseUsing())
		case p.cur().Type == token.Comment || p.cur().Type == token.BlockComment:
			entity.Children = append(entity.Children, p.parseComment())
		default:
			if kind, ok := entityKindOf(p.cur().Type); ok && childAllowed(parentKind, kind) {
				entity.Children = append(entity.Children, p.parseTopLevel())
			} else if p.cur().Type == token.Identifier && isObjectType[p.cur().Literal] {
				entity.Children = append(entity.Children, p.parseGenericObject(p.cur().Literal))
			} else if p.isEventHandlerKey() {
				entity.Children = append(entity.Children, p.parseEventHandler())
			} else {
				if prop := p.parseProperty(); prop != nil {
					entity.Properties = append(entity.Properties, prop)
				}
			}
		}
		if p.cur() == before {
			p.expectedError("a trait, property, or child entity")
			p.advance()
		}
	}
	p.expect(token.RBrace, "'}'")
}

func (p *Parser) isEventHandlerKey() bool {
	if p.cur().Type != token.Identifier {
		return false
	}
	if len(p.cur().Literal) < 2 || p.cur().Literal[:2] != "on" {
		return false
	}
	return p.peek(1).Type == token.Colon && p.peek(2).Type == token.LBrace
}

func (p *Parser) parseEventHandler() ast.Node {
	start := p.cur().Start
	name := p.cur().Literal
	p.advance()
	p.expect(token.Colon, "':'")
	body := p.parseBlock()
	return &ast.EventHandler{Event: name, Body: body, Location: ast.Location{Start: start, End: p.cur().Start}}
}

func (p *Parser) parseTraitNode() *ast.Trait {
	start := p.cur().Start
	name := p.cur().Literal[1:] // strip '@'
	p.advance()
	var config ast.Expression
	if p.cur().Type == token.LBrace {
		config = p.parseObjectLiteral()
	}
	return &ast.Trait{Name: name, Config: config, Location: ast.Location{Start: start, End: p.cur().Start}}
}

func (p *Parser) parseTrait() ast.Node {
	return p.parseTraitNode()
}

// parseComment turns a preserved Comment/BlockComment token into a
// CommentNode. Only reachable when the parser was built with
// WithPreserveComments(true); otherwise the lexer/cursor filter these
// tokens out as trivia before the parser ever sees them.
func (p *Parser) parseComment() *ast.CommentNode {
	start := p.cur().Start
	block := p.cur().Type == token.BlockComment
	value := p.cur().Literal
	p.advance()
	return &ast.CommentNode{Value: value, Block: block, Location: ast.Location{Start: start, End: p.cur().Start}}
}

func (p *Parser) parseProperty() *ast.Property {
	start := p.cur().Start
	if p.cur().Type != token.Identifier && p.cur().Type != token.String {
		p.expectedError("a property name")
		p.advance()
		return nil
	}
	key := p.cur().Literal
	p.advance()
	if !p.expect(token.Colon, "':'") {
		return nil
	}
	value := p.parseExpression(LOWEST)
	return &ast.Property{Key: key, Value: value, Location: ast.Location{Start: start, End: p.cur().Start}}
}

func (p *Parser) parseUsing() ast.Node {
	start := p.cur().Start
	p.advance() // 'using'
	name := p.parseName(true)
	using := &ast.Using{Template: name}
	if p.cur().Type == token.LBrace {
		p.advance()
		for p.cur().Type != token.RBrace && p.cur().Type != token.Eof {
			if prop := p.parseProperty(); prop != nil {
				using.Overrides = append(using.Overrides, prop)
			}
		}
		p.expect(token.RBrace, "'}'")
	}
	using.Location = ast.Location{Start: start, End: p.cur().Start}
	return using
}

func (p *Parser) parseGameEntity(kind string, acceptString bool) ast.Node {
	start := p.cur().Start
	p.advance()
	name := p.parseName(acceptString)
	ge := &ast.GameEntity{Kind: kind, Name: name}
	if !p.expect(token.LBrace, "'{'") {
		ge.Location = ast.Location{Start: start, End: p.cur().Start}
		return ge
	}
	for p.cur().Type != token.RBrace && p.cur().Type != token.Eof {
		before := p.cur()
		if prop := p.parseProperty(); prop != nil {
			ge.Properties = append(ge.Properties, prop)
		}
		if p.cur() == before {
			p.advance()
		}
	}
	p.expect(token.RBrace, "'}'")
	ge.Location = ast.Location{Start: start, End: p.cur().Start}
	return ge
}

// parseBlock parses `{ statement* }`.
func (p *Parser) parseBlock() []ast.Statement {
	if !p.expect(token.LBrace, "'{'") {
		return nil
	}
	var stmts []ast.Statement
	for p.cur().Type != token.RBrace && p.cur().Type != token.Eof {
		before := p.cur()
		if s := p.parseStatement(); s != nil {
			stmts = append(stmts, s)
		}
		if p.cur() == before {
			p.advance()
		}
	}
	p.expect(token.RBrace, "'}'")
	return stmts
}

func (p *Parser) parseLogic() ast.Node {
	start := p.cur().Start
	p.advance()
	body := p.parseBlock()
	return &ast.Logic{Body: body, Location: ast.Location{Start: start, End: p.cur().Start}}
}
