// Package ast defines the HoloScript syntax tree: a tagged-variant node set
// produced by the parser and consumed read-only by downstream tooling.
package ast

import (
	"encoding/json"

	"github.com/holoscript-lang/go-holoscript/internal/token"
)

// Location is the source span covered by a node.
type Location struct {
	Start token.Position `json:"start"`
	End   token.Position `json:"end"`
}

// Node is any element of the syntax tree.
type Node interface {
	TokenLiteral() string
	String() string
	Loc() Location
}

// Expression is a Node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is a Node used for its effect rather than its value.
type Statement interface {
	Node
	statementNode()
}

// Program is the root of every HoloScript syntax tree.
type Program struct {
	Body       []Node
	Directives []Node
	Location   Location
}

func (p *Program) TokenLiteral() string { return "Program" }
func (p *Program) Loc() Location        { return p.Location }
func (p *Program) String() string {
	out, _ := json.Marshal(p)
	return string(out)
}

func (p *Program) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type       string `json:"type"`
		Body       []Node `json:"body"`
		Directives []Node `json:"directives"`
	}{"Program", nonNil(p.Body), nonNil(p.Directives)})
}

func nonNil(nodes []Node) []Node {
	if nodes == nil {
		return []Node{}
	}
	return nodes
}
