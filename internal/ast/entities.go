package ast

import "encoding/json"

// Entity is the shared shape of every named scene container: composition,
// world, orb, entity, template, group, and generic objects.
type Entity struct {
	Kind       string // "Composition", "Orb", "Entity", "GenericObject", ...
	Name       string
	ObjectType string // only set for GenericObject
	Traits     []*Trait
	Properties []*Property
	Children   []Node
	Location   Location
}

func (e *Entity) TokenLiteral() string { return e.Kind }
func (e *Entity) Loc() Location        { return e.Location }
func (e *Entity) expressionNode()      {}
func (e *Entity) String() string {
	out, _ := json.Marshal(e)
	return string(out)
}

func (e *Entity) MarshalJSON() ([]byte, error) {
	type alias struct {
		Type       string      `json:"type"`
		Name       string      `json:"name,omitempty"`
		ObjectType string      `json:"objectType,omitempty"`
		Traits     []*Trait    `json:"traits"`
		Properties []*Property `json:"properties"`
		Children   []Node      `json:"children"`
	}
	return json.Marshal(alias{e.Kind, e.Name, e.ObjectType, e.Traits, e.Properties, nonNil(e.Children)})
}

// Environment is the untitled `environment { ... }` entity.
type Environment struct {
	Properties []*Property
	Children   []Node
	Location   Location
}

func (n *Environment) TokenLiteral() string { return "Environment" }
func (n *Environment) Loc() Location        { return n.Location }
func (n *Environment) expressionNode()      {}
func (n *Environment) String() string {
	out, _ := json.Marshal(n)
	return string(out)
}
func (n *Environment) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type       string      `json:"type"`
		Properties []*Property `json:"properties"`
		Children   []Node      `json:"children"`
	}{"Environment", n.Properties, nonNil(n.Children)})
}

// GameEntity covers the properties-only entities: npc, quest, ability,
// dialogue, achievement.
type GameEntity struct {
	Kind       string
	Name       string
	Properties []*Property
	Location   Location
}

func (n *GameEntity) TokenLiteral() string { return n.Kind }
func (n *GameEntity) Loc() Location        { return n.Location }
func (n *GameEntity) expressionNode()      {}
func (n *GameEntity) String() string {
	out, _ := json.Marshal(n)
	return string(out)
}
func (n *GameEntity) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type       string      `json:"type"`
		Name       string      `json:"name,omitempty"`
		Properties []*Property `json:"properties"`
	}{n.Kind, n.Name, n.Properties})
}

// Using represents `using TEMPLATE { overrides }` inside an entity body.
type Using struct {
	Template  string
	Overrides []*Property
	Location  Location
}

func (n *Using) TokenLiteral() string { return "Using" }
func (n *Using) Loc() Location        { return n.Location }
func (n *Using) expressionNode()      {}
func (n *Using) String() string {
	out, _ := json.Marshal(n)
	return string(out)
}
func (n *Using) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type      string      `json:"type"`
		Template  string      `json:"template"`
		Overrides []*Property `json:"overrides"`
	}{"Using", n.Template, n.Overrides})
}
