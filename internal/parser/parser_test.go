package parser

import (
	"testing"

	"github.com/holoscript-lang/go-holoscript/internal/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrbWithProperty(t *testing.T) {
	prog, diags := Parse(`orb test { color: "red" }`)
	require.Empty(t, diags)
	require.Len(t, prog.Body, 1)
	orb, ok := prog.Body[0].(*ast.Entity)
	require.True(t, ok)
	assert.Equal(t, "Orb", orb.Kind)
	assert.Equal(t, "test", orb.Name)
	require.Len(t, orb.Properties, 1)
	assert.Equal(t, "color", orb.Properties[0].Key)
	str, ok := orb.Properties[0].Value.(*ast.StringLiteral)
	require.True(t, ok)
	assert.Equal(t, "red", str.Value)
}

func TestParseOrbWithTraitAndArrayPosition(t *testing.T) {
	prog, diags := Parse(`orb cube { @grabbable position: [0, 1, 0] }`)
	require.Empty(t, diags)
	orb := prog.Body[0].(*ast.Entity)
	require.Len(t, orb.Traits, 1)
	assert.Equal(t, "grabbable", orb.Traits[0].Name)
	require.Len(t, orb.Properties, 1)
	arr, ok := orb.Properties[0].Value.(*ast.ArrayLiteral)
	require.True(t, ok)
	assert.Len(t, arr.Elements, 3)
}

func TestParseCompositionWithEnvironmentAndOrb(t *testing.T) {
	src := `composition "VR Game" {
		environment { skybox: "nebula" ambient_light: 0.5 }
		orb player { @grabbable position: [0, 1.6, 0] }
	}`
	prog, diags := Parse(src)
	require.Empty(t, diags)
	comp := prog.Body[0].(*ast.Entity)
	assert.Equal(t, "Composition", comp.Kind)
	assert.Equal(t, "VR Game", comp.Name)
	require.Len(t, comp.Children, 2)
	env, ok := comp.Children[0].(*ast.Environment)
	require.True(t, ok)
	assert.Len(t, env.Properties, 2)
	orb, ok := comp.Children[1].(*ast.Entity)
	require.True(t, ok)
	assert.Equal(t, "player", orb.Name)
}

func TestParseStateMachine(t *testing.T) {
	src := `state_machine "GameController" {
		initialState: "idle"
		states: {
			"idle": { entry: "init" timeout: 5000 },
			"running": { entry: "start" }
		}
	}`
	prog, diags := Parse(src)
	require.Empty(t, diags)
	sm := prog.Body[0].(*ast.StateMachine)
	assert.Equal(t, "GameController", sm.Name)
	require.Len(t, sm.States, 2)
	assert.Equal(t, "idle", sm.States[0].Name)
	assert.Equal(t, "running", sm.States[1].Name)
}

func TestParseTalentTreeNamePrecedence(t *testing.T) {
	src := `talent_tree "WarriorSkills" {
		class: "warrior"
		rows: [
			{ tier: 1, nodes: [ { id: "slash", name: "Power Slash", points: 1 }, { id: "block", name: "Shield Block", points: 2 } ] },
			{ tier: 2, nodes: [ { id: "charge", name: "Battle Charge", points: 1 } ] }
		]
	}`
	prog, diags := Parse(src)
	require.Empty(t, diags)
	tt := prog.Body[0].(*ast.TalentTree)
	require.Len(t, tt.Tiers, 2)
	assert.Equal(t, 1, tt.Tiers[0].Level)
	assert.Equal(t, "Power Slash", tt.Tiers[0].Nodes[0].Name)
	assert.Equal(t, 2, tt.Tiers[1].Level)
	assert.Len(t, tt.Tiers[1].Nodes, 1)
}

func TestParseTalentNodeNameOverIdRegardlessOfOrder(t *testing.T) {
	prog, diags := Parse(`talent_tree "T" { rows: [ { tier: 1, nodes: [ { name: "Y", id: "x" } ] } ] }`)
	require.Empty(t, diags)
	tt := prog.Body[0].(*ast.TalentTree)
	assert.Equal(t, "Y", tt.Tiers[0].Nodes[0].Name)
}

func TestParseMissingNameIsError(t *testing.T) {
	_, diags := Parse(`orb { missing name }`)
	assert.NotEmpty(t, diags)
}

func TestParseNestedGroupWithOrbChildren(t *testing.T) {
	src := `composition "Nested" {
		group Room {
			orb light { color: "white" }
			orb table { @collidable geometry: "cube" }
		}
	}`
	prog, diags := Parse(src)
	require.Empty(t, diags)
	comp := prog.Body[0].(*ast.Entity)
	group := comp.Children[0].(*ast.Entity)
	assert.Equal(t, "Group", group.Kind)
	require.Len(t, group.Children, 2)
}

func TestParseUsingTemplate(t *testing.T) {
	src := `composition "Demo" {
		template "Cube" { geometry: "cube" color: "red" }
		object "MyCube" using "Cube" { position: [0, 0, 0] }
	}`
	prog, diags := Parse(src)
	require.Empty(t, diags)
	comp := prog.Body[0].(*ast.Entity)
	require.Len(t, comp.Children, 2)
	myCube := comp.Children[1].(*ast.Entity)
	assert.Equal(t, "GenericObject", myCube.Kind)
	require.Len(t, myCube.Children, 1)
	using, ok := myCube.Children[0].(*ast.Using)
	require.True(t, ok)
	assert.Equal(t, "Cube", using.Template)
}

func TestParseEntityEventHandler(t *testing.T) {
	src := `composition "Game" {
		onStart: { console.log("Started") }
	}`
	prog, diags := Parse(src)
	require.Empty(t, diags)
	comp := prog.Body[0].(*ast.Entity)
	require.Len(t, comp.Children, 1)
	handler, ok := comp.Children[0].(*ast.EventHandler)
	require.True(t, ok)
	assert.Equal(t, "onStart", handler.Event)
	require.Len(t, handler.Body, 1)
	exprStmt, ok := handler.Body[0].(*ast.ExpressionStatement)
	require.True(t, ok)
	call, ok := exprStmt.Expression.(*ast.CallExpression)
	require.True(t, ok)
	member, ok := call.Callee.(*ast.MemberExpression)
	require.True(t, ok)
	assert.False(t, member.Computed)
}

func TestParseLogicStatementBlock(t *testing.T) {
	prog, diags := Parse(`logic { a.b(c) let x = 1 }`)
	require.Empty(t, diags)
	logic := prog.Body[0].(*ast.Logic)
	require.Len(t, logic.Body, 2)
	_, ok := logic.Body[0].(*ast.ExpressionStatement)
	assert.True(t, ok)
	varStmt, ok := logic.Body[1].(*ast.VarStatement)
	require.True(t, ok)
	assert.Equal(t, "x", varStmt.Name)
}

func TestParseMemberCallChain(t *testing.T) {
	prog, diags := Parse(`logic { a.b(c) }`)
	require.Empty(t, diags)
	logic := prog.Body[0].(*ast.Logic)
	exprStmt := logic.Body[0].(*ast.ExpressionStatement)
	call := exprStmt.Expression.(*ast.CallExpression)
	_, ok := call.Callee.(*ast.MemberExpression)
	assert.True(t, ok)
}

func TestParseForLoopColonSeparated(t *testing.T) {
	prog, diags := Parse(`logic { for (let i = 0 : i : i) { } }`)
	require.Empty(t, diags)
	logic := prog.Body[0].(*ast.Logic)
	forStmt, ok := logic.Body[0].(*ast.ForStatement)
	require.True(t, ok)
	assert.NotNil(t, forStmt.Init)
}

func TestParseEmptySourceSucceeds(t *testing.T) {
	prog, diags := Parse("")
	require.Empty(t, diags)
	assert.Empty(t, prog.Body)
}

func TestParseCommentsOnlySucceeds(t *testing.T) {
	prog, diags := Parse("// just a comment\n# another\n")
	require.Empty(t, diags)
	assert.Empty(t, prog.Body)
}

func TestParseUnbalancedBracesIsError(t *testing.T) {
	_, diags := Parse(`orb test { color: "red"`)
	assert.NotEmpty(t, diags)
}

func TestParseTopLevelTraitStaysInBody(t *testing.T) {
	prog, diags := Parse(`@grabbable orb test { color: "red" }`)
	require.Empty(t, diags)
	require.Len(t, prog.Body, 2)
	_, ok := prog.Body[0].(*ast.Trait)
	assert.True(t, ok)
}

func TestParseDialogueAcceptsQuotedName(t *testing.T) {
	prog, diags := Parse(`dialogue "Some Name" { text: "hello" }`)
	require.Empty(t, diags)
	require.Len(t, prog.Body, 1)
	dlg, ok := prog.Body[0].(*ast.GameEntity)
	require.True(t, ok)
	assert.Equal(t, "Dialogue", dlg.Kind)
	assert.Equal(t, "Some Name", dlg.Name)
}

func TestParseDialogueAcceptsIdentifierName(t *testing.T) {
	prog, diags := Parse(`dialogue GreeterLine { text: "hello" }`)
	require.Empty(t, diags)
	dlg := prog.Body[0].(*ast.GameEntity)
	assert.Equal(t, "GreeterLine", dlg.Name)
}

func TestParsePreservesCommentsAtTopLevel(t *testing.T) {
	prog, diags := Parse("// hello\norb test { color: \"red\" }", WithPreserveComments(true))
	require.Empty(t, diags)
	require.Len(t, prog.Body, 2)
	comment, ok := prog.Body[0].(*ast.CommentNode)
	require.True(t, ok)
	assert.Equal(t, " hello", comment.Value)
	assert.False(t, comment.Block)
	_, ok = prog.Body[1].(*ast.Entity)
	assert.True(t, ok)
}

func TestParsePreservesCommentsInsideEntityBody(t *testing.T) {
	src := `orb test {
		// a note
		color: "red"
	}`
	prog, diags := Parse(src, WithPreserveComments(true))
	require.Empty(t, diags)
	orb := prog.Body[0].(*ast.Entity)
	require.Len(t, orb.Children, 1)
	_, ok := orb.Children[0].(*ast.CommentNode)
	assert.True(t, ok)
}

func TestParsePreservesCommentsInsideLogicBlock(t *testing.T) {
	prog, diags := Parse("logic { // note\n let x = 1 }", WithPreserveComments(true))
	require.Empty(t, diags)
	logic := prog.Body[0].(*ast.Logic)
	require.Len(t, logic.Body, 2)
	_, ok := logic.Body[0].(*ast.CommentNode)
	assert.True(t, ok)
}

func TestParseWithoutPreserveCommentsDropsComments(t *testing.T) {
	prog, diags := Parse("// hello\norb test { color: \"red\" }")
	require.Empty(t, diags)
	require.Len(t, prog.Body, 1)
	_, ok := prog.Body[0].(*ast.Entity)
	assert.True(t, ok)
}

func TestParseImportStatement(t *testing.T) {
	prog, diags := Parse(`import { Foo, Bar as Baz } from "./lib"`)
	require.Empty(t, diags)
	imp := prog.Body[0].(*ast.ImportStatement)
	assert.Equal(t, "./lib", imp.Source)
	require.Len(t, imp.Specifiers, 2)
	assert.Equal(t, "Baz", imp.Specifiers[1].Alias)
}
