package ast

import (
	"encoding/json"
	"testing"

	"github.com/holoscript-lang/go-holoscript/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgramMarshalJSONNormalizesNilSlices(t *testing.T) {
	p := &Program{}
	data, err := json.Marshal(p)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "Program", decoded["type"])
	assert.Equal(t, []interface{}{}, decoded["body"])
	assert.Equal(t, []interface{}{}, decoded["directives"])
}

func TestEntityMarshalJSONUsesKindAsType(t *testing.T) {
	e := &Entity{
		Kind: "Orb",
		Name: "test",
		Properties: []*Property{
			{Key: "color", Value: &StringLiteral{Value: "red"}},
		},
	}
	data, err := json.Marshal(e)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "Orb", decoded["type"])
	assert.Equal(t, "test", decoded["name"])
	_, hasObjectType := decoded["objectType"]
	assert.False(t, hasObjectType)
}

func TestEntityMarshalJSONIncludesObjectTypeWhenSet(t *testing.T) {
	e := &Entity{Kind: "GenericObject", Name: "mycube", ObjectType: "cube"}
	data, err := json.Marshal(e)
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "cube", decoded["objectType"])
}

func TestTraitTokenLiteralPrefixesAt(t *testing.T) {
	trait := &Trait{Name: "grabbable"}
	assert.Equal(t, "@grabbable", trait.TokenLiteral())
}

func TestTraitMarshalJSONOmitsNilConfig(t *testing.T) {
	trait := &Trait{Name: "grabbable"}
	data, err := json.Marshal(trait)
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	_, hasConfig := decoded["config"]
	assert.False(t, hasConfig)
}

func TestNumberLiteralPreservesRawText(t *testing.T) {
	n := &NumberLiteral{Value: 7, Raw: "007"}
	assert.Equal(t, "007", n.Raw)
	assert.Equal(t, float64(7), n.Value)
}

func TestLocationRoundTrips(t *testing.T) {
	loc := Location{
		Start: token.Position{Line: 1, Column: 1, Offset: 0},
		End:   token.Position{Line: 1, Column: 10, Offset: 9},
	}
	e := &Entity{Kind: "Orb", Location: loc}
	assert.Equal(t, loc, e.Loc())
}

func TestIfStatementHasAlternateDistinguishesEmptyElse(t *testing.T) {
	withAlt := &IfStatement{HasAlternate: true, Alternate: []Statement{}}
	withoutAlt := &IfStatement{HasAlternate: false}
	assert.True(t, withAlt.HasAlternate)
	assert.False(t, withoutAlt.HasAlternate)
}
