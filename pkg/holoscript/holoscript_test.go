package holoscript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValidSourceReturnsProgramNoDiagnostics(t *testing.T) {
	prog, diags := Parse(`orb test { color: "red" }`)
	require.Empty(t, diags)
	require.NotNil(t, prog)
	assert.Len(t, prog.Body, 1)
}

func TestParseInvalidSourceReturnsNilProgram(t *testing.T) {
	prog, diags := Parse(`orb { color: "red"`)
	assert.NotEmpty(t, diags)
	assert.Nil(t, prog)
}

func TestParseNeverReturnsBothNilAndNonEmpty(t *testing.T) {
	cases := []string{
		``,
		`orb test { color: "red" }`,
		`orb { }`,
		`composition "X" { orb a { } orb b { }`,
	}
	for _, src := range cases {
		prog, diags := Parse(src)
		if len(diags) == 0 {
			assert.NotNil(t, prog, "source %q: expected program when no diagnostics", src)
		} else {
			assert.Nil(t, prog, "source %q: expected nil program when diagnostics present", src)
		}
	}
}

func TestValidate(t *testing.T) {
	assert.True(t, Validate(`orb test { color: "red" }`))
	assert.False(t, Validate(`orb { color: "red"`))
}

func TestValidateDetailed(t *testing.T) {
	ok, diags := ValidateDetailed(`orb test { color: "red" }`)
	assert.True(t, ok)
	assert.Empty(t, diags)

	ok, diags = ValidateDetailed(`orb { color: "red"`)
	assert.False(t, ok)
	assert.NotEmpty(t, diags)
}

func TestVersionIsSet(t *testing.T) {
	assert.NotEmpty(t, Version)
}
