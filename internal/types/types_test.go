package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReflexivity(t *testing.T) {
	for _, k := range []Kind{KString, KNumber, KBoolean, KVec3, KOrb} {
		ty := Simple(k)
		assert.True(t, ty.IsAssignableTo(ty))
	}
}

func TestAnyIsBidirectional(t *testing.T) {
	any := Simple(KAny)
	str := Simple(KString)
	assert.True(t, str.IsAssignableTo(any))
	assert.True(t, any.IsAssignableTo(str))
}

func TestNullAssignableToObjectArrayAndEntities(t *testing.T) {
	null := Simple(KNull)
	assert.True(t, null.IsAssignableTo(Object(nil)))
	assert.True(t, null.IsAssignableTo(Array(Simple(KNumber))))
	assert.True(t, null.IsAssignableTo(Simple(KOrb)))
	assert.True(t, null.IsAssignableTo(Simple(KComposition)))
	assert.False(t, null.IsAssignableTo(Simple(KNumber)))
}

func TestArrayCovariance(t *testing.T) {
	numArr := Array(Simple(KNumber))
	anyArr := Array(Simple(KAny))
	assert.True(t, numArr.IsAssignableTo(anyArr))

	strArr := Array(Simple(KString))
	assert.False(t, numArr.IsAssignableTo(strArr))
}

func TestVec3ArrayInterop(t *testing.T) {
	vec3 := Simple(KVec3)
	numArr := Array(Simple(KNumber))
	assert.True(t, vec3.IsAssignableTo(numArr))
	assert.True(t, numArr.IsAssignableTo(vec3))

	strArr := Array(Simple(KString))
	assert.False(t, vec3.IsAssignableTo(strArr))
}

func TestStringAndVec4AssignableToColor(t *testing.T) {
	color := Simple(KColor)
	assert.True(t, Simple(KString).IsAssignableTo(color))
	assert.True(t, Simple(KVec4).IsAssignableTo(color))
	assert.False(t, color.IsAssignableTo(Simple(KString)))
}

func TestUnrelatedKindsNotAssignable(t *testing.T) {
	assert.False(t, Simple(KBoolean).IsAssignableTo(Simple(KNumber)))
	assert.False(t, Simple(KOrb).IsAssignableTo(Simple(KEntity)))
}

func TestStringRendering(t *testing.T) {
	assert.Equal(t, "number", Simple(KNumber).String())
	assert.Equal(t, "number[]", Array(Simple(KNumber)).String())
	assert.Equal(t, "Vec3", Simple(KVec3).String())
	assert.Equal(t, "{ x: number, y: string }", Object([]Field{
		{Name: "x", Type: Simple(KNumber)},
		{Name: "y", Type: Simple(KString)},
	}).String())
	assert.Equal(t, "(number) => boolean", Function([]*Type{Simple(KNumber)}, Simple(KBoolean)).String())
}
