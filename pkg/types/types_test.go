package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/floydspeak/floyd/pkg/types"
)

func TestEqualScalars(t *testing.T) {
	assert.True(t, types.Equal(types.Int(), types.Int()))
	assert.False(t, types.Equal(types.Int(), types.Float()))
	assert.False(t, types.Equal(types.Int(), nil))
}

func TestEqualStructIsStructural(t *testing.T) {
	a := types.Struct("Point", []types.Member{
		{Name: "x", Type: types.Int()},
		{Name: "y", Type: types.Int()},
	})
	b := types.Struct("Coord", []types.Member{
		{Name: "x", Type: types.Int()},
		{Name: "y", Type: types.Int()},
	})
	assert.True(t, types.Equal(a, b), "structurally identical structs are the same type regardless of name")

	c := types.Struct("Point3", []types.Member{
		{Name: "x", Type: types.Int()},
		{Name: "y", Type: types.Int()},
		{Name: "z", Type: types.Int()},
	})
	assert.False(t, types.Equal(a, c))
}

func TestEqualVectorAndFunction(t *testing.T) {
	v1 := types.Vector(types.String())
	v2 := types.Vector(types.String())
	v3 := types.Vector(types.Int())
	assert.True(t, types.Equal(v1, v2))
	assert.False(t, types.Equal(v1, v3))

	f1 := types.Function(types.Int(), []types.Param{{Name: "a", Type: types.Int()}})
	f2 := types.Function(types.Int(), []types.Param{{Name: "b", Type: types.Int()}})
	assert.True(t, types.Equal(f1, f2), "param names are not part of the structural signature")
}

func TestParseScalarTags(t *testing.T) {
	reg := types.NewRegistry()
	for tag, wantKind := range map[string]types.Kind{
		`"^null"`:   types.KindNull,
		`"^bool"`:   types.KindBool,
		`"^int"`:    types.KindInt,
		`"^float"`:  types.KindFloat,
		`"^string"`: types.KindString,
	} {
		d, err := types.Parse([]byte(tag), reg)
		assert.NoError(t, err)
		assert.Equal(t, wantKind, d.Kind)
	}
}

func TestParseVectorAndFunction(t *testing.T) {
	reg := types.NewRegistry()
	d, err := types.Parse([]byte(`{"vector":"^int"}`), reg)
	assert.NoError(t, err)
	assert.Equal(t, types.KindVector, d.Kind)
	assert.Equal(t, types.KindInt, d.Elem.Kind)

	d2, err := types.Parse([]byte(`{"function":{"return":"^string","params":["^int","^int"]}}`), reg)
	assert.NoError(t, err)
	assert.Equal(t, types.KindFunction, d2.Kind)
	assert.Equal(t, types.KindString, d2.Return.Kind)
	assert.Len(t, d2.Params, 2)
}

func TestParseStructReference(t *testing.T) {
	reg := types.NewRegistry()
	reg.Define("Point", types.Struct("Point", []types.Member{{Name: "x", Type: types.Int()}}))

	d, err := types.Parse([]byte(`"#Point"`), reg)
	assert.NoError(t, err)
	assert.Equal(t, "Point", d.StructName)
	assert.Len(t, d.Members, 1)
}

func TestParseMalformed(t *testing.T) {
	_, err := types.Parse([]byte(`"^weird"`), types.NewRegistry())
	assert.Error(t, err)

	_, err = types.Parse([]byte(`{}`), types.NewRegistry())
	assert.Error(t, err)
}
