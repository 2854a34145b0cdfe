package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floydspeak/floyd/pkg/ast"
)

func TestLoadProgramBindAndReturn(t *testing.T) {
	src := `[
		["bind", "^int", "x", ["k", 41, "^int"]],
		["return", ["+", ["@", "x", "^int"], ["k", 1, "^int"], "^int"]]
	]`
	program, err := ast.NewLoader().LoadProgram([]byte(src))
	require.NoError(t, err)
	require.Len(t, program, 2)

	bind, ok := program[0].(*ast.Bind)
	require.True(t, ok)
	assert.Equal(t, "x", bind.Name)

	ret, ok := program[1].(*ast.Return)
	require.True(t, ok)
	bin, ok := ret.Expr.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, ast.Add, bin.Op)
}

func TestLoadProgramDefFuncAndCall(t *testing.T) {
	src := `[
		["def-func", {
			"name": "add",
			"return_type": "^int",
			"args": [{"name": "a", "type": "^int"}, {"name": "b", "type": "^int"}],
			"statements": [["return", ["+", ["@", "a", "^int"], ["@", "b", "^int"], "^int"]]]
		}],
		["bind", "^int", "r", ["call", ["@", "add", {"function": {"return": "^int", "params": ["^int", "^int"]}}], [["k", 1, "^int"], ["k", 2, "^int"]], "^int"]]
	]`
	program, err := ast.NewLoader().LoadProgram([]byte(src))
	require.NoError(t, err)
	require.Len(t, program, 2)

	def, ok := program[0].(*ast.DefFunc)
	require.True(t, ok)
	assert.Equal(t, "add", def.Def.Name)
	assert.Len(t, def.Def.Params, 2)

	bind, ok := program[1].(*ast.Bind)
	require.True(t, ok)
	call, ok := bind.Expr.(*ast.Call)
	require.True(t, ok)
	assert.Len(t, call.Args, 2)
}

func TestLoadProgramDefStructAndMemberAccess(t *testing.T) {
	src := `[
		["def-struct", {"name": "Point", "members": [{"name": "x", "type": "^int"}, {"name": "y", "type": "^int"}]}],
		["bind", "^int", "x", ["->", ["@", "p", "#Point"], "x", "^int"]]
	]`
	program, err := ast.NewLoader().LoadProgram([]byte(src))
	require.NoError(t, err)
	require.Len(t, program, 2)

	ds, ok := program[0].(*ast.DefStruct)
	require.True(t, ok)
	assert.Equal(t, "Point", ds.Name)
	assert.Len(t, ds.Members, 2)

	bind, ok := program[1].(*ast.Bind)
	require.True(t, ok)
	member, ok := bind.Expr.(*ast.ResolveMember)
	require.True(t, ok)
	assert.Equal(t, "x", member.Member)
}

func TestLoadProgramForAndIf(t *testing.T) {
	src := `[
		["for", "i", ["k", 0, "^int"], ["k", 2, "^int"], [
			["if", ["==", ["@", "i", "^int"], ["k", 1, "^int"], "^bool"], [
				["return", ["k", 1, "^int"]]
			], []]
		]]
	]`
	program, err := ast.NewLoader().LoadProgram([]byte(src))
	require.NoError(t, err)
	require.Len(t, program, 1)

	fr, ok := program[0].(*ast.ForRange)
	require.True(t, ok)
	assert.Equal(t, "i", fr.IterName)
	require.Len(t, fr.Body, 1)
	_, ok = fr.Body[0].(*ast.If)
	assert.True(t, ok)
}

func TestLoadProgramRejectsWrongArity(t *testing.T) {
	_, err := ast.NewLoader().LoadProgram([]byte(`[["bind", "^int", "x"]]`))
	assert.Error(t, err)
}

func TestLoadProgramRejectsUnknownTag(t *testing.T) {
	_, err := ast.NewLoader().LoadProgram([]byte(`[["wat", 1]]`))
	assert.Error(t, err)
}

func TestLoadProgramRejectsNonArrayTopLevel(t *testing.T) {
	_, err := ast.NewLoader().LoadProgram([]byte(`{"not": "an array"}`))
	assert.Error(t, err)
}

func TestLoadProgramFunctionLiteral(t *testing.T) {
	src := `[["bind", {"function": {"return": "^int", "params": []}}, "f",
		["func", {"name": "", "return_type": "^int", "args": [], "statements": [["return", ["k", 1, "^int"]]]},
		 {"function": {"return": "^int", "params": []}}]
	]]`
	program, err := ast.NewLoader().LoadProgram([]byte(src))
	require.NoError(t, err)
	bind, ok := program[0].(*ast.Bind)
	require.True(t, ok)
	_, ok = bind.Expr.(*ast.FunctionLiteral)
	assert.True(t, ok)
}
