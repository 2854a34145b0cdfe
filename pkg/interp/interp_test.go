package interp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floydspeak/floyd/internal/errs"
	"github.com/floydspeak/floyd/pkg/ast"
	"github.com/floydspeak/floyd/pkg/interp"
)

func run(t *testing.T, src string) *interp.Interpreter {
	t.Helper()
	loader := ast.NewLoader()
	program, err := loader.LoadProgram([]byte(src))
	require.NoError(t, err)

	it := interp.New()
	err = it.RunGlobal(program)
	require.NoError(t, err)
	return it
}

func globalInt(t *testing.T, it *interp.Interpreter, name string) int64 {
	t.Helper()
	v, err := it.Global.Resolve(name)
	require.NoError(t, err)
	i, err := v.Int()
	require.NoError(t, err)
	return i
}

// let int result = 1 + 2.
func TestArithmeticBind(t *testing.T) {
	it := run(t, `[["bind", "^int", "result", ["+", ["k", 1, "^int"], ["k", 2, "^int"], "^int"]]]`)
	assert.Equal(t, int64(3), globalInt(t, it, "result"))
}

// Scenario 2: let int result = 5 * ((1 + 3) * 2 + 1).
func TestArithmeticPrecedenceByNesting(t *testing.T) {
	inner := `["+", ["*", ["+", ["k",1,"^int"], ["k",3,"^int"], "^int"], ["k",2,"^int"], "^int"], ["k",1,"^int"], "^int"]`
	src := `[["bind", "^int", "result", ["*", ["k",5,"^int"], ` + inner + `, "^int"]]]`
	it := run(t, src)
	assert.Equal(t, int64(45), globalInt(t, it, "result"))
}

// Scenario 3: let bool result = 3 == 3 ? true : false.
func TestConditionalOnEquality(t *testing.T) {
	src := `[["bind", "^bool", "result",
		["?:", ["==", ["k",3,"^int"], ["k",3,"^int"], "^bool"],
		       ["k", true, "^bool"], ["k", false, "^bool"], "^bool"]]]`
	it := run(t, src)
	v, err := it.Global.Resolve("result")
	require.NoError(t, err)
	b, err := v.Bool()
	require.NoError(t, err)
	assert.True(t, b)
}

// Scenario 4: recursive fib(10) == 55.
func TestRecursiveFunctionCall(t *testing.T) {
	fnType := `{"function": {"return": "^int", "params": ["^int"]}}`
	fib := `["@", "fib", ` + fnType + `]`
	body := `[
		["if", ["<=", ["@","n","^int"], ["k",1,"^int"], "^bool"],
			[["return", ["@","n","^int"]]],
			[]],
		["return",
			["+",
				["call", ` + fib + `, [["-", ["@","n","^int"], ["k",2,"^int"], "^int"]], "^int"],
				["call", ` + fib + `, [["-", ["@","n","^int"], ["k",1,"^int"], "^int"]], "^int"],
				"^int"]]
	]`
	def := `["def-func", {"name":"fib","return_type":"^int","args":[{"name":"n","type":"^int"}],"statements":` + body + `}]`
	src := `[` + def + `, ["bind", "^int", "result", ["call", ` + fib + `, [["k",10,"^int"]], "^int"]]]`
	it := run(t, src)
	assert.Equal(t, int64(55), globalInt(t, it, "result"))
}

// Scenario 5: let int r = print("Hello, World!"); output log = ["Hello, World!"], r = null.
func TestPrintAppendsOutputLogAndReturnsNull(t *testing.T) {
	src := `[["bind", "^int", "r", ["call", ["@","print","^int"], [["k","Hello, World!","^string"]], "^null"]]]`
	it := run(t, src)
	assert.Equal(t, []string{"Hello, World!"}, it.Output())

	v, err := it.Global.Resolve("r")
	require.NoError(t, err)
	assert.True(t, v.IsNull(), "bind accepts a null call result against a mismatched declared type")
}

// Scenario 6: for(i in 0...2){ let int d = print(to_string(i)); } -> output log = ["0","1","2"].
func TestForRangeIsInclusiveAndPrintsEachIteration(t *testing.T) {
	body := `[["bind", "^int", "d", ["call", ["@","print","^int"],
		[["call", ["@","to_string","^string"], [["@","i","^int"]], "^string"]], "^null"]]]`
	src := `[["for", "i", ["k",0,"^int"], ["k",2,"^int"], ` + body + `]]`
	it := run(t, src)
	assert.Equal(t, []string{"0", "1", "2"}, it.Output())
}

// Scenario 7: let int x = 3/0; -> divide_by_zero.
func TestIntDivisionByZero(t *testing.T) {
	loader := ast.NewLoader()
	program, err := loader.LoadProgram([]byte(
		`[["bind", "^int", "x", ["/", ["k",3,"^int"], ["k",0,"^int"], "^int"]]]`))
	require.NoError(t, err)

	it := interp.New()
	err = it.RunGlobal(program)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.DivideByZero))
}

func TestShortCircuitAndDoesNotEvaluateRightOperand(t *testing.T) {
	// false && (3/0 == 0) must not raise divide_by_zero.
	src := `[["bind", "^bool", "r",
		["&&", ["k", false, "^bool"],
		       ["==", ["/", ["k",3,"^int"], ["k",0,"^int"], "^int"], ["k",0,"^int"], "^bool"],
		       "^bool"]]]`
	it := run(t, src)
	v, err := it.Global.Resolve("r")
	require.NoError(t, err)
	b, _ := v.Bool()
	assert.False(t, b)
}

func TestDuplicateBindingInSameFrame(t *testing.T) {
	loader := ast.NewLoader()
	program, err := loader.LoadProgram([]byte(
		`[["bind","^int","x",["k",1,"^int"]], ["bind","^int","x",["k",2,"^int"]]]`))
	require.NoError(t, err)

	it := interp.New()
	err = it.RunGlobal(program)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.DuplicateBinding))
}

func TestReturnAtTopLevelIsRejected(t *testing.T) {
	loader := ast.NewLoader()
	program, err := loader.LoadProgram([]byte(`[["return", ["k",1,"^int"]]]`))
	require.NoError(t, err)

	it := interp.New()
	err = it.RunGlobal(program)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ReturnInGlobal))
}

func TestMissingReturnInInterpretedFunction(t *testing.T) {
	def := `["def-func", {"name":"f","return_type":"^int","args":[],"statements":[]}]`
	fnType := `{"function": {"return": "^int", "params": []}}`
	src := `[` + def + `, ["bind", "^int", "r", ["call", ["@","f",` + fnType + `], [], "^int"]]]`

	loader := ast.NewLoader()
	program, err := loader.LoadProgram([]byte(src))
	require.NoError(t, err)

	it := interp.New()
	err = it.RunGlobal(program)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.MissingReturn))
}

func TestRunMainResolvesAndInvokesMain(t *testing.T) {
	def := `["def-func", {"name":"main","return_type":"^int","args":[],"statements":[["return",["k",7,"^int"]]]}]`
	loader := ast.NewLoader()
	program, err := loader.LoadProgram([]byte(`[` + def + `]`))
	require.NoError(t, err)

	it := interp.New()
	result, err := it.RunMain(program, nil)
	require.NoError(t, err)
	i, _ := result.Int()
	assert.Equal(t, int64(7), i)
}
