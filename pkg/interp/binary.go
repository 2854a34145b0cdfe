package interp

import (
	"github.com/floydspeak/floyd/internal/errs"
	"github.com/floydspeak/floyd/pkg/ast"
	"github.com/floydspeak/floyd/pkg/types"
	"github.com/floydspeak/floyd/pkg/value"
)

// evalBinary dispatches a binary operator. && and || are special-cased
// ahead of the generic left/right evaluation so they can short-circuit;
// a naive implementation that pre-evaluates both sides before dispatching
// would evaluate the right operand even when the left already decides
// the result.
func (it *Interpreter) evalBinary(frame *Frame, e *ast.Binary) (value.Value, error) {
	if e.Op == ast.And || e.Op == ast.Or {
		return it.evalShortCircuit(frame, e)
	}

	left, err := it.Eval(frame, e.Left)
	if err != nil {
		return value.Value{}, err
	}
	right, err := it.Eval(frame, e.Right)
	if err != nil {
		return value.Value{}, err
	}

	switch e.Op {
	case ast.Add, ast.Sub, ast.Mul, ast.Div, ast.Mod:
		return evalArithmetic(e.Op, left, right)
	case ast.Lt, ast.Le, ast.Gt, ast.Ge:
		return evalOrderingComparison(e.Op, left, right)
	case ast.Eq, ast.Ne:
		return evalEquality(e.Op, left, right)
	default:
		return value.Value{}, errs.New(errs.MalformedAST, "unknown binary operator")
	}
}

func (it *Interpreter) evalShortCircuit(frame *Frame, e *ast.Binary) (value.Value, error) {
	left, err := it.Eval(frame, e.Left)
	if err != nil {
		return value.Value{}, err
	}
	lt, err := truthy(left)
	if err != nil {
		return value.Value{}, err
	}

	if e.Op == ast.And && !lt {
		return value.NewBool(false), nil
	}
	if e.Op == ast.Or && lt {
		return value.NewBool(true), nil
	}

	right, err := it.Eval(frame, e.Right)
	if err != nil {
		return value.Value{}, err
	}
	rt, err := truthy(right)
	if err != nil {
		return value.Value{}, err
	}
	if e.Op == ast.And {
		return value.NewBool(lt && rt), nil
	}
	return value.NewBool(lt || rt), nil
}

// truthy implements the logical-operand coercion rules: bool as-is,
// int/float non-zero is truthy, every other tag is a type error.
func truthy(v value.Value) (bool, error) {
	switch v.Kind() {
	case types.KindBool:
		return v.MustBool(), nil
	case types.KindInt:
		return v.MustInt() != 0, nil
	case types.KindFloat:
		return v.MustFloat() != 0, nil
	default:
		return false, errs.New(errs.TypeError, "logical operator not defined for %s", v.Kind())
	}
}

func evalArithmetic(op ast.BinOp, left, right value.Value) (value.Value, error) {
	if left.Kind() != right.Kind() {
		return value.Value{}, errs.New(errs.TypeError, "arithmetic requires matching operand tags, got %s and %s", left.Kind(), right.Kind())
	}
	switch left.Kind() {
	case types.KindInt:
		return evalIntArithmetic(op, left.MustInt(), right.MustInt())
	case types.KindFloat:
		return evalFloatArithmetic(op, left.MustFloat(), right.MustFloat())
	case types.KindString:
		if op != ast.Add {
			return value.Value{}, errs.New(errs.TypeError, "only + is defined for string operands")
		}
		return value.NewString(left.MustStr() + right.MustStr()), nil
	default:
		return value.Value{}, errs.New(errs.TypeError, "arithmetic not defined for %s", left.Kind())
	}
}

func evalIntArithmetic(op ast.BinOp, a, b int64) (value.Value, error) {
	switch op {
	case ast.Add:
		return value.NewInt(a + b), nil
	case ast.Sub:
		return value.NewInt(a - b), nil
	case ast.Mul:
		return value.NewInt(a * b), nil
	case ast.Div:
		if b == 0 {
			return value.Value{}, errs.New(errs.DivideByZero, "int division by zero")
		}
		return value.NewInt(a / b), nil
	case ast.Mod:
		if b == 0 {
			return value.Value{}, errs.New(errs.DivideByZero, "int remainder by zero")
		}
		return value.NewInt(a % b), nil
	default:
		return value.Value{}, errs.New(errs.TypeError, "unsupported int operator")
	}
}

func evalFloatArithmetic(op ast.BinOp, a, b float32) (value.Value, error) {
	switch op {
	case ast.Add:
		return value.NewFloat(a + b), nil
	case ast.Sub:
		return value.NewFloat(a - b), nil
	case ast.Mul:
		return value.NewFloat(a * b), nil
	case ast.Div:
		if b == 0 {
			return value.Value{}, errs.New(errs.DivideByZero, "float division by zero")
		}
		return value.NewFloat(a / b), nil
	case ast.Mod:
		return value.Value{}, errs.New(errs.TypeError, "%% is not defined for float operands")
	default:
		return value.Value{}, errs.New(errs.TypeError, "unsupported float operator")
	}
}

func evalOrderingComparison(op ast.BinOp, left, right value.Value) (value.Value, error) {
	c, err := value.Compare(left, right)
	if err != nil {
		return value.Value{}, errs.Wrap(err, errs.TypeError, "comparison")
	}
	switch op {
	case ast.Lt:
		return value.NewBool(c < 0), nil
	case ast.Le:
		return value.NewBool(c <= 0), nil
	case ast.Gt:
		return value.NewBool(c > 0), nil
	case ast.Ge:
		return value.NewBool(c >= 0), nil
	default:
		return value.Value{}, errs.New(errs.MalformedAST, "unknown comparison operator")
	}
}

func evalEquality(op ast.BinOp, left, right value.Value) (value.Value, error) {
	eq, err := value.Equals(left, right)
	if err != nil {
		return value.Value{}, errs.Wrap(err, errs.TypeError, "equality")
	}
	if op == ast.Ne {
		return value.NewBool(!eq), nil
	}
	return value.NewBool(eq), nil
}
