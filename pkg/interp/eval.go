package interp

import (
	"github.com/floydspeak/floyd/internal/errs"
	"github.com/floydspeak/floyd/pkg/ast"
	"github.com/floydspeak/floyd/pkg/types"
	"github.com/floydspeak/floyd/pkg/value"
)

// Eval reduces expr under env to a Value. Host-function side effects (the
// output log) are threaded through the Interpreter's own context rather
// than returned, since an exclusive handle to that context is always
// available wherever a Value is produced.
func (it *Interpreter) Eval(frame *Frame, expr ast.Expr) (value.Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return it.evalLiteral(e)
	case *ast.Variable:
		return it.evalVariable(frame, e)
	case *ast.UnaryMinus:
		return it.evalUnaryMinus(frame, e)
	case *ast.Binary:
		return it.evalBinary(frame, e)
	case *ast.Conditional:
		return it.evalConditional(frame, e)
	case *ast.Call:
		return it.evalCall(frame, e)
	case *ast.ResolveMember:
		return it.evalResolveMember(frame, e)
	case *ast.Lookup:
		return it.evalLookup(frame, e)
	case *ast.FunctionLiteral:
		return value.NewInterpretedFunction(signatureOf(e.Def), e.Def, it.Global), nil
	default:
		return value.Value{}, errs.New(errs.MalformedAST, "unknown expression node")
	}
}

func (it *Interpreter) evalLiteral(e *ast.Literal) (value.Value, error) {
	switch e.Kind {
	case types.KindNull:
		return value.Null, nil
	case types.KindBool:
		return value.NewBool(e.Bool), nil
	case types.KindInt:
		return value.NewInt(e.Int), nil
	case types.KindFloat:
		return value.NewFloat(e.Float), nil
	case types.KindString:
		return value.NewString(e.Str), nil
	default:
		return value.Value{}, errs.New(errs.MalformedAST, "unsupported literal kind %s", e.Kind)
	}
}

func (it *Interpreter) evalVariable(frame *Frame, e *ast.Variable) (value.Value, error) {
	v, err := frame.Resolve(e.Name)
	if err != nil {
		return value.Value{}, errs.Wrap(err, errs.UndefinedSymbol, e.Name)
	}
	return v, nil
}

func (it *Interpreter) evalUnaryMinus(frame *Frame, e *ast.UnaryMinus) (value.Value, error) {
	operand, err := it.Eval(frame, e.Operand)
	if err != nil {
		return value.Value{}, err
	}
	switch operand.Kind() {
	case types.KindInt:
		i, _ := operand.Int()
		return value.NewInt(-i), nil
	case types.KindFloat:
		f, _ := operand.Float()
		return value.NewFloat(-f), nil
	default:
		return value.Value{}, errs.New(errs.TypeError, "unary minus not defined for %s", operand.Kind())
	}
}

func (it *Interpreter) evalConditional(frame *Frame, e *ast.Conditional) (value.Value, error) {
	cond, err := it.Eval(frame, e.Cond)
	if err != nil {
		return value.Value{}, err
	}
	b, err := cond.Bool()
	if err != nil {
		return value.Value{}, errs.New(errs.TypeError, "conditional requires a bool, got %s", cond.Kind())
	}
	if b {
		return it.Eval(frame, e.Then)
	}
	return it.Eval(frame, e.Else)
}

func (it *Interpreter) evalResolveMember(frame *Frame, e *ast.ResolveMember) (value.Value, error) {
	parent, err := it.Eval(frame, e.Parent)
	if err != nil {
		return value.Value{}, err
	}
	if !parent.IsStruct() {
		return value.Value{}, errs.New(errs.TypeError, "-> requires a struct, got %s", parent.Kind())
	}
	m, err := parent.Member(e.Member)
	if err != nil {
		return value.Value{}, errs.Wrap(err, errs.MemberNotFound, e.Member)
	}
	return m, nil
}

func (it *Interpreter) evalLookup(frame *Frame, e *ast.Lookup) (value.Value, error) {
	parent, err := it.Eval(frame, e.Parent)
	if err != nil {
		return value.Value{}, err
	}
	key, err := it.Eval(frame, e.Key)
	if err != nil {
		return value.Value{}, err
	}
	idx, err := key.Int()
	if err != nil {
		return value.Value{}, errs.New(errs.TypeError, "index key must be int, got %s", key.Kind())
	}
	switch {
	case parent.IsVector():
		v, err := parent.VectorAt(idx)
		if err != nil {
			return value.Value{}, errs.Wrap(err, errs.IndexOutOfRange, subjectIndex(idx))
		}
		return v, nil
	case parent.IsString():
		v, err := parent.StrAt(idx)
		if err != nil {
			return value.Value{}, errs.Wrap(err, errs.IndexOutOfRange, subjectIndex(idx))
		}
		return v, nil
	default:
		return value.Value{}, errs.New(errs.TypeError, "[] requires a vector or string, got %s", parent.Kind())
	}
}

func subjectIndex(idx int64) string {
	return value.Format(value.NewInt(idx))
}

// signatureOf derives a function descriptor from a FunctionDef's params
// and declared return type — used when a function_literal or def-func
// produces a function Value, so the descriptor always travels with the
// function regardless of host vs. interpreted dispatch.
func signatureOf(def *ast.FunctionDef) *types.Descriptor {
	params := make([]types.Param, len(def.Params))
	for i, p := range def.Params {
		params[i] = types.Param{Name: p.Name, Type: p.Type}
	}
	return types.Function(def.ReturnType, params)
}
