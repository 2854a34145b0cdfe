package interp

import (
	"github.com/floydspeak/floyd/internal/errs"
	"github.com/floydspeak/floyd/pkg/ast"
	"github.com/floydspeak/floyd/pkg/env"
	"github.com/floydspeak/floyd/pkg/types"
	"github.com/floydspeak/floyd/pkg/value"
)

var noReturn = returnSignal{}

// Exec executes a single statement under frame, returning a returnSignal
// that is empty unless the statement (or one it contains) produced a
// return value.
func (it *Interpreter) Exec(frame *Frame, stmt ast.Stmt) (returnSignal, error) {
	switch s := stmt.(type) {
	case *ast.Bind:
		return noReturn, it.execBind(frame, s)
	case *ast.Block:
		return it.execBlock(frame, s)
	case *ast.Return:
		return it.execReturn(frame, s)
	case *ast.If:
		return it.execIf(frame, s)
	case *ast.ForRange:
		return it.execForRange(frame, s)
	case *ast.DefFunc:
		return noReturn, it.execDefFunc(frame, s)
	case *ast.DefStruct:
		// Struct descriptors are registered entirely at load time
		// (pkg/ast's loader); at execution time this is a no-op.
		return noReturn, nil
	default:
		return noReturn, errs.New(errs.MalformedAST, "unknown statement node")
	}
}

// execStmts runs a statement sequence in order, stopping and propagating
// the first return it encounters; a sequence that never returns yields
// noReturn.
func (it *Interpreter) execStmts(frame *Frame, stmts []ast.Stmt) (returnSignal, error) {
	for _, s := range stmts {
		ret, err := it.Exec(frame, s)
		if err != nil {
			return noReturn, err
		}
		if ret.has {
			return ret, nil
		}
	}
	return noReturn, nil
}

func (it *Interpreter) execBind(frame *Frame, s *ast.Bind) error {
	v, err := it.Eval(frame, s.Expr)
	if err != nil {
		return err
	}
	if !bindTypeOK(s.DeclaredType, v, s.Expr) {
		return errs.New(errs.TypeError, "%q: declared %s, got %s", s.Name, s.DeclaredType, v.Kind())
	}
	if err := frame.Define(s.Name, v); err != nil {
		return errs.Wrap(err, errs.DuplicateBinding, s.Name)
	}
	return nil
}

// bindTypeOK checks the bind rule: the expression's dynamic type must
// match the declared type, except a null result of a call expression is
// always accepted (void-returning host functions such as print declare no
// meaningful return type for the binder's purposes).
func bindTypeOK(declared *types.Descriptor, v value.Value, expr ast.Expr) bool {
	if declared == nil {
		return true
	}
	if v.IsNull() {
		if _, isCall := expr.(*ast.Call); isCall {
			return true
		}
	}
	return valueMatchesType(declared, v)
}

func valueMatchesType(declared *types.Descriptor, v value.Value) bool {
	switch v.Kind() {
	case types.KindStruct:
		desc, err := v.StructDescriptor()
		if err != nil {
			return false
		}
		return types.Equal(declared, desc)
	case types.KindVector:
		elem, err := v.VectorElemType()
		if err != nil {
			return false
		}
		return types.Equal(declared, types.Vector(elem))
	case types.KindFunction:
		desc, err := v.FunctionDescriptor()
		if err != nil {
			return false
		}
		return types.Equal(declared, desc)
	default:
		return declared.Kind == v.Kind()
	}
}

func (it *Interpreter) execBlock(frame *Frame, s *ast.Block) (returnSignal, error) {
	block := env.Push[value.Value](frame)
	ret, err := it.execStmts(block, s.Stmts)
	env.Pop(block)
	return ret, err
}

func (it *Interpreter) execReturn(frame *Frame, s *ast.Return) (returnSignal, error) {
	v, err := it.Eval(frame, s.Expr)
	if err != nil {
		return noReturn, err
	}
	return returnSignal{value: v, has: true}, nil
}

func (it *Interpreter) execIf(frame *Frame, s *ast.If) (returnSignal, error) {
	cond, err := it.Eval(frame, s.Cond)
	if err != nil {
		return noReturn, err
	}
	b, err := cond.Bool()
	if err != nil {
		return noReturn, errs.New(errs.TypeError, "if condition requires a bool, got %s", cond.Kind())
	}
	branch := s.Else
	if b {
		branch = s.Then
	}
	block := env.Push[value.Value](frame)
	ret, err := it.execStmts(block, branch)
	env.Pop(block)
	return ret, err
}

func (it *Interpreter) execForRange(frame *Frame, s *ast.ForRange) (returnSignal, error) {
	startV, err := it.Eval(frame, s.Start)
	if err != nil {
		return noReturn, err
	}
	endV, err := it.Eval(frame, s.End)
	if err != nil {
		return noReturn, err
	}
	start, err := startV.Int()
	if err != nil {
		return noReturn, errs.New(errs.TypeError, "for range start must be int, got %s", startV.Kind())
	}
	end, err := endV.Int()
	if err != nil {
		return noReturn, errs.New(errs.TypeError, "for range end must be int, got %s", endV.Kind())
	}

	for i := start; i <= end; i++ {
		iter := env.Push[value.Value](frame)
		if err := iter.Define(s.IterName, value.NewInt(i)); err != nil {
			return noReturn, errs.Wrap(err, errs.DuplicateBinding, s.IterName)
		}
		ret, err := it.execStmts(iter, s.Body)
		env.Pop(iter)
		if err != nil {
			return noReturn, err
		}
		if ret.has {
			return ret, nil
		}
	}
	return noReturn, nil
}

func (it *Interpreter) execDefFunc(frame *Frame, s *ast.DefFunc) error {
	fn := value.NewInterpretedFunction(signatureOf(s.Def), s.Def, it.Global)
	if err := frame.Define(s.Def.Name, fn); err != nil {
		return errs.Wrap(err, errs.DuplicateBinding, s.Def.Name)
	}
	return nil
}
