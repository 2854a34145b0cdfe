package interp

import (
	"github.com/floydspeak/floyd/internal/errs"
	"github.com/floydspeak/floyd/internal/logging"
	"github.com/floydspeak/floyd/pkg/ast"
	"github.com/floydspeak/floyd/pkg/env"
	"github.com/floydspeak/floyd/pkg/types"
	"github.com/floydspeak/floyd/pkg/value"
)

// evalCall reduces a call expression: evaluate callee then each argument
// left-to-right, check arity and argument types, then dispatch.
func (it *Interpreter) evalCall(frame *Frame, e *ast.Call) (value.Value, error) {
	callee, err := it.Eval(frame, e.Callee)
	if err != nil {
		return value.Value{}, err
	}
	if !callee.IsFunction() {
		return value.Value{}, errs.New(errs.TypeError, "call target is not a function, got %s", callee.Kind())
	}

	args := make([]value.Value, len(e.Args))
	for i, a := range e.Args {
		v, err := it.Eval(frame, a)
		if err != nil {
			return value.Value{}, err
		}
		args[i] = v
	}

	return it.Call(callee, args)
}

// Call implements the call protocol for an already-resolved callee and
// already-evaluated arguments: arity/type check, then dispatch to the
// host registry or to a fresh interpreted-function frame parented on the
// global frame (never the caller's frame — functions do not close over
// locals).
func (it *Interpreter) Call(callee value.Value, args []value.Value) (value.Value, error) {
	desc, err := callee.FunctionDescriptor()
	if err != nil {
		return value.Value{}, errs.Wrap(err, errs.TypeError, "call target is not a function")
	}
	if err := checkArity(desc, args); err != nil {
		return value.Value{}, err
	}
	if err := checkArgTypes(desc, args); err != nil {
		return value.Value{}, err
	}

	hostID, _ := callee.HostID()
	if hostID != 0 {
		entry, ok := it.Hosts.ByID(hostID)
		name := "<host>"
		if ok {
			name = entry.Name
		}
		logging.LogCall(name, true, len(args))
		return it.Hosts.Call(it.ctx, hostID, args)
	}

	def, global, err := callee.Definition()
	if err != nil {
		return value.Value{}, errs.Wrap(err, errs.TypeError, "function value has no definition")
	}
	logging.LogCall(def.Name, false, len(args))
	return it.callInterpreted(def, global, args)
}

func checkArity(desc *types.Descriptor, args []value.Value) error {
	if len(desc.Params) != len(args) {
		return errs.New(errs.ArityMismatch, "expected %d argument(s), got %d", len(desc.Params), len(args))
	}
	return nil
}

func checkArgTypes(desc *types.Descriptor, args []value.Value) error {
	for i, p := range desc.Params {
		if p.Type == nil {
			// Wildcard parameter (host builtins generic over T).
			continue
		}
		if p.Type.Kind != args[i].Kind() {
			return errs.New(errs.ArgumentTypeMismatch, "parameter %q expects %s, got %s", p.Name, p.Type, args[i].Kind())
		}
	}
	return nil
}

// callInterpreted executes an interpreted function's body in a fresh frame
// parented on the global frame. A body that falls off the end without a
// return is missing_return.
func (it *Interpreter) callInterpreted(def *ast.FunctionDef, global *Frame, args []value.Value) (value.Value, error) {
	call := env.Push[value.Value](global)
	for i, p := range def.Params {
		if err := call.Define(p.Name, args[i]); err != nil {
			return value.Value{}, errs.Wrap(err, errs.DuplicateBinding, p.Name)
		}
	}

	ret, err := it.execStmts(call, def.Body)
	if err != nil {
		return value.Value{}, err
	}
	if !ret.has {
		return value.Value{}, errs.New(errs.MissingReturn, "function %q", def.Name)
	}
	return ret.value, nil
}
