package interp

import (
	"github.com/floydspeak/floyd/internal/errs"
	"github.com/floydspeak/floyd/internal/logging"
	"github.com/floydspeak/floyd/pkg/ast"
	"github.com/floydspeak/floyd/pkg/value"
)

// bindHosts installs every host registry entry into the global frame under
// its canonical name, ahead of any top-level statement execution.
func (it *Interpreter) bindHosts() error {
	for _, entry := range it.Hosts.Entries() {
		fn := value.NewHostFunction(entry.Desc, entry.ID)
		if err := it.Global.Define(entry.Name, fn); err != nil {
			return errs.Wrap(err, errs.DuplicateBinding, entry.Name)
		}
	}
	return nil
}

// RunGlobal executes the AST's top-level statements against the global
// frame: installs host bindings, then runs each top-level statement in
// order. A top-level return is return_in_global.
func (it *Interpreter) RunGlobal(program []ast.Stmt) error {
	logging.LogPhase("global-init")
	if err := it.bindHosts(); err != nil {
		return err
	}

	for _, s := range program {
		if _, isReturn := s.(*ast.Return); isReturn {
			return errs.New(errs.ReturnInGlobal, "top-level return is not permitted")
		}
		if _, err := it.Exec(it.Global, s); err != nil {
			logging.LogError("global-init", string(errKind(err)), "")
			return err
		}
	}

	logging.LogGlobalInit(len(it.Global.Names()))
	logging.LogPhaseComplete("global-init")
	return nil
}

// RunMain runs RunGlobal, resolves "main", then invokes it via the call
// protocol.
func (it *Interpreter) RunMain(program []ast.Stmt, args []value.Value) (value.Value, error) {
	if err := it.RunGlobal(program); err != nil {
		return value.Value{}, err
	}

	main, err := it.Global.Resolve("main")
	if err != nil {
		return value.Value{}, errs.Wrap(err, errs.UndefinedSymbol, "main")
	}
	logging.LogPhase("call-main")
	result, err := it.Call(main, args)
	if err != nil {
		return value.Value{}, err
	}
	logging.LogPhaseComplete("call-main")
	return result, nil
}

func errKind(err error) errs.Kind {
	if e, ok := err.(*errs.EvalError); ok {
		return e.Kind
	}
	return errs.TypeError
}
