package value

import (
	"github.com/floydspeak/floyd/pkg/ast"
	"github.com/floydspeak/floyd/pkg/types"
)

// functionData is either a reference to a host builtin (HostID != 0) or a
// captured interpreted definition (HostID == 0). A function Value with
// HostID != 0 must not carry a body, and vice versa; the two constructors
// below enforce that by construction rather than by runtime check.
type functionData struct {
	desc   *types.Descriptor
	hostID int
	def    *ast.FunctionDef // nil when hostID != 0
	global *Frame           // the global environment captured at creation
}

// NewHostFunction builds a function Value backed by a host builtin,
// identified by its registry id. hostID must be non-zero.
func NewHostFunction(desc *types.Descriptor, hostID int) Value {
	return Value{kind: types.KindFunction, fn: &functionData{desc: desc, hostID: hostID}}
}

// NewInterpretedFunction builds a function Value over an interpreted
// definition, capturing the global frame only — functions never close
// over local scopes.
func NewInterpretedFunction(desc *types.Descriptor, def *ast.FunctionDef, global *Frame) Value {
	return Value{kind: types.KindFunction, fn: &functionData{desc: desc, def: def, global: global}}
}

// FunctionDescriptor returns the function's signature descriptor.
func (v Value) FunctionDescriptor() (*types.Descriptor, error) {
	if v.kind != types.KindFunction {
		return nil, &kindMismatchError{types.KindFunction, v.kind}
	}
	return v.fn.desc, nil
}

// HostID returns the host registry id, or 0 if the function is
// interpreted.
func (v Value) HostID() (int, error) {
	if v.kind != types.KindFunction {
		return 0, &kindMismatchError{types.KindFunction, v.kind}
	}
	return v.fn.hostID, nil
}

// Definition returns the captured interpreted body and the global frame it
// closes over. Only meaningful when HostID() == 0.
func (v Value) Definition() (*ast.FunctionDef, *Frame, error) {
	if v.kind != types.KindFunction {
		return nil, nil, &kindMismatchError{types.KindFunction, v.kind}
	}
	return v.fn.def, v.fn.global, nil
}
