// Package interp implements the expression evaluator, statement executor,
// call protocol, and top-level driver: the part of Floyd Speak that
// actually runs a type-decorated AST against the dynamic value model.
package interp

import (
	"github.com/floydspeak/floyd/pkg/env"
	"github.com/floydspeak/floyd/pkg/host"
	"github.com/floydspeak/floyd/pkg/value"
)

// Frame is the environment frame type threaded through evaluation; an
// alias of value's instantiation of the generic environment so call sites
// in this package don't need to re-spell the generic instantiation.
type Frame = value.Frame

// Interpreter holds the state a run of the core threads through
// evaluation: the global frame, the host registry and its call context,
// and the output log host calls append to.
type Interpreter struct {
	Global *Frame
	Hosts  *host.Registry
	ctx    *host.Context
}

// New builds an interpreter with an empty global frame and the host
// registry's built-ins not yet bound — RunGlobal installs them.
func New() *Interpreter {
	return &Interpreter{
		Global: env.NewGlobal[value.Value](),
		Hosts:  host.NewRegistry(),
		ctx:    host.NewContext(),
	}
}

// Output returns the accumulated output log of print entries.
func (it *Interpreter) Output() []string { return it.ctx.Output }

// returnSignal threads an in-flight return value up through statement
// execution without relying on panic/recover, keeping every control-flow
// edge an explicit return value.
type returnSignal struct {
	value value.Value
	has   bool
}
