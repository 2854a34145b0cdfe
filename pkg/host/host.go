// Package host implements the host-function registry: a closed,
// extensible table of built-in functions invoked by numeric id.
package host

import (
	"fmt"
	"os"
	"time"

	"github.com/floydspeak/floyd/internal/logging"
	"github.com/floydspeak/floyd/pkg/types"
	"github.com/floydspeak/floyd/pkg/value"
)

// The three required built-in ids.
const (
	Print        = 1
	ToString     = 2
	GetTimeOfDay = 3
)

// Impl is a host builtin's Go-side implementation. ctx threads the
// interpreter's output log and start time; args are already evaluated and
// arity/type-checked by the caller (pkg/interp's call protocol).
type Impl func(ctx *Context, args []value.Value) (value.Value, error)

// Entry is one registry row: a stable id, a canonical name, its declared
// signature, and its implementation. A nil Param.Type means "accepts any
// type" (the print/to_string entries are generic over T).
type Entry struct {
	ID   int
	Name string
	Desc *types.Descriptor
	Impl Impl
}

// Registry is the closed, extensible table of built-ins.
type Registry struct {
	byID   map[int]*Entry
	byName map[string]*Entry
}

// NewRegistry builds the registry with the three required entries
// installed.
func NewRegistry() *Registry {
	r := &Registry{byID: make(map[int]*Entry), byName: make(map[string]*Entry)}

	r.register(&Entry{
		ID:   Print,
		Name: "print",
		Desc: types.Function(types.Null(), []types.Param{{Name: "v", Type: nil}}),
		Impl: hostPrint,
	})
	r.register(&Entry{
		ID:   ToString,
		Name: "to_string",
		Desc: types.Function(types.String(), []types.Param{{Name: "v", Type: nil}}),
		Impl: hostToString,
	})
	r.register(&Entry{
		ID:   GetTimeOfDay,
		Name: "get_time_of_day",
		Desc: types.Function(types.Int(), nil),
		Impl: hostGetTimeOfDay,
	})

	return r
}

// register type-checks the entry (non-zero id, non-nil signature) at
// construction time and panics on a malformed built-in, since this table
// is fixed at compile time and never attacker-controlled.
func (r *Registry) register(e *Entry) {
	if e.ID == 0 {
		panic("host: built-in id must be non-zero: " + e.Name)
	}
	if e.Desc == nil {
		panic("host: built-in must declare a signature: " + e.Name)
	}
	r.byID[e.ID] = e
	r.byName[e.Name] = e
}

// Lookup returns the entry registered under name.
func (r *Registry) Lookup(name string) (*Entry, bool) {
	e, ok := r.byName[name]
	return e, ok
}

// ByID returns the entry registered under id.
func (r *Registry) ByID(id int) (*Entry, bool) {
	e, ok := r.byID[id]
	return e, ok
}

// Entries returns every registered built-in, used by the driver to bind
// all of them into the global frame.
func (r *Registry) Entries() []*Entry {
	out := make([]*Entry, 0, len(r.byName))
	for _, e := range r.byName {
		out = append(out, e)
	}
	return out
}

// Call dispatches to the entry's implementation.
func (r *Registry) Call(ctx *Context, id int, args []value.Value) (value.Value, error) {
	e, ok := r.ByID(id)
	if !ok {
		return value.Value{}, fmt.Errorf("host: no built-in registered for id %d", id)
	}
	return e.Impl(ctx, args)
}

// Context carries the interpreter-wide state host calls observe or mutate:
// the output log print entries append to, and the construction timestamp
// get_time_of_day measures elapsed time against.
type Context struct {
	Output []string
	Start  time.Time
}

// NewContext starts the clock used by get_time_of_day.
func NewContext() *Context {
	return &Context{Start: time.Now()}
}

func hostPrint(ctx *Context, args []value.Value) (value.Value, error) {
	text := value.Format(args[0])
	ctx.Output = append(ctx.Output, text)
	fmt.Fprintln(os.Stdout, text)
	logging.LogHostPrint(text)
	return value.Null, nil
}

func hostToString(_ *Context, args []value.Value) (value.Value, error) {
	return value.NewString(value.Format(args[0])), nil
}

func hostGetTimeOfDay(ctx *Context, _ []value.Value) (value.Value, error) {
	ms := time.Since(ctx.Start).Milliseconds()
	return value.NewInt(ms), nil
}
