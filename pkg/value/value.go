// Package value implements Floyd Speak's dynamic value representation: a
// tagged union over {null, bool, int, float, string, struct, vector,
// function}. Values are logically immutable — every "update" operation
// returns a new Value and leaves its receiver intact; structs and vectors
// share their backing storage until actually mutated (copy-on-write at
// whole-container granularity).
package value

import (
	"fmt"

	"github.com/floydspeak/floyd/pkg/env"
	"github.com/floydspeak/floyd/pkg/types"
)

// Value is a single tagged datum. Exactly one payload field is inhabited
// at a time; which one is determined by Kind.
type Value struct {
	kind types.Kind

	b bool
	i int64
	f float32
	s string

	strct *structData
	vec   *vectorData
	fn    *functionData
}

// Frame is the environment frame type function Values capture. It is
// pkg/env's generic Frame instantiated over Value; named here so call
// sites don't need to spell out the instantiation.
type Frame = env.Frame[Value]

// Kind reports the value's tag.
func (v Value) Kind() types.Kind { return v.kind }

// Null is the singleton null value.
var Null = Value{kind: types.KindNull}

// NewBool constructs a bool Value.
func NewBool(b bool) Value { return Value{kind: types.KindBool, b: b} }

// NewInt constructs an int Value.
func NewInt(i int64) Value { return Value{kind: types.KindInt, i: i} }

// NewFloat constructs a float Value. The source's float is IEEE-754
// single precision; payload is stored as float32.
func NewFloat(f float32) Value { return Value{kind: types.KindFloat, f: f} }

// NewString constructs a string Value.
func NewString(s string) Value { return Value{kind: types.KindString, s: s} }

// Predicates.
func (v Value) IsNull() bool     { return v.kind == types.KindNull }
func (v Value) IsBool() bool     { return v.kind == types.KindBool }
func (v Value) IsInt() bool      { return v.kind == types.KindInt }
func (v Value) IsFloat() bool    { return v.kind == types.KindFloat }
func (v Value) IsString() bool   { return v.kind == types.KindString }
func (v Value) IsStruct() bool   { return v.kind == types.KindStruct }
func (v Value) IsVector() bool   { return v.kind == types.KindVector }
func (v Value) IsFunction() bool { return v.kind == types.KindFunction }

// kindMismatchError is returned by an accessor when the Value's tag does
// not match the requested payload. pkg/interp wraps this as a type_error
// (or, for the internal consistency checks in pkg/value's own tests, the
// zero value is inspected directly); pkg/value deliberately avoids a
// dependency on internal/errs's Kind taxonomy.
type kindMismatchError struct {
	want, got types.Kind
}

func (e *kindMismatchError) Error() string {
	return fmt.Sprintf("value: expected %s, got %s", e.want, e.got)
}

// Bool extracts the bool payload. Precondition: Kind() == KindBool.
func (v Value) Bool() (bool, error) {
	if v.kind != types.KindBool {
		return false, &kindMismatchError{types.KindBool, v.kind}
	}
	return v.b, nil
}

// Int extracts the int payload. Precondition: Kind() == KindInt.
func (v Value) Int() (int64, error) {
	if v.kind != types.KindInt {
		return 0, &kindMismatchError{types.KindInt, v.kind}
	}
	return v.i, nil
}

// Float extracts the float payload. Precondition: Kind() == KindFloat.
func (v Value) Float() (float32, error) {
	if v.kind != types.KindFloat {
		return 0, &kindMismatchError{types.KindFloat, v.kind}
	}
	return v.f, nil
}

// Str extracts the string payload. Precondition: Kind() == KindString.
func (v Value) Str() (string, error) {
	if v.kind != types.KindString {
		return "", &kindMismatchError{types.KindString, v.kind}
	}
	return v.s, nil
}

// MustBool/MustInt/MustFloat/MustStr return the payload's zero value on tag
// mismatch instead of an error; used by call sites (pkg/interp's binary
// operators) that have already branched on Kind() and so know the accessor
// cannot fail.
func (v Value) MustBool() bool    { b, _ := v.Bool(); return b }
func (v Value) MustInt() int64    { i, _ := v.Int(); return i }
func (v Value) MustFloat() float32 { f, _ := v.Float(); return f }
func (v Value) MustStr() string   { s, _ := v.Str(); return s }
