package value

import "github.com/floydspeak/floyd/pkg/types"

// structData holds a struct instance's fields in declaration order. It is
// shared via the pointer until WithMember replaces it wholesale: copy-on-write
// at whole-container granularity.
type structData struct {
	desc   *types.Descriptor
	fields []Value // parallel to desc.Members, same order
}

// NewStruct builds a struct instance Value. fields must be in the same
// order as desc.Members; callers (such as pkg/value's DefaultOf) are
// responsible for that invariant.
func NewStruct(desc *types.Descriptor, fields []Value) Value {
	cp := make([]Value, len(fields))
	copy(cp, fields)
	return Value{kind: types.KindStruct, strct: &structData{desc: desc, fields: cp}}
}

// memberNotFoundError marks an unknown struct member access.
type memberNotFoundError struct{ name string }

func (e *memberNotFoundError) Error() string { return "member not found: " + e.name }

// StructDescriptor returns the instance's type descriptor.
func (v Value) StructDescriptor() (*types.Descriptor, error) {
	if v.kind != types.KindStruct {
		return nil, &kindMismatchError{types.KindStruct, v.kind}
	}
	return v.strct.desc, nil
}

// Member returns the named member's value.
func (v Value) Member(name string) (Value, error) {
	if v.kind != types.KindStruct {
		return Value{}, &kindMismatchError{types.KindStruct, v.kind}
	}
	for i, m := range v.strct.desc.Members {
		if m.Name == name {
			return v.strct.fields[i], nil
		}
	}
	return Value{}, &memberNotFoundError{name}
}

// WithMember returns a new struct instance with name replaced by newVal,
// sharing every other field's storage. Unknown name is member_not_found.
// Applying WithMember twice to the same name is last-write-wins; applying
// it with the member's own current value is an identity, both falling
// directly out of this whole-instance-copy implementation.
func (v Value) WithMember(name string, newVal Value) (Value, error) {
	if v.kind != types.KindStruct {
		return Value{}, &kindMismatchError{types.KindStruct, v.kind}
	}
	idx := -1
	for i, m := range v.strct.desc.Members {
		if m.Name == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Value{}, &memberNotFoundError{name}
	}
	fields := make([]Value, len(v.strct.fields))
	copy(fields, v.strct.fields)
	fields[idx] = newVal
	return Value{kind: types.KindStruct, strct: &structData{desc: v.strct.desc, fields: fields}}, nil
}

// StructLen returns the number of declared members.
func (v Value) StructLen() (int, error) {
	if v.kind != types.KindStruct {
		return 0, &kindMismatchError{types.KindStruct, v.kind}
	}
	return len(v.strct.fields), nil
}
