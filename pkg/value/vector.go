package value

import "github.com/floydspeak/floyd/pkg/types"

// vectorData holds a homogeneous ordered sequence of Values.
type vectorData struct {
	elem  *types.Descriptor
	items []Value
}

// NewVector builds a vector Value over the given element descriptor.
func NewVector(elem *types.Descriptor, items []Value) Value {
	cp := make([]Value, len(items))
	copy(cp, items)
	return Value{kind: types.KindVector, vec: &vectorData{elem: elem, items: cp}}
}

// indexOutOfRangeError marks an out-of-bounds vector/string index.
type indexOutOfRangeError struct {
	index, length int
}

func (e *indexOutOfRangeError) Error() string {
	return "index out of range"
}

// VectorElemType returns the vector's declared element descriptor.
func (v Value) VectorElemType() (*types.Descriptor, error) {
	if v.kind != types.KindVector {
		return nil, &kindMismatchError{types.KindVector, v.kind}
	}
	return v.vec.elem, nil
}

// VectorLen returns the number of elements.
func (v Value) VectorLen() (int, error) {
	if v.kind != types.KindVector {
		return 0, &kindMismatchError{types.KindVector, v.kind}
	}
	return len(v.vec.items), nil
}

// VectorAt returns the 0-based indexed element, bounds-checked.
func (v Value) VectorAt(idx int64) (Value, error) {
	if v.kind != types.KindVector {
		return Value{}, &kindMismatchError{types.KindVector, v.kind}
	}
	if idx < 0 || int(idx) >= len(v.vec.items) {
		return Value{}, &indexOutOfRangeError{int(idx), len(v.vec.items)}
	}
	return v.vec.items[idx], nil
}

// VectorItems returns a defensive copy of the vector's elements in order.
func (v Value) VectorItems() ([]Value, error) {
	if v.kind != types.KindVector {
		return nil, &kindMismatchError{types.KindVector, v.kind}
	}
	out := make([]Value, len(v.vec.items))
	copy(out, v.vec.items)
	return out, nil
}

// StrAt returns the single-character substring at the 0-based byte index
// idx of a string Value, bounds-checked.
func (v Value) StrAt(idx int64) (Value, error) {
	if v.kind != types.KindString {
		return Value{}, &kindMismatchError{types.KindString, v.kind}
	}
	if idx < 0 || int(idx) >= len(v.s) {
		return Value{}, &indexOutOfRangeError{int(idx), len(v.s)}
	}
	return NewString(string(v.s[idx])), nil
}
