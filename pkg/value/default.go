package value

import "github.com/floydspeak/floyd/pkg/types"

// noDefaultError marks that a descriptor has no default value (function
// descriptors).
type noDefaultError struct{ kind types.Kind }

func (e *noDefaultError) Error() string { return "no default value for " + e.kind.String() }

// DefaultOf returns the zero-value Value for a descriptor: bool→false,
// int→0, float→0.0, string→"", struct→instance with each member set to
// its own DefaultOf, vector→empty; function has no default.
func DefaultOf(d *types.Descriptor) (Value, error) {
	if d == nil {
		return Null, nil
	}
	switch d.Kind {
	case types.KindNull:
		return Null, nil
	case types.KindBool:
		return NewBool(false), nil
	case types.KindInt:
		return NewInt(0), nil
	case types.KindFloat:
		return NewFloat(0), nil
	case types.KindString:
		return NewString(""), nil
	case types.KindStruct:
		fields := make([]Value, len(d.Members))
		for i, m := range d.Members {
			f, err := DefaultOf(m.Type)
			if err != nil {
				return Value{}, err
			}
			fields[i] = f
		}
		return NewStruct(d, fields), nil
	case types.KindVector:
		return NewVector(d.Elem, nil), nil
	case types.KindFunction:
		return Value{}, &noDefaultError{d.Kind}
	default:
		return Value{}, &noDefaultError{d.Kind}
	}
}
