// Package types implements the canonical type descriptor consumed from the
// static analyser's type-decorated AST: a structural description of the
// base types and composite shapes (struct, vector, function signature) a
// Value can carry.
package types

import "strings"

// Kind identifies the base tag of a descriptor.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindStruct
	KindVector
	KindFunction
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindStruct:
		return "struct"
	case KindVector:
		return "vector"
	case KindFunction:
		return "function"
	default:
		return "unknown"
	}
}

// Member is one (name, descriptor) pair in a struct's declaration order.
type Member struct {
	Name string
	Type *Descriptor
}

// Param is one (name, descriptor) pair in a function signature.
type Param struct {
	Name string
	Type *Descriptor
}

// Descriptor is the canonical, structural description of a type. Nominal
// typing is not used except that two struct descriptors with identical
// member lists are considered the same type (structural equality).
type Descriptor struct {
	Kind Kind

	// StructName is carried for display purposes only (Descriptor.String
	// uses it); it plays no role in Equal.
	StructName string
	Members    []Member // populated when Kind == KindStruct

	Elem *Descriptor // populated when Kind == KindVector

	Return *Descriptor // populated when Kind == KindFunction
	Params []Param     // populated when Kind == KindFunction
}

// Base constructors for the eight scalar/composite kinds.
func Null() *Descriptor   { return &Descriptor{Kind: KindNull} }
func Bool() *Descriptor   { return &Descriptor{Kind: KindBool} }
func Int() *Descriptor    { return &Descriptor{Kind: KindInt} }
func Float() *Descriptor  { return &Descriptor{Kind: KindFloat} }
func String() *Descriptor { return &Descriptor{Kind: KindString} }

// Struct builds a struct descriptor from its ordered member list.
func Struct(name string, members []Member) *Descriptor {
	return &Descriptor{Kind: KindStruct, StructName: name, Members: members}
}

// Vector builds a vector descriptor from its element descriptor.
func Vector(elem *Descriptor) *Descriptor {
	return &Descriptor{Kind: KindVector, Elem: elem}
}

// Function builds a function-signature descriptor.
func Function(ret *Descriptor, params []Param) *Descriptor {
	return &Descriptor{Kind: KindFunction, Return: ret, Params: params}
}

// Equal reports structural equality between two descriptors. Two struct
// descriptors are equal iff their member lists are equal pairwise, by name
// and by type, regardless of StructName.
func Equal(a, b *Descriptor) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindStruct:
		if len(a.Members) != len(b.Members) {
			return false
		}
		for i := range a.Members {
			if a.Members[i].Name != b.Members[i].Name {
				return false
			}
			if !Equal(a.Members[i].Type, b.Members[i].Type) {
				return false
			}
		}
		return true
	case KindVector:
		return Equal(a.Elem, b.Elem)
	case KindFunction:
		if !Equal(a.Return, b.Return) {
			return false
		}
		if len(a.Params) != len(b.Params) {
			return false
		}
		for i := range a.Params {
			if !Equal(a.Params[i].Type, b.Params[i].Type) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// MemberType returns the descriptor of the named member, or nil if absent.
func (d *Descriptor) MemberType(name string) *Descriptor {
	for _, m := range d.Members {
		if m.Name == name {
			return m.Type
		}
	}
	return nil
}

// String renders the descriptor using the wire grammar's sigils: "^" for
// scalars, "#Name" for structs, "[]T" for vectors, "(P...)->R" for
// functions. This is for diagnostics only; the core never depends on this
// textual form for equality.
func (d *Descriptor) String() string {
	if d == nil {
		return "^null"
	}
	switch d.Kind {
	case KindNull, KindBool, KindInt, KindFloat, KindString:
		return "^" + d.Kind.String()
	case KindStruct:
		if d.StructName != "" {
			return "#" + d.StructName
		}
		return "#anon"
	case KindVector:
		return "[]" + d.Elem.String()
	case KindFunction:
		var params []string
		for _, p := range d.Params {
			params = append(params, p.Type.String())
		}
		return "(" + strings.Join(params, ",") + ")->" + d.Return.String()
	default:
		return "^unknown"
	}
}
