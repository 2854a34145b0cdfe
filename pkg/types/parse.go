package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Registry resolves "#StructName" references against struct descriptors
// registered so far (populated as def-struct statements are loaded).
type Registry struct {
	structs map[string]*Descriptor
}

// NewRegistry returns an empty struct-descriptor registry.
func NewRegistry() *Registry {
	return &Registry{structs: make(map[string]*Descriptor)}
}

// Define registers a struct descriptor under its declared name.
func (r *Registry) Define(name string, d *Descriptor) {
	r.structs[name] = d
}

// Lookup returns the struct descriptor registered under name, or nil.
func (r *Registry) Lookup(name string) *Descriptor {
	return r.structs[name]
}

// wireType is the structural encoding for vector/function type tags:
//
//	{"vector": <type>}
//	{"function": {"return": <type>, "params": [<type>, ...]}}
type wireType struct {
	Vector   json.RawMessage `json:"vector"`
	Function *wireFunction   `json:"function"`
}

type wireFunction struct {
	Return json.RawMessage   `json:"return"`
	Params []json.RawMessage `json:"params"`
}

// Parse decodes a JSON type tag ("^null", "^bool", "^int", "^float",
// "^string", "#<StructName>", or a structural encoding for vector/function)
// into a Descriptor. Unknown shapes are a malformed_ast condition the
// caller (pkg/ast) reports with its own error kind.
func Parse(raw json.RawMessage, reg *Registry) (*Descriptor, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("empty type tag")
	}

	var tag string
	if err := json.Unmarshal(raw, &tag); err == nil {
		return parseScalarTag(tag, reg)
	}

	var w wireType
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("malformed type tag: %w", err)
	}
	switch {
	case len(w.Vector) > 0:
		elem, err := Parse(w.Vector, reg)
		if err != nil {
			return nil, err
		}
		return Vector(elem), nil
	case w.Function != nil:
		ret, err := Parse(w.Function.Return, reg)
		if err != nil {
			return nil, err
		}
		params := make([]Param, len(w.Function.Params))
		for i, p := range w.Function.Params {
			pt, err := Parse(p, reg)
			if err != nil {
				return nil, err
			}
			params[i] = Param{Type: pt}
		}
		return Function(ret, params), nil
	default:
		return nil, fmt.Errorf("malformed type tag: %s", string(raw))
	}
}

func parseScalarTag(tag string, reg *Registry) (*Descriptor, error) {
	switch tag {
	case "^null":
		return Null(), nil
	case "^bool":
		return Bool(), nil
	case "^int":
		return Int(), nil
	case "^float":
		return Float(), nil
	case "^string":
		return String(), nil
	}
	if strings.HasPrefix(tag, "#") {
		name := tag[1:]
		if reg != nil {
			if d := reg.Lookup(name); d != nil {
				return d, nil
			}
		}
		// Forward reference: struct not yet registered. Return a named
		// placeholder with no members; it is not filled in when the
		// def-struct statement is loaded later.
		return &Descriptor{Kind: KindStruct, StructName: name}, nil
	}
	return nil, fmt.Errorf("unrecognized type tag: %q", tag)
}
