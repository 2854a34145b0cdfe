package ast

import (
	"encoding/json"
	"fmt"

	"github.com/floydspeak/floyd/pkg/types"
)

// malformed wraps a shape violation with the malformed_ast vocabulary.
// It is returned as a plain error whose message starts with
// "malformed_ast"; pkg/ast stays free of the error-kind package to avoid a
// needless dependency edge.
type malformed struct{ msg string }

func (m *malformed) Error() string { return "malformed_ast: " + m.msg }

func errf(format string, args ...any) error {
	return &malformed{msg: fmt.Sprintf(format, args...)}
}

// Loader ingests the JSON AST into the node model, resolving
// "#StructName" type references against the struct descriptors it
// encounters along the way.
type Loader struct {
	Types *types.Registry
}

// NewLoader returns a Loader with a fresh type registry.
func NewLoader() *Loader {
	return &Loader{Types: types.NewRegistry()}
}

// LoadProgram decodes the top-level statement list.
func (l *Loader) LoadProgram(data []byte) ([]Stmt, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errf("top-level AST is not a JSON array: %v", err)
	}
	return l.loadStmts(raw)
}

func (l *Loader) loadStmts(raw []json.RawMessage) ([]Stmt, error) {
	out := make([]Stmt, len(raw))
	for i, r := range raw {
		s, err := l.loadStmt(r)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

func tagOf(raw json.RawMessage) ([]json.RawMessage, string, error) {
	var arr []json.RawMessage
	if err := json.Unmarshal(raw, &arr); err != nil {
		return nil, "", errf("node is not a JSON array: %v", err)
	}
	if len(arr) == 0 {
		return nil, "", errf("empty node array")
	}
	var tag string
	if err := json.Unmarshal(arr[0], &tag); err != nil {
		return nil, "", errf("node tag is not a string: %v", err)
	}
	return arr, tag, nil
}

func (l *Loader) loadStmt(raw json.RawMessage) (Stmt, error) {
	arr, tag, err := tagOf(raw)
	if err != nil {
		return nil, err
	}
	switch tag {
	case "bind":
		if len(arr) != 4 {
			return nil, errf("bind: expected 4 elements, got %d", len(arr))
		}
		declType, err := types.Parse(arr[1], l.Types)
		if err != nil {
			return nil, errf("bind: %v", err)
		}
		var name string
		if err := json.Unmarshal(arr[2], &name); err != nil {
			return nil, errf("bind: name is not a string: %v", err)
		}
		expr, err := l.loadExpr(arr[3])
		if err != nil {
			return nil, err
		}
		return &Bind{Name: name, DeclaredType: declType, Expr: expr}, nil

	case "block":
		if len(arr) != 2 {
			return nil, errf("block: expected 2 elements, got %d", len(arr))
		}
		var stmtsRaw []json.RawMessage
		if err := json.Unmarshal(arr[1], &stmtsRaw); err != nil {
			return nil, errf("block: statements is not an array: %v", err)
		}
		stmts, err := l.loadStmts(stmtsRaw)
		if err != nil {
			return nil, err
		}
		return &Block{Stmts: stmts}, nil

	case "return":
		if len(arr) != 2 {
			return nil, errf("return: expected 2 elements, got %d", len(arr))
		}
		expr, err := l.loadExpr(arr[1])
		if err != nil {
			return nil, err
		}
		return &Return{Expr: expr}, nil

	case "if":
		if len(arr) != 4 {
			return nil, errf("if: expected 4 elements, got %d", len(arr))
		}
		cond, err := l.loadExpr(arr[1])
		if err != nil {
			return nil, err
		}
		var thenRaw, elseRaw []json.RawMessage
		if err := json.Unmarshal(arr[2], &thenRaw); err != nil {
			return nil, errf("if: then-branch is not an array: %v", err)
		}
		if err := json.Unmarshal(arr[3], &elseRaw); err != nil {
			return nil, errf("if: else-branch is not an array: %v", err)
		}
		thenStmts, err := l.loadStmts(thenRaw)
		if err != nil {
			return nil, err
		}
		elseStmts, err := l.loadStmts(elseRaw)
		if err != nil {
			return nil, err
		}
		return &If{Cond: cond, Then: thenStmts, Else: elseStmts}, nil

	case "for":
		if len(arr) != 5 {
			return nil, errf("for: expected 5 elements, got %d", len(arr))
		}
		var name string
		if err := json.Unmarshal(arr[1], &name); err != nil {
			return nil, errf("for: name is not a string: %v", err)
		}
		start, err := l.loadExpr(arr[2])
		if err != nil {
			return nil, err
		}
		end, err := l.loadExpr(arr[3])
		if err != nil {
			return nil, err
		}
		var bodyRaw []json.RawMessage
		if err := json.Unmarshal(arr[4], &bodyRaw); err != nil {
			return nil, errf("for: body is not an array: %v", err)
		}
		body, err := l.loadStmts(bodyRaw)
		if err != nil {
			return nil, err
		}
		return &ForRange{IterName: name, Start: start, End: end, Body: body}, nil

	case "def-func":
		if len(arr) != 2 {
			return nil, errf("def-func: expected 2 elements, got %d", len(arr))
		}
		def, err := l.loadFunctionDef(arr[1])
		if err != nil {
			return nil, err
		}
		return &DefFunc{Def: def}, nil

	case "def-struct":
		if len(arr) != 2 {
			return nil, errf("def-struct: expected 2 elements, got %d", len(arr))
		}
		var payload struct {
			Name    string `json:"name"`
			Members []struct {
				Name string          `json:"name"`
				Type json.RawMessage `json:"type"`
			} `json:"members"`
		}
		if err := json.Unmarshal(arr[1], &payload); err != nil {
			return nil, errf("def-struct: %v", err)
		}
		members := make([]types.Member, len(payload.Members))
		astMembers := make([]StructMember, len(payload.Members))
		for i, m := range payload.Members {
			t, err := types.Parse(m.Type, l.Types)
			if err != nil {
				return nil, errf("def-struct %s.%s: %v", payload.Name, m.Name, err)
			}
			members[i] = types.Member{Name: m.Name, Type: t}
			astMembers[i] = StructMember{Name: m.Name, Type: t}
		}
		desc := types.Struct(payload.Name, members)
		l.Types.Define(payload.Name, desc)
		return &DefStruct{Name: payload.Name, Members: astMembers}, nil

	default:
		return nil, errf("unknown statement tag %q", tag)
	}
}

func (l *Loader) loadFunctionDef(raw json.RawMessage) (*FunctionDef, error) {
	var payload struct {
		Name       string          `json:"name"`
		ReturnType json.RawMessage `json:"return_type"`
		Args       []struct {
			Name string          `json:"name"`
			Type json.RawMessage `json:"type"`
		} `json:"args"`
		Statements []json.RawMessage `json:"statements"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, errf("def-func payload: %v", err)
	}
	ret, err := types.Parse(payload.ReturnType, l.Types)
	if err != nil {
		return nil, errf("def-func %s: return type: %v", payload.Name, err)
	}
	params := make([]Param, len(payload.Args))
	for i, a := range payload.Args {
		t, err := types.Parse(a.Type, l.Types)
		if err != nil {
			return nil, errf("def-func %s: param %s: %v", payload.Name, a.Name, err)
		}
		params[i] = Param{Name: a.Name, Type: t}
	}
	body, err := l.loadStmts(payload.Statements)
	if err != nil {
		return nil, err
	}
	return &FunctionDef{Name: payload.Name, ReturnType: ret, Params: params, Body: body}, nil
}

func (l *Loader) loadExpr(raw json.RawMessage) (Expr, error) {
	arr, tag, err := tagOf(raw)
	if err != nil {
		return nil, err
	}
	switch tag {
	case "k":
		if len(arr) != 3 {
			return nil, errf("literal: expected 3 elements, got %d", len(arr))
		}
		t, err := types.Parse(arr[2], l.Types)
		if err != nil {
			return nil, errf("literal: %v", err)
		}
		lit := Literal{ExprBase: ExprBase{ResolvedType: t}, Kind: t.Kind}
		switch t.Kind {
		case types.KindNull:
			// no payload
		case types.KindBool:
			if err := json.Unmarshal(arr[1], &lit.Bool); err != nil {
				return nil, errf("literal: not a bool: %v", err)
			}
		case types.KindInt:
			if err := json.Unmarshal(arr[1], &lit.Int); err != nil {
				return nil, errf("literal: not an int: %v", err)
			}
		case types.KindFloat:
			var f float64
			if err := json.Unmarshal(arr[1], &f); err != nil {
				return nil, errf("literal: not a float: %v", err)
			}
			lit.Float = float32(f)
		case types.KindString:
			if err := json.Unmarshal(arr[1], &lit.Str); err != nil {
				return nil, errf("literal: not a string: %v", err)
			}
		default:
			return nil, errf("literal: unsupported literal type %s", t.Kind)
		}
		return &lit, nil

	case "@":
		if len(arr) != 3 {
			return nil, errf("variable: expected 3 elements, got %d", len(arr))
		}
		var name string
		if err := json.Unmarshal(arr[1], &name); err != nil {
			return nil, errf("variable: name is not a string: %v", err)
		}
		t, err := types.Parse(arr[2], l.Types)
		if err != nil {
			return nil, errf("variable %s: %v", name, err)
		}
		return &Variable{ExprBase: ExprBase{ResolvedType: t}, Name: name}, nil

	case "neg":
		if len(arr) != 3 {
			return nil, errf("neg: expected 3 elements, got %d", len(arr))
		}
		operand, err := l.loadExpr(arr[1])
		if err != nil {
			return nil, err
		}
		t, err := types.Parse(arr[2], l.Types)
		if err != nil {
			return nil, errf("neg: %v", err)
		}
		return &UnaryMinus{ExprBase: ExprBase{ResolvedType: t}, Operand: operand}, nil

	case "?:":
		if len(arr) != 5 {
			return nil, errf("?:: expected 5 elements, got %d", len(arr))
		}
		cond, err := l.loadExpr(arr[1])
		if err != nil {
			return nil, err
		}
		then, err := l.loadExpr(arr[2])
		if err != nil {
			return nil, err
		}
		els, err := l.loadExpr(arr[3])
		if err != nil {
			return nil, err
		}
		t, err := types.Parse(arr[4], l.Types)
		if err != nil {
			return nil, errf("?:: %v", err)
		}
		return &Conditional{ExprBase: ExprBase{ResolvedType: t}, Cond: cond, Then: then, Else: els}, nil

	case "call":
		if len(arr) != 4 {
			return nil, errf("call: expected 4 elements, got %d", len(arr))
		}
		callee, err := l.loadExpr(arr[1])
		if err != nil {
			return nil, err
		}
		var argsRaw []json.RawMessage
		if err := json.Unmarshal(arr[2], &argsRaw); err != nil {
			return nil, errf("call: args is not an array: %v", err)
		}
		args := make([]Expr, len(argsRaw))
		for i, a := range argsRaw {
			ae, err := l.loadExpr(a)
			if err != nil {
				return nil, err
			}
			args[i] = ae
		}
		t, err := types.Parse(arr[3], l.Types)
		if err != nil {
			return nil, errf("call: %v", err)
		}
		return &Call{ExprBase: ExprBase{ResolvedType: t}, Callee: callee, Args: args}, nil

	case "->":
		if len(arr) != 4 {
			return nil, errf("->: expected 4 elements, got %d", len(arr))
		}
		parent, err := l.loadExpr(arr[1])
		if err != nil {
			return nil, err
		}
		var member string
		if err := json.Unmarshal(arr[2], &member); err != nil {
			return nil, errf("->: member name is not a string: %v", err)
		}
		t, err := types.Parse(arr[3], l.Types)
		if err != nil {
			return nil, errf("->: %v", err)
		}
		return &ResolveMember{ExprBase: ExprBase{ResolvedType: t}, Parent: parent, Member: member}, nil

	case "[-]":
		if len(arr) != 4 {
			return nil, errf("[-]: expected 4 elements, got %d", len(arr))
		}
		parent, err := l.loadExpr(arr[1])
		if err != nil {
			return nil, err
		}
		key, err := l.loadExpr(arr[2])
		if err != nil {
			return nil, err
		}
		t, err := types.Parse(arr[3], l.Types)
		if err != nil {
			return nil, errf("[-]: %v", err)
		}
		return &Lookup{ExprBase: ExprBase{ResolvedType: t}, Parent: parent, Key: key}, nil

	case "func":
		// function_literal: ["func", <def-func payload>, <type>]
		if len(arr) != 3 {
			return nil, errf("func: expected 3 elements, got %d", len(arr))
		}
		def, err := l.loadFunctionDef(arr[1])
		if err != nil {
			return nil, err
		}
		t, err := types.Parse(arr[2], l.Types)
		if err != nil {
			return nil, errf("func: %v", err)
		}
		return &FunctionLiteral{ExprBase: ExprBase{ResolvedType: t}, Def: def}, nil
	}

	binOp, ok := binOpTags[tag]
	if ok {
		if len(arr) != 4 {
			return nil, errf("%s: expected 4 elements, got %d", tag, len(arr))
		}
		left, err := l.loadExpr(arr[1])
		if err != nil {
			return nil, err
		}
		right, err := l.loadExpr(arr[2])
		if err != nil {
			return nil, err
		}
		t, err := types.Parse(arr[3], l.Types)
		if err != nil {
			return nil, errf("%s: %v", tag, err)
		}
		return &Binary{ExprBase: ExprBase{ResolvedType: t}, Op: binOp, Left: left, Right: right}, nil
	}

	return nil, errf("unknown expression tag %q", tag)
}

var binOpTags = map[string]BinOp{
	"+":  Add,
	"-":  Sub,
	"*":  Mul,
	"/":  Div,
	"%":  Mod,
	"<":  Lt,
	"<=": Le,
	">":  Gt,
	">=": Ge,
	"==": Eq,
	"!=": Ne,
	"&&": And,
	"||": Or,
}
