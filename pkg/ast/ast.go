// Package ast implements the in-memory AST node model the core consumes
// from the external parser's JSON form. Nodes are immutable once
// constructed; this package only ingests and represents them, it does
// not evaluate them (that is pkg/interp's job).
package ast

import "github.com/floydspeak/floyd/pkg/types"

// Node is the common marker every expression and statement satisfies: a
// tagged-interface convention of private tag methods with no shared
// behavior beyond identification.
type Node interface {
	node()
}

// Expr is a reduced or reducible expression node. Every expression carries
// an optional resolved result type, decorated by the (out-of-scope) static
// analyser; ResolvedType may be nil for a literal produced purely during
// evaluation.
type Expr interface {
	Node
	expr()
	Type() *types.Descriptor
}

// Stmt is a statement node.
type Stmt interface {
	Node
	stmt()
}

// ExprBase carries the fields common to every expression variant.
type ExprBase struct {
	ResolvedType *types.Descriptor
}

func (ExprBase) node() {}
func (ExprBase) expr() {}

// Type returns the expression's statically resolved type, if any.
func (b ExprBase) Type() *types.Descriptor { return b.ResolvedType }

// BinOp enumerates the binary operators of the wire format.
type BinOp int

const (
	Add BinOp = iota
	Sub
	Mul
	Div
	Mod
	Lt
	Le
	Gt
	Ge
	Eq
	Ne
	And
	Or
)

// Literal is a fully-reduced scalar value: ["k", <literal>, <type>].
// Struct/vector/function literals never appear as wire literals; those
// are built by statements and function_literal respectively.
type Literal struct {
	ExprBase
	Kind    types.Kind
	Bool    bool
	Int     int64
	Float   float32
	Str     string
}

func (Literal) node() {}
func (Literal) expr() {}

// Variable is a name lookup: ["@", <name>, <type>].
type Variable struct {
	ExprBase
	Name string
}

// UnaryMinus negates an int or float operand: ["neg", <e>, <type>].
type UnaryMinus struct {
	ExprBase
	Operand Expr
}

// Binary applies a binary operator to two operands.
type Binary struct {
	ExprBase
	Op    BinOp
	Left  Expr
	Right Expr
}

// Conditional is a ternary: ["?:", <cond>, <then>, <else>, <type>].
type Conditional struct {
	ExprBase
	Cond Expr
	Then Expr
	Else Expr
}

// Call invokes a callee with evaluated arguments: ["call", <callee>, [<args>], <type>].
type Call struct {
	ExprBase
	Callee Expr
	Args   []Expr
}

// ResolveMember reads a struct member: ["->", <parent>, <member-name>, <type>].
type ResolveMember struct {
	ExprBase
	Parent Expr
	Member string
}

// Lookup indexes a vector or string: ["[-]", <parent>, <key>, <type>].
type Lookup struct {
	ExprBase
	Parent Expr
	Key    Expr
}

// FunctionLiteral yields a function Value capturing the global environment.
type FunctionLiteral struct {
	ExprBase
	Def *FunctionDef
}

// Param is one (name, type) pair of a function signature.
type Param struct {
	Name string
	Type *types.Descriptor
}

// FunctionDef is the shared payload of def-func statements and function
// literal expressions: a name, declared return type, parameter list, and
// interpreted body.
type FunctionDef struct {
	Name       string
	ReturnType *types.Descriptor
	Params     []Param
	Body       []Stmt
}

// StmtBase is embedded by every statement variant.
type StmtBase struct{}

func (StmtBase) node() {}
func (StmtBase) stmt() {}

// Bind declares a new name in the current frame: ["bind", <type>, <name>, <expr>].
type Bind struct {
	StmtBase
	Name         string
	DeclaredType *types.Descriptor
	Expr         Expr
}

// Block is a nested statement sequence with its own frame.
type Block struct {
	StmtBase
	Stmts []Stmt
}

// Return propagates a value out of the enclosing function/global scope.
type Return struct {
	StmtBase
	Expr Expr
}

// If executes exactly one branch.
type If struct {
	StmtBase
	Cond Expr
	Then []Stmt
	Else []Stmt
}

// ForRange iterates an inclusive integer range: ["for", <name>, <start>, <end>, [<body>]].
type ForRange struct {
	StmtBase
	IterName string
	Start    Expr
	End      Expr
	Body     []Stmt
}

// DefFunc declares a named interpreted function in the current frame.
type DefFunc struct {
	StmtBase
	Def *FunctionDef
}

// StructMember is one (name, type) pair of a def-struct declaration.
type StructMember struct {
	Name string
	Type *types.Descriptor
}

// DefStruct registers a struct type descriptor. It is resolved entirely at
// load time (pkg/ast's loader registers the descriptor in the type
// registry as it is encountered); the executor treats it as a no-op
// statement when it appears in a top-level or nested statement list.
type DefStruct struct {
	StmtBase
	Name    string
	Members []StructMember
}
