package ast

// Node is implemented by every AST node.
type Node interface {
	String() string
}

// Expr is an expression node.
type Expr interface {
	Node
	exprNode()
}

// SymRef is a reference to a symbol.
type SymRef struct {
	Sym *Symbol
}

// IntLit is an integer literal.
type IntLit struct {
	Value int64
}

// Call is a named call expression. Runtime collaborators are addressed by
// fixed names (see package protocol), so calls keep the callee as a string
// rather than a resolved symbol at this stage.
type Call struct {
	Name string
	Args []Expr
}

// NewCall returns a call to name with the given arguments.
func NewCall(name string, args ...Expr) *Call {
	return &Call{Name: name, Args: args}
}

// IsNamed reports whether the call is to the given name.
func (c *Call) IsNamed(name string) bool {
	return c.Name == name
}

// Zip is the explicit synchronized-iteration primitive: its arguments are
// iterated in lockstep, producing one tuple of elements per step.
type Zip struct {
	Args []Expr
}

// Spread is the explicit tuple-expansion form `(...t)`: the elements of the
// tuple-valued expression become individual synchronization sources.
type Spread struct {
	Tuple Expr
}

// TupleIndex selects the i-th component of a tuple-valued expression.
// Components are numbered from zero.
type TupleIndex struct {
	Tuple Expr
	Index int
}

// TuplePattern is a destructuring index pattern. Elements are SymRefs or
// nested TuplePatterns.
type TuplePattern struct {
	Elems []Expr
}

func (*SymRef) exprNode()       {}
func (*IntLit) exprNode()       {}
func (*Call) exprNode()         {}
func (*Zip) exprNode()          {}
func (*Spread) exprNode()       {}
func (*TupleIndex) exprNode()   {}
func (*TuplePattern) exprNode() {}
