package ast

// Stmt is a statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Decl declares a symbol in the enclosing block.
type Decl struct {
	Sym *Symbol
}

// Assign stores the value of RHS into LHS.
type Assign struct {
	LHS *Symbol
	RHS Expr
}

// Defer schedules Call to run when control leaves the enclosing Block, on
// every exit path: fallthrough, break, return and propagated failure. The
// scheduled call runs exactly once.
type Defer struct {
	Call *Call
}

// Block is a statement sequence with its own scope.
type Block struct {
	Stmts []Stmt
}

// NewBlock returns a block holding the given statements.
func NewBlock(stmts ...Stmt) *Block {
	return &Block{Stmts: stmts}
}

// Append adds statements to the end of the block.
func (b *Block) Append(stmts ...Stmt) {
	b.Stmts = append(b.Stmts, stmts...)
}

// Label marks a jump target.
type Label struct {
	Sym *Symbol
}

// Break exits the innermost enclosing loop.
type Break struct{}

// Continue jumps to the continue label of the innermost enclosing loop.
type Continue struct{}

// Return exits the enclosing function.
type Return struct{}

// ExprStmt evaluates an expression for its side effects.
type ExprStmt struct {
	X Expr
}

func (*Decl) stmtNode()     {}
func (*Assign) stmtNode()   {}
func (*Defer) stmtNode()    {}
func (*Block) stmtNode()    {}
func (*Label) stmtNode()    {}
func (*Break) stmtNode()    {}
func (*Continue) stmtNode() {}
func (*Return) stmtNode()   {}
func (*ExprStmt) stmtNode() {}
func (*Loop) stmtNode()     {}
