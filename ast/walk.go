package ast

// Visitor is called for each node during a Walk. Returning false skips the
// node's children.
type Visitor interface {
	Visit(Node) bool
}

// VisitorFunc adapts a function to the Visitor interface.
type VisitorFunc func(Node) bool

// Visit calls f(n).
func (f VisitorFunc) Visit(n Node) bool { return f(n) }

// Walk traverses the tree rooted at n in depth-first order.
func Walk(v Visitor, n Node) {
	if n == nil || !v.Visit(n) {
		return
	}
	switch n := n.(type) {
	case *Call:
		for _, a := range n.Args {
			Walk(v, a)
		}
	case *Zip:
		for _, a := range n.Args {
			Walk(v, a)
		}
	case *Spread:
		Walk(v, n.Tuple)
	case *TupleIndex:
		Walk(v, n.Tuple)
	case *TuplePattern:
		for _, e := range n.Elems {
			Walk(v, e)
		}
	case *Assign:
		Walk(v, n.RHS)
	case *Defer:
		Walk(v, n.Call)
	case *Block:
		for _, s := range n.Stmts {
			Walk(v, s)
		}
	case *ExprStmt:
		Walk(v, n.X)
	case *Loop:
		if n.index != nil {
			Walk(v, n.index)
		}
		if n.handle != nil {
			Walk(v, n.handle)
		}
		for _, in := range n.intents {
			Walk(v, in)
		}
		Walk(v, n.Body)
	}
}
