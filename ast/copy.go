package ast

import "github.com/tarnlang/tarn/internal/ice"

// SymbolMap remaps symbols during a copy. Declarations encountered inside the
// copied region introduce fresh symbols into the map; references resolve
// through it so that a copied body refers to the copied declarations.
type SymbolMap map[*Symbol]*Symbol

// Get returns the mapping for s, or s itself if unmapped.
func (m SymbolMap) Get(s *Symbol) *Symbol {
	if m == nil {
		return s
	}
	if t, ok := m[s]; ok {
		return t
	}
	return s
}

// Put records a mapping from old to new.
func (m SymbolMap) Put(old, new *Symbol) {
	m[old] = new
}

func (m SymbolMap) fresh(s *Symbol) *Symbol {
	if m == nil {
		return s
	}
	if t, ok := m[s]; ok {
		return t
	}
	t := &Symbol{Name: s.Name, flags: s.flags}
	if s.HasFlag(FlagTemp) {
		t = NewTemp(s.Name)
		t.flags = s.flags
	}
	m[s] = t
	return t
}

// CopyExpr returns a deep structural copy of e.
func CopyExpr(e Expr) Expr {
	return CopyExprMap(e, nil)
}

// CopyExprMap returns a deep copy of e with symbol references remapped
// through m.
func CopyExprMap(e Expr, m SymbolMap) Expr {
	switch e := e.(type) {
	case nil:
		return nil
	case *SymRef:
		return m.Get(e.Sym).Ref()
	case *IntLit:
		return &IntLit{Value: e.Value}
	case *Call:
		return &Call{Name: e.Name, Args: copyExprs(e.Args, m)}
	case *Zip:
		return &Zip{Args: copyExprs(e.Args, m)}
	case *Spread:
		return &Spread{Tuple: CopyExprMap(e.Tuple, m)}
	case *TupleIndex:
		return &TupleIndex{Tuple: CopyExprMap(e.Tuple, m), Index: e.Index}
	case *TuplePattern:
		return &TuplePattern{Elems: copyExprs(e.Elems, m)}
	}
	ice.Fatalf("ast.CopyExprMap: unknown expression %T", e)
	return nil
}

func copyExprs(es []Expr, m SymbolMap) []Expr {
	if es == nil {
		return nil
	}
	out := make([]Expr, len(es))
	for i, e := range es {
		out[i] = CopyExprMap(e, m)
	}
	return out
}

// CopyStmt returns a deep copy of s with symbols remapped through m.
// Declarations introduce fresh symbols into m.
func CopyStmt(s Stmt, m SymbolMap) Stmt {
	switch s := s.(type) {
	case *Decl:
		return &Decl{Sym: m.fresh(s.Sym)}
	case *Assign:
		return &Assign{LHS: m.Get(s.LHS), RHS: CopyExprMap(s.RHS, m)}
	case *Defer:
		return &Defer{Call: CopyExprMap(s.Call, m).(*Call)}
	case *Block:
		return CopyBlock(s, m)
	case *Label:
		return &Label{Sym: m.Get(s.Sym)}
	case *Break:
		return &Break{}
	case *Continue:
		return &Continue{}
	case *Return:
		return &Return{}
	case *ExprStmt:
		return &ExprStmt{X: CopyExprMap(s.X, m)}
	case *Loop:
		return s.copy(m)
	}
	ice.Fatalf("ast.CopyStmt: unknown statement %T", s)
	return nil
}

// CopyBlock returns a deep copy of b with symbols remapped through m.
func CopyBlock(b *Block, m SymbolMap) *Block {
	out := &Block{Stmts: make([]Stmt, len(b.Stmts))}
	for i, s := range b.Stmts {
		out.Stmts[i] = CopyStmt(s, m)
	}
	return out
}

// CopyBody returns a copy of the loop body with fresh temporaries.
func (l *Loop) CopyBody() *Block {
	return l.CopyBodyMap(make(SymbolMap))
}

// CopyBodyMap returns a copy of the loop body remapped through m. Later
// passes use this to expand a loop into per-iteration copies.
func (l *Loop) CopyBodyMap(m SymbolMap) *Block {
	return CopyBlock(l.Body, m)
}

// CopyBodyInto copies the loop body into dst, remapping continueSym to a
// fresh per-iteration continue label placed after the copy. Unrolling passes
// call this once per expanded iteration i.
func (l *Loop) CopyBodyInto(dst *Block, i int64, m SymbolMap, continueSym *Symbol) {
	label := NewTemp("_continueLabel")
	m.Put(continueSym, label)
	dst.Append(l.CopyBodyMap(m))
	dst.Append(&Label{Sym: label})
}

func (l *Loop) copy(m SymbolMap) *Loop {
	out := &Loop{
		zippered:    l.zippered,
		orderFree:   l.orderFree,
		loopExpr:    l.loopExpr,
		synthesized: l.synthesized,
	}
	if l.index != nil {
		out.index = m.Get(l.index.Sym).Ref()
	}
	if l.handle != nil {
		out.handle = m.Get(l.handle.Sym).Ref()
	}
	if l.continueLabel != nil {
		out.continueLabel = m.Get(l.continueLabel)
	}
	if l.breakLabel != nil {
		out.breakLabel = m.Get(l.breakLabel)
	}
	for _, in := range l.intents {
		out.intents = append(out.intents, CopyStmt(in, m))
	}
	out.Body = CopyBlock(l.Body, m)
	return out
}
