package ast

import "github.com/tarnlang/tarn/internal/ice"

// Loop is the canonical lowered loop. It is produced by the lowering stage
// only; the parser never constructs one. The handle and index references,
// the label pair and the classification fields are fixed at construction.
//
// Later passes identify task-parallel loops via FlagTaskIndex on the index
// symbol, order-independent loops via OrderFree, and loops synthesised from a
// higher-level parallel construct via IsSynthesized. These three are a stable
// contract.
type Loop struct {
	Body *Block

	handle *SymRef
	index  *SymRef

	continueLabel *Symbol
	breakLabel    *Symbol

	zippered    bool
	orderFree   bool
	synthesized bool
	loopExpr    bool

	intents []Stmt
}

// NewLoop returns a loop over the given handle and index temporaries.
func NewLoop(index, handle *Symbol, body *Block, zippered bool) *Loop {
	ice.Assertf(index != nil, "ast.NewLoop: index is nil")
	ice.Assertf(handle != nil, "ast.NewLoop: handle is nil")
	ice.Assertf(body != nil, "ast.NewLoop: body is nil")
	return &Loop{
		Body:     body,
		handle:   handle.Ref(),
		index:    index.Ref(),
		zippered: zippered,
	}
}

// Index returns the reference to the per-iteration value temporary.
func (l *Loop) Index() *SymRef {
	if l.index == nil {
		ice.Fatalf("ast.Loop: index queried but never set")
	}
	return l.index
}

// Handle returns the reference to the iteration handle temporary.
func (l *Loop) Handle() *SymRef {
	if l.handle == nil {
		ice.Fatalf("ast.Loop: handle queried but never set")
	}
	return l.handle
}

// ContinueLabel returns the per-iteration jump target.
func (l *Loop) ContinueLabel() *Symbol {
	if l.continueLabel == nil {
		ice.Fatalf("ast.Loop: continue label queried but never set")
	}
	return l.continueLabel
}

// BreakLabel returns the loop-exit jump target.
func (l *Loop) BreakLabel() *Symbol {
	if l.breakLabel == nil {
		ice.Fatalf("ast.Loop: break label queried but never set")
	}
	return l.breakLabel
}

// SetLabels attaches the continue/break label pair.
func (l *Loop) SetLabels(cont, brk *Symbol) {
	l.continueLabel = cont
	l.breakLabel = brk
}

// Zippered reports whether the loop advances multiple sources in lockstep.
func (l *Loop) Zippered() bool { return l.zippered }

// OrderFree reports whether iterations carry no assumed cross-iteration
// dependency, enabling reordering and vectorisation by later passes.
func (l *Loop) OrderFree() bool { return l.orderFree }

// SetOrderFree marks the loop order-independent.
func (l *Loop) SetOrderFree(v bool) { l.orderFree = v }

// IsSynthesized reports whether the loop is itself the lowering of a
// higher-level parallel construct rather than a loop the user wrote.
// Diagnostics in later passes use this to attribute errors.
func (l *Loop) IsSynthesized() bool { return l.synthesized }

// SetSynthesized marks the loop as compiler-synthesised.
func (l *Loop) SetSynthesized(v bool) { l.synthesized = v }

// IsLoopExpr reports whether the loop was written in expression position.
func (l *Loop) IsLoopExpr() bool { return l.loopExpr }

// SetLoopExpr marks the loop as a loop expression.
func (l *Loop) SetLoopExpr(v bool) { l.loopExpr = v }

// IsTask reports whether each produced index becomes the argument of a
// concurrently spawned task.
func (l *Loop) IsTask() bool {
	return l.Index().Sym.HasFlag(FlagTaskIndex)
}

// IsInductionVar reports whether sym is the loop's bound index temporary.
func (l *Loop) IsInductionVar(sym *Symbol) bool {
	return sym == l.Index().Sym
}

// Intents returns the task intents attached to the loop. They are relocated
// from the source form verbatim; this stage never interprets them.
func (l *Loop) Intents() []Stmt { return l.intents }

// SetIntents attaches task intents for later passes.
func (l *Loop) SetIntents(intents []Stmt) { l.intents = intents }
