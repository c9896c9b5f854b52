package lower

import (
	"testing"

	"github.com/tarnlang/tarn/ast"
	"github.com/tarnlang/tarn/internal/ice"
	"github.com/tarnlang/tarn/protocol"
)

func bounded(lo, hi int64) *ast.Call {
	return ast.NewCall(protocol.BuildBoundedRange,
		&ast.IntLit{Value: lo}, &ast.IntLit{Value: hi})
}

func useBody(syms ...*ast.Symbol) *ast.Block {
	args := make([]ast.Expr, len(syms))
	for i, s := range syms {
		args[i] = s.Ref()
	}
	return ast.NewBlock(&ast.ExprStmt{X: ast.NewCall("use", args...)})
}

// unpack asserts the canonical six-statement shape and returns the parts.
func unpack(t *testing.T, blk *ast.Block) (index, handle *ast.Symbol, init *ast.Assign, loop *ast.Loop) {
	t.Helper()
	if expect, got := 6, len(blk.Stmts); expect != got {
		t.Fatalf("lowered block: expected %d statements but got %d:\n%s", expect, got, blk)
	}
	index = blk.Stmts[0].(*ast.Decl).Sym
	handle = blk.Stmts[1].(*ast.Decl).Sym
	init = blk.Stmts[2].(*ast.Assign)
	if init.LHS != handle {
		t.Error("handle init should store into the declared handle")
	}
	guard := blk.Stmts[3].(*ast.Defer)
	if !guard.Call.IsNamed(protocol.Release) {
		t.Errorf("scoped guard should release the handle but calls %s", guard.Call.Name)
	}
	if ref := guard.Call.Args[0].(*ast.SymRef); ref.Sym != handle {
		t.Error("scoped guard should release the declared handle")
	}
	loop = blk.Stmts[4].(*ast.Loop)
	if exit := blk.Stmts[5].(*ast.Label); exit.Sym != loop.BreakLabel() {
		t.Error("exit label should be the loop's break label")
	}
	if loop.Handle().Sym != handle || loop.Index().Sym != index {
		t.Error("loop should reference the declared handle and index")
	}
	return index, handle, init, loop
}

// Fetch precedes index binding precedes the user body, in program order.
func TestLoweredShapeAndOrdering(t *testing.T) {
	l := New(Config{})
	i := ast.NewSymbol("i")
	blk := l.For(i.Ref(), bounded(1, 10), useBody(i), false, false)

	index, handle, init, loop := unpack(t, blk)
	if !index.HasFlag(ast.FlagIndexVar) {
		t.Error("index temp should carry FlagIndexVar")
	}
	acquire := init.RHS.(*ast.Call)
	if !acquire.IsNamed(protocol.Acquire) {
		t.Errorf("single-source init should acquire but calls %s", acquire.Name)
	}

	body := loop.Body.Stmts
	fetch := body[0].(*ast.Assign)
	if fetch.LHS != index {
		t.Error("fetch should store into the index temp")
	}
	adv := fetch.RHS.(*ast.Call)
	if !adv.IsNamed(protocol.Advance) {
		t.Errorf("fetch should advance the handle but calls %s", adv.Name)
	}
	if ref := adv.Args[0].(*ast.SymRef); ref.Sym != handle {
		t.Error("fetch should advance the declared handle")
	}
	if decl := body[1].(*ast.Decl); decl.Sym != i {
		t.Error("user index should be declared after the fetch")
	}
	bind := body[2].(*ast.Assign)
	if bind.LHS != i {
		t.Error("user index should be bound after its declaration")
	}
	if ref := bind.RHS.(*ast.SymRef); ref.Sym != index {
		t.Error("user index should be bound from the index temp")
	}
	if _, ok := body[3].(*ast.ExprStmt); !ok {
		t.Error("user body should follow the index binding")
	}
	if last := body[len(body)-1].(*ast.Label); last.Sym != loop.ContinueLabel() {
		t.Error("loop body should end with the continue label")
	}
}

func TestRangeOptApplied(t *testing.T) {
	l := New(Config{})
	i := ast.NewSymbol("i")
	blk := l.For(i.Ref(), bounded(1, 10), useBody(i), false, false)
	_, _, init, _ := unpack(t, blk)
	inner := init.RHS.(*ast.Call).Args[0].(*ast.Call)
	if !inner.IsNamed(protocol.DirectRange) {
		t.Errorf("anonymous range should be optimised but got %s", inner)
	}
}

func TestRangeOptSuppressed(t *testing.T) {
	l := New(Config{NoRangeOpt: true})
	i := ast.NewSymbol("i")
	blk := l.For(i.Ref(), bounded(1, 10), useBody(i), false, false)
	_, _, init, _ := unpack(t, blk)
	inner := init.RHS.(*ast.Call).Args[0].(*ast.Call)
	if !inner.IsNamed(protocol.BuildBoundedRange) {
		t.Errorf("suppressed optimiser should leave the builder but got %s", inner)
	}
}

// N sources collapse into one buildTuple of acquires, field order equal to
// source order.
func TestZipTupleShape(t *testing.T) {
	l := New(Config{})
	a, b, c := ast.NewSymbol("a"), ast.NewSymbol("b"), ast.NewSymbol("c")
	sources := []ast.Expr{a.Ref(), b.Ref(), c.Ref()}
	idx := ast.NewSymbol("x")
	blk := l.For(idx.Ref(), &ast.Zip{Args: sources}, useBody(idx), true, false)

	_, _, init, loop := unpack(t, blk)
	if !loop.Zippered() {
		t.Error("loop should be marked zippered")
	}
	tuple := init.RHS.(*ast.Call)
	if !tuple.IsNamed(protocol.BuildTuple) {
		t.Fatalf("combined init should build a tuple but got %s", tuple)
	}
	if expect, got := len(sources), len(tuple.Args); expect != got {
		t.Fatalf("expected %d tuple fields but got %d", expect, got)
	}
	for i, arg := range tuple.Args {
		acq, ok := arg.(*ast.Call)
		if !ok || !acq.IsNamed(protocol.Acquire) {
			t.Fatalf("field %d should acquire its source but got %s", i, arg)
		}
		if acq.Args[0] != sources[i] {
			t.Errorf("field %d should wrap source %d, preserving order", i, i)
		}
	}
}

// A single-source zip is a plain acquire, no tuple wrapping.
func TestZipSingleSource(t *testing.T) {
	l := New(Config{})
	i := ast.NewSymbol("i")
	blk := l.For(i.Ref(), &ast.Zip{Args: []ast.Expr{bounded(1, 5)}}, useBody(i), true, false)
	_, _, init, _ := unpack(t, blk)
	acq := init.RHS.(*ast.Call)
	if !acq.IsNamed(protocol.Acquire) {
		t.Fatalf("single-source zip should acquire directly but got %s", acq)
	}
	if inner := acq.Args[0].(*ast.Call); !inner.IsNamed(protocol.DirectRange) {
		t.Errorf("single zip source should still be range-optimised but got %s", inner)
	}
}

// zip((...t)) passes the user's tuple straight to the zip acquire; the
// combined handle's shape is the spread tuple's shape, not a 1-tuple.
func TestZipSpreadUnwrap(t *testing.T) {
	l := New(Config{})
	pair := ast.NewSymbol("pair")
	tup := ast.NewSymbol("t").Ref()
	src := &ast.Zip{Args: []ast.Expr{&ast.Spread{Tuple: tup}}}
	blk := l.For(pair.Ref(), src, useBody(pair), true, false)

	_, _, init, _ := unpack(t, blk)
	acq := init.RHS.(*ast.Call)
	if !acq.IsNamed(protocol.AcquireZip) {
		t.Fatalf("spread zip should use the zip acquire but got %s", acq)
	}
	if acq.Args[0] != ast.Expr(tup) {
		t.Error("spread zip should pass the user's tuple through untouched")
	}
}

// Old-style input: the source tuple is already an aggregate call. Each
// argument still gets the range optimisation.
func TestZipOldStyleAggregate(t *testing.T) {
	l := New(Config{})
	x := ast.NewSymbol("xs").Ref()
	agg := ast.NewCall(protocol.BuildTuple, bounded(1, 5), x)
	i := ast.NewSymbol("i")
	blk := l.For(i.Ref(), agg, useBody(i), true, false)

	_, _, init, _ := unpack(t, blk)
	acq := init.RHS.(*ast.Call)
	if !acq.IsNamed(protocol.AcquireZip) {
		t.Fatalf("old-style zip should use the zip acquire but got %s", acq)
	}
	tuple := acq.Args[0].(*ast.Call)
	if !tuple.IsNamed(protocol.BuildTuple) {
		t.Fatalf("old-style zip should keep the tuple shape but got %s", tuple)
	}
	if first := tuple.Args[0].(*ast.Call); !first.IsNamed(protocol.DirectRange) {
		t.Errorf("old-style zip argument should be range-optimised but got %s", first)
	}
	if tuple.Args[1] != ast.Expr(x) {
		t.Error("non-range argument should pass through unchanged")
	}
}

func TestNestedPatternDestructuring(t *testing.T) {
	l := New(Config{})
	a, b, c := ast.NewSymbol("a"), ast.NewSymbol("b"), ast.NewSymbol("c")
	pat := &ast.TuplePattern{Elems: []ast.Expr{
		&ast.TuplePattern{Elems: []ast.Expr{a.Ref(), b.Ref()}},
		c.Ref(),
	}}
	src := &ast.Zip{Args: []ast.Expr{ast.NewSymbol("xs").Ref(), ast.NewSymbol("ys").Ref()}}
	blk := l.For(pat, src, useBody(a, b, c), true, false)
	index, _, _, loop := unpack(t, blk)

	// fetch, then decl+assign per leaf in pattern order.
	body := loop.Body.Stmts
	binds := []struct {
		sym  *ast.Symbol
		path []int
	}{
		{a, []int{0, 0}},
		{b, []int{0, 1}},
		{c, []int{1}},
	}
	for n, want := range binds {
		decl := body[1+2*n].(*ast.Decl)
		if decl.Sym != want.sym {
			t.Errorf("bind %d: expected %s declared but got %s", n, want.sym, decl.Sym)
		}
		assign := body[2+2*n].(*ast.Assign)
		e := assign.RHS
		// Walk the tuple-index chain from the outside in.
		for i := len(want.path) - 1; i >= 0; i-- {
			ti, ok := e.(*ast.TupleIndex)
			if !ok {
				t.Fatalf("bind %d: expected tuple index but got %s", n, assign.RHS)
			}
			if ti.Index != want.path[i] {
				t.Errorf("bind %d: expected field %d but got %d", n, want.path[i], ti.Index)
			}
			e = ti.Tuple
		}
		if ref, ok := e.(*ast.SymRef); !ok || ref.Sym != index {
			t.Errorf("bind %d: chain should root at the index temp but got %s", n, assign.RHS)
		}
	}
}

func TestElidedIndex(t *testing.T) {
	l := New(Config{})
	blk := l.For(nil, bounded(1, 3), ast.NewBlock(), false, false)
	_, _, _, loop := unpack(t, blk)
	decl := loop.Body.Stmts[1].(*ast.Decl)
	if !decl.Sym.HasFlag(ast.FlagElided) {
		t.Error("absent index should lower to an elided placeholder binding")
	}
}

func TestKindClassification(t *testing.T) {
	i := ast.NewSymbol("i")
	l := New(Config{})

	_, _, _, forLoop := unpack(t, l.For(i.Ref(), bounded(1, 3), useBody(i), false, false))
	if forLoop.IsTask() || forLoop.OrderFree() || forLoop.IsSynthesized() {
		t.Error("sequential loop should carry no parallel classification")
	}

	_, _, _, each := unpack(t, l.Foreach(i.Ref(), bounded(1, 3), nil, useBody(i), false, false))
	if !each.OrderFree() {
		t.Error("foreach should be order-independent")
	}
	if each.IsTask() {
		t.Error("foreach should not be task-parallel")
	}

	_, _, _, cofor := unpack(t, l.Cofor(i.Ref(), bounded(1, 3), useBody(i), false))
	if !cofor.IsTask() {
		t.Error("cofor index should carry the task classification")
	}
	if !cofor.Index().Sym.HasFlag(ast.FlagTaskIndex) {
		t.Error("task classification should live on the index symbol")
	}

	_, _, _, forall := unpack(t, l.LoweredForall(i.Ref(), bounded(1, 3), useBody(i), false, false))
	if !forall.OrderFree() || !forall.IsSynthesized() {
		t.Error("lowered forall should be order-independent and synthesized")
	}
}

func TestIntentsRelocated(t *testing.T) {
	i := ast.NewSymbol("i")
	intents := []ast.Stmt{&ast.Decl{Sym: ast.NewSymbol("acc")}}
	l := New(Config{})
	_, _, _, loop := unpack(t, l.Foreach(i.Ref(), bounded(1, 3), intents, useBody(i), false, false))
	got := loop.Intents()
	if len(got) != 1 || got[0] != intents[0] {
		t.Error("task intents should be relocated onto the loop verbatim")
	}
}

func TestLoopExprFlag(t *testing.T) {
	i := ast.NewSymbol("i")
	l := New(Config{})
	_, _, _, loop := unpack(t, l.For(i.Ref(), bounded(1, 3), useBody(i), false, true))
	if !loop.IsLoopExpr() {
		t.Error("loop expression flag should survive lowering")
	}
}

func expectICE(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected internal error")
		}
		if _, ok := r.(ice.Error); !ok {
			t.Fatalf("expected ice.Error but got %v", r)
		}
	}()
	fn()
}

func TestContractViolationsAbort(t *testing.T) {
	l := New(Config{})
	i := ast.NewSymbol("i")
	body := useBody(i)
	expectICE(t, func() { l.Lower(Raw{Index: i.Ref(), Body: body}) })
	expectICE(t, func() { l.Lower(Raw{Index: i.Ref(), Iterand: bounded(1, 3)}) })
	expectICE(t, func() {
		l.Lower(Raw{Index: i.Ref(), Iterand: &ast.Zip{}, Body: body, Zippered: true})
	})
	expectICE(t, func() {
		l.Lower(Raw{Index: &ast.IntLit{Value: 1}, Iterand: bounded(1, 3), Body: body})
	})
}
