package lower

import (
	"github.com/tarnlang/tarn/ast"
	"github.com/tarnlang/tarn/internal/ice"
	"github.com/tarnlang/tarn/protocol"
	"github.com/tarnlang/tarn/rangeopt"
)

// Lower assembles the canonical lowered block for one raw loop description.
// See the package documentation for the produced shape.
func (l *Lowerer) Lower(raw Raw) *ast.Block {
	ice.Assertf(raw.Iterand != nil, "lower: %v", ErrNoIterand)
	ice.Assertf(raw.Body != nil, "lower: %v", ErrNoBody)
	l.Debugf("lower: %s loop, zippered=%t, synthesized=%t",
		raw.Kind, raw.Zippered, raw.Synthesized)

	opts := rangeopt.Options{Disable: l.Config.NoRangeOpt}

	var handle *ast.Symbol
	var init ast.Stmt
	if raw.Zippered {
		handle, init = l.expandZip(raw.Iterand, opts)
	} else {
		handle, init = protocol.Emit(rangeopt.Apply(opts, raw.Iterand))
	}

	index := ast.NewTemp("_index")
	index.AddFlag(ast.FlagIndexVar)
	if raw.Kind == Task {
		index.AddFlag(ast.FlagTaskIndex)
	}

	pattern := raw.Index
	if pattern == nil {
		elided := ast.NewTemp("_elidedIdx")
		elided.AddFlag(ast.FlagElided)
		pattern = elided.Ref()
	}

	// Loop body: fetch, then index binding, then the user body. The continue
	// label sits at the tail so a continue still reaches the next fetch.
	body := ast.NewBlock(&ast.Assign{LHS: index, RHS: protocol.NewAdvance(handle)})
	destructure(body, pattern, index.Ref())
	body.Append(raw.Body.Stmts...)

	cont := ast.NewTemp("_continueLabel")
	brk := ast.NewTemp("_breakLabel")
	body.Append(&ast.Label{Sym: cont})

	loop := ast.NewLoop(index, handle, body, raw.Zippered)
	loop.SetLabels(cont, brk)
	loop.SetOrderFree(raw.Kind == OrderFree)
	loop.SetSynthesized(raw.Synthesized)
	loop.SetLoopExpr(raw.LoopExpr)
	loop.SetIntents(raw.Intents)

	out := ast.NewBlock(
		&ast.Decl{Sym: index},
		&ast.Decl{Sym: handle},
		init,
		&ast.Defer{Call: protocol.NewRelease(handle)},
		loop,
		&ast.Label{Sym: brk},
	)
	l.Debugf("lower: produced\n%s", out)
	return out
}

// destructure binds an index pattern against src, appending declarations and
// assignments to dst. Tuple patterns bind positionally, recursing into
// nested patterns.
func destructure(dst *ast.Block, pattern ast.Expr, src ast.Expr) {
	switch p := pattern.(type) {
	case *ast.SymRef:
		dst.Append(&ast.Decl{Sym: p.Sym})
		dst.Append(&ast.Assign{LHS: p.Sym, RHS: src})
	case *ast.TuplePattern:
		ice.Assertf(len(p.Elems) > 0, "lower: empty tuple pattern")
		for i, el := range p.Elems {
			destructure(dst, el, &ast.TupleIndex{
				Tuple: ast.CopyExpr(src),
				Index: i,
			})
		}
	default:
		ice.Fatalf("lower: invalid index pattern %T", pattern)
	}
}
