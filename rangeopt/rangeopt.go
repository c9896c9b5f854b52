package rangeopt

import (
	"github.com/tarnlang/tarn/ast"
	"github.com/tarnlang/tarn/protocol"
)

// Options configures the optimiser. The zero value enables the rewrite.
type Options struct {
	// Disable turns the rewrite off for the whole compilation.
	Disable bool
}

// descriptor classifies a candidate simple-range iterable before
// substitution.
type descriptor struct {
	rng    *ast.Call // range-builder call
	stride ast.Expr  // from a rangeBy wrapper, or nil
	count  ast.Expr  // from a rangeCount wrapper, or nil
}

// Apply returns a direct-iteration call equivalent to e if e is a simple
// anonymous range, and e itself otherwise. The input is never mutated; the
// caller substitutes the result at the point of use.
func Apply(opts Options, e ast.Expr) ast.Expr {
	if opts.Disable {
		return e
	}
	call, ok := e.(*ast.Call)
	if !ok {
		return e
	}

	var d descriptor
	switch {
	case call.IsNamed(protocol.RangeBy) && len(call.Args) == 2:
		rng, ok := call.Args[0].(*ast.Call)
		if !ok {
			return e
		}
		d = descriptor{rng: rng, stride: call.Args[1]}
	case call.IsNamed(protocol.RangeCount) && len(call.Args) == 2:
		rng, ok := call.Args[0].(*ast.Call)
		if !ok {
			return e
		}
		d = descriptor{rng: rng, count: call.Args[1]}
	default:
		// Assume the call itself is the range builder; checked below.
		d = descriptor{rng: call}
	}

	fullyBounded := d.rng.IsNamed(protocol.BuildBoundedRange) && len(d.rng.Args) == 2
	lowBounded := d.rng.IsNamed(protocol.BuildLowBoundedRange) && len(d.rng.Args) == 1

	switch {
	case fullyBounded && d.stride == nil && d.count == nil:
		// low..high becomes directRangeIter(low, high).
		return ast.NewCall(protocol.DirectRange,
			ast.CopyExpr(d.rng.Args[0]),
			ast.CopyExpr(d.rng.Args[1]))

	case fullyBounded && d.stride != nil && d.count == nil:
		// low..high by stride becomes directStridedRangeIter(low, high, stride).
		return ast.NewCall(protocol.DirectStridedRange,
			ast.CopyExpr(d.rng.Args[0]),
			ast.CopyExpr(d.rng.Args[1]),
			ast.CopyExpr(d.stride))

	case lowBounded && d.count != nil && d.stride == nil:
		// low..#count becomes directCountedRangeIter(low, count).
		return ast.NewCall(protocol.DirectCountedRange,
			ast.CopyExpr(d.rng.Args[0]),
			ast.CopyExpr(d.count))
	}
	return e
}
