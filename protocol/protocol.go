package protocol

import (
	"github.com/tarnlang/tarn/ast"
	"github.com/tarnlang/tarn/internal/ice"
)

// Runtime call names. Stable contract; see package doc.
const (
	// Acquire obtains an iteration handle for one iterable.
	Acquire = "iterAcquire"
	// AcquireZip obtains a combined handle for a tuple of iterables.
	AcquireZip = "iterAcquireZip"
	// Advance advances a handle and produces its next value.
	Advance = "iterNext"
	// Release releases a handle. Called exactly once per handle.
	Release = "iterRelease"

	// Direct range iteration, substituted by the range optimiser.
	DirectRange        = "directRangeIter"
	DirectStridedRange = "directStridedRangeIter"
	DirectCountedRange = "directCountedRangeIter"

	// Range builders and modifiers recognised by the range optimiser.
	BuildBoundedRange    = "buildBoundedRange"
	BuildLowBoundedRange = "buildLowBoundedRange"
	RangeBy              = "rangeBy"
	RangeCount           = "rangeCount"
	RangeAlign           = "rangeAlign"

	// BuildTuple constructs a tuple value. Also the shape of old-style
	// synchronized iteration input.
	BuildTuple = "buildTuple"
)

// Emit produces a fresh handle temporary and the statement initialising it
// with an acquired handle for iterable. The input expression is consumed into
// the returned statement; callers needing another use must copy it first.
// Release and the per-iteration advance are placed by the loop assembler so
// that release lands in a scope-exit position.
func Emit(iterable ast.Expr) (*ast.Symbol, ast.Stmt) {
	ice.Assertf(iterable != nil, "protocol.Emit: iterable is nil")
	handle := ast.NewTemp("_iterator")
	return handle, &ast.Assign{
		LHS: handle,
		RHS: ast.NewCall(Acquire, iterable),
	}
}

// EmitZip is Emit for an already-combined source: the handle is initialised
// from init directly rather than wrapped in another acquire call.
func EmitZip(init ast.Expr) (*ast.Symbol, ast.Stmt) {
	ice.Assertf(init != nil, "protocol.EmitZip: init is nil")
	handle := ast.NewTemp("_iterator")
	return handle, &ast.Assign{LHS: handle, RHS: init}
}

// NewAdvance returns the per-iteration fetch call for handle.
func NewAdvance(handle *ast.Symbol) *ast.Call {
	return ast.NewCall(Advance, handle.Ref())
}

// NewRelease returns the release call for handle.
func NewRelease(handle *ast.Symbol) *ast.Call {
	return ast.NewCall(Release, handle.Ref())
}
