package lower

import (
	"github.com/tarnlang/tarn/ast"
	"github.com/tarnlang/tarn/internal/ice"
	"github.com/tarnlang/tarn/protocol"
	"github.com/tarnlang/tarn/rangeopt"
)

// expandZip collapses the sources of a zippered loop into one combined
// handle, so the assembler always sees a single handle regardless of arity.
//
// For the explicit zip primitive:
//
//	zip(a, b, c)  becomes  buildTuple(iterAcquire(a), iterAcquire(b), iterAcquire(c))
//	zip(a)        becomes  iterAcquire(a)
//	zip((...t))   becomes  iterAcquireZip(t)
//
// Tuple field order equals source order; destructuring consumers rely on it.
// The spread case passes the user's tuple through untouched, introducing no
// tuple beyond the one the user wrote.
//
// Old-style input, where the source tuple is already an aggregate buildTuple
// call (or a tuple-valued expression), is wrapped in iterAcquireZip whole;
// its arguments still get the per-source range optimisation.
func (l *Lowerer) expandZip(iterand ast.Expr, opts rangeopt.Options) (*ast.Symbol, ast.Stmt) {
	switch e := iterand.(type) {
	case *ast.Zip:
		ice.Assertf(len(e.Args) > 0, "lower: %v", ErrNoSources)
		if len(e.Args) == 1 {
			if sp, ok := e.Args[0].(*ast.Spread); ok {
				return protocol.EmitZip(ast.NewCall(protocol.AcquireZip, sp.Tuple))
			}
			return protocol.Emit(rangeopt.Apply(opts, e.Args[0]))
		}
		args := make([]ast.Expr, len(e.Args))
		for i, a := range e.Args {
			args[i] = ast.NewCall(protocol.Acquire, rangeopt.Apply(opts, a))
		}
		return protocol.EmitZip(ast.NewCall(protocol.BuildTuple, args...))

	case *ast.Call:
		if e.IsNamed(protocol.BuildTuple) {
			args := make([]ast.Expr, len(e.Args))
			for i, a := range e.Args {
				args[i] = rangeopt.Apply(opts, a)
			}
			return protocol.EmitZip(ast.NewCall(protocol.AcquireZip,
				ast.NewCall(protocol.BuildTuple, args...)))
		}
	}
	// A combined source in a variable, or some other tuple-valued
	// expression: acquire it whole.
	return protocol.EmitZip(ast.NewCall(protocol.AcquireZip, iterand))
}
