package lower

import (
	"github.com/tarnlang/tarn/ast"
)

// Kind is the closed set of loop variants the parser can hand over.
type Kind int

const (
	// Sequential is a plain for loop.
	Sequential Kind = iota
	// OrderFree is a foreach loop: iterations carry no assumed
	// cross-iteration dependency.
	OrderFree
	// Task is a cofor loop: each produced index becomes the argument of a
	// concurrently spawned task.
	Task
)

func (k Kind) String() string {
	switch k {
	case Sequential:
		return "for"
	case OrderFree:
		return "foreach"
	case Task:
		return "cofor"
	}
	return "unknown"
}

// Raw is the parser's loop description, before lowering.
type Raw struct {
	Kind     Kind
	Zippered bool       // advance multiple sources in lockstep
	Index    ast.Expr   // SymRef or TuplePattern; nil elides the index
	Iterand  ast.Expr   // iterable, or Zip / source tuple when Zippered
	Body     *ast.Block // user body; empty is legal
	Intents  []ast.Stmt // task intents, relocated verbatim

	// Synthesized marks a loop produced by lowering a higher-level parallel
	// construct rather than written by the user.
	Synthesized bool
	// LoopExpr marks a loop written in expression position.
	LoopExpr bool
}

// Lowerer lowers raw loop descriptions. One Lowerer per compilation; it is
// not safe for concurrent use, which the pipeline never needs.
type Lowerer struct {
	Config Config
	*Logger
}

// New returns a Lowerer for one compilation.
func New(cfg Config) *Lowerer {
	return &Lowerer{
		Config: cfg,
		Logger: newLogger(),
	}
}

// AddLogFiles extends the current Logger and writes additional log to files.
func (l *Lowerer) AddLogFiles(files ...string) {
	l.Logger = newFileLogger(files...)
}

// For lowers a sequential for loop.
func (l *Lowerer) For(index, iterand ast.Expr, body *ast.Block, zippered, loopExpr bool) *ast.Block {
	return l.Lower(Raw{
		Kind:     Sequential,
		Zippered: zippered,
		Index:    index,
		Iterand:  iterand,
		Body:     body,
		LoopExpr: loopExpr,
	})
}

// Foreach lowers an order-independent foreach loop with optional task
// intents.
func (l *Lowerer) Foreach(index, iterand ast.Expr, intents []ast.Stmt, body *ast.Block, zippered, loopExpr bool) *ast.Block {
	return l.Lower(Raw{
		Kind:     OrderFree,
		Zippered: zippered,
		Index:    index,
		Iterand:  iterand,
		Body:     body,
		Intents:  intents,
		LoopExpr: loopExpr,
	})
}

// Cofor lowers a task-parallel cofor loop.
func (l *Lowerer) Cofor(index, iterand ast.Expr, body *ast.Block, zippered bool) *ast.Block {
	return l.Lower(Raw{
		Kind:     Task,
		Zippered: zippered,
		Index:    index,
		Iterand:  iterand,
		Body:     body,
	})
}

// LoweredForall lowers the serial residue of a forall construct. The result
// is order-independent and marked synthesized so diagnostics in later passes
// attribute errors to the original construct.
func (l *Lowerer) LoweredForall(index, iterand ast.Expr, body *ast.Block, zippered, loopExpr bool) *ast.Block {
	return l.Lower(Raw{
		Kind:        OrderFree,
		Zippered:    zippered,
		Index:       index,
		Iterand:     iterand,
		Body:        body,
		Synthesized: true,
		LoopExpr:    loopExpr,
	})
}
