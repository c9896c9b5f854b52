// Package ast defines the abstract syntax tree the loop-lowering stage
// operates on.
//
// The tree is deliberately small: it only carries the node shapes the
// lowering needs to consume from the parser (loop descriptions, iterable
// expressions, index patterns) and to produce for later passes (declarations,
// assignments, scoped cleanup, labelled blocks and the lowered Loop node).
// Nodes are positionless; source locations are tracked by the parser and
// diagnostics layers, which are outside this stage.
//
// Expressions are immutable by convention. Rewrites such as the range
// optimisation return new expressions and leave the input intact; use
// CopyExpr when a sub-expression must appear in more than one place.
package ast
