// Package rangeopt replaces iteration over simple anonymous ranges with
// direct-iteration calls that take the bounds as plain arguments, avoiding
// the construction of a range value that exists only to be iterated once.
//
// "Simple" means the iterable is written inline as one of
//
//	buildBoundedRange(low, high)
//	rangeBy(buildBoundedRange(low, high), stride)
//	rangeCount(buildLowBoundedRange(low), count)
//
// Anything else — aligned ranges, stacked strides, strided-and-counted
// ranges, unbounded ranges, or a reference to a range held in a variable —
// is left untouched and iterates through the general protocol.
//
// The rewrite matches builder call names syntactically; there is no semantic
// range analysis this early in compilation, which makes it deliberately
// fragile. If a prior transformation changed the shape, Apply silently
// declines. The Disable option switches the rewrite off wholesale for
// diagnosing miscompiles.
package rangeopt
