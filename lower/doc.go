// Package lower desugars the surface loop forms into the canonical
// iterator-protocol shape consumed by later passes.
//
// Every loop variant — sequential for, order-independent foreach,
// task-parallel cofor, zippered or not — lowers to the same block:
//
//	{
//	  var _index
//	  var _iterator
//	  _iterator = iterAcquire(<iterable>)
//	  defer iterRelease(_iterator)
//	  loop {
//	    _index = iterNext(_iterator)
//	    <bind index pattern from _index>
//	    <body>
//	    _continueLabel:
//	  }
//	  _breakLabel:
//	}
//
// The deferred release is the single resource-safety guarantee of the stage:
// it fires exactly once on every exit from the block, including break, early
// return and propagated failure, so no exit path ever needs its own cleanup.
//
// Zippered loops collapse their sources into one combined handle (a tuple of
// per-source handles) before assembly, so the shape above never changes.
// Loop kinds do not change the shape either; they only set classification
// flags that later passes (vectorisation, task creation) dispatch on.
package lower
