// Package protocol names the iterator-protocol runtime and emits the
// acquire side of it.
//
// The lowering stage does not implement iteration; it emits calls, by fixed
// name, into the runtime: acquire a handle for an iterable, advance the
// handle to produce the next value, and release the handle. The names below
// are a boundary contract shared with the runtime and with the range
// optimiser, which matches builder calls syntactically. Renaming any of them
// breaks both sides silently, so don't.
package protocol
