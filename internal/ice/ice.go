// Package ice reports internal compiler errors.
//
// An internal compiler error means an invariant of the compiler itself was
// broken, e.g. the parser handed over a malformed loop description, or a later
// pass queried a structural field the lowering never populated. These are
// programmer errors, not user errors, so they abort the compilation of the
// unit loudly instead of degrading to a sentinel value.
package ice

import "fmt"

// Error is an internal compiler error. It is delivered by panicking so that
// it unwinds through arbitrary pass code; the top-level driver recovers it
// and reports it as a compiler bug.
type Error struct {
	msg string
}

func (e Error) Error() string {
	return "internal error: " + e.msg
}

// Fatalf aborts the current compilation with an internal error.
func Fatalf(format string, args ...interface{}) {
	panic(Error{msg: fmt.Sprintf(format, args...)})
}

// Assertf aborts with an internal error if cond does not hold.
func Assertf(cond bool, format string, args ...interface{}) {
	if !cond {
		Fatalf(format, args...)
	}
}
