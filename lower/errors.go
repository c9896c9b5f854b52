package lower

import "github.com/pkg/errors"

var (
	// ErrNoIterand reports a loop description without an iterable.
	ErrNoIterand = errors.New("loop has no iterable expression")
	// ErrNoBody reports a loop description without a body block.
	ErrNoBody = errors.New("loop has no body")
	// ErrNoSources reports a synchronized iteration with an empty source
	// list. The parser must reject this before handing over.
	ErrNoSources = errors.New("synchronized iteration requires at least one source")
)
