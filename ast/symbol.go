package ast

import (
	"fmt"
	"sync/atomic"
)

// Flag is a classification bit attached to a Symbol. Later passes dispatch on
// these, so their meanings are a stable contract.
type Flag uint8

const (
	// FlagTemp marks a compiler-synthesised temporary.
	FlagTemp Flag = 1 << iota
	// FlagIndexVar marks the per-iteration value temporary of a lowered loop.
	FlagIndexVar
	// FlagTaskIndex marks a loop index that becomes the argument of a task
	// spawned per produced element. Task-creation lowering keys off this.
	FlagTaskIndex
	// FlagElided marks a placeholder index for loops written without one.
	FlagElided
)

// Symbol is a named variable or label. Temporaries carry a process-unique id
// so that printing and symbol maps never confuse two temps that share a name.
type Symbol struct {
	Name  string
	flags Flag
	id    uint64
}

var tempID uint64

// NewSymbol returns a symbol for a user-written name.
func NewSymbol(name string) *Symbol {
	return &Symbol{Name: name}
}

// NewTemp returns a fresh compiler temporary.
func NewTemp(name string) *Symbol {
	return &Symbol{
		Name:  name,
		flags: FlagTemp,
		id:    atomic.AddUint64(&tempID, 1),
	}
}

// AddFlag sets a classification flag on the symbol.
func (s *Symbol) AddFlag(f Flag) {
	s.flags |= f
}

// HasFlag reports whether f is set.
func (s *Symbol) HasFlag(f Flag) bool {
	return s.flags&f != 0
}

// UniqName returns a name that is unique across the compilation for
// temporaries, and the plain name for user symbols.
func (s *Symbol) UniqName() string {
	if s.HasFlag(FlagTemp) {
		return fmt.Sprintf("%s_%d", s.Name, s.id)
	}
	return s.Name
}

// Ref returns a new reference to the symbol.
func (s *Symbol) Ref() *SymRef {
	return &SymRef{Sym: s}
}

func (s *Symbol) String() string {
	return s.UniqName()
}
