// Package word implements the word graph (spec §3, §4.2): the in-memory
// representation of every executable unit BCForth runs — primitives,
// literals, raw-byte buffers, composites, and the structural control-flow
// nodes the compiler assembles.
//
// The source specification's weak references (I_LOOP → enclosing DO_LOOP,
// EXIT_BEGIN_LOOP → enclosing BEGIN_LOOP, Postpone → target, composite →
// children) are non-owning by contract in a language without a garbage
// collector. In Go, a plain pointer already is that: the repository (or a
// dictionary entry) is the only thing that appends/owns a node, and a
// pointer elsewhere never extends its lifetime beyond what the owner already
// guarantees, so no separate handle/index indirection is needed.
package word

import (
	"io"

	"github.com/BogCyg/BCForth/stack"
)

// Machine is what a word node needs from its running environment to invoke
// itself. forth.Environment implements this; the word package never imports
// forth, keeping the dependency direction leaves-first (spec §2).
type Machine interface {
	Data() *stack.DataStack
	Return() *stack.Stack
	Output() io.Writer
	Repository() *Repository
}

// Node is a polymorphic executable unit (spec §3).
type Node interface {
	// Invoke runs the node against m. Composite and structural nodes
	// recurse into their children; Primitive invokes its closure.
	Invoke(m Machine) error
	// Name is a short diagnostic label (a primitive's word name, or a
	// generic tag for compiler-synthesized nodes). Postpone uses its
	// target's Name for its own; WORDS lists dictionary entry names.
	Name() string
}

// leaveSentinel is the Go idiomatic replacement for the source's thrown
// LEAVE exception (spec §9 design note): a sentinel error returned up
// through composites, caught by the nearest enclosing loop boundary.
type leaveSentinel struct{}

func (leaveSentinel) Error() string { return "LEAVE" }

// ErrLeave is returned by the LEAVE primitive and propagates unchanged
// through Composite.Invoke; DoLoop and BeginLoop catch it at their own
// invocation boundary and treat it as normal loop exit.
var ErrLeave error = leaveSentinel{}
