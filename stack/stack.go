// Package stack implements the fixed-capacity LIFO cell stacks BCForth runs
// on, and the Forth-primitive operations fused at this layer for the hot
// path (spec §4.1).
package stack

import "github.com/BogCyg/BCForth/cell"

// DefaultCapacity is the default stack depth (spec §3).
const DefaultCapacity = 64

// Stack is a fixed-capacity LIFO of cells. All mutators report success;
// overflow on Push and underflow on Pop/Peek return false instead of
// panicking, so the calling word can turn the failure into an error.
type Stack struct {
	data []cell.Cell
	sp   int
}

// New returns an empty Stack with room for capacity cells.
func New(capacity int) *Stack {
	return &Stack{data: make([]cell.Cell, capacity)}
}

// Push pushes v. Reports false on overflow.
func (s *Stack) Push(v cell.Cell) bool {
	if s.sp >= len(s.data) {
		return false
	}
	s.data[s.sp] = v
	s.sp++
	return true
}

// Pop removes and returns the top cell into out. Reports false on
// underflow, leaving out untouched.
func (s *Stack) Pop(out *cell.Cell) bool {
	if s.sp == 0 {
		return false
	}
	s.sp--
	*out = s.data[s.sp]
	return true
}

// Peek reads the cell at depth (0 = top) into out without removing it.
func (s *Stack) Peek(depth int, out *cell.Cell) bool {
	idx := s.sp - 1 - depth
	if idx < 0 || idx >= s.sp {
		return false
	}
	*out = s.data[idx]
	return true
}

// PeekSet overwrites the cell at depth (0 = top) with v.
func (s *Stack) PeekSet(depth int, v cell.Cell) bool {
	idx := s.sp - 1 - depth
	if idx < 0 || idx >= s.sp {
		return false
	}
	s.data[idx] = v
	return true
}

// Size returns the current depth.
func (s *Stack) Size() int { return s.sp }

// Cap returns the stack's capacity.
func (s *Stack) Cap() int { return len(s.data) }

// Clear empties the stack, as done on run-time error (spec §5).
func (s *Stack) Clear() { s.sp = 0 }

// Data returns the live contents, bottom first, for diagnostic dump (.S).
// The returned slice aliases the stack's backing array and must not be
// retained past the next mutation.
func (s *Stack) Data() []cell.Cell { return s.data[:s.sp] }
