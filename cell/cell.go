// Package cell implements the uniform machine-word value carried on the
// BCForth data and return stacks.
//
// A Cell never changes representation: it is reinterpreted, not converted,
// when an operation treats it as a different logical type. Reading a type
// narrower than a cell masks to that type's width; writing one zero-extends.
package cell

import "math"

// Cell is the fixed-width value unit of both stacks: wide enough to hold an
// unsigned integer, a signed integer, a word-graph handle, a raw-buffer
// address, or the bit pattern of a float64, all reinterpreted in place.
type Cell int64

// Size is the width of a Cell in bytes, as used by CELLS/CELL+.
const Size = 8

// Int returns c reinterpreted as a signed integer (the identity
// reinterpretation; Cell already stores signed integers natively).
func (c Cell) Int() int64 { return int64(c) }

// FromInt builds a Cell from a signed integer.
func FromInt(v int64) Cell { return Cell(v) }

// Bool reports the Forth truth value of c: any non-zero cell is true.
func (c Cell) Bool() bool { return c != 0 }

// FromBool returns the canonical Forth boolean cell: -1 is the ANS
// Forth-standard true... but this implementation follows the spec's
// documented convention of 1 for true, 0 for false (spec §4.1).
func FromBool(b bool) Cell {
	if b {
		return 1
	}
	return 0
}

// Float reinterprets c's bit pattern as a float64.
func (c Cell) Float() float64 { return math.Float64frombits(uint64(c)) }

// FromFloat packs f's bit pattern into a Cell.
func FromFloat(f float64) Cell { return Cell(math.Float64bits(f)) }

// Byte masks c to its low 8 bits, the reinterpretation used when a C@-style
// access narrower than a cell reads through a wider cell.
func (c Cell) Byte() byte { return byte(c & 0xff) }

// FromByte zero-extends b into a Cell, the reinterpretation used when a
// C!-style access stores a narrower value into cell-wide storage.
func FromByte(b byte) Cell { return Cell(b) }
