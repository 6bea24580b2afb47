package stack

import "github.com/BogCyg/BCForth/cell"

// DataStack is a Stack with the fused Forth primitives from spec §4.1 layered
// on top: shuffle words, memory arithmetic, typed load/store, arithmetic,
// comparisons, increment/decrement, and bitwise ops. Every method reports
// true on success, false if the stack didn't hold enough operands — the hot
// path never allocates or panics.
type DataStack struct {
	Stack
}

// NewData returns an empty DataStack with room for capacity cells.
func NewData(capacity int) *DataStack {
	return &DataStack{Stack{data: make([]cell.Cell, capacity)}}
}

// Drop removes the top cell.
func (d *DataStack) Drop() bool {
	var v cell.Cell
	return d.Pop(&v)
}

// Dup duplicates the top cell: ( x -- x x ).
func (d *DataStack) Dup() bool {
	var v cell.Cell
	if !d.Peek(0, &v) {
		return false
	}
	return d.Push(v)
}

// Over copies the second cell to the top: ( x y -- x y x ).
func (d *DataStack) Over() bool {
	var v cell.Cell
	if !d.Peek(1, &v) {
		return false
	}
	return d.Push(v)
}

// Swap exchanges the top two cells: ( x y -- y x ).
func (d *DataStack) Swap() bool {
	var a, b cell.Cell
	if !d.Peek(0, &a) || !d.Peek(1, &b) {
		return false
	}
	d.PeekSet(0, b)
	d.PeekSet(1, a)
	return true
}

// Rot rotates the top three cells: ( x y z -- y z x ).
func (d *DataStack) Rot() bool {
	var x, y, z cell.Cell
	if !d.Peek(2, &x) || !d.Peek(1, &y) || !d.Peek(0, &z) {
		return false
	}
	d.PeekSet(2, y)
	d.PeekSet(1, z)
	d.PeekSet(0, x)
	return true
}

// Cells scales the top cell by the cell width: ( n -- n*cellsize ).
func (d *DataStack) Cells() bool {
	var v cell.Cell
	if !d.Pop(&v) {
		return false
	}
	return d.Push(v * cell.Size)
}

// CellPlus adds the cell width to the top cell: ( addr -- addr+cellsize ).
func (d *DataStack) CellPlus() bool {
	var v cell.Cell
	if !d.Pop(&v) {
		return false
	}
	return d.Push(v + cell.Size)
}

// Fetch reads through a load function parameterised by the accessed type:
// ( addr -- x ), where load reinterprets the memory at addr to cell width.
func (d *DataStack) Fetch(load func(addr cell.Cell) (cell.Cell, bool)) bool {
	var addr cell.Cell
	if !d.Pop(&addr) {
		return false
	}
	v, ok := load(addr)
	if !ok {
		return false
	}
	return d.Push(v)
}

// Store writes through a store function parameterised by the accessed type:
// ( x addr -- ), reinterpreting x down to the target type's width.
func (d *DataStack) Store(store func(addr, v cell.Cell) bool) bool {
	var addr, v cell.Cell
	if !d.Pop(&addr) || !d.Pop(&v) {
		return false
	}
	return store(addr, v)
}

// CPlusStore accumulates: ( n addr -- ), reading, adding n, and writing back.
func (d *DataStack) CPlusStore(load func(addr cell.Cell) (cell.Cell, bool), store func(addr, v cell.Cell) bool) bool {
	var addr, n cell.Cell
	if !d.Pop(&addr) || !d.Pop(&n) {
		return false
	}
	cur, ok := load(addr)
	if !ok {
		return false
	}
	return store(addr, cur+n)
}

// BinaryOp pops two cells and pushes f(second, top); f embodies the
// arithmetic type A (signed-int or float) by how it reinterprets its
// operands, fusing the pop-pop-push sequence at the hot path.
func (d *DataStack) BinaryOp(f func(a, b cell.Cell) cell.Cell) bool {
	var a, b cell.Cell
	if !d.Pop(&b) || !d.Pop(&a) {
		return false
	}
	return d.Push(f(a, b))
}

// UnaryOp pops one cell and pushes f(top).
func (d *DataStack) UnaryOp(f func(a cell.Cell) cell.Cell) bool {
	var a cell.Cell
	if !d.Pop(&a) {
		return false
	}
	return d.Push(f(a))
}

// CompareOp pops two cells and pushes the canonical boolean cell for
// f(second, top).
func (d *DataStack) CompareOp(f func(a, b cell.Cell) bool) bool {
	var a, b cell.Cell
	if !d.Pop(&b) || !d.Pop(&a) {
		return false
	}
	return d.Push(cell.FromBool(f(a, b)))
}

// CompareZeroOp pops one cell and pushes the canonical boolean cell for
// f(top, 0) — the unary-against-zero comparison family (0=, 0<, ...).
func (d *DataStack) CompareZeroOp(f func(a cell.Cell) bool) bool {
	var a cell.Cell
	if !d.Pop(&a) {
		return false
	}
	return d.Push(cell.FromBool(f(a)))
}
