package word

import "github.com/BogCyg/BCForth/cell"

// Buffer is a raw-byte buffer word created by CREATE: it owns a growable
// cell vector (cells, not bytes, keep the load/store layer uniform — spec
// §3 calls this a "raw-byte buffer" but every access goes through the same
// cell-reinterpretation rules as any other memory word) and pushes its own
// base address when invoked.
type Buffer struct {
	WordName string
	Base     cell.Cell // this buffer's address in the shared address space
	Cells    []cell.Cell
}

// NewBuffer allocates an empty buffer based at base.
func NewBuffer(name string, base cell.Cell) *Buffer {
	return &Buffer{WordName: name, Base: base}
}

func (b *Buffer) Invoke(m Machine) error {
	if !m.Data().Push(b.Base) {
		return ErrStackOverflow
	}
	return nil
}
func (b *Buffer) Name() string { return b.WordName }

// Comma appends v to the buffer (the `,` primitive's target operation).
func (b *Buffer) Comma(v cell.Cell) { b.Cells = append(b.Cells, v) }

// Allot grows the buffer by n cells of zero value (ALLOT). Negative n
// shrinks it, clamped at zero length.
func (b *Buffer) Allot(n int) {
	if n >= 0 {
		b.Cells = append(b.Cells, make([]cell.Cell, n)...)
		return
	}
	n = -n
	if n > len(b.Cells) {
		n = len(b.Cells)
	}
	b.Cells = b.Cells[:len(b.Cells)-n]
}

// CommaString appends s's bytes as cells (the `,"` primitive).
func (b *Buffer) CommaString(s string) {
	for i := 0; i < len(s); i++ {
		b.Comma(cell.FromByte(s[i]))
	}
}

// End returns the address one past the buffer's last cell, in the same
// byte-stride address units CELLS/CELL+ use (spec §4.1).
func (b *Buffer) End() cell.Cell { return b.Base + cell.Cell(len(b.Cells))*cell.Size }
