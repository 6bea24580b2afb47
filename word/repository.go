package word

import "github.com/BogCyg/BCForth/cell"

// Repository is the append-only collection owning every word node that is
// not (yet) a dictionary entry: literals compiled into bodies, buffers
// created by CREATE, and so on (spec §3). The last-appended Buffer is the
// "current target" for `,`, `,"`, and ALLOT (spec §4.6).
//
// Repository also hands out the flat address space that @, !, and friends
// operate over: each Buffer is assigned a base address when created, and
// Load/Store resolve an address to whichever buffer's cell range contains
// it. Only one buffer grows at a time (between a CREATE and the next one),
// so addresses never need to be reserved in advance.
type Repository struct {
	nodes   []Node
	buffers []*Buffer
	here    cell.Cell
}

// NewRepository returns an empty repository whose address space starts at
// base (conventionally low addresses are reserved for boot variables).
func NewRepository(base cell.Cell) *Repository {
	return &Repository{here: base}
}

// Append adds n to the repository and returns it (for chaining at call
// sites that both allocate and need the node back).
func (r *Repository) Append(n Node) Node {
	r.nodes = append(r.nodes, n)
	return n
}

// Nodes returns every node ever appended, in append order.
func (r *Repository) Nodes() []Node { return r.nodes }

// NewBuffer allocates a fresh empty Buffer named name at the next free
// address, appends it, and makes it the current target.
func (r *Repository) NewBuffer(name string) *Buffer {
	b := NewBuffer(name, r.here)
	r.buffers = append(r.buffers, b)
	r.nodes = append(r.nodes, b)
	return b
}

// CurrentBuffer returns the most recently created buffer, the target for
// `,`, `,"`, and ALLOT. Returns nil if CREATE has never been called.
func (r *Repository) CurrentBuffer() *Buffer {
	if len(r.buffers) == 0 {
		return nil
	}
	return r.buffers[len(r.buffers)-1]
}

// syncHere advances the address high-water mark to match the current
// buffer's growth; must be called after every Comma/Allot on it.
func (r *Repository) syncHere() {
	if b := r.CurrentBuffer(); b != nil {
		r.here = b.End()
	}
}

// Comma appends v to the current buffer and advances the address
// high-water mark. Reports false if there is no current buffer.
func (r *Repository) Comma(v cell.Cell) bool {
	b := r.CurrentBuffer()
	if b == nil {
		return false
	}
	b.Comma(v)
	r.syncHere()
	return true
}

// CommaString appends s's bytes to the current buffer as cells.
func (r *Repository) CommaString(s string) bool {
	b := r.CurrentBuffer()
	if b == nil {
		return false
	}
	b.CommaString(s)
	r.syncHere()
	return true
}

// Allot grows (or shrinks, if n<0) the current buffer by n cells.
func (r *Repository) Allot(n int) bool {
	b := r.CurrentBuffer()
	if b == nil {
		return false
	}
	b.Allot(n)
	r.syncHere()
	return true
}

// bufferAt returns the buffer whose [Base, End) range contains addr, if any.
// Addresses are in the same byte-stride units as CELLS/CELL+, so the cell
// index within the buffer is the byte offset divided by cell.Size.
func (r *Repository) bufferAt(addr cell.Cell) *Buffer {
	for _, b := range r.buffers {
		if addr >= b.Base && addr < b.Base+cell.Cell(len(b.Cells))*cell.Size {
			return b
		}
	}
	return nil
}

// Load reads the cell at addr.
func (r *Repository) Load(addr cell.Cell) (cell.Cell, bool) {
	b := r.bufferAt(addr)
	if b == nil {
		return 0, false
	}
	return b.Cells[(addr-b.Base)/cell.Size], true
}

// Store writes v at addr.
func (r *Repository) Store(addr, v cell.Cell) bool {
	b := r.bufferAt(addr)
	if b == nil {
		return false
	}
	b.Cells[(addr-b.Base)/cell.Size] = v
	return true
}

// Here returns the current address high-water mark.
func (r *Repository) Here() cell.Cell { return r.here }

// AllocLiteral appends and returns a fresh Literal node owned by the
// repository. The compiler's ['] and [CHAR] build their literals with
// NewLiteral instead.
func (r *Repository) AllocLiteral(v cell.Cell) *Literal {
	l := NewLiteral(v)
	r.nodes = append(r.nodes, l)
	return l
}
