package stack

import (
	"testing"

	"github.com/BogCyg/BCForth/cell"
)

// C is a literal stack content list, the teacher's vm_test.go convention
// for expressing expected/initial stack state compactly.
type C []cell.Cell

func setup(vals C) *DataStack {
	d := NewData(DefaultCapacity)
	for _, v := range vals {
		d.Push(v)
	}
	return d
}

func check(t *testing.T, d *DataStack, want C) {
	t.Helper()
	got := d.Data()
	if len(got) != len(want) {
		t.Fatalf("stack depth: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("stack contents: got %v, want %v", got, want)
		}
	}
}

func TestPushPop(t *testing.T) {
	s := New(4)
	if !s.Push(1) || !s.Push(2) {
		t.Fatal("push failed under capacity")
	}
	var v cell.Cell
	if !s.Pop(&v) || v != 2 {
		t.Fatalf("pop: got %v, want 2", v)
	}
	if s.Size() != 1 {
		t.Fatalf("size: got %d, want 1", s.Size())
	}
}

func TestPushOverflow(t *testing.T) {
	s := New(2)
	if !s.Push(1) || !s.Push(2) {
		t.Fatal("push failed under capacity")
	}
	if s.Push(3) {
		t.Fatal("push succeeded past capacity")
	}
}

func TestPopUnderflow(t *testing.T) {
	s := New(2)
	var v cell.Cell
	if s.Pop(&v) {
		t.Fatal("pop succeeded on empty stack")
	}
}

func TestPeekAndPeekSet(t *testing.T) {
	s := New(4)
	s.Push(10)
	s.Push(20)
	var v cell.Cell
	if !s.Peek(0, &v) || v != 20 {
		t.Fatalf("peek(0): got %v, want 20", v)
	}
	if !s.Peek(1, &v) || v != 10 {
		t.Fatalf("peek(1): got %v, want 10", v)
	}
	if !s.PeekSet(0, 99) {
		t.Fatal("peekset failed")
	}
	s.Peek(0, &v)
	if v != 99 {
		t.Fatalf("peek after peekset: got %v, want 99", v)
	}
}

func TestClear(t *testing.T) {
	s := New(4)
	s.Push(1)
	s.Push(2)
	s.Clear()
	if s.Size() != 0 {
		t.Fatalf("size after clear: got %d, want 0", s.Size())
	}
}

func TestDataStackDup(t *testing.T) {
	d := setup(C{0, 42})
	d.Dup()
	check(t, d, C{0, 42, 42})
}

func TestDataStackDrop(t *testing.T) {
	d := setup(C{0, 42})
	d.Drop()
	check(t, d, C{0})
}

func TestDataStackSwap(t *testing.T) {
	d := setup(C{0, 42})
	d.Swap()
	check(t, d, C{42, 0})
}

func TestDataStackOver(t *testing.T) {
	d := setup(C{1, 2})
	d.Over()
	check(t, d, C{1, 2, 1})
}

func TestDataStackRot(t *testing.T) {
	d := setup(C{1, 2, 3})
	d.Rot()
	check(t, d, C{2, 3, 1})
}

func TestDataStackCellsAndCellPlus(t *testing.T) {
	d := setup(C{3})
	d.Cells()
	check(t, d, C{3 * cell.Size})

	d2 := setup(C{100})
	d2.CellPlus()
	check(t, d2, C{100 + cell.Size})
}

func TestDataStackBinaryOp(t *testing.T) {
	d := setup(C{5, 3})
	d.BinaryOp(func(a, b cell.Cell) cell.Cell { return a - b })
	check(t, d, C{2})
}

func TestDataStackUnaryOp(t *testing.T) {
	d := setup(C{5})
	d.UnaryOp(func(a cell.Cell) cell.Cell { return -a })
	check(t, d, C{-5})
}

func TestDataStackCompareOp(t *testing.T) {
	d := setup(C{5, 3})
	d.CompareOp(func(a, b cell.Cell) bool { return a > b })
	check(t, d, C{cell.FromBool(true)})
}

func TestDataStackCompareZeroOp(t *testing.T) {
	d := setup(C{0})
	d.CompareZeroOp(func(a cell.Cell) bool { return a == 0 })
	check(t, d, C{cell.FromBool(true)})
}

func TestDataStackFetchStore(t *testing.T) {
	mem := map[cell.Cell]cell.Cell{}
	load := func(addr cell.Cell) (cell.Cell, bool) { v, ok := mem[addr]; return v, ok }
	store := func(addr, v cell.Cell) bool { mem[addr] = v; return true }

	d := setup(C{42, 8})
	if !d.Store(store) {
		t.Fatal("store failed")
	}
	if mem[8] != 42 {
		t.Fatalf("mem[8]: got %v, want 42", mem[8])
	}

	d2 := setup(C{8})
	if !d2.Fetch(load) {
		t.Fatal("fetch failed")
	}
	check(t, d2, C{42})
}

func TestDataStackUnderflowReportsFalse(t *testing.T) {
	d := setup(nil)
	if d.Drop() {
		t.Fatal("drop succeeded on empty stack")
	}
	if d.Swap() {
		t.Fatal("swap succeeded on too-shallow stack")
	}
}
