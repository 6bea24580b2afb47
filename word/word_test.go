package word

import (
	"bytes"
	"io"
	"testing"

	"github.com/BogCyg/BCForth/cell"
	"github.com/BogCyg/BCForth/stack"
)

type testMachine struct {
	data *stack.DataStack
	ret  *stack.Stack
	out  bytes.Buffer
	repo *Repository
}

func newTestMachine() *testMachine {
	return &testMachine{
		data: stack.NewData(64),
		ret:  stack.New(64),
		repo: NewRepository(0),
	}
}

func (m *testMachine) Data() *stack.DataStack  { return m.data }
func (m *testMachine) Return() *stack.Stack    { return m.ret }
func (m *testMachine) Output() io.Writer       { return &m.out }
func (m *testMachine) Repository() *Repository { return m.repo }

func TestCompositeAndIf(t *testing.T) {
	m := newTestMachine()
	m.data.Push(0)

	body := NewComposite("test")
	ifNode := NewIf("IF")
	ifNode.True.Append(NewLiteral(10))
	ifNode.False.Append(NewLiteral(20))
	body.Append(ifNode)

	if err := body.Invoke(m); err != nil {
		t.Fatal(err)
	}
	var v cell.Cell
	m.data.Pop(&v)
	if v != 20 {
		t.Fatalf("expected 20, got %d", v)
	}
}

func TestDoLoopCountsUp(t *testing.T) {
	m := newTestMachine()
	// 0 10 0 DO 1+ LOOP  -- body increments top, LOOP adds implicit +1
	doLoop := NewDoLoop("DO")
	doLoop.Body.Append(NewPrimitive("1+", func(mm Machine) error {
		var v cell.Cell
		mm.Data().Pop(&v)
		return boolToOverflow(mm.Data().Push(v + 1))
	}))
	doLoop.Body.Append(NewLiteral(1)) // implicit LOOP step

	m.data.Push(0)  // accumulator
	m.data.Push(10) // limit
	m.data.Push(0)  // initial index

	if err := doLoop.Invoke(m); err != nil {
		t.Fatal(err)
	}
	var v cell.Cell
	m.data.Pop(&v)
	if v != 10 {
		t.Fatalf("expected 10, got %d", v)
	}
}

func boolToOverflow(ok bool) error {
	if !ok {
		return ErrStackOverflow
	}
	return nil
}

func TestLeavePropagatesThroughComposite(t *testing.T) {
	m := newTestMachine()
	doLoop := NewDoLoop("DO")
	leave := NewPrimitive("LEAVE", func(mm Machine) error { return ErrLeave })
	inner := NewComposite("inner")
	inner.Append(leave)
	doLoop.Body.Append(inner)
	doLoop.Body.Append(NewLiteral(1))

	m.data.Push(5)
	m.data.Push(0)

	if err := doLoop.Invoke(m); err != nil {
		t.Fatalf("LEAVE should be caught by DoLoop, got %v", err)
	}
}
