package word

import "github.com/BogCyg/BCForth/cell"

// Primitive is a closure over the running Machine: the built-in word
// implementations (stack shuffle, arithmetic, I/O, ...) are all Primitives
// installed into the dictionary at boot.
type Primitive struct {
	WordName string
	Fn       func(m Machine) error
}

// NewPrimitive builds a Primitive node.
func NewPrimitive(name string, fn func(m Machine) error) *Primitive {
	return &Primitive{WordName: name, Fn: fn}
}

func (p *Primitive) Invoke(m Machine) error { return p.Fn(m) }
func (p *Primitive) Name() string           { return p.WordName }

// Literal pushes a fixed cell when invoked.
type Literal struct {
	Value cell.Cell
}

// NewLiteral builds a Literal node carrying v.
func NewLiteral(v cell.Cell) *Literal { return &Literal{Value: v} }

func (l *Literal) Invoke(m Machine) error {
	if !m.Data().Push(l.Value) {
		return ErrStackOverflow
	}
	return nil
}
func (l *Literal) Name() string { return "LITERAL" }

// StringLiteral pushes Addr then the length of Text when invoked. No word
// in this repository constructs one: S" and C" have no compiler handler.
type StringLiteral struct {
	Text string
	Addr cell.Cell
}

func (s *StringLiteral) Invoke(m Machine) error {
	d := m.Data()
	if !d.Push(s.Addr) || !d.Push(cell.FromInt(int64(len(s.Text)))) {
		return ErrStackOverflow
	}
	return nil
}
func (s *StringLiteral) Name() string { return "S\"" }
