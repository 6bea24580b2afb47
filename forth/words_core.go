package forth

import "github.com/BogCyg/BCForth/cell"

// registerCoreWords installs the cell/stack layer's Forth primitives (spec
// §4.1): shuffle words, memory access, arithmetic, comparisons, and bitwise
// ops, each fused through stack.DataStack's pop/pop/push helpers.
func registerCoreWords(e *Environment) {
	e.defPrimitive("DROP", func(m *Environment) error { return boolErr(m.data.Drop()) })
	e.defPrimitive("DUP", func(m *Environment) error { return boolErr(m.data.Dup()) })
	e.defPrimitive("OVER", func(m *Environment) error { return boolErr(m.data.Over()) })
	e.defPrimitive("SWAP", func(m *Environment) error { return boolErr(m.data.Swap()) })
	e.defPrimitive("ROT", func(m *Environment) error { return boolErr(m.data.Rot()) })

	e.defPrimitive("CELLS", func(m *Environment) error { return boolErr(m.data.Cells()) })
	e.defPrimitive("CELL+", func(m *Environment) error { return boolErr(m.data.CellPlus()) })

	e.defPrimitive("@", func(m *Environment) error {
		return boolErr(m.data.Fetch(func(addr cell.Cell) (cell.Cell, bool) { return m.repo.Load(addr) }))
	})
	e.defPrimitive("!", func(m *Environment) error {
		return boolErr(m.data.Store(func(addr, v cell.Cell) bool { return m.repo.Store(addr, v) }))
	})
	e.defPrimitive("C@", func(m *Environment) error {
		return boolErr(m.data.Fetch(func(addr cell.Cell) (cell.Cell, bool) {
			v, ok := m.repo.Load(addr)
			if !ok {
				return 0, false
			}
			return cell.FromByte(v.Byte()), true
		}))
	})
	e.defPrimitive("C!", func(m *Environment) error {
		return boolErr(m.data.Store(func(addr, v cell.Cell) bool {
			return m.repo.Store(addr, cell.FromByte(v.Byte()))
		}))
	})
	e.defPrimitive("+!", func(m *Environment) error {
		return boolErr(m.data.CPlusStore(
			func(addr cell.Cell) (cell.Cell, bool) { return m.repo.Load(addr) },
			func(addr, v cell.Cell) bool { return m.repo.Store(addr, v) },
		))
	})
	e.defPrimitive("C+!", func(m *Environment) error {
		return boolErr(m.data.CPlusStore(
			func(addr cell.Cell) (cell.Cell, bool) {
				v, ok := m.repo.Load(addr)
				if !ok {
					return 0, false
				}
				return cell.FromByte(v.Byte()), true
			},
			func(addr, v cell.Cell) bool { return m.repo.Store(addr, cell.FromByte(v.Byte())) },
		))
	})

	e.defPrimitive("+", func(m *Environment) error {
		return boolErr(m.data.BinaryOp(func(a, b cell.Cell) cell.Cell { return a + b }))
	})
	e.defPrimitive("-", func(m *Environment) error {
		return boolErr(m.data.BinaryOp(func(a, b cell.Cell) cell.Cell { return a - b }))
	})
	e.defPrimitive("*", func(m *Environment) error {
		return boolErr(m.data.BinaryOp(func(a, b cell.Cell) cell.Cell { return a * b }))
	})
	e.defPrimitive("/", func(m *Environment) error {
		var a, b cell.Cell
		if !m.data.Peek(0, &b) || !m.data.Peek(1, &a) {
			return ErrStackUnderflow
		}
		if b == 0 {
			return ErrDivisionByZero
		}
		return boolErr(m.data.BinaryOp(func(a, b cell.Cell) cell.Cell { return a / b }))
	})
	e.defPrimitive("MOD", func(m *Environment) error {
		var a, b cell.Cell
		if !m.data.Peek(0, &b) || !m.data.Peek(1, &a) {
			return ErrStackUnderflow
		}
		if b == 0 {
			return ErrDivisionByZero
		}
		return boolErr(m.data.BinaryOp(func(a, b cell.Cell) cell.Cell { return a % b }))
	})
	e.defPrimitive("/MOD", func(m *Environment) error {
		var a, b cell.Cell
		if !m.data.Pop(&b) || !m.data.Pop(&a) {
			return ErrStackUnderflow
		}
		if b == 0 {
			return ErrDivisionByZero
		}
		if !m.data.Push(a % b) {
			return ErrStackOverflow
		}
		return boolErr(m.data.Push(a / b))
	})

	e.defPrimitive("AND", func(m *Environment) error {
		return boolErr(m.data.BinaryOp(func(a, b cell.Cell) cell.Cell { return a & b }))
	})
	e.defPrimitive("OR", func(m *Environment) error {
		return boolErr(m.data.BinaryOp(func(a, b cell.Cell) cell.Cell { return a | b }))
	})
	e.defPrimitive("XOR", func(m *Environment) error {
		return boolErr(m.data.BinaryOp(func(a, b cell.Cell) cell.Cell { return a ^ b }))
	})
	e.defPrimitive("INVERT", func(m *Environment) error {
		return boolErr(m.data.UnaryOp(func(a cell.Cell) cell.Cell { return ^a }))
	})
	e.defPrimitive("LSHIFT", func(m *Environment) error {
		return boolErr(m.data.BinaryOp(func(a, b cell.Cell) cell.Cell { return a << uint(b) }))
	})
	e.defPrimitive("RSHIFT", func(m *Environment) error {
		return boolErr(m.data.BinaryOp(func(a, b cell.Cell) cell.Cell { return cell.Cell(uint64(a) >> uint(b)) }))
	})

	e.defPrimitive("1+", func(m *Environment) error {
		return boolErr(m.data.UnaryOp(func(a cell.Cell) cell.Cell { return a + 1 }))
	})
	e.defPrimitive("1-", func(m *Environment) error {
		return boolErr(m.data.UnaryOp(func(a cell.Cell) cell.Cell { return a - 1 }))
	})
	e.defPrimitive("2+", func(m *Environment) error {
		return boolErr(m.data.UnaryOp(func(a cell.Cell) cell.Cell { return a + 2 }))
	})
	e.defPrimitive("2-", func(m *Environment) error {
		return boolErr(m.data.UnaryOp(func(a cell.Cell) cell.Cell { return a - 2 }))
	})
	e.defPrimitive("2*", func(m *Environment) error {
		return boolErr(m.data.UnaryOp(func(a cell.Cell) cell.Cell { return a * 2 }))
	})
	e.defPrimitive("2/", func(m *Environment) error {
		return boolErr(m.data.UnaryOp(func(a cell.Cell) cell.Cell { return a / 2 }))
	})
	e.defPrimitive("NEGATE", func(m *Environment) error {
		return boolErr(m.data.UnaryOp(func(a cell.Cell) cell.Cell { return -a }))
	})
	e.defPrimitive("ABS", func(m *Environment) error {
		return boolErr(m.data.UnaryOp(func(a cell.Cell) cell.Cell {
			if a < 0 {
				return -a
			}
			return a
		}))
	})

	e.defPrimitive("=", func(m *Environment) error {
		return boolErr(m.data.CompareOp(func(a, b cell.Cell) bool { return a == b }))
	})
	e.defPrimitive("<>", func(m *Environment) error {
		return boolErr(m.data.CompareOp(func(a, b cell.Cell) bool { return a != b }))
	})
	e.defPrimitive("<", func(m *Environment) error {
		return boolErr(m.data.CompareOp(func(a, b cell.Cell) bool { return a < b }))
	})
	e.defPrimitive(">", func(m *Environment) error {
		return boolErr(m.data.CompareOp(func(a, b cell.Cell) bool { return a > b }))
	})
	e.defPrimitive("<=", func(m *Environment) error {
		return boolErr(m.data.CompareOp(func(a, b cell.Cell) bool { return a <= b }))
	})
	e.defPrimitive(">=", func(m *Environment) error {
		return boolErr(m.data.CompareOp(func(a, b cell.Cell) bool { return a >= b }))
	})
	e.defPrimitive("0=", func(m *Environment) error {
		return boolErr(m.data.CompareZeroOp(func(a cell.Cell) bool { return a == 0 }))
	})
	e.defPrimitive("0<", func(m *Environment) error {
		return boolErr(m.data.CompareZeroOp(func(a cell.Cell) bool { return a < 0 }))
	})
	e.defPrimitive("0>", func(m *Environment) error {
		return boolErr(m.data.CompareZeroOp(func(a cell.Cell) bool { return a > 0 }))
	})

	e.defPrimitive("DEPTH", func(m *Environment) error {
		return m.push(cell.FromInt(int64(m.data.Size())))
	})

	e.defPrimitive("HEX", func(m *Environment) error {
		m.SetBase(16)
		return nil
	})
	e.defPrimitive("DEC", func(m *Environment) error {
		m.SetBase(10)
		return nil
	})

	e.defPrimitive(">R", func(m *Environment) error {
		var v cell.Cell
		if !m.data.Pop(&v) {
			return ErrStackUnderflow
		}
		if !m.ret.Push(v) {
			return ErrStackOverflow
		}
		return nil
	})
	e.defPrimitive("R>", func(m *Environment) error {
		var v cell.Cell
		if !m.ret.Pop(&v) {
			return ErrStackUnderflow
		}
		return m.push(v)
	})
	e.defPrimitive("R@", func(m *Environment) error {
		var v cell.Cell
		if !m.ret.Peek(0, &v) {
			return ErrStackUnderflow
		}
		return m.push(v)
	})
}

// boolErr turns a DataStack operation's false result into ErrStackUnderflow,
// whatever the cause: too few operands, no room to push, or (for @, !, C@,
// C!, +!, C+!) an address outside every buffer.
func boolErr(ok bool) error {
	if !ok {
		return ErrStackUnderflow
	}
	return nil
}
