package forth

import (
	"fmt"
	"io"

	"github.com/BogCyg/BCForth/cell"
)

// registerIOWords installs the terminal/output word family (spec §6's
// command surface, SUPPLEMENTED FEATURES). KEY and ACCEPT are the module's
// two blocking operations (spec §5): both read from the Environment's
// input, default os.Stdin.
func registerIOWords(e *Environment) {
	e.defPrimitive("EMIT", func(m *Environment) error {
		var v cell.Cell
		if !m.data.Pop(&v) {
			return ErrStackUnderflow
		}
		_, err := m.output.Write([]byte{v.Byte()})
		return err
	})
	e.defPrimitive("CR", func(m *Environment) error {
		_, err := io.WriteString(m.output, "\n")
		return err
	})
	e.defPrimitive("SPACE", func(m *Environment) error {
		_, err := io.WriteString(m.output, " ")
		return err
	})
	e.defPrimitive("TAB", func(m *Environment) error {
		_, err := io.WriteString(m.output, "\t")
		return err
	})

	e.defPrimitive(".", func(m *Environment) error {
		var v cell.Cell
		if !m.data.Pop(&v) {
			return ErrStackUnderflow
		}
		_, err := io.WriteString(m.output, formatInt(v, m.Base()))
		return err
	})
	e.defPrimitive(".S", func(m *Environment) error {
		var sb []byte
		for _, v := range m.data.Data() {
			sb = append(sb, formatInt(v, m.Base())...)
		}
		_, err := m.output.Write(sb)
		return err
	})

	e.defPrimitive("TYPE", func(m *Environment) error {
		var addr, length cell.Cell
		if !m.data.Pop(&length) || !m.data.Pop(&addr) {
			return ErrStackUnderflow
		}
		buf := make([]byte, 0, length)
		for i := cell.Cell(0); i < length; i++ {
			v, ok := m.repo.Load(addr + i*cell.Size)
			if !ok {
				return ErrIndexOutOfRange
			}
			buf = append(buf, v.Byte())
		}
		_, err := m.output.Write(buf)
		return err
	})

	e.defPrimitive("DUMP", func(m *Environment) error {
		var addr, count cell.Cell
		if !m.data.Pop(&count) || !m.data.Pop(&addr) {
			return ErrStackUnderflow
		}
		for i := cell.Cell(0); i < count; i++ {
			v, ok := m.repo.Load(addr + i*cell.Size)
			if !ok {
				return ErrIndexOutOfRange
			}
			fmt.Fprintf(m.output, "%s", formatInt(v, m.Base()))
		}
		return nil
	})

	e.defPrimitive("KEY", func(m *Environment) error {
		r, _, err := m.input.ReadRune()
		if err != nil {
			return err
		}
		return m.push(cell.FromByte(byte(r)))
	})

	e.defPrimitive("ACCEPT", func(m *Environment) error {
		var addr, max cell.Cell
		if !m.data.Pop(&max) || !m.data.Pop(&addr) {
			return ErrStackUnderflow
		}
		var n cell.Cell
		for n < max {
			r, _, err := m.input.ReadRune()
			if err != nil || r == '\n' {
				break
			}
			if !m.repo.Store(addr+n*cell.Size, cell.FromByte(byte(r))) {
				return ErrIndexOutOfRange
			}
			n++
		}
		return m.push(n)
	})
}
