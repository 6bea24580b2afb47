package forth

import "github.com/BogCyg/BCForth/cell"

// registerStringWords installs the memory/string word set supplementing the
// distilled spec's CREATE/DOES>/, /ALLOT core with the fuller surface a
// complete Forth environment carries (spec SPEC_FULL.md SUPPLEMENTED
// FEATURES).
func registerStringWords(e *Environment) {
	e.defPrimitive("FILL", func(m *Environment) error {
		var addr, count, v cell.Cell
		if !m.data.Pop(&v) || !m.data.Pop(&count) || !m.data.Pop(&addr) {
			return ErrStackUnderflow
		}
		for i := cell.Cell(0); i < count; i++ {
			if !m.repo.Store(addr+i*cell.Size, cell.FromByte(v.Byte())) {
				return ErrIndexOutOfRange
			}
		}
		return nil
	})

	e.defPrimitive("ERASE", func(m *Environment) error {
		var addr, count cell.Cell
		if !m.data.Pop(&count) || !m.data.Pop(&addr) {
			return ErrStackUnderflow
		}
		for i := cell.Cell(0); i < count; i++ {
			if !m.repo.Store(addr+i*cell.Size, 0) {
				return ErrIndexOutOfRange
			}
		}
		return nil
	})

	e.defPrimitive("BLANK", func(m *Environment) error {
		var addr, count cell.Cell
		if !m.data.Pop(&count) || !m.data.Pop(&addr) {
			return ErrStackUnderflow
		}
		for i := cell.Cell(0); i < count; i++ {
			if !m.repo.Store(addr+i*cell.Size, cell.FromByte(' ')) {
				return ErrIndexOutOfRange
			}
		}
		return nil
	})

	e.defPrimitive("MOVE", func(m *Environment) error {
		var src, dst, count cell.Cell
		if !m.data.Pop(&count) || !m.data.Pop(&dst) || !m.data.Pop(&src) {
			return ErrStackUnderflow
		}
		buf := make([]cell.Cell, count)
		for i := cell.Cell(0); i < count; i++ {
			v, ok := m.repo.Load(src + i*cell.Size)
			if !ok {
				return ErrIndexOutOfRange
			}
			buf[i] = v
		}
		for i := cell.Cell(0); i < count; i++ {
			if !m.repo.Store(dst+i*cell.Size, buf[i]) {
				return ErrIndexOutOfRange
			}
		}
		return nil
	})

	e.defPrimitive("COMPARE", func(m *Environment) error {
		var addr1, len1, addr2, len2 cell.Cell
		if !m.data.Pop(&len2) || !m.data.Pop(&addr2) || !m.data.Pop(&len1) || !m.data.Pop(&addr1) {
			return ErrStackUnderflow
		}
		n := len1
		if len2 < n {
			n = len2
		}
		result := cell.Cell(0)
		for i := cell.Cell(0); i < n && result == 0; i++ {
			a, _ := m.repo.Load(addr1 + i*cell.Size)
			b, _ := m.repo.Load(addr2 + i*cell.Size)
			switch {
			case a.Byte() < b.Byte():
				result = -1
			case a.Byte() > b.Byte():
				result = 1
			}
		}
		if result == 0 {
			switch {
			case len1 < len2:
				result = -1
			case len1 > len2:
				result = 1
			}
		}
		return m.push(result)
	})

	e.defPrimitive("SEARCH", func(m *Environment) error {
		var addr1, len1, addr2, len2 cell.Cell
		if !m.data.Pop(&len2) || !m.data.Pop(&addr2) || !m.data.Pop(&len1) || !m.data.Pop(&addr1) {
			return ErrStackUnderflow
		}
		if len2 == 0 || len2 > len1 {
			return m.push(cell.FromBool(false))
		}
		for start := cell.Cell(0); start+len2 <= len1; start++ {
			matched := true
			for i := cell.Cell(0); i < len2 && matched; i++ {
				a, _ := m.repo.Load(addr1 + (start+i)*cell.Size)
				b, _ := m.repo.Load(addr2 + i*cell.Size)
				matched = a.Byte() == b.Byte()
			}
			if matched {
				if err := m.push(addr1 + start*cell.Size); err != nil {
					return err
				}
				if err := m.push(len1 - start); err != nil {
					return err
				}
				return m.push(cell.FromBool(true))
			}
		}
		return m.push(cell.FromBool(false))
	})
}
