package forth

import (
	"github.com/BogCyg/BCForth/cell"
	"github.com/BogCyg/BCForth/word"
)

// registerStructuralWords installs CREATE, `,`, ALLOT and HERE (spec §4.6),
// plus LEAVE, ABORT and EXECUTE. DOES> is handled by the compiler.
func registerStructuralWords(e *Environment) {
	// The dictionary-bound CREATE used when compiled inside a defining
	// word's creation branch: it never reads a name itself (interpretToken
	// special-cases top-level CREATE for that), it only opens a fresh
	// anonymous buffer for the instantiation step to bind a name to later.
	e.defPrimitive("CREATE", func(m *Environment) error {
		m.repo.NewBuffer("")
		return nil
	})

	e.defPrimitive(",", func(m *Environment) error {
		var v cell.Cell
		if !m.data.Pop(&v) {
			return ErrStackUnderflow
		}
		if !m.repo.Comma(v) {
			return ErrMissingCreate
		}
		return nil
	})
	e.defPrimitive("ALLOT", func(m *Environment) error {
		var n cell.Cell
		if !m.data.Pop(&n) {
			return ErrStackUnderflow
		}
		if !m.repo.Allot(int(n.Int())) {
			return ErrMissingCreate
		}
		return nil
	})
	e.defPrimitive("HERE", func(m *Environment) error {
		return m.push(m.repo.Here())
	})

	e.defPrimitive("LEAVE", func(m *Environment) error { return word.ErrLeave })

	e.defPrimitive("ABORT", func(m *Environment) error { return ErrUserAbort })

	e.defPrimitive("EXECUTE", func(m *Environment) error {
		var h cell.Cell
		if !m.data.Pop(&h) {
			return ErrStackUnderflow
		}
		n, ok := m.xtAt(h)
		if !ok {
			return ErrUndefinedValue
		}
		return n.Invoke(m)
	})
}
