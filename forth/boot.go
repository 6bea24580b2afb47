package forth

import (
	"github.com/BogCyg/BCForth/cell"
	"github.com/BogCyg/BCForth/word"
)

// defPrimitive installs a Go-backed word under name (spec §3's primitive
// node kind). fn runs against the Environment directly rather than the
// narrower word.Machine interface, since most built-ins need BASE, the
// repository, or the RNG alongside the stacks.
func (e *Environment) defPrimitive(name string, fn func(m *Environment) error) {
	e.dict.Insert(name, word.NewPrimitive(name, func(word.Machine) error {
		return fn(e)
	}), "", false)
}

// boot populates the dictionary with every built-in word and installs the
// BASE and PAD boot buffers (spec §4.7, GLOSSARY). base sets BASE's initial
// value (10 or 16); any other value is stored as-is, matching SetBase.
func (e *Environment) boot(base int) {
	e.base = e.repo.NewBuffer("BASE")
	e.repo.Comma(cell.FromInt(int64(base)))
	e.pad = e.repo.NewBuffer("PAD")
	e.repo.Allot(padCells)

	e.dict.Insert("BASE", e.base, "the current numeric radix, 10 or 16", false)
	e.dict.Insert("PAD", e.pad, "scratch buffer reserved for word use", false)

	registerCoreWords(e)
	registerStructuralWords(e)
	registerIOWords(e)
	registerStringWords(e)
	registerFloatWords(e)
	registerTimeWords(e)
	registerRandomWords(e)
}

// padCells is PAD's reserved size in cells (spec GLOSSARY).
const padCells = 128
