package forth

import (
	"math/rand"

	"github.com/dgryski/go-mt19937"

	"github.com/BogCyg/BCForth/cell"
)

// randSource is the Mersenne Twister generator backing RAND/FRAND/FNRAND.
// Go's math/rand.Rand wraps the mt19937.MT19937 Source64 so the same
// generator serves both the integer and float draws (spec GLOSSARY's
// SUPPLEMENTED FEATURES random word family).
type randSource struct {
	r *rand.Rand
}

func newRandSource() randSource {
	return randSource{r: rand.New(mt19937.New())}
}

// Int63 returns a non-negative pseudo-random integer (RAND, unbounded).
func (s randSource) Int63() int64 { return s.r.Int63() }

// IntN returns a pseudo-random integer in [0, n) (FNRAND).
func (s randSource) IntN(n int64) int64 {
	if n <= 0 {
		return 0
	}
	return s.r.Int63n(n)
}

// Float64 returns a pseudo-random float in [0, 1) (FRAND).
func (s randSource) Float64() float64 { return s.r.Float64() }

func registerRandomWords(e *Environment) {
	e.defPrimitive("RAND", func(m *Environment) error {
		return m.push(cell.FromInt(m.rng.Int63()))
	})
	e.defPrimitive("FRAND", func(m *Environment) error {
		return m.push(cell.FromFloat(m.rng.Float64()))
	})
	e.defPrimitive("FNRAND", func(m *Environment) error {
		var n cell.Cell
		if !m.data.Pop(&n) {
			return ErrStackUnderflow
		}
		return m.push(cell.FromInt(m.rng.IntN(n.Int())))
	})
}
