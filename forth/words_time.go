package forth

import (
	"time"

	"github.com/BogCyg/BCForth/cell"
)

// registerTimeWords installs the small timing word family (spec
// SPEC_FULL.md SUPPLEMENTED FEATURES): GET_TIME reads wall-clock
// milliseconds, TIMER_START/TIMER_END bracket an elapsed-time measurement
// using the same stamp.
func registerTimeWords(e *Environment) {
	var timerStart int64

	e.defPrimitive("GET_TIME", func(m *Environment) error {
		return m.push(cell.FromInt(time.Now().UnixMilli()))
	})
	e.defPrimitive("TIMER_START", func(m *Environment) error {
		timerStart = time.Now().UnixMilli()
		return nil
	})
	e.defPrimitive("TIMER_END", func(m *Environment) error {
		return m.push(cell.FromInt(time.Now().UnixMilli() - timerStart))
	})
}
