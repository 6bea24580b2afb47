package forth

import (
	"fmt"
	"math"

	"github.com/BogCyg/BCForth/cell"
)

// registerFloatWords installs the float word family (spec SPEC_FULL.md
// SUPPLEMENTED FEATURES): arithmetic, comparisons, and the transcendental
// functions a complete environment carries alongside integer math.
func registerFloatWords(e *Environment) {
	fbin := func(name string, f func(a, b float64) float64) {
		e.defPrimitive(name, func(m *Environment) error {
			var a, b cell.Cell
			if !m.data.Pop(&b) || !m.data.Pop(&a) {
				return ErrStackUnderflow
			}
			return m.push(cell.FromFloat(f(a.Float(), b.Float())))
		})
	}
	fun := func(name string, f func(a float64) float64) {
		e.defPrimitive(name, func(m *Environment) error {
			var a cell.Cell
			if !m.data.Pop(&a) {
				return ErrStackUnderflow
			}
			return m.push(cell.FromFloat(f(a.Float())))
		})
	}
	fcmp := func(name string, f func(a, b float64) bool) {
		e.defPrimitive(name, func(m *Environment) error {
			var a, b cell.Cell
			if !m.data.Pop(&b) || !m.data.Pop(&a) {
				return ErrStackUnderflow
			}
			return m.push(cell.FromBool(f(a.Float(), b.Float())))
		})
	}

	fbin("F+", func(a, b float64) float64 { return a + b })
	fbin("F-", func(a, b float64) float64 { return a - b })
	fbin("F*", func(a, b float64) float64 { return a * b })
	e.defPrimitive("F/", func(m *Environment) error {
		var a, b cell.Cell
		if !m.data.Pop(&b) || !m.data.Pop(&a) {
			return ErrStackUnderflow
		}
		if b.Float() == 0 {
			return ErrDivisionByZero
		}
		return m.push(cell.FromFloat(a.Float() / b.Float()))
	})
	fbin("POW", math.Pow)

	fcmp("F=", func(a, b float64) bool { return a == b })
	fcmp("F<", func(a, b float64) bool { return a < b })
	fcmp("F>", func(a, b float64) bool { return a > b })

	fun("SQRT", math.Sqrt)
	fun("FABS", math.Abs)
	fun("FNEGATE", func(a float64) float64 { return -a })
	fun("SIN", math.Sin)
	fun("COS", math.Cos)
	fun("TAN", math.Tan)
	fun("ATAN", math.Atan)
	fun("EXP", math.Exp)
	fun("LN", math.Log)

	e.defPrimitive("2INT", func(m *Environment) error {
		var a cell.Cell
		if !m.data.Pop(&a) {
			return ErrStackUnderflow
		}
		return m.push(cell.FromInt(int64(a.Float())))
	})
	e.defPrimitive("2FP", func(m *Environment) error {
		var a cell.Cell
		if !m.data.Pop(&a) {
			return ErrStackUnderflow
		}
		return m.push(cell.FromFloat(float64(a.Int())))
	})

	e.defPrimitive(".F", func(m *Environment) error {
		var a cell.Cell
		if !m.data.Pop(&a) {
			return ErrStackUnderflow
		}
		_, err := fmt.Fprintf(m.output, "%g", a.Float())
		return err
	})
	e.defPrimitive(".FS", func(m *Environment) error {
		for _, v := range m.data.Data() {
			if _, err := fmt.Fprintf(m.output, "%g", v.Float()); err != nil {
				return err
			}
		}
		return nil
	})
}
