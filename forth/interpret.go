package forth

import (
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/BogCyg/BCForth/cell"
	"github.com/BogCyg/BCForth/word"
)

// readQuoted consumes tokens from c (the opener having already been
// consumed) until one ends in `"`, and returns the enclosed text with the
// trailing quote stripped.
func readQuoted(c *cursor) (string, error) {
	var parts []string
	for {
		tok, ok := c.next()
		if !ok {
			return "", errors.Wrap(ErrUnterminatedQuote, "missing closing \"")
		}
		if strings.HasSuffix(tok, `"`) {
			parts = append(parts, strings.TrimSuffix(tok, `"`))
			break
		}
		parts = append(parts, tok)
	}
	return strings.Join(parts, " "), nil
}

// asDoesBody reports whether n is a defining word's body: a composite
// whose single child is a Does node (spec §3's invariant, §4.5 step 4).
func asDoesBody(n word.Node) (*word.Does, bool) {
	comp, ok := n.(*word.Composite)
	if !ok || len(comp.Children) != 1 {
		return nil, false
	}
	d, ok := comp.Children[0].(*word.Does)
	return d, ok
}

// registerXT hands out a stable handle for "a pointer to a word node"
// (spec §3): FIND, `'`, and `[']` all need to push something that EXECUTE
// can later invoke. A growing table of word.Node indexed by Cell is the
// direct, GC-safe analogue of the address-sized handle the spec describes.
func (e *Environment) registerXT(n word.Node) cell.Cell {
	e.xts = append(e.xts, n)
	return cell.FromInt(int64(len(e.xts) - 1))
}

func (e *Environment) xtAt(c cell.Cell) (word.Node, bool) {
	i := int(c.Int())
	if i < 0 || i >= len(e.xts) {
		return nil, false
	}
	return e.xts[i], true
}

// findBackingBuffer returns the Buffer a VALUE-style word reads/writes
// through: CREATE , DOES> @ compiles to a composite [Buffer, behaviour];
// TO needs the Buffer to rebind the value (spec §4.6's CREATE/DOES>
// protocol, generalised to support TO).
func findBackingBuffer(n word.Node) (*word.Buffer, bool) {
	if b, ok := n.(*word.Buffer); ok {
		return b, true
	}
	if comp, ok := n.(*word.Composite); ok && len(comp.Children) > 0 {
		if b, ok := comp.Children[0].(*word.Buffer); ok {
			return b, true
		}
	}
	return nil, false
}

// interpretToken runs one token in interpret mode (spec §4.5 "Interpret
// mode"). c lets context-sensitive words (FIND, ', TO, CHAR, ,", CREATE,
// and the defining-word instantiation path) consume the tokens that
// follow them.
func (e *Environment) interpretToken(c *cursor, tok string) error {
	switch tok {
	case "FIND":
		name, ok := c.next()
		if !ok {
			return errors.New("FIND: missing name")
		}
		entry, found := e.dict.Lookup(name)
		if !found {
			return e.push(0)
		}
		return e.push(e.registerXT(entry.Node))
	case "'":
		name, ok := c.next()
		if !ok {
			return errors.New("': missing name")
		}
		entry, found := e.dict.Lookup(name)
		if !found {
			return errors.Wrapf(ErrUnknownWord, "%s", name)
		}
		return e.push(e.registerXT(entry.Node))
	case "TO":
		name, ok := c.next()
		if !ok {
			return errors.New("TO: missing name")
		}
		entry, found := e.dict.Lookup(name)
		if !found {
			return errors.Wrapf(ErrUnknownWord, "%s", name)
		}
		buf, ok := findBackingBuffer(entry.Node)
		if !ok {
			return errors.Wrapf(ErrUndefinedValue, "TO: %s is not a value", name)
		}
		var v cell.Cell
		if !e.data.Pop(&v) {
			return ErrStackUnderflow
		}
		buf.Cells[0] = v
		return nil
	case "CHAR":
		name, ok := c.next()
		if !ok || name == "" {
			return errors.New("CHAR: missing character")
		}
		return e.push(cell.FromByte(name[0]))
	case ",\"":
		text, err := readQuoted(c)
		if err != nil {
			return err
		}
		if !e.repo.CommaString(text) {
			return ErrMissingCreate
		}
		return nil
	case `."`:
		text, err := readQuoted(c)
		if err != nil {
			return err
		}
		_, err = io.WriteString(e.output, text)
		return err
	case `ABORT"`:
		text, err := readQuoted(c)
		if err != nil {
			return err
		}
		var flag cell.Cell
		if !e.data.Pop(&flag) {
			return ErrStackUnderflow
		}
		if flag.Bool() {
			return errors.Wrap(ErrUserAbort, text)
		}
		return nil
	case "(":
		text, err := readParenComment(c)
		if err != nil {
			return err
		}
		e.appendComment(text)
		return nil
	case "CREATE":
		name, ok := c.next()
		if !ok {
			return errors.New("CREATE: missing name")
		}
		buf := e.repo.NewBuffer(name)
		e.dict.Insert(name, buf, "", false)
		return nil
	case "VARIABLE":
		name, ok := c.next()
		if !ok {
			return errors.New("VARIABLE: missing name")
		}
		buf := e.repo.NewBuffer(name)
		e.repo.Comma(0)
		e.dict.Insert(name, buf, "", false)
		return nil
	case "CONSTANT":
		name, ok := c.next()
		if !ok {
			return errors.New("CONSTANT: missing name")
		}
		var v cell.Cell
		if !e.data.Pop(&v) {
			return ErrStackUnderflow
		}
		e.dict.Insert(name, word.NewLiteral(v), "", false)
		return nil
	case "VALUE":
		name, ok := c.next()
		if !ok {
			return errors.New("VALUE: missing name")
		}
		var v cell.Cell
		if !e.data.Pop(&v) {
			return ErrStackUnderflow
		}
		e.dict.Insert(name, e.newValueWord(name, v), "", false)
		return nil
	}

	// Under BASE 16 a word name such as DEC is also a valid bare hex
	// numeral; a dictionary word of that name takes precedence.
	entry, found := e.dict.Lookup(tok)
	if v, ok := parseInteger(tok, e.Base()); ok && !(found && e.Base() == 16) {
		return e.push(v)
	}
	if v, ok := parseFloat(tok); ok {
		return e.push(v)
	}

	if !found {
		return errors.Wrapf(ErrUnknownWord, "%s", tok)
	}
	if does, ok := asDoesBody(entry.Node); ok {
		return e.instantiateDefiningWord(c, does)
	}
	if err := entry.Node.Invoke(e); err != nil {
		return errors.Wrapf(err, "%s", tok)
	}
	return nil
}

// instantiateDefiningWord runs a defining word's creation branch, then
// reads the next input token as the name of the word it installs, wiring
// up [buffer, behaviour-branch] under that name (spec §4.6).
func (e *Environment) instantiateDefiningWord(c *cursor, does *word.Does) error {
	if err := does.Creation.Invoke(e); err != nil {
		return err
	}
	buf := e.repo.CurrentBuffer()
	if buf == nil {
		return ErrMissingCreate
	}
	name, ok := c.next()
	if !ok {
		return errors.New("defining word: missing name for new word")
	}
	body := word.NewComposite(name)
	body.Append(buf)
	body.Append(does.Behavior)
	e.dict.Insert(name, body, "", false)
	return nil
}

// newValueWord builds the [Buffer, fetch] composite VALUE words are made
// of: the buffer holds the current value and gives TO a place to write a
// new one, the fetch primitive reads through it instead of pushing its
// address the way a plain CREATE'd buffer would (spec GLOSSARY's VALUE,
// generalising CREATE/DOES> with findBackingBuffer's shared shape).
func (e *Environment) newValueWord(name string, v cell.Cell) *word.Composite {
	buf := e.repo.NewBuffer(name)
	e.repo.Comma(v)
	fetch := word.NewPrimitive(name, func(m word.Machine) error {
		var addr cell.Cell
		if !m.Data().Pop(&addr) {
			return ErrStackUnderflow
		}
		val, ok := m.Repository().Load(addr)
		if !ok {
			return ErrMissingCreate
		}
		if !m.Data().Push(val) {
			return ErrStackOverflow
		}
		return nil
	})
	body := word.NewComposite(name)
	body.Append(buf)
	body.Append(fetch)
	return body
}

func (e *Environment) push(v cell.Cell) error {
	if !e.data.Push(v) {
		return ErrStackOverflow
	}
	return nil
}
