package forth

import (
	"io"

	"github.com/pkg/errors"

	"github.com/BogCyg/BCForth/cell"
	"github.com/BogCyg/BCForth/word"
)

// caseOfTest implements the compare-and-keep-or-drop half of CASE...OF:
// it pops the clause value left by the literal
// just before OF and the case selector beneath it; on a match both are
// dropped and true is pushed, otherwise the selector is restored and false
// is pushed for the If node OF compiles next to test.
var caseOfTest = word.NewPrimitive("CASE-OF-TEST", func(m word.Machine) error {
	d := m.Data()
	var clause, selector cell.Cell
	if !d.Pop(&clause) || !d.Pop(&selector) {
		return ErrStackUnderflow
	}
	if selector == clause {
		return d.Push(cell.FromBool(true))
	}
	if !d.Push(selector) {
		return ErrStackOverflow
	}
	return d.Push(cell.FromBool(false))
})

// compileToken runs one token in compile mode (spec §4.5 "Compile mode"):
// structural words grow and close nodes on the structural stack, everything
// else is appended to the word currently under construction.
func (e *Environment) compileToken(c *cursor, tok string) error {
	switch tok {

	case "(":
		text, err := readParenComment(c)
		if err != nil {
			return err
		}
		e.appendComment(text)
		return nil

	case `."`:
		text, err := readQuoted(c)
		if err != nil {
			return err
		}
		e.currentTarget.Append(word.NewPrimitive(`."`, func(m word.Machine) error {
			_, err := io.WriteString(m.Output(), text)
			return err
		}))
		return nil

	case `,"`:
		text, err := readQuoted(c)
		if err != nil {
			return err
		}
		e.currentTarget.Append(word.NewPrimitive(`,"`, func(m word.Machine) error {
			if !e.repo.CommaString(text) {
				return ErrMissingCreate
			}
			return nil
		}))
		return nil

	case `ABORT"`:
		text, err := readQuoted(c)
		if err != nil {
			return err
		}
		e.currentTarget.Append(word.NewPrimitive(`ABORT"`, func(m word.Machine) error {
			var flag cell.Cell
			if !m.Data().Pop(&flag) {
				return ErrStackUnderflow
			}
			if flag.Bool() {
				return errors.Wrap(ErrUserAbort, text)
			}
			return nil
		}))
		return nil

	case "IF":
		n := word.NewIf(tok)
		e.currentTarget.Append(n)
		if !e.structStack.push(structFrame{kind: frameIf, context: e.currentTarget, ifNode: n}) {
			return errors.New("structural stack overflow")
		}
		e.currentTarget = n.True
		return nil

	case "ELSE":
		f, ok := e.structStack.peek()
		if !ok || f.kind != frameIf {
			return errors.Wrapf(ErrUnmatchedStructural, "%s", tok)
		}
		e.currentTarget = f.ifNode.False
		return nil

	case "THEN":
		f, ok := e.structStack.pop()
		if !ok || f.kind != frameIf {
			return errors.Wrapf(ErrUnmatchedStructural, "%s", tok)
		}
		e.currentTarget = f.context
		return nil

	case "DO":
		n := word.NewDoLoop(tok)
		e.currentTarget.Append(n)
		if !e.structStack.push(structFrame{kind: frameDo, context: e.currentTarget, doNode: n}) {
			return errors.New("structural stack overflow")
		}
		e.currentTarget = n.Body
		return nil

	case "LOOP":
		f, ok := e.structStack.pop()
		if !ok || f.kind != frameDo {
			return errors.Wrapf(ErrUnmatchedStructural, "%s", tok)
		}
		f.doNode.Body.Append(word.NewLiteral(cell.FromInt(1)))
		e.currentTarget = f.context
		return nil

	case "+LOOP":
		f, ok := e.structStack.pop()
		if !ok || f.kind != frameDo {
			return errors.Wrapf(ErrUnmatchedStructural, "%s", tok)
		}
		e.currentTarget = f.context
		return nil

	case "I":
		d := e.structStack.findDo(0)
		if d == nil {
			return errors.Wrapf(ErrUnmatchedStructural, "%s", tok)
		}
		e.currentTarget.Append(word.NewILoop("I", d))
		return nil

	case "J":
		d := e.structStack.findDo(1)
		if d == nil {
			return errors.Wrapf(ErrUnmatchedStructural, "%s", tok)
		}
		e.currentTarget.Append(word.NewILoop("J", d))
		return nil

	case "BEGIN":
		n := word.NewBeginLoop(tok)
		e.currentTarget.Append(n)
		if !e.structStack.push(structFrame{kind: frameBegin, context: e.currentTarget, beginN: n}) {
			return errors.New("structural stack overflow")
		}
		e.currentTarget = n.Begin
		return nil

	case "AGAIN":
		f, ok := e.structStack.pop()
		if !ok || f.kind != frameBegin {
			return errors.Wrapf(ErrUnmatchedStructural, "%s", tok)
		}
		f.beginN.Kind = word.KindAgain
		e.currentTarget = f.context
		return nil

	case "UNTIL":
		f, ok := e.structStack.pop()
		if !ok || f.kind != frameBegin {
			return errors.Wrapf(ErrUnmatchedStructural, "%s", tok)
		}
		f.beginN.Kind = word.KindUntil
		e.currentTarget = f.context
		return nil

	case "WHILE":
		f, ok := e.structStack.peek()
		if !ok || f.kind != frameBegin {
			return errors.Wrapf(ErrUnmatchedStructural, "%s", tok)
		}
		e.currentTarget = f.beginN.While
		return nil

	case "REPEAT":
		f, ok := e.structStack.pop()
		if !ok || f.kind != frameBegin {
			return errors.Wrapf(ErrUnmatchedStructural, "%s", tok)
		}
		f.beginN.Kind = word.KindWhileRepeat
		e.currentTarget = f.context
		return nil

	case "EXIT":
		b := e.structStack.findBegin()
		if b == nil {
			return errors.Wrapf(ErrUnmatchedStructural, "%s", tok)
		}
		e.currentTarget.Append(&word.ExitBeginLoop{Target: b})
		return nil

	case "CASE":
		n := word.NewCase(tok)
		e.currentTarget.Append(n)
		if !e.structStack.push(structFrame{kind: frameCase, context: e.currentTarget, caseCtx: n.Composite}) {
			return errors.New("structural stack overflow")
		}
		e.currentTarget = n.Composite
		return nil

	case "OF":
		n := word.NewIf(tok)
		e.currentTarget.Append(caseOfTest)
		e.currentTarget.Append(n)
		if !e.structStack.push(structFrame{kind: frameIf, ifNode: n}) {
			return errors.New("structural stack overflow")
		}
		e.currentTarget = n.True
		return nil

	case "ENDOF":
		f, ok := e.structStack.pop()
		if !ok || f.kind != frameIf {
			return errors.Wrapf(ErrUnmatchedStructural, "%s", tok)
		}
		e.currentTarget = f.ifNode.False
		return nil

	case "ENDCASE":
		f, ok := e.structStack.pop()
		if !ok || f.kind != frameCase {
			return errors.Wrapf(ErrUnmatchedStructural, "%s", tok)
		}
		// e.currentTarget is the innermost OF's False branch, reached only
		// when no clause matched; draining the selector here makes CASE
		// balance the stack the same way whether or not a clause fired.
		if drop, ok := e.dict.Lookup("DROP"); ok {
			e.currentTarget.Append(drop.Node)
		}
		e.currentTarget = f.context
		return nil

	case "POSTPONE":
		name, ok := c.next()
		if !ok {
			return errors.New("POSTPONE: missing name")
		}
		entry, found := e.dict.Lookup(name)
		if !found {
			return errors.Wrapf(ErrUnknownWord, "%s", name)
		}
		e.currentTarget.Append(&word.Postpone{Target: entry.Node})
		return nil

	case "[']":
		name, ok := c.next()
		if !ok {
			return errors.New("[']: missing name")
		}
		entry, found := e.dict.Lookup(name)
		if !found {
			return errors.Wrapf(ErrUnknownWord, "%s", name)
		}
		e.currentTarget.Append(word.NewLiteral(e.registerXT(entry.Node)))
		return nil

	case "[CHAR]":
		name, ok := c.next()
		if !ok || name == "" {
			return errors.New("[CHAR]: missing character")
		}
		e.currentTarget.Append(word.NewLiteral(cell.FromByte(name[0])))
		return nil

	case "LITERAL":
		var v cell.Cell
		if !e.data.Pop(&v) {
			return ErrStackUnderflow
		}
		e.currentTarget.Append(word.NewLiteral(v))
		return nil

	case "DOES>":
		top, ok := e.currentEntry.Node.(*word.Composite)
		if !ok {
			return errors.New("DOES>: not inside a defining word")
		}
		does := word.NewDoes(e.currentEntry.Name)
		does.Creation.Children = append(does.Creation.Children, top.Children...)
		wrapper := word.NewComposite(e.currentEntry.Name)
		wrapper.Append(does)
		e.currentEntry.Node = wrapper
		e.currentTarget = does.Behavior
		return nil

	case "RECURSE":
		e.currentTarget.Append(e.currentEntry.Node)
		return nil

	case "IMMEDIATE":
		e.allImmediate = true
		return nil
	}

	if v, ok := parseInteger(tok, e.Base()); ok {
		e.currentTarget.Append(word.NewLiteral(v))
		return nil
	}
	if v, ok := parseFloat(tok); ok {
		e.currentTarget.Append(word.NewLiteral(v))
		return nil
	}

	entry, found := e.dict.Lookup(tok)
	if !found {
		return errors.Wrapf(ErrUnknownWord, "%s", tok)
	}
	if entry.Immediate {
		if err := entry.Node.Invoke(e); err != nil {
			return errors.Wrapf(err, "%s", tok)
		}
		return nil
	}
	e.currentTarget.Append(entry.Node)
	return nil
}

// readParenComment consumes tokens up to and including one ending in `)`,
// mirroring readQuoted for the `(` stack-effect-comment family (spec
// §4.4's paren span, surfaced here as definition documentation).
func readParenComment(c *cursor) (string, error) {
	var parts []string
	for {
		tok, ok := c.next()
		if !ok {
			return "", errors.Wrap(ErrUnterminatedParen, "missing closing )")
		}
		if tok == ")" {
			break
		}
		if len(tok) > 0 && tok[len(tok)-1] == ')' {
			parts = append(parts, tok[:len(tok)-1])
			break
		}
		parts = append(parts, tok)
	}
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += " "
		}
		out += p
	}
	return out, nil
}

// appendComment records text as documentation for the word currently being
// compiled, if any (spec GLOSSARY's "comment" word-record field).
func (e *Environment) appendComment(text string) {
	if e.currentComment == "" {
		e.currentComment = text
		return
	}
	e.currentComment += " " + text
}
