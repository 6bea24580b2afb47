// Package forth implements the compiler/interpreter core (spec §4.5): the
// two-mode token consumer that, in interpret mode, pushes literals and
// calls words, and in compile mode assembles a composite word by
// recursively growing a structural-stack-tracked tree of control nodes.
package forth

import (
	"io"
	"os"

	"github.com/BogCyg/BCForth/cell"
	"github.com/BogCyg/BCForth/config"
	"github.com/BogCyg/BCForth/dict"
	"github.com/BogCyg/BCForth/stack"
	"github.com/BogCyg/BCForth/word"
)

// compileState is the colon-definition state machine from spec §4.5.
type compileState int

const (
	stateOutside compileState = iota
	stateAwaitName
	stateCompiling
	stateImmediateInCompiling
)

// Environment is the single owner of every mutable core resource: the data,
// return and structural stacks, the dictionary, the node repository, and
// BASE (spec §5 — "a single environment instance"). It implements
// word.Machine so every word node can invoke against it directly.
type Environment struct {
	data   *stack.DataStack
	ret    *stack.Stack
	repo   *word.Repository
	dict   *dict.Dictionary
	output io.Writer
	input  io.RuneReader // backing reader for KEY/ACCEPT

	structStack *structStack

	state         compileState
	currentEntry  *dict.Entry
	currentTarget *word.Composite
	currentComment string
	allImmediate  bool

	base *word.Buffer // BASE's backing cell (spec §4.7)
	pad  *word.Buffer // PAD scratch buffer (spec GLOSSARY, SPEC_FULL supplement)

	xts []word.Node // handles vended by FIND / ' / ['] , indexed by Cell

	rng randSource
}

// Option configures an Environment at construction time, mirroring the
// functional-options pattern the teacher uses for its VM instance.
type Option func(*Environment)

// Output sets the environment's output writer (default os.Stdout).
func Output(w io.Writer) Option { return func(e *Environment) { e.output = w } }

// Input sets the environment's input reader, used by KEY/ACCEPT (default
// os.Stdin).
func Input(r io.RuneReader) Option { return func(e *Environment) { e.input = r } }

// New builds an Environment from cfg and applies opts. The dictionary is
// populated with every built-in word (spec §6's command surface) and the
// BASE and PAD boot variables.
func New(cfg config.Config, opts ...Option) *Environment {
	e := &Environment{
		data:        stack.NewData(cfg.StackSize),
		ret:         stack.New(cfg.ReturnStackSize),
		repo:        word.NewRepository(0),
		dict:        dict.New(),
		output:      os.Stdout,
		input:       newBufioRuneReader(os.Stdin),
		structStack: newStructStack(cfg.StructStackSize),
	}
	for _, o := range opts {
		o(e)
	}
	e.rng = newRandSource()
	e.boot(cfg.Base)
	return e
}

// --- word.Machine ---

func (e *Environment) Data() *stack.DataStack  { return e.data }
func (e *Environment) Return() *stack.Stack    { return e.ret }
func (e *Environment) Output() io.Writer       { return e.output }
func (e *Environment) Repository() *word.Repository { return e.repo }

// Dictionary exposes the dictionary for the REPL's WORDS command and for
// tests.
func (e *Environment) Dictionary() *dict.Dictionary { return e.dict }

// Base returns the current numeric radix (10 or 16, spec §4.7).
func (e *Environment) Base() int {
	v, _ := e.repo.Load(e.base.Base)
	if v != 10 && v != 16 {
		return 10
	}
	return int(v)
}

// SetBase stores n as the current radix. Only 10 and 16 are meaningful;
// other values are stored as-is per spec §3's invariant being the
// responsibility of whoever writes BASE (HEX/DEC only ever write 16/10).
func (e *Environment) SetBase(n cell.Cell) {
	e.repo.Store(e.base.Base, n)
}

// Reset clears the data, return and structural stacks and abandons any
// in-progress compilation, the recovery action taken on every run-time
// error (spec §5, §7). A definition in progress is never registered in the
// dictionary until it closes cleanly at `;` (see beginDefinition), so
// abandoning it here is just dropping currentEntry/currentTarget — the
// dictionary and repository are never rolled back.
func (e *Environment) Reset() {
	e.data.Clear()
	e.ret.Clear()
	e.structStack.clear()
	e.state = stateOutside
	e.currentEntry = nil
	e.currentTarget = nil
	e.currentComment = ""
	e.allImmediate = false
}

// Process runs one logical token unit (as produced by token.Tokenizer.Next)
// through the two-mode compiler/interpreter (spec §4.5). On any error the
// three stacks are cleared and any in-progress definition is abandoned
// (spec §7); the error is returned for the caller (typically the REPL) to
// report.
func (e *Environment) Process(tokens []string) error {
	c := &cursor{toks: tokens}
	for {
		tok, ok := c.next()
		if !ok {
			return nil
		}
		var err error
		switch e.state {
		case stateOutside:
			if tok == ":" {
				e.state = stateAwaitName
				continue
			}
			err = e.interpretToken(c, tok)
		case stateAwaitName:
			e.beginDefinition(tok)
		case stateCompiling:
			switch tok {
			case "[":
				e.state = stateImmediateInCompiling
			case ";":
				e.endDefinition()
			default:
				err = e.compileToken(c, tok)
			}
		case stateImmediateInCompiling:
			switch tok {
			case "]":
				e.state = stateCompiling
			default:
				err = e.interpretToken(c, tok)
			}
		}
		if err != nil {
			e.Reset()
			return err
		}
	}
}

// cursor is a mutable, peekable token position — the iterative equivalent
// of the source's tail-recursive token-list walk (spec §9 design note).
type cursor struct {
	toks []string
	pos  int
}

func (c *cursor) next() (string, bool) {
	if c.pos >= len(c.toks) {
		return "", false
	}
	t := c.toks[c.pos]
	c.pos++
	return t, true
}

func (c *cursor) peekRemaining() []string { return c.toks[c.pos:] }

// beginDefinition starts a fresh composite as the current target (spec
// §4.5's AWAIT_NAME→COMPILING transition). The entry is deliberately kept
// off the dictionary until endDefinition: a bare (non-RECURSE) reference
// to name inside the body being compiled must resolve to whatever name
// meant before this definition, not to the definition in progress (spec §9
// Open Question, preserved verbatim) — RECURSE reaches currentEntry.Node
// directly to get genuine self-reference.
func (e *Environment) beginDefinition(name string) {
	target := word.NewComposite(name)
	e.currentEntry = &dict.Entry{Name: name, Node: target, Compiling: true}
	e.currentTarget = target
	e.currentComment = ""
	e.state = stateCompiling
	e.allImmediate = false
	e.structStack.clear()
}

// endDefinition finalises and registers the entry at `;` (spec §4.5
// COMPILING→TERMINATED).
func (e *Environment) endDefinition() {
	e.dict.Insert(e.currentEntry.Name, e.currentEntry.Node, e.currentComment, e.allImmediate)
	e.state = stateOutside
	e.currentEntry = nil
	e.currentTarget = nil
	e.currentComment = ""
	e.allImmediate = false
}
