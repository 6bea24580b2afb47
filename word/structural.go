package word

import "github.com/BogCyg/BCForth/cell"

// If pops a flag; zero (canonical false) invokes False, any other value
// invokes True. An empty stack is a stack-underflow error (spec §4.2).
type If struct {
	WordName string
	True     *Composite
	False    *Composite
}

// NewIf returns an If node with empty true/false branches.
func NewIf(name string) *If {
	return &If{WordName: name, True: NewComposite(name + ".true"), False: NewComposite(name + ".false")}
}

func (n *If) Invoke(m Machine) error {
	var flag cell.Cell
	if !m.Data().Pop(&flag) {
		return ErrStackUnderflow
	}
	if flag.Bool() {
		return n.True.Invoke(m)
	}
	return n.False.Invoke(m)
}
func (n *If) Name() string { return n.WordName }

// DoLoop implements DO ... LOOP / DO ... +LOOP (spec §4.2). It pops initial
// then limit (in that order — the source word order is `limit initial DO`),
// then repeats its body, popping a step cell the body must leave on top
// each pass and adding it to the index.
type DoLoop struct {
	WordName string
	Body     *Composite
	Index    cell.Cell
	Limit    cell.Cell
}

// NewDoLoop returns a DoLoop node with an empty body.
func NewDoLoop(name string) *DoLoop {
	return &DoLoop{WordName: name, Body: NewComposite(name + ".body")}
}

func (n *DoLoop) Invoke(m Machine) error {
	d := m.Data()
	var initial, limit cell.Cell
	if !d.Pop(&initial) || !d.Pop(&limit) {
		return ErrStackUnderflow
	}
	n.Index = initial
	n.Limit = limit
	for {
		if err := n.Body.Invoke(m); err != nil {
			if err == ErrLeave {
				return nil
			}
			return err
		}
		var step cell.Cell
		if !d.Pop(&step) {
			return ErrStackUnderflow
		}
		n.Index += step
		switch {
		case step > 0:
			if n.Index >= n.Limit {
				return nil
			}
		case step < 0:
			if n.Index <= n.Limit {
				return nil
			}
		default:
			return ErrZeroLoopStep
		}
	}
}
func (n *DoLoop) Name() string { return n.WordName }

// ILoop pushes the current index of the DoLoop it is bound to: the
// innermost enclosing DO for `I`, the next-outer one for `J`. Binding
// happens once at compile time by walking the structural stack (spec
// §4.2); there is no run-time search.
type ILoop struct {
	WordName string
	Target   *DoLoop
}

// NewILoop binds an ILoop node to target, named "I" or "J" for diagnostics.
func NewILoop(name string, target *DoLoop) *ILoop {
	return &ILoop{WordName: name, Target: target}
}

func (n *ILoop) Invoke(m Machine) error {
	if !m.Data().Push(n.Target.Index) {
		return ErrStackOverflow
	}
	return nil
}
func (n *ILoop) Name() string { return n.WordName }

// LoopKind tags a BeginLoop's continuation rule.
type LoopKind int

const (
	KindAgain LoopKind = iota
	KindUntil
	KindWhileRepeat
	KindExit
)

// BeginLoop implements BEGIN ... AGAIN / UNTIL / WHILE ... REPEAT (spec
// §4.2). Begin is the pre-test body (compiled between BEGIN and the closing
// word); While is the post-test body (compiled between WHILE and REPEAT,
// used only when Kind is KindWhileRepeat).
type BeginLoop struct {
	WordName string
	Begin    *Composite
	While    *Composite
	Kind     LoopKind
}

// NewBeginLoop returns a BeginLoop node with empty bodies and kind Again
// (the kind is fixed once the closing structural word is seen).
func NewBeginLoop(name string) *BeginLoop {
	return &BeginLoop{
		WordName: name,
		Begin:    NewComposite(name + ".begin"),
		While:    NewComposite(name + ".while"),
		Kind:     KindAgain,
	}
}

func (n *BeginLoop) Invoke(m Machine) error {
	for {
		if n.Kind == KindExit {
			return nil
		}
		if err := n.Begin.Invoke(m); err != nil {
			if err == ErrLeave {
				return nil
			}
			return err
		}
		switch n.Kind {
		case KindAgain:
			continue
		case KindUntil:
			var flag cell.Cell
			if !m.Data().Pop(&flag) {
				return ErrStackUnderflow
			}
			if flag.Bool() {
				return nil
			}
		case KindWhileRepeat:
			var flag cell.Cell
			if !m.Data().Pop(&flag) {
				return ErrStackUnderflow
			}
			if !flag.Bool() {
				return nil
			}
			if err := n.While.Invoke(m); err != nil {
				if err == ErrLeave {
					return nil
				}
				return err
			}
		case KindExit:
			return nil
		}
	}
}
func (n *BeginLoop) Name() string { return n.WordName }

// ExitBeginLoop implements the structural EXIT word: mutating its bound
// BeginLoop's kind to KindExit and unwinding the current pass via ErrLeave,
// so both this call and any future re-invocation of the same compiled word
// stop at that BEGIN loop (spec §4.2, §9).
type ExitBeginLoop struct {
	Target *BeginLoop
}

func (n *ExitBeginLoop) Invoke(m Machine) error {
	n.Target.Kind = KindExit
	return ErrLeave
}
func (n *ExitBeginLoop) Name() string { return "EXIT" }

// Case is a plain composite placeholder: CASE itself does nothing beyond
// marking where the structural stack frame for ENDCASE begins; the actual
// dispatch is a chain of If nodes built by OF/ENDOF (spec §4.2).
type Case struct {
	*Composite
}

// NewCase returns an (initially empty) Case node.
func NewCase(name string) *Case { return &Case{NewComposite(name)} }

// Does implements CREATE ... DOES> (spec §3, §4.6): invoking it runs only
// the creation branch, which is expected to CREATE a buffer; the behaviour
// branch is wired in separately by the interpreter when the defined word's
// name is installed (spec §4.6).
type Does struct {
	WordName string
	Creation *Composite
	Behavior *Composite
}

// NewDoes returns a Does node with empty creation/behaviour branches.
func NewDoes(name string) *Does {
	return &Does{WordName: name, Creation: NewComposite(name + ".creation"), Behavior: NewComposite(name + ".does")}
}

func (n *Does) Invoke(m Machine) error { return n.Creation.Invoke(m) }
func (n *Does) Name() string           { return n.WordName }

// Postpone holds a weak reference to another word; invoking it invokes that
// word, exactly as if the word itself had been compiled in directly (spec
// §3, §4.5 POSTPONE).
type Postpone struct {
	Target Node
}

func (n *Postpone) Invoke(m Machine) error { return n.Target.Invoke(m) }
func (n *Postpone) Name() string           { return "POSTPONE " + n.Target.Name() }
