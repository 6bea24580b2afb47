// Package dict implements the dictionary (spec §4.3): the name→entry
// mapping with per-entry flags and last-definition-wins semantics.
package dict

import (
	"fmt"
	"io"
	"os"

	"github.com/dolthub/swiss"
	"golang.org/x/exp/slices"

	"github.com/BogCyg/BCForth/word"
)

// Entry owns one word node plus its compilation flags and comment text
// (spec §3).
type Entry struct {
	Name      string
	Node      word.Node
	Compiling bool
	Immediate bool
	Defining  bool
	Comment   string
}

// Dictionary is a case-sensitive name→entry mapping backed by a SwissTable
// hash map (dolthub/swiss), the same map the wider retrieval pack reaches
// for when it needs a hash table over a language's own value type.
type Dictionary struct {
	entries *swiss.Map[string, *Entry]
	warn    io.Writer
}

// New returns an empty Dictionary. Redefinition warnings are printed to
// os.Stderr by default (spec's documented ad hoc diagnostic style); use
// SetWarnWriter to redirect them (tests silence them this way).
func New() *Dictionary {
	return &Dictionary{entries: swiss.NewMap[string, *Entry](256), warn: os.Stderr}
}

// SetWarnWriter redirects redefinition warnings.
func (d *Dictionary) SetWarnWriter(w io.Writer) { d.warn = w }

// Lookup finds the entry for name, if any.
func (d *Dictionary) Lookup(name string) (*Entry, bool) {
	return d.entries.Get(name)
}

// Insert installs node under name with the given comment/flags. Inserting
// under an existing name prints a warning and overwrites the mapping.
//
// Overwriting drops the dictionary's reference to the prior entry's node,
// but any composite already compiled that holds a direct pointer to that
// old node keeps working: the node isn't owned by the dictionary slot, it's
// owned by whichever entry or repository first produced it, and Go's
// garbage collector keeps it alive exactly as long as something still
// points to it. This is how self-recursion works — a word being compiled
// cannot see its own (not yet inserted) entry, so a recursive-looking call
// inside `: FOO ... FOO ... ;` binds to whatever FOO meant *before* this
// definition, never to itself (spec §9 Open Question, preserved verbatim).
func (d *Dictionary) Insert(name string, node word.Node, comment string, immediate bool) *Entry {
	if _, ok := d.entries.Get(name); ok {
		fmt.Fprintf(d.warn, "warning: redefining %s\n", name)
	}
	e := &Entry{Name: name, Node: node, Comment: comment, Immediate: immediate}
	d.entries.Put(name, e)
	return e
}

// Remove deletes name's entry entirely. An abandoned colon-definition does
// not need it: the environment inserts an entry only at `;`.
func (d *Dictionary) Remove(name string) {
	d.entries.Delete(name)
}

// Words returns every entry, sorted alphabetically by name (the WORDS
// command's listing order, spec §6).
func (d *Dictionary) Words() []*Entry {
	out := make([]*Entry, 0, int(d.entries.Count()))
	d.entries.Iter(func(_ string, e *Entry) (stop bool) {
		out = append(out, e)
		return false
	})
	slices.SortFunc(out, func(a, b *Entry) int {
		switch {
		case a.Name < b.Name:
			return -1
		case a.Name > b.Name:
			return 1
		default:
			return 0
		}
	})
	return out
}

// Len returns the number of distinct names currently defined.
func (d *Dictionary) Len() int { return int(d.entries.Count()) }
