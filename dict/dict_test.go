package dict

import (
	"bytes"
	"testing"

	"github.com/BogCyg/BCForth/word"
)

func TestInsertLookup(t *testing.T) {
	d := New()
	d.SetWarnWriter(&bytes.Buffer{})
	n := word.NewComposite("SQ")
	d.Insert("SQ", n, "squares top of stack", false)

	e, ok := d.Lookup("SQ")
	if !ok || e.Node != n {
		t.Fatalf("lookup failed")
	}
}

func TestRedefineWarnsAndOverwrites(t *testing.T) {
	d := New()
	var warn bytes.Buffer
	d.SetWarnWriter(&warn)

	d.Insert("X", word.NewComposite("X"), "", false)
	second := word.NewComposite("X")
	d.Insert("X", second, "v2", false)

	if warn.Len() == 0 {
		t.Fatalf("expected a redefinition warning")
	}
	e, _ := d.Lookup("X")
	if e.Node != second {
		t.Fatalf("expected overwrite to win")
	}
}

func TestWordsSortedAlphabetically(t *testing.T) {
	d := New()
	d.SetWarnWriter(&bytes.Buffer{})
	for _, n := range []string{"ZEBRA", "APPLE", "MANGO"} {
		d.Insert(n, word.NewComposite(n), "", false)
	}
	words := d.Words()
	if len(words) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(words))
	}
	for i := 1; i < len(words); i++ {
		if words[i-1].Name > words[i].Name {
			t.Fatalf("not sorted: %s before %s", words[i-1].Name, words[i].Name)
		}
	}
}
