package token

import (
	"io"
	"strings"
	"testing"
)

func tokensOf(t *testing.T, src string) [][]string {
	t.Helper()
	tok := New(strings.NewReader(src))
	var units [][]string
	for {
		u, err := tok.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		units = append(units, u)
	}
	return units
}

func TestSimpleLineUppercased(t *testing.T) {
	units := tokensOf(t, "1 2 3 + * .\n")
	if len(units) != 1 {
		t.Fatalf("expected 1 unit, got %d", len(units))
	}
	want := []string{"1", "2", "3", "+", "*", "."}
	for i, w := range want {
		if units[0][i] != w {
			t.Fatalf("token %d: want %q got %q", i, w, units[0][i])
		}
	}
}

func TestColonDefinitionJoinsLines(t *testing.T) {
	units := tokensOf(t, ": SQ\n  DUP *\n;\n7 SQ .\n")
	if len(units) != 2 {
		t.Fatalf("expected 2 logical units, got %d: %v", len(units), units)
	}
	def := units[0]
	if def[0] != ":" || def[1] != "SQ" || def[len(def)-1] != ";" {
		t.Fatalf("unexpected colon-def tokens: %v", def)
	}
}

func TestQuoteSpanPreservesCase(t *testing.T) {
	units := tokensOf(t, `: msg ." hello World" ; MSG`+"\n")
	def := units[0]
	found := false
	for _, tk := range def {
		if tk == "World\"" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected quote span to preserve case, got %v", def)
	}
	// Outside the quote span, case folding still applies.
	if def[1] != "MSG" {
		t.Fatalf("expected name MSG to be upper-cased, got %v", def)
	}
}

func TestParenCommentPreservesCase(t *testing.T) {
	units := tokensOf(t, "( a Comment ) dup\n")
	u := units[0]
	if u[2] != "Comment" {
		t.Fatalf("expected paren span to preserve case, got %v", u)
	}
	if u[len(u)-1] != "DUP" {
		t.Fatalf("expected dup to be upper-cased, got %v", u)
	}
}

func TestTrailingLineCommentStripped(t *testing.T) {
	units := tokensOf(t, "1 2 + . \\ adds and prints\n")
	u := units[0]
	want := []string{"1", "2", "+", "."}
	if len(u) != len(want) {
		t.Fatalf("expected %v, got %v", want, u)
	}
}

func TestUnterminatedColonDefinitionErrors(t *testing.T) {
	tok := New(strings.NewReader(": SQ DUP *\n"))
	_, err := tok.Next()
	if err == nil {
		t.Fatalf("expected an error for unterminated colon-definition")
	}
}
