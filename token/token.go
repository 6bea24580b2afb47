// Package token implements the tokenizer (spec §4.4): a line-oriented lexer
// that strips trailing comments, joins a colon-definition's lines into one
// logical unit, splits on whitespace, and case-folds tokens outside of
// quote/paren spans.
package token

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// quoteOpeners are the words that open a quote-family span: everything up
// to the matching `"` preserves its original case (spec §4.4).
var quoteOpeners = map[string]bool{
	`."`:      true,
	`,"`:      true,
	`ABORT"`:  true,
	`C"`:      true,
	`S"`:      true,
}

// Tokenizer reads logical units (single lines, or a whole colon-definition)
// from an underlying line source and splits each into case-folded tokens.
type Tokenizer struct {
	lines *bufio.Scanner
	// Fold enables case-folding of tokens outside quote/paren spans. The
	// REPL turns it off while reading the path line of a LOAD command.
	Fold bool
}

// New returns a Tokenizer reading from r.
func New(r io.Reader) *Tokenizer {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1<<20)
	return &Tokenizer{lines: s, Fold: true}
}

func stripComment(line string) string {
	if idx := strings.IndexByte(line, '\\'); idx >= 0 {
		return line[:idx]
	}
	return line
}

func isColonStart(line string) bool {
	t := strings.TrimSpace(line)
	return len(t) > 0 && t[0] == ':'
}

// Next reads the next logical unit and returns its tokens. It returns
// io.EOF when input is exhausted, and the underlying reader's error
// (wrapped) if reading fails. A colon-definition that never reaches a line containing `;`
// before EOF is reported as an unterminated-definition error wrapping
// io.EOF, per spec §4.4's "the tokenizer enforces this" rule.
func (t *Tokenizer) Next() ([]string, error) {
	if !t.lines.Scan() {
		if err := t.lines.Err(); err != nil {
			return nil, errors.Wrap(err, "tokenizer read failed")
		}
		return nil, io.EOF
	}
	line := stripComment(t.lines.Text())
	text := line

	if isColonStart(line) {
		for !strings.Contains(line, ";") {
			if !t.lines.Scan() {
				if err := t.lines.Err(); err != nil {
					return nil, errors.Wrap(err, "tokenizer read failed")
				}
				return nil, errors.Wrap(io.EOF, "unterminated colon-definition")
			}
			line = stripComment(t.lines.Text())
			text += "\n" + line
		}
	}

	tokens := strings.Fields(text)
	if t.Fold {
		tokens = caseFold(tokens)
	}
	return tokens, nil
}

// caseFold upper-cases every token except those inside a quote-family span
// (`."`, `,"`, `ABORT"`, `C"`, `S"` up to the matching `"`) or a
// parenthesised comment span (`(` up to the matching `)`). Two independent
// skip flags track the two span kinds, exactly as spec §4.4 and its §9
// design-note formalisation (outside / in-quote-span / in-paren-span)
// describe.
func caseFold(tokens []string) []string {
	out := make([]string, len(tokens))
	inQuote := false
	inParen := false
	for i, tok := range tokens {
		switch {
		case inQuote:
			out[i] = tok
			if strings.HasSuffix(tok, `"`) {
				inQuote = false
			}
		case inParen:
			out[i] = tok
			if tok == ")" || strings.HasSuffix(tok, ")") {
				inParen = false
			}
		case quoteOpeners[strings.ToUpper(tok)]:
			out[i] = strings.ToUpper(tok)
			inQuote = true
		case tok == "(":
			out[i] = tok
			inParen = true
		default:
			out[i] = strings.ToUpper(tok)
		}
	}
	return out
}
