package forth

import (
	"github.com/pkg/errors"

	"github.com/BogCyg/BCForth/word"
)

// Error kinds (spec §7). These are sentinels checked with errors.Is; the
// message attached by errors.Wrapf at the raise site carries the specific
// offending word or value.
var (
	ErrStackUnderflow = word.ErrStackUnderflow
	ErrStackOverflow  = word.ErrStackOverflow
	ErrUnknownWord         = errors.New("unknown word")
	ErrBadNumericLiteral   = errors.New("bad numeric literal")
	ErrDivisionByZero      = word.ErrDivisionByZero
	ErrUnmatchedStructural = errors.New("unmatched structural word")
	ErrUnterminatedQuote   = errors.New("unterminated quote")
	ErrUnterminatedParen   = errors.New("unterminated parenthesised comment")
	ErrMissingCreate       = word.ErrMissingCreate
	ErrUndefinedValue      = errors.New("undefined value")
	ErrIndexOutOfRange     = word.ErrIndexOutOfRange
	ErrUserAbort           = errors.New("user abort")
)
