package word

import "github.com/pkg/errors"

// Sentinel errors a word's invocation can raise. forth.Environment wraps
// these with errors.Wrapf to attach the offending word's name (spec §7);
// callers elsewhere in the tree check kind with errors.Is.
var (
	ErrStackUnderflow = errors.New("stack underflow")
	ErrStackOverflow  = errors.New("stack overflow")
	ErrDivisionByZero = errors.New("division by zero")
	ErrMissingCreate   = errors.New("no buffer to operate on: CREATE was not called")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrZeroLoopStep    = errors.New("DO loop step is zero")
)
