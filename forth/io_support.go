package forth

import (
	"bufio"
	"io"
)

// bufioRuneReader adapts an io.Reader to io.RuneReader for KEY/ACCEPT's
// default stdin source. It must be used through its pointer type: the
// underlying bufio.Reader buffers ahead, so a value copy would silently
// drop whatever it had already read past.
type bufioRuneReader struct {
	br *bufio.Reader
}

// newBufioRuneReader wraps r for use as an Environment's default input.
func newBufioRuneReader(r io.Reader) *bufioRuneReader {
	return &bufioRuneReader{br: bufio.NewReader(r)}
}

func (b *bufioRuneReader) ReadRune() (rune, int, error) {
	return b.br.ReadRune()
}
