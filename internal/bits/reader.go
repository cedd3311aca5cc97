package bits

import "github.com/icza/bitio"

// Reader wraps a bitio.Reader so ReadUnary can hang off a named type
// instead of the bare library type, mirroring WriteUnary's *bitio.Writer
// parameter on the encode side.
type Reader struct {
	*bitio.Reader
}

// NewReader wraps an existing bitio.Reader.
func NewReader(br *bitio.Reader) *Reader {
	return &Reader{Reader: br}
}
