// Package trace implements the optional per-macroblock trace dump of 3.3:
// one compact bit-packed record per macroblock per frame (mode, zigzag
// motion vector, SAD), written with icza/bitio. It is a pure side
// channel: the analyzer's main output is byte-identical whether or not a
// trace file is requested.
package trace

import (
	"io"

	"github.com/cosmin/motion-search/internal/bits"
	"github.com/cosmin/motion-search/mvfield"
	"github.com/icza/bitio"
	"github.com/mewkiz/pkg/errutil"
)

// modeBits is the fixed field width for mvfield.Mode; four modes fit in two
// bits.
const modeBits = 2

// Writer appends one bit-packed record per macroblock via WriteMB. Mode is
// a fixed 2-bit field; the motion vector's x and y are each ZigZag-encoded
// and unary-coded (small vectors are the overwhelming common case, so
// unary keeps the common path cheap); SAD is a fixed 24-bit field, wide
// enough for any 16x16 SAD (max 16*16*255).
type Writer struct {
	bw *bitio.Writer
}

// NewWriter wraps w in a bit-packed trace writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bitio.NewWriter(w)}
}

// WriteMB appends one macroblock's trace record: its coding mode, its
// motion vector (zero for ModeIntra), and the winning candidate's SAD.
func (w *Writer) WriteMB(mode mvfield.Mode, mv mvfield.MV, sad int) error {
	if err := w.bw.WriteBits(uint64(mode), modeBits); err != nil {
		return errutil.Err(err)
	}
	if err := bits.WriteUnary(w.bw, uint64(bits.EncodeZigZag(mv.X))); err != nil {
		return errutil.Err(err)
	}
	if err := bits.WriteUnary(w.bw, uint64(bits.EncodeZigZag(mv.Y))); err != nil {
		return errutil.Err(err)
	}
	if err := w.bw.WriteBits(uint64(sad), 24); err != nil {
		return errutil.Err(err)
	}
	return nil
}

// Close flushes any partial byte and closes the underlying bit writer.
func (w *Writer) Close() error {
	if err := w.bw.Close(); err != nil {
		return errutil.Err(err)
	}
	return nil
}
