// Package frame holds the picture buffers the analyzer operates on: frame
// dimensions, a replicate-padded 8-bit plane, and the three-plane YUV frame
// built on top of it.
package frame

import "github.com/mewkiz/pkg/errutil"

// MBSize is the width and height, in samples, of a macroblock.
const MBSize = 16

// Dim is the width and height of a plane's visible (unpadded) area, in
// samples. Both must be a multiple of MBSize; Validate enforces this at
// open time rather than silently truncating (see the sizing open question).
type Dim struct {
	Width  int
	Height int
}

// Validate reports whether d is usable as a frame size: positive, and both
// dimensions exact multiples of MBSize.
func (d Dim) Validate() error {
	if d.Width <= 0 || d.Height <= 0 {
		return errutil.Newf("frame: non-positive dimensions %dx%d", d.Width, d.Height)
	}
	if d.Width%MBSize != 0 || d.Height%MBSize != 0 {
		return errutil.Newf("frame: dimensions %dx%d are not multiples of %d", d.Width, d.Height, MBSize)
	}
	return nil
}

// MBCols returns the number of macroblock columns.
func (d Dim) MBCols() int {
	return d.Width / MBSize
}

// MBRows returns the number of macroblock rows.
func (d Dim) MBRows() int {
	return d.Height / MBSize
}

// ChromaDim returns the dimensions of the 4:2:0 chroma planes associated
// with a luma plane of this size.
func (d Dim) ChromaDim() Dim {
	return Dim{Width: d.Width / 2, Height: d.Height / 2}
}
