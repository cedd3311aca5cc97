package motionsearch

// FrameSource is the external contract an input reader (raw planar, Y4M,
// or any other decoded-frame provider) must satisfy. The analyzer only
// ever calls these five methods; it never inspects the underlying format.
type FrameSource interface {
	// Dim returns the source's frame dimensions.
	Dim() (width, height int)
	// Stride returns the row stride of the Y plane, which may exceed
	// width.
	Stride() int
	// Read fills dstY, dstU, dstV with the next frame's planes, advances
	// the source's position and increments its internal sequence index.
	// It returns a *Error with Kind KindEndOfStream once the source is
	// exhausted.
	Read(dstY, dstU, dstV [][]byte) error
	// AtEOF reports whether the source has no more frames to read.
	AtEOF() bool
	// Count returns the number of frames already produced (1-based after
	// the first successful Read, per the source count-contract open
	// question).
	Count() int
}
