package frame

// YUVFrame is a decoded picture: three padded planes (Y at full resolution,
// U/V at half resolution in each dimension, 4:2:0) plus the order in which
// the FrameSource produced it.
type YUVFrame struct {
	Y, U, V *PaddedPlane

	// SequenceIndex is the 0-based input order in which the FrameSource
	// produced this frame.
	SequenceIndex int
}

// NewYUVFrame allocates a frame of the given luma dimensions, with hpad/vpad
// padding on the luma plane and proportionally halved padding on the
// chroma planes.
func NewYUVFrame(dim Dim, hpad, vpad int) *YUVFrame {
	chroma := dim.ChromaDim()
	return &YUVFrame{
		Y: NewPaddedPlane(dim.Width, dim.Height, hpad, vpad),
		U: NewPaddedPlane(chroma.Width, chroma.Height, hpad/2, vpad/2),
		V: NewPaddedPlane(chroma.Width, chroma.Height, hpad/2, vpad/2),
	}
}

// ExtendAll applies replicate-extend padding to all three planes. Called
// once per frame after a FrameSource fills the visible samples.
func (f *YUVFrame) ExtendAll() {
	f.Y.Extend()
	f.U.Extend()
	f.V.Extend()
}
