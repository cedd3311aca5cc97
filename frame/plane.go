package frame

// DefaultHPad and DefaultVPad bound the horizontal/vertical padding added
// around a plane's visible area. They must cover the search window radius
// plus one block (see search.Range); 32 is a search range of 16 plus one
// 16-sample block. Candidates that would reach past the padding (predictor
// drift, the diamond refinement step) are clamped by the search package.
const (
	DefaultHPad = 32
	DefaultVPad = 32
)

// PaddedPlane is an 8-bit raster with a replicate-extended border around its
// visible Width x Height area, so that any integer-pixel motion vector
// within the configured padding loads valid samples without bounds checks.
//
// Addressing is relative to the plane's origin: Index(0,0) is the top-left
// visible sample; negative x/y address the padding.
type PaddedPlane struct {
	Width  int
	Height int
	HPad   int
	VPad   int
	Stride int

	buf []byte
}

// NewPaddedPlane allocates a plane of the given visible size with hpad/vpad
// samples of padding on every side. The padding is zero-filled until Extend
// is called.
func NewPaddedPlane(width, height, hpad, vpad int) *PaddedPlane {
	stride := width + 2*hpad
	rows := height + 2*vpad
	return &PaddedPlane{
		Width:  width,
		Height: height,
		HPad:   hpad,
		VPad:   vpad,
		Stride: stride,
		buf:    make([]byte, stride*rows),
	}
}

// Index returns the offset into the underlying buffer of sample (x, y),
// where (0,0) is the top-left visible sample. x and y may range into the
// padding: -HPad <= x < Width+HPad, -VPad <= y < Height+VPad.
func (p *PaddedPlane) Index(x, y int) int {
	return (y+p.VPad)*p.Stride + (x + p.HPad)
}

// At returns the sample at (x, y).
func (p *PaddedPlane) At(x, y int) byte {
	return p.buf[p.Index(x, y)]
}

// Set stores the sample at (x, y).
func (p *PaddedPlane) Set(x, y int, v byte) {
	p.buf[p.Index(x, y)] = v
}

// Pixels returns the plane's full backing buffer, padding included, for use
// with the kernel package's index+stride addressing.
func (p *PaddedPlane) Pixels() []byte {
	return p.buf
}

// VisibleRow returns the visible Width bytes of row y (0 <= y < Height),
// without padding, for use by FrameSource implementations filling a frame.
func (p *PaddedPlane) VisibleRow(y int) []byte {
	start := p.Index(0, y)
	return p.buf[start : start+p.Width]
}

// Extend replicates the outermost visible row into the padding rows above
// and below, then replicates the outermost column (including the newly
// filled padding rows) into the padding columns left and right. After
// Extend, every sample within the padded bounds equals the nearest visible
// sample (replicate-extend), per the padded-plane contract.
func (p *PaddedPlane) Extend() {
	// Vertical: copy first/last visible rows into the padding rows above and
	// below, across the visible width only; columns are filled next.
	top := p.buf[p.Index(0, 0):p.Index(p.Width, 0)]
	bottom := p.buf[p.Index(0, p.Height-1):p.Index(p.Width, p.Height-1)]
	for y := 1; y <= p.VPad; y++ {
		copy(p.buf[p.Index(0, -y):p.Index(p.Width, -y)], top)
		copy(p.buf[p.Index(0, p.Height-1+y):p.Index(p.Width, p.Height-1+y)], bottom)
	}

	// Horizontal: for every row (including the padding rows just filled),
	// replicate the leftmost/rightmost visible samples into the side padding.
	for y := -p.VPad; y < p.Height+p.VPad; y++ {
		left := p.At(0, y)
		right := p.At(p.Width-1, y)
		rowStart := p.Index(-p.HPad, y)
		rowEnd := p.Index(0, y)
		for i := rowStart; i < rowEnd; i++ {
			p.buf[i] = left
		}
		rowStart = p.Index(p.Width, y)
		rowEnd = p.Index(p.Width+p.HPad, y)
		for i := rowStart; i < rowEnd; i++ {
			p.buf[i] = right
		}
	}
}
