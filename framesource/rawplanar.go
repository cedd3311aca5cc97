package framesource

import (
	"io"
	"os"

	motionsearch "github.com/cosmin/motion-search"
	"github.com/cosmin/motion-search/internal/bufseekio"
	"github.com/mewkiz/pkg/errutil"
)

// RawPlanar is a FrameSource over a headerless 4:2:0 planar byte stream
// (width/height cannot be inferred from the file and must be given).
type RawPlanar struct {
	f           *os.File
	r           *bufseekio.ReadSeeker
	width       int
	height      int
	frameSize   int
	count       int
	totalFrames int
	eof         bool
}

// OpenRawPlanar opens path as a raw planar 4:2:0 source of the given
// dimensions. width and height must both be positive, or
// KindMissingDimensions is returned.
func OpenRawPlanar(path string, width, height int) (*RawPlanar, error) {
	if width <= 0 || height <= 0 {
		return nil, motionsearch.NewMissingDimensionsError()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, motionsearch.WrapSourceOpenError(err)
	}
	info, err := f.Stat()
	if err != nil {
		return nil, motionsearch.WrapSourceOpenError(err)
	}

	fs := frameSize(width, height)
	total := int(info.Size() / int64(fs))

	return &RawPlanar{
		f:           f,
		r:           bufseekio.NewReadSeeker(f),
		width:       width,
		height:      height,
		frameSize:   fs,
		totalFrames: total,
	}, nil
}

func (s *RawPlanar) Dim() (width, height int) { return s.width, s.height }

func (s *RawPlanar) Stride() int { return s.width }

func (s *RawPlanar) Read(dstY, dstU, dstV [][]byte) error {
	if s.eof {
		return motionsearch.NewEndOfStreamError()
	}
	if err := readPlanes(s.r, s.width, s.height, dstY, dstU, dstV); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			s.eof = true
			return motionsearch.NewEndOfStreamError()
		}
		return errutil.Err(err)
	}
	s.count++
	if s.count >= s.totalFrames {
		s.eof = true
	}
	return nil
}

func (s *RawPlanar) AtEOF() bool { return s.eof }

func (s *RawPlanar) Count() int { return s.count }

// Close releases the underlying file.
func (s *RawPlanar) Close() error {
	return errutil.Err(s.f.Close())
}
