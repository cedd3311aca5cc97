package framesource

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	motionsearch "github.com/cosmin/motion-search"
	"github.com/mewkiz/pkg/errutil"
)

// y4mMagic is the fixed stream header mjpegtools/ffmpeg's yuv4mpegpipe
// writer emits before the per-parameter fields.
const y4mMagic = "YUV4MPEG2"

// frameMagic prefixes every frame, optionally followed by per-frame
// parameters this reader ignores.
const frameMagic = "FRAME"

// Y4M is a FrameSource over a Y4M stream (3.4): self-describing, so unlike
// RawPlanar it needs no -width/-height. Only 4:2:0 chroma subsampling
// ("C420", or the missing-tag default) is supported; any other colorspace
// tag is rejected as KindUnsupportedSource.
type Y4M struct {
	f      *os.File
	r      *bufio.Reader
	width  int
	height int
	count  int
	eof    bool
}

// OpenY4M opens path, reads and validates its Y4M stream header, and
// returns a source positioned at the first frame.
func OpenY4M(path string) (*Y4M, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, motionsearch.WrapSourceOpenError(err)
	}
	r := bufio.NewReader(f)

	line, err := r.ReadString('\n')
	if err != nil {
		f.Close()
		return nil, motionsearch.WrapUnsupportedSourceError(err)
	}
	fields := strings.Fields(strings.TrimSuffix(line, "\n"))
	if len(fields) == 0 || fields[0] != y4mMagic {
		f.Close()
		return nil, motionsearch.NewUnsupportedSourceError("not a Y4M stream: missing %q magic", y4mMagic)
	}

	width, height := -1, -1
	colorspace := "420"
	for _, tok := range fields[1:] {
		switch tok[0] {
		case 'W':
			width, err = strconv.Atoi(tok[1:])
			if err != nil {
				f.Close()
				return nil, motionsearch.NewUnsupportedSourceError("bad Y4M width field %q", tok)
			}
		case 'H':
			height, err = strconv.Atoi(tok[1:])
			if err != nil {
				f.Close()
				return nil, motionsearch.NewUnsupportedSourceError("bad Y4M height field %q", tok)
			}
		case 'C':
			colorspace = tok[1:]
		}
	}
	if width <= 0 || height <= 0 {
		f.Close()
		return nil, motionsearch.NewUnsupportedSourceError("Y4M stream missing W/H fields")
	}
	if !strings.HasPrefix(colorspace, "420") {
		f.Close()
		return nil, motionsearch.NewUnsupportedSourceError("unsupported Y4M colorspace %q (only 4:2:0)", colorspace)
	}

	return &Y4M{f: f, r: r, width: width, height: height}, nil
}

func (s *Y4M) Dim() (width, height int) { return s.width, s.height }

func (s *Y4M) Stride() int { return s.width }

func (s *Y4M) Read(dstY, dstU, dstV [][]byte) error {
	if s.eof {
		return motionsearch.NewEndOfStreamError()
	}
	line, err := s.r.ReadString('\n')
	if err != nil {
		s.eof = true
		if err == io.EOF && line == "" {
			return motionsearch.NewEndOfStreamError()
		}
		return errutil.Err(err)
	}
	if !strings.HasPrefix(line, frameMagic) {
		return motionsearch.NewUnsupportedSourceError("Y4M frame header missing %q magic", frameMagic)
	}

	if err := readPlanes(s.r, s.width, s.height, dstY, dstU, dstV); err != nil {
		s.eof = true
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return motionsearch.NewEndOfStreamError()
		}
		return errutil.Err(err)
	}
	s.count++
	return nil
}

func (s *Y4M) AtEOF() bool { return s.eof }

func (s *Y4M) Count() int { return s.count }

// Close releases the underlying file.
func (s *Y4M) Close() error {
	return errutil.Err(s.f.Close())
}
