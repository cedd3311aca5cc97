package motionsearch

import "github.com/mewkiz/pkg/errutil"

// Kind classifies an analyzer error by what went wrong, not by identity, so
// callers can branch on category (fatal at startup vs. expected terminator
// vs. warning) without matching against a specific error value.
type Kind int

const (
	// KindUnsupportedSource: the input extension/format was not recognized.
	KindUnsupportedSource Kind = iota
	// KindSourceOpen: the input could not be opened.
	KindSourceOpen
	// KindMissingDimensions: a raw-planar source was given without width/height.
	KindMissingDimensions
	// KindInvalidConfig: gop_size<1, bframes<0, unknown format/score version,
	// or a negative weight.
	KindInvalidConfig
	// KindEndOfStream: expected terminator; swallowed by the analyzer.
	KindEndOfStream
	// KindOutputOpen: the output destination could not be opened.
	KindOutputOpen
	// KindOutputWrite: writing the serialized result failed.
	KindOutputWrite
	// KindAllocationFailure: an aligned buffer could not be allocated.
	KindAllocationFailure
	// KindWarning: non-fatal; processing proceeds (e.g. weights not
	// summing to 1).
	KindWarning
)

func (k Kind) String() string {
	switch k {
	case KindUnsupportedSource:
		return "unsupported source"
	case KindSourceOpen:
		return "source open"
	case KindMissingDimensions:
		return "missing dimensions"
	case KindInvalidConfig:
		return "invalid config"
	case KindEndOfStream:
		return "end of stream"
	case KindOutputOpen:
		return "output open"
	case KindOutputWrite:
		return "output write"
	case KindAllocationFailure:
		return "allocation failure"
	case KindWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Error wraps an underlying error with a Kind, the way the teacher's
// errutil.Err/Newf wrap errors with a message: callers that need the
// category use errors.As, everyone else just sees a formatted message.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// newError builds an *Error from a format string, via errutil so the
// wrapped error carries a stack-friendly message like the rest of this
// codebase.
func newError(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Err: errutil.Newf(format, args...)}
}

// wrapError builds an *Error from an existing error, via errutil.Err.
func wrapError(kind Kind, err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: errutil.Err(err)}
}

// NewEndOfStreamError builds the terminator a FrameSource.Read returns once
// exhausted.
func NewEndOfStreamError() error {
	return newError(KindEndOfStream, "end of stream")
}

// NewMissingDimensionsError builds the error a raw-planar source returns
// when opened without a usable width/height.
func NewMissingDimensionsError() error {
	return newError(KindMissingDimensions, "raw planar source requires -width and -height")
}

// WrapSourceOpenError wraps a filesystem error encountered while opening a
// FrameSource's underlying file.
func WrapSourceOpenError(err error) error {
	return wrapError(KindSourceOpen, err)
}

// WrapUnsupportedSourceError wraps an error encountered while identifying a
// source's format.
func WrapUnsupportedSourceError(err error) error {
	return wrapError(KindUnsupportedSource, err)
}

// NewUnsupportedSourceError builds a KindUnsupportedSource error from a
// format string, for sources that reject malformed or unrecognized input
// without an underlying I/O error to wrap.
func NewUnsupportedSourceError(format string, args ...interface{}) error {
	return newError(KindUnsupportedSource, format, args...)
}

// IsEndOfStream reports whether err is (or wraps) an end-of-stream error.
func IsEndOfStream(err error) bool {
	var e *Error
	for err != nil {
		if ae, ok := err.(*Error); ok {
			e = ae
			break
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return e != nil && e.Kind == KindEndOfStream
}
