package cobs

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a frame could not be decoded.
type ErrorKind int

const (
	// TruncatedRun means that a prefix byte declared more literal bytes
	// than remain in the frame.
	TruncatedRun ErrorKind = iota + 1
	// UnexpectedReservedByte means that a 0x00 byte appeared where a prefix
	// or literal byte was expected.
	UnexpectedReservedByte
	// InvalidFrameForConvention means that the frame does not have the
	// shape that the caller's Convention requires.
	InvalidFrameForConvention
)

var (
	// ErrTruncatedRun is the error that every DecodeError of kind
	// TruncatedRun unwraps to.
	ErrTruncatedRun = errors.New("cobs: truncated run")
	// ErrUnexpectedReservedByte is the error that every DecodeError of kind
	// UnexpectedReservedByte unwraps to.
	ErrUnexpectedReservedByte = errors.New("cobs: unexpected reserved byte")
	// ErrInvalidFrameForConvention is the error that every DecodeError of
	// kind InvalidFrameForConvention unwraps to.
	ErrInvalidFrameForConvention = errors.New("cobs: frame does not satisfy delimiter convention")
)

func (k ErrorKind) String() string {
	switch k {
	case TruncatedRun:
		return "TruncatedRun"
	case UnexpectedReservedByte:
		return "UnexpectedReservedByte"
	case InvalidFrameForConvention:
		return "InvalidFrameForConvention"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case TruncatedRun:
		return ErrTruncatedRun
	case UnexpectedReservedByte:
		return ErrUnexpectedReservedByte
	case InvalidFrameForConvention:
		return ErrInvalidFrameForConvention
	default:
		return nil
	}
}

// DecodeError is returned by every decoding function in this package.
// Offset is the position within the frame passed by the caller at which the
// problem was detected.
type DecodeError struct {
	Kind   ErrorKind
	Offset int
}

func (e *DecodeError) Error() string {
	if sentinel := e.Kind.sentinel(); sentinel != nil {
		return fmt.Sprintf("%s at offset %d", sentinel, e.Offset)
	}
	return fmt.Sprintf("cobs: %s at offset %d", e.Kind, e.Offset)
}

func (e *DecodeError) Unwrap() error {
	return e.Kind.sentinel()
}

// KindOf reports the ErrorKind of err, if err is (or wraps) a DecodeError or
// one of the sentinel errors.
func KindOf(err error) (ErrorKind, bool) {
	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		return decodeErr.Kind, true
	}
	for _, kind := range []ErrorKind{TruncatedRun, UnexpectedReservedByte, InvalidFrameForConvention} {
		if errors.Is(err, kind.sentinel()) {
			return kind, true
		}
	}
	return 0, false
}
