package cobs

import (
	"bytes"
)

// Scanner walks through a buffer that holds a sequence of Delimited frames.
// Empty spans between consecutive delimiters are skipped, since no payload
// encodes to zero bytes.  Bytes after the last delimiter are reported as a
// final, unterminated frame, which fails to decode.
//
// A Scanner never copies: Encoded returns a slice of the buffer passed to
// Reset.
type Scanner struct {
	buf        []byte
	next       int
	start      int
	end        int
	terminated bool
}

// Reset prepares the scanner to walk through buf from the beginning.
func (s *Scanner) Reset(buf []byte) {
	*s = Scanner{buf: buf}
}

// Next advances to the next frame, returning false once the buffer is
// exhausted.
func (s *Scanner) Next() bool {
	for s.next < len(s.buf) {
		start := s.next
		length := FindDelimiter(s.buf[start:])
		if length == -1 {
			s.start, s.end, s.terminated = start, len(s.buf), false
			s.next = len(s.buf)
			return true
		}
		s.next = start + length + 1
		if length > 0 {
			s.start, s.end, s.terminated = start, start+length, true
			return true
		}
	}
	s.start, s.end, s.terminated = s.next, s.next, false
	return false
}

// Encoded returns the current frame, without its delimiter.
func (s *Scanner) Encoded() []byte {
	return s.buf[s.start:s.end]
}

// Offset returns the position of the current frame within the buffer.
func (s *Scanner) Offset() int {
	return s.start
}

// Terminated reports whether the current frame was followed by a delimiter.
func (s *Scanner) Terminated() bool {
	return s.terminated
}

// Decode decodes the current frame into payload.
func (s *Scanner) Decode(payload *bytes.Buffer) error {
	if !s.terminated {
		return &DecodeError{Kind: InvalidFrameForConvention, Offset: s.end - s.start}
	}
	return Decode(s.Encoded(), payload)
}
