package cobs

import (
	"bytes"
)

// Delimiter is the reserved byte.  Encoded data never contains it; it only
// appears as the frame terminator written by EncodeDelimiter.
const Delimiter = 0x00

const maxRun = 0xfe
const overflowPrefix = maxRun + 1

// findDelimiter looks for the reserved byte within the first maxRun bytes of
// payload.  If we find it, we return its index within payload.  If not, we
// return the length of the subset of payload that we looked in.  (That is,
// the minimum of maxRun and the actual length of payload.)
func findDelimiter(payload []byte) int {
	if len(payload) > maxRun {
		payload = payload[:maxRun]
	}
	result := bytes.IndexByte(payload, Delimiter)
	if result == -1 {
		return len(payload)
	}
	return result
}

// MaxEncodedLen returns the largest number of bytes that Encode can produce
// for a payload of n bytes, not counting a trailing delimiter.
func MaxEncodedLen(n int) int {
	overhead := (n + maxRun - 1) / maxRun
	if overhead < 1 {
		overhead = 1
	}
	return n + overhead
}

// Encode writes a payload into an output buffer using COBS.  This guarantees
// that the content that we write does not contain any occurrences of the
// delimiter.  (We do _not_ write a trailing delimiter; if your framing needs
// one, call EncodeDelimiter afterwards, or use EncodeFrame.)
func Encode(payload []byte, buf *bytes.Buffer) {
	buf.Grow(MaxEncodedLen(len(payload)))
	for {
		runSize := findDelimiter(payload)
		if runSize == maxRun {
			// An overflow block.  It doesn't stand for a delimiter in the
			// payload, so we start the next run at the very next byte.
			buf.WriteByte(overflowPrefix)
			buf.Write(payload[:maxRun])
			payload = payload[maxRun:]
			if len(payload) == 0 {
				return
			}
			continue
		}

		buf.WriteByte(byte(runSize + 1))
		buf.Write(payload[:runSize])
		payload = payload[runSize:]
		if len(payload) == 0 {
			// We reached the end (with a virtual terminating delimiter).
			return
		}

		// payload should start with a delimiter, so skip over it.  If that
		// was the last byte, the next pass writes the empty trailing run.
		payload = payload[1:]
	}
}

// EncodeDelimiter writes the frame delimiter to an output buffer.  You
// should use this to terminate frames under the Delimited convention.
func EncodeDelimiter(buf *bytes.Buffer) {
	buf.WriteByte(Delimiter)
}

// Decode reads a payload from a COBS-encoded buffer that does not carry a
// trailing delimiter.  Any occurrence of the delimiter in encoded is an
// error of kind UnexpectedReservedByte; a run whose prefix claims more bytes
// than remain is an error of kind TruncatedRun.  On error, payload may hold
// a partial result and should be discarded.
func Decode(encoded []byte, payload *bytes.Buffer) error {
	if i := bytes.IndexByte(encoded, Delimiter); i != -1 {
		return &DecodeError{Kind: UnexpectedReservedByte, Offset: i}
	}

	payload.Grow(len(encoded))
	offset := 0
	for offset < len(encoded) {
		prefix := int(encoded[offset])
		runLength := prefix - 1
		start := offset + 1
		if len(encoded)-start < runLength {
			return &DecodeError{Kind: TruncatedRun, Offset: offset}
		}
		payload.Write(encoded[start : start+runLength])
		offset = start + runLength

		// Every run except an overflow block, and except the last one, was
		// followed by a delimiter in the original payload.
		if prefix != overflowPrefix && offset < len(encoded) {
			payload.WriteByte(Delimiter)
		}
	}
	return nil
}

// FindDelimiter returns the index of the first occurrence of the delimiter
// in buf, or -1 if it doesn't occur.
func FindDelimiter(buf []byte) int {
	return bytes.IndexByte(buf, Delimiter)
}
