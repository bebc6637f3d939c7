package cobs

import (
	"bytes"
	"fmt"
	"strings"
)

// Convention states whether an encoded frame ends with a delimiter.  It is
// agreed between encoder and decoder out of band; nothing in the encoded
// bytes says which convention was used.
type Convention int

const (
	// Bare frames are exactly the output of Encode, with no trailing
	// delimiter.  The empty frame decodes to the empty payload.
	Bare Convention = iota
	// Delimited frames are the output of Encode followed by exactly one
	// delimiter.  The empty frame is invalid.
	Delimited
)

func (c Convention) String() string {
	switch c {
	case Bare:
		return "bare"
	case Delimited:
		return "delimited"
	default:
		return fmt.Sprintf("Convention(%d)", int(c))
	}
}

// ParseConvention is the inverse of Convention.String.
func ParseConvention(s string) (Convention, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bare":
		return Bare, nil
	case "delimited":
		return Delimited, nil
	default:
		return 0, fmt.Errorf("unknown delimiter convention %q (expected bare or delimited)", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Convention) MarshalText() ([]byte, error) {
	switch c {
	case Bare, Delimited:
		return []byte(c.String()), nil
	default:
		return nil, fmt.Errorf("invalid delimiter convention %d", int(c))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Convention) UnmarshalText(text []byte) error {
	parsed, err := ParseConvention(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Unframe checks that frame has the shape that the convention requires,
// and returns the part of it that Decode should be run on.  Under Delimited,
// a delimiter anywhere but in the last position is reported as
// UnexpectedReservedByte, while an empty frame or a missing trailing
// delimiter is reported as InvalidFrameForConvention.
func (c Convention) Unframe(frame []byte) ([]byte, error) {
	if c != Delimited {
		return frame, nil
	}
	if len(frame) == 0 {
		return nil, &DecodeError{Kind: InvalidFrameForConvention, Offset: 0}
	}
	last := len(frame) - 1
	if i := FindDelimiter(frame); i != -1 && i < last {
		return nil, &DecodeError{Kind: UnexpectedReservedByte, Offset: i}
	}
	if frame[last] != Delimiter {
		return nil, &DecodeError{Kind: InvalidFrameForConvention, Offset: last}
	}
	return frame[:last], nil
}

// EncodeFrame encodes payload and, under Delimited, appends the delimiter.
func EncodeFrame(payload []byte, c Convention) []byte {
	buf := bytes.NewBuffer(make([]byte, 0, MaxEncodedLen(len(payload))+1))
	Encode(payload, buf)
	if c == Delimited {
		EncodeDelimiter(buf)
	}
	return buf.Bytes()
}

// DecodeFrame decodes a frame that was produced under convention c.  It
// never returns a partial payload: on error the result is nil.
func DecodeFrame(frame []byte, c Convention) ([]byte, error) {
	encoded, err := c.Unframe(frame)
	if err != nil {
		return nil, err
	}
	payload := bytes.NewBuffer(make([]byte, 0, len(encoded)))
	if err := Decode(encoded, payload); err != nil {
		return nil, err
	}
	return payload.Bytes(), nil
}
