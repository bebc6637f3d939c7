// Package bytewise is a second COBS implementation, written independently
// of package cobs so that the two can be checked against each other.  The
// decoder consumes one byte at a time through a small state machine, and
// natively expects Delimited frames.  The encoder back-patches each prefix
// byte once its run is complete, instead of searching ahead for the next
// delimiter.
package bytewise

import (
	"github.com/dcreager/cobs-go/cobs"
)

type state int

const (
	// stateCode expects a prefix byte, or the frame delimiter.
	stateCode state = iota
	// stateData expects another literal byte of the current run.
	stateData
	stateFinished
)

type step int

const (
	stepConsumed step = iota
	stepFinished
	stepUnexpectedZero
	stepAfterFinish
)

type decoder struct {
	state     state
	remaining int
	runStart  int
	// pendingZero is set after every run that stood for a delimiter in the
	// payload.  It is only written out once another run follows, since the
	// last run of a frame is not followed by a delimiter.
	pendingZero bool
	out         []byte
}

func (d *decoder) step(offset int, c byte) step {
	switch d.state {
	case stateCode:
		if c == cobs.Delimiter {
			d.state = stateFinished
			return stepFinished
		}
		if d.pendingZero {
			d.out = append(d.out, cobs.Delimiter)
		}
		d.pendingZero = c != 0xff
		if c > 1 {
			d.state = stateData
			d.remaining = int(c) - 1
			d.runStart = offset
		}
		return stepConsumed

	case stateData:
		if c == cobs.Delimiter {
			d.state = stateFinished
			return stepUnexpectedZero
		}
		d.out = append(d.out, c)
		d.remaining--
		if d.remaining == 0 {
			d.state = stateCode
		}
		return stepConsumed

	default:
		return stepAfterFinish
	}
}

// Decode decodes a single Delimited frame: the encoded bytes followed by
// exactly one delimiter.
func Decode(frame []byte) ([]byte, error) {
	if len(frame) == 0 {
		return nil, &cobs.DecodeError{Kind: cobs.InvalidFrameForConvention, Offset: 0}
	}

	d := decoder{out: make([]byte, 0, len(frame))}
	for i, c := range frame {
		switch d.step(i, c) {
		case stepFinished:
			if i != len(frame)-1 {
				// The delimiter ended the frame early.
				return nil, &cobs.DecodeError{Kind: cobs.UnexpectedReservedByte, Offset: i}
			}
			return d.out, nil
		case stepUnexpectedZero:
			return nil, &cobs.DecodeError{Kind: cobs.UnexpectedReservedByte, Offset: i}
		}
	}

	if d.state == stateData {
		return nil, &cobs.DecodeError{Kind: cobs.TruncatedRun, Offset: d.runStart}
	}
	return nil, &cobs.DecodeError{Kind: cobs.InvalidFrameForConvention, Offset: len(frame)}
}

// Encode returns the Bare encoding of payload.
func Encode(payload []byte) []byte {
	out := make([]byte, 1, len(payload)+len(payload)/254+1)
	codeIndex := 0
	code := byte(1)
	for i, c := range payload {
		if c == cobs.Delimiter {
			out[codeIndex] = code
			codeIndex = len(out)
			out = append(out, 0)
			code = 1
			continue
		}

		out = append(out, c)
		code++
		if code == 0xff {
			out[codeIndex] = code
			if i == len(payload)-1 {
				// A full block that ends the payload is not followed by
				// an empty run.
				return out
			}
			codeIndex = len(out)
			out = append(out, 0)
			code = 1
		}
	}
	out[codeIndex] = code
	return out
}
