package cobs_test

import (
	"bytes"
	"testing"

	"github.com/dcreager/cobs-go/cobs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// inputPayload mixes arbitrary bytes with long non-zero runs and explicit
// delimiters, so that overflow blocks next to delimiters show up often.
var inputPayload = rapid.Custom(func(t *rapid.T) []byte {
	smallChunk := rapid.SliceOf(rapid.Byte())
	largeChunk := rapid.Map(rapid.IntRange(250, 520), func(n int) []byte {
		return bytes.Repeat([]byte{'a'}, n)
	})
	delimiter := rapid.Just([]byte{cobs.Delimiter})
	chunks := rapid.SliceOf(rapid.OneOf(smallChunk, largeChunk, delimiter)).Draw(t, "chunks")
	var buf bytes.Buffer
	for _, chunk := range chunks {
		buf.Write(chunk)
	}
	return buf.Bytes()
})

var conventions = rapid.SampledFrom([]cobs.Convention{cobs.Bare, cobs.Delimited})

func TestRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		input := inputPayload.Draw(t, "input")
		convention := conventions.Draw(t, "convention")
		decoded, err := cobs.DecodeFrame(cobs.EncodeFrame(input, convention), convention)
		require.NoError(t, err)
		assert.Equal(t, len(input), len(decoded))
		assert.True(t, bytes.Equal(input, decoded))
	})
}

func TestNoReservedByte(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		input := inputPayload.Draw(t, "input")
		encoded := cobs.EncodeFrame(input, cobs.Bare)
		assert.Equal(t, -1, cobs.FindDelimiter(encoded))

		delimited := cobs.EncodeFrame(input, cobs.Delimited)
		assert.Equal(t, len(delimited)-1, cobs.FindDelimiter(delimited))
	})
}

func TestLengthBound(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		input := inputPayload.Draw(t, "input")
		encoded := cobs.EncodeFrame(input, cobs.Bare)
		assert.LessOrEqual(t, len(encoded), cobs.MaxEncodedLen(len(input)))

		blocks := (len(input) + 253) / 254
		if len(input) == 0 {
			assert.Equal(t, []byte{0x01}, encoded)
		} else {
			assert.LessOrEqual(t, len(encoded), blocks*255)
		}
	})
}

func TestInteriorReservedByteRejected(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		input := inputPayload.Draw(t, "input")
		convention := conventions.Draw(t, "convention")
		frame := cobs.EncodeFrame(input, convention)

		// Any position before the agreed terminator counts as interior.
		last := len(frame) - 1
		if convention == cobs.Delimited {
			last--
		}
		position := rapid.IntRange(0, last).Draw(t, "position")
		frame[position] = cobs.Delimiter

		_, err := cobs.DecodeFrame(frame, convention)
		kind, ok := cobs.KindOf(err)
		require.True(t, ok)
		assert.Equal(t, cobs.UnexpectedReservedByte, kind)
		assert.Equal(t, &cobs.DecodeError{Kind: cobs.UnexpectedReservedByte, Offset: position}, err)
	})
}

func TestRoundTripRandomLists(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		payloads := rapid.SliceOf(inputPayload).Draw(t, "payloads")
		inputList := make([]string, 0, len(payloads))
		for _, payload := range payloads {
			inputList = append(inputList, string(payload))
		}
		checkListRoundTrip(t, inputList)
	})
}

func TestRecordBuilderRandomLists(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		payloads := rapid.SliceOf(inputPayload).Draw(t, "payloads")
		inputList := make([]string, 0, len(payloads))
		for _, payload := range payloads {
			inputList = append(inputList, string(payload))
		}
		checkRecordBuilder(t, inputList)
	})
}
