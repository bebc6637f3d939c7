package cobs_test

import (
	"bytes"
	"testing"

	"github.com/dcreager/cobs-go/cobs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestDecodeInPlace(t *testing.T) {
	for _, tc := range shortTestCases {
		buf := []byte(tc.encoded)
		decoded, err := cobs.DecodeInPlace(buf)
		require.NoError(t, err)
		assert.Equal(t, tc.decoded, string(decoded))
	}

	t.Run("OverflowBlockThenSeparator", func(t *testing.T) {
		buf := []byte("\xff" + string254 + "\x01\x02z")
		decoded, err := cobs.DecodeInPlace(buf)
		require.NoError(t, err)
		assert.Equal(t, string254+"\x00z", string(decoded))

		// The result shares storage with the input.
		require.NotEmpty(t, decoded)
		assert.Same(t, &buf[0], &decoded[0])
	})

	t.Run("Empty", func(t *testing.T) {
		decoded, err := cobs.DecodeInPlace([]byte{})
		require.NoError(t, err)
		assert.Empty(t, decoded)
	})

	t.Run("Errors", func(t *testing.T) {
		_, err := cobs.DecodeInPlace([]byte{5, 0x41, 0x42})
		assert.Equal(t, &cobs.DecodeError{Kind: cobs.TruncatedRun, Offset: 0}, err)

		_, err = cobs.DecodeInPlace([]byte("\x04abc\x01\x00"))
		assert.Equal(t, &cobs.DecodeError{Kind: cobs.UnexpectedReservedByte, Offset: 5}, err)
	})
}

func TestDecodeInPlaceAgreesWithDecode(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var frame []byte
		if rapid.Bool().Draw(t, "valid") {
			frame = cobs.EncodeFrame(inputPayload.Draw(t, "payload"), cobs.Bare)
		} else {
			frame = rapid.SliceOfN(rapid.SampledFrom([]byte{0x00, 0x01, 0x02, 0x03, 0x61, 0xff}), 0, 600).Draw(t, "frame")
		}

		var expected bytes.Buffer
		expectedErr := cobs.Decode(frame, &expected)

		decoded, err := cobs.DecodeInPlace(append([]byte{}, frame...))
		assert.Equal(t, expectedErr, err)
		if expectedErr == nil {
			assert.True(t, bytes.Equal(expected.Bytes(), decoded))
		}
	})
}
