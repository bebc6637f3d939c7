package bytewise_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dcreager/cobs-go/cobs"
	"github.com/dcreager/cobs-go/internal/bytewise"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var full = strings.Repeat("x", 254)

var testCases = []struct {
	decoded string
	encoded string
}{
	{"", "\x01"},
	{"\x00", "\x01\x01"},
	{"abc", "\x04abc"},
	{"\x11\x22\x00\x33", "\x03\x11\x22\x02\x33"},
	{full, "\xff" + full},
	{full + "\x00", "\xff" + full + "\x01\x01"},
	{full + "y", "\xff" + full + "\x02y"},
	{full + full, "\xff" + full + "\xff" + full},
}

func TestEncode(t *testing.T) {
	for _, tc := range testCases {
		assert.Equal(t, tc.encoded, string(bytewise.Encode([]byte(tc.decoded))))
	}
}

func TestDecode(t *testing.T) {
	for _, tc := range testCases {
		decoded, err := bytewise.Decode([]byte(tc.encoded + "\x00"))
		require.NoError(t, err)
		assert.Equal(t, tc.decoded, string(decoded))
	}

	t.Run("DelimiterOnly", func(t *testing.T) {
		decoded, err := bytewise.Decode([]byte{0x00})
		require.NoError(t, err)
		assert.Empty(t, decoded)
	})

	t.Run("TrailingEmptyRunAfterOverflowBlock", func(t *testing.T) {
		decoded, err := bytewise.Decode([]byte("\xff" + full + "\x01\x00"))
		require.NoError(t, err)
		assert.Equal(t, full, string(decoded))
	})

	failures := []struct {
		frame string
		err   *cobs.DecodeError
	}{
		{"", &cobs.DecodeError{Kind: cobs.InvalidFrameForConvention, Offset: 0}},
		{"\x04abc", &cobs.DecodeError{Kind: cobs.InvalidFrameForConvention, Offset: 4}},
		{"\x05ab", &cobs.DecodeError{Kind: cobs.TruncatedRun, Offset: 0}},
		{"\x05ab\x00", &cobs.DecodeError{Kind: cobs.UnexpectedReservedByte, Offset: 3}},
		{"\x02a\x00\x02b\x00", &cobs.DecodeError{Kind: cobs.UnexpectedReservedByte, Offset: 2}},
		{"\x00\x00", &cobs.DecodeError{Kind: cobs.UnexpectedReservedByte, Offset: 0}},
	}
	for _, tc := range failures {
		decoded, err := bytewise.Decode([]byte(tc.frame))
		assert.Nil(t, decoded)
		assert.Equal(t, tc.err, err, "frame %q", tc.frame)
	}
}

func TestRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		input := rapid.SliceOfN(rapid.SampledFrom([]byte{0x00, 0x01, 0x7f, 0xff}), 0, 1200).Draw(t, "input")
		encoded := bytewise.Encode(input)
		assert.Equal(t, -1, bytes.IndexByte(encoded, 0x00))
		assert.LessOrEqual(t, len(encoded), cobs.MaxEncodedLen(len(input)))

		decoded, err := bytewise.Decode(append(encoded, 0x00))
		require.NoError(t, err)
		assert.True(t, bytes.Equal(input, decoded))
	})
}
