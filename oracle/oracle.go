package oracle

import (
	"bytes"
	"fmt"

	"github.com/dcreager/cobs-go/cobs"
)

// Checker is implemented by Oracle and EncodeOracle.
type Checker interface {
	Check(input []byte) Result
}

// Oracle compares two decoders.  Inputs are interpreted under the oracle's
// own convention, and translated into each decoder's convention before it
// sees them.
type Oracle struct {
	convention  cobs.Convention
	left, right side
}

type side struct {
	impl       Implementation
	name       string
	convention cobs.Convention
}

func newSide(impl Implementation) side {
	return side{
		impl:       impl,
		name:       impl.Name(),
		convention: impl.Convention(),
	}
}

// New creates an Oracle that compares left and right on inputs framed under
// convention.
func New(convention cobs.Convention, left, right Implementation) *Oracle {
	return &Oracle{
		convention: convention,
		left:       newSide(left),
		right:      newSide(right),
	}
}

// Convention returns the convention that inputs to Check are framed under.
func (o *Oracle) Convention() cobs.Convention {
	return o.convention
}

// precondition returns why input cannot be a frame under the oracle's
// convention, or the empty string if it can.  Only the trailing delimiter is
// checked here; everything else is up to the decoders.
func (o *Oracle) precondition(input []byte) string {
	if o.convention != cobs.Delimited {
		return ""
	}
	if len(input) == 0 {
		return "empty input has no trailing delimiter"
	}
	if last := input[len(input)-1]; last != cobs.Delimiter {
		return fmt.Sprintf("input ends in 0x%02x instead of a delimiter", last)
	}
	return ""
}

// translate reframes input, which satisfies from's precondition, so that it
// can be handed to a decoder that expects to.  The result never aliases
// input.
func translate(input []byte, from, to cobs.Convention) []byte {
	switch {
	case from == cobs.Delimited && to == cobs.Bare:
		return append([]byte{}, input[:len(input)-1]...)
	case from == cobs.Bare && to == cobs.Delimited:
		translated := make([]byte, len(input), len(input)+1)
		copy(translated, input)
		return append(translated, cobs.Delimiter)
	default:
		return append([]byte{}, input...)
	}
}

func (o *Oracle) run(s side, input []byte) Outcome {
	payload, err := s.impl.Decode(translate(input, o.convention, s.convention))
	if err != nil {
		payload = nil
	}
	return Outcome{Name: s.name, Payload: payload, Err: err}
}

// Check runs both decoders on input and compares what they did.
func (o *Oracle) Check(input []byte) Result {
	result := Result{
		Input: append([]byte{}, input...),
		Left:  Outcome{Name: o.left.name},
		Right: Outcome{Name: o.right.name},
	}
	if reason := o.precondition(input); reason != "" {
		result.Verdict = InvalidInput
		result.Reason = reason
		return result
	}

	result.Left = o.run(o.left, input)
	result.Right = o.run(o.right, input)
	result.Verdict, result.Reason = compareDecoded(result.Left, result.Right)
	return result
}

func compareDecoded(left, right Outcome) (Verdict, string) {
	switch {
	case left.Err == nil && right.Err == nil:
		if !bytes.Equal(left.Payload, right.Payload) {
			return Mismatch, fmt.Sprintf(
				"%s and %s decoded different payloads (%d and %d bytes)",
				left.Name, right.Name, len(left.Payload), len(right.Payload))
		}
		return Match, ""
	case left.Err == nil:
		return Mismatch, fmt.Sprintf("%s accepted the input, but %s rejected it: %v", left.Name, right.Name, right.Err)
	case right.Err == nil:
		return Mismatch, fmt.Sprintf("%s accepted the input, but %s rejected it: %v", right.Name, left.Name, left.Err)
	default:
		// Both rejected it.  The reasons are allowed to differ.
		return Match, ""
	}
}

// EncodeOracle compares two encoders.  Any payload is valid input.
type EncodeOracle struct {
	left, right Encoder
}

// NewEncodeOracle creates an EncodeOracle that compares left and right.
func NewEncodeOracle(left, right Encoder) *EncodeOracle {
	return &EncodeOracle{left: left, right: right}
}

// Check encodes payload with both encoders.  The outputs must be identical,
// must not contain the delimiter, and must decode back to payload.
func (o *EncodeOracle) Check(payload []byte) Result {
	result := Result{
		Input: append([]byte{}, payload...),
		Left:  Outcome{Name: o.left.Name(), Payload: o.left.Encode(append([]byte{}, payload...))},
		Right: Outcome{Name: o.right.Name(), Payload: o.right.Encode(append([]byte{}, payload...))},
	}
	result.Verdict, result.Reason = o.compare(payload, result.Left, result.Right)
	return result
}

func (o *EncodeOracle) compare(payload []byte, left, right Outcome) (Verdict, string) {
	if !bytes.Equal(left.Payload, right.Payload) {
		return Mismatch, fmt.Sprintf("%s and %s produced different encodings", left.Name, right.Name)
	}
	if i := cobs.FindDelimiter(left.Payload); i != -1 {
		return Mismatch, fmt.Sprintf("encoding contains a delimiter at offset %d", i)
	}
	if maxLen := cobs.MaxEncodedLen(len(payload)); len(left.Payload) > maxLen {
		return Mismatch, fmt.Sprintf("encoding is %d bytes, more than the %d byte bound", len(left.Payload), maxLen)
	}
	decoded, err := cobs.DecodeFrame(left.Payload, cobs.Bare)
	if err != nil {
		return Mismatch, fmt.Sprintf("encoding does not decode: %v", err)
	}
	if !bytes.Equal(decoded, payload) {
		return Mismatch, "encoding does not decode back to the payload"
	}
	return Match, ""
}
