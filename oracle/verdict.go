package oracle

import (
	"fmt"
)

// Verdict is the outcome of comparing two implementations on one input.
type Verdict int

const (
	// Match means the implementations agree.
	Match Verdict = iota
	// Mismatch means the implementations disagree.  At least one of them
	// has a bug, unless the convention translation itself is wrong.
	Mismatch
	// InvalidInput means the input does not have the shape the oracle's
	// convention requires, so it was never handed to either
	// implementation.  This is not a finding.
	InvalidInput
)

func (v Verdict) String() string {
	switch v {
	case Match:
		return "match"
	case Mismatch:
		return "mismatch"
	case InvalidInput:
		return "invalid_input"
	default:
		return fmt.Sprintf("Verdict(%d)", int(v))
	}
}

// Outcome is what a single implementation did with an input.
type Outcome struct {
	Name    string
	Payload []byte
	Err     error
}

// Result is the full record of one comparison.  Input is a private copy of
// the bytes that were checked, so that a Mismatch can be saved and replayed.
type Result struct {
	Verdict Verdict
	Input   []byte
	Left    Outcome
	Right   Outcome
	Reason  string
}
