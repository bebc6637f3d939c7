// Package oracle checks two independently written COBS implementations
// against each other.
//
// A decode Oracle takes one arbitrary input per trial, checks that it has
// the shape its delimiter convention requires, translates it into each
// implementation's own convention, and compares the outcomes.  The
// implementations must agree on whether the input decodes, and on the
// payload when it does.  They may disagree on why a frame is malformed.
//
// Oracles hold no mutable state, so a single Oracle may be shared between
// any number of goroutines.
package oracle
