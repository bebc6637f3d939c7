package oracle

import (
	"bytes"

	"github.com/dcreager/cobs-go/cobs"
	"github.com/dcreager/cobs-go/internal/bytewise"
)

// Implementation is a decoder under test.
type Implementation interface {
	Name() string
	// Convention is the delimiter convention that Decode expects.
	Convention() cobs.Convention
	Decode(frame []byte) ([]byte, error)
}

// Encoder is an encoder under test.  Encode must return the Bare encoding.
type Encoder interface {
	Name() string
	Encode(payload []byte) []byte
}

type blockImplementation struct{}

// Block returns the decoder from package cobs.  It expects Bare frames.
func Block() Implementation {
	return blockImplementation{}
}

func (blockImplementation) Name() string                { return "block" }
func (blockImplementation) Convention() cobs.Convention { return cobs.Bare }

func (blockImplementation) Decode(frame []byte) ([]byte, error) {
	var payload bytes.Buffer
	if err := cobs.Decode(frame, &payload); err != nil {
		return nil, err
	}
	return payload.Bytes(), nil
}

func (blockImplementation) Encode(payload []byte) []byte {
	return cobs.EncodeFrame(payload, cobs.Bare)
}

// BlockEncoder returns the encoder from package cobs.
func BlockEncoder() Encoder {
	return blockImplementation{}
}

type bytewiseImplementation struct{}

// Bytewise returns the byte-at-a-time decoder.  It expects Delimited frames.
func Bytewise() Implementation {
	return bytewiseImplementation{}
}

func (bytewiseImplementation) Name() string                { return "bytewise" }
func (bytewiseImplementation) Convention() cobs.Convention { return cobs.Delimited }

func (bytewiseImplementation) Decode(frame []byte) ([]byte, error) {
	return bytewise.Decode(frame)
}

func (bytewiseImplementation) Encode(payload []byte) []byte {
	return bytewise.Encode(payload)
}

// BytewiseEncoder returns the back-patching encoder.
func BytewiseEncoder() Encoder {
	return bytewiseImplementation{}
}

type inPlaceImplementation struct{}

// InPlace returns cobs.DecodeInPlace.  It expects Bare frames, and
// overwrites the frame it is given.
func InPlace() Implementation {
	return inPlaceImplementation{}
}

func (inPlaceImplementation) Name() string                { return "inplace" }
func (inPlaceImplementation) Convention() cobs.Convention { return cobs.Bare }

func (inPlaceImplementation) Decode(frame []byte) ([]byte, error) {
	return cobs.DecodeInPlace(frame)
}
