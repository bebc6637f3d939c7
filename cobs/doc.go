// Package cobs provides a Go implementation of Consistent Overhead Byte
// Stuffing (COBS).  COBS removes every `0x00` byte from an arbitrary binary
// payload by replacing each run of non-zero bytes with a one-byte length
// prefix, so that `0x00` can be used as an unambiguous frame delimiter.
//
// Encoding never fails, and adds at most one byte of overhead for every 254
// bytes of payload (and one byte for an empty payload).  Whether an encoded
// frame carries a trailing `0x00` delimiter is not part of the byte stream
// itself; callers pick a Convention and pass it to EncodeFrame and
// DecodeFrame explicitly.
//
// A lone delimiter is a valid Delimited frame for DecodeFrame, and decodes
// to the empty payload.  Scanner, which splits a buffer of many frames,
// treats the same zero-length span between two delimiters as padding and
// skips it; Encode never produces it, since the empty payload encodes to
// a single 0x01 byte.
//
// DecodeInPlace decodes without a second buffer, overwriting its input.
package cobs
