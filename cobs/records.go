package cobs

import (
	"bytes"
)

// RecordBuilder collects several payloads in one backing buffer and frames
// them together.  Write payload bytes through the embedded bytes.Buffer,
// close each payload with FinishRecord, and call Encode to emit one
// Delimited frame per closed payload, in order.
type RecordBuilder struct {
	bytes.Buffer
	start   int
	records []span
}

type span struct {
	start, end int
}

// FinishRecord closes the payload made of everything written since the
// previous FinishRecord.  Encoding is deferred to Encode.
func (rb *RecordBuilder) FinishRecord() {
	end := rb.Len()
	rb.records = append(rb.records, span{rb.start, end})
	rb.start = end
}

// Reset discards all payloads, finished or not.
func (rb *RecordBuilder) Reset() {
	rb.Buffer.Reset()
	rb.start = 0
	rb.records = rb.records[:0]
}

// Records returns the number of finished payloads.
func (rb *RecordBuilder) Records() int {
	return len(rb.records)
}

// Encode appends one Delimited frame per closed payload to dest.  Bytes
// written after the last FinishRecord are left out.
func (rb *RecordBuilder) Encode(dest *bytes.Buffer) {
	content := rb.Bytes()
	for _, r := range rb.records {
		Encode(content[r.start:r.end], dest)
		EncodeDelimiter(dest)
	}
}
