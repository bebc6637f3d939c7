package cobs

// DecodeInPlace decodes a frame that does not carry a trailing delimiter,
// writing the payload over the start of buf, and returns buf[:n].  No
// payload byte is written before the encoded bytes it comes from have been
// read, since each run gives up its prefix byte.  Errors are the same as
// Decode's; on error the contents of buf are unspecified.
func DecodeInPlace(buf []byte) ([]byte, error) {
	if i := FindDelimiter(buf); i != -1 {
		return nil, &DecodeError{Kind: UnexpectedReservedByte, Offset: i}
	}

	read, write := 0, 0
	for read < len(buf) {
		prefix := int(buf[read])
		runLength := prefix - 1
		start := read + 1
		if len(buf)-start < runLength {
			return nil, &DecodeError{Kind: TruncatedRun, Offset: read}
		}
		write += copy(buf[write:], buf[start:start+runLength])
		read = start + runLength

		if prefix != overflowPrefix && read < len(buf) {
			buf[write] = Delimiter
			write++
		}
	}
	return buf[:write], nil
}
