package osc

import (
	"bytes"
	"fmt"
	"io"
)

////
// De/Encoding functions
////

const (
	bit32Size = 4
	bit64Size = 8
)

// parsePaddedString reads a padded string from the given slice and returns the
// string and the number of bytes consumed, padding included.
func parsePaddedString(data []byte) (string, int, error) {
	pos := bytes.IndexByte(data, 0)
	if pos == -1 {
		return "", 0, fmt.Errorf("parsePaddedString: %w", io.EOF)
	}

	n := pos + 1 + padBytesNeeded(pos+1)
	if n > len(data) {
		return "", 0, fmt.Errorf("parsePaddedString: %w", io.ErrUnexpectedEOF)
	}

	return string(data[:pos]), n, nil
}

// writePaddedString writes a string with padding bytes to the buffer.
// Returns the number of written bytes. b must already hold at least
// paddedLength(len(str)) zeroed bytes.
func writePaddedString(str string, b []byte) int {
	n := copy(b, str)
	n++

	return n + padBytesNeeded(n)
}

// paddedLength returns the encoded size of a string of length n: the string,
// its terminating null, and padding up to the next 4 byte boundary.
func paddedLength(n int) int {
	n++
	return n + padBytesNeeded(n)
}

// padBytesNeeded determines how many bytes are needed to fill up to the next 4
// byte length.
func padBytesNeeded(elementLen int) int {
	return (4 - (elementLen % 4)) % 4
}
