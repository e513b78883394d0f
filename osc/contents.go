package osc

import "encoding"

// Contents is the interface for Message and Bundle: the two things a Packet
// can hold.
type Contents interface {
	encoding.BinaryMarshaler
}

// First byte of a contents span discriminates its kind.
const (
	messageDelimiter = '/'
	bundleDelimiter  = '#'
)

type contentsKind int

const (
	kindInvalid contentsKind = iota
	kindMessage
	kindBundle
)

// classify reports the kind of a contents span, judged solely by its first
// byte. data must be non-empty.
func classify(data []byte) contentsKind {
	switch data[0] {
	case messageDelimiter:
		return kindMessage
	case bundleDelimiter:
		return kindBundle
	default:
		return kindInvalid
	}
}

// IsMessage returns true if data begins an OSC message.
func IsMessage(data []byte) bool {
	return len(data) > 0 && data[0] == messageDelimiter
}

// IsBundle returns true if data begins an OSC bundle.
func IsBundle(data []byte) bool {
	return len(data) > 0 && data[0] == bundleDelimiter
}
