package osc

// MessageCodec decodes one contents span into a Message.
type MessageCodec interface {
	DecodeMessage(data []byte) (*Message, error)
}

// BundleCodec decodes one contents span into the bundle's time tag and an
// iterator over its elements. The iterator must eventually exhaust: every
// successful Next consumes part of the remaining body.
type BundleCodec interface {
	DecodeBundle(data []byte) (Timetag, ElementIterator, error)
}

// ElementIterator walks the elements of one decoded bundle in order.
type ElementIterator interface {
	// More reports whether another element is available.
	More() bool
	// Next returns the next element. An element's declared size never
	// exceeds the bytes remaining in the bundle body; Next fails otherwise.
	Next() (BundleElement, error)
}

// Codec groups the decoders a Packet deconstructs with. The zero Packet uses
// the built-in OSC 1.0 wire codec; substituting a Codec is mainly useful for
// testing and instrumentation.
type Codec interface {
	MessageCodec
	BundleCodec
}

// wireCodec is the built-in Codec implementing the OSC 1.0 byte layout.
type wireCodec struct{}

func (wireCodec) DecodeMessage(data []byte) (*Message, error) {
	return NewMessageFromData(data)
}

func (wireCodec) DecodeBundle(data []byte) (Timetag, ElementIterator, error) {
	return decodeBundle(data)
}
