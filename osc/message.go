package osc

import (
	"fmt"
)

// Message represents a single OSC message. An OSC message consists of an OSC
// address pattern, a type tag string, and zero or more arguments. The argument
// bytes are carried in Payload exactly as they appear on the wire; decoding
// individual argument values is left to the application.
type Message struct {
	Address  string
	Typetags string
	Payload  []byte
}

// Verify that Message implements the Contents interface.
var _ Contents = (*Message)(nil)

// NewMessage returns a new Message. The address parameter is the OSC address.
func NewMessage(addr string) *Message {
	return &Message{Address: addr, Typetags: ","}
}

// NewMessageFromData returns a new OSC message created from the parsed data.
func NewMessageFromData(data []byte) (*Message, error) {
	msg := &Message{}
	if err := msg.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return msg, nil
}

// Clear clears the OSC address and all arguments.
func (m *Message) Clear() {
	m.Address = ""
	m.Typetags = ","
	m.Payload = m.Payload[:0]
}

// String implements the fmt.Stringer interface.
func (m *Message) String() string {
	if m == nil {
		return ""
	}
	if len(m.Payload) == 0 {
		return fmt.Sprintf("%s %s", m.Address, m.Typetags)
	}
	return fmt.Sprintf("%s %s %x", m.Address, m.Typetags, m.Payload)
}

// MarshalBinary implements the encoding.BinaryMarshaler interface. The byte
// buffer has the following format:
// 1. OSC Address Pattern
// 2. OSC Type Tag String
// 3. OSC Arguments
func (m *Message) MarshalBinary() ([]byte, error) {
	if len(m.Address) == 0 || m.Address[0] != messageDelimiter {
		return nil, fmt.Errorf("MarshalBinary: address %q: %w", m.Address, ErrInvalidContents)
	}

	typetags := m.Typetags
	if typetags == "" {
		typetags = ","
	}
	if typetags[0] != ',' {
		return nil, fmt.Errorf("MarshalBinary: invalid typetag string: %q", typetags)
	}

	if len(m.Payload)%bit32Size != 0 {
		return nil, fmt.Errorf("MarshalBinary: payload isn't padded properly: %d bytes", len(m.Payload))
	}

	b := make([]byte, paddedLength(len(m.Address))+paddedLength(len(typetags))+len(m.Payload))
	n := writePaddedString(m.Address, b)
	n += writePaddedString(typetags, b[n:])
	copy(b[n:], m.Payload)

	return b, nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (m *Message) UnmarshalBinary(data []byte) error {
	if len(data) == 0 {
		return ErrContentsEmpty
	}

	if data[0] != messageDelimiter {
		return fmt.Errorf("UnmarshalBinary: data is not a valid OSC message: %w", ErrInvalidContents)
	}

	if (len(data) % bit32Size) != 0 {
		return fmt.Errorf("UnmarshalBinary: data isn't padded properly")
	}

	// First, read the OSC address
	addr, n, err := parsePaddedString(data)
	if err != nil {
		return fmt.Errorf("UnmarshalBinary: %w", err)
	}
	data = data[n:]

	// Then the type tag string
	typetags := ","
	if len(data) > 0 {
		typetags, n, err = parsePaddedString(data)
		if err != nil {
			return fmt.Errorf("UnmarshalBinary: %w", err)
		}
		if len(typetags) == 0 || typetags[0] != ',' {
			return fmt.Errorf("UnmarshalBinary: unsupported typetag string: %q", typetags)
		}
		data = data[n:]
	}

	// Whatever remains is the argument payload, kept as raw bytes.
	m.Address = addr
	m.Typetags = typetags
	m.Payload = append(m.Payload[:0], data...)

	return nil
}
