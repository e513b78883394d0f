package osc

import (
	"encoding/binary"
	"fmt"
	"time"
)

const (
	bundleTagString = "#bundle"

	// "#bundle" with its terminating null, followed by the 8 byte time tag.
	bundleHeaderSize = 8 + bit64Size
)

// Bundle represents an OSC bundle. It consists of the OSC-string "#bundle"
// followed by an OSC Time Tag, followed by zero or more OSC bundle/message
// elements. The OSC-timetag is a 64-bit fixed point time tag. See
// http://opensoundcontrol.org/spec-1_0.html for more information.
type Bundle struct {
	Timetag  Timetag
	Elements []Contents
}

// Verify that Bundle implements the Contents interface.
var _ Contents = (*Bundle)(nil)

// NewBundle returns an OSC Bundle with the "immediately" time tag.
func NewBundle() *Bundle {
	return &Bundle{Timetag: TimetagImmediate}
}

// NewBundleWithTime returns an OSC Bundle tagged with the given time.
func NewBundleWithTime(t time.Time) *Bundle {
	return &Bundle{Timetag: NewTimetagFromTime(t)}
}

// Append appends an OSC bundle or OSC message to the bundle.
func (b *Bundle) Append(c Contents) error {
	switch t := c.(type) {
	default:
		return fmt.Errorf("Append: only Bundle and Message are supported: %w", ErrInvalidContents)

	case *Bundle, *Message:
		b.Elements = append(b.Elements, t)
	}

	return nil
}

// MarshalBinary serializes the OSC bundle to a byte array with the following
// format:
// 1. Bundle string: '#bundle'
// 2. OSC timetag
// 3. Length of first OSC bundle element
// 4. First bundle element
// 5. Length of n OSC bundle element
// 6. n bundle element
func (b *Bundle) MarshalBinary() ([]byte, error) {
	buf := make([]byte, bundleHeaderSize)
	writePaddedString(bundleTagString, buf)
	binary.BigEndian.PutUint64(buf[bundleHeaderSize-bit64Size:], uint64(b.Timetag))

	for _, el := range b.Elements {
		bb, err := el.MarshalBinary()
		if err != nil {
			return nil, err
		}

		// Write the size of the element
		var size [bit32Size]byte
		binary.BigEndian.PutUint32(size[:], uint32(len(bb)))
		buf = append(buf, size[:]...)

		// Append the element
		buf = append(buf, bb...)
	}

	return buf, nil
}

// BundleElement is one size-prefixed entry of a decoded bundle body: the
// declared size and a view of that many contents bytes. It is only valid
// while the bytes it points into are.
type BundleElement struct {
	Size     int32
	Contents []byte
}

// bundleElements iterates the size-prefixed elements of a decoded bundle
// body in order. Next always either consumes part of the body or fails, so
// iteration terminates.
type bundleElements struct {
	body []byte
}

// More reports whether another element is available.
func (it *bundleElements) More() bool {
	return len(it.body) > 0
}

// Next returns the next bundle element.
func (it *bundleElements) Next() (BundleElement, error) {
	if len(it.body) < bit32Size {
		return BundleElement{}, fmt.Errorf("bundle element: truncated size prefix: %d bytes left", len(it.body))
	}

	size := int32(binary.BigEndian.Uint32(it.body[:bit32Size]))
	rest := it.body[bit32Size:]
	if size < 0 || int(size) > len(rest) {
		return BundleElement{}, fmt.Errorf("bundle element: invalid length: %d", size)
	}

	it.body = rest[size:]
	return BundleElement{Size: size, Contents: rest[:size]}, nil
}

// decodeBundle reads a bundle's fixed header and returns its time tag plus an
// iterator over the elements of its body. Element contents are views into
// data, not copies.
func decodeBundle(data []byte) (Timetag, *bundleElements, error) {
	if (len(data) % bit32Size) != 0 {
		return 0, nil, fmt.Errorf("decodeBundle: data isn't padded properly")
	}

	if len(data) < bundleHeaderSize {
		return 0, nil, fmt.Errorf("decodeBundle: bundle is too short: %d bytes", len(data))
	}

	// Read the '#bundle' OSC string
	startTag, n, err := parsePaddedString(data)
	if err != nil {
		return 0, nil, err
	}
	if startTag != bundleTagString {
		return 0, nil, fmt.Errorf("decodeBundle: invalid bundle start tag: %q", startTag)
	}
	data = data[n:]

	// Read the timetag
	timetag := Timetag(binary.BigEndian.Uint64(data[:bit64Size]))
	data = data[bit64Size:]

	return timetag, &bundleElements{body: data}, nil
}
