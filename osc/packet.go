package osc

import (
	"fmt"
)

const (
	// MaxPacketSize is the fixed capacity of a Packet, sized to the largest
	// payload of a single UDP datagram over IPv4.
	MaxPacketSize = 65507

	// DefaultMaxBundleDepth bounds bundle nesting during ProcessMessages
	// when Packet.MaxDepth is zero. Crafted input can otherwise nest bundles
	// arbitrarily deep and exhaust the stack.
	DefaultMaxBundleDepth = 16
)

// MessageHandler observes one decoded message together with the time tag of
// its nearest enclosing bundle. timetag is nil for a message that is not
// inside any bundle. Both arguments are valid only for the duration of the
// call and must not be retained.
type MessageHandler func(timetag *Timetag, msg *Message)

// Packet is the unit of OSC transmission: a fixed-capacity buffer known to
// hold exactly one OSC message or one OSC bundle, plus the handler its
// messages are delivered to.
//
// The zero value is an empty packet ready for use. Packets are not safe for
// concurrent use; confine each one to a single goroutine.
type Packet struct {
	// MaxDepth bounds bundle nesting during ProcessMessages. Zero means
	// DefaultMaxBundleDepth.
	MaxDepth int

	// Codec supplies the message and bundle decoders used by
	// ProcessMessages. Nil means the built-in OSC 1.0 wire codec.
	Codec Codec

	contents [MaxPacketSize]byte
	size     int
	handler  MessageHandler
}

// Init resets the packet to empty and clears the registered handler.
func (p *Packet) Init() {
	p.size = 0
	p.handler = nil
}

// InitFromContents fills the packet by encoding an already-built message or
// bundle into it, typically for transmission. Anything else, including a nil
// value, fails with ErrInvalidContents. On any failure the packet is left
// empty.
func (p *Packet) InitFromContents(contents Contents) error {
	p.Init()

	switch t := contents.(type) {
	case *Message:
		if t == nil {
			return fmt.Errorf("InitFromContents: %w", ErrInvalidContents)
		}
	case *Bundle:
		if t == nil {
			return fmt.Errorf("InitFromContents: %w", ErrInvalidContents)
		}
	default:
		return fmt.Errorf("InitFromContents: %w", ErrInvalidContents)
	}

	b, err := contents.MarshalBinary()
	if err != nil {
		return err
	}
	if len(b) > MaxPacketSize {
		return fmt.Errorf("InitFromContents: encoded to %d bytes: %w", len(b), ErrPacketSizeTooLarge)
	}

	p.size = copy(p.contents[:], b)
	return nil
}

// InitFromBytes fills the packet with a copy of source, typically received
// bytes. A source longer than MaxPacketSize fails with ErrPacketSizeTooLarge
// and leaves the packet empty; nothing is partially copied.
func (p *Packet) InitFromBytes(source []byte) error {
	p.Init()

	if len(source) > MaxPacketSize {
		return fmt.Errorf("InitFromBytes: %d bytes: %w", len(source), ErrPacketSizeTooLarge)
	}

	p.size = copy(p.contents[:], source)
	return nil
}

// RegisterHandler sets the handler ProcessMessages delivers messages to.
// Every initialisation clears it, so register after the packet is filled.
func (p *Packet) RegisterHandler(handler MessageHandler) {
	p.handler = handler
}

// Bytes returns the packet contents. The slice aliases the packet's buffer
// and is only valid until the next initialisation.
func (p *Packet) Bytes() []byte {
	return p.contents[:p.size]
}

// Size returns the number of bytes the packet holds.
func (p *Packet) Size() int {
	return p.size
}

// ProcessMessages walks the packet and delivers every message found within it
// to the registered handler: depth first, in the order the messages appear in
// the buffer, each with the time tag of its nearest enclosing bundle. The
// handler runs synchronously on the caller's stack, once per message, before
// ProcessMessages returns.
//
// The first failure anywhere in the walk aborts it and is returned unchanged;
// messages delivered before the failure are not retracted.
func (p *Packet) ProcessMessages() error {
	if p.handler == nil {
		return ErrCallbackUndefined
	}
	return p.deconstruct(p.handler, nil, p.contents[:p.size], 0)
}

func (p *Packet) codec() Codec {
	if p.Codec != nil {
		return p.Codec
	}
	return wireCodec{}
}

func (p *Packet) maxDepth() int {
	if p.MaxDepth > 0 {
		return p.MaxDepth
	}
	return DefaultMaxBundleDepth
}

// deconstruct recursively walks one contents span, delivering each message to
// handler with the time tag of its nearest enclosing bundle. timetag is nil
// at the top level; depth counts enclosing bundles. Element spans are always
// strictly smaller than their container, so the recursion terminates.
func (p *Packet) deconstruct(handler MessageHandler, timetag *Timetag, contents []byte, depth int) error {
	if len(contents) == 0 {
		return ErrContentsEmpty
	}

	switch classify(contents) {
	// Contents is an OSC message
	case kindMessage:
		msg, err := p.codec().DecodeMessage(contents)
		if err != nil {
			return err
		}
		handler(timetag, msg)
		return nil

	// Contents is an OSC bundle
	case kindBundle:
		if depth >= p.maxDepth() {
			return ErrNestingTooDeep
		}

		tag, elements, err := p.codec().DecodeBundle(contents)
		if err != nil {
			return err
		}

		for elements.More() {
			el, err := elements.Next()
			if err != nil {
				return err
			}
			// The bundle's own tag shadows the enclosing one.
			if err := p.deconstruct(handler, &tag, el.Contents, depth+1); err != nil {
				return err
			}
		}
		return nil

	default:
		return ErrInvalidContents
	}
}
