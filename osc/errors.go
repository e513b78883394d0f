package osc

import "errors"

// Errors reported by packet initialisation and deconstruction. Failures from
// message or bundle decoding surface as their own error values; everything
// here is comparable with errors.Is.
var (
	// ErrInvalidContents reports contents that are neither an OSC message nor
	// an OSC bundle.
	ErrInvalidContents = errors.New("osc: invalid or uninitialised contents")

	// ErrPacketSizeTooLarge reports a source that exceeds MaxPacketSize.
	ErrPacketSizeTooLarge = errors.New("osc: size exceeds maximum packet size")

	// ErrCallbackUndefined reports a call to ProcessMessages with no handler
	// registered.
	ErrCallbackUndefined = errors.New("osc: message handler undefined")

	// ErrContentsEmpty reports a zero-length contents span.
	ErrContentsEmpty = errors.New("osc: contents empty")

	// ErrNestingTooDeep reports bundle nesting beyond the packet's depth
	// limit.
	ErrNestingTooDeep = errors.New("osc: bundle nesting too deep")
)
