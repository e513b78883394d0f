package osc

import (
	"net"
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var bufPool = sync.Pool{
	New: func() interface{} {
		b := make([]byte, MaxPacketSize)
		return &b
	},
}

// Server receives OSC packets over UDP and delivers every message they
// contain to Handler.
type Server struct {
	Addr        string
	Handler     MessageHandler
	ReadTimeout time.Duration

	// MaxDepth bounds bundle nesting in received packets. Zero means
	// DefaultMaxBundleDepth.
	MaxDepth int

	// Logger reports malformed datagrams and handler panics. The zero value
	// discards everything.
	Logger zerolog.Logger
}

// ListenAndServe listens for incoming OSC packets on Addr and serves them.
func (s *Server) ListenAndServe() error {
	if s.Handler == nil {
		return ErrCallbackUndefined
	}

	ln, err := net.ListenPacket("udp", s.Addr)
	if err != nil {
		return err
	}
	defer ln.Close()

	return s.Serve(ln)
}

// Serve retrieves incoming OSC packets from the given connection and delivers
// their messages to Handler. It returns on the first non-temporary read
// error. Malformed packets are logged and dropped, not fatal.
func (s *Server) Serve(c net.PacketConn) error {
	if s.Handler == nil {
		return ErrCallbackUndefined
	}

	buf := bufPool.Get().(*[]byte)
	defer bufPool.Put(buf)

	pkt := &Packet{MaxDepth: s.MaxDepth}

	var tempDelay time.Duration
	for {
		if s.ReadTimeout != 0 {
			if err := c.SetReadDeadline(time.Now().Add(s.ReadTimeout)); err != nil {
				return err
			}
		}

		n, addr, err := c.ReadFrom(*buf)
		if err != nil {
			if ne, ok := err.(net.Error); ok && ne.Temporary() {
				if tempDelay == 0 {
					tempDelay = 5 * time.Millisecond
				} else {
					tempDelay *= 2
				}
				if max := 1 * time.Second; tempDelay > max {
					tempDelay = max
				}
				time.Sleep(tempDelay)
				continue
			}
			return err
		}
		tempDelay = 0

		s.serve(pkt, (*buf)[:n], addr)
	}
}

// serve runs one received datagram through the packet deconstructor.
func (s *Server) serve(pkt *Packet, datagram []byte, addr net.Addr) {
	defer func() {
		if v := recover(); v != nil {
			stack := make([]byte, 64<<10)
			stack = stack[:runtime.Stack(stack, false)]
			s.Logger.Error().
				Str("from", addr.String()).
				Interface("panic", v).
				Bytes("stack", stack).
				Msg("message handler panicked")
		}
	}()

	if err := pkt.InitFromBytes(datagram); err != nil {
		s.Logger.Warn().Err(err).Str("from", addr.String()).Int("size", len(datagram)).
			Msg("dropping oversized packet")
		return
	}
	pkt.RegisterHandler(s.Handler)

	if err := pkt.ProcessMessages(); err != nil {
		s.Logger.Warn().Err(err).Str("from", addr.String()).Int("size", len(datagram)).
			Msg("dropping malformed packet")
	}
}
