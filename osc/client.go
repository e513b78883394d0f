package osc

import (
	"net"
)

// Client enables you to send OSC packets to a specified server.
type Client struct {
	conn *net.UDPConn
	pkt  Packet
}

// Dial creates a new OSC Client with a connection to the specified server.
func Dial(addr string) (*Client, error) {
	a, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, err
	}

	conn, err := net.DialUDP("udp", nil, a)
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn}, nil
}

// Send encodes the given message or bundle into a packet and transmits it.
func (c *Client) Send(contents Contents) error {
	if err := c.pkt.InitFromContents(contents); err != nil {
		return err
	}

	_, err := c.conn.Write(c.pkt.Bytes())
	return err
}

// Close closes the connection to the server.
func (c *Client) Close() error {
	return c.conn.Close()
}
