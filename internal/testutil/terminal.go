// Package testutil provides test helpers for driving interactive sessions.
package testutil

import (
	"fmt"
	"net"
	"strings"
	"testing"
	"time"
)

// Terminal is the player's end of an in-memory connection to a session.
type Terminal struct {
	conn net.Conn
	t    *testing.T
}

// NewTerminal creates a connected pair and returns the player's Terminal
// and the session's end of the connection. Both ends are closed on cleanup.
//
// Postcondition: Writes on the returned conn are readable from the Terminal
// and vice versa.
func NewTerminal(t *testing.T) (*Terminal, net.Conn) {
	t.Helper()
	client, server := net.Pipe()
	t.Cleanup(func() {
		client.Close()
		server.Close()
	})
	return &Terminal{conn: client, t: t}, server
}

// ReadUntil reads data until the specified substring is found or timeout occurs.
// It returns all data read up to and including the match.
//
// Precondition: substr must be non-empty.
// Postcondition: Returns the accumulated output containing substr, or fails on timeout.
func (c *Terminal) ReadUntil(substr string, timeout time.Duration) string {
	c.t.Helper()
	_ = c.conn.SetReadDeadline(time.Now().Add(timeout))

	var buf strings.Builder
	tmp := make([]byte, 1024)
	for {
		n, err := c.conn.Read(tmp)
		if n > 0 {
			buf.Write(tmp[:n])
			if strings.Contains(buf.String(), substr) {
				return buf.String()
			}
		}
		if err != nil {
			c.t.Fatalf("reading until %q: got %q, error: %v", substr, buf.String(), err)
		}
	}
}

// Send writes a line of text to the session, appending \r\n.
//
// Precondition: text should not contain trailing newline characters.
// Postcondition: text + \r\n is written to the connection.
func (c *Terminal) Send(text string) {
	c.t.Helper()
	_ = c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	if _, err := fmt.Fprintf(c.conn, "%s\r\n", text); err != nil {
		c.t.Fatalf("sending %q: %v", text, err)
	}
}

// Close hangs up, which the session sees as end of input.
func (c *Terminal) Close() {
	c.conn.Close()
}
