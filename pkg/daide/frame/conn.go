package frame

import (
	"context"
	"fmt"
	"net"
	"sync"
)

// Conn is a framed connection to a DAIDE server. It owns one reader and one
// writer goroutine so that blocking socket I/O never stalls the cooperative
// client event loop (spec §5): incoming frames arrive on a channel the loop
// selects over, and outgoing frames are queued through PushOutgoing and
// drained in order by the writer goroutine, mirroring the
// incoming/outgoing MessageQueue pair of the donor's Socket type.
type Conn struct {
	conn net.Conn

	incoming chan Frame
	outgoing chan Frame
	done     chan struct{}

	closeOnce sync.Once
	errMu     sync.Mutex
	err       error
}

// Connect dials address and starts the reader/writer goroutines.
func Connect(ctx context.Context, address string) (*Conn, error) {
	var d net.Dialer
	nc, err := d.DialContext(ctx, "tcp", address)
	if err != nil {
		return nil, fmt.Errorf("frame: connect %s: %w", address, err)
	}
	c := &Conn{
		conn:     nc,
		incoming: make(chan Frame, 16),
		outgoing: make(chan Frame, 16),
		done:     make(chan struct{}),
	}
	go c.readLoop()
	go c.writeLoop()
	return c, nil
}

// Incoming returns the channel of frames read from the server. It is closed
// when the connection ends, after which Err reports the reason.
func (c *Conn) Incoming() <-chan Frame { return c.incoming }

// PushOutgoing enqueues a frame for sending. It returns an error if the
// connection has already been closed.
func (c *Conn) PushOutgoing(f Frame) error {
	select {
	case c.outgoing <- f:
		return nil
	case <-c.done:
		return c.Err()
	}
}

// Err returns the first read or write error the connection recorded, or nil
// if there was none. A server closing the socket leaves io.EOF here, and
// Close usually leaves the closed-connection error its reader then hits.
func (c *Conn) Err() error {
	c.errMu.Lock()
	defer c.errMu.Unlock()
	return c.err
}

// Close shuts down the underlying socket and both goroutines.
func (c *Conn) Close() error {
	var err error
	c.closeOnce.Do(func() {
		err = c.conn.Close()
		close(c.done)
	})
	return err
}

func (c *Conn) setErr(err error) {
	c.errMu.Lock()
	if c.err == nil {
		c.err = err
	}
	c.errMu.Unlock()
}

func (c *Conn) readLoop() {
	defer close(c.incoming)
	for {
		f, err := Decode(c.conn)
		if err != nil {
			c.setErr(err)
			return
		}
		select {
		case c.incoming <- f:
		case <-c.done:
			return
		}
	}
}

func (c *Conn) writeLoop() {
	for {
		select {
		case f := <-c.outgoing:
			if err := f.Encode(c.conn); err != nil {
				c.setErr(err)
				return
			}
		case <-c.done:
			return
		}
	}
}
