// Package ws provides the WebSocket transport of the chat client using
// gobwas/ws. Each PDU travels as one binary message.
package ws

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"time"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"

	"github.com/omochice/chat-listener/pkg/protocol"
)

// closeTimeout bounds the write of the close frame.
const closeTimeout = time.Second

// Conn adapts a client-side WebSocket net.Conn to the listener's
// Connection and the client's Sender interfaces.
type Conn struct {
	conn      net.Conn
	r         io.Reader
	writeMu   sync.Mutex
	closeOnce sync.Once
	closeErr  error
}


// NewConn wraps an established WebSocket connection. br holds data the
// server sent right after the handshake and may be nil.
func NewConn(conn net.Conn, br *bufio.Reader) *Conn {
	var r io.Reader = conn
	if br != nil {
		r = br
	}
	return &Conn{
		conn: conn,
		r:    r,
	}
}

// Dial performs the WebSocket handshake with the server at url
// (ws://host:port/path).
func Dial(ctx context.Context, url string) (*Conn, error) {
	conn, br, _, err := ws.Dial(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}
	return NewConn(conn, br), nil
}

// Receive reads and decodes the next binary message. A close frame from
// the server is reported as an error wrapping io.EOF. Cancelling ctx
// interrupts a blocked read and returns ctx.Err().
func (c *Conn) Receive(ctx context.Context) (*protocol.ChatPDU, error) {
	stop := context.AfterFunc(ctx, func() {
		_ = c.conn.SetReadDeadline(time.Now())
	})
	defer stop()

	data, err := c.readBinary()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		var closed wsutil.ClosedError
		if errors.As(err, &closed) {
			return nil, fmt.Errorf("server closed connection (%d %s): %w", closed.Code, closed.Reason, io.EOF)
		}
		return nil, fmt.Errorf("failed to read message: %w", err)
	}

	var pdu protocol.ChatPDU
	if err := pdu.Decode(data); err != nil {
		return nil, err
	}
	return &pdu, nil
}

// readBinary returns the payload of the next binary message. Control
// frames are answered in between; text messages are skipped.
func (c *Conn) readBinary() ([]byte, error) {
	rd := wsutil.Reader{
		Source:         c.r,
		State:          ws.StateClientSide,
		CheckUTF8:      true,
		OnIntermediate: c.handleControl,
	}
	for {
		hdr, err := rd.NextFrame()
		if err != nil {
			return nil, err
		}
		if hdr.OpCode.IsControl() {
			if err := c.handleControl(hdr, &rd); err != nil {
				return nil, err
			}
			continue
		}
		if hdr.OpCode&ws.OpBinary == 0 {
			if err := rd.Discard(); err != nil {
				return nil, err
			}
			continue
		}
		return io.ReadAll(&rd)
	}
}

// handleControl replies to ping and close frames. Replies share writeMu
// with Send so they never split a data frame.
func (c *Conn) handleControl(hdr ws.Header, r io.Reader) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return wsutil.ControlFrameHandler(c.conn, ws.StateClientSide)(hdr, r)
}

// Send encodes pdu and writes it as one binary message.
func (c *Conn) Send(ctx context.Context, pdu *protocol.ChatPDU) error {
	data, err := pdu.Encode()
	if err != nil {
		return err
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if deadline, ok := ctx.Deadline(); ok {
		_ = c.conn.SetWriteDeadline(deadline)
		defer c.conn.SetWriteDeadline(time.Time{})
	}
	// One buffered frame, one write.
	w := wsutil.NewWriterBufferSize(c.conn, ws.StateClientSide, ws.OpBinary, len(data)+ws.MaxHeaderSize)
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to send pdu: %w", err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to send pdu: %w", err)
	}
	return nil
}

// Close sends a close frame and closes the connection. Subsequent calls
// return the first result.
func (c *Conn) Close() error {
	c.closeOnce.Do(func() {
		c.writeMu.Lock()
		_ = c.conn.SetWriteDeadline(time.Now().Add(closeTimeout))
		_ = wsutil.WriteClientMessage(c.conn, ws.OpClose, ws.NewCloseFrameBody(ws.StatusNormalClosure, ""))
		c.writeMu.Unlock()
		c.closeErr = c.conn.Close()
	})
	return c.closeErr
}

// RemoteAddr returns the server address for logging.
func (c *Conn) RemoteAddr() string {
	return c.conn.RemoteAddr().String()
}
