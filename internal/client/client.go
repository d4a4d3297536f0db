// Package client implements the send side of the chat client. It owns the
// session state and the listener goroutine of one connection.
package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/omochice/chat-listener/internal/listener"
	"github.com/omochice/chat-listener/internal/logger"
	"github.com/omochice/chat-listener/internal/session"
	"github.com/omochice/chat-listener/pkg/protocol"
)

var (
	// ErrAlreadyLoggedIn is returned by Login when a session exists.
	ErrAlreadyLoggedIn = errors.New("already logged in")
	// ErrNotLoggedIn is returned when no session has been started.
	ErrNotLoggedIn = errors.New("not logged in")
	// ErrNotRegistered is returned by SendMessage outside the registered status.
	ErrNotRegistered = errors.New("not registered")
	// ErrClosed is returned by Login once the transport has been closed.
	ErrClosed = errors.New("client closed")
)

// Sender writes PDUs to the server.
type Sender interface {
	Send(ctx context.Context, pdu *protocol.ChatPDU) error
}

// Transport is a server connection usable for both directions.
type Transport interface {
	listener.Connection
	Sender
}

// Client is a chat client bound to one transport.
type Client struct {
	transport Transport
	userName  string
	ui        listener.Presentation
	log       *logger.Logger

	mu       sync.RWMutex
	state    *session.State
	listener *listener.Listener
	wg       sync.WaitGroup
	closed   atomic.Bool
}

// New creates a client for userName. A nil log discards all diagnostics.
func New(transport Transport, userName string, ui listener.Presentation, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		transport: transport,
		userName:  userName,
		ui:        ui,
		log:       log,
	}
}

// Login starts the session: it creates the session state, starts the
// listener and sends the login request. The listener outlives ctx.
// A failed send ends the session and closes the transport.
func (c *Client) Login(ctx context.Context) error {
	if c.closed.Load() {
		return ErrClosed
	}
	c.mu.Lock()
	if c.state != nil {
		c.mu.Unlock()
		return ErrAlreadyLoggedIn
	}
	state := session.New(c.userName)
	l := listener.New(c.transport, state, c.ui, c.log.GetChildLogger())
	c.state = state
	c.listener = l
	c.mu.Unlock()

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		if err := l.Run(context.WithoutCancel(ctx)); err != nil {
			c.log.Error().Err(err).Msg("listener failed to start")
		}
	}()

	err := c.transport.Send(ctx, &protocol.ChatPDU{
		Kind:     protocol.KindLoginRequest,
		UserName: c.userName,
	})
	if err != nil {
		c.abort(state)
		return fmt.Errorf("failed to send login request: %w", err)
	}

	c.log.Debug().Str("user", c.userName).Msg("login request sent")
	return nil
}

// SendMessage sends a chat message and locks further input until the
// server confirms it.
func (c *Client) SendMessage(ctx context.Context, text string) error {
	state := c.Session()
	if state == nil || state.Status() != session.Registered {
		return ErrNotRegistered
	}

	seq := state.NextMessage()
	c.ui.SetLock(true)

	err := c.transport.Send(ctx, &protocol.ChatPDU{
		Kind:           protocol.KindChatMessageRequest,
		UserName:       c.userName,
		Message:        text,
		SequenceNumber: seq,
	})
	if err != nil {
		c.ui.SetLock(false)
		return fmt.Errorf("failed to send chat message: %w", err)
	}
	return nil
}

// Logout asks the server to end the session. The listener terminates once
// the server confirms. A failed send ends the session and closes the
// transport.
func (c *Client) Logout(ctx context.Context) error {
	state := c.Session()
	if state == nil {
		return ErrNotLoggedIn
	}
	if err := state.Transition(session.Unregistering); err != nil {
		return fmt.Errorf("failed to start logout: %w", err)
	}

	err := c.transport.Send(ctx, &protocol.ChatPDU{
		Kind:     protocol.KindLogoutRequest,
		UserName: c.userName,
	})
	if err != nil {
		c.abort(state)
		return fmt.Errorf("failed to send logout request: %w", err)
	}
	return nil
}

// Session returns the current session state or nil before Login.
func (c *Client) Session() *session.State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Wait blocks until the listener has terminated or ctx is done.
func (c *Client) Wait(ctx context.Context) error {
	c.mu.RLock()
	l := c.listener
	c.mu.RUnlock()
	if l == nil {
		return ErrNotLoggedIn
	}

	select {
	case <-l.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close closes the transport and waits for the listener to stop.
func (c *Client) Close() error {
	c.closed.Store(true)
	err := c.transport.Close()
	c.wg.Wait()
	return err
}

// abort ends a session whose request could not be sent. Closing the
// transport stops the listener.
func (c *Client) abort(state *session.State) {
	if err := state.Transition(session.Unregistered); err != nil {
		c.log.Warn().Err(err).Msg("status not changed")
	}
	c.closed.Store(true)
	if err := c.transport.Close(); err != nil {
		c.log.Warn().Err(err).Msg("failed to close transport")
	}
}
