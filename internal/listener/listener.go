// Package listener implements the client-side receive path of the chat
// protocol: a loop that receives PDUs from the server connection, checks
// them against the conversation state machine and runs the matching
// handler.
package listener

import (
	"context"
	"errors"
	"io"
	"net"
	"sync"
	"sync/atomic"

	"github.com/omochice/chat-listener/internal/logger"
	"github.com/omochice/chat-listener/internal/session"
	"github.com/omochice/chat-listener/pkg/protocol"
)

const defaultLabel = "Listener"

// Listener consumes the PDUs of one chat session. It runs once: after Run
// returns the listener is terminated and the connection is closed.
type Listener struct {
	conn  Connection
	state *session.State
	ui    Presentation
	base  *logger.Logger
	log   *logger.Logger

	started   atomic.Bool
	finished  atomic.Bool
	label     atomic.Pointer[string]
	closeOnce sync.Once
	done      chan struct{}
}

// New creates a listener for the session described by state. A nil log
// discards all diagnostics.
func New(conn Connection, state *session.State, ui Presentation, log *logger.Logger) *Listener {
	if log == nil {
		log = logger.Nop()
	}
	l := &Listener{
		conn:  conn,
		state: state,
		ui:    ui,
		base:  log,
		done:  make(chan struct{}),
	}
	l.setLabel(defaultLabel)
	return l
}

// Run receives and dispatches PDUs until a logout completes, the login is
// rejected or a receive fails. The connection is closed before Run
// returns. ctx is handed to Connection.Receive; cancelling it ends the loop
// only through the resulting receive failure.
func (l *Listener) Run(ctx context.Context) error {
	if !l.started.CompareAndSwap(false, true) {
		return ErrAlreadyStarted
	}
	defer close(l.done)
	defer l.closeConn()

	l.log.Debug().Msg("listener started")

	for !l.finished.Load() {
		pdu, err := l.conn.Receive(ctx)
		if err != nil {
			l.logReceiveError(err)
			l.finish()
			continue
		}
		if pdu != nil {
			l.dispatch(pdu)
		}
	}

	l.log.Debug().
		Str("user", l.state.UserName()).
		Stringer("status", l.state.Status()).
		Msg("listener terminated")
	return nil
}

// Done returns a channel that is closed when Run has returned.
func (l *Listener) Done() <-chan struct{} {
	return l.done
}

// Finished reports whether the loop has been told to terminate.
func (l *Listener) Finished() bool {
	return l.finished.Load()
}

// Label returns the diagnostic name of the listener. It changes to
// "Listener-<user>" once the login is confirmed.
func (l *Listener) Label() string {
	return *l.label.Load()
}

func (l *Listener) dispatch(pdu *protocol.ChatPDU) {
	defer func() {
		if r := recover(); r != nil {
			l.log.Error().
				Interface("panic", r).
				Stringer("kind", pdu.Kind).
				Msg("pdu handler panicked")
		}
	}()

	status := l.state.Status()
	handle, ok := lookup(status, pdu.Kind)
	if !ok {
		l.log.Debug().
			Stringer("status", status).
			Stringer("kind", pdu.Kind).
			Msg("pdu discarded in current status")
		return
	}

	l.log.Debug().
		Stringer("status", status).
		Stringer("kind", pdu.Kind).
		Msg("pdu received")
	handle(l, pdu)
}

func (l *Listener) finish() {
	l.finished.Store(true)
}

// closeConn closes the connection at most once; a close error is only logged.
func (l *Listener) closeConn() {
	l.closeOnce.Do(func() {
		if err := l.conn.Close(); err != nil {
			l.log.Warn().Err(err).Msg("failed to close connection")
		}
	})
}

func (l *Listener) setLabel(label string) {
	l.label.Store(&label)
	l.log = l.base.WithLabel(label)
}

func (l *Listener) logReceiveError(err error) {
	if errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) || errors.Is(err, context.Canceled) {
		l.log.Debug().Err(err).Msg("connection closed, stopping listener")
		return
	}
	l.log.Warn().Err(err).Msg("failed to receive pdu, stopping listener")
}
