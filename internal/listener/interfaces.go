package listener

//go:generate mockgen -source=interfaces.go -destination=../mock/listener_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/omochice/chat-listener/pkg/protocol"
)

// Connection is the receive side of a server connection.
type Connection interface {
	// Receive blocks until the next PDU arrives. It returns an error when the
	// peer is gone, the stream is corrupt, or the connection was closed.
	Receive(ctx context.Context) (*protocol.ChatPDU, error)

	// Close closes the connection. Calling it more than once is allowed.
	Close() error
}

// Statistics are the session counters reported when a logout completes.
type Statistics struct {
	Events               uint64
	Confirms             uint64
	LostConfirms         uint64
	Retries              uint64
	ReceivedChatMessages uint64
}

// Presentation is the user-facing sink of the listener. Calls are
// fire-and-forget; implementations must not block for long.
type Presentation interface {
	ReportError(source, message string, code protocol.ErrorCode)
	LoginComplete()
	LogoutComplete()
	DisplayMessage(fromUser, text string)
	// SetLock locks or releases the "one outstanding message" send lock.
	SetLock(locked bool)
	// RecordServerTime records the server processing time of the last
	// confirmed chat message.
	RecordServerTime(d time.Duration)
	SessionStatistics(stats Statistics)
	UpdateUserList(users []string) error
}
