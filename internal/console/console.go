// Package console renders listener callbacks as plain text lines.
package console

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/omochice/chat-listener/internal/listener"
	"github.com/omochice/chat-listener/pkg/protocol"
)

var _ listener.Presentation = (*Console)(nil)

// Console is a listener.Presentation writing to an io.Writer. It is safe
// for concurrent use by the listener and the input loop.
type Console struct {
	mu  sync.Mutex
	out io.Writer

	locked     atomic.Bool
	serverTime atomic.Int64
	users      []string
}

// New creates a Console writing to out.
func New(out io.Writer) *Console {
	return &Console{out: out}
}

func (c *Console) printf(format string, args ...any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := fmt.Fprintf(c.out, format+"\n", args...)
	return err
}

// ReportError prints an error reported by source.
func (c *Console) ReportError(source, message string, code protocol.ErrorCode) {
	_ = c.printf("!!! %s: %s (%s)", source, message, code)
}

// LoginComplete prints the login confirmation.
func (c *Console) LoginComplete() {
	_ = c.printf("*** logged in ***")
}

// LogoutComplete prints the logout confirmation.
func (c *Console) LogoutComplete() {
	_ = c.printf("*** logged out ***")
}

// DisplayMessage prints a chat message.
func (c *Console) DisplayMessage(fromUser, text string) {
	_ = c.printf("[%s]: %s", fromUser, text)
}

// SetLock records whether a sent message awaits confirmation.
func (c *Console) SetLock(locked bool) {
	c.locked.Store(locked)
}

// Locked reports whether input is locked.
func (c *Console) Locked() bool {
	return c.locked.Load()
}

// RecordServerTime stores the server processing time of the last
// confirmed message.
func (c *Console) RecordServerTime(d time.Duration) {
	c.serverTime.Store(int64(d))
}

// LastServerTime returns the value of the last RecordServerTime call.
func (c *Console) LastServerTime() time.Duration {
	return time.Duration(c.serverTime.Load())
}

// SessionStatistics prints the counters of a finished session.
func (c *Console) SessionStatistics(stats listener.Statistics) {
	_ = c.printf("session: events=%d confirms=%d lost=%d retries=%d received=%d",
		stats.Events, stats.Confirms, stats.LostConfirms, stats.Retries, stats.ReceivedChatMessages)
}

// UpdateUserList prints the sorted list of registered users.
func (c *Console) UpdateUserList(users []string) error {
	sorted := slices.Clone(users)
	slices.Sort(sorted)

	c.mu.Lock()
	c.users = sorted
	c.mu.Unlock()

	if err := c.printf("users online: %s", strings.Join(sorted, ", ")); err != nil {
		return fmt.Errorf("failed to print user list: %w", err)
	}
	return nil
}

// Users returns the last user list.
func (c *Console) Users() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.users)
}
