// Package session holds the client-side conversation state shared between
// the receive listener and the rest of the client.
package session

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// Status is the client's current phase in the login/chat/logout protocol.
type Status int32

const (
	Unregistered Status = iota
	Registering
	Registered
	Unregistering
)

// String returns the string representation of Status
func (s Status) String() string {
	switch s {
	case Unregistered:
		return "UNREGISTERED"
	case Registering:
		return "REGISTERING"
	case Registered:
		return "REGISTERED"
	case Unregistering:
		return "UNREGISTERING"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int32(s))
	}
}

// ErrIllegalTransition is returned when a status change is not part of the
// conversation protocol.
var ErrIllegalTransition = errors.New("illegal status transition")

// transitions lists every legal status change.
var transitions = map[Status][]Status{
	Unregistered:  {Registering},
	Registering:   {Registered, Unregistered},
	Registered:    {Unregistering},
	Unregistering: {Unregistered},
}

// CanTransition reports whether from→to is a legal status change.
func CanTransition(from, to Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// State is the mutable session record. Status and counters are atomics so
// that other goroutines (e.g. a UI refresh) can read them while the
// listener writes.
type State struct {
	userName string

	status         atomic.Int32
	eventCounter   atomic.Uint64
	confirmCounter atomic.Uint64
	messageCounter atomic.Uint64
}

// Snapshot is a point-in-time copy of State for external readers.
type Snapshot struct {
	UserName       string
	Status         Status
	EventCounter   uint64
	ConfirmCounter uint64
	MessageCounter uint64
}

// New creates the state of a session whose login has just been initiated.
func New(userName string) *State {
	s := &State{userName: userName}
	s.status.Store(int32(Registering))
	return s
}

// UserName returns the local user's name.
func (s *State) UserName() string {
	return s.userName
}

// Status returns the current conversation status.
func (s *State) Status() Status {
	return Status(s.status.Load())
}

// Transition moves the session to the given status. It fails with
// ErrIllegalTransition if the change is not legal from the current status.
func (s *State) Transition(to Status) error {
	for {
		from := Status(s.status.Load())
		if !CanTransition(from, to) {
			return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, from, to)
		}
		if s.status.CompareAndSwap(int32(from), int32(to)) {
			return nil
		}
	}
}

// IncrementEvents counts one received event PDU and returns the new total.
func (s *State) IncrementEvents() uint64 {
	return s.eventCounter.Add(1)
}

// Events returns the number of event PDUs received so far.
func (s *State) Events() uint64 {
	return s.eventCounter.Load()
}

// IncrementConfirms counts one confirmed chat message response and returns
// the new total.
func (s *State) IncrementConfirms() uint64 {
	return s.confirmCounter.Add(1)
}

// Confirms returns the number of confirmed responses.
func (s *State) Confirms() uint64 {
	return s.confirmCounter.Load()
}

// NextMessage advances the message counter for a chat message about to be
// sent and returns its sequence number. Only the send side calls it.
func (s *State) NextMessage() uint64 {
	return s.messageCounter.Add(1)
}

// MessageCounter returns the sequence number of the last chat message sent.
func (s *State) MessageCounter() uint64 {
	return s.messageCounter.Load()
}

// Snapshot returns a copy of the current values.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		UserName:       s.userName,
		Status:         s.Status(),
		EventCounter:   s.eventCounter.Load(),
		ConfirmCounter: s.confirmCounter.Load(),
		MessageCounter: s.messageCounter.Load(),
	}
}
