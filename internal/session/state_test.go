package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_StartsRegistering(t *testing.T) {
	s := New("alice")

	assert.Equal(t, Registering, s.Status())
	assert.Equal(t, "alice", s.UserName())
	assert.Zero(t, s.Events())
	assert.Zero(t, s.Confirms())
	assert.Zero(t, s.MessageCounter())
}

func TestCanTransition(t *testing.T) {
	all := []Status{Unregistered, Registering, Registered, Unregistering}
	legal := map[[2]Status]bool{
		{Unregistered, Registering}:   true,
		{Registering, Registered}:     true,
		{Registering, Unregistered}:   true,
		{Registered, Unregistering}:   true,
		{Unregistering, Unregistered}: true,
	}

	for _, from := range all {
		for _, to := range all {
			t.Run(from.String()+"->"+to.String(), func(t *testing.T) {
				assert.Equal(t, legal[[2]Status{from, to}], CanTransition(from, to))
			})
		}
	}
}

func TestState_Transition(t *testing.T) {
	s := New("alice")

	require.NoError(t, s.Transition(Registered))
	assert.Equal(t, Registered, s.Status())

	err := s.Transition(Registering)
	require.ErrorIs(t, err, ErrIllegalTransition)
	assert.Equal(t, Registered, s.Status(), "failed transition must not change status")

	require.NoError(t, s.Transition(Unregistering))
	require.NoError(t, s.Transition(Unregistered))
	assert.Equal(t, Unregistered, s.Status())
}

func TestState_CountersOnlyIncrease(t *testing.T) {
	s := New("alice")

	assert.Equal(t, uint64(1), s.IncrementEvents())
	assert.Equal(t, uint64(2), s.IncrementEvents())
	assert.Equal(t, uint64(1), s.IncrementConfirms())
	assert.Equal(t, uint64(1), s.NextMessage())
	assert.Equal(t, uint64(2), s.NextMessage())

	assert.Equal(t, Snapshot{
		UserName:       "alice",
		Status:         Registering,
		EventCounter:   2,
		ConfirmCounter: 1,
		MessageCounter: 2,
	}, s.Snapshot())
}

func TestState_ConcurrentReaders(t *testing.T) {
	s := New("alice")

	const increments = 1000
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < increments; i++ {
			s.IncrementEvents()
		}
	}()
	go func() {
		defer wg.Done()
		var last uint64
		for i := 0; i < increments; i++ {
			cur := s.Snapshot().EventCounter
			assert.GreaterOrEqual(t, cur, last)
			last = cur
		}
	}()
	wg.Wait()

	assert.Equal(t, uint64(increments), s.Events())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "UNREGISTERED", Unregistered.String())
	assert.Equal(t, "REGISTERING", Registering.String())
	assert.Equal(t, "REGISTERED", Registered.String())
	assert.Equal(t, "UNREGISTERING", Unregistering.String())
	assert.Equal(t, "UNKNOWN(9)", Status(9).String())
}
