package events_test

import (
	"errors"
	"testing"

	"github.com/Skelly0/DuelBot/internal/domain/duel"
	"github.com/Skelly0/DuelBot/internal/events"
	"github.com/Skelly0/DuelBot/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expiredEvent() *events.MatchEvent {
	m := testutils.CreateTestMatch("channel-1",
		testutils.CreateTestPlayer("alice", "Alice"),
		testutils.CreateTestPlayer("bob", "Bob"),
		duel.PhaseDeclaringStances)
	return &events.MatchEvent{
		Type:   events.EventTypeMatchExpired,
		Key:    "channel-1",
		Match:  m,
		Reason: "inactive",
	}
}

func TestEventBus_DeliversToSubscribers(t *testing.T) {
	bus := events.NewBus()

	var got []events.Event
	bus.Subscribe(events.EventTypeMatchExpired, &testListener{
		id:       "recorder",
		priority: 100,
		handler: func(e events.Event) error {
			got = append(got, e)
			return nil
		},
	})

	event := expiredEvent()
	require.NoError(t, bus.Emit(event))
	require.Len(t, got, 1)
	assert.Equal(t, "channel-1", got[0].GetKey())
	assert.Equal(t, "alice", got[0].GetMatch().Player1.ID)

	// Other types are not delivered
	require.NoError(t, bus.Emit(&events.MatchEvent{Type: events.EventTypeMatchCreated, Key: "channel-1"}))
	assert.Len(t, got, 1)
}

func TestEventBus_Priority(t *testing.T) {
	bus := events.NewBus()

	// Track execution order
	var executionOrder []string
	record := func(name string) func(events.Event) error {
		return func(events.Event) error {
			executionOrder = append(executionOrder, name)
			return nil
		}
	}

	// Subscribe in random order
	bus.Subscribe(events.EventTypeMatchExpired, &testListener{id: "low", priority: 300, handler: record("low")})
	bus.Subscribe(events.EventTypeMatchExpired, &testListener{id: "high", priority: 100, handler: record("high")})
	bus.Subscribe(events.EventTypeMatchExpired, &testListener{id: "medium", priority: 200, handler: record("medium")})

	require.NoError(t, bus.Emit(expiredEvent()))

	// Lower priority number = earlier execution
	assert.Equal(t, []string{"high", "medium", "low"}, executionOrder)
}

func TestEventBus_FailingListenerDoesNotStopOthers(t *testing.T) {
	bus := events.NewBus()

	var secondExecuted bool
	bus.Subscribe(events.EventTypeMatchExpired, &testListener{
		id:       "broken",
		priority: 100,
		handler: func(events.Event) error {
			return errors.New("discord unavailable")
		},
	})
	bus.Subscribe(events.EventTypeMatchExpired, &testListener{
		id:       "second",
		priority: 200,
		handler: func(events.Event) error {
			secondExecuted = true
			return nil
		},
	})

	err := bus.Emit(expiredEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listener broken failed")
	assert.True(t, secondExecuted)
}

func TestEventBus_UnsubscribeAndClear(t *testing.T) {
	bus := events.NewBus()

	calls := 0
	listener := &testListener{
		id:       "counter",
		priority: 100,
		handler: func(events.Event) error {
			calls++
			return nil
		},
	}

	bus.SubscribeAll(events.RemovalTypes, listener)
	require.NoError(t, bus.Emit(expiredEvent()))
	require.NoError(t, bus.Emit(&events.MatchEvent{Type: events.EventTypeMatchCancelled, Key: "channel-1"}))
	assert.Equal(t, 2, calls)

	bus.Unsubscribe(events.EventTypeMatchExpired, "counter")
	require.NoError(t, bus.Emit(expiredEvent()))
	assert.Equal(t, 2, calls)

	bus.Clear()
	require.NoError(t, bus.Emit(&events.MatchEvent{Type: events.EventTypeMatchCancelled, Key: "channel-1"}))
	assert.Equal(t, 2, calls)
}

// Test helper: simple event listener
type testListener struct {
	id       string
	priority int
	handler  func(events.Event) error
}

func (l *testListener) ID() string                       { return l.id }
func (l *testListener) Priority() int                    { return l.priority }
func (l *testListener) HandleEvent(e events.Event) error { return l.handler(e) }
