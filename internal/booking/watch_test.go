package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubSubscribeAndBroadcast(t *testing.T) {
	hub := NewHub()
	assert.Equal(t, 0, hub.SubscriberCount())

	ch1, unsub1 := hub.Subscribe()
	ch2, unsub2 := hub.Subscribe()
	defer unsub1()
	defer unsub2()
	assert.Equal(t, 2, hub.SubscriberCount())

	list := []*Booking{{ID: "a"}}
	hub.Broadcast(list)

	got1 := <-ch1
	got2 := <-ch2
	require.Len(t, got1, 1)
	require.Len(t, got2, 1)
	assert.Equal(t, "a", got1[0].ID)
	assert.Equal(t, "a", got2[0].ID)
}

func TestHubCoalescesUnconsumedSnapshots(t *testing.T) {
	hub := NewHub()
	ch, unsub := hub.Subscribe()
	defer unsub()

	hub.Broadcast([]*Booking{{ID: "stale"}})
	hub.Broadcast([]*Booking{{ID: "fresh"}})

	// The stale snapshot must be replaced, not queued behind.
	got := <-ch
	require.Len(t, got, 1)
	assert.Equal(t, "fresh", got[0].ID)

	select {
	case extra := <-ch:
		t.Fatalf("unexpected queued snapshot: %v", extra)
	default:
	}
}

func TestHubUnsubscribe(t *testing.T) {
	hub := NewHub()
	ch, unsub := hub.Subscribe()

	unsub()
	assert.Equal(t, 0, hub.SubscriberCount())

	_, open := <-ch
	assert.False(t, open, "channel should be closed after unsubscribe")

	// Calling unsubscribe again must not panic.
	unsub()

	// Broadcasting with no subscribers is a no-op.
	hub.Broadcast([]*Booking{{ID: "a"}})
}
