package ws

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubPublishReachesAllSubscribers(t *testing.T) {
	hub := NewHub()

	id1, ch1 := hub.Subscribe()
	id2, ch2 := hub.Subscribe()
	defer hub.Unsubscribe(id1)
	defer hub.Unsubscribe(id2)

	assert.Equal(t, 2, hub.SubscriberCount())

	hub.Publish(EventStockAdjusted, map[string]interface{}{"product_id": 1, "delta": -3})

	for _, ch := range []<-chan Event{ch1, ch2} {
		select {
		case event := <-ch:
			assert.Equal(t, EventStockAdjusted, event.Type)
			assert.NotZero(t, event.Timestamp)
		case <-time.After(time.Second):
			t.Fatal("subscriber did not receive event")
		}
	}
}

func TestHubUnsubscribeClosesChannel(t *testing.T) {
	hub := NewHub()

	id, ch := hub.Subscribe()
	hub.Unsubscribe(id)

	_, open := <-ch
	assert.False(t, open)
	assert.Equal(t, 0, hub.SubscriberCount())

	// Unsubscribing twice is a no-op.
	hub.Unsubscribe(id)
}

func TestHubDropsEventsForSlowSubscriber(t *testing.T) {
	hub := NewHub()
	hub.buffer = 1

	id, ch := hub.Subscribe()
	defer hub.Unsubscribe(id)

	hub.Publish(EventProductCreated, nil)
	hub.Publish(EventProductUpdated, nil) // dropped, buffer full

	event := <-ch
	require.Equal(t, EventProductCreated, event.Type)

	select {
	case event := <-ch:
		t.Fatalf("expected second event to be dropped, got %v", event.Type)
	default:
	}
}

func TestHubCloseTerminatesSubscribers(t *testing.T) {
	hub := NewHub()

	_, ch1 := hub.Subscribe()
	_, ch2 := hub.Subscribe()

	hub.Close()

	_, open1 := <-ch1
	_, open2 := <-ch2
	assert.False(t, open1)
	assert.False(t, open2)
	assert.Equal(t, 0, hub.SubscriberCount())
}
