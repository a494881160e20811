package stream

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishToSubscriber(t *testing.T) {
	hub := NewHub(4)

	events, unsubscribe := hub.Subscribe("user-1")
	defer unsubscribe()

	hub.Publish("user-1", []byte(`{"type":"booking_created"}`))

	select {
	case event := <-events:
		assert.Equal(t, `{"type":"booking_created"}`, string(event))
	default:
		t.Fatal("expected event in subscriber channel")
	}
}

func TestHub_PublishIsScopedToUser(t *testing.T) {
	hub := NewHub(4)

	events, unsubscribe := hub.Subscribe("user-1")
	defer unsubscribe()

	hub.Publish("user-2", []byte("other"))

	select {
	case <-events:
		t.Fatal("subscriber must not receive another user's events")
	default:
	}
}

func TestHub_MultipleSubscribersReceiveSameEvent(t *testing.T) {
	hub := NewHub(4)

	first, unsubFirst := hub.Subscribe("user-1")
	defer unsubFirst()
	second, unsubSecond := hub.Subscribe("user-1")
	defer unsubSecond()

	assert.Equal(t, 2, hub.SubscriberCount("user-1"))

	hub.Publish("user-1", []byte("event"))

	assert.Equal(t, "event", string(<-first))
	assert.Equal(t, "event", string(<-second))
}

func TestHub_Unsubscribe(t *testing.T) {
	hub := NewHub(4)

	events, unsubscribe := hub.Subscribe("user-1")
	require.Equal(t, 1, hub.SubscriberCount("user-1"))

	unsubscribe()
	assert.Equal(t, 0, hub.SubscriberCount("user-1"))

	// Канал закрыт, публикация после отписки не паникует
	hub.Publish("user-1", []byte("late"))
	_, open := <-events
	assert.False(t, open)
}

func TestHub_UnsubscribeIsIdempotent(t *testing.T) {
	hub := NewHub(4)

	_, unsubscribe := hub.Subscribe("user-1")
	unsubscribe()
	assert.NotPanics(t, unsubscribe)
}

func TestHub_DropsEventsWhenBufferFull(t *testing.T) {
	hub := NewHub(2)

	events, unsubscribe := hub.Subscribe("user-1")
	defer unsubscribe()

	for i := 0; i < 10; i++ {
		hub.Publish("user-1", []byte(fmt.Sprintf("event-%d", i)))
	}

	// В буфере остаются только первые события, остальные отброшены
	assert.Equal(t, "event-0", string(<-events))
	assert.Equal(t, "event-1", string(<-events))
	select {
	case event := <-events:
		t.Fatalf("expected buffer to be drained, got %q", event)
	default:
	}
}

func TestHub_ConcurrentPublishAndSubscribe(t *testing.T) {
	hub := NewHub(64)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		userID := fmt.Sprintf("user-%d", i%3)

		go func(userID string) {
			defer wg.Done()
			_, unsubscribe := hub.Subscribe(userID)
			unsubscribe()
		}(userID)

		go func(userID string) {
			defer wg.Done()
			hub.Publish(userID, []byte("event"))
		}(userID)
	}
	wg.Wait()
}
