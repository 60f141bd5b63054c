package eventbus

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishReachesSubscribers(t *testing.T) {
	b := New()
	defer b.Close()

	got := make(chan DomainEvent, 1)
	b.Subscribe(EventItemAdded, func(e DomainEvent) { got <- e })
	b.Subscribe(EventListToggled, func(e DomainEvent) { t.Error("wrong event type delivered") })

	b.Publish(ItemAddedEvent{Key: "kiwi", Label: "Kiwi", Total: 4})

	select {
	case e := <-got:
		assert.Equal(t, ItemAddedEvent{Key: "kiwi", Label: "Kiwi", Total: 4}, e)
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}
}

func TestUnsubscribe(t *testing.T) {
	b := New()

	var calls atomic.Int32
	unsubscribe := b.Subscribe(EventSelectorCleared, func(DomainEvent) { calls.Add(1) })
	unsubscribe()

	b.Publish(SelectorClearedEvent{})
	b.Close()
	assert.Zero(t, calls.Load())
}

func TestCloseDeliversQueuedEvents(t *testing.T) {
	b := New()

	var mu sync.Mutex
	var texts []string
	b.Subscribe(EventSearchChanged, func(e DomainEvent) {
		mu.Lock()
		defer mu.Unlock()
		texts = append(texts, e.(SearchChangedEvent).Text)
	})

	for _, s := range []string{"a", "ap", "app"} {
		b.Publish(SearchChangedEvent{Text: s})
	}
	b.Close()

	mu.Lock()
	defer mu.Unlock()
	assert.ElementsMatch(t, []string{"a", "ap", "app"}, texts)
}

func TestPublishAfterCloseIsDropped(t *testing.T) {
	b := New()
	var calls atomic.Int32
	b.Subscribe(EventSelectionAccepted, func(DomainEvent) { calls.Add(1) })
	b.Close()
	b.Close()

	b.Publish(SelectionAcceptedEvent{})
	assert.Zero(t, calls.Load())
}

func TestHandlerPanicDoesNotStopBus(t *testing.T) {
	b := New()
	defer b.Close()

	got := make(chan struct{}, 1)
	b.Subscribe(EventError, func(DomainEvent) { panic("boom") })
	b.Subscribe(EventConfigSaved, func(DomainEvent) { got <- struct{}{} })

	b.Publish(ErrorEvent{Message: "x"})
	b.Publish(ConfigSavedEvent{Path: "p"})

	require.Eventually(t, func() bool {
		select {
		case <-got:
			return true
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond)
}
