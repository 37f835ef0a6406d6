package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recv(t *testing.T, ch <-chan Event) Event {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(time.Second):
		t.Fatal("no llegó ningún evento")
		return Event{}
	}
}

func TestSubscribeAllTopics(t *testing.T) {
	b := NewBus()
	ch, cancel := b.Subscribe()
	defer cancel()

	b.Publish(TopicWatchlist)
	ev := recv(t, ch)
	assert.Equal(t, TopicWatchlist, ev.Topic)
	assert.False(t, ev.At.IsZero())
}

func TestSubscribeFiltersByTopic(t *testing.T) {
	b := NewBus()
	ch, cancel := b.Subscribe(TopicReviews)
	defer cancel()

	b.Publish(TopicAccount)
	b.Publish(TopicReviews)

	ev := recv(t, ch)
	assert.Equal(t, TopicReviews, ev.Topic)
	select {
	case extra := <-ch:
		t.Fatalf("evento inesperado: %v", extra.Topic)
	default:
	}
}

func TestCancelClosesChannel(t *testing.T) {
	b := NewBus()
	ch, cancel := b.Subscribe()

	cancel()
	_, open := <-ch
	assert.False(t, open)

	// doble cancel es inofensivo
	cancel()

	// publicar sin suscriptores tampoco rompe
	b.Publish(TopicAccount)
}

func TestPublishNeverBlocks(t *testing.T) {
	b := NewBus()
	_, cancel := b.Subscribe()
	defer cancel()

	done := make(chan struct{})
	go func() {
		// mucho más que el buffer del suscriptor; nadie lee
		for i := 0; i < 100; i++ {
			b.Publish(TopicWatchlist)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish se bloqueó con un suscriptor lento")
	}
}

func TestMultipleSubscribers(t *testing.T) {
	b := NewBus()
	ch1, cancel1 := b.Subscribe(TopicAccount)
	defer cancel1()
	ch2, cancel2 := b.Subscribe()
	defer cancel2()

	b.Publish(TopicAccount)

	require.Equal(t, TopicAccount, recv(t, ch1).Topic)
	require.Equal(t, TopicAccount, recv(t, ch2).Topic)
}
