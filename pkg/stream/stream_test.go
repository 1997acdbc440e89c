package stream_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/pkg/stream"
)

// collector records events delivered to a listener.
type collector struct {
	mu     sync.Mutex
	events []stream.Event
}

func (c *collector) listen(ev stream.Event) {
	c.mu.Lock()
	c.events = append(c.events, ev)
	c.mu.Unlock()
}

func (c *collector) snapshot() []stream.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]stream.Event(nil), c.events...)
}

func TestEmitter_Delivery(t *testing.T) {
	t.Parallel()

	em := stream.NewEmitter()
	var first, second collector
	em.On(first.listen)
	em.On(nil)
	em.On(second.listen)

	em.Emit("a", 1)
	em.Emit("b", 2)

	want := []stream.Event{{Name: "a", Data: 1}, {Name: "b", Data: 2}}
	assert.Equal(t, want, first.snapshot())
	assert.Equal(t, want, second.snapshot())
	assert.Zero(t, em.Buffered())
}

func TestEmitter_PauseBuffersInOrder(t *testing.T) {
	t.Parallel()

	em := stream.NewEmitter()
	var early collector
	em.On(early.listen)

	paused := em.Pause()
	assert.True(t, em.Paused())

	for i := range 5 {
		em.Emit(stream.EventData, i)
	}
	assert.Empty(t, early.snapshot(), "no event may be delivered while paused")
	assert.Equal(t, 5, em.Buffered())

	// A listener attached during the pause still sees every buffered event.
	var late collector
	em.On(late.listen)

	paused.Resume()
	assert.False(t, em.Paused())

	for _, c := range []*collector{&early, &late} {
		events := c.snapshot()
		require.Len(t, events, 5)
		for i, ev := range events {
			assert.Equal(t, i, ev.Data)
		}
	}
}

func TestEmitter_ResumeIsIdempotent(t *testing.T) {
	t.Parallel()

	em := stream.NewEmitter()
	var c collector
	em.On(c.listen)

	outer := em.Pause()
	inner := em.Pause()

	em.Emit("x", nil)

	inner.Resume()
	inner.Resume()
	assert.True(t, em.Paused(), "a second Resume must not release another pause")
	assert.Empty(t, c.snapshot())

	outer.Resume()
	assert.False(t, em.Paused())
	assert.Len(t, c.snapshot(), 1)
}

func TestEmitter_ConcurrentEmitWhilePaused(t *testing.T) {
	t.Parallel()

	const producers = 8
	const perProducer = 100

	em := stream.NewEmitter()
	var c collector
	em.On(c.listen)

	paused := em.Pause()

	var wg sync.WaitGroup
	for p := range producers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range perProducer {
				em.Emit(stream.EventData, [2]int{p, i})
			}
		}()
	}
	wg.Wait()

	assert.Empty(t, c.snapshot())
	paused.Resume()

	events := c.snapshot()
	require.Len(t, events, producers*perProducer)

	// Per-producer order is preserved.
	next := make([]int, producers)
	for _, ev := range events {
		pair := ev.Data.([2]int)
		assert.Equal(t, next[pair[0]], pair[1])
		next[pair[0]]++
	}
}

func TestEmitter_ListenerMayEmit(t *testing.T) {
	t.Parallel()

	em := stream.NewEmitter()
	var c collector
	em.On(func(ev stream.Event) {
		if ev.Name == "ping" {
			em.Emit("pong", nil)
		}
	})
	em.On(c.listen)

	em.Emit("ping", nil)

	events := c.snapshot()
	require.Len(t, events, 2)
	assert.Equal(t, "ping", events[0].Name)
	assert.Equal(t, "pong", events[1].Name)
}

type failingReader struct {
	err error
}

func (r failingReader) Read([]byte) (int, error) {
	return 0, r.err
}

func TestEmitter_ReadFrom(t *testing.T) {
	t.Parallel()

	t.Run("emits data then end", func(t *testing.T) {
		t.Parallel()

		em := stream.NewEmitter()
		var c collector
		em.On(c.listen)

		payload := strings.Repeat("x", 70*1024)
		n, err := em.ReadFrom(strings.NewReader(payload))
		require.NoError(t, err)
		assert.Equal(t, int64(len(payload)), n)

		events := c.snapshot()
		require.NotEmpty(t, events)
		assert.Equal(t, stream.EventEnd, events[len(events)-1].Name)

		var body bytes.Buffer
		for _, ev := range events[:len(events)-1] {
			assert.Equal(t, stream.EventData, ev.Name)
			body.Write(ev.Data.([]byte))
		}
		assert.Equal(t, payload, body.String())
	})

	t.Run("emits read error", func(t *testing.T) {
		t.Parallel()

		errRead := errors.New("connection reset")
		em := stream.NewEmitter()
		var c collector
		em.On(c.listen)

		_, err := em.ReadFrom(failingReader{err: errRead})
		assert.ErrorIs(t, err, errRead)

		events := c.snapshot()
		require.Len(t, events, 1)
		assert.Equal(t, stream.EventError, events[0].Name)
		assert.Equal(t, errRead, events[0].Data)
	})

	t.Run("implements io.ReaderFrom", func(t *testing.T) {
		t.Parallel()
		var _ io.ReaderFrom = stream.NewEmitter()
	})
}
