package stream

import (
	"errors"
	"io"
	"sync"
)

// Event names emitted by ReadFrom.
const (
	EventData  = "data"
	EventEnd   = "end"
	EventError = "error"
)

// readChunkSize is the buffer size used by ReadFrom.
const readChunkSize = 32 * 1024

// Event is a single occurrence on a request stream.
type Event struct {
	Name string
	Data any
}

// Listener receives events in emission order.
type Listener func(Event)

// Pauser is implemented by streams that can buffer their events.
type Pauser interface {
	// Pause starts buffering events. The returned Resumer releases them.
	Pause() Resumer
}

// Resumer releases the events buffered by a single Pause call.
type Resumer interface {
	Resume()
}

// Emitter is an ordered, pausable event source safe for concurrent use.
//
// While at least one pause is outstanding, emitted events are queued. Once
// every pause has been resumed the queue is flushed, in arrival order, to the
// listeners registered at flush time.
type Emitter struct {
	mu        sync.Mutex
	listeners []Listener
	queue     []Event
	paused    int
	draining  bool
}

// NewEmitter creates an emitter without listeners.
func NewEmitter() *Emitter {
	return &Emitter{}
}

// On registers a listener. Nil listeners are ignored.
func (e *Emitter) On(l Listener) {
	if l == nil {
		return
	}
	e.mu.Lock()
	e.listeners = append(e.listeners, l)
	e.mu.Unlock()
}

// Emit delivers an event to the listeners, or queues it while paused.
//
// Delivery happens on the calling goroutine unless another goroutine is
// already flushing the queue, in which case that goroutine delivers it in
// order.
func (e *Emitter) Emit(name string, data any) {
	e.mu.Lock()
	e.queue = append(e.queue, Event{Name: name, Data: data})
	e.mu.Unlock()

	e.drain()
}

// Pause starts buffering events until the returned Resumer is called.
// Pauses nest: events flow again only after every pause is resumed.
func (e *Emitter) Pause() Resumer {
	e.mu.Lock()
	e.paused++
	e.mu.Unlock()
	return &pause{emitter: e}
}

// Paused reports whether the emitter is currently buffering.
func (e *Emitter) Paused() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.paused > 0
}

// Buffered returns the number of queued, undelivered events.
func (e *Emitter) Buffered() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.queue)
}

// ReadFrom reads r until EOF and emits every chunk as a data event followed by
// a single end event. A read error is emitted as an error event and returned.
// It implements io.ReaderFrom so a request body can be piped into the emitter.
func (e *Emitter) ReadFrom(r io.Reader) (int64, error) {
	var total int64
	buf := make([]byte, readChunkSize)

	for {
		n, err := r.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			total += int64(n)
			e.Emit(EventData, chunk)
		}

		if errors.Is(err, io.EOF) {
			e.Emit(EventEnd, nil)
			return total, nil
		}
		if err != nil {
			e.Emit(EventError, err)
			return total, err
		}
	}
}

// drain flushes queued events while the emitter is not paused. Only one
// goroutine drains at a time, which keeps delivery ordered.
func (e *Emitter) drain() {
	e.mu.Lock()
	if e.draining {
		e.mu.Unlock()
		return
	}
	e.draining = true

	for e.paused == 0 && len(e.queue) > 0 {
		ev := e.queue[0]
		e.queue[0] = Event{}
		e.queue = e.queue[1:]
		listeners := e.listeners
		e.mu.Unlock()

		for _, l := range listeners {
			l(ev)
		}

		e.mu.Lock()
	}

	e.draining = false
	e.mu.Unlock()
}

type pause struct {
	emitter *Emitter
	once    sync.Once
}

// Resume releases this pause. Calls after the first are no-ops.
func (p *pause) Resume() {
	p.once.Do(func() {
		p.emitter.mu.Lock()
		p.emitter.paused--
		p.emitter.mu.Unlock()

		p.emitter.drain()
	})
}
