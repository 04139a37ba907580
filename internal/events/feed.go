package events

import "sync"

// Feed fans stored events out to subscribers. Publish never blocks: a
// subscriber whose buffer is full misses the event.
type Feed struct {
	mu     sync.Mutex
	subs   map[chan Event]struct{}
	buffer int
	closed bool
}

// NewFeed returns a Feed whose subscriber channels hold buffer events.
func NewFeed(buffer int) *Feed {
	if buffer < 1 {
		buffer = 1
	}
	return &Feed{subs: make(map[chan Event]struct{}), buffer: buffer}
}

// Subscribe registers a new subscriber. The channel is closed by
// Unsubscribe or Close.
func (f *Feed) Subscribe() <-chan Event {
	ch := make(chan Event, f.buffer)
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		close(ch)
		return ch
	}
	f.subs[ch] = struct{}{}
	return ch
}

// Unsubscribe removes ch and closes it. Unknown channels are ignored.
func (f *Feed) Unsubscribe(ch <-chan Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for c := range f.subs {
		if c == ch {
			delete(f.subs, c)
			close(c)
			return
		}
	}
}

// Publish delivers e to every subscriber with room and reports how many
// received it.
func (f *Feed) Publish(e Event) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	delivered := 0
	for c := range f.subs {
		select {
		case c <- e:
			delivered++
		default:
		}
	}
	return delivered
}

// Subscribers returns the number of active subscribers.
func (f *Feed) Subscribers() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs)
}

// Close closes every subscriber channel. Later subscribers get a closed
// channel.
func (f *Feed) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.closed = true
	for c := range f.subs {
		close(c)
	}
	f.subs = nil
}
