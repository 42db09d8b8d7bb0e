package orchestrator

import "sync"

// Feed is a live collection subscription. Every publish delivers a full
// replacement snapshot to each subscriber, at-least-once; a subscriber
// that has not drained its channel sees only the latest snapshot
// (buffer of one, stale value dropped). No ordering is guaranteed across
// independent feeds.
type Feed[T any] struct {
	mu   sync.Mutex
	subs map[int]chan T
	next int
	last T
	has  bool
}

func NewFeed[T any]() *Feed[T] {
	return &Feed[T]{subs: make(map[int]chan T)}
}

// Subscribe registers a new subscriber. The returned channel is primed
// with the most recent snapshot, if any. The cancel func removes the
// subscription and closes the channel.
func (f *Feed[T]) Subscribe() (<-chan T, func()) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := f.next
	f.next++
	ch := make(chan T, 1)
	if f.has {
		ch <- f.last
	}
	f.subs[id] = ch

	cancel := func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if c, ok := f.subs[id]; ok {
			delete(f.subs, id)
			close(c)
		}
	}
	return ch, cancel
}

// Publish fans a snapshot out to all subscribers without blocking.
func (f *Feed[T]) Publish(snapshot T) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.last = snapshot
	f.has = true

	for _, ch := range f.subs {
		select {
		case ch <- snapshot:
		default:
			// Drop the stale snapshot the subscriber never read
			select {
			case <-ch:
			default:
			}
			ch <- snapshot
		}
	}
}
