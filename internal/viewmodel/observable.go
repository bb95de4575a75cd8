package viewmodel

import "sync"

// Observable holds a value and pushes every new value to its subscribers.
// Subscribers that fall behind only see the latest value.
type Observable[T any] struct {
	mu    sync.RWMutex
	value T
	subs  map[chan T]struct{}
}

// NewObservable creates an Observable holding initial.
func NewObservable[T any](initial T) *Observable[T] {
	return &Observable[T]{
		value: initial,
		subs:  make(map[chan T]struct{}),
	}
}

// Get returns the current value.
func (o *Observable[T]) Get() T {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return o.value
}

// Set stores v and notifies subscribers.
func (o *Observable[T]) Set(v T) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.value = v
	for ch := range o.subs {
		offer(ch, v)
	}
}

// Update applies fn to the current value under the lock and publishes the result.
func (o *Observable[T]) Update(fn func(T) T) T {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.value = fn(o.value)
	for ch := range o.subs {
		offer(ch, o.value)
	}

	return o.value
}

// Subscribe returns a channel that first receives the current value and then every
// update, plus a function that ends the subscription and closes the channel.
func (o *Observable[T]) Subscribe() (<-chan T, func()) {
	ch := make(chan T, 1)

	o.mu.Lock()
	ch <- o.value
	o.subs[ch] = struct{}{}
	o.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			o.mu.Lock()
			delete(o.subs, ch)
			o.mu.Unlock()
			close(ch)
		})
	}

	return ch, cancel
}

// offer replaces any undelivered value with v. Callers hold the write lock, so
// no other sender can fill the buffer between the drain and the send.
func offer[T any](ch chan T, v T) {
	select {
	case <-ch:
	default:
	}
	ch <- v
}
