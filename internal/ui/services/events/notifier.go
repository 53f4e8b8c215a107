package events

import "sync"

// Notifier delivers "selection changed" to at most one observer.
// Registering a new observer replaces the previous one.
type Notifier[T any] struct {
	mu       sync.Mutex
	observer func(T)
	current  *Subscription
}

// Subscription is the handle returned by Register. The observer holds no
// reference keeping the notifier's owner alive; when the observer goes away
// it must call Unsubscribe, after which nothing more is delivered to it.
type Subscription struct {
	cancel func()
	once   sync.Once
}

// Unsubscribe removes the observer if it is still the registered one.
// Calling it more than once is harmless.
func (s *Subscription) Unsubscribe() {
	if s == nil {
		return
	}
	s.once.Do(s.cancel)
}

// Register installs fn as the sole observer and returns its subscription.
// A nil fn clears the slot.
func (n *Notifier[T]) Register(fn func(T)) *Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()

	if fn == nil {
		n.observer = nil
		n.current = nil
		return &Subscription{cancel: func() {}}
	}

	sub := &Subscription{}
	sub.cancel = func() {
		n.mu.Lock()
		defer n.mu.Unlock()

		// A stale handle must not remove a newer observer
		if n.current == sub {
			n.observer = nil
			n.current = nil
		}
	}

	n.observer = fn
	n.current = sub
	return sub
}

// Registered reports whether an observer is installed
func (n *Notifier[T]) Registered() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.observer != nil
}

// Notify calls the observer synchronously. It is a no-op without one.
func (n *Notifier[T]) Notify(v T) {
	n.mu.Lock()
	fn := n.observer
	n.mu.Unlock()

	// Called outside the lock so the observer may re-register
	if fn != nil {
		fn(v)
	}
}
