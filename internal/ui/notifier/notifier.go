// Package notifier provides a broadcast mechanism for SSE updates.
package notifier

import "sync"

// Notifier pings listeners when a visitor's workspace changes.
// Listeners subscribe under a visitor ID and receive an empty struct when
// that visitor's state should be re-rendered. A visitor may have several
// listeners, one per open tab.
type Notifier struct {
	mu        sync.RWMutex
	listeners map[string]map[chan struct{}]struct{}
}

// New creates a new Notifier instance.
func New() *Notifier {
	return &Notifier{
		listeners: make(map[string]map[chan struct{}]struct{}),
	}
}

// Subscribe returns a channel that receives pings for visitor.
// The caller must call Unsubscribe when done to prevent goroutine leaks.
func (n *Notifier) Subscribe(visitor string) chan struct{} {
	ch := make(chan struct{}, 1)
	n.mu.Lock()
	set, ok := n.listeners[visitor]
	if !ok {
		set = make(map[chan struct{}]struct{})
		n.listeners[visitor] = set
	}
	set[ch] = struct{}{}
	n.mu.Unlock()
	return ch
}

// Unsubscribe removes a listener channel and closes it.
func (n *Notifier) Unsubscribe(visitor string, ch chan struct{}) {
	n.mu.Lock()
	if set, ok := n.listeners[visitor]; ok {
		delete(set, ch)
		if len(set) == 0 {
			delete(n.listeners, visitor)
		}
	}
	n.mu.Unlock()
	close(ch)
}

// Broadcast pings every listener of visitor.
// Non-blocking: if a listener's channel is full, the ping is skipped.
func (n *Notifier) Broadcast(visitor string) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	ping(n.listeners[visitor])
}

// BroadcastAll pings every listener of every visitor.
func (n *Notifier) BroadcastAll() {
	n.mu.RLock()
	defer n.mu.RUnlock()
	for _, set := range n.listeners {
		ping(set)
	}
}

// Listeners returns the number of open listeners for visitor.
func (n *Notifier) Listeners(visitor string) int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.listeners[visitor])
}

func ping(set map[chan struct{}]struct{}) {
	for ch := range set {
		select {
		case ch <- struct{}{}:
		default:
			// Channel full, the listener re-renders on the pending ping
		}
	}
}
