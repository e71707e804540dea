// Package transport owns the websocket connection to the chat server. It
// moves raw frames in both directions and nothing else; framing semantics
// live upstairs. Inbound frames fan out through a Relay so the update loop
// and anything else that cares can each read their own channel.
package transport

import "sync"

// subscriberBuffer is how far a subscriber may fall behind before it is
// dropped.
const subscriberBuffer = 256

// Relay fans frames from the single reader out to any number of
// subscribers. Publishing never blocks: a subscriber whose buffer is full
// is dropped and its channel closed, the same bargain a broadcast hub
// strikes with a slow client. Closing the relay closes every subscriber
// channel, which is how consumers learn the connection is gone.
type Relay struct {
	mu     sync.Mutex
	subs   map[chan []byte]struct{}
	closed bool
}

// NewRelay returns an empty relay ready for subscribers.
func NewRelay() *Relay {
	return &Relay{subs: make(map[chan []byte]struct{})}
}

// Subscribe registers a consumer and returns its channel plus a cancel
// func. The channel closes on cancel, on relay close, or if the consumer
// falls too far behind. Subscribing to a closed relay yields an already
// closed channel.
func (r *Relay) Subscribe() (<-chan []byte, func()) {
	ch := make(chan []byte, subscriberBuffer)

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		close(ch)
		return ch, func() {}
	}
	r.subs[ch] = struct{}{}

	cancel := func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if _, ok := r.subs[ch]; ok {
			delete(r.subs, ch)
			close(ch)
		}
	}
	return ch, cancel
}

// Publish delivers frame to every subscriber that is keeping up.
func (r *Relay) Publish(frame []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	for ch := range r.subs {
		select {
		case ch <- frame:
		default:
			delete(r.subs, ch)
			close(ch)
		}
	}
}

// Close shuts the relay down and closes every subscriber channel. It is
// safe to call more than once.
func (r *Relay) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.closed = true
	for ch := range r.subs {
		delete(r.subs, ch)
		close(ch)
	}
}
