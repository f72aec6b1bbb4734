package gridtap

// Stopper receives the end-of-run stop signal.
type Stopper interface {
	Stop()
}

// StopBroadcast is an explicitly scoped many-listener channel for the stop
// signal. The session owns one per run; tiles subscribe at creation and are
// discarded with the broadcast when the run is reset, so teardown stays
// visible instead of hiding in global state.
//
// Publish runs synchronously on the caller's goroutine, so every subscriber
// observes the stop before any further timer callback can be dispatched.
type StopBroadcast struct {
	subs []Stopper
}

// NewStopBroadcast creates a broadcast with no subscribers.
func NewStopBroadcast() *StopBroadcast {
	return &StopBroadcast{}
}

// Subscribe registers s to receive the next stop signal. Subscriptions are
// not cleared after firing; a stopped subscriber is expected to be discarded,
// not reused.
func (b *StopBroadcast) Subscribe(s Stopper) {
	b.subs = append(b.subs, s)
}

// Publish invokes Stop on every current subscriber exactly once, in
// subscription order.
func (b *StopBroadcast) Publish() {
	for _, s := range b.subs {
		s.Stop()
	}
}

// Len returns the number of subscribers.
func (b *StopBroadcast) Len() int {
	return len(b.subs)
}
