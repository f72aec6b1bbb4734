package gridtap

import "testing"

// countingStopper records how many times it was stopped.
type countingStopper struct {
	stops int
}

func (c *countingStopper) Stop() {
	c.stops++
}

func TestPublishReachesEverySubscriber(t *testing.T) {
	for _, n := range []int{0, 1, 20} {
		b := NewStopBroadcast()
		subs := make([]*countingStopper, n)
		for i := range subs {
			subs[i] = &countingStopper{}
			b.Subscribe(subs[i])
		}

		b.Publish()

		for i, s := range subs {
			if s.stops != 1 {
				t.Errorf("n=%d: subscriber %d stopped %d times, expected 1", n, i, s.stops)
			}
		}
	}
}

func TestSubscriptionsSurvivePublish(t *testing.T) {
	b := NewStopBroadcast()
	s := &countingStopper{}
	b.Subscribe(s)

	b.Publish()
	b.Publish()

	// Subscriptions are not cleared after firing; a second publish reaches
	// the same listener again. Stopped tiles tolerate this (Stop is
	// idempotent) and are discarded with the broadcast at reset.
	if s.stops != 2 {
		t.Errorf("stops = %d, expected 2", s.stops)
	}
	if b.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", b.Len())
	}
}

func TestSubscribeAfterPublish(t *testing.T) {
	b := NewStopBroadcast()
	b.Publish()

	late := &countingStopper{}
	b.Subscribe(late)
	if late.stops != 0 {
		t.Error("subscribing after a publish must not replay the signal")
	}
}
