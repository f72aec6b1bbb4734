package gridtap

import (
	"math/rand"
	"testing"

	"github.com/greentile/gridtap/internal/sched"
)

func TestTileHitIncrementsScore(t *testing.T) {
	s := NewSession()
	for i := 1; i <= 5; i++ {
		s.TileHit()
		if s.Score() != i {
			t.Fatalf("score = %d, expected %d", s.Score(), i)
		}
	}
}

func TestEndPublishesStopOnce(t *testing.T) {
	s := NewSession()
	sub := &countingStopper{}
	s.Broadcast().Subscribe(sub)

	s.End()
	s.End()
	s.TileMissed()

	if sub.stops != 1 {
		t.Errorf("stop signal fired %d times, expected exactly once per run", sub.stops)
	}
	if !s.Over() {
		t.Error("session should report over")
	}
}

func TestMissedKeepsScore(t *testing.T) {
	s := NewSession()
	s.TileHit()
	s.TileHit()

	s.TileMissed()

	if s.Score() != 2 {
		t.Errorf("score = %d after miss, expected 2", s.Score())
	}
	if !s.Over() {
		t.Error("miss should end the run")
	}
}

func TestResetClearsStateAndDropsOldTiles(t *testing.T) {
	s := NewSession()
	old := s.Broadcast()
	s.Broadcast().Subscribe(&countingStopper{})
	s.TileHit()
	s.End()

	s.Reset()

	if s.Score() != 0 {
		t.Errorf("score = %d after reset, expected 0", s.Score())
	}
	if s.Over() {
		t.Error("reset should clear the over flag")
	}
	if s.Broadcast() == old {
		t.Error("reset should replace the stop broadcast")
	}
	if s.Broadcast().Len() != 0 {
		t.Error("the fresh broadcast should start with no subscribers")
	}
}

func TestEndStopsEveryGridTile(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
	}{
		{"single tile", 1, 1},
		{"full grid", 5, 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			session := NewSession()
			clock := sched.New()
			rng := rand.New(rand.NewSource(9))
			grid := NewGrid(tc.rows, tc.cols, session, clock, rng, testRules())

			session.End()

			for i, tile := range grid.Tiles() {
				if !tile.Stopped() {
					t.Errorf("tile %d not stopped after End", i)
				}
				if tile.HasPending() {
					t.Errorf("tile %d still has a pending timer after End", i)
				}
			}
			if clock.Pending() != 0 {
				t.Errorf("%d timers survived the stop broadcast", clock.Pending())
			}
		})
	}
}

func TestEndWithNoTiles(t *testing.T) {
	s := NewSession()
	s.End() // must not panic with zero subscribers
	if !s.Over() {
		t.Error("session should be over")
	}
}

func TestFreshGridBeginsLit(t *testing.T) {
	session := NewSession()
	clock := sched.New()
	rng := rand.New(rand.NewSource(11))

	grid := NewGrid(5, 4, session, clock, rng, testRules())

	if grid.Size() != 20 {
		t.Fatalf("grid size = %d, expected 20", grid.Size())
	}
	if grid.LitCount() != 20 {
		t.Errorf("all fresh tiles should begin lit, got %d", grid.LitCount())
	}
	if clock.Pending() != 20 {
		t.Errorf("each tile should hold one timer, pending=%d", clock.Pending())
	}
	if session.Broadcast().Len() != 20 {
		t.Errorf("every tile should be subscribed, got %d", session.Broadcast().Len())
	}
}
