package gridtap

import (
	"math/rand"
	"testing"

	"github.com/greentile/gridtap/internal/sched"
)

// testRules match the classic defaults at 60 ticks per second.
func testRules() *Rules {
	return &Rules{
		LitTicks:     90, // 1.5s
		RearmMinSecs: 3,
		RearmMaxSecs: 14,
		TickRate:     60,
	}
}

func newTestTile(seed int64) (*Tile, *Session, *sched.Scheduler) {
	session := NewSession()
	clock := sched.New()
	rng := rand.New(rand.NewSource(seed))
	tile := NewTile(session, clock, rng, testRules())
	session.Broadcast().Subscribe(tile)
	return tile, session, clock
}

func TestTileLightsAndDimsAfterWindow(t *testing.T) {
	tile, _, clock := newTestTile(1)
	tile.Light()

	if !tile.Lit() {
		t.Fatal("tile should be lit after Light")
	}
	if clock.Pending() != 1 {
		t.Fatalf("exactly one timer should be armed, got %d", clock.Pending())
	}

	for i := 0; i < 89; i++ {
		clock.Tick()
	}
	if !tile.Lit() {
		t.Fatal("tile dimmed before its lit window elapsed")
	}

	clock.Tick()
	if tile.Lit() {
		t.Fatal("tile should dim when the lit window elapses")
	}
	if clock.Pending() != 1 {
		t.Fatalf("dimming should arm the re-light timer, pending=%d", clock.Pending())
	}
}

func TestTileRearmDelayRange(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		tile, _, clock := newTestTile(seed)
		tile.Light()
		for tile.Lit() {
			clock.Tick()
		}

		dimmedAt := clock.Now()
		for !tile.Lit() {
			clock.Tick()
		}
		delay := clock.Now() - dimmedAt

		if delay < 3*60 || delay > 14*60 {
			t.Errorf("seed %d: re-arm delay %d ticks outside [180, 840]", seed, delay)
		}
		if delay%60 != 0 {
			t.Errorf("seed %d: re-arm delay %d is not a whole number of seconds", seed, delay)
		}
	}
}

func TestRulesRearmTicksCoverInclusiveRange(t *testing.T) {
	rules := testRules()
	rng := rand.New(rand.NewSource(7))

	seen := make(map[uint64]bool)
	for i := 0; i < 2000; i++ {
		d := rules.rearmTicks(rng)
		if d < 180 || d > 840 {
			t.Fatalf("rearmTicks = %d, outside [180, 840]", d)
		}
		seen[d] = true
	}

	// 12 possible values, both endpoints inclusive.
	if len(seen) != 12 {
		t.Errorf("expected 12 distinct delays, saw %d", len(seen))
	}
	if !seen[180] || !seen[840] {
		t.Error("both range endpoints should be reachable")
	}
}

func TestTapLitScoresAndDims(t *testing.T) {
	tile, session, clock := newTestTile(2)
	tile.Light()

	tile.Tap()

	if session.Score() != 1 {
		t.Errorf("score = %d, expected 1", session.Score())
	}
	if tile.Lit() {
		t.Error("tapped tile should go dark immediately")
	}
	if session.Over() {
		t.Error("a hit must not end the run")
	}
	if clock.Pending() != 1 {
		t.Errorf("a hit should leave exactly one re-arm timer, got %d", clock.Pending())
	}
}

func TestTapDarkEndsRun(t *testing.T) {
	tile, session, clock := newTestTile(3)
	tile.Light()
	tile.Tap() // dark now, score 1

	tile.Tap() // miss

	if !session.Over() {
		t.Fatal("tapping a dark tile should end the run")
	}
	if session.Score() != 1 {
		t.Errorf("a miss must not change the score, got %d", session.Score())
	}
	if !tile.Stopped() {
		t.Error("the stop broadcast should have stopped the tile")
	}
	if clock.Pending() != 0 {
		t.Errorf("no timers may remain after the stop, got %d", clock.Pending())
	}
}

func TestAtMostOneTimerPerTile(t *testing.T) {
	tile, _, clock := newTestTile(4)

	// Light and Dim are safe to call at any point; each replaces the
	// previous timer instead of stacking another one.
	ops := []func(){tile.Light, tile.Dim, tile.Light, tile.Light, tile.Dim, tile.Tap}
	for i, op := range ops {
		op()
		if clock.Pending() > 1 {
			t.Fatalf("op %d: %d timers armed, invariant allows at most one", i, clock.Pending())
		}
	}
}

func TestStopCancelsTimerAndIsIdempotent(t *testing.T) {
	tile, _, clock := newTestTile(5)
	tile.Light()

	tile.Stop()
	tile.Stop()

	if tile.Lit() {
		t.Error("stop should force the tile dark")
	}
	if !tile.Stopped() {
		t.Error("tile should report stopped")
	}
	if tile.HasPending() || clock.Pending() != 0 {
		t.Error("stop must cancel the pending timer, not merely ignore it")
	}

	// No timer may fire after the stop, however long we wait.
	for i := 0; i < 1000; i++ {
		clock.Tick()
	}
	if tile.Lit() {
		t.Error("a stopped tile must never transition again")
	}
}

func TestStoppedTileIgnoresEverything(t *testing.T) {
	tile, session, clock := newTestTile(6)
	tile.Light()
	tile.Stop()

	tile.Tap()
	tile.Light()
	tile.Dim()

	if session.Score() != 0 || session.Over() {
		t.Error("operations on a stopped tile must not reach the session")
	}
	if tile.Lit() || clock.Pending() != 0 {
		t.Error("stopped is terminal: no transitions, no timers")
	}
}

func TestNewTileRequiresSession(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewTile with a nil session should panic")
		}
	}()
	NewTile(nil, sched.New(), rand.New(rand.NewSource(1)), testRules())
}
