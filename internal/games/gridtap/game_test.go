package gridtap

import (
	"math/rand"
	"testing"

	"github.com/greentile/gridtap/internal/core"
	"github.com/greentile/gridtap/internal/sched"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestResetStartsEveryTileLit(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))

	snap := g.Snapshot()
	if snap.Score != 0 {
		t.Errorf("score = %d, expected 0", snap.Score)
	}
	if snap.LitTiles != g.grid.Size() {
		t.Errorf("lit tiles = %d, expected all %d", snap.LitTiles, g.grid.Size())
	}
	if snap.PendingTimers != g.grid.Size() {
		t.Errorf("pending timers = %d, expected one per tile (%d)", snap.PendingTimers, g.grid.Size())
	}
}

func TestTapLitTileAtCursor(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))

	g.Step(frame(core.ActionTap))

	if g.session.Score() != 1 {
		t.Errorf("score = %d, expected 1", g.session.Score())
	}
	if g.grid.TileAt(0, 0).Lit() {
		t.Error("tapped tile should be dark")
	}
	if g.session.Over() {
		t.Error("a hit must not end the run")
	}
}

func TestTapDarkTileEndsRun(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))

	g.Step(frame(core.ActionTap)) // hit, tile (0,0) goes dark
	g.Step(frame(core.ActionTap)) // miss on the same dark tile

	if !g.session.Over() {
		t.Fatal("tapping a dark tile should end the run")
	}
	if g.session.Score() != 1 {
		t.Errorf("score = %d, a miss must not change it", g.session.Score())
	}

	snap := g.Snapshot()
	if snap.StoppedTiles != g.grid.Size() {
		t.Errorf("stopped tiles = %d, expected all %d", snap.StoppedTiles, g.grid.Size())
	}
	if snap.PendingTimers != 0 {
		t.Errorf("pending timers = %d after game over, expected 0", snap.PendingTimers)
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))
	g.Step(frame(core.ActionTap))
	g.Step(frame(core.ActionTap))
	if !g.session.Over() {
		t.Fatal("setup: run should be over")
	}

	g.Step(frame(core.ActionRestart))

	if g.session.Over() {
		t.Error("restart should clear the over flag")
	}
	if g.session.Score() != 0 {
		t.Errorf("score = %d after restart, expected 0", g.session.Score())
	}
	snap := g.Snapshot()
	if snap.LitTiles != g.grid.Size() {
		t.Errorf("fresh tiles should begin lit, got %d/%d", snap.LitTiles, g.grid.Size())
	}
}

func TestCursorMovementClamps(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))

	g.Step(frame(core.ActionUp))
	g.Step(frame(core.ActionLeft))
	if g.cursorRow != 0 || g.cursorCol != 0 {
		t.Errorf("cursor should clamp at the origin, got (%d, %d)", g.cursorRow, g.cursorCol)
	}

	for i := 0; i < 50; i++ {
		g.Step(frame(core.ActionDown))
		g.Step(frame(core.ActionRight))
	}
	if g.cursorRow != g.grid.Rows()-1 || g.cursorCol != g.grid.Cols()-1 {
		t.Errorf("cursor should clamp at the far corner, got (%d, %d)", g.cursorRow, g.cursorCol)
	}
}

func TestMouseClickTapsTile(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))

	rect := g.tileRect(1, 2)
	in := core.NewInputFrame()
	in.Click(rect.X+rect.W/2, rect.Y+rect.H/2)
	g.Step(in)

	if g.session.Score() != 1 {
		t.Errorf("score = %d, click on a lit tile should score", g.session.Score())
	}
	if g.cursorRow != 1 || g.cursorCol != 2 {
		t.Errorf("cursor should follow the click, got (%d, %d)", g.cursorRow, g.cursorCol)
	}
	if g.grid.TileAt(1, 2).Lit() {
		t.Error("clicked tile should be dark")
	}
}

func TestClickOutsideGridIsIgnored(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))

	in := core.NewInputFrame()
	in.Click(0, 0) // HUD area
	g.Step(in)

	if g.session.Score() != 0 || g.session.Over() {
		t.Error("clicks outside any tile must not tap")
	}
}

func TestPauseFreezesTimers(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))

	g.Step(frame(core.ActionPause))
	before := g.Snapshot()

	for i := 0; i < 500; i++ {
		g.Step(core.NewInputFrame())
	}
	after := g.Snapshot()

	if after.State != StatePaused {
		t.Fatal("game should still be paused")
	}
	if after.LitTiles != before.LitTiles || after.PendingTimers != before.PendingTimers {
		t.Error("no tile may flip while paused")
	}

	g.Step(frame(core.ActionPause))
	if g.paused {
		t.Error("pause should toggle off")
	}
}

func TestOneTimerPerLiveTileInvariant(t *testing.T) {
	g := New()
	g.Reset(testConfig(7))
	rng := rand.New(rand.NewSource(99))

	for i := 0; i < 2000 && !g.session.Over(); i++ {
		in := core.NewInputFrame()
		switch rng.Intn(6) {
		case 0:
			in.Set(core.ActionTap)
		case 1:
			in.Set(core.ActionUp)
		case 2:
			in.Set(core.ActionDown)
		case 3:
			in.Set(core.ActionLeft)
		case 4:
			in.Set(core.ActionRight)
		}
		g.Step(in)

		live := 0
		for _, tile := range g.grid.Tiles() {
			if !tile.Stopped() {
				live++
			}
		}
		if g.clock.Pending() != live {
			t.Fatalf("step %d: %d timers for %d live tiles; exactly one each required",
				i, g.clock.Pending(), live)
		}
	}

	if g.session.Over() && g.clock.Pending() != 0 {
		t.Errorf("timers remained after game over: %d", g.clock.Pending())
	}
}

func TestDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i%37 == 0:
			inputs[i].Set(core.ActionTap)
		case i%11 == 0:
			inputs[i].Set(core.ActionRight)
		case i%13 == 0:
			inputs[i].Set(core.ActionDown)
		}
	}

	run := func() Snapshot {
		g := New()
		g.Reset(testConfig(12345))
		for _, in := range inputs {
			g.Step(in)
			if g.session.Over() {
				break
			}
		}
		return g.Snapshot()
	}

	s1 := run()
	s2 := run()
	if s1 != s2 {
		t.Errorf("same seed and inputs diverged:\n run1: %+v\n run2: %+v", s1, s2)
	}
}

// TestFullRoundTrip walks the whole tile lifecycle on a single tile: hit,
// natural re-light, second hit, natural dim, losing miss.
func TestFullRoundTrip(t *testing.T) {
	session := NewSession()
	clock := sched.New()
	rng := rand.New(rand.NewSource(21))
	rules := testRules()
	grid := NewGrid(1, 1, session, clock, rng, rules)
	tile := grid.TileAt(0, 0)

	if !tile.Lit() {
		t.Fatal("tile should begin lit")
	}

	// Tap while lit: score 1, tile dark, re-arm within [3, 14] seconds.
	tile.Tap()
	if session.Score() != 1 || tile.Lit() {
		t.Fatalf("after first tap: score=%d lit=%v", session.Score(), tile.Lit())
	}

	dimmedAt := clock.Now()
	for !tile.Lit() {
		clock.Tick()
	}
	rearm := clock.Now() - dimmedAt
	if rearm < 180 || rearm > 840 {
		t.Fatalf("re-arm took %d ticks, outside [180, 840]", rearm)
	}

	// Tap while lit again: score 2.
	tile.Tap()
	if session.Score() != 2 {
		t.Fatalf("score = %d, expected 2", session.Score())
	}

	// Let it re-light, then let the lit window elapse naturally.
	for !tile.Lit() {
		clock.Tick()
	}
	for i := uint64(0); i < rules.LitTicks; i++ {
		clock.Tick()
	}
	if tile.Lit() {
		t.Fatal("lit window should have elapsed naturally")
	}

	// Tap while dark: run over, score unchanged.
	tile.Tap()
	if !session.Over() {
		t.Fatal("miss should end the run")
	}
	if session.Score() != 2 {
		t.Errorf("final score = %d, expected 2", session.Score())
	}
	if !tile.Stopped() || clock.Pending() != 0 {
		t.Error("tile should be stopped with no pending timer")
	}
}
