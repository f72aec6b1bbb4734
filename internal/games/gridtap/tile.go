package gridtap

import (
	"math/rand"

	"github.com/greentile/gridtap/internal/sched"
)

// SessionHooks is the narrow capability a tile reports taps through.
// The session implements it; tiles never see the rest of the session.
type SessionHooks interface {
	// TileHit records a successful tap on a lit tile.
	TileHit()
	// TileMissed records a tap on a dark tile, which ends the run.
	TileMissed()
}

// Rules hold the tile timing for a run. LitTicks is how long a tile stays
// lit before dimming itself; a dimmed tile re-lights after a whole number
// of seconds drawn uniformly from [RearmMinSecs, RearmMaxSecs].
// The game owns one Rules value shared by every tile, so difficulty
// progression applies to all subsequent re-arms at once.
type Rules struct {
	LitTicks     uint64
	RearmMinSecs int
	RearmMaxSecs int
	TickRate     int
}

func (r Rules) rearmTicks(rng *rand.Rand) uint64 {
	span := r.RearmMaxSecs - r.RearmMinSecs + 1
	secs := r.RearmMinSecs + rng.Intn(span)
	return uint64(secs * r.TickRate)
}

// Tile is one grid cell alternating between lit and dark on its own timer.
//
// States are Lit, Dark and Stopped; Stopped is terminal. A tile keeps at
// most one armed timer at any instant: every re-arm cancels the previous
// handle before scheduling the next flip, and Stop cancels outright.
type Tile struct {
	session SessionHooks
	clock   *sched.Scheduler
	rng     *rand.Rand
	rules   *Rules

	lit     bool
	stopped bool
	pending *sched.Task
}

// NewTile creates a dark tile wired to the given session. The session,
// clock and rules are required; a nil session is a caller bug, not a
// runtime condition.
func NewTile(session SessionHooks, clock *sched.Scheduler, rng *rand.Rand, rules *Rules) *Tile {
	if session == nil {
		panic("gridtap: tile created without a session")
	}
	return &Tile{
		session: session,
		clock:   clock,
		rng:     rng,
		rules:   rules,
	}
}

// Light turns the tile lit and arms its dim timer. Safe to call whether or
// not a timer is already armed; the prior one is cancelled first.
func (t *Tile) Light() {
	if t.stopped {
		return
	}
	t.lit = true
	t.arm(t.rules.LitTicks, t.Dim)
}

// Dim turns the tile dark and arms its re-light timer with a fresh random
// delay.
func (t *Tile) Dim() {
	if t.stopped {
		return
	}
	t.lit = false
	t.arm(t.rules.rearmTicks(t.rng), t.Light)
}

// Tap handles a player tap. A lit tile dims immediately and scores through
// the session; a dark tile reports a miss, which ends the run. Taps on a
// stopped tile do nothing.
func (t *Tile) Tap() {
	if t.stopped {
		return
	}
	if t.lit {
		t.Dim()
		t.session.TileHit()
		return
	}
	t.session.TileMissed()
}

// Stop puts the tile in its terminal state: dark, timer cancelled, no
// re-arm. Idempotent.
func (t *Tile) Stop() {
	t.stopped = true
	t.lit = false
	if t.pending != nil {
		t.pending.Cancel()
		t.pending = nil
	}
}

// arm replaces the pending timer with a new one.
func (t *Tile) arm(delay uint64, fn func()) {
	if t.pending != nil {
		t.pending.Cancel()
	}
	t.pending = t.clock.After(delay, fn)
}

// Lit reports whether a tap would currently score.
func (t *Tile) Lit() bool {
	return t.lit
}

// Stopped reports whether the tile has received the stop signal.
func (t *Tile) Stopped() bool {
	return t.stopped
}

// HasPending reports whether a flip timer is armed.
func (t *Tile) HasPending() bool {
	return t.pending != nil && t.pending.Pending()
}
