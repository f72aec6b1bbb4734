package gridtap

// RunState labels the game's overall state for snapshots.
type RunState string

const (
	StatePlaying     RunState = "playing"
	StateGameOver    RunState = "game_over"
	StatePaused      RunState = "paused"
	StatePausedSmall RunState = "paused_small_window"
)

// Snapshot captures the observable game state for determinism tests.
type Snapshot struct {
	Tick          uint64
	Mode          string
	Score         int
	LitTiles      int
	StoppedTiles  int
	PendingTimers int
	CursorRow     int
	CursorCol     int
	State         RunState
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.session.Over():
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	stopped := 0
	for _, t := range g.grid.Tiles() {
		if t.Stopped() {
			stopped++
		}
	}

	return Snapshot{
		Tick:          g.tick,
		Mode:          string(g.mode),
		Score:         g.session.Score(),
		LitTiles:      g.grid.LitCount(),
		StoppedTiles:  stopped,
		PendingTimers: g.clock.Pending(),
		CursorRow:     g.cursorRow,
		CursorCol:     g.cursorCol,
		State:         state,
	}
}
