package gridtap

// Session aggregates the score for one play-through and ends the run when a
// dark tile is tapped. It implements SessionHooks, the capability interface
// tiles call back into, and owns the stop broadcast that halts every live
// tile timer when the run ends.
//
// All methods are invoked from the single-threaded tick dispatch, so no
// locking is needed; an implementation driving tiles from parallel timers
// would have to serialize these.
type Session struct {
	score int
	over  bool
	stop  *StopBroadcast
}

// NewSession creates a fresh session with a zero score and an empty stop
// broadcast.
func NewSession() *Session {
	return &Session{stop: NewStopBroadcast()}
}

// TileHit increments the score by one.
func (s *Session) TileHit() {
	s.score++
}

// TileMissed ends the run. A miss carries no score change.
func (s *Session) TileMissed() {
	s.End()
}

// End marks the run over and publishes the stop signal to every subscribed
// tile. Only the first call per run has any effect.
func (s *Session) End() {
	if s.over {
		return
	}
	s.over = true
	s.stop.Publish()
}

// Reset clears the score and the over flag and replaces the stop broadcast,
// dropping the previous run's (now stopped) tiles. The collaborator that
// owns the grid is responsible for building fresh tiles afterwards.
func (s *Session) Reset() {
	s.score = 0
	s.over = false
	s.stop = NewStopBroadcast()
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Over reports whether the run has ended.
func (s *Session) Over() bool {
	return s.over
}

// Broadcast returns the stop broadcast for the current run.
func (s *Session) Broadcast() *StopBroadcast {
	return s.stop
}
