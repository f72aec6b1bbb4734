// Package gridtap implements the reaction-time tile game. A grid of tiles
// flips between lit and dark on randomized timers; tapping a lit tile scores
// a point, tapping a dark tile ends the run.
package gridtap

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/greentile/gridtap/internal/config"
	"github.com/greentile/gridtap/internal/core"
	"github.com/greentile/gridtap/internal/registry"
	"github.com/greentile/gridtap/internal/sched"
)

// Mode selects the timing variant.
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeBlitz   Mode = "blitz"
)

// Blitz tightens the windows relative to the loaded config.
const (
	blitzLitFactor    = 0.6
	blitzRearmMinSecs = 2
	blitzRearmMaxSecs = 8
)

// Tile cell dimensions on screen.
const (
	tileW     = 9
	tileH     = 3
	tileGapX  = 2
	tileGapY  = 1
	hudHeight = 2
)

// minLitSecs floors difficulty scaling so a lit window never collapses to
// something untappable.
const minLitSecs = 0.4

// Package-level knobs set by the CLI before the game is created.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets the config file path used at the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used at the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// Game drives one grid of tiles through run/game-over/restart and adapts the
// core state machine to the platform's Game interface.
type Game struct {
	mode    Mode
	cfg     core.RuntimeConfig
	gameCfg config.GridTapConfig

	rng     *rand.Rand
	clock   *sched.Scheduler
	session *Session
	grid    *Grid
	rules   Rules

	// Base timing before difficulty scaling, in seconds.
	baseLitSecs   float64
	baseRearmMax  int
	lastBestScore int

	tick      uint64
	cursorRow int
	cursorCol int
	paused    bool
	tooSmall  bool

	originX int
	originY int
}

// New creates a classic-mode game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewBlitz creates a blitz-mode game with tighter flip windows.
func NewBlitz() *Game {
	return &Game{mode: ModeBlitz}
}

func init() {
	registry.Register("gridtap", func() registry.Game {
		return New()
	})
	registry.Register("gridtap_blitz", func() registry.Game {
		return NewBlitz()
	})
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	if g.mode == ModeBlitz {
		return "gridtap_blitz"
	}
	return "gridtap"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeBlitz {
		return "GridTap (Blitz)"
	}
	return "GridTap"
}

// Reset initializes or restarts the game. The session survives restarts (its
// Reset clears score and game-over); the grid and every tile are rebuilt
// from scratch, each new tile beginning lit.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.clock = sched.New()
	g.tick = 0
	g.paused = false
	g.cursorRow = 0
	g.cursorCol = 0

	gameCfg, err := config.LoadGridTap(configPath)
	if err != nil {
		gameCfg = config.DefaultGridTapConfig()
	}
	if difficultyPreset != "" {
		config.ApplyGridTapPreset(&gameCfg, config.DifficultyPreset(difficultyPreset))
	}
	g.gameCfg = gameCfg

	g.baseLitSecs = gameCfg.Timing.LitSecs
	rearmMin := gameCfg.Timing.RearmMinSecs
	g.baseRearmMax = gameCfg.Timing.RearmMaxSecs
	if g.mode == ModeBlitz {
		g.baseLitSecs *= blitzLitFactor
		rearmMin = blitzRearmMinSecs
		g.baseRearmMax = blitzRearmMaxSecs
	}

	g.rules = Rules{
		LitTicks:     secsToTicks(g.baseLitSecs, cfg.TickRate),
		RearmMinSecs: rearmMin,
		RearmMaxSecs: g.baseRearmMax,
		TickRate:     cfg.TickRate,
	}

	if g.session == nil {
		g.session = NewSession()
	} else {
		g.session.Reset()
	}

	g.layout()
	g.grid = NewGrid(gameCfg.Board.Rows, gameCfg.Board.Cols, g.session, g.clock, g.rng, &g.rules)
	g.applyDifficulty()
}

// layout computes where the grid sits on screen and whether it fits.
func (g *Game) layout() {
	rows, cols := g.gameCfg.Board.Rows, g.gameCfg.Board.Cols
	gridW := cols*tileW + (cols-1)*tileGapX
	gridH := rows*tileH + (rows-1)*tileGapY

	requiredW := gridW
	requiredH := hudHeight + 1 + gridH + 1
	g.tooSmall = g.cfg.ScreenW < requiredW || g.cfg.ScreenH < requiredH

	g.originX = (g.cfg.ScreenW - gridW) / 2
	g.originY = hudHeight + 1
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && g.session.Over() {
		g.cfg.Seed = g.rng.Int63()
		g.Reset(g.cfg)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.session.Over() {
		g.paused = !g.paused
	}

	// A window too small to render freezes the run like a pause; timers must
	// not fire while the player cannot see the grid.
	if g.session.Over() || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.moveCursor(in)

	// Taps resolve before the clock advances, so a tap and a flip due on
	// the same tick always goes to the player.
	if in.Has(core.ActionTap) {
		if t := g.grid.TileAt(g.cursorRow, g.cursorCol); t != nil {
			t.Tap()
		}
	}
	if x, y, ok := in.ClickAt(); ok && !g.tooSmall {
		if row, col, hit := g.tileAtScreen(x, y); hit {
			g.cursorRow, g.cursorCol = row, col
			g.grid.TileAt(row, col).Tap()
		}
	}

	if !g.session.Over() {
		g.applyDifficulty()
		g.clock.Tick()
	}

	return core.StepResult{State: g.State()}
}

// moveCursor applies directional input, clamped to the grid.
func (g *Game) moveCursor(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.cursorRow = core.Clamp(g.cursorRow-1, 0, g.grid.Rows()-1)
	case in.Has(core.ActionDown):
		g.cursorRow = core.Clamp(g.cursorRow+1, 0, g.grid.Rows()-1)
	case in.Has(core.ActionLeft):
		g.cursorCol = core.Clamp(g.cursorCol-1, 0, g.grid.Cols()-1)
	case in.Has(core.ActionRight):
		g.cursorCol = core.Clamp(g.cursorCol+1, 0, g.grid.Cols()-1)
	}
}

// applyDifficulty rescales the shared rules for the current score. Tiles
// pick the new windows up on their next re-arm.
func (g *Game) applyDifficulty() {
	level := config.ProgressLevel(g.gameCfg.Difficulty, g.session.Score())

	litSecs := g.baseLitSecs - g.gameCfg.Difficulty.Scaling.LitReductionSecs*level
	if litSecs < minLitSecs {
		litSecs = minLitSecs
	}
	g.rules.LitTicks = secsToTicks(litSecs, g.cfg.TickRate)

	rearmMax := g.baseRearmMax - int(math.Round(float64(g.gameCfg.Difficulty.Scaling.RearmReductionSecs)*level))
	if rearmMax < g.rules.RearmMinSecs {
		rearmMax = g.rules.RearmMinSecs
	}
	g.rules.RearmMaxSecs = rearmMax
}

// tileRect returns the screen rectangle of a tile.
func (g *Game) tileRect(row, col int) core.Rect {
	x := g.originX + col*(tileW+tileGapX)
	y := g.originY + row*(tileH+tileGapY)
	return core.NewRect(x, y, tileW, tileH)
}

// tileAtScreen maps a screen position to a tile, if any.
func (g *Game) tileAtScreen(x, y int) (row, col int, ok bool) {
	for r := 0; r < g.grid.Rows(); r++ {
		for c := 0; c < g.grid.Cols(); c++ {
			if g.tileRect(r, c).Contains(x, y) {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// Render draws the game to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	for r := 0; r < g.grid.Rows(); r++ {
		for c := 0; c < g.grid.Cols(); c++ {
			g.renderTile(dst, r, c)
		}
	}

	cursor := g.tileRect(g.cursorRow, g.cursorCol)
	frame := core.NewRect(cursor.X-1, cursor.Y-1, cursor.W+2, cursor.H+2)
	dst.DrawBox(frame, core.ColorBrightYellow)

	switch {
	case g.session.Over():
		g.renderOverlay(dst,
			fmt.Sprintf("Run over! Final score: %d", g.session.Score()),
			"Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s | Score: %d   Lit: %d/%d",
		g.Title(), g.session.Score(), g.grid.LitCount(), g.grid.Size())
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderTile draws one tile block.
func (g *Game) renderTile(dst *core.Screen, row, col int) {
	t := g.grid.TileAt(row, col)
	rect := g.tileRect(row, col)

	if t.Lit() {
		dst.FillRect(rect, '█', core.ColorBrightGreen)
		return
	}
	dst.FillRect(rect, '░', core.ColorGray)
}

// renderOverlay draws a centered boxed message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := core.Max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorDefault)
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}

// State returns the platform-visible run status.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.Over(),
		Paused:   g.paused,
	}
}

func secsToTicks(secs float64, tickRate int) uint64 {
	ticks := math.Round(secs * float64(tickRate))
	if ticks < 1 {
		return 1
	}
	return uint64(ticks)
}
