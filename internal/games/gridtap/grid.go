package gridtap

import (
	"math/rand"

	"github.com/greentile/gridtap/internal/sched"
)

// Grid is a fixed rows×cols population of tiles for one run. Every tile is
// subscribed to the session's stop broadcast and begins lit.
type Grid struct {
	rows  int
	cols  int
	tiles []*Tile
}

// NewGrid builds the tile population for a fresh run.
func NewGrid(rows, cols int, session *Session, clock *sched.Scheduler, rng *rand.Rand, rules *Rules) *Grid {
	g := &Grid{
		rows:  rows,
		cols:  cols,
		tiles: make([]*Tile, 0, rows*cols),
	}
	for i := 0; i < rows*cols; i++ {
		t := NewTile(session, clock, rng, rules)
		session.Broadcast().Subscribe(t)
		g.tiles = append(g.tiles, t)
		t.Light()
	}
	return g
}

// Rows returns the number of tile rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of tile columns.
func (g *Grid) Cols() int {
	return g.cols
}

// Size returns the total tile count.
func (g *Grid) Size() int {
	return len(g.tiles)
}

// TileAt returns the tile at the given row and column, or nil when out of
// range.
func (g *Grid) TileAt(row, col int) *Tile {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return nil
	}
	return g.tiles[row*g.cols+col]
}

// Tiles returns the tiles in row-major order.
func (g *Grid) Tiles() []*Tile {
	return g.tiles
}

// LitCount returns how many tiles are currently lit.
func (g *Grid) LitCount() int {
	n := 0
	for _, t := range g.tiles {
		if t.Lit() {
			n++
		}
	}
	return n
}
