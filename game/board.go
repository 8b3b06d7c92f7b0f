package game

import (
	"errors"
	"fmt"
	"math"

	"github.com/nasosev/voronoi-hex/geometry"
)

// Player identifies who owns a territory or whose turn it is.
type Player int

const (
	Neutral Player = iota
	Blue
	Red
)

func (p Player) String() string {
	switch p {
	case Blue:
		return "blue"
	case Red:
		return "red"
	default:
		return "neutral"
	}
}

// Opponent returns the other player.
func (p Player) Opponent() Player {
	switch p {
	case Blue:
		return Red
	case Red:
		return Blue
	default:
		return Neutral
	}
}

// Side is the boundary group a territory belongs to. Blue owns top and
// bottom, red owns left and right, interior territories carry SideNone.
type Side int

const (
	SideNone Side = iota
	SideTop
	SideBottom
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// Owner returns the player who needs this side for their connection.
func (s Side) Owner() Player {
	switch s {
	case SideTop, SideBottom:
		return Blue
	case SideLeft, SideRight:
		return Red
	default:
		return Neutral
	}
}

// Territory is the atomic unit a player claims. Polygon and Neighbors are
// immutable after the board is built; Owner is the only field that changes
// during play.
type Territory struct {
	ID        int
	Polygon   geometry.Polygon // rendering only, win logic never reads it
	Neighbors []int
	Side      Side
	Owner     Player
}

// Board is the full territory graph. Built once per game; only ownership
// changes afterwards.
type Board struct {
	Shape       geometry.Shape
	Territories []*Territory
}

// ErrDegenerateBoard means the tessellation did not produce a playable
// board (some side has no territory, or the graph is broken).
var ErrDegenerateBoard = errors.New("game: degenerate board")

// BuildBoard converts a tessellation into the abstract territory graph.
// Side classification: a cell with wall contacts is tagged with exactly one
// side - the touched wall nearest its site, ties broken in the fixed order
// top, bottom, left, right. The boundary then still splits into four
// contiguous arcs, which is what the no-draw argument needs.
func BuildBoard(tess *geometry.Tessellation) (*Board, error) {
	b := &Board{
		Shape:       tess.Shape,
		Territories: make([]*Territory, len(tess.Cells)),
	}
	for i, cell := range tess.Cells {
		neighbors := make([]int, len(cell.Neighbors))
		copy(neighbors, cell.Neighbors)
		b.Territories[i] = &Territory{
			ID:        i,
			Polygon:   cell.Polygon,
			Neighbors: neighbors,
			Side:      classifySide(cell),
			Owner:     Neutral,
		}
	}
	if err := b.validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// classifySide picks the single side tag for a cell, or SideNone for
// interior cells.
func classifySide(cell geometry.Cell) Side {
	if len(cell.Walls) == 0 {
		return SideNone
	}
	best := cell.Walls[0]
	bestDist := wallDist(cell.Site, best)
	for _, w := range cell.Walls[1:] {
		if d := wallDist(cell.Site, w); d < bestDist-geometry.Epsilon ||
			(math.Abs(d-bestDist) <= geometry.Epsilon && w < best) {
			best, bestDist = w, d
		}
	}
	return sideOf(best)
}

// wallDist is the perpendicular distance from a site to a square wall. Disc
// cells only ever carry one arc, so the value is moot there.
func wallDist(site geometry.Point, w geometry.Wall) float64 {
	switch w {
	case geometry.WallTop:
		return geometry.Radius - site.Y
	case geometry.WallBottom:
		return site.Y + geometry.Radius
	case geometry.WallLeft:
		return site.X + geometry.Radius
	default:
		return geometry.Radius - site.X
	}
}

func sideOf(w geometry.Wall) Side {
	switch w {
	case geometry.WallTop:
		return SideTop
	case geometry.WallBottom:
		return SideBottom
	case geometry.WallLeft:
		return SideLeft
	default:
		return SideRight
	}
}

// validate checks the board invariants: symmetric adjacency, a connected
// graph, and at least one territory per side.
func (b *Board) validate() error {
	for _, t := range b.Territories {
		for _, nb := range t.Neighbors {
			if nb < 0 || nb >= len(b.Territories) {
				return fmt.Errorf("%w: neighbor %d out of range", ErrDegenerateBoard, nb)
			}
			if !contains(b.Territories[nb].Neighbors, t.ID) {
				return fmt.Errorf("%w: adjacency %d-%d not symmetric", ErrDegenerateBoard, t.ID, nb)
			}
		}
	}

	if !b.connected() {
		return fmt.Errorf("%w: adjacency graph not connected", ErrDegenerateBoard)
	}

	var sideCounts [5]int
	for _, t := range b.Territories {
		sideCounts[t.Side]++
	}
	for _, s := range []Side{SideTop, SideBottom, SideLeft, SideRight} {
		if sideCounts[s] == 0 {
			return fmt.Errorf("%w: no territory on side %s", ErrDegenerateBoard, s)
		}
	}
	return nil
}

// connected checks plain graph connectivity with a BFS from territory 0.
func (b *Board) connected() bool {
	if len(b.Territories) == 0 {
		return false
	}
	visited := make([]bool, len(b.Territories))
	queue := []int{0}
	visited[0] = true
	count := 1
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, nb := range b.Territories[current].Neighbors {
			if !visited[nb] {
				visited[nb] = true
				count++
				queue = append(queue, nb)
			}
		}
	}
	return count == len(b.Territories)
}

// Territory returns the territory with the given id, or false if no such
// territory exists.
func (b *Board) Territory(id int) (*Territory, bool) {
	if id < 0 || id >= len(b.Territories) {
		return nil, false
	}
	return b.Territories[id], true
}

// SideTerritories returns the ids tagged with the given side.
func (b *Board) SideTerritories(s Side) []int {
	var ids []int
	for _, t := range b.Territories {
		if t.Side == s {
			ids = append(ids, t.ID)
		}
	}
	return ids
}

// Copy returns a deep copy, for read-only snapshots handed to rendering.
func (b *Board) Copy() *Board {
	territories := make([]*Territory, len(b.Territories))
	for i, t := range b.Territories {
		neighbors := make([]int, len(t.Neighbors))
		copy(neighbors, t.Neighbors)
		polygon := make(geometry.Polygon, len(t.Polygon))
		copy(polygon, t.Polygon)
		territories[i] = &Territory{
			ID:        t.ID,
			Polygon:   polygon,
			Neighbors: neighbors,
			Side:      t.Side,
			Owner:     t.Owner,
		}
	}
	return &Board{Shape: b.Shape, Territories: territories}
}

// contains checks if a slice contains a specific item.
func contains(slice []int, item int) bool {
	for _, v := range slice {
		if v == item {
			return true
		}
	}
	return false
}
