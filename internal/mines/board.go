package mines

import (
	"fmt"
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// Board is the hidden truth of a game: where the mines are and how many
// mines surround every other cell. A Board never changes once built.
type Board struct {
	Size, MineCount int

	mines mapset.Set[Point]
	// only counts > 0 are stored; any other non-mine point is empty
	adjacency map[Point]int
}

// NewBoard builds a board with mines at the given points.
func NewBoard(size int, mines []Point) (*Board, error) {
	set := mapset.New[Point]()
	for _, p := range mines {
		if !p.In(size) {
			return nil, fmt.Errorf("mine at %w", invalidPoint(p))
		}
		set.Put(p)
	}
	params := GameParams{Size: size, MineCount: set.Size()}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return newBoard(size, set), nil
}

func newBoard(size int, mines mapset.Set[Point]) *Board {
	b := &Board{
		Size:      size,
		MineCount: mines.Size(),
		mines:     mines,
		adjacency: make(map[Point]int),
	}
	for y := range size {
		for x := range size {
			p := Point{x, y}
			if mines.Has(p) {
				continue
			}
			if n := b.countMines(p); n > 0 {
				b.adjacency[p] = n
			}
		}
	}
	return b
}

func (b *Board) countMines(p Point) (n int) {
	for _, q := range p.Neighbors(b.Size) {
		if b.mines.Has(q) {
			n++
		}
	}
	return
}

func (b *Board) IsMine(p Point) bool {
	return b.mines.Has(p)
}

// Adjacent returns the number of mines around p. It is 0 for mines.
func (b *Board) Adjacent(p Point) int {
	return b.adjacency[p]
}

// IsEmpty reports whether p is a zero cell: not a mine and with no mines
// around it. Revealing a zero cell opens the region around it.
func (b *Board) IsEmpty(p Point) bool {
	return p.In(b.Size) && !b.mines.Has(p) && b.adjacency[p] == 0
}

// MineSet returns the mines of the board. Callers must not modify it.
func (b *Board) MineSet() mapset.Set[Point] {
	return b.mines
}

// Mines returns the mine points in row-major order.
func (b *Board) Mines() []Point {
	points := make([]Point, 0, b.mines.Size())
	b.mines.Each(func(p Point) {
		points = append(points, p)
	})
	slices.SortFunc(points, func(p, q Point) int {
		return p.index(b.Size) - q.index(b.Size)
	})
	return points
}
