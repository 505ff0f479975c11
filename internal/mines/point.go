package mines

import "fmt"

// Point is a cell position on a square board. Points compare by value and
// are used as keys for every per-cell collection.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.X, p.Y)
}

// In reports whether p lies on a size×size board.
func (p Point) In(size int) bool {
	return 0 <= p.X && p.X < size && 0 <= p.Y && p.Y < size
}

// Neighbors returns the points of the 8-neighbourhood of p that lie on a
// size×size board. The board does not wrap: a corner has 3 neighbours, an
// edge cell 5 and an interior cell 8.
func (p Point) Neighbors(size int) []Point {
	ns := make([]Point, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			q := Point{p.X + dx, p.Y + dy}
			if q.In(size) {
				ns = append(ns, q)
			}
		}
	}
	return ns
}

func (p Point) index(size int) int {
	return p.Y*size + p.X
}

func pointAt(i, size int) Point {
	return Point{i % size, i / size}
}
