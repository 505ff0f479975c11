package mines

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

type OutcomeKind uint8

const (
	Blocked OutcomeKind = iota
	SafeEmpty
	SafeNumber
	MineHit
)

func (k OutcomeKind) String() string {
	switch k {
	case Blocked:
		return "blocked"
	case SafeEmpty:
		return "safe_empty"
	case SafeNumber:
		return "safe_number"
	case MineHit:
		return "mine_hit"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", uint8(k))
	}
}

// [OutcomeKind] implements [encoding.TextMarshaler]
func (k OutcomeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Outcome is the result of a reveal. Number is set for SafeNumber only.
type Outcome struct {
	Kind   OutcomeKind `json:"kind"`
	Number int         `json:"number,omitempty"`
}

func (o Outcome) String() string {
	if o.Kind == SafeNumber {
		return fmt.Sprintf("%s(%d)", o.Kind, o.Number)
	}
	return o.Kind.String()
}

func revealable(s CellState) bool {
	return s == Hidden || s == Questioned
}

// reveal opens the cell at p and returns the outcome together with every
// cell it opened. Flagged and already revealed cells are left alone.
//
// A zero cell opens its whole zero region plus the numbered border around
// it. The region is walked with an explicit stack; flagged cells stop the
// walk and mines are never reached since no zero cell touches one.
func reveal(b *Board, cells *Cells, p Point) (Outcome, []Point) {
	if !revealable(cells.Get(p)) {
		return Outcome{Kind: Blocked}, nil
	}

	cells.Set(p, Revealed)
	opened := []Point{p}

	if b.IsMine(p) {
		return Outcome{Kind: MineHit}, opened
	}
	if n := b.Adjacent(p); n > 0 {
		return Outcome{Kind: SafeNumber, Number: n}, opened
	}

	visited := mapset.New[Point]()
	visited.Put(p)
	stack := []Point{p}
	for len(stack) > 0 {
		q := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, n := range q.Neighbors(b.Size) {
			if visited.Has(n) || !revealable(cells.Get(n)) {
				continue
			}
			visited.Put(n)
			cells.Set(n, Revealed)
			opened = append(opened, n)
			if b.IsEmpty(n) {
				stack = append(stack, n)
			}
		}
	}

	return Outcome{Kind: SafeEmpty}, opened
}
