package mines

// CellView is what a renderer needs to draw one cell.
//
// Number is the mine count of a revealed safe cell, 0 when there is
// nothing to display. Once the game is over Mine exposes every mine,
// Exploded marks the one the player hit and WrongFlag marks flags placed on
// safe cells.
type CellView struct {
	State     CellState `json:"state"`
	Number    int       `json:"number,omitempty"`
	Mine      bool      `json:"mine,omitempty"`
	Exploded  bool      `json:"exploded,omitempty"`
	WrongFlag bool      `json:"wrong_flag,omitempty"`
}

func (g *Game) CellView(p Point) (CellView, error) {
	if !p.In(g.Size) {
		return CellView{}, invalidPoint(p)
	}
	return g.view(p), nil
}

func (g *Game) view(p Point) CellView {
	v := CellView{State: g.cells.Get(p)}
	if g.board == nil {
		return v
	}
	mine := g.board.IsMine(p)
	if v.State == Revealed && !mine {
		v.Number = g.board.Adjacent(p)
	}
	if g.Over() || (v.State == Revealed && mine) {
		v.Mine = mine
	}
	if g.status == Lost {
		v.Exploded = p == g.exploded
		v.WrongFlag = v.State == Flagged && !mine
	}
	return v
}

// View returns the views of all cells, one row per y.
func (g *Game) View() [][]CellView {
	rows := make([][]CellView, g.Size)
	for y := range g.Size {
		rows[y] = make([]CellView, g.Size)
		for x := range g.Size {
			rows[y][x] = g.view(Point{x, y})
		}
	}
	return rows
}
