package mines

import "github.com/zyedidia/generic/mapset"

// CheckVictory reports whether the flagged cells are exactly the mines:
// every mine flagged and nothing else.
func CheckVictory(cells *Cells, mines mapset.Set[Point]) bool {
	flagged := cells.Flagged()
	if len(flagged) != mines.Size() {
		return false
	}
	for _, p := range flagged {
		if !mines.Has(p) {
			return false
		}
	}
	return true
}
