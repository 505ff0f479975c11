package mines

import (
	"math/rand/v2"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

// Generate places params.MineCount mines on a fresh board, never on safe.
// Points are drawn uniformly from r and redrawn when they hit safe or an
// already placed mine.
func Generate(params GameParams, safe Point, r *rand.Rand) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	size, mineCount := params.Unpack()
	if !safe.In(size) {
		return nil, invalidPoint(safe)
	}

	mines := mapset.New[Point]()
	draws := 0
	for mines.Size() < mineCount {
		draws++
		p := Point{r.IntN(size), r.IntN(size)}
		if p == safe || mines.Has(p) {
			continue
		}
		mines.Put(p)
	}

	b := newBoard(size, mines)

	Log.WithFields(logrus.Fields{
		"seed":  params.Seed(),
		"safe":  safe.String(),
		"draws": draws,
	}).Debug("generated board")

	return b, nil
}
