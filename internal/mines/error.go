package mines

import (
	"errors"
	"fmt"
)

var ErrInvalidCoordinate = errors.New("invalid coordinate")

func invalidPoint(p Point) error {
	return fmt.Errorf("%w %s", ErrInvalidCoordinate, p)
}

// ConfigurationError is returned when game params cannot produce a board,
// e.g. when there are at least as many mines as cells.
type ConfigurationError struct {
	Params  GameParams
	message string
}

// [ConfigurationError] implements [error]
func (e ConfigurationError) Error() string {
	return fmt.Sprintf("invalid game params %s: %s", e.Params.Seed(), e.message)
}
