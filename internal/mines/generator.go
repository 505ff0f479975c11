package mines

import (
	"fmt"
	"strings"
)

type GameParams struct {
	Size, MineCount int
}

var (
	Beginner     = GameParams{Size: 8, MineCount: 10}
	Intermediate = GameParams{Size: 16, MineCount: 40}
	Expert       = GameParams{Size: 24, MineCount: 99}
)

var presets = map[string]GameParams{
	"beginner":     Beginner,
	"intermediate": Intermediate,
	"expert":       Expert,
}

// PresetNames lists preset names from the smallest board to the largest.
var PresetNames = []string{"beginner", "intermediate", "expert"}

func ParsePreset(name string) (GameParams, error) {
	p, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return GameParams{}, fmt.Errorf(
			"unknown preset %q (want one of %s)",
			name, strings.Join(PresetNames, ", "),
		)
	}
	return p, nil
}

// Preset returns the name of the preset p matches, or "custom".
func (p GameParams) Preset() string {
	for _, name := range PresetNames {
		if presets[name] == p {
			return name
		}
	}
	return "custom"
}

func (p GameParams) Unpack() (size int, mineCount int) {
	return p.Size, p.MineCount
}

// MaxSize bounds the side of custom boards.
const MaxSize = 256

func (p GameParams) Validate() error {
	switch {
	case p.Size <= 0:
		return ConfigurationError{p, "size must be positive"}
	case p.Size > MaxSize:
		return ConfigurationError{p, fmt.Sprintf("size must not exceed %d", MaxSize)}
	case p.MineCount < 0:
		return ConfigurationError{p, "mine count must not be negative"}
	case p.MineCount >= p.Size*p.Size:
		return ConfigurationError{p, "mine count must be less than the number of cells"}
	}
	return nil
}

func (p GameParams) Seed() string {
	return fmt.Sprintf("%d:%d", p.Size, p.MineCount)
}

func ParseSeed(seed string) (*GameParams, error) {
	p := &GameParams{}
	sseed := strings.ReplaceAll(seed, ":", " ")
	n, err := fmt.Sscanf(sseed, "%d %d", &p.Size, &p.MineCount)
	if n != 2 || err != nil {
		return nil, fmt.Errorf(
			`invalid game params seed (sseed = "%s", n = %d, err = %w)`,
			sseed, n, err,
		)
	}
	return p, nil
}

func (p GameParams) ValidatePoint(x, y int) bool {
	return Point{x, y}.In(p.Size)
}
