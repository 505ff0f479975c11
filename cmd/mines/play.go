package main

import (
	"errors"
	"math/rand/v2"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vancomm/minesweeper-engine/internal/console"
	"github.com/vancomm/minesweeper-engine/internal/mines"
)

type playFlags struct {
	preset    string
	size      int
	mineCount int
	seed      uint64
}

// params picks the board: --size/--mines win over --preset, which wins
// over game.preset from the config.
func (f playFlags) params(cmd *cobra.Command, defaultPreset string) (mines.GameParams, error) {
	sizeSet, minesSet := cmd.Flags().Changed("size"), cmd.Flags().Changed("mines")
	switch {
	case sizeSet && minesSet:
		return mines.GameParams{Size: f.size, MineCount: f.mineCount}, nil
	case sizeSet || minesSet:
		return mines.GameParams{}, errors.New("--size and --mines must be given together")
	case f.preset != "":
		return mines.ParsePreset(f.preset)
	default:
		return mines.ParsePreset(defaultPreset)
	}
}

func newPlayCmd(configPath *string) *cobra.Command {
	var flags playFlags

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := setup(*configPath)
			if err != nil {
				return err
			}
			// keep debug output from interleaving with the board
			if log.GetLevel() > logrus.WarnLevel && c.Log.Level == "" {
				log.SetLevel(logrus.WarnLevel)
			}

			params, err := flags.params(cmd, c.Game.Preset)
			if err != nil {
				return err
			}

			var r *rand.Rand
			if cmd.Flags().Changed("seed") {
				r = rand.New(rand.NewPCG(flags.seed, flags.seed))
			}
			g, err := mines.NewGame(params, r)
			if err != nil {
				return err
			}

			return console.Play(cmd.Context(), os.Stdin, cmd.OutOrStdout(), g)
		},
	}

	cmd.Flags().StringVarP(&flags.preset, "preset", "p", "", "beginner, intermediate or expert")
	cmd.Flags().IntVar(&flags.size, "size", 0, "board side length")
	cmd.Flags().IntVar(&flags.mineCount, "mines", 0, "number of mines")
	cmd.Flags().Uint64Var(&flags.seed, "seed", 0, "seed for a reproducible board")
	return cmd
}
