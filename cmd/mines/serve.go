package main

import (
	"github.com/spf13/cobra"

	"github.com/vancomm/minesweeper-engine/internal/app"
)

func newServeCmd(configPath *string) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve games over HTTP and websockets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := setup(*configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				c.Addr = addr
			}

			log.Info("starting up, mode = ", c.Mode)
			log.WithFields(c.Fields()).Debug("config")

			a, err := app.New(log, c)
			if err != nil {
				return err
			}
			if err := a.Start(cmd.Context()); err != nil {
				log.Errorf("exit reason: %s", err)
				return err
			}
			log.Info("server stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides the config")
	return cmd
}
