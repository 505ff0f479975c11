package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vancomm/minesweeper-engine/internal/config"
	"github.com/vancomm/minesweeper-engine/internal/logging"
	"github.com/vancomm/minesweeper-engine/internal/mines"
	"github.com/vancomm/minesweeper-engine/internal/sessions"
)

var log = logrus.New()

func main() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:          "mines",
		Short:        "Minesweeper engine: HTTP/websocket server and terminal client",
		SilenceUsage: true,
	}

	const usage = "config file path (yaml, json or toml)"
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", usage)

	cmd.AddCommand(
		newServeCmd(&configPath),
		newPlayCmd(&configPath),
	)
	return cmd
}

// setup loads the config and installs the configured logger everywhere.
func setup(configPath string) (*config.Config, error) {
	c, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(c)
	if err != nil {
		return nil, err
	}
	log = logger
	mines.Log = logger
	sessions.Log = logger
	return c, nil
}
