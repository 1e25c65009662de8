package main

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"nebula-vault/cli"
	"nebula-vault/config"
	"nebula-vault/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Log.WithError(err).Error("Exiting.")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return cli.NewRootCmd(runWindow)
}

// runWindow opens the game window and blocks until it is closed
func runWindow(settings config.Settings) error {
	game, err := NewGame(settings)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(settings.TPS)

	logger.For("main").WithField("tps", settings.TPS).Info("Starting window.")
	if err := ebiten.RunGame(game); err != nil {
		return eris.Wrap(err, "game loop exited")
	}
	return nil
}
