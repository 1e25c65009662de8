// Package cli builds the nebula-vault command tree. The window itself is
// injected so the commands stay free of ebiten and can run headless.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"nebula-vault/config"
	"nebula-vault/logger"
	"nebula-vault/simulation"
)

// WindowRunner opens the game window and blocks until it is closed.
type WindowRunner func(settings config.Settings) error

// NewRootCmd returns the root command. Running it without a subcommand
// hands the loaded settings to runWindow.
func NewRootCmd(runWindow WindowRunner) *cobra.Command {
	var settings config.Settings

	root := &cobra.Command{
		Use:           "nebula-vault",
		Short:         "Grid-based roguelike",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			s, err := config.LoadSettings()
			if err != nil {
				return err
			}
			settings = s
			logger.Init(settings)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow(settings)
		},
	}

	root.AddCommand(newFrameCmd())
	return root
}

// newFrameCmd prints synchronized frames without opening a window
func newFrameCmd() *cobra.Command {
	var ticks int

	cmd := &cobra.Command{
		Use:   "frame",
		Short: "Print the rendered terminal without opening a window",
		RunE: func(cmd *cobra.Command, args []string) error {
			sim, err := simulation.New()
			if err != nil {
				return err
			}
			frame, err := sim.Frame(ticks)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), frame)
			return err
		},
	}
	cmd.Flags().IntVar(&ticks, "ticks", 1, "number of update ticks to run before printing")
	return cmd
}
