package cmd

import (
	"github.com/spf13/cobra"

	"github.com/iburimskiy/particle-graph/internal/game"
)

func runCmd() *cobra.Command {
	var hud bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the animation in a window",
		Long: "Open the animation in a resizable window.\n\n" +
			"Keys: Space pause, T toggle theme, H toggle HUD, S save SVG snapshot, Esc/Q quit.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("hud") {
				return runWindowWith(cmd, func(s *settings) { s.cfg.Window.HUD = hud })
			}
			return runWindow(cmd)
		},
	}
	cmd.Flags().BoolVar(&hud, "hud", false, "show the stats overlay on start")
	return cmd
}

func runWindow(cmd *cobra.Command) error {
	return runWindowWith(cmd, nil)
}

func runWindowWith(cmd *cobra.Command, adjust func(*settings)) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if adjust != nil {
		adjust(s)
	}

	s.logger.Info("opening window",
		"width", s.cfg.Window.Width, "height", s.cfg.Window.Height,
		"theme", string(s.mode), "seed", s.seed)

	g := game.New(game.Options{
		Config: s.cfg,
		Theme:  s.mode,
		Rand:   s.rand(),
		Logger: s.logger,
	})
	return g.Run()
}
