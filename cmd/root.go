package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"

	"github.com/iburimskiy/particle-graph/internal/config"
	"github.com/iburimskiy/particle-graph/internal/theme"
	"github.com/iburimskiy/particle-graph/internal/ui"
)

var version = "0.3.0"

var (
	configPath string
	themeFlag  string
	seedFlag   uint64
	logLevel   string
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "particle-graph",
		Short:         "Animated node-and-edge particle background",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		// With no subcommand, open the window.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow(cmd)
		},
	}
	root.SetVersionTemplate("particle-graph {{ .Version }}\n")

	flags := root.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/particle-graph/config.toml)")
	flags.StringVar(&themeFlag, "theme", "", "theme mode: dark or light")
	flags.Uint64Var(&seedFlag, "seed", 0, "random seed, 0 picks one from the clock")
	flags.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		runCmd(),
		snapshotCmd(),
		statsCmd(),
	)
	return root
}

// Execute runs the root command.
func Execute() error {
	root := newRootCmd()
	err := root.Execute()
	if err != nil {
		printError(root.ErrOrStderr(), err)
	}
	return err
}

// settings is the resolved config plus everything derived from it.
type settings struct {
	cfg    *config.Config
	mode   theme.Mode
	seed   uint64
	logger *slog.Logger
}

// loadSettings reads the config file and applies persistent flag overrides.
func loadSettings(cmd *cobra.Command) (*settings, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("theme") {
		cfg.Theme = themeFlag
	}
	if flags.Changed("seed") {
		cfg.Seed = seedFlag
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	mode, _ := cfg.ThemeMode()
	lvl, _ := cfg.Level()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return &settings{
		cfg:    cfg,
		mode:   mode,
		seed:   seed,
		logger: newLogger(cmd.ErrOrStderr(), lvl),
	}, nil
}

func (s *settings) rand() *rand.Rand {
	return rand.New(rand.NewPCG(s.seed, s.seed>>1|1))
}

func newLogger(w io.Writer, lvl slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", ui.Bad.Sprint("particle-graph:"), err)
}
