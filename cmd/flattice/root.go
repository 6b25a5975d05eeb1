package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/flattice/internal/config"
	"github.com/katalvlaran/flattice/internal/logging"
	"github.com/katalvlaran/flattice/lattice"
)

// app is the state shared by every subcommand once the root pre-run has
// resolved configuration and flags.
type app struct {
	// logOut overrides the console log destination; nil means stderr.
	logOut io.Writer

	configPath string
	logLevel   string
	radius     int

	cfg config.Config
	log zerolog.Logger
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "flattice",
		Short:         "Explore neighborhoods and Hamming balls of the F-lattice",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "TOML config file")
	pf.StringVar(&a.logLevel, "log-level", "", "console log level (trace, debug, info, warn, error)")
	pf.IntVarP(&a.radius, "radius", "r", 1, "lattice radius")

	root.AddCommand(
		newBallCmd(a),
		newNeighborhoodCmd(a),
		newDistancesCmd(a),
		newSearchCmd(a),
		newExportCmd(a),
	)

	return root
}

// setup loads the config file, lets explicitly set flags win over it and
// installs the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("radius") {
		cfg.Radius = a.radius
	}
	if a.logLevel != "" {
		lvl, err := config.ParseLevel(a.logLevel)
		if err != nil {
			return err
		}
		cfg.LogLevel = lvl
	}
	a.cfg = cfg
	a.log = logging.Setup(a.logOut, cfg.LogLevel)
	if a.configPath != "" {
		a.log.Debug().Str("path", a.configPath).Msg("configuration loaded")
	}

	return nil
}

// graph builds the lattice for the resolved radius.
func (a *app) graph() (*lattice.Graph, error) {
	g, err := lattice.New(a.cfg.Radius)
	if err != nil {
		return nil, err
	}
	a.log.Debug().
		Int("radius", g.Radius()).
		Int("vertices", g.Order()).
		Int("edges", len(g.Edges())).
		Msg("lattice built")

	return g, nil
}

// openOutput returns stdout for "" or "-", otherwise a created file.
func openOutput(cmd *cobra.Command, path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{cmd.OutOrStdout()}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("open output: %w", err)
	}

	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
