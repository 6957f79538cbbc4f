// Package cli implements the forge command tree.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/forge/internal/config"
	"github.com/katalvlaran/forge/internal/flags/enum"
	"github.com/katalvlaran/forge/internal/flags/log"
	"github.com/katalvlaran/forge/prototype"
)

// Persistent flag names.
const (
	FlagConfig      = "config"
	FlagNoColor     = "no-color"
	FlagProfile     = "profile"
	FlagProfilePath = "profile-path"
)

// Profile modes.
const (
	ProfileNone = "none"
	ProfileCPU  = "cpu"
	ProfileMem  = "mem"
)

// Execute runs the forge command tree and exits non-zero on error.
func Execute() {
	if err := New().Execute(); err != nil {
		os.Exit(1)
	}
}

// New returns the root forge command with every subcommand attached.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "forge [sub-command]",
		Short: "Construct entities through factories, builders, prototypes and guards",
		Long: `forge exposes four object-construction strategies over one entity model:

  family   create characters through a Good or Evil factory family
  car      order a car through the brand selector
  build    assemble an entity step by step
  clone    copy registered prototypes
  catalog  list registered prototypes
  guard    race constructions against a single-instance guard`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: preRunE,
		DisableAutoGenTag: true,
		SilenceUsage:      true,
	}

	flags := cmd.PersistentFlags()
	flags.String(FlagConfig, "", "path to a forge YAML configuration file")
	flags.Bool(FlagNoColor, false, "disable colored family tags in tables")
	enum.Var(flags, FlagProfile, []string{ProfileNone, ProfileCPU, ProfileMem}, "profile the command run (cpu or mem)")
	flags.String(FlagProfilePath, ".", "directory the profile is written to")
	log.RegisterLoggingFlags(flags)

	cmd.AddCommand(
		newFamilyCommand(),
		newCarCommand(),
		newBuildCommand(),
		newCloneCommand(),
		newCatalogCommand(),
		newGuardCommand(),
	)
	stopProfileOnExit(cmd)

	return cmd
}

func preRunE(cmd *cobra.Command, _ []string) error {
	logger, err := log.GetBaseLogger(cmd)
	if err != nil {
		return fmt.Errorf("could not retrieve logger: %w", err)
	}
	slog.SetDefault(logger)

	cfg := config.Default()
	path, err := cmd.Flags().GetString(FlagConfig)
	if err != nil {
		return err
	}
	if path != "" {
		if cfg, err = config.Load(path); err != nil {
			return err
		}
		logger.Debug("configuration loaded", slog.String("path", path), slog.String("version", cfg.Version))
	}

	registry, err := cfg.NewRegistry(prototype.WithLogger(logger))
	if err != nil {
		return err
	}

	noColor, err := cmd.Flags().GetBool(FlagNoColor)
	if err != nil {
		return err
	}

	s := &session{
		logger:   logger,
		config:   cfg,
		registry: registry,
		color:    !noColor && !color.NoColor,
	}
	if s.profiler, err = startProfile(cmd); err != nil {
		return err
	}
	cmd.SetContext(withSession(cmd.Context(), s))

	return nil
}

// stopProfileOnExit wraps the RunE of cmd and its descendants so a profile
// started by preRunE is flushed on every return, including errors and panics.
// cobra skips post-run hooks when RunE fails.
func stopProfileOnExit(cmd *cobra.Command) {
	if run := cmd.RunE; run != nil {
		cmd.RunE = func(c *cobra.Command, args []string) error {
			defer stopProfile(c)
			return run(c, args)
		}
	}
	for _, sub := range cmd.Commands() {
		stopProfileOnExit(sub)
	}
}

func stopProfile(cmd *cobra.Command) {
	s := sessionFrom(cmd)
	if s.profiler == nil {
		return
	}
	s.profiler.Stop()
	s.profiler = nil
	s.logger.Debug("profile written")
}

func startProfile(cmd *cobra.Command) (interface{ Stop() }, error) {
	mode, err := enum.Get(cmd.Flags(), FlagProfile)
	if err != nil {
		return nil, err
	}
	dir, err := cmd.Flags().GetString(FlagProfilePath)
	if err != nil {
		return nil, err
	}
	opts := []func(*profile.Profile){profile.ProfilePath(dir), profile.NoShutdownHook, profile.Quiet}
	switch mode {
	case ProfileCPU:
		return profile.Start(append(opts, profile.CPUProfile)...), nil
	case ProfileMem:
		return profile.Start(append(opts, profile.MemProfileAllocs)...), nil
	}

	return nil, nil
}
