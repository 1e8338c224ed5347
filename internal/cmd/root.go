package cmd

import (
	"fmt"

	"github.com/PistonDevelopers/find-folder/internal/config"
	"github.com/PistonDevelopers/find-folder/internal/logger"
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

type rootOptions struct {
	configPath string
	logLevel   string
}

// NewRootCommand creates and returns the root cobra command for find-folder
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "find-folder",
		Short: "Locate a named folder relative to the working directory",
		Long: `find-folder searches for a folder by name, upwards through the parents
of the working directory, downwards through its subdirectories, or both,
within a bounded depth.

Strategies are written as parents:N, kids:N, both:P,K,
parents-then-kids:P,K or kids-then-parents:K,P.`,
		Version:      Version,
		SilenceUsage: true,
		// main prints the returned error
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", config.DefaultPath, "Config file path")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")

	cmd.AddCommand(NewFindCommand(opts))
	cmd.AddCommand(NewReportCommand(opts))

	return cmd
}

// setup loads the config and builds the logger shared by all subcommands.
func (o *rootOptions) setup(cmd *cobra.Command) (*config.Config, *logger.ConsoleLogger, error) {
	cfg, err := config.LoadConfig(o.configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	level := cfg.LogLevel
	if o.logLevel != "" {
		level = o.logLevel
	}

	log := logger.NewConsoleLogger(cmd.ErrOrStderr(), level)
	if !logger.ValidLevel(level) {
		log.Warnf("unknown log level %q, using info", level)
	}
	log.Debugf("config %s: default search %s, %d folders", o.configPath, cfg.Search, len(cfg.Folders))

	return cfg, log, nil
}
