package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	populationDashboard "github.com/siherrmann/populationDashboard"
	"github.com/siherrmann/populationDashboard/config"

	qh "github.com/siherrmann/queuer/helper"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "dashboard",
		Short:         "Population dashboard for the gapminder 2007 dataset",
		Long:          "Serves an interactive dashboard with population and life expectancy charts per continent.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if err := applyFlags(cmd.Flags(), &cfg); err != nil {
				return err
			}

			logger := newLogger(cfg)
			slog.SetDefault(logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return populationDashboard.DashboardServer(ctx, cfg, logger)
		},
	}

	rootCmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file")
	rootCmd.Flags().String("host", "", "listen host (overrides config and DASHBOARD_HOST)")
	rootCmd.Flags().String("port", "", "listen port (overrides config and DASHBOARD_PORT)")
	rootCmd.Flags().Bool("debug", false, "enable debug logging")

	rootCmd.SetContext(context.Background())
	return rootCmd
}

// applyFlags copies the flags set on the command line over cfg.
func applyFlags(flags *pflag.FlagSet, cfg *config.Config) error {
	var err error
	flags.Visit(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "host":
			cfg.Host = f.Value.String()
		case "port":
			cfg.Port = f.Value.String()
		case "debug":
			cfg.Debug, err = flags.GetBool("debug")
			if cfg.Debug {
				cfg.LogLevel = "debug"
			}
		}
	})
	return err
}

func newLogger(cfg config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	if cfg.Debug {
		level = slog.LevelDebug
	}

	opts := qh.PrettyHandlerOptions{
		SlogOpts: slog.HandlerOptions{
			Level: level,
		},
	}
	return slog.New(qh.NewPrettyHandler(os.Stdout, opts))
}
