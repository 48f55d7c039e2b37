// Package main is the entry point for the encounters developer CLI
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-encounters/internal/config"
)

// app carries the settings shared by every subcommand
type app struct {
	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: &config.Config{}}

	var (
		redisAddr string
		logLevel  string
		seed      int64
	)

	rootCmd := &cobra.Command{
		Use:   "encounters",
		Short: "Roll encounter tables and build monster groups",
		Long: `encounters resolves encounter tables into monster instances using the
embedded catalog, or a catalog snapshot stored in Redis.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("redis") {
				cfg.RedisAddr = redisAddr
			}
			if flags.Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if flags.Changed("seed") {
				cfg.Seed = seed
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: cfg.SlogLevel(),
			})))

			a.cfg = cfg
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&redisAddr, "redis", "", "Redis address for the catalog snapshot (env ENCOUNTERS_REDIS_ADDR)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error (env ENCOUNTERS_LOG_LEVEL)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "Seed for a repeatable run, 0 rolls real dice (env ENCOUNTERS_SEED)")

	rootCmd.AddCommand(newRollCmd(a))
	rootCmd.AddCommand(newParamsCmd(a))
	rootCmd.AddCommand(newTablesCmd(a))
	rootCmd.AddCommand(newCatalogCmd(a))

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
