package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:           "snaketile",
	Short:         "partition drawn shapes into snake puzzles",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "debug|info|warn|error")
	rootCmd.PersistentFlags().Int("iteration-cap", 0, "search steps per solver attempt (0 = default)")
	rootCmd.PersistentFlags().Int("max-attempts", 0, "solver attempts per request (0 = default)")
	_ = viper.BindPFlags(rootCmd.PersistentFlags())

	viper.SetEnvPrefix("SNAKETILE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(serveCmd, solveCmd)
}

func newLogger() *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(viper.GetString("log-level")) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "err", err)
		os.Exit(1)
	}
}
