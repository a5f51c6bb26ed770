package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/fnosnas/koyeb-keepalive/pkg/koyebcheck"
	"github.com/fnosnas/koyeb-keepalive/pkg/output"
	"github.com/fnosnas/koyeb-keepalive/pkg/runner"
	"github.com/fnosnas/koyeb-keepalive/pkg/telegram"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	flagDelay    time.Duration
	flagTimeout  time.Duration
	flagDryRun   bool
	flagLogLevel string
	flagEnvFile  string
)

var rootCmd = &cobra.Command{
	Use:     "koyeb-keepalive",
	Short:   "Validate Koyeb account tokens and report the outcome via Telegram",
	Long:    "koyeb-keepalive checks every account token in KOYEB_ACCOUNTS against the Koyeb API and sends one summary message per run, intended for unattended cron invocation.",
	Version: Version,
	Args:    cobra.NoArgs,
	RunE:    runKeepAlive,

	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().DurationVar(&flagDelay, "delay", runner.DefaultDelay, "pause between account checks (0 disables)")
	rootCmd.Flags().DurationVar(&flagTimeout, "timeout", koyebcheck.DefaultTimeout, "HTTP request timeout")
	rootCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "perform checks but skip the Telegram notification")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&flagEnvFile, "env-file", "", "load environment from this file (default: .env if present)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runKeepAlive(cmd *cobra.Command, _ []string) error {
	if err := loadEnvFile(flagEnvFile); err != nil {
		return err
	}

	level, err := parseLogLevel(flagLogLevel)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	r := &runner.Runner{
		Notifier: &telegram.Notifier{
			BotToken: os.Getenv("TG_BOT_TOKEN"),
			ChatID:   os.Getenv("TG_CHAT_ID"),
			Timeout:  flagTimeout,
		},
		Logger:   logger,
		Delay:    flagDelay,
		Timeout:  flagTimeout,
		Version:  Version,
		DryRun:   flagDryRun,
		OnResult: output.PrintResult,
	}

	// Per-account failures are already in the summary; only configuration
	// faults turn into a non-zero exit.
	return r.Run(cmd.Context())
}

// loadEnvFile loads a dotenv file for local runs. An explicit path must
// exist; the implicit .env is optional.
func loadEnvFile(path string) error {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("failed to load env file %s: %w", path, err)
		}
		return nil
	}
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return fmt.Errorf("failed to load .env: %w", err)
		}
	}
	return nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}
