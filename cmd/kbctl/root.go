package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/DIMO-Network/server-garage/pkg/env"
	"github.com/DIMO-Network/shared/pkg/db"
	"github.com/aicruise/cruise-bot/internal/config"
	"github.com/aicruise/cruise-bot/internal/services/knowledgerepo"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:           "kbctl",
	Short:         "Operate the AI Cruise Bot knowledge base",
	Long:          `kbctl runs migrations, lists and bulk imports knowledge entries and tails conversation events.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "path to env file")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, "kbctl:", err)
		os.Exit(1)
	}
	stop()
}

func loadSettings() (*config.Settings, error) {
	settings, err := env.LoadSettings[config.Settings](envFile)
	if err != nil {
		return nil, fmt.Errorf("could not load settings: %w", err)
	}
	settings.ApplyDefaults()
	return &settings, nil
}

func newLogger(settings *config.Settings) zerolog.Logger {
	level, err := zerolog.ParseLevel(settings.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

func openRepository(ctx context.Context, settings *config.Settings, logger zerolog.Logger) *knowledgerepo.Repository {
	store := db.NewDbConnectionFromSettings(ctx, &settings.DB, true)
	store.WaitForDB(logger)
	return knowledgerepo.NewRepository(store.DBS().Writer.DB)
}
