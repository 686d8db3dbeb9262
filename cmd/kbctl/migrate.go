package main

import (
	"github.com/aicruise/cruise-bot/internal/db/migrations"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate [goose command and args]",
	Short: "Run database migrations",
	Long:  `Runs goose against the knowledge base schema. Without arguments it runs "up -v".`,
	Example: `  kbctl migrate
  kbctl migrate status
  kbctl migrate down-to 0`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}
		if len(args) == 0 {
			args = []string{"up", "-v"}
		}
		logger := newLogger(settings)
		logger.Info().Strs("args", args).Msg("Running migrations")
		return migrations.RunGoose(cmd.Context(), args, settings.DB)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
