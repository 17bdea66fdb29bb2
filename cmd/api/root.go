package main

import (
	"fmt"
	"os"

	config "github.com/anjiri1684/trivia_api/configs"
	"github.com/anjiri1684/trivia_api/database"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	envFile     string
	databaseURL string
)

var rootCmd = &cobra.Command{
	Use:   "trivia",
	Short: "Trivia question bank API",
	Long: `Serves the trivia question bank over HTTP/JSON and manages its
Postgres schema and seed data.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.LoadEnvFile(envFile)
	},
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Path to a .env file")
	rootCmd.PersistentFlags().StringVar(&databaseURL, "database-url", "", "Postgres DSN (overrides DATABASE_URL)")
}

// openDB connects using the --database-url flag, falling back to DATABASE_URL.
func openDB(settings config.Settings) (*gorm.DB, error) {
	dsn := settings.DatabaseURL
	if databaseURL != "" {
		dsn = databaseURL
	}
	return database.ConnectDB(dsn)
}
