package main

import (
	config "github.com/anjiri1684/trivia_api/configs"
	"github.com/anjiri1684/trivia_api/database"
	"github.com/spf13/cobra"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load categories and questions into empty tables",
	Long: `Loads a YAML fixture of categories and questions. Without --file the
built-in fixture with the six standard categories is used. Tables that already
contain rows are skipped.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := database.LoadSeed(seedFile)
		if err != nil {
			return err
		}
		db, err := openDB(config.Load())
		if err != nil {
			return err
		}
		if err := database.Migrate(db); err != nil {
			return err
		}
		return database.Seed(db, data)
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "YAML seed file")
	rootCmd.AddCommand(seedCmd)
}
