package main

import (
	"log"

	config "github.com/anjiri1684/trivia_api/configs"
	"github.com/anjiri1684/trivia_api/database"
	"github.com/anjiri1684/trivia_api/handlers"
	"github.com/anjiri1684/trivia_api/routes"
	"github.com/anjiri1684/trivia_api/services"
	"github.com/spf13/cobra"
)

var (
	port        string
	autoMigrate bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := config.Load()
		if port != "" {
			settings.Port = port
		}

		db, err := openDB(settings)
		if err != nil {
			return err
		}
		if autoMigrate {
			if err := database.Migrate(db); err != nil {
				return err
			}
		}

		service := services.NewTriviaService(database.NewStore(db),
			services.WithQuestionsPerPage(settings.QuestionsPerPage),
			services.WithQuizCategoryRange(settings.QuizCategoryMin, settings.QuizCategoryMax),
			services.WithRedrawScope(services.RedrawScope(settings.QuizRedrawScope)),
		)
		app := routes.NewApp(handlers.NewTriviaHandler(service), routes.AppConfig{
			AllowOrigins: settings.AllowOrigins,
		})

		log.Printf("✅ Server is running on port %s", settings.Port)
		if err := app.Listen(":" + settings.Port); err != nil {
			log.Printf("🔥 Server failed to start: %v", err)
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides PORT)")
	serveCmd.Flags().BoolVar(&autoMigrate, "migrate", false, "Run schema migration before serving")
	rootCmd.AddCommand(serveCmd)
}
