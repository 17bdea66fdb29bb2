package routes

import (
	"github.com/anjiri1684/trivia_api/handlers"
	"github.com/gofiber/fiber/v2"
)

func TriviaRoutes(router fiber.Router, h *handlers.TriviaHandler) {
	router.Get("/", h.GetStatus)

	router.Get("/categories", h.GetCategories)
	router.Get("/categories/:id/questions", h.GetQuestionsByCategory)

	questions := router.Group("/questions")
	questions.Get("", h.GetQuestions)
	questions.Post("", h.CreateQuestion)
	questions.Delete("/:id", h.DeleteQuestion)

	router.Post("/search/questions", h.SearchQuestions)
	router.Post("/quizzes", h.GetQuizQuestion)
}
