package handlers

import (
	"fmt"

	"github.com/anjiri1684/trivia_api/services"
	"github.com/gofiber/fiber/v2"
)

type TriviaHandler struct {
	service *services.TriviaService
}

func NewTriviaHandler(service *services.TriviaService) *TriviaHandler {
	return &TriviaHandler{service: service}
}

func (h *TriviaHandler) GetStatus(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": true})
}

func (h *TriviaHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.service.ListCategories(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"categories": categories})
}

// GetQuestions handles GET /questions?page=N. A missing or non-numeric page
// means page 1.
func (h *TriviaHandler) GetQuestions(c *fiber.Ctx) error {
	page, err := h.service.ListQuestions(c.UserContext(), c.QueryInt("page", 1))
	if err != nil {
		return err
	}
	return c.JSON(page)
}

func (h *TriviaHandler) DeleteQuestion(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 0 {
		return fiber.ErrNotFound
	}
	if err := h.service.DeleteQuestion(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *TriviaHandler) CreateQuestion(c *fiber.Ctx) error {
	var req CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return fmt.Errorf("parse question body: %v", err)
	}
	if err := h.service.CreateQuestion(c.UserContext(), req.toModel()); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *TriviaHandler) SearchQuestions(c *fiber.Ctx) error {
	var req SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return fmt.Errorf("%w: parse search body: %v", services.ErrValidation, err)
	}
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", services.ErrValidation, err)
	}

	result, err := h.service.SearchQuestions(c.UserContext(), req.SearchTerm)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

func (h *TriviaHandler) GetQuestionsByCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrNotFound
	}

	result, err := h.service.QuestionsByCategory(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

func (h *TriviaHandler) GetQuizQuestion(c *fiber.Ctx) error {
	var req QuizRequest
	if err := c.BodyParser(&req); err != nil {
		return fmt.Errorf("%w: parse quiz body: %v", services.ErrValidation, err)
	}
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", services.ErrValidation, err)
	}

	question, err := h.service.NextQuizQuestion(c.UserContext(), req.previousIDs(), int(*req.QuizCategory.ID))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"question": question})
}
