package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/anjiri1684/trivia_api/services"
	"github.com/gofiber/fiber/v2"
)

var errorMessages = map[int]string{
	fiber.StatusBadRequest:          "Sorry, this time it is you",
	fiber.StatusUnauthorized:        "Oops...you are not authorized to do that",
	fiber.StatusNotFound:            "Sorry, we couldn't found what you are looking for",
	fiber.StatusUnprocessableEntity: "Your request is well-formed, however, due to semantic errors it is unable to be processed",
	fiber.StatusInternalServerError: "It's not you, it's us",
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// StatusFor maps an error returned by a handler to its HTTP status code.
func StatusFor(err error) int {
	var fe *fiber.Error
	switch {
	case errors.Is(err, services.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		return fiber.StatusNotFound
	case errors.As(err, &fe):
		return fe.Code
	default:
		return fiber.StatusInternalServerError
	}
}

func messageFor(code int) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	if text := http.StatusText(code); text != "" {
		return text
	}
	return errorMessages[fiber.StatusInternalServerError]
}

// ErrorHandler renders every error as {success, error, message}. The cause is
// logged and never sent to the client.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := StatusFor(err)
	log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
	return c.Status(code).JSON(ErrorResponse{
		Success: false,
		Error:   code,
		Message: messageFor(code),
	})
}
