package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/anjiri1684/trivia_api/models"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// flexInt accepts a JSON number or a numeric string. Browser clients send
// category ids as object keys, which arrive as strings.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("invalid integer %q", s)
		}
		*f = flexInt(n)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexInt(n)
	return nil
}

// CreateQuestionRequest is stored as received; no field is required.
type CreateQuestionRequest struct {
	Question   string  `json:"question"`
	Answer     string  `json:"answer"`
	Category   flexInt `json:"category"`
	Difficulty flexInt `json:"difficulty"`
}

func (r CreateQuestionRequest) toModel() models.Question {
	return models.Question{
		Question:   r.Question,
		Answer:     r.Answer,
		Category:   int(r.Category),
		Difficulty: int(r.Difficulty),
	}
}

type SearchRequest struct {
	SearchTerm string `json:"searchTerm" validate:"required"`
}

type QuizCategory struct {
	ID   *flexInt `json:"id" validate:"required"`
	Type string   `json:"type"`
}

type QuizRequest struct {
	PreviousQuestions []flexInt     `json:"previous_questions" validate:"required"`
	QuizCategory      *QuizCategory `json:"quiz_category" validate:"required"`
}

func (r QuizRequest) previousIDs() []int {
	ids := make([]int, len(r.PreviousQuestions))
	for i, id := range r.PreviousQuestions {
		ids[i] = int(id)
	}
	return ids
}
