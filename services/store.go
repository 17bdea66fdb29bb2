package services

import (
	"context"

	"github.com/anjiri1684/trivia_api/models"
)

// Store is the persistence backend for questions and categories.
// DeleteQuestion must not fail when the id does not exist.
type Store interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListQuestions(ctx context.Context) ([]models.Question, error)
	CountQuestions(ctx context.Context) (int64, error)
	QuestionsByCategory(ctx context.Context, categoryID int) ([]models.Question, error)
	SearchQuestions(ctx context.Context, term string) ([]models.Question, error)
	CreateQuestion(ctx context.Context, question *models.Question) error
	DeleteQuestion(ctx context.Context, id int) error
}
