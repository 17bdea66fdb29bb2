package database

import (
	"context"

	"github.com/anjiri1684/trivia_api/models"
	"gorm.io/gorm"
)

// Store is the Postgres-backed question bank.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := s.db.WithContext(ctx).Order("id").Find(&categories).Error
	return categories, err
}

func (s *Store) ListQuestions(ctx context.Context) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.WithContext(ctx).Order("id").Find(&questions).Error
	return questions, err
}

func (s *Store) CountQuestions(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Question{}).Count(&count).Error
	return count, err
}

func (s *Store) QuestionsByCategory(ctx context.Context, categoryID int) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.WithContext(ctx).Where("category = ?", categoryID).Order("id").Find(&questions).Error
	return questions, err
}

func (s *Store) SearchQuestions(ctx context.Context, term string) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.WithContext(ctx).
		Where("question ILIKE ?", "%"+term+"%").
		Order("id").
		Find(&questions).Error
	return questions, err
}

func (s *Store) CreateQuestion(ctx context.Context, question *models.Question) error {
	return s.db.WithContext(ctx).Create(question).Error
}

// DeleteQuestion removes the question if it exists. Zero affected rows is
// success.
func (s *Store) DeleteQuestion(ctx context.Context, id int) error {
	return s.db.WithContext(ctx).Delete(&models.Question{}, "id = ?", id).Error
}
