// Package servicestest provides an in-memory services.Store for tests.
package servicestest

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/anjiri1684/trivia_api/models"
)

type Store struct {
	mu         sync.Mutex
	categories []models.Category
	questions  map[int]models.Question
	nextID     int

	// Err, when set, is returned by every operation.
	Err error
}

func NewStore(categories []models.Category, questions []models.Question) *Store {
	s := &Store{
		categories: append([]models.Category(nil), categories...),
		questions:  make(map[int]models.Question),
		nextID:     1,
	}
	for _, q := range questions {
		if q.ID == 0 {
			q.ID = s.nextID
		}
		s.questions[q.ID] = q
		if q.ID >= s.nextID {
			s.nextID = q.ID + 1
		}
	}
	return s
}

// Categories are the six standard trivia categories.
func Categories() []models.Category {
	return []models.Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
		{ID: 3, Type: "Geography"},
		{ID: 4, Type: "History"},
		{ID: 5, Type: "Entertainment"},
		{ID: 6, Type: "Sports"},
	}
}

func (s *Store) sorted() []models.Question {
	out := make([]models.Question, 0, len(s.questions))
	for _, q := range s.questions {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) ListCategories(ctx context.Context) ([]models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return append([]models.Category(nil), s.categories...), nil
}

func (s *Store) ListQuestions(ctx context.Context) ([]models.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return s.sorted(), nil
}

func (s *Store) CountQuestions(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	return int64(len(s.questions)), nil
}

func (s *Store) QuestionsByCategory(ctx context.Context, categoryID int) ([]models.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	var out []models.Question
	for _, q := range s.sorted() {
		if q.Category == categoryID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (s *Store) SearchQuestions(ctx context.Context, term string) ([]models.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	needle := strings.ToLower(term)
	var out []models.Question
	for _, q := range s.sorted() {
		if strings.Contains(strings.ToLower(q.Question), needle) {
			out = append(out, q)
		}
	}
	return out, nil
}

func (s *Store) CreateQuestion(ctx context.Context, question *models.Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	question.ID = s.nextID
	s.nextID++
	s.questions[question.ID] = *question
	return nil
}

func (s *Store) DeleteQuestion(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	delete(s.questions, id)
	return nil
}
