package services

import (
	"context"
	"math/rand"

	"github.com/anjiri1684/trivia_api/models"
)

const DefaultQuestionsPerPage = 10

// RedrawScope selects the pool a quiz redraw picks from when the first draw
// was already asked.
type RedrawScope string

const (
	// RedrawAll redraws from every question in the store, so a redraw may
	// leave the requested category.
	RedrawAll RedrawScope = "all"
	// RedrawCategory keeps redraws inside the chosen category.
	RedrawCategory RedrawScope = "category"
)

// QuestionPage is the paginated question listing.
type QuestionPage struct {
	Questions       []models.QuestionResponse `json:"questions"`
	TotalQuestions  int                       `json:"total_questions"`
	Categories      []string                  `json:"categories"`
	CurrentCategory *string                   `json:"current_category"`
}

// QuestionList is returned by search and category lookups. TotalQuestions is
// always the size of the whole store, not the number of matches.
type QuestionList struct {
	Questions       []models.QuestionResponse `json:"questions"`
	TotalQuestions  int                       `json:"total_questions"`
	CurrentCategory *string                   `json:"current_category"`
}

type TriviaService struct {
	store       Store
	perPage     int
	categoryMin int
	categoryMax int
	redrawScope RedrawScope
	intn        func(n int) int
}

type Option func(*TriviaService)

func WithQuestionsPerPage(n int) Option {
	return func(s *TriviaService) {
		if n > 0 {
			s.perPage = n
		}
	}
}

// WithQuizCategoryRange sets the inclusive id range used when a quiz asks for
// any category.
func WithQuizCategoryRange(lo, hi int) Option {
	return func(s *TriviaService) {
		if hi >= lo {
			s.categoryMin, s.categoryMax = lo, hi
		}
	}
}

func WithRedrawScope(scope RedrawScope) Option {
	return func(s *TriviaService) {
		if scope == RedrawAll || scope == RedrawCategory {
			s.redrawScope = scope
		}
	}
}

// WithRandom replaces the source of uniform random ints in [0,n).
func WithRandom(intn func(n int) int) Option {
	return func(s *TriviaService) {
		if intn != nil {
			s.intn = intn
		}
	}
}

func NewTriviaService(store Store, opts ...Option) *TriviaService {
	s := &TriviaService{
		store:       store,
		perPage:     DefaultQuestionsPerPage,
		categoryMin: 1,
		categoryMax: 6,
		redrawScope: RedrawAll,
		intn:        rand.Intn,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *TriviaService) ListCategories(ctx context.Context) ([]models.CategoryResponse, error) {
	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, storeErr("list categories", err)
	}
	return models.FormatCategories(categories), nil
}

// ListQuestions returns one page of questions. Pages past the end are empty,
// not an error.
func (s *TriviaService) ListQuestions(ctx context.Context, page int) (*QuestionPage, error) {
	if page <= 0 {
		return nil, validationErr("page must be positive, got %d", page)
	}

	questions, err := s.store.ListQuestions(ctx)
	if err != nil {
		return nil, storeErr("list questions", err)
	}
	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, storeErr("list categories", err)
	}

	labels := make(map[int]string, len(categories))
	for _, c := range categories {
		labels[c.ID] = c.Type
	}
	seen := make(map[string]struct{})
	present := []string{}
	for _, q := range questions {
		label := labels[q.Category]
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		present = append(present, label)
	}

	start, end := len(questions), len(questions)
	if page-1 <= len(questions)/s.perPage {
		start = (page - 1) * s.perPage
		end = min(start+s.perPage, len(questions))
	}

	return &QuestionPage{
		Questions:      models.FormatQuestions(questions[start:end]),
		TotalQuestions: len(questions),
		Categories:     present,
	}, nil
}

func (s *TriviaService) DeleteQuestion(ctx context.Context, id int) error {
	return storeErr("delete question", s.store.DeleteQuestion(ctx, id))
}

func (s *TriviaService) CreateQuestion(ctx context.Context, question models.Question) error {
	question.ID = 0
	return storeErr("create question", s.store.CreateQuestion(ctx, &question))
}

func (s *TriviaService) SearchQuestions(ctx context.Context, term string) (*QuestionList, error) {
	if term == "" {
		return nil, validationErr("search term is empty")
	}
	matches, err := s.store.SearchQuestions(ctx, term)
	if err != nil {
		return nil, storeErr("search questions", err)
	}
	total, err := s.store.CountQuestions(ctx)
	if err != nil {
		return nil, storeErr("count questions", err)
	}
	return &QuestionList{
		Questions:      models.FormatQuestions(matches),
		TotalQuestions: int(total),
	}, nil
}

// QuestionsByCategory lists the questions of one category. An unknown
// category yields an empty list and an empty label.
func (s *TriviaService) QuestionsByCategory(ctx context.Context, categoryID int) (*QuestionList, error) {
	if categoryID < 0 {
		return nil, validationErr("category id must not be negative, got %d", categoryID)
	}

	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, storeErr("list categories", err)
	}
	label := ""
	for _, c := range categories {
		if c.ID == categoryID {
			label = c.Type
			break
		}
	}

	questions, err := s.store.QuestionsByCategory(ctx, categoryID)
	if err != nil {
		return nil, storeErr("questions by category", err)
	}
	total, err := s.store.CountQuestions(ctx)
	if err != nil {
		return nil, storeErr("count questions", err)
	}

	return &QuestionList{
		Questions:       models.FormatQuestions(questions),
		TotalQuestions:  int(total),
		CurrentCategory: &label,
	}, nil
}
