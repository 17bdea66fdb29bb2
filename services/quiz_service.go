package services

import (
	"context"
	"fmt"

	"github.com/anjiri1684/trivia_api/models"
)

const (
	// AnyCategory asks the quiz to pick a random category.
	AnyCategory = 0

	maxQuizRedraws = 100
)

// NextQuizQuestion draws a random question from the category, redrawing up to
// maxQuizRedraws times while the draw is in previous. If every redraw collides
// the last draw is returned anyway.
func (s *TriviaService) NextQuizQuestion(ctx context.Context, previous []int, categoryID int) (*models.QuestionResponse, error) {
	if categoryID == AnyCategory {
		categoryID = s.categoryMin + s.intn(s.categoryMax-s.categoryMin+1)
	}

	pool, err := s.store.QuestionsByCategory(ctx, categoryID)
	if err != nil {
		return nil, storeErr("questions by category", err)
	}
	if len(pool) == 0 {
		return nil, fmt.Errorf("%w: category %d", ErrNoQuestions, categoryID)
	}

	asked := make(map[int]struct{}, len(previous))
	for _, id := range previous {
		asked[id] = struct{}{}
	}

	question := pool[s.intn(len(pool))]
	if _, seen := asked[question.ID]; !seen {
		formatted := question.Format()
		return &formatted, nil
	}

	redrawPool := pool
	if s.redrawScope == RedrawAll {
		redrawPool, err = s.store.ListQuestions(ctx)
		if err != nil {
			return nil, storeErr("list questions", err)
		}
		if len(redrawPool) == 0 {
			return nil, fmt.Errorf("%w: store is empty", ErrNoQuestions)
		}
	}

	for tries := 0; tries < maxQuizRedraws; tries++ {
		question = redrawPool[s.intn(len(redrawPool))]
		if _, seen := asked[question.ID]; !seen {
			break
		}
	}

	formatted := question.Format()
	return &formatted, nil
}
