package routes_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/anjiri1684/trivia_api/handlers"
	"github.com/anjiri1684/trivia_api/models"
	"github.com/anjiri1684/trivia_api/routes"
	"github.com/anjiri1684/trivia_api/services"
	"github.com/anjiri1684/trivia_api/services/servicestest"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type questionList struct {
	Questions       []models.QuestionResponse `json:"questions"`
	TotalQuestions  int                       `json:"total_questions"`
	Categories      []string                  `json:"categories"`
	CurrentCategory *string                   `json:"current_category"`
}

func setupApp(t *testing.T, opts ...services.Option) (*fiber.App, *servicestest.Store) {
	t.Helper()
	store := servicestest.NewStore(servicestest.Categories(), []models.Question{
		{ID: 1, Question: "What is the heaviest organ in the human body?", Answer: "The Liver", Category: 1, Difficulty: 4},
		{ID: 2, Question: "Who discovered penicillin?", Answer: "Alexander Fleming", Category: 1, Difficulty: 3},
		{ID: 3, Question: "What boxer's original name is Cassius Clay?", Answer: "Muhammad Ali", Category: 4, Difficulty: 1},
		{ID: 4, Question: "Which country won the first ever soccer World Cup in 1930?", Answer: "Uruguay", Category: 6, Difficulty: 4},
		{ID: 5, Question: "What movie earned Tom Hanks his third straight Oscar nomination, in 1996?", Answer: "Apollo 13", Category: 5, Difficulty: 4},
	})
	service := services.NewTriviaService(store, opts...)
	app := routes.NewApp(handlers.NewTriviaHandler(service), routes.AppConfig{DisableAccessLog: true})
	return app, store
}

func do(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}

func assertError(t *testing.T, resp *http.Response, raw []byte, code int) {
	t.Helper()
	assert.Equal(t, code, resp.StatusCode, string(raw))
	body := decode[handlers.ErrorResponse](t, raw)
	assert.False(t, body.Success)
	assert.Equal(t, code, body.Error)
	assert.NotEmpty(t, body.Message)
}

func TestStatus(t *testing.T) {
	app, _ := setupApp(t)

	resp, raw := do(t, app, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status": true}`, string(raw))
}

func TestGetCategories(t *testing.T) {
	app, _ := setupApp(t)

	resp, raw := do(t, app, http.MethodGet, "/categories", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[struct {
		Categories []models.CategoryResponse `json:"categories"`
	}](t, raw)
	require.Len(t, body.Categories, 6)
	assert.Equal(t, "Sports", body.Categories[5].Type)
}

func TestGetQuestions(t *testing.T) {
	app, _ := setupApp(t)

	resp, raw := do(t, app, http.MethodGet, "/questions", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), `"current_category":null`)

	body := decode[questionList](t, raw)
	assert.Len(t, body.Questions, 5)
	assert.Equal(t, 5, body.TotalQuestions)
	assert.ElementsMatch(t, []string{"Science", "History", "Sports", "Entertainment"}, body.Categories)

	t.Run("page past the end", func(t *testing.T) {
		resp, raw := do(t, app, http.MethodGet, "/questions?page=7", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		body := decode[questionList](t, raw)
		assert.Empty(t, body.Questions)
		assert.Equal(t, 5, body.TotalQuestions)
	})

	t.Run("non numeric page defaults to first", func(t *testing.T) {
		resp, raw := do(t, app, http.MethodGet, "/questions?page=abc", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Len(t, decode[questionList](t, raw).Questions, 5)
	})

	for _, page := range []string{"0", "-3"} {
		t.Run("page "+page, func(t *testing.T) {
			resp, raw := do(t, app, http.MethodGet, "/questions?page="+page, "")
			assertError(t, resp, raw, http.StatusBadRequest)
			assert.Contains(t, string(raw), "Sorry, this time it is you")
		})
	}
}

func TestDeleteQuestion(t *testing.T) {
	app, store := setupApp(t)

	for i := 0; i < 2; i++ {
		resp, raw := do(t, app, http.MethodDelete, "/questions/3", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"success": true}`, string(raw))
	}

	count, err := store.CountQuestions(t.Context())
	require.NoError(t, err)
	assert.EqualValues(t, 4, count)

	resp, raw := do(t, app, http.MethodDelete, "/questions/abc", "")
	assertError(t, resp, raw, http.StatusNotFound)
}

func TestCreateQuestion(t *testing.T) {
	app, _ := setupApp(t)

	resp, raw := do(t, app, http.MethodPost, "/questions",
		`{"question": "how many basketball players play in a game?", "answer": "Five", "category": 1, "difficulty": 1}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"success": true}`, string(raw))

	_, raw = do(t, app, http.MethodGet, "/questions", "")
	assert.Equal(t, 6, decode[questionList](t, raw).TotalQuestions)

	_, raw = do(t, app, http.MethodPost, "/search/questions", `{"searchTerm": "Basketball"}`)
	found := decode[questionList](t, raw)
	require.Len(t, found.Questions, 1)
	assert.Equal(t, "how many basketball players play in a game?", found.Questions[0].Question)
	assert.Equal(t, "Five", found.Questions[0].Answer)
	assert.Equal(t, 1, found.Questions[0].Category)
	assert.Equal(t, 1, found.Questions[0].Difficulty)

	t.Run("string category", func(t *testing.T) {
		resp, _ := do(t, app, http.MethodPost, "/questions",
			`{"question": "q", "answer": "a", "category": "3", "difficulty": 2}`)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("malformed body", func(t *testing.T) {
		resp, raw := do(t, app, http.MethodPost, "/questions", `{"question": `)
		assertError(t, resp, raw, http.StatusInternalServerError)
		assert.Contains(t, string(raw), "It's not you, it's us")
	})
}

func TestSearchQuestions(t *testing.T) {
	app, _ := setupApp(t)

	resp, raw := do(t, app, http.MethodPost, "/search/questions", `{"searchTerm": "what"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[questionList](t, raw)
	assert.Len(t, body.Questions, 3)
	assert.Equal(t, 5, body.TotalQuestions)
	assert.Nil(t, body.CurrentCategory)
	assert.NotContains(t, string(raw), `"categories"`)

	for _, payload := range []string{`{"searchTerm": ""}`, `{}`, `not json`} {
		resp, raw := do(t, app, http.MethodPost, "/search/questions", payload)
		assertError(t, resp, raw, http.StatusBadRequest)
	}
}

func TestGetQuestionsByCategory(t *testing.T) {
	app, _ := setupApp(t)

	resp, raw := do(t, app, http.MethodGet, "/categories/1/questions", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[questionList](t, raw)
	assert.Len(t, body.Questions, 2)
	assert.Equal(t, 5, body.TotalQuestions)
	require.NotNil(t, body.CurrentCategory)
	assert.Equal(t, "Science", *body.CurrentCategory)

	resp, raw = do(t, app, http.MethodGet, "/categories/3/questions", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decode[questionList](t, raw)
	assert.Empty(t, body.Questions)
	assert.Equal(t, 5, body.TotalQuestions)
	assert.Equal(t, "Geography", *body.CurrentCategory)

	resp, raw = do(t, app, http.MethodGet, "/categories/-1/questions", "")
	assertError(t, resp, raw, http.StatusBadRequest)
}

func TestGetQuizQuestion(t *testing.T) {
	app, _ := setupApp(t)

	resp, raw := do(t, app, http.MethodPost, "/quizzes",
		`{"previous_questions": [], "quiz_category": {"type": "Sports", "id": 6}}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[struct {
		Question models.QuestionResponse `json:"question"`
	}](t, raw)
	assert.Equal(t, 4, body.Question.ID)

	resp, raw = do(t, app, http.MethodPost, "/quizzes",
		`{"previous_questions": [], "quiz_category": {"type": "Sports", "id": -1}}`)
	assertError(t, resp, raw, http.StatusInternalServerError)

	t.Run("string category id", func(t *testing.T) {
		resp, _ := do(t, app, http.MethodPost, "/quizzes",
			`{"previous_questions": [1], "quiz_category": {"type": "Science", "id": "1"}}`)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	missing := []string{
		`{"quiz_category": {"id": 1}}`,
		`{"previous_questions": []}`,
		`{"previous_questions": [], "quiz_category": {"type": "Science"}}`,
	}
	for _, payload := range missing {
		resp, raw := do(t, app, http.MethodPost, "/quizzes", payload)
		assertError(t, resp, raw, http.StatusBadRequest)
	}
}

func TestQuizAnyCategory(t *testing.T) {
	// Any category resolves to 1 + 5 = 6.
	app, _ := setupApp(t, services.WithRandom(func(n int) int {
		if n == 6 {
			return 5
		}
		return 0
	}))

	resp, raw := do(t, app, http.MethodPost, "/quizzes",
		`{"previous_questions": [], "quiz_category": {"type": "click", "id": 0}}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), "Uruguay")
}

func TestStoreFailureIs500(t *testing.T) {
	app, store := setupApp(t)
	store.Err = errors.New("database is down")

	for _, path := range []string{"/categories", "/questions", "/categories/1/questions"} {
		resp, raw := do(t, app, http.MethodGet, path, "")
		assertError(t, resp, raw, http.StatusInternalServerError)
		assert.NotContains(t, string(raw), "database is down")
	}

	resp, raw := do(t, app, http.MethodDelete, "/questions/1", "")
	assertError(t, resp, raw, http.StatusInternalServerError)
}

func TestUnknownRoute(t *testing.T) {
	app, _ := setupApp(t)

	resp, raw := do(t, app, http.MethodGet, "/nope", "")
	assertError(t, resp, raw, http.StatusNotFound)
	assert.Contains(t, string(raw), "Sorry, we couldn't found what you are looking for")
}

func TestAPIPrefixAndCORS(t *testing.T) {
	app, _ := setupApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	req.Header.Set(fiber.HeaderOrigin, "http://localhost:3000")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "Content-Type, Authorization", resp.Header.Get(fiber.HeaderAccessControlAllowHeaders))
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))

	resp, raw := do(t, app, http.MethodGet, "/questions", "")
	assert.Equal(t, "GET, POST, DELETE, PUT, PATCH, OPTIONS", resp.Header.Get(fiber.HeaderAccessControlAllowMethods))
	assert.NotEmpty(t, raw)
}

func TestHealth(t *testing.T) {
	app, _ := setupApp(t)

	resp, raw := do(t, app, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status": "ok"}`, string(raw))
}
