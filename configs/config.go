package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

const (
	RedrawScopeAll      = "all"
	RedrawScopeCategory = "category"
)

var loadEnv sync.Once

// Settings holds everything the server needs at startup.
type Settings struct {
	Port             string
	DatabaseURL      string
	AllowOrigins     string
	QuizCategoryMin  int
	QuizCategoryMax  int
	QuizRedrawScope  string
	QuestionsPerPage int
}

// LoadEnvFile reads the given .env file into the process environment. Missing
// files are not an error; system environment variables are used instead.
func LoadEnvFile(path string) {
	loadEnv.Do(func() {
		if err := godotenv.Load(path); err != nil {
			log.Println("Warning: .env file not found, reading from system environment variables")
		}
	})
}

func Config(key string) string {
	LoadEnvFile(".env")
	return os.Getenv(key)
}

func configDefault(key, fallback string) string {
	if v := strings.TrimSpace(Config(key)); v != "" {
		return v
	}
	return fallback
}

func configInt(key string, fallback int) int {
	v := Config(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		log.Printf("Warning: %s=%q is not an integer, using %d", key, v, fallback)
		return fallback
	}
	return n
}

// Load builds Settings from the environment, filling in defaults.
func Load() Settings {
	s := Settings{
		Port:             configDefault("PORT", "8080"),
		DatabaseURL:      Config("DATABASE_URL"),
		AllowOrigins:     configDefault("ALLOW_ORIGINS", "*"),
		QuizCategoryMin:  configInt("QUIZ_CATEGORY_MIN", 1),
		QuizCategoryMax:  configInt("QUIZ_CATEGORY_MAX", 6),
		QuizRedrawScope:  strings.ToLower(configDefault("QUIZ_REDRAW_SCOPE", RedrawScopeAll)),
		QuestionsPerPage: 10,
	}

	if s.QuizCategoryMax < s.QuizCategoryMin {
		log.Printf("Warning: QUIZ_CATEGORY_MAX < QUIZ_CATEGORY_MIN, using [%d,%d]", s.QuizCategoryMin, s.QuizCategoryMin)
		s.QuizCategoryMax = s.QuizCategoryMin
	}
	if s.QuizRedrawScope != RedrawScopeAll && s.QuizRedrawScope != RedrawScopeCategory {
		log.Printf("Warning: unknown QUIZ_REDRAW_SCOPE %q, using %q", s.QuizRedrawScope, RedrawScopeAll)
		s.QuizRedrawScope = RedrawScopeAll
	}
	return s
}
