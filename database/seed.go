package database

import (
	_ "embed"
	"fmt"
	"log"
	"os"

	"github.com/anjiri1684/trivia_api/models"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

//go:embed seed.yaml
var defaultSeed []byte

type SeedData struct {
	Categories []SeedCategory `yaml:"categories"`
	Questions  []SeedQuestion `yaml:"questions"`
}

type SeedCategory struct {
	ID   int    `yaml:"id"`
	Type string `yaml:"type"`
}

type SeedQuestion struct {
	Question   string `yaml:"question"`
	Answer     string `yaml:"answer"`
	Category   int    `yaml:"category"`
	Difficulty int    `yaml:"difficulty"`
}

// LoadSeed parses the fixture at path, or the embedded fixture when path is
// empty.
func LoadSeed(path string) (*SeedData, error) {
	raw := defaultSeed
	if path != "" {
		var err error
		raw, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
	}

	var data SeedData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &data, nil
}

// Seed inserts categories and questions into empty tables. Tables that
// already hold rows are left untouched.
func Seed(db *gorm.DB, data *SeedData) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count categories: %w", err)
	}
	if count > 0 {
		log.Println("Categories already seeded.")
	} else if len(data.Categories) > 0 {
		categories := make([]models.Category, len(data.Categories))
		for i, c := range data.Categories {
			categories[i] = models.Category{ID: c.ID, Type: c.Type}
		}
		if err := db.Create(&categories).Error; err != nil {
			return fmt.Errorf("seed categories: %w", err)
		}
		log.Printf("✅ Seeded %d categories", len(categories))
	}

	if err := db.Model(&models.Question{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count questions: %w", err)
	}
	if count > 0 {
		log.Println("Questions already seeded.")
		return nil
	}
	if len(data.Questions) == 0 {
		return nil
	}

	questions := make([]models.Question, len(data.Questions))
	for i, q := range data.Questions {
		questions[i] = models.Question{
			Question:   q.Question,
			Answer:     q.Answer,
			Category:   q.Category,
			Difficulty: q.Difficulty,
		}
	}
	if err := db.Create(&questions).Error; err != nil {
		return fmt.Errorf("seed questions: %w", err)
	}
	log.Printf("✅ Seeded %d questions", len(questions))
	return nil
}
