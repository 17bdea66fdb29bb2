package models

type Question struct {
	ID         int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Question   string `gorm:"type:text" json:"question"`
	Answer     string `gorm:"type:text" json:"answer"`
	Category   int    `gorm:"index" json:"category"`
	Difficulty int    `json:"difficulty"`
}

// QuestionResponse is the JSON projection returned by every endpoint that
// emits a question.
type QuestionResponse struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

func (q Question) Format() QuestionResponse {
	return QuestionResponse{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

func FormatQuestions(questions []Question) []QuestionResponse {
	formatted := make([]QuestionResponse, len(questions))
	for i, q := range questions {
		formatted[i] = q.Format()
	}
	return formatted
}
