package models

type Category struct {
	ID   int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Type string `gorm:"type:text" json:"type"`
}

type CategoryResponse struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

func (c Category) Format() CategoryResponse {
	return CategoryResponse{ID: c.ID, Type: c.Type}
}

func FormatCategories(categories []Category) []CategoryResponse {
	formatted := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		formatted[i] = c.Format()
	}
	return formatted
}
