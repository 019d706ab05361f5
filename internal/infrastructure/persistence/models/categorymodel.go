package models

import "time"

// CategoryModel keeps description and color nullable so rows created
// before the defaults existed still load.
type CategoryModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:50;not null;uniqueIndex"`
	Description *string
	Color       *string `gorm:"size:7"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (CategoryModel) TableName() string {
	return "categories"
}
