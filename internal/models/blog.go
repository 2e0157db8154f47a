package models

// BlogModel stores a blog entry with a cover image filename.
type BlogModel struct {
	Base
	Title       string `json:"title"       gorm:"not null"`
	Description string `json:"description" gorm:"type:text;not null"`
	Image       string `json:"image"       gorm:"not null"`
}

func (BlogModel) TableName() string { return "blogs" }
