package models

// BookModel stores a reading-list entry with an external link and cover image.
type BookModel struct {
	Base
	Name  string `json:"name"  gorm:"not null"`
	Link  string `json:"link"  gorm:"not null"`
	Image string `json:"image" gorm:"not null"`
}

func (BookModel) TableName() string { return "books" }
