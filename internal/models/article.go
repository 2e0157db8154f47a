package models

import "time"

// ArticleModel represents an article with a thumbnail and a gallery of
// sub-images. Title is the natural key exposed by the API.
type ArticleModel struct {
	Base
	Title     string    `json:"title"     gorm:"uniqueIndex;not null"`
	Thumbnail string    `json:"thumbnail" gorm:"not null"`
	Date      time.Time `json:"date"      gorm:"index"`
}

func (ArticleModel) TableName() string { return "articles" }

// ArticleImageModel is a sub-image of an article.
type ArticleImageModel struct {
	Base
	Filename  string    `json:"filename" gorm:"not null"`
	ArticleID string    `json:"-"        gorm:"index;not null"`
	Date      time.Time `json:"date"     gorm:"index"`
}

func (ArticleImageModel) TableName() string { return "article_images" }
