package models

// VideoModel stores a YouTube video link. No attachment; the creation time
// doubles as the added-at timestamp.
type VideoModel struct {
	Base
	Title       string `json:"title"       gorm:"not null"`
	YoutubeLink string `json:"youtubeLink" gorm:"not null"`
}

func (VideoModel) TableName() string { return "videos" }
