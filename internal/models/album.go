package models

import "time"

// AlbumModel represents a photo album. Name is the natural key exposed by the
// API; it carries a uniqueness constraint so child rows can safely resolve it.
type AlbumModel struct {
	Base
	Name      string    `json:"name"      gorm:"uniqueIndex;not null"`
	Thumbnail string    `json:"thumbnail" gorm:"not null"`
	Date      time.Time `json:"date"      gorm:"index"`
}

func (AlbumModel) TableName() string { return "albums" }

// ImageModel is a photo belonging to an album, referenced by the album's
// generated id rather than its name.
type ImageModel struct {
	Base
	Filename string    `json:"filename" gorm:"not null"`
	AlbumID  string    `json:"-"        gorm:"index;not null"`
	Date     time.Time `json:"date"     gorm:"index"`
}

func (ImageModel) TableName() string { return "images" }
