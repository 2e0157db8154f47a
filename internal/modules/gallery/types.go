package gallery

import (
	"errors"
	"time"
)

// MaxImagesPerUpload caps a single bulk image upload.
const MaxImagesPerUpload = 10

var (
	errMissingData    = errors.New("missing data")
	errAlbumExists    = errors.New("album already exists")
	errAlbumNotFound  = errors.New("album not found")
	errImageNotFound  = errors.New("image not found")
)

// AlbumSummary is the listing shape: album fields plus the number of images
// referencing it.
type AlbumSummary struct {
	Name       string `json:"name"`
	Thumbnail  string `json:"thumbnail"`
	ImageCount int64  `json:"imageCount"`
}

type imageResponse struct {
	ID       string    `json:"id"`
	Filename string    `json:"filename"`
	Album    string    `json:"album"`
	Date     time.Time `json:"date"`
}
