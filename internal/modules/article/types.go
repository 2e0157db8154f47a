package article

import "errors"

// MaxImagesPerUpload caps a single bulk image upload.
const MaxImagesPerUpload = 20

var (
	errMissingData     = errors.New("missing data")
	errArticleExists   = errors.New("article already exists")
	errArticleNotFound = errors.New("article not found")
	errImageNotFound   = errors.New("image not found")
)

// ArticleSummary is the listing shape: article fields plus the number of
// sub-images referencing it.
type ArticleSummary struct {
	Title      string `json:"title"`
	Thumbnail  string `json:"thumbnail"`
	ImageCount int64  `json:"imageCount"`
}
