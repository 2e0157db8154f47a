package article

import (
	"errors"
	"io"
	"time"

	"gorm.io/gorm"

	"github.com/akvfolio/portfolio-core/internal/models"
	"github.com/akvfolio/portfolio-core/internal/modules/storage/upload"
)

// Service orchestrates articles and their sub-images. Thumbnails live in the
// articles category, sub-images in articleimages.
type Service struct {
	db    *gorm.DB
	store *upload.Store
}

func NewService(db *gorm.DB, store *upload.Store) *Service {
	return &Service{db: db, store: store}
}

// Create stores the thumbnail and inserts the article record. Titles are
// unique; a duplicate fails before any file is written.
func (s *Service) Create(title string, thumbnail io.Reader, originalName string) error {
	if title == "" || thumbnail == nil {
		return errMissingData
	}

	var existing models.ArticleModel
	err := s.db.Where("title = ?", title).First(&existing).Error
	if err == nil {
		return errArticleExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	filename, err := s.store.Save(upload.CategoryArticles, thumbnail, originalName)
	if err != nil {
		return err
	}
	_ = upload.TrackPending(s.db, upload.CategoryArticles, filename)

	if err := s.db.Create(&models.ArticleModel{
		Title:     title,
		Thumbnail: filename,
		Date:      time.Now(),
	}).Error; err != nil {
		return err
	}
	return upload.MarkCommitted(s.db, upload.CategoryArticles, filename)
}

// List returns all articles, most recent first, each with its sub-image
// count (one count query per article).
func (s *Service) List() ([]ArticleSummary, error) {
	var articles []models.ArticleModel
	if err := s.db.Order("date DESC").Find(&articles).Error; err != nil {
		return nil, err
	}

	out := make([]ArticleSummary, 0, len(articles))
	for _, art := range articles {
		var count int64
		if err := s.db.Model(&models.ArticleImageModel{}).
			Where("article_id = ?", art.ID).
			Count(&count).Error; err != nil {
			return nil, err
		}
		out = append(out, ArticleSummary{
			Title:      art.Title,
			Thumbnail:  art.Thumbnail,
			ImageCount: count,
		})
	}
	return out, nil
}

// Delete removes the article, its thumbnail, and every sub-image record and
// file. Returns the number of sub-images removed.
func (s *Service) Delete(title string) (int, error) {
	art, err := s.find(title)
	if err != nil {
		return 0, err
	}

	_ = s.store.Remove(upload.CategoryArticles, art.Thumbnail)
	_ = upload.Release(s.db, upload.CategoryArticles, art.Thumbnail)

	var images []models.ArticleImageModel
	if err := s.db.Where("article_id = ?", art.ID).Find(&images).Error; err != nil {
		return 0, err
	}
	for _, img := range images {
		_ = s.store.Remove(upload.CategoryArticleImages, img.Filename)
		_ = upload.Release(s.db, upload.CategoryArticleImages, img.Filename)
	}

	if err := s.db.Where("article_id = ?", art.ID).Delete(&models.ArticleImageModel{}).Error; err != nil {
		return 0, err
	}
	if err := s.db.Delete(&models.ArticleModel{}, "id = ?", art.ID).Error; err != nil {
		return 0, err
	}
	return len(images), nil
}

// AddImages stores up to MaxImagesPerUpload payloads as sub-images of the
// article.
func (s *Service) AddImages(title string, files []upload.Incoming) error {
	if title == "" || len(files) == 0 || len(files) > MaxImagesPerUpload {
		return errMissingData
	}
	art, err := s.find(title)
	if err != nil {
		return err
	}

	now := time.Now()
	records := make([]models.ArticleImageModel, 0, len(files))
	for _, f := range files {
		filename, err := s.store.Save(upload.CategoryArticleImages, f.Data, f.Name)
		if err != nil {
			return err
		}
		_ = upload.TrackPending(s.db, upload.CategoryArticleImages, filename)
		records = append(records, models.ArticleImageModel{
			Filename:  filename,
			ArticleID: art.ID,
			Date:      now,
		})
	}

	if err := s.db.Create(&records).Error; err != nil {
		return err
	}
	for _, rec := range records {
		_ = upload.MarkCommitted(s.db, upload.CategoryArticleImages, rec.Filename)
	}
	return nil
}

// ListImageFilenames returns only the filenames of an article's sub-images,
// most recent first.
func (s *Service) ListImageFilenames(title string) ([]string, error) {
	art, err := s.find(title)
	if err != nil {
		return nil, err
	}

	var filenames []string
	if err := s.db.Model(&models.ArticleImageModel{}).
		Where("article_id = ?", art.ID).
		Order("date DESC").
		Pluck("filename", &filenames).Error; err != nil {
		return nil, err
	}
	return filenames, nil
}

// DeleteImage removes one sub-image identified by article title and filename.
func (s *Service) DeleteImage(title, filename string) error {
	art, err := s.find(title)
	if err != nil {
		return err
	}

	var img models.ArticleImageModel
	if err := s.db.
		Where("article_id = ? AND filename = ?", art.ID, filename).
		First(&img).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errImageNotFound
		}
		return err
	}

	_ = s.store.Remove(upload.CategoryArticleImages, img.Filename)
	_ = upload.Release(s.db, upload.CategoryArticleImages, img.Filename)
	return s.db.Delete(&models.ArticleImageModel{}, "id = ?", img.ID).Error
}

func (s *Service) find(title string) (*models.ArticleModel, error) {
	var art models.ArticleModel
	if err := s.db.Where("title = ?", title).First(&art).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errArticleNotFound
		}
		return nil, err
	}
	return &art, nil
}
