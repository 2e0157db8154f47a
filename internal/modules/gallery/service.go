package gallery

import (
	"errors"
	"io"
	"time"

	"gorm.io/gorm"

	"github.com/akvfolio/portfolio-core/internal/models"
	"github.com/akvfolio/portfolio-core/internal/modules/storage/upload"
)

// Service orchestrates albums and their images over the record store and the
// attachment store.
type Service struct {
	db    *gorm.DB
	store *upload.Store
}

func NewService(db *gorm.DB, store *upload.Store) *Service {
	return &Service{db: db, store: store}
}

// CreateAlbum stores the thumbnail and inserts the album record. Album names
// are unique; a duplicate fails before any file is written.
func (s *Service) CreateAlbum(name string, thumbnail io.Reader, originalName string) error {
	if name == "" || thumbnail == nil {
		return errMissingData
	}

	var existing models.AlbumModel
	err := s.db.Where("name = ?", name).First(&existing).Error
	if err == nil {
		return errAlbumExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	filename, err := s.store.Save(upload.CategoryAlbums, thumbnail, originalName)
	if err != nil {
		return err
	}
	_ = upload.TrackPending(s.db, upload.CategoryAlbums, filename)

	if err := s.db.Create(&models.AlbumModel{
		Name:      name,
		Thumbnail: filename,
		Date:      time.Now(),
	}).Error; err != nil {
		return err
	}
	return upload.MarkCommitted(s.db, upload.CategoryAlbums, filename)
}

// ListAlbums returns all albums, most recent first, each with the count of
// images referencing it. One count query per album; fine at this scale, not
// batched.
func (s *Service) ListAlbums() ([]AlbumSummary, error) {
	var albums []models.AlbumModel
	if err := s.db.Order("date DESC").Find(&albums).Error; err != nil {
		return nil, err
	}

	out := make([]AlbumSummary, 0, len(albums))
	for _, album := range albums {
		var count int64
		if err := s.db.Model(&models.ImageModel{}).
			Where("album_id = ?", album.ID).
			Count(&count).Error; err != nil {
			return nil, err
		}
		out = append(out, AlbumSummary{
			Name:       album.Name,
			Thumbnail:  album.Thumbnail,
			ImageCount: count,
		})
	}
	return out, nil
}

// DeleteAlbum removes the album, its thumbnail, and every image record and
// file belonging to it. Returns the number of images removed.
func (s *Service) DeleteAlbum(name string) (int, error) {
	album, err := s.findAlbum(name)
	if err != nil {
		return 0, err
	}

	_ = s.store.Remove(upload.CategoryAlbums, album.Thumbnail)
	_ = upload.Release(s.db, upload.CategoryAlbums, album.Thumbnail)

	var images []models.ImageModel
	if err := s.db.Where("album_id = ?", album.ID).Find(&images).Error; err != nil {
		return 0, err
	}
	for _, img := range images {
		_ = s.store.Remove(upload.CategoryAlbums, img.Filename)
		_ = upload.Release(s.db, upload.CategoryAlbums, img.Filename)
	}

	if err := s.db.Where("album_id = ?", album.ID).Delete(&models.ImageModel{}).Error; err != nil {
		return 0, err
	}
	if err := s.db.Delete(&models.AlbumModel{}, "id = ?", album.ID).Error; err != nil {
		return 0, err
	}
	return len(images), nil
}

// AddImages stores up to MaxImagesPerUpload payloads and inserts one image
// record per stored file, all referencing the album.
func (s *Service) AddImages(albumName string, files []upload.Incoming) error {
	if albumName == "" || len(files) == 0 {
		return errMissingData
	}
	if len(files) > MaxImagesPerUpload {
		return errMissingData
	}
	album, err := s.findAlbum(albumName)
	if err != nil {
		return err
	}

	now := time.Now()
	records := make([]models.ImageModel, 0, len(files))
	for _, f := range files {
		filename, err := s.store.Save(upload.CategoryAlbums, f.Data, f.Name)
		if err != nil {
			return err
		}
		_ = upload.TrackPending(s.db, upload.CategoryAlbums, filename)
		records = append(records, models.ImageModel{
			Filename: filename,
			AlbumID:  album.ID,
			Date:     now,
		})
	}

	if err := s.db.Create(&records).Error; err != nil {
		return err
	}
	for _, rec := range records {
		_ = upload.MarkCommitted(s.db, upload.CategoryAlbums, rec.Filename)
	}
	return nil
}

// ListImages returns the image records of an album, most recent first.
func (s *Service) ListImages(albumName string) ([]imageResponse, error) {
	album, err := s.findAlbum(albumName)
	if err != nil {
		return nil, err
	}

	var images []models.ImageModel
	if err := s.db.Where("album_id = ?", album.ID).
		Order("date DESC").
		Find(&images).Error; err != nil {
		return nil, err
	}

	out := make([]imageResponse, 0, len(images))
	for _, img := range images {
		out = append(out, imageResponse{
			ID:       img.ID,
			Filename: img.Filename,
			Album:    album.Name,
			Date:     img.Date,
		})
	}
	return out, nil
}

// DeleteImage removes a single image record and its file.
func (s *Service) DeleteImage(id string) error {
	var img models.ImageModel
	if err := s.db.First(&img, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errImageNotFound
		}
		return err
	}

	_ = s.store.Remove(upload.CategoryAlbums, img.Filename)
	_ = upload.Release(s.db, upload.CategoryAlbums, img.Filename)
	return s.db.Delete(&models.ImageModel{}, "id = ?", img.ID).Error
}

func (s *Service) findAlbum(name string) (*models.AlbumModel, error) {
	var album models.AlbumModel
	if err := s.db.Where("name = ?", name).First(&album).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errAlbumNotFound
		}
		return nil, err
	}
	return &album, nil
}
