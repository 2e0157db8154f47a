package upload

import (
	"time"

	"github.com/akvfolio/portfolio-core/internal/models"
	"gorm.io/gorm"
)

// TrackPending records a freshly stored file as pending. Called between the
// file write and the owning record insert; a crash in that window leaves the
// reference pending for the sweep to reap.
func TrackPending(db *gorm.DB, category, filename string) error {
	return db.Create(&models.FileReferenceModel{
		Category: category,
		FileName: filename,
		Status:   models.FileRefPending,
	}).Error
}

// MarkCommitted flips a pending reference to committed once the owning record
// exists.
func MarkCommitted(db *gorm.DB, category, filename string) error {
	return db.Model(&models.FileReferenceModel{}).
		Where("category = ? AND file_name = ?", category, filename).
		Update("status", models.FileRefCommitted).Error
}

// Release drops the reference row when the owning record (and file) are
// deleted.
func Release(db *gorm.DB, category, filename string) error {
	return db.
		Where("category = ? AND file_name = ?", category, filename).
		Delete(&models.FileReferenceModel{}).Error
}

// SweepOrphans deletes pending references older than maxAge together with
// their files, returning the number of references removed. File absence is
// tolerated; a reference row is only kept when its row delete fails.
func SweepOrphans(db *gorm.DB, store *Store, maxAge time.Duration) (int, error) {
	cutoff := time.Now().Add(-maxAge)

	var refs []models.FileReferenceModel
	if err := db.
		Where("status = ? AND created_at <= ?", models.FileRefPending, cutoff).
		Find(&refs).Error; err != nil {
		return 0, err
	}

	deleted := 0
	for _, ref := range refs {
		_ = store.Remove(ref.Category, ref.FileName)
		if err := db.Delete(&models.FileReferenceModel{}, "id = ?", ref.ID).Error; err == nil {
			deleted++
		}
	}
	return deleted, nil
}
