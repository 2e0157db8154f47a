package database

import (
	"fmt"

	"github.com/akvfolio/portfolio-core/internal/config"
	"github.com/akvfolio/portfolio-core/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens a MySQL connection and runs auto-migration.
func Connect(cfg *config.AppConfig) (*gorm.DB, error) {
	logLevel := logger.Warn
	if cfg.IsDev() {
		logLevel = logger.Info
	}

	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:               cfg.Database.DSNValue(),
		DefaultStringSize: 191,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	return db, nil
}

// Migrate runs GORM auto-migration for all models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.AlbumModel{},
		&models.ImageModel{},
		&models.ArticleModel{},
		&models.ArticleImageModel{},
		&models.BlogModel{},
		&models.ResumeModel{},
		&models.BookModel{},
		&models.CertificateModel{},
		&models.VideoModel{},
		&models.TodoModel{},
		&models.VisitorModel{},
		&models.FileReferenceModel{},
	)
}
