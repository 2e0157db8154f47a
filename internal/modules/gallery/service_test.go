package gallery

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/akvfolio/portfolio-core/internal/models"
	"github.com/akvfolio/portfolio-core/internal/modules/storage/upload"
)

func newTestService(t *testing.T) (*Service, *upload.Store) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.AlbumModel{},
		&models.ImageModel{},
		&models.FileReferenceModel{},
	))
	store := upload.New(t.TempDir(), upload.DefaultCategories())
	return NewService(db, store), store
}

func uploadRootEntries(t *testing.T, store *upload.Store) []os.DirEntry {
	t.Helper()
	entries, err := os.ReadDir(store.Root())
	require.NoError(t, err)
	files := entries[:0]
	for _, e := range entries {
		if !e.IsDir() {
			files = append(files, e)
		}
	}
	return files
}

func TestCreateAlbum(t *testing.T) {
	svc, store := newTestService(t)

	err := svc.CreateAlbum("travel", strings.NewReader("thumb"), "thumb.jpg")
	require.NoError(t, err)

	albums, err := svc.ListAlbums()
	require.NoError(t, err)
	require.Len(t, albums, 1)
	assert.Equal(t, "travel", albums[0].Name)
	assert.Zero(t, albums[0].ImageCount)

	// Thumbnail on disk, reference committed.
	assert.Len(t, uploadRootEntries(t, store), 1)
	var ref models.FileReferenceModel
	require.NoError(t, svc.db.First(&ref, "file_name = ?", albums[0].Thumbnail).Error)
	assert.Equal(t, models.FileRefCommitted, ref.Status)
}

func TestCreateAlbumValidatesInput(t *testing.T) {
	svc, store := newTestService(t)

	assert.ErrorIs(t, svc.CreateAlbum("", strings.NewReader("x"), "t.jpg"), errMissingData)
	assert.ErrorIs(t, svc.CreateAlbum("travel", nil, "t.jpg"), errMissingData)
	assert.Empty(t, uploadRootEntries(t, store))
}

func TestCreateAlbumDuplicateLeavesNoFile(t *testing.T) {
	svc, store := newTestService(t)

	require.NoError(t, svc.CreateAlbum("travel", strings.NewReader("a"), "a.jpg"))
	err := svc.CreateAlbum("travel", strings.NewReader("b"), "b.jpg")
	assert.ErrorIs(t, err, errAlbumExists)

	// The rejected create must not write a second file.
	assert.Len(t, uploadRootEntries(t, store), 1)
}

func TestAddImagesAndCount(t *testing.T) {
	svc, _ := newTestService(t)
	require.NoError(t, svc.CreateAlbum("travel", strings.NewReader("t"), "t.jpg"))

	files := []upload.Incoming{
		{Name: "one.jpg", Data: strings.NewReader("1")},
		{Name: "two.jpg", Data: strings.NewReader("2")},
		{Name: "three.jpg", Data: strings.NewReader("3")},
	}
	require.NoError(t, svc.AddImages("travel", files))

	albums, err := svc.ListAlbums()
	require.NoError(t, err)
	require.Len(t, albums, 1)
	assert.EqualValues(t, 3, albums[0].ImageCount)

	images, err := svc.ListImages("travel")
	require.NoError(t, err)
	assert.Len(t, images, 3)
	for _, img := range images {
		assert.Equal(t, "travel", img.Album)
		assert.NotEmpty(t, img.ID)
	}
}

func TestAddImagesValidation(t *testing.T) {
	svc, _ := newTestService(t)
	require.NoError(t, svc.CreateAlbum("travel", strings.NewReader("t"), "t.jpg"))

	assert.ErrorIs(t, svc.AddImages("travel", nil), errMissingData)
	assert.ErrorIs(t, svc.AddImages("", []upload.Incoming{{Name: "a.jpg", Data: strings.NewReader("x")}}), errMissingData)

	over := make([]upload.Incoming, MaxImagesPerUpload+1)
	for i := range over {
		over[i] = upload.Incoming{Name: "a.jpg", Data: strings.NewReader("x")}
	}
	assert.Error(t, svc.AddImages("travel", over))

	err := svc.AddImages("missing", []upload.Incoming{{Name: "a.jpg", Data: strings.NewReader("x")}})
	assert.ErrorIs(t, err, errAlbumNotFound)
}

func TestDeleteAlbumCascades(t *testing.T) {
	svc, store := newTestService(t)
	require.NoError(t, svc.CreateAlbum("travel", strings.NewReader("t"), "t.jpg"))
	require.NoError(t, svc.AddImages("travel", []upload.Incoming{
		{Name: "one.jpg", Data: strings.NewReader("1")},
		{Name: "two.jpg", Data: strings.NewReader("2")},
	}))

	removed, err := svc.DeleteAlbum("travel")
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	albums, err := svc.ListAlbums()
	require.NoError(t, err)
	assert.Empty(t, albums)

	var imageCount, refCount int64
	require.NoError(t, svc.db.Model(&models.ImageModel{}).Count(&imageCount).Error)
	require.NoError(t, svc.db.Model(&models.FileReferenceModel{}).Count(&refCount).Error)
	assert.Zero(t, imageCount)
	assert.Zero(t, refCount)
	assert.Empty(t, uploadRootEntries(t, store))
}

func TestDeleteAlbumNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.DeleteAlbum("missing")
	assert.ErrorIs(t, err, errAlbumNotFound)
}

func TestDeleteImage(t *testing.T) {
	svc, _ := newTestService(t)
	require.NoError(t, svc.CreateAlbum("travel", strings.NewReader("t"), "t.jpg"))
	require.NoError(t, svc.AddImages("travel", []upload.Incoming{
		{Name: "one.jpg", Data: strings.NewReader("1")},
	}))

	images, err := svc.ListImages("travel")
	require.NoError(t, err)
	require.Len(t, images, 1)

	require.NoError(t, svc.DeleteImage(images[0].ID))
	images, err = svc.ListImages("travel")
	require.NoError(t, err)
	assert.Empty(t, images)

	assert.ErrorIs(t, svc.DeleteImage("00000000-0000-0000-0000-000000000000"), errImageNotFound)
}
