package blog

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/akvfolio/portfolio-core/internal/models"
	"github.com/akvfolio/portfolio-core/internal/modules/storage/upload"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.BlogModel{}, &models.FileReferenceModel{}))

	svc := NewService(db, upload.New(t.TempDir(), upload.DefaultCategories()))
	r := gin.New()
	NewHandler(svc).RegisterRoutes(r)
	return r
}

func multipartBlog(t *testing.T, title, description string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	if title != "" {
		require.NoError(t, w.WriteField("title", title))
	}
	if description != "" {
		require.NoError(t, w.WriteField("description", description))
	}
	fw, err := w.CreateFormFile("image", "cover.png")
	require.NoError(t, err)
	_, err = fw.Write([]byte("png bytes"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func TestCreateListDeleteRoundtrip(t *testing.T) {
	r := newTestRouter(t)

	body, contentType := multipartBlog(t, "First post", "hello world")
	req := httptest.NewRequest(http.MethodPost, "/blogs", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/blogs", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var blogs []models.BlogModel
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &blogs))
	require.Len(t, blogs, 1)
	assert.Equal(t, "First post", blogs[0].Title)
	assert.NotEmpty(t, blogs[0].Image)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/blogs/"+blogs[0].ID, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/blogs", nil))
	blogs = nil
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &blogs))
	assert.Empty(t, blogs)
}

func TestCreateMissingFields(t *testing.T) {
	r := newTestRouter(t)

	body, contentType := multipartBlog(t, "", "hello")
	req := httptest.NewRequest(http.MethodPost, "/blogs", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing fields")
}

func TestDeleteMissing(t *testing.T) {
	r := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/blogs/00000000-0000-0000-0000-000000000000", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
