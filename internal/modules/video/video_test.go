package video

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/akvfolio/portfolio-core/internal/models"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.VideoModel{}))

	r := gin.New()
	NewHandler(NewService(db)).RegisterRoutes(r)
	return r
}

func postJSON(r *gin.Engine, path, payload string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAddAndListVideos(t *testing.T) {
	r := newTestRouter(t)

	rec := postJSON(r, "/api/add-video", `{"title":"Talk","youtubeLink":"https://youtu.be/abc"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Video added successfully")

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/get-videos", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var videos []models.VideoModel
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &videos))
	require.Len(t, videos, 1)
	assert.Equal(t, "Talk", videos[0].Title)
	assert.Equal(t, "https://youtu.be/abc", videos[0].YoutubeLink)
}

func TestAddVideoRequiresFields(t *testing.T) {
	r := newTestRouter(t)

	for _, payload := range []string{`{}`, `{"title":"Talk"}`, `{"youtubeLink":"https://youtu.be/abc"}`} {
		rec := postJSON(r, "/api/add-video", payload)
		assert.Equal(t, http.StatusBadRequest, rec.Code, payload)
	}
}

func TestDeleteVideo(t *testing.T) {
	r := newTestRouter(t)

	rec := postJSON(r, "/api/add-video", `{"title":"Talk","youtubeLink":"https://youtu.be/abc"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/get-videos", nil))
	var videos []models.VideoModel
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &videos))
	require.Len(t, videos, 1)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/delete-video/"+videos[0].ID, nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/delete-video/"+videos[0].ID, nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
