// Package video implements the YouTube video-link list. No attachments.
package video

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/akvfolio/portfolio-core/internal/models"
	"github.com/akvfolio/portfolio-core/internal/pkg/response"
)

var errNotFound = errors.New("video not found")

type addVideoDTO struct {
	Title       string `json:"title"       binding:"required"`
	YoutubeLink string `json:"youtubeLink" binding:"required"`
}

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) Create(title, youtubeLink string) (*models.VideoModel, error) {
	v := models.VideoModel{Title: title, YoutubeLink: youtubeLink}
	return &v, s.db.Create(&v).Error
}

func (s *Service) List() ([]models.VideoModel, error) {
	var videos []models.VideoModel
	err := s.db.Order("created_at DESC").Find(&videos).Error
	return videos, err
}

func (s *Service) Delete(id string) error {
	result := s.db.Delete(&models.VideoModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errNotFound
	}
	return nil
}

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.POST("/api/add-video", h.create)
	r.GET("/api/get-videos", h.list)
	r.DELETE("/api/delete-video/:id", h.delete)
}

// POST /api/add-video — JSON: title + youtubeLink
func (h *Handler) create(c *gin.Context) {
	var dto addVideoDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Title and YouTube link are required")
		return
	}
	if _, err := h.svc.Create(dto.Title, dto.YoutubeLink); err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, gin.H{"message": "Video added successfully"})
}

// GET /api/get-videos
func (h *Handler) list(c *gin.Context) {
	videos, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, videos)
}

// DELETE /api/delete-video/:id
func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		if errors.Is(err, errNotFound) {
			response.NotFoundMsg(c, "Video not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "Video deleted successfully"})
}
