// Package blog implements blog entries with a cover image attachment.
package blog

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/akvfolio/portfolio-core/internal/models"
	"github.com/akvfolio/portfolio-core/internal/modules/storage/upload"
	"github.com/akvfolio/portfolio-core/internal/pkg/response"
)

var (
	errMissingFields = errors.New("missing fields")
	errNotFound      = errors.New("blog not found")
)

type Service struct {
	db    *gorm.DB
	store *upload.Store
}

func NewService(db *gorm.DB, store *upload.Store) *Service {
	return &Service{db: db, store: store}
}

func (s *Service) Create(title, description string, image io.Reader, originalName string) error {
	if title == "" || description == "" || image == nil {
		return errMissingFields
	}

	filename, err := s.store.Save(upload.CategoryBlogs, image, originalName)
	if err != nil {
		return err
	}
	_ = upload.TrackPending(s.db, upload.CategoryBlogs, filename)

	if err := s.db.Create(&models.BlogModel{
		Title:       title,
		Description: description,
		Image:       filename,
	}).Error; err != nil {
		return err
	}
	return upload.MarkCommitted(s.db, upload.CategoryBlogs, filename)
}

func (s *Service) List() ([]models.BlogModel, error) {
	var blogs []models.BlogModel
	err := s.db.Order("created_at DESC").Find(&blogs).Error
	return blogs, err
}

func (s *Service) Delete(id string) error {
	var blog models.BlogModel
	if err := s.db.First(&blog, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errNotFound
		}
		return err
	}

	_ = s.store.Remove(upload.CategoryBlogs, blog.Image)
	_ = upload.Release(s.db, upload.CategoryBlogs, blog.Image)
	return s.db.Delete(&models.BlogModel{}, "id = ?", blog.ID).Error
}

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.POST("/blogs", h.create)
	r.GET("/blogs", h.list)
	r.DELETE("/blogs/:id", h.delete)
}

// POST /blogs — multipart: title + description + image file
func (h *Handler) create(c *gin.Context) {
	title := c.PostForm("title")
	description := c.PostForm("description")
	fileHeader, err := c.FormFile("image")
	if title == "" || description == "" || err != nil {
		response.BadRequest(c, "Missing fields")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	defer f.Close()

	if err := h.svc.Create(title, description, f, fileHeader.Filename); err != nil {
		if errors.Is(err, errMissingFields) {
			response.BadRequest(c, "Missing fields")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, gin.H{"message": "Blog saved"})
}

// GET /blogs
func (h *Handler) list(c *gin.Context) {
	blogs, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, blogs)
}

// DELETE /blogs/:id
func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		if errors.Is(err, errNotFound) {
			response.NotFoundMsg(c, "Blog not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "Blog deleted"})
}
