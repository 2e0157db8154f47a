// Package resume implements the resume list, one uploaded image per entry.
package resume

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
	errMissingData = errors.New("missing data")
	errNotFound    = errors.New("resume not found")
)

type Service struct {
	db    *gorm.DB
	store *upload.Store
}

func NewService(db *gorm.DB, store *upload.Store) *Service {
	return &Service{db: db, store: store}
}

func (s *Service) Create(heading string, image io.Reader, originalName string) error {
	if heading == "" || image == nil {
		return errMissingData
	}

	filename, err := s.store.Save(upload.CategoryResumes, image, originalName)
	if err != nil {
		return err
	}
	_ = upload.TrackPending(s.db, upload.CategoryResumes, filename)

	if err := s.db.Create(&models.ResumeModel{
		Heading: heading,
		Image:   filename,
	}).Error; err != nil {
		return err
	}
	return upload.MarkCommitted(s.db, upload.CategoryResumes, filename)
}

func (s *Service) List() ([]models.ResumeModel, error) {
	var resumes []models.ResumeModel
	err := s.db.Order("created_at DESC").Find(&resumes).Error
	return resumes, err
}

func (s *Service) Delete(id string) error {
	var resume models.ResumeModel
	if err := s.db.First(&resume, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errNotFound
		}
		return err
	}

	_ = s.store.Remove(upload.CategoryResumes, resume.Image)
	_ = upload.Release(s.db, upload.CategoryResumes, resume.Image)
	return s.db.Delete(&models.ResumeModel{}, "id = ?", resume.ID).Error
}

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.POST("/resumes", h.create)
	r.GET("/resumes", h.list)
	r.DELETE("/resumes/:id", h.delete)
}

// POST /resumes — multipart: heading + image file
func (h *Handler) create(c *gin.Context) {
	heading := c.PostForm("heading")
	fileHeader, err := c.FormFile("image")
	if heading == "" || err != nil {
		response.BadRequest(c, "Missing data")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	defer f.Close()

	if err := h.svc.Create(heading, f, fileHeader.Filename); err != nil {
		if errors.Is(err, errMissingData) {
			response.BadRequest(c, "Missing data")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, gin.H{"message": "Resume saved"})
}

// GET /resumes
func (h *Handler) list(c *gin.Context) {
	resumes, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, resumes)
}

// DELETE /resumes/:id
func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		if errors.Is(err, errNotFound) {
			response.NotFoundMsg(c, "Resume not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "Resume deleted"})
}
