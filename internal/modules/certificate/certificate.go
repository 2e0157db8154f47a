// Package certificate implements the certificate list. The certificates
// upload category carries a format allow-list; a rejected payload surfaces as
// a validation failure, not a storage failure.
package certificate

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
	errNotFound    = errors.New("certificate not found")
)

type Service struct {
	db    *gorm.DB
	store *upload.Store
}

func NewService(db *gorm.DB, store *upload.Store) *Service {
	return &Service{db: db, store: store}
}

func (s *Service) Create(title string, image io.Reader, originalName string) error {
	if title == "" || image == nil {
		return errMissingData
	}

	filename, err := s.store.Save(upload.CategoryCertificates, image, originalName)
	if err != nil {
		return err // may be upload.ErrUnsupportedFormat
	}
	_ = upload.TrackPending(s.db, upload.CategoryCertificates, filename)

	if err := s.db.Create(&models.CertificateModel{
		Title: title,
		Image: filename,
	}).Error; err != nil {
		return err
	}
	return upload.MarkCommitted(s.db, upload.CategoryCertificates, filename)
}

func (s *Service) List() ([]models.CertificateModel, error) {
	var certs []models.CertificateModel
	err := s.db.Order("created_at DESC").Find(&certs).Error
	return certs, err
}

func (s *Service) Delete(id string) error {
	var cert models.CertificateModel
	if err := s.db.First(&cert, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errNotFound
		}
		return err
	}

	_ = s.store.Remove(upload.CategoryCertificates, cert.Image)
	_ = upload.Release(s.db, upload.CategoryCertificates, cert.Image)
	return s.db.Delete(&models.CertificateModel{}, "id = ?", cert.ID).Error
}

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.POST("/certificates", h.create)
	r.GET("/certificates", h.list)
	r.DELETE("/certificates/:id", h.delete)
}

// POST /certificates — multipart: title + image file (jpg/jpeg/png/gif only)
func (h *Handler) create(c *gin.Context) {
	title := c.PostForm("title")
	fileHeader, err := c.FormFile("image")
	if title == "" || err != nil {
		response.BadRequest(c, "Missing title or image file.")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	defer f.Close()

	if err := h.svc.Create(title, f, fileHeader.Filename); err != nil {
		switch {
		case errors.Is(err, errMissingData):
			response.BadRequest(c, "Missing title or image file.")
		case errors.Is(err, upload.ErrUnsupportedFormat):
			response.BadRequest(c, "Only image files (jpg, jpeg, png, gif) are allowed!")
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.Created(c, gin.H{"message": "Certificate saved successfully"})
}

// GET /certificates
func (h *Handler) list(c *gin.Context) {
	certs, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, certs)
}

// DELETE /certificates/:id
func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		if errors.Is(err, errNotFound) {
			response.NotFoundMsg(c, "Certificate not found.")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "Certificate deleted successfully."})
}
