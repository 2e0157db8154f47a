// Package book implements the reading list: name, external link, cover image.
package book

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
	errNotFound    = errors.New("book not found")
)

type Service struct {
	db    *gorm.DB
	store *upload.Store
}

func NewService(db *gorm.DB, store *upload.Store) *Service {
	return &Service{db: db, store: store}
}

func (s *Service) Create(name, link string, image io.Reader, originalName string) error {
	if name == "" || link == "" || image == nil {
		return errMissingData
	}

	filename, err := s.store.Save(upload.CategoryBooks, image, originalName)
	if err != nil {
		return err
	}
	_ = upload.TrackPending(s.db, upload.CategoryBooks, filename)

	if err := s.db.Create(&models.BookModel{
		Name:  name,
		Link:  link,
		Image: filename,
	}).Error; err != nil {
		return err
	}
	return upload.MarkCommitted(s.db, upload.CategoryBooks, filename)
}

func (s *Service) List() ([]models.BookModel, error) {
	var books []models.BookModel
	err := s.db.Order("created_at DESC").Find(&books).Error
	return books, err
}

func (s *Service) Delete(id string) error {
	var book models.BookModel
	if err := s.db.First(&book, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errNotFound
		}
		return err
	}

	_ = s.store.Remove(upload.CategoryBooks, book.Image)
	_ = upload.Release(s.db, upload.CategoryBooks, book.Image)
	return s.db.Delete(&models.BookModel{}, "id = ?", book.ID).Error
}

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.POST("/books", h.create)
	r.GET("/books", h.list)
	r.DELETE("/books/:id", h.delete)
}

// POST /books — multipart: name + link + image file
func (h *Handler) create(c *gin.Context) {
	name := c.PostForm("name")
	link := c.PostForm("link")
	fileHeader, err := c.FormFile("image")
	if name == "" || link == "" || err != nil {
		response.BadRequest(c, "Missing data")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	defer f.Close()

	if err := h.svc.Create(name, link, f, fileHeader.Filename); err != nil {
		if errors.Is(err, errMissingData) {
			response.BadRequest(c, "Missing data")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, gin.H{"message": "Book saved"})
}

// GET /books
func (h *Handler) list(c *gin.Context) {
	books, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, books)
}

// DELETE /books/:id
func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		if errors.Is(err, errNotFound) {
			response.NotFoundMsg(c, "Book not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "Book deleted"})
}
