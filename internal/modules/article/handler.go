package article

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/akvfolio/portfolio-core/internal/modules/storage/upload"
	"github.com/akvfolio/portfolio-core/internal/pkg/response"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.POST("/create-article", h.create)
	r.GET("/articles", h.list)
	r.DELETE("/articles/:title", h.delete)

	r.POST("/upload-article-images/:article", h.uploadImages)
	r.GET("/article-images/:article", h.listImageFilenames)
	r.DELETE("/article-images/:article/:filename", h.deleteImage)
}

// POST /create-article — multipart: title + thumbnail file
func (h *Handler) create(c *gin.Context) {
	title := c.PostForm("title")
	fileHeader, err := c.FormFile("thumbnail")
	if title == "" || err != nil {
		response.BadRequest(c, "Missing title or thumbnail")
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
			response.BadRequest(c, "Missing title or thumbnail")
		case errors.Is(err, errArticleExists):
			response.Conflict(c, "article already exists")
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.OK(c, gin.H{"message": "Article created"})
}

// GET /articles
func (h *Handler) list(c *gin.Context) {
	articles, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, articles)
}

// DELETE /articles/:title — cascades over the article's sub-images
func (h *Handler) delete(c *gin.Context) {
	deleted, err := h.svc.Delete(c.Param("title"))
	if err != nil {
		if errors.Is(err, errArticleNotFound) {
			response.NotFoundMsg(c, "article not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "Article and all related images deleted", "imagesDeleted": deleted})
}

// POST /upload-article-images/:article — multipart: images[] (at most 20)
func (h *Handler) uploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.BadRequest(c, "No images uploaded")
		return
	}
	headers := form.File["images"]
	if len(headers) == 0 {
		response.BadRequest(c, "No images uploaded")
		return
	}
	if len(headers) > MaxImagesPerUpload {
		response.BadRequest(c, fmt.Sprintf("at most %d images per upload", MaxImagesPerUpload))
		return
	}

	files := make([]upload.Incoming, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			response.InternalError(c, err)
			return
		}
		defer f.Close()
		files = append(files, upload.Incoming{Name: fh.Filename, Data: f})
	}

	if err := h.svc.AddImages(c.Param("article"), files); err != nil {
		switch {
		case errors.Is(err, errMissingData):
			response.BadRequest(c, "No images uploaded")
		case errors.Is(err, errArticleNotFound):
			response.NotFoundMsg(c, "article not found")
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.OK(c, gin.H{"message": "Images uploaded successfully"})
}

// GET /article-images/:article — filenames only
func (h *Handler) listImageFilenames(c *gin.Context) {
	filenames, err := h.svc.ListImageFilenames(c.Param("article"))
	if err != nil {
		if errors.Is(err, errArticleNotFound) {
			response.NotFoundMsg(c, "article not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, filenames)
}

// DELETE /article-images/:article/:filename
func (h *Handler) deleteImage(c *gin.Context) {
	err := h.svc.DeleteImage(c.Param("article"), c.Param("filename"))
	if err != nil {
		switch {
		case errors.Is(err, errArticleNotFound):
			response.NotFoundMsg(c, "article not found")
		case errors.Is(err, errImageNotFound):
			response.NotFoundMsg(c, "Image not found")
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.OK(c, gin.H{"message": "Image deleted"})
}
