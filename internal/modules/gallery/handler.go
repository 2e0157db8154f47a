package gallery

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
	r.POST("/create-album", h.createAlbum)
	r.GET("/albums", h.listAlbums)
	r.DELETE("/albums/:name", h.deleteAlbum)

	r.POST("/upload-images", h.uploadImages)
	r.GET("/album-images/:album", h.listImages)
	r.DELETE("/images/:id", h.deleteImage)
}

// POST /create-album — multipart: name + thumbnail file
func (h *Handler) createAlbum(c *gin.Context) {
	name := c.PostForm("name")
	fileHeader, err := c.FormFile("thumbnail")
	if name == "" || err != nil {
		response.BadRequest(c, "Missing data")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	defer f.Close()

	if err := h.svc.CreateAlbum(name, f, fileHeader.Filename); err != nil {
		switch {
		case errors.Is(err, errMissingData):
			response.BadRequest(c, "Missing data")
		case errors.Is(err, errAlbumExists):
			response.Conflict(c, "album already exists")
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.OK(c, gin.H{"message": "Album created"})
}

// GET /albums
func (h *Handler) listAlbums(c *gin.Context) {
	albums, err := h.svc.ListAlbums()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, albums)
}

// DELETE /albums/:name — cascades over the album's images
func (h *Handler) deleteAlbum(c *gin.Context) {
	deleted, err := h.svc.DeleteAlbum(c.Param("name"))
	if err != nil {
		if errors.Is(err, errAlbumNotFound) {
			response.NotFoundMsg(c, "album not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "Album and images deleted", "imagesDeleted": deleted})
}

// POST /upload-images — multipart: album + images[] (at most 10)
func (h *Handler) uploadImages(c *gin.Context) {
	album := c.PostForm("album")
	form, err := c.MultipartForm()
	if err != nil || album == "" {
		response.BadRequest(c, "Missing data")
		return
	}
	headers := form.File["images"]
	if len(headers) == 0 {
		response.BadRequest(c, "Missing data")
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

	if err := h.svc.AddImages(album, files); err != nil {
		switch {
		case errors.Is(err, errMissingData):
			response.BadRequest(c, "Missing data")
		case errors.Is(err, errAlbumNotFound):
			response.NotFoundMsg(c, "album not found")
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.OK(c, gin.H{"message": "Images uploaded"})
}

// GET /album-images/:album
func (h *Handler) listImages(c *gin.Context) {
	images, err := h.svc.ListImages(c.Param("album"))
	if err != nil {
		if errors.Is(err, errAlbumNotFound) {
			response.NotFoundMsg(c, "album not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, images)
}

// DELETE /images/:id
func (h *Handler) deleteImage(c *gin.Context) {
	if err := h.svc.DeleteImage(c.Param("id")); err != nil {
		if errors.Is(err, errImageNotFound) {
			response.NotFoundMsg(c, "image not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "Image deleted"})
}
