package visitor

import (
	"github.com/gin-gonic/gin"

	"github.com/akvfolio/portfolio-core/internal/pkg/response"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.POST("/api/track-visit", h.track)
	r.GET("/api/country-data", h.countryData)
	r.GET("/api/day-data", h.dayData)
}

// POST /api/track-visit
func (h *Handler) track(c *gin.Context) {
	visit, counts, err := h.svc.Track(c.Request.Context(), c.ClientIP())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{
		"message": "Visit recorded",
		"visit":   visit,
		"counts":  counts,
	})
}

// GET /api/country-data
func (h *Handler) countryData(c *gin.Context) {
	data, err := h.svc.ByCountry()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, data)
}

// GET /api/day-data
func (h *Handler) dayData(c *gin.Context) {
	data, err := h.svc.ByDayOfWeek()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, data)
}
