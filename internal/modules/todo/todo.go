// Package todo implements the to-do list. Completed is toggled, never set.
package todo

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/akvfolio/portfolio-core/internal/models"
	"github.com/akvfolio/portfolio-core/internal/pkg/response"
)

var errNotFound = errors.New("todo not found")

type createTodoDTO struct {
	Text string `json:"text" binding:"required"`
}

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) Create(text string) (*models.TodoModel, error) {
	t := models.TodoModel{Text: text}
	return &t, s.db.Create(&t).Error
}

func (s *Service) List() ([]models.TodoModel, error) {
	var todos []models.TodoModel
	err := s.db.Order("created_at DESC").Find(&todos).Error
	return todos, err
}

func (s *Service) Delete(id string) error {
	result := s.db.Delete(&models.TodoModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errNotFound
	}
	return nil
}

// Toggle flips the completed flag and returns the updated record. Toggling
// twice restores the original value.
func (s *Service) Toggle(id string) (*models.TodoModel, error) {
	var t models.TodoModel
	if err := s.db.First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound
		}
		return nil, err
	}

	t.Completed = !t.Completed
	if err := s.db.Model(&t).Update("completed", t.Completed).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/api/todos", h.list)
	r.POST("/api/todos", h.create)
	r.DELETE("/api/todos/:id", h.delete)
	r.PUT("/api/todos/:id", h.toggle)
}

// GET /api/todos
func (h *Handler) list(c *gin.Context) {
	todos, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, todos)
}

// POST /api/todos — JSON: text
func (h *Handler) create(c *gin.Context) {
	var dto createTodoDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Task text is required")
		return
	}
	t, err := h.svc.Create(dto.Text)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, t)
}

// DELETE /api/todos/:id
func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		if errors.Is(err, errNotFound) {
			response.NotFoundMsg(c, "Todo not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "Todo deleted"})
}

// PUT /api/todos/:id — toggle completed
func (h *Handler) toggle(c *gin.Context) {
	t, err := h.svc.Toggle(c.Param("id"))
	if err != nil {
		if errors.Is(err, errNotFound) {
			response.NotFoundMsg(c, "Todo not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, t)
}
