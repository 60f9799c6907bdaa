package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/peerlearn-api/internal/handler/dto"
	"github.com/yourusername/peerlearn-api/internal/middleware"
	apperrors "github.com/yourusername/peerlearn-api/internal/pkg/errors"
	"github.com/yourusername/peerlearn-api/internal/service"
)

// SubjectHandler обрабатывает запросы, связанные с предметами и демо-видео
type SubjectHandler struct {
	subjectService *service.SubjectService
}

// NewSubjectHandler создает новый обработчик предметов
func NewSubjectHandler(subjectService *service.SubjectService) *SubjectHandler {
	return &SubjectHandler{subjectService: subjectService}
}

// ListSubjects возвращает список всех предметов
func (h *SubjectHandler) ListSubjects(c *gin.Context) {
	subjects, err := h.subjectService.ListSubjects()
	if err != nil {
		h.handleSubjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSubjectListResponse(subjects))
}

// GetSubject возвращает предмет с демо-видео
func (h *SubjectHandler) GetSubject(c *gin.Context) {
	subjectID := c.MustGet("subjectID").(uint)

	subject, err := h.subjectService.GetSubject(subjectID)
	if err != nil {
		h.handleSubjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSubjectResponse(subject))
}

// AddDemoVideoRequest представляет запрос на добавление демо-видео
type AddDemoVideoRequest struct {
	Title        string `json:"title" binding:"required,min=3,max=200"`
	URL          string `json:"url" binding:"required,url,max=255"`
	ThumbnailURL string `json:"thumbnail_url" binding:"omitempty,url,max=255"`
	Duration     string `json:"duration" binding:"omitempty,max=20"`
}

// AddDemoVideo добавляет демо-видео валидированного преподавателя к предмету
func (h *SubjectHandler) AddDemoVideo(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	subjectID := c.MustGet("subjectID").(uint)

	var req AddDemoVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	subject, err := h.subjectService.AddDemoVideo(caller, subjectID, service.DemoVideoInput{
		Title:        req.Title,
		URL:          req.URL,
		ThumbnailURL: req.ThumbnailURL,
		Duration:     req.Duration,
	})
	if err != nil {
		h.handleSubjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSubjectResponse(subject))
}

func (h *SubjectHandler) handleSubjectError(c *gin.Context, err error) {
	if errors.Is(err, apperrors.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrConflict) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrValidation) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrForbidden) {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	} else {
		log.Printf("ERROR: Internal server error in SubjectHandler: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
