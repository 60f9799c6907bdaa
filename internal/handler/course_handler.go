package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/peerlearn-api/internal/domain/entity"
	"github.com/yourusername/peerlearn-api/internal/handler/dto"
	"github.com/yourusername/peerlearn-api/internal/middleware"
	apperrors "github.com/yourusername/peerlearn-api/internal/pkg/errors"
	"github.com/yourusername/peerlearn-api/internal/service"
)

// CourseHandler обрабатывает запросы, связанные с курсами
type CourseHandler struct {
	courseService *service.CourseService
}

// NewCourseHandler создает новый обработчик курсов
func NewCourseHandler(courseService *service.CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

// ListCourses возвращает список всех курсов
func (h *CourseHandler) ListCourses(c *gin.Context) {
	courses, err := h.courseService.ListCourses()
	if err != nil {
		h.handleCourseError(c, err)
		return
	}

	out := make([]*dto.CourseResponse, 0, len(courses))
	for i := range courses {
		out = append(out, h.courseResponse(&courses[i]))
	}
	c.JSON(http.StatusOK, out)
}

// GetCourse возвращает информацию о курсе
func (h *CourseHandler) GetCourse(c *gin.Context) {
	courseID := c.MustGet("courseID").(uint)

	course, err := h.courseService.GetCourse(courseID)
	if err != nil {
		h.handleCourseError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.courseResponse(course))
}

// CourseRequest представляет запрос на создание или обновление курса
type CourseRequest struct {
	Title        string `json:"title" binding:"required,min=3,max=200"`
	Subject      string `json:"subject" binding:"required,max=100"`
	Description  string `json:"description" binding:"omitempty,max=2000"`
	DemoVideoURL string `json:"demo_video_url" binding:"omitempty,url,max=255"`
	ThumbnailURL string `json:"thumbnail_url" binding:"omitempty,url,max=255"`
	Semester     string `json:"semester" binding:"omitempty,max=20"`
	Year         int    `json:"year" binding:"omitempty,min=2000,max=2100"`
}

func (r *CourseRequest) toInput() service.CourseInput {
	return service.CourseInput{
		Title:        r.Title,
		Subject:      r.Subject,
		Description:  r.Description,
		DemoVideoURL: r.DemoVideoURL,
		ThumbnailURL: r.ThumbnailURL,
		Semester:     r.Semester,
		Year:         r.Year,
	}
}

// CreateCourse обрабатывает создание курса валидированным преподавателем
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	course, err := h.courseService.CreateCourse(caller, req.toInput())
	if err != nil {
		h.handleCourseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, h.courseResponse(course))
}

// UpdateCourse обрабатывает обновление курса его преподавателем
func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	courseID := c.MustGet("courseID").(uint)

	var req CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	course, err := h.courseService.UpdateCourse(caller, courseID, req.toInput())
	if err != nil {
		h.handleCourseError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.courseResponse(course))
}

// Enroll записывает пользователя на курс. Повторная запись — конфликт
func (h *CourseHandler) Enroll(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	courseID := c.MustGet("courseID").(uint)

	course, err := h.courseService.Enroll(caller, courseID)
	if err != nil {
		h.handleCourseError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.courseResponse(course))
}

func (h *CourseHandler) courseResponse(course *entity.Course) *dto.CourseResponse {
	count, err := h.courseService.CountEnrollments(course.ID)
	if err != nil {
		log.Printf("[CourseHandler] Не удалось посчитать записи на курс ID=%d: %v", course.ID, err)
		count = 0
	}
	return dto.NewCourseResponse(course, count)
}

func (h *CourseHandler) handleCourseError(c *gin.Context, err error) {
	if errors.Is(err, apperrors.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrConflict) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrValidation) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrUnauthorized) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrForbidden) {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	} else {
		log.Printf("ERROR: Internal server error in CourseHandler: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
