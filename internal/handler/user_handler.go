package handler

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/peerlearn-api/internal/handler/dto"
	"github.com/yourusername/peerlearn-api/internal/middleware"
	apperrors "github.com/yourusername/peerlearn-api/internal/pkg/errors"
	"github.com/yourusername/peerlearn-api/internal/service"
)

// UserHandler обрабатывает документы преподавателей, их проверку
// админом и сертификации пользователей
type UserHandler struct {
	teacherService *service.TeacherService
	certService    *service.CertificationService
}

// NewUserHandler создает новый обработчик пользователей
func NewUserHandler(
	teacherService *service.TeacherService,
	certService *service.CertificationService,
) *UserHandler {
	return &UserHandler{
		teacherService: teacherService,
		certService:    certService,
	}
}

// SubmitCredentialsRequest представляет запрос на подачу документов преподавателя
type SubmitCredentialsRequest struct {
	Institution     string   `json:"institution" binding:"required,max=200"`
	Degree          string   `json:"degree" binding:"required,max=200"`
	GraduationYear  string   `json:"graduation_year" binding:"required,max=10"`
	Specialization  string   `json:"specialization" binding:"required,max=200"`
	ExperienceYears int      `json:"experience" binding:"min=0,max=80"`
	DocumentURLs    []string `json:"document_urls" binding:"required,min=1,max=10"`
}

// SubmitCredentials обрабатывает подачу документов преподавателя.
// Повторная подача заменяет документы и сбрасывает статус проверки в pending
func (h *UserHandler) SubmitCredentials(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	userID := c.MustGet("userID").(uint)

	var req SubmitCredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.teacherService.SubmitCredentials(caller, userID, service.CredentialsInput{
		Institution:     req.Institution,
		Degree:          req.Degree,
		GraduationYear:  req.GraduationYear,
		Specialization:  req.Specialization,
		ExperienceYears: req.ExperienceYears,
		DocumentURLs:    req.DocumentURLs,
	})
	if err != nil {
		h.handleUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// ValidateTeacherRequest представляет решение админа по документам
type ValidateTeacherRequest struct {
	IsApproved *bool `json:"is_approved" binding:"required"`
}

// ValidateTeacher обрабатывает решение админа по документам преподавателя.
// Одобрение выставляет флаг валидации, отклонение снимает его
func (h *UserHandler) ValidateTeacher(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var req ValidateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.teacherService.AdminValidate(userID, *req.IsApproved)
	if err != nil {
		h.handleUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// GetCertifications возвращает сертификации пользователя.
// Статус истёкших вычисляется на момент запроса
func (h *UserHandler) GetCertifications(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	userID := c.MustGet("userID").(uint)

	certs, err := h.certService.ListUserCertifications(caller, userID)
	if err != nil {
		h.handleUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"certifications": dto.NewCertificationListResponse(certs, time.Now())})
}

func (h *UserHandler) handleUserError(c *gin.Context, err error) {
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
		log.Printf("ERROR: Internal server error in UserHandler: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
