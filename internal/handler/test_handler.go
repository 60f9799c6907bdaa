package handler

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/peerlearn-api/internal/domain/entity"
	"github.com/yourusername/peerlearn-api/internal/handler/dto"
	"github.com/yourusername/peerlearn-api/internal/middleware"
	apperrors "github.com/yourusername/peerlearn-api/internal/pkg/errors"
	"github.com/yourusername/peerlearn-api/internal/service"
)

// TestHandler обрабатывает запросы, связанные с сертификационными тестами
// и их результатами
type TestHandler struct {
	testService   *service.TestService
	resultService *service.ResultService
}

// NewTestHandler создает новый обработчик тестов
func NewTestHandler(testService *service.TestService, resultService *service.ResultService) *TestHandler {
	return &TestHandler{
		testService:   testService,
		resultService: resultService,
	}
}

// ListTests возвращает список тестов без вопросов
func (h *TestHandler) ListTests(c *gin.Context) {
	tests, err := h.testService.ListTests()
	if err != nil {
		h.handleTestError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListTestResponse(tests))
}

// GetTest возвращает тест с вопросами. Правильные ответы не включаются
func (h *TestHandler) GetTest(c *gin.Context) {
	testID := c.MustGet("testID").(uint)

	test, err := h.testService.GetTest(testID)
	if err != nil {
		h.handleTestError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTestResponse(test, true))
}

// GetSubjectTest возвращает тест предмета с вопросами
func (h *TestHandler) GetSubjectTest(c *gin.Context) {
	subjectID := c.MustGet("subjectID").(uint)

	test, err := h.testService.GetSubjectTest(subjectID)
	if err != nil {
		h.handleTestError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTestResponse(test, true))
}

// SubmitTestRequest представляет ответы пользователя на вопросы теста.
// Ответы идут в порядке вопросов; -1 означает неотвеченный вопрос
type SubmitTestRequest struct {
	Answers []int `json:"answers" binding:"required"`
}

// SubmitTest принимает ответы, подсчитывает результат и при сдаче выдаёт
// сертификацию
func (h *TestHandler) SubmitTest(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	testID := c.MustGet("testID").(uint)

	var req SubmitTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, cert, err := h.resultService.SubmitTest(caller, testID, req.Answers)
	if err != nil {
		h.handleTestError(c, err)
		return
	}

	resp := dto.SubmitResultResponse{Result: dto.NewResultResponse(result)}
	if cert != nil {
		resp.Certification = dto.NewCertificationResponse(cert, time.Now())
	}

	c.JSON(http.StatusCreated, resp)
}

// GetUserResults возвращает результаты пользователя, новые первыми
func (h *TestHandler) GetUserResults(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	userID := c.MustGet("userID").(uint)

	results, err := h.resultService.GetUserResults(caller, userID)
	if err != nil {
		h.handleTestError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": dto.NewResultListResponse(results)})
}

// GetResult возвращает один результат сдачи
func (h *TestHandler) GetResult(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	resultID := c.MustGet("resultID").(uint)

	result, err := h.resultService.GetResult(caller, resultID)
	if err != nil {
		h.handleTestError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewResultResponse(result))
}

// ExportTestResults экспортирует все результаты теста в CSV или Excel
func (h *TestHandler) ExportTestResults(c *gin.Context) {
	testID := c.MustGet("testID").(uint)
	format := c.DefaultQuery("format", "csv")

	results, err := h.resultService.GetTestResults(testID)
	if err != nil {
		h.handleTestError(c, err)
		return
	}

	test, err := h.testService.GetTest(testID)
	if err != nil {
		h.handleTestError(c, err)
		return
	}

	filename := fmt.Sprintf("test_%d_results_%s", testID, time.Now().Format("2006-01-02"))

	switch format {
	case "xlsx":
		h.exportXLSX(c, results, test, filename)
	default:
		h.exportCSV(c, results, test, filename)
	}
}

// exportCSV экспортирует результаты в CSV с правильным экранированием спецсимволов
func (h *TestHandler) exportCSV(c *gin.Context, results []entity.Result, test *entity.Test, filename string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.csv\"", filename))

	// BOM для корректного отображения UTF-8 в Excel
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write([]string{"ID результата", "ID пользователя", "Предмет", "Баллы", "Проходной балл", "Сдан", "Дата сдачи"})

	for _, r := range results {
		passed := "Нет"
		if r.Passed {
			passed = "Да"
		}
		writer.Write([]string{
			strconv.FormatUint(uint64(r.ID), 10),
			strconv.FormatUint(uint64(r.UserID), 10),
			sanitizeForExcel(r.Subject),
			strconv.Itoa(r.Score),
			strconv.Itoa(test.PassingScore),
			passed,
			r.CompletedAt.Format(time.RFC3339),
		})
	}
}

// exportXLSX экспортирует результаты в Excel с использованием StreamWriter
func (h *TestHandler) exportXLSX(c *gin.Context, results []entity.Result, test *entity.Test, filename string) {
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Результаты"
	f.SetSheetName("Sheet1", sheetName)

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		log.Printf("[TestHandler] Ошибка создания StreamWriter: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel file"})
		return
	}

	headers := []interface{}{"ID результата", "ID пользователя", "Предмет", "Баллы", "Проходной балл", "Сдан", "Дата сдачи"}
	if err := sw.SetRow("A1", headers); err != nil {
		log.Printf("[TestHandler] Ошибка записи заголовков: %v", err)
	}

	for i, r := range results {
		rowNum := i + 2 // Начинаем с 2 строки (1 - заголовки)
		cell := fmt.Sprintf("A%d", rowNum)

		passed := "Нет"
		if r.Passed {
			passed = "Да"
		}

		row := []interface{}{r.ID, r.UserID, sanitizeForExcel(r.Subject), r.Score, test.PassingScore, passed, r.CompletedAt.Format(time.RFC3339)}
		if err := sw.SetRow(cell, row); err != nil {
			log.Printf("[TestHandler] Ошибка записи строки %d: %v", rowNum, err)
		}
	}

	if err := sw.Flush(); err != nil {
		log.Printf("[TestHandler] Ошибка при Flush: %v", err)
	}

	if err := f.Write(c.Writer); err != nil {
		log.Printf("[TestHandler] Ошибка записи Excel в response: %v", err)
	}
}

// sanitizeForExcel экранирует данные для защиты от formula injection в Excel/CSV
func sanitizeForExcel(s string) string {
	if len(s) == 0 {
		return s
	}
	// Символы, начинающие формулу в Excel/LibreOffice: = + - @ \t \r
	if s[0] == '=' || s[0] == '+' || s[0] == '-' || s[0] == '@' || s[0] == '\t' || s[0] == '\r' {
		return "'" + s
	}
	return s
}

func (h *TestHandler) handleTestError(c *gin.Context, err error) {
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
		log.Printf("ERROR: Internal server error in TestHandler: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
