package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/peerlearn-api/internal/domain/repository"
	"github.com/yourusername/peerlearn-api/internal/handler/dto"
)

// maxUploadSize ограничивает размер загружаемого файла (50 МБ)
const maxUploadSize = 50 << 20

// Разрешённые каталоги загрузки
var allowedUploadDirs = map[string]bool{
	"documents":  true, // документы преподавателей
	"videos":     true, // демо-видео
	"avatars":    true,
	"thumbnails": true,
}

// UploadHandler обрабатывает загрузку файлов в объектное хранилище
type UploadHandler struct {
	storage repository.FileStorage
}

// NewUploadHandler создает новый обработчик загрузок
func NewUploadHandler(storage repository.FileStorage) *UploadHandler {
	return &UploadHandler{storage: storage}
}

// Upload принимает multipart-файл и загружает его в хранилище.
// Поле form "type" задаёт каталог: documents, videos, avatars или thumbnails
func (h *UploadHandler) Upload(c *gin.Context) {
	dir := c.DefaultPostForm("type", "documents")
	if !allowedUploadDirs[dir] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid upload type"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if fileHeader.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file"})
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	key, url, err := h.storage.Upload(c.Request.Context(), dir, fileHeader.Filename, contentType, file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload file"})
		return
	}

	c.JSON(http.StatusOK, dto.UploadResponse{Key: key, URL: url})
}

// Delete удаляет ранее загруженный объект по ключу.
// Маршрут объявлен как wildcard (/*key): ключи объектов содержат слэши,
// gin отдаёт параметр с ведущим "/"
func (h *UploadHandler) Delete(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "key is required"})
		return
	}

	if err := h.storage.Delete(c.Request.Context(), key); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
