package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ExtractUintParam извлекает числовой параметр из URL и сохраняет его в контексте.
// Некорректное значение прерывает запрос с кодом 400
func ExtractUintParam(paramName string, contextKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Param(paramName)
		value, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || value == 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid " + paramName + " parameter"})
			return
		}
		c.Set(contextKey, uint(value))
		c.Next()
	}
}

// GetUintParam возвращает ранее извлеченный параметр из контекста
func GetUintParam(c *gin.Context, contextKey string) (uint, bool) {
	value, exists := c.Get(contextKey)
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok
}
