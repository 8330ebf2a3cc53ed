package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func jsonResponse(ctx *gin.Context, data interface{}, count int64, meta gin.H) {
	ctx.JSON(http.StatusOK, gin.H{
		"data":  data,
		"count": count,
		"meta":  meta,
	})
}

// parseID разбирает числовой идентификатор из пути.
func parseID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// dbError переводит ошибки БД в коды ответа: 404 для отсутствующей
// записи, 400 для нарушений ограничений, иначе 500.
func (h *Handler) dbError(ctx *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	// повтор значения или нарушение внешнего ключа — это ошибка клиента
	msg := strings.ToLower(err.Error())
	if strings.Contains(err.Error(), "23505") || strings.Contains(msg, "unique") {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "duplicate value"})
		return
	}
	if strings.Contains(err.Error(), "23503") || strings.Contains(msg, "foreign key") {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "referenced record does not exist"})
		return
	}
	h.errorHandler(ctx, http.StatusInternalServerError, err)
}

// requireTrimmed проверяет обязательное текстовое поле.
func requireTrimmed(ctx *gin.Context, field, value string) (string, bool) {
	v := strings.TrimSpace(value)
	if v == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": field + " is required"})
		return "", false
	}
	return v, true
}
