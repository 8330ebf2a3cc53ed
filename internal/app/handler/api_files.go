package handler

import (
	"net/http"
	"strconv"
	"strings"

	"patientedu/internal/app/ds"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// GET /api/files
func (h *Handler) ApiListFiles(ctx *gin.Context) {
	list, err := h.Repository.ListFiles()
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	ctx.JSON(http.StatusOK, list)
}

// POST /api/files — multipart {file, name, description, disease_id, file_type?}.
// Тип вложения, если клиент его не прислал, берётся из Content-Type файла.
func (h *Handler) ApiCreateFile(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	name, ok := requireTrimmed(ctx, "name", ctx.PostForm("name"))
	if !ok {
		return
	}
	diseaseID, err := strconv.ParseUint(ctx.PostForm("disease_id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "disease_id is required"})
		return
	}
	if _, err := h.Repository.GetDisease(uint(diseaseID)); err != nil {
		h.dbError(ctx, err)
		return
	}

	fileType := strings.TrimSpace(ctx.PostForm("file_type"))
	if !ds.ValidFileType(fileType) {
		fileType = ds.FileTypeFromMIME(fileHeader.Header.Get("Content-Type"))
	}

	key, _, err := h.Storage.UploadFile(ctx.Request.Context(), fileHeader, name)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	file := ds.FileAttachment{
		Name:        name,
		Description: ctx.PostForm("description"),
		FilePath:    key,
		FileType:    fileType,
		DiseaseID:   uint(diseaseID),
	}
	if err := h.Repository.CreateFile(&file); err != nil {
		// запись не создана — объект в хранилище больше никому не нужен
		_ = h.Storage.DeleteFile(ctx.Request.Context(), key)
		h.dbError(ctx, err)
		return
	}
	h.refreshCatalog()
	ctx.JSON(http.StatusOK, file)
}

// DELETE /api/files/:id
func (h *Handler) ApiDeleteFile(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	file, err := h.Repository.GetFile(id)
	if err != nil {
		h.dbError(ctx, err)
		return
	}
	if err := h.Repository.DeleteFile(id); err != nil {
		h.dbError(ctx, err)
		return
	}
	if err := h.Storage.DeleteFile(ctx.Request.Context(), file.FilePath); err != nil {
		logrus.WithError(err).WithField("key", file.FilePath).Warn("object removal failed")
	}
	h.refreshCatalog()
	jsonResponse(ctx, gin.H{"deleted": id}, 1, gin.H{})
}
