package handler

import (
	"net/http"

	"patientedu/internal/app/ds"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// GET /api/banners
func (h *Handler) ApiListBanners(ctx *gin.Context) {
	list, err := h.Repository.ListBanners()
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	ctx.JSON(http.StatusOK, list)
}

// POST /api/banners — multipart {file, title, description}.
func (h *Handler) ApiCreateBanner(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	title, ok := requireTrimmed(ctx, "title", ctx.PostForm("title"))
	if !ok {
		return
	}

	key, _, err := h.Storage.UploadFile(ctx.Request.Context(), fileHeader, title)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	banner := ds.Banner{
		Title:       title,
		Description: ctx.PostForm("description"),
		ImagePath:   key,
	}
	if err := h.Repository.CreateBanner(&banner); err != nil {
		_ = h.Storage.DeleteFile(ctx.Request.Context(), key)
		h.dbError(ctx, err)
		return
	}
	h.refreshCatalog()
	ctx.JSON(http.StatusOK, banner)
}

// PUT /api/banners/:id — multipart {title, description, file?}.
// Без нового файла картинка остаётся прежней.
func (h *Handler) ApiUpdateBanner(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	banner, err := h.Repository.GetBanner(id)
	if err != nil {
		h.dbError(ctx, err)
		return
	}
	title, ok := requireTrimmed(ctx, "title", ctx.PostForm("title"))
	if !ok {
		return
	}

	fields := map[string]interface{}{
		"title":       title,
		"description": ctx.PostForm("description"),
	}

	oldKey := ""
	if fileHeader, err := ctx.FormFile("file"); err == nil {
		key, _, err := h.Storage.UploadFile(ctx.Request.Context(), fileHeader, title)
		if err != nil {
			h.errorHandler(ctx, http.StatusInternalServerError, err)
			return
		}
		fields["image_path"] = key
		oldKey = banner.ImagePath
	}

	if err := h.Repository.UpdateBanner(id, fields); err != nil {
		h.dbError(ctx, err)
		return
	}
	if oldKey != "" {
		if err := h.Storage.DeleteFile(ctx.Request.Context(), oldKey); err != nil {
			logrus.WithError(err).WithField("key", oldKey).Warn("object removal failed")
		}
	}
	h.refreshCatalog()
	updated, _ := h.Repository.GetBanner(id)
	ctx.JSON(http.StatusOK, updated)
}

// DELETE /api/banners/:id
func (h *Handler) ApiDeleteBanner(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	banner, err := h.Repository.GetBanner(id)
	if err != nil {
		h.dbError(ctx, err)
		return
	}
	if err := h.Repository.DeleteBanner(id); err != nil {
		h.dbError(ctx, err)
		return
	}
	if err := h.Storage.DeleteFile(ctx.Request.Context(), banner.ImagePath); err != nil {
		logrus.WithError(err).WithField("key", banner.ImagePath).Warn("object removal failed")
	}
	h.refreshCatalog()
	jsonResponse(ctx, gin.H{"deleted": id}, 1, gin.H{})
}
