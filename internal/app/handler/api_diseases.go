package handler

import (
	"errors"
	"net/http"
	"strconv"

	"patientedu/internal/app/ds"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// GET /api/diseases?section_id= — плоский список, опционально по разделу.
func (h *Handler) ApiListDiseases(ctx *gin.Context) {
	var (
		list []ds.Disease
		err  error
	)
	if raw := ctx.Query("section_id"); raw != "" {
		sectionID, convErr := strconv.ParseUint(raw, 10, 64)
		if convErr != nil {
			h.errorHandler(ctx, http.StatusBadRequest, errors.New("некорректный section_id"))
			return
		}
		list, err = h.Repository.ListDiseasesBySection(uint(sectionID))
	} else {
		list, err = h.Repository.ListDiseases()
	}
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	ctx.JSON(http.StatusOK, list)
}

// GET /api/diseases/:id
func (h *Handler) ApiGetDisease(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	disease, err := h.Repository.GetDisease(id)
	if err != nil {
		h.dbError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, disease)
}

// POST /api/diseases
func (h *Handler) ApiCreateDisease(ctx *gin.Context) {
	type bodyT struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		SectionID   uint   `json:"section_id" binding:"required"`
	}
	var body bodyT
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	name, ok := requireTrimmed(ctx, "name", body.Name)
	if !ok {
		return
	}
	if _, err := h.Repository.GetSection(body.SectionID); err != nil {
		h.dbError(ctx, err)
		return
	}
	disease := ds.Disease{Name: name, Description: body.Description, SectionID: body.SectionID}
	if err := h.Repository.CreateDisease(&disease); err != nil {
		h.dbError(ctx, err)
		return
	}
	h.refreshCatalog()
	ctx.JSON(http.StatusOK, disease)
}

// PUT /api/diseases/:id — раздел болезни не меняется, только текст.
func (h *Handler) ApiUpdateDisease(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	type bodyT struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	var body bodyT
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	name, ok := requireTrimmed(ctx, "name", body.Name)
	if !ok {
		return
	}
	if _, err := h.Repository.GetDisease(id); err != nil {
		h.dbError(ctx, err)
		return
	}
	fields := map[string]interface{}{
		"name":        name,
		"description": body.Description,
	}
	if err := h.Repository.UpdateDisease(id, fields); err != nil {
		h.dbError(ctx, err)
		return
	}
	h.refreshCatalog()
	updated, _ := h.Repository.GetDisease(id)
	ctx.JSON(http.StatusOK, updated)
}

// DELETE /api/diseases/:id
func (h *Handler) ApiDeleteDisease(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	if _, err := h.Repository.GetDisease(id); err != nil {
		h.dbError(ctx, err)
		return
	}
	paths, err := h.Repository.DiseaseFilePaths(id)
	if err != nil {
		h.dbError(ctx, err)
		return
	}
	if err := h.Repository.DeleteDisease(id); err != nil {
		h.dbError(ctx, err)
		return
	}
	for _, p := range paths {
		if err := h.Storage.DeleteFile(ctx.Request.Context(), p); err != nil {
			logrus.WithError(err).WithField("key", p).Warn("object removal failed")
		}
	}
	h.refreshCatalog()
	jsonResponse(ctx, gin.H{"deleted": id}, 1, gin.H{})
}
