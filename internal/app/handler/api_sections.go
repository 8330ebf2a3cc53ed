package handler

import (
	"net/http"

	"patientedu/internal/app/ds"
	"patientedu/internal/app/search"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// GET /api/sections
func (h *Handler) ApiListSections(ctx *gin.Context) {
	list, err := h.Repository.ListSections()
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	ctx.JSON(http.StatusOK, list)
}

// GET /api/sections/:id/diseases?q= — локальный фильтр болезней раздела.
// Пустой q возвращает полный список, в отличие от глобального поиска.
func (h *Handler) ApiFilterSectionDiseases(ctx *gin.Context) {
	section := h.Catalog.Tree().FindSection(ctx.Param("id"))
	if section == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "section not found"})
		return
	}
	ctx.JSON(http.StatusOK, search.FilterSection(section, ctx.Query("q")))
}

type sectionBody struct {
	Name       string `json:"name"`
	Icon       string `json:"icon"`
	ColorClass string `json:"color_class"`
}

// POST /api/sections
func (h *Handler) ApiCreateSection(ctx *gin.Context) {
	var body sectionBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	name, ok := requireTrimmed(ctx, "name", body.Name)
	if !ok {
		return
	}
	section := ds.Section{Name: name, Icon: body.Icon, ColorClass: body.ColorClass}
	if err := h.Repository.CreateSection(&section); err != nil {
		h.dbError(ctx, err)
		return
	}
	h.refreshCatalog()
	ctx.JSON(http.StatusOK, section)
}

// PUT /api/sections/:id
func (h *Handler) ApiUpdateSection(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	var body sectionBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	name, ok := requireTrimmed(ctx, "name", body.Name)
	if !ok {
		return
	}
	if _, err := h.Repository.GetSection(id); err != nil {
		h.dbError(ctx, err)
		return
	}
	fields := map[string]interface{}{
		"name":        name,
		"icon":        body.Icon,
		"color_class": body.ColorClass,
	}
	if err := h.Repository.UpdateSection(id, fields); err != nil {
		h.dbError(ctx, err)
		return
	}
	h.refreshCatalog()
	updated, _ := h.Repository.GetSection(id)
	ctx.JSON(http.StatusOK, updated)
}

// DELETE /api/sections/:id — болезни и файлы уходят каскадом,
// объекты файлов убираются из хранилища.
func (h *Handler) ApiDeleteSection(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	if _, err := h.Repository.GetSection(id); err != nil {
		h.dbError(ctx, err)
		return
	}
	paths, err := h.Repository.SectionFilePaths(id)
	if err != nil {
		h.dbError(ctx, err)
		return
	}
	if err := h.Repository.DeleteSection(id); err != nil {
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
