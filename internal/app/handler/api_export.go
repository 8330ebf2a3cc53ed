package handler

import (
	"net/http"
	"net/url"

	"patientedu/internal/app/export"

	"github.com/gin-gonic/gin"
)

const wordMIME = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
const excelMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// GET /api/diseases/:id/export — выгрузка болезни в Word.
// Ошибка сборки документа не трогает состояние, клиент получает {error}.
func (h *Handler) ApiExportDiseaseWord(ctx *gin.Context) {
	_, disease := h.Catalog.Tree().FindDisease(ctx.Param("id"))
	if disease == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "disease not found"})
		return
	}

	data, err := export.WordDocument(disease)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	filename := export.SafeFilename(disease.Name)
	ctx.Header("Content-Disposition", `attachment; filename*=UTF-8''`+url.PathEscape(filename))
	ctx.Data(http.StatusOK, wordMIME, data)
}

// GET /api/catalog/export — выгрузка всего каталога в Excel (модераторам).
func (h *Handler) ApiExportCatalogExcel(ctx *gin.Context) {
	data, err := export.CatalogWorkbook(h.Catalog.Tree())
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	ctx.Header("Content-Disposition", `attachment; filename="catalog.xlsx"`)
	ctx.Data(http.StatusOK, excelMIME, data)
}
