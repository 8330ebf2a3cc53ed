package handler

import (
	"net/http"
	"strings"

	"patientedu/internal/app/search"

	"github.com/gin-gonic/gin"
)

// GET /api/tree — текущий согласованный снимок каталога.
func (h *Handler) ApiGetTree(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.Catalog.Tree())
}

// GET /api/search?q= — глобальный поиск по всем разделам.
// Пустой запрос — пустой список результатов, без статуса «не найдено»:
// клиент в этом случае показывает полный каталог.
func (h *Handler) ApiSearch(ctx *gin.Context) {
	query := ctx.Query("q")
	results := search.Global(h.Catalog.Tree(), query)

	type resultItem struct {
		search.Result
		DiseaseNameHTML string `json:"disease_name_html"`
	}
	items := make([]resultItem, 0, len(results))
	for _, r := range results {
		items = append(items, resultItem{
			Result:          r,
			DiseaseNameHTML: search.Highlight(r.DiseaseName, query),
		})
	}

	ctx.JSON(http.StatusOK, gin.H{
		"query":   strings.TrimSpace(query),
		"count":   len(items),
		"results": items,
	})
}
