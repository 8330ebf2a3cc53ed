package handler

import (
	"net/http"

	"patientedu/internal/app/ds"

	"github.com/gin-gonic/gin"
)

// GET /api/topics
func (h *Handler) ApiListTopics(ctx *gin.Context) {
	list, err := h.Repository.ListTopics()
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	ctx.JSON(http.StatusOK, list)
}

type topicBody struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// POST /api/topics
func (h *Handler) ApiCreateTopic(ctx *gin.Context) {
	var body topicBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	name, ok := requireTrimmed(ctx, "name", body.Name)
	if !ok {
		return
	}
	topic := ds.AboutTopic{Name: name, Description: body.Description}
	if err := h.Repository.CreateTopic(&topic); err != nil {
		h.dbError(ctx, err)
		return
	}
	h.refreshCatalog()
	ctx.JSON(http.StatusOK, topic)
}

// PUT /api/topics/:id
func (h *Handler) ApiUpdateTopic(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	var body topicBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	name, ok := requireTrimmed(ctx, "name", body.Name)
	if !ok {
		return
	}
	if _, err := h.Repository.GetTopic(id); err != nil {
		h.dbError(ctx, err)
		return
	}
	fields := map[string]interface{}{
		"name":        name,
		"description": body.Description,
	}
	if err := h.Repository.UpdateTopic(id, fields); err != nil {
		h.dbError(ctx, err)
		return
	}
	h.refreshCatalog()
	updated, _ := h.Repository.GetTopic(id)
	ctx.JSON(http.StatusOK, updated)
}

// DELETE /api/topics/:id
func (h *Handler) ApiDeleteTopic(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	if _, err := h.Repository.GetTopic(id); err != nil {
		h.dbError(ctx, err)
		return
	}
	if err := h.Repository.DeleteTopic(id); err != nil {
		h.dbError(ctx, err)
		return
	}
	h.refreshCatalog()
	jsonResponse(ctx, gin.H{"deleted": id}, 1, gin.H{})
}
