package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/debjganguly/uhi-backend-go/internal/service"
	"github.com/debjganguly/uhi-backend-go/pkg/response"
)

// RunHandler handles HTTP requests for persisted analysis runs
type RunHandler struct {
	runService *service.RunService
}

// NewRunHandler creates a new run handler
func NewRunHandler(runService *service.RunService) *RunHandler {
	return &RunHandler{
		runService: runService,
	}
}

// List handles GET /api/analyze/runs
func (h *RunHandler) List(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "20")
	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		response.BadRequest(c, "Invalid limit parameter")
		return
	}

	runs, err := h.runService.List(limit)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"data":  runs,
		"count": len(runs),
	})
}

// Get handles GET /api/analyze/runs/:id
func (h *RunHandler) Get(c *gin.Context) {
	id := c.Param("id")

	detail, err := h.runService.Get(id)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	if detail == nil {
		response.NotFound(c, "Run not found")
		return
	}

	response.Success(c, detail)
}

// Delete handles DELETE /api/analyze/runs/:id
func (h *RunHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	deleted, err := h.runService.Delete(id)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	if !deleted {
		response.NotFound(c, "Run not found")
		return
	}

	response.Success(c, gin.H{"id": id})
}
