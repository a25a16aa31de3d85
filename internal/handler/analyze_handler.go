package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/debjganguly/uhi-backend-go/internal/models"
	"github.com/debjganguly/uhi-backend-go/internal/service"
)

// AnalyzeHandler handles HTTP requests for UHI analysis
type AnalyzeHandler struct {
	analyzeService *service.AnalyzeService
}

// NewAnalyzeHandler creates a new analyze handler
func NewAnalyzeHandler(analyzeService *service.AnalyzeService) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzeService: analyzeService,
	}
}

// Health handles GET /api/analyze/health
func (h *AnalyzeHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "UHI Analysis API is running",
	})
}

// Analyze handles GET /api/analyze/uhi
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	params, ok := h.bindParams(c)
	if !ok {
		return
	}

	resp, err := h.analyzeService.Analyze(c.Request.Context(), params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.AnalyzeResponse{
			Success: false,
			Error:   "Analysis failed: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Export handles GET /api/analyze/export, returning the analysis as a
// downloadable JSON attachment
func (h *AnalyzeHandler) Export(c *gin.Context) {
	params, ok := h.bindParams(c)
	if !ok {
		return
	}

	resp, err := h.analyzeService.Analyze(c.Request.Context(), params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.AnalyzeResponse{
			Success: false,
			Error:   "Analysis failed: " + err.Error(),
		})
		return
	}

	doc := models.ExportDocument{
		GeneratedAt: time.Now().Unix(),
		Params:      params,
		Data:        resp.Data,
		Statistics:  resp.Statistics,
	}

	body, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.AnalyzeResponse{
			Success: false,
			Error:   "Failed to encode export: " + err.Error(),
		})
		return
	}

	filename := fmt.Sprintf("uhi-analysis-p%d-d%d.json", params.Points, params.Days)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/json", body)
}

// bindParams binds and validates the analysis query parameters. On failure
// it writes the 400 response and returns ok=false.
func (h *AnalyzeHandler) bindParams(c *gin.Context) (models.AnalyzeParams, bool) {
	var params models.AnalyzeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, models.AnalyzeResponse{
			Success: false,
			Error:   "Invalid query parameters: " + err.Error(),
		})
		return params, false
	}

	params.ApplyDefaults()
	if err := params.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, models.AnalyzeResponse{
			Success: false,
			Error:   err.Error(),
		})
		return params, false
	}

	return params, true
}
