package cache

import (
	"context"

	"github.com/debjganguly/uhi-backend-go/internal/models"
)

// AnalysisCache stores computed analysis responses keyed by parameter pair.
// A miss is never an error: implementations degrade to recomputation.
type AnalysisCache interface {
	Get(ctx context.Context, key string) (*models.AnalyzeResponse, bool)
	Set(ctx context.Context, key string, resp *models.AnalyzeResponse)
}
