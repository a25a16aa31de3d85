package service

import (
	"github.com/debjganguly/uhi-backend-go/internal/models"
	"github.com/debjganguly/uhi-backend-go/internal/repository"
)

// RunService provides access to persisted analysis runs
type RunService struct {
	repo *repository.RunRepository
}

// NewRunService creates a new run service
func NewRunService(repo *repository.RunRepository) *RunService {
	return &RunService{repo: repo}
}

// List returns the most recent runs, newest first
func (s *RunService) List(limit int) ([]models.AnalysisRun, error) {
	return s.repo.List(limit)
}

// Get returns a run with its sample points, or nil when not found
func (s *RunService) Get(id string) (*models.AnalysisRunDetail, error) {
	return s.repo.GetByID(id)
}

// Delete removes a run. Returns whether the run existed.
func (s *RunService) Delete(id string) (bool, error) {
	return s.repo.Delete(id)
}
