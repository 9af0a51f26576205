package services

import (
	"context"
	"fmt"
	"time"

	"github.com/taskflow/core/internal/domain/stats"
	"github.com/taskflow/core/internal/ports"
)

// StatsService computes the dashboard overview across all projects and tasks.
type StatsService struct {
	projectRepo ports.ProjectRepository
	taskRepo    ports.TaskRepository
}

// NewStatsService creates a new stats service.
func NewStatsService(projectRepo ports.ProjectRepository, taskRepo ports.TaskRepository) *StatsService {
	return &StatsService{
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
	}
}

// GetOverview counts projects by status and overdue tasks across the whole
// system, evaluated against the current wall clock.
func (s *StatsService) GetOverview(ctx context.Context) (*stats.Overview, error) {
	projects, err := s.projectRepo.List(ctx, ports.ProjectFilter{})
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	tasks, err := s.taskRepo.List(ctx, ports.TaskFilter{})
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	overview := stats.ComputeOverview(projects, tasks, time.Now())
	return &overview, nil
}
