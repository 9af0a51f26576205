package services

import (
	"context"
	"fmt"
	"time"

	"github.com/taskflow/core/internal/domain/entities"
	"github.com/taskflow/core/internal/domain/stats"
	"github.com/taskflow/core/internal/infrastructure/logger"
	"github.com/taskflow/core/internal/ports"
)

// ProjectService handles project operations.
type ProjectService struct {
	projectRepo ports.ProjectRepository
	taskRepo    ports.TaskRepository
	teamRepo    ports.TeamRepository
	logger      *logger.Logger
}

// NewProjectService creates a new project service.
func NewProjectService(projectRepo ports.ProjectRepository, taskRepo ports.TaskRepository, teamRepo ports.TeamRepository, logger *logger.Logger) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
		teamRepo:    teamRepo,
		logger:      logger,
	}
}

// CreateProject creates a new project after checking the team exists.
func (s *ProjectService) CreateProject(ctx context.Context, req ports.CreateProjectRequest) (*entities.Project, error) {
	if _, err := s.teamRepo.GetByID(ctx, req.TeamID); err != nil {
		return nil, err
	}

	project := &entities.Project{
		Name:        req.Name,
		Description: req.Description,
		TeamID:      req.TeamID,
		Status:      entities.ProjectStatusActive,
		Color:       entities.DefaultProjectColor,
	}
	if req.Status != nil {
		project.Status = *req.Status
	}
	if req.Color != nil {
		project.Color = *req.Color
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	s.logger.Info("Project created", "project_id", project.ID, "team_id", project.TeamID, "name", project.Name)

	return project, nil
}

// GetProject retrieves a project by ID.
func (s *ProjectService) GetProject(ctx context.Context, id int64) (*entities.Project, error) {
	return s.projectRepo.GetByID(ctx, id)
}

// UpdateProject merges the supplied fields into the stored project. A new
// teamId is checked for existence before the write.
func (s *ProjectService) UpdateProject(ctx context.Context, id int64, req ports.UpdateProjectRequest) (*entities.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.TeamID != nil {
		if _, err := s.teamRepo.GetByID(ctx, *req.TeamID); err != nil {
			return nil, err
		}
		project.TeamID = *req.TeamID
	}
	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = req.Description
	}
	if req.Status != nil {
		project.Status = *req.Status
	}
	if req.Color != nil {
		project.Color = *req.Color
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}

	s.logger.Info("Project updated", "project_id", project.ID)

	return project, nil
}

// DeleteProject removes a project by ID. Its tasks are left in place; the
// orphaning behavior is inherited from the reference system and deliberately
// not fixed here.
func (s *ProjectService) DeleteProject(ctx context.Context, id int64) error {
	if err := s.projectRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Project deleted", "project_id", id)

	return nil
}

// ListProjects returns projects, optionally filtered by team.
func (s *ProjectService) ListProjects(ctx context.Context, filter ports.ProjectFilter) ([]*entities.Project, error) {
	projects, err := s.projectRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	return projects, nil
}

// GetProjectStats recomputes the project's task counters against the current
// wall clock. Nothing is cached; a stale overdue count would silently lie.
func (s *ProjectService) GetProjectStats(ctx context.Context, id int64) (*stats.ProjectStats, error) {
	if _, err := s.projectRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.List(ctx, ports.TaskFilter{ProjectID: &id})
	if err != nil {
		return nil, fmt.Errorf("list project tasks: %w", err)
	}

	result := stats.ComputeProjectStats(tasks, time.Now())
	return &result, nil
}
