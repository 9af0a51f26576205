package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/taskflow/core/internal/application/services"
	"github.com/taskflow/core/internal/infrastructure/logger"
	"github.com/taskflow/core/internal/ports"
)

// ProjectHandler handles project-related requests
type ProjectHandler struct {
	projectService *services.ProjectService
	taskService    *services.TaskService
	logger         *logger.Logger
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService *services.ProjectService, taskService *services.TaskService, logger *logger.Logger) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		taskService:    taskService,
		logger:         logger,
	}
}

// ListProjects godoc
// @Summary List projects
// @Description Get all projects, optionally filtered by team
// @Tags projects
// @Produce json
// @Param teamId query int false "Filter by team ID"
// @Success 200 {array} entities.Project
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c echo.Context) error {
	var filter ports.ProjectFilter
	if raw := c.QueryParam("teamId"); raw != "" {
		teamID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, ports.MessageResponse{Message: "Invalid teamId"})
		}
		filter.TeamID = &teamID
	}

	projects, err := h.projectService.ListProjects(c.Request().Context(), filter)
	if err != nil {
		h.logger.Error("List projects failed", "error", err)
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, projects)
}

// CreateProject godoc
// @Summary Create a new project
// @Tags projects
// @Accept json
// @Produce json
// @Param request body ports.CreateProjectRequest true "Project data"
// @Success 201 {object} entities.Project
// @Failure 400 {object} ports.ErrorResponse
// @Failure 404 {object} ports.ErrorResponse
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c echo.Context) error {
	var req ports.CreateProjectRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	project, err := h.projectService.CreateProject(c.Request().Context(), req)
	if err != nil {
		h.logger.Error("Create project failed", "error", err, "name", req.Name)
		return serviceError(err)
	}

	return c.JSON(http.StatusCreated, project)
}

// GetProject godoc
// @Summary Get project by ID
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} entities.Project
// @Failure 404 {object} ports.ErrorResponse
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetProject(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	project, err := h.projectService.GetProject(c.Request().Context(), id)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, project)
}

// UpdateProject godoc
// @Summary Update project
// @Tags projects
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param request body ports.UpdateProjectRequest true "Fields to update"
// @Success 200 {object} entities.Project
// @Failure 404 {object} ports.ErrorResponse
// @Router /projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req ports.UpdateProjectRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	project, err := h.projectService.UpdateProject(c.Request().Context(), id, req)
	if err != nil {
		h.logger.Error("Update project failed", "error", err, "project_id", id)
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, project)
}

// DeleteProject godoc
// @Summary Delete project
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} ports.SuccessResponse
// @Failure 404 {object} ports.ErrorResponse
// @Router /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.projectService.DeleteProject(c.Request().Context(), id); err != nil {
		h.logger.Error("Delete project failed", "error", err, "project_id", id)
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, ports.SuccessResponse{Success: true})
}

// GetProjectTasks godoc
// @Summary List a project's tasks
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {array} entities.Task
// @Failure 404 {object} ports.ErrorResponse
// @Router /projects/{id}/tasks [get]
func (h *ProjectHandler) GetProjectTasks(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if _, err := h.projectService.GetProject(c.Request().Context(), id); err != nil {
		return serviceError(err)
	}

	tasks, err := h.taskService.ListTasks(c.Request().Context(), ports.TaskFilter{ProjectID: &id})
	if err != nil {
		h.logger.Error("List project tasks failed", "error", err, "project_id", id)
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, tasks)
}

// GetProjectStats godoc
// @Summary Get project statistics
// @Description Get task counters for a project, recomputed on every call
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} stats.ProjectStats
// @Failure 404 {object} ports.ErrorResponse
// @Router /projects/{id}/stats [get]
func (h *ProjectHandler) GetProjectStats(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	projectStats, err := h.projectService.GetProjectStats(c.Request().Context(), id)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, projectStats)
}
