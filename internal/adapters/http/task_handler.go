package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/taskflow/core/internal/application/services"
	"github.com/taskflow/core/internal/domain/entities"
	"github.com/taskflow/core/internal/infrastructure/logger"
	"github.com/taskflow/core/internal/ports"
)

// TaskHandler handles task and comment requests
type TaskHandler struct {
	taskService *services.TaskService
	logger      *logger.Logger
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService *services.TaskService, logger *logger.Logger) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		logger:      logger,
	}
}

// ListTasks godoc
// @Summary List tasks
// @Description Get tasks filtered by project, assignee and/or status
// @Tags tasks
// @Produce json
// @Param projectId query int false "Filter by project ID"
// @Param assigneeId query int false "Filter by assignee ID"
// @Param status query string false "Filter by status" Enums(todo, in_progress, review, done)
// @Success 200 {array} entities.Task
// @Failure 400 {object} ports.ErrorResponse
// @Router /tasks [get]
func (h *TaskHandler) ListTasks(c echo.Context) error {
	var filter ports.TaskFilter

	if raw := c.QueryParam("projectId"); raw != "" {
		projectID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, ports.MessageResponse{Message: "Invalid projectId"})
		}
		filter.ProjectID = &projectID
	}
	if raw := c.QueryParam("assigneeId"); raw != "" {
		assigneeID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, ports.MessageResponse{Message: "Invalid assigneeId"})
		}
		filter.AssigneeID = &assigneeID
	}
	if raw := c.QueryParam("status"); raw != "" {
		status := entities.TaskStatus(raw)
		if !status.IsValid() {
			return echo.NewHTTPError(http.StatusBadRequest, ports.MessageResponse{Message: "Invalid status"})
		}
		filter.Status = &status
	}

	tasks, err := h.taskService.ListTasks(c.Request().Context(), filter)
	if err != nil {
		h.logger.Error("List tasks failed", "error", err)
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, tasks)
}

// CreateTask godoc
// @Summary Create a new task
// @Tags tasks
// @Accept json
// @Produce json
// @Param request body ports.CreateTaskRequest true "Task data"
// @Success 201 {object} entities.Task
// @Failure 400 {object} ports.ErrorResponse
// @Failure 404 {object} ports.ErrorResponse
// @Router /tasks [post]
func (h *TaskHandler) CreateTask(c echo.Context) error {
	var req ports.CreateTaskRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), req)
	if err != nil {
		h.logger.Error("Create task failed", "error", err, "title", req.Title)
		return serviceError(err)
	}

	return c.JSON(http.StatusCreated, task)
}

// GetTask godoc
// @Summary Get task by ID
// @Description Get a task with its assignee and creator embedded
// @Tags tasks
// @Produce json
// @Param id path int true "Task ID"
// @Success 200 {object} entities.Task
// @Failure 404 {object} ports.ErrorResponse
// @Router /tasks/{id} [get]
func (h *TaskHandler) GetTask(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	task, err := h.taskService.GetTask(c.Request().Context(), id)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, task)
}

// UpdateTask godoc
// @Summary Update task
// @Description Update the supplied fields of a task
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path int true "Task ID"
// @Param request body ports.UpdateTaskRequest true "Fields to update"
// @Success 200 {object} entities.Task
// @Failure 400 {object} ports.ErrorResponse
// @Failure 404 {object} ports.ErrorResponse
// @Router /tasks/{id} [put]
func (h *TaskHandler) UpdateTask(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req ports.UpdateTaskRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), id, req)
	if err != nil {
		h.logger.Error("Update task failed", "error", err, "task_id", id)
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, task)
}

// DeleteTask godoc
// @Summary Delete task
// @Tags tasks
// @Param id path int true "Task ID"
// @Success 204 "No Content"
// @Failure 404 {object} ports.ErrorResponse
// @Router /tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.taskService.DeleteTask(c.Request().Context(), id); err != nil {
		h.logger.Error("Delete task failed", "error", err, "task_id", id)
		return serviceError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListComments godoc
// @Summary List task comments
// @Description Get a task's comments oldest first with authors embedded
// @Tags tasks
// @Produce json
// @Param id path int true "Task ID"
// @Success 200 {array} entities.Comment
// @Failure 404 {object} ports.ErrorResponse
// @Router /tasks/{id}/comments [get]
func (h *TaskHandler) ListComments(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	comments, err := h.taskService.ListComments(c.Request().Context(), id)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, comments)
}

// AddComment godoc
// @Summary Add a comment to a task
// @Tags tasks
// @Accept json
// @Produce json
// @Param id path int true "Task ID"
// @Param request body ports.CreateCommentRequest true "Comment data"
// @Success 201 {object} entities.Comment
// @Failure 400 {object} ports.ErrorResponse
// @Failure 404 {object} ports.ErrorResponse
// @Router /tasks/{id}/comments [post]
func (h *TaskHandler) AddComment(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req ports.CreateCommentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	comment, err := h.taskService.AddComment(c.Request().Context(), id, req)
	if err != nil {
		h.logger.Error("Add comment failed", "error", err, "task_id", id)
		return serviceError(err)
	}

	return c.JSON(http.StatusCreated, comment)
}
