package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/taskflow/core/internal/domain/entities"
	"github.com/taskflow/core/internal/infrastructure/logger"
	"github.com/taskflow/core/internal/ports"
)

// TaskService handles task and comment operations. Comments live under tasks
// in the API, so their logic lands here rather than in a service of their own.
type TaskService struct {
	taskRepo    ports.TaskRepository
	commentRepo ports.CommentRepository
	projectRepo ports.ProjectRepository
	userRepo    ports.UserRepository
	logger      *logger.Logger
}

// NewTaskService creates a new task service.
func NewTaskService(taskRepo ports.TaskRepository, commentRepo ports.CommentRepository, projectRepo ports.ProjectRepository, userRepo ports.UserRepository, logger *logger.Logger) *TaskService {
	return &TaskService{
		taskRepo:    taskRepo,
		commentRepo: commentRepo,
		projectRepo: projectRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// CreateTask creates a new task after verifying the project, creator and
// optional assignee all exist.
func (s *TaskService) CreateTask(ctx context.Context, req ports.CreateTaskRequest) (*entities.Task, error) {
	if _, err := s.projectRepo.GetByID(ctx, req.ProjectID); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, req.CreatorID); err != nil {
		return nil, err
	}
	if req.AssigneeID != nil {
		if _, err := s.userRepo.GetByID(ctx, *req.AssigneeID); err != nil {
			return nil, err
		}
	}

	task := &entities.Task{
		Title:       req.Title,
		Description: req.Description,
		ProjectID:   req.ProjectID,
		Status:      entities.TaskStatusTodo,
		Priority:    entities.TaskPriorityMedium,
		AssigneeID:  req.AssigneeID,
		CreatorID:   req.CreatorID,
		DueDate:     req.DueDate,
		Tags:        req.Tags,
	}
	if req.Status != "" {
		task.Status = req.Status
	}
	if req.Priority != "" {
		task.Priority = req.Priority
	}
	if req.Progress != nil {
		task.Progress = *req.Progress
	}
	if task.Tags == nil {
		task.Tags = []string{}
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	s.logger.Info("Task created", "task_id", task.ID, "project_id", task.ProjectID, "title", task.Title)

	return s.embedTaskUsers(ctx, task)
}

// GetTask retrieves a task by ID with its assignee and creator embedded.
func (s *TaskService) GetTask(ctx context.Context, id int64) (*entities.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.embedTaskUsers(ctx, task)
}

// UpdateTask merges the supplied fields into the stored task. Changed
// references (projectId, assigneeId) are checked before the write.
func (s *TaskService) UpdateTask(ctx context.Context, id int64, req ports.UpdateTaskRequest) (*entities.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ProjectID != nil {
		if _, err := s.projectRepo.GetByID(ctx, *req.ProjectID); err != nil {
			return nil, err
		}
		task.ProjectID = *req.ProjectID
	}
	if req.AssigneeID != nil {
		if _, err := s.userRepo.GetByID(ctx, *req.AssigneeID); err != nil {
			return nil, err
		}
		task.AssigneeID = req.AssigneeID
	}
	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = req.Description
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}
	if req.Tags != nil {
		task.Tags = req.Tags
	}
	if req.Progress != nil {
		task.Progress = *req.Progress
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}

	s.logger.Info("Task updated", "task_id", task.ID)

	return s.embedTaskUsers(ctx, task)
}

// DeleteTask removes a task by ID.
func (s *TaskService) DeleteTask(ctx context.Context, id int64) error {
	if err := s.taskRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Task deleted", "task_id", id)

	return nil
}

// ListTasks returns tasks matching the filter, each with assignee and creator
// embedded.
func (s *TaskService) ListTasks(ctx context.Context, filter ports.TaskFilter) ([]*entities.Task, error) {
	tasks, err := s.taskRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	for _, task := range tasks {
		if _, err := s.embedTaskUsers(ctx, task); err != nil {
			return nil, err
		}
	}

	return tasks, nil
}

// ListComments returns a task's comments oldest first, each with its author
// embedded. Comments whose author has since been deleted are still returned,
// just without the user record.
func (s *TaskService) ListComments(ctx context.Context, taskID int64) ([]*entities.Comment, error) {
	if _, err := s.taskRepo.GetByID(ctx, taskID); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	for _, comment := range comments {
		user, err := s.userRepo.GetByID(ctx, comment.UserID)
		if err != nil {
			if errors.Is(err, entities.ErrUserNotFound) {
				continue
			}
			return nil, err
		}
		comment.User = user
	}

	return comments, nil
}

// AddComment creates a comment on a task after verifying the task and the
// author exist.
func (s *TaskService) AddComment(ctx context.Context, taskID int64, req ports.CreateCommentRequest) (*entities.Comment, error) {
	if _, err := s.taskRepo.GetByID(ctx, taskID); err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	comment := &entities.Comment{
		TaskID:  taskID,
		UserID:  req.UserID,
		Content: req.Content,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	s.logger.Info("Comment added", "comment_id", comment.ID, "task_id", taskID, "user_id", req.UserID)

	comment.User = user

	return comment, nil
}

// embedTaskUsers attaches the assignee and creator user records to the task.
// Dangling references are tolerated; the task is returned without the missing
// user rather than failing the whole read.
func (s *TaskService) embedTaskUsers(ctx context.Context, task *entities.Task) (*entities.Task, error) {
	if task.AssigneeID != nil {
		assignee, err := s.userRepo.GetByID(ctx, *task.AssigneeID)
		if err != nil && !errors.Is(err, entities.ErrUserNotFound) {
			return nil, err
		}
		task.Assignee = assignee
	}

	creator, err := s.userRepo.GetByID(ctx, task.CreatorID)
	if err != nil && !errors.Is(err, entities.ErrUserNotFound) {
		return nil, err
	}
	task.Creator = creator

	return task, nil
}
