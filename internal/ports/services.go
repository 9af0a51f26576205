package ports

import (
	"time"

	"github.com/taskflow/core/internal/domain/entities"
)

// Request types carry validator tags; handlers run validation before any
// service call so that malformed input never reaches storage.

// User related types
type CreateUserRequest struct {
	Username string  `json:"username" validate:"required,min=1,max=255"`
	Email    string  `json:"email" validate:"required,email"`
	Name     string  `json:"name" validate:"required,max=255"`
	Password string  `json:"password" validate:"required,min=1"`
	Avatar   *string `json:"avatar" validate:"omitempty,max=255"`
}

type UpdateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=1,max=255"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Name     *string `json:"name" validate:"omitempty,max=255"`
	Password *string `json:"password" validate:"omitempty,min=1"`
	Avatar   *string `json:"avatar" validate:"omitempty,max=255"`
}

// Team related types
type CreateTeamRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

type UpdateTeamRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=255"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

type AddTeamMemberRequest struct {
	UserID int64  `json:"userId" validate:"required"`
	Role   string `json:"role" validate:"omitempty,max=50"`
}

// Project related types
type CreateProjectRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	TeamID      int64   `json:"teamId" validate:"required"`
	Status      *string `json:"status" validate:"omitempty,max=50"`
	Color       *string `json:"color" validate:"omitempty,max=50"`
}

type UpdateProjectRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=255"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	TeamID      *int64  `json:"teamId"`
	Status      *string `json:"status" validate:"omitempty,max=50"`
	Color       *string `json:"color" validate:"omitempty,max=50"`
}

// Task related types
type CreateTaskRequest struct {
	Title       string                `json:"title" validate:"required,max=255"`
	Description *string               `json:"description" validate:"omitempty,max=2000"`
	ProjectID   int64                 `json:"projectId" validate:"required"`
	Status      entities.TaskStatus   `json:"status" validate:"omitempty,oneof=todo in_progress review done"`
	Priority    entities.TaskPriority `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	AssigneeID  *int64                `json:"assigneeId"`
	CreatorID   int64                 `json:"creatorId" validate:"required"`
	DueDate     *time.Time            `json:"dueDate"`
	Tags        []string              `json:"tags"`
	Progress    *int                  `json:"progress" validate:"omitempty,gte=0,lte=100"`
}

type UpdateTaskRequest struct {
	Title       *string                `json:"title" validate:"omitempty,min=1,max=255"`
	Description *string                `json:"description" validate:"omitempty,max=2000"`
	ProjectID   *int64                 `json:"projectId"`
	Status      *entities.TaskStatus   `json:"status" validate:"omitempty,oneof=todo in_progress review done"`
	Priority    *entities.TaskPriority `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	AssigneeID  *int64                 `json:"assigneeId"`
	DueDate     *time.Time             `json:"dueDate"`
	Tags        []string               `json:"tags"`
	Progress    *int                   `json:"progress" validate:"omitempty,gte=0,lte=100"`
}

// Comment related types
type CreateCommentRequest struct {
	UserID  int64  `json:"userId" validate:"required"`
	Content string `json:"content" validate:"required,max=5000"`
}

// Common response types
type MessageResponse struct {
	Message string `json:"message"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type ErrorResponse struct {
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}
