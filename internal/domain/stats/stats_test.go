package stats_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/taskflow/core/internal/domain/entities"
	"github.com/taskflow/core/internal/domain/stats"
)

func TestComputeProjectStats(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-48 * time.Hour)
	future := now.Add(48 * time.Hour)

	tasks := []*entities.Task{
		{Status: entities.TaskStatusTodo, DueDate: &future},
		{Status: entities.TaskStatusTodo, DueDate: &past},
		{Status: entities.TaskStatusInProgress, DueDate: &past},
		{Status: entities.TaskStatusInProgress},
		{Status: entities.TaskStatusReview, DueDate: &past},
		{Status: entities.TaskStatusDone, DueDate: &past},
		{Status: entities.TaskStatusDone},
	}

	result := stats.ComputeProjectStats(tasks, now)

	assert.Equal(t, 7, result.TotalTasks)
	assert.Equal(t, 2, result.CompletedTasks)
	assert.Equal(t, 2, result.InProgressTasks)
	// Overdue counts todo, in_progress and review with past due dates; done
	// tasks are exempt even when their due date has passed.
	assert.Equal(t, 3, result.OverdueTasksCount)
}

func TestComputeProjectStatsEmpty(t *testing.T) {
	result := stats.ComputeProjectStats(nil, time.Now())

	assert.Equal(t, stats.ProjectStats{}, result)
}

func TestComputeOverview(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)

	projects := []*entities.Project{
		{Status: entities.ProjectStatusActive},
		{Status: entities.ProjectStatusInProgress},
		{Status: entities.ProjectStatusInProgress},
		{Status: entities.ProjectStatusCompleted},
		{Status: entities.ProjectStatusArchived},
	}

	tasks := []*entities.Task{
		{ProjectID: 1, Status: entities.TaskStatusTodo, DueDate: &past},
		{ProjectID: 2, Status: entities.TaskStatusReview, DueDate: &past},
		{ProjectID: 3, Status: entities.TaskStatusDone, DueDate: &past},
		{ProjectID: 4, Status: entities.TaskStatusTodo},
	}

	result := stats.ComputeOverview(projects, tasks, now)

	assert.Equal(t, 5, result.TotalProjects)
	assert.Equal(t, 2, result.InProgress)
	assert.Equal(t, 1, result.Completed)
	assert.Equal(t, 2, result.Overdue)
}

func TestComputeOverviewCountsOverdueAcrossAllProjects(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)

	tasks := []*entities.Task{
		{ProjectID: 10, Status: entities.TaskStatusTodo, DueDate: &past},
		{ProjectID: 20, Status: entities.TaskStatusInProgress, DueDate: &past},
	}

	result := stats.ComputeOverview(nil, tasks, now)

	assert.Equal(t, 0, result.TotalProjects)
	assert.Equal(t, 2, result.Overdue)
}
