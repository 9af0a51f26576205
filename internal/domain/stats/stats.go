// Package stats computes derived statistics over projects and tasks. All
// results are pure functions of the current entity state and the supplied
// clock instant; nothing here is cached or persisted. Callers must pass a
// fresh time.Now() on every call so that overdue counts never go stale.
package stats

import (
	"time"

	"github.com/taskflow/core/internal/domain/entities"
)

// ProjectStats summarizes the tasks of a single project.
type ProjectStats struct {
	TotalTasks        int `json:"totalTasks"`
	CompletedTasks    int `json:"completedTasks"`
	InProgressTasks   int `json:"inProgressTasks"`
	OverdueTasksCount int `json:"overdueTasksCount"`
}

// Overview summarizes the whole workspace for the dashboard. Project counts
// are bucketed by project status; overdue is counted across all tasks
// regardless of project.
type Overview struct {
	TotalProjects int `json:"totalProjects"`
	InProgress    int `json:"inProgress"`
	Completed     int `json:"completed"`
	Overdue       int `json:"overdue"`
}

// ComputeProjectStats derives the per-project counters from the project's
// task list at the given instant.
func ComputeProjectStats(tasks []*entities.Task, now time.Time) ProjectStats {
	s := ProjectStats{TotalTasks: len(tasks)}
	for _, task := range tasks {
		switch task.Status {
		case entities.TaskStatusDone:
			s.CompletedTasks++
		case entities.TaskStatusInProgress:
			s.InProgressTasks++
		}
		if task.IsOverdue(now) {
			s.OverdueTasksCount++
		}
	}
	return s
}

// ComputeOverview derives the global dashboard counters at the given instant.
func ComputeOverview(projects []*entities.Project, tasks []*entities.Task, now time.Time) Overview {
	o := Overview{TotalProjects: len(projects)}
	for _, project := range projects {
		switch project.Status {
		case entities.ProjectStatusInProgress:
			o.InProgress++
		case entities.ProjectStatusCompleted:
			o.Completed++
		}
	}
	for _, task := range tasks {
		if task.IsOverdue(now) {
			o.Overdue++
		}
	}
	return o
}
