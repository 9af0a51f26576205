package memory

import (
	"context"
	"sync"

	"github.com/taskflow/core/internal/domain/entities"
	"github.com/taskflow/core/internal/ports"
)

// TaskStore is the in-memory implementation of ports.TaskRepository.
type TaskStore struct {
	mu     sync.RWMutex
	tasks  map[int64]entities.Task
	nextID int64
}

// NewTaskStore creates an empty task store.
func NewTaskStore() *TaskStore {
	return &TaskStore{tasks: make(map[int64]entities.Task), nextID: 1}
}

var _ ports.TaskRepository = (*TaskStore)(nil)

// cloneTask copies a task, including the tags slice, and drops the embedded
// user views. Only the flat record is authoritative in storage.
func cloneTask(t entities.Task) entities.Task {
	c := t
	c.Assignee = nil
	c.Creator = nil
	if t.Tags != nil {
		c.Tags = make([]string, len(t.Tags))
		copy(c.Tags, t.Tags)
	}
	return c
}

func (s *TaskStore) Create(ctx context.Context, task *entities.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	task.ID = s.nextID
	s.nextID++
	if task.Tags == nil {
		task.Tags = []string{}
	}
	s.tasks[task.ID] = cloneTask(*task)
	return nil
}

func (s *TaskStore) GetByID(ctx context.Context, id int64) (*entities.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[id]
	if !ok {
		return nil, entities.ErrTaskNotFound
	}
	copied := cloneTask(task)
	return &copied, nil
}

func (s *TaskStore) Update(ctx context.Context, task *entities.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[task.ID]; !ok {
		return entities.ErrTaskNotFound
	}
	s.tasks[task.ID] = cloneTask(*task)
	return nil
}

func (s *TaskStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return entities.ErrTaskNotFound
	}
	delete(s.tasks, id)
	return nil
}

func (s *TaskStore) List(ctx context.Context, filter ports.TaskFilter) ([]*entities.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]*entities.Task, 0, len(s.tasks))
	for _, id := range sortedIDs(s.tasks) {
		task := s.tasks[id]
		if filter.ProjectID != nil && task.ProjectID != *filter.ProjectID {
			continue
		}
		if filter.AssigneeID != nil && (task.AssigneeID == nil || *task.AssigneeID != *filter.AssigneeID) {
			continue
		}
		if filter.Status != nil && task.Status != *filter.Status {
			continue
		}
		copied := cloneTask(task)
		tasks = append(tasks, &copied)
	}
	return tasks, nil
}
