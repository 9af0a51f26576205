package memory

import (
	"context"
	"sync"

	"github.com/taskflow/core/internal/domain/entities"
	"github.com/taskflow/core/internal/ports"
)

// ProjectStore is the in-memory implementation of ports.ProjectRepository.
// Deleting a project does not touch its tasks; orphaned tasks are a known
// gap carried over from the reference behavior.
type ProjectStore struct {
	mu       sync.RWMutex
	projects map[int64]entities.Project
	nextID   int64
}

// NewProjectStore creates an empty project store.
func NewProjectStore() *ProjectStore {
	return &ProjectStore{projects: make(map[int64]entities.Project), nextID: 1}
}

var _ ports.ProjectRepository = (*ProjectStore)(nil)

func (s *ProjectStore) Create(ctx context.Context, project *entities.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	project.ID = s.nextID
	s.nextID++
	s.projects[project.ID] = *project
	return nil
}

func (s *ProjectStore) GetByID(ctx context.Context, id int64) (*entities.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	project, ok := s.projects[id]
	if !ok {
		return nil, entities.ErrProjectNotFound
	}
	return &project, nil
}

func (s *ProjectStore) Update(ctx context.Context, project *entities.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[project.ID]; !ok {
		return entities.ErrProjectNotFound
	}
	s.projects[project.ID] = *project
	return nil
}

func (s *ProjectStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[id]; !ok {
		return entities.ErrProjectNotFound
	}
	delete(s.projects, id)
	return nil
}

func (s *ProjectStore) List(ctx context.Context, filter ports.ProjectFilter) ([]*entities.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	projects := make([]*entities.Project, 0, len(s.projects))
	for _, id := range sortedIDs(s.projects) {
		project := s.projects[id]
		if filter.TeamID != nil && project.TeamID != *filter.TeamID {
			continue
		}
		projects = append(projects, &project)
	}
	return projects, nil
}
