package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/taskflow/core/internal/domain/entities"
	"github.com/taskflow/core/internal/ports"
)

// CommentStore is the in-memory implementation of ports.CommentRepository.
type CommentStore struct {
	mu       sync.RWMutex
	comments map[int64]entities.Comment
	nextID   int64
}

// NewCommentStore creates an empty comment store.
func NewCommentStore() *CommentStore {
	return &CommentStore{comments: make(map[int64]entities.Comment), nextID: 1}
}

var _ ports.CommentRepository = (*CommentStore)(nil)

func (s *CommentStore) Create(ctx context.Context, comment *entities.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment.ID = s.nextID
	s.nextID++
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now().UTC()
	}
	stored := *comment
	stored.User = nil
	s.comments[stored.ID] = stored
	return nil
}

func (s *CommentStore) GetByID(ctx context.Context, id int64) (*entities.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	comment, ok := s.comments[id]
	if !ok {
		return nil, entities.ErrCommentNotFound
	}
	return &comment, nil
}

// ListByTask returns the task's comments sorted ascending by creation time,
// with id as the tiebreak for identical timestamps.
func (s *CommentStore) ListByTask(ctx context.Context, taskID int64) ([]*entities.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	comments := make([]*entities.Comment, 0)
	for _, comment := range s.comments {
		if comment.TaskID == taskID {
			copied := comment
			comments = append(comments, &copied)
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		if comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].ID < comments[j].ID
		}
		return comments[i].CreatedAt.Before(comments[j].CreatedAt)
	})
	return comments, nil
}
