package memory

import (
	"context"
	"sync"

	"github.com/taskflow/core/internal/domain/entities"
	"github.com/taskflow/core/internal/ports"
)

// UserStore is the in-memory implementation of ports.UserRepository.
type UserStore struct {
	mu     sync.RWMutex
	users  map[int64]entities.User
	nextID int64
}

// NewUserStore creates an empty user store.
func NewUserStore() *UserStore {
	return &UserStore{users: make(map[int64]entities.User), nextID: 1}
}

var _ ports.UserRepository = (*UserStore)(nil)

func (s *UserStore) Create(ctx context.Context, user *entities.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.ID = s.nextID
	s.nextID++
	s.users[user.ID] = *user
	return nil
}

func (s *UserStore) GetByID(ctx context.Context, id int64) (*entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, entities.ErrUserNotFound
	}
	return &user, nil
}

func (s *UserStore) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range sortedIDs(s.users) {
		if s.users[id].Username == username {
			user := s.users[id]
			return &user, nil
		}
	}
	return nil, entities.ErrUserNotFound
}

func (s *UserStore) Update(ctx context.Context, user *entities.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; !ok {
		return entities.ErrUserNotFound
	}
	s.users[user.ID] = *user
	return nil
}

func (s *UserStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return entities.ErrUserNotFound
	}
	delete(s.users, id)
	return nil
}

func (s *UserStore) List(ctx context.Context) ([]*entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*entities.User, 0, len(s.users))
	for _, id := range sortedIDs(s.users) {
		user := s.users[id]
		users = append(users, &user)
	}
	return users, nil
}
