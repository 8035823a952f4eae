// Package memory holds records in process memory. It backs tests and the
// throwaway "memory" backend; nothing survives process exit.
package memory

import (
	"context"
	"sync"

	"hourtrack/internal/core"
	"hourtrack/internal/storage"
)

type Store struct {
	mu    sync.Mutex
	users map[string][]core.Record
}

func New() *Store {
	return &Store{users: make(map[string][]core.Record)}
}

func (s *Store) Initialize(_ context.Context, userID string) error {
	if err := core.ValidateUserID(userID); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[userID]; !ok {
		s.users[userID] = []core.Record{}
	}
	return nil
}

func (s *Store) ReadAll(_ context.Context, userID string) ([]core.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	records, ok := s.users[userID]
	if !ok {
		return nil, storage.ErrMissingStore
	}
	return append([]core.Record(nil), records...), nil
}

func (s *Store) ReadToday(_ context.Context, userID string) ([]core.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	records, ok := s.users[userID]
	if !ok {
		return nil, nil
	}
	today := core.Today()
	var out []core.Record
	for _, r := range records {
		if r.Date == today {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *Store) Append(_ context.Context, userID string, rec core.Record) error {
	if rec.Category == "" {
		rec.Category = core.DefaultCategory
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[userID]; !ok {
		return storage.ErrMissingStore
	}
	s.users[userID] = append(s.users[userID], rec)
	return nil
}

func (s *Store) WriteAll(_ context.Context, userID string, records []core.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[userID] = append([]core.Record(nil), records...)
	return nil
}

func (s *Store) Clear(_ context.Context, userID string) error {
	return s.WriteAll(context.Background(), userID, nil)
}
