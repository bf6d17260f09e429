package store

import (
	"context"
	"sync"

	"github.com/asecurityteam/todolist/pkg/domain"
)

// Memory is an in-process domain.Store. It is intended for tests and local
// development where no table is available. Values are copied in and out so
// callers never share state with the store.
type Memory struct {
	lock  sync.RWMutex
	items map[string]domain.TodoItem
}

// NewMemory generates an empty in-process store.
func NewMemory() *Memory {
	return &Memory{items: make(map[string]domain.TodoItem)}
}

// Get resolves the item from the internal map.
func (s *Memory) Get(ctx context.Context, id string) (domain.TodoItem, bool, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	item, ok := s.items[id]
	return item, ok, nil
}

// Put replaces the item in the internal map.
func (s *Memory) Put(ctx context.Context, item domain.TodoItem) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.items[item.ID] = item
	return nil
}

// Delete removes the item from the internal map if present.
func (s *Memory) Delete(ctx context.Context, id string) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	delete(s.items, id)
	return nil
}

// Scan returns a snapshot of every stored item.
func (s *Memory) Scan(ctx context.Context) ([]domain.TodoItem, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	items := make([]domain.TodoItem, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, item)
	}
	return items, nil
}
