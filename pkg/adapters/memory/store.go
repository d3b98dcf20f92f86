package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/aretw0/diploma/pkg/domain"
)

// Store implements ports.SaveStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[int]*domain.SaveFile
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[int]*domain.SaveFile),
	}
}

// Save keeps a deep copy of the save file, so later changes by the caller do not leak in.
func (s *Store) Save(ctx context.Context, slot int, save *domain.SaveFile) error {
	if err := checkSlot(slot); err != nil {
		return err
	}
	if save == nil {
		return fmt.Errorf("save file cannot be nil")
	}

	copied := save.Clone()
	copied.Slot = slot

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[slot] = copied
	return nil
}

// Load retrieves a copy of the save file.
func (s *Store) Load(ctx context.Context, slot int) (*domain.SaveFile, error) {
	if err := checkSlot(slot); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	save, ok := s.data[slot]
	if !ok {
		return nil, fmt.Errorf("%w: slot %d", domain.ErrSaveNotFound, slot)
	}
	return save.Clone(), nil
}

// Delete removes the slot.
func (s *Store) Delete(ctx context.Context, slot int) error {
	if err := checkSlot(slot); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, slot)
	return nil
}

// Exists reports whether the slot is occupied.
func (s *Store) Exists(ctx context.Context, slot int) (bool, error) {
	if err := checkSlot(slot); err != nil {
		return false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.data[slot]
	return ok, nil
}

// List returns the occupied slots in ascending order.
func (s *Store) List(ctx context.Context) ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	slots := make([]int, 0, len(s.data))
	for slot := range s.data {
		slots = append(slots, slot)
	}
	slices.Sort(slots)
	return slots, nil
}

func checkSlot(slot int) error {
	if slot < 1 {
		return fmt.Errorf("%w: got %d", domain.ErrInvalidSlot, slot)
	}
	return nil
}
