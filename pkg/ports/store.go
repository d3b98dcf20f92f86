package ports

import (
	"context"

	"github.com/aretw0/diploma/pkg/domain"
)

// SaveStore defines the interface for persisting save slots.
// Slots are numbered from 1.
type SaveStore interface {
	// Save persists the save file under its slot, replacing any previous content.
	Save(ctx context.Context, slot int, save *domain.SaveFile) error

	// Load retrieves the save file of a slot.
	// Returns domain.ErrSaveNotFound if the slot is empty.
	Load(ctx context.Context, slot int) (*domain.SaveFile, error)

	// Delete removes the save file of a slot. Deleting an empty slot is not an error.
	Delete(ctx context.Context, slot int) error

	// List returns the occupied slots in ascending order.
	List(ctx context.Context) ([]int, error)

	// Exists reports whether the slot holds a save file.
	Exists(ctx context.Context, slot int) (bool, error)
}
