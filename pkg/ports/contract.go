package ports

import (
	"context"
	"testing"

	"github.com/aretw0/diploma/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// contractSnapshot returns a small but complete snapshot.
func contractSnapshot(day int) domain.Snapshot {
	seed := int64(123)
	return domain.Snapshot{
		Today:          day,
		Stage:          domain.StagePreparation.String(),
		Seed:           &seed,
		RevisionPassed: []bool{true, false, false},
		FinalGrade:     1,
		Score:          11,
		Student:        domain.StudentSnapshot{Name: "Alice", Intelligence: 2, Stamina: 73, AnswerSkill: 1},
		Theme:          domain.ThemeSnapshot{Name: "Knowledge base assistant", Complexity: 1},
		DiplomaProject: domain.DiplomaProjectSnapshot{PctCompletion: 40, Quality: 88},
		Presentation:   domain.PresentationSnapshot{PctCompletion: 0},
		Supervisor:     domain.SupervisorSnapshot{Name: "Dr. Ivanov", Intelligence: 3, Loyalty: 2},
		Commission:     domain.CommissionSnapshot{Loyalty: 2},
	}
}

// RunSaveStoreContract runs a suite of tests to verify that a SaveStore implementation
// adheres to the defined interface contract. The store must start empty.
func RunSaveStoreContract(t *testing.T, store SaveStore) {
	ctx := context.Background()

	t.Run("Save and Load", func(t *testing.T) {
		save := &domain.SaveFile{Slot: 1, Process: contractSnapshot(6)}

		err := store.Save(ctx, 1, save)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, 1)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, save, loaded)

		ok, err := store.Exists(ctx, 1)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, 1, &domain.SaveFile{Slot: 1, Process: contractSnapshot(6)}))
		require.NoError(t, store.Save(ctx, 1, &domain.SaveFile{Slot: 1, Process: contractSnapshot(9)}))

		loaded, err := store.Load(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 9, loaded.Process.Today)
	})

	t.Run("Isolation", func(t *testing.T) {
		save := &domain.SaveFile{Slot: 2, Process: contractSnapshot(3)}
		require.NoError(t, store.Save(ctx, 2, save))

		save.Process.RevisionPassed[1] = true
		save.Process.Today = 20

		loaded, err := store.Load(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, 3, loaded.Process.Today)
		assert.Equal(t, []bool{true, false, false}, loaded.Process.RevisionPassed)

		loaded.Process.RevisionPassed[2] = true
		again, err := store.Load(ctx, 2)
		require.NoError(t, err)
		assert.False(t, again.Process.RevisionPassed[2])
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrSaveNotFound)

		ok, err := store.Exists(ctx, 99)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Invalid Slot", func(t *testing.T) {
		err := store.Save(ctx, 0, &domain.SaveFile{Slot: 0, Process: contractSnapshot(1)})
		assert.ErrorIs(t, err, domain.ErrInvalidSlot)

		_, err = store.Load(ctx, -1)
		assert.ErrorIs(t, err, domain.ErrInvalidSlot)
	})

	t.Run("List", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, 12, &domain.SaveFile{Slot: 12, Process: contractSnapshot(1)}))
		require.NoError(t, store.Save(ctx, 3, &domain.SaveFile{Slot: 3, Process: contractSnapshot(1)}))
		defer func() {
			_ = store.Delete(ctx, 12)
			_ = store.Delete(ctx, 3)
		}()

		slots, err := store.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3, 12}, slots)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, 5, &domain.SaveFile{Slot: 5, Process: contractSnapshot(1)}))

		err := store.Delete(ctx, 5)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, 5)
		assert.ErrorIs(t, err, domain.ErrSaveNotFound, "Load after Delete should return ErrSaveNotFound")

		assert.NoError(t, store.Delete(ctx, 5), "deleting an empty slot is not an error")
	})
}
