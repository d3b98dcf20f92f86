package file

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/aretw0/diploma/pkg/domain"
)

const (
	slotPrefix = "slot_"
	slotExt    = ".json"
)

// Store implements ports.SaveStore using the local filesystem.
// Each slot is one indented JSON file named slot_<N>.json in BasePath.
type Store struct {
	BasePath string
}

// New creates a new Store with the given base path.
// If basePath is empty, it defaults to "saves".
func New(basePath string) *Store {
	if basePath == "" {
		basePath = "saves"
	}
	return &Store{BasePath: basePath}
}

// Path returns the file that holds slot.
func (s *Store) Path(slot int) string {
	return filepath.Join(s.BasePath, slotPrefix+strconv.Itoa(slot)+slotExt)
}

// Save persists the save file atomically.
// It writes to a temporary file in the same directory, syncs via fsync,
// closes it and renames it over the destination, so readers see either the
// old or the new content and never a partial file.
func (s *Store) Save(ctx context.Context, slot int, save *domain.SaveFile) error {
	if err := checkSlot(slot); err != nil {
		return err
	}
	if save == nil {
		return errors.New("save file cannot be nil")
	}

	if err := os.MkdirAll(s.BasePath, 0o755); err != nil {
		return fmt.Errorf("failed to ensure saves directory: %w", err)
	}

	out := save.Clone()
	out.Slot = slot
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal save file: %w", err)
	}

	// Same directory keeps the rename on one filesystem.
	tmpFile, err := os.CreateTemp(s.BasePath, "tmp-"+slotPrefix+strconv.Itoa(slot)+"-*"+slotExt)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// No-op after a successful rename.
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	// Cannot rename an open file on Windows.
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// os.Rename replaces the destination atomically on POSIX and uses
	// MOVEFILE_REPLACE_EXISTING on Windows.
	if err := os.Rename(tmpPath, s.Path(slot)); err != nil {
		return fmt.Errorf("failed to replace save file: %w", err)
	}
	return nil
}

// Load reads and decodes the save file of a slot.
// The file is decoded through the generic map form so hand-edited files get
// a field-by-field report instead of a single unmarshal error.
func (s *Store) Load(ctx context.Context, slot int) (*domain.SaveFile, error) {
	if err := checkSlot(slot); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.Path(slot))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: slot %d", domain.ErrSaveNotFound, slot)
		}
		return nil, fmt.Errorf("failed to read save file: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var generic map[string]any
	if err := dec.Decode(&generic); err != nil {
		return nil, fmt.Errorf("%w: slot %d: %w", domain.ErrCorruptSnapshot, slot, err)
	}

	save, err := domain.DecodeSaveFile(generic)
	if err != nil {
		return nil, fmt.Errorf("slot %d: %w", slot, err)
	}
	return save, nil
}

// Delete removes the save file of a slot.
func (s *Store) Delete(ctx context.Context, slot int) error {
	if err := checkSlot(slot); err != nil {
		return err
	}

	err := os.Remove(s.Path(slot))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete save file: %w", err)
	}
	return nil
}

// Exists reports whether the slot has a save file.
func (s *Store) Exists(ctx context.Context, slot int) (bool, error) {
	if err := checkSlot(slot); err != nil {
		return false, err
	}

	_, err := os.Stat(s.Path(slot))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("failed to stat save file: %w", err)
	}
}

// List returns the occupied slots in ascending order.
func (s *Store) List(ctx context.Context) ([]int, error) {
	entries, err := os.ReadDir(s.BasePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []int{}, nil
		}
		return nil, fmt.Errorf("failed to list saves: %w", err)
	}

	slots := []int{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if slot, ok := parseSlot(entry.Name()); ok {
			slots = append(slots, slot)
		}
	}
	slices.Sort(slots)
	return slots, nil
}

func parseSlot(name string) (int, bool) {
	rest, ok := strings.CutPrefix(name, slotPrefix)
	if !ok {
		return 0, false
	}
	rest, ok = strings.CutSuffix(rest, slotExt)
	if !ok {
		return 0, false
	}
	slot, err := strconv.Atoi(rest)
	if err != nil || slot < 1 {
		return 0, false
	}
	return slot, true
}

func checkSlot(slot int) error {
	if slot < 1 {
		return fmt.Errorf("%w: got %d", domain.ErrInvalidSlot, slot)
	}
	return nil
}
