package session

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/aretw0/diploma/internal/generator"
	"github.com/aretw0/diploma/internal/logging"
	"github.com/aretw0/diploma/internal/runtime"
	"github.com/aretw0/diploma/pkg/domain"
	"github.com/aretw0/diploma/pkg/ports"
)

// Service drives one defense process at a time and keeps its slot up to date.
// It is not safe for concurrent use.
type Service struct {
	store   ports.SaveStore
	catalog generator.Catalog
	hooks   domain.LifecycleHooks
	logger  *slog.Logger

	process *runtime.Process
	slot    int
}

// Option configures the Service.
type Option func(*Service)

// WithCatalog replaces the default themes, supervisors and starting stats.
func WithCatalog(catalog generator.Catalog) Option {
	return func(s *Service) {
		s.catalog = catalog
	}
}

// WithLifecycleHooks attaches hooks to every process the service starts or loads.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Service) {
		s.hooks = hooks
	}
}

// WithLogger configures a logger for the Service.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService creates a session service persisting to store.
func NewService(store ports.SaveStore, opts ...Option) *Service {
	s := &Service{
		store:   store,
		catalog: generator.DefaultCatalog(),
		logger:  logging.NewNop(), // Default to no-op
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// HasSave reports whether slot holds a save file.
func (s *Service) HasSave(ctx context.Context, slot int) (bool, error) {
	if err := validateSlot(slot); err != nil {
		return false, err
	}
	return s.store.Exists(ctx, slot)
}

// StartNew generates a fresh process for the student, makes it the active
// session and saves it to slot, replacing whatever the slot held.
// A nil seed draws the entities from a random source and records no seed.
func (s *Service) StartNew(ctx context.Context, slot int, studentName string, intelligence int, seed *int64) (*runtime.Process, error) {
	if err := validateSlot(slot); err != nil {
		return nil, err
	}

	var opts []runtime.Option
	genSeed := rand.Int64()
	if seed != nil {
		genSeed = *seed
		opts = append(opts, runtime.WithSeed(*seed))
	}

	entities, err := generator.New(genSeed, s.catalog).Generate(studentName, intelligence)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session: %w", err)
	}

	opts = append(opts, runtime.WithLifecycleHooks(s.hooks), runtime.WithLogger(s.logger))
	process, err := runtime.New(entities, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create process: %w", err)
	}

	s.process = process
	s.slot = slot
	if err := s.Save(ctx); err != nil {
		return nil, err
	}

	s.logger.Info("session started",
		"slot", slot,
		"student", studentName,
		"theme", entities.DiplomaProject.Theme().Name(),
		"supervisor", entities.Supervisor.Name())
	return process, nil
}

// Load restores the process saved in slot and makes it the active session.
// Returns domain.ErrSaveNotFound if the slot is empty.
func (s *Service) Load(ctx context.Context, slot int) (*runtime.Process, error) {
	if err := validateSlot(slot); err != nil {
		return nil, err
	}

	save, err := s.store.Load(ctx, slot)
	if err != nil {
		return nil, fmt.Errorf("failed to load slot %d: %w", slot, err)
	}

	process, err := runtime.FromSnapshot(save.Process,
		runtime.WithLifecycleHooks(s.hooks),
		runtime.WithLogger(s.logger))
	if err != nil {
		return nil, fmt.Errorf("failed to restore slot %d: %w", slot, err)
	}

	s.process = process
	s.slot = slot
	s.logger.Debug("session loaded", "slot", slot, "day", process.Today(), "stage", process.Stage())
	return process, nil
}

// Save writes the active process to its slot.
func (s *Service) Save(ctx context.Context) error {
	if s.process == nil {
		return domain.ErrNoActiveSession
	}

	save := &domain.SaveFile{Slot: s.slot, Process: s.process.ToSnapshot()}
	if err := s.store.Save(ctx, s.slot, save); err != nil {
		return fmt.Errorf("failed to save slot %d: %w", s.slot, err)
	}
	s.logger.Debug("session saved", "slot", s.slot, "day", s.process.Today())
	return nil
}

// Perform runs an action on the active process and saves it.
func (s *Service) Perform(ctx context.Context, code domain.ActionCode) error {
	if s.process == nil {
		return domain.ErrNoActiveSession
	}
	if err := s.process.Perform(code); err != nil {
		return err
	}
	return s.Save(ctx)
}

// Status returns the flat view of the active process.
func (s *Service) Status() (domain.Status, error) {
	if s.process == nil {
		return domain.Status{}, domain.ErrNoActiveSession
	}
	return s.process.Status(), nil
}

// AvailableActions returns the actions offered by the active process.
func (s *Service) AvailableActions() ([]domain.ActionCode, error) {
	if s.process == nil {
		return nil, domain.ErrNoActiveSession
	}
	return s.process.AvailableActions(), nil
}

// ActionLabel returns the menu label of code.
func (s *Service) ActionLabel(code domain.ActionCode) (string, error) {
	if s.process == nil {
		return "", domain.ErrNoActiveSession
	}
	return code.Label(), nil
}

// IsFinished reports whether the active process reached FINISHED.
func (s *Service) IsFinished() (bool, error) {
	if s.process == nil {
		return false, domain.ErrNoActiveSession
	}
	return s.process.IsFinished(), nil
}

// Process returns the active process, or nil before StartNew or Load.
func (s *Service) Process() *runtime.Process {
	return s.process
}

// Slot returns the slot of the active session, or 0 when there is none.
func (s *Service) Slot() int {
	return s.slot
}

func validateSlot(slot int) error {
	if slot < 1 {
		return fmt.Errorf("%w: got %d", domain.ErrInvalidSlot, slot)
	}
	return nil
}
