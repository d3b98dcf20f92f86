package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/diploma/pkg/domain"
	"github.com/aretw0/diploma/pkg/ports"
)

type loggingMiddleware struct {
	next   ports.SaveStore
	logger *slog.Logger
}

// NewLoggingMiddleware logs every store operation at debug level, with its
// duration and error if any.
func NewLoggingMiddleware(logger *slog.Logger) Middleware {
	return func(next ports.SaveStore) ports.SaveStore {
		return &loggingMiddleware{next: next, logger: logger}
	}
}

func (m *loggingMiddleware) log(ctx context.Context, op string, start time.Time, err error, attrs ...any) {
	attrs = append(attrs, "op", op, "duration", time.Since(start))
	if err != nil {
		m.logger.DebugContext(ctx, "Store Error", append(attrs, "err", err)...)
		return
	}
	m.logger.DebugContext(ctx, "Store", attrs...)
}

func (m *loggingMiddleware) Save(ctx context.Context, slot int, save *domain.SaveFile) error {
	start := time.Now()
	err := m.next.Save(ctx, slot, save)
	m.log(ctx, "save", start, err, "slot", slot)
	return err
}

func (m *loggingMiddleware) Load(ctx context.Context, slot int) (*domain.SaveFile, error) {
	start := time.Now()
	save, err := m.next.Load(ctx, slot)
	m.log(ctx, "load", start, err, "slot", slot)
	return save, err
}

func (m *loggingMiddleware) Delete(ctx context.Context, slot int) error {
	start := time.Now()
	err := m.next.Delete(ctx, slot)
	m.log(ctx, "delete", start, err, "slot", slot)
	return err
}

func (m *loggingMiddleware) List(ctx context.Context) ([]int, error) {
	start := time.Now()
	slots, err := m.next.List(ctx)
	m.log(ctx, "list", start, err, "count", len(slots))
	return slots, err
}

func (m *loggingMiddleware) Exists(ctx context.Context, slot int) (bool, error) {
	start := time.Now()
	ok, err := m.next.Exists(ctx, slot)
	m.log(ctx, "exists", start, err, "slot", slot, "exists", ok)
	return ok, err
}
