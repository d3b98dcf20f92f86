package cli

import (
	"log/slog"

	"github.com/aretw0/diploma/pkg/domain"
)

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnAction: func(e *domain.ActionEvent) {
			logger.Debug("Action", "action", e.Action, "day", e.Day, "stage", e.Stage)
		},
		OnStageChange: func(e *domain.StageEvent) {
			logger.Debug("Stage Change", "from", e.From, "to", e.To, "day", e.Day)
		},
	}
}
