package domain

import "time"

// EventType defines the category of the event.
type EventType string

const (
	EventAction      EventType = "action"
	EventStageChange EventType = "stage_change"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// ActionEvent is emitted after an action's effect and the day advance ran.
type ActionEvent struct {
	EventBase
	Action ActionCode `json:"action"`
	Day    int        `json:"day"` // Day after the advance
	Stage  Stage      `json:"stage"`
}

// StageEvent is emitted when the day advance moved the process to another stage.
type StageEvent struct {
	EventBase
	From Stage `json:"from"`
	To   Stage `json:"to"`
	Day  int   `json:"day"`
}

// LifecycleHooks defines callbacks for process observability.
type LifecycleHooks struct {
	OnAction      func(*ActionEvent)
	OnStageChange func(*StageEvent)
}

// MergeHooks returns hooks that call each of the given hooks in order.
func MergeHooks(hooks ...LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnAction: func(e *ActionEvent) {
			for _, h := range hooks {
				if h.OnAction != nil {
					h.OnAction(e)
				}
			}
		},
		OnStageChange: func(e *StageEvent) {
			for _, h := range hooks {
				if h.OnStageChange != nil {
					h.OnStageChange(e)
				}
			}
		},
	}
}
