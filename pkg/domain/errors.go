package domain

import (
	"errors"

	"github.com/aretw0/diploma/pkg/schema"
)

// ErrValidation is matched by every entity validation failure.
var ErrValidation = schema.ErrValidation

// ErrActionNotAvailable is returned when an action is not offered by the current stage.
var ErrActionNotAvailable = errors.New("action is not available at the current stage")

// ErrUnknownStage is returned when a stage name is not part of the enumeration.
var ErrUnknownStage = errors.New("unknown stage")

// ErrSaveNotFound is returned when a save slot has no file in the store.
var ErrSaveNotFound = errors.New("save slot not found")

// ErrCorruptSnapshot is returned when a save file cannot be decoded into a snapshot.
var ErrCorruptSnapshot = errors.New("corrupted save file")

// ErrInvalidSlot is returned for slot numbers below 1.
var ErrInvalidSlot = errors.New("slot number must be >= 1")

// ErrNoActiveSession is returned by session operations called before Start or Load.
var ErrNoActiveSession = errors.New("no active session: start or load a session first")
