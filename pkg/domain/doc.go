/*
Package domain contains the core domain model of the diploma defense simulator.

It defines the entities a session is made of, the stage enumeration of the
defense state machine, the fixed table of player actions, and the snapshot
types used to persist a session. The package is kept free of I/O; the state
machine itself lives in internal/runtime.

# Key Entities

  - Theme, Student, DiplomaProject, Presentation, ScientificSupervisor, Commission:
    value objects with bounded fields. Constructors reject out-of-range values
    with a *schema.ValidationError; mutators clamp.
  - Stage: one state of the defense process (PREPARATION ... FINISHED).
  - ActionCode: one of the eight player actions and its display label.
  - Snapshot / SaveFile: the persisted, JSON-shaped form of a session.
*/
package domain
