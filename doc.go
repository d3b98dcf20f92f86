/*
Package diploma is a turn-based simulator of a student's final weeks before a
diploma defense.

A run starts with a generated student, thesis, supervisor and commission. Each
turn the player picks one of the actions the current stage allows; the action
changes the entities and the calendar moves one day forward, which may move
the process to another stage. After at most 25 days the commission issues a
final grade on a ten-point scale together with a cumulative score.

# Packages

  - pkg/domain: entities with bounded stats, stages, actions, snapshots and sentinel errors.
  - internal/runtime: the defense process state machine and its snapshot codec.
  - pkg/session: a service that keeps one process bound to a numbered save slot.
  - pkg/ports, pkg/adapters/file, pkg/adapters/memory: save slot storage.
  - cmd/diploma: the interactive command line game.

# Usage

	store := memory.NewStore()
	svc := session.NewService(store)

	seed := int64(42)
	if _, err := svc.StartNew(ctx, 1, "Alice", 2, &seed); err != nil {
		log.Fatal(err)
	}
	if err := svc.Perform(ctx, domain.ActionWorkThesis); err != nil {
		log.Fatal(err)
	}

Every Perform saves the slot, so a later Load picks up where the player left.
*/
package diploma
