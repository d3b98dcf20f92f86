package runtime

import (
	"slices"

	"github.com/aretw0/diploma/pkg/domain"
)

// advanceDay moves the calendar forward and re-evaluates the stage.
// The rules run unconditionally and in this order; a later rule may
// override an earlier one on the same day (day 18 is both a rehearsal
// and a deadline day).
func (p *Process) advanceDay() {
	if p.today < domain.MaxDay {
		p.today++
	}
	day := p.today

	if slices.Contains([]int{5, 11, 16}, day) {
		p.stage = domain.StageRevision
	}
	if slices.Contains([]int{6, 7, 12, 13}, day) && p.revisionPassed[day/8] {
		p.stage = domain.StagePreparation
	}
	if slices.Contains([]int{17, 18}, day) && p.revisionPassed[2] {
		p.stage = domain.StageRehearsal
	}
	if slices.Contains([]int{7, 13, 18}, day) && !p.revisionPassed[day/8] {
		p.stage = domain.StageFinished
	}
	if slices.Contains([]int{23, 24}, day) {
		p.stage = domain.StageDefense
	}

	if p.stage == domain.StageAttestation {
		p.stage = domain.StageFinished
	} else if day == domain.MaxDay || p.defensePassed {
		p.stage = domain.StageAttestation
	}
}
