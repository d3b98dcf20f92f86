package runtime

import "github.com/aretw0/diploma/pkg/domain"

// effects maps every action code to its stat changes.
// The day advance runs after the effect, in Perform.
var effects = map[domain.ActionCode]func(*Process){
	domain.ActionWorkThesis:          (*Process).workThesis,
	domain.ActionPrepareSlides:       (*Process).prepareSlides,
	domain.ActionRest:                (*Process).rest,
	domain.ActionSendReview:          (*Process).sendReview,
	domain.ActionSubmitForInspection: (*Process).submitForInspection,
	domain.ActionRehearse:            (*Process).rehearse,
	domain.ActionDefense:             (*Process).defense,
	domain.ActionAttestation:         (*Process).attestation,
}

// fatigue returns k1 (intelligence bonus) and k2 (tiredness penalty),
// both read before the stamina cost is paid.
func (p *Process) fatigue() (k1, k2 int) {
	k1 = p.student.Intelligence() - 2
	k2 = 5 - floorDiv(p.student.Stamina(), 20)
	return k1, k2
}

func (p *Process) workThesis() {
	k1, k2 := p.fatigue()
	p.student.ChangeStamina(-20)
	p.project.ChangeCompletion(22 + 2*k1 - 2*k2)
	p.project.ChangeQuality(k1 - k2)
}

func (p *Process) prepareSlides() {
	k1, k2 := p.fatigue()
	p.student.ChangeStamina(-15)
	p.presentation.ChangeCompletion(52 + 2*k1 - 2*k2)
}

func (p *Process) rest() {
	p.student.ChangeStamina(20)
	p.score += 9
}

func (p *Process) sendReview() {
	k := p.supervisor.Intelligence() - p.student.Intelligence()
	p.student.ChangeStamina(-10)
	p.project.ChangeQuality(4 * (k + p.supervisor.Loyalty()))
	p.score -= 3
}

// checkpoints are evaluated in order; a late submission costs grade points.
var checkpoints = [3]struct {
	passed   func(pct int) bool
	deadline int
	reward   int
}{
	{func(pct int) bool { return pct > 33 }, 6, 2},
	{func(pct int) bool { return pct > 66 }, 12, 5},
	{func(pct int) bool { return pct == domain.MaxPct }, 17, 8},
}

func (p *Process) submitForInspection() {
	pct := p.project.PctCompletion()
	for i, cp := range checkpoints {
		if p.revisionPassed[i] || !cp.passed(pct) {
			continue
		}
		p.revisionPassed[i] = true
		p.finalGrade += 1 - floorDiv(p.today, cp.deadline)
		p.score += cp.reward
	}
	p.student.ChangeStamina(-7)
}

func (p *Process) rehearse() {
	p.student.ChangeAnswerSkill(floorDiv(p.student.Stamina(), 50))
	p.student.ChangeStamina(-15)
}

func (p *Process) defense() {
	p.defensePassed = true
	p.student.ChangeStamina(-20)
	p.finalGrade += 1 + p.student.AnswerSkill()
	if p.commission.Loyalty()+p.student.Intelligence() <= 3 || p.presentation.PctCompletion() <= 51 {
		p.finalGrade--
	}
}

func (p *Process) attestation() {
	p.finalGrade += floorDiv(p.project.Quality()-70, 9)
	p.score += p.finalGrade * 2
	p.score *= 4 - p.student.Intelligence()
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
