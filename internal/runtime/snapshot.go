package runtime

import (
	"fmt"
	"slices"

	"github.com/aretw0/diploma/pkg/domain"
)

// ToSnapshot captures the full process state.
func (p *Process) ToSnapshot() domain.Snapshot {
	theme := p.project.Theme()
	snap := domain.Snapshot{
		Today:          p.today,
		Stage:          p.stage.String(),
		RevisionPassed: append([]bool(nil), p.revisionPassed[:]...),
		DefensePassed:  p.defensePassed,
		FinalGrade:     p.finalGrade,
		Score:          p.score,
		Student: domain.StudentSnapshot{
			Name:         p.student.Name(),
			Intelligence: p.student.Intelligence(),
			Stamina:      p.student.Stamina(),
			AnswerSkill:  p.student.AnswerSkill(),
		},
		Theme: domain.ThemeSnapshot{
			Name:       theme.Name(),
			Complexity: theme.Complexity(),
		},
		DiplomaProject: domain.DiplomaProjectSnapshot{
			PctCompletion: p.project.PctCompletion(),
			Quality:       p.project.Quality(),
		},
		Presentation: domain.PresentationSnapshot{
			PctCompletion: p.presentation.PctCompletion(),
		},
		Supervisor: domain.SupervisorSnapshot{
			Name:         p.supervisor.Name(),
			Intelligence: p.supervisor.Intelligence(),
			Loyalty:      p.supervisor.Loyalty(),
		},
		Commission: domain.CommissionSnapshot{
			Loyalty: p.commission.Loyalty(),
		},
	}
	if p.seed != nil {
		seed := *p.seed
		snap.Seed = &seed
	}
	return snap
}

// FromSnapshot rebuilds a Process, re-validating every entity.
// Failures wrap domain.ErrCorruptSnapshot together with the cause
// (a *schema.ValidationError or domain.ErrUnknownStage).
// opts may attach hooks or a logger; the seed, day and stage come from snap.
func FromSnapshot(snap domain.Snapshot, opts ...Option) (*Process, error) {
	entities, err := restoreEntities(snap)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCorruptSnapshot, err)
	}

	stage, err := domain.ParseStage(snap.Stage)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCorruptSnapshot, err)
	}
	if len(snap.RevisionPassed) != 3 {
		return nil, fmt.Errorf("%w: revision_passed must have 3 entries, got %d",
			domain.ErrCorruptSnapshot, len(snap.RevisionPassed))
	}

	restore := append(slices.Clone(opts), WithDay(snap.Today), WithStage(stage))
	p, err := New(entities, restore...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCorruptSnapshot, err)
	}

	p.seed = nil
	if snap.Seed != nil {
		seed := *snap.Seed
		p.seed = &seed
	}
	copy(p.revisionPassed[:], snap.RevisionPassed)
	p.defensePassed = snap.DefensePassed
	p.finalGrade = snap.FinalGrade
	p.score = snap.Score
	return p, nil
}

// FromMap decodes the generic nested form of a snapshot (as read from
// arbitrary JSON) and rebuilds the Process.
func FromMap(data map[string]any, opts ...Option) (*Process, error) {
	snap, err := domain.DecodeSnapshot(data)
	if err != nil {
		return nil, err
	}
	return FromSnapshot(snap, opts...)
}

func restoreEntities(snap domain.Snapshot) (Entities, error) {
	theme, err := domain.NewTheme(snap.Theme.Name, snap.Theme.Complexity)
	if err != nil {
		return Entities{}, err
	}
	student, err := domain.NewStudent(snap.Student.Name, snap.Student.Intelligence,
		snap.Student.Stamina, snap.Student.AnswerSkill)
	if err != nil {
		return Entities{}, err
	}
	project, err := domain.NewDiplomaProject(snap.DiplomaProject.PctCompletion,
		snap.DiplomaProject.Quality, theme)
	if err != nil {
		return Entities{}, err
	}
	presentation, err := domain.NewPresentation(snap.Presentation.PctCompletion)
	if err != nil {
		return Entities{}, err
	}
	supervisor, err := domain.NewScientificSupervisor(snap.Supervisor.Name,
		snap.Supervisor.Intelligence, snap.Supervisor.Loyalty)
	if err != nil {
		return Entities{}, err
	}
	commission, err := domain.NewCommission(snap.Commission.Loyalty)
	if err != nil {
		return Entities{}, err
	}
	return Entities{
		Student:        student,
		DiplomaProject: project,
		Presentation:   presentation,
		Supervisor:     supervisor,
		Commission:     commission,
	}, nil
}
