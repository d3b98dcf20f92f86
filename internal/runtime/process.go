package runtime

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/aretw0/diploma/internal/logging"
	"github.com/aretw0/diploma/pkg/domain"
)

// Entities groups the participants a Process owns.
type Entities struct {
	Student        *domain.Student
	DiplomaProject *domain.DiplomaProject
	Presentation   *domain.Presentation
	Supervisor     domain.ScientificSupervisor
	Commission     domain.Commission
}

// Process is the defense state machine. It is the sole mutator of the
// entities it owns and is not safe for concurrent use.
type Process struct {
	student      *domain.Student
	project      *domain.DiplomaProject
	presentation *domain.Presentation
	supervisor   domain.ScientificSupervisor
	commission   domain.Commission

	today          int
	stage          domain.Stage
	seed           *int64
	revisionPassed [3]bool
	defensePassed  bool
	finalGrade     int
	score          int

	hooks  domain.LifecycleHooks
	logger *slog.Logger
}

// Option configures a Process.
type Option func(*Process)

// WithSeed records the seed the entities were generated from.
func WithSeed(seed int64) Option {
	return func(p *Process) {
		p.seed = &seed
	}
}

// WithDay starts the process on the given day instead of day 0.
func WithDay(day int) Option {
	return func(p *Process) {
		p.today = day
	}
}

// WithStage starts the process in the given stage instead of PREPARATION.
func WithStage(stage domain.Stage) Option {
	return func(p *Process) {
		p.stage = stage
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(p *Process) {
		p.hooks = hooks
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Process) {
		p.logger = logger
	}
}

// New creates a Process on day 0 in PREPARATION with all checkpoints open.
// The entities are copied; later changes to the arguments do not leak in.
func New(e Entities, opts ...Option) (*Process, error) {
	if e.Student == nil || e.DiplomaProject == nil || e.Presentation == nil {
		return nil, errors.New("process requires a student, a diploma project and a presentation")
	}
	if e.Supervisor == (domain.ScientificSupervisor{}) {
		return nil, fmt.Errorf("%w: supervisor is not set", domain.ErrValidation)
	}
	if e.Commission == (domain.Commission{}) {
		return nil, fmt.Errorf("%w: commission is not set", domain.ErrValidation)
	}

	student := *e.Student
	project := *e.DiplomaProject
	presentation := *e.Presentation

	p := &Process{
		student:      &student,
		project:      &project,
		presentation: &presentation,
		supervisor:   e.Supervisor,
		commission:   e.Commission,
		stage:        domain.StagePreparation,
	}
	for _, opt := range opts {
		opt(p)
	}

	if _, err := domain.ParseStage(p.stage.String()); err != nil {
		return nil, err
	}
	if p.today < 0 || p.today > domain.MaxDay {
		return nil, fmt.Errorf("%w: day %d outside 0..%d", domain.ErrValidation, p.today, domain.MaxDay)
	}
	if p.logger == nil {
		p.logger = logging.NewNop()
	}
	return p, nil
}

// AvailableActions returns the ordered actions offered by the current stage.
func (p *Process) AvailableActions() []domain.ActionCode {
	return p.stage.Actions()
}

// Perform runs the effect of code and then advances the day.
// An action the current stage does not offer fails with
// domain.ErrActionNotAvailable and leaves the process untouched.
func (p *Process) Perform(code domain.ActionCode) error {
	if !slices.Contains(p.stage.Actions(), code) {
		return fmt.Errorf("%w: %q at stage %s", domain.ErrActionNotAvailable, code, p.stage)
	}

	effects[code](p)

	from := p.stage
	p.advanceDay()

	p.logger.Debug("action performed",
		"action", code,
		"day", p.today,
		"stage", p.stage,
		"grade", p.finalGrade,
		"score", p.score)

	if p.hooks.OnAction != nil {
		p.hooks.OnAction(&domain.ActionEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventAction},
			Action:    code,
			Day:       p.today,
			Stage:     p.stage,
		})
	}
	if from != p.stage && p.hooks.OnStageChange != nil {
		p.hooks.OnStageChange(&domain.StageEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventStageChange},
			From:      from,
			To:        p.stage,
			Day:       p.today,
		})
	}
	return nil
}

// IsFinished reports whether the process reached FINISHED.
func (p *Process) IsFinished() bool {
	return p.stage.IsTerminal()
}

func (p *Process) Today() int          { return p.today }
func (p *Process) Stage() domain.Stage { return p.stage }
func (p *Process) DefensePassed() bool { return p.defensePassed }
func (p *Process) FinalGrade() int     { return p.finalGrade }
func (p *Process) Score() int          { return p.score }

// Seed returns the generation seed, if one was recorded.
func (p *Process) Seed() (int64, bool) {
	if p.seed == nil {
		return 0, false
	}
	return *p.seed, true
}

// RevisionPassed returns the three checkpoint flags.
func (p *Process) RevisionPassed() [3]bool { return p.revisionPassed }

// Student returns a copy of the student.
func (p *Process) Student() *domain.Student {
	s := *p.student
	return &s
}

// DiplomaProject returns a copy of the thesis.
func (p *Process) DiplomaProject() *domain.DiplomaProject {
	d := *p.project
	return &d
}

// Presentation returns a copy of the slide deck.
func (p *Process) Presentation() *domain.Presentation {
	pr := *p.presentation
	return &pr
}

func (p *Process) Supervisor() domain.ScientificSupervisor { return p.supervisor }
func (p *Process) Commission() domain.Commission           { return p.commission }

// Status returns the flat view of the process.
func (p *Process) Status() domain.Status {
	theme := p.project.Theme()
	return domain.Status{
		Today:   p.today,
		MaxDays: domain.MaxDay,
		Stage:   p.stage.DisplayName(),

		StudentName:         p.student.Name(),
		StudentIntelligence: p.student.Intelligence(),
		Stamina:             p.student.Stamina(),
		AnswerSkill:         p.student.AnswerSkill(),

		ThesisCompletion: p.project.PctCompletion(),
		ThesisQuality:    p.project.Quality(),
		ThemeName:        theme.Name(),
		ThemeComplexity:  theme.Complexity(),
		Presentation:     p.presentation.PctCompletion(),

		SupervisorName:         p.supervisor.Name(),
		SupervisorIntelligence: p.supervisor.Intelligence(),
		SupervisorLoyalty:      p.supervisor.Loyalty(),
		CommissionLoyalty:      p.commission.Loyalty(),

		RevisionPassed: p.revisionPassed,
		DefensePassed:  p.defensePassed,
		Score:          p.score,
		FinalGrade:     p.finalGrade,
	}
}
