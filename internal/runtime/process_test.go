package runtime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/diploma/internal/runtime"
	"github.com/aretw0/diploma/pkg/domain"
)

func TestProcess_AvailableActionsForEachStage(t *testing.T) {
	expected := map[domain.Stage][]domain.ActionCode{
		domain.StagePreparation: {"work_thesis", "rest", "send_review"},
		domain.StageRevision:    {"work_thesis", "rest", "submit_for_inspection"},
		domain.StageRehearsal:   {"prepare_slides", "rest", "rehearse"},
		domain.StageDefense:     {"prepare_slides", "rest", "rehearse", "defense"},
		domain.StageAttestation: {"attestation"},
		domain.StageFinished:    {},
	}

	for stage, actions := range expected {
		t.Run(stage.String(), func(t *testing.T) {
			f := defaults()
			f.stage = stage
			p := newProcess(t, f)
			assert.Equal(t, actions, p.AvailableActions())
		})
	}
}

func TestProcess_NewDefaults(t *testing.T) {
	p := newProcess(t, defaults())

	assert.Equal(t, 0, p.Today())
	assert.Equal(t, domain.StagePreparation, p.Stage())
	assert.Equal(t, [3]bool{}, p.RevisionPassed())
	assert.False(t, p.DefensePassed())
	assert.Zero(t, p.FinalGrade())
	assert.Zero(t, p.Score())
	assert.False(t, p.IsFinished())

	seed, ok := p.Seed()
	assert.True(t, ok)
	assert.Equal(t, int64(42), seed)
}

func TestProcess_NewRejectsMissingEntities(t *testing.T) {
	_, err := runtime.New(runtime.Entities{})
	assert.Error(t, err)

	f := defaults()
	p := newProcess(t, f)
	_, err = runtime.New(runtime.Entities{
		Student:        p.Student(),
		DiplomaProject: p.DiplomaProject(),
		Presentation:   p.Presentation(),
		Supervisor:     p.Supervisor(),
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestProcess_NewRejectsBadDayOrStage(t *testing.T) {
	p := newProcess(t, defaults())
	entities := runtime.Entities{
		Student:        p.Student(),
		DiplomaProject: p.DiplomaProject(),
		Presentation:   p.Presentation(),
		Supervisor:     p.Supervisor(),
		Commission:     p.Commission(),
	}

	_, err := runtime.New(entities, runtime.WithDay(26))
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = runtime.New(entities, runtime.WithStage("GRADUATION"))
	assert.ErrorIs(t, err, domain.ErrUnknownStage)
}

func TestProcess_CopiesEntities(t *testing.T) {
	student, err := domain.NewStudent("Alice", 2, 80, 0)
	require.NoError(t, err)
	p := newProcess(t, defaults())

	q, err := runtime.New(runtime.Entities{
		Student:        student,
		DiplomaProject: p.DiplomaProject(),
		Presentation:   p.Presentation(),
		Supervisor:     p.Supervisor(),
		Commission:     p.Commission(),
	})
	require.NoError(t, err)

	student.ChangeStamina(-80)
	assert.Equal(t, 80, q.Status().Stamina)

	q.Student().ChangeStamina(-80)
	assert.Equal(t, 80, q.Status().Stamina)
}

func TestProcess_PerformRejectsUnavailableAction(t *testing.T) {
	f := defaults()
	f.stage = domain.StageAttestation
	f.today = 24
	p := newProcess(t, f)
	before := p.ToSnapshot()

	err := p.Perform(domain.ActionRest)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrActionNotAvailable)
	assert.Equal(t, before, p.ToSnapshot(), "state must be untouched")

	err = p.Perform("dance")
	assert.ErrorIs(t, err, domain.ErrActionNotAvailable)
	assert.Equal(t, before, p.ToSnapshot())
}

func TestProcess_FinishedAcceptsNothing(t *testing.T) {
	f := defaults()
	f.stage = domain.StageFinished
	p := newProcess(t, f)

	assert.True(t, p.IsFinished())
	assert.Empty(t, p.AvailableActions())
	for _, code := range []domain.ActionCode{domain.ActionRest, domain.ActionAttestation} {
		assert.ErrorIs(t, p.Perform(code), domain.ErrActionNotAvailable)
	}
}

func TestProcess_WorkThesisChangesStats(t *testing.T) {
	p := newProcess(t, defaults())

	require.NoError(t, p.Perform(domain.ActionWorkThesis))
	status := p.Status()

	assert.Equal(t, 1, status.Today)
	assert.Equal(t, 60, status.Stamina)
	assert.Equal(t, 20, status.ThesisCompletion)
	assert.Equal(t, 89, status.ThesisQuality)
}

func TestProcess_WorkThesisWhenExhausted(t *testing.T) {
	f := defaults()
	f.stamina = 0
	f.intelligence = 1
	f.diplomaQuality = 3
	p := newProcess(t, f)

	// k1 = -1, k2 = 5: completion += 22 - 2 - 10, quality += -6
	require.NoError(t, p.Perform(domain.ActionWorkThesis))
	status := p.Status()

	assert.Equal(t, 0, status.Stamina)
	assert.Equal(t, 10, status.ThesisCompletion)
	assert.Equal(t, 0, status.ThesisQuality)
}

func TestProcess_SubmitForInspectionMarksAllRevisions(t *testing.T) {
	f := defaults()
	f.diplomaPct = 100
	f.today = 5
	f.stage = domain.StageRevision
	p := newProcess(t, f)

	require.NoError(t, p.Perform(domain.ActionSubmitForInspection))
	status := p.Status()

	assert.Equal(t, [3]bool{true, true, true}, status.RevisionPassed)
	assert.Equal(t, 3, status.FinalGrade)
	assert.Equal(t, 15, status.Score)
	assert.Equal(t, 73, status.Stamina)
	assert.Equal(t, 6, status.Today)
	assert.Equal(t, "Preparation", status.Stage)
}

func TestProcess_SubmitForInspectionLatePenalty(t *testing.T) {
	f := defaults()
	f.diplomaPct = 50
	f.today = 13
	f.stage = domain.StageRevision
	p := newProcess(t, f)

	// Only the first checkpoint qualifies; 13/6 = 2 makes it cost a point.
	require.NoError(t, p.Perform(domain.ActionSubmitForInspection))

	assert.Equal(t, [3]bool{true, false, false}, p.RevisionPassed())
	assert.Equal(t, -1, p.FinalGrade())
	assert.Equal(t, 2, p.Score())
}

func TestProcess_SubmitForInspectionSkipsPassedCheckpoints(t *testing.T) {
	f := defaults()
	f.diplomaPct = 100
	f.today = 10
	f.stage = domain.StageRevision
	p := restore(t, newProcess(t, f), func(s *domain.Snapshot) {
		s.RevisionPassed = []bool{true, true, false}
	})

	require.NoError(t, p.Perform(domain.ActionSubmitForInspection))

	assert.Equal(t, [3]bool{true, true, true}, p.RevisionPassed())
	assert.Equal(t, 1, p.FinalGrade())
	assert.Equal(t, 8, p.Score())
}

func TestProcess_RestAndSendReview(t *testing.T) {
	f := defaults()
	f.stamina = 90
	f.intelligence = 1
	f.supervisorIntelligence = 3
	f.supervisorLoyalty = 1
	f.diplomaQuality = 80
	p := newProcess(t, f)

	require.NoError(t, p.Perform(domain.ActionRest))
	assert.Equal(t, 100, p.Status().Stamina)
	assert.Equal(t, 9, p.Score())

	// k = 3 - 1 = 2; quality += 4 * (2 + 1)
	require.NoError(t, p.Perform(domain.ActionSendReview))
	status := p.Status()
	assert.Equal(t, 90, status.Stamina)
	assert.Equal(t, 92, status.ThesisQuality)
	assert.Equal(t, 6, status.Score)
	assert.Equal(t, 2, status.Today)
}

func TestProcess_SendReviewCanLowerQuality(t *testing.T) {
	f := defaults()
	f.intelligence = 3
	f.supervisorIntelligence = 1
	f.supervisorLoyalty = 1
	p := newProcess(t, f)

	// k = 1 - 3 = -2; quality += 4 * (-2 + 1)
	require.NoError(t, p.Perform(domain.ActionSendReview))
	assert.Equal(t, 86, p.Status().ThesisQuality)
}

func TestProcess_PrepareSlidesAndRehearse(t *testing.T) {
	f := defaults()
	f.stamina = 100
	f.intelligence = 3
	f.today = 17
	f.stage = domain.StageRehearsal
	p := restore(t, newProcess(t, f), func(s *domain.Snapshot) {
		s.RevisionPassed = []bool{true, true, true}
	})

	// k1 = 1, k2 = 0
	require.NoError(t, p.Perform(domain.ActionPrepareSlides))
	status := p.Status()
	assert.Equal(t, 54, status.Presentation)
	assert.Equal(t, 85, status.Stamina)

	// answer_skill += 85 / 50
	require.NoError(t, p.Perform(domain.ActionRehearse))
	status = p.Status()
	assert.Equal(t, 1, status.AnswerSkill)
	assert.Equal(t, 70, status.Stamina)
	assert.Equal(t, "Rehearsal", status.Stage)
}

func TestProcess_DefenseSetsAttestationStage(t *testing.T) {
	f := defaults()
	f.intelligence = 1
	f.answerSkill = 1
	f.presentationPct = 50
	f.commissionLoyalty = 1
	f.today = 23
	f.stage = domain.StageDefense
	p := newProcess(t, f)

	require.NoError(t, p.Perform(domain.ActionDefense))
	status := p.Status()

	assert.True(t, status.DefensePassed)
	assert.Equal(t, 1, status.FinalGrade)
	assert.Equal(t, "Attestation", status.Stage)
	assert.Equal(t, 24, status.Today)
}

func TestProcess_DefenseWithoutPenalty(t *testing.T) {
	f := defaults()
	f.intelligence = 3
	f.answerSkill = 3
	f.presentationPct = 52
	f.today = 23
	f.stage = domain.StageDefense
	p := newProcess(t, f)

	require.NoError(t, p.Perform(domain.ActionDefense))
	assert.Equal(t, 4, p.FinalGrade())
	assert.Equal(t, 60, p.Status().Stamina)
}

func TestProcess_AttestationFinishesProcess(t *testing.T) {
	f := defaults()
	f.diplomaQuality = 88
	f.today = 24
	f.stage = domain.StageAttestation
	p := restore(t, newProcess(t, f), func(s *domain.Snapshot) {
		s.FinalGrade = 3
		s.Score = 10
	})

	require.NoError(t, p.Perform(domain.ActionAttestation))
	status := p.Status()

	assert.Equal(t, 5, status.FinalGrade)
	assert.Equal(t, 40, status.Score)
	assert.Equal(t, 25, status.Today)
	assert.True(t, p.IsFinished())
}

func TestProcess_AttestationFloorsNegativeQualityBonus(t *testing.T) {
	f := defaults()
	f.intelligence = 1
	f.diplomaQuality = 60
	f.today = 25
	f.stage = domain.StageAttestation
	p := newProcess(t, f)

	// (60 - 70) floor/ 9 = -2; score = (0 + -4) * 3
	require.NoError(t, p.Perform(domain.ActionAttestation))
	assert.Equal(t, -2, p.FinalGrade())
	assert.Equal(t, -12, p.Score())
	assert.Equal(t, 25, p.Today())
	assert.True(t, p.IsFinished())
}

func TestProcess_FullRun(t *testing.T) {
	f := defaults()
	f.intelligence = 3
	f.stamina = 100
	p := newProcess(t, f)

	steps := []struct {
		action domain.ActionCode
		stage  domain.Stage
	}{
		{domain.ActionWorkThesis, domain.StagePreparation},
		{domain.ActionWorkThesis, domain.StagePreparation},
		{domain.ActionRest, domain.StagePreparation},
		{domain.ActionWorkThesis, domain.StagePreparation},
		{domain.ActionRest, domain.StageRevision},
		{domain.ActionSubmitForInspection, domain.StagePreparation},
		{domain.ActionWorkThesis, domain.StagePreparation},
		{domain.ActionRest, domain.StagePreparation},
		{domain.ActionWorkThesis, domain.StagePreparation},
		{domain.ActionRest, domain.StagePreparation},
		{domain.ActionRest, domain.StageRevision},
		{domain.ActionSubmitForInspection, domain.StagePreparation},
		{domain.ActionSendReview, domain.StagePreparation},
		{domain.ActionRest, domain.StagePreparation},
		{domain.ActionRest, domain.StagePreparation},
		{domain.ActionRest, domain.StageRevision},
		{domain.ActionRest, domain.StageRehearsal},
		{domain.ActionPrepareSlides, domain.StageRehearsal},
		{domain.ActionRest, domain.StageRehearsal},
		{domain.ActionPrepareSlides, domain.StageRehearsal},
		{domain.ActionRehearse, domain.StageRehearsal},
		{domain.ActionRest, domain.StageRehearsal},
		{domain.ActionRehearse, domain.StageDefense},
		{domain.ActionDefense, domain.StageAttestation},
		{domain.ActionAttestation, domain.StageFinished},
	}

	for i, step := range steps {
		require.NoError(t, p.Perform(step.action), "step %d (%s)", i, step.action)
		require.Equal(t, step.stage, p.Stage(), "step %d (%s)", i, step.action)
		require.Equal(t, i+1, p.Today())
	}

	status := p.Status()
	assert.True(t, p.IsFinished())
	assert.Equal(t, [3]bool{true, true, true}, status.RevisionPassed)
	assert.Equal(t, 100, status.ThesisCompletion)
	assert.Equal(t, 93, status.ThesisQuality)
	assert.Equal(t, 100, status.Presentation)
	assert.Equal(t, 2, status.AnswerSkill)
	assert.Equal(t, 55, status.Stamina)
	assert.Equal(t, 8, status.FinalGrade)
	assert.Equal(t, 127, status.Score)
}

func TestProcess_NeverSubmittingEndsEarly(t *testing.T) {
	p := newProcess(t, defaults())

	for !p.IsFinished() {
		actions := p.AvailableActions()
		require.NoError(t, p.Perform(actions[0]))
		require.LessOrEqual(t, p.Today(), domain.MaxDay)
	}

	assert.Equal(t, 7, p.Today())
	assert.Equal(t, domain.StageFinished, p.Stage())
}

func TestProcess_Status(t *testing.T) {
	p := newProcess(t, defaults())
	status := p.Status()

	assert.Equal(t, domain.Status{
		Today:                  0,
		MaxDays:                25,
		Stage:                  "Preparation",
		StudentName:            "Alice",
		StudentIntelligence:    2,
		Stamina:                80,
		AnswerSkill:            0,
		ThesisCompletion:       0,
		ThesisQuality:          90,
		ThemeName:              "Knowledge base assistant",
		ThemeComplexity:        2,
		Presentation:           0,
		SupervisorName:         "Dr. Test",
		SupervisorIntelligence: 2,
		SupervisorLoyalty:      2,
		CommissionLoyalty:      2,
	}, status)
}

func TestProcess_LifecycleHooks(t *testing.T) {
	var actions []domain.ActionEvent
	var stages []domain.StageEvent

	hooks := domain.LifecycleHooks{
		OnAction:      func(e *domain.ActionEvent) { actions = append(actions, *e) },
		OnStageChange: func(e *domain.StageEvent) { stages = append(stages, *e) },
	}

	f := defaults()
	f.today = 3
	p := newProcess(t, f, runtime.WithLifecycleHooks(hooks))

	require.NoError(t, p.Perform(domain.ActionRest))
	require.NoError(t, p.Perform(domain.ActionRest))

	require.Len(t, actions, 2)
	assert.Equal(t, domain.EventAction, actions[1].Type)
	assert.Equal(t, domain.ActionRest, actions[1].Action)
	assert.Equal(t, 5, actions[1].Day)
	assert.Equal(t, domain.StageRevision, actions[1].Stage)
	assert.False(t, actions[1].Timestamp.IsZero())

	require.Len(t, stages, 1, "only day 5 changes the stage")
	assert.Equal(t, domain.EventStageChange, stages[0].Type)
	assert.Equal(t, domain.StagePreparation, stages[0].From)
	assert.Equal(t, domain.StageRevision, stages[0].To)
	assert.Equal(t, 5, stages[0].Day)
}

func TestProcess_HooksNotCalledOnRejectedAction(t *testing.T) {
	called := false
	hooks := domain.LifecycleHooks{
		OnAction: func(*domain.ActionEvent) { called = true },
	}
	p := newProcess(t, defaults(), runtime.WithLifecycleHooks(hooks))

	assert.Error(t, p.Perform(domain.ActionDefense))
	assert.False(t, called)
}
