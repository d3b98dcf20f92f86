package runtime_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aretw0/diploma/internal/runtime"
	"github.com/aretw0/diploma/pkg/domain"
)

// fixture describes a process the way the scenario tests need it.
type fixture struct {
	intelligence           int
	stamina                int
	answerSkill            int
	diplomaPct             int
	diplomaQuality         int
	presentationPct        int
	supervisorIntelligence int
	supervisorLoyalty      int
	commissionLoyalty      int
	today                  int
	stage                  domain.Stage
}

func defaults() fixture {
	return fixture{
		intelligence:           2,
		stamina:                80,
		diplomaQuality:         90,
		supervisorIntelligence: 2,
		supervisorLoyalty:      2,
		commissionLoyalty:      2,
		stage:                  domain.StagePreparation,
	}
}

func newProcess(t *testing.T, f fixture, opts ...runtime.Option) *runtime.Process {
	t.Helper()

	student, err := domain.NewStudent("Alice", f.intelligence, f.stamina, f.answerSkill)
	require.NoError(t, err)
	theme, err := domain.NewTheme("Knowledge base assistant", 2)
	require.NoError(t, err)
	project, err := domain.NewDiplomaProject(f.diplomaPct, f.diplomaQuality, theme)
	require.NoError(t, err)
	presentation, err := domain.NewPresentation(f.presentationPct)
	require.NoError(t, err)
	supervisor, err := domain.NewScientificSupervisor("Dr. Test", f.supervisorIntelligence, f.supervisorLoyalty)
	require.NoError(t, err)
	commission, err := domain.NewCommission(f.commissionLoyalty)
	require.NoError(t, err)

	opts = append([]runtime.Option{
		runtime.WithSeed(42),
		runtime.WithDay(f.today),
		runtime.WithStage(f.stage),
	}, opts...)

	p, err := runtime.New(runtime.Entities{
		Student:        student,
		DiplomaProject: project,
		Presentation:   presentation,
		Supervisor:     supervisor,
		Commission:     commission,
	}, opts...)
	require.NoError(t, err)
	return p
}

// restore rebuilds p after mutate edited its snapshot.
func restore(t *testing.T, p *runtime.Process, mutate func(*domain.Snapshot)) *runtime.Process {
	t.Helper()
	snap := p.ToSnapshot()
	mutate(&snap)
	out, err := runtime.FromSnapshot(snap)
	require.NoError(t, err)
	return out
}
