// Package generator builds the participants of a new defense from a seed.
package generator

import (
	"errors"
	"math/rand/v2"

	"github.com/aretw0/diploma/internal/runtime"
	"github.com/aretw0/diploma/pkg/domain"
)

// Catalog holds the lookup tables and starting stats of a new session.
type Catalog struct {
	Themes      []domain.Theme
	Supervisors []string

	Stamina     int
	AnswerSkill int
	Quality     int
}

// DefaultCatalog returns the built-in themes, supervisors and starting stats.
func DefaultCatalog() Catalog {
	return Catalog{
		Themes: []domain.Theme{
			mustTheme("Smart recommendation system", 2),
			mustTheme("Neural network optimization", 3),
			mustTheme("Knowledge base assistant", 1),
		},
		Supervisors: []string{"Dr. Ivanov", "Dr. Petrov", "Dr. Sidorov"},
		Stamina:     80,
		AnswerSkill: 0,
		Quality:     90,
	}
}

func mustTheme(name string, complexity int) domain.Theme {
	t, err := domain.NewTheme(name, complexity)
	if err != nil {
		panic(err)
	}
	return t
}

// Generator draws themes, supervisors and commissions.
// The same seed and catalog always produce the same entities.
type Generator struct {
	catalog Catalog
	rng     *rand.Rand
}

// New creates a Generator seeded with seed.
func New(seed int64, catalog Catalog) *Generator {
	return &Generator{
		catalog: catalog,
		rng:     rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>32)),
	}
}

// Generate creates the entities for a student named name.
func (g *Generator) Generate(name string, intelligence int) (runtime.Entities, error) {
	if len(g.catalog.Themes) == 0 {
		return runtime.Entities{}, errors.New("catalog has no themes")
	}
	if len(g.catalog.Supervisors) == 0 {
		return runtime.Entities{}, errors.New("catalog has no supervisors")
	}

	student, err := domain.NewStudent(name, intelligence, g.catalog.Stamina, g.catalog.AnswerSkill)
	if err != nil {
		return runtime.Entities{}, err
	}

	theme := g.catalog.Themes[g.rng.IntN(len(g.catalog.Themes))]
	project, err := domain.NewDiplomaProject(domain.MinPct, g.catalog.Quality, theme)
	if err != nil {
		return runtime.Entities{}, err
	}
	presentation, err := domain.NewPresentation(domain.MinPct)
	if err != nil {
		return runtime.Entities{}, err
	}

	supervisor, err := domain.NewScientificSupervisor(
		g.catalog.Supervisors[g.rng.IntN(len(g.catalog.Supervisors))],
		g.level(),
		g.level(),
	)
	if err != nil {
		return runtime.Entities{}, err
	}
	commission, err := domain.NewCommission(g.level())
	if err != nil {
		return runtime.Entities{}, err
	}

	return runtime.Entities{
		Student:        student,
		DiplomaProject: project,
		Presentation:   presentation,
		Supervisor:     supervisor,
		Commission:     commission,
	}, nil
}

// level draws from the 1/2/3 scale.
func (g *Generator) level() int {
	return domain.MinLevel + g.rng.IntN(domain.MaxLevel-domain.MinLevel+1)
}
