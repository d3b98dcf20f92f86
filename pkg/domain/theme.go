package domain

// Theme is the subject of a diploma project. Immutable after construction.
type Theme struct {
	name       string
	complexity int
}

// NewTheme validates and creates a Theme.
func NewTheme(name string, complexity int) (Theme, error) {
	if err := validateName("theme.name", name); err != nil {
		return Theme{}, err
	}
	if err := validateLevel("theme.complexity", complexity); err != nil {
		return Theme{}, err
	}
	return Theme{name: name, complexity: complexity}, nil
}

func (t Theme) Name() string    { return t.name }
func (t Theme) Complexity() int { return t.complexity }
