package domain

// ScientificSupervisor reviews the thesis during preparation. Immutable.
type ScientificSupervisor struct {
	name         string
	intelligence int
	loyalty      int
}

// NewScientificSupervisor validates and creates a ScientificSupervisor.
func NewScientificSupervisor(name string, intelligence, loyalty int) (ScientificSupervisor, error) {
	if err := validateName("supervisor.name", name); err != nil {
		return ScientificSupervisor{}, err
	}
	if err := validateLevel("supervisor.intelligence", intelligence); err != nil {
		return ScientificSupervisor{}, err
	}
	if err := validateLevel("supervisor.loyalty", loyalty); err != nil {
		return ScientificSupervisor{}, err
	}
	return ScientificSupervisor{name: name, intelligence: intelligence, loyalty: loyalty}, nil
}

func (s ScientificSupervisor) Name() string      { return s.name }
func (s ScientificSupervisor) Intelligence() int { return s.intelligence }
func (s ScientificSupervisor) Loyalty() int      { return s.loyalty }

// Commission grades the defense. Immutable.
type Commission struct {
	loyalty int
}

// NewCommission validates and creates a Commission.
func NewCommission(loyalty int) (Commission, error) {
	if err := validateLevel("commission.loyalty", loyalty); err != nil {
		return Commission{}, err
	}
	return Commission{loyalty: loyalty}, nil
}

func (c Commission) Loyalty() int { return c.loyalty }
