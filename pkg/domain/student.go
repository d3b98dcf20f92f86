package domain

// Student is the player character.
// Stamina and answer skill are clamped on every change.
type Student struct {
	name         string
	intelligence int
	stamina      int
	answerSkill  int
}

// NewStudent validates and creates a Student.
func NewStudent(name string, intelligence, stamina, answerSkill int) (*Student, error) {
	if err := validateName("student.name", name); err != nil {
		return nil, err
	}
	if err := validateLevel("student.intelligence", intelligence); err != nil {
		return nil, err
	}
	if err := validateRange("student.stamina", stamina, MinStamina, MaxStamina); err != nil {
		return nil, err
	}
	if err := validateRange("student.answer_skill", answerSkill, MinAnswerSkill, MaxAnswerSkill); err != nil {
		return nil, err
	}
	return &Student{
		name:         name,
		intelligence: intelligence,
		stamina:      stamina,
		answerSkill:  answerSkill,
	}, nil
}

func (s *Student) Name() string      { return s.name }
func (s *Student) Intelligence() int { return s.intelligence }
func (s *Student) Stamina() int      { return s.stamina }
func (s *Student) AnswerSkill() int  { return s.answerSkill }

// IntelligenceLabel returns "low", "middle" or "high".
func (s *Student) IntelligenceLabel() string {
	switch s.intelligence {
	case 1:
		return "low"
	case 2:
		return "middle"
	default:
		return "high"
	}
}

// ChangeStamina applies delta and returns the clamped stamina.
func (s *Student) ChangeStamina(delta int) int {
	s.stamina = clamp(s.stamina, delta, MinStamina, MaxStamina)
	return s.stamina
}

// ChangeAnswerSkill applies delta and returns the clamped answer skill.
func (s *Student) ChangeAnswerSkill(delta int) int {
	s.answerSkill = clamp(s.answerSkill, delta, MinAnswerSkill, MaxAnswerSkill)
	return s.answerSkill
}
