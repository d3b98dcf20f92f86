package domain

// Status is the flat view of a process shown to the player.
type Status struct {
	Today   int    `json:"today"`
	MaxDays int    `json:"max_days"`
	Stage   string `json:"stage"` // Display name

	StudentName         string `json:"student_name"`
	StudentIntelligence int    `json:"student_intelligence"`
	Stamina             int    `json:"stamina"`
	AnswerSkill         int    `json:"answer_skill"`

	ThesisCompletion int    `json:"thesis_completion"`
	ThesisQuality    int    `json:"thesis_quality"`
	ThemeName        string `json:"theme_name"`
	ThemeComplexity  int    `json:"theme_complexity"`
	Presentation     int    `json:"presentation"`

	SupervisorName         string `json:"supervisor_name"`
	SupervisorIntelligence int    `json:"supervisor_intelligence"`
	SupervisorLoyalty      int    `json:"supervisor_loyalty"`
	CommissionLoyalty      int    `json:"commission_loyalty"`

	RevisionPassed [3]bool `json:"revision_passed"`
	DefensePassed  bool    `json:"defense_passed"`
	Score          int     `json:"score"`
	FinalGrade     int     `json:"final_grade"`
}

// PassedRevisions counts the checkpoints already passed.
func (s Status) PassedRevisions() int {
	n := 0
	for _, ok := range s.RevisionPassed {
		if ok {
			n++
		}
	}
	return n
}
