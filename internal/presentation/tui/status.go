package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/aretw0/diploma/pkg/domain"
)

const barWidth = 20

// StatusView renders the status panel and the action menu.
type StatusView struct {
	profile termenv.Profile
}

// NewStatusView creates a view for the given color profile.
func NewStatusView(p termenv.Profile) *StatusView {
	return &StatusView{profile: p}
}

// Render returns the status panel.
func (v *StatusView) Render(s domain.Status) string {
	var sb strings.Builder

	header := fmt.Sprintf("Day %d/%d  %s", s.Today, s.MaxDays, s.Stage)
	fmt.Fprintln(&sb, v.profile.String(header).Bold().Foreground(v.profile.Color("#818cf8")))

	fmt.Fprintf(&sb, "Student: %s (intelligence %d)\n", s.StudentName, s.StudentIntelligence)
	fmt.Fprintf(&sb, "  %-13s %s %3d/%d\n", "Stamina", v.bar(s.Stamina, domain.MaxStamina), s.Stamina, domain.MaxStamina)
	fmt.Fprintf(&sb, "  %-13s %s %3d/%d\n", "Answer skill", v.bar(s.AnswerSkill, domain.MaxAnswerSkill), s.AnswerSkill, domain.MaxAnswerSkill)

	fmt.Fprintf(&sb, "Thesis: %q (complexity %d)\n", s.ThemeName, s.ThemeComplexity)
	fmt.Fprintf(&sb, "  %-13s %s %3d%%\n", "Completion", v.bar(s.ThesisCompletion, domain.MaxPct), s.ThesisCompletion)
	fmt.Fprintf(&sb, "  %-13s %s %3d/%d\n", "Quality", v.bar(s.ThesisQuality, domain.MaxQuality), s.ThesisQuality, domain.MaxQuality)
	fmt.Fprintf(&sb, "  %-13s %s %3d%%\n", "Presentation", v.bar(s.Presentation, domain.MaxPct), s.Presentation)

	fmt.Fprintf(&sb, "Supervisor: %s (intelligence %d, loyalty %d)\n",
		s.SupervisorName, s.SupervisorIntelligence, s.SupervisorLoyalty)
	fmt.Fprintf(&sb, "Commission loyalty: %d\n", s.CommissionLoyalty)

	checks := make([]string, len(s.RevisionPassed))
	for i, ok := range s.RevisionPassed {
		checks[i] = v.check(ok)
	}
	defense := "pending"
	if s.DefensePassed {
		defense = "passed"
	}
	fmt.Fprintf(&sb, "Checkpoints: %s  Defense: %s\n", strings.Join(checks, " "), defense)
	fmt.Fprintf(&sb, "Score: %d  Grade: %d\n", s.Score, s.FinalGrade)

	return sb.String()
}

// RenderMenu returns the numbered action list; 0 exits.
func (v *StatusView) RenderMenu(actions []domain.ActionCode) string {
	var sb strings.Builder
	sb.WriteString("Available actions:\n")
	for i, a := range actions {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, a.Label())
	}
	sb.WriteString("  0. Exit and save\n")
	return sb.String()
}

// bar draws a fixed-width progress bar, colored by how full it is.
func (v *StatusView) bar(value, limit int) string {
	filled := 0
	if limit > 0 {
		filled = value * barWidth / limit
	}
	filled = min(max(filled, 0), barWidth)

	color := "#ef4444" // red
	switch {
	case filled*3 >= barWidth*2:
		color = "#22c55e" // green
	case filled*3 >= barWidth:
		color = "#eab308" // yellow
	}

	full := v.profile.String(strings.Repeat("#", filled)).Foreground(v.profile.Color(color))
	return "[" + full.String() + strings.Repeat(".", barWidth-filled) + "]"
}

func (v *StatusView) check(ok bool) string {
	if ok {
		return v.profile.String("[x]").Foreground(v.profile.Color("#22c55e")).String()
	}
	return "[ ]"
}
