package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/diploma/pkg/domain"
)

// ReportMarkdown builds the final report of a finished session.
func ReportMarkdown(s domain.Status) string {
	var sb strings.Builder

	sb.WriteString("# Defense finished\n\n")

	outcome := "The commission did not hear the defense."
	if s.DefensePassed {
		outcome = "The thesis was defended."
	}
	fmt.Fprintf(&sb, "**%s**, theme *%s*, stopped on day %d of %d. %s\n\n",
		s.StudentName, s.ThemeName, s.Today, s.MaxDays, outcome)

	sb.WriteString("| Result | Value |\n")
	sb.WriteString("|---|---|\n")
	fmt.Fprintf(&sb, "| Final grade | %d |\n", s.FinalGrade)
	fmt.Fprintf(&sb, "| Score | %d |\n", s.Score)
	fmt.Fprintf(&sb, "| Day | %d |\n", s.Today)
	fmt.Fprintf(&sb, "| Checkpoints passed | %d/%d |\n", s.PassedRevisions(), len(s.RevisionPassed))
	fmt.Fprintf(&sb, "| Thesis | %d%% complete, quality %d |\n", s.ThesisCompletion, s.ThesisQuality)
	fmt.Fprintf(&sb, "| Presentation | %d%% |\n", s.Presentation)

	return sb.String()
}
