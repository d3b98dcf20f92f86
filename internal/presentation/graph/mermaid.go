package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/diploma/pkg/domain"
)

// Overlay contains the state of a session to highlight on the diagram.
type Overlay struct {
	Current domain.Stage
	Day     int
}

// Transition is one edge of the stage machine.
type Transition struct {
	From  domain.Stage
	To    domain.Stage
	Label string
}

// Transitions lists the stage changes made by the day advance and the
// final actions, in diagram order.
var Transitions = []Transition{
	{domain.StagePreparation, domain.StageRevision, "day 5, 11, 16"},
	{domain.StageRevision, domain.StagePreparation, "checkpoint passed, day 6, 7, 12, 13"},
	{domain.StageRevision, domain.StageRehearsal, "all checkpoints passed, day 17, 18"},
	{domain.StageRevision, domain.StageFinished, "deadline missed, day 7, 13, 18"},
	{domain.StageRehearsal, domain.StageDefense, "day 23"},
	{domain.StageDefense, domain.StageAttestation, "defense or day 25"},
	{domain.StageAttestation, domain.StageFinished, "attestation"},
}

// GenerateMermaid produces a Mermaid flowchart of the stage machine.
// It applies semantic styling:
// - Entry stage: ((Circle))
// - Terminal stage: ([Stadium])
// - Default: [Rectangle]
// Each stage lists its actions. The overlay, if provided, marks the current stage.
func GenerateMermaid(overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, stage := range domain.Stages {
		opener, closer := "[", "]"
		switch {
		case stage == domain.StagePreparation:
			opener, closer = "((", "))"
		case stage.IsTerminal():
			opener, closer = "([", "])"
		}

		text := stage.DisplayName()
		if actions := stage.Actions(); len(actions) > 0 {
			labels := make([]string, len(actions))
			for i, a := range actions {
				labels[i] = a.Label()
			}
			text += " <br/> " + strings.Join(labels, ", ")
		}
		if overlay != nil && overlay.Current == stage {
			text += fmt.Sprintf(" <br/> day %d", overlay.Day)
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", stage, opener, text, closer)
	}

	sb.WriteString("\n")
	for _, t := range Transitions {
		fmt.Fprintf(&sb, "    %s -- \"%s\" --> %s\n", t.From, t.Label, t.To)
	}

	if overlay != nil && overlay.Current != "" {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		fmt.Fprintf(&sb, "    class %s current;\n", overlay.Current)
	}

	return sb.String()
}
